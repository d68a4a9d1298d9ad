package services

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/ankitsingh13022003-code/MindCare/internal/platform/logger"
	"github.com/ankitsingh13022003-code/MindCare/internal/types"
)

//go:embed guidance.yaml
var guidanceYAML []byte

type Helpline struct {
	Name        string `yaml:"name" json:"name"`
	Number      string `yaml:"number" json:"number"`
	Description string `yaml:"description" json:"description"`
}

type Resource struct {
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
	Link        string `yaml:"link" json:"link"`
	Type        string `yaml:"type" json:"type"`
}

// GuidanceContent is the static support content served on the guidance page.
type GuidanceContent struct {
	Helplines []Helpline `yaml:"helplines" json:"helplines"`
	Resources []Resource `yaml:"resources" json:"resources"`
	Tips      []string   `yaml:"tips" json:"tips"`
}

type guidanceFile struct {
	GuidanceContent `yaml:",inline"`

	Recommendations map[string][]string `yaml:"recommendations"`
}

type GuidanceService interface {
	// Recommendations returns the hand-authored advice list for a severity
	// category. Unknown categories fall back to the mild list.
	Recommendations(category types.SeverityCategory) []string
	Content() GuidanceContent
}

type guidanceService struct {
	log             *logger.Logger
	content         GuidanceContent
	recommendations map[types.SeverityCategory][]string
}

func NewGuidanceService(log *logger.Logger) (GuidanceService, error) {
	var parsed guidanceFile
	if err := yaml.Unmarshal(guidanceYAML, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse embedded guidance content: %w", err)
	}
	recs := make(map[types.SeverityCategory][]string, len(parsed.Recommendations))
	for category, list := range parsed.Recommendations {
		recs[types.SeverityCategory(category)] = list
	}
	for _, category := range []types.SeverityCategory{types.SeverityLow, types.SeverityMild, types.SeverityModerate, types.SeveritySevere} {
		if len(recs[category]) == 0 {
			return nil, fmt.Errorf("embedded guidance content missing recommendations for %q", category)
		}
	}
	return &guidanceService{
		log:             log.With("service", "GuidanceService"),
		content:         parsed.GuidanceContent,
		recommendations: recs,
	}, nil
}

func (gs *guidanceService) Recommendations(category types.SeverityCategory) []string {
	if list, ok := gs.recommendations[category]; ok {
		return list
	}
	return gs.recommendations[types.SeverityMild]
}

func (gs *guidanceService) Content() GuidanceContent {
	return gs.content
}
