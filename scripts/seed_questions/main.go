package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/ankitsingh13022003-code/MindCare/internal/db"
	"github.com/ankitsingh13022003-code/MindCare/internal/platform/logger"
	"github.com/ankitsingh13022003-code/MindCare/internal/repos"
	"github.com/ankitsingh13022003-code/MindCare/internal/types"
)

type seedOption struct {
	text   string
	weight int
}

type seedQuestion struct {
	text     string
	category types.QuestionCategory
	options  []seedOption
}

var frequencyScale = []seedOption{
	{"Not at all", 0},
	{"Several days", 1},
	{"More than half the days", 2},
	{"Nearly every day", 3},
}

var seedQuestions = []seedQuestion{
	{"How often have you felt nervous, anxious, or on edge over the past 2 weeks?", types.CategoryAnxiety, frequencyScale},
	{"How often have you been unable to stop or control worrying?", types.CategoryAnxiety, frequencyScale},
	{"How often have you felt down, depressed, or hopeless?", types.CategoryDepression, frequencyScale},
	{"How often have you had little interest or pleasure in doing things?", types.CategoryDepression, frequencyScale},
	{"How often have you felt that you were unable to cope with all the things you had to do?", types.CategoryStress, []seedOption{
		{"Never", 0}, {"Rarely", 1}, {"Sometimes", 2}, {"Often", 3}, {"Always", 4},
	}},
	{"How often have you felt difficulties were piling up so high that you could not overcome them?", types.CategoryStress, []seedOption{
		{"Never", 0}, {"Rarely", 1}, {"Sometimes", 2}, {"Often", 3}, {"Always", 4},
	}},
	{"How would you rate your overall sleep quality?", types.CategoryGeneral, []seedOption{
		{"Excellent", 0}, {"Good", 1}, {"Fair", 2}, {"Poor", 3},
	}},
	{"How often do you feel overwhelmed by daily responsibilities?", types.CategoryStress, []seedOption{
		{"Never", 0}, {"Rarely", 1}, {"Sometimes", 2}, {"Often", 3},
	}},
	{"How often have you had trouble falling or staying asleep, or sleeping too much?", types.CategoryGeneral, frequencyScale},
	{"How often have you felt tired or had little energy?", types.CategoryGeneral, frequencyScale},
	{"How often have you had poor appetite or overeating?", types.CategoryGeneral, frequencyScale},
	{"How often have you felt bad about yourself or that you are a failure?", types.CategoryDepression, frequencyScale},
	{"How often have you had trouble concentrating on things?", types.CategoryGeneral, frequencyScale},
	{"How often do you experience physical symptoms like headaches, muscle tension, or stomach problems?", types.CategoryStress, []seedOption{
		{"Never", 0}, {"Rarely", 1}, {"Sometimes", 2}, {"Often", 3},
	}},
	{"How satisfied are you with your social relationships?", types.CategoryGeneral, []seedOption{
		{"Very satisfied", 0}, {"Satisfied", 1}, {"Somewhat satisfied", 2}, {"Not satisfied", 3},
	}},
}

// Seeds the question catalog. Safe to re-run: questions already present
// (matched by text) are left untouched.
func main() {
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := godotenv.Load(); err != nil {
		log.Debug("No .env file found, relying on process environment")
	}

	databaseService, err := db.NewDatabaseService(log)
	if err != nil {
		log.Fatal("Database init failed", "error", err)
	}
	if err := databaseService.AutoMigrateAll(); err != nil {
		log.Fatal("Database auto migration failed", "error", err)
	}
	theDB := databaseService.DB()
	questionRepo := repos.NewQuestionRepo(theDB, log)

	ctx := context.Background()
	texts := make([]string, 0, len(seedQuestions))
	for _, sq := range seedQuestions {
		texts = append(texts, sq.text)
	}
	existing, err := questionRepo.GetByTexts(ctx, nil, texts)
	if err != nil {
		log.Fatal("Failed to look up existing questions", "error", err)
	}
	existingTexts := make(map[string]bool, len(existing))
	for _, q := range existing {
		existingTexts[q.Text] = true
	}

	created := 0
	for _, sq := range seedQuestions {
		if existingTexts[sq.text] {
			continue
		}
		question := &types.Question{ID: uuid.New(), Text: sq.text, Category: sq.category}
		for _, opt := range sq.options {
			question.Options = append(question.Options, types.QuestionOption{
				ID:         uuid.New(),
				QuestionID: question.ID,
				Text:       opt.text,
				Weight:     opt.weight,
			})
		}
		if err := theDB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			_, err := questionRepo.Create(ctx, tx, []*types.Question{question})
			return err
		}); err != nil {
			log.Fatal("Failed to create question", "error", err)
		}
		created++
	}

	total, err := questionRepo.Count(ctx, nil)
	if err != nil {
		log.Fatal("Failed to count questions", "error", err)
	}
	log.Info("Seed complete", "created", created, "total_questions", total)
}
