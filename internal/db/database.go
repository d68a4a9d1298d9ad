package db

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/ankitsingh13022003-code/MindCare/internal/platform/logger"
	"github.com/ankitsingh13022003-code/MindCare/internal/types"
	"github.com/ankitsingh13022003-code/MindCare/internal/utils"
)

type DatabaseService struct {
	db       *gorm.DB
	log      *logger.Logger
	postgres bool
}

// NewDatabaseService connects to Postgres by default; DB_DRIVER=sqlite
// switches to a local SQLite file for development.
func NewDatabaseService(logg *logger.Logger) (*DatabaseService, error) {
	serviceLog := logg.With("service", "DatabaseService")

	gormLog := gormLogger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		gormLogger.Config{
			SlowThreshold:             1 * time.Second,
			LogLevel:                  gormLogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
	cfg := &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
		Logger:                                   gormLog,
	}

	driver := strings.ToLower(utils.GetEnv("DB_DRIVER", "postgres", logg))
	if driver == "sqlite" {
		path := utils.GetEnv("SQLITE_PATH", "mindcare.db", logg)
		sqliteDB, err := gorm.Open(sqlite.Open(path), cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to open SQLite database: %w", err)
		}
		return &DatabaseService{db: sqliteDB, log: serviceLog}, nil
	}

	postgresHost := utils.GetEnv("POSTGRES_HOST", "localhost", logg)
	postgresPort := utils.GetEnv("POSTGRES_PORT", "5432", logg)
	postgresUser := utils.GetEnv("POSTGRES_USER", "postgres", logg)
	postgresPassword := utils.GetEnv("POSTGRES_PASSWORD", "", logg)
	postgresName := utils.GetEnv("POSTGRES_NAME", "mindcare", logg)

	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		postgresUser,
		postgresPassword,
		postgresHost,
		postgresPort,
		postgresName,
	)

	pgDB, err := gorm.Open(postgres.Open(dsn), cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Postgres: %w", err)
	}
	if err := pgDB.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`).Error; err != nil {
		return nil, fmt.Errorf("failed to enable uuid-ossp extension: %w", err)
	}
	return &DatabaseService{db: pgDB, log: serviceLog, postgres: true}, nil
}

func (s *DatabaseService) DB() *gorm.DB { return s.db }

func (s *DatabaseService) AutoMigrateAll() error {
	s.log.Info("Auto migrating tables...")
	if err := s.db.AutoMigrate(
		&types.User{},
		&types.UserToken{},
		&types.Question{},
		&types.QuestionOption{},
		&types.Assessment{},
		&types.ContactMessage{},
	); err != nil {
		return fmt.Errorf("auto migration failed: %w", err)
	}
	if !s.postgres {
		return nil
	}
	return ApplyCascadeConstraints(s.db)
}

// ApplyCascadeConstraints adds the cascade FK chains (user ->
// token/assessment, question -> option). AutoMigrate runs with FK constraint
// creation disabled, so they are applied as explicit DDL; Postgres only.
func ApplyCascadeConstraints(gdb *gorm.DB) error {
	constraints := []struct {
		name string
		stmt string
	}{
		{"fk_user_token_user_id", `
			ALTER TABLE "user_token"
			ADD CONSTRAINT "fk_user_token_user_id"
			FOREIGN KEY ("user_id") REFERENCES "user"("id")
			ON DELETE CASCADE`},
		{"fk_assessment_user_id", `
			ALTER TABLE "assessment"
			ADD CONSTRAINT "fk_assessment_user_id"
			FOREIGN KEY ("user_id") REFERENCES "user"("id")
			ON DELETE CASCADE`},
		{"fk_question_option_question_id", `
			ALTER TABLE "question_option"
			ADD CONSTRAINT "fk_question_option_question_id"
			FOREIGN KEY ("question_id") REFERENCES "question"("id")
			ON DELETE CASCADE`},
	}
	for _, c := range constraints {
		drop := fmt.Sprintf(`ALTER TABLE %q DROP CONSTRAINT IF EXISTS %q`, tableForConstraint(c.name), c.name)
		if err := gdb.Exec(drop).Error; err != nil {
			return fmt.Errorf("failed to drop %s: %w", c.name, err)
		}
		if err := gdb.Exec(c.stmt).Error; err != nil {
			return fmt.Errorf("failed to add %s: %w", c.name, err)
		}
	}
	return nil
}

func tableForConstraint(name string) string {
	switch name {
	case "fk_user_token_user_id":
		return "user_token"
	case "fk_assessment_user_id":
		return "assessment"
	default:
		return "question_option"
	}
}
