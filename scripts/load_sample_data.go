package main

import (
	"fmt"
	"io/fs"
	"log"
	"path/filepath"
	"strings"
	"time"

	"os"

	"enquete-portal-backend/internal/config"
	"enquete-portal-backend/internal/database"
	"enquete-portal-backend/internal/database/models"
	apperrors "enquete-portal-backend/internal/errors"
	"enquete-portal-backend/internal/repository"
	"enquete-portal-backend/internal/service"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match the seed files
type InvestigatorData struct {
	LastName  string `yaml:"nom"`
	FirstName string `yaml:"prenom"`
	Email     string `yaml:"email"`
	Phone     string `yaml:"telephone,omitempty"`
}

type InvestigatorsFile struct {
	Investigators []InvestigatorData `yaml:"investigators"`
}

// sampleCase carries the handful of fields worth varying in generated
// exchange lines; everything else stays blank.
type sampleCase struct {
	caseNumber  string
	reference   string
	requestType string
	lastName    string
	firstName   string
	birthDate   string
	address     string
	city        string
	postalCode  string
	urgency     string
}

func main() {
	log.Println("🚀 Loading sample data...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	investigators, err := loadInvestigators("scripts/data")
	if err != nil {
		log.Fatalf("Failed to load investigators: %v", err)
	}

	created := 0
	for _, data := range investigators {
		wasCreated, err := createInvestigator(db, data)
		if err != nil {
			log.Fatalf("Failed to create investigator %s: %v", data.Email, err)
		}
		if wasCreated {
			created++
		}
	}
	log.Printf("📋 Investigators: %d created, %d total", created, len(investigators))

	if err := importSampleFile(db, cfg); err != nil {
		log.Fatalf("Failed to import sample exchange file: %v", err)
	}

	log.Println("✅ Sample data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress verbose GORM logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadInvestigators(dataDir string) ([]InvestigatorData, error) {
	var all []InvestigatorData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "investigators") {
			var file InvestigatorsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			all = append(all, file.Investigators...)
		}
		return nil
	})

	return all, err
}

func createInvestigator(db *gorm.DB, data InvestigatorData) (bool, error) {
	var inv models.Investigator
	if err := db.Where("email = ?", data.Email).First(&inv).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			inv = models.Investigator{
				LastName:  data.LastName,
				FirstName: data.FirstName,
				Email:     data.Email,
				Phone:     data.Phone,
			}
			if err := db.Create(&inv).Error; err != nil {
				return false, fmt.Errorf("failed to create investigator: %w", err)
			}
			return true, nil // created = true
		}
		return false, fmt.Errorf("failed to query investigator: %w", err)
	}

	return false, nil // created = false (existing)
}

// importSampleFile runs a generated exchange file through the regular import
// pipeline so the sample cases carry findings rows and an import file record
// like real ones.
func importSampleFile(db *gorm.DB, cfg *config.Config) error {
	seedLogger := logrus.New()
	seedLogger.SetLevel(logrus.WarnLevel)

	importService := service.NewImportService(
		repository.NewImportFileRepository(db),
		repository.NewCaseRepository(db),
		repository.NewFindingsRepository(db),
		service.NewEOSParser(seedLogger),
		cfg.UploadDir,
		seedLogger,
	)

	const name = "ENQUETES_EXEMPLE_2024.txt"
	content := buildExchangeFile(sampleCases())

	result, err := importService.Import(name, strings.NewReader(content))
	if err != nil {
		if apperrors.IsAlreadyExists(err) {
			log.Printf("📋 Sample file %s already imported, skipping", name)
			return nil
		}
		return err
	}

	log.Printf("📋 Sample file %s imported: %d cases", name, result.RecordsProcessed)
	return nil
}

func sampleCases() []sampleCase {
	return []sampleCase{
		{
			caseNumber:  "2024000001",
			reference:   "REF-2024-001",
			requestType: "ENQ",
			lastName:    "MARTIN",
			firstName:   "Sophie",
			birthDate:   "12/04/1985",
			address:     "12 RUE DE LA REPUBLIQUE",
			city:        "LYON",
			postalCode:  "69001",
			urgency:     "1",
		},
		{
			caseNumber:  "2024000002",
			reference:   "REF-2024-002",
			requestType: "ENQ",
			lastName:    "BERNARD",
			firstName:   "Julien",
			birthDate:   "03/11/1978",
			address:     "5 AVENUE DES CHAMPS",
			city:        "PARIS",
			postalCode:  "75008",
		},
		{
			caseNumber:  "2024000003",
			reference:   "REF-2024-003",
			requestType: "CON",
			lastName:    "DUBOIS",
			firstName:   "Claire",
			birthDate:   "27/09/1990",
			address:     "8 PLACE BELLECOUR",
			city:        "LYON",
			postalCode:  "69002",
		},
		{
			caseNumber:  "2024000004",
			reference:   "REF-2024-004",
			requestType: "ENQ",
			lastName:    "MOREAU",
			firstName:   "Antoine",
			birthDate:   "15/01/1969",
			address:     "33 BOULEVARD VICTOR HUGO",
			city:        "NICE",
			postalCode:  "06000",
		},
	}
}

// buildExchangeFile renders cases in the fixed-width layout the parser reads.
func buildExchangeFile(cases []sampleCase) string {
	var sb strings.Builder
	for _, c := range cases {
		line := make([]rune, 1854)
		for i := range line {
			line[i] = ' '
		}
		put(line, 0, 10, c.caseNumber)
		put(line, 10, 25, c.reference)
		put(line, 73, 76, c.requestType)
		put(line, 145, 175, c.lastName)
		put(line, 175, 195, c.firstName)
		put(line, 195, 205, c.birthDate)
		put(line, 327, 359, c.address)
		put(line, 455, 487, c.city)
		put(line, 487, 497, c.postalCode)
		put(line, 853, 854, c.urgency)
		sb.WriteString(string(line))
		sb.WriteString("\n")
	}
	return sb.String()
}

func put(line []rune, start, end int, value string) {
	for i, r := range value {
		if start+i >= end {
			break
		}
		line[start+i] = r
	}
}
