package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"readydoc-bot/internal/entity"
	"readydoc-bot/internal/model"
	"readydoc-bot/internal/repository/implementation"
	"readydoc-bot/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormAuditTrail(t *testing.T) {
	// Load .env from root
	if err := godotenv.Load("../../.env"); err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	require.NoError(t, gormDB.AutoMigrate(&model.DocumentAudit{}))

	repo := implementation.NewAuditRepository(gormDB)
	ctx := context.Background()

	audit := &entity.DocumentAudit{
		Id:            uuid.New(),
		UserID:        42,
		DocumentType:  "Договор аренды",
		Mode:          "auto",
		FilledValues:  map[string]string{"СУММА АРЕНДЫ": "150000"},
		SkippedFields: []string{"ИНН АРЕНДОДАТЕЛЯ"},
		FilePath:      "/tmp/contract_42.docx",
		CreatedAt:     time.Now(),
	}
	require.NoError(t, repo.Create(ctx, audit))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, count, int64(1))

	rows, err := repo.FindRecent(ctx, 10, 0)
	require.NoError(t, err)
	require.NotEmpty(t, rows)

	var found *entity.DocumentAudit
	for _, r := range rows {
		if r.Id == audit.Id {
			found = r
		}
	}
	require.NotNil(t, found, "created row should be in the recent page")
	assert.Equal(t, "150000", found.FilledValues["СУММА АРЕНДЫ"])
	assert.Equal(t, []string{"ИНН АРЕНДОДАТЕЛЯ"}, found.SkippedFields)
}
