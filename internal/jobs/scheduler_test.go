package jobs_test

import (
	"bytes"
	"log"
	"testing"
	"time"

	"katalog/internal/jobs"
	"katalog/internal/models"
	"katalog/internal/repositories"
	"katalog/internal/services"

	"github.com/stretchr/testify/assert"
)

func TestProductCountLogger(t *testing.T) {
	repo := repositories.NewMemoryProductRepository()
	service := services.NewProductService(repo)

	assert.NoError(t, repo.Create(&models.Product{Name: "A", Description: "First", Code: "A-001"}))
	assert.NoError(t, repo.Create(&models.Product{Name: "B", Description: "Second", Code: "B-002"}))

	orig := log.Writer()
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(orig)

	countLogger := jobs.NewProductCountLogger(service, 10*time.Millisecond)
	countLogger.Start()
	time.Sleep(50 * time.Millisecond)
	countLogger.Stop()

	assert.Contains(t, buf.String(), "Total products in database: 2")
}

func TestLogMailer(t *testing.T) {
	orig := log.Writer()
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(orig)

	err := jobs.LogMailer{}.Send("user@example.com", "Welcome", "Hi user, thanks for registering!")
	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "user@example.com")
	assert.Contains(t, buf.String(), "Welcome")
}
