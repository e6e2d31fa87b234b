package repositories_test

import (
	"testing"

	"katalog/internal/apperror"
	"katalog/internal/models"
	"katalog/internal/repositories"

	"github.com/stretchr/testify/assert"
)

func TestMemoryProductRepository(t *testing.T) {
	repo := repositories.NewMemoryProductRepository()

	first := &models.Product{Name: "First", Description: "One", Code: "A-001"}
	second := &models.Product{Name: "Second", Description: "Two", Code: "B-002"}
	assert.NoError(t, repo.Create(first))
	assert.NoError(t, repo.Create(second))
	assert.Equal(t, uint(1), first.ID)
	assert.Equal(t, uint(2), second.ID)

	// GetAll comes back in id order.
	all, err := repo.GetAll()
	assert.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Equal(t, "First", all[0].Name)
	assert.Equal(t, "Second", all[1].Name)

	// Duplicate code on create
	err = repo.Create(&models.Product{Name: "Third", Description: "Three", Code: "A-001"})
	column, ok := apperror.AsUniqueViolation(err)
	assert.True(t, ok)
	assert.Equal(t, "code", column)

	// Duplicate code on update, but saving a row onto its own code is fine.
	second.Code = "A-001"
	err = repo.Update(second)
	_, ok = apperror.AsUniqueViolation(err)
	assert.True(t, ok)
	second.Code = "B-002"
	assert.NoError(t, repo.Update(second))

	// Missing rows
	_, err = repo.GetByID(99)
	assert.True(t, apperror.IsNotFound(err))
	assert.True(t, apperror.IsNotFound(repo.Delete(99)))
	assert.True(t, apperror.IsNotFound(repo.Update(&models.Product{ID: 99, Code: "X"})))

	// Delete removes the row.
	assert.NoError(t, repo.Delete(1))
	_, err = repo.GetByID(1)
	assert.True(t, apperror.IsNotFound(err))
}

func TestMemoryUserRepository(t *testing.T) {
	repo := repositories.NewMemoryUserRepository()

	user := &models.User{Username: "testuser", Email: "test@example.com", Password: "hash"}
	assert.NoError(t, repo.Create(user))
	assert.Equal(t, uint(1), user.ID)

	// Lookups
	byUsername, err := repo.GetByUsername("testuser")
	assert.NoError(t, err)
	assert.Equal(t, user.ID, byUsername.ID)
	byEmail, err := repo.GetByEmail("test@example.com")
	assert.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)
	byID, err := repo.GetByID(1)
	assert.NoError(t, err)
	assert.Equal(t, "testuser", byID.Username)

	// Uniqueness across username and email
	err = repo.Create(&models.User{Username: "testuser", Email: "other@example.com"})
	assert.True(t, apperror.IsConflict(err))
	err = repo.Create(&models.User{Username: "otheruser", Email: "test@example.com"})
	assert.True(t, apperror.IsConflict(err))

	// Missing rows
	_, err = repo.GetByUsername("nobody")
	assert.True(t, apperror.IsNotFound(err))
	_, err = repo.GetByEmail("nobody@example.com")
	assert.True(t, apperror.IsNotFound(err))
	_, err = repo.GetByID(99)
	assert.True(t, apperror.IsNotFound(err))
}
