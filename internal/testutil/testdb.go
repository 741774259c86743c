// Package testutil holds shared fixtures for package tests.
package testutil

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/justsurfingit/job-portal/internal/database"
	"github.com/justsurfingit/job-portal/internal/models"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewTestDB returns a migrated SQLite database stored under t.TempDir().
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := database.OpenSQLite(path, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := database.Migrate(context.Background(), db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

func CreateUser(t *testing.T, db *gorm.DB, name, role string) *models.User {
	t.Helper()

	user := &models.User{
		Name:  name,
		Email: fmt.Sprintf("user_%d@test.com", time.Now().UnixNano()),
		Phone: "+91 98765 43210",
		Role:  role,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user %s: %v", name, err)
	}
	return user
}

func CreateProfile(t *testing.T, db *gorm.DB, userID uint, profile *models.JobSeekerProfile) *models.JobSeekerProfile {
	t.Helper()

	profile.UserID = userID
	if err := db.Create(profile).Error; err != nil {
		t.Fatalf("create profile for user %d: %v", userID, err)
	}
	return profile
}

func CreateJob(t *testing.T, db *gorm.DB, job *models.Job) *models.Job {
	t.Helper()

	if err := db.Create(job).Error; err != nil {
		t.Fatalf("create job %q: %v", job.Title, err)
	}
	return job
}
