package repository

import (
	"testing"
	"time"

	"github.com/camden-git/hrmbackend/database"
	"github.com/camden-git/hrmbackend/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// a second connection would see a different in-memory database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, database.AutoMigrateModels(db))
	return db
}

func seedPerson(t *testing.T, db *gorm.DB, firstName string, mutate func(p *models.Person)) *models.Person {
	t.Helper()
	person := &models.Person{
		StaffID:     "S-" + firstName,
		FirstName:   firstName,
		LastName:    "Tester",
		YearOfBirth: time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
		CreatedBy:   "system",
		CreatedAt:   time.Now(),
		Status:      true,
	}
	if mutate != nil {
		mutate(person)
	}
	status := person.Status
	require.NoError(t, db.Create(person).Error)
	if !status {
		require.NoError(t, db.Model(person).Update("status", false).Error)
		person.Status = false
	}
	return person
}
