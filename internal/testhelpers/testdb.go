// Package testhelpers - in-memory база и фикстуры для тестов сервисов и хэндлеров
package testhelpers

import (
	"fmt"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/auth"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/models"
)

// DefaultPassword - пароль всех пользователей из фикстур
const DefaultPassword = "password123"

var seq int64

// NewTestDB открывает отдельную sqlite-базу в памяти и мигрирует все модели.
// Одно соединение: иначе каждое соединение видит свою пустую базу.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "Не удалось открыть тестовую БД")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(models.All()...), "AutoMigrate не должен падать")
	return db
}

func uniqueEmail(prefix string) string {
	return fmt.Sprintf("%s_%d@test.local", strings.ToLower(prefix), atomic.AddInt64(&seq, 1))
}

// CreateUser создает пользователя с хешем DefaultPassword
func CreateUser(t *testing.T, db *gorm.DB, role models.UserRole, name string) *models.User {
	t.Helper()

	hash, err := auth.HashPassword(DefaultPassword)
	require.NoError(t, err)

	user := &models.User{
		Email:        uniqueEmail(string(role)),
		Name:         name,
		PasswordHash: hash,
		Role:         role,
		Balance:      decimal.Zero,
	}
	require.NoError(t, db.Create(user).Error, "Не удалось создать пользователя")
	return user
}

// CreateAdmin - администратор платформы
func CreateAdmin(t *testing.T, db *gorm.DB) *models.User {
	return CreateUser(t, db, models.UserRoleAdmin, "Test Admin")
}

// CreateTalent - талант с публичным профилем
func CreateTalent(t *testing.T, db *gorm.DB) (*models.User, *models.TalentProfile) {
	t.Helper()

	user := CreateUser(t, db, models.UserRoleTalent, "Ada Talent")
	profile := &models.TalentProfile{
		UserID:    user.ID,
		FirstName: "Ada",
		LastName:  "Talent",
		City:      "Lagos",
		IsPublic:  true,
	}
	require.NoError(t, db.Create(profile).Error, "Не удалось создать профиль таланта")
	return user, profile
}

// CreateEmployer - работодатель с профилем компании
func CreateEmployer(t *testing.T, db *gorm.DB) (*models.User, *models.EmployerProfile) {
	t.Helper()

	user := CreateUser(t, db, models.UserRoleEmployer, "Acme Employer")
	profile := &models.EmployerProfile{
		UserID:      user.ID,
		CompanyName: "Acme Studios",
	}
	require.NoError(t, db.Create(profile).Error, "Не удалось создать профиль работодателя")
	return user, profile
}

// CreateJob создает вакансию работодателя в заданном статусе
func CreateJob(t *testing.T, db *gorm.DB, employerID string, status models.JobStatus) *models.Job {
	t.Helper()

	job := &models.Job{
		EmployerID:  employerID,
		Title:       fmt.Sprintf("Commercial shoot %d", atomic.AddInt64(&seq, 1)),
		Description: "Lead role in a TV commercial",
		Category:    "Acting",
		Location:    "Lagos",
		JobType:     "CONTRACT",
		Currency:    models.DefaultCurrency,
		Status:      status,
	}
	if status == models.JobStatusPublished {
		now := time.Now()
		job.PublishedAt = &now
	}
	require.NoError(t, db.Create(job).Error, "Не удалось создать вакансию")
	return job
}

// CreateApplication - отклик таланта на вакансию
func CreateApplication(t *testing.T, db *gorm.DB, jobID, talentID string, status models.ApplicationStatus) *models.Application {
	t.Helper()

	app := &models.Application{JobID: jobID, TalentID: talentID, Status: status}
	require.NoError(t, db.Create(app).Error, "Не удалось создать отклик")
	return app
}

// SetBalance выставляет баланс напрямую в обход журнала
func SetBalance(t *testing.T, db *gorm.DB, userID string, amount decimal.Decimal) {
	t.Helper()
	err := db.Model(&models.User{}).Where("id = ?", userID).UpdateColumn("balance", amount).Error
	require.NoError(t, err)
}

// Balance читает текущий баланс пользователя
func Balance(t *testing.T, db *gorm.DB, userID string) decimal.Decimal {
	t.Helper()
	var user models.User
	require.NoError(t, db.First(&user, "id = ?", userID).Error)
	return user.Balance
}

// Token выпускает JWT для пользователя; auth.Init должен быть вызван заранее
func Token(t *testing.T, user *models.User) string {
	t.Helper()
	token, err := auth.GenerateToken(user.ID, string(user.Role))
	require.NoError(t, err)
	return token
}
