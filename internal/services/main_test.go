package services

import (
	"os"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/auth"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/logger"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/testhelpers"
)

func TestMain(m *testing.M) {
	logger.Init("test")
	auth.Init("services_test_secret", time.Hour)
	os.Exit(m.Run())
}

// setup - чистая база, контейнер сервисов и провайдер, который запоминает письма
func setup(t *testing.T) (*gorm.DB, *ServiceContainer, *testhelpers.RecordingProvider) {
	t.Helper()
	db := testhelpers.NewTestDB(t)
	mail := testhelpers.NewRecordingProvider()
	return db, NewServiceContainer(mail, time.Hour), mail
}
