package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/app"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/auth"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/config"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/logger"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/testhelpers"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	auth.Init("handlers_test_secret", time.Hour)
	os.Exit(m.Run())
}

type testServer struct {
	db     *gorm.DB
	router *gin.Engine
	mail   *testhelpers.RecordingProvider
}

func newServer(t *testing.T) *testServer {
	t.Helper()
	db := testhelpers.NewTestDB(t)
	mail := testhelpers.NewRecordingProvider()
	return &testServer{
		db:     db,
		router: app.SetupRouter(config.Default(), db, mail),
		mail:   mail,
	}
}

// do выполняет JSON-запрос; token может быть пустым
func (s *testServer) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

// doForm отправляет application/x-www-form-urlencoded
func (s *testServer) doForm(t *testing.T, path string, form string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), "Ответ должен быть JSON: %s", w.Body.String())
	return out
}
