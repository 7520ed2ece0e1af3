package handlers_test

import (
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/models"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/testhelpers"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/pkg/apperrors"
)

func suspend(t *testing.T, s *testServer, userID string) {
	t.Helper()
	require.NoError(t, s.db.Model(&models.User{}).Where("id = ?", userID).
		UpdateColumn("is_suspended", true).Error)
}

func TestLogin_Success(t *testing.T) {
	s := newServer(t)
	user, _ := testhelpers.CreateTalent(t, s.db)

	w := s.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    user.Email,
		"password": testhelpers.DefaultPassword,
	})

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decode(t, w)
	assert.Equal(t, "Login successful", body["success"])

	data, ok := body["data"].(map[string]any)
	require.True(t, ok, "Успешный вход возвращает data")
	assert.NotEmpty(t, data["token"])
	assert.NotContains(t, w.Body.String(), "password_hash", "Хеш пароля не должен уходить клиенту")
}

func TestLogin_SuspendedJSON(t *testing.T) {
	s := newServer(t)
	user, _ := testhelpers.CreateTalent(t, s.db)
	suspend(t, s, user.ID)

	w := s.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    user.Email,
		"password": testhelpers.DefaultPassword,
	})

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"error":"Suspended"}`, w.Body.String(), "Сигнал блокировки должен быть точным")
	assert.Equal(t, string(apperrors.CodeSuspended), w.Header().Get(apperrors.ErrorCodeHeader))
}

func TestLogin_SuspendedFormRedirects(t *testing.T) {
	s := newServer(t)
	user, _ := testhelpers.CreateTalent(t, s.db)
	suspend(t, s, user.ID)

	form := url.Values{"email": {user.Email}, "password": {testhelpers.DefaultPassword}}
	w := s.doForm(t, "/api/v1/auth/login", form.Encode())

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login?error=Suspended", w.Header().Get("Location"))
}

func TestLogin_WrongPasswordForm(t *testing.T) {
	s := newServer(t)
	user, _ := testhelpers.CreateTalent(t, s.db)
	suspend(t, s, user.ID)

	// неверный пароль не раскрывает факт блокировки
	form := url.Values{"email": {user.Email}, "password": {"wrong-password"}}
	w := s.doForm(t, "/api/v1/auth/login", form.Encode())

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid email or password", decode(t, w)["error"])
}

func TestRegister_ValidationMessage(t *testing.T) {
	s := newServer(t)

	w := s.do(t, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"email":    "not-an-email",
		"password": "short",
		"role":     "TALENT",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	msg, _ := decode(t, w)["error"].(string)
	assert.True(t, strings.HasPrefix(msg, "Validation failed: "), "Сообщение: %s", msg)
	assert.Contains(t, msg, "email")
	assert.Contains(t, msg, "password")
	assert.Contains(t, msg, "name")
}

func TestRegister_ThenMe(t *testing.T) {
	s := newServer(t)

	w := s.do(t, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"email":    "Grace@Example.com",
		"password": "password123",
		"name":     "Grace Hopper",
		"role":     "TALENT",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	data := decode(t, w)["data"].(map[string]any)
	token, _ := data["token"].(string)
	require.NotEmpty(t, token)

	w = s.do(t, http.MethodGet, "/api/v1/auth/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "grace@example.com", decode(t, w)["email"])
}

func TestAuthMiddleware_SuspendedAfterLogin(t *testing.T) {
	s := newServer(t)
	user, _ := testhelpers.CreateTalent(t, s.db)
	token := testhelpers.Token(t, user)

	w := s.do(t, http.MethodGet, "/api/v1/profile/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	suspend(t, s, user.ID)

	w = s.do(t, http.MethodGet, "/api/v1/profile/me", token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"error":"Suspended"}`, w.Body.String())
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	s := newServer(t)

	w := s.do(t, http.MethodGet, "/api/v1/wallet", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, decode(t, w), "error")
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"), "Каждый ответ несет X-Request-ID")
}

func TestRoleGuards(t *testing.T) {
	s := newServer(t)
	talent, _ := testhelpers.CreateTalent(t, s.db)
	employer, _ := testhelpers.CreateEmployer(t, s.db)
	admin := testhelpers.CreateAdmin(t, s.db)

	cases := []struct {
		name   string
		token  string
		method string
		path   string
		want   int
	}{
		{"talent в админке", testhelpers.Token(t, talent), http.MethodGet, "/api/v1/admin/stats", http.StatusForbidden},
		{"employer в админке", testhelpers.Token(t, employer), http.MethodGet, "/api/v1/admin/users", http.StatusForbidden},
		{"talent не создает вакансии", testhelpers.Token(t, talent), http.MethodGet, "/api/v1/employer/jobs", http.StatusForbidden},
		{"employer не выводит средства", testhelpers.Token(t, employer), http.MethodGet, "/api/v1/wallet", http.StatusForbidden},
		{"admin видит статистику", testhelpers.Token(t, admin), http.MethodGet, "/api/v1/admin/stats", http.StatusOK},
		{"employer видит свои вакансии", testhelpers.Token(t, employer), http.MethodGet, "/api/v1/employer/jobs", http.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := s.do(t, tc.method, tc.path, tc.token, nil)
			assert.Equal(t, tc.want, w.Code, w.Body.String())
			if tc.want == http.StatusForbidden {
				assert.Equal(t, "Insufficient permissions", decode(t, w)["error"])
			}
		})
	}
}
