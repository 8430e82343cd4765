package server

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fwadmin/internal/auth"
	"fwadmin/internal/config"
	"fwadmin/internal/database"
	"fwadmin/internal/domain"

	"gorm.io/driver/sqlite"
)

func setupHandlerTest(t *testing.T) {
	t.Helper()

	t.Setenv("JWT_SECRET", "test-secret")
	t.Chdir(t.TempDir())

	orig := config.GetConfig()
	t.Cleanup(func() {
		if err := config.SetConfig(orig); err != nil {
			t.Errorf("restore config: %v", err)
		}
	})

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name())
	if _, err := database.SetupDB(database.WithDialector(sqlite.Open(dsn))); err != nil {
		t.Fatalf("set up test database: %v", err)
	}
	t.Cleanup(func() { database.DB = nil })
}

func newUserToken(t *testing.T, email string, groups ...string) string {
	t.Helper()

	user := domain.User{Email: email, Password: "irrelevant"}
	if err := database.CreateUser(&user); err != nil {
		t.Fatalf("create user: %v", err)
	}
	for _, group := range groups {
		if err := database.AddUserToGroup(user.ID, group); err != nil {
			t.Fatalf("add user to %s: %v", group, err)
		}
	}

	token, err := auth.GenerateJWT(user.ID)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return token
}

func TestUpdateSettings(t *testing.T) {
	setupHandlerTest(t)

	token := newUserToken(t, "mod@example.com", "fwadmin_moderators")

	body := `{"registry": {"default_active_days": 14, "allowed_user_group": "fwadmin_users", "moderators_group": "fwadmin_moderators"}}`
	req := httptest.NewRequest(http.MethodPost, "/settings", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)

	rec := httptest.NewRecorder()
	updateSettings(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if got := config.GetConfig().Registry.DefaultActiveDays; got != 14 {
		t.Fatalf("DefaultActiveDays after update = %d, want 14", got)
	}
}

func TestUpdateSettingsAuthorization(t *testing.T) {
	setupHandlerTest(t)

	before := config.GetConfig()

	t.Run("anonymous", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/settings", strings.NewReader(`{}`))
		rec := httptest.NewRecorder()
		updateSettings(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", rec.Code)
		}
	})

	t.Run("non-moderator", func(t *testing.T) {
		token := newUserToken(t, "user@example.com", "fwadmin_users")
		req := httptest.NewRequest(http.MethodPost, "/settings", strings.NewReader(`{}`))
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		updateSettings(rec, req)
		if rec.Code != http.StatusForbidden {
			t.Fatalf("status = %d, want 403", rec.Code)
		}
	})

	if got := config.GetConfig(); got != before {
		t.Fatalf("denied requests changed the config: %+v", got)
	}
}

func TestGetSettings(t *testing.T) {
	setupHandlerTest(t)

	token := newUserToken(t, "mod@example.com", "fwadmin_moderators")

	req := httptest.NewRequest(http.MethodGet, "/settings", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	rec := httptest.NewRecorder()
	getSettings(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "default_active_days") {
		t.Fatalf("settings body missing expected fields: %s", rec.Body.String())
	}
}

func TestRegisterUserRejectsUnqualifiedEmail(t *testing.T) {
	setupHandlerTest(t)

	// "user@host" passes the struct-level email tag but has no TLD.
	body := `{"email": "user@host", "password": "password123"}`
	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(body))

	rec := httptest.NewRecorder()
	registerUser(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}

	count, err := database.CountUsers()
	if err != nil {
		t.Fatalf("count users: %v", err)
	}
	if count != 0 {
		t.Fatalf("rejected registration created %d users, want 0", count)
	}
}
