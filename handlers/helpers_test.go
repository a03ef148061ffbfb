package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/camden-git/hrmbackend/database"
	"github.com/camden-git/hrmbackend/events"
	"github.com/camden-git/hrmbackend/media"
	"github.com/camden-git/hrmbackend/models"
	"github.com/camden-git/hrmbackend/repository"
	"github.com/camden-git/hrmbackend/services"
)

// stubAuth accepts the tokens it was seeded with
type stubAuth map[string]*models.Account

func (s stubAuth) Authenticate(_ context.Context, token string) (*models.Account, error) {
	if account, ok := s[token]; ok {
		return account, nil
	}
	return nil, errors.New("unknown token")
}

type testServer struct {
	handler http.Handler
	db      *gorm.DB
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, database.AutoMigrateModels(db))
	return db
}

// newTestServer wires the real repositories and services over in-memory SQLite.
// When auth is nil the real JWT authenticator is used.
func newTestServer(t *testing.T, auth Authenticator) *testServer {
	t.Helper()
	zl := zap.NewNop()
	db := newTestDB(t)
	uow := repository.NewUnitOfWork(db)
	pub := events.Nop{}

	people := repository.NewPersonRepository(db)
	locations := repository.NewLocationRepository(db)
	groups := repository.NewGroupRepository(db)
	technologies := repository.NewTechnologyRepository(db)
	categories := repository.NewCategoryRepository(db)
	accounts := repository.NewAccountRepository(db)

	catalog := services.NewTechnologyCatalog(technologies, nil, zl)
	authService := services.NewAuthService(accounts, uow, "test-secret", time.Hour, zl)
	if auth == nil {
		auth = authService
	}

	storagePath := t.TempDir()
	store, err := media.NewLocalStorage(storagePath, map[media.AssetType]string{media.AssetTypeAvatar: "avatars"}, zl)
	require.NoError(t, err)
	avatars, err := AssetServer(store, "avatars", zl)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)

	h := NewRouter(Router{
		Auth:        auth,
		AuthHandler: NewAuthHandler(authService),
		Persons: &PersonHandler{
			Service:    services.NewPersonService(people, locations, groups, catalog, uow, pub, services.DefaultPageLimits, "system", zl),
			Store:      store,
			AvatarSize: 32,
			Logger:     zl,
		},
		PersonDetails: &PersonDetailsHandler{
			Projects:        services.NewProjectService(repository.NewProjectRepository(db), people, groups, catalog, uow, pub, zl),
			CategoryPersons: services.NewCategoryPersonService(repository.NewCategoryPersonRepository(db), people, categories, catalog, uow, pub, zl),
			Educations:      services.NewEducationService(repository.NewEducationRepository(db), people, uow, pub, zl),
		},
		Technologies:   &TechnologyHandler{Service: services.NewTechnologyService(technologies, categories, catalog, uow, pub, zl)},
		Categories:     &CategoryHandler{Service: services.NewCategoryService(categories, catalog, uow, pub, zl)},
		Groups:         &GroupHandler{Service: services.NewGroupService(groups, catalog, uow, pub, zl)},
		Locations:      &LocationHandler{Service: services.NewLocationService(locations, uow, pub, zl)},
		Accounts:       &AccountHandler{Service: services.NewAccountService(accounts, uow, pub, services.DefaultPageLimits, zl)},
		Reports:        &ReportHandler{DB: sqlDB, Logger: zl},
		Permissions:    NewPermissionsHandler(),
		Avatars:        avatars,
		AvatarsSubDir:  "avatars",
		AllowedOrigins: []string{"*"},
		Logger:         zl,
	})

	return &testServer{handler: h, db: db}
}

var (
	adminAccount  = &models.Account{ID: 1, UserName: "root", Role: "admin", Status: true}
	editorAccount = &models.Account{ID: 2, UserName: "ed", Role: "editor", Status: true}
	viewerAccount = &models.Account{ID: 3, UserName: "vi", Role: "viewer", Status: true}
)

func roleAuth() stubAuth {
	return stubAuth{"admin": adminAccount, "editor": editorAccount, "viewer": viewerAccount}
}

func (ts *testServer) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)
	return rec
}

// resultBody mirrors services.Result with a raw resource
type resultBody struct {
	Success  bool            `json:"success"`
	Resource json.RawMessage `json:"resource"`
	Message  string          `json:"message"`
}

func decodeResult(t *testing.T, rec *httptest.ResponseRecorder, resource interface{}) resultBody {
	t.Helper()
	var body resultBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	if resource != nil && len(body.Resource) > 0 {
		require.NoError(t, json.Unmarshal(body.Resource, resource))
	}
	return body
}

func decodeAPIError(t *testing.T, rec *httptest.ResponseRecorder) APIErrorResponse {
	t.Helper()
	var body APIErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body
}

func personPayload(staffID, firstName string) map[string]interface{} {
	return map[string]interface{}{
		"staff_id":      staffID,
		"first_name":    firstName,
		"last_name":     "Nguyen",
		"email":         firstName + "@example.com",
		"year_of_birth": "1994-03-02T00:00:00Z",
		"gender":        1,
	}
}
