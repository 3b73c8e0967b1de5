package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpadapter "keygen/internal/adapters/in/http"
	postgresadapter "keygen/internal/adapters/out/postgres"
	"keygen/internal/adapters/out/postgres/secretrepo"
	"keygen/internal/core/application/usecases/commands"
	"keygen/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockEnqueuer is a mock implementation of ports.Enqueuer.
type MockEnqueuer struct {
	mock.Mock
}

func (m *MockEnqueuer) EnqueueGenerateKey(ctx context.Context, jobID string) error {
	args := m.Called(ctx, jobID)
	return args.Error(0)
}

// uowFactoryAdapter adapts the ports factory to the commands factory interface.
type uowFactoryAdapter struct {
	factory *postgresadapter.GormUnitOfWorkFactory
}

func (a uowFactoryAdapter) Create() commands.SecretUoW {
	return a.factory.Create()
}

// ServerIntegrationTestSuite exercises the full HTTP surface against a real
// PostgreSQL database, with only the task queue mocked out.
type ServerIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	echo      *echo.Echo
	enqueuer  *MockEnqueuer
}

func (suite *ServerIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&secretrepo.SecretDTO{}))
}

func (suite *ServerIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE secrets").Error)

	factory := uowFactoryAdapter{factory: postgresadapter.NewGormUnitOfWorkFactory(suite.db)}
	suite.enqueuer = new(MockEnqueuer)

	server := httpadapter.NewServer(
		commands.NewGenerateKeyCommandHandler(factory),
		commands.NewDeleteAllKeysCommandHandler(factory),
		queries.NewListSecretsQueryHandler(suite.db),
		suite.enqueuer,
		httpadapter.NewFlashStore("test-secret-key"),
	)

	suite.echo = echo.New()
	server.RegisterRoutes(suite.echo)
}

func (suite *ServerIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ServerIntegrationTestSuite) TestIndex_EmptyDatabase_RendersEmptyList() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	suite.echo.ServeHTTP(rec, req)

	suite.Equal(http.StatusOK, rec.Code)
	suite.Contains(rec.Body.String(), "No keys yet.")
}

func (suite *ServerIntegrationTestSuite) TestGenerate_Synchronous_CreatesKeyAndRedirects() {
	req := httptest.NewRequest(http.MethodGet, "/generate", nil)
	rec := httptest.NewRecorder()

	suite.echo.ServeHTTP(rec, req)

	suite.Equal(http.StatusFound, rec.Code)
	suite.Equal("/", rec.Header().Get("Location"))
	suite.assertSecretCount(1)
}

func (suite *ServerIntegrationTestSuite) TestGenerate_FlashNoticeShownOnceAfterRedirect() {
	// Generate and capture the flash cookie
	req := httptest.NewRequest(http.MethodGet, "/generate", nil)
	rec := httptest.NewRecorder()
	suite.echo.ServeHTTP(rec, req)
	suite.Require().Equal(http.StatusFound, rec.Code)
	cookies := rec.Result().Cookies()
	suite.Require().NotEmpty(cookies)

	// Follow the redirect with the cookie: notice is rendered
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec = httptest.NewRecorder()
	suite.echo.ServeHTTP(rec, req)
	suite.Equal(http.StatusOK, rec.Code)
	suite.Contains(rec.Body.String(), "Generated new key.")

	// Load the page again with the cleared cookie: notice is gone
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	rec = httptest.NewRecorder()
	suite.echo.ServeHTTP(rec, req)
	suite.Equal(http.StatusOK, rec.Code)
	suite.NotContains(rec.Body.String(), "Generated new key.")
}

func (suite *ServerIntegrationTestSuite) TestGenerate_Background_EnqueuesWithoutInserting() {
	suite.enqueuer.On("EnqueueGenerateKey", mock.Anything, mock.AnythingOfType("string")).
		Return(nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/generate?bg=1", nil)
	rec := httptest.NewRecorder()

	suite.echo.ServeHTTP(rec, req)

	suite.Equal(http.StatusFound, rec.Code)
	suite.Equal("/", rec.Header().Get("Location"))
	// The request must not block on the insert; the queue does it later
	suite.assertSecretCount(0)
	suite.enqueuer.AssertExpectations(suite.T())
}

func (suite *ServerIntegrationTestSuite) TestDelete_RemovesAllKeysAndRedirects() {
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/generate", nil)
		suite.echo.ServeHTTP(httptest.NewRecorder(), req)
	}
	suite.assertSecretCount(3)

	req := httptest.NewRequest(http.MethodGet, "/delete", nil)
	rec := httptest.NewRecorder()

	suite.echo.ServeHTTP(rec, req)

	suite.Equal(http.StatusFound, rec.Code)
	suite.Equal("/", rec.Header().Get("Location"))
	suite.assertSecretCount(0)
}

func (suite *ServerIntegrationTestSuite) TestIndex_ListsKeysNewestFirst() {
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	for i, key := range []string{"older-key", "newer-key"} {
		suite.Require().NoError(suite.db.Exec(
			`INSERT INTO secrets (created, key) VALUES (?, ?)`,
			base.Add(time.Duration(i)*time.Minute), key,
		).Error)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	suite.echo.ServeHTTP(rec, req)

	suite.Equal(http.StatusOK, rec.Code)
	body := rec.Body.String()
	suite.Less(strings.Index(body, "newer-key"), strings.Index(body, "older-key"))
}

func (suite *ServerIntegrationTestSuite) TestHealth() {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	suite.echo.ServeHTTP(rec, req)

	suite.Equal(http.StatusOK, rec.Code)
	suite.Equal("Healthy", rec.Body.String())
}

func (suite *ServerIntegrationTestSuite) TestAPI_GetSecrets_ReturnsJSON() {
	suite.Require().NoError(suite.db.Exec(
		`INSERT INTO secrets (created, key) VALUES (?, ?)`,
		time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC), "api-key",
	).Error)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/secrets", nil)
	rec := httptest.NewRecorder()

	suite.echo.ServeHTTP(rec, req)

	suite.Equal(http.StatusOK, rec.Code)

	var secrets []httpadapter.Secret
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &secrets))
	suite.Require().Len(secrets, 1)
	suite.Equal("api-key", secrets[0].Key)
	suite.Positive(secrets[0].ID)
}

func (suite *ServerIntegrationTestSuite) TestAPI_CreateSecret_Synchronous() {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/secrets", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	suite.echo.ServeHTTP(rec, req)

	suite.Equal(http.StatusCreated, rec.Code)
	suite.assertSecretCount(1)
}

func (suite *ServerIntegrationTestSuite) TestAPI_CreateSecret_Background() {
	suite.enqueuer.On("EnqueueGenerateKey", mock.Anything, mock.AnythingOfType("string")).
		Return(nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/secrets", strings.NewReader(`{"background": true}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	suite.echo.ServeHTTP(rec, req)

	suite.Equal(http.StatusAccepted, rec.Code)
	suite.assertSecretCount(0)
	suite.enqueuer.AssertExpectations(suite.T())
}

func (suite *ServerIntegrationTestSuite) TestAPI_DeleteSecrets() {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/secrets", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	suite.echo.ServeHTTP(httptest.NewRecorder(), req)
	suite.assertSecretCount(1)

	req = httptest.NewRequest(http.MethodDelete, "/api/v1/secrets", nil)
	rec := httptest.NewRecorder()

	suite.echo.ServeHTTP(rec, req)

	suite.Equal(http.StatusNoContent, rec.Code)
	suite.assertSecretCount(0)
}

// assertSecretCount verifies the number of secrets in the database.
func (suite *ServerIntegrationTestSuite) assertSecretCount(expected int) {
	var count int64
	err := suite.db.Model(&secretrepo.SecretDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestServerIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ServerIntegrationTestSuite))
}
