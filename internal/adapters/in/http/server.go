// Package http provides the Echo HTTP adapter: server-rendered pages for the
// key generator plus a small JSON API under /api/v1.
package http

import (
	"net/http"
	"time"

	"keygen/internal/core/application/usecases/commands"
	"keygen/internal/core/application/usecases/queries"
	"keygen/internal/core/ports"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Flash notices shown after each mutating operation.
const (
	noticeGenerated  = "Generated new key."
	noticeGenerating = "Generating new key in background. Refresh page after two seconds to see generated key."
	noticeDeleted    = "Deleted all keys."
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	generateKeyHandler   commands.GenerateKeyCommandHandler
	deleteAllKeysHandler commands.DeleteAllKeysCommandHandler

	// Query handlers
	listSecretsHandler queries.ListSecretsQueryHandler

	enqueuer ports.Enqueuer
	flash    *FlashStore
}

// NewServer creates a new HTTP server with the required command and query
// handlers, the task enqueuer for the background path, and the flash store.
func NewServer(
	generateKeyHandler commands.GenerateKeyCommandHandler,
	deleteAllKeysHandler commands.DeleteAllKeysCommandHandler,
	listSecretsHandler queries.ListSecretsQueryHandler,
	enqueuer ports.Enqueuer,
	flash *FlashStore,
) *Server {
	return &Server{
		generateKeyHandler:   generateKeyHandler,
		deleteAllKeysHandler: deleteAllKeysHandler,
		listSecretsHandler:   listSecretsHandler,
		enqueuer:             enqueuer,
		flash:                flash,
	}
}

// RegisterRoutes wires all routes onto the Echo instance and installs the
// HTML renderer. Generate and delete accept both GET and POST so the plain
// links on the index page work alongside proper API verbs.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Renderer = NewRenderer()

	e.GET("/", s.Index)
	e.GET("/generate", s.Generate)
	e.POST("/generate", s.Generate)
	e.GET("/delete", s.Delete)
	e.POST("/delete", s.Delete)

	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.GET("/secrets", s.GetSecrets)
	api.POST("/secrets", s.CreateSecret)
	api.DELETE("/secrets", s.DeleteSecrets)
}

// indexData is the template payload for the index page.
type indexData struct {
	Secrets  []queries.ListSecretsQueryResponse
	Messages []string
}

// Index handles GET / - renders all stored keys, newest first.
func (s *Server) Index(ctx echo.Context) error {
	query := queries.NewListSecretsQuery()

	secrets, err := s.listSecretsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to retrieve keys").SetInternal(err)
	}

	return ctx.Render(http.StatusOK, "index.html", indexData{
		Secrets:  secrets,
		Messages: s.flash.Pop(ctx),
	})
}

// Generate handles GET|POST /generate - creates a new key.
// With the bg query parameter set, the work is handed to the task queue and
// the response returns immediately; otherwise the key is created in-request.
func (s *Server) Generate(ctx echo.Context) error {
	if ctx.QueryParam("bg") != "" {
		jobID := uuid.NewString()
		if err := s.enqueuer.EnqueueGenerateKey(ctx.Request().Context(), jobID); err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to enqueue key generation").SetInternal(err)
		}
		_ = s.flash.Add(ctx, noticeGenerating)
		return ctx.Redirect(http.StatusFound, "/")
	}

	cmd := commands.NewGenerateKeyCommand()
	if err := s.generateKeyHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to generate key").SetInternal(err)
	}

	_ = s.flash.Add(ctx, noticeGenerated)
	return ctx.Redirect(http.StatusFound, "/")
}

// Delete handles GET|POST /delete - removes every stored key.
func (s *Server) Delete(ctx echo.Context) error {
	cmd := commands.NewDeleteAllKeysCommand()
	if err := s.deleteAllKeysHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete keys").SetInternal(err)
	}

	_ = s.flash.Add(ctx, noticeDeleted)
	return ctx.Redirect(http.StatusFound, "/")
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// Error is the JSON API error body.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Secret is the JSON API representation of a stored key.
type Secret struct {
	ID      int64     `json:"id"`
	Created time.Time `json:"created"`
	Key     string    `json:"key"`
}

// CreateSecretRequest is the JSON API request body for key creation.
type CreateSecretRequest struct {
	Background bool `json:"background"`
}

// GetSecrets handles GET /api/v1/secrets - retrieves all stored keys.
func (s *Server) GetSecrets(ctx echo.Context) error {
	query := queries.NewListSecretsQuery()

	secrets, err := s.listSecretsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve keys",
		})
	}

	response := make([]Secret, len(secrets))
	for i, secret := range secrets {
		response[i] = Secret{
			ID:      secret.ID,
			Created: secret.Created,
			Key:     secret.Key,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateSecret handles POST /api/v1/secrets - creates a new key.
// Returns 201 when the key was created synchronously and 202 when the work
// was accepted onto the task queue.
func (s *Server) CreateSecret(ctx echo.Context) error {
	var req CreateSecretRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	if req.Background {
		jobID := uuid.NewString()
		if err := s.enqueuer.EnqueueGenerateKey(ctx.Request().Context(), jobID); err != nil {
			return ctx.JSON(http.StatusInternalServerError, Error{
				Code:    http.StatusInternalServerError,
				Message: "Failed to enqueue key generation",
			})
		}
		return ctx.NoContent(http.StatusAccepted)
	}

	cmd := commands.NewGenerateKeyCommand()
	if err := s.generateKeyHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to generate key",
		})
	}

	return ctx.NoContent(http.StatusCreated)
}

// DeleteSecrets handles DELETE /api/v1/secrets - removes every stored key.
func (s *Server) DeleteSecrets(ctx echo.Context) error {
	cmd := commands.NewDeleteAllKeysCommand()
	if err := s.deleteAllKeysHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to delete keys",
		})
	}

	return ctx.NoContent(http.StatusNoContent)
}
