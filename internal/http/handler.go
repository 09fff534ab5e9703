package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"event-management-service/internal/model"
	"event-management-service/internal/service"
)

// ExportService описывает операции экспорта, нужные обработчикам.
type ExportService interface {
	Items() []model.ExportItemInfo
	ExportSelected(ctx context.Context, req model.ExportRequest, open service.OpenFunc) error
}

// DashboardService описывает операции дашборда, нужные обработчикам.
type DashboardService interface {
	Get(ctx context.Context, eventID string) (model.Dashboard, error)
	Refresh(ctx context.Context, eventID string) (model.Dashboard, error)
}

type Handler struct {
	Exports        ExportService
	Dashboards     DashboardService
	AllowedOrigins []string
	Log            *slog.Logger
}

func NewHandler(exports ExportService, dashboards DashboardService, allowedOrigins []string, log *slog.Logger) *Handler {
	return &Handler{
		Exports:        exports,
		Dashboards:     dashboards,
		AllowedOrigins: allowedOrigins,
		Log:            log,
	}
}

func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(h.accessLog)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   h.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", h.handleHealth)

	r.Route("/events/{eventId}", func(r chi.Router) {
		r.Get("/export/items", h.handleExportItems)
		r.Post("/export/selected", h.handleExportSelected)

		r.Get("/dashboard", h.handleDashboardGet)
		r.Post("/dashboard/refresh", h.handleDashboardRefresh)
	})

	return r
}

func asAppError(err error) *service.AppError {
	var appErr *service.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return service.ErrInternal("internal error", err)
}

func (h *Handler) logError(r *http.Request, handlerName string, appErr *service.AppError) {
	h.Log.Error("handler error",
		slog.String("handler", handlerName),
		slog.String("request_id", middleware.GetReqID(r.Context())),
		slog.String("code", appErr.Code),
		slog.String("message", appErr.Message),
		slog.Any("err", appErr.Err),
	)
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, handlerName string, err error) {
	appErr := asAppError(err)
	h.logError(r, handlerName, appErr)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(appErr.Status)

	resp := errorResponse{}
	resp.Error.Code = appErr.Code
	resp.Error.Message = appErr.Message
	_ = json.NewEncoder(w).Encode(resp)
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
