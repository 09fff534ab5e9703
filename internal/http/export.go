package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"event-management-service/internal/model"
	"event-management-service/internal/service"
)

func (h *Handler) handleExportItems(w http.ResponseWriter, r *http.Request) {
	resp := exportItemsResponse{
		EventID: chi.URLParam(r, "eventId"),
		Items:   h.Exports.Items(),
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

func (h *Handler) handleExportSelected(w http.ResponseWriter, r *http.Request) {
	const handlerName = "export_selected"

	eventID := chi.URLParam(r, "eventId")

	// Пустое тело равносильно отсутствию itemIds.
	var req exportSelectedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		h.writeExportError(w, r, handlerName, service.ErrBadRequest("invalid JSON"))
		return
	}

	started := false
	err := h.Exports.ExportSelected(r.Context(), model.ExportRequest{
		EventID: eventID,
		ItemIDs: req.ItemIDs,
	}, func(filename string) io.Writer {
		started = true
		w.Header().Set("Content-Type", "application/zip")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		w.WriteHeader(http.StatusOK)
		return w
	})
	if err == nil {
		return
	}

	var streamErr *service.StreamError
	if !errors.As(err, &streamErr) {
		h.writeExportError(w, r, handlerName, err)
		return
	}

	h.Log.Error("export stream failed",
		slog.String("handler", handlerName),
		slog.String("request_id", middleware.GetReqID(r.Context())),
		slog.String("event_id", eventID),
		slog.Any("err", streamErr.Err),
	)
	if started {
		// Заголовки уже ушли: рвём соединение, чтобы клиент не принял обрезанный архив за целый.
		panic(http.ErrAbortHandler)
	}
}

func (h *Handler) writeExportError(w http.ResponseWriter, r *http.Request, handlerName string, err error) {
	appErr := asAppError(err)
	h.logError(r, handlerName, appErr)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(appErr.Status)
	_ = json.NewEncoder(w).Encode(exportErrorResponse{Error: appErr.Message})
}
