// Package http реализует HTTP-обработчики и DTO поверх доменных сервисов.
package http

import "event-management-service/internal/model"

type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// exportErrorResponse: плоский формат ошибки, который ждёт страница экспорта.
type exportErrorResponse struct {
	Error string `json:"error"`
}

type exportSelectedRequest struct {
	ItemIDs []string `json:"itemIds"`
}

type exportItemsResponse struct {
	EventID string                 `json:"event_id"`
	Items   []model.ExportItemInfo `json:"items"`
}

type dashboardResponse struct {
	Dashboard model.Dashboard `json:"dashboard"`
}
