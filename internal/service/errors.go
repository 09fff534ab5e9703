package service

import (
	"fmt"
	"net/http"
)

// Сообщения для пользователя, которые ожидает фронтенд.
const (
	MsgNoItemsSelected = "Vui lòng chọn ít nhất một mục để xuất"
	MsgNoValidItems    = "Không có mục hợp lệ để xuất"
	MsgEventIDRequired = "Thiếu mã sự kiện"
)

// AppError описывает прикладную ошибку сервиса:
// код для клиента, человекочитаемое сообщение, HTTP-статус и вложенная ошибка.
type AppError struct {
	Code    string
	Message string
	Status  int
	Err     error
}

// Error реализует интерфейс error для AppError.
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap возвращает вложенную ошибку для поддержки errors.Is/As.
func (e *AppError) Unwrap() error {
	return e.Err
}

// ErrBadRequest конструирует AppError для ошибок валидации или некорректных запросов клиента.
func ErrBadRequest(msg string) *AppError {
	return &AppError{
		Code:    "BAD_REQUEST",
		Message: msg,
		Status:  http.StatusBadRequest,
	}
}

// ErrNotFound конструирует AppError для ситуации, когда ресурс не найден.
func ErrNotFound(msg string) *AppError {
	return &AppError{
		Code:    "NOT_FOUND",
		Message: msg,
		Status:  http.StatusNotFound,
	}
}

// ErrInternal конструирует AppError для внутренних сбоев с вложенной причиной.
func ErrInternal(msg string, err error) *AppError {
	return &AppError{
		Code:    "INTERNAL",
		Message: msg,
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

// StreamError описывает сбой записи архива в ответ после того, как заголовки уже отправлены.
// Клиенту его не сообщить, только залогировать.
type StreamError struct {
	Err error
}

func (e *StreamError) Error() string {
	return fmt.Sprintf("stream archive: %v", e.Err)
}

func (e *StreamError) Unwrap() error {
	return e.Err
}
