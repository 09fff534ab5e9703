package repository

import "errors"

var (
	// ErrEventNotFound возвращается, если мероприятие не найдено в БД.
	ErrEventNotFound = errors.New("event not found")
)
