// Package cache содержит процессный TTL-кэш агрегатов дашборда.
package cache

import (
	"sync"
	"time"

	"event-management-service/internal/model"
)

type entry struct {
	value     model.Dashboard
	expiresAt time.Time
}

// TTL это потокобезопасный кэш с ленивой проверкой срока жизни при чтении.
// Значения заменяются целиком, слияния нет.
type TTL struct {
	mu      sync.Mutex
	entries map[string]entry
	now     func() time.Time
}

// NewTTL создаёт пустой кэш. now может быть nil, тогда используется time.Now.
func NewTTL(now func() time.Time) *TTL {
	if now == nil {
		now = time.Now
	}
	return &TTL{
		entries: make(map[string]entry),
		now:     now,
	}
}

// Get возвращает значение по ключу, если оно есть и не истекло.
// Истёкшая запись удаляется.
func (c *TTL) Get(eventID string) (model.Dashboard, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[eventID]
	if !ok {
		return model.Dashboard{}, false
	}
	if !c.now().Before(e.expiresAt) {
		delete(c.entries, eventID)
		return model.Dashboard{}, false
	}
	return e.value, true
}

// Set сохраняет значение на ttl. Неположительный ttl удаляет запись.
func (c *TTL) Set(eventID string, d model.Dashboard, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ttl <= 0 {
		delete(c.entries, eventID)
		return
	}
	c.entries[eventID] = entry{value: d, expiresAt: c.now().Add(ttl)}
}

// Invalidate удаляет запись.
func (c *TTL) Invalidate(eventID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, eventID)
}
