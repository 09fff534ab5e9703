package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"event-management-service/internal/model"
	"event-management-service/internal/repository"
)

// TransactionManager описывает интерфейс для управления транзакциями (чтобы можно было мокать).
type TransactionManager interface {
	RunInReadOnlyTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// DashboardRepository описывает контракт репозитория агрегатов.
type DashboardRepository interface {
	Dashboard(ctx context.Context, eventID string) (model.Dashboard, error)
}

// DashboardCache описывает кэш агрегатов с TTL. Владелец кэша main.
type DashboardCache interface {
	Get(eventID string) (model.Dashboard, bool)
	Set(eventID string, d model.Dashboard, ttl time.Duration)
	Invalidate(eventID string)
}

// DashboardService отдаёт агрегаты мероприятия, кэшируя их на ttl.
type DashboardService struct {
	repo      DashboardRepository
	txManager TransactionManager
	cache     DashboardCache
	ttl       time.Duration
	log       *slog.Logger
	now       func() time.Time
}

// NewDashboardService создаёт сервис дашборда.
func NewDashboardService(
	repo DashboardRepository,
	txManager TransactionManager,
	cache DashboardCache,
	ttl time.Duration,
	log *slog.Logger,
) *DashboardService {
	return &DashboardService{
		repo:      repo,
		txManager: txManager,
		cache:     cache,
		ttl:       ttl,
		log:       log,
		now:       time.Now,
	}
}

// Get возвращает агрегаты из кэша или считает их заново.
func (s *DashboardService) Get(ctx context.Context, eventID string) (model.Dashboard, error) {
	if strings.TrimSpace(eventID) == "" {
		return model.Dashboard{}, ErrBadRequest(MsgEventIDRequired)
	}
	if d, ok := s.cache.Get(eventID); ok {
		return d, nil
	}
	return s.load(ctx, eventID)
}

// Refresh сбрасывает кэш мероприятия и пересчитывает агрегаты.
func (s *DashboardService) Refresh(ctx context.Context, eventID string) (model.Dashboard, error) {
	if strings.TrimSpace(eventID) == "" {
		return model.Dashboard{}, ErrBadRequest(MsgEventIDRequired)
	}
	s.cache.Invalidate(eventID)
	return s.load(ctx, eventID)
}

func (s *DashboardService) load(ctx context.Context, eventID string) (model.Dashboard, error) {
	var d model.Dashboard
	err := s.txManager.RunInReadOnlyTransaction(ctx, func(ctx context.Context) error {
		var errTx error
		d, errTx = s.repo.Dashboard(ctx, eventID)
		return errTx
	})
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return model.Dashboard{}, ErrNotFound("event not found")
		}
		return model.Dashboard{}, ErrInternal("failed to load dashboard", err)
	}

	d.GeneratedAt = s.now().UTC()
	s.cache.Set(eventID, d, s.ttl)
	s.log.Debug("dashboard computed", slog.String("event_id", eventID))
	return d, nil
}
