package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"event-management-service/internal/model"
)

// DashboardRepository is a mock type for the DashboardRepository type
type DashboardRepository struct {
	mock.Mock
}

// Dashboard provides a mock function with given fields: ctx, eventID
func (_m *DashboardRepository) Dashboard(ctx context.Context, eventID string) (model.Dashboard, error) {
	ret := _m.Called(ctx, eventID)

	if rf, ok := ret.Get(0).(func(context.Context, string) (model.Dashboard, error)); ok {
		return rf(ctx, eventID)
	}
	return ret.Get(0).(model.Dashboard), ret.Error(1)
}

// DashboardCache is a mock type for the DashboardCache type
type DashboardCache struct {
	mock.Mock
}

// Get provides a mock function with given fields: eventID
func (_m *DashboardCache) Get(eventID string) (model.Dashboard, bool) {
	ret := _m.Called(eventID)
	return ret.Get(0).(model.Dashboard), ret.Bool(1)
}

// Set provides a mock function with given fields: eventID, d, ttl
func (_m *DashboardCache) Set(eventID string, d model.Dashboard, ttl time.Duration) {
	_m.Called(eventID, d, ttl)
}

// Invalidate provides a mock function with given fields: eventID
func (_m *DashboardCache) Invalidate(eventID string) {
	_m.Called(eventID)
}

// TransactionManager is a mock type for the TransactionManager type
type TransactionManager struct {
	mock.Mock
}

// RunInReadOnlyTransaction provides a mock function with given fields: ctx, fn
func (_m *TransactionManager) RunInReadOnlyTransaction(ctx context.Context, fn func(context.Context) error) error {
	ret := _m.Called(ctx, fn)

	if rf, ok := ret.Get(0).(func(context.Context, func(context.Context) error) error); ok {
		return rf(ctx, fn)
	}
	return ret.Error(0)
}
