package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"event-management-service/internal/model"
	"event-management-service/internal/service"
)

// ExportService is a mock type for the ExportService type
type ExportService struct {
	mock.Mock
}

// Items provides a mock function with given fields:
func (_m *ExportService) Items() []model.ExportItemInfo {
	ret := _m.Called()

	var r0 []model.ExportItemInfo
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.ExportItemInfo)
	}
	return r0
}

// ExportSelected provides a mock function with given fields: ctx, req, open
func (_m *ExportService) ExportSelected(ctx context.Context, req model.ExportRequest, open service.OpenFunc) error {
	ret := _m.Called(ctx, req, open)

	if rf, ok := ret.Get(0).(func(context.Context, model.ExportRequest, service.OpenFunc) error); ok {
		return rf(ctx, req, open)
	}
	return ret.Error(0)
}

// DashboardService is a mock type for the DashboardService type
type DashboardService struct {
	mock.Mock
}

// Get provides a mock function with given fields: ctx, eventID
func (_m *DashboardService) Get(ctx context.Context, eventID string) (model.Dashboard, error) {
	ret := _m.Called(ctx, eventID)
	return ret.Get(0).(model.Dashboard), ret.Error(1)
}

// Refresh provides a mock function with given fields: ctx, eventID
func (_m *DashboardService) Refresh(ctx context.Context, eventID string) (model.Dashboard, error) {
	ret := _m.Called(ctx, eventID)
	return ret.Get(0).(model.Dashboard), ret.Error(1)
}
