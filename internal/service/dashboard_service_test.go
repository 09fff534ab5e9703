package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"event-management-service/internal/model"
	"event-management-service/internal/repository"
	"event-management-service/internal/service"
	"event-management-service/internal/service/mocks"
)

func passThroughTx(tm *mocks.TransactionManager) {
	tm.On("RunInReadOnlyTransaction", mock.Anything, mock.Anything).
		Return(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})
}

func TestDashboardService_Get(t *testing.T) {
	computed := model.Dashboard{EventID: "ev1", Members: 12, Risks: 3}

	tests := []struct {
		name       string
		eventID    string
		setupMocks func(repo *mocks.DashboardRepository, tm *mocks.TransactionManager, c *mocks.DashboardCache)
		wantErr    int
		want       int
	}{
		{
			name:    "Success: cache hit",
			eventID: "ev1",
			setupMocks: func(repo *mocks.DashboardRepository, tm *mocks.TransactionManager, c *mocks.DashboardCache) {
				c.On("Get", "ev1").Return(model.Dashboard{EventID: "ev1", Members: 7}, true)
			},
			want: 7,
		},
		{
			name:    "Success: cache miss loads and stores",
			eventID: "ev1",
			setupMocks: func(repo *mocks.DashboardRepository, tm *mocks.TransactionManager, c *mocks.DashboardCache) {
				c.On("Get", "ev1").Return(model.Dashboard{}, false)
				passThroughTx(tm)
				repo.On("Dashboard", mock.Anything, "ev1").Return(computed, nil)
				c.On("Set", "ev1", mock.MatchedBy(func(d model.Dashboard) bool {
					return d.Members == 12 && !d.GeneratedAt.IsZero()
				}), time.Minute).Return()
			},
			want: 12,
		},
		{
			name:    "Fail: event not found",
			eventID: "missing",
			setupMocks: func(repo *mocks.DashboardRepository, tm *mocks.TransactionManager, c *mocks.DashboardCache) {
				c.On("Get", "missing").Return(model.Dashboard{}, false)
				passThroughTx(tm)
				repo.On("Dashboard", mock.Anything, "missing").Return(model.Dashboard{}, repository.ErrEventNotFound)
			},
			wantErr: http.StatusNotFound,
		},
		{
			name:    "Fail: db error",
			eventID: "ev1",
			setupMocks: func(repo *mocks.DashboardRepository, tm *mocks.TransactionManager, c *mocks.DashboardCache) {
				c.On("Get", "ev1").Return(model.Dashboard{}, false)
				tm.On("RunInReadOnlyTransaction", mock.Anything, mock.Anything).Return(errors.New("begin tx: boom"))
			},
			wantErr: http.StatusInternalServerError,
		},
		{
			name:       "Fail: empty event id",
			eventID:    "",
			setupMocks: func(repo *mocks.DashboardRepository, tm *mocks.TransactionManager, c *mocks.DashboardCache) {},
			wantErr:    http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mocks.DashboardRepository)
			tm := new(mocks.TransactionManager)
			c := new(mocks.DashboardCache)
			tt.setupMocks(repo, tm, c)

			svc := service.NewDashboardService(repo, tm, c, time.Minute, discardLogger)
			got, err := svc.Get(context.Background(), tt.eventID)

			if tt.wantErr != 0 {
				var appErr *service.AppError
				require.ErrorAs(t, err, &appErr)
				assert.Equal(t, tt.wantErr, appErr.Status)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got.Members)
			}

			repo.AssertExpectations(t)
			tm.AssertExpectations(t)
			c.AssertExpectations(t)
		})
	}
}

func TestDashboardService_Refresh(t *testing.T) {
	repo := new(mocks.DashboardRepository)
	tm := new(mocks.TransactionManager)
	c := new(mocks.DashboardCache)

	c.On("Invalidate", "ev1").Return().Once()
	passThroughTx(tm)
	repo.On("Dashboard", mock.Anything, "ev1").Return(model.Dashboard{EventID: "ev1", Milestones: 2}, nil).Once()
	c.On("Set", "ev1", mock.AnythingOfType("model.Dashboard"), time.Minute).Return().Once()

	svc := service.NewDashboardService(repo, tm, c, time.Minute, discardLogger)
	got, err := svc.Refresh(context.Background(), "ev1")

	require.NoError(t, err)
	assert.Equal(t, 2, got.Milestones)
	c.AssertNotCalled(t, "Get", "ev1")
	repo.AssertExpectations(t)
	c.AssertExpectations(t)
}
