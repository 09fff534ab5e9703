package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"event-management-service/internal/model"
)

// EventDataRepository is a mock type for the EventDataRepository type
type EventDataRepository struct {
	mock.Mock
}

func (_m *EventDataRepository) records(method string, ctx context.Context, eventID string) ([]model.Record, error) {
	ret := _m.MethodCalled(method, ctx, eventID)

	var r0 []model.Record
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) ([]model.Record, error)); ok {
		return rf(ctx, eventID)
	}
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.Record)
	}
	r1 = ret.Error(1)
	return r0, r1
}

// ListDepartments provides a mock function with given fields: ctx, eventID
func (_m *EventDataRepository) ListDepartments(ctx context.Context, eventID string) ([]model.Record, error) {
	return _m.records("ListDepartments", ctx, eventID)
}

// ListMembers provides a mock function with given fields: ctx, eventID
func (_m *EventDataRepository) ListMembers(ctx context.Context, eventID string) ([]model.Record, error) {
	return _m.records("ListMembers", ctx, eventID)
}

// ListAgenda provides a mock function with given fields: ctx, eventID
func (_m *EventDataRepository) ListAgenda(ctx context.Context, eventID string) ([]model.Record, error) {
	return _m.records("ListAgenda", ctx, eventID)
}

// ListRisks provides a mock function with given fields: ctx, eventID
func (_m *EventDataRepository) ListRisks(ctx context.Context, eventID string) ([]model.Record, error) {
	return _m.records("ListRisks", ctx, eventID)
}

// ListMilestones provides a mock function with given fields: ctx, eventID
func (_m *EventDataRepository) ListMilestones(ctx context.Context, eventID string) ([]model.Record, error) {
	return _m.records("ListMilestones", ctx, eventID)
}

// ListTasks provides a mock function with given fields: ctx, eventID
func (_m *EventDataRepository) ListTasks(ctx context.Context, eventID string) ([]model.Record, error) {
	return _m.records("ListTasks", ctx, eventID)
}

// ListBudgetItems provides a mock function with given fields: ctx, eventID
func (_m *EventDataRepository) ListBudgetItems(ctx context.Context, eventID string) ([]model.Record, error) {
	return _m.records("ListBudgetItems", ctx, eventID)
}

// ListFeedback provides a mock function with given fields: ctx, eventID
func (_m *EventDataRepository) ListFeedback(ctx context.Context, eventID string) ([]model.Record, error) {
	return _m.records("ListFeedback", ctx, eventID)
}
