package service

import (
	"context"

	"event-management-service/internal/model"
)

// DataSource читает записи одного домена для мероприятия.
// Если данных нет, возвращает пустой срез, а не ошибку.
type DataSource interface {
	Fetch(ctx context.Context, eventID string) ([]model.Record, error)
}

// DataSourceFunc позволяет использовать функцию как DataSource.
type DataSourceFunc func(ctx context.Context, eventID string) ([]model.Record, error)

// Fetch вызывает f.
func (f DataSourceFunc) Fetch(ctx context.Context, eventID string) ([]model.Record, error) {
	return f(ctx, eventID)
}

// EventDataRepository описывает контракт репозитория доменных данных мероприятия.
type EventDataRepository interface {
	ListDepartments(ctx context.Context, eventID string) ([]model.Record, error)
	ListMembers(ctx context.Context, eventID string) ([]model.Record, error)
	ListAgenda(ctx context.Context, eventID string) ([]model.Record, error)
	ListRisks(ctx context.Context, eventID string) ([]model.Record, error)
	ListMilestones(ctx context.Context, eventID string) ([]model.Record, error)
	ListTasks(ctx context.Context, eventID string) ([]model.Record, error)
	ListBudgetItems(ctx context.Context, eventID string) ([]model.Record, error)
	ListFeedback(ctx context.Context, eventID string) ([]model.Record, error)
}

// NewDataSources связывает каждую категорию экспорта с методом репозитория.
func NewDataSources(repo EventDataRepository) map[model.ExportItemID]DataSource {
	return map[model.ExportItemID]DataSource{
		model.ItemTeam:       DataSourceFunc(repo.ListDepartments),
		model.ItemMembers:    DataSourceFunc(repo.ListMembers),
		model.ItemAgenda:     DataSourceFunc(repo.ListAgenda),
		model.ItemRisks:      DataSourceFunc(repo.ListRisks),
		model.ItemMilestones: DataSourceFunc(repo.ListMilestones),
		model.ItemTasks:      DataSourceFunc(repo.ListTasks),
		model.ItemBudget:     DataSourceFunc(repo.ListBudgetItems),
		model.ItemFeedback:   DataSourceFunc(repo.ListFeedback),
	}
}
