package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"event-management-service/internal/model"
)

// EventDataRepo читает данные мероприятия по доменам в виде записей поле -> значение.
// Денежные суммы приводятся к float8, чтобы pgx отдавал float64, а не pgtype.Numeric.
type EventDataRepo struct {
	db *Postgres
}

// NewEventDataRepo создаёт новый экземпляр EventDataRepo c переданным подключением к PostgreSQL.
func NewEventDataRepo(db *Postgres) *EventDataRepo {
	return &EventDataRepo{db: db}
}

// ListDepartments возвращает баны (отделы) мероприятия с руководителем и числом участников.
func (r *EventDataRepo) ListDepartments(ctx context.Context, eventID string) ([]model.Record, error) {
	return r.listRecords(ctx, "departments", `
SELECT d.id,
       d.name,
       d.description,
       l.full_name AS leader_name,
       (SELECT COUNT(*) FROM members m WHERE m.department_id = d.id) AS member_count,
       d.created_at
FROM departments d
LEFT JOIN members l ON l.id = d.leader_id
WHERE d.event_id = $1
ORDER BY d.name, d.id
`, eventID)
}

// ListMembers возвращает участников мероприятия вместе с названием их бана.
func (r *EventDataRepo) ListMembers(ctx context.Context, eventID string) ([]model.Record, error) {
	return r.listRecords(ctx, "members", `
SELECT m.id,
       m.full_name,
       m.email,
       m.phone,
       m.role,
       d.name AS department_name,
       m.joined_at
FROM members m
LEFT JOIN departments d ON d.id = m.department_id
WHERE m.event_id = $1
ORDER BY d.name NULLS LAST, m.full_name, m.id
`, eventID)
}

// ListAgenda возвращает пункты программы в хронологическом порядке.
func (r *EventDataRepo) ListAgenda(ctx context.Context, eventID string) ([]model.Record, error) {
	return r.listRecords(ctx, "agenda", `
SELECT a.id,
       a.start_at,
       a.end_at,
       a.content,
       o.full_name AS owner_name
FROM agenda_items a
LEFT JOIN members o ON o.id = a.owner_id
WHERE a.event_id = $1
ORDER BY a.start_at, a.id
`, eventID)
}

func (r *EventDataRepo) ListRisks(ctx context.Context, eventID string) ([]model.Record, error) {
	return r.listRecords(ctx, "risks", `
SELECT rk.id,
       rk.name,
       rk.impact,
       rk.likelihood,
       rk.mitigation,
       rk.status,
       d.name AS department_name
FROM risks rk
LEFT JOIN departments d ON d.id = rk.department_id
WHERE rk.event_id = $1
ORDER BY rk.created_at, rk.id
`, eventID)
}

func (r *EventDataRepo) ListMilestones(ctx context.Context, eventID string) ([]model.Record, error) {
	return r.listRecords(ctx, "milestones", `
SELECT id,
       name,
       description,
       target_date,
       status
FROM milestones
WHERE event_id = $1
ORDER BY target_date, id
`, eventID)
}

// ListTasks возвращает задачи мероприятия с баном и исполнителем.
func (r *EventDataRepo) ListTasks(ctx context.Context, eventID string) ([]model.Record, error) {
	return r.listRecords(ctx, "tasks", `
SELECT t.id,
       t.title,
       t.priority,
       t.status,
       t.start_date,
       t.due_date,
       d.name AS department_name,
       a.full_name AS assignee_name
FROM tasks t
LEFT JOIN departments d ON d.id = t.department_id
LEFT JOIN members a ON a.id = t.assignee_id
WHERE t.event_id = $1
ORDER BY t.due_date NULLS LAST, t.id
`, eventID)
}

// ListBudgetItems возвращает статьи бюджета.
func (r *EventDataRepo) ListBudgetItems(ctx context.Context, eventID string) ([]model.Record, error) {
	return r.listRecords(ctx, "budget", `
SELECT b.id,
       b.category,
       b.item_name,
       b.quantity,
       b.unit_price::float8 AS unit_price,
       b.planned_amount::float8 AS planned_amount,
       b.actual_amount::float8 AS actual_amount,
       b.status,
       d.name AS department_name
FROM budget_items b
LEFT JOIN departments d ON d.id = b.department_id
WHERE b.event_id = $1
ORDER BY b.category, b.id
`, eventID)
}

func (r *EventDataRepo) ListFeedback(ctx context.Context, eventID string) ([]model.Record, error) {
	return r.listRecords(ctx, "feedback", `
SELECT id,
       author_name,
       rating,
       comment,
       submitted_at
FROM feedback
WHERE event_id = $1
ORDER BY submitted_at, id
`, eventID)
}

// listRecords выполняет запрос и собирает строки в записи. Пустой результат
// даёт пустой срез, а не ошибку.
func (r *EventDataRepo) listRecords(ctx context.Context, domain, sql, eventID string) ([]model.Record, error) {
	q := r.db.GetQueryExecutor(ctx)

	rows, err := q.Query(ctx, sql, eventID)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", domain, err)
	}

	maps, err := pgx.CollectRows(rows, pgx.RowToMap)
	if err != nil {
		return nil, fmt.Errorf("collect %s: %w", domain, err)
	}

	res := make([]model.Record, 0, len(maps))
	for _, m := range maps {
		res = append(res, model.Record(m))
	}
	return res, nil
}
