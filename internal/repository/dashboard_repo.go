package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"event-management-service/internal/model"
)

// DashboardRepo считает агрегаты мероприятия для дашборда.
// Запросы выполняются через GetQueryExecutor, поэтому внутри
// RunInReadOnlyTransaction все они видят один снимок.
type DashboardRepo struct {
	db *Postgres
}

// NewDashboardRepo создаёт новый экземпляр DashboardRepo.
func NewDashboardRepo(db *Postgres) *DashboardRepo {
	return &DashboardRepo{db: db}
}

// Dashboard возвращает агрегаты мероприятия. Если мероприятие не найдено,
// возвращает ErrEventNotFound.
func (r *DashboardRepo) Dashboard(ctx context.Context, eventID string) (model.Dashboard, error) {
	q := r.db.GetQueryExecutor(ctx)

	var exists bool
	if err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM events WHERE id = $1)`, eventID).Scan(&exists); err != nil {
		return model.Dashboard{}, fmt.Errorf("check event: %w", err)
	}
	if !exists {
		return model.Dashboard{}, ErrEventNotFound
	}

	d := model.Dashboard{
		EventID: eventID,
		Tasks:   model.TaskStats{ByStatus: make(map[string]int)},
	}

	row := q.QueryRow(ctx, `
SELECT (SELECT COUNT(*) FROM departments WHERE event_id = $1),
       (SELECT COUNT(*) FROM members WHERE event_id = $1),
       (SELECT COUNT(*) FROM risks WHERE event_id = $1),
       (SELECT COUNT(*) FROM milestones WHERE event_id = $1),
       (SELECT COALESCE(SUM(planned_amount), 0)::float8 FROM budget_items WHERE event_id = $1),
       (SELECT COALESCE(SUM(actual_amount), 0)::float8 FROM budget_items WHERE event_id = $1),
       (SELECT COUNT(*) FROM feedback WHERE event_id = $1),
       (SELECT COALESCE(AVG(rating), 0)::float8 FROM feedback WHERE event_id = $1)
`, eventID)
	if err := row.Scan(
		&d.Departments,
		&d.Members,
		&d.Risks,
		&d.Milestones,
		&d.Budget.Planned,
		&d.Budget.Actual,
		&d.Feedback.Count,
		&d.Feedback.AvgRating,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Dashboard{}, ErrEventNotFound
		}
		return model.Dashboard{}, fmt.Errorf("scan counters: %w", err)
	}

	rows, err := q.Query(ctx, `
SELECT status, COUNT(*)
FROM tasks
WHERE event_id = $1
GROUP BY status
ORDER BY status
`, eventID)
	if err != nil {
		return model.Dashboard{}, fmt.Errorf("query task stats: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return model.Dashboard{}, fmt.Errorf("scan task stats: %w", err)
		}
		d.Tasks.ByStatus[status] = count
		d.Tasks.Total += count
	}
	if err := rows.Err(); err != nil {
		return model.Dashboard{}, fmt.Errorf("rows error: %w", err)
	}

	return d, nil
}
