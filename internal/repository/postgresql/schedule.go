package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/alexialg05/tasty-operations-manager/internal/domain/employee"
	"github.com/alexialg05/tasty-operations-manager/internal/domain/schedule"
	"github.com/alexialg05/tasty-operations-manager/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type scheduleRepositoryImpl struct {
	db *database.DB
}

func NewScheduleRepository(db *database.DB) schedule.ScheduleRepository {
	return &scheduleRepositoryImpl{db: db}
}

// pgx scans timestamptz into the server's local zone; timestamps leave this
// repository in UTC so day bucketing and responses behave the same as the
// memory driver.
func normalizeEntry(e *schedule.Entry) {
	e.Interval.Start = e.Interval.Start.UTC()
	e.Interval.End = e.Interval.End.UTC()
	e.CreatedAt = e.CreatedAt.UTC()
}

// Create implements schedule.ScheduleRepository. The insert and the owner's
// updated_at refresh run in one transaction.
func (r *scheduleRepositoryImpl) Create(ctx context.Context, entry schedule.Entry) (schedule.Entry, error) {
	var created schedule.Entry

	err := WithTransaction(ctx, r.db, func(txCtx context.Context) error {
		q := GetQuerier(txCtx, r.db)

		query := `
			INSERT INTO schedules (employee_id, start_time, end_time, notes)
			VALUES ($1, $2, $3, $4)
			RETURNING id, employee_id, start_time, end_time, notes, created_at
		`

		err := q.QueryRow(txCtx, query,
			entry.EmployeeID, entry.Interval.Start, entry.Interval.End, entry.Notes,
		).Scan(
			&created.ID, &created.EmployeeID, &created.Interval.Start,
			&created.Interval.End, &created.Notes, &created.CreatedAt,
		)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
				return employee.ErrEmployeeNotFound
			}
			return err
		}

		_, err = q.Exec(txCtx, `UPDATE employees SET updated_at = NOW() WHERE id = $1`, entry.EmployeeID)
		return err
	})
	if err != nil {
		return schedule.Entry{}, err
	}

	normalizeEntry(&created)
	return created, nil
}

// Delete implements schedule.ScheduleRepository.
func (r *scheduleRepositoryImpl) Delete(ctx context.Context, employeeID string, scheduleID string) error {
	return WithTransaction(ctx, r.db, func(txCtx context.Context) error {
		q := GetQuerier(txCtx, r.db)

		var ownerID string
		err := q.QueryRow(txCtx, `SELECT id FROM employees WHERE id = $1`, employeeID).Scan(&ownerID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return employee.ErrEmployeeNotFound
			}
			return err
		}

		tag, err := q.Exec(txCtx,
			`DELETE FROM schedules WHERE id = $1 AND employee_id = $2`,
			scheduleID, employeeID,
		)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return schedule.ErrScheduleNotFound
		}

		_, err = q.Exec(txCtx, `UPDATE employees SET updated_at = NOW() WHERE id = $1`, employeeID)
		return err
	})
}

// GetByEmployeeID implements schedule.ScheduleRepository.
func (r *scheduleRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string) ([]schedule.Entry, error) {
	q := GetQuerier(ctx, r.db)

	var ownerID string
	err := q.QueryRow(ctx, `SELECT id FROM employees WHERE id = $1`, employeeID).Scan(&ownerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, err
	}

	query := `
		SELECT id, employee_id, start_time, end_time, notes, created_at
		FROM schedules
		WHERE employee_id = $1
		ORDER BY created_at, id
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []schedule.Entry
	for rows.Next() {
		var e schedule.Entry
		err := rows.Scan(
			&e.ID, &e.EmployeeID, &e.Interval.Start,
			&e.Interval.End, &e.Notes, &e.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		normalizeEntry(&e)
		entries = append(entries, e)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

// GetStartingBetween implements schedule.ScheduleRepository.
func (r *scheduleRepositoryImpl) GetStartingBetween(ctx context.Context, from, to time.Time) ([]schedule.DayEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT s.id, s.employee_id, s.start_time, s.end_time, s.notes, s.created_at,
			e.name, e.position
		FROM schedules s
		JOIN employees e ON e.id = s.employee_id
		WHERE s.start_time >= $1 AND s.start_time < $2
		ORDER BY e.created_at, e.id, s.created_at, s.id
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []schedule.DayEntry
	for rows.Next() {
		var e schedule.DayEntry
		err := rows.Scan(
			&e.ID, &e.EmployeeID, &e.Interval.Start, &e.Interval.End,
			&e.Notes, &e.CreatedAt, &e.EmployeeName, &e.Position,
		)
		if err != nil {
			return nil, err
		}
		normalizeEntry(&e.Entry)
		entries = append(entries, e)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
