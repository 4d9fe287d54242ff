package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/piksel-lt/orderdesk/internal/apperrors"
	"github.com/piksel-lt/orderdesk/internal/core/domain"
	portsrepo "github.com/piksel-lt/orderdesk/internal/core/ports/repositories"
	"github.com/piksel-lt/orderdesk/internal/dateutil"
	"github.com/piksel-lt/orderdesk/internal/models"
)

type PgxReminderRepository struct {
	pool *pgxpool.Pool
}

// newPgxReminderRepository creates a new repository for reminder data.
func newPgxReminderRepository(pool *pgxpool.Pool) portsrepo.ReminderRepositoryFacade {
	return &PgxReminderRepository{pool: pool}
}

var _ portsrepo.ReminderRepositoryFacade = (*PgxReminderRepository)(nil)

func toDomainReminder(m models.Reminder) domain.Reminder {
	return domain.Reminder{
		ReminderID:  m.ReminderID,
		OrderID:     m.OrderID,
		Title:       m.Title,
		Description: m.Description,
		DueDate:     m.DueDate,
		IsCompleted: m.IsCompleted,
		CreatedAt:   m.CreatedAt,
	}
}

const reminderColumns = `reminder_id, order_id, title, description, due_date, is_completed, created_at`

func scanReminder(row pgx.Row) (models.Reminder, error) {
	var m models.Reminder
	err := row.Scan(
		&m.ReminderID,
		&m.OrderID,
		&m.Title,
		&m.Description,
		&m.DueDate,
		&m.IsCompleted,
		&m.CreatedAt,
	)
	return m, err
}

// ListRemindersByOrder retrieves all reminders for an order, soonest due first.
func (r *PgxReminderRepository) ListRemindersByOrder(ctx context.Context, orderID string) ([]domain.Reminder, error) {
	query := `SELECT ` + reminderColumns + ` FROM reminders WHERE order_id = $1 ORDER BY due_date ASC;`

	rows, err := r.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to query reminders for order %s: %w", orderID, err)
	}
	defer rows.Close()

	var reminders []domain.Reminder
	for rows.Next() {
		m, err := scanReminder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan reminder row: %w", err)
		}
		reminders = append(reminders, toDomainReminder(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating reminder rows: %w", err)
	}
	return reminders, nil
}

// FindReminderByID retrieves a reminder by its ID.
func (r *PgxReminderRepository) FindReminderByID(ctx context.Context, reminderID string) (*domain.Reminder, error) {
	query := `SELECT ` + reminderColumns + ` FROM reminders WHERE reminder_id = $1;`

	m, err := scanReminder(r.pool.QueryRow(ctx, query, reminderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find reminder by ID %s: %w", reminderID, err)
	}
	d := toDomainReminder(m)
	return &d, nil
}

// ListDueReminders retrieves incomplete reminders due on or before the
// horizon, overdue included, joined with their order's client name. The
// join is LEFT so a reminder survives its order lookup failing.
func (r *PgxReminderRepository) ListDueReminders(ctx context.Context, horizon time.Time) ([]domain.DueReminder, error) {
	query := `
		SELECT r.reminder_id, r.order_id, r.title, r.description, r.due_date, r.is_completed, r.created_at,
		       COALESCE(o.client, '')
		FROM reminders r
		LEFT JOIN orders o ON o.order_id = r.order_id
		WHERE r.is_completed = FALSE AND r.due_date <= $1
		ORDER BY r.due_date ASC;
	`
	rows, err := r.pool.Query(ctx, query, horizon.Format(dateutil.CanonicalLayout))
	if err != nil {
		return nil, fmt.Errorf("failed to query due reminders: %w", err)
	}
	defer rows.Close()

	var due []domain.DueReminder
	for rows.Next() {
		var m models.Reminder
		var client string
		err := rows.Scan(
			&m.ReminderID,
			&m.OrderID,
			&m.Title,
			&m.Description,
			&m.DueDate,
			&m.IsCompleted,
			&m.CreatedAt,
			&client,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan due reminder row: %w", err)
		}
		due = append(due, domain.DueReminder{Reminder: toDomainReminder(m), Client: client})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating due reminder rows: %w", err)
	}
	return due, nil
}

// SaveReminder inserts a new reminder.
func (r *PgxReminderRepository) SaveReminder(ctx context.Context, reminder domain.Reminder) error {
	query := `
		INSERT INTO reminders (` + reminderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.pool.Exec(ctx, query,
		reminder.ReminderID,
		reminder.OrderID,
		reminder.Title,
		reminder.Description,
		reminder.DueDate,
		reminder.IsCompleted,
		reminder.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return fmt.Errorf("%w: reminder with ID %s already exists", apperrors.ErrDuplicate, reminder.ReminderID)
			case "23503":
				return fmt.Errorf("%w: order %s", apperrors.ErrNotFound, reminder.OrderID)
			}
		}
		return fmt.Errorf("failed to save reminder %s: %w", reminder.ReminderID, err)
	}
	return nil
}

// UpdateReminder persists the full state of an existing reminder.
func (r *PgxReminderRepository) UpdateReminder(ctx context.Context, reminder domain.Reminder) error {
	query := `
		UPDATE reminders
		SET title = $2, description = $3, due_date = $4, is_completed = $5
		WHERE reminder_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query,
		reminder.ReminderID,
		reminder.Title,
		reminder.Description,
		reminder.DueDate,
		reminder.IsCompleted,
	)
	if err != nil {
		return fmt.Errorf("failed to update reminder %s: %w", reminder.ReminderID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteReminder removes a reminder.
func (r *PgxReminderRepository) DeleteReminder(ctx context.Context, reminderID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM reminders WHERE reminder_id = $1;`, reminderID)
	if err != nil {
		return fmt.Errorf("failed to delete reminder %s: %w", reminderID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
