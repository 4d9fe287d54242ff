package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/piksel-lt/orderdesk/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		OrderRepo:      newPgxOrderRepository(dbPool),
		CommentRepo:    newPgxCommentRepository(dbPool),
		ReminderRepo:   newPgxReminderRepository(dbPool),
		AttachmentRepo: newPgxAttachmentRepository(dbPool),
		SettingsRepo:   newPgxSettingsRepository(dbPool),
	}
}
