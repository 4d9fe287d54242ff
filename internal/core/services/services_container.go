package services

import (
	portsrepo "github.com/piksel-lt/orderdesk/internal/core/ports/repositories"
	portssvc "github.com/piksel-lt/orderdesk/internal/core/ports/services"
	"github.com/piksel-lt/orderdesk/internal/platform/cache"
	"github.com/piksel-lt/orderdesk/internal/platform/config"
	"github.com/piksel-lt/orderdesk/internal/platform/storage"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, cacheStore cache.Store, objectStore storage.ObjectStore) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Order = NewOrderService(repos.OrderRepo, cacheStore, cfg.CacheTTL)
	container.Comment = NewCommentService(repos.CommentRepo, repos.OrderRepo)
	container.Reminder = NewReminderService(repos.ReminderRepo, repos.OrderRepo)
	container.Attachment = NewAttachmentService(repos.AttachmentRepo, repos.OrderRepo, objectStore)
	container.Settings = NewSettingsService(repos.SettingsRepo)
	container.Reporting = NewReportingService(repos.OrderRepo)

	return container
}
