package services

import (
	"context"
	"fmt"
	"time"

	"github.com/piksel-lt/orderdesk/internal/apperrors"
	"github.com/piksel-lt/orderdesk/internal/core/domain"
	portsrepo "github.com/piksel-lt/orderdesk/internal/core/ports/repositories"
	portssvc "github.com/piksel-lt/orderdesk/internal/core/ports/services"
)

type settingsService struct {
	BaseService
	settingsRepo portsrepo.SettingsRepository
}

// NewSettingsService creates the settings service.
func NewSettingsService(settingsRepo portsrepo.SettingsRepository) portssvc.SettingsSvc {
	return &settingsService{settingsRepo: settingsRepo}
}

var _ portssvc.SettingsSvc = (*settingsService)(nil)

// GetSetting retrieves a setting by key.
func (s *settingsService) GetSetting(ctx context.Context, key string) (*domain.Setting, error) {
	if key == "" {
		return nil, fmt.Errorf("%w: setting key is required", apperrors.ErrValidation)
	}
	return s.settingsRepo.FindSetting(ctx, key)
}

// SaveSetting creates or replaces a setting value.
func (s *settingsService) SaveSetting(ctx context.Context, key string, value string) (*domain.Setting, error) {
	if key == "" {
		return nil, fmt.Errorf("%w: setting key is required", apperrors.ErrValidation)
	}
	setting := domain.Setting{Key: key, Value: value, UpdatedAt: time.Now()}
	if err := s.settingsRepo.UpsertSetting(ctx, setting); err != nil {
		return nil, fmt.Errorf("failed to save setting in service: %w", err)
	}
	return &setting, nil
}
