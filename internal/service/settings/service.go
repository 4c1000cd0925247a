package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	businessRepo "github.com/m04kA/BRB-AvailabilityService/internal/infra/storage/business"
	"github.com/m04kA/BRB-AvailabilityService/internal/service/settings/models"
)

// Service сервис для работы с настройками вычисления слотов
type Service struct {
	businessRepo BusinessRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(businessRepo BusinessRepository, logger Logger) *Service {
	return &Service{
		businessRepo: businessRepo,
		logger:       logger,
	}
}

// Get возвращает настройки бизнеса
// Доступно только менеджерам бизнеса
func (s *Service) Get(ctx context.Context, businessID uuid.UUID, userID int64) (*models.SettingsResponse, error) {
	s.logger.Info("Get: fetching settings for business=%s by user=%d", businessID, userID)

	business, err := s.businessRepo.GetByID(ctx, businessID)
	if err != nil {
		if errors.Is(err, businessRepo.ErrBusinessNotFound) {
			s.logger.Warn("Get: business id=%s not found", businessID)
			return nil, ErrBusinessNotFound
		}
		s.logger.Error("Get: repository error for business id=%s: %v", businessID, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	if !business.IsManager(userID) {
		s.logger.Warn("Get: user=%d is not a manager of business=%s", userID, businessID)
		return nil, ErrAccessDenied
	}

	return models.FromDomainBusiness(business), nil
}

// Update обновляет настройки бизнеса
// Доступно только менеджерам бизнеса
// Поддерживает частичное обновление - обновляются только указанные поля
func (s *Service) Update(ctx context.Context, businessID uuid.UUID, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error) {
	s.logger.Info("Update: updating settings for business=%s by user=%d", businessID, req.UserID)

	// 1. Получаем бизнес
	business, err := s.businessRepo.GetByID(ctx, businessID)
	if err != nil {
		if errors.Is(err, businessRepo.ErrBusinessNotFound) {
			s.logger.Warn("Update: business id=%s not found", businessID)
			return nil, ErrBusinessNotFound
		}
		s.logger.Error("Update: repository error for business id=%s: %v", businessID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	// 2. Проверяем права доступа
	if !business.IsManager(req.UserID) {
		s.logger.Warn("Update: user=%d is not a manager of business=%s", req.UserID, businessID)
		return nil, ErrAccessDenied
	}

	// 3. Применяем обновления и валидируем результат целиком
	req.ApplyToBusiness(business)

	if err := validateSettings(business); err != nil {
		s.logger.Warn("Update: validation failed for business=%s: %v", businessID, err)
		return nil, err
	}

	// 4. Сохраняем настройки
	if err := s.businessRepo.UpdateSettings(ctx, business); err != nil {
		if errors.Is(err, businessRepo.ErrBusinessNotFound) {
			s.logger.Warn("Update: business id=%s not found during update", businessID)
			return nil, ErrBusinessNotFound
		}
		s.logger.Error("Update: repository error for business id=%s: %v", businessID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated settings for business=%s", businessID)
	return models.FromDomainBusiness(business), nil
}
