package promorules

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/BRB-AvailabilityService/internal/domain"
	businessRepo "github.com/m04kA/BRB-AvailabilityService/internal/infra/storage/business"
	"github.com/m04kA/BRB-AvailabilityService/internal/service/promorules/models"
)

// Service сервис для работы с промо-правилами
type Service struct {
	promoRepo    PromoRepository
	businessRepo BusinessRepository
	txManager    TransactionManager
	logger       Logger
}

// NewService создает новый экземпляр сервиса промо-правил
func NewService(
	promoRepo PromoRepository,
	businessRepo BusinessRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		promoRepo:    promoRepo,
		businessRepo: businessRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// List возвращает промо-правила бизнеса в порядке приоритета
// Доступно только менеджерам бизнеса
func (s *Service) List(ctx context.Context, businessID uuid.UUID, userID int64) (*models.RulesResponse, error) {
	s.logger.Info("List: fetching promo rules for business=%s by user=%d", businessID, userID)

	if err := s.checkAccess(ctx, businessID, userID); err != nil {
		return nil, err
	}

	rules, err := s.promoRepo.ListByBusiness(ctx, businessID)
	if err != nil {
		s.logger.Error("List: repository error for business=%s: %v", businessID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainRules(rules, nil), nil
}

// Replace полностью заменяет набор правил бизнеса.
// Замена идет в сериализуемой транзакции: конкурентные записи не должны
// увидеть наполовину замененный набор.
func (s *Service) Replace(ctx context.Context, businessID uuid.UUID, req *models.ReplaceRulesRequest) (*models.RulesResponse, error) {
	s.logger.Info("Replace: replacing %d promo rules for business=%s by user=%d",
		len(req.Rules), businessID, req.UserID)

	// 1. Проверяем права доступа
	if err := s.checkAccess(ctx, businessID, req.UserID); err != nil {
		return nil, err
	}

	// 2. Валидируем набор целиком
	warnings, err := validateRules(req.Rules)
	if err != nil {
		s.logger.Warn("Replace: validation failed for business=%s: %v", businessID, err)
		return nil, err
	}
	for _, warning := range warnings {
		s.logger.Warn("Replace: business=%s: %s", businessID, warning)
	}

	// 3. Конвертируем в domain модели, позиция = порядок в запросе
	domainRules := make([]*domain.PromoRule, len(req.Rules))
	for i, rule := range req.Rules {
		domainRules[i] = rule.ToDomainRule(businessID, int64(i))
	}

	// 4. Заменяем набор в транзакции
	err = s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		return s.promoRepo.ReplaceForBusiness(txCtx, businessID, domainRules)
	})
	if err != nil {
		s.logger.Error("Replace: failed to replace rules for business=%s: %v", businessID, err)
		return nil, fmt.Errorf("%w: Replace - repository error: %v", ErrInternal, err)
	}

	// 5. Читаем сохраненный набор с присвоенными ID
	saved, err := s.promoRepo.ListByBusiness(ctx, businessID)
	if err != nil {
		s.logger.Error("Replace: failed to read back rules for business=%s: %v", businessID, err)
		return nil, fmt.Errorf("%w: Replace - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Replace: successfully replaced rules for business=%s, %d rules, %d warnings",
		businessID, len(saved), len(warnings))

	return models.FromDomainRules(saved, warnings), nil
}

// checkAccess проверяет, что пользователь является менеджером бизнеса
func (s *Service) checkAccess(ctx context.Context, businessID uuid.UUID, userID int64) error {
	business, err := s.businessRepo.GetByID(ctx, businessID)
	if err != nil {
		if errors.Is(err, businessRepo.ErrBusinessNotFound) {
			s.logger.Warn("checkAccess: business id=%s not found", businessID)
			return ErrBusinessNotFound
		}
		s.logger.Error("checkAccess: repository error for business id=%s: %v", businessID, err)
		return fmt.Errorf("%w: checkAccess - repository error: %v", ErrInternal, err)
	}

	if !business.IsManager(userID) {
		s.logger.Warn("checkAccess: user=%d is not a manager of business=%s", userID, businessID)
		return ErrAccessDenied
	}

	return nil
}
