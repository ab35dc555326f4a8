package policy

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	policyRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/policy"
	venueClient "github.com/m04kA/SMC-CourtBookingService/internal/integrations/venueservice"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/policy/models"
)

// Service сервис политик бронирования площадок
// Действующая политика = глобальная политика из конфигурации + переопределения площадки
type Service struct {
	policyRepo  PolicyRepository
	venueClient VenueServiceClient
	global      domain.Policy
	logger      Logger
}

// NewService создает новый экземпляр сервиса политик
func NewService(
	policyRepo PolicyRepository,
	venueClient VenueServiceClient,
	global domain.Policy,
	logger Logger,
) *Service {
	return &Service{
		policyRepo:  policyRepo,
		venueClient: venueClient,
		global:      global,
		logger:      logger,
	}
}

// Global возвращает глобальную политику
func (s *Service) Global() domain.Policy {
	return s.global
}

// GetEffective возвращает действующую политику площадки
// Используется use cases бронирования
func (s *Service) GetEffective(ctx context.Context, venueID int64) (domain.Policy, error) {
	policy, _, err := s.effective(ctx, venueID)
	return policy, err
}

func (s *Service) effective(ctx context.Context, venueID int64) (domain.Policy, bool, error) {
	override, err := s.policyRepo.GetByVenue(ctx, venueID)
	if err != nil {
		if errors.Is(err, policyRepo.ErrPolicyNotFound) {
			return s.global, false, nil
		}
		s.logger.Error("GetEffective: repository error for venue=%d: %v", venueID, err)
		return domain.Policy{}, false, fmt.Errorf("%w: GetEffective - repository error: %v", ErrInternal, err)
	}

	if override.IsEmpty() {
		return s.global, false, nil
	}

	merged := override.Apply(s.global)

	// Глобальная политика могла измениться после сохранения переопределений
	if err := merged.Validate(); err != nil {
		s.logger.Warn("GetEffective: override for venue=%d is inconsistent with global policy, using global: %v",
			venueID, err)
		return s.global, false, nil
	}

	return merged, true, nil
}

// GetVenuePolicy получает действующую политику площадки
// Публичный метод - доступен всем
func (s *Service) GetVenuePolicy(ctx context.Context, venueID int64) (*models.PolicyResponse, error) {
	s.logger.Info("GetVenuePolicy: fetching policy for venue=%d", venueID)

	if _, err := s.getVenue(ctx, venueID); err != nil {
		return nil, err
	}

	policy, customized, err := s.effective(ctx, venueID)
	if err != nil {
		return nil, err
	}

	return models.FromDomainPolicy(venueID, policy, customized), nil
}

// Update сохраняет переопределения политики площадки
// Доступно только менеджерам площадки
func (s *Service) Update(ctx context.Context, venueID int64, req *models.UpdatePolicyRequest) (*models.PolicyResponse, error) {
	s.logger.Info("Update: updating policy for venue=%d by user=%d", venueID, req.UserID)

	// 1. Проверяем права доступа
	if err := s.checkManagerAccess(ctx, venueID, req.UserID); err != nil {
		return nil, err
	}

	// 2. Проверяем итоговую политику
	override := req.ToDomainOverride(venueID)
	merged := override.Apply(s.global)
	if err := merged.Validate(); err != nil {
		s.logger.Warn("Update: invalid policy for venue=%d: %v", venueID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 3. Пустое переопределение равносильно сбросу
	if override.IsEmpty() {
		if err := s.deleteOverride(ctx, venueID); err != nil {
			return nil, err
		}
		return models.FromDomainPolicy(venueID, s.global, false), nil
	}

	// 4. Сохраняем
	if err := s.policyRepo.Upsert(ctx, override); err != nil {
		s.logger.Error("Update: repository error for venue=%d: %v", venueID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated policy for venue=%d", venueID)
	return models.FromDomainPolicy(venueID, merged, true), nil
}

// Reset удаляет переопределения, площадка возвращается к глобальной политике
// Доступно только менеджерам площадки
func (s *Service) Reset(ctx context.Context, venueID int64, userID int64) error {
	s.logger.Info("Reset: resetting policy for venue=%d by user=%d", venueID, userID)

	if err := s.checkManagerAccess(ctx, venueID, userID); err != nil {
		return err
	}

	if err := s.deleteOverride(ctx, venueID); err != nil {
		return err
	}

	s.logger.Info("Reset: venue=%d uses global policy", venueID)
	return nil
}

func (s *Service) deleteOverride(ctx context.Context, venueID int64) error {
	err := s.policyRepo.DeleteByVenue(ctx, venueID)
	if err != nil && !errors.Is(err, policyRepo.ErrPolicyNotFound) {
		s.logger.Error("deleteOverride: repository error for venue=%d: %v", venueID, err)
		return fmt.Errorf("%w: deleteOverride - repository error: %v", ErrInternal, err)
	}
	return nil
}

func (s *Service) getVenue(ctx context.Context, venueID int64) (*domain.Venue, error) {
	venue, err := s.venueClient.GetVenue(ctx, venueID)
	if err != nil {
		if errors.Is(err, venueClient.ErrVenueNotFound) {
			s.logger.Warn("getVenue: venue id=%d not found", venueID)
			return nil, ErrVenueNotFound
		}
		s.logger.Error("getVenue: failed to get venue id=%d: %v", venueID, err)
		return nil, fmt.Errorf("%w: failed to get venue: %v", ErrInternal, err)
	}
	return venue, nil
}

// checkManagerAccess проверяет, что пользователь является менеджером площадки
func (s *Service) checkManagerAccess(ctx context.Context, venueID int64, userID int64) error {
	venue, err := s.getVenue(ctx, venueID)
	if err != nil {
		return err
	}

	if !venue.IsManager(userID) {
		s.logger.Warn("checkManagerAccess: user=%d is not a manager of venue=%d", userID, venueID)
		return ErrAccessDenied
	}

	return nil
}
