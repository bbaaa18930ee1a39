package partner

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/gescom/backend/internal/domain/partner"
	"github.com/gescom/backend/internal/domain/shared"
	"github.com/gescom/backend/internal/domain/shared/valueobject"
)

// EnterpriseService manages enterprise registration
type EnterpriseService struct {
	enterprises partner.EnterpriseRepository
	logger      *zap.Logger
}

// NewEnterpriseService creates a new EnterpriseService
func NewEnterpriseService(enterprises partner.EnterpriseRepository, logger *zap.Logger) *EnterpriseService {
	return &EnterpriseService{enterprises: enterprises, logger: logger}
}

// Create registers an enterprise
func (s *EnterpriseService) Create(ctx context.Context, req CreateEnterpriseRequest) (*EnterpriseResponse, error) {
	enterprise, err := partner.NewEnterprise(req.Name, valueobject.Currency(req.Currency))
	if err != nil {
		return nil, err
	}
	if err := s.enterprises.Save(ctx, enterprise); err != nil {
		return nil, err
	}

	s.logger.Info("enterprise created", zap.String("enterprise_id", enterprise.ID.String()))

	response := ToEnterpriseResponse(enterprise)
	return &response, nil
}

// Get returns an enterprise by ID
func (s *EnterpriseService) Get(ctx context.Context, id uuid.UUID) (*EnterpriseResponse, error) {
	enterprise, err := s.enterprises.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToEnterpriseResponse(enterprise)
	return &response, nil
}

// List returns all enterprises
func (s *EnterpriseService) List(ctx context.Context, filter shared.Filter) ([]EnterpriseResponse, error) {
	enterprises, err := s.enterprises.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]EnterpriseResponse, 0, len(enterprises))
	for i := range enterprises {
		responses = append(responses, ToEnterpriseResponse(&enterprises[i]))
	}
	return responses, nil
}

// Rename changes an enterprise name
func (s *EnterpriseService) Rename(ctx context.Context, id uuid.UUID, req RenameEnterpriseRequest) (*EnterpriseResponse, error) {
	enterprise, err := s.enterprises.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := enterprise.Rename(req.Name); err != nil {
		return nil, err
	}
	if err := s.enterprises.Save(ctx, enterprise); err != nil {
		return nil, err
	}

	response := ToEnterpriseResponse(enterprise)
	return &response, nil
}
