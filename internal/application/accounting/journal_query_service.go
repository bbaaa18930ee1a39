package accounting

import (
	"context"

	"github.com/google/uuid"

	"github.com/gescom/backend/internal/domain/accounting"
	"github.com/gescom/backend/internal/domain/shared"
)

// JournalQueryService serves read access to persisted journals
type JournalQueryService struct {
	journals accounting.JournalRepository
}

// NewJournalQueryService creates a new JournalQueryService
func NewJournalQueryService(journals accounting.JournalRepository) *JournalQueryService {
	return &JournalQueryService{journals: journals}
}

// GetByID returns one journal with its entries
func (s *JournalQueryService) GetByID(ctx context.Context, enterpriseID, id uuid.UUID) (*JournalResponse, error) {
	journal, err := s.journals.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if journal.EnterpriseID != enterpriseID {
		return nil, shared.ErrNotFound
	}
	response := ToJournalResponse(journal)
	return &response, nil
}

// GetByReference returns the journal for an idempotence key
func (s *JournalQueryService) GetByReference(ctx context.Context, enterpriseID uuid.UUID, journalType accounting.JournalType, reference string) (*JournalResponse, error) {
	journal, err := s.journals.FindByTypeAndReference(ctx, enterpriseID, journalType, reference)
	if err != nil {
		return nil, err
	}
	response := ToJournalResponse(journal)
	return &response, nil
}

// List returns journals for an enterprise, filtered by type or
// reference through the filter's Filters map
func (s *JournalQueryService) List(ctx context.Context, enterpriseID uuid.UUID, filter shared.Filter) ([]JournalResponse, error) {
	journals, err := s.journals.FindAllForEnterprise(ctx, enterpriseID, filter)
	if err != nil {
		return nil, err
	}
	responses := make([]JournalResponse, 0, len(journals))
	for i := range journals {
		responses = append(responses, ToJournalResponse(&journals[i]))
	}
	return responses, nil
}
