package accounting

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/gescom/backend/internal/domain/accounting"
	"github.com/gescom/backend/internal/domain/shared"
)

// ChartOfAccountsService resolves and maintains the role-to-account
// configuration a POS posts against. Lookup falls back from the POS row
// to the enterprise-level row; a missing configuration is surfaced as a
// configuration error, never defaulted.
type ChartOfAccountsService struct {
	configs  accounting.AccountingConfigRepository
	accounts accounting.AccountRepository
	classes  accounting.AccountClassRepository
}

// NewChartOfAccountsService creates a new ChartOfAccountsService
func NewChartOfAccountsService(
	configs accounting.AccountingConfigRepository,
	accounts accounting.AccountRepository,
	classes accounting.AccountClassRepository,
) *ChartOfAccountsService {
	return &ChartOfAccountsService{
		configs:  configs,
		accounts: accounts,
		classes:  classes,
	}
}

// ResolveConfig returns the accounting configuration for a POS, falling
// back to the enterprise default row when the POS has none
func (s *ChartOfAccountsService) ResolveConfig(ctx context.Context, enterpriseID, posID uuid.UUID) (*accounting.AccountingConfig, error) {
	config, err := s.configs.FindByPOS(ctx, enterpriseID, posID)
	if err != nil && err != shared.ErrNotFound {
		return nil, err
	}
	if config != nil {
		return config, nil
	}

	config, err = s.configs.FindEnterpriseDefault(ctx, enterpriseID)
	if err != nil {
		if err == shared.ErrNotFound {
			return nil, shared.NewDomainError(shared.ErrCodeConfigurationMissing,
				"No accounting configuration found for this point of sale")
		}
		return nil, err
	}

	return config, nil
}

// RequireRoles verifies that every listed role has an account mapped.
// The error lists all missing roles at once.
func (s *ChartOfAccountsService) RequireRoles(config *accounting.AccountingConfig, roles []accounting.ConfigRole) error {
	missing := config.MissingRoles(roles)
	if len(missing) == 0 {
		return nil
	}

	names := make([]string, 0, len(missing))
	for _, role := range missing {
		names = append(names, string(role))
	}
	return shared.NewDomainError(shared.ErrCodeConfigurationIncomplete,
		fmt.Sprintf("Accounting configuration is missing roles: %s", strings.Join(names, ", ")))
}

// ConfigureRoles upserts role mappings on the configuration for a POS.
// A nil posID targets the enterprise-level fallback row. Every account
// must exist within the enterprise.
func (s *ChartOfAccountsService) ConfigureRoles(ctx context.Context, enterpriseID uuid.UUID, posID *uuid.UUID, roles map[accounting.ConfigRole]uuid.UUID) (*accounting.AccountingConfig, error) {
	config, err := s.findConfigRow(ctx, enterpriseID, posID)
	if err != nil && err != shared.ErrNotFound {
		return nil, err
	}
	if config == nil {
		config = accounting.NewAccountingConfig(enterpriseID, posID)
	}

	for role, accountID := range roles {
		account, err := s.accounts.FindByID(ctx, accountID)
		if err != nil {
			if err == shared.ErrNotFound {
				return nil, shared.NewDomainError("INVALID_ACCOUNT",
					fmt.Sprintf("Account %s for role %s does not exist", accountID, role))
			}
			return nil, err
		}
		if account.EnterpriseID != enterpriseID {
			return nil, shared.NewDomainError("INVALID_ACCOUNT",
				fmt.Sprintf("Account %s does not belong to this enterprise", accountID))
		}
		if err := config.SetRole(role, accountID); err != nil {
			return nil, err
		}
	}

	if err := s.configs.Save(ctx, config); err != nil {
		return nil, err
	}

	return config, nil
}

func (s *ChartOfAccountsService) findConfigRow(ctx context.Context, enterpriseID uuid.UUID, posID *uuid.UUID) (*accounting.AccountingConfig, error) {
	if posID == nil {
		return s.configs.FindEnterpriseDefault(ctx, enterpriseID)
	}
	return s.configs.FindByPOS(ctx, enterpriseID, *posID)
}

// CreateAccountClass creates an account class within the enterprise
func (s *ChartOfAccountsService) CreateAccountClass(ctx context.Context, enterpriseID uuid.UUID, req CreateAccountClassRequest) (*accounting.AccountClass, error) {
	existing, err := s.classes.FindByCode(ctx, enterpriseID, req.Code)
	if err != nil && err != shared.ErrNotFound {
		return nil, err
	}
	if existing != nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS",
			fmt.Sprintf("Account class with code %s already exists", req.Code))
	}

	class, err := accounting.NewAccountClass(enterpriseID, req.Code, req.Name,
		accounting.AccountNature(req.Nature), accounting.AccountDocument(req.Document))
	if err != nil {
		return nil, err
	}

	if err := s.classes.Save(ctx, class); err != nil {
		return nil, err
	}

	return class, nil
}

// CreateAccount creates an account under an existing class
func (s *ChartOfAccountsService) CreateAccount(ctx context.Context, enterpriseID uuid.UUID, req CreateAccountRequest) (*accounting.Account, error) {
	class, err := s.classes.FindByID(ctx, req.ClassID)
	if err != nil {
		if err == shared.ErrNotFound {
			return nil, shared.NewDomainError("INVALID_CLASS", "Account class does not exist")
		}
		return nil, err
	}
	if class.EnterpriseID != enterpriseID {
		return nil, shared.NewDomainError("INVALID_CLASS", "Account class does not belong to this enterprise")
	}

	existing, err := s.accounts.FindByNumber(ctx, enterpriseID, req.Number)
	if err != nil && err != shared.ErrNotFound {
		return nil, err
	}
	if existing != nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS",
			fmt.Sprintf("Account with number %s already exists", req.Number))
	}

	account, err := accounting.NewAccount(enterpriseID, req.ClassID, req.Number, req.Name)
	if err != nil {
		return nil, err
	}

	if err := s.accounts.Save(ctx, account); err != nil {
		return nil, err
	}

	return account, nil
}

// ListAccounts returns the enterprise's accounts
func (s *ChartOfAccountsService) ListAccounts(ctx context.Context, enterpriseID uuid.UUID, filter shared.Filter) ([]accounting.Account, error) {
	return s.accounts.FindAllForEnterprise(ctx, enterpriseID, filter)
}

// ListAccountClasses returns the enterprise's account classes
func (s *ChartOfAccountsService) ListAccountClasses(ctx context.Context, enterpriseID uuid.UUID, filter shared.Filter) ([]accounting.AccountClass, error) {
	return s.classes.FindAllForEnterprise(ctx, enterpriseID, filter)
}
