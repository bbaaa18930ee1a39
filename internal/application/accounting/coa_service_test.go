package accounting

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gescom/backend/internal/domain/accounting"
	"github.com/gescom/backend/internal/domain/shared"
)

type memConfigRepo struct {
	configs []*accounting.AccountingConfig
}

func (r *memConfigRepo) FindByPOS(_ context.Context, enterpriseID, posID uuid.UUID) (*accounting.AccountingConfig, error) {
	for _, c := range r.configs {
		if c.EnterpriseID == enterpriseID && c.POSID != nil && *c.POSID == posID {
			return c, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *memConfigRepo) FindEnterpriseDefault(_ context.Context, enterpriseID uuid.UUID) (*accounting.AccountingConfig, error) {
	for _, c := range r.configs {
		if c.EnterpriseID == enterpriseID && c.POSID == nil {
			return c, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *memConfigRepo) Save(_ context.Context, config *accounting.AccountingConfig) error {
	for i, c := range r.configs {
		if c.ID == config.ID {
			r.configs[i] = config
			return nil
		}
	}
	r.configs = append(r.configs, config)
	return nil
}

type memAccountRepo struct {
	accounts map[uuid.UUID]*accounting.Account
}

func (r *memAccountRepo) FindByID(_ context.Context, id uuid.UUID) (*accounting.Account, error) {
	if account, ok := r.accounts[id]; ok {
		return account, nil
	}
	return nil, shared.ErrNotFound
}

func (r *memAccountRepo) FindByNumber(_ context.Context, enterpriseID uuid.UUID, number string) (*accounting.Account, error) {
	for _, account := range r.accounts {
		if account.EnterpriseID == enterpriseID && account.Number == number {
			return account, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *memAccountRepo) FindAllForEnterprise(_ context.Context, enterpriseID uuid.UUID, _ shared.Filter) ([]accounting.Account, error) {
	var out []accounting.Account
	for _, account := range r.accounts {
		if account.EnterpriseID == enterpriseID {
			out = append(out, *account)
		}
	}
	return out, nil
}

func (r *memAccountRepo) Save(_ context.Context, account *accounting.Account) error {
	r.accounts[account.ID] = account
	return nil
}

type memClassRepo struct {
	classes map[uuid.UUID]*accounting.AccountClass
}

func (r *memClassRepo) FindByID(_ context.Context, id uuid.UUID) (*accounting.AccountClass, error) {
	if class, ok := r.classes[id]; ok {
		return class, nil
	}
	return nil, shared.ErrNotFound
}

func (r *memClassRepo) FindByCode(_ context.Context, enterpriseID uuid.UUID, code string) (*accounting.AccountClass, error) {
	for _, class := range r.classes {
		if class.EnterpriseID == enterpriseID && class.Code == code {
			return class, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *memClassRepo) FindAllForEnterprise(_ context.Context, enterpriseID uuid.UUID, _ shared.Filter) ([]accounting.AccountClass, error) {
	var out []accounting.AccountClass
	for _, class := range r.classes {
		if class.EnterpriseID == enterpriseID {
			out = append(out, *class)
		}
	}
	return out, nil
}

func (r *memClassRepo) Save(_ context.Context, class *accounting.AccountClass) error {
	r.classes[class.ID] = class
	return nil
}

func newCOAFixture(t *testing.T) (uuid.UUID, *ChartOfAccountsService, *memConfigRepo, *memAccountRepo) {
	t.Helper()
	enterpriseID := uuid.New()
	configs := &memConfigRepo{}
	accounts := &memAccountRepo{accounts: make(map[uuid.UUID]*accounting.Account)}
	classes := &memClassRepo{classes: make(map[uuid.UUID]*accounting.AccountClass)}
	return enterpriseID, NewChartOfAccountsService(configs, accounts, classes), configs, accounts
}

func seedAccount(t *testing.T, accounts *memAccountRepo, enterpriseID uuid.UUID, number string) uuid.UUID {
	t.Helper()
	account, err := accounting.NewAccount(enterpriseID, uuid.New(), number, "Account "+number)
	require.NoError(t, err)
	require.NoError(t, accounts.Save(context.Background(), account))
	return account.ID
}

func TestChartOfAccountsServiceConfigureRoles(t *testing.T) {
	ctx := context.Background()

	t.Run("updates the enterprise fallback row instead of duplicating it", func(t *testing.T) {
		enterpriseID, service, configs, accounts := newCOAFixture(t)
		cashID := seedAccount(t, accounts, enterpriseID, "571000")
		salesID := seedAccount(t, accounts, enterpriseID, "701000")

		first, err := service.ConfigureRoles(ctx, enterpriseID, nil,
			map[accounting.ConfigRole]uuid.UUID{accounting.RoleCash: cashID})
		require.NoError(t, err)

		second, err := service.ConfigureRoles(ctx, enterpriseID, nil,
			map[accounting.ConfigRole]uuid.UUID{accounting.RoleSalesRevenue: salesID})
		require.NoError(t, err)

		require.Len(t, configs.configs, 1)
		assert.Equal(t, first.ID, second.ID)
		require.NotNil(t, second.AccountForRole(accounting.RoleCash))
		assert.Equal(t, cashID, *second.AccountForRole(accounting.RoleCash))
		require.NotNil(t, second.AccountForRole(accounting.RoleSalesRevenue))
		assert.Equal(t, salesID, *second.AccountForRole(accounting.RoleSalesRevenue))
	})

	t.Run("keeps POS rows separate from the fallback row", func(t *testing.T) {
		enterpriseID, service, configs, accounts := newCOAFixture(t)
		cashID := seedAccount(t, accounts, enterpriseID, "571000")
		posID := uuid.New()

		_, err := service.ConfigureRoles(ctx, enterpriseID, nil,
			map[accounting.ConfigRole]uuid.UUID{accounting.RoleCash: cashID})
		require.NoError(t, err)
		_, err = service.ConfigureRoles(ctx, enterpriseID, &posID,
			map[accounting.ConfigRole]uuid.UUID{accounting.RoleCash: cashID})
		require.NoError(t, err)

		assert.Len(t, configs.configs, 2)
	})

	t.Run("rejects an account from another enterprise", func(t *testing.T) {
		enterpriseID, service, _, accounts := newCOAFixture(t)
		foreignID := seedAccount(t, accounts, uuid.New(), "571000")

		_, err := service.ConfigureRoles(ctx, enterpriseID, nil,
			map[accounting.ConfigRole]uuid.UUID{accounting.RoleCash: foreignID})
		require.Error(t, err)
		assert.True(t, shared.IsDomainErrorWithCode(err, "INVALID_ACCOUNT"))
	})
}

func TestChartOfAccountsServiceResolveConfig(t *testing.T) {
	ctx := context.Background()

	t.Run("prefers the POS row over the fallback", func(t *testing.T) {
		enterpriseID, service, _, accounts := newCOAFixture(t)
		cashID := seedAccount(t, accounts, enterpriseID, "571000")
		bankID := seedAccount(t, accounts, enterpriseID, "512000")
		posID := uuid.New()

		_, err := service.ConfigureRoles(ctx, enterpriseID, nil,
			map[accounting.ConfigRole]uuid.UUID{accounting.RoleCash: cashID})
		require.NoError(t, err)
		_, err = service.ConfigureRoles(ctx, enterpriseID, &posID,
			map[accounting.ConfigRole]uuid.UUID{accounting.RoleCash: bankID})
		require.NoError(t, err)

		config, err := service.ResolveConfig(ctx, enterpriseID, posID)
		require.NoError(t, err)
		require.NotNil(t, config.POSID)
		assert.Equal(t, bankID, *config.AccountForRole(accounting.RoleCash))
	})

	t.Run("falls back to the enterprise row", func(t *testing.T) {
		enterpriseID, service, _, accounts := newCOAFixture(t)
		cashID := seedAccount(t, accounts, enterpriseID, "571000")

		_, err := service.ConfigureRoles(ctx, enterpriseID, nil,
			map[accounting.ConfigRole]uuid.UUID{accounting.RoleCash: cashID})
		require.NoError(t, err)

		config, err := service.ResolveConfig(ctx, enterpriseID, uuid.New())
		require.NoError(t, err)
		assert.Nil(t, config.POSID)
	})

	t.Run("reports a missing configuration", func(t *testing.T) {
		enterpriseID, service, _, _ := newCOAFixture(t)

		_, err := service.ResolveConfig(ctx, enterpriseID, uuid.New())
		require.Error(t, err)
		assert.True(t, shared.IsDomainErrorWithCode(err, shared.ErrCodeConfigurationMissing))
	})
}
