package partner

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWarehouse(t *testing.T) {
	enterpriseID := uuid.New()

	t.Run("creates warehouse with valid input", func(t *testing.T) {
		warehouse, err := NewWarehouse(enterpriseID, "WH001", "Main Warehouse", WarehouseTypeMain)
		require.NoError(t, err)
		require.NotNil(t, warehouse)

		assert.NotEqual(t, uuid.Nil, warehouse.ID)
		assert.Equal(t, enterpriseID, warehouse.EnterpriseID)
		assert.Equal(t, "WH001", warehouse.Code)
		assert.Equal(t, "Main Warehouse", warehouse.Name)
		assert.Equal(t, WarehouseTypeMain, warehouse.Type)
		assert.Equal(t, WarehouseStatusActive, warehouse.Status)
		assert.False(t, warehouse.IsDefault)

		events := warehouse.GetDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypeWarehouseCreated, events[0].EventType())
	})

	t.Run("converts code to uppercase", func(t *testing.T) {
		warehouse, err := NewWarehouse(enterpriseID, "wh001", "Test Warehouse", WarehouseTypePOS)
		require.NoError(t, err)
		assert.Equal(t, "WH001", warehouse.Code)
	})

	t.Run("fails with empty code", func(t *testing.T) {
		warehouse, err := NewWarehouse(enterpriseID, "", "Test Warehouse", WarehouseTypeMain)
		assert.Nil(t, warehouse)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "cannot be empty")
	})

	t.Run("fails with empty name", func(t *testing.T) {
		warehouse, err := NewWarehouse(enterpriseID, "WH001", "", WarehouseTypeMain)
		assert.Nil(t, warehouse)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "cannot be empty")
	})

	t.Run("fails with invalid type", func(t *testing.T) {
		warehouse, err := NewWarehouse(enterpriseID, "WH001", "Test Warehouse", WarehouseType("invalid"))
		assert.Nil(t, warehouse)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid warehouse type")
	})

	t.Run("fails with invalid characters in code", func(t *testing.T) {
		warehouse, err := NewWarehouse(enterpriseID, "WH@001", "Test Warehouse", WarehouseTypeMain)
		assert.Nil(t, warehouse)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "only contain letters, numbers, underscores, and hyphens")
	})
}

func TestNewMainWarehouse(t *testing.T) {
	warehouse, err := NewMainWarehouse(uuid.New(), "MAIN", "Central Warehouse")
	require.NoError(t, err)
	assert.Equal(t, WarehouseTypeMain, warehouse.Type)
	assert.True(t, warehouse.IsMain())
	assert.False(t, warehouse.IsPOS())
}

func TestNewPOSWarehouse(t *testing.T) {
	warehouse, err := NewPOSWarehouse(uuid.New(), "SHOP1", "Boutique Floor Stock")
	require.NoError(t, err)
	assert.Equal(t, WarehouseTypePOS, warehouse.Type)
	assert.True(t, warehouse.IsPOS())
}

func TestWarehouseEnableDisable(t *testing.T) {
	enterpriseID := uuid.New()

	t.Run("disable then enable", func(t *testing.T) {
		warehouse, err := NewMainWarehouse(enterpriseID, "WH001", "Main")
		require.NoError(t, err)

		require.NoError(t, warehouse.Disable())
		assert.Equal(t, WarehouseStatusInactive, warehouse.Status)
		assert.False(t, warehouse.IsActive())

		require.NoError(t, warehouse.Enable())
		assert.True(t, warehouse.IsActive())
	})

	t.Run("disable fails when already inactive", func(t *testing.T) {
		warehouse, _ := NewMainWarehouse(enterpriseID, "WH002", "Main")
		require.NoError(t, warehouse.Disable())
		assert.Error(t, warehouse.Disable())
	})

	t.Run("enable fails when already active", func(t *testing.T) {
		warehouse, _ := NewMainWarehouse(enterpriseID, "WH003", "Main")
		assert.Error(t, warehouse.Enable())
	})

	t.Run("cannot disable default warehouse", func(t *testing.T) {
		warehouse, _ := NewMainWarehouse(enterpriseID, "WH004", "Main")
		warehouse.SetDefault(true)
		err := warehouse.Disable()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "default")
	})
}

func TestWarehouseSetDefault(t *testing.T) {
	warehouse, err := NewMainWarehouse(uuid.New(), "WH001", "Main")
	require.NoError(t, err)
	warehouse.ClearDomainEvents()

	warehouse.SetDefault(true)
	assert.True(t, warehouse.IsDefault)

	events := warehouse.GetDomainEvents()
	require.Len(t, events, 1)
	assert.Equal(t, EventTypeWarehouseSetAsDefault, events[0].EventType())
}

func TestWarehouseUpdate(t *testing.T) {
	warehouse, err := NewMainWarehouse(uuid.New(), "WH001", "Main")
	require.NoError(t, err)
	oldVersion := warehouse.GetVersion()

	require.NoError(t, warehouse.Update("Renamed", "12 Market St", "back entrance"))
	assert.Equal(t, "Renamed", warehouse.Name)
	assert.Equal(t, "12 Market St", warehouse.Address)
	assert.Equal(t, oldVersion+1, warehouse.GetVersion())

	assert.Error(t, warehouse.Update("", "", ""))
}

func TestNewPOSWarehouseConfig(t *testing.T) {
	enterpriseID := uuid.New()
	posID := uuid.New()
	warehouseID := uuid.New()

	t.Run("creates mapping", func(t *testing.T) {
		config, err := NewPOSWarehouseConfig(enterpriseID, posID, warehouseID)
		require.NoError(t, err)
		assert.Equal(t, posID, config.POSID)
		assert.Equal(t, warehouseID, config.WarehouseID)
	})

	t.Run("fails with nil pos", func(t *testing.T) {
		_, err := NewPOSWarehouseConfig(enterpriseID, uuid.Nil, warehouseID)
		assert.Error(t, err)
	})

	t.Run("fails with nil warehouse", func(t *testing.T) {
		_, err := NewPOSWarehouseConfig(enterpriseID, posID, uuid.Nil)
		assert.Error(t, err)
	})

	t.Run("reassign", func(t *testing.T) {
		config, _ := NewPOSWarehouseConfig(enterpriseID, posID, warehouseID)
		other := uuid.New()
		require.NoError(t, config.Reassign(other))
		assert.Equal(t, other, config.WarehouseID)
		assert.Error(t, config.Reassign(uuid.Nil))
	})
}

func TestNewEnterprise(t *testing.T) {
	t.Run("creates enterprise with defaults", func(t *testing.T) {
		enterprise, err := NewEnterprise("Acme Trading", "")
		require.NoError(t, err)
		assert.Equal(t, "Acme Trading", enterprise.Name)
		assert.Equal(t, "USD", string(enterprise.Currency))
	})

	t.Run("fails with empty name", func(t *testing.T) {
		_, err := NewEnterprise("", "USD")
		assert.Error(t, err)
	})

	t.Run("fails with bad currency", func(t *testing.T) {
		_, err := NewEnterprise("Acme", "DOLLARS")
		assert.Error(t, err)
	})
}

func TestNewPOS(t *testing.T) {
	enterpriseID := uuid.New()

	t.Run("creates pos", func(t *testing.T) {
		pos, err := NewPOS(enterpriseID, "Downtown Boutique", POSModuleBoutique)
		require.NoError(t, err)
		assert.Equal(t, enterpriseID, pos.EnterpriseID)
		assert.Equal(t, POSModuleBoutique, pos.Module)
	})

	t.Run("fails with invalid module", func(t *testing.T) {
		_, err := NewPOS(enterpriseID, "Shop", POSModule("bakery"))
		assert.Error(t, err)
	})
}
