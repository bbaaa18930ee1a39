package valueobject

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("creates money with valid amount and currency", func(t *testing.T) {
		m, err := NewMoney(decimal.NewFromFloat(100.50), USD)
		require.NoError(t, err)
		assert.Equal(t, USD, m.Currency())
		assert.True(t, m.Amount().Equal(decimal.NewFromFloat(100.50)))
	})

	t.Run("returns error for empty currency", func(t *testing.T) {
		_, err := NewMoney(decimal.NewFromFloat(100), "")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "currency cannot be empty")
	})
}

func TestNewMoneyFromString(t *testing.T) {
	t.Run("valid string", func(t *testing.T) {
		m, err := NewMoneyFromString("123.45", USD)
		require.NoError(t, err)
		assert.True(t, m.Amount().Equal(decimal.NewFromFloat(123.45)))
	})

	t.Run("invalid string", func(t *testing.T) {
		_, err := NewMoneyFromString("not-a-number", USD)
		assert.Error(t, err)
	})
}

func TestNewMoneyUSD(t *testing.T) {
	m := NewMoneyUSD(decimal.NewFromFloat(50.00))
	assert.Equal(t, USD, m.Currency())
	assert.True(t, m.Amount().Equal(decimal.NewFromFloat(50.00)))
}

func TestZeroUSD(t *testing.T) {
	m := ZeroUSD()
	assert.True(t, m.IsZero())
	assert.Equal(t, USD, m.Currency())
}

func TestMoneyIsPositiveNegativeZero(t *testing.T) {
	positive := NewMoneyUSDFromFloat(100)
	negative := NewMoneyUSDFromFloat(-100)
	zero := ZeroUSD()

	assert.True(t, positive.IsPositive())
	assert.False(t, positive.IsNegative())
	assert.False(t, positive.IsZero())

	assert.False(t, negative.IsPositive())
	assert.True(t, negative.IsNegative())
	assert.False(t, negative.IsZero())

	assert.False(t, zero.IsPositive())
	assert.False(t, zero.IsNegative())
	assert.True(t, zero.IsZero())
}

func TestMoneyAdd(t *testing.T) {
	t.Run("adds same currency", func(t *testing.T) {
		m1 := NewMoneyUSDFromFloat(100.50)
		m2 := NewMoneyUSDFromFloat(50.25)
		result, err := m1.Add(m2)
		require.NoError(t, err)
		assert.True(t, result.Amount().Equal(decimal.NewFromFloat(150.75)))
	})

	t.Run("fails for different currencies", func(t *testing.T) {
		m1, _ := NewMoneyFromFloat(100, USD)
		m2, _ := NewMoneyFromFloat(50, EUR)
		_, err := m1.Add(m2)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "different currencies")
	})
}

func TestMoneySubtract(t *testing.T) {
	t.Run("subtracts same currency", func(t *testing.T) {
		m1 := NewMoneyUSDFromFloat(100)
		m2 := NewMoneyUSDFromFloat(40.50)
		result, err := m1.Subtract(m2)
		require.NoError(t, err)
		assert.True(t, result.Amount().Equal(decimal.NewFromFloat(59.50)))
	})

	t.Run("fails for different currencies", func(t *testing.T) {
		m1, _ := NewMoneyFromFloat(100, USD)
		m2, _ := NewMoneyFromFloat(50, GBP)
		_, err := m1.Subtract(m2)
		assert.Error(t, err)
	})
}

func TestMoneyMultiply(t *testing.T) {
	m := NewMoneyUSDFromFloat(10.50)
	result := m.MultiplyByInt(3)
	assert.True(t, result.Amount().Equal(decimal.NewFromFloat(31.50)))
}

func TestMoneyDivide(t *testing.T) {
	t.Run("divides by non-zero", func(t *testing.T) {
		m := NewMoneyUSDFromFloat(100)
		result, err := m.Divide(decimal.NewFromInt(4))
		require.NoError(t, err)
		assert.True(t, result.Amount().Equal(decimal.NewFromInt(25)))
	})

	t.Run("fails on divide by zero", func(t *testing.T) {
		m := NewMoneyUSDFromFloat(100)
		_, err := m.Divide(decimal.Zero)
		assert.Error(t, err)
	})
}

func TestMoneyNegateAbs(t *testing.T) {
	m := NewMoneyUSDFromFloat(42.42)
	neg := m.Negate()
	assert.True(t, neg.IsNegative())
	assert.True(t, neg.Abs().Equals(m))
}

func TestMoneyRound(t *testing.T) {
	m := NewMoneyUSDFromFloat(10.256)
	rounded := m.Round(2)
	assert.True(t, rounded.Amount().Equal(decimal.NewFromFloat(10.26)))
}

func TestMoneyComparisons(t *testing.T) {
	small := NewMoneyUSDFromFloat(10)
	big := NewMoneyUSDFromFloat(20)

	lt, err := small.LessThan(big)
	require.NoError(t, err)
	assert.True(t, lt)

	gt, err := big.GreaterThan(small)
	require.NoError(t, err)
	assert.True(t, gt)

	gte, err := big.GreaterThanOrEqual(big)
	require.NoError(t, err)
	assert.True(t, gte)

	t.Run("fails across currencies", func(t *testing.T) {
		other, _ := NewMoneyFromFloat(10, EUR)
		_, err := small.LessThan(other)
		assert.Error(t, err)
	})
}

func TestMoneyEquals(t *testing.T) {
	m1 := NewMoneyUSDFromFloat(99.99)
	m2, _ := NewMoneyFromString("99.99", USD)
	m3, _ := NewMoneyFromFloat(99.99, EUR)

	assert.True(t, m1.Equals(m2))
	assert.False(t, m1.Equals(m3))
}

func TestMoneyString(t *testing.T) {
	m := NewMoneyUSDFromFloat(1234.5)
	assert.Equal(t, "1234.50 USD", m.String())
	assert.Equal(t, "1234.500", m.StringFixed(3))
}

func TestMoneyJSON(t *testing.T) {
	original := NewMoneyUSDFromFloat(55.25)
	data, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded Money
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, original.Equals(decoded))
}

func TestMoneyScan(t *testing.T) {
	t.Run("scans string value", func(t *testing.T) {
		var m Money
		require.NoError(t, m.Scan("123.45"))
		assert.True(t, m.Amount().Equal(decimal.NewFromFloat(123.45)))
		assert.Equal(t, DefaultCurrency, m.Currency())
	})

	t.Run("scans nil as zero", func(t *testing.T) {
		var m Money
		require.NoError(t, m.Scan(nil))
		assert.True(t, m.IsZero())
	})

	t.Run("rejects unsupported type", func(t *testing.T) {
		var m Money
		assert.Error(t, m.Scan(3.14))
	})
}

func TestMoneyCalculatePercentage(t *testing.T) {
	m := NewMoneyUSDFromFloat(200)
	pct := m.CalculatePercentage(decimal.NewFromInt(15))
	assert.True(t, pct.Amount().Equal(decimal.NewFromInt(30)))

	discounted := m.ApplyDiscount(decimal.NewFromInt(10))
	assert.True(t, discounted.Amount().Equal(decimal.NewFromInt(180)))
}
