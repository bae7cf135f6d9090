package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Verduleria-api/internal/domain/money"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestRoundMoney(t *testing.T) {
	cases := []struct{ in, want string }{
		{"10.005", "10.01"},
		{"10.004", "10"},
		{"-2.345", "-2.35"},
		{"1000", "1000"},
	}
	for _, tc := range cases {
		assert.True(t, d(tc.want).Equal(money.RoundMoney(d(tc.in))), "RoundMoney(%s)", tc.in)
	}
}

func TestRoundQuantity(t *testing.T) {
	assert.True(t, d("1.235").Equal(money.RoundQuantity(d("1.2345"))))
	assert.True(t, d("2").Equal(money.RoundQuantity(d("2.0001"))))
}

func TestClampNonNegative(t *testing.T) {
	assert.True(t, decimal.Zero.Equal(money.ClampNonNegative(d("-0.01"))))
	assert.True(t, d("5").Equal(money.ClampNonNegative(d("5"))))
	assert.True(t, decimal.Zero.Equal(money.ClampNonNegative(decimal.Zero)))
}

func TestIsPositiveAndSum(t *testing.T) {
	assert.False(t, money.IsPositive(decimal.Zero))
	assert.False(t, money.IsPositive(d("-1")))
	assert.True(t, money.IsPositive(d("0.01")))

	assert.True(t, d("600.50").Equal(money.Sum(d("100"), d("500.25"), d("0.25"))))
	assert.True(t, decimal.Zero.Equal(money.Sum()))
}
