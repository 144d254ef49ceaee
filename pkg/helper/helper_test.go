package helper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateReference(t *testing.T) {
	now := time.UnixMilli(1700000000123)

	assert.Equal(t, "REF-1700000000123", GenerateReference(now))
	assert.Equal(t, GenerateReference(now), GenerateReference(now))
	assert.NotEqual(t, GenerateReference(now), GenerateReference(now.Add(time.Millisecond)))
}

func TestFirstNonEmpty(t *testing.T) {
	assert.Equal(t, "a", FirstNonEmpty("", "a", "b"))
	assert.Equal(t, "b", FirstNonEmpty("", "", "b"))
	assert.Equal(t, "", FirstNonEmpty("", ""))
	assert.Equal(t, "", FirstNonEmpty())
}

func TestIsSupportedCurrency(t *testing.T) {
	for _, code := range []string{"USD", "EUR", "GBP", "KES", "ZAR"} {
		assert.True(t, IsSupportedCurrency(code), code)
	}

	assert.False(t, IsSupportedCurrency("JPY"))
	assert.False(t, IsSupportedCurrency("usd"))
	assert.False(t, IsSupportedCurrency(""))
}

func TestParseAmount(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		d, err := ParseAmount("100.00")
		require.NoError(t, err)
		assert.Equal(t, "100", d.String())
	})

	t.Run("success: zero is accepted", func(t *testing.T) {
		for _, in := range []string{"0", "0.00"} {
			d, err := ParseAmount(in)
			require.NoError(t, err)
			assert.True(t, d.IsZero())
			assert.True(t, IsValidAmount(in))
		}
	})

	for _, in := range []string{"", "abc", "-5.00", "-0.01"} {
		t.Run("error: "+in, func(t *testing.T) {
			_, err := ParseAmount(in)
			assert.Error(t, err)
			assert.False(t, IsValidAmount(in))
		})
	}
}
