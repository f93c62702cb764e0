package money_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pennyledger/internal/money"
)

func TestParse(t *testing.T) {
	a, err := money.Parse("-25.50")
	require.NoError(t, err)
	assert.True(t, a.IsNegative())
	assert.Equal(t, "-25.5", a.String())
	assert.Equal(t, "-25.50", a.StringFixed(2))

	_, err = money.Parse("not a number")
	assert.Error(t, err)
}

func TestMarshalJSONBareNumber(t *testing.T) {
	raw, err := json.Marshal(money.MustParse("-25.50"))
	require.NoError(t, err)
	assert.Equal(t, "-25.5", string(raw))
}

func TestUnmarshalJSON(t *testing.T) {
	type doc struct {
		Amount money.Amount `json:"amount"`
	}

	// Numbers and numeric strings both decode.
	for _, raw := range []string{`{"amount": -25.5}`, `{"amount": "-25.5"}`} {
		var d doc
		require.NoError(t, json.Unmarshal([]byte(raw), &d))
		assert.True(t, d.Amount.Equal(money.MustParse("-25.5")), raw)
	}

	var d doc
	assert.Error(t, json.Unmarshal([]byte(`{"amount": "abc"}`), &d))
}

func TestArithmetic(t *testing.T) {
	a := money.MustParse("2500")
	b := money.MustParse("-25.50")

	assert.Equal(t, "2474.5", a.Add(b).String())
	assert.Equal(t, "25.5", b.Abs().String())
	assert.Equal(t, "25.5", b.Neg().String())
	assert.Equal(t, 1, a.Cmp(b))
	assert.True(t, money.Zero.IsZero())
}
