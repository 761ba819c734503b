package utils

import (
	"testing"

	"github.com/owna-app/owna_backend/internal/apperrors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNairaToKobo(t *testing.T) {
	kobo, err := NairaToKobo(decimal.NewFromInt(400000))
	require.NoError(t, err)
	assert.Equal(t, int64(40000000), kobo)

	kobo, err = NairaToKobo(decimal.RequireFromString("1250.50"))
	require.NoError(t, err)
	assert.Equal(t, int64(125050), kobo)
}

func TestNairaToKobo_RejectsSubKoboPrecision(t *testing.T) {
	_, err := NairaToKobo(decimal.RequireFromString("10.005"))
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestKoboToNaira(t *testing.T) {
	assert.True(t, decimal.RequireFromString("400000").Equal(KoboToNaira(40000000)))
	assert.True(t, decimal.RequireFromString("1250.5").Equal(KoboToNaira(125050)))
}

func TestRoundTrip(t *testing.T) {
	original := decimal.RequireFromString("85000.25")
	kobo, err := NairaToKobo(original)
	require.NoError(t, err)
	assert.True(t, original.Equal(KoboToNaira(kobo)))
}
