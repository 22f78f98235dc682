package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/cwsbrian/mone-mori-app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate_CalendarForm(t *testing.T) {
	d, err := domain.ParseDate("2024-03-01")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01", d.String())
}

func TestParseDate_RFC3339Truncates(t *testing.T) {
	d, err := domain.ParseDate("2024-03-01T18:45:12Z")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01", d.String())
}

func TestParseDate_Invalid(t *testing.T) {
	_, err := domain.ParseDate("01/03/2024")
	assert.Error(t, err)
}

func TestDate_JSONRoundTrip(t *testing.T) {
	original := domain.NewDate(2024, 3, 1)

	data, err := json.Marshal(original)
	require.NoError(t, err)
	assert.Equal(t, `"2024-03-01"`, string(data))

	var decoded domain.Date
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, original.Equal(decoded))
}

func TestDate_Ordering(t *testing.T) {
	feb := domain.NewDate(2024, 2, 29)
	mar := domain.NewDate(2024, 3, 1)

	assert.True(t, feb.Before(mar))
	assert.True(t, mar.After(feb))
	assert.False(t, feb.Equal(mar))
	assert.True(t, feb.Equal(domain.NewDate(2024, 2, 29)))
}
