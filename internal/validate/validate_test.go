package validate_test

import (
	"testing"
	"time"

	"github.com/outreachhub/outreachhub/internal/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmail(t *testing.T) {
	valid := []string{"jane@example.com", "j.doe@example.org", "a_b@host.net", "ab@x.y"}
	invalid := []string{"", "jane", "jane@", "@example.com", "Jane@Example.com", "a..b@example.com"}

	for _, e := range valid {
		assert.True(t, validate.Email(e), e)
	}
	for _, e := range invalid {
		assert.False(t, validate.Email(e), e)
	}
}

func TestPhone(t *testing.T) {
	assert.True(t, validate.Phone("604-555-0199", validate.DefaultPhoneRegion))
	assert.True(t, validate.Phone("+1 604 555 0199", validate.DefaultPhoneRegion))
	assert.False(t, validate.Phone("12345", validate.DefaultPhoneRegion))
	assert.False(t, validate.Phone("not a number", validate.DefaultPhoneRegion))
}

func TestFormatPhone(t *testing.T) {
	formatted, err := validate.FormatPhone("6045550199", validate.DefaultPhoneRegion)
	require.NoError(t, err)
	assert.Equal(t, "+1 604-555-0199", formatted)
}

func TestParseDate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		d, err := validate.ParseDate("2024-03-09")
		require.NoError(t, err)
		require.NotNil(t, d)
		assert.Equal(t, time.Date(2024, time.March, 9, 0, 0, 0, 0, time.UTC), *d)
	})

	t.Run("pattern mismatch yields nil, nil", func(t *testing.T) {
		d, err := validate.ParseDate("03/09/2024")
		assert.NoError(t, err)
		assert.Nil(t, d)
	})

	t.Run("impossible values yield an error", func(t *testing.T) {
		_, err := validate.ParseDate("2024-02-30")
		assert.Error(t, err)

		_, err = validate.ParseDate("2024-13-01")
		assert.Error(t, err)
	})
}

func TestParseTimeOfDay(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		tod, err := validate.ParseTimeOfDay("9:30")
		require.NoError(t, err)
		require.NotNil(t, tod)
		assert.Equal(t, "09:30:00", tod.String())

		tod, err = validate.ParseTimeOfDay("23:59:59")
		require.NoError(t, err)
		require.NotNil(t, tod)
		assert.Equal(t, "23:59:59", tod.String())
	})

	t.Run("pattern mismatch yields nil, nil", func(t *testing.T) {
		tod, err := validate.ParseTimeOfDay("half past nine")
		assert.NoError(t, err)
		assert.Nil(t, tod)
	})

	t.Run("impossible values yield an error", func(t *testing.T) {
		_, err := validate.ParseTimeOfDay("24:00")
		assert.Error(t, err)

		_, err = validate.ParseTimeOfDay("12:61")
		assert.Error(t, err)
	})
}
