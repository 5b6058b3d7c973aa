package kernel_test

import (
	"testing"
	"time"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDate(t *testing.T) {
	t.Run("should create valid date", func(t *testing.T) {
		d, err := kernel.NewDate(2025, time.January, 10)

		require.NoError(t, err)
		require.NoError(t, d.Validate())
		assert.Equal(t, "2025-01-10", d.String())
	})

	t.Run("should reject impossible day", func(t *testing.T) {
		_, err := kernel.NewDate(2025, time.February, 30)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "2025-02-30 is not a calendar date")
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var d kernel.Date

		assert.Equal(t, kernel.ErrDateIsNotConstructed, d.Validate())
	})
}

func TestParseDate(t *testing.T) {
	t.Run("should parse ISO date", func(t *testing.T) {
		d, err := kernel.ParseDate("2025-01-20")

		require.NoError(t, err)
		assert.True(t, d.Equal(kernel.MustNewDate(2025, time.January, 20)))
	})

	t.Run("should reject other layouts", func(t *testing.T) {
		_, err := kernel.ParseDate("20/01/2025")

		require.Error(t, err)
		assert.True(t, errs.IsInvalidInput(err))
	})
}

func TestDateFromTime(t *testing.T) {
	loc := time.FixedZone("UTC-3", -3*60*60)
	late := time.Date(2025, time.January, 10, 23, 30, 0, 0, loc)

	d := kernel.DateFromTime(late)

	assert.Equal(t, "2025-01-10", d.String())
	assert.Equal(t, time.UTC, d.Time().Location())
}

func TestDate_Comparisons(t *testing.T) {
	ref := kernel.MustNewDate(2025, time.January, 10)
	earlier := kernel.MustNewDate(2025, time.January, 5)
	later := kernel.MustNewDate(2025, time.January, 20)

	t.Run("before and after", func(t *testing.T) {
		assert.True(t, earlier.Before(ref))
		assert.False(t, ref.Before(ref))
		assert.True(t, later.After(ref))
		assert.False(t, ref.After(ref))
	})

	t.Run("add days crosses month boundaries", func(t *testing.T) {
		assert.Equal(t, "2025-02-01", kernel.MustNewDate(2025, time.January, 29).AddDays(3).String())
		assert.Equal(t, "2025-01-09", kernel.MustNewDate(2025, time.January, 12).AddDays(-3).String())
		require.NoError(t, ref.AddDays(1).Validate())
	})

	t.Run("between is inclusive", func(t *testing.T) {
		assert.True(t, earlier.Between(earlier, later))
		assert.True(t, later.Between(earlier, later))
		assert.True(t, ref.Between(earlier, later))
		assert.False(t, earlier.AddDays(-1).Between(earlier, later))
		assert.False(t, later.AddDays(1).Between(earlier, later))
	})
}
