package proration

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sum(shares []MonthShare) float64 {
	var s float64
	for _, share := range shares {
		s += share.Amount
	}
	return s
}

func TestSingleDayRange(t *testing.T) {
	shares := Calculate("2025-09-07", "2025-09-07", 100)
	require.Len(t, shares, 1)
	assert.Equal(t, 2025, shares[0].Year)
	assert.Equal(t, 9, shares[0].Month)
	assert.Equal(t, "Rugsėjis", shares[0].MonthName)
	assert.Equal(t, 1, shares[0].DayCount)
	assert.Equal(t, 100.0, shares[0].Amount)
}

func TestMonthBoundarySplitsEvenly(t *testing.T) {
	shares := Calculate("2025-01-31", "2025-02-01", 300)
	require.Len(t, shares, 2)

	assert.Equal(t, 1, shares[0].Month)
	assert.Equal(t, "Sausis", shares[0].MonthName)
	assert.Equal(t, 1, shares[0].DayCount)
	assert.InDelta(t, 150, shares[0].Amount, 1e-9)

	assert.Equal(t, 2, shares[1].Month)
	assert.Equal(t, "Vasaris", shares[1].MonthName)
	assert.Equal(t, 1, shares[1].DayCount)
	assert.InDelta(t, 150, shares[1].Amount, 1e-9)
}

func TestSharesAreChronologicalAndWeighted(t *testing.T) {
	// 2025-08-25..2025-09-07: 7 days of August, 7 days of September.
	shares := Calculate("2025-08-25", "2025-09-07", 1150.64)
	require.Len(t, shares, 2)
	assert.Equal(t, 8, shares[0].Month)
	assert.Equal(t, 9, shares[1].Month)
	assert.Equal(t, 7, shares[0].DayCount)
	assert.Equal(t, 7, shares[1].DayCount)
	assert.InDelta(t, 1150.64, sum(shares), 1e-9)
	assert.InDelta(t, shares[0].Amount, shares[1].Amount, 1e-9)
}

func TestSumEqualsTotalAcrossManyMonths(t *testing.T) {
	cases := []struct {
		from, to string
		total    float64
	}{
		{"2025-01-01", "2025-12-31", 9999.99},
		{"2024-12-15", "2025-03-02", 1234.5},
		{"2024-02-01", "2024-02-29", 282.33}, // leap February
		{"2025-06-10", "2025-06-10", 0.01},
	}
	for _, c := range cases {
		shares := Calculate(c.from, c.to, c.total)
		require.NotEmpty(t, shares, "%s..%s", c.from, c.to)
		rel := math.Abs(sum(shares)-c.total) / c.total
		assert.Less(t, rel, 1e-9, "%s..%s", c.from, c.to)
	}
}

func TestYearSpanKeepsDiscoveryOrder(t *testing.T) {
	shares := Calculate("2024-12-20", "2025-01-10", 660)
	require.Len(t, shares, 2)
	assert.Equal(t, 2024, shares[0].Year)
	assert.Equal(t, 12, shares[0].Month)
	assert.Equal(t, "Gruodis", shares[0].MonthName)
	assert.Equal(t, 2025, shares[1].Year)
	assert.Equal(t, 1, shares[1].Month)
	assert.Equal(t, 12, shares[0].DayCount)
	assert.Equal(t, 10, shares[1].DayCount)
}

func TestTimeSuffixIsStripped(t *testing.T) {
	shares := Calculate("2025-09-01 00:00:00", "2025-09-30 12:00:00", 300)
	require.Len(t, shares, 1)
	assert.Equal(t, 30, shares[0].DayCount)
	assert.Equal(t, 300.0, shares[0].Amount)
}

func TestDegradesSilently(t *testing.T) {
	assert.Empty(t, Calculate("2025-09-01", "2025-09-30", 0))
	assert.Empty(t, Calculate("not-a-date", "2025-09-30", 100))
	assert.Empty(t, Calculate("2025-09-01", "never", 100))
	assert.Empty(t, Calculate("2025-02-30", "2025-03-01", 100)) // invalid day
	assert.Empty(t, Calculate("2025-09-30", "2025-09-01", 100)) // reversed range
}
