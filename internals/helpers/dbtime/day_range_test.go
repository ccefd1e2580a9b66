package dbtime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homework_backend/internals/configs"
)

func TestDayRangeUsesAppLocation(t *testing.T) {
	configs.AppLocation = time.FixedZone("UTC+7", 7*3600)
	defer func() { configs.AppLocation = nil }()

	// 20:00 UTC is already the next day at UTC+7.
	now := time.Date(2024, 7, 10, 20, 0, 0, 0, time.UTC)
	start, end := DayRange(now)

	assert.Equal(t, "2024-07-11", start.Format(DateLayout))
	assert.Equal(t, 24*time.Hour, end.Sub(start))
	assert.Equal(t, "2024-07-11", DayKey(now))
}

func TestMonthRange(t *testing.T) {
	start, end, err := MonthRange("2024-02", time.Now())
	require.NoError(t, err)
	assert.Equal(t, time.February, start.Month())
	assert.Equal(t, time.March, end.Month())

	_, _, err = MonthRange("2024/02", time.Now())
	assert.Error(t, err)
}

func TestParseDayDefaultsToToday(t *testing.T) {
	now := time.Date(2024, 7, 10, 9, 30, 0, 0, time.UTC)
	d, err := ParseDay("", now)
	require.NoError(t, err)
	assert.Equal(t, "2024-07-10", d.Format(DateLayout))

	_, err = ParseDay("10-07-2024", now)
	assert.Error(t, err)
}
