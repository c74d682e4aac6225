package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCombineDateTime(t *testing.T) {
	got, err := CombineDateTime("2026-03-10", "14:30")
	require.NoError(t, err)
	assert.Equal(t, "2026-03-10T14:30:00+07:00", got)
}

func TestCombineDateTimeMissingPart(t *testing.T) {
	_, err := CombineDateTime("", "14:30")
	assert.Error(t, err)

	_, err = CombineDateTime("2026-03-10", "")
	assert.Error(t, err)
}

func TestCombineDateTimeInvalid(t *testing.T) {
	_, err := CombineDateTime("10/03/2026", "14:30")
	assert.Error(t, err)

	_, err = CombineDateTime("2026-03-10", "25:99")
	assert.Error(t, err)
}

func TestParseInstantLayouts(t *testing.T) {
	withOffset := ParseInstant("2026-03-10T14:30:00+07:00")
	assert.Equal(t, 14, withOffset.In(ICT).Hour())

	naive := ParseInstant("2026-03-10T14:30:00")
	assert.True(t, withOffset.Equal(naive))

	assert.True(t, ParseInstant("không phải thời gian").IsZero())
	assert.True(t, ParseInstant("").IsZero())
}

func TestParseInstantOrdering(t *testing.T) {
	earlier := ParseInstant("2026-03-10T08:00:00+07:00")
	later := ParseInstant("2026-03-10T14:30:00+07:00")
	assert.True(t, earlier.Before(later))

	// zero time luôn đứng trước mọi mốc hợp lệ
	assert.True(t, time.Time{}.Before(earlier))
}
