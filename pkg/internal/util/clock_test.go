package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestStubClock(t *testing.T) {
	clock := NewStubClock()
	start := clock.NowUtc()
	require.Equal(t, start, clock.NowUtc())

	next := clock.Advance(time.Hour)
	require.Equal(t, start.Add(time.Hour), next)
	require.Equal(t, next, clock.NowUtc())

	clock.SetNow(time.Date(2030, time.June, 1, 12, 0, 0, 0, time.FixedZone("UTC+8", 8*3600)))
	require.Equal(t, time.UTC, clock.NowUtc().Location())
	require.Equal(t, 4, clock.NowUtc().Hour())
}
