package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRealClock_NewTicker(t *testing.T) {
	ticker := RealClock{}.NewTicker(10 * time.Millisecond)
	defer ticker.Stop()

	select {
	case <-ticker.C():
	case <-time.After(time.Second):
		t.Fatal("ticker did not fire")
	}
}

func TestMockClock_AdvanceFiresDueTicker(t *testing.T) {
	start := time.Date(2026, 1, 15, 10, 30, 0, 0, time.UTC)
	clock := NewMockClock(start)
	ticker := clock.NewTicker(100 * time.Millisecond)

	clock.Advance(50 * time.Millisecond)
	select {
	case <-ticker.C():
		t.Fatal("ticker fired early")
	default:
	}

	clock.Advance(50 * time.Millisecond)
	select {
	case got := <-ticker.C():
		assert.Equal(t, start.Add(100*time.Millisecond), got)
	default:
		t.Fatal("ticker did not fire")
	}
	assert.Equal(t, start.Add(100*time.Millisecond), clock.Now())
}

func TestMockClock_StoppedTickerIsSilent(t *testing.T) {
	clock := NewMockClock(time.Time{})
	ticker := clock.NewTicker(time.Second)
	ticker.Stop()

	clock.Advance(2 * time.Second)
	select {
	case <-ticker.C():
		t.Fatal("stopped ticker fired")
	default:
	}

	tickers := clock.Tickers()
	require.Len(t, tickers, 1)
	assert.True(t, tickers[0].Stopped())
}
