package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDailyCounter_CountsAgainstCap(t *testing.T) {
	c := NewDailyCounter()

	for i := 1; i <= 20; i++ {
		usage, err := c.Increment("1.2.3.4", "cost", false)
		assert.NoError(t, err)
		assert.Equal(t, i, usage.Used)
		assert.Equal(t, 20, usage.Limit)
		assert.Equal(t, 20-i, usage.Remaining)
	}

	usage, err := c.Increment("1.2.3.4", "cost", false)
	assert.Error(t, err)
	assert.Equal(t, "일일 사용 한도(20회) 초과", err.Error())
	assert.Equal(t, 20, usage.Used)
	assert.Equal(t, 0, usage.Remaining)

	// The rejected request is not counted.
	assert.Equal(t, 20, c.Peek("1.2.3.4", "cost", false).Used)
}

func TestDailyCounter_ResetsOnDateChange(t *testing.T) {
	now := time.Date(2025, 6, 1, 23, 50, 0, 0, time.UTC)
	c := NewDailyCounter()
	c.now = func() time.Time { return now }

	for i := 0; i < 10; i++ {
		_, err := c.Increment("1.2.3.4", "bid", false)
		assert.NoError(t, err)
	}
	_, err := c.Increment("1.2.3.4", "bid", false)
	assert.Error(t, err)

	// Midnight passes.
	now = now.Add(20 * time.Minute)

	usage, err := c.Increment("1.2.3.4", "bid", false)
	assert.NoError(t, err)
	assert.Equal(t, 1, usage.Used)
	assert.Equal(t, "2025-06-02", c.Date())
}

func TestDailyCounter_PremiumTier(t *testing.T) {
	c := NewDailyCounter()

	usage, err := c.Increment("1.2.3.4", "bid", true)
	assert.NoError(t, err)
	assert.Equal(t, 200, usage.Limit)
	assert.Equal(t, "premium", usage.Tier)
}

func TestDailyCounter_ClientsAreIndependent(t *testing.T) {
	c := NewDailyCounter()

	c.Increment("1.1.1.1", "cost", false)
	c.Increment("1.1.1.1", "cost", false)

	assert.Equal(t, 2, c.Peek("1.1.1.1", "cost", false).Used)
	assert.Equal(t, 0, c.Peek("2.2.2.2", "cost", false).Used)
}

func TestDailyCounter_AppsAreIndependent(t *testing.T) {
	c := NewDailyCounter()

	c.Increment("1.1.1.1", "cost", false)

	assert.Equal(t, 1, c.Peek("1.1.1.1", "cost", false).Used)
	assert.Equal(t, 0, c.Peek("1.1.1.1", "bid", false).Used)
}

func TestLimitFor(t *testing.T) {
	assert.Equal(t, 20, limitFor("cost", false))
	assert.Equal(t, 200, limitFor("cost", true))
	assert.Equal(t, 10, limitFor("bid", false))
	assert.Equal(t, 100, limitFor("agency", false))
	// Agency has no premium tier; premium callers get the normal cap.
	assert.Equal(t, 100, limitFor("agency", true))
	assert.Equal(t, fallbackLimit, limitFor("unknown", false))
}
