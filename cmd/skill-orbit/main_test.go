package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSessionUptime(t *testing.T) {
	start := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "3 minutes", sessionUptime(start, start.Add(3*time.Minute)))
	assert.Equal(t, "2 hours", sessionUptime(start, start.Add(2*time.Hour+5*time.Minute)))
	assert.Equal(t, "now", sessionUptime(start, start))
}
