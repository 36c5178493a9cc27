package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWriteTimeoutFor(t *testing.T) {
	t.Run("short delays keep the default timeout", func(t *testing.T) {
		assert.Equal(t, 20*time.Second, writeTimeoutFor(0))
		assert.Equal(t, 20*time.Second, writeTimeoutFor(2*time.Second))
		assert.Equal(t, 20*time.Second, writeTimeoutFor(10*time.Second))
	})

	t.Run("long delays stretch the timeout past the delay", func(t *testing.T) {
		assert.Equal(t, 40*time.Second, writeTimeoutFor(30*time.Second))
		assert.Greater(t, writeTimeoutFor(time.Minute), time.Minute)
	})
}
