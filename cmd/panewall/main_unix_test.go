//go:build linux || darwin

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/sys/unix"
)

func TestFormatRlimit(t *testing.T) {
	assert.Equal(t, "infinity", formatRlimit(unix.RLIM_INFINITY))
	assert.Equal(t, "0", formatRlimit(0))
	assert.Equal(t, "4096", formatRlimit(4096))
}

func TestEnableCrashForensics_RaisesSoftLimit(t *testing.T) {
	enableCrashForensics()

	var limit unix.Rlimit
	if err := unix.Getrlimit(unix.RLIMIT_CORE, &limit); err != nil {
		t.Skip("RLIMIT_CORE not readable")
	}
	assert.Equal(t, limit.Max, limit.Cur)
}
