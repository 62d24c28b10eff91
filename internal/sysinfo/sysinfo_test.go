package sysinfo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCollect(t *testing.T) {
	info := Collect()

	assert.NotEmpty(t, info.OS)
	assert.Greater(t, info.LogicalCores, 0)
}

func TestCPUBound(t *testing.T) {
	info := &Info{LogicalCores: 4}
	assert.Equal(t, 4*time.Second, info.CPUBound(time.Second))

	// A broken core count must not zero the bound.
	broken := &Info{}
	assert.Equal(t, time.Second, broken.CPUBound(time.Second))
}
