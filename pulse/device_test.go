package pulse

import (
	"testing"

	"github.com/oliverbestmann/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		name string
		want wgpu.LogLevel
		ok   bool
	}{
		{"off", wgpu.LogLevelOff, true},
		{"Error", wgpu.LogLevelError, true},
		{"WARN", wgpu.LogLevelWarn, true},
		{"info", wgpu.LogLevelInfo, true},
		{"debug", wgpu.LogLevelDebug, true},
		{"trace", wgpu.LogLevelTrace, true},
		{"verbose", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, ok := ParseLogLevel(tt.name)
			assert.Equal(t, tt.ok, ok)

			if tt.ok {
				assert.Equal(t, tt.want, level)
			}
		})
	}
}

func TestNewContextRequiresSurface(t *testing.T) {
	ctx, err := NewContext(nil, ContextOptions{})
	assert.Error(t, err)
	assert.Nil(t, ctx)
}

func TestBufferDescribesItself(t *testing.T) {
	b := &Buffer{label: "cube indices", usage: BufferIndex, size: 72}

	assert.Equal(t, "cube indices", b.Label())
	assert.Equal(t, uint64(72), b.Size())
	assert.Equal(t, "index", BufferIndex.String())
	assert.Equal(t, "BufferUsage(7)", BufferUsage(7).String())

	// releasing a buffer without gpu memory is a no-op
	assert.NotPanics(t, b.Release)
}
