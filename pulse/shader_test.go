package pulse

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testShader = `
@vertex
fn VS(@location(0) position: vec3<f32>) -> @builtin(position) vec4<f32> {
    return vec4<f32>(position, 1.0);
}

@fragment
fn PS() -> @location(0) vec4<f32> {
    return vec4<f32>(1.0, 1.0, 0.0, 1.0);
}
`

func TestValidateShader(t *testing.T) {
	require.NoError(t, ValidateShader("test", testShader, "VS", "PS"))
}

func TestValidateShaderMissingEntryPoints(t *testing.T) {
	tests := []struct {
		name     string
		vertex   string
		fragment string
	}{
		{"unknown vertex entry", "main", "PS"},
		{"unknown fragment entry", "VS", "main"},
		{"swapped stages", "PS", "VS"},
		{"empty names", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateShader("test", testShader, tt.vertex, tt.fragment)
			assert.ErrorIs(t, err, ErrShaderCompile)
		})
	}
}

func TestValidateShaderSyntaxError(t *testing.T) {
	err := ValidateShader("broken", "@vertex fn VS( -> {", "VS", "PS")
	assert.ErrorIs(t, err, ErrShaderCompile)
}

func TestLoadShaderSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shaders.wgsl")
	require.NoError(t, os.WriteFile(path, []byte(testShader), 0o644))

	source, err := LoadShaderSource(path)
	require.NoError(t, err)
	assert.Equal(t, testShader, source)

	_, err = LoadShaderSource(filepath.Join(t.TempDir(), "missing.wgsl"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
