package pulse

import (
	"testing"

	"github.com/oliverbestmann/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVertexLayoutPositionColor(t *testing.T) {
	layout, err := NewVertexLayout(
		VertexElement{Semantic: SemanticPosition, Format: wgpu.VertexFormatFloat32x3},
		VertexElement{Semantic: SemanticColor, Format: wgpu.VertexFormatFloat32x4},
	)

	require.NoError(t, err)

	assert.Equal(t, uint64(28), layout.Stride())
	assert.Len(t, layout.Elements(), 2)

	converted := layout.toWGPU()
	assert.Equal(t, uint64(28), converted.ArrayStride)
	assert.Equal(t, wgpu.VertexStepModeVertex, converted.StepMode)

	require.Len(t, converted.Attributes, 2)
	assert.Equal(t, uint64(0), converted.Attributes[0].Offset)
	assert.Equal(t, uint32(0), converted.Attributes[0].ShaderLocation)
	assert.Equal(t, uint64(12), converted.Attributes[1].Offset)
	assert.Equal(t, uint32(1), converted.Attributes[1].ShaderLocation)
}

func TestVertexLayoutIsComparable(t *testing.T) {
	position := VertexElement{Semantic: SemanticPosition, Format: wgpu.VertexFormatFloat32x3}

	a, err := NewVertexLayout(position)
	require.NoError(t, err)

	b, err := NewVertexLayout(position)
	require.NoError(t, err)

	assert.True(t, a == b)
}

func TestVertexLayoutRejectsInvalidElements(t *testing.T) {
	_, err := NewVertexLayout()
	assert.Error(t, err)

	_, err = NewVertexLayout(VertexElement{Semantic: SemanticPosition, Format: wgpu.VertexFormatUint8x2})
	assert.Error(t, err)

	many := make([]VertexElement, maxVertexElements+1)
	for idx := range many {
		many[idx] = VertexElement{Semantic: SemanticPosition, Format: wgpu.VertexFormatFloat32}
	}

	_, err = NewVertexLayout(many...)
	assert.Error(t, err)
}
