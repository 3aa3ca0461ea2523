package pulse

import (
	"fmt"

	"github.com/oliverbestmann/webgpu/wgpu"
)

// Semantics of vertex elements. The n-th element of a layout is bound to
// @location(n) of the vertex shader.
const (
	SemanticPosition = "POSITION"
	SemanticColor    = "COLOR"
)

const maxVertexElements = 4

type VertexElement struct {
	Semantic string
	Format   wgpu.VertexFormat
}

// VertexLayout is the input layout of a shader program. It describes a single
// interleaved vertex buffer. VertexLayout values are comparable.
type VertexLayout struct {
	elements [maxVertexElements]VertexElement
	count    int
}

func NewVertexLayout(elements ...VertexElement) (VertexLayout, error) {
	var layout VertexLayout

	if len(elements) == 0 {
		return layout, fmt.Errorf("vertex layout needs at least one element")
	}

	if len(elements) > maxVertexElements {
		return layout, fmt.Errorf("vertex layout has %d elements, at most %d are supported", len(elements), maxVertexElements)
	}

	for idx, element := range elements {
		if formatSize(element.Format) == 0 {
			return layout, fmt.Errorf("element %q has unsupported format %v", element.Semantic, element.Format)
		}

		layout.elements[idx] = element
	}

	layout.count = len(elements)

	return layout, nil
}

func (l VertexLayout) Elements() []VertexElement {
	return l.elements[:l.count]
}

// Stride is the size of one vertex in bytes.
func (l VertexLayout) Stride() uint64 {
	var stride uint64
	for _, element := range l.Elements() {
		stride += formatSize(element.Format)
	}

	return stride
}

func (l VertexLayout) toWGPU() wgpu.VertexBufferLayout {
	attributes := make([]wgpu.VertexAttribute, 0, l.count)

	var offset uint64
	for idx, element := range l.Elements() {
		attributes = append(attributes, wgpu.VertexAttribute{
			Format:         element.Format,
			Offset:         offset,
			ShaderLocation: uint32(idx),
		})

		offset += formatSize(element.Format)
	}

	return wgpu.VertexBufferLayout{
		ArrayStride: offset,
		StepMode:    wgpu.VertexStepModeVertex,
		Attributes:  attributes,
	}
}

func formatSize(format wgpu.VertexFormat) uint64 {
	switch format {
	case wgpu.VertexFormatFloat32:
		return 4
	case wgpu.VertexFormatFloat32x2:
		return 8
	case wgpu.VertexFormatFloat32x3:
		return 12
	case wgpu.VertexFormatFloat32x4:
		return 16
	default:
		return 0
	}
}
