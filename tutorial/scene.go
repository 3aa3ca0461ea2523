// Package tutorial contains the fixed data of the tutorial snapshots and
// the options to run each of them with orion.
package tutorial

import (
	"math"

	"github.com/oliverbestmann/go3d/glm"
	"github.com/oliverbestmann/go3d/pulse"
	"github.com/oliverbestmann/webgpu/wgpu"
)

const (
	Width  = 800
	Height = 600
)

var Background = pulse.ColorLinearRGBA(0.0, 0.2, 0.4, 1.0)

type ColorVertex struct {
	Position glm.Vec3f
	Color    glm.Vec4f
}

var TriangleVertices = [3]ColorVertex{
	{Position: glm.Vec3f{0.0, 0.5, 0.5}, Color: glm.Vec4f{1, 0, 0, 1}},
	{Position: glm.Vec3f{0.5, -0.5, 0.5}, Color: glm.Vec4f{0, 1, 0, 1}},
	{Position: glm.Vec3f{-0.5, -0.5, 0.5}, Color: glm.Vec4f{0, 0, 1, 1}},
}

var TriangleLayout = []pulse.VertexElement{
	{Semantic: pulse.SemanticPosition, Format: wgpu.VertexFormatFloat32x3},
	{Semantic: pulse.SemanticColor, Format: wgpu.VertexFormatFloat32x4},
}

var CubeVertices = [8]glm.Vec3f{
	{-1, -1, -1},
	{-1, 1, -1},
	{1, 1, -1},
	{1, -1, -1},
	{-1, -1, 1},
	{-1, 1, 1},
	{1, 1, 1},
	{1, -1, 1},
}

// CubeIndices lists two clockwise triangles per face, in the face order
// of FaceColors.
var CubeIndices = [36]uint16{
	// front
	0, 1, 2,
	0, 2, 3,

	// back
	4, 6, 5,
	4, 7, 6,

	// left
	4, 5, 1,
	4, 1, 0,

	// right
	3, 2, 6,
	3, 6, 7,

	// top
	1, 5, 6,
	1, 6, 2,

	// bottom
	4, 0, 3,
	4, 3, 7,
}

var CubeLayout = []pulse.VertexElement{
	{Semantic: pulse.SemanticPosition, Format: wgpu.VertexFormatFloat32x3},
}

// FaceColors of front, back, left, right, top and bottom.
var FaceColors = [6]glm.Vec4f{
	{1, 0, 0, 1},
	{0, 1, 0, 1},
	{0, 0, 1, 1},
	{1, 0, 1, 1},
	{0, 1, 1, 1},
	{1, 1, 0, 1},
}

// CubeTransform composes rotation by one radian about z then x, a uniform
// scale of one, a translation to z=4 and the left handed perspective
// projection. The matrix is column major and uploaded as is.
func CubeTransform() glm.Mat4f {
	projection := glm.PerspectiveLH[float32](math.Pi/4, Width/float32(Height), 0.01, 100)

	return projection.
		Translate(0, 0, 4).
		Scale(1, 1, 1).
		RotateX(1).
		RotateZ(1)
}
