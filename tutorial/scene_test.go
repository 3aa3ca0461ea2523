package tutorial

import (
	"path/filepath"
	"testing"

	"github.com/oliverbestmann/go3d/glm"
	"github.com/oliverbestmann/go3d/pulse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const shaderDir = "../shaders"

func TestCubeIndices(t *testing.T) {
	require.Len(t, CubeIndices, 36)

	positions := map[glm.Vec3f]bool{}
	for _, idx := range CubeIndices {
		require.Less(t, int(idx), len(CubeVertices))
		positions[CubeVertices[idx]] = true
	}

	assert.Len(t, positions, 8)

	for tri := 0; tri < len(CubeIndices); tri += 3 {
		a, b, c := CubeIndices[tri], CubeIndices[tri+1], CubeIndices[tri+2]
		assert.True(t, a != b && b != c && a != c, "degenerate triangle %d", tri/3)
	}
}

func TestCubeFacesArePlanar(t *testing.T) {
	// every face lies on one side of the cube, in the order of FaceColors
	axes := []struct {
		axis int
		sign float32
	}{
		{2, -1}, {2, 1}, {0, -1}, {0, 1}, {1, 1}, {1, -1},
	}

	for face, axis := range axes {
		for _, idx := range CubeIndices[face*6 : face*6+6] {
			assert.Equal(t, axis.sign, CubeVertices[idx][axis.axis], "face %d", face)
		}
	}
}

func TestCubeTransformIsStable(t *testing.T) {
	first := CubeTransform()
	second := CubeTransform()

	assert.Equal(t, first, second)
	assert.False(t, first.IsZero())

	// the center of the cube lies in front of the camera, inside the depth range
	center := first.Transform(glm.Vec4f{0, 0, 0, 1})
	assert.InDelta(t, 4.0, center[3], 1e-6)

	depth := center[2] / center[3]
	assert.Greater(t, depth, float32(0))
	assert.Less(t, depth, float32(1))
}

func TestUniformSizes(t *testing.T) {
	scene := CubeScene(shaderDir)
	require.Len(t, scene.Uniforms, 2)

	assert.Len(t, scene.Uniforms[0].Contents, 64)
	assert.True(t, scene.Uniforms[0].Dynamic)

	assert.Len(t, scene.Uniforms[1].Contents, 96)
	assert.False(t, scene.Uniforms[1].Dynamic)

	assert.Len(t, scene.Vertices, 8*12)
	assert.Equal(t, uint32(8), scene.VertexCount)
}

func TestTriangleLayoutMatchesVertices(t *testing.T) {
	layout, err := pulse.NewVertexLayout(TriangleLayout...)
	require.NoError(t, err)

	scene := TriangleScene(shaderDir)
	assert.Len(t, scene.Vertices, int(layout.Stride())*3)
	assert.Equal(t, uint32(3), scene.VertexCount)
	assert.Empty(t, scene.Indices)
}

func TestShippedShadersCompile(t *testing.T) {
	for _, scene := range []string{"triangle", "cube"} {
		t.Run(scene, func(t *testing.T) {
			source, err := pulse.LoadShaderSource(filepath.Join(shaderDir, scene+".wgsl"))
			require.NoError(t, err)

			require.NoError(t, pulse.ValidateShader(scene, source, "VS", "PS"))
		})
	}
}

func TestSnapshots(t *testing.T) {
	window := Window()
	assert.True(t, window.WindowOnly)
	assert.Nil(t, window.Scene)

	clearOpts := Clear()
	assert.False(t, clearOpts.WindowOnly)
	assert.Nil(t, clearOpts.Scene)
	assert.Equal(t, Background, clearOpts.Pipeline.ClearColor)

	cube := Cube(shaderDir)
	assert.Equal(t, uint32(4), cube.Pipeline.SampleCount)
	assert.True(t, cube.Pipeline.Depth)
	assert.Equal(t, float32(1), cube.Pipeline.ClearDepth)
	assert.Equal(t, filepath.Join(shaderDir, "cube.wgsl"), cube.Scene.ShaderPath)
	assert.Equal(t, 800, cube.WindowWidth)
	assert.Equal(t, 600, cube.WindowHeight)
}
