package tutorial

import (
	"path/filepath"

	"github.com/oliverbestmann/go3d/orion"
	"github.com/oliverbestmann/go3d/pulse"
)

func pipelineOptions(sampleCount uint32, depth bool) orion.PipelineOptions {
	return orion.PipelineOptions{
		SampleCount: sampleCount,
		Depth:       depth,
		Immediate:   true,
		ClearColor:  Background,
		ClearDepth:  1.0,
	}
}

// Window only pumps the message loop.
func Window() orion.RunOptions {
	return orion.RunOptions{
		WindowWidth:  Width,
		WindowHeight: Height,
		WindowTitle:  "Window",
		WindowOnly:   true,
	}
}

// Clear clears the backbuffer every frame.
func Clear() orion.RunOptions {
	return orion.RunOptions{
		WindowWidth:  Width,
		WindowHeight: Height,
		WindowTitle:  "Clear",
		Pipeline:     pipelineOptions(1, false),
	}
}

func TriangleScene(shaderDir string) *orion.Scene {
	return &orion.Scene{
		Label:       "triangle",
		ShaderPath:  filepath.Join(shaderDir, "triangle.wgsl"),
		Layout:      TriangleLayout,
		Vertices:    pulse.SliceAsBytes(TriangleVertices[:]),
		VertexCount: uint32(len(TriangleVertices)),
	}
}

// Triangle draws a single colored triangle.
func Triangle(shaderDir string) orion.RunOptions {
	return orion.RunOptions{
		WindowWidth:  Width,
		WindowHeight: Height,
		WindowTitle:  "Triangle",
		Pipeline:     pipelineOptions(1, false),
		Scene:        TriangleScene(shaderDir),
	}
}

func CubeScene(shaderDir string) *orion.Scene {
	transform := CubeTransform()

	return &orion.Scene{
		Label:       "cube",
		ShaderPath:  filepath.Join(shaderDir, "cube.wgsl"),
		Layout:      CubeLayout,
		Vertices:    pulse.SliceAsBytes(CubeVertices[:]),
		VertexCount: uint32(len(CubeVertices)),
		Indices:     CubeIndices[:],
		Uniforms: []orion.Uniform{
			{
				Label:    "transform",
				Binding:  0,
				Dynamic:  true,
				Contents: pulse.AsByteSlice(&transform),
			},
			{
				Label:    "face colors",
				Binding:  1,
				Contents: pulse.SliceAsBytes(FaceColors[:]),
			},
		},
	}
}

// Cube draws the indexed cube with depth test and 4x multisampling.
func Cube(shaderDir string) orion.RunOptions {
	return orion.RunOptions{
		WindowWidth:  Width,
		WindowHeight: Height,
		WindowTitle:  "Cube",
		Pipeline:     pipelineOptions(4, true),
		Scene:        CubeScene(shaderDir),
	}
}
