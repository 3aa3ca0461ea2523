package pulse

import (
	"fmt"

	"github.com/oliverbestmann/webgpu/wgpu"
)

type BufferUsage int

const (
	BufferVertex BufferUsage = iota
	BufferIndex
	BufferUniform
)

func (u BufferUsage) String() string {
	switch u {
	case BufferVertex:
		return "vertex"
	case BufferIndex:
		return "index"
	case BufferUniform:
		return "uniform"
	default:
		return fmt.Sprintf("BufferUsage(%d)", int(u))
	}
}

type BufferDescriptor struct {
	Label string
	Usage BufferUsage

	// Dynamic buffers can be written by the cpu after creation,
	// all other buffers are immutable.
	Dynamic bool

	Contents []byte

	// only used for index buffers, defaults to uint16
	IndexFormat wgpu.IndexFormat
}

// Buffer is an initialized gpu buffer.
type Buffer struct {
	buffer *wgpu.Buffer

	label       string
	usage       BufferUsage
	indexFormat wgpu.IndexFormat
	size        uint64
}

func createBuffer(ctx *Context, desc BufferDescriptor) (*Buffer, error) {
	if len(desc.Contents) == 0 {
		return nil, fmt.Errorf("buffer %q has no contents", desc.Label)
	}

	var usage wgpu.BufferUsage

	switch desc.Usage {
	case BufferVertex:
		usage = wgpu.BufferUsageVertex
	case BufferIndex:
		usage = wgpu.BufferUsageIndex
	case BufferUniform:
		usage = wgpu.BufferUsageUniform
	default:
		return nil, fmt.Errorf("buffer %q has unknown usage %s", desc.Label, desc.Usage)
	}

	if desc.Dynamic {
		usage |= wgpu.BufferUsageCopyDst
	}

	indexFormat := desc.IndexFormat
	if desc.Usage == BufferIndex && indexFormat == wgpu.IndexFormatUndefined {
		indexFormat = wgpu.IndexFormatUint16
	}

	buffer, err := ctx.Device.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    desc.Label,
		Contents: desc.Contents,
		Usage:    usage,
	})

	if err != nil {
		return nil, fmt.Errorf("create %s buffer %q: %w", desc.Usage, desc.Label, err)
	}

	b := &Buffer{
		buffer:      buffer,
		label:       desc.Label,
		usage:       desc.Usage,
		indexFormat: indexFormat,
		size:        uint64(len(desc.Contents)),
	}

	return b, nil
}

func (b *Buffer) Label() string {
	return b.label
}

func (b *Buffer) Size() uint64 {
	return b.size
}

func (b *Buffer) Release() {
	if b.buffer != nil {
		b.buffer.Release()
		b.buffer = nil
	}
}
