package glprog

import (
	"fmt"
	"log/slog"
	"unsafe"
)

const floatSize = int32(unsafe.Sizeof(float32(0)))

// Attribute is one named float input within an interleaved vertex.
// Size and Offset are counted in floats.
type Attribute struct {
	Name   string
	Size   int32
	Offset int32
}

// OffsetBytes returns the attribute offset within a vertex in bytes.
func (a Attribute) OffsetBytes() uintptr {
	return uintptr(a.Offset * floatSize)
}

// VertexLayout describes an interleaved float vertex format.
type VertexLayout struct {
	// Stride is the number of floats per vertex.
	Stride     int32
	Attributes []Attribute
}

// StrideBytes returns the distance between consecutive vertices in bytes.
func (l VertexLayout) StrideBytes() int32 {
	return l.Stride * floatSize
}

// PositionColor is 3 floats of position followed by 3 floats of color.
var PositionColor = VertexLayout{
	Stride: 6,
	Attributes: []Attribute{
		{Name: "position", Size: 3, Offset: 0},
		{Name: "color", Size: 3, Offset: 3},
	},
}

// BindInterleavedVertices uploads vertices in the PositionColor layout and
// binds the "position" and "color" attributes of the active program.
func (c *Context) BindInterleavedVertices(vertices []float32) error {
	return c.BindLayout(PositionColor, vertices)
}

// Validate reports whether l describes a usable float layout: a positive
// stride, and attributes of 1 to 4 components that fit inside it.
func (l VertexLayout) Validate() error {
	if l.Stride <= 0 {
		return fmt.Errorf("stride %d: %w", l.Stride, ErrInvalidLayout)
	}
	for _, attr := range l.Attributes {
		if attr.Size < 1 || attr.Size > 4 {
			return fmt.Errorf("%q: size %d: %w", attr.Name, attr.Size, ErrInvalidLayout)
		}
		if attr.Offset < 0 || attr.Offset+attr.Size > l.Stride {
			return fmt.Errorf("%q: offset %d outside stride %d: %w", attr.Name, attr.Offset, l.Stride, ErrInvalidLayout)
		}
	}
	return nil
}

// BindLayout creates a buffer, uploads vertices as static data and configures
// every attribute of layout against the active program.
//
// Attributes the program does not expose are skipped with a warning unless
// the context was created WithStrictAttributes. A failed call leaves the
// previously bound buffer in place.
func (c *Context) BindLayout(layout VertexLayout, vertices []float32) error {
	if c.program == 0 {
		c.log().Error("no active program to bind vertices against")
		return ErrNoProgram
	}
	if err := layout.Validate(); err != nil {
		c.log().Error("invalid vertex layout", slog.Any("err", err))
		return err
	}

	// Locations are resolved before any object is created so strict mode
	// fails without touching the device.
	locs := make([]int32, len(layout.Attributes))
	for i, attr := range layout.Attributes {
		locs[i] = c.dev.AttribLocation(c.program, attr.Name)
		if locs[i] >= 0 {
			continue
		}
		if c.strictAttributes {
			c.log().Error("attribute not found", slog.String("attribute", attr.Name))
			return fmt.Errorf("%q: %w", attr.Name, ErrAttributeNotFound)
		}
		c.log().Warn("attribute not found, skipping", slog.String("attribute", attr.Name))
	}

	b := c.dev.CreateBuffer()
	if b == 0 {
		c.log().Error("failed to create the buffer object")
		return fmt.Errorf("vertex buffer: %w", ErrObjectCreation)
	}

	if len(vertices)%int(layout.Stride) != 0 {
		c.log().Warn("vertex data is not a whole number of vertices",
			slog.Int("floats", len(vertices)),
			slog.Int("stride", int(layout.Stride)))
	}

	c.dev.BindArrayBuffer(b)
	c.dev.BufferStaticData(vertices)

	stride := layout.StrideBytes()
	for i, attr := range layout.Attributes {
		if locs[i] < 0 {
			continue
		}
		c.dev.VertexAttribPointer(uint32(locs[i]), attr.Size, stride, attr.OffsetBytes())
		c.dev.EnableVertexAttrib(uint32(locs[i]))
	}

	if c.vbo != 0 {
		c.dev.DeleteBuffer(c.vbo)
	}
	c.vbo = b

	c.log().Debug("vertices bound",
		slog.Uint64("buffer", uint64(b)),
		slog.Int("floats", len(vertices)))

	return nil
}
