// Package glbind applies the shader standard to an OpenGL context: it
// binds vertex attributes at their catalog positions, configures attribute
// pointers from catalog layouts and resolves uniform locations by name.
//
// Every function requires a current OpenGL 4.1 core context.
package glbind

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/shaderstd/pkg/shaderstd"
)

// ComponentType returns the GL enum for a layout's component type.
func ComponentType(s shaderstd.ScalarType) (uint32, error) {
	switch s {
	case shaderstd.Float:
		return gl.FLOAT, nil
	case shaderstd.Int:
		return gl.INT, nil
	case shaderstd.UnsignedInt:
		return gl.UNSIGNED_INT, nil
	case shaderstd.Byte:
		return gl.BYTE, nil
	case shaderstd.UnsignedByte:
		return gl.UNSIGNED_BYTE, nil
	case shaderstd.Short:
		return gl.SHORT, nil
	case shaderstd.UnsignedShort:
		return gl.UNSIGNED_SHORT, nil
	default:
		return 0, fmt.Errorf("no GL type for %s", s)
	}
}

// BindAttribLocations assigns each attribute the shader uses its position
// in the catalog as location. Call before linking the program.
func BindAttribLocations(cat *shaderstd.Catalog, program uint32, t shaderstd.ShaderType) error {
	attrs, err := cat.AttributesUsedBy(t)
	if err != nil {
		return err
	}
	for i, a := range attrs {
		name, err := cat.AttributeName(a)
		if err != nil {
			return err
		}
		gl.BindAttribLocation(program, uint32(i), gl.Str(name+"\x00"))
	}
	return nil
}

// EnableAttribute enables location and points it at the currently bound
// array buffer using layout.
func EnableAttribute(location uint32, layout shaderstd.Layout) error {
	typ, err := ComponentType(layout.Type)
	if err != nil {
		return err
	}
	gl.EnableVertexAttribArray(location)
	if layout.Type.Integral() && !layout.Normalize {
		gl.VertexAttribIPointerWithOffset(location, int32(layout.Components), typ, int32(layout.Stride), uintptr(layout.Offset))
		return nil
	}
	gl.VertexAttribPointerWithOffset(location, int32(layout.Components), typ, layout.Normalize, int32(layout.Stride), uintptr(layout.Offset))
	return nil
}

// Buffers maps attributes to the vertex buffer objects holding their data.
type Buffers map[shaderstd.Attribute]uint32

// EnableAttributes configures every attribute used by shader t, binding
// each attribute's buffer before describing it. The VAO must already be bound.
func EnableAttributes(cat *shaderstd.Catalog, t shaderstd.ShaderType, buffers Buffers) error {
	attrs, err := cat.AttributesUsedBy(t)
	if err != nil {
		return err
	}
	for i, a := range attrs {
		vbo, ok := buffers[a]
		if !ok {
			return fmt.Errorf("%s: no buffer for attribute %s", t, a)
		}
		layout, err := cat.LayoutOf(a)
		if err != nil {
			return fmt.Errorf("%s: %w", t, err)
		}
		gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
		if err := EnableAttribute(uint32(i), layout); err != nil {
			return fmt.Errorf("%s: attribute %s: %w", t, a, err)
		}
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return nil
}

// UniformLocations resolves the location of every uniform shader t uses in
// the linked program. A uniform the driver reports as inactive is an error,
// since the catalog says the program reads it.
func UniformLocations(cat *shaderstd.Catalog, program uint32, t shaderstd.ShaderType) (map[shaderstd.Uniform]int32, error) {
	unis, err := cat.UniformsUsedBy(t)
	if err != nil {
		return nil, err
	}
	locs := make(map[shaderstd.Uniform]int32, len(unis))
	for _, u := range unis {
		name, err := cat.UniformName(u)
		if err != nil {
			return nil, err
		}
		loc := gl.GetUniformLocation(program, gl.Str(name+"\x00"))
		if loc < 0 {
			return nil, fmt.Errorf("uniform %q of %s not active in program %d", name, t, program)
		}
		locs[u] = loc
	}
	return locs, nil
}
