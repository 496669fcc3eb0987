// Package shaderstd is the shader standard: a fixed catalog of shader
// programs, the vertex attributes and uniforms they consume, and how those
// variables are laid out and named.
//
// The catalog is built once by New and never mutated afterwards, so a
// *Catalog can be shared between goroutines without locking.
package shaderstd

import (
	"errors"
	"fmt"
	"strings"
)

// Lookup errors. They indicate an enumerator without a catalog entry, which
// is a programming error rather than a runtime condition.
var (
	ErrUnknownShaderType = errors.New("unknown shader type")
	ErrUnknownAttribute  = errors.New("unknown vertex attribute")
	ErrUnknownIdentifier = errors.New("unknown identifier")
)

// Location holds the source paths of a shader program's stages.
type Location struct {
	Vertex   string `yaml:"vertex"`
	Fragment string `yaml:"fragment"`
	Geometry string `yaml:"geometry,omitempty"`
}

// Paths returns the non-empty stage paths in pipeline order.
func (l Location) Paths() []string {
	paths := []string{l.Vertex}
	if l.Geometry != "" {
		paths = append(paths, l.Geometry)
	}
	return append(paths, l.Fragment)
}

// Catalog is the immutable shader standard.
type Catalog struct {
	locations  [numShaderTypes]Location
	attributes [numShaderTypes][]Attribute
	uniforms   [numShaderTypes][]Uniform

	attrInfo     [numAttributes]attributeInfo
	uniformTypes [numUniforms]UniformType

	shaderNames    [numShaderTypes]string
	attributeNames [numAttributes]string
	uniformNames   [numUniforms]string

	shaderByName    map[string]ShaderType
	attributeByName map[string]Attribute
	uniformByName   map[string]Uniform
}

var standard = MustNew()

// Standard returns the process-wide catalog.
func Standard() *Catalog {
	return standard
}

// New builds the catalog and checks it for completeness.
func New() (*Catalog, error) {
	c := &Catalog{
		locations:       locations,
		attrInfo:        attributeTable,
		uniformTypes:    uniformTypes,
		shaderNames:     shaderTypeNames,
		attributeNames:  attributeNames,
		uniformNames:    uniformNames,
		shaderByName:    make(map[string]ShaderType, numShaderTypes),
		attributeByName: make(map[string]Attribute, numAttributes),
		uniformByName:   make(map[string]Uniform, numUniforms),
	}
	for t := range c.attributes {
		if used := usedAttributes[t]; used != nil {
			c.attributes[t] = append(make([]Attribute, 0, len(used)), used...)
		}
		if used := usedUniforms[t]; used != nil {
			c.uniforms[t] = append(make([]Uniform, 0, len(used)), used...)
		}
	}

	if err := c.index(); err != nil {
		return nil, err
	}
	if err := c.check(); err != nil {
		return nil, err
	}
	return c, nil
}

// MustNew is like New but panics on an incomplete catalog.
func MustNew() *Catalog {
	c, err := New()
	if err != nil {
		panic(fmt.Sprintf("shaderstd: %v", err))
	}
	return c
}

func (c *Catalog) index() error {
	for i, name := range c.shaderNames {
		if prev, ok := c.shaderByName[name]; ok && name != "" {
			return fmt.Errorf("shader types %d and %d share name %q", prev, i, name)
		}
		c.shaderByName[name] = ShaderType(i)
	}
	for i, name := range c.attributeNames {
		if prev, ok := c.attributeByName[name]; ok && name != "" {
			return fmt.Errorf("attributes %d and %d share name %q", prev, i, name)
		}
		c.attributeByName[name] = Attribute(i)
	}
	for i, name := range c.uniformNames {
		if prev, ok := c.uniformByName[name]; ok && name != "" {
			return fmt.Errorf("uniforms %d and %d share name %q", prev, i, name)
		}
		c.uniformByName[name] = Uniform(i)
	}
	delete(c.shaderByName, "")
	delete(c.attributeByName, "")
	delete(c.uniformByName, "")
	return nil
}

// check verifies that every enumerator has its entries.
func (c *Catalog) check() error {
	var problems []string
	add := func(format string, args ...interface{}) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	for i, name := range c.shaderNames {
		t := ShaderType(i)
		if name == "" {
			add("shader type %d has no name", i)
		}
		loc := c.locations[t]
		if loc.Vertex == "" || loc.Fragment == "" {
			add("shader type %s has no vertex or fragment source", t)
		}
		if c.attributes[t] == nil {
			add("shader type %s has no attribute usage entry", t)
		}
		if c.uniforms[t] == nil {
			add("shader type %s has no uniform usage entry", t)
		}
		seen := make(map[Attribute]bool)
		for _, a := range c.attributes[t] {
			if !a.valid() {
				add("shader type %s uses out of range attribute %d", t, a)
				continue
			}
			if seen[a] {
				add("shader type %s uses attribute %s twice", t, a)
			}
			seen[a] = true
			if c.attrInfo[a].stage != StageVertexInput {
				add("shader type %s binds varying %s as a vertex input", t, a)
			}
		}
		seenU := make(map[Uniform]bool)
		for _, u := range c.uniforms[t] {
			if !u.valid() {
				add("shader type %s uses out of range uniform %d", t, u)
				continue
			}
			if seenU[u] {
				add("shader type %s uses uniform %s twice", t, u)
			}
			seenU[u] = true
			if c.uniformTypes[u].GLSL == "" {
				add("shader type %s uses untyped uniform %s", t, u)
			}
		}
	}

	for i, name := range c.attributeNames {
		a := Attribute(i)
		if name == "" {
			add("attribute %d has no name", i)
		}
		info := c.attrInfo[a]
		if info.glsl == "" {
			add("attribute %s has no GLSL type", a)
		}
		if info.stage == StageVertexInput {
			if err := info.layout.validate(); err != nil {
				add("attribute %s layout: %v", a, err)
			}
		}
	}

	for i, name := range c.uniformNames {
		if name == "" {
			add("uniform %d has no name", i)
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("incomplete shader catalog: %s", strings.Join(problems, "; "))
	}
	return nil
}

// SourceLocationOf returns where the stages of a shader program live.
func (c *Catalog) SourceLocationOf(t ShaderType) (Location, error) {
	if !t.valid() {
		return Location{}, fmt.Errorf("%w: %s", ErrUnknownShaderType, t)
	}
	return c.locations[t], nil
}

// AttributesUsedBy returns the vertex inputs of a shader program. The index
// of each attribute in the result is its binding location.
func (c *Catalog) AttributesUsedBy(t ShaderType) ([]Attribute, error) {
	if !t.valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownShaderType, t)
	}
	return append([]Attribute{}, c.attributes[t]...), nil
}

// UniformsUsedBy returns the uniforms a shader program reads, in any stage.
func (c *Catalog) UniformsUsedBy(t ShaderType) ([]Uniform, error) {
	if !t.valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownShaderType, t)
	}
	return append([]Uniform{}, c.uniforms[t]...), nil
}

// LayoutOf returns the buffer layout of a vertex input. Varyings have no
// layout.
func (c *Catalog) LayoutOf(a Attribute) (Layout, error) {
	if !a.valid() {
		return Layout{}, fmt.Errorf("%w: %s", ErrUnknownAttribute, a)
	}
	info := c.attrInfo[a]
	if info.stage != StageVertexInput {
		return Layout{}, fmt.Errorf("%w: %s is a %s with no buffer layout", ErrUnknownAttribute, a, info.stage)
	}
	return info.layout, nil
}

// AttributeStage reports whether a is a vertex input or a varying.
func (c *Catalog) AttributeStage(a Attribute) (Stage, error) {
	if !a.valid() {
		return 0, fmt.Errorf("%w: %s", ErrUnknownAttribute, a)
	}
	return c.attrInfo[a].stage, nil
}

// AttributeGLSLType returns the GLSL type an attribute is declared with.
func (c *Catalog) AttributeGLSLType(a Attribute) (string, error) {
	if !a.valid() {
		return "", fmt.Errorf("%w: %s", ErrUnknownAttribute, a)
	}
	return c.attrInfo[a].glsl, nil
}

// UniformGLSLType returns the GLSL type a uniform is declared with. The
// type is empty for uniforms that have never been given one.
func (c *Catalog) UniformGLSLType(u Uniform) (UniformType, error) {
	if !u.valid() {
		return UniformType{}, fmt.Errorf("%w: %s", ErrUnknownIdentifier, u)
	}
	return c.uniformTypes[u], nil
}

// NameOf returns the GLSL binding name of a shader type, attribute or uniform.
func (c *Catalog) NameOf(id Identifier) (string, error) {
	switch v := id.(type) {
	case ShaderType:
		return c.ShaderName(v)
	case Attribute:
		return c.AttributeName(v)
	case Uniform:
		return c.UniformName(v)
	default:
		return "", fmt.Errorf("%w: %v", ErrUnknownIdentifier, id)
	}
}

// ShaderName returns the canonical name of a shader type.
func (c *Catalog) ShaderName(t ShaderType) (string, error) {
	if !t.valid() {
		return "", fmt.Errorf("%w: %s", ErrUnknownIdentifier, t)
	}
	return c.shaderNames[t], nil
}

// AttributeName returns the GLSL name of an attribute variable.
func (c *Catalog) AttributeName(a Attribute) (string, error) {
	if !a.valid() {
		return "", fmt.Errorf("%w: %s", ErrUnknownIdentifier, a)
	}
	return c.attributeNames[a], nil
}

// UniformName returns the GLSL name of a uniform variable.
func (c *Catalog) UniformName(u Uniform) (string, error) {
	if !u.valid() {
		return "", fmt.Errorf("%w: %s", ErrUnknownIdentifier, u)
	}
	return c.uniformNames[u], nil
}

// ShaderTypeByName resolves a canonical shader type name.
func (c *Catalog) ShaderTypeByName(name string) (ShaderType, error) {
	t, ok := c.shaderByName[name]
	if !ok {
		return 0, fmt.Errorf("%w: shader type %q", ErrUnknownIdentifier, name)
	}
	return t, nil
}

// AttributeByName resolves a GLSL attribute variable name.
func (c *Catalog) AttributeByName(name string) (Attribute, error) {
	a, ok := c.attributeByName[name]
	if !ok {
		return 0, fmt.Errorf("%w: attribute %q", ErrUnknownIdentifier, name)
	}
	return a, nil
}

// UniformByName resolves a GLSL uniform variable name.
func (c *Catalog) UniformByName(name string) (Uniform, error) {
	u, ok := c.uniformByName[name]
	if !ok {
		return 0, fmt.Errorf("%w: uniform %q", ErrUnknownIdentifier, name)
	}
	return u, nil
}

// ShaderTypes returns every shader type in declaration order.
func (c *Catalog) ShaderTypes() []ShaderType {
	out := make([]ShaderType, numShaderTypes)
	for i := range out {
		out[i] = ShaderType(i)
	}
	return out
}

// Attributes returns every attribute variable in declaration order.
func (c *Catalog) Attributes() []Attribute {
	out := make([]Attribute, numAttributes)
	for i := range out {
		out[i] = Attribute(i)
	}
	return out
}

// Uniforms returns every uniform variable in declaration order.
func (c *Catalog) Uniforms() []Uniform {
	out := make([]Uniform, numUniforms)
	for i := range out {
		out[i] = Uniform(i)
	}
	return out
}
