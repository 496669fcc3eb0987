// Package glslscan extracts uniform and input declarations from GLSL source.
//
// It is not a GLSL parser: it recognises the single-line declaration forms
// the engine's shaders use, after stripping comments.
package glslscan

import (
	"regexp"
	"strconv"
)

// Uniform is a `uniform <type> <name>;` declaration.
type Uniform struct {
	Type  string
	Name  string
	Array bool
}

// Input is an `in <type> <name>;` declaration, with any layout or
// interpolation qualifiers dropped.
type Input struct {
	Type     string
	Name     string
	Location int // -1 when no layout location is given
}

// Declarations holds what a single shader stage declares, in source order.
type Declarations struct {
	Uniforms []Uniform
	Inputs   []Input
}

var (
	blockComment = regexp.MustCompile(`(?s)/\*.*?\*/`)
	lineComment  = regexp.MustCompile(`//[^\n]*`)

	uniformDecl = regexp.MustCompile(`\buniform\s+(\w+)\s+(\w+)\s*(\[\s*\w*\s*\])?\s*;`)
	inputDecl   = regexp.MustCompile(`(?:\blayout\s*\(\s*location\s*=\s*(\d+)\s*\)\s*)?(?:\b(?:flat|smooth|noperspective)\s+)?\bin\s+(\w+)\s+(\w+)\s*;`)
)

// Scan returns the declarations found in src.
func Scan(src string) Declarations {
	src = blockComment.ReplaceAllString(src, "")
	src = lineComment.ReplaceAllString(src, "")

	var d Declarations
	for _, m := range uniformDecl.FindAllStringSubmatch(src, -1) {
		d.Uniforms = append(d.Uniforms, Uniform{
			Type:  m[1],
			Name:  m[2],
			Array: m[3] != "",
		})
	}
	for _, m := range inputDecl.FindAllStringSubmatch(src, -1) {
		in := Input{Type: m[2], Name: m[3], Location: -1}
		if m[1] != "" {
			in.Location, _ = strconv.Atoi(m[1])
		}
		d.Inputs = append(d.Inputs, in)
	}
	return d
}

// UniformNames returns the declared uniform names in source order.
func (d Declarations) UniformNames() []string {
	names := make([]string, len(d.Uniforms))
	for i, u := range d.Uniforms {
		names[i] = u.Name
	}
	return names
}

// InputNames returns the declared input names in source order.
func (d Declarations) InputNames() []string {
	names := make([]string, len(d.Inputs))
	for i, in := range d.Inputs {
		names[i] = in.Name
	}
	return names
}
