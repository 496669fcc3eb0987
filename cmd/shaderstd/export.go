package main

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/shaderstd/pkg/shaderstd"
)

type exportedAttribute struct {
	Name   string            `yaml:"name"`
	Stage  string            `yaml:"stage"`
	GLSL   string            `yaml:"glsl"`
	Layout *shaderstd.Layout `yaml:"layout,omitempty"`
}

type exportedUniform struct {
	Name string `yaml:"name"`
	GLSL string `yaml:"glsl,omitempty"`
}

type exportedShader struct {
	Name       string             `yaml:"name"`
	Sources    shaderstd.Location `yaml:"sources"`
	Attributes []string           `yaml:"attributes"`
	Uniforms   []string           `yaml:"uniforms"`
}

type exportedStandard struct {
	Shaders    []exportedShader    `yaml:"shaders"`
	Attributes []exportedAttribute `yaml:"attributes"`
	Uniforms   []exportedUniform   `yaml:"uniforms"`
}

// buildExport flattens the catalog into name-keyed records.
func buildExport(cat *shaderstd.Catalog) exportedStandard {
	var doc exportedStandard

	for _, t := range cat.ShaderTypes() {
		loc, _ := cat.SourceLocationOf(t)
		attrs, _ := cat.AttributesUsedBy(t)
		unis, _ := cat.UniformsUsedBy(t)

		s := exportedShader{
			Name:       t.String(),
			Sources:    loc,
			Attributes: make([]string, 0, len(attrs)),
			Uniforms:   make([]string, 0, len(unis)),
		}
		for _, a := range attrs {
			s.Attributes = append(s.Attributes, a.String())
		}
		for _, u := range unis {
			s.Uniforms = append(s.Uniforms, u.String())
		}
		doc.Shaders = append(doc.Shaders, s)
	}

	for _, a := range cat.Attributes() {
		stage, _ := cat.AttributeStage(a)
		typ, _ := cat.AttributeGLSLType(a)
		ea := exportedAttribute{Name: a.String(), Stage: stage.String(), GLSL: typ}
		if l, err := cat.LayoutOf(a); err == nil {
			ea.Layout = &l
		}
		doc.Attributes = append(doc.Attributes, ea)
	}

	for _, u := range cat.Uniforms() {
		typ, _ := cat.UniformGLSLType(u)
		eu := exportedUniform{Name: u.String()}
		if typ.GLSL != "" {
			eu.GLSL = typ.String()
		}
		doc.Uniforms = append(doc.Uniforms, eu)
	}

	return doc
}

func writeExport(w io.Writer, cat *shaderstd.Catalog) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(buildExport(cat)); err != nil {
		return err
	}
	return enc.Close()
}

// exportToFile writes the export to path, including the close error.
func exportToFile(path string, cat *shaderstd.Catalog) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := writeExport(f, cat); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}
