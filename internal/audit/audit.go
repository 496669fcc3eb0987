// Package audit cross-checks the shader standard against GLSL sources.
package audit

import (
	"fmt"
	"io/fs"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/shaderstd/pkg/glslscan"
	"github.com/Faultbox/shaderstd/pkg/shaderstd"
)

// Kind classifies a finding.
type Kind int

const (
	MissingSource Kind = iota
	UnknownUniform
	UnknownAttribute
	TypeMismatch
	StageMismatch
	AttributeOrder
	UniformSet
	LocationMismatch
)

var kindNames = [...]string{
	MissingSource:    "missing_source",
	UnknownUniform:   "unknown_uniform",
	UnknownAttribute: "unknown_attribute",
	TypeMismatch:     "type_mismatch",
	StageMismatch:    "stage_mismatch",
	AttributeOrder:   "attribute_order",
	UniformSet:       "uniform_set",
	LocationMismatch: "location_mismatch",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Finding is one disagreement between the catalog and a source file.
type Finding struct {
	Shader  shaderstd.ShaderType
	Kind    Kind
	File    string
	Message string
}

func (f Finding) String() string {
	if f.File == "" {
		return fmt.Sprintf("%s: %s: %s", f.Shader, f.Kind, f.Message)
	}
	return fmt.Sprintf("%s: %s: %s: %s", f.Shader, f.Kind, f.File, f.Message)
}

// ShaderReport is what the sources of one shader program declare.
type ShaderReport struct {
	Shader shaderstd.ShaderType
	// Attributes are the recognised vertex inputs in declaration order.
	Attributes []shaderstd.Attribute
	// Uniforms are the recognised uniforms of all stages, deduplicated.
	Uniforms []shaderstd.Uniform
	Findings []Finding
}

// Report is the outcome of an audit run.
type Report struct {
	Shaders []ShaderReport
}

// OK reports whether no shader had findings.
func (r *Report) OK() bool {
	return len(r.Findings()) == 0
}

// Findings returns all findings in shader order.
func (r *Report) Findings() []Finding {
	var out []Finding
	for _, s := range r.Shaders {
		out = append(out, s.Findings...)
	}
	return out
}

// Auditor checks catalog entries against sources in a file system whose
// root corresponds to shaderstd.SourceRoot.
type Auditor struct {
	cat  *shaderstd.Catalog
	fsys fs.FS
	log  *zap.Logger
}

// New creates an Auditor. A nil logger disables logging.
func New(cat *shaderstd.Catalog, fsys fs.FS, log *zap.Logger) *Auditor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Auditor{cat: cat, fsys: fsys, log: log}
}

// Run audits every shader type in the catalog.
func (a *Auditor) Run() *Report {
	r := &Report{}
	for _, t := range a.cat.ShaderTypes() {
		sr := a.Shader(t)
		r.Shaders = append(r.Shaders, sr)
	}
	a.log.Info("audit finished",
		zap.Int("shaders", len(r.Shaders)),
		zap.Int("findings", len(r.Findings())))
	return r
}

// Shader audits a single shader type.
func (a *Auditor) Shader(t shaderstd.ShaderType) ShaderReport {
	sr := ShaderReport{Shader: t}
	log := a.log.With(zap.Stringer("shader", t))

	report := func(kind Kind, file, format string, args ...interface{}) {
		f := Finding{Shader: t, Kind: kind, File: file, Message: fmt.Sprintf(format, args...)}
		log.Warn("finding", zap.Stringer("kind", kind), zap.String("file", file), zap.String("detail", f.Message))
		sr.Findings = append(sr.Findings, f)
	}

	loc, err := a.cat.SourceLocationOf(t)
	if err != nil {
		report(MissingSource, "", "%v", err)
		return sr
	}

	wantAttrs, _ := a.cat.AttributesUsedBy(t)

	seenUniform := make(map[shaderstd.Uniform]bool)
	for i, p := range loc.Paths() {
		name := strings.TrimPrefix(p, shaderstd.SourceRoot+"/")
		data, err := fs.ReadFile(a.fsys, name)
		if err != nil {
			report(MissingSource, name, "%v", err)
			continue
		}
		log.Debug("scanning stage", zap.String("file", name))
		decl := glslscan.Scan(string(data))

		for _, u := range decl.Uniforms {
			if uni, ok := a.checkUniform(u, name, report); ok && !seenUniform[uni] {
				seenUniform[uni] = true
				sr.Uniforms = append(sr.Uniforms, uni)
			}
		}

		// The first stage reads vertex buffers, later stages read varyings.
		want := shaderstd.StageVarying
		if i == 0 {
			want = shaderstd.StageVertexInput
		}
		for _, in := range decl.Inputs {
			attr, ok := a.checkInput(in, want, name, report)
			if !ok || i != 0 {
				continue
			}
			sr.Attributes = append(sr.Attributes, attr)
			// An explicit location overrides the binding by position.
			if idx := slices.Index(wantAttrs, attr); in.Location >= 0 && idx >= 0 && in.Location != idx {
				report(LocationMismatch, name, "input %q has location %d, standard binds it at %d", in.Name, in.Location, idx)
			}
		}
	}

	a.compareUsage(&sr, report)
	return sr
}

type reportFunc func(kind Kind, file, format string, args ...interface{})

func (a *Auditor) checkUniform(u glslscan.Uniform, file string, report reportFunc) (shaderstd.Uniform, bool) {
	uni, err := a.cat.UniformByName(u.Name)
	if err != nil {
		report(UnknownUniform, file, "uniform %q is not in the standard", u.Name)
		return 0, false
	}
	want, _ := a.cat.UniformGLSLType(uni)
	got := shaderstd.UniformType{GLSL: u.Type, Array: u.Array}
	if want.GLSL != "" && want != got {
		report(TypeMismatch, file, "uniform %q declared %s, standard says %s", u.Name, got, want)
	}
	return uni, true
}

func (a *Auditor) checkInput(in glslscan.Input, want shaderstd.Stage, file string, report reportFunc) (shaderstd.Attribute, bool) {
	attr, err := a.cat.AttributeByName(in.Name)
	if err != nil {
		report(UnknownAttribute, file, "input %q is not in the standard", in.Name)
		return 0, false
	}
	if typ, _ := a.cat.AttributeGLSLType(attr); typ != in.Type {
		report(TypeMismatch, file, "input %q declared %s, standard says %s", in.Name, in.Type, typ)
	}
	if stage, _ := a.cat.AttributeStage(attr); stage != want {
		report(StageMismatch, file, "input %q is a %s but is read as a %s", in.Name, stage, want)
		return attr, false
	}
	return attr, true
}

func (a *Auditor) compareUsage(sr *ShaderReport, report reportFunc) {
	for _, f := range sr.Findings {
		if f.Kind == MissingSource {
			return
		}
	}

	wantAttrs, _ := a.cat.AttributesUsedBy(sr.Shader)
	if !slices.Equal(wantAttrs, sr.Attributes) {
		report(AttributeOrder, "", "sources declare %v, standard says %v", sr.Attributes, wantAttrs)
	}

	wantUnis, _ := a.cat.UniformsUsedBy(sr.Shader)
	if missing, extra := diffUniforms(wantUnis, sr.Uniforms); len(missing) > 0 || len(extra) > 0 {
		report(UniformSet, "", "missing %v, undeclared in standard %v", missing, extra)
	}
}

// diffUniforms returns uniforms in want but not got, and in got but not want.
func diffUniforms(want, got []shaderstd.Uniform) (missing, extra []shaderstd.Uniform) {
	for _, u := range want {
		if !slices.Contains(got, u) {
			missing = append(missing, u)
		}
	}
	for _, u := range got {
		if !slices.Contains(want, u) {
			extra = append(extra, u)
		}
	}
	slices.Sort(missing)
	slices.Sort(extra)
	return missing, extra
}
