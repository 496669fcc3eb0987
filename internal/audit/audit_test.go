package audit

import (
	"io/fs"
	"os"
	"reflect"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/Faultbox/shaderstd/assets"
	"github.com/Faultbox/shaderstd/pkg/shaderstd"
)

// fixture copies the embedded shader sources into a mutable file system.
func fixture(t *testing.T) fstest.MapFS {
	t.Helper()

	src := assets.Shaders()
	out := fstest.MapFS{}
	err := fs.WalkDir(src, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := fs.ReadFile(src, path)
		if err != nil {
			return err
		}
		out[path] = &fstest.MapFile{Data: data}
		return nil
	})
	if err != nil {
		t.Fatalf("copying shader sources: %v", err)
	}
	return out
}

func edit(t *testing.T, fsys fstest.MapFS, name, old, repl string) {
	t.Helper()
	f, ok := fsys[name]
	if !ok {
		t.Fatalf("fixture has no %s", name)
	}
	src := string(f.Data)
	if !strings.Contains(src, old) {
		t.Fatalf("%s does not contain %q", name, old)
	}
	f.Data = []byte(strings.Replace(src, old, repl, 1))
}

func findingsOf(r *Report, shader shaderstd.ShaderType, kind Kind) []Finding {
	var out []Finding
	for _, f := range r.Findings() {
		if f.Shader == shader && f.Kind == kind {
			out = append(out, f)
		}
	}
	return out
}

func TestEmbeddedSourcesMatchStandard(t *testing.T) {
	r := New(shaderstd.Standard(), assets.Shaders(), nil).Run()

	for _, f := range r.Findings() {
		t.Errorf("unexpected finding: %s", f)
	}
	if len(r.Shaders) != len(shaderstd.Standard().ShaderTypes()) {
		t.Errorf("expected a report per shader type, got %d", len(r.Shaders))
	}
	if !r.OK() {
		t.Error("expected OK report")
	}
	if drift := r.Drift(); len(drift) != 0 {
		t.Errorf("unexpected drift %v", drift)
	}
}

func TestDirectorySourcesMatchStandard(t *testing.T) {
	if _, err := os.Stat("../../assets/shaders"); err != nil {
		t.Skip("shader directory not available")
	}
	r := New(shaderstd.Standard(), os.DirFS("../../assets/shaders"), nil).Run()
	if !r.OK() {
		t.Errorf("unexpected findings: %v", r.Findings())
	}
}

func TestSummary(t *testing.T) {
	r := New(shaderstd.Standard(), assets.Shaders(), nil).Run()
	sum := r.Summary()

	text, ok := sum["text"]
	if !ok {
		t.Fatal("summary has no text entry")
	}
	if want := []string{"passthrough_texture_coordinate", "xy_position"}; !reflect.DeepEqual(text.Attributes, want) {
		t.Errorf("expected attributes %v, got %v", want, text.Attributes)
	}
	if want := []string{"camera_to_clip", "text_texture_unit", "rgb_color"}; !reflect.DeepEqual(text.Uniforms, want) {
		t.Errorf("expected uniforms %v, got %v", want, text.Uniforms)
	}

	colored := sum["absolute_position_with_colored_vertex"]
	if len(colored.Uniforms) != 0 {
		t.Errorf("expected no uniforms, got %v", colored.Uniforms)
	}
}

func TestFindings(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(t *testing.T, fsys fstest.MapFS)
		shader shaderstd.ShaderType
		kind   Kind
	}{
		{
			name: "missing fragment source",
			mutate: func(t *testing.T, fsys fstest.MapFS) {
				delete(fsys, "cubemap.frag")
			},
			shader: shaderstd.Skybox,
			kind:   MissingSource,
		},
		{
			name: "unknown uniform",
			mutate: func(t *testing.T, fsys fstest.MapFS) {
				edit(t, fsys, "text.frag", "uniform vec3 rgb_color;", "uniform vec3 rgb_color;\nuniform float glow;")
			},
			shader: shaderstd.Text,
			kind:   UnknownUniform,
		},
		{
			name: "uniform type mismatch",
			mutate: func(t *testing.T, fsys fstest.MapFS) {
				edit(t, fsys, "solid_color.frag", "uniform vec4 rgba_color;", "uniform vec3 rgba_color;")
			},
			shader: shaderstd.AbsolutePositionWithSolidColor,
			kind:   TypeMismatch,
		},
		{
			name: "uniform array mismatch",
			mutate: func(t *testing.T, fsys fstest.MapFS) {
				edit(t, fsys, "CWL_v_transformation_with_bones_and_texture_coordinate_passthrough.vert",
					"bone_animation_transforms[MAX_BONES];", "bone_animation_transforms;")
			},
			shader: shaderstd.CWLVTransformationWithBonesAndTextures,
			kind:   TypeMismatch,
		},
		{
			name: "input type mismatch",
			mutate: func(t *testing.T, fsys fstest.MapFS) {
				edit(t, fsys, "colored_vertices.vert", "in vec3 passthrough_rgb_color;", "in vec4 passthrough_rgb_color;")
			},
			shader: shaderstd.AbsolutePositionWithColoredVertex,
			kind:   TypeMismatch,
		},
		{
			name: "unknown attribute",
			mutate: func(t *testing.T, fsys fstest.MapFS) {
				edit(t, fsys, "absolute_position.vert", "in vec3 xyz_position;", "in vec3 xyz_position;\nin vec3 tangent;")
			},
			shader: shaderstd.AbsolutePositionWithSolidColor,
			kind:   UnknownAttribute,
		},
		{
			name: "varying read by vertex stage",
			mutate: func(t *testing.T, fsys fstest.MapFS) {
				edit(t, fsys, "cubemap.vert", "in vec3 xyz_position;", "in vec3 xyz_position;\nin vec3 normal;")
			},
			shader: shaderstd.Skybox,
			kind:   StageMismatch,
		},
		{
			name: "vertex input read by fragment stage",
			mutate: func(t *testing.T, fsys fstest.MapFS) {
				edit(t, fsys, "colored_vertices.frag", "in vec3 rgb_color;", "in vec3 passthrough_rgb_color;")
			},
			shader: shaderstd.AbsolutePositionWithColoredVertex,
			kind:   StageMismatch,
		},
		{
			name: "attribute order",
			mutate: func(t *testing.T, fsys fstest.MapFS) {
				edit(t, fsys, "text.vert",
					"layout (location = 0) in vec2 passthrough_texture_coordinate;\nlayout (location = 1) in vec2 xy_position;",
					"layout (location = 0) in vec2 xy_position;\nlayout (location = 1) in vec2 passthrough_texture_coordinate;")
			},
			shader: shaderstd.Text,
			kind:   AttributeOrder,
		},
		{
			name: "explicit location contradicts order",
			mutate: func(t *testing.T, fsys fstest.MapFS) {
				edit(t, fsys, "text.vert",
					"layout (location = 0) in vec2 passthrough_texture_coordinate;\nlayout (location = 1) in vec2 xy_position;",
					"layout (location = 1) in vec2 passthrough_texture_coordinate;\nlayout (location = 0) in vec2 xy_position;")
			},
			shader: shaderstd.Text,
			kind:   LocationMismatch,
		},
		{
			name: "uniform set",
			mutate: func(t *testing.T, fsys fstest.MapFS) {
				edit(t, fsys, "cubemap.frag", "uniform samplerCube skybox_texture_unit;", "")
			},
			shader: shaderstd.Skybox,
			kind:   UniformSet,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := fixture(t)
			tt.mutate(t, fsys)

			r := New(shaderstd.Standard(), fsys, nil).Run()
			if r.OK() {
				t.Fatal("expected findings")
			}
			if got := findingsOf(r, tt.shader, tt.kind); len(got) == 0 {
				t.Errorf("expected a %s finding for %s, got %v", tt.kind, tt.shader, r.Findings())
			}
		})
	}
}

func TestMissingSourceSkipsUsageComparison(t *testing.T) {
	fsys := fixture(t)
	delete(fsys, "cubemap.vert")

	r := New(shaderstd.Standard(), fsys, nil).Run()

	if len(findingsOf(r, shaderstd.Skybox, MissingSource)) != 1 {
		t.Errorf("expected one missing source finding, got %v", r.Findings())
	}
	if len(findingsOf(r, shaderstd.Skybox, AttributeOrder)) != 0 {
		t.Error("attribute order should not be compared when a source is missing")
	}
	if drift := r.Drift(); !reflect.DeepEqual(drift, []shaderstd.ShaderType{shaderstd.Skybox}) {
		t.Errorf("expected skybox drift, got %v", drift)
	}
}

func TestLocationMismatchKeepsOrderClean(t *testing.T) {
	fsys := fixture(t)
	edit(t, fsys, "text.vert",
		"layout (location = 0) in vec2 passthrough_texture_coordinate;\nlayout (location = 1) in vec2 xy_position;",
		"layout (location = 1) in vec2 passthrough_texture_coordinate;\nlayout (location = 0) in vec2 xy_position;")

	r := New(shaderstd.Standard(), fsys, nil).Run()

	if got := findingsOf(r, shaderstd.Text, LocationMismatch); len(got) != 2 {
		t.Errorf("expected two location findings, got %v", r.Findings())
	}
	if got := findingsOf(r, shaderstd.Text, AttributeOrder); len(got) != 0 {
		t.Errorf("declaration order is unchanged, got %v", got)
	}
	if drift := r.Drift(); !reflect.DeepEqual(drift, []shaderstd.ShaderType{shaderstd.Text}) {
		t.Errorf("expected text drift, got %v", drift)
	}
}

func TestFindingString(t *testing.T) {
	f := Finding{Shader: shaderstd.Text, Kind: TypeMismatch, File: "text.frag", Message: "bad"}
	if got, want := f.String(), "text: type_mismatch: text.frag: bad"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
	f.File = ""
	if got, want := f.String(), "text: type_mismatch: bad"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
	if got := Kind(42).String(); got != "Kind(42)" {
		t.Errorf("unexpected %q", got)
	}
}
