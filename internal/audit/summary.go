package audit

import "github.com/Faultbox/shaderstd/pkg/shaderstd"

// Usage lists the variables a shader's sources actually declare, by name.
type Usage struct {
	Attributes []string `yaml:"attributes"`
	Uniforms   []string `yaml:"uniforms"`
}

// Summary maps shader type names to what their sources declare. It is the
// derived counterpart of the catalog's usage tables.
func (r *Report) Summary() map[string]Usage {
	out := make(map[string]Usage, len(r.Shaders))
	for _, s := range r.Shaders {
		u := Usage{
			Attributes: make([]string, 0, len(s.Attributes)),
			Uniforms:   make([]string, 0, len(s.Uniforms)),
		}
		for _, a := range s.Attributes {
			u.Attributes = append(u.Attributes, a.String())
		}
		for _, v := range s.Uniforms {
			u.Uniforms = append(u.Uniforms, v.String())
		}
		out[s.Shader.String()] = u
	}
	return out
}

// Drift returns the shaders whose sources disagree with the catalog's usage
// tables or could not be read.
func (r *Report) Drift() []shaderstd.ShaderType {
	var out []shaderstd.ShaderType
	for _, s := range r.Shaders {
		for _, f := range s.Findings {
			if f.Kind == MissingSource || f.Kind == AttributeOrder || f.Kind == UniformSet || f.Kind == LocationMismatch {
				out = append(out, s.Shader)
				break
			}
		}
	}
	return out
}
