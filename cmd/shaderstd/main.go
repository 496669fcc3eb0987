// shaderstd is a CLI for inspecting the shader standard and checking GLSL
// sources against it.
package main

import (
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sort"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/shaderstd/assets"
	"github.com/Faultbox/shaderstd/internal/audit"
	"github.com/Faultbox/shaderstd/internal/config"
	"github.com/Faultbox/shaderstd/internal/glbind"
	"github.com/Faultbox/shaderstd/internal/logger"
	"github.com/Faultbox/shaderstd/pkg/shaderstd"
)

func main() {
	flag.Usage = printUsage
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	logger.Init(cfg.Logging.Level, cfg.Logging.LogFile)

	args := config.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	cat, err := shaderstd.New()
	if err != nil {
		logger.Error("shader standard is inconsistent", zap.Error(err))
		os.Exit(1)
	}

	command, rest := args[0], args[1:]
	var code int
	switch command {
	case "list", "ls":
		code = cmdList(os.Stdout, cat)
	case "show":
		code = cmdShow(os.Stdout, cat, rest)
	case "validate", "check":
		code = cmdValidate(os.Stdout, cat, cfg)
	case "summary":
		code = cmdSummary(os.Stdout, cat, cfg)
	case "export":
		code = cmdExport(os.Stdout, cat, rest)
	case "config":
		code = cmdConfig(cfg, rest)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		code = 1
	}

	logger.Sync()
	os.Exit(code)
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `shaderstd - shader standard utility

Usage:
  shaderstd [flags] <command> [options]

Commands:
  list                    List shader types
  show <shader>           Show sources, attributes and uniforms of a shader
  validate                Check GLSL sources against the standard
  summary                 Print the usage the GLSL sources actually declare
  export [-o file]        Write the standard as YAML
  config [-o file]        Write the effective configuration as YAML

Flags:
  -config <file>          Config file (default: ./config.yaml, then user config dir)
  -shaders <dir>          GLSL source directory (default: embedded sources)
  -warn-only              Report validation findings without failing
  -log-file <file>        Also write logs to file
  -debug                  Enable debug logging

Examples:
  shaderstd list
  shaderstd show skybox
  shaderstd -shaders assets/shaders validate
  shaderstd export -o standard.yaml`)
}

func cmdList(w io.Writer, cat *shaderstd.Catalog) int {
	for _, t := range cat.ShaderTypes() {
		loc, _ := cat.SourceLocationOf(t)
		fmt.Fprintf(w, "%-66s %s + %s\n", t, loc.Vertex, loc.Fragment)
	}
	return 0
}

func cmdShow(w io.Writer, cat *shaderstd.Catalog, args []string) int {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: shaderstd show <shader>")
		return 1
	}
	t, err := cat.ShaderTypeByName(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	loc, _ := cat.SourceLocationOf(t)
	fmt.Fprintf(w, "Shader:   %s\n", t)
	fmt.Fprintf(w, "Vertex:   %s\n", loc.Vertex)
	if loc.Geometry != "" {
		fmt.Fprintf(w, "Geometry: %s\n", loc.Geometry)
	}
	fmt.Fprintf(w, "Fragment: %s\n", loc.Fragment)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Attributes:")
	attrs, _ := cat.AttributesUsedBy(t)
	for i, a := range attrs {
		typ, _ := cat.AttributeGLSLType(a)
		l, err := cat.LayoutOf(a)
		if err != nil {
			fmt.Fprintf(w, "  %d  %-34s %-6s (no layout)\n", i, a, typ)
			continue
		}
		enum, err := glbind.ComponentType(l.Type)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s: %v\n", a, err)
			return 1
		}
		fmt.Fprintf(w, "  %d  %-34s %-6s %dx%s gl=0x%04X normalize=%t stride=%d offset=%d\n",
			i, a, typ, l.Components, l.Type, enum, l.Normalize, l.Stride, l.Offset)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Uniforms:")
	unis, _ := cat.UniformsUsedBy(t)
	if len(unis) == 0 {
		fmt.Fprintln(w, "  (none)")
	}
	for _, u := range unis {
		typ, _ := cat.UniformGLSLType(u)
		fmt.Fprintf(w, "  %-34s %s\n", u, typ)
	}
	return 0
}

func shaderSources(cfg *config.Config) fs.FS {
	if cfg.Shaders.Directory == "" {
		return assets.Shaders()
	}
	return os.DirFS(cfg.Shaders.Directory)
}

func cmdValidate(w io.Writer, cat *shaderstd.Catalog, cfg *config.Config) int {
	r := audit.New(cat, shaderSources(cfg), logger.Named("audit")).Run()

	for _, s := range r.Shaders {
		status := "ok"
		if len(s.Findings) > 0 {
			status = fmt.Sprintf("%d finding(s)", len(s.Findings))
		}
		fmt.Fprintf(w, "%-66s %s\n", s.Shader, status)
		for _, f := range s.Findings {
			fmt.Fprintf(w, "    %s\n", f)
		}
	}

	if r.OK() {
		return 0
	}
	fmt.Fprintf(w, "\n%d finding(s) in %d shader(s)\n", len(r.Findings()), countFailing(r))
	if cfg.Shaders.FailOnFindings {
		return 2
	}
	return 0
}

func countFailing(r *audit.Report) int {
	n := 0
	for _, s := range r.Shaders {
		if len(s.Findings) > 0 {
			n++
		}
	}
	return n
}

func cmdSummary(w io.Writer, cat *shaderstd.Catalog, cfg *config.Config) int {
	r := audit.New(cat, shaderSources(cfg), logger.Named("audit")).Run()

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r.Summary()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if err := enc.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if drift := r.Drift(); len(drift) > 0 {
		names := make([]string, len(drift))
		for i, t := range drift {
			names[i] = t.String()
		}
		sort.Strings(names)
		logger.Warn("sources disagree with the standard", zap.Strings("shaders", names))
	}
	return 0
}

func cmdExport(w io.Writer, cat *shaderstd.Catalog, args []string) int {
	flags := flag.NewFlagSet("export", flag.ContinueOnError)
	out := flags.String("o", "", "Output file (default: stdout)")
	if err := flags.Parse(args); err != nil {
		return 1
	}

	if *out == "" {
		if err := writeExport(w, cat); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	if err := exportToFile(*out, cat); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	logger.Info("exported shader standard", zap.String("file", *out))
	return 0
}

func cmdConfig(cfg *config.Config, args []string) int {
	flags := flag.NewFlagSet("config", flag.ContinueOnError)
	out := flags.String("o", "", "Output file (default: user config dir)")
	if err := flags.Parse(args); err != nil {
		return 1
	}

	var err error
	if *out == "" {
		err = cfg.Save()
	} else {
		err = cfg.SaveTo(*out)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
