package gen

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LevelTrace is a log level more verbose than slog.LevelDebug. The generator
// logs one record per resolved entry at this level.
const LevelTrace = slog.Level(-8)

// Inputs holds the paths of the three name lists.
type Inputs struct {
	Tags  string `yaml:"tags"`
	Attrs string `yaml:"attrs"`
	XLink string `yaml:"xlink"`
}

// Paths returns the inputs in list order.
func (in Inputs) Paths() []string {
	return []string{in.Tags, in.Attrs, in.XLink}
}

// Layout describes the C++ surface of the generated artifacts.
type Layout struct {
	// Outer is the namespace wrapping every block.
	Outer string `yaml:"outer"`
	// Namespace receives tags, attributes and the init function.
	Namespace string `yaml:"namespace"`
	// InjectedNamespace receives entries moved by special cases.
	InjectedNamespace string `yaml:"injected_namespace"`
	// XLinkNamespace receives the linking attributes.
	XLinkNamespace string `yaml:"xlink_namespace"`
	// ElementNamespace is the namespace id passed to makeId for tags.
	ElementNamespace string `yaml:"element_namespace"`

	Header        string   `yaml:"header"`
	HeaderGuard   string   `yaml:"header_guard"`
	XLinkHeader   string   `yaml:"xlink_header"`
	XLinkGuard    string   `yaml:"xlink_guard"`
	Source        string   `yaml:"source"`
	Includes      []string `yaml:"includes"`
	Macros        []string `yaml:"macros"`
	SourceInclude []string `yaml:"source_includes"`
	InitFunc      string   `yaml:"init_func"`
}

// DefaultLayout returns the layout of the SVG names of the engine.
func DefaultLayout() Layout {
	return Layout{
		Outer:             "WebCore",
		Namespace:         "SVGNames",
		InjectedNamespace: "HTMLNames",
		XLinkNamespace:    "XLinkNames",
		ElementNamespace:  "DOM::svgNamespace",
		Header:            "SVGNames.h",
		HeaderGuard:       "SVGNAMES_H",
		XLinkHeader:       "XLinkNames.h",
		XLinkGuard:        "XLinkNames_H",
		Source:            "SVGNames.cpp",
		Includes: []string{
			"misc/htmlnames.h",
			"dom/QualifiedName.h",
			"xml/Document.h",
		},
		Macros: []string{"idAttr ATTR_ID"},
		SourceInclude: []string{
			"svg/SVGNames.h",
			"svg/XLinkNames.h",
		},
		InitFunc: "init",
	}
}

// merge fills the zero fields of l from def.
func (l Layout) merge(def Layout) Layout {
	set := func(dst *string, v string) {
		if *dst == "" {
			*dst = v
		}
	}
	set(&l.Outer, def.Outer)
	set(&l.Namespace, def.Namespace)
	set(&l.InjectedNamespace, def.InjectedNamespace)
	set(&l.XLinkNamespace, def.XLinkNamespace)
	set(&l.ElementNamespace, def.ElementNamespace)
	set(&l.Header, def.Header)
	set(&l.HeaderGuard, def.HeaderGuard)
	set(&l.XLinkHeader, def.XLinkHeader)
	set(&l.XLinkGuard, def.XLinkGuard)
	set(&l.Source, def.Source)
	set(&l.InitFunc, def.InitFunc)
	if l.Includes == nil {
		l.Includes = def.Includes
	}
	if l.Macros == nil {
		l.Macros = def.Macros
	}
	if l.SourceInclude == nil {
		l.SourceInclude = def.SourceInclude
	}
	return l
}

// Qualifier returns the prefix used to reference an entity of namespace ns
// from the init function.
func (l Layout) Qualifier(ns string) string {
	if ns == l.Namespace {
		return ""
	}
	return l.Outer + "::" + ns + "::"
}

// GoBind configures the Go bindings artifact.
type GoBind struct {
	Package string `yaml:"package"`
	File    string `yaml:"file"`
}

// Config is the configuration of a generator run.
type Config struct {
	Inputs Inputs `yaml:"inputs"`
	// Target is the output directory of the artifacts.
	Target string `yaml:"target"`
	Layout Layout `yaml:"layout"`
	// Features lists the enabled feature-flags.
	Features []Feature `yaml:"-"`
	// FeatureNames is the file form of Features.
	FeatureNames []string `yaml:"features"`
	// SpecialCases extends DefaultSpecialCases.
	SpecialCases SpecialCases `yaml:"special_cases"`
	// Strict fails the run when diagnostics are reported.
	Strict bool   `yaml:"strict"`
	GoBind GoBind `yaml:"gobind"`

	Logger *slog.Logger `yaml:"-"`
}

// DefaultConfig returns the configuration of the historical generator run.
func DefaultConfig() *Config {
	return &Config{
		Inputs: Inputs{
			Tags:  "svgtags.in",
			Attrs: "svgattrs.in",
			XLink: "xlinkattrs.in",
		},
		Target: ".",
		Layout: DefaultLayout(),
		GoBind: GoBind{Package: "svgnames", File: "svgnames_gen.go"},
	}
}

// LoadConfigFile reads a YAML configuration. Relative paths in the file are
// resolved against the directory of the file. Fields missing from the file
// keep their defaults.
func LoadConfigFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, NewConfigError("ConfigFile", path, err.Error())
	}
	defer f.Close()
	c, err := DecodeConfig(f)
	if err != nil {
		return nil, err
	}
	dir := filepath.Dir(path)
	for _, p := range []*string{&c.Inputs.Tags, &c.Inputs.Attrs, &c.Inputs.XLink, &c.Target} {
		if *p != "" && !filepath.IsAbs(*p) {
			*p = filepath.Join(dir, *p)
		}
	}
	return c, nil
}

// DecodeConfig decodes a YAML configuration from r on top of DefaultConfig.
func DecodeConfig(r io.Reader) (*Config, error) {
	c := DefaultConfig()
	var file Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && err != io.EOF {
		return nil, NewConfigError("ConfigFile", nil, err.Error())
	}
	opts := []Option{WithLayout(file.Layout)}
	in := c.Inputs
	for _, p := range []struct {
		dst *string
		v   string
	}{
		{&in.Tags, file.Inputs.Tags},
		{&in.Attrs, file.Inputs.Attrs},
		{&in.XLink, file.Inputs.XLink},
	} {
		if p.v != "" {
			*p.dst = p.v
		}
	}
	opts = append(opts, WithInputs(in.Tags, in.Attrs, in.XLink))
	if file.Target != "" {
		opts = append(opts, WithTarget(file.Target))
	}
	if len(file.FeatureNames) > 0 {
		opts = append(opts, WithFeatureNames(file.FeatureNames...))
	}
	if len(file.SpecialCases) > 0 {
		opts = append(opts, WithSpecialCases(file.SpecialCases...))
	}
	if file.Strict {
		opts = append(opts, WithStrict())
	}
	if file.GoBind.Package != "" || file.GoBind.File != "" {
		opts = append(opts, WithGoBind(file.GoBind.Package, file.GoBind.File))
	}
	if err := c.Apply(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

// FeatureEnabled reports if the given feature name is enabled.
func (c *Config) FeatureEnabled(name string) (bool, error) {
	for _, f := range allFeatures {
		if name == f.Name {
			for _, e := range c.Features {
				if e.Name == f.Name {
					return true, nil
				}
			}
			return f.Default, nil
		}
	}
	return false, fmt.Errorf("unexpected feature name %q", name)
}

// enabled is FeatureEnabled for the built-in features.
func (c *Config) enabled(f Feature) bool {
	ok, _ := c.FeatureEnabled(f.Name)
	return ok
}

// Table returns the effective exception table.
func (c *Config) Table() SpecialCases {
	return DefaultSpecialCases.Merge(c.SpecialCases)
}

// Validate reports a ConfigError for incomplete configurations.
func (c *Config) Validate() error {
	switch {
	case c.Inputs.Tags == "":
		return NewConfigError("Inputs.Tags", nil, "missing tag list")
	case c.Inputs.Attrs == "":
		return NewConfigError("Inputs.Attrs", nil, "missing attribute list")
	case c.Inputs.XLink == "":
		return NewConfigError("Inputs.XLink", nil, "missing linking attribute list")
	case c.Target == "":
		return NewConfigError("Target", nil, "missing target directory")
	}
	l := c.Layout
	for _, a := range []struct{ option, name string }{
		{"Layout.Header", l.Header},
		{"Layout.XLinkHeader", l.XLinkHeader},
		{"Layout.Source", l.Source},
	} {
		if a.name == "" {
			return NewConfigError(a.option, nil, "missing artifact name")
		}
	}
	if l.Header == l.XLinkHeader || l.Header == l.Source || l.XLinkHeader == l.Source {
		return NewConfigError("Layout", nil, "artifact names must be distinct")
	}
	if c.enabled(FeatureGoBind) && (c.GoBind.Package == "" || c.GoBind.File == "") {
		return NewConfigError("GoBind", nil, "go bindings need a package and a file name")
	}
	return c.Table().Validate()
}

// logger returns the configured logger or a discarding one.
func (c *Config) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.Logger
}
