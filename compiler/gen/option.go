package gen

import (
	"errors"
	"log/slog"
)

// Option configures code generation.
type Option func(*Config) error

// WithInputs sets the paths of the tag, attribute and linking attribute lists.
func WithInputs(tags, attrs, xlink string) Option {
	return func(c *Config) error {
		if tags == "" || attrs == "" || xlink == "" {
			return NewConfigError("Inputs", nil, "every name list needs a path")
		}
		c.Inputs = Inputs{Tags: tags, Attrs: attrs, XLink: xlink}
		return nil
	}
}

// WithTarget sets the output directory.
// The directory where generated artifacts will be written.
func WithTarget(dir string) Option {
	return func(c *Config) error {
		if dir == "" {
			return NewConfigError("Target", nil, "target directory cannot be empty")
		}
		c.Target = dir
		return nil
	}
}

// WithLayout overrides the C++ layout. Zero fields keep their defaults.
func WithLayout(l Layout) Option {
	return func(c *Config) error {
		c.Layout = l.merge(DefaultLayout())
		return nil
	}
}

// WithFeatures enables specific features.
func WithFeatures(features ...Feature) Option {
	return func(c *Config) error {
		c.Features = append(c.Features, features...)
		return nil
	}
}

// WithFeatureNames enables features by name.
func WithFeatureNames(names ...string) Option {
	return func(c *Config) error {
		for _, name := range names {
			f, ok := FeatureByName(name)
			if !ok {
				return NewConfigError("Features", name, "unknown feature")
			}
			c.Features = append(c.Features, f)
		}
		return nil
	}
}

// WithSpecialCases appends rules to the exception table. A rule with the kind
// and name of a built-in rule replaces it.
func WithSpecialCases(rules ...SpecialCase) Option {
	return func(c *Config) error {
		for _, sc := range rules {
			if err := sc.validate(); err != nil {
				return err
			}
		}
		c.SpecialCases = c.SpecialCases.Merge(rules)
		return nil
	}
}

// WithStrict fails generation when diagnostics are reported.
// It implies FeatureDiagnostics.
func WithStrict() Option {
	return func(c *Config) error {
		c.Strict = true
		if !c.enabled(FeatureDiagnostics) {
			c.Features = append(c.Features, FeatureDiagnostics)
		}
		return nil
	}
}

// WithGoBind sets the package and file name of the Go bindings.
func WithGoBind(pkg, file string) Option {
	return func(c *Config) error {
		if pkg == "" {
			pkg = c.GoBind.Package
		}
		if file == "" {
			file = c.GoBind.File
		}
		c.GoBind = GoBind{Package: pkg, File: file}
		return nil
	}
}

// WithLogger sets the logger of the run.
func WithLogger(l *slog.Logger) Option {
	return func(c *Config) error {
		c.Logger = l
		return nil
	}
}

// Apply applies options to the config.
// It returns the first error encountered.
func (c *Config) Apply(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	return nil
}

// ApplyAll applies options and collects all errors.
// Returns a joined error if any options failed.
func (c *Config) ApplyAll(opts ...Option) error {
	var errs []error
	for _, opt := range opts {
		if err := opt(c); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// NewConfig creates a new Config from DefaultConfig and the given options.
func NewConfig(opts ...Option) (*Config, error) {
	c := DefaultConfig()
	if err := c.Apply(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

// MustNewConfig creates a new Config with the given options.
// It panics if any option fails.
func MustNewConfig(opts ...Option) *Config {
	c, err := NewConfig(opts...)
	if err != nil {
		panic(err)
	}
	return c
}
