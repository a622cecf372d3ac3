package gen

import (
	"io"
	"os"
	"path/filepath"
)

var (
	// FeatureDiagnostics reports names that normalize to the same identifier
	// and names carrying characters that are not valid in an identifier.
	// The generated artifacts are not affected.
	FeatureDiagnostics = Feature{
		Name:        "diagnostics",
		Stage:       Stable,
		Default:     false,
		Description: "Reports symbol collisions and malformed names without changing the output",
	}

	// FeatureGoBind writes a Go file listing every generated name with its
	// lookup key, for tools that need to cross-check the enumeration.
	FeatureGoBind = Feature{
		Name:        "gobind",
		Stage:       Alpha,
		Default:     false,
		Description: "Generates a Go table of every qualified name",
		cleanup: func(c *Config) error {
			if c.GoBind.File == "" {
				return nil
			}
			path := filepath.Join(c.Target, c.GoBind.File)
			if !generated(path, "// "+goBindHeader) {
				return nil
			}
			return remove(filepath.Dir(path), filepath.Base(path))
		},
	}

	// FeatureUnguardedInit emits the init function without the one-time
	// guard. The output is then identical to the historical generator.
	FeatureUnguardedInit = Feature{
		Name:        "init/unguarded",
		Stage:       Stable,
		Default:     false,
		Description: "Emits init() without the one-time initialization guard",
	}

	// AllFeatures holds a list of all feature-flags.
	AllFeatures = []Feature{
		FeatureDiagnostics,
		FeatureGoBind,
		FeatureUnguardedInit,
	}
	// allFeatures includes all public and private features.
	allFeatures = AllFeatures
)

// FeatureStage describes the stage of the codegen feature.
type FeatureStage int

const (
	_ FeatureStage = iota

	// Experimental features are in development.
	Experimental

	// Alpha features are complete, but their output may still change.
	Alpha

	// Beta features are documented and no breaking-changes are expected.
	Beta

	// Stable features are Beta features that were running for a while.
	Stable
)

// String returns the stage name.
func (s FeatureStage) String() string {
	switch s {
	case Experimental:
		return "experimental"
	case Alpha:
		return "alpha"
	case Beta:
		return "beta"
	case Stable:
		return "stable"
	default:
		return "unknown"
	}
}

// A Feature of the generator.
type Feature struct {
	// Name of the feature.
	Name string

	// Stage of the feature.
	Stage FeatureStage

	// Default values indicates if this feature is enabled by default.
	Default bool

	// A Description of this feature.
	Description string

	// cleanup used to cleanup all changes when a feature-flag is removed.
	// e.g. delete files from previous codegen runs.
	cleanup func(*Config) error
}

// FeatureByName returns the feature registered under name.
func FeatureByName(name string) (Feature, bool) {
	for _, f := range allFeatures {
		if f.Name == name {
			return f, true
		}
	}
	return Feature{}, false
}

// cleanupFeatures removes the leftovers of disabled features.
func cleanupFeatures(c *Config) error {
	for _, f := range allFeatures {
		if f.cleanup == nil || c.enabled(f) {
			continue
		}
		if err := f.cleanup(c); err != nil {
			return err
		}
	}
	return nil
}

// generated reports whether the file at path starts with header.
func generated(path, header string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()
	buf := make([]byte, len(header))
	if _, err := io.ReadFull(f, buf); err != nil {
		return false
	}
	return string(buf) == header
}

// remove file (if exists) and its dir if it's empty.
func remove(dir, file string) error {
	if err := os.Remove(filepath.Join(dir, file)); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	infos, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	if len(infos) == 0 {
		return os.Remove(dir)
	}
	return nil
}
