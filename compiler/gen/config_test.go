package gen

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()

	assert.Equal(t, Inputs{Tags: "svgtags.in", Attrs: "svgattrs.in", XLink: "xlinkattrs.in"}, c.Inputs)
	assert.Equal(t, ".", c.Target)
	assert.Equal(t, DefaultLayout(), c.Layout)
	assert.Empty(t, c.Features)
	assert.NoError(t, c.Validate())
}

func TestConfigFeatureEnabled(t *testing.T) {
	t.Run("disabled by default", func(t *testing.T) {
		c := DefaultConfig()
		for _, f := range AllFeatures {
			enabled, err := c.FeatureEnabled(f.Name)
			require.NoError(t, err)
			assert.False(t, enabled, f.Name)
		}
	})

	t.Run("enabled feature", func(t *testing.T) {
		c := MustNewConfig(WithFeatures(FeatureGoBind))
		enabled, err := c.FeatureEnabled("gobind")
		require.NoError(t, err)
		assert.True(t, enabled)
	})

	t.Run("unknown feature", func(t *testing.T) {
		_, err := DefaultConfig().FeatureEnabled("privacy")
		assert.Error(t, err)
	})
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		option string
	}{
		{"missing tags", func(c *Config) { c.Inputs.Tags = "" }, "Inputs.Tags"},
		{"missing attrs", func(c *Config) { c.Inputs.Attrs = "" }, "Inputs.Attrs"},
		{"missing xlink", func(c *Config) { c.Inputs.XLink = "" }, "Inputs.XLink"},
		{"missing target", func(c *Config) { c.Target = "" }, "Target"},
		{"missing source", func(c *Config) { c.Layout.Source = "" }, "Layout.Source"},
		{"clashing artifacts", func(c *Config) { c.Layout.XLinkHeader = c.Layout.Header }, "Layout"},
		{"gobind without package", func(c *Config) {
			c.Features = []Feature{FeatureGoBind}
			c.GoBind.Package = ""
		}, "GoBind"},
		{"invalid rule", func(c *Config) { c.SpecialCases = SpecialCases{{Name: "x"}} }, "SpecialCases"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig()
			tt.modify(c)

			err := c.Validate()
			require.Error(t, err)
			var cerr *ConfigError
			require.ErrorAs(t, err, &cerr)
			assert.True(t, strings.HasPrefix(cerr.Option, tt.option), cerr.Option)
		})
	}
}

func TestDecodeConfig(t *testing.T) {
	t.Run("empty document keeps defaults", func(t *testing.T) {
		c, err := DecodeConfig(strings.NewReader(""))
		require.NoError(t, err)
		def := DefaultConfig()
		assert.Equal(t, def.Inputs, c.Inputs)
		assert.Equal(t, def.Layout, c.Layout)
		assert.Equal(t, def.Target, c.Target)
	})

	t.Run("full document", func(t *testing.T) {
		c, err := DecodeConfig(strings.NewReader(`
inputs:
  tags: lists/tags.in
target: gen
layout:
  namespace: MathMLNames
  macros: []
features:
  - gobind
  - init/unguarded
special_cases:
  - name: use
    kind: tag
    lookup_prefix: ATTR_
    init: local-name
    reason: use shares its key with the attribute
strict: true
gobind:
  package: mathml
`))
		require.NoError(t, err)

		assert.Equal(t, "lists/tags.in", c.Inputs.Tags)
		assert.Equal(t, "svgattrs.in", c.Inputs.Attrs)
		assert.Equal(t, "gen", c.Target)
		assert.Equal(t, "MathMLNames", c.Layout.Namespace)
		assert.Equal(t, "HTMLNames", c.Layout.InjectedNamespace)
		assert.Empty(t, c.Layout.Macros)
		assert.True(t, c.enabled(FeatureGoBind))
		assert.True(t, c.enabled(FeatureUnguardedInit))
		assert.True(t, c.enabled(FeatureDiagnostics))
		assert.True(t, c.Strict)
		assert.Equal(t, GoBind{Package: "mathml", File: "svgnames_gen.go"}, c.GoBind)

		sc, ok := c.Table().Lookup(KindTag, "use")
		require.True(t, ok)
		assert.Equal(t, InitLocalName, sc.Init)
		assert.Equal(t, AttrPrefix, sc.LookupPrefix)
	})

	t.Run("unknown field", func(t *testing.T) {
		_, err := DecodeConfig(strings.NewReader("output: gen\n"))
		require.Error(t, err)
		assert.True(t, IsConfigError(err))
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := DecodeConfig(strings.NewReader("special_cases:\n  - name: a\n    kind: element\n"))
		require.Error(t, err)
		assert.True(t, IsConfigError(err))
	})

	t.Run("unknown feature", func(t *testing.T) {
		_, err := DecodeConfig(strings.NewReader("features: [bogus]\n"))
		require.Error(t, err)
		assert.True(t, IsConfigError(err))
	})
}

func TestLoadConfigFile(t *testing.T) {
	t.Run("relative paths follow the file", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "namegen.yaml")
		require.NoError(t, os.WriteFile(path, []byte("inputs:\n  tags: lists/tags.in\ntarget: out\n"), 0o644))

		c, err := LoadConfigFile(path)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "lists", "tags.in"), c.Inputs.Tags)
		assert.Equal(t, filepath.Join(dir, "svgattrs.in"), c.Inputs.Attrs)
		assert.Equal(t, filepath.Join(dir, "out"), c.Target)
	})

	t.Run("absolute paths are kept", func(t *testing.T) {
		dir := t.TempDir()
		abs := filepath.Join(t.TempDir(), "tags.in")
		path := filepath.Join(dir, "namegen.yaml")
		require.NoError(t, os.WriteFile(path, []byte("inputs:\n  tags: "+abs+"\n"), 0o644))

		c, err := LoadConfigFile(path)
		require.NoError(t, err)
		assert.Equal(t, abs, c.Inputs.Tags)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
		assert.True(t, IsConfigError(err))
	})
}

func TestLayoutQualifier(t *testing.T) {
	l := DefaultLayout()
	assert.Equal(t, "", l.Qualifier("SVGNames"))
	assert.Equal(t, "WebCore::HTMLNames::", l.Qualifier("HTMLNames"))
	assert.Equal(t, "WebCore::XLinkNames::", l.Qualifier("XLinkNames"))
}
