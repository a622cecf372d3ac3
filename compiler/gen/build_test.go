package gen

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	ctx := context.Background()

	t.Run("renders the three artifacts", func(t *testing.T) {
		res, err := Build(ctx, MustNewConfig(), historical(t))
		require.NoError(t, err)

		require.Len(t, res.Artifacts, 3)
		assert.Nil(t, res.Diagnostics)
		assert.Equal(t, 9, res.Names.Count())
		assert.Equal(t, golden(t, "SVGNames.guarded.cpp"), string(res.Artifacts[2].Text))
	})

	t.Run("unguarded feature restores the historical output", func(t *testing.T) {
		res, err := Build(ctx, MustNewConfig(WithFeatures(FeatureUnguardedInit)), historical(t))
		require.NoError(t, err)
		assert.Equal(t, golden(t, "SVGNames.cpp"), string(res.Artifacts[2].Text))
	})

	t.Run("go bindings", func(t *testing.T) {
		res, err := Build(ctx, MustNewConfig(WithFeatures(FeatureGoBind)), historical(t))
		require.NoError(t, err)
		require.Len(t, res.Artifacts, 4)
		assert.Equal(t, "svgnames_gen.go", res.Artifacts[3].Path)
	})

	t.Run("diagnostics are reported", func(t *testing.T) {
		res, err := Build(ctx, MustNewConfig(WithFeatures(FeatureDiagnostics)), Lists{Attrs: []string{"a-b", "a_b"}})
		require.NoError(t, err)
		require.Len(t, res.Diagnostics, 1)
		assert.Len(t, res.Artifacts, 3)
	})

	t.Run("diagnostics are off by default", func(t *testing.T) {
		res, err := Build(ctx, MustNewConfig(), Lists{Attrs: []string{"a-b", "a_b"}})
		require.NoError(t, err)
		assert.Empty(t, res.Diagnostics)
	})

	t.Run("strict mode fails on diagnostics", func(t *testing.T) {
		res, err := Build(ctx, MustNewConfig(WithStrict()), Lists{Tags: []string{"g", "g"}})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrDiagnostics)
		require.NotNil(t, res)
		assert.Len(t, res.Diagnostics, 1)
		assert.Empty(t, res.Artifacts)
	})

	t.Run("go name clashes are diagnosed with bindings", func(t *testing.T) {
		l := Lists{Attrs: []string{"stroke-width", "strokeWidth"}}

		res, err := Build(ctx, MustNewConfig(WithStrict(), WithFeatures(FeatureGoBind)), l)
		require.ErrorIs(t, err, ErrDiagnostics)
		require.Len(t, res.Diagnostics, 1)
		assert.Equal(t, "SVGStrokeWidthAttr", res.Diagnostics[0].Ident)

		res, err = Build(ctx, MustNewConfig(WithStrict()), l)
		require.NoError(t, err)
		assert.Empty(t, res.Diagnostics)

		_, err = Build(ctx, MustNewConfig(WithFeatures(FeatureGoBind)), l)
		assert.True(t, IsGenerationError(err))
	})

	t.Run("strict mode passes clean lists", func(t *testing.T) {
		res, err := Build(ctx, MustNewConfig(WithStrict()), historical(t))
		require.NoError(t, err)
		assert.Len(t, res.Artifacts, 3)
	})

	t.Run("invalid config", func(t *testing.T) {
		c := MustNewConfig()
		c.Target = ""
		_, err := Build(ctx, c, Lists{})
		assert.True(t, IsConfigError(err))
	})

	t.Run("logs special cases", func(t *testing.T) {
		var buf bytes.Buffer
		log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: LevelTrace}))
		_, err := Build(ctx, MustNewConfig(WithLogger(log)), Lists{Tags: []string{"text"}})
		require.NoError(t, err)

		out := buf.String()
		assert.Contains(t, out, "component=gen")
		assert.Contains(t, out, `msg=resolved`)
		assert.Contains(t, out, `msg="special case applied"`)
		assert.Contains(t, out, "name=text kind=tag namespace=SVGNames")
		assert.Contains(t, out, "key=ATTR_TEXT")
	})
}

func TestWrite(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	c := MustNewConfig(WithTarget(dir), WithFeatures(FeatureGoBind))
	res, err := Build(ctx, c, historical(t))
	require.NoError(t, err)
	require.NoError(t, Write(ctx, c, res))
	for _, a := range res.Artifacts {
		b, err := os.ReadFile(filepath.Join(dir, a.Path))
		require.NoError(t, err)
		assert.Equal(t, a.Text, b)
	}

	c = MustNewConfig(WithTarget(dir))
	res, err = Build(ctx, c, historical(t))
	require.NoError(t, err)
	require.NoError(t, Write(ctx, c, res))
	assert.NoFileExists(t, filepath.Join(dir, "svgnames_gen.go"))
	assert.FileExists(t, filepath.Join(dir, "SVGNames.cpp"))
}
