package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lists writes name lists to a temporary directory and returns the flags
// pointing at them.
func lists(t *testing.T, tags, attrs, xlink string) (string, []string) {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{"svgtags.in": tags, "svgattrs.in": attrs, "xlinkattrs.in": xlink}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir, []string{
		"-tags", filepath.Join(dir, "svgtags.in"),
		"-attrs", filepath.Join(dir, "svgattrs.in"),
		"-xlink", filepath.Join(dir, "xlinkattrs.in"),
		"-out", dir,
	}
}

func TestRun(t *testing.T) {
	t.Run("help", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		code := run([]string{"-h"}, &stdout, &stderr)

		assert.Equal(t, exitOK, code)
		assert.Contains(t, stdout.String(), "Usage:")
		assert.Contains(t, stdout.String(), "init/unguarded")
		assert.Empty(t, stderr.String())
	})

	t.Run("generates artifacts", func(t *testing.T) {
		dir, args := lists(t, "path\ntext\n", "fill\nclass\n", "href\n")
		var stdout, stderr bytes.Buffer
		code := run(args, &stdout, &stderr)

		require.Equal(t, exitOK, code, stderr.String())
		for _, name := range []string{"SVGNames.h", "XLinkNames.h", "SVGNames.cpp"} {
			assert.FileExists(t, filepath.Join(dir, name))
		}
		cpp, err := os.ReadFile(filepath.Join(dir, "SVGNames.cpp"))
		require.NoError(t, err)
		assert.Contains(t, string(cpp), "static bool initialized = false;")
		assert.Contains(t, string(cpp), "DOM::localNamePart(ATTR_TEXT)")
		assert.Empty(t, stdout.String())
	})

	t.Run("feature flag", func(t *testing.T) {
		dir, args := lists(t, "path\n", "fill\n", "href\n")
		var stderr bytes.Buffer
		code := run(append(args, "-feature", "init/unguarded", "-feature", "gobind"), &bytes.Buffer{}, &stderr)

		require.Equal(t, exitOK, code, stderr.String())
		cpp, err := os.ReadFile(filepath.Join(dir, "SVGNames.cpp"))
		require.NoError(t, err)
		assert.NotContains(t, string(cpp), "initialized")
		assert.FileExists(t, filepath.Join(dir, "svgnames_gen.go"))
	})

	t.Run("unknown feature", func(t *testing.T) {
		_, args := lists(t, "", "", "")
		var stderr bytes.Buffer
		code := run(append(args, "-feature", "bogus"), &bytes.Buffer{}, &stderr)

		assert.Equal(t, exitError, code)
		assert.Contains(t, stderr.String(), "unknown feature")
	})

	t.Run("unknown flag", func(t *testing.T) {
		var stderr bytes.Buffer
		code := run([]string{"-output", "x"}, &bytes.Buffer{}, &stderr)

		assert.Equal(t, exitError, code)
		assert.Contains(t, stderr.String(), "Usage:")
	})

	t.Run("unexpected argument", func(t *testing.T) {
		var stderr bytes.Buffer
		code := run([]string{"svgtags.in"}, &bytes.Buffer{}, &stderr)

		assert.Equal(t, exitError, code)
		assert.Contains(t, stderr.String(), "unexpected argument: svgtags.in")
	})

	t.Run("missing input", func(t *testing.T) {
		dir, args := lists(t, "path\n", "fill\n", "href\n")
		require.NoError(t, os.Remove(filepath.Join(dir, "svgattrs.in")))
		var stderr bytes.Buffer
		code := run(args, &bytes.Buffer{}, &stderr)

		assert.Equal(t, exitError, code)
		assert.Contains(t, stderr.String(), "svgattrs.in")
		assert.NoFileExists(t, filepath.Join(dir, "SVGNames.h"))
	})

	t.Run("strict mode", func(t *testing.T) {
		dir, args := lists(t, "path\npath\n", "stroke-width\nstroke_width\n", "href\n")
		var stderr bytes.Buffer
		code := run(append(args, "-strict"), &bytes.Buffer{}, &stderr)

		assert.Equal(t, exitDiagnostics, code)
		assert.Contains(t, stderr.String(), "duplicate: SVGNames::pathTag")
		assert.Contains(t, stderr.String(), "collision: SVGNames::stroke_widthAttr")
		assert.NoFileExists(t, filepath.Join(dir, "SVGNames.h"))
	})

	t.Run("diagnostics without strict", func(t *testing.T) {
		dir, args := lists(t, "path\npath\n", "fill\n", "href\n")
		var stderr bytes.Buffer
		code := run(append(args, "-feature", "diagnostics"), &bytes.Buffer{}, &stderr)

		assert.Equal(t, exitOK, code)
		assert.Contains(t, stderr.String(), "1 diagnostic(s) reported")
		assert.FileExists(t, filepath.Join(dir, "SVGNames.h"))
	})

	t.Run("config file", func(t *testing.T) {
		dir, _ := lists(t, "path\n", "fill\n", "href\n")
		cfg := filepath.Join(dir, "namegen.yaml")
		require.NoError(t, os.WriteFile(cfg, []byte("target: out\nfeatures: [init/unguarded]\n"), 0o644))
		var stderr bytes.Buffer
		code := run([]string{"-config", cfg}, &bytes.Buffer{}, &stderr)

		require.Equal(t, exitOK, code, stderr.String())
		cpp, err := os.ReadFile(filepath.Join(dir, "out", "SVGNames.cpp"))
		require.NoError(t, err)
		assert.NotContains(t, string(cpp), "initialized")
	})

	t.Run("verbose logging", func(t *testing.T) {
		_, args := lists(t, "text\n", "fill\n", "href\n")
		var stderr bytes.Buffer
		code := run(append(args, "-vv"), &bytes.Buffer{}, &stderr)

		require.Equal(t, exitOK, code, stderr.String())
		assert.Contains(t, stderr.String(), "special case applied")
		assert.Contains(t, stderr.String(), "artifacts written")
	})
}
