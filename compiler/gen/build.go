package gen

import (
	"context"
	"log/slog"
)

// Result is the in-memory output of a generator run.
type Result struct {
	Names       *Names
	Artifacts   []Artifact
	Diagnostics []Diagnostic
}

// Build resolves the lists and renders every artifact without touching the
// filesystem. In strict mode, diagnostics fail the build with a
// DiagnosticsError; the Result is still returned for reporting.
func Build(ctx context.Context, c *Config, l Lists) (*Result, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	log := c.logger().With(slog.String("component", "gen"))
	names := Resolve(l, c.Layout, c.Table())
	if log.Enabled(ctx, LevelTrace) {
		for _, ns := range names.All() {
			for _, e := range ns.Entries {
				log.LogAttrs(ctx, LevelTrace, "resolved",
					slog.String("namespace", ns.Name),
					slog.String("name", e.Raw),
					slog.String("ident", e.Ident()),
					slog.String("key", e.LookupKey),
					slog.String("init", e.Init.String()))
			}
		}
	}
	for _, ns := range names.All() {
		for _, e := range ns.Entries {
			if e.Reason != "" {
				log.LogAttrs(ctx, slog.LevelDebug, "special case applied",
					slog.String("name", e.Raw),
					slog.String("kind", e.Kind.String()),
					slog.String("namespace", ns.Name),
					slog.String("reason", e.Reason))
			}
		}
	}

	res := &Result{Names: names}
	if c.enabled(FeatureDiagnostics) {
		res.Diagnostics = Check(names)
		if c.enabled(FeatureGoBind) {
			res.Diagnostics = append(res.Diagnostics, CheckGoNames(names)...)
		}
		for _, d := range res.Diagnostics {
			log.LogAttrs(ctx, slog.LevelWarn, d.Message,
				slog.String("code", string(d.Code)),
				slog.String("namespace", d.Namespace),
				slog.String("ident", d.Ident))
		}
		if c.Strict && len(res.Diagnostics) > 0 {
			return res, &DiagnosticsError{Diagnostics: res.Diagnostics}
		}
	}

	artifacts, err := NewAssembler(c.Layout, !c.enabled(FeatureUnguardedInit)).Assemble(names)
	if err != nil {
		return nil, err
	}
	if c.enabled(FeatureGoBind) {
		a, err := GoBindings(c.GoBind.Package, c.GoBind.File, names)
		if err != nil {
			return nil, err
		}
		artifacts = append(artifacts, a)
	}
	res.Artifacts = artifacts
	log.LogAttrs(ctx, slog.LevelDebug, "artifacts rendered",
		slog.Int("names", names.Count()),
		slog.Int("artifacts", len(artifacts)))
	return res, nil
}

// Write commits the artifacts of r to the target directory of c and removes
// the leftovers of disabled features.
func Write(ctx context.Context, c *Config, r *Result) error {
	w := NewWriter(c.Target)
	if err := w.Write(ctx, r.Artifacts); err != nil {
		return err
	}
	m := w.Metrics()
	c.logger().LogAttrs(ctx, slog.LevelInfo, "artifacts written",
		slog.String("target", c.Target),
		slog.Int("written", m.FilesWritten),
		slog.Int("unchanged", m.FilesUnchanged),
		slog.Int64("bytes", m.TotalBytes))
	if err := cleanupFeatures(c); err != nil {
		return NewGenerationError("cleanup", "", "remove disabled feature files", err)
	}
	return nil
}
