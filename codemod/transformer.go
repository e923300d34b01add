// Package codemod orchestrates rule passes over source files: it repeats passes until the
// content fingerprint is stable, and applies the rewrite to whole directory trees.
package codemod

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/viant/afs"
	"github.com/viant/dequery/analyzer"
	"github.com/viant/dequery/config"
	"github.com/viant/dequery/rule"
	"github.com/viant/dequery/source"
	"go.uber.org/zap"
)

// Transformer applies enabled rules to source files
type Transformer struct {
	config   *config.Config
	fs       afs.Service
	logger   *zap.Logger
	registry *rule.Registry
	metrics  *Metrics
	dryRun   bool
	analyzer *analyzer.Analyzer
	rules    []rule.Rule
}

// New creates a transformer
func New(cfg *config.Config, options ...Option) (*Transformer, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	ret := &Transformer{
		config:   cfg,
		fs:       afs.New(),
		logger:   zap.NewNop(),
		registry: rule.Default(),
	}
	for _, opt := range options {
		opt(ret)
	}
	for _, names := range [][]string{cfg.Rules.Enable, cfg.Rules.Disable} {
		for _, name := range names {
			if _, err := ret.registry.Lookup(name); err != nil {
				return nil, fmt.Errorf("invalid rules config: %w", err)
			}
		}
	}
	ret.analyzer = analyzer.New(
		analyzer.WithFactories(cfg.Factories...),
		analyzer.WithModules(cfg.Modules...),
		analyzer.WithTransformable(cfg.Transformable...),
	)
	for _, candidate := range ret.registry.Rules() {
		if cfg.RuleEnabled(candidate.Name(), candidate.Baseline()) {
			ret.rules = append(ret.rules, candidate)
		}
	}
	return ret, nil
}

// Rules returns enabled rules in application order
func (t *Transformer) Rules() []rule.Rule {
	return append([]rule.Rule(nil), t.rules...)
}

// TransformSource runs enabled rules over code until a fixed point or the pass limit.
// Files with syntax errors are returned unchanged. A rule whose edits break the syntax
// tree is dropped for that pass while the other rules keep their rewrites.
func (t *Transformer) TransformSource(ctx context.Context, path string, code []byte) (*Result, error) {
	started := time.Now()
	fingerprint, err := source.Fingerprint(code)
	if err != nil {
		return nil, err
	}
	result := &Result{Path: path, Before: fingerprint, After: fingerprint, Changes: map[string]int{}, Discarded: map[string]int{}, Code: code}
	doc, err := source.Parse(ctx, path, code)
	if err != nil {
		return nil, err
	}
	if doc.HasError() {
		result.Skipped = "syntax error"
		t.logger.Warn("skipping file with syntax errors", zap.String("path", path))
		t.metrics.Observe(result, time.Since(started))
		return result, nil
	}

	for pass := 1; pass <= t.config.MaxPasses; pass++ {
		result.Passes = pass
		for _, candidate := range t.rules {
			updated, rewrites, err := rule.Apply(ctx, doc, t.analyzer, candidate)
			if errors.Is(err, rule.ErrInvalidRewrite) {
				result.Discarded[candidate.Name()]++
				t.logger.Warn("discarding rule edits", zap.String("path", path), zap.String("rule", candidate.Name()), zap.Int("pass", pass), zap.Error(err))
				continue
			}
			if err != nil {
				return nil, fmt.Errorf("failed to transform %v: %w", path, err)
			}
			doc = updated
			if rewrites > 0 {
				result.Changes[candidate.Name()] += rewrites
				t.logger.Debug("rule applied", zap.String("path", path), zap.String("rule", candidate.Name()), zap.Int("rewrites", rewrites), zap.Int("pass", pass))
			}
		}
		next, err := doc.Fingerprint()
		if err != nil {
			return nil, err
		}
		if next == fingerprint {
			result.Converged = true
			break
		}
		fingerprint = next
	}
	if !result.Converged {
		t.logger.Warn("pass limit reached", zap.String("path", path), zap.Int("maxPasses", t.config.MaxPasses))
	}
	result.After = fingerprint
	result.Code = doc.Code
	if result.Changed() {
		if result.Diff, err = Diff(path, code, doc.Code); err != nil {
			return nil, err
		}
	}
	t.metrics.Observe(result, time.Since(started))
	return result, nil
}
