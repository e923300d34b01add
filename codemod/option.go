package codemod

import (
	"github.com/viant/afs"
	"github.com/viant/dequery/rule"
	"go.uber.org/zap"
)

type Option func(*Transformer)

// WithLogger sets structured logger
func WithLogger(logger *zap.Logger) Option {
	return func(t *Transformer) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// WithFS sets file system service used to walk, read and write sources
func WithFS(fs afs.Service) Option {
	return func(t *Transformer) {
		t.fs = fs
	}
}

// WithRegistry sets rule registry
func WithRegistry(registry *rule.Registry) Option {
	return func(t *Transformer) {
		t.registry = registry
	}
}

// WithMetrics enables metrics collection
func WithMetrics(metrics *Metrics) Option {
	return func(t *Transformer) {
		t.metrics = metrics
	}
}

// WithDryRun disables writing rewritten files
func WithDryRun(dryRun bool) Option {
	return func(t *Transformer) {
		t.dryRun = dryRun
	}
}
