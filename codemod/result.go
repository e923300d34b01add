package codemod

import (
	"sort"
	"sync"

	"gopkg.in/yaml.v3"
)

// Result represents transformation outcome of a single file
type Result struct {
	Path string `yaml:"path"`
	// Passes is the number of full rule passes run
	Passes    int            `yaml:"passes,omitempty"`
	Changes   map[string]int `yaml:"changes,omitempty"`
	// Discarded counts passes in which a rule's edits were dropped for producing invalid source
	Discarded map[string]int `yaml:"discarded,omitempty"`
	// Before and After are content fingerprints
	Before    uint64 `yaml:"before"`
	After     uint64 `yaml:"after"`
	Converged bool   `yaml:"converged"`
	// Skipped holds the reason a file was left unchanged without running rules
	Skipped string `yaml:"skipped,omitempty"`
	Diff    string `yaml:"-"`
	Code    []byte `yaml:"-"`
}

// Changed returns true if content was modified
func (r *Result) Changed() bool {
	return r.Before != r.After
}

// Rewrites returns total number of rewrites
func (r *Result) Rewrites() int {
	total := 0
	for _, count := range r.Changes {
		total += count
	}
	return total
}

// Status returns metric status of the result
func (r *Result) Status() string {
	switch {
	case r.Skipped != "":
		return StatusSkipped
	case r.Changed():
		return StatusChanged
	}
	return StatusUnchanged
}

// Failure represents a file that could not be transformed
type Failure struct {
	Path  string `yaml:"path"`
	Error string `yaml:"error"`
}

// Report summarises a directory transformation
type Report struct {
	Root     string         `yaml:"root"`
	DryRun   bool           `yaml:"dryRun"`
	Files    int            `yaml:"files"`
	Changed  int            `yaml:"changed"`
	Skipped  int            `yaml:"skipped"`
	Rewrites map[string]int `yaml:"rewrites,omitempty"`
	Results  []*Result      `yaml:"results,omitempty"`
	Failures []*Failure     `yaml:"failures,omitempty"`
	mux      sync.Mutex
}

// NewReport creates a report
func NewReport(root string, dryRun bool) *Report {
	return &Report{Root: root, DryRun: dryRun, Rewrites: map[string]int{}}
}

// Add records a file result; unchanged files are counted only
func (r *Report) Add(result *Result) {
	r.mux.Lock()
	defer r.mux.Unlock()
	r.Files++
	switch result.Status() {
	case StatusSkipped:
		r.Skipped++
	case StatusChanged:
		r.Changed++
	default:
		return
	}
	for name, count := range result.Changes {
		r.Rewrites[name] += count
	}
	r.Results = append(r.Results, result)
}

// Fail records a failed file
func (r *Report) Fail(path string, err error) {
	r.mux.Lock()
	defer r.mux.Unlock()
	r.Files++
	r.Failures = append(r.Failures, &Failure{Path: path, Error: err.Error()})
}

// Encode returns YAML representation with results ordered by path
func (r *Report) Encode() ([]byte, error) {
	r.mux.Lock()
	defer r.mux.Unlock()
	sort.Slice(r.Results, func(i, j int) bool {
		return r.Results[i].Path < r.Results[j].Path
	})
	sort.Slice(r.Failures, func(i, j int) bool {
		return r.Failures[i].Path < r.Failures[j].Path
	})
	return yaml.Marshal(r)
}
