package codemod

import (
	"fmt"

	"github.com/pmezard/go-difflib/difflib"
)

// Diff returns unified diff between original and rewritten source
func Diff(path string, before, after []byte) (string, error) {
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(before)),
		B:        difflib.SplitLines(string(after)),
		FromFile: "a/" + path,
		ToFile:   "b/" + path,
		Context:  3,
	}
	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return "", fmt.Errorf("failed to diff %v: %w", path, err)
	}
	return text, nil
}
