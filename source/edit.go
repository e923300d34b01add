package source

import (
	"errors"
	"fmt"
	"sort"

	sitter "github.com/smacker/go-tree-sitter"
)

// ErrOverlappingEdit is returned when edits overlap
var ErrOverlappingEdit = errors.New("overlapping edit")

// Edit replaces source bytes [Start, End) with Text
type Edit struct {
	Start uint32
	End   uint32
	Text  string
}

// Replace creates an edit replacing the node
func Replace(n *sitter.Node, text string) Edit {
	return Edit{Start: n.StartByte(), End: n.EndByte(), Text: text}
}

// EditSet collects non overlapping edits of a single rule pass
type EditSet struct {
	edits []Edit
}

// NewEditSet creates an empty edit set
func NewEditSet() *EditSet {
	return &EditSet{}
}

// Overlaps returns true if [start, end) intersects any collected edit
func (s *EditSet) Overlaps(start, end uint32) bool {
	for _, edit := range s.edits {
		if start < edit.End && edit.Start < end {
			return true
		}
		if start == end && edit.Start == start && edit.End == start {
			return true
		}
	}
	return false
}

// Add adds edits atomically; it returns false and adds nothing if any of them overlaps
func (s *EditSet) Add(edits ...Edit) bool {
	for i, edit := range edits {
		if edit.End < edit.Start || s.Overlaps(edit.Start, edit.End) {
			return false
		}
		for _, other := range edits[i+1:] {
			if edit.Start < other.End && other.Start < edit.End {
				return false
			}
		}
	}
	s.edits = append(s.edits, edits...)
	return true
}

// Len returns number of collected edits
func (s *EditSet) Len() int {
	return len(s.edits)
}

// Edits returns collected edits ordered by position
func (s *EditSet) Edits() []Edit {
	result := make([]Edit, len(s.edits))
	copy(result, s.edits)
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Start < result[j].Start
	})
	return result
}

// Apply splices edits into code and returns a new buffer
func Apply(code []byte, edits []Edit) ([]byte, error) {
	if len(edits) == 0 {
		return append([]byte(nil), code...), nil
	}
	sorted := make([]Edit, len(edits))
	copy(sorted, edits)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start < sorted[j].Start
	})
	result := make([]byte, 0, len(code))
	offset := uint32(0)
	for _, edit := range sorted {
		if edit.Start < offset || edit.End < edit.Start || int(edit.End) > len(code) {
			return nil, fmt.Errorf("%w at [%d, %d)", ErrOverlappingEdit, edit.Start, edit.End)
		}
		result = append(result, code[offset:edit.Start]...)
		result = append(result, edit.Text...)
		offset = edit.End
	}
	result = append(result, code[offset:]...)
	return result, nil
}
