package table

import (
	roaring "github.com/RoaringBitmap/roaring/roaring64"
)

// Selection tracks selected rows by global index, the row's position in
// the raw dataset. Because the indices address raw data rather than the
// filtered or paged view, the set survives filter, sort and page
// changes; replacing the dataset clears it.
type Selection struct {
	bits *roaring.Bitmap
}

// NewSelection creates an empty selection
func NewSelection() *Selection {
	return &Selection{bits: roaring.New()}
}

// Set adds or removes a global index. Negative indices are ignored.
func (s *Selection) Set(index int, selected bool) {
	if index < 0 {
		return
	}
	if selected {
		s.bits.Add(uint64(index))
	} else {
		s.bits.Remove(uint64(index))
	}
}

// Contains reports whether the global index is selected.
func (s *Selection) Contains(index int) bool {
	return index >= 0 && s.bits.Contains(uint64(index))
}

// Clear empties the selection.
func (s *Selection) Clear() {
	s.bits.Clear()
}

// Count returns the number of selected rows.
func (s *Selection) Count() int {
	return int(s.bits.GetCardinality())
}

// Indices returns the selected global indices in ascending order.
func (s *Selection) Indices() []int {
	arr := s.bits.ToArray()
	out := make([]int, len(arr))
	for i, x := range arr {
		out[i] = int(x)
	}
	return out
}
