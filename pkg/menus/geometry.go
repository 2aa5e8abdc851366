package menus

import "sort"

// BorderSlots returns the slot indices on the visual perimeter of a surface
// grid, sorted ascending and de-duplicated. Unknown shapes return nil rather
// than an error so callers can fill borders unconditionally.
//
// Row-based grids with a single row are all border; with two rows every slot
// sits on the top or bottom edge, so the border is again the full grid.
func BorderSlots(kind ShapeKind, size int) []int {
	rows, perRow := 0, 0
	switch kind {
	case ShapeGeneric9xN:
		if size <= 0 || size%SlotsPerRow != 0 {
			return nil
		}
		rows, perRow = size/SlotsPerRow, SlotsPerRow
	case ShapeGeneric3x3:
		rows, perRow = 3, 3
		size = 9
	case ShapeHopper:
		return []int{0, 4}
	default:
		return nil
	}

	border := make(map[int]struct{})
	// first and last column
	for r := 0; r < rows; r++ {
		border[r*perRow] = struct{}{}
		border[r*perRow+perRow-1] = struct{}{}
	}
	// top edge, corners excluded
	for i := 1; i <= perRow-2; i++ {
		border[i] = struct{}{}
	}
	// bridge toward the bottom edge; empty unless the grid is narrow
	for i := size - 2; i <= (rows-1)*perRow+1; i++ {
		border[i] = struct{}{}
	}
	// bottom edge, full row
	for i := size - perRow; i <= size-1; i++ {
		border[i] = struct{}{}
	}

	out := make([]int, 0, len(border))
	for i := range border {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

// SurfaceBorderSlots is BorderSlots applied to a surface's own shape and size.
func SurfaceBorderSlots(s *Surface) []int {
	return BorderSlots(s.Kind(), s.Size())
}
