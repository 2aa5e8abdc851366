package menus

import (
	"fmt"
	"sync"

	"github.com/go-mclib/data/pkg/data/items"
	"github.com/google/uuid"
)

// ShapeKind identifies the grid layout of a surface. The values mirror the
// container families of the minecraft:menu registry.
type ShapeKind int

const (
	// ShapeGeneric9xN covers row-based containers (chest, ender chest,
	// shulker box, barrel): N rows of 9 slots.
	ShapeGeneric9xN ShapeKind = iota
	// ShapeGeneric3x3 covers dispenser and dropper: always 3x3.
	ShapeGeneric3x3
	// ShapeHopper is the 1x5 hopper row.
	ShapeHopper
	// ShapeOther is any container this package computes no geometry for.
	ShapeOther
)

const (
	// SlotsPerRow is the width of row-based container grids.
	SlotsPerRow = 9
	// MaxRows is the largest row count a row-based surface supports
	// (a double chest).
	MaxRows = 6
)

// shapeSize returns the fixed slot count for shapes that have one,
// or -1 for row-based shapes whose size is chosen at creation.
func shapeSize(kind ShapeKind) int {
	switch kind {
	case ShapeGeneric3x3:
		return 9
	case ShapeHopper:
		return 5
	default:
		return -1
	}
}

// Surface is a fixed-capacity, slot-indexed container instance. Handlers are
// associated with a Surface by instance identity: two surfaces with the same
// title, shape and contents are still distinct registry keys.
type Surface struct {
	mu     sync.RWMutex
	title  string
	kind   ShapeKind
	holder uuid.UUID
	owned  bool
	slots  []*items.ItemStack
}

// NewSurface creates a surface of the given shape. For ShapeGeneric9xN the
// size is rows*9 with rows in [1, MaxRows]; other shapes ignore rows and use
// their fixed slot count.
func NewSurface(title string, kind ShapeKind, rows int) (*Surface, error) {
	size := shapeSize(kind)
	if size < 0 {
		if rows < 1 || rows > MaxRows {
			return nil, fmt.Errorf("%w: %d rows (max %d)", ErrRowCount, rows, MaxRows)
		}
		size = rows * SlotsPerRow
	}
	return &Surface{
		title: title,
		kind:  kind,
		slots: make([]*items.ItemStack, size),
	}, nil
}

// Size returns the fixed slot count.
func (s *Surface) Size() int { return len(s.slots) }

// Kind returns the surface's shape kind.
func (s *Surface) Kind() ShapeKind { return s.kind }

// Title returns the surface's display title.
func (s *Surface) Title() string { return s.title }

// Holder returns the owning identity, if one was recorded at creation.
func (s *Surface) Holder() (uuid.UUID, bool) {
	return s.holder, s.owned
}

func (s *Surface) setHolder(id uuid.UUID) {
	s.holder = id
	s.owned = true
}

// Item returns the item at slot, or nil for an empty or out-of-range slot.
func (s *Surface) Item(slot int) *items.ItemStack {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if slot < 0 || slot >= len(s.slots) {
		return nil
	}
	return s.slots[slot]
}

// Items returns a snapshot of all slots. Index i holds the item at slot i,
// nil when empty.
func (s *Surface) Items() []*items.ItemStack {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*items.ItemStack, len(s.slots))
	copy(out, s.slots)
	return out
}

// SetItem places item at slot, replacing whatever was there. A nil item
// clears the slot.
func (s *Surface) SetItem(slot int, item *items.ItemStack) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if slot < 0 || slot >= len(s.slots) {
		return fmt.Errorf("%w: slot %d, size %d", ErrSlotOutOfRange, slot, len(s.slots))
	}
	s.slots[slot] = item
	return nil
}

// AddItem places item in the first empty slot, scanning in index order.
// When the surface is full the item is returned as leftover; a nil return
// means the item was placed.
func (s *Surface) AddItem(item *items.ItemStack) *items.ItemStack {
	if item == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, cur := range s.slots {
		if cur == nil || cur.IsEmpty() {
			s.slots[i] = item
			return nil
		}
	}
	return item
}

// Clear empties every slot.
func (s *Surface) Clear() {
	s.mu.Lock()
	for i := range s.slots {
		s.slots[i] = nil
	}
	s.mu.Unlock()
}
