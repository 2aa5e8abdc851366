package menus

import (
	"github.com/go-mclib/data/pkg/data/items"
	"github.com/google/uuid"
)

// Builder is a fluent façade over one surface. Item and event operations
// return the builder for chaining; the first failing operation is recorded,
// mutates nothing, and turns every later operation into a no-op. The error
// is observable through Err at any point and is returned by Build.
type Builder struct {
	surface  *Surface
	registry *Registry
	unplaced []*items.ItemStack
	err      error
}

// NewBuilder creates a builder around a new row-based surface of rows*9
// slots. rows must be in [1, MaxRows].
func NewBuilder(title string, rows int) (*Builder, error) {
	s, err := NewSurface(title, ShapeGeneric9xN, rows)
	if err != nil {
		return nil, err
	}
	return &Builder{surface: s, registry: DefaultRegistry}, nil
}

// NewShapedBuilder creates a builder around a new surface of the given
// shape, sized by the shape itself.
func NewShapedBuilder(title string, kind ShapeKind) *Builder {
	s, _ := NewSurface(title, kind, 1)
	return &Builder{surface: s, registry: DefaultRegistry}
}

// NewHolderBuilder is NewBuilder with an owning identity recorded on the
// surface. The identity is carried, not interpreted.
func NewHolderBuilder(holder uuid.UUID, title string, rows int) (*Builder, error) {
	b, err := NewBuilder(title, rows)
	if err != nil {
		return nil, err
	}
	b.surface.setHolder(holder)
	return b, nil
}

// NewShapedHolderBuilder is NewShapedBuilder with an owning identity.
func NewShapedHolderBuilder(holder uuid.UUID, title string, kind ShapeKind) *Builder {
	b := NewShapedBuilder(title, kind)
	b.surface.setHolder(holder)
	return b
}

// WithRegistry directs event registrations to r instead of DefaultRegistry.
// Call it before any Set*Event operation.
func (b *Builder) WithRegistry(r *Registry) *Builder {
	if r != nil {
		b.registry = r
	}
	return b
}

// SetItem places item at the given slot.
func (b *Builder) SetItem(slot int, item *items.ItemStack) *Builder {
	if b.err != nil {
		return b
	}
	b.err = b.surface.SetItem(slot, item)
	return b
}

// AddItem places item in the first empty slot. A full surface is not an
// error; the item is kept and reported through Unplaced.
func (b *Builder) AddItem(item *items.ItemStack) *Builder {
	if b.err != nil {
		return b
	}
	if left := b.surface.AddItem(item); left != nil {
		b.unplaced = append(b.unplaced, left)
	}
	return b
}

// SetBorderSlots places a copy of item at every border slot of the surface,
// overwriting existing items. Shapes without border geometry are left
// unchanged.
func (b *Builder) SetBorderSlots(item *items.ItemStack) *Builder {
	if b.err != nil || item == nil {
		return b
	}
	for _, slot := range SurfaceBorderSlots(b.surface) {
		stack := *item
		if err := b.surface.SetItem(slot, &stack); err != nil {
			b.err = err
			return b
		}
	}
	return b
}

// SetClickEvent binds handler to the given slots, or to every slot when none
// are given.
func (b *Builder) SetClickEvent(handler ClickHandler, slots ...int) *Builder {
	if b.err != nil {
		return b
	}
	b.err = b.registry.SetClick(b.surface, handler, slots...)
	return b
}

// SetDragEvent binds the drag handler for the surface.
func (b *Builder) SetDragEvent(handler DragHandler) *Builder {
	if b.err != nil {
		return b
	}
	b.registry.SetDrag(b.surface, handler)
	return b
}

// SetCloseEvent binds the close handler for the surface.
func (b *Builder) SetCloseEvent(handler CloseHandler) *Builder {
	if b.err != nil {
		return b
	}
	b.registry.SetClose(b.surface, handler)
	return b
}

// Unplaced returns the items AddItem could not place, in call order.
func (b *Builder) Unplaced() []*items.ItemStack {
	return b.unplaced
}

// Err returns the first error recorded by a chained operation, or nil.
func (b *Builder) Err() error { return b.err }

// Build returns the surface and the first recorded error. The builder
// remains usable afterwards.
func (b *Builder) Build() (*Surface, error) {
	return b.surface, b.err
}
