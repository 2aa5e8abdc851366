// Package bridge routes serverbound container interaction packets to the
// handlers registered in a menus.Registry. Hosts that already decode their
// own packets can call the Dispatch methods directly instead.
package bridge

import (
	"log"
	"os"
	"sync"

	"github.com/go-mclib/data/pkg/data/packet_ids"
	"github.com/go-mclib/data/pkg/packets"
	jp "github.com/go-mclib/protocol/java_protocol"

	"github.com/go-mclib/menus/pkg/menus"
)

// container click mode 5 is QUICK_CRAFT: a drag across slots.
const modeQuickCraft = 5

// Bridge resolves raw (window, slot) interactions against a registry.
//
// The bridge releases a surface's registry entry when it dispatches that
// window's close, so handler tables do not outlive the menus they serve.
// Set KeepOnClose to manage release manually.
type Bridge struct {
	registry *menus.Registry

	// KeepOnClose disables the automatic Release on close dispatch.
	KeepOnClose bool

	Logger *log.Logger

	mu      sync.RWMutex
	windows map[int32]*menus.Surface
}

// New creates a bridge over the given registry. A nil registry means
// menus.DefaultRegistry.
func New(registry *menus.Registry) *Bridge {
	if registry == nil {
		registry = menus.DefaultRegistry
	}
	return &Bridge{
		registry: registry,
		Logger:   log.New(os.Stdout, "", log.LstdFlags),
		windows:  make(map[int32]*menus.Surface),
	}
}

// Registry returns the registry this bridge dispatches through.
func (b *Bridge) Registry() *menus.Registry { return b.registry }

// Open associates a window ID with a surface. An existing association for
// the same ID is replaced.
func (b *Bridge) Open(windowID int32, s *menus.Surface) {
	b.mu.Lock()
	b.windows[windowID] = s
	b.mu.Unlock()
}

// Window returns the surface shown in the given window, or nil.
func (b *Bridge) Window(windowID int32) *menus.Surface {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.windows[windowID]
}

// CloseWindow drops the window association without dispatching the close
// handler or releasing registry entries.
func (b *Bridge) CloseWindow(windowID int32) {
	b.mu.Lock()
	delete(b.windows, windowID)
	b.mu.Unlock()
}

// HandlePacket routes serverbound container packets. Unknown packet IDs and
// windows with no open surface are ignored.
func (b *Bridge) HandlePacket(pkt *jp.WirePacket) {
	switch pkt.PacketID {
	case packet_ids.C2SContainerClickID:
		b.handleContainerClick(pkt)
	case packet_ids.C2SContainerCloseID:
		b.handleContainerClose(pkt)
	}
}

func (b *Bridge) handleContainerClick(pkt *jp.WirePacket) {
	var d packets.C2SContainerClick
	if err := pkt.ReadInto(&d); err != nil {
		b.Logger.Println("bridge: failed to parse container click:", err)
		return
	}

	windowID := int32(d.WindowId)
	if int(d.Mode) == modeQuickCraft {
		slots := make([]int, 0, len(d.ChangedSlots))
		for _, cs := range d.ChangedSlots {
			slots = append(slots, int(cs.SlotNum))
		}
		b.DispatchDrag(windowID, slots)
		return
	}
	b.DispatchClick(windowID, int(int16(d.Slot)))
}

func (b *Bridge) handleContainerClose(pkt *jp.WirePacket) {
	var d packets.C2SContainerClose
	if err := pkt.ReadInto(&d); err != nil {
		b.Logger.Println("bridge: failed to parse container close:", err)
		return
	}
	b.DispatchClose(int32(d.WindowId))
}

// DispatchClick invokes the click handler bound to the slot of the surface
// open in windowID. Unbound slots, out-of-range slots and unknown windows
// are silent no-ops.
func (b *Bridge) DispatchClick(windowID int32, slot int) {
	s := b.Window(windowID)
	if s == nil {
		return
	}
	if h := b.registry.ResolveClick(s, slot); h != nil {
		h(s, slot)
	}
}

// DispatchDrag invokes the drag handler for the surface open in windowID
// with the dragged slot set.
func (b *Bridge) DispatchDrag(windowID int32, slots []int) {
	s := b.Window(windowID)
	if s == nil {
		return
	}
	if h := b.registry.ResolveDrag(s); h != nil {
		h(s, slots)
	}
}

// DispatchClose invokes the close handler for the surface open in windowID,
// drops the window association and, unless KeepOnClose is set, releases the
// surface's registry entry.
func (b *Bridge) DispatchClose(windowID int32) {
	b.mu.Lock()
	s, ok := b.windows[windowID]
	if ok {
		delete(b.windows, windowID)
	}
	b.mu.Unlock()
	if !ok {
		return
	}

	if h := b.registry.ResolveClose(s); h != nil {
		h(s)
	}
	if !b.KeepOnClose {
		b.registry.Release(s)
	}
}
