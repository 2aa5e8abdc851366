// Package tui is an interactive terminal preview of a menu surface. It
// renders the slot grid, moves a cursor with the arrow keys, and dispatches
// clicks, drags and the close through the surface's registry, so handler
// wiring can be exercised without a live server.
package tui

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/go-mclib/data/pkg/data/items"

	"github.com/go-mclib/menus/pkg/menus"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	slotStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Width(5).
			Align(lipgloss.Center)

	cursorSlotStyle = slotStyle.
			BorderForeground(lipgloss.Color("205")).
			Foreground(lipgloss.Color("205"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// Preview is the bubbletea model for a single surface.
type Preview struct {
	surface  *menus.Surface
	registry *menus.Registry
	perRow   int

	cursor   int
	viewport viewport.Model
	events   []string
	eventsMu sync.Mutex
	ready    bool
}

// New creates a preview of s dispatching through registry. A nil registry
// means menus.DefaultRegistry.
func New(s *menus.Surface, registry *menus.Registry) *Preview {
	if registry == nil {
		registry = menus.DefaultRegistry
	}
	return &Preview{
		surface:  s,
		registry: registry,
		perRow:   gridWidth(s.Kind()),
	}
}

func gridWidth(kind menus.ShapeKind) int {
	switch kind {
	case menus.ShapeGeneric3x3:
		return 3
	case menus.ShapeHopper:
		return 5
	default:
		return menus.SlotsPerRow
	}
}

// Init implements tea.Model.
func (p *Preview) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (p *Preview) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			// closing the preview is closing the menu
			if h := p.registry.ResolveClose(p.surface); h != nil {
				h(p.surface)
			}
			p.registry.Release(p.surface)
			return p, tea.Quit

		case tea.KeyLeft:
			p.moveCursor(-1)
		case tea.KeyRight:
			p.moveCursor(1)
		case tea.KeyUp:
			p.moveCursor(-p.perRow)
		case tea.KeyDown:
			p.moveCursor(p.perRow)

		case tea.KeyEnter:
			if h := p.registry.ResolveClick(p.surface, p.cursor); h != nil {
				h(p.surface, p.cursor)
				p.addEvent(fmt.Sprintf("click slot %d -> handler", p.cursor))
			} else {
				p.addEvent(fmt.Sprintf("click slot %d -> no handler", p.cursor))
			}

		case tea.KeyRunes:
			if string(msg.Runes) == "d" {
				if h := p.registry.ResolveDrag(p.surface); h != nil {
					h(p.surface, []int{p.cursor})
					p.addEvent(fmt.Sprintf("drag over slot %d -> handler", p.cursor))
				} else {
					p.addEvent("drag -> no handler")
				}
			}
		}

	case tea.WindowSizeMsg:
		gridHeight := (p.surface.Size()/p.perRow)*3 + 4
		if !p.ready {
			p.viewport = viewport.New(msg.Width, max(msg.Height-gridHeight, 3))
			p.ready = true
		} else {
			p.viewport.Width = msg.Width
			p.viewport.Height = max(msg.Height-gridHeight, 3)
		}
	}

	if p.ready {
		p.viewport.SetContent(p.renderEvents())
		p.viewport.GotoBottom()
	}
	return p, nil
}

func (p *Preview) moveCursor(delta int) {
	next := p.cursor + delta
	if next >= 0 && next < p.surface.Size() {
		p.cursor = next
	}
}

func (p *Preview) addEvent(msg string) {
	p.eventsMu.Lock()
	p.events = append(p.events, msg)
	p.eventsMu.Unlock()
}

func (p *Preview) renderEvents() string {
	p.eventsMu.Lock()
	defer p.eventsMu.Unlock()
	return strings.Join(p.events, "\n")
}

// View implements tea.Model.
func (p *Preview) View() string {
	title := titleStyle.Render(p.surface.Title())

	snapshot := p.surface.Items()
	rows := make([]string, 0, len(snapshot)/p.perRow+1)
	for start := 0; start < len(snapshot); start += p.perRow {
		cells := make([]string, 0, p.perRow)
		for i := start; i < min(start+p.perRow, len(snapshot)); i++ {
			style := slotStyle
			if i == p.cursor {
				style = cursorSlotStyle
			}
			cells = append(cells, style.Render(cellLabel(snapshot[i])))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	grid := lipgloss.JoinVertical(lipgloss.Left, rows...)

	help := helpStyle.Render("arrows: move • enter: click • d: drag • esc: close")

	if !p.ready {
		return fmt.Sprintf("%s\n%s\n%s", title, grid, help)
	}
	return fmt.Sprintf("%s\n%s\n%s\n%s", title, grid, p.viewport.View(), help)
}

func cellLabel(item *items.ItemStack) string {
	if item == nil || item.IsEmpty() {
		return "·"
	}
	name := items.ItemName(item.ID)
	if i := strings.IndexByte(name, ':'); i >= 0 {
		name = name[i+1:]
	}
	if len(name) > 4 {
		name = name[:4]
	}
	return name
}

// Run starts a preview program for s and blocks until it exits.
func Run(s *menus.Surface, registry *menus.Registry) error {
	p := tea.NewProgram(New(s, registry), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
