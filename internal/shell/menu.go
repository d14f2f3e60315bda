package shell

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyMenu is returned when a menu is built without items.
	ErrEmptyMenu = errors.New("menu has no items")
	// ErrDuplicateMenuID is returned when two items share an identifier.
	ErrDuplicateMenuID = errors.New("duplicate menu item id")
)

// MenuItem is a single clickable tray menu entry.
type MenuItem struct {
	ID          string
	Label       string
	Tooltip     string
	Enabled     bool
	Accelerator string
}

// NewMenuItem validates and returns a menu item.
func NewMenuItem(id, label string, enabled bool, accelerator string) (MenuItem, error) {
	if strings.TrimSpace(id) == "" {
		return MenuItem{}, errors.New("menu item id is required")
	}
	if strings.TrimSpace(label) == "" {
		return MenuItem{}, fmt.Errorf("menu item %s: label is required", id)
	}
	return MenuItem{
		ID:          id,
		Label:       label,
		Enabled:     enabled,
		Accelerator: accelerator,
	}, nil
}

// Menu is an ordered list of items with unique identifiers.
type Menu struct {
	items []MenuItem
}

// NewMenu bundles items into a menu.
func NewMenu(items ...MenuItem) (*Menu, error) {
	if len(items) == 0 {
		return nil, ErrEmptyMenu
	}

	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		if _, ok := seen[item.ID]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateMenuID, item.ID)
		}
		seen[item.ID] = struct{}{}
	}

	out := make([]MenuItem, len(items))
	copy(out, items)
	return &Menu{items: out}, nil
}

// Items returns a copy of the menu entries in display order.
func (m *Menu) Items() []MenuItem {
	if m == nil {
		return nil
	}
	out := make([]MenuItem, len(m.items))
	copy(out, m.items)
	return out
}

// Item looks up an entry by identifier.
func (m *Menu) Item(id string) (MenuItem, bool) {
	if m == nil {
		return MenuItem{}, false
	}
	for _, item := range m.items {
		if item.ID == id {
			return item, true
		}
	}
	return MenuItem{}, false
}

// MenuEvent is delivered when the user activates a menu item.
type MenuEvent struct {
	ID string
}

// MenuHandler reacts to menu events on the dispatch context.
type MenuHandler func(app *App, event MenuEvent)

// TrayIcon binds a menu to the OS status area.
type TrayIcon struct {
	ID          string
	Menu        *Menu
	Icon        []byte
	Tooltip     string
	OnMenuEvent MenuHandler
}
