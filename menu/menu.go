// Package menu describes the popup shown when the tray icon is activated.
package menu

import (
	"strings"

	"github.com/AtOnline/trayfolder/folder"
)

// Reserved item ids. Entry ids start at EntryBase so that both ranges stay
// disjoint for any snapshot size.
const (
	IDNone       = 0
	IDQuit       = 1
	IDOpenFolder = 2
	IDDismiss    = 3

	EntryBase = 100
)

type Kind int

const (
	KindString Kind = iota
	KindSeparator
)

type Item struct {
	Kind  Kind
	ID    int
	Label string
	Glyph folder.Bitmap // 0 when the item has no picture
}

type Menu struct {
	Items []Item
}

// Handle is a realised native menu.
type Handle uintptr

// Rect is a screen rectangle, used to anchor the popup on the tray icon.
type Rect struct {
	Left, Top, Right, Bottom int32
}

// Build describes the popup for s: one item per entry in the snapshot's
// current order, then a separator and the fixed actions.
func Build(s *folder.Snapshot) *Menu {
	res := &Menu{Items: make([]Item, 0, len(s.Entries)+4)}
	for i, e := range s.Entries {
		res.Items = append(res.Items, Item{
			Kind:  KindString,
			ID:    EntryBase + i,
			Label: escapeMnemonic(e.Title),
			Glyph: e.Icon,
		})
	}

	res.Items = append(res.Items,
		Item{Kind: KindSeparator},
		Item{Kind: KindString, ID: IDDismiss, Label: "&Dismiss"},
		Item{Kind: KindString, ID: IDOpenFolder, Label: "&Open Folder"},
		Item{Kind: KindString, ID: IDQuit, Label: "&Quit"},
	)
	return res
}

// EntryIndex maps a chosen item id back to an entry index.
func EntryIndex(id, count int) (int, bool) {
	i := id - EntryBase
	if i < 0 || i >= count {
		return 0, false
	}
	return i, true
}

// a single & would turn the next character into an accelerator
func escapeMnemonic(s string) string {
	return strings.ReplaceAll(s, "&", "&&")
}
