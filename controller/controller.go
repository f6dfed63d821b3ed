// Package controller runs one activation of the tray icon: it reloads the
// folder, shows the popup anchored on the icon and carries out the choice.
package controller

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/AtOnline/trayfolder/folder"
	"github.com/AtOnline/trayfolder/identity"
	"github.com/AtOnline/trayfolder/menu"
)

// Platform is everything the controller needs from the operating system.
// All methods are called from the thread that delivers activations.
type Platform interface {
	folder.Renderer

	CreateMenu(m *menu.Menu) (menu.Handle, error)
	DestroyMenu(h menu.Handle) error
	// TrackPopup blocks until the popup closes and returns the chosen id,
	// or menu.IDNone when it was dismissed.
	TrackPopup(h menu.Handle, anchor menu.Rect) (int, error)

	IconRect(id identity.ID) (menu.Rect, error)
	Foreground()
	RestoreFocus(id identity.ID) error

	Open(path string) error
	Quit()
}

type State int

const (
	Idle State = iota
	MenuOpen
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case MenuOpen:
		return "menu-open"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

type Config struct {
	Dir      string
	ID       identity.ID
	Platform Platform
	// Fatal is called with any platform error raised during a cycle. It is
	// expected not to return in production.
	Fatal func(err error)
	Log   zerolog.Logger
}

type Controller struct {
	dir   string
	id    identity.ID
	p     Platform
	fatal func(err error)
	log   zerolog.Logger

	state State
	snap  folder.Snapshot
}

func New(cfg Config) *Controller {
	res := &Controller{
		dir:   cfg.Dir,
		id:    cfg.ID,
		p:     cfg.Platform,
		fatal: cfg.Fatal,
		log:   cfg.Log,
	}
	if res.fatal == nil {
		res.fatal = func(err error) { res.log.Error().Err(err).Msg("fatal error") }
	}
	return res
}

func (c *Controller) State() State {
	return c.state
}

func (c *Controller) Snapshot() *folder.Snapshot {
	return &c.snap
}

// Activate handles a click on the tray icon. An activation delivered while
// the popup is open (nested dispatch from the popup's modal loop) is dropped.
func (c *Controller) Activate() {
	if c.state == MenuOpen {
		c.log.Debug().Msg("activation ignored, menu already open")
		return
	}

	c.state = MenuOpen
	choice, err := c.popup()
	c.state = Idle
	if err != nil {
		c.fatal(err)
		return
	}

	c.log.Info().Int("choice", choice).Msg("menu choice")
	c.dispatch(choice)
}

func (c *Controller) popup() (int, error) {
	t0 := time.Now()
	if err := folder.Load(&c.snap, c.dir, c.p); err != nil {
		return 0, fmt.Errorf("load %s: %w", c.dir, err)
	}
	folder.Sort(c.snap.Entries)
	t1 := time.Now()

	h, err := c.p.CreateMenu(menu.Build(&c.snap))
	if err != nil {
		return 0, err
	}
	t2 := time.Now()
	c.log.Debug().
		Int("entries", len(c.snap.Entries)).
		Dur("load", t1.Sub(t0)).
		Dur("build", t2.Sub(t1)).
		Msg("menu built")

	rect, err := c.p.IconRect(c.id)
	if err != nil {
		return 0, err
	}
	c.p.Foreground()

	choice, err := c.p.TrackPopup(h, rect)
	if err != nil {
		return 0, err
	}
	if err := c.p.RestoreFocus(c.id); err != nil {
		return 0, err
	}
	if err := c.p.DestroyMenu(h); err != nil {
		return 0, err
	}
	return choice, nil
}

func (c *Controller) dispatch(choice int) {
	switch choice {
	case menu.IDNone, menu.IDDismiss:
		return
	case menu.IDQuit:
		c.p.Quit()
		return
	case menu.IDOpenFolder:
		c.open(c.snap.Directory)
		return
	}

	if i, ok := menu.EntryIndex(choice, len(c.snap.Entries)); ok {
		c.open(filepath.Join(c.snap.Directory, c.snap.Entries[i].Filename))
		return
	}
	c.log.Debug().Int("choice", choice).Msg("unknown menu choice")
}

func (c *Controller) open(path string) {
	c.log.Debug().Str("path", path).Msg("opening")
	if err := c.p.Open(path); err != nil {
		c.log.Warn().Err(err).Str("path", path).Msg("open failed")
	}
}

// Close releases the bitmaps of the last snapshot.
func (c *Controller) Close() error {
	return folder.Reset(&c.snap, c.p)
}
