//go:build !windows
// +build !windows

package tray

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/AtOnline/trayfolder/folder"
	"github.com/AtOnline/trayfolder/identity"
	"github.com/AtOnline/trayfolder/menu"
)

const DefaultStockIcon = 3

type Tray struct{}

type Options struct {
	Tooltip   string
	StockIcon int
}

func New(Options) (*Tray, error) {
	return nil, ErrUnsupported
}

func Setup() error { return nil }
func Teardown()    {}

func Fatal(err error) {
	log.Error().Err(err).Msg("[tray] fatal error")
	fmt.Fprintln(os.Stderr, fatalText(err))
	os.Exit(1)
}

func Info(text string) {
	fmt.Println(text)
}

func NewDebugWriter() io.Writer {
	return io.Discard
}

func (t *Tray) SetOnActivate(func())                           {}
func (t *Tray) Add(identity.ID) error                          { return ErrUnsupported }
func (t *Tray) SetVersion(identity.ID) error                   { return ErrUnsupported }
func (t *Tray) Announce(identity.ID, string, string) error     { return ErrUnsupported }
func (t *Tray) RestoreFocus(identity.ID) error                 { return ErrUnsupported }
func (t *Tray) Remove(identity.ID) error                       { return ErrUnsupported }
func (t *Tray) IconRect(identity.ID) (menu.Rect, error)        { return menu.Rect{}, ErrUnsupported }
func (t *Tray) Foreground()                                    {}
func (t *Tray) Run() error                                     { return ErrUnsupported }
func (t *Tray) Quit()                                          {}
func (t *Tray) Close() error                                   { return nil }
func (t *Tray) Open(string) error                              { return ErrUnsupported }
func (t *Tray) CreateMenu(*menu.Menu) (menu.Handle, error)     { return 0, ErrUnsupported }
func (t *Tray) DestroyMenu(menu.Handle) error                  { return ErrUnsupported }
func (t *Tray) TrackPopup(menu.Handle, menu.Rect) (int, error) { return 0, ErrUnsupported }
func (t *Tray) RenderIcon(string, bool) (folder.Bitmap, error) { return 0, ErrUnsupported }
func (t *Tray) ReleaseIcon(folder.Bitmap) error                { return ErrUnsupported }
