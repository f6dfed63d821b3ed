//go:build windows
// +build windows

package tray

import (
	"unsafe"

	"github.com/rs/zerolog/log"
	"golang.org/x/sys/windows"

	"github.com/AtOnline/trayfolder/menu"
)

// append at the end of the menu when inserting by position
const menuEnd = 0xFFFFFFFF

// CreateMenu realises m as a native popup menu. The caller owns the result
// and must release it with DestroyMenu.
func (t *Tray) CreateMenu(m *menu.Menu) (menu.Handle, error) {
	h, err := call("CreatePopupMenu", CreatePopupMenu)
	if err != nil {
		return 0, err
	}

	for _, item := range m.Items {
		if err := insertItem(h, item); err != nil {
			DestroyMenu.Call(h)
			return 0, err
		}
	}
	return menu.Handle(h), nil
}

func insertItem(h uintptr, item menu.Item) error {
	mii := MENUITEMINFO{}
	mii.CbSize = uint32(unsafe.Sizeof(mii))

	switch item.Kind {
	case menu.KindSeparator:
		mii.FMask = MIIM_FTYPE
		mii.FType = MFT_SEPARATOR
	default:
		label, err := windows.UTF16PtrFromString(item.Label)
		if err != nil {
			return &OSError{Op: "UTF16PtrFromString", Err: err}
		}
		mii.FMask = MIIM_ID | MIIM_STRING
		mii.WID = uint32(item.ID)
		mii.DwTypeData = label
		if item.Glyph != 0 {
			mii.FMask |= MIIM_BITMAP
			mii.HbmpItem = HBITMAP(item.Glyph)
		}
	}

	_, err := call("InsertMenuItemW", InsertMenuItem, h, menuEnd, 1, uintptr(unsafe.Pointer(&mii)))
	return err
}

func (t *Tray) DestroyMenu(h menu.Handle) error {
	_, err := call("DestroyMenu", DestroyMenu, uintptr(h))
	return err
}

// TrackPopup shows the menu next to anchor, keeping anchor uncovered, and
// blocks until it is dismissed. It returns the id of the chosen item, or
// menu.IDNone.
func (t *Tray) TrackPopup(h menu.Handle, anchor menu.Rect) (int, error) {
	params := TPMPARAMS{RcExclude: windows.Rect(anchor)}
	params.CbSize = uint32(unsafe.Sizeof(params))

	r, _, _ := TrackPopupMenuEx.Call(
		uintptr(h),
		TPM_NONOTIFY|TPM_RETURNCMD,
		uintptr(anchor.Left),
		uintptr(anchor.Top),
		uintptr(t.hwnd),
		uintptr(unsafe.Pointer(&params)))
	// zero is returned both on cancel and on failure
	if r == 0 {
		log.Debug().Msg("[tray] popup dismissed")
		return menu.IDNone, nil
	}
	return int(r), nil
}
