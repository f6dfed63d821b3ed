//go:build windows
// +build windows

package tray

import (
	"errors"
	"unsafe"

	"github.com/rs/zerolog/log"
	"golang.org/x/sys/windows"

	"github.com/AtOnline/trayfolder/identity"
	"github.com/AtOnline/trayfolder/menu"
)

// Tray owns a message-only window and the notification icon attached to it.
//
// It must be created, run and closed on one locked OS thread; only Quit may
// be called from elsewhere.
type Tray struct {
	hinst      uintptr
	hwnd       windows.HWND
	class      *uint16
	thread     uint32
	icon       HICON
	tooltip    string
	onActivate func()
}

type Options struct {
	// Tooltip is shown when hovering the icon; cut to fit.
	Tooltip string
	// StockIcon is a SHSTOCKICONID; rejected values fall back to an open
	// folder.
	StockIcon int
}

func New(opts Options) (*Tray, error) {
	res := &Tray{
		tooltip:    opts.Tooltip,
		thread:     windows.GetCurrentThreadId(),
		onActivate: func() {},
	}

	if err := res.init(opts.StockIcon); err != nil {
		res.Close()
		return nil, err
	}
	return res, nil
}

func (t *Tray) init(stockIcon int) error {
	hinst, err := call("GetModuleHandleW", GetModuleHandle, 0)
	if err != nil {
		return err
	}
	t.hinst = hinst

	className := AppName + "Class"
	if err := t.registerWindow(className, t.WinProc); err != nil {
		return err
	}

	hwnd, err := call("CreateWindowExW", CreateWindowEx,
		0,
		uintptr(unsafe.Pointer(t.class)),
		uintptr(unsafe.Pointer(windows.StringToUTF16Ptr(AppName+"Window"))),
		0,
		0,
		0,
		0,
		0,
		uintptr(HWND_MESSAGE),
		0,
		t.hinst,
		0)
	if err != nil {
		return err
	}
	t.hwnd = windows.HWND(hwnd)
	log.Debug().Uint64("hwnd", uint64(hwnd)).Msg("[tray] window created")

	icon, err := loadStockIcon(stockIcon)
	if err != nil {
		return err
	}
	t.icon = icon
	return nil
}

func (t *Tray) registerWindow(name string, proc WindowProc) error {
	var wc WNDCLASSEX
	wc.CbSize = uint32(unsafe.Sizeof(wc))
	wc.LpfnWndProc = windows.NewCallback(proc)
	wc.HInstance = HINSTANCE(t.hinst)
	wc.LpszClassName = windows.StringToUTF16Ptr(name)

	if _, err := call("RegisterClassExW", RegisterClassEx, uintptr(unsafe.Pointer(&wc))); err != nil {
		return err
	}
	t.class = wc.LpszClassName
	return nil
}

// SetOnActivate sets the function called when the icon is clicked (either
// button). It runs on the tray thread.
func (t *Tray) SetOnActivate(fun func()) {
	if fun == nil {
		fun = func() {}
	}
	t.onActivate = fun
}

func (t *Tray) WinProc(hwnd windows.HWND, msg uint32, wparam, lparam uintptr) uintptr {
	if msg == NotifyMessage {
		switch lparam & 0xffff {
		case NIN_SELECT, WM_CONTEXTMENU:
			t.onActivate()
		}
	}
	result, _, _ := DefWindowProc.Call(uintptr(hwnd), uintptr(msg), wparam, lparam)
	return result
}

// Run pumps messages until Quit is called.
func (t *Tray) Run() error {
	var msg MSG
	for {
		r, _, err := GetMessage.Call(uintptr(unsafe.Pointer(&msg)), 0, 0, 0)
		switch int32(r) {
		case 0:
			return nil
		case -1:
			return newOSError("GetMessageW", err)
		}
		TranslateMessage.Call(uintptr(unsafe.Pointer(&msg)))
		DispatchMessage.Call(uintptr(unsafe.Pointer(&msg)))
	}
}

// Quit makes Run return. Safe to call from any goroutine.
func (t *Tray) Quit() {
	if r, _, err := PostThreadMessage.Call(uintptr(t.thread), WM_QUIT, 0, 0); r == 0 {
		log.Error().Err(err).Msg("[tray] failed to post quit message")
	}
}

func (t *Tray) notifyData(id identity.ID) *NOTIFYICONDATA {
	nid := &NOTIFYICONDATA{
		HWnd:     t.hwnd,
		UID:      TrayIconID,
		GuidItem: windows.GUID(toGUID(id)),
	}
	nid.CbSize = uint32(unsafe.Sizeof(*nid))
	return nid
}

// Add shows the icon under id. It fails when another icon (typically
// another instance) already uses that id.
func (t *Tray) Add(id identity.ID) error {
	nid := t.notifyData(id)
	nid.UFlags = NIF_MESSAGE | NIF_ICON | NIF_TIP | NIF_STATE | NIF_GUID | NIF_SHOWTIP
	nid.UCallbackMessage = NotifyMessage
	nid.HIcon = t.icon
	copyUTF16(nid.SzTip[:], t.tooltip)

	_, err := call("Shell_NotifyIconW(NIM_ADD)", Shell_NotifyIcon, NIM_ADD, uintptr(unsafe.Pointer(nid)))
	return err
}

// SetVersion requests NOTIFYICON_VERSION_4 behavior.
func (t *Tray) SetVersion(id identity.ID) error {
	nid := t.notifyData(id)
	nid.UFlags = NIF_GUID
	nid.UVersionOrTimeout = NOTIFYICON_VERSION_4

	_, err := call("Shell_NotifyIconW(NIM_SETVERSION)", Shell_NotifyIcon, NIM_SETVERSION, uintptr(unsafe.Pointer(nid)))
	return err
}

// Announce shows a balloon notification next to the icon.
func (t *Tray) Announce(id identity.ID, title, message string) error {
	nid := t.notifyData(id)
	nid.UFlags = NIF_INFO | NIF_GUID | NIF_SHOWTIP
	copyUTF16(nid.SzInfoTitle[:], title)
	copyUTF16(nid.SzInfo[:], message)
	nid.UVersionOrTimeout = 3000
	nid.DwInfoFlags = NIIF_USER | NIIF_LARGE_ICON | NIIF_NOSOUND | NIIF_RESPECT_QUIET_TIME

	_, err := call("Shell_NotifyIconW(NIM_MODIFY)", Shell_NotifyIcon, NIM_MODIFY, uintptr(unsafe.Pointer(nid)))
	return err
}

// RestoreFocus gives the keyboard focus back to the notification area once
// a popup has closed.
func (t *Tray) RestoreFocus(id identity.ID) error {
	nid := t.notifyData(id)
	nid.UFlags = NIF_GUID

	_, err := call("Shell_NotifyIconW(NIM_SETFOCUS)", Shell_NotifyIcon, NIM_SETFOCUS, uintptr(unsafe.Pointer(nid)))
	return err
}

func (t *Tray) Remove(id identity.ID) error {
	nid := t.notifyData(id)
	nid.UFlags = NIF_GUID

	_, err := call("Shell_NotifyIconW(NIM_DELETE)", Shell_NotifyIcon, NIM_DELETE, uintptr(unsafe.Pointer(nid)))
	return err
}

// IconRect returns the screen rectangle currently occupied by the icon.
func (t *Tray) IconRect(id identity.ID) (menu.Rect, error) {
	niid := NOTIFYICONIDENTIFIER{
		HWnd:     t.hwnd,
		GuidItem: windows.GUID(toGUID(id)),
	}
	niid.CbSize = uint32(unsafe.Sizeof(niid))

	var rect windows.Rect
	err := hresult("Shell_NotifyIconGetRect", Shell_NotifyIconGetRect,
		uintptr(unsafe.Pointer(&niid)),
		uintptr(unsafe.Pointer(&rect)))
	return menu.Rect(rect), err
}

// Foreground brings the hidden window to the foreground, without which a
// popup cannot be dismissed by clicking elsewhere. Failure (for instance
// while the start menu is open) is only logged.
func (t *Tray) Foreground() {
	if r, _, _ := SetForegroundWindow.Call(uintptr(t.hwnd)); r == 0 {
		log.Debug().Msg("[tray] could not bring window to foreground")
	}
}

// Close destroys the window and the tray icon image.
func (t *Tray) Close() error {
	var errs []error
	if t.hwnd != 0 {
		if _, err := call("DestroyWindow", DestroyWindow, uintptr(t.hwnd)); err != nil {
			errs = append(errs, err)
		}
		t.hwnd = 0
	}
	if t.class != nil {
		if _, err := call("UnregisterClassW", UnregisterClass, uintptr(unsafe.Pointer(t.class)), t.hinst); err != nil {
			errs = append(errs, err)
		}
		t.class = nil
	}
	if t.icon != 0 {
		if _, err := call("DestroyIcon", DestroyIcon, uintptr(t.icon)); err != nil {
			errs = append(errs, err)
		}
		t.icon = 0
	}
	return errors.Join(errs...)
}
