//go:build windows
// +build windows

// those are types & calls from various windows system libs

package tray

import (
	"golang.org/x/sys/windows"
)

type WindowProc func(hwnd windows.HWND, msg uint32, wparam, lparam uintptr) uintptr

type NOTIFYICONDATA struct {
	CbSize            uint32
	HWnd              windows.HWND
	UID               uint32
	UFlags            uint32
	UCallbackMessage  uint32
	HIcon             HICON
	SzTip             [128]uint16
	DwState           uint32
	DwStateMask       uint32
	SzInfo            [256]uint16
	UVersionOrTimeout uint32
	SzInfoTitle       [64]uint16
	DwInfoFlags       uint32
	GuidItem          windows.GUID
	HBalloonIcon      HICON
}

type NOTIFYICONIDENTIFIER struct {
	CbSize   uint32
	HWnd     windows.HWND
	UID      uint32
	GuidItem windows.GUID
}

type WNDCLASSEX struct {
	CbSize        uint32
	Style         uint32
	LpfnWndProc   uintptr
	CbClsExtra    int32
	CbWndExtra    int32
	HInstance     HINSTANCE
	HIcon         HICON
	HCursor       HCURSOR
	HbrBackground HBRUSH
	LpszMenuName  *uint16
	LpszClassName *uint16
	HIconSm       HICON
}

type MSG struct {
	HWnd    windows.HWND
	Message uint32
	WParam  uintptr
	LParam  uintptr
	Time    uint32
	Pt      POINT
}

type POINT struct {
	X, Y int32
}

type MENUITEMINFO struct {
	CbSize        uint32
	FMask         uint32
	FType         uint32
	FState        uint32
	WID           uint32
	HSubMenu      HMENU
	HbmpChecked   HBITMAP
	HbmpUnchecked HBITMAP
	DwItemData    uintptr
	DwTypeData    *uint16
	Cch           uint32
	HbmpItem      HBITMAP
}

type TPMPARAMS struct {
	CbSize    uint32
	RcExclude windows.Rect
}

type SHFILEINFO struct {
	HIcon         HICON
	IIcon         int32
	DwAttributes  uint32
	SzDisplayName [windows.MAX_PATH]uint16
	SzTypeName    [80]uint16
}

type SHSTOCKICONINFO struct {
	CbSize         uint32
	HIcon          HICON
	ISysImageIndex int32
	IIcon          int32
	SzPath         [windows.MAX_PATH]uint16
}

type IMAGEINFO struct {
	HbmImage HBITMAP
	HbmMask  HBITMAP
	Unused1  int32
	Unused2  int32
	RcImage  windows.Rect
}

type (
	HANDLE    uintptr
	HINSTANCE HANDLE
	HCURSOR   HANDLE
	HICON     HANDLE
	HMENU     HANDLE
	HGDIOBJ   HANDLE
	HBITMAP   HGDIOBJ
	HBRUSH    HGDIOBJ
	HDC       HANDLE
)

const (
	WM_NULL        = 0x0000
	WM_QUIT        = 0x0012
	WM_CONTEXTMENU = 0x007B
	WM_USER        = 0x0400

	// NotifyMessage is the callback message of the tray icon.
	NotifyMessage = WM_USER + 0x44
	TrayIconID    = 42

	NIM_ADD        = 0x00000000
	NIM_MODIFY     = 0x00000001
	NIM_DELETE     = 0x00000002
	NIM_SETFOCUS   = 0x00000003
	NIM_SETVERSION = 0x00000004

	NIF_MESSAGE = 0x00000001
	NIF_ICON    = 0x00000002
	NIF_TIP     = 0x00000004
	NIF_STATE   = 0x00000008
	NIF_INFO    = 0x00000010
	NIF_GUID    = 0x00000020
	NIF_SHOWTIP = 0x00000080

	NIIF_USER               = 0x00000004
	NIIF_NOSOUND            = 0x00000010
	NIIF_LARGE_ICON         = 0x00000020
	NIIF_RESPECT_QUIET_TIME = 0x00000080

	// NOTIFYICON_VERSION_4 events, in LOWORD(lParam)
	NIN_SELECT = WM_USER + 0

	NOTIFYICON_VERSION_4 = 4

	TPM_NONOTIFY  = 0x0080
	TPM_RETURNCMD = 0x0100

	MIIM_ID       = 0x00000002
	MIIM_STRING   = 0x00000040
	MIIM_BITMAP   = 0x00000080
	MIIM_FTYPE    = 0x00000100
	MFT_SEPARATOR = 0x00000800

	SHGFI_SMALLICON         = 0x000000001
	SHGFI_USEFILEATTRIBUTES = 0x000000010
	SHGFI_SYSICONINDEX      = 0x000004000

	SHGSI_ICON      = 0x000000100
	SHGSI_LARGEICON = 0x000000000

	SIID_FOLDER     = 3
	SIID_FOLDEROPEN = 4

	ILD_NORMAL = 0x00000000

	HWND_MESSAGE = ^windows.HWND(2)

	DPI_AWARENESS_CONTEXT_PER_MONITOR_AWARE_V2 = ^uintptr(3)
)

var (
	kernel32          = windows.NewLazySystemDLL("kernel32.dll")
	GetModuleHandle   = kernel32.NewProc("GetModuleHandleW")
	OutputDebugString = kernel32.NewProc("OutputDebugStringW")

	shell32                 = windows.NewLazySystemDLL("shell32.dll")
	Shell_NotifyIcon        = shell32.NewProc("Shell_NotifyIconW")
	Shell_NotifyIconGetRect = shell32.NewProc("Shell_NotifyIconGetRect")
	SHGetFileInfo           = shell32.NewProc("SHGetFileInfoW")
	SHGetStockIconInfo      = shell32.NewProc("SHGetStockIconInfo")

	user32 = windows.NewLazySystemDLL("user32.dll")

	GetMessage        = user32.NewProc("GetMessageW")
	TranslateMessage  = user32.NewProc("TranslateMessage")
	DispatchMessage   = user32.NewProc("DispatchMessageW")
	PostThreadMessage = user32.NewProc("PostThreadMessageW")

	DefWindowProc       = user32.NewProc("DefWindowProcW")
	RegisterClassEx     = user32.NewProc("RegisterClassExW")
	UnregisterClass     = user32.NewProc("UnregisterClassW")
	CreateWindowEx      = user32.NewProc("CreateWindowExW")
	DestroyWindow       = user32.NewProc("DestroyWindow")
	SetForegroundWindow = user32.NewProc("SetForegroundWindow")
	DestroyIcon         = user32.NewProc("DestroyIcon")
	GetDC               = user32.NewProc("GetDC")
	ReleaseDC           = user32.NewProc("ReleaseDC")

	SetProcessDpiAwarenessContext = user32.NewProc("SetProcessDpiAwarenessContext")

	TrackPopupMenuEx = user32.NewProc("TrackPopupMenuEx")
	CreatePopupMenu  = user32.NewProc("CreatePopupMenu")
	DestroyMenu      = user32.NewProc("DestroyMenu")
	InsertMenuItem   = user32.NewProc("InsertMenuItemW")

	gdi32                  = windows.NewLazySystemDLL("gdi32.dll")
	CreateCompatibleDC     = gdi32.NewProc("CreateCompatibleDC")
	CreateCompatibleBitmap = gdi32.NewProc("CreateCompatibleBitmap")
	SelectObject           = gdi32.NewProc("SelectObject")
	DeleteDC               = gdi32.NewProc("DeleteDC")
	DeleteObject           = gdi32.NewProc("DeleteObject")

	comctl32               = windows.NewLazySystemDLL("comctl32.dll")
	ImageList_GetImageInfo = comctl32.NewProc("ImageList_GetImageInfo")
	ImageList_Draw         = comctl32.NewProc("ImageList_Draw")
)
