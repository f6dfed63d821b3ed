//go:build windows
// +build windows

package tray

import (
	"unsafe"

	"github.com/rs/zerolog/log"
	"golang.org/x/sys/windows"

	"github.com/AtOnline/trayfolder/folder"
)

// DefaultStockIcon is SIID_FOLDER.
const DefaultStockIcon = SIID_FOLDER

func loadStockIcon(id int) (HICON, error) {
	info := SHSTOCKICONINFO{}
	info.CbSize = uint32(unsafe.Sizeof(info))

	err := hresult("SHGetStockIconInfo", SHGetStockIconInfo,
		uintptr(id),
		SHGSI_ICON|SHGSI_LARGEICON,
		uintptr(unsafe.Pointer(&info)))
	if err != nil {
		log.Warn().Err(err).Int("stock_icon", id).Msg("[tray] stock icon not available, using open folder")
		err = hresult("SHGetStockIconInfo", SHGetStockIconInfo,
			SIID_FOLDEROPEN,
			SHGSI_ICON|SHGSI_LARGEICON,
			uintptr(unsafe.Pointer(&info)))
		if err != nil {
			return 0, err
		}
	}
	if info.HIcon == 0 {
		return 0, newOSError("SHGetStockIconInfo", nil)
	}
	return info.HIcon, nil
}

// RenderIcon draws the small shell icon for a file of that kind into a new
// bitmap. Overlays such as shortcut arrows are not drawn. The bitmap must be
// released with ReleaseIcon.
func (t *Tray) RenderIcon(path string, isDir bool) (folder.Bitmap, error) {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return 0, &OSError{Op: "UTF16PtrFromString", Err: err}
	}

	var attrs uintptr = windows.FILE_ATTRIBUTE_NORMAL
	if isDir {
		attrs = windows.FILE_ATTRIBUTE_DIRECTORY
	}

	var shinfo SHFILEINFO
	imageList, err := call("SHGetFileInfoW", SHGetFileInfo,
		uintptr(unsafe.Pointer(p)),
		attrs,
		uintptr(unsafe.Pointer(&shinfo)),
		unsafe.Sizeof(shinfo),
		SHGFI_SYSICONINDEX|SHGFI_SMALLICON|SHGFI_USEFILEATTRIBUTES)
	if err != nil {
		return 0, err
	}

	var info IMAGEINFO
	if _, err := call("ImageList_GetImageInfo", ImageList_GetImageInfo,
		imageList,
		uintptr(shinfo.IIcon),
		uintptr(unsafe.Pointer(&info))); err != nil {
		return 0, err
	}
	w := info.RcImage.Right - info.RcImage.Left
	h := info.RcImage.Bottom - info.RcImage.Top

	screen, err := call("GetDC", GetDC, 0)
	if err != nil {
		return 0, err
	}
	defer ReleaseDC.Call(0, screen)

	mem, err := call("CreateCompatibleDC", CreateCompatibleDC, screen)
	if err != nil {
		return 0, err
	}
	defer DeleteDC.Call(mem)

	bmp, err := call("CreateCompatibleBitmap", CreateCompatibleBitmap, screen, uintptr(w), uintptr(h))
	if err != nil {
		return 0, err
	}

	orig, _, _ := SelectObject.Call(mem, bmp)
	_, err = call("ImageList_Draw", ImageList_Draw, imageList, uintptr(shinfo.IIcon), mem, 0, 0, ILD_NORMAL)
	SelectObject.Call(mem, orig)
	if err != nil {
		DeleteObject.Call(bmp)
		return 0, err
	}
	return folder.Bitmap(bmp), nil
}

func (t *Tray) ReleaseIcon(b folder.Bitmap) error {
	if b == 0 {
		return nil
	}
	_, err := call("DeleteObject", DeleteObject, uintptr(b))
	return err
}
