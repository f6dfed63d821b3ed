package tray

import (
	"errors"
	"fmt"
	"syscall"
	"unicode/utf16"

	"github.com/AtOnline/trayfolder/identity"
)

// AppName is used for window classes, dialog titles and the startup balloon.
const AppName = "TrayFolder"

var ErrUnsupported = errors.New("tray: only supported on windows")

// OSError is a failed operating system call.
type OSError struct {
	Op  string
	Err error
}

func (e *OSError) Error() string {
	var errno syscall.Errno
	if errors.As(e.Err, &errno) {
		return fmt.Sprintf("%s failed: [0x%08X] %s", e.Op, uint32(errno), errno.Error())
	}
	return fmt.Sprintf("%s failed: %s", e.Op, e.Err)
}

func (e *OSError) Unwrap() error {
	return e.Err
}

// fatalText is what the fatal error dialog shows.
func fatalText(err error) string {
	return err.Error() + "\n\nThe application will close now."
}

// copyUTF16 copies s into a fixed, NUL terminated buffer, cutting it if
// needed without splitting a surrogate pair.
func copyUTF16(dst []uint16, s string) {
	if len(dst) == 0 {
		return
	}
	u := utf16.Encode([]rune(s))
	n := len(u)
	if n > len(dst)-1 {
		n = len(dst) - 1
		if n > 0 && utf16.IsSurrogate(rune(u[n-1])) && u[n-1] < 0xDC00 {
			n--
		}
	}
	copy(dst, u[:n])
	for i := n; i < len(dst); i++ {
		dst[i] = 0
	}
}

// guid mirrors the in-memory layout of a Windows GUID.
type guid struct {
	Data1 uint32
	Data2 uint16
	Data3 uint16
	Data4 [8]byte
}

func toGUID(id identity.ID) guid {
	res := guid{
		Data1: uint32(id[0])<<24 | uint32(id[1])<<16 | uint32(id[2])<<8 | uint32(id[3]),
		Data2: uint16(id[4])<<8 | uint16(id[5]),
		Data3: uint16(id[6])<<8 | uint16(id[7]),
	}
	copy(res.Data4[:], id[8:])
	return res
}
