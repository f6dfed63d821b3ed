//go:build windows
// +build windows

package tray

import (
	"io"
	"os"
	"unicode/utf16"
	"unsafe"

	"github.com/rs/zerolog/log"
	"golang.org/x/sys/windows"
)

// Open hands path to the shell, which opens it with its default action.
func (t *Tray) Open(path string) error {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return &OSError{Op: "UTF16PtrFromString", Err: err}
	}
	if err := windows.ShellExecute(0, nil, p, nil, nil, windows.SW_SHOWNORMAL); err != nil {
		return &OSError{Op: "ShellExecuteW", Err: err}
	}
	return nil
}

// Fatal reports err in a dialog and terminates the process.
func Fatal(err error) {
	log.Error().Err(err).Msg("[tray] fatal error")
	messageBox(fatalText(err), windows.MB_OK|windows.MB_ICONERROR)
	os.Exit(1)
}

// Info shows an informational dialog and waits for it to be closed.
func Info(text string) {
	messageBox(text, windows.MB_OK|windows.MB_ICONINFORMATION)
}

func messageBox(text string, flags uint32) {
	t, err := windows.UTF16PtrFromString(text)
	if err != nil {
		return
	}
	caption, _ := windows.UTF16PtrFromString(AppName)
	windows.MessageBox(0, t, caption, flags)
}

type debugWriter struct{}

// NewDebugWriter returns a writer sending everything to the debugger
// output.
func NewDebugWriter() io.Writer {
	return debugWriter{}
}

func (debugWriter) Write(b []byte) (int, error) {
	u := utf16.Encode([]rune(string(b)))
	u = append(u, 0)
	OutputDebugString.Call(uintptr(unsafe.Pointer(&u[0])))
	return len(b), nil
}
