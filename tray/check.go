//go:build windows
// +build windows

package tray

import (
	"errors"
	"syscall"

	"golang.org/x/sys/windows"
)

// call invokes a Win32 function that signals failure by returning zero.
//
//go:uintptrescapes
func call(op string, p *windows.LazyProc, args ...uintptr) (uintptr, error) {
	r, _, err := p.Call(args...)
	if r == 0 {
		return 0, newOSError(op, err)
	}
	return r, nil
}

// hresult invokes a function returning an HRESULT.
//
//go:uintptrescapes
func hresult(op string, p *windows.LazyProc, args ...uintptr) error {
	r, _, _ := p.Call(args...)
	if int32(r) < 0 {
		return &OSError{Op: op, Err: syscall.Errno(r)}
	}
	return nil
}

func newOSError(op string, err error) *OSError {
	var errno syscall.Errno
	if err == nil || (errors.As(err, &errno) && errno == 0) {
		err = errors.New("unknown error")
	}
	return &OSError{Op: op, Err: err}
}
