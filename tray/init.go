//go:build windows
// +build windows

package tray

import (
	"github.com/rs/zerolog/log"
	"golang.org/x/sys/windows"
)

// Setup prepares the calling thread for the tray: per-monitor DPI awareness
// and an apartment threaded COM, needed by the shell. It must run on the
// locked thread that will later call New and Run.
func Setup() error {
	// only available since Windows 10 1703
	if SetProcessDpiAwarenessContext.Find() == nil {
		if _, err := call("SetProcessDpiAwarenessContext", SetProcessDpiAwarenessContext, DPI_AWARENESS_CONTEXT_PER_MONITOR_AWARE_V2); err != nil {
			log.Warn().Err(err).Msg("[tray] could not enable DPI awareness")
		}
	}

	if err := windows.CoInitializeEx(0, windows.COINIT_APARTMENTTHREADED|windows.COINIT_DISABLE_OLE1DDE); err != nil {
		return &OSError{Op: "CoInitializeEx", Err: err}
	}
	return nil
}

func Teardown() {
	windows.CoUninitialize()
}
