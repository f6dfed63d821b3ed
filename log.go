package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/MagicalTux/ringbuf"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/AtOnline/trayfolder/cfgpath"
	"github.com/AtOnline/trayfolder/tray"
)

var logbuf *ringbuf.Writer

// setupLog routes all logging through an in-memory ring buffer. Each sink
// drains it through its own reader.
func setupLog(debug bool, logFile string) error {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	var err error
	logbuf, err = ringbuf.New(1024 * 1024)
	if err != nil {
		return err
	}

	sinks := []io.Writer{os.Stderr, tray.NewDebugWriter()}
	if logFile != "" {
		if err := cfgpath.EnsureDir(filepath.Dir(logFile)); err != nil {
			return err
		}
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return err
		}
		sinks = append(sinks, f)
	}
	for _, w := range sinks {
		r := logbuf.BlockingReader()
		go func(w io.Writer) {
			defer r.Close()
			io.Copy(w, r)
		}(w)
	}

	log.Logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        logbuf,
		NoColor:    true,
		TimeFormat: "15:04:05",
	}).With().Timestamp().Logger()
	return nil
}
