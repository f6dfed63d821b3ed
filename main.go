package main

import (
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/AtOnline/trayfolder/controller"
	"github.com/AtOnline/trayfolder/identity"
	"github.com/AtOnline/trayfolder/tray"
)

func init() {
	// the tray window, its message loop and every popup live on the main thread
	runtime.LockOSThread()
}

func setupSignals(shutdown func()) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	signal.Notify(c, syscall.SIGTERM)

	go func() {
		<-c
		log.Info().Msg("[main] signal received, shutting down")
		shutdown()
	}()
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		tray.Fatal(err)
	}
}

func run(dir string, stockIcon int) error {
	if err := tray.Setup(); err != nil {
		return err
	}
	defer tray.Teardown()

	t, err := tray.New(tray.Options{Tooltip: dir, StockIcon: stockIcon})
	if err != nil {
		return err
	}
	defer func() {
		if err := t.Close(); err != nil {
			log.Warn().Err(err).Msg("[main] failed to release tray window")
		}
	}()

	id, err := identity.Register(identity.Default, t.Add)
	if err != nil {
		return err
	}
	log.Info().Str("id", id.String()).Str("dir", dir).Msg("[main] tray icon added")
	defer func() {
		if err := t.Remove(id); err != nil {
			log.Warn().Err(err).Msg("[main] failed to remove tray icon")
		}
	}()

	if err := t.SetVersion(id); err != nil {
		return err
	}
	if err := t.Announce(id, tray.AppName+" is running", dir); err != nil {
		log.Warn().Err(err).Msg("[main] startup notification failed")
	}

	ctrl := controller.New(controller.Config{
		Dir:      dir,
		ID:       id,
		Platform: t,
		Fatal:    tray.Fatal,
		Log:      log.Logger.With().Str("component", "controller").Logger(),
	})
	defer func() {
		if err := ctrl.Close(); err != nil {
			log.Warn().Err(err).Msg("[main] failed to release menu icons")
		}
	}()
	t.SetOnActivate(ctrl.Activate)

	setupSignals(t.Quit)
	return t.Run()
}
