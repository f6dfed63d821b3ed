package main

import (
	"strconv"

	"github.com/TrisTech/goupd"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/AtOnline/trayfolder/cfgpath"
	"github.com/AtOnline/trayfolder/tray"
)

const usage = `Usage:
  ` + tray.AppName + ` <folderPath> [iconNumber]

where iconNumber is any of SHSTOCKICONID *integer* values (defaults to 3, which is an image of a folder)`

var (
	debug   bool
	logFile bool
)

func version() string {
	return goupd.GIT_TAG + " (released " + goupd.DATE_TAG + ")"
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   cfgpath.Name() + " <folderPath> [iconNumber]",
		Short: "Show the content of a folder as a tray icon menu",
		Long: tray.AppName + ` puts an icon in the notification area. Clicking it lists the
files and folders of folderPath in a popup menu; choosing one opens it with its
default application.`,
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			target := ""
			if logFile {
				target = cfgpath.LogFile()
			}
			return setupLog(debug, target)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				tray.Info(usage)
				return nil
			}

			stockIcon := tray.DefaultStockIcon
			if len(args) > 1 {
				stockIcon = parseStockIcon(args[1])
			}
			log.Debug().Str("version", version()).Int("stock_icon", stockIcon).Msg("[main] starting")
			return run(args[0], stockIcon)
		},
	}

	rootCmd.Flags().BoolVar(&debug, "debug", false, "Enable debug output")
	rootCmd.Flags().BoolVar(&logFile, "log-file", false, "Also write the log to "+cfgpath.LogFile())
	rootCmd.Version = version()

	return rootCmd
}

func parseStockIcon(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		log.Warn().Str("value", s).Msg("[main] invalid icon number, using default")
		return tray.DefaultStockIcon
	}
	return v
}
