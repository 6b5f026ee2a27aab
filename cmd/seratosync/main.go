package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/berrio/seratosync/internal/ui"
)

var logFile string

var rootCmd = &cobra.Command{
	Use:   "seratosync",
	Short: "Prepare a portable copy of a Serato DJ library",
	Long: `seratosync makes a Serato DJ library usable from a USB drive.

Two flows are available:

  sync    Rewrite crates, smart crates, and the database for music files
          an external copy step (e.g. rsync) has already put on the drive.
  backup  Export crates and the audio files they reference to the drive
          directly.

Configuration comes from environment variables (source, target,
source_music, crate_prefix), an optional seratosync.yaml, and flags.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"append progress logs to this file (rotated) instead of stderr")
}

// newLogger builds the progress logger for a flow, honoring --log-file.
func newLogger(prefix string) *log.Logger {
	var w io.Writer = os.Stderr
	if logFile != "" {
		w = &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    10, // MB
			MaxBackups: 3,
		}
	}
	return log.New(w, prefix, log.LstdFlags)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", ui.RenderError("Error:"), err)
		os.Exit(1)
	}
}
