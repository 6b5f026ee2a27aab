package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/berrio/seratosync/internal/config"
	"github.com/berrio/seratosync/internal/sync"
	"github.com/berrio/seratosync/internal/ui"
)

var (
	syncTarget      string
	syncSourceMusic string
	syncPrefix      string
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Rewrite library metadata for music already copied to a drive",
	Long: `Sync Serato metadata to a drive whose music files were copied there
by an external step (e.g. rsync).

The run:
  1. Validates that <source_music>/_Serato_ and <target>/Music exist
  2. Removes any previous _Serato_ tree under <target>/Music
  3. Rewrites every track path in crates, smart crates, and the database
     to be relative to the drive (/Music/...)
  4. Clears the played flag on every database track
  5. Copies the loose preference files verbatim

A crate that fails to parse or write is reported and skipped; the rest of
the library still syncs.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("target") {
			cfg.Target = syncTarget
		}
		if cmd.Flags().Changed("source-music") {
			cfg.SourceMusic = syncSourceMusic
		}
		if cmd.Flags().Changed("prefix") {
			cfg.CratePrefix = syncPrefix
		}
		if err := cfg.ValidateSync(); err != nil {
			return err
		}

		rep, err := sync.New(&sync.Options{
			SourceMusic: cfg.SourceMusic,
			TargetDrive: cfg.Target,
			CratePrefix: cfg.CratePrefix,
			Logger:      newLogger("[sync] "),
		}).Run()
		if err != nil {
			return err
		}

		printSyncReport(rep)
		return nil
	},
}

func init() {
	syncCmd.Flags().StringVar(&syncTarget, "target", "", "destination drive mount point")
	syncCmd.Flags().StringVar(&syncSourceMusic, "source-music", "", "source music root holding _Serato_")
	syncCmd.Flags().StringVar(&syncPrefix, "prefix", "", "prefix for synced crate file names")
	rootCmd.AddCommand(syncCmd)
}

func printSyncReport(rep *sync.Report) {
	fmt.Println(ui.RenderHeader("Metadata sync complete"))
	fmt.Printf("  %s %d crate(s) synced\n", ui.RenderSuccess("•"), rep.Crates.Synced)
	fmt.Printf("  %s %d smart crate(s) synced\n", ui.RenderSuccess("•"), rep.SmartCrates.Synced)
	if rep.Database.Synced == 1 {
		fmt.Printf("  %s database updated\n", ui.RenderSuccess("•"))
	} else if rep.Database.Attempted == 0 {
		fmt.Printf("  %s no database found\n", ui.RenderDim("•"))
	}
	fmt.Printf("  %s %d preference file(s) copied\n", ui.RenderSuccess("•"), rep.PrefsCopied)

	if rep.Clean() {
		fmt.Println(ui.RenderSuccess("Your drive is ready to use with Serato."))
		return
	}
	fmt.Printf("%s\n", ui.RenderError(fmt.Sprintf("%d artifact(s) failed:", len(rep.Failures))))
	for _, f := range rep.Failures {
		fmt.Printf("  %s %s %s: %v\n", ui.RenderError("✗"), f.Category, f.Name, f.Err)
	}
}
