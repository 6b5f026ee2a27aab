package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/berrio/seratosync/internal/backup"
	"github.com/berrio/seratosync/internal/config"
	"github.com/berrio/seratosync/internal/ui"
)

var (
	backupSource    string
	backupTarget    string
	backupSubfolder string
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Export crates and their audio files to a drive directly",
	Long: `Back up a Serato library to a USB drive without a prior file copy.

Every crate in <source>/Subcrates is exported: the audio files it
references are copied into the drive's tracks folder and the crate is
written with paths pointing at the copies. Missing or unreadable tracks
are reported and skipped.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("source") {
			cfg.Source = backupSource
		}
		if cmd.Flags().Changed("target") {
			cfg.Target = backupTarget
		}
		if err := cfg.ValidateBackup(); err != nil {
			return err
		}

		rep, err := backup.New(&backup.Options{
			Source:          cfg.Source,
			Target:          cfg.Target,
			TracksSubfolder: backupSubfolder,
			Logger:          newLogger("[backup] "),
		}).Run()
		if err != nil {
			return err
		}

		printBackupReport(rep)
		return nil
	},
}

func init() {
	backupCmd.Flags().StringVar(&backupSource, "source", "", "library _Serato_ directory to export")
	backupCmd.Flags().StringVar(&backupTarget, "target", "", "destination drive mount point")
	backupCmd.Flags().StringVar(&backupSubfolder, "tracks-subfolder", "",
		fmt.Sprintf("drive folder receiving audio files (default %q)", backup.DefaultTracksSubfolder))
	rootCmd.AddCommand(backupCmd)
}

func printBackupReport(rep *backup.Report) {
	fmt.Println(ui.RenderHeader("Backup complete"))
	fmt.Printf("  %s %d of %d crate(s) exported\n", ui.RenderSuccess("•"), rep.CratesExported, rep.CratesFound)
	fmt.Printf("  %s %d track(s) copied\n", ui.RenderSuccess("•"), rep.TracksCopied)
	mb := float64(rep.TotalBytes) / (1024 * 1024)
	fmt.Printf("  %s total size: %.2f GB (%.2f MB)\n", ui.RenderAccent("•"), mb/1024, mb)

	if len(rep.Failures) > 0 {
		fmt.Printf("%s\n", ui.RenderError(fmt.Sprintf("%d item(s) failed:", len(rep.Failures))))
		for _, f := range rep.Failures {
			fmt.Printf("  %s %s: %v\n", ui.RenderError("✗"), f.Name, f.Err)
		}
	}
}
