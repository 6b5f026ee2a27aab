package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/berrio/seratosync/internal/backup"
	"github.com/berrio/seratosync/internal/config"
	"github.com/berrio/seratosync/internal/ui"
)

var infoTarget string

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show what a drive currently holds",
	Long: `Inspect a drive for an existing backup or sync: whether Serato
metadata is present, which crates it has, and where the audio files live.
Read-only; nothing on the drive is touched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("target") {
			cfg.Target = infoTarget
		}
		if cfg.Target == "" {
			return fmt.Errorf("%w: target", config.ErrMissingKey)
		}

		info, err := backup.Inspect(cfg.Target)
		if err != nil {
			return err
		}

		fmt.Println(ui.RenderHeader("Drive: " + cfg.Target))
		if !info.HasSerato {
			fmt.Printf("  %s no Serato metadata found\n", ui.RenderDim("•"))
		} else {
			fmt.Printf("  %s Serato metadata present, %d crate(s)\n", ui.RenderSuccess("•"), len(info.CrateNames))
			const show = 10
			for i, name := range info.CrateNames {
				if i == show {
					fmt.Printf("      %s\n", ui.RenderDim(fmt.Sprintf("... and %d more", len(info.CrateNames)-show)))
					break
				}
				fmt.Printf("      %s\n", name)
			}
		}
		if info.MusicFolder != "" {
			fmt.Printf("  %s %d track(s) in %q\n", ui.RenderSuccess("•"), info.TrackCount, info.MusicFolder)
		} else {
			fmt.Printf("  %s no audio files found\n", ui.RenderDim("•"))
		}
		return nil
	},
}

func init() {
	infoCmd.Flags().StringVar(&infoTarget, "target", "", "drive mount point to inspect")
	rootCmd.AddCommand(infoCmd)
}
