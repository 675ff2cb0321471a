// Package cli builds the command-line front end described in
// spec.md §6, rewired onto github.com/spf13/cobra (cogentcore-core's
// cmd/root.go shows the pack's convention for command construction)
// in place of the teacher's hand-rolled stdlib flag parsing.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"carve/export"
	"carve/render"
	"carve/report"
	"carve/voxelmodel"
)

// NewRootCommand builds the carve CLI: -p/--path, -r/--resolution,
// -i/--info, plus the export/render collaborators as opt-in flags.
func NewRootCommand() *cobra.Command {
	var (
		path       string
		resolution int
		info       bool
		voxPath    string
		plyPath    string
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "carve",
		Short: "Reconstruct a voxel solid from a set of silhouette views",
		Long: "carve reconstructs a three-dimensional voxel solid from a set of\n" +
			"two-dimensional silhouette projections using volume carving.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if path == "" {
				return fmt.Errorf("carve: -p/--path is required")
			}
			if resolution <= 0 {
				return fmt.Errorf("carve: -r/--resolution must be positive")
			}

			m, err := voxelmodel.New(path, resolution, false)
			if err != nil {
				return err
			}

			for _, v := range m.Views {
				fmt.Println(report.ViewSummary(v))
			}
			if info {
				fmt.Print(report.ModelInfoBlock(m))
			}

			if voxPath != "" {
				if err := export.WriteVOX(m, voxPath); err != nil {
					return err
				}
				slog.Info("wrote vox export", "path", voxPath)
			}
			if plyPath != "" {
				if err := export.WritePLY(m, plyPath); err != nil {
					return err
				}
				slog.Info("wrote ply export", "path", plyPath)
			}

			if interactive {
				cfg, err := render.LoadConfig("render.toml")
				if err != nil {
					return err
				}
				r, err := render.NewRenderer(cfg, m)
				if err != nil {
					return err
				}
				r.Run()
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&path, "path", "p", "", "model directory containing one subdirectory per view")
	cmd.Flags().IntVarP(&resolution, "resolution", "r", 64, "voxel grid resolution per axis")
	cmd.Flags().BoolVarP(&info, "info", "i", false, "print the additional model info block")
	cmd.Flags().StringVar(&voxPath, "export-vox", "", "write the reconstructed model to a MagicaVoxel .vox file")
	cmd.Flags().StringVar(&plyPath, "export-ply", "", "write the reconstructed model to an ASCII PLY point cloud")
	cmd.Flags().BoolVar(&interactive, "render", false, "open the interactive 3D viewer after reconstruction")

	return cmd
}

// Execute runs the root command, exiting nonzero on a usage or model error.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
