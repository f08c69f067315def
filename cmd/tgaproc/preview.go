package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/uhussain11/TGA-Image-Processing/internal/raster"
	"github.com/uhussain11/TGA-Image-Processing/internal/tga"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render a TGA image as PNG/JPEG for viewing",
	RunE:  runPreview,
}

func init() {
	previewCmd.Flags().StringP("input", "i", "", "Input TGA file")
	previewCmd.Flags().StringP("output", "o", "", "Output image (format from extension)")
	previewCmd.Flags().Int("max-width", 0, "Downscale to at most this width (0 keeps full size)")
	previewCmd.MarkFlagRequired("input")
	previewCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	outputPath, _ := cmd.Flags().GetString("output")
	maxWidth, _ := cmd.Flags().GetInt("max-width")

	img, err := tga.DecodeFile(inputPath)
	if err != nil {
		return err
	}
	if err := raster.SavePreview(img, outputPath, maxWidth); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Preview of %dx%d %s → %s\n", img.Width(), img.Height(), inputPath, outputPath)
	return nil
}
