package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/uhussain11/TGA-Image-Processing/internal/raster"
	"github.com/uhussain11/TGA-Image-Processing/internal/tga"
)

var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Encode a PNG, JPEG, GIF, BMP or TIFF image as uncompressed TGA",
	RunE:  runEncode,
}

func init() {
	encodeCmd.Flags().StringP("input", "i", "", "Input image file")
	encodeCmd.Flags().StringP("output", "o", "", "Output TGA file")
	encodeCmd.Flags().Bool("alpha", false, "Write 32-bit pixels with alpha")
	encodeCmd.MarkFlagRequired("input")
	encodeCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(encodeCmd)
}

func runEncode(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	outputPath, _ := cmd.Flags().GetString("output")
	alpha, _ := cmd.Flags().GetBool("alpha")

	img, err := raster.Import(inputPath, alpha)
	if err != nil {
		return fmt.Errorf("importing: %w", err)
	}
	if err := tga.EncodeFile(outputPath, img); err != nil {
		return fmt.Errorf("encoding: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Encoded %dx%d %d-bit TGA → %s (%d bytes)\n",
		img.Width(), img.Height(), img.Header.PixelDepth, outputPath, tga.HeaderSize+len(img.Pixels))
	return nil
}
