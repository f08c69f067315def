package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/uhussain11/TGA-Image-Processing/internal/tga"
)

var rawCmd = &cobra.Command{
	Use:   "raw",
	Short: "Dump TGA pixel bytes (raw output + JSON sidecar)",
	RunE:  runRaw,
}

func init() {
	rawCmd.Flags().StringP("input", "i", "", "Input TGA file")
	rawCmd.Flags().StringP("output", "o", "", "Output raw pixel file")
	rawCmd.MarkFlagRequired("input")
	rawCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(rawCmd)
}

type rawMeta struct {
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Channels int    `json:"channels"`
	Format   string `json:"format"`
	TopDown  bool   `json:"topDown"`
}

func runRaw(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	outputPath, _ := cmd.Flags().GetString("output")

	img, err := tga.DecodeFile(inputPath)
	if err != nil {
		return err
	}

	if err := os.WriteFile(outputPath, img.Pixels, 0644); err != nil {
		return fmt.Errorf("writing raw pixels: %w", err)
	}

	// Write JSON sidecar
	meta := rawMeta{
		Width:    img.Width(),
		Height:   img.Height(),
		Channels: img.Channels(),
		Format:   "BGR8",
		TopDown:  img.Header.TopLeftOrigin(),
	}
	if img.Channels() == 4 {
		meta.Format = "BGRA8"
	}
	metaJSON, _ := json.MarshalIndent(meta, "", "  ")
	metaPath := strings.TrimSuffix(outputPath, ".raw") + ".json"
	if err := os.WriteFile(metaPath, metaJSON, 0644); err != nil {
		return fmt.Errorf("writing sidecar: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Dumped %dx%d %s → %s (%d bytes)\n", meta.Width, meta.Height, meta.Format, outputPath, len(img.Pixels))
	fmt.Fprintf(out, "Sidecar: %s\n", metaPath)
	return nil
}
