package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/uhussain11/TGA-Image-Processing/internal/tga"
)

var identifyCmd = &cobra.Command{
	Use:   "identify [file]",
	Short: "Inspect TGA header info",
	Args:  cobra.ExactArgs(1),
	RunE:  runIdentify,
}

func init() {
	rootCmd.AddCommand(identifyCmd)
}

func runIdentify(cmd *cobra.Command, args []string) error {
	path := args[0]
	info, err := tga.GetInfo(path)
	if err != nil {
		return err
	}
	h := info.Header
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "File:        %s\n", path)
	fmt.Fprintf(out, "Type:        %s (%d)\n", info.Type, h.DataTypeCode)
	fmt.Fprintf(out, "Dimensions:  %d x %d\n", h.Width, h.Height)
	fmt.Fprintf(out, "Pixel depth: %d bits (%d channels)\n", h.PixelDepth, info.Channels)
	fmt.Fprintf(out, "Origin:      %d,%d\n", h.XOrigin, h.YOrigin)
	if info.TopDown {
		fmt.Fprintln(out, "Row order:   top-down")
	} else {
		fmt.Fprintln(out, "Row order:   bottom-up")
	}
	fmt.Fprintf(out, "Image ID:    %d bytes\n", h.IDLength)
	if h.ColorMapType != 0 {
		fmt.Fprintf(out, "Color map:   %d entries of %d bits from %d\n", h.ColorMapLength, h.ColorMapDepth, h.ColorMapOrigin)
	}
	fmt.Fprintf(out, "Pixel data:  %d bytes\n", info.DataSize)
	fmt.Fprintf(out, "File size:   %d bytes (%.1f KB)\n", info.FileSize, float64(info.FileSize)/1024)
	if info.Supported {
		fmt.Fprintln(out, "Supported:   yes")
	} else {
		fmt.Fprintln(out, "Supported:   no")
	}
	return nil
}
