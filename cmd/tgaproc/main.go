package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/uhussain11/TGA-Image-Processing/internal/pipeline"
)

var rootCmd = &cobra.Command{
	Use:   "tgaproc <output> <input> [operation operand...]...",
	Short: "Blend, adjust and combine uncompressed TGA images",
	Long: "Blend, adjust and combine uncompressed TGA images.\n\n" +
		"The input image is loaded and every operation is applied to the running\n" +
		"image in order; the result is written to output.\n\n" +
		"An output path equal to a subcommand name (identify, encode, raw, preview,\n" +
		"help, completion) runs that subcommand; write it as ./identify instead.\n\n" +
		"Operations:\n    " + strings.Join(pipeline.Operators(), "\n    "),
	Example:       "  tgaproc out.tga layer1.tga multiply pattern1.tga flip addred 20",
	Args:          cobra.ArbitraryArgs,
	RunE:          runPipeline,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
