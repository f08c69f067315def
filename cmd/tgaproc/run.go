package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/uhussain11/TGA-Image-Processing/internal/pipeline"
)

func init() {
	rootCmd.Flags().String("recipe", "", "YAML recipe (input, output, steps); its steps run before positional ones")
	rootCmd.Flags().BoolP("quiet", "q", false, "Suppress progress messages")
	// Stop flag parsing at <output> so negative amounts stay operands.
	rootCmd.Flags().SetInterspersed(false)
}

func runPipeline(cmd *cobra.Command, args []string) error {
	recipePath, _ := cmd.Flags().GetString("recipe")
	quiet, _ := cmd.Flags().GetBool("quiet")

	if len(args) == 0 && recipePath == "" {
		return cmd.Help()
	}

	var input, output string
	var steps []pipeline.Step
	if recipePath != "" {
		recipe, err := pipeline.LoadRecipe(recipePath)
		if err != nil {
			return err
		}
		if steps, err = recipe.Parse(); err != nil {
			return err
		}
		input, output = recipe.Input, recipe.Output
	}

	if len(args) > 0 {
		if len(args) < 2 {
			return fmt.Errorf("%w: expected <output> <input>, got %d argument(s)", pipeline.ErrInvalidStep, len(args))
		}
		output, input = args[0], args[1]
		more, err := pipeline.Parse(args[2:])
		if err != nil {
			return err
		}
		steps = append(steps, more...)
	}

	if input == "" || output == "" {
		return fmt.Errorf("%w: both an input and an output image are required", pipeline.ErrInvalidStep)
	}

	opts := pipeline.Options{}
	if !quiet {
		opts.Progress = cmd.OutOrStdout()
	}
	if _, err := pipeline.Run(input, output, steps, opts); err != nil {
		return fmt.Errorf("pipeline: %w", err)
	}
	return nil
}
