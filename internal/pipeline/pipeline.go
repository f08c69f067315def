package pipeline

import (
	"fmt"
	"io"

	"github.com/uhussain11/TGA-Image-Processing/internal/ir"
	"github.com/uhussain11/TGA-Image-Processing/internal/tga"
)

// Options controls a pipeline run.
type Options struct {
	// Load decodes operand images. Defaults to tga.DecodeFile.
	Load func(path string) (*ir.Image, error)
	// Progress receives one narration line per step; nil discards them.
	Progress io.Writer
}

func (o Options) load(path string) (*ir.Image, error) {
	if o.Load != nil {
		return o.Load(path)
	}
	return tga.DecodeFile(path)
}

func (o Options) say(line string) {
	if o.Progress != nil {
		fmt.Fprintln(o.Progress, line)
	}
}

// Result holds the output of a pipeline run.
type Result struct {
	Width    int
	Height   int
	Channels int
	Steps    int
}

// Apply folds steps over img and returns the final image. Each step decodes
// its operand files, applies its operator with the running image as the top
// layer, and hands the new image to the next step. img itself is not
// modified. input names the source of img in progress lines.
func Apply(img *ir.Image, input string, steps []Step, opts Options) (*ir.Image, error) {
	cur := img
	for i, s := range steps {
		op, ok := operators[s.Op]
		if !ok {
			return nil, fmt.Errorf("%w: unknown operation %q", ErrInvalidStep, s.Op)
		}
		if len(s.Files) != op.files {
			return nil, fmt.Errorf("%w: %s needs %d file(s), got %d", ErrInvalidStep, s.Op, op.files, len(s.Files))
		}

		operands := make([]*ir.Image, len(s.Files))
		for j, path := range s.Files {
			o, err := opts.load(path)
			if err != nil {
				return nil, fmt.Errorf("step %d (%s): %w", i+1, s.Op, err)
			}
			operands[j] = o
		}

		next, err := op.apply(cur, operands, s)
		if err != nil {
			return nil, fmt.Errorf("step %d (%s): %w", i+1, s, err)
		}
		cur = next

		if i == 0 {
			opts.say(op.first(input, s))
		} else {
			opts.say(op.next(s))
		}
	}
	return cur, nil
}

// Run executes a full pipeline: decode input -> apply steps -> encode output.
// The output file is written only after every step has succeeded.
func Run(input, output string, steps []Step, opts Options) (*Result, error) {
	// 1. Decode the running image
	img, err := opts.load(input)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	// 2. Apply the steps
	final, err := Apply(img, input, steps, opts)
	if err != nil {
		return nil, err
	}

	// 3. Encode
	if err := tga.EncodeFile(output, final); err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}
	opts.say(fmt.Sprintf("... and saving output to %s!", output))

	return &Result{
		Width:    final.Width(),
		Height:   final.Height(),
		Channels: final.Channels(),
		Steps:    len(steps),
	}, nil
}
