package pipeline

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/uhussain11/TGA-Image-Processing/internal/color"
	"github.com/uhussain11/TGA-Image-Processing/internal/ir"
	"github.com/uhussain11/TGA-Image-Processing/internal/ops"
)

var (
	// ErrInvalidStep is returned for unknown operator tokens and missing operands.
	ErrInvalidStep = errors.New("invalid pipeline step")
	// ErrInvalidNumber is returned when a numeric operand does not parse.
	ErrInvalidNumber = errors.New("invalid numeric argument")
)

// Step is one parsed operator invocation.
type Step struct {
	Op     string
	Files  []string // operand images, decoded when the step runs
	Delta  int      // addred/addgreen/addblue
	Factor float64  // scalered/scalegreen/scaleblue
}

func (s Step) String() string {
	switch {
	case len(s.Files) > 0:
		return s.Op + " " + strings.Join(s.Files, " ")
	case operators[s.Op].operand == operandInt:
		return fmt.Sprintf("%s %d", s.Op, s.Delta)
	case operators[s.Op].operand == operandFloat:
		return fmt.Sprintf("%s %g", s.Op, s.Factor)
	default:
		return s.Op
	}
}

type operandKind int

const (
	operandNone operandKind = iota
	operandInt
	operandFloat
)

// operator describes how a token is parsed and applied.
type operator struct {
	files   int // operand images following the token
	operand operandKind
	apply   func(cur *ir.Image, operands []*ir.Image, s Step) (*ir.Image, error)
	// first and next narrate the step when it is the first one of a run or a
	// later one; input is the name of the pipeline's input file.
	first func(input string, s Step) string
	next  func(s Step) string
}

func blend(f func(top, bottom *ir.Image) (*ir.Image, error)) func(*ir.Image, []*ir.Image, Step) (*ir.Image, error) {
	return func(cur *ir.Image, operands []*ir.Image, _ Step) (*ir.Image, error) {
		return f(cur, operands[0])
	}
}

func blendOp(f func(top, bottom *ir.Image) (*ir.Image, error), verb, nextFmt string) operator {
	return operator{
		files: 1,
		apply: blend(f),
		first: func(input string, s Step) string {
			return fmt.Sprintf("%s %s and %s ...", verb, input, s.Files[0])
		},
		next: func(s Step) string {
			return fmt.Sprintf(nextFmt, s.Files[0])
		},
	}
}

func extractOp(c color.Channel) operator {
	return operator{
		apply: func(cur *ir.Image, _ []*ir.Image, _ Step) (*ir.Image, error) {
			return ops.ExtractChannel(cur, c)
		},
		first: func(input string, _ Step) string {
			return fmt.Sprintf("Only %s %s ...", title(c), input)
		},
		next: func(Step) string {
			return fmt.Sprintf(" ... and getting only %s output of previous step ...", c)
		},
	}
}

func addOp(c color.Channel) operator {
	return operator{
		operand: operandInt,
		apply: func(cur *ir.Image, _ []*ir.Image, s Step) (*ir.Image, error) {
			return ops.AddToChannel(cur, c, s.Delta)
		},
		first: func(input string, s Step) string {
			return fmt.Sprintf("Adding %d to the %s channel of %s ...", s.Delta, c, input)
		},
		next: func(s Step) string {
			return fmt.Sprintf(" ... and adding %d to the %s channel of previous step ...", s.Delta, c)
		},
	}
}

func scaleOp(c color.Channel) operator {
	return operator{
		operand: operandFloat,
		apply: func(cur *ir.Image, _ []*ir.Image, s Step) (*ir.Image, error) {
			return ops.ScaleChannel(cur, c, s.Factor)
		},
		first: func(input string, s Step) string {
			return fmt.Sprintf("Scaling %g to the %s channel of %s ...", s.Factor, c, input)
		},
		next: func(s Step) string {
			return fmt.Sprintf(" ... and scaling %g to the %s channel of previous step ...", s.Factor, c)
		},
	}
}

func title(c color.Channel) string {
	s := c.String()
	return strings.ToUpper(s[:1]) + s[1:]
}

var operators = map[string]operator{
	"multiply": blendOp(ops.Multiply, "Multiplying", "... and multiplying %s with result of previous step ..."),
	"subtract": blendOp(ops.Subtract, "Subtracting", " ... and subtracting %s from previous step ..."),
	"overlay":  blendOp(ops.Overlay, "Overlaying", " ... and overlaying %s with result of previous step ..."),
	"screen":   blendOp(ops.Screen, "Screen blending", " ... and screen blending %s with result of previous step ..."),
	"addition": blendOp(ops.Addition, "Adding", " ... and adding %s to result of previous step ..."),
	"combine": {
		files: 2,
		apply: func(cur *ir.Image, operands []*ir.Image, _ Step) (*ir.Image, error) {
			return ops.CombineChannels(cur, operands[0], operands[1])
		},
		first: func(_ string, s Step) string {
			return fmt.Sprintf("Combining channels from running image, %s, and %s ...", s.Files[0], s.Files[1])
		},
		next: func(s Step) string {
			return fmt.Sprintf(" ... and combining channels from running image, %s, and %s to previous step ...", s.Files[0], s.Files[1])
		},
	},
	"flip": {
		apply: func(cur *ir.Image, _ []*ir.Image, _ Step) (*ir.Image, error) {
			return ops.Rotate180(cur)
		},
		first: func(input string, _ Step) string {
			return fmt.Sprintf("Flipping %s ...", input)
		},
		next: func(Step) string {
			return " ... and flipping output of previous step ..."
		},
	},
}

func init() {
	for _, c := range color.Channels {
		operators["only"+c.String()] = extractOp(c)
		operators["add"+c.String()] = addOp(c)
		operators["scale"+c.String()] = scaleOp(c)
	}
}

// Operators returns the recognized operator tokens with their operand usage.
func Operators() []string {
	return []string{
		"multiply <file>",
		"subtract <file>",
		"overlay <file>",
		"screen <file>",
		"addition <file>",
		"combine <greenFile> <blueFile>",
		"flip",
		"onlyred | onlygreen | onlyblue",
		"addred | addgreen | addblue <int>",
		"scalered | scalegreen | scaleblue <float>",
	}
}

// Parse turns operator tokens and their operands into steps. It checks every
// token and numeric operand before any image is touched.
func Parse(tokens []string) ([]Step, error) {
	var steps []Step
	for i := 0; i < len(tokens); i++ {
		name := tokens[i]
		op, ok := operators[name]
		if !ok {
			return nil, fmt.Errorf("%w: unknown operation %q", ErrInvalidStep, name)
		}

		want := op.files
		if op.operand != operandNone {
			want = 1
		}
		if want > len(tokens)-i-1 {
			return nil, fmt.Errorf("%w: %s needs %d operand(s), got %d", ErrInvalidStep, name, want, len(tokens)-i-1)
		}
		args := tokens[i+1 : i+1+want]
		i += want

		s := Step{Op: name}
		switch op.operand {
		case operandInt:
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return nil, fmt.Errorf("%w: %s amount %q is not an integer", ErrInvalidNumber, name, args[0])
			}
			s.Delta = n
		case operandFloat:
			f, err := strconv.ParseFloat(args[0], 64)
			if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
				return nil, fmt.Errorf("%w: %s factor %q is not a finite number", ErrInvalidNumber, name, args[0])
			}
			s.Factor = f
		default:
			s.Files = append([]string(nil), args...)
		}
		steps = append(steps, s)
	}
	return steps, nil
}
