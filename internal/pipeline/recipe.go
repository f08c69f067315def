package pipeline

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"
)

// Recipe is a pipeline stored as YAML:
//
//	input: layer1.tga
//	output: out.tga
//	steps:
//	  - op: multiply
//	    args: [pattern1.tga]
//	  - op: addred
//	    args: [200]
type Recipe struct {
	Input  string       `yaml:"input"`
	Output string       `yaml:"output"`
	Steps  []RecipeStep `yaml:"steps"`
}

// RecipeStep is one operator token and its operands.
type RecipeStep struct {
	Op   string   `yaml:"op"`
	Args []string `yaml:"args,omitempty"`
}

// LoadRecipe reads a YAML recipe. Relative image paths (input, output and
// file operands) are resolved against the recipe's directory.
func LoadRecipe(path string) (*Recipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading recipe: %w", err)
	}
	var r Recipe
	if err := yaml.UnmarshalStrict(data, &r); err != nil {
		return nil, fmt.Errorf("parsing recipe %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	r.Input = resolve(dir, r.Input)
	r.Output = resolve(dir, r.Output)
	for i := range r.Steps {
		op, ok := operators[r.Steps[i].Op]
		if !ok || op.files == 0 {
			continue
		}
		for j, a := range r.Steps[i].Args {
			r.Steps[i].Args[j] = resolve(dir, a)
		}
	}
	return &r, nil
}

func resolve(dir, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}

// Parse validates each recipe step on its own, so an operand count mismatch
// is reported against the step that has it.
func (r *Recipe) Parse() ([]Step, error) {
	steps := make([]Step, 0, len(r.Steps))
	for i, rs := range r.Steps {
		parsed, err := Parse(append([]string{rs.Op}, rs.Args...))
		if err != nil {
			return nil, fmt.Errorf("recipe step %d: %w", i+1, err)
		}
		if len(parsed) != 1 {
			return nil, fmt.Errorf("recipe step %d: %w: %s has extra operands %v", i+1, ErrInvalidStep, rs.Op, rs.Args)
		}
		steps = append(steps, parsed[0])
	}
	return steps, nil
}
