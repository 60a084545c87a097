package probe

import (
	"errors"
	"fmt"
	"sort"

	"github.com/google/cel-go/cel"
)

var ErrInvalidReturnType = errors.New("predicate must return a bool")

// Evaluate compiles expr with every key of res declared as a dynamic
// variable and evaluates it against res.
func Evaluate(expr string, res Result) (bool, error) {
	keys := make([]string, 0, len(res))
	for k := range res {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	opts := make([]cel.EnvOption, 0, len(keys))
	for _, k := range keys {
		opts = append(opts, cel.Variable(k, cel.DynType))
	}

	env, err := cel.NewEnv(opts...)
	if err != nil {
		return false, fmt.Errorf("env error: %w", err)
	}

	ast, issues := env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return false, fmt.Errorf("compile error: %w", issues.Err())
	}

	program, err := env.Program(ast)
	if err != nil {
		return false, fmt.Errorf("program construction error: %w", err)
	}

	out, _, err := program.Eval(map[string]any(res))
	if err != nil {
		return false, fmt.Errorf("evaluation error: %w", err)
	}

	v, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("%w: got %v", ErrInvalidReturnType, out.Type())
	}

	return v, nil
}
