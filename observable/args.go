package observable

//go:generate go run ../cmd/codegen --out bind.go

import (
	"errors"
	"fmt"
)

// ErrBadArgs reports captured args that do not fit a bound function.
var ErrBadArgs = errors.New("observable: bad computation args")

func checkArity(args []any, want int) error {
	if len(args) != want {
		return fmt.Errorf("%w: want %d args, got %d", ErrBadArgs, want, len(args))
	}
	return nil
}

// arg returns args[i] as an A. A nil arg becomes the zero A.
func arg[A any](args []any, i int) (A, error) {
	var zero A
	if args[i] == nil {
		return zero, nil
	}
	v, ok := args[i].(A)
	if !ok {
		return zero, fmt.Errorf("%w: arg %d is %T, want %T", ErrBadArgs, i, args[i], zero)
	}
	return v, nil
}
