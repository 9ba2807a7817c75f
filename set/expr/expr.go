// Package expr evaluates postfix set expressions such as "a b union c isSubsetOf".
//
// Each token is either an operand name or the camelCase name of a composite operation.
// An operation pops the argument, then the receiver, and pushes its result. Only
// native collections can be receivers; arguments can be any operand.
package expr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tuannh982/setlike/set"
	"github.com/tuannh982/setlike/set/commons"
	"github.com/tuannh982/setlike/utils/collections"
)

var (
	ErrEmptyExpression = errors.New("empty expression")
	ErrUnknownToken    = errors.New("unknown token")
	ErrStackUnderflow  = errors.New("not enough operands")
	ErrNotReceiver     = errors.New("receiver is not a collection")
	ErrLeftover        = errors.New("expression leaves more than one value")
)

// Env binds operand names to values.
type Env map[string]any

type Step struct {
	Token  string
	Result any
}

// Eval evaluates src against env and returns the single remaining value.
func Eval(src string, env Env) (any, error) {
	v, _, err := Trace(src, env)
	return v, err
}

// Trace is Eval that also reports the result of every operation, in order.
func Trace(src string, env Env) (any, []Step, error) {
	tokens := collections.NewQueue(strings.Fields(src)...)
	if tokens.Size() == 0 {
		return nil, nil, ErrEmptyExpression
	}
	stack := collections.NewStack[any]()
	steps := make([]Step, 0)
	for pos := 1; tokens.Size() > 0; pos++ {
		tok, _ := tokens.Pop()
		if v, ok := env[tok]; ok {
			stack.Push(v)
			continue
		}
		op, err := commons.ParseOp(tok)
		if err != nil {
			return nil, steps, fmt.Errorf("token %d %q: %w", pos, tok, ErrUnknownToken)
		}
		other, err := stack.Pop()
		if err != nil {
			return nil, steps, fmt.Errorf("token %d %s: %w", pos, op, ErrStackUnderflow)
		}
		top, err := stack.Pop()
		if err != nil {
			return nil, steps, fmt.Errorf("token %d %s: %w", pos, op, ErrStackUnderflow)
		}
		receiver, ok := top.(*set.Set)
		if !ok {
			return nil, steps, fmt.Errorf("token %d %s: %w: %s", pos, op, ErrNotReceiver, commons.Describe(top))
		}
		res, err := receiver.Apply(op, other)
		if err != nil {
			return nil, steps, fmt.Errorf("token %d %s: %w", pos, op, err)
		}
		steps = append(steps, Step{Token: tok, Result: res})
		stack.Push(res)
	}
	if stack.Size() != 1 {
		return nil, steps, fmt.Errorf("%w: %d values", ErrLeftover, stack.Size())
	}
	v, _ := stack.Pop()
	return v, steps, nil
}
