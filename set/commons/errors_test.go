package commons

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestError(t *testing.T) {
	err := NewError(HasNotCallable, IsSupersetOf)
	require.Equal(t, "TypeError: Set.prototype.isSupersetOf expects other.has to be callable", err.Error())
	require.True(t, errors.Is(err, ErrHasNotCallable))
	require.False(t, errors.Is(err, ErrKeysNotCallable))
	require.True(t, errors.Is(fmt.Errorf("wrapped: %w", err), ErrHasNotCallable))
	require.True(t, IsTypeError(err))
	require.False(t, IsRangeError(err))

	neg := NewError(NegativeSize, Union)
	require.Equal(t, "RangeError: Set operation expects first argument to have non-negative 'size' property", neg.Error())
	require.True(t, IsRangeError(neg))

	require.Equal(t, "TypeError: Set operation expects first argument to be an object", NewError(NotAnObject, Union).Error())
	require.Equal(t, "TypeError: Set operation expects first argument to have non-NaN 'size' property", NewError(MissingOrInvalidSize, Union).Error())
	require.False(t, IsTypeError(errors.New("plain")))
}

func TestKind(t *testing.T) {
	for k := NotAnObject; k <= KeysNotIterator; k++ {
		parsed, err := ParseKind(k.String())
		require.Nil(t, err)
		require.Equal(t, k, parsed)
	}
	require.Equal(t, "keys-not-iterator", KeysNotIterator.String())
	require.Equal(t, "Kind(0)", Kind(0).String())
	_, err := ParseKind("")
	require.NotNil(t, err)
}

func TestOp(t *testing.T) {
	for _, op := range Ops {
		parsed, err := ParseOp(op.String())
		require.Nil(t, err)
		require.Equal(t, op, parsed)
	}
	_, err := ParseOp("unite")
	require.NotNil(t, err)
	require.True(t, IsSubsetOf.IsPredicate())
	require.False(t, Union.IsPredicate())
	require.Equal(t, "Op(42)", Op(42).String())
}
