package commons

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSameValueZero(t *testing.T) {
	negZero := math.Copysign(0, -1)
	obj1 := &struct{ a int }{1}
	obj2 := &struct{ a int }{1}
	slice := []int{1, 2}
	m := map[string]int{}

	require.True(t, SameValueZero(math.NaN(), math.NaN()))
	require.True(t, SameValueZero(float32(math.NaN()), math.NaN()))
	require.True(t, SameValueZero(negZero, 0.0))
	require.True(t, SameValueZero(negZero, 0))
	require.True(t, SameValueZero(1, 1.0))
	require.True(t, SameValueZero(uint8(7), int64(7)))
	require.True(t, SameValueZero("a", "a"))
	require.True(t, SameValueZero(nil, nil))
	require.True(t, SameValueZero(obj1, obj1))
	require.True(t, SameValueZero(slice, slice))
	require.True(t, SameValueZero(m, m))

	require.False(t, SameValueZero(obj1, obj2))
	require.False(t, SameValueZero(slice, []int{1, 2}))
	require.False(t, SameValueZero(slice, slice[:1]))
	require.False(t, SameValueZero(1, "1"))
	require.False(t, SameValueZero(0, false))
	require.False(t, SameValueZero(nil, 0))
	require.False(t, SameValueZero(map[string]int{}, map[string]int{}))
}

func TestKeyOf_LargeIntegers(t *testing.T) {
	big := int64(1<<62 + 1)
	require.Equal(t, big, KeyOf(big))
	require.True(t, SameValueZero(int(big), big))
	require.False(t, SameValueZero(big, big+1))
	huge := uint64(1<<63 + 1)
	require.Equal(t, huge, KeyOf(huge))
}

func TestKeyOf_Unhashable(t *testing.T) {
	type withSlice struct{ s []int }
	require.Panics(t, func() { KeyOf(withSlice{}) })
}

func TestCanonicalize(t *testing.T) {
	negZero := math.Copysign(0, -1)
	require.False(t, math.Signbit(Canonicalize(negZero).(float64)))
	require.False(t, math.Signbit(float64(Canonicalize(float32(negZero)).(float32))))
	require.Equal(t, "x", Canonicalize("x"))
	require.Equal(t, 3, Canonicalize(3))
}

func TestHashable(t *testing.T) {
	type withSlice struct{ s []int }
	type plain struct{ a int }
	for _, v := range []any{nil, 1, "x", plain{1}, &withSlice{}, []int{1}, map[int]int{}, func() {}, [2]int{}} {
		require.True(t, Hashable(v), "%T", v)
		require.Nil(t, CheckHashable(v))
	}
	for _, v := range []any{withSlice{}, [1][]int{}, struct{ m map[int]int }{}} {
		require.False(t, Hashable(v), "%T", v)
		err := CheckHashable(v)
		require.True(t, errors.Is(err, ErrUnhashable))
	}
}
