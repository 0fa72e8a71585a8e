package tour

import (
	"bytes"
	"slices"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMayFail(t *testing.T) {
	for i := 0; i < 3; i++ {
		v, err := MayFail(true)
		require.NoError(t, err)
		assert.Equal(t, 1, v)

		_, err = MayFail(false)
		require.ErrorIs(t, err, ErrFail)
		assert.Equal(t, "fail", err.Error())
	}
}

func TestResultLine(t *testing.T) {
	assert.Equal(t, "Success: 1", resultLine(MayFail(true)))
	assert.Equal(t, "Error: fail", resultLine(MayFail(false)))
}

func TestMaybe(t *testing.T) {
	v, ok := Maybe(true)
	assert.True(t, ok)
	assert.Equal(t, 5, v)

	_, ok = Maybe(false)
	assert.False(t, ok)
}

func TestForCountsUp(t *testing.T) {
	var buf bytes.Buffer
	env := &Env{Out: &buf}
	require.NoError(t, stepFor(env))
	assert.Equal(t, "0\n1\n2\n", buf.String())
}

func TestDoubled(t *testing.T) {
	in := []int{1, 2, 3}
	first := Doubled(in)
	assert.Equal(t, []int{2, 4, 6}, first)
	assert.Equal(t, first, Doubled(in))
	assert.Equal(t, []int{1, 2, 3}, in)

	require.Len(t, first, len(in))
	for i := range in {
		assert.Equal(t, 2*in[i], first[i])
	}
}

func TestMapIsLazy(t *testing.T) {
	calls := 0
	seq := Map(slices.Values([]int{1, 2, 3}), func(x int) int {
		calls++
		return x
	})
	assert.Zero(t, calls)

	for v := range seq {
		if v == 2 {
			break
		}
	}
	assert.Equal(t, 2, calls)
}

func TestPointDraw(t *testing.T) {
	tests := []Point{{1, 2}, {-3, 40}, {0, 0}}
	for _, p := range tests {
		var buf bytes.Buffer
		require.NoError(t, p.Draw(&buf))
		out := buf.String()
		assert.Contains(t, out, strconv.Itoa(p.X))
		assert.Contains(t, out, strconv.Itoa(p.Y))
	}

	var buf bytes.Buffer
	require.NoError(t, Point{X: 1, Y: 2}.Draw(&buf))
	assert.Equal(t, "Drawing at (1, 2)\n", buf.String())
}

func TestDescribe(t *testing.T) {
	for _, c := range []Color{Red, Green, Blue} {
		got, err := Describe(c)
		require.NoError(t, err)
		assert.Equal(t, c.String(), got)
	}
	_, err := Describe(Color(7))
	assert.Error(t, err)
	assert.Equal(t, "Color(7)", Color(7).String())
}

func TestGreater(t *testing.T) {
	assert.Equal(t, "x is greater", Greater(42, 10))
	assert.Equal(t, "y is greater or equal", Greater(10, 10))
	assert.Equal(t, "y is greater or equal", Greater(1, 2))
}

func TestCountdown(t *testing.T) {
	assert.Equal(t, 0, Countdown(10))
	assert.Equal(t, -1, Countdown(-1))
}

func TestFirst(t *testing.T) {
	v, ok := First([]int{1, 2, 3})
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	_, ok = First([]int(nil))
	assert.False(t, ok)

	arr := [3]int32{1, 2, 3}
	assert.Equal(t, int32(1), firstUnchecked(&arr))
}

func TestMapInsertReadBack(t *testing.T) {
	m := make(map[string]int)
	m["key"] = 123
	assert.Equal(t, 123, m["key"])
	assert.Equal(t, `{"key": 123}`, formatMap(FormatDebug, m))
	assert.Equal(t, `{"a": 1, "b": 2}`, formatMap(FormatDebug, map[string]int{"b": 2, "a": 1}))
}

func TestDebugString(t *testing.T) {
	var num Int = 7
	assert.Equal(t, "7", DebugString(&num))
	s := "x"
	assert.Equal(t, "x", DebugString(&s))
}

func TestPairUnpack(t *testing.T) {
	a, b := Pair[string, int]{First: "n", Second: 2}.Unpack()
	assert.Equal(t, "n", a)
	assert.Equal(t, 2, b)
}

func TestSilentStepsPass(t *testing.T) {
	for _, s := range Steps() {
		var buf bytes.Buffer
		require.NoError(t, s.Run(&Env{Out: &buf}), s.Name)
	}
}
