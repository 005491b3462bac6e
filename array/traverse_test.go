package array

import (
	"math"
	"strconv"
	"testing"

	"github.com/amp-labs/amp-arrays/compare"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMap(t *testing.T) {
	t.Parallel()

	arr := mustFromSlice(t, []int{1, 2, 3}, WithGrowthPolicy(GrowByOne))

	t.Run("identity", func(t *testing.T) {
		t.Parallel()

		same := Map(arr, func(v int, _ int, _ *Array[int]) int { return v })
		assert.True(t, Equal(arr, same))
	})

	t.Run("changes type", func(t *testing.T) {
		t.Parallel()

		strs := Map(arr, func(v int, i int, _ *Array[int]) string {
			return strconv.Itoa(v) + "@" + strconv.Itoa(i)
		})

		assert.Equal(t, []string{"1@0", "2@1", "3@2"}, strs.Values())
		assert.Equal(t, GrowByOne, strs.GrowthPolicy())
		assert.Equal(t, []int{1, 2, 3}, arr.Values())
	})
}

func TestFilter(t *testing.T) {
	t.Parallel()

	arr, err := New[int](10)
	require.NoError(t, err)
	require.NoError(t, arr.ConcatValues(1, 2, 3, 4, 5, 6))

	even := arr.Filter(func(v int, _ int, _ *Array[int]) bool { return v%2 == 0 })
	assert.Equal(t, []int{2, 4, 6}, even.Values())
	assert.Equal(t, 3, even.Cap())

	all := arr.Filter(func(int, int, *Array[int]) bool { return true })
	assert.True(t, Equal(all, arr.Copy()))

	none := arr.Filter(func(int, int, *Array[int]) bool { return false })
	assert.True(t, none.IsEmpty())
}

func TestForEach(t *testing.T) {
	t.Parallel()

	arr := mustFromSlice(t, []string{"a", "b"})

	var seen []string

	arr.ForEach(func(v string, i int, a *Array[string]) {
		assert.Same(t, arr, a)

		seen = append(seen, strconv.Itoa(i)+v)
	})

	assert.Equal(t, []string{"0a", "1b"}, seen)
}

func TestCountExists(t *testing.T) {
	t.Parallel()

	arr, err := New[int](10)
	require.NoError(t, err)
	require.NoError(t, arr.ConcatValues(1, 2, 2, 3, 2))

	assert.Equal(t, 3, Count(arr, 2))
	assert.Equal(t, 0, Count(arr, 0), "unused zero slots are not counted")
	assert.True(t, Exists(arr, 3))
	assert.False(t, Exists(arr, 4))
	assert.Equal(t, 2, arr.CountFunc(func(v int) bool { return v%2 == 1 }))
	assert.True(t, arr.ExistsFunc(func(v int) bool { return v > 2 }))
	assert.False(t, arr.ExistsFunc(func(v int) bool { return v > 3 }))
}

func TestCountFloatEquality(t *testing.T) {
	t.Parallel()

	nan := float32(math.NaN())
	arr := mustFromSlice(t, []float32{0.5, nan, float32(math.Copysign(0, -1))})

	assert.Equal(t, 1, Count(arr, 0.5))
	assert.Equal(t, 0, Count(arr, nan), "NaN never matches")
	assert.Equal(t, 1, Count(arr, 0), "-0 matches +0")
	assert.False(t, Exists(arr, math.Nextafter32(0.5, 1)))
}

func TestCountEqual(t *testing.T) {
	t.Parallel()

	nan := compare.Float64Bits(math.NaN())
	arr := mustFromSlice(t, []compare.Float64Bits{nan, 1, nan})

	assert.Equal(t, 2, CountEqual(arr, nan))
	assert.Equal(t, 1, CountEqual(arr, 1))
	assert.Equal(t, 0, CountEqual(arr, compare.Float64Bits(math.Copysign(0, -1))))
}

func TestEqual(t *testing.T) {
	t.Parallel()

	a := mustFromSlice(t, []int{1, 2})
	b, err := New[int](8)
	require.NoError(t, err)
	require.NoError(t, b.ConcatValues(1, 2))

	assert.True(t, Equal(a, b), "capacity is ignored")

	require.NoError(t, b.Push(3))
	assert.False(t, Equal(a, b))
}
