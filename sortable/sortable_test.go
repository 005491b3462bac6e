package sortable

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInt(t *testing.T) {
	t.Parallel()

	assert.True(t, Int(1).LessThan(2))
	assert.False(t, Int(2).LessThan(2))
	assert.True(t, Int(2).Equals(2))
}

func TestChar(t *testing.T) {
	t.Parallel()

	assert.True(t, Char('a').LessThan('b'))
	assert.True(t, Char('Z').LessThan('a'))
	assert.True(t, Char('q').Equals('q'))
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.True(t, String("apple").LessThan("banana"))
	assert.True(t, String("item10").LessThan("item9"), "byte order, not natural order")
	assert.False(t, String("a").Equals("A"))
}

func TestFloat(t *testing.T) {
	t.Parallel()

	nan := Float(float32(math.NaN()))

	t.Run("exact equality", func(t *testing.T) {
		t.Parallel()

		assert.True(t, Float(2.5).Equals(2.5))
		assert.False(t, Float(1).Equals(Float(math.Nextafter32(1, 2))))
		assert.False(t, nan.Equals(nan))
		assert.True(t, Float(float32(math.Copysign(0, -1))).Equals(0))
	})

	t.Run("nan sorts first", func(t *testing.T) {
		t.Parallel()

		assert.True(t, nan.LessThan(-1000))
		assert.False(t, Float(-1000).LessThan(nan))
		assert.False(t, nan.LessThan(nan))
		assert.True(t, Float(1).LessThan(2))
	})
}
