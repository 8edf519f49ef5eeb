package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClamp_Table(t *testing.T) {
	tests := []struct {
		name   string
		vec    Vector[float32]
		lo, hi Vector[float32]
		want   Vector[float32]
	}{
		{"inside bounds", New[float32](2, 2), New[float32](0, 0), New[float32](4, 4), New[float32](2, 2)},
		{"outside bounds", New[float32](6, -1), New[float32](0, 0), New[float32](4, 4), New[float32](4, 0)},
		{"edge of bounds", New[float32](4, 0), New[float32](0, 0), New[float32](4, 4), New[float32](4, 0)},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := test.vec.Clamp(test.lo, test.hi)
			if got != test.want {
				t.Errorf("got %s - want %s", got, test.want)
			}
		})
	}
}

func TestArithmetic(t *testing.T) {
	v := New(3, 4)

	scaled := v.Mul(5)
	require.Equal(t, New(15, 20), scaled)
	require.Equal(t, scaled, Scale(5, v))

	diff := scaled.Sub(New(-10, -8))
	require.Equal(t, New(25, 28), diff)
	require.Equal(t, New(-25, -28), diff.Neg())
	require.Equal(t, diff, diff.Neg().Neg())

	require.Equal(t, New(3, 5), New(7, 11).Div(2))
	require.Equal(t, New(6, -8), v.MulVec(New(2, -2)))
	require.Equal(t, New(1, 2), New(3, 8).DivVec(New(3, 4)))
	require.True(t, v.Eq(FromPair(3, 4)))
	require.False(t, v.Eq(New(4, 3)))
}

func TestAddProperties(t *testing.T) {
	vecs := []Vector[int]{New(0, 0), New(1, -2), New(-7, 13), New(100, 3), New(-5, -5)}

	for _, a := range vecs {
		require.Equal(t, Zero[int](), a.Add(a.Neg()), "a + -a for %s", a)
		for _, b := range vecs {
			require.Equal(t, a.Add(b), b.Add(a), "commutativity for %s, %s", a, b)
			for _, c := range vecs {
				require.Equal(t, a.Add(b).Add(c), a.Add(b.Add(c)), "associativity for %s, %s, %s", a, b, c)
			}
		}
	}

	fv := New(0.1, -0.7)
	require.True(t, fv.Add(fv.Neg()).IsZero())
}

func TestDivByZero(t *testing.T) {
	t.Run("integer panics", func(t *testing.T) {
		require.Panics(t, func() { New(1, 2).Div(0) })
	})

	t.Run("float gives infinities", func(t *testing.T) {
		got := New(1.0, -1.0).Div(0)
		require.True(t, math.IsInf(got.X, 1))
		require.True(t, math.IsInf(got.Y, -1))

		nan := Zero[float64]().Div(0)
		require.True(t, math.IsNaN(nan.X))
		require.True(t, math.IsNaN(nan.Y))
	})
}

func TestScalarSemanticsInherited(t *testing.T) {
	require.Equal(t, New[uint8](255, 0), New[uint8](1, 0).Neg())
	require.Equal(t, New[int8](-128, 0), New[int8](127, 0).Add(New[int8](1, 0)))
}

func TestDotCross(t *testing.T) {
	a, b := New(1, 2), New(3, 4)
	require.Equal(t, 11, a.Dot(b))
	require.Equal(t, -2, a.Cross(b))
	require.Equal(t, 2, b.Cross(a))
}

func TestMinMax(t *testing.T) {
	a, b := New(1, 9), New(5, -3)
	require.Equal(t, New(1, -3), a.Min(b))
	require.Equal(t, New(5, 9), a.Max(b))
}

func TestMod(t *testing.T) {
	require.Equal(t, New(1, -1), Mod(New(7, -7), New(3, 3)))
	require.Equal(t, New(2, 0), ModScalar(New(12, 15), 5))
	require.Panics(t, func() { ModScalar(New(1, 1), 0) })
}

func TestNot(t *testing.T) {
	require.Equal(t, New(-1, 4), Not(New(0, -5)))
	require.Equal(t, New[uint8](0xF0, 0xFF), Not(New[uint8](0x0F, 0)))
	v := New[int16](1234, -77)
	require.Equal(t, v, Not(Not(v)))
}

func TestConvertAndPair(t *testing.T) {
	require.Equal(t, New(1, -1), Convert[int](New(1.9, -1.9)))
	require.Equal(t, New(2.0, 3.0), Convert[float64](New(2, 3)))

	x, y := New(8, 9).Pair()
	require.Equal(t, 8, x)
	require.Equal(t, 9, y)
}

func TestString(t *testing.T) {
	require.Equal(t, "{1, 2}", New(1, 2).String())
	require.Equal(t, "{1.5, -2}", NewF(1.5, -2).String())
}
