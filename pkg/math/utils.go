package math

import (
	"math"

	"github.com/google/uuid"
	"golang.org/x/exp/constraints"
)

const (
	// DegToRadFactor converts degrees to radians.
	DegToRadFactor = float32(math.Pi / 180.0)
	// RadToDegFactor converts radians to degrees.
	RadToDegFactor = float32(180.0 / math.Pi)

	epsilon32 = float32(1.1920929e-07)
)

// Clamp returns the value f clamped to the range [low, high].
func Clamp[T constraints.Ordered](f, low, high T) T {
	if f < low {
		return low
	}
	if f > high {
		return high
	}
	return f
}

// EuclideanModulo returns n mod m, always with the sign of m.
func EuclideanModulo(n, m float32) float32 {
	return fmod(fmod(n, m)+m, m)
}

// MapLinear maps x from the range [a1, a2] to the range [b1, b2].
func MapLinear(x, a1, a2, b1, b2 float32) float32 {
	return b1 + (x-a1)*(b2-b1)/(a2-a1)
}

// Smoothstep returns 0 at or below lo, 1 at or above hi, and a cubic
// Hermite interpolation in between.
func Smoothstep(x, lo, hi float32) float32 {
	if x <= lo {
		return 0
	}
	if x >= hi {
		return 1
	}
	x = (x - lo) / (hi - lo)
	return x * x * (3 - 2*x)
}

// Smootherstep is Smoothstep with zero first and second derivatives at the edges.
func Smootherstep(x, lo, hi float32) float32 {
	if x <= lo {
		return 0
	}
	if x >= hi {
		return 1
	}
	x = (x - lo) / (hi - lo)
	return x * x * x * (x*(x*6-15) + 10)
}

// NearestPowerOfTwo rounds value to the closest power of two. Values closer
// to 2^32 than to 2^31 saturate at 2^31.
func NearestPowerOfTwo(value uint32) uint32 {
	if value == 0 {
		return 1
	}
	exp := min(math.Round(math.Log2(float64(value))), 31)
	return uint32(1) << uint32(exp)
}

// DegToRad converts degrees to radians.
func DegToRad(degrees float32) float32 {
	return degrees * DegToRadFactor
}

// RadToDeg converts radians to degrees.
func RadToDeg(radians float32) float32 {
	return radians * RadToDegFactor
}

// GenerateUUID returns a random (version 4) UUID.
func GenerateUUID() uuid.UUID {
	return uuid.New()
}

func sqrtf(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}

func sinf(x float32) float32 {
	return float32(math.Sin(float64(x)))
}

func cosf(x float32) float32 {
	return float32(math.Cos(float64(x)))
}

func tanf(x float32) float32 {
	return float32(math.Tan(float64(x)))
}

func asinf(x float32) float32 {
	return float32(math.Asin(float64(x)))
}

func acosf(x float32) float32 {
	return float32(math.Acos(float64(x)))
}

func atan2f(y, x float32) float32 {
	return float32(math.Atan2(float64(y), float64(x)))
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func fmod(x, y float32) float32 {
	return float32(math.Mod(float64(x), float64(y)))
}

func isFinite(x float32) bool {
	return !math.IsNaN(float64(x)) && !math.IsInf(float64(x), 0)
}
