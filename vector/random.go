package vector

import (
	"math"
	"math/rand"

	"github.com/annel0/vector2d/numeric"
)

// RandomUnit возвращает вектор единичной длины со случайным углом,
// равномерным в [0, 2π)
func RandomUnit() *Vector {
	sin, cos := math.Sincos(rand.Float64() * 2 * math.Pi)
	return &Vector{X: cos, Y: sin}
}

// RandomizeX задаёт компоненте X равномерно случайное значение между
// X-компонентами двух граничных векторов; порядок границ не важен
func (v *Vector) RandomizeX(a, b *Vector) *Vector {
	lo := math.Min(a.X, b.X)
	hi := math.Max(a.X, b.X)
	v.X = numeric.RandomRange(lo, hi)
	return v
}

// RandomizeY задаёт компоненте Y равномерно случайное значение между
// Y-компонентами двух граничных векторов
func (v *Vector) RandomizeY(a, b *Vector) *Vector {
	lo := math.Min(a.Y, b.Y)
	hi := math.Max(a.Y, b.Y)
	v.Y = numeric.RandomRange(lo, hi)
	return v
}

// Randomize случайно задаёт обе компоненты, каждую независимо
func (v *Vector) Randomize(a, b *Vector) *Vector {
	return v.RandomizeX(a, b).RandomizeY(a, b)
}

// RandomizeAny случайно задаёт ровно одну компоненту, выбранную с
// вероятностью 50/50
func (v *Vector) RandomizeAny(a, b *Vector) *Vector {
	if rand.Intn(2) == 0 {
		return v.RandomizeX(a, b)
	}
	return v.RandomizeY(a, b)
}
