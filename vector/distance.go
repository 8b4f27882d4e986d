package vector

import (
	"fmt"
	"math"
)

// DistanceX возвращает разность X-компонент (приёмник минус other)
func (v *Vector) DistanceX(other *Vector) float64 {
	return v.X - other.X
}

// DistanceY возвращает разность Y-компонент
func (v *Vector) DistanceY(other *Vector) float64 {
	return v.Y - other.Y
}

// AbsDistanceX возвращает модуль разности X-компонент
func (v *Vector) AbsDistanceX(other *Vector) float64 {
	return math.Abs(v.DistanceX(other))
}

// AbsDistanceY возвращает модуль разности Y-компонент
func (v *Vector) AbsDistanceY(other *Vector) float64 {
	return math.Abs(v.DistanceY(other))
}

// Distance возвращает евклидово расстояние между векторами
func (v *Vector) Distance(other *Vector) float64 {
	return math.Sqrt(v.DistanceSq(other))
}

// DistanceSq возвращает квадрат евклидова расстояния. Дешевле
// Distance, предпочтителен для сравнений.
func (v *Vector) DistanceSq(other *Vector) float64 {
	dx := v.DistanceX(other)
	dy := v.DistanceY(other)
	return dx*dx + dy*dy
}

// DistanceManhattan возвращает манхэттенское расстояние |Δx| + |Δy|
func (v *Vector) DistanceManhattan(other *Vector) float64 {
	return v.AbsDistanceX(other) + v.AbsDistanceY(other)
}

// DistanceChebyshev возвращает расстояние Чебышёва max(|Δx|, |Δy|)
func (v *Vector) DistanceChebyshev(other *Vector) float64 {
	return math.Max(v.AbsDistanceX(other), v.AbsDistanceY(other))
}

// Dot возвращает скалярное произведение
func (v *Vector) Dot(other *Vector) float64 {
	return v.X*other.X + v.Y*other.Y
}

// Cross возвращает z-компоненту трёхмерного векторного произведения
// при z = 0
func (v *Vector) Cross(other *Vector) float64 {
	return v.X*other.Y - v.Y*other.X
}

// ProjectOnto заменяет вектор его проекцией на направление other.
// Нулевой other — ошибка деления на ноль.
func (v *Vector) ProjectOnto(other *Vector) (*Vector, error) {
	if other.IsZero() {
		return nil, fmt.Errorf("проекция на нулевой вектор: %w", ErrDivisionByZero)
	}
	coeff := v.Dot(other) / other.MagSq()
	v.X = coeff * other.X
	v.Y = coeff * other.Y
	return v, nil
}

// IsZero проверяет, что обе компоненты равны точно нулю
func (v *Vector) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// IsEqualTo проверяет точное покомпонентное равенство. После
// тригонометрических операций непригоден из-за накопленной ошибки
// плавающей точки, используйте IsCloseTo.
func (v *Vector) IsEqualTo(other *Vector) bool {
	return v.X == other.X && v.Y == other.Y
}

// IsCloseTo проверяет покомпонентное равенство с абсолютным допуском
// epsilon (обычно DefaultEpsilon)
func (v *Vector) IsCloseTo(other *Vector, epsilon float64) bool {
	return math.Abs(v.X-other.X) <= epsilon && math.Abs(v.Y-other.Y) <= epsilon
}

// IsParallelTo проверяет параллельность с допуском DefaultEpsilon на
// векторное произведение
func (v *Vector) IsParallelTo(other *Vector) bool {
	return math.Abs(v.Cross(other)) < DefaultEpsilon
}

// IsPerpendicularTo проверяет перпендикулярность с допуском
// DefaultEpsilon на скалярное произведение
func (v *Vector) IsPerpendicularTo(other *Vector) bool {
	return math.Abs(v.Dot(other)) < DefaultEpsilon
}

// checkMixFactor валидирует коэффициент интерполяции
func checkMixFactor(factor float64) error {
	if err := checkFinite("factor", factor); err != nil {
		return err
	}
	if factor < 0 || factor > 1 {
		return fmt.Errorf("factor = %v вне [0, 1]: %w", factor, ErrOutOfRange)
	}
	return nil
}

// MixX линейно интерполирует компоненту X к значению other.X:
// x' = (1-factor)·x + factor·other.x. Factor должен лежать в [0, 1].
func (v *Vector) MixX(other *Vector, factor float64) (*Vector, error) {
	if err := checkMixFactor(factor); err != nil {
		return nil, err
	}
	v.X = (1-factor)*v.X + factor*other.X
	return v, nil
}

// MixY линейно интерполирует компоненту Y к значению other.Y
func (v *Vector) MixY(other *Vector, factor float64) (*Vector, error) {
	if err := checkMixFactor(factor); err != nil {
		return nil, err
	}
	v.Y = (1-factor)*v.Y + factor*other.Y
	return v, nil
}

// Mix линейно интерполирует обе компоненты к other
func (v *Vector) Mix(other *Vector, factor float64) (*Vector, error) {
	if err := checkMixFactor(factor); err != nil {
		return nil, err
	}
	v.X = (1-factor)*v.X + factor*other.X
	v.Y = (1-factor)*v.Y + factor*other.Y
	return v, nil
}

// Unfloat округляет обе компоненты до ближайшего целого
func (v *Vector) Unfloat() *Vector {
	v.X = math.Round(v.X)
	v.Y = math.Round(v.Y)
	return v
}

// FixPrecision округляет обе компоненты до digits знаков после
// запятой (в исходной библиотеке по умолчанию 8)
func (v *Vector) FixPrecision(digits int) *Vector {
	pow := math.Pow(10, float64(digits))
	v.X = math.Round(v.X*pow) / pow
	v.Y = math.Round(v.Y*pow) / pow
	return v
}
