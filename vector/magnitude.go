package vector

import (
	"fmt"
	"math"
)

// Mag возвращает евклидову длину вектора
func (v *Vector) Mag() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Magnitude псевдоним Mag
func (v *Vector) Magnitude() float64 {
	return v.Mag()
}

// MagSq возвращает квадрат длины вектора. Дешевле Mag, предпочтителен
// для сравнений.
func (v *Vector) MagSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Normalize приводит вектор к единичной длине. Нулевой вектор —
// ошибка деления на ноль.
func (v *Vector) Normalize() (*Vector, error) {
	m := v.Mag()
	if m == 0 {
		return nil, fmt.Errorf("нормализация нулевого вектора: %w", ErrDivisionByZero)
	}
	v.X /= m
	v.Y /= m
	return v, nil
}

// Norm псевдоним Normalize
func (v *Vector) Norm() (*Vector, error) {
	return v.Normalize()
}

// Resize задаёт вектору новую магнитуду, сохраняя направление.
// Отрицательная магнитуда дополнительно разворачивает вектор на 180°.
// Resize(0) схлопывает вектор в начало координат; угол такого вектора
// по соглашению равен 0. Нулевой приёмник — ошибка деления на ноль.
func (v *Vector) Resize(magnitude float64) (*Vector, error) {
	if err := checkFinite("magnitude", magnitude); err != nil {
		return nil, err
	}
	if _, err := v.Normalize(); err != nil {
		return nil, err
	}
	return v.MulScalar(magnitude), nil
}

// LimitX мягко ужимает компоненту X: если |x| > max, она умножается
// на factor (не обрезается до max)
func (v *Vector) LimitX(max, factor float64) (*Vector, error) {
	if err := checkLimitArgs(max, factor); err != nil {
		return nil, err
	}
	if math.Abs(v.X) > max {
		v.X *= factor
	}
	return v, nil
}

// LimitY мягко ужимает компоненту Y: если |y| > max, она умножается
// на factor
func (v *Vector) LimitY(max, factor float64) (*Vector, error) {
	if err := checkLimitArgs(max, factor); err != nil {
		return nil, err
	}
	if math.Abs(v.Y) > max {
		v.Y *= factor
	}
	return v, nil
}

// Limit применяет LimitX и LimitY независимо к обеим компонентам
func (v *Vector) Limit(max, factor float64) (*Vector, error) {
	if err := checkLimitArgs(max, factor); err != nil {
		return nil, err
	}
	if math.Abs(v.X) > max {
		v.X *= factor
	}
	if math.Abs(v.Y) > max {
		v.Y *= factor
	}
	return v, nil
}

func checkLimitArgs(max, factor float64) error {
	if err := checkFinite("max", max); err != nil {
		return err
	}
	return checkFinite("factor", factor)
}

// boundKind вид границы clamp-метода
type boundKind int

const (
	boundNum boundKind = iota
	boundVec
)

// Bound помеченная граница для clamp-методов: либо число, либо
// вектор, у которого читается соответствующая ось (или магнитуда для
// ClampMag). Создаётся конструкторами Num и Vec; в одном вызове обе
// границы должны быть одного вида.
type Bound struct {
	kind boundKind
	num  float64
	vec  *Vector
}

// Num числовая граница
func Num(value float64) Bound {
	return Bound{kind: boundNum, num: value}
}

// Vec векторная граница
func Vec(v *Vector) Bound {
	return Bound{kind: boundVec, vec: v}
}

// resolve возвращает значение границы для указанной оси
func (b Bound) resolve(axis func(*Vector) float64) float64 {
	if b.kind == boundVec {
		return axis(b.vec)
	}
	return b.num
}

// resolveBounds проверяет арность и однородность границ и возвращает
// отсортированный диапазон для оси axis. Одна граница трактуется как
// верхняя (hasLo=false); две сортируются в (lo, hi) независимо от
// порядка передачи.
func resolveBounds(bounds []Bound, axis func(*Vector) float64, what string) (lo, hi float64, hasLo bool, err error) {
	switch len(bounds) {
	case 1:
	case 2:
		if bounds[0].kind != bounds[1].kind {
			return 0, 0, false, fmt.Errorf("границы %s: %w", what, ErrTypeMismatch)
		}
	default:
		return 0, 0, false, fmt.Errorf("границы %s: ожидается 1 или 2, получено %d: %w", what, len(bounds), ErrOutOfRange)
	}

	vals := make([]float64, len(bounds))
	for i, b := range bounds {
		vals[i] = b.resolve(axis)
		if err := checkFinite(fmt.Sprintf("граница %s", what), vals[i]); err != nil {
			return 0, 0, false, err
		}
	}

	if len(vals) == 1 {
		return 0, vals[0], false, nil
	}
	lo, hi = vals[0], vals[1]
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo, hi, true, nil
}

// clampValue жёстко ограничивает значение в разрешённый диапазон
func clampValue(value, lo, hi float64, hasLo bool) float64 {
	if hasLo && value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}

// ClampX жёстко ограничивает компоненту X. Одна граница — верхняя;
// две границы (числа или векторы, но не вперемешку) сортируются в
// (lo, hi) независимо от порядка передачи.
func (v *Vector) ClampX(bounds ...Bound) (*Vector, error) {
	lo, hi, hasLo, err := resolveBounds(bounds, func(b *Vector) float64 { return b.X }, "x")
	if err != nil {
		return nil, err
	}
	v.X = clampValue(v.X, lo, hi, hasLo)
	return v, nil
}

// ClampY жёстко ограничивает компоненту Y; правила те же, что у ClampX
func (v *Vector) ClampY(bounds ...Bound) (*Vector, error) {
	lo, hi, hasLo, err := resolveBounds(bounds, func(b *Vector) float64 { return b.Y }, "y")
	if err != nil {
		return nil, err
	}
	v.Y = clampValue(v.Y, lo, hi, hasLo)
	return v, nil
}

// ClampAxes применяет одни и те же границы к обеим компонентам.
// Векторная граница для каждой оси читается по своей оси. Обе оси
// валидируются до какой-либо мутации.
func (v *Vector) ClampAxes(bounds ...Bound) (*Vector, error) {
	loX, hiX, hasLoX, err := resolveBounds(bounds, func(b *Vector) float64 { return b.X }, "x")
	if err != nil {
		return nil, err
	}
	loY, hiY, hasLoY, err := resolveBounds(bounds, func(b *Vector) float64 { return b.Y }, "y")
	if err != nil {
		return nil, err
	}
	v.X = clampValue(v.X, loX, hiX, hasLoX)
	v.Y = clampValue(v.Y, loY, hiY, hasLoY)
	return v, nil
}

// ClampMag ограничивает магнитуду в диапазон, сохраняя направление.
// Векторная граница читается как магнитуда вектора. Отрицательная
// граница — ошибка диапазона. Нулевой приёмник при необходимости
// увеличения магнитуды — ошибка деления на ноль (из Resize).
func (v *Vector) ClampMag(bounds ...Bound) (*Vector, error) {
	lo, hi, hasLo, err := resolveBounds(bounds, (*Vector).Mag, "магнитуды")
	if err != nil {
		return nil, err
	}
	if hi < 0 || (hasLo && lo < 0) {
		return nil, fmt.Errorf("отрицательная граница магнитуды: %w", ErrOutOfRange)
	}

	m := v.Mag()
	target := m
	if hasLo && m < lo {
		target = lo
	}
	if m > hi {
		target = hi
	}
	if target == m {
		return v, nil
	}
	return v.Resize(target)
}
