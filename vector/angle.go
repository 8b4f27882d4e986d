package vector

import (
	"fmt"
	"math"

	"github.com/annel0/vector2d/numeric"
)

// HorizontalAngle возвращает угол вектора относительно оси X,
// atan2(y, x), в диапазоне (-π, π]
func (v *Vector) HorizontalAngle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Angle псевдоним HorizontalAngle
func (v *Vector) Angle() float64 {
	return v.HorizontalAngle()
}

// HorizontalAngleDeg возвращает HorizontalAngle в градусах
func (v *Vector) HorizontalAngleDeg() float64 {
	return numeric.RadiansToDegrees(v.HorizontalAngle())
}

// AngleDeg псевдоним HorizontalAngleDeg
func (v *Vector) AngleDeg() float64 {
	return v.HorizontalAngleDeg()
}

// VerticalAngle возвращает угол вектора относительно оси Y, atan2(x, y)
func (v *Vector) VerticalAngle() float64 {
	return math.Atan2(v.X, v.Y)
}

// VerticalAngleDeg возвращает VerticalAngle в градусах
func (v *Vector) VerticalAngleDeg() float64 {
	return numeric.RadiansToDegrees(v.VerticalAngle())
}

// AngleWith возвращает беззнаковый угол между векторами в [0, π].
// Для нулевого вектора (любого из двух) возвращает 0.
func (v *Vector) AngleWith(other *Vector) float64 {
	if v.IsZero() || other.IsZero() {
		return 0
	}
	cos := v.Dot(other) / (v.Mag() * other.Mag())
	// Косинус может выскочить за [-1, 1] из-за плавающей точки,
	// тогда Acos вернёт NaN
	cos = math.Max(-1, math.Min(1, cos))
	return math.Acos(cos)
}

// OrientedAngleWith возвращает знаковый угол от приёмника к other
// в (-π, π]: положительный против часовой стрелки
func (v *Vector) OrientedAngleWith(other *Vector) float64 {
	return math.Atan2(v.Cross(other), v.Dot(other))
}

// Slope возвращает наклон y/x. Отрицательный ноль нормализуется к 0,
// -Inf отображается в +Inf: наклон вертикальной прямой беззнаковый.
func (v *Vector) Slope() float64 {
	s := v.Y / v.X
	if s == 0 {
		return 0
	}
	if math.IsInf(s, -1) {
		return math.Inf(1)
	}
	return s
}

// RotateBy поворачивает вектор на угол в радианах, против часовой
// стрелки при положительном угле
func (v *Vector) RotateBy(angle float64) *Vector {
	sin, cos := math.Sincos(angle)
	x := v.X*cos - v.Y*sin
	y := v.X*sin + v.Y*cos
	v.X = x
	v.Y = y
	return v
}

// RotateByDeg поворачивает вектор на угол в градусах
func (v *Vector) RotateByDeg(degrees float64) *Vector {
	return v.RotateBy(numeric.DegreesToRadians(degrees))
}

// RotateTo поворачивает вектор так, чтобы его угол стал равен target
// (в радианах)
func (v *Vector) RotateTo(target float64) *Vector {
	return v.RotateBy(target - v.HorizontalAngle())
}

// RotateTowards поворачивает вектор в сторону направления other, но
// не более чем на maxAngle радиан, выбирая короткое направление
// поворота. Никогда не проскакивает мимо направления other.
// Неположительный maxAngle — ошибка диапазона.
func (v *Vector) RotateTowards(other *Vector, maxAngle float64) (*Vector, error) {
	if err := checkFinite("maxAngle", maxAngle); err != nil {
		return nil, err
	}
	if maxAngle <= 0 {
		return nil, fmt.Errorf("maxAngle = %v: %w", maxAngle, ErrOutOfRange)
	}

	delta := v.AngleWith(other)
	if delta == 0 {
		return v, nil
	}
	step := math.Min(delta, maxAngle)
	// Знак векторного произведения задаёт короткое направление;
	// для противонаправленных векторов (cross == 0) оба равнозначны
	if v.Cross(other) < 0 {
		step = -step
	}
	return v.RotateBy(step), nil
}
