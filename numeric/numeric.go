// Package numeric содержит небольшие числовые хелперы без состояния:
// преобразование градусов и радиан, равномерный случайный выбор из
// диапазона и жёсткое ограничение значения в диапазон.
package numeric

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
)

// ErrNotFinite возвращается, когда аргумент не является конечным числом
// (NaN или ±Inf).
var ErrNotFinite = errors.New("аргумент не является конечным числом")

// DegreesToRadians переводит угол из градусов в радианы
func DegreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// RadiansToDegrees переводит угол из радиан в градусы
func RadiansToDegrees(radians float64) float64 {
	return radians * 180 / math.Pi
}

// RandomRange возвращает равномерно распределённое случайное число
// в полуинтервале [min, max)
func RandomRange(min, max float64) float64 {
	return min + rand.Float64()*(max-min)
}

// ClampToRange ограничивает value в диапазон [lo, hi]: значение внутри
// диапазона возвращается как есть, иначе возвращается ближайшая граница.
// Все три аргумента должны быть конечными числами.
func ClampToRange(value, lo, hi float64) (float64, error) {
	for _, f := range []float64{value, lo, hi} {
		if !IsFinite(f) {
			return 0, fmt.Errorf("clamp(%v, %v, %v): %w", value, lo, hi, ErrNotFinite)
		}
	}
	if value < lo {
		return lo, nil
	}
	if value > hi {
		return hi, nil
	}
	return value, nil
}

// IsFinite проверяет, что число конечно (не NaN и не ±Inf)
func IsFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
