// Package vector реализует изменяемый 2D-вектор с цепочечными
// методами: арифметика, повороты, интерполяция, ограничение и
// сравнение. Почти все методы мутируют приёмник на месте и возвращают
// его же, что позволяет составлять цепочки вызовов; единственный
// метод, создающий новый экземпляр — Clone.
//
// Методы с возможной ошибкой валидируют аргументы ДО любой мутации:
// при ошибке приёмник остаётся без изменений.
//
// Пакет не содержит внутренней синхронизации. Экземпляр Vector
// рассчитан на единственного владельца; при использовании из
// нескольких горутин требуется внешняя синхронизация.
package vector

import (
	"fmt"
	"math"

	"github.com/annel0/vector2d/numeric"
)

// Vector представляет изменяемый 2D-вектор с компонентами X и Y.
// Конструкторы гарантируют конечность компонент; между вызовами
// методов других инвариантов нет.
type Vector struct {
	X float64
	Y float64
}

// Components структурная форма вектора для конвертации в/из простых данных
type Components struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Polar полярная форма вектора: радиус и угол в радианах
type Polar struct {
	R     float64 `json:"r" yaml:"r"`
	Theta float64 `json:"theta" yaml:"theta"`
}

// DefaultEpsilon допуск по умолчанию для приблизительных сравнений
const DefaultEpsilon = 1e-6

// checkFinite проверяет, что аргумент является конечным числом
func checkFinite(name string, value float64) error {
	if !numeric.IsFinite(value) {
		return fmt.Errorf("%s = %v: %w", name, value, ErrInvalidNumber)
	}
	return nil
}

// New создаёт вектор с указанными компонентами.
// Обе компоненты должны быть конечными числами.
func New(x, y float64) (*Vector, error) {
	if err := checkFinite("x", x); err != nil {
		return nil, err
	}
	if err := checkFinite("y", y); err != nil {
		return nil, err
	}
	return &Vector{X: x, Y: y}, nil
}

// MustNew создаёт вектор и паникует при некорректных компонентах.
// Удобен для литералов в тестах и примерах.
func MustNew(x, y float64) *Vector {
	v, err := New(x, y)
	if err != nil {
		panic(err)
	}
	return v
}

// FromSlice создаёт вектор из первых двух элементов среза.
// Срез должен содержать минимум два конечных числа; лишние элементы
// игнорируются. Строгий вариант: никакого приведения типов.
func FromSlice(vals []float64) (*Vector, error) {
	if len(vals) < 2 {
		return nil, fmt.Errorf("нужно минимум 2 элемента, получено %d: %w", len(vals), ErrInvalidNumber)
	}
	return New(vals[0], vals[1])
}

// FromComponents создаёт вектор из структурной формы
func FromComponents(c Components) (*Vector, error) {
	return New(c.X, c.Y)
}

// FromPolar создаёт вектор (m·cosθ, m·sinθ) из угла в радианах и
// магнитуды. Отрицательная магнитуда допустима и даёт точку,
// отражённую через начало координат.
func FromPolar(theta, magnitude float64) (*Vector, error) {
	if err := checkFinite("theta", theta); err != nil {
		return nil, err
	}
	if err := checkFinite("magnitude", magnitude); err != nil {
		return nil, err
	}
	sin, cos := math.Sincos(theta)
	return &Vector{X: magnitude * cos, Y: magnitude * sin}, nil
}

// Clone возвращает новый независимый вектор с теми же компонентами
func (v *Vector) Clone() *Vector {
	return &Vector{X: v.X, Y: v.Y}
}

// ToSlice возвращает компоненты в виде среза [x, y]
func (v *Vector) ToSlice() []float64 {
	return []float64{v.X, v.Y}
}

// ToComponents возвращает структурную форму вектора
func (v *Vector) ToComponents() Components {
	return Components{X: v.X, Y: v.Y}
}

// ToPolar возвращает полярную форму вектора. Для нулевого вектора
// угол по соглашению равен 0.
func (v *Vector) ToPolar() Polar {
	if v.IsZero() {
		return Polar{R: 0, Theta: 0}
	}
	return Polar{R: v.Mag(), Theta: math.Atan2(v.Y, v.X)}
}

// String возвращает строковое представление в формате "x:<x>, y:<y>"
func (v *Vector) String() string {
	return fmt.Sprintf("x:%v, y:%v", v.X, v.Y)
}
