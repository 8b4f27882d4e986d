package vector

import "fmt"

// Add прибавляет вектор покомпонентно
func (v *Vector) Add(other *Vector) *Vector {
	v.X += other.X
	v.Y += other.Y
	return v
}

// AddX прибавляет X-компоненту другого вектора
func (v *Vector) AddX(other *Vector) *Vector {
	v.X += other.X
	return v
}

// AddY прибавляет Y-компоненту другого вектора
func (v *Vector) AddY(other *Vector) *Vector {
	v.Y += other.Y
	return v
}

// AddScalar прибавляет скаляр к обеим компонентам
func (v *Vector) AddScalar(s float64) *Vector {
	v.X += s
	v.Y += s
	return v
}

// AddScalarX прибавляет скаляр к компоненте X
func (v *Vector) AddScalarX(s float64) *Vector {
	v.X += s
	return v
}

// AddScalarY прибавляет скаляр к компоненте Y
func (v *Vector) AddScalarY(s float64) *Vector {
	v.Y += s
	return v
}

// Sub вычитает вектор покомпонентно
func (v *Vector) Sub(other *Vector) *Vector {
	v.X -= other.X
	v.Y -= other.Y
	return v
}

// SubX вычитает X-компоненту другого вектора
func (v *Vector) SubX(other *Vector) *Vector {
	v.X -= other.X
	return v
}

// SubY вычитает Y-компоненту другого вектора
func (v *Vector) SubY(other *Vector) *Vector {
	v.Y -= other.Y
	return v
}

// SubScalar вычитает скаляр из обеих компонент
func (v *Vector) SubScalar(s float64) *Vector {
	v.X -= s
	v.Y -= s
	return v
}

// SubScalarX вычитает скаляр из компоненты X
func (v *Vector) SubScalarX(s float64) *Vector {
	v.X -= s
	return v
}

// SubScalarY вычитает скаляр из компоненты Y
func (v *Vector) SubScalarY(s float64) *Vector {
	v.Y -= s
	return v
}

// Mul умножает вектор покомпонентно
func (v *Vector) Mul(other *Vector) *Vector {
	v.X *= other.X
	v.Y *= other.Y
	return v
}

// MulX умножает компоненту X на X-компоненту другого вектора
func (v *Vector) MulX(other *Vector) *Vector {
	v.X *= other.X
	return v
}

// MulY умножает компоненту Y на Y-компоненту другого вектора
func (v *Vector) MulY(other *Vector) *Vector {
	v.Y *= other.Y
	return v
}

// MulScalar умножает обе компоненты на скаляр
func (v *Vector) MulScalar(s float64) *Vector {
	v.X *= s
	v.Y *= s
	return v
}

// MulScalarX умножает компоненту X на скаляр
func (v *Vector) MulScalarX(s float64) *Vector {
	v.X *= s
	return v
}

// MulScalarY умножает компоненту Y на скаляр
func (v *Vector) MulScalarY(s float64) *Vector {
	v.Y *= s
	return v
}

// Div делит вектор покомпонентно. Обе компоненты делителя проверяются
// на ноль до какой-либо мутации: при ошибке приёмник не меняется.
func (v *Vector) Div(other *Vector) (*Vector, error) {
	if other.X == 0 {
		return nil, fmt.Errorf("делитель x: %w", ErrDivisionByZero)
	}
	if other.Y == 0 {
		return nil, fmt.Errorf("делитель y: %w", ErrDivisionByZero)
	}
	v.X /= other.X
	v.Y /= other.Y
	return v, nil
}

// DivX делит компоненту X на X-компоненту другого вектора
func (v *Vector) DivX(other *Vector) (*Vector, error) {
	if other.X == 0 {
		return nil, fmt.Errorf("делитель x: %w", ErrDivisionByZero)
	}
	v.X /= other.X
	return v, nil
}

// DivY делит компоненту Y на Y-компоненту другого вектора
func (v *Vector) DivY(other *Vector) (*Vector, error) {
	if other.Y == 0 {
		return nil, fmt.Errorf("делитель y: %w", ErrDivisionByZero)
	}
	v.Y /= other.Y
	return v, nil
}

// DivScalar делит обе компоненты на скаляр
func (v *Vector) DivScalar(s float64) (*Vector, error) {
	if s == 0 {
		return nil, fmt.Errorf("скалярный делитель: %w", ErrDivisionByZero)
	}
	v.X /= s
	v.Y /= s
	return v, nil
}

// DivScalarX делит компоненту X на скаляр
func (v *Vector) DivScalarX(s float64) (*Vector, error) {
	if s == 0 {
		return nil, fmt.Errorf("скалярный делитель: %w", ErrDivisionByZero)
	}
	v.X /= s
	return v, nil
}

// DivScalarY делит компоненту Y на скаляр
func (v *Vector) DivScalarY(s float64) (*Vector, error) {
	if s == 0 {
		return nil, fmt.Errorf("скалярный делитель: %w", ErrDivisionByZero)
	}
	v.Y /= s
	return v, nil
}

// InvertX меняет знак компоненты X
func (v *Vector) InvertX() *Vector {
	v.X *= -1
	return v
}

// InvertY меняет знак компоненты Y
func (v *Vector) InvertY() *Vector {
	v.Y *= -1
	return v
}

// Invert меняет знак обеих компонент
func (v *Vector) Invert() *Vector {
	v.X *= -1
	v.Y *= -1
	return v
}

// Reflect отражает вектор относительно прямой с нормалью normal по
// формуле v' = v - 2(v·n̂)n̂, где n̂ — нормализованная копия normal.
// Сам аргумент не мутируется. Нулевая нормаль — ошибка деления на
// ноль.
func (v *Vector) Reflect(normal *Vector) (*Vector, error) {
	if normal.IsZero() {
		return nil, fmt.Errorf("нормализация нулевой нормали: %w", ErrDivisionByZero)
	}
	n := normal.Clone()
	n.MulScalar(1 / normal.Mag())
	coeff := 2 * v.Dot(n)
	v.X -= coeff * n.X
	v.Y -= coeff * n.Y
	return v, nil
}
