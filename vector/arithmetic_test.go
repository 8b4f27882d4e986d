package vector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVector_Add(t *testing.T) {
	v := MustNew(10, 10)
	w := MustNew(20, 30)

	got := v.Add(w)
	assert.Same(t, v, got, "мутирующий метод должен возвращать приёмник")
	assert.Equal(t, 30.0, v.X)
	assert.Equal(t, 40.0, v.Y)
	assert.Equal(t, 20.0, w.X, "аргумент не должен мутироваться")
	assert.Equal(t, 30.0, w.Y, "аргумент не должен мутироваться")

	assert.Equal(t, 35.0, MustNew(10, 10).AddX(MustNew(25, 99)).X)
	assert.Equal(t, 10.0, MustNew(10, 10).AddX(MustNew(25, 99)).Y, "AddX не трогает Y")
	assert.Equal(t, 109.0, MustNew(10, 10).AddY(MustNew(25, 99)).Y)

	s := MustNew(1, 2).AddScalar(10)
	assert.Equal(t, 11.0, s.X)
	assert.Equal(t, 12.0, s.Y)
	assert.Equal(t, 11.0, MustNew(1, 2).AddScalarX(10).X)
	assert.Equal(t, 12.0, MustNew(1, 2).AddScalarY(10).Y)
}

func TestVector_Sub(t *testing.T) {
	v := MustNew(100, 50).Sub(MustNew(20, 30))
	assert.Equal(t, 80.0, v.X)
	assert.Equal(t, 20.0, v.Y)

	assert.Equal(t, 80.0, MustNew(100, 50).SubX(MustNew(20, 30)).X)
	assert.Equal(t, 50.0, MustNew(100, 50).SubX(MustNew(20, 30)).Y)
	assert.Equal(t, 20.0, MustNew(100, 50).SubY(MustNew(20, 30)).Y)

	s := MustNew(10, 20).SubScalar(5)
	assert.Equal(t, 5.0, s.X)
	assert.Equal(t, 15.0, s.Y)
	assert.Equal(t, 5.0, MustNew(10, 20).SubScalarX(5).X)
	assert.Equal(t, 15.0, MustNew(10, 20).SubScalarY(5).Y)
}

func TestVector_Mul(t *testing.T) {
	v := MustNew(2, 3).Mul(MustNew(4, 5))
	assert.Equal(t, 8.0, v.X)
	assert.Equal(t, 15.0, v.Y)

	assert.Equal(t, 8.0, MustNew(2, 3).MulX(MustNew(4, 5)).X)
	assert.Equal(t, 3.0, MustNew(2, 3).MulX(MustNew(4, 5)).Y)
	assert.Equal(t, 15.0, MustNew(2, 3).MulY(MustNew(4, 5)).Y)

	s := MustNew(2, 3).MulScalar(-2)
	assert.Equal(t, -4.0, s.X)
	assert.Equal(t, -6.0, s.Y)
	assert.Equal(t, -4.0, MustNew(2, 3).MulScalarX(-2).X)
	assert.Equal(t, -6.0, MustNew(2, 3).MulScalarY(-2).Y)
}

func TestVector_Div(t *testing.T) {
	v, err := MustNew(100, 50).Div(MustNew(2, 5))
	require.NoError(t, err)
	assert.Equal(t, 50.0, v.X)
	assert.Equal(t, 10.0, v.Y)

	s, err := MustNew(100, 50).DivScalar(4)
	require.NoError(t, err)
	assert.Equal(t, 25.0, s.X)
	assert.Equal(t, 12.5, s.Y)

	x, err := MustNew(100, 50).DivScalarX(4)
	require.NoError(t, err)
	assert.Equal(t, 25.0, x.X)
	assert.Equal(t, 50.0, x.Y)

	y, err := MustNew(100, 50).DivScalarY(2)
	require.NoError(t, err)
	assert.Equal(t, 25.0, y.Y)
}

func TestVector_DivByZeroLeavesStateUnchanged(t *testing.T) {
	// DivX проверяет только нужную ось делителя
	v := MustNew(100, 50)
	got, err := v.DivX(MustNew(2, 0))
	require.NoError(t, err, "нулевой Y делителя не мешает DivX")
	assert.Same(t, v, got)
	assert.Equal(t, 50.0, v.X)
	assert.Equal(t, 50.0, v.Y)

	_, err = v.DivX(MustNew(0, 1))
	assert.ErrorIs(t, err, ErrDivisionByZero)
	assert.Equal(t, 50.0, v.X, "после ошибки приёмник должен остаться без изменений")
	assert.Equal(t, 50.0, v.Y)

	_, err = v.DivY(MustNew(1, 0))
	assert.ErrorIs(t, err, ErrDivisionByZero)

	// Div валидирует обе оси до какой-либо мутации
	v = MustNew(8, 6)
	_, err = v.Div(MustNew(2, 0))
	assert.ErrorIs(t, err, ErrDivisionByZero)
	assert.Equal(t, 8.0, v.X, "частично применённого деления быть не должно")
	assert.Equal(t, 6.0, v.Y)

	v = MustNew(1, 1)
	_, err = v.DivScalar(0)
	assert.ErrorIs(t, err, ErrDivisionByZero)
	assert.Equal(t, 1.0, v.X)
	assert.Equal(t, 1.0, v.Y)

	_, err = v.DivScalarX(0)
	assert.ErrorIs(t, err, ErrDivisionByZero)
	_, err = v.DivScalarY(0)
	assert.ErrorIs(t, err, ErrDivisionByZero)
}

func TestVector_Invert(t *testing.T) {
	v := MustNew(3, -4)
	assert.Equal(t, -3.0, v.Clone().InvertX().X)
	assert.Equal(t, -4.0, v.Clone().InvertX().Y, "InvertX не трогает Y")
	assert.Equal(t, 4.0, v.Clone().InvertY().Y)

	inv := v.Invert()
	assert.Same(t, v, inv)
	assert.Equal(t, -3.0, v.X)
	assert.Equal(t, 4.0, v.Y)
}

func TestVector_Reflect(t *testing.T) {
	// Отражение относительно горизонтали (нормаль вверх)
	v := MustNew(1, 1)
	normal := MustNew(0, 1)
	got, err := v.Reflect(normal)
	require.NoError(t, err)
	assert.Same(t, v, got)
	assert.InDelta(t, 1.0, v.X, 1e-12)
	assert.InDelta(t, -1.0, v.Y, 1e-12)
	assert.Equal(t, 0.0, normal.X, "нормаль не должна мутироваться")
	assert.Equal(t, 1.0, normal.Y, "нормаль не должна мутироваться")

	// Ненормализованная нормаль даёт тот же результат
	v = MustNew(1, 1)
	_, err = v.Reflect(MustNew(0, 42))
	require.NoError(t, err)
	assert.InDelta(t, -1.0, v.Y, 1e-12)

	// Двойное отражение возвращает исходный вектор
	v = MustNew(3, -7)
	n := MustNew(2, 5)
	_, err = v.Reflect(n)
	require.NoError(t, err)
	_, err = v.Reflect(n)
	require.NoError(t, err)
	assert.True(t, v.IsCloseTo(MustNew(3, -7), 1e-9), "двойное отражение должно быть тождеством")

	// Нулевая нормаль — ошибка, приёмник без изменений
	v = MustNew(1, 2)
	_, err = v.Reflect(MustNew(0, 0))
	assert.ErrorIs(t, err, ErrDivisionByZero)
	assert.Equal(t, 1.0, v.X)
	assert.Equal(t, 2.0, v.Y)
}

func TestVector_Chaining(t *testing.T) {
	v := MustNew(1, 1).Add(MustNew(2, 2)).MulScalar(10).SubScalar(5).InvertY()
	assert.Equal(t, 25.0, v.X)
	assert.Equal(t, -25.0, v.Y)
}
