package vector

import "errors"

// Ошибки пакета. Все методы возвращают их обёрнутыми через %w,
// проверять следует через errors.Is.
var (
	// ErrDivisionByZero возвращается при делении на точный ноль:
	// нулевой скаляр, нулевая компонента вектора-делителя или
	// нулевой вектор в Normalize/Resize/ProjectOnto/Reflect.
	ErrDivisionByZero = errors.New("деление на ноль")

	// ErrInvalidNumber возвращается, когда обязательный числовой
	// аргумент не является конечным числом (NaN или ±Inf).
	ErrInvalidNumber = errors.New("некорректное число")

	// ErrOutOfRange возвращается для численно корректных, но
	// семантически недопустимых аргументов: коэффициент интерполяции
	// вне [0, 1], неположительный максимальный угол поворота,
	// отрицательная граница магнитуды.
	ErrOutOfRange = errors.New("значение вне допустимого диапазона")

	// ErrTypeMismatch возвращается, когда clamp-метод получает одну
	// числовую и одну векторную границу: обе границы должны быть
	// одного вида.
	ErrTypeMismatch = errors.New("границы разных видов")
)
