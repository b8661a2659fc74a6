package generators

import "math/rand"

// алфавит и длина случайных строк; префикс выделяет тестовые данные
// среди прочих сущностей на сервере
const (
	randomAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	randomPrefix   = "test_"

	// DefaultRandomLength — длина строки после префикса.
	DefaultRandomLength = 10
)

// RandomString возвращает n случайных букв из фиксированного алфавита.
// Без общего состояния: глобальный источник math/rand безопасен
// для конкурентных вызовов.
func RandomString(n int) string {
	if n <= 0 {
		n = DefaultRandomLength
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = randomAlphabet[rand.Intn(len(randomAlphabet))]
	}
	return string(b)
}

// randomValue — значение для RandomBound-полей: "test_" + 10 букв.
func randomValue() string {
	return randomPrefix + RandomString(DefaultRandomLength)
}
