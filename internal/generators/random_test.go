package generators

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomStringLengthAndAlphabet(t *testing.T) {
	s := RandomString(24)
	assert.Len(t, s, 24)
	for _, r := range s {
		assert.Contains(t, randomAlphabet, string(r))
	}

	// неположительная длина сводится к длине по умолчанию
	assert.Len(t, RandomString(0), DefaultRandomLength)
	assert.Len(t, RandomString(-5), DefaultRandomLength)
}

func TestRandomStringVariance(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		seen[RandomString(DefaultRandomLength)] = true
	}
	assert.Greater(t, len(seen), 990)
}

func TestRandomStringConcurrent(t *testing.T) {
	// без общего мутабельного состояния: параллельные вызовы не должны
	// ни гонять данные, ни возвращать пустые строки
	var wg sync.WaitGroup
	out := make([]string, 50)
	for i := range out {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			out[i] = RandomString(12)
		}(i)
	}
	wg.Wait()

	for _, s := range out {
		assert.Len(t, s, 12)
		assert.False(t, strings.ContainsAny(s, " \t\n"))
	}
}

func TestCursor(t *testing.T) {
	c := NewCursor("a", "b")
	assert.Equal(t, 2, c.Len())

	v, ok := c.Peek()
	assert.True(t, ok)
	assert.Equal(t, "a", v)
	assert.Equal(t, 2, c.Len(), "Peek не сдвигает курсор")

	assert.Equal(t, "a", c.Next())
	assert.Equal(t, "b", c.Next())
	assert.Equal(t, 0, c.Len())

	_, ok = c.Peek()
	assert.False(t, ok)
}
