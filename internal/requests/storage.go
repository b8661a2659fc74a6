package requests

import (
	"fmt"
	"sync"

	"stend/internal/spec"
)

// TestDataStorage запоминает, что тест успел создать на сервере,
// чтобы по окончании теста всё это удалить. Один storage — один тест;
// глобального состояния нет намеренно.
type TestDataStorage struct {
	mu      sync.Mutex
	created map[Endpoint][]string // endpoint -> локаторы
}

func NewTestDataStorage() *TestDataStorage {
	return &TestDataStorage{created: make(map[Endpoint][]string)}
}

// Add регистрирует созданную сущность.
func (s *TestDataStorage) Add(e Endpoint, locator string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.created[e] = append(s.created[e], locator)
}

// Remove вычеркивает сущность (её удалил сам тест).
func (s *TestDataStorage) Remove(e Endpoint, locator string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := s.created[e]
	for i, l := range list {
		if l == locator {
			s.created[e] = append(list[:i], list[i+1:]...)
			return
		}
	}
}

// Count — сколько локаторов числится за эндпоинтом.
func (s *TestDataStorage) Count(e Endpoint) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.created[e])
}

// DeleteAll удаляет всё созданное через unchecked-запросы (статусы не
// проверяем: часть сущностей могла уже исчезнуть). Возвращает первую
// сетевую ошибку, если была.
func (s *TestDataStorage) DeleteAll(sp *spec.Spec) error {
	s.mu.Lock()
	snapshot := make(map[Endpoint][]string, len(s.created))
	for e, list := range s.created {
		snapshot[e] = append([]string(nil), list...)
	}
	s.created = make(map[Endpoint][]string)
	s.mu.Unlock()

	var firstErr error
	for e, locators := range snapshot {
		u := NewUnchecked(sp, e)
		for _, locator := range locators {
			resp, err := u.Delete(locator)
			if err != nil {
				if firstErr == nil {
					firstErr = fmt.Errorf("cleanup %s/%s: %w", e, locator, err)
				}
				continue
			}
			resp.Body.Close()
		}
	}
	return firstErr
}
