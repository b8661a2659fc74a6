// Package requests — CRUD-слой поверх спецификаций: Unchecked шлёт
// запросы как есть, Checked сверх того проверяет статус и распаковывает
// модель. Тестовые данные для тел запросов поставляет пакет generators.
package requests

import (
	"bytes"
	"encoding/json"
	"net/http"

	"stend/internal/schema"
	"stend/internal/spec"
)

// Unchecked выполняет CRUD-запросы без проверки статуса ответа.
// Нужен, когда тест проверяет именно ошибочный ответ сервера.
type Unchecked struct {
	Spec     *spec.Spec
	Endpoint Endpoint
}

func NewUnchecked(s *spec.Spec, e Endpoint) *Unchecked {
	return &Unchecked{Spec: s, Endpoint: e}
}

func (u *Unchecked) do(method, path string, body any) (*http.Response, error) {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, u.Spec.BaseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	return u.Spec.Client.Do(req)
}

// Create — POST на эндпоинт с моделью в теле.
func (u *Unchecked) Create(model schema.Model) (*http.Response, error) {
	return u.do(http.MethodPost, string(u.Endpoint), model)
}

// Read — GET по локатору ("id:xxx", "username:yyy").
func (u *Unchecked) Read(locator string) (*http.Response, error) {
	return u.do(http.MethodGet, string(u.Endpoint)+"/"+locator, nil)
}

// Update — PUT по локатору с новой версией модели.
func (u *Unchecked) Update(locator string, model schema.Model) (*http.Response, error) {
	return u.do(http.MethodPut, string(u.Endpoint)+"/"+locator, model)
}

// Delete — DELETE по локатору.
func (u *Unchecked) Delete(locator string) (*http.Response, error) {
	return u.do(http.MethodDelete, string(u.Endpoint)+"/"+locator, nil)
}
