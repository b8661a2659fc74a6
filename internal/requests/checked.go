package requests

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"stend/internal/schema"
	"stend/internal/spec"
)

// Locatable — модель, умеющая назвать свой локатор (id:..., username:...).
type Locatable interface {
	Locator() string
}

// Checked — CRUD с проверкой статуса: не-200 превращается в ошибку,
// тело распаковывается в модель эндпоинта. Созданные сущности
// регистрируются в storage для последующей зачистки.
type Checked struct {
	unchecked *Unchecked
	storage   *TestDataStorage
}

// NewChecked строит проверяющий клиент. storage может быть nil,
// если зачистка не нужна.
func NewChecked(s *spec.Spec, e Endpoint, storage *TestDataStorage) *Checked {
	return &Checked{
		unchecked: NewUnchecked(s, e),
		storage:   storage,
	}
}

func (c *Checked) extract(resp *http.Response, err error) (schema.Model, error) {
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s %s: unexpected status %d: %s",
			resp.Request.Method, c.unchecked.Endpoint, resp.StatusCode, raw)
	}

	bp := c.unchecked.Endpoint.Blueprint()
	if bp == nil || bp.New == nil {
		return nil, fmt.Errorf("endpoint %s has no response model", c.unchecked.Endpoint)
	}
	model := bp.New()
	if err := json.Unmarshal(raw, model); err != nil {
		return nil, fmt.Errorf("decode %s response: %w", c.unchecked.Endpoint, err)
	}
	return model, nil
}

// Create создает сущность и запоминает её локатор для зачистки.
func (c *Checked) Create(model schema.Model) (schema.Model, error) {
	created, err := c.extract(c.unchecked.Create(model))
	if err != nil {
		return nil, err
	}
	if c.storage != nil {
		if loc, ok := created.(Locatable); ok {
			c.storage.Add(c.unchecked.Endpoint, loc.Locator())
		}
	}
	return created, nil
}

// Read читает сущность по локатору.
func (c *Checked) Read(locator string) (schema.Model, error) {
	return c.extract(c.unchecked.Read(locator))
}

// Update обновляет сущность по локатору.
func (c *Checked) Update(locator string, model schema.Model) (schema.Model, error) {
	return c.extract(c.unchecked.Update(locator, model))
}

// Delete удаляет сущность; возвращает тело ответа как строку.
func (c *Checked) Delete(locator string) (string, error) {
	resp, err := c.unchecked.Delete(locator)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("DELETE %s/%s: unexpected status %d: %s",
			c.unchecked.Endpoint, locator, resp.StatusCode, raw)
	}
	if c.storage != nil {
		c.storage.Remove(c.unchecked.Endpoint, locator)
	}
	return string(raw), nil
}
