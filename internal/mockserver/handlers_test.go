package mockserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stend/internal/reference"
)

const testToken = "super-secret"

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return Router(NewStorage(reference.DefaultCatalog()), testToken)
}

// do шлёт JSON-запрос с токеном суперпользователя и возвращает рекордер.
func do(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth("", testToken)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestAuthRequired(t *testing.T) {
	r := newRouter()

	req := httptest.NewRequest(http.MethodGet, "/app/rest/projects/id:x", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// неверный токен суперпользователя
	req = httptest.NewRequest(http.MethodGet, "/httpAuth/app/rest/projects/id:x", nil)
	req.SetBasicAuth("", "wrong")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// basic auth обычного пользователя проходит
	req = httptest.NewRequest(http.MethodGet, "/app/rest/projects/id:x", nil)
	req.SetBasicAuth("someone", "whatever")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProjectCRUD(t *testing.T) {
	r := newRouter()

	rec := do(r, http.MethodPost, "/app/rest/projects", map[string]any{"name": "test_alpha"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	created := decode(t, rec)
	assert.Equal(t, "test_alpha", created["id"], "id выводится из имени")

	rec = do(r, http.MethodGet, "/app/rest/projects/id:test_alpha", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "test_alpha", decode(t, rec)["name"])

	rec = do(r, http.MethodPut, "/app/rest/projects/id:test_alpha", map[string]any{"name": "renamed"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "renamed", decode(t, rec)["name"])

	rec = do(r, http.MethodDelete, "/app/rest/projects/id:test_alpha", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(r, http.MethodGet, "/app/rest/projects/id:test_alpha", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProjectValidation(t *testing.T) {
	r := newRouter()

	t.Run("без имени", func(t *testing.T) {
		rec := do(r, http.MethodPost, "/app/rest/projects", map[string]any{"id": "x"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), ErrRequired)
	})

	t.Run("дубль id", func(t *testing.T) {
		rec := do(r, http.MethodPost, "/app/rest/projects", map[string]any{"id": "dup", "name": "one"})
		require.Equal(t, http.StatusOK, rec.Code)
		rec = do(r, http.MethodPost, "/app/rest/projects", map[string]any{"id": "dup", "name": "two"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), ErrUniqueViolation)
	})

	t.Run("спецсимволы в имени превращаются в подчеркивания", func(t *testing.T) {
		rec := do(r, http.MethodPost, "/app/rest/projects", map[string]any{"name": "my proj!"})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "my_proj_", decode(t, rec)["id"])
	})
}

func TestBuildTypeCreate(t *testing.T) {
	r := newRouter()

	rec := do(r, http.MethodPost, "/app/rest/projects", map[string]any{"name": "test_proj"})
	require.Equal(t, http.StatusOK, rec.Code)

	t.Run("ссылка на проект по имени", func(t *testing.T) {
		rec := do(r, http.MethodPost, "/app/rest/buildTypes", map[string]any{
			"name":    "test_bt",
			"project": map[string]any{"name": "test_proj"},
		})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		bt := decode(t, rec)
		project := bt["project"].(map[string]interface{})
		assert.Equal(t, "test_proj", project["id"])
	})

	t.Run("несуществующий проект", func(t *testing.T) {
		rec := do(r, http.MethodPost, "/app/rest/buildTypes", map[string]any{
			"name":    "orphan",
			"project": map[string]any{"id": "nope"},
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), ErrRefNotFound)
	})

	t.Run("без ссылки на проект", func(t *testing.T) {
		rec := do(r, http.MethodPost, "/app/rest/buildTypes", map[string]any{"name": "lonely"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestUserCreate(t *testing.T) {
	r := newRouter()

	body := map[string]any{
		"username": "test_user",
		"password": "hunter2",
		"roles":    map[string]any{"role": []any{map[string]any{"roleId": "SYSTEM_ADMIN", "scope": "g"}}},
	}
	rec := do(r, http.MethodPost, "/app/rest/users", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	created := decode(t, rec)
	assert.NotEmpty(t, created["id"], "id пользователю выдает сервер")
	assert.NotContains(t, created, "password", "пароль в ответ не попадает")

	t.Run("поиск по локатору username", func(t *testing.T) {
		rec := do(r, http.MethodGet, "/app/rest/users/username:test_user", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "test_user", decode(t, rec)["username"])
	})

	t.Run("дубль username", func(t *testing.T) {
		rec := do(r, http.MethodPost, "/app/rest/users", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), ErrUniqueViolation)
	})

	t.Run("неизвестная роль", func(t *testing.T) {
		bad := map[string]any{
			"username": "another",
			"roles":    map[string]any{"role": []any{map[string]any{"roleId": "NOT_A_ROLE"}}},
		}
		rec := do(r, http.MethodPost, "/app/rest/users", bad)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), ErrRoleInvalid)
	})
}
