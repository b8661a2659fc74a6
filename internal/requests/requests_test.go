package requests

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stend/internal/config"
	"stend/internal/generators"
	"stend/internal/mockserver"
	"stend/internal/models"
	"stend/internal/reference"
	"stend/internal/spec"
)

const testToken = "e2e-token"

// startServer поднимает мок-сервер и возвращает конфиг, указывающий на него.
func startServer(t *testing.T) config.Config {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := mockserver.Router(mockserver.NewStorage(reference.DefaultCatalog()), testToken)
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return config.Config{
		Host:           strings.TrimPrefix(srv.URL, "http://"),
		SuperUserToken: testToken,
	}
}

func TestCheckedCRUDWithGeneratedData(t *testing.T) {
	cfg := startServer(t)
	su := spec.SuperUserAuth(cfg)
	storage := NewTestDataStorage()

	td, err := generators.GenerateTestData()
	require.NoError(t, err)

	projects := NewChecked(su, Projects, storage)
	buildTypes := NewChecked(su, BuildTypes, storage)
	users := NewChecked(su, Users, storage)

	// проект
	created, err := projects.Create(td.Project)
	require.NoError(t, err)
	project := created.(*models.Project)
	assert.Equal(t, td.Project.Name, project.Name)
	assert.NotEmpty(t, project.ID)

	// buildType ссылается на тот же проект (по имени, id сервер выдал сам)
	created, err = buildTypes.Create(td.BuildType)
	require.NoError(t, err)
	bt := created.(*models.BuildType)
	require.NotNil(t, bt.Project)
	assert.Equal(t, project.ID, bt.Project.ID)

	// пользователь с сгенерированными ролями
	created, err = users.Create(td.User)
	require.NoError(t, err)
	user := created.(*models.User)
	assert.Equal(t, td.User.Username, user.Username)
	assert.Empty(t, user.Password, "пароль не возвращается сервером")

	// чтение и обновление по локатору
	read, err := projects.Read(project.Locator())
	require.NoError(t, err)
	assert.Equal(t, project.ID, read.(*models.Project).ID)

	renamed := &models.NewProjectDescription{Name: "test_renamed"}
	updated, err := projects.Update(project.Locator(), renamed)
	require.NoError(t, err)
	assert.Equal(t, "test_renamed", updated.(*models.Project).Name)

	// зачистка: всё созданное удаляется, сервер больше ничего не отдает
	assert.Equal(t, 1, storage.Count(Projects))
	assert.Equal(t, 1, storage.Count(BuildTypes))
	assert.Equal(t, 1, storage.Count(Users))
	require.NoError(t, storage.DeleteAll(su))
	assert.Equal(t, 0, storage.Count(Projects))

	resp, err := NewUnchecked(su, Projects).Read(project.Locator())
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestUncheckedExposesRawStatus(t *testing.T) {
	cfg := startServer(t)
	su := spec.SuperUserAuth(cfg)

	resp, err := NewUnchecked(su, Projects).Read("id:missing")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCheckedRejectsUnexpectedStatus(t *testing.T) {
	cfg := startServer(t)
	su := spec.SuperUserAuth(cfg)

	_, err := NewChecked(su, Projects, nil).Read("id:missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestUserAuthSpec(t *testing.T) {
	cfg := startServer(t)
	su := spec.SuperUserAuth(cfg)
	storage := NewTestDataStorage()

	td, err := generators.GenerateTestData()
	require.NoError(t, err)

	// создаем проект и пользователя под суперпользователем
	_, err = NewChecked(su, Projects, storage).Create(td.Project)
	require.NoError(t, err)
	_, err = NewChecked(su, Users, storage).Create(td.User)
	require.NoError(t, err)

	// дальше ходим под созданным пользователем
	userSpec := spec.Auth(cfg, td.User)
	read, err := NewChecked(userSpec, Projects, nil).Read("name:" + td.Project.Name)
	require.NoError(t, err)
	assert.Equal(t, td.Project.Name, read.(*models.Project).Name)
}

func TestUnauthSpecIsRejected(t *testing.T) {
	cfg := startServer(t)

	resp, err := NewUnchecked(spec.Unauth(cfg), Projects).Read("id:any")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestEndpointBlueprints(t *testing.T) {
	assert.Equal(t, models.ProjectBlueprint, Projects.Blueprint())
	assert.Equal(t, models.BuildTypeBlueprint, BuildTypes.Blueprint())
	assert.Equal(t, models.UserBlueprint, Users.Blueprint())
	assert.Nil(t, Endpoint("/nope").Blueprint())
}
