package requests

import (
	"stend/internal/models"
	"stend/internal/schema"
)

// Endpoint — путь REST-ресурса. Каждому эндпоинту соответствует
// blueprint модели, в которую распаковывается ответ сервера.
type Endpoint string

const (
	Projects   Endpoint = "/app/rest/projects"
	BuildTypes Endpoint = "/app/rest/buildTypes"
	Users      Endpoint = "/app/rest/users"
)

// Blueprint — модель ответа данного эндпоинта.
func (e Endpoint) Blueprint() *schema.Blueprint {
	switch e {
	case Projects:
		return models.ProjectBlueprint
	case BuildTypes:
		return models.BuildTypeBlueprint
	case Users:
		return models.UserBlueprint
	}
	return nil
}
