package mockserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// POST /app/rest/projects
// Принимает NewProjectDescription, отвечает проектом. Статус 200,
// как у настоящего сервера, — слой Checked ждёт именно его.
func CreateProjectHandler(s *Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		var obj map[string]interface{}
		if err := c.ShouldBindJSON(&obj); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
			return
		}

		name, _ := obj["name"].(string)
		if name == "" {
			c.JSON(http.StatusBadRequest, gin.H{
				"errors": []FieldError{ferr(ErrRequired, "name", "Project name is required")},
			})
			return
		}

		// внешний id: либо передан, либо выводится из имени
		id, _ := obj["id"].(string)
		if id == "" {
			id = sanitizeID(name)
		}
		if s.Exists(ColProjects, id) {
			c.JSON(http.StatusBadRequest, gin.H{
				"errors": []FieldError{ferr(ErrUniqueViolation, "id", "Project id '"+id+"' is already used")},
			})
			return
		}

		data := map[string]interface{}{"id": id, "name": name}
		if parent, _ := obj["parentProject"].(string); parent != "" {
			data["parentProjectId"] = parent
		}
		rec := s.Put(ColProjects, id, data)
		c.JSON(http.StatusOK, rec.Data)
	}
}

// POST /app/rest/buildTypes
func CreateBuildTypeHandler(s *Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		var obj map[string]interface{}
		if err := c.ShouldBindJSON(&obj); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
			return
		}

		name, _ := obj["name"].(string)
		if name == "" {
			c.JSON(http.StatusBadRequest, gin.H{
				"errors": []FieldError{ferr(ErrRequired, "name", "Build type name is required")},
			})
			return
		}

		// ссылка на проект: по id, а без id — по имени
		// (сгенерированный NewProjectDescription может идти без id)
		project, _ := obj["project"].(map[string]interface{})
		if project == nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"errors": []FieldError{ferr(ErrRequired, "project", "Project reference is required")},
			})
			return
		}
		projectRec, ok := resolveProject(s, project)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{
				"errors": []FieldError{ferr(ErrRefNotFound, "project", "Referenced project not found")},
			})
			return
		}

		id, _ := obj["id"].(string)
		if id == "" {
			id = sanitizeID(name)
		}
		if s.Exists(ColBuildTypes, id) {
			c.JSON(http.StatusBadRequest, gin.H{
				"errors": []FieldError{ferr(ErrUniqueViolation, "id", "Build type id '"+id+"' is already used")},
			})
			return
		}

		data := map[string]interface{}{
			"id":   id,
			"name": name,
			"project": map[string]interface{}{
				"id":   projectRec.ID,
				"name": projectRec.Data["name"],
			},
		}
		if steps, ok := obj["steps"]; ok {
			data["steps"] = steps
		}
		rec := s.Put(ColBuildTypes, id, data)
		c.JSON(http.StatusOK, rec.Data)
	}
}

// POST /app/rest/users
func CreateUserHandler(s *Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		var obj map[string]interface{}
		if err := c.ShouldBindJSON(&obj); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
			return
		}

		username, _ := obj["username"].(string)
		if username == "" {
			c.JSON(http.StatusBadRequest, gin.H{
				"errors": []FieldError{ferr(ErrRequired, "username", "Username is required")},
			})
			return
		}
		if _, taken := s.FindBy(ColUsers, "username", username); taken {
			c.JSON(http.StatusBadRequest, gin.H{
				"errors": []FieldError{ferr(ErrUniqueViolation, "username", "Username '"+username+"' is already used")},
			})
			return
		}
		if errs := validateRoles(s.Roles, obj); len(errs) > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
			return
		}

		id := s.newID()
		data := map[string]interface{}{"id": id, "username": username}
		if email, _ := obj["email"].(string); email != "" {
			data["email"] = email
		}
		if roles, ok := obj["roles"]; ok {
			data["roles"] = roles
		}
		// пароль храним, но в ответах не показываем
		if password, _ := obj["password"].(string); password != "" {
			data["password"] = password
		}
		rec := s.Put(ColUsers, id, data)
		c.JSON(http.StatusOK, publicView(rec))
	}
}

// GET /app/rest/<col>/<locator>
func GetHandler(s *Storage, col string) gin.HandlerFunc {
	return func(c *gin.Context) {
		rec, ok := findByLocator(s, col, c.Param("locator"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{
				"errors": []FieldError{ferr(ErrNotFound, "locator", "Nothing found by locator '"+c.Param("locator")+"'")},
			})
			return
		}
		c.JSON(http.StatusOK, publicView(rec))
	}
}

// PUT /app/rest/<col>/<locator> — полная замена пользовательских полей.
func UpdateHandler(s *Storage, col string) gin.HandlerFunc {
	return func(c *gin.Context) {
		rec, ok := findByLocator(s, col, c.Param("locator"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{
				"errors": []FieldError{ferr(ErrNotFound, "locator", "Nothing found by locator '"+c.Param("locator")+"'")},
			})
			return
		}

		var obj map[string]interface{}
		if err := c.ShouldBindJSON(&obj); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
			return
		}
		if col == ColUsers {
			if errs := validateRoles(s.Roles, obj); len(errs) > 0 {
				c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
				return
			}
		}

		// id не меняется при обновлении
		obj["id"] = rec.ID
		updated := s.Put(col, rec.ID, obj)
		c.JSON(http.StatusOK, publicView(updated))
	}
}

// DELETE /app/rest/<col>/<locator>
func DeleteHandler(s *Storage, col string) gin.HandlerFunc {
	return func(c *gin.Context) {
		rec, ok := findByLocator(s, col, c.Param("locator"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{
				"errors": []FieldError{ferr(ErrNotFound, "locator", "Nothing found by locator '"+c.Param("locator")+"'")},
			})
			return
		}
		s.Delete(col, rec.ID)
		c.String(http.StatusOK, "deleted: %s", rec.ID)
	}
}

// findByLocator понимает "id:...", "username:..." и голый id.
func findByLocator(s *Storage, col, locator string) (*Record, bool) {
	field, value := parseLocator(locator)
	if field == "id" {
		return s.Get(col, value)
	}
	return s.FindBy(col, field, value)
}

func resolveProject(s *Storage, ref map[string]interface{}) (*Record, bool) {
	if id, _ := ref["id"].(string); id != "" {
		return s.Get(ColProjects, id)
	}
	if name, _ := ref["name"].(string); name != "" {
		return s.FindBy(ColProjects, "name", name)
	}
	return nil, false
}

// publicView — данные записи без секретных полей.
func publicView(rec *Record) map[string]interface{} {
	out := make(map[string]interface{}, len(rec.Data))
	for k, v := range rec.Data {
		if k == "password" {
			continue
		}
		out[k] = v
	}
	return out
}
