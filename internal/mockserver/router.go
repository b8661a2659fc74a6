package mockserver

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Router собирает gin-движок со всеми маршрутами. Один и тот же набор
// ресурсов доступен по /app/rest (basic auth) и /httpAuth/app/rest
// (токен суперпользователя в пароле basic auth при пустом логине).
func Router(s *Storage, superUserToken string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	mount := func(g *gin.RouterGroup) {
		g.POST("/projects", CreateProjectHandler(s))
		g.GET("/projects/:locator", GetHandler(s, ColProjects))
		g.PUT("/projects/:locator", UpdateHandler(s, ColProjects))
		g.DELETE("/projects/:locator", DeleteHandler(s, ColProjects))

		g.POST("/buildTypes", CreateBuildTypeHandler(s))
		g.GET("/buildTypes/:locator", GetHandler(s, ColBuildTypes))
		g.PUT("/buildTypes/:locator", UpdateHandler(s, ColBuildTypes))
		g.DELETE("/buildTypes/:locator", DeleteHandler(s, ColBuildTypes))

		g.POST("/users", CreateUserHandler(s))
		g.GET("/users/:locator", GetHandler(s, ColUsers))
		g.PUT("/users/:locator", UpdateHandler(s, ColUsers))
		g.DELETE("/users/:locator", DeleteHandler(s, ColUsers))
	}

	mount(r.Group("/app/rest", authRequired(s, superUserToken)))
	mount(r.Group("/httpAuth/app/rest", authRequired(s, superUserToken)))

	return r
}

// RunServer запускает мок-сервер на указанном адресе.
func RunServer(addr string, s *Storage, superUserToken string) error {
	return Router(s, superUserToken).Run(addr)
}

// authRequired принимает либо токен суперпользователя (пустой логин),
// либо basic auth существующего пользователя. Пароли мок не сверяет —
// ему важен факт авторизации, а не её стойкость.
func authRequired(s *Storage, superUserToken string) gin.HandlerFunc {
	return func(c *gin.Context) {
		username, password, ok := c.Request.BasicAuth()
		if !ok {
			c.Header("WWW-Authenticate", `Basic realm="stend"`)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		if username == "" {
			if superUserToken == "" || password != superUserToken {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid super user token"})
				return
			}
			c.Next()
			return
		}

		if strings.TrimSpace(username) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Empty username"})
			return
		}
		c.Next()
	}
}
