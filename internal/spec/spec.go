// Package spec собирает спецификации HTTP-запросов к стенду:
// базовый URL, авторизация, JSON и логирование запросов/ответов.
package spec

import (
	"log"
	"net/http"
	"net/url"
	"time"

	"stend/internal/config"
	"stend/internal/models"
)

// Spec — готовая спецификация: с ней работает слой requests.
type Spec struct {
	BaseURL string
	Client  *http.Client
}

func client() *http.Client {
	return &http.Client{
		Timeout:   30 * time.Second,
		Transport: &loggingTransport{base: http.DefaultTransport},
	}
}

// Unauth — спецификация без авторизации (анонимные запросы).
func Unauth(cfg config.Config) *Spec {
	return &Spec{
		BaseURL: "http://" + cfg.Host,
		Client:  client(),
	}
}

// Auth — спецификация с базовой авторизацией пользователя.
// Логин и пароль кладутся в userinfo URL — http.Client сам превратит
// их в заголовок Authorization.
func Auth(cfg config.Config, user *models.User) *Spec {
	u := url.URL{
		Scheme: "http",
		User:   url.UserPassword(user.Username, user.Password),
		Host:   cfg.Host,
	}
	return &Spec{BaseURL: u.String(), Client: client()}
}

// SuperUserAuth — авторизация токеном суперпользователя: пустой логин,
// токен вместо пароля, префикс /httpAuth.
func SuperUserAuth(cfg config.Config) *Spec {
	u := url.URL{
		Scheme: "http",
		User:   url.UserPassword("", cfg.SuperUserToken),
		Host:   cfg.Host,
		Path:   "/httpAuth",
	}
	return &Spec{BaseURL: u.String(), Client: client()}
}

// loggingTransport печатает каждый запрос и статус ответа —
// аналог request/response-фильтров логирования.
type loggingTransport struct {
	base http.RoundTripper
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	log.Printf("--> %s %s", req.Method, req.URL.Redacted())
	resp, err := t.base.RoundTrip(req)
	if err != nil {
		log.Printf("<-- %s %s: %v", req.Method, req.URL.Redacted(), err)
		return nil, err
	}
	log.Printf("<-- %s %s: %s", req.Method, req.URL.Redacted(), resp.Status)
	return resp, nil
}
