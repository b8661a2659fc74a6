package config

import (
	"encoding/json"
	"os"
	"strings"
)

// Config — настройки стенда: куда ходить тестам и чем авторизоваться.
type Config struct {
	// Host — адрес тестируемого сервера, host[:port], без схемы.
	Host string `json:"host"`
	// Port — порт встроенного мок-сервера (cmd/server).
	Port string `json:"port"`
	// SuperUserToken — токен суперпользователя для /httpAuth-запросов.
	SuperUserToken string `json:"superUserToken"`
}

func def() Config {
	return Config{
		Host:           "localhost:8111",
		Port:           "8111",
		SuperUserToken: "",
	}
}

func loadJSON(path string) (Config, error) {
	c := def()
	b, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}
	if err := json.Unmarshal(b, &c); err != nil {
		return c, err
	}
	return c, nil
}

func getenv(k, fallback string) string {
	if v, ok := os.LookupEnv(k); ok && strings.TrimSpace(v) != "" {
		return v
	}
	return fallback
}

// Load читает config.json из рабочей директории (если есть) и применяет ENV.
func Load() Config {
	return LoadWithPath("config.json")
}

// LoadWithPath читает JSON по указанному пути, потом применяет ENV.
// Флагов здесь нет намеренно: пакет используется из тестовых бинарей,
// где flag.Parse уже занят флагами go test.
func LoadWithPath(jsonPath string) Config {
	cfg := def()

	// JSON (если файл существует)
	if st, err := os.Stat(jsonPath); err == nil && !st.IsDir() {
		if c2, err := loadJSON(jsonPath); err == nil {
			cfg = c2
		}
	}

	// ENV overrides
	cfg.Host = getenv("STEND_HOST", cfg.Host)
	cfg.Port = getenv("STEND_PORT", cfg.Port)
	cfg.SuperUserToken = getenv("STEND_SUPERUSER_TOKEN", cfg.SuperUserToken)

	return cfg
}
