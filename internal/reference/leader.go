package reference

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadRoleCatalog читает все yaml-справочники ролей из папки
func LoadRoleCatalog(dir string) (map[string]RoleDirectory, error) {
	result := make(map[string]RoleDirectory)
	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	for _, file := range files {
		if !file.IsDir() && (strings.HasSuffix(file.Name(), ".yaml") || strings.HasSuffix(file.Name(), ".yml")) {
			path := filepath.Join(dir, file.Name())
			data, err := os.ReadFile(path)
			if err != nil {
				return nil, err
			}
			var roleDir RoleDirectory
			if err := yaml.Unmarshal(data, &roleDir); err != nil {
				return nil, err
			}
			// Имя справочника — из roleDir.Name или из имени файла
			name := roleDir.Name
			if name == "" {
				name = strings.TrimSuffix(file.Name(), filepath.Ext(file.Name()))
			}
			result[name] = roleDir
		}
	}
	return result, nil
}

// DefaultCatalog — встроенный справочник ролей на случай, когда
// внешние yaml-файлы не заданы. Коды совпадают с ролями TeamCity.
func DefaultCatalog() RoleDirectory {
	return RoleDirectory{
		Name: "roles",
		Items: []RoleItem{
			{Code: "SYSTEM_ADMIN", Name: "System administrator", Scope: "g"},
			{Code: "PROJECT_ADMIN", Name: "Project administrator", Scope: "p"},
			{Code: "PROJECT_DEVELOPER", Name: "Project developer", Scope: "p"},
			{Code: "PROJECT_VIEWER", Name: "Project viewer", Scope: "p"},
		},
	}
}
