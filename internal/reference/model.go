package reference

// RoleDirectory описывает справочник ролей сервера
type RoleDirectory struct {
	Name  string     `yaml:"name"`
	Items []RoleItem `yaml:"items"`
}

type RoleItem struct {
	Code string `yaml:"code"`
	Name string `yaml:"name"`
	// Scope — шаблон области действия роли: "g" (глобально)
	// или "p:<projectId>" (в рамках проекта)
	Scope string `yaml:"scope,omitempty"`
}

// Has сообщает, есть ли роль с таким кодом в справочнике.
func (d RoleDirectory) Has(code string) bool {
	for _, it := range d.Items {
		if it.Code == code {
			return true
		}
	}
	return false
}
