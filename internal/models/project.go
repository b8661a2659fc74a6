package models

import "stend/internal/schema"

// Project — проект, каким его возвращает сервер.
type Project struct {
	ID       string `json:"id,omitempty"`
	Name     string `json:"name,omitempty"`
	ParentID string `json:"parentProjectId,omitempty"`
}

func (p *Project) Blueprint() *schema.Blueprint { return ProjectBlueprint }

// Locator — локатор сущности для read/update/delete запросов.
func (p *Project) Locator() string { return "id:" + p.ID }

// ProjectBlueprint: проект как ответ сервера генерировать почти нечего,
// но пустой id в тестах бесполезен — поэтому id и name случайные.
var ProjectBlueprint = &schema.Blueprint{
	Type: "Project",
	New:  func() schema.Model { return &Project{} },
	Fields: []schema.FieldSpec{
		{
			Name: "id", Policy: schema.ParameterBound, Kind: schema.KindString,
			Assign: assignString("Project", "id", func(m schema.Model, s string) { m.(*Project).ID = s }),
		},
		{
			Name: "name", Policy: schema.RandomBound, Kind: schema.KindString,
			Assign: assignString("Project", "name", func(m schema.Model, s string) { m.(*Project).Name = s }),
		},
		{
			Name: "parentProjectId", Policy: schema.Skip, Kind: schema.KindString,
			Assign: assignString("Project", "parentProjectId", func(m schema.Model, s string) { m.(*Project).ParentID = s }),
		},
	},
}

// NewProjectDescription — тело запроса на создание проекта.
// Вложенных сущностей не содержит: parentProject задаётся локатором-строкой.
type NewProjectDescription struct {
	ID            string `json:"id,omitempty"`
	Name          string `json:"name,omitempty"`
	ParentProject string `json:"parentProject,omitempty"`
	CopySettings  bool   `json:"copyAllAssociatedSettings,omitempty"`
}

func (p *NewProjectDescription) Blueprint() *schema.Blueprint { return NewProjectDescriptionBlueprint }

var NewProjectDescriptionBlueprint = &schema.Blueprint{
	Type: "NewProjectDescription",
	New:  func() schema.Model { return &NewProjectDescription{} },
	Fields: []schema.FieldSpec{
		// id можно передать параметром (известный заранее идентификатор),
		// без параметра остаётся пустым — сервер сгенерирует сам
		{
			Name: "id", Policy: schema.ParameterBound, Kind: schema.KindString,
			Assign: assignString("NewProjectDescription", "id", func(m schema.Model, s string) { m.(*NewProjectDescription).ID = s }),
		},
		{
			Name: "name", Policy: schema.RandomBound, Kind: schema.KindString,
			Assign: assignString("NewProjectDescription", "name", func(m schema.Model, s string) { m.(*NewProjectDescription).Name = s }),
		},
		{
			Name: "parentProject", Policy: schema.Skip, Kind: schema.KindString,
			Assign: assignString("NewProjectDescription", "parentProject", func(m schema.Model, s string) { m.(*NewProjectDescription).ParentProject = s }),
		},
		{
			Name: "copyAllAssociatedSettings", Policy: schema.Skip, Kind: schema.KindOther,
			Assign: func(m schema.Model, v any) error {
				b, ok := v.(bool)
				if !ok {
					return schema.Mismatch("NewProjectDescription", "copyAllAssociatedSettings", "bool", v)
				}
				m.(*NewProjectDescription).CopySettings = b
				return nil
			},
		},
	},
}

// assignString — общий помощник для строковых сеттеров в blueprint'ах.
func assignString(typeName, field string, set func(schema.Model, string)) func(schema.Model, any) error {
	return func(m schema.Model, v any) error {
		s, ok := v.(string)
		if !ok {
			return schema.Mismatch(typeName, field, "string", v)
		}
		set(m, s)
		return nil
	}
}
