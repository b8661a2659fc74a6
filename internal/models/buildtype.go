package models

import "stend/internal/schema"

// BuildType — конфигурация сборки. Поле project указывает на проект:
// при генерации агрегата сюда попадает уже созданный NewProjectDescription
// из реестра, а не новый экземпляр.
type BuildType struct {
	ID      string                 `json:"id,omitempty"`
	Name    string                 `json:"name,omitempty"`
	Project *NewProjectDescription `json:"project,omitempty"`
	Steps   *Steps                 `json:"steps,omitempty"`
}

func (b *BuildType) Blueprint() *schema.Blueprint { return BuildTypeBlueprint }

func (b *BuildType) Locator() string { return "id:" + b.ID }

var BuildTypeBlueprint = &schema.Blueprint{
	Type: "BuildType",
	New:  func() schema.Model { return &BuildType{} },
	Fields: []schema.FieldSpec{
		{
			Name: "id", Policy: schema.ParameterBound, Kind: schema.KindString,
			Assign: assignString("BuildType", "id", func(m schema.Model, s string) { m.(*BuildType).ID = s }),
		},
		{
			Name: "name", Policy: schema.RandomBound, Kind: schema.KindString,
			Assign: assignString("BuildType", "name", func(m schema.Model, s string) { m.(*BuildType).Name = s }),
		},
		{
			Name: "project", Kind: schema.KindModel, Elem: NewProjectDescriptionBlueprint,
			Assign: func(m schema.Model, v any) error {
				p, ok := v.(*NewProjectDescription)
				if !ok {
					return schema.Mismatch("BuildType", "project", "*NewProjectDescription", v)
				}
				m.(*BuildType).Project = p
				return nil
			},
		},
		// шаги при генерации не нужны: тесты добавляют их сами, когда проверяют шаги
		{
			Name: "steps", Policy: schema.Skip, Kind: schema.KindModel, Elem: StepsBlueprint,
			Assign: func(m schema.Model, v any) error {
				s, ok := v.(*Steps)
				if !ok {
					return schema.Mismatch("BuildType", "steps", "*Steps", v)
				}
				m.(*BuildType).Steps = s
				return nil
			},
		},
	},
}

// Steps — обёртка над списком шагов (формат TeamCity-подобного API).
type Steps struct {
	Step []*Step `json:"step,omitempty"`
}

func (s *Steps) Blueprint() *schema.Blueprint { return StepsBlueprint }

var StepsBlueprint = &schema.Blueprint{
	Type: "Steps",
	New:  func() schema.Model { return &Steps{} },
	Fields: []schema.FieldSpec{
		{
			Name: "step", Kind: schema.KindModelList, Elem: StepBlueprint,
			// KindModelList: Assign получает один элемент и строит список из него
			Assign: func(m schema.Model, v any) error {
				st, ok := v.(*Step)
				if !ok {
					return schema.Mismatch("Steps", "step", "*Step", v)
				}
				m.(*Steps).Step = []*Step{st}
				return nil
			},
		},
	},
}

// Step — один шаг сборки.
type Step struct {
	Name string `json:"name,omitempty"`
	Type string `json:"type,omitempty"`
}

func (s *Step) Blueprint() *schema.Blueprint { return StepBlueprint }

var StepBlueprint = &schema.Blueprint{
	Type: "Step",
	New:  func() schema.Model { return &Step{Type: "simpleRunner"} },
	Fields: []schema.FieldSpec{
		{
			Name: "name", Policy: schema.RandomBound, Kind: schema.KindString,
			Assign: assignString("Step", "name", func(m schema.Model, s string) { m.(*Step).Name = s }),
		},
		{
			Name: "type", Policy: schema.Skip, Kind: schema.KindString,
			Assign: assignString("Step", "type", func(m schema.Model, s string) { m.(*Step).Type = s }),
		},
	},
}
