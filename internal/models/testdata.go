package models

import "stend/internal/schema"

// TestData — агрегат тестовых данных для одного теста.
// Порядок полей важен: сущности генерируются сверху вниз, и каждая
// сгенерированная попадает в реестр переиспользования. Поэтому project
// объявлен раньше buildType — buildType.project сослался бы в пустоту,
// объяви мы их наоборот.
type TestData struct {
	Project   *NewProjectDescription `json:"project"`
	User      *User                  `json:"user"`
	BuildType *BuildType             `json:"buildType"`
}

// TestDataField — одно поле агрегата: blueprint сущности и сеттер.
type TestDataField struct {
	Name      string
	Blueprint *schema.Blueprint
	Assign    func(td *TestData, m schema.Model) error
}

// TestDataFields — поля агрегата в порядке объявления.
var TestDataFields = []TestDataField{
	{
		Name: "project", Blueprint: NewProjectDescriptionBlueprint,
		Assign: func(td *TestData, m schema.Model) error {
			p, ok := m.(*NewProjectDescription)
			if !ok {
				return schema.Mismatch("TestData", "project", "*NewProjectDescription", m)
			}
			td.Project = p
			return nil
		},
	},
	{
		Name: "user", Blueprint: UserBlueprint,
		Assign: func(td *TestData, m schema.Model) error {
			u, ok := m.(*User)
			if !ok {
				return schema.Mismatch("TestData", "user", "*User", m)
			}
			td.User = u
			return nil
		},
	},
	{
		Name: "buildType", Blueprint: BuildTypeBlueprint,
		Assign: func(td *TestData, m schema.Model) error {
			b, ok := m.(*BuildType)
			if !ok {
				return schema.Mismatch("TestData", "buildType", "*BuildType", m)
			}
			td.BuildType = b
			return nil
		},
	},
}
