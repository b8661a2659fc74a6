package generators

import "stend/internal/models"

// GenerateTestData собирает агрегат TestData: поля генерируются в порядке
// объявления, каждая готовая сущность сразу попадает в реестр, поэтому
// последующие поля могут сослаться на неё (buildType.project — это тот же
// экземпляр, что testData.Project). Реестр живёт только внутри этого
// вызова; независимые сборки агрегата сущностей не делят.
func GenerateTestData() (*models.TestData, error) {
	td := &models.TestData{}
	reg := NewRegistry()

	for _, field := range models.TestDataFields {
		model, err := generate(reg, field.Blueprint, NewCursor(), 0)
		if err != nil {
			return nil, err
		}
		if err := field.Assign(td, model); err != nil {
			return nil, err
		}
		reg.Add(model)
	}
	return td, nil
}
