package schema

import "fmt"

// ConstructionError — тип нельзя сконструировать или поле нельзя записать.
// Фатальна для текущего вызова генерации, наружу не отдаётся частичный результат.
type ConstructionError struct {
	Type string
	Err  error
}

func (e *ConstructionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cannot construct %s: %v", e.Type, e.Err)
	}
	return fmt.Sprintf("cannot construct %s", e.Type)
}

func (e *ConstructionError) Unwrap() error { return e.Err }

// SchemaMismatchError — значение не подходит полю по типу
// (например, ParameterBound-параметр не того типа).
type SchemaMismatchError struct {
	Type  string
	Field string
	Want  string
	Got   any
}

func (e *SchemaMismatchError) Error() string {
	return fmt.Sprintf("%s.%s: expected %s, got %T", e.Type, e.Field, e.Want, e.Got)
}

// Mismatch — короткий конструктор для Assign-замыканий в моделях.
func Mismatch(typeName, field, want string, got any) error {
	return &SchemaMismatchError{Type: typeName, Field: field, Want: want, Got: got}
}
