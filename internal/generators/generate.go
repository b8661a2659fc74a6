// Package generators — движок генерации тестовых данных.
//
// Каждая сущность описана статической таблицей дескрипторов
// (schema.Blueprint): никакой рефлексии, только явные сеттеры.
// Поля обходятся в порядке объявления, для каждого действует
// приоритет правил:
//
//  1. Skip — поле не трогаем;
//  2. ParameterBound и есть параметры — забираем очередной параметр;
//  3. RandomBound — случайная строка (только для строковых полей);
//  4. поле-модель — берём из реестра переиспользования или генерируем
//     рекурсивно;
//  5. поле-список моделей — одноэлементный список по правилу 4;
//  6. иначе поле остаётся нулевым.
//
// Первый подошедший пункт выигрывает. В частности, ParameterBound-поле
// при пустом курсоре проваливается к пунктам 4–6, а не падает с ошибкой.
package generators

import (
	"errors"

	"stend/internal/schema"
)

// maxDepth — потолок рекурсии. Blueprint-граф с циклом (сущность,
// транзитивно содержащая саму себя) иначе ушёл бы в бесконечный спуск.
const maxDepth = 32

// ErrTooDeep возвращается (обёрнутым в ConstructionError), когда глубина
// вложенности превысила maxDepth — почти наверняка цикл в графе сущностей.
var ErrTooDeep = errors.New("entity graph is nested too deeply (cycle?)")

// Generate генерирует одну сущность по blueprint'у, сверяясь с реестром
// уже сгенерированных. Параметры раздаются ParameterBound-полям позиционно
// по всему рекурсивному дереву; лишние параметры молча игнорируются.
func Generate(reg *Registry, bp *schema.Blueprint, parameters ...any) (schema.Model, error) {
	return generate(reg, bp, NewCursor(parameters...), 0)
}

// GenerateOne — генерация без реестра (переиспользование недоступно).
func GenerateOne(bp *schema.Blueprint, parameters ...any) (schema.Model, error) {
	return Generate(NewRegistry(), bp, parameters...)
}

func generate(reg *Registry, bp *schema.Blueprint, cur *Cursor, depth int) (schema.Model, error) {
	if bp == nil || bp.New == nil {
		name := "<nil>"
		if bp != nil {
			name = bp.Type
		}
		return nil, &schema.ConstructionError{Type: name, Err: errors.New("no constructor")}
	}
	if depth > maxDepth {
		return nil, &schema.ConstructionError{Type: bp.Type, Err: ErrTooDeep}
	}
	instance := bp.New()
	if instance == nil {
		return nil, &schema.ConstructionError{Type: bp.Type, Err: errors.New("constructor returned nil")}
	}

	for _, field := range bp.Fields {
		if err := resolveField(instance, field, reg, cur, depth); err != nil {
			return nil, err
		}
	}
	return instance, nil
}

// resolveField применяет политику одного поля к строящемуся экземпляру.
func resolveField(owner schema.Model, f schema.FieldSpec, reg *Registry, cur *Cursor, depth int) error {
	switch {
	case f.Policy == schema.Skip:
		return nil

	case f.Policy == schema.ParameterBound && cur.Len() > 0:
		return f.Assign(owner, cur.Next())

	case f.Policy == schema.RandomBound:
		// нестроковое RandomBound-поле не заполняется, но ветка считается
		// отработавшей — к правилам 4–5 оно уже не проваливается
		if f.Kind == schema.KindString {
			return f.Assign(owner, randomValue())
		}
		return nil
	}

	switch f.Kind {
	case schema.KindModel, schema.KindModelList:
		child, ok := reg.Lookup(f.Elem)
		if !ok {
			generated, err := generate(reg, f.Elem, cur, depth+1)
			if err != nil {
				return err
			}
			// рекурсивный результат в реестр НЕ попадает:
			// реестр наполняет только композер агрегата
			child = generated
		}
		return f.Assign(owner, child)
	}

	return nil
}
