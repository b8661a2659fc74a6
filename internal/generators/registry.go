package generators

import "stend/internal/schema"

// Registry — упорядоченный реестр уже сгенерированных сущностей.
// Живёт ровно одну сборку агрегата: наполняется только композером
// (GenerateTestData), читается при рекурсивной генерации. Поиск идёт
// по идентичности blueprint'а — внутри одного прохода реестр не
// содержит двух сущностей одного типа.
type Registry struct {
	entries []registryEntry
}

type registryEntry struct {
	bp    *schema.Blueprint
	model schema.Model
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Add добавляет сгенерированную сущность в конец реестра.
func (r *Registry) Add(m schema.Model) {
	r.entries = append(r.entries, registryEntry{bp: m.Blueprint(), model: m})
}

// Lookup возвращает первую сущность с таким blueprint'ом.
func (r *Registry) Lookup(bp *schema.Blueprint) (schema.Model, bool) {
	for _, e := range r.entries {
		if e.bp == bp {
			return e.model, true
		}
	}
	return nil, false
}

// Len — число записей в реестре.
func (r *Registry) Len() int {
	return len(r.entries)
}
