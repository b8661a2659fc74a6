package schema

// Policy — политика заполнения поля при генерации.
// Политики взаимоисключающие: у поля ровно одна.
type Policy int

const (
	// Auto — без пометки: поле заполняется только если его тип — модель
	// (Kind == KindModel / KindModelList), иначе остаётся нулевым.
	Auto Policy = iota
	// Skip — поле не трогаем, остаётся значение по умолчанию.
	Skip
	// ParameterBound — поле получает очередной параметр вызывающего
	// (позиционно, в порядке объявления полей). Если параметры кончились —
	// поле обрабатывается как Auto.
	ParameterBound
	// RandomBound — строковое поле заполняется случайной строкой.
	// Для нестроковых полей пометка ничего не делает.
	RandomBound
)

// Kind — то немногое, что генератор знает о типе поля:
// строка это, модель, список моделей или что-то ещё.
type Kind int

const (
	KindOther Kind = iota
	KindString
	KindModel
	KindModelList
)

// Model — базовый тип всех доменных сущностей (аналог BaseModel).
// Каждая модель отдаёт свой статический Blueprint.
type Model interface {
	Blueprint() *Blueprint
}

// FieldSpec описывает одно поле сущности.
// Порядок полей в Blueprint.Fields — часть контракта типа: он определяет,
// какой позиционный параметр достанется какому ParameterBound-полю,
// и в каком порядке идёт рекурсивный спуск.
type FieldSpec struct {
	Name   string
	Policy Policy
	Kind   Kind

	// Elem — blueprint вложенной сущности (для KindModel — тип самого поля,
	// для KindModelList — тип элемента списка).
	Elem *Blueprint

	// Assign — типизированный сеттер. Для KindModelList получает ОДИН
	// элемент и сам строит одноэлементный список. Возвращает
	// *SchemaMismatchError, если значение не того типа.
	Assign func(owner Model, value any) error
}

// Blueprint — статическая таблица-дескриптор одного типа сущности.
// Регистрируется один раз при старте процесса; идентичность типа для
// реестра переиспользования — это идентичность указателя на Blueprint.
type Blueprint struct {
	// Type — имя типа, попадает в тексты ошибок.
	Type string
	// New — конструктор пустого экземпляра. nil или nil-результат
	// означают, что тип нельзя сконструировать (ConstructionError).
	New func() Model
	// Fields — поля в порядке объявления.
	Fields []FieldSpec
}
