package domain

import "sort"

// ComponentTable - разреженная таблица "сущность -> значение атрибута".
// Одна таблица на каждый вид атрибута; сущность может состоять в любом
// подмножестве таблиц. Ядро однопоточное, поэтому без блокировок.
type ComponentTable[T any] struct {
	values map[Entity]T
}

// NewComponentTable создает пустую таблицу.
func NewComponentTable[T any]() *ComponentTable[T] {
	return &ComponentTable[T]{values: make(map[Entity]T)}
}

// Insert вставляет или перезаписывает значение атрибута сущности.
func (t *ComponentTable[T]) Insert(e Entity, value T) {
	t.values[e] = value
}

// Get возвращает значение атрибута, если оно есть.
func (t *ComponentTable[T]) Get(e Entity) (T, bool) {
	v, ok := t.values[e]
	return v, ok
}

// Contains возвращает true, если у сущности есть этот атрибут.
func (t *ComponentTable[T]) Contains(e Entity) bool {
	_, ok := t.values[e]
	return ok
}

// Remove удаляет атрибут сущности (отсутствие - не ошибка).
func (t *ComponentTable[T]) Remove(e Entity) {
	delete(t.values, e)
}

// Len возвращает число сущностей с этим атрибутом.
func (t *ComponentTable[T]) Len() int {
	return len(t.values)
}

// IsEmpty возвращает true, если таблица пуста.
func (t *ComponentTable[T]) IsEmpty() bool {
	return len(t.values) == 0
}

// Entities возвращает сущности таблицы, отсортированные по индексу слота.
// Порядок стабилен, чтобы обход не зависел от рандомизации map.
func (t *ComponentTable[T]) Entities() []Entity {
	out := make([]Entity, 0, len(t.values))
	for e := range t.values {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].index < out[j].index
	})
	return out
}
