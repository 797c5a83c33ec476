package domain

import "fmt"

// Entity - непрозрачный идентификатор сущности: индекс слота + поколение.
// Поколение защищает от обращения к освобожденному и переиспользованному
// слоту: старый хэндл перестает совпадать с текущим поколением слота.
// Нулевое значение Entity зарезервировано как "нет сущности" (поколения
// начинаются с 1).
type Entity struct {
	index      uint32
	generation uint32
}

// IsNil возвращает true для нулевого хэндла ("нет сущности").
func (e Entity) IsNil() bool {
	return e.generation == 0
}

// Index возвращает индекс слота. Нужен для детерминированного порядка
// обхода (например, при продвижении снарядов).
func (e Entity) Index() uint32 {
	return e.index
}

// String для логов: выводим [индекс:поколение]
func (e Entity) String() string {
	return fmt.Sprintf("[%d:%d]", e.index, e.generation)
}

// EntityAllocator выдает и переиспользует идентификаторы сущностей.
// Освобожденный слот попадает в free-list, его поколение увеличивается,
// и слот может быть выдан заново без алиасинга старых хэндлов.
type EntityAllocator struct {
	generations []uint32
	free        []uint32
}

// NewEntityAllocator создает пустой аллокатор.
func NewEntityAllocator() *EntityAllocator {
	return &EntityAllocator{}
}

// Alloc выдает новый идентификатор. Никогда не завершается ошибкой.
func (a *EntityAllocator) Alloc() Entity {
	if n := len(a.free); n > 0 {
		idx := a.free[n-1]
		a.free = a.free[:n-1]
		return Entity{index: idx, generation: a.generations[idx]}
	}
	idx := uint32(len(a.generations))
	a.generations = append(a.generations, 1)
	return Entity{index: idx, generation: 1}
}

// Free освобождает идентификатор. Каждый хэндл должен освобождаться
// не более одного раза; повторный Free того же хэндла - ошибка вызывающего.
func (a *EntityAllocator) Free(e Entity) {
	a.generations[e.index]++
	a.free = append(a.free, e.index)
}

// Exists возвращает true, если хэндл указывает на живой слот
// (поколение слота совпадает с поколением хэндла).
func (a *EntityAllocator) Exists(e Entity) bool {
	if e.IsNil() || int(e.index) >= len(a.generations) {
		return false
	}
	return a.generations[e.index] == e.generation
}
