package systems

import "rogue-server/internal/domain"

// WorldView - read-only поверхность запросов ядра, которую потребляют
// коллабораторы (AI, видимость). Никакой из методов не мутирует мир.
type WorldView interface {
	Size() domain.Size
	OpacityAt(c domain.Coord) uint8
	CanNpcEnter(c domain.Coord) bool
	CanNpcEnterIgnoringOtherNpcs(c domain.Coord) bool
	CanNpcSeeThroughCell(c domain.Coord) bool
	EntityCoord(e domain.Entity) (domain.Coord, bool)
	IsLivingCharacter(e domain.Entity) bool
}
