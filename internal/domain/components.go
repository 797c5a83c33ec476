package domain

// Components - фиксированная схема таблиц атрибутов: по одной таблице
// на вид атрибута. Сущность может состоять в любом подмножестве таблиц
// (у персонажа есть Tile + HitPoints, но нет Item; у предмета - Tile +
// Item, но нет HitPoints).
type Components struct {
	Tile       *ComponentTable[Tile]
	NpcType    *ComponentTable[NpcType]
	HitPoints  *ComponentTable[HitPoints]
	Item       *ComponentTable[ItemType]
	Inventory  *ComponentTable[*Inventory]
	Projectile *ComponentTable[ProjectileType]
	Trajectory *ComponentTable[*Trajectory]
}

// NewComponents создает пустой набор таблиц.
func NewComponents() *Components {
	return &Components{
		Tile:       NewComponentTable[Tile](),
		NpcType:    NewComponentTable[NpcType](),
		HitPoints:  NewComponentTable[HitPoints](),
		Item:       NewComponentTable[ItemType](),
		Inventory:  NewComponentTable[*Inventory](),
		Projectile: NewComponentTable[ProjectileType](),
		Trajectory: NewComponentTable[*Trajectory](),
	}
}

// RemoveEntity вычищает сущность из всех таблиц разом. Это единственный
// путь удаления атрибутов при уничтожении сущности - осиротевших
// атрибутов после него не остается.
func (c *Components) RemoveEntity(e Entity) {
	c.Tile.Remove(e)
	c.NpcType.Remove(e)
	c.HitPoints.Remove(e)
	c.Item.Remove(e)
	c.Inventory.Remove(e)
	c.Projectile.Remove(e)
	c.Trajectory.Remove(e)
}
