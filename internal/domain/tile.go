package domain

// NpcType - вид враждебного NPC.
type NpcType uint8

const (
	NpcOrc NpcType = iota
	NpcTroll
)

// Name возвращает боевое имя для логов и клиента.
func (n NpcType) Name() string {
	switch n {
	case NpcOrc:
		return "orc"
	case NpcTroll:
		return "troll"
	}
	return "?"
}

// MaxHitPoints - стартовый максимум здоровья для вида NPC.
func (n NpcType) MaxHitPoints() int {
	switch n {
	case NpcOrc:
		return 2
	case NpcTroll:
		return 6
	}
	return 0
}

// ItemType - вид предмета. Определяет семантику использования.
type ItemType uint8

const (
	ItemHealthPotion ItemType = iota
	ItemFireballScroll
)

func (i ItemType) Name() string {
	switch i {
	case ItemHealthPotion:
		return "health potion"
	case ItemFireballScroll:
		return "fireball scroll"
	}
	return "?"
}

// ProjectileType - вид снаряда. Несет урон и поведение при попадании.
type ProjectileType uint8

const (
	ProjectileFireball ProjectileType = iota
)

func (p ProjectileType) Name() string {
	switch p {
	case ProjectileFireball:
		return "fireball"
	}
	return "?"
}

// Damage - фиксированный урон снаряда при попадании в персонажа.
func (p ProjectileType) Damage() int {
	switch p {
	case ProjectileFireball:
		return 2
	}
	return 0
}

// TileKind - семантический/визуальный вид сущности.
type TileKind uint8

const (
	TilePlayer TileKind = iota
	TilePlayerCorpse
	TileFloor
	TileWall
	TileNpc
	TileNpcCorpse
	TileItem
	TileProjectile
)

func (k TileKind) String() string {
	switch k {
	case TilePlayer:
		return "player"
	case TilePlayerCorpse:
		return "player_corpse"
	case TileFloor:
		return "floor"
	case TileWall:
		return "wall"
	case TileNpc:
		return "npc"
	case TileNpcCorpse:
		return "npc_corpse"
	case TileItem:
		return "item"
	case TileProjectile:
		return "projectile"
	}
	return "?"
}

// Tile - текущая идентичность сущности ("что это сейчас").
// У сущности не больше одного Tile; при смерти он меняется на месте
// (Player -> PlayerCorpse, Npc -> NpcCorpse), сам хэндл живет дальше.
// Payload-поля читаются только для соответствующего Kind.
type Tile struct {
	Kind       TileKind
	Npc        NpcType
	Item       ItemType
	Projectile ProjectileType
}

func NewNpcTile(n NpcType) Tile {
	return Tile{Kind: TileNpc, Npc: n}
}

func NewNpcCorpseTile(n NpcType) Tile {
	return Tile{Kind: TileNpcCorpse, Npc: n}
}

func NewItemTile(i ItemType) Tile {
	return Tile{Kind: TileItem, Item: i}
}

func NewProjectileTile(p ProjectileType) Tile {
	return Tile{Kind: TileProjectile, Projectile: p}
}
