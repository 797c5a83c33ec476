package engine

import (
	"encoding/json"
	"math/rand"

	"github.com/sirupsen/logrus"

	"rogue-server/internal/domain"
	"rogue-server/internal/systems"
	"rogue-server/pkg/api"
	"rogue-server/pkg/logger"
)

// VisionRadius - радиус поля зрения игрока в клетках.
const VisionRadius = 8

// Game - одна игровая сессия: приватный мир + персонаж игрока + таблица
// AI-агентов + игровой лог. Ровно один обработчик ходов на мир: команды
// обрабатываются строго последовательно.
type Game struct {
	world  *World
	player domain.Entity
	agents *domain.ComponentTable[*systems.Agent]
	log    *domain.MessageLog

	// logOffset - сколько записей лога уже отдано клиенту.
	logOffset int

	// Ожидание цели после USE свитка. AIM без этого флага (или с другим
	// слотом) отвергается: прицеливание пустым слотом или зельем - фатальный
	// контракт ядра, и блюсти его обязан оркестратор.
	aimPending bool
	aimSlot    int

	// explored - "туман войны": клетки, которые игрок когда-либо видел.
	explored map[domain.Coord]bool
}

// NewGame создает сессию: генерирует и заселяет мир по конфигу.
func NewGame(cfg Config) *Game {
	rng := rand.New(rand.NewSource(cfg.Seed))
	world := NewWorld(cfg.Size)
	populated := world.Populate(rng)

	logger.Log.WithFields(logrus.Fields{
		"component": "game",
		"seed":      cfg.Seed,
		"size":      cfg.Size,
	}).Info("Game session created.")

	return &Game{
		world:    world,
		player:   populated.Player,
		agents:   populated.AIState,
		log:      &domain.MessageLog{},
		explored: make(map[domain.Coord]bool),
	}
}

// World открывает ядро сессии (для тестов и отладочных ручек).
func (g *Game) World() *World {
	return g.world
}

// Player возвращает сущность игрока.
func (g *Game) Player() domain.Entity {
	return g.player
}

// ProcessCommand - главный метод обработки ввода. Выполняет команду
// игрока, и если та потратила ход - прокручивает мир (снаряды, затем
// ходы NPC), после чего собирает снимок для клиента.
func (g *Game) ProcessCommand(cmd api.ClientCommand) *api.ServerResponse {
	response := &api.ServerResponse{Type: "UPDATE"}

	playerActed := false // Флаг: совершил ли игрок действие, требующее времени
	playerAlive := g.world.IsLivingCharacter(g.player)

	// Любое действие, способное изменить инвентарь или ход, сбрасывает
	// ожидание цели (DROP мог опустошить прицеленный слот).
	if cmd.Action != "AIM" && cmd.Action != "EXAMINE" && cmd.Action != "INIT" {
		g.aimPending = false
	}

	switch cmd.Action {
	case "INIT":
		response.Type = "INIT"

	case "MOVE":
		var p api.DirectionPayload
		if err := json.Unmarshal(cmd.Payload, &p); err == nil && playerAlive {
			if direction, ok := directionFrom(p.Dx, p.Dy); ok {
				g.world.MaybeMoveCharacter(g.player, direction, g.log)
				playerActed = true
			}
		}

	case "WAIT":
		playerActed = playerAlive

	case "PICKUP":
		if playerAlive {
			playerActed = g.world.MaybeGetItem(g.player, g.log) == nil
		}

	case "USE":
		var p api.SlotPayload
		if err := json.Unmarshal(cmd.Payload, &p); err == nil && playerAlive {
			usage, err := g.world.MaybeUseItem(g.player, p.Slot, g.log)
			if err == nil && usage == UsageAim {
				// Слот еще не потрачен: клиент обязан прислать AIM
				g.aimPending = true
				g.aimSlot = p.Slot
				response.RequiresAim = true
				response.AimSlot = p.Slot
			} else {
				playerActed = err == nil
			}
		}

	case "AIM":
		var p api.AimPayload
		if err := json.Unmarshal(cmd.Payload, &p); err == nil && playerAlive &&
			g.aimPending && p.Slot == g.aimSlot {
			target := domain.Coord{X: p.X, Y: p.Y}
			if target.IsValid(g.world.Size()) {
				err := g.world.MaybeUseItemAim(g.player, p.Slot, target, g.log)
				if err == nil {
					g.aimPending = false
					playerActed = true
				}
			}
		}

	case "DROP":
		var p api.SlotPayload
		if err := json.Unmarshal(cmd.Payload, &p); err == nil && playerAlive {
			playerActed = g.world.MaybeDropItem(g.player, p.Slot, g.log) == nil
		}

	case "EXAMINE":
		var p api.PositionPayload
		if err := json.Unmarshal(cmd.Payload, &p); err == nil {
			if cell, ok := g.world.ExamineCell(domain.Coord{X: p.X, Y: p.Y}); ok {
				response.Examine = api.FormatExamineCell(cell)
			}
		}

	default:
		logger.Log.WithFields(logrus.Fields{
			"component": "game",
			"action":    cmd.Action,
		}).Warn("Unknown client action.")
	}

	// Если игрок что-то сделал, запускаем мир
	if playerActed {
		g.advanceWorld()
	}

	g.buildSnapshot(response)
	return response
}

// advanceWorld прокручивает мир после хода игрока: сперва все снаряды
// долетают до конца, затем ходят NPC.
func (g *Game) advanceWorld() {
	for g.world.HasProjectiles() {
		g.world.MoveProjectiles(g.log)
	}

	for _, npc := range g.agents.Entities() {
		if !g.world.IsLivingCharacter(npc) {
			// Погибший NPC выбывает из таблицы агентов
			g.agents.Remove(npc)
			continue
		}
		agent, _ := g.agents.Get(npc)
		action := systems.ComputeNpcAction(g.world, agent, npc, g.player)
		if action.Move {
			g.world.MaybeMoveCharacter(npc, action.Direction, g.log)
		}
	}
}

// --- СБОРКА СНИМКА ---

func (g *Game) buildSnapshot(response *api.ServerResponse) {
	size := g.world.Size()
	response.Grid = &api.GridMeta{Width: size.Width, Height: size.Height}

	visible := map[domain.Coord]bool{}
	if coord, ok := g.world.EntityCoord(g.player); ok {
		visible = systems.ComputeVisibleCoords(g.world, coord, VisionRadius)
	}
	for c := range visible {
		g.explored[c] = true
	}

	for y := 0; y < size.Height; y++ {
		for x := 0; x < size.Width; x++ {
			c := domain.Coord{X: x, Y: y}
			if !g.explored[c] {
				continue
			}
			tile, ok := g.topTileAt(c)
			if !ok {
				continue
			}
			view := api.TileView{
				X:          c.X,
				Y:          c.Y,
				Kind:       tile.Kind.String(),
				Detail:     tileDetail(tile),
				IsVisible:  visible[c],
				IsExplored: true,
			}
			response.Tiles = append(response.Tiles, view)
		}
	}

	response.Player = g.buildPlayerView()
	response.GameOver = !g.world.IsLivingCharacter(g.player)

	for _, m := range g.log.Since(g.logOffset) {
		response.Logs = append(response.Logs, api.FormatMessage(m))
	}
	g.logOffset = g.log.Len()
}

// topTileAt возвращает верхний тайл клетки в порядке планов:
// снаряд > персонаж > объект > стена > пол.
func (g *Game) topTileAt(c domain.Coord) (domain.Tile, bool) {
	layers := g.world.LayersAt(c)
	if layers == nil {
		return domain.Tile{}, false
	}
	for _, e := range []domain.Entity{
		layers.Projectile,
		layers.Character,
		layers.Object,
		layers.Feature,
		layers.Floor,
	} {
		if e.IsNil() {
			continue
		}
		if tile, ok := g.world.TileOf(e); ok {
			return tile, true
		}
	}
	return domain.Tile{}, false
}

func tileDetail(tile domain.Tile) string {
	switch tile.Kind {
	case domain.TileNpc, domain.TileNpcCorpse:
		return tile.Npc.Name()
	case domain.TileItem:
		return tile.Item.Name()
	case domain.TileProjectile:
		return tile.Projectile.Name()
	}
	return ""
}

func (g *Game) buildPlayerView() *api.PlayerView {
	view := &api.PlayerView{}
	if coord, ok := g.world.EntityCoord(g.player); ok {
		view.X, view.Y = coord.X, coord.Y
	}
	if hp, ok := g.world.HitPoints(g.player); ok {
		view.HP, view.MaxHP = hp.Current, hp.Max
	}
	if inventory, ok := g.world.Inventory(g.player); ok {
		for _, slot := range inventory.Slots() {
			name := ""
			if itemType, ok := g.world.ItemTypeOf(slot); ok {
				name = itemType.Name()
			}
			view.Inventory = append(view.Inventory, name)
		}
	}
	return view
}

// directionFrom переводит (dx, dy) клиента в кардинальное направление.
// Диагонали и нулевой вектор отвергаются.
func directionFrom(dx, dy int) (domain.CardinalDirection, bool) {
	switch {
	case dx == 0 && dy == -1:
		return domain.North, true
	case dx == 1 && dy == 0:
		return domain.East, true
	case dx == 0 && dy == 1:
		return domain.South, true
	case dx == -1 && dy == 0:
		return domain.West, true
	}
	return 0, false
}
