package systems

import (
	"rogue-server/internal/domain"

	"github.com/sirupsen/logrus"

	"rogue-server/pkg/logger"
)

// AggroRadius - радиус, в котором NPC замечает и преследует игрока.
const AggroRadius = 10

// Agent - внешнее AI-состояние одного NPC. Таблицу агентов создает
// Populate и отдает наружу; ядро ее больше не трогает.
type Agent struct {
	LastSeen domain.Coord
	HasSeen  bool
}

// NewAgent создает агента в начальном состоянии.
func NewAgent() *Agent {
	return &Agent{}
}

// NpcAction - решение агента на его ход.
type NpcAction struct {
	Move      bool
	Direction domain.CardinalDirection
}

// ComputeNpcAction решает, что делать NPC. Атака не отдельное действие:
// шаг в клетку игрока разрешается ядром как bump-атака.
func ComputeNpcAction(v WorldView, agent *Agent, npc, player domain.Entity) NpcAction {
	aiLogger := logger.Log.WithFields(logrus.Fields{
		"component": "ai_system",
		"npc":       npc.String(),
	})

	npcCoord, ok := v.EntityCoord(npc)
	if !ok {
		return NpcAction{}
	}
	if !v.IsLivingCharacter(player) {
		// Игрок мертв - преследовать некого
		return NpcAction{}
	}
	playerCoord, ok := v.EntityCoord(player)
	if !ok {
		return NpcAction{}
	}

	delta := playerCoord.Sub(npcCoord)
	if chebyshev(delta) > AggroRadius {
		return NpcAction{}
	}

	if hasLineOfSight(v, npcCoord, playerCoord) {
		agent.LastSeen = playerCoord
		agent.HasSeen = true
	} else if !agent.HasSeen {
		aiLogger.Debug("Target not visible and never seen. Waiting.")
		return NpcAction{}
	}

	// Идем к последней известной позиции игрока
	target := agent.LastSeen
	if target == npcCoord {
		agent.HasSeen = false
		return NpcAction{}
	}

	dir, ok := chooseStep(v, npcCoord, target, playerCoord)
	if !ok {
		aiLogger.Debug("Path is blocked. Waiting.")
		return NpcAction{}
	}
	return NpcAction{Move: true, Direction: dir}
}

// chooseStep выбирает кардинальный шаг к цели: сперва приоритетная ось,
// затем вторая (smart sliding). Шаг в клетку самого игрока разрешен -
// это и есть атака.
func chooseStep(v WorldView, from, target, playerCoord domain.Coord) (domain.CardinalDirection, bool) {
	delta := target.Sub(from)

	var primary, secondary []domain.CardinalDirection
	if abs(delta.X) >= abs(delta.Y) {
		primary = axisDirs(delta.X, domain.East, domain.West)
		secondary = axisDirs(delta.Y, domain.South, domain.North)
	} else {
		primary = axisDirs(delta.Y, domain.South, domain.North)
		secondary = axisDirs(delta.X, domain.East, domain.West)
	}

	for _, dir := range append(primary, secondary...) {
		dest := from.Add(dir.Coord())
		if dest == playerCoord {
			return dir, true // bump-атака
		}
		if v.CanNpcEnter(dest) {
			return dir, true
		}
	}
	return 0, false
}

// hasLineOfSight проверяет прямую видимость дискретным лучом
// (Брезенхэм по клеткам) через CanNpcSeeThroughCell.
func hasLineOfSight(v WorldView, from, to domain.Coord) bool {
	dx, dy := abs(to.X-from.X), abs(to.Y-from.Y)
	sx, sy := sign(to.X-from.X), sign(to.Y-from.Y)
	err := dx - dy
	c := from

	for c != to {
		e2 := err * 2
		if e2 > -dy {
			err -= dy
			c.X += sx
		}
		if e2 < dx {
			err += dx
			c.Y += sy
		}
		if c == to {
			break
		}
		if !v.CanNpcSeeThroughCell(c) {
			return false
		}
	}
	return true
}

// Внутренние утилиты (приватные для пакета systems)

func axisDirs(delta int, pos, neg domain.CardinalDirection) []domain.CardinalDirection {
	if delta > 0 {
		return []domain.CardinalDirection{pos}
	}
	if delta < 0 {
		return []domain.CardinalDirection{neg}
	}
	return nil
}

func chebyshev(c domain.Coord) int {
	x, y := abs(c.X), abs(c.Y)
	if x > y {
		return x
	}
	return y
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}
