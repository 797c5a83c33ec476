package api

import (
	"encoding/json"
)

// --- КЛИЕНТ -> СЕРВЕР ---

// ClientCommand это корневой объект для всех сообщений от клиента к серверу.
type ClientCommand struct {
	// Action название действия: INIT, MOVE, WAIT, PICKUP, USE, AIM,
	// DROP, EXAMINE.
	Action string `json:"action"`

	// Payload JSON-объект с данными для действия. Его структура зависит
	// от Action.
	Payload json.RawMessage `json:"payload,omitempty"`
}

// DirectionPayload используется для MOVE: ровно одна из осей должна быть
// ненулевой (движение только кардинальное).
type DirectionPayload struct {
	Dx int `json:"dx"` // Смещение по X (-1, 0, 1)
	Dy int `json:"dy"` // Смещение по Y (-1, 0, 1)
}

// SlotPayload используется для USE и DROP.
type SlotPayload struct {
	Slot int `json:"slot"` // Индекс слота инвентаря
}

// AimPayload используется для AIM: слот свитка + целевая клетка.
type AimPayload struct {
	Slot int `json:"slot"`
	X    int `json:"x"`
	Y    int `json:"y"`
}

// PositionPayload используется для EXAMINE.
type PositionPayload struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// --- СЕРВЕР -> КЛИЕНТ ---

// ServerResponse это полный "снимок" мира после обработки команды.
type ServerResponse struct {
	// Type тип сообщения: INIT или UPDATE.
	Type string `json:"type"`

	// Grid метаданные о размере всей карты.
	Grid *GridMeta `json:"grid,omitempty"`

	// Tiles срез видимых и/или исследованных клеток (верхний тайл клетки).
	Tiles []TileView `json:"tiles,omitempty"`

	// Player состояние подконтрольного персонажа.
	Player *PlayerView `json:"player,omitempty"`

	// RequiresAim true, если последняя команда USE требует прицеливания:
	// клиент обязан запросить цель и отправить AIM со слотом.
	RequiresAim bool `json:"requiresAim,omitempty"`

	// AimSlot слот, ожидающий прицеливания (валиден при RequiresAim).
	AimSlot int `json:"aimSlot,omitempty"`

	// Examine текстовое описание осмотренной клетки (для EXAMINE).
	Examine string `json:"examine,omitempty"`

	// Logs новые записи игрового лога с прошлого снимка,
	// уже отформатированные для показа.
	Logs []string `json:"logs,omitempty"`

	// GameOver true, когда персонаж игрока мертв.
	GameOver bool `json:"gameOver,omitempty"`
}

// GridMeta содержит общие размеры карты, чтобы клиент знал,
// какую сетку для рендеринга нужно подготовить.
type GridMeta struct {
	Width  int `json:"w"`
	Height int `json:"h"`
}

// TileView это DTO для одной клетки карты: верхний (по планам) тайл.
type TileView struct {
	X int `json:"x"`
	Y int `json:"y"`

	// Kind семантический вид тайла (player, wall, npc, item, ...).
	Kind string `json:"kind"`

	// Detail уточнение вида: имя NPC, предмета или снаряда.
	Detail string `json:"detail,omitempty"`

	// IsVisible true, если клетка в текущем поле зрения. Рендерится ярко.
	IsVisible bool `json:"isVisible"`

	// IsExplored true, если клетка когда-либо была видна ("туман войны").
	IsExplored bool `json:"isExplored"`
}

// PlayerView это DTO для персонажа игрока.
type PlayerView struct {
	X     int `json:"x"`
	Y     int `json:"y"`
	HP    int `json:"hp"`
	MaxHP int `json:"maxHp"`

	// Inventory имена предметов по слотам; пустой слот - пустая строка.
	Inventory []string `json:"inventory"`
}
