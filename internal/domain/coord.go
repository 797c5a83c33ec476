package domain

// Coord - целочисленная координата клетки на карте.
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add возвращает новую координату со смещением (не меняя текущую,
// т.к. Go передает структуры по значению).
func (c Coord) Add(other Coord) Coord {
	return Coord{X: c.X + other.X, Y: c.Y + other.Y}
}

// Sub возвращает разность координат (вектор от other к c).
func (c Coord) Sub(other Coord) Coord {
	return Coord{X: c.X - other.X, Y: c.Y - other.Y}
}

// IsValid возвращает true, если координата лежит внутри карты размера s.
func (c Coord) IsValid(s Size) bool {
	return c.X >= 0 && c.X < s.Width && c.Y >= 0 && c.Y < s.Height
}

// ManhattanLength - сумма модулей компонент. Столько кардинальных шагов
// нужно, чтобы пройти этот вектор.
func (c Coord) ManhattanLength() int {
	x, y := c.X, c.Y
	if x < 0 {
		x = -x
	}
	if y < 0 {
		y = -y
	}
	return x + y
}

// Size - размеры прямоугольной карты.
type Size struct {
	Width  int `json:"w"`
	Height int `json:"h"`
}

// Count возвращает общее число клеток.
func (s Size) Count() int {
	return s.Width * s.Height
}

// Index превращает координату в индекс плоского массива (Y * Width + X).
func (s Size) Index(c Coord) int {
	return c.Y*s.Width + c.X
}

// CardinalDirection - одно из четырех кардинальных направлений.
type CardinalDirection uint8

const (
	North CardinalDirection = iota
	East
	South
	West
)

// Coord возвращает единичный вектор смещения для направления.
// Ось Y растет вниз (экранные координаты).
func (d CardinalDirection) Coord() Coord {
	switch d {
	case North:
		return Coord{X: 0, Y: -1}
	case East:
		return Coord{X: 1, Y: 0}
	case South:
		return Coord{X: 0, Y: 1}
	case West:
		return Coord{X: -1, Y: 0}
	}
	panic("unknown cardinal direction")
}

func (d CardinalDirection) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	}
	return "?"
}
