package domain

// Trajectory - конечная последовательность кардинальных шагов,
// вычисленная один раз из вектора (цель - источник) при спавне снаряда.
// Потребляется по одному шагу за тик мира; исчерпанная траектория
// означает, что снаряд пора убрать.
//
// Шаги аппроксимируют прямую: всего |dx|+|dy| шагов, шаги по короткой
// оси равномерно перемежаются шагами по длинной (алгоритм Брезенхэма).
type Trajectory struct {
	major, minor         CardinalDirection
	majorTotal           int
	majorLeft, minorLeft int
	acc                  int
}

// NewTrajectory строит траекторию по вектору смещения.
// Нулевой вектор дает пустую траекторию.
func NewTrajectory(delta Coord) *Trajectory {
	dirX, dirY := East, South
	absX, absY := delta.X, delta.Y
	if absX < 0 {
		dirX = West
		absX = -absX
	}
	if absY < 0 {
		dirY = North
		absY = -absY
	}

	t := &Trajectory{}
	if absX >= absY {
		t.major, t.minor = dirX, dirY
		t.majorTotal = absX
		t.majorLeft, t.minorLeft = absX, absY
	} else {
		t.major, t.minor = dirY, dirX
		t.majorTotal = absY
		t.majorLeft, t.minorLeft = absY, absX
	}
	t.acc = t.majorTotal / 2
	return t
}

// Next выдает следующий шаг. Второе значение false - траектория исчерпана.
func (t *Trajectory) Next() (CardinalDirection, bool) {
	switch {
	case t.majorLeft == 0 && t.minorLeft == 0:
		return 0, false
	case t.minorLeft == 0:
		t.majorLeft--
		return t.major, true
	case t.majorLeft == 0:
		t.minorLeft--
		return t.minor, true
	}

	t.acc += t.minorLeft
	if t.acc >= t.majorTotal {
		t.acc -= t.majorTotal
		t.minorLeft--
		return t.minor, true
	}
	t.majorLeft--
	return t.major, true
}

// Remaining возвращает число оставшихся шагов.
func (t *Trajectory) Remaining() int {
	return t.majorLeft + t.minorLeft
}
