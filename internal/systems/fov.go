package systems

import (
	"rogue-server/internal/domain"

	"github.com/sirupsen/logrus"

	"rogue-server/pkg/logger"
)

// Мультипликаторы для трансформации координат в 8 октантов
var multipliers = [4][8]int{
	{1, 0, 0, -1, -1, 0, 0, 1},
	{0, 1, -1, 0, 0, -1, 1, 0},
	{0, 1, 1, 0, 0, -1, -1, 0},
	{1, 0, 0, 1, -1, 0, 0, -1},
}

// ComputeVisibleCoords возвращает множество координат, видимых из origin.
// Прозрачность клеток берется из запроса OpacityAt ядра.
func ComputeVisibleCoords(v WorldView, origin domain.Coord, radius int) map[domain.Coord]bool {
	fovLogger := logger.Log.WithFields(logrus.Fields{
		"component":    "fov_system",
		"observer_pos": origin,
	})

	visible := make(map[domain.Coord]bool)
	if radius <= 0 {
		fovLogger.Warn("FOV calculation skipped for blind observer (radius <= 0).")
		return visible // Слепой
	}

	// Центр всегда виден
	visible[origin] = true

	// Рекурсивный Shadowcasting для 8 октантов
	for i := 0; i < 8; i++ {
		castLight(v, origin.X, origin.Y, 1, 1.0, 0.0, radius,
			multipliers[0][i], multipliers[1][i],
			multipliers[2][i], multipliers[3][i], visible)
	}

	fovLogger.WithField("visible_cells", len(visible)).Debug("FOV calculation complete.")

	return visible
}

func castLight(v WorldView, cx, cy, row int, start, end float64, radius, xx, xy, yx, yy int, visible map[domain.Coord]bool) {
	if start < end {
		return
	}

	size := v.Size()
	radiusSq := float64(radius * radius)

	for j := row; j <= radius; j++ {
		dx, dy := -j-1, -j
		blocked := false
		newStart := start

		for {
			dx++
			if dx > 0 {
				break
			}
			dy = -j

			// Расчет наклонов (Slopes)
			lSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)

			if start < rSlope {
				continue
			}
			if end > lSlope {
				break
			}

			// Трансформация координат в глобальные
			c := domain.Coord{X: cx + dx*xx + dy*xy, Y: cy + dx*yx + dy*yy}

			// Проверка границ и радиуса
			inBounds := c.IsValid(size)
			if inBounds && float64(dx*dx+dy*dy) < radiusSq {
				visible[c] = true
			}

			if blocked {
				// Мы идем вдоль стены...
				if isOpaque(v, c) {
					newStart = rSlope
					continue
				}
				// Стена кончилась, началась пустота
				blocked = false
				start = newStart
			} else {
				// Мы шли по пустоте и наткнулись на стену
				if isOpaque(v, c) && j < radius {
					blocked = true
					// Рекурсивно запускаем сканирование следующего ряда
					castLight(v, cx, cy, j+1, start, lSlope, radius, xx, xy, yx, yy, visible)
					newStart = rSlope
				}
			}
		}
		if blocked {
			break
		}
	}
}

// isOpaque проверяет, блокирует ли клетка взгляд.
// Выход за границы считается блокирующим.
func isOpaque(v WorldView, c domain.Coord) bool {
	if !c.IsValid(v.Size()) {
		return true
	}
	return v.OpacityAt(c) > 0
}
