package domain

// HitPoints - здоровье персонажа. Инварианты: 0 <= Current <= Max.
type HitPoints struct {
	Current int `json:"hp"`
	Max     int `json:"maxHp"`
}

// NewFullHitPoints создает здоровье, заполненное до максимума.
func NewFullHitPoints(max int) HitPoints {
	return HitPoints{Current: max, Max: max}
}

// Damage наносит урон. Current не опускается ниже нуля.
// Возвращает true, если здоровье дошло ровно до нуля (цель погибла).
func (h *HitPoints) Damage(amount int) bool {
	if amount < 0 {
		amount = 0
	}
	h.Current -= amount
	if h.Current <= 0 {
		h.Current = 0
		return true
	}
	return false
}

// Heal лечит, не превышая Max.
func (h *HitPoints) Heal(amount int) {
	h.Current += amount
	if h.Current > h.Max {
		h.Current = h.Max
	}
}
