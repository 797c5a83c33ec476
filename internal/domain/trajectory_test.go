package domain

import "testing"

// drain проходит траекторию до конца и возвращает суммарное смещение и число шагов.
func drain(t *testing.T, tr *Trajectory) (Coord, int) {
	t.Helper()
	var total Coord
	steps := 0
	for {
		dir, ok := tr.Next()
		if !ok {
			return total, steps
		}
		total = total.Add(dir.Coord())
		steps++
		if steps > 1000 {
			t.Fatal("trajectory does not terminate")
		}
	}
}

func TestTrajectory_StraightLine(t *testing.T) {
	tr := NewTrajectory(Coord{X: 3, Y: 0})

	for i := 0; i < 3; i++ {
		dir, ok := tr.Next()
		if !ok || dir != East {
			t.Fatalf("step %d: got (%v, %t), want (east, true)", i, dir, ok)
		}
	}
	if _, ok := tr.Next(); ok {
		t.Error("trajectory must be exhausted after 3 steps")
	}
}

func TestTrajectory_ReachesTarget(t *testing.T) {
	cases := []Coord{
		{X: 3, Y: 0},
		{X: 0, Y: -4},
		{X: 2, Y: 1},
		{X: -5, Y: 3},
		{X: 1, Y: 1},
		{X: -2, Y: -7},
	}
	for _, delta := range cases {
		tr := NewTrajectory(delta)
		want := delta.ManhattanLength()
		if tr.Remaining() != want {
			t.Errorf("delta %v: Remaining = %d, want %d", delta, tr.Remaining(), want)
		}

		total, steps := drain(t, tr)
		if total != delta {
			t.Errorf("delta %v: steps sum to %v", delta, total)
		}
		if steps != want {
			t.Errorf("delta %v: took %d steps, want %d", delta, steps, want)
		}
	}
}

func TestTrajectory_ZeroVector(t *testing.T) {
	tr := NewTrajectory(Coord{})
	if tr.Remaining() != 0 {
		t.Errorf("Remaining = %d, want 0", tr.Remaining())
	}
	if _, ok := tr.Next(); ok {
		t.Error("zero vector must give an empty trajectory")
	}
}
