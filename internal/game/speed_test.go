package game

import "testing"

var levelTests = map[int]int{
	0:   0,
	9:   0,
	10:  1,
	24:  1,
	25:  2,
	44:  2,
	45:  3,
	74:  3,
	75:  4,
	109: 4,
	110: 4,
	500: 4,
}

func TestLevelFor(t *testing.T) {
	p := DefaultSpeedPolicy()
	level := 0
	for score := 0; score <= 500; score++ {
		level = p.LevelFor(score, level)
		expected, ok := levelTests[score]
		if ok && level != expected {
			t.Log("   Score:", score)
			t.Log("   Level:", level)
			t.Log("Expected:", expected)
			t.Fail()
		}
	}
}

func TestLevelForMonotonic(t *testing.T) {
	p := DefaultSpeedPolicy()
	level := 0
	for score := 0; score <= 1000; score++ {
		next := p.LevelFor(score, level)
		if next < level {
			t.Log("level dropped from", level, "to", next, "at score", score)
			t.Fail()
		}
		if next > len(p.Moves)-1 {
			t.Log("level", next, "exceeds top tier at score", score)
			t.Fail()
		}
		level = next
	}
}

func TestMoveClamp(t *testing.T) {
	p := DefaultSpeedPolicy()
	if p.Move(-1) != p.Moves[0] {
		t.Fail()
	}
	if p.Move(len(p.Moves)) != p.Moves[len(p.Moves)-1] {
		t.Fail()
	}
	for i, m := range p.Moves {
		if p.Move(i) != m {
			t.Fail()
		}
	}
}
