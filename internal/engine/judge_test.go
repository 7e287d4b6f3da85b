package engine

import (
	"testing"

	"git.lost.host/meutraa/tiles/internal/game"
)

func TestCorrectHit(t *testing.T) {
	e := newTestEngine()
	e.Restart()
	e.lanes[1].Offset = 10
	e.queue = []game.PendingHit{{Target: 2, Lane: 1}}

	e.KeyDown("J")

	if e.score != 1 || !e.running {
		t.Log("score:", e.score, "running:", e.running)
		t.Fail()
	}
	if e.lanes[1].Offset != -e.tileH {
		t.Log("hit tile not parked:", e.lanes[1].Offset)
		t.Fail()
	}
	if len(e.queue) != 0 {
		t.Log("queue:", e.queue)
		t.Fail()
	}
}

func TestWrongKeyEndsRun(t *testing.T) {
	e := newTestEngine()
	e.Restart()
	e.lanes[1].Offset = 10
	e.queue = []game.PendingHit{{Target: 2, Lane: 1}}

	e.KeyDown("J")
	e.queue = []game.PendingHit{{Target: 2, Lane: 2}}
	e.KeyDown("D")

	if e.running {
		t.Fatal("run survived a wrong-lane press")
	}
	if len(e.queue) != 0 {
		t.Log("mismatch must still consume the entry:", e.queue)
		t.Fail()
	}
	if e.highScore != 1 {
		t.Log("highScore:", e.highScore)
		t.Fail()
	}
}

func TestHeldKeyFiresOnce(t *testing.T) {
	e := newTestEngine()
	e.Restart()
	e.queue = []game.PendingHit{{Target: 0, Lane: 0}, {Target: 0, Lane: 0}}

	e.KeyDown("D")
	e.KeyDown("D")
	if e.score != 1 || len(e.queue) != 1 {
		t.Log("score:", e.score, "queue:", e.queue)
		t.Fail()
	}

	e.KeyUp("D")
	e.KeyDown("D")
	if e.score != 2 || len(e.queue) != 0 {
		t.Log("score:", e.score, "queue:", e.queue)
		t.Fail()
	}
}

func TestUnmappedKeyIgnored(t *testing.T) {
	e := newTestEngine()
	e.Restart()
	e.queue = []game.PendingHit{{Target: 0, Lane: 0}}

	e.KeyDown("Q")
	if e.score != 0 || len(e.queue) != 1 || !e.running {
		t.Log("score:", e.score, "queue:", e.queue, "running:", e.running)
		t.Fail()
	}
	if !e.keysActive["Q"] {
		t.Log("press not tracked for debounce")
		t.Fail()
	}
	e.KeyUp("Q")
	if e.keysActive["Q"] {
		t.Fail()
	}
}

func TestPressWithEmptyQueue(t *testing.T) {
	e := newTestEngine()
	e.Restart()
	e.KeyDown("D")
	if e.score != 0 || !e.running {
		t.Log("score:", e.score, "running:", e.running)
		t.Fail()
	}
	if e.lanes[0].Guide != game.GuideHeld {
		t.Log("guide:", e.lanes[0].Guide)
		t.Fail()
	}
}

func TestPressWhileEnded(t *testing.T) {
	e := newTestEngine()
	e.Restart()
	e.queue = []game.PendingHit{{Target: 0, Lane: 0}}
	e.End()
	e.KeyDown("D")
	if e.score != 0 || len(e.queue) != 1 {
		t.Log("score:", e.score, "queue:", e.queue)
		t.Fail()
	}
}

func TestFirstReleaseOnlyClearsHighlight(t *testing.T) {
	player := &recordPlayer{}
	e := New(Options{Seed: 1, Audio: player})
	if err := e.LoadSheet([]byte("5 3 8"), "notes.txt"); nil != err {
		t.Fatal(err)
	}

	e.KeyUp("D")
	if e.keyHighlighted {
		t.Fatal("initial highlight flag not cleared")
	}
	if len(player.notes) != 0 {
		t.Log("first release must have no other effects:", player.notes)
		t.Fail()
	}
	if e.lanes[0].Guide != game.GuideIdle {
		t.Log("guide:", e.lanes[0].Guide)
		t.Fail()
	}
}

func TestFailIndicatorAfterEnd(t *testing.T) {
	e := newTestEngine()
	e.Restart()
	e.End()

	e.KeyUp("F")
	if e.lanes[1].Guide != game.GuideFail {
		t.Log("guide:", e.lanes[1].Guide)
		t.Fail()
	}
	if !e.keyHighlighted {
		t.Fatal("highlight flag not set by the fail indicator")
	}

	// The next release only consumes the flag again.
	e.KeyUp("J")
	if e.lanes[2].Guide != game.GuideIdle {
		t.Log("guide:", e.lanes[2].Guide)
		t.Fail()
	}
}

func TestReleaseRestoresIdleGuide(t *testing.T) {
	e := newTestEngine()
	e.Restart()
	e.KeyDown("K")
	if e.lanes[3].Guide != game.GuideHeld {
		t.Fatal("guide:", e.lanes[3].Guide)
	}
	e.KeyUp("K")
	if e.lanes[3].Guide != game.GuideIdle {
		t.Log("guide:", e.lanes[3].Guide)
		t.Fail()
	}
}

func TestSheetPlaybackIndex(t *testing.T) {
	player := &recordPlayer{}
	e := New(Options{Seed: 1, Audio: player})
	if err := e.LoadSheet([]byte("5 3 8"), "notes.txt"); nil != err {
		t.Fatal(err)
	}
	e.Restart()

	// Score 0 wraps (0-1) mod 3 to the last entry. Inherited quirk,
	// kept on purpose.
	e.KeyUp("D")
	// Score 1 plays (1-1) mod 3 = entry 0.
	e.score = 1
	e.KeyUp("D")
	// Score 4 plays (4-1) mod 3 = entry 0 again.
	e.score = 4
	e.KeyUp("D")

	expected := []int{8, 5, 5}
	if len(player.notes) != len(expected) {
		t.Fatal("played:", player.notes)
	}
	for i, note := range expected {
		if player.notes[i] != note {
			t.Log("  Played:", player.notes)
			t.Log("Expected:", expected)
			t.Fail()
			break
		}
	}
}

func TestNoPlaybackWithoutSheet(t *testing.T) {
	player := &recordPlayer{}
	e := New(Options{Seed: 1, Audio: player})
	e.Restart()
	e.KeyUp("D")
	if len(player.notes) != 0 {
		t.Log("played without a sheet:", player.notes)
		t.Fail()
	}
}
