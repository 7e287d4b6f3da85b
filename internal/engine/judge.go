package engine

import "git.lost.host/meutraa/tiles/internal/game"

// KeyDown feeds the leading edge of a physical key press. Repeats
// delivered while the key is held are dropped. The oldest pending hit
// is judged regardless of which tile is visually closest; a wrong lane
// consumes the entry and ends the run.
func (e *Engine) KeyDown(key string) {
	if e.keysActive[key] {
		return
	}
	e.keysActive[key] = true

	if !e.running {
		return
	}
	pos := e.laneFor(key)
	if pos < 0 {
		return
	}
	e.lanes[pos].Guide = game.GuideHeld

	if len(e.queue) == 0 {
		return
	}
	hit := e.queue[0]
	e.queue = e.queue[1:]
	if hit.Target == pos {
		e.lanes[hit.Lane].Offset = -e.tileH
		e.score++
	} else {
		e.End()
	}
}

// KeyUp feeds a key release. The release right after a run ends paints
// the fail indicator on that key's lane; during a run the idle
// indicator is restored. The very first release after construction
// only consumes the initial highlight flag. When a sheet is loaded the
// release also plays the note at (score-1) mod len(sheet) — a score of
// 0 wraps to the last entry, which callers rely on.
func (e *Engine) KeyUp(key string) {
	delete(e.keysActive, key)

	pos := e.laneFor(key)
	if pos < 0 {
		return
	}

	if e.keyHighlighted {
		e.keyHighlighted = false
		return
	}

	if e.running {
		e.lanes[pos].Guide = game.GuideIdle
	} else {
		e.lanes[pos].Guide = game.GuideFail
		e.keyHighlighted = true
	}

	if nil != e.sheet && len(e.sheet.Notes) > 0 {
		n := len(e.sheet.Notes)
		index := ((e.score-1)%n + n) % n
		e.audio.Play(e.sheet.Notes[index])
	}
}
