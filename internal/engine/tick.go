package engine

import "git.lost.host/meutraa/tiles/internal/game"

// Tick advances the run by one frame. The loss check runs before any
// movement so a tile sitting at the boundary is caught without being
// advanced further. Exactly one lane is designated to spawn; it defers
// spawning until its previous tile has fully cleared the top of the
// viewport or been resolved.
func (e *Engine) Tick() {
	if !e.running {
		return
	}

	for i := range e.lanes {
		if e.lanes[i].Offset >= e.height {
			e.End()
			return
		}
	}

	for i := range e.lanes {
		lane := &e.lanes[i]
		if lane.Offset > -e.tileH || i == e.active {
			if i == e.active && (lane.Offset >= 0 || len(e.queue) == 0) {
				e.spawn()
				continue
			}
			lane.Offset += e.policy.Move(e.level)
		}
	}
}

// spawn rotates the active-spawn designation to the next lane and, if
// that lane is parked, queues a tile there. The target key column is
// rolled uniformly and need not match the spawning lane; the lane is
// slid to the target's column so the tile appears where the rolled key
// sits.
func (e *Engine) spawn() {
	next := (e.active + 1) % len(e.lanes)
	if e.lanes[next].Offset <= -e.tileH {
		e.active = next
		target := e.rng.Intn(len(e.lanes))
		e.lanes[next].Column = target
		e.queue = append(e.queue, game.PendingHit{Target: target, Lane: next})
		e.level = e.policy.LevelFor(e.score, e.level)
	}
}
