package game

// Guide is the visual state of a lane's key indicator.
type Guide int

const (
	GuideIdle Guide = iota
	GuideHeld // key currently depressed during a run
	GuideFail // key released right after the run ended
)

// Lane is one of the fixed vertical tracks a tile scrolls down.
// Offset is the top edge of the lane's tile: a parked lane sits at
// -TileHeight, [0, H) is on screen, and >= H means the tile scrolled
// past the hit zone unresolved.
type Lane struct {
	Index  int
	Key    string
	Offset float64
	Column int // x slot assigned at spawn, decoupled from Index
	Guide  Guide
}

// PendingHit records a spawned tile awaiting resolution. Target is the
// key index the player must press, Lane the lane whose tile parks on a
// correct hit. The two differ whenever the spawn roll lands on another
// column.
type PendingHit struct {
	Target int
	Lane   int
}
