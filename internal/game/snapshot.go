package game

// LaneView is the render-facing copy of a Lane.
type LaneView struct {
	Key    string
	Offset float64
	Column int
	Guide  Guide
}

// Snapshot is an immutable view of one session. The renderer polls it
// every frame and never writes back.
type Snapshot struct {
	Running    bool
	Score      int
	HighScore  int
	SpeedLevel int
	Height     float64
	TileHeight float64
	Lanes      []LaneView
	SheetName  string // empty when no sheet is loaded
}
