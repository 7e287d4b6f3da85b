package engine

import (
	"math/rand"
	"time"

	"git.lost.host/meutraa/tiles/internal/audio"
	"git.lost.host/meutraa/tiles/internal/game"
	"git.lost.host/meutraa/tiles/internal/sheet"
)

// Ticker is the frame source driving Tick. The engine stops it when a
// run ends and starts it again on restart.
type Ticker interface {
	Start()
	Stop()
}

type nopTicker struct{}

func (nopTicker) Start() {}
func (nopTicker) Stop()  {}

type Options struct {
	Keys       []string // one identifier per lane, in lane order
	Height     float64  // viewport height
	TileHeight float64
	Policy     game.SpeedPolicy
	Audio      audio.Player
	Ticker     Ticker
	Parser     sheet.Parser
	Seed       int64
}

// Engine holds one game session. All methods must be called from the
// same goroutine; the frame loop and key callbacks share it.
type Engine struct {
	keys   []string
	height float64
	tileH  float64
	policy game.SpeedPolicy
	audio  audio.Player
	ticker Ticker
	parser sheet.Parser
	rng    *rand.Rand

	lanes []game.Lane
	queue []game.PendingHit

	keysActive map[string]bool

	running        bool
	score          int
	highScore      int
	level          int
	active         int // lane currently designated to spawn
	keyHighlighted bool

	sheet *game.Sheet
}

func New(opts Options) *Engine {
	if len(opts.Keys) == 0 {
		opts.Keys = []string{"D", "F", "J", "K"}
	}
	if opts.Height == 0 {
		opts.Height = 450
	}
	if opts.TileHeight == 0 {
		opts.TileHeight = 150
	}
	if len(opts.Policy.Moves) == 0 {
		opts.Policy = game.DefaultSpeedPolicy()
	}
	if nil == opts.Audio {
		opts.Audio = &audio.NopPlayer{Notes: 24}
	}
	if nil == opts.Ticker {
		opts.Ticker = nopTicker{}
	}
	if nil == opts.Parser {
		opts.Parser = &sheet.DefaultParser{}
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}

	e := &Engine{
		keys:       opts.Keys,
		height:     opts.Height,
		tileH:      opts.TileHeight,
		policy:     opts.Policy,
		audio:      opts.Audio,
		ticker:     opts.Ticker,
		parser:     opts.Parser,
		rng:        rand.New(rand.NewSource(opts.Seed)),
		keysActive: map[string]bool{},
		lanes:      make([]game.Lane, len(opts.Keys)),

		// Cleared by the very first key release after construction.
		keyHighlighted: true,
	}
	for i := range e.lanes {
		e.lanes[i] = game.Lane{Index: i, Key: opts.Keys[i], Offset: -opts.TileHeight, Column: i}
	}
	return e
}

// Restart resets the session atomically and begins a new run. The
// first spawn happens on the first tick.
func (e *Engine) Restart() {
	for i := range e.lanes {
		e.lanes[i].Offset = -e.tileH
		e.lanes[i].Column = e.lanes[i].Index
		e.lanes[i].Guide = game.GuideIdle
	}
	e.score = 0
	e.level = 0
	e.active = 0
	e.running = true
	e.keyHighlighted = false
	e.queue = e.queue[:0]
	e.keysActive = map[string]bool{}
	e.ticker.Start()
}

// End stops the run. Safe to call when already ended; only the high
// score comparison repeats.
func (e *Engine) End() {
	e.running = false
	if e.score > e.highScore {
		e.highScore = e.score
	}
	e.ticker.Stop()
}

// LoadSheet validates and installs a note sheet. A failed parse also
// discards any previously loaded sheet.
func (e *Engine) LoadSheet(data []byte, name string) error {
	parsed, err := e.parser.Parse(data, name, e.audio.NoteCount())
	if nil != err {
		e.sheet = nil
		return err
	}
	e.sheet = parsed
	return nil
}

// Sheet returns the loaded sheet, or nil when none is loaded.
func (e *Engine) Sheet() *game.Sheet { return e.sheet }

// Snapshot copies the externally observable state for the renderer.
func (e *Engine) Snapshot() game.Snapshot {
	s := game.Snapshot{
		Running:    e.running,
		Score:      e.score,
		HighScore:  e.highScore,
		SpeedLevel: e.level,
		Height:     e.height,
		TileHeight: e.tileH,
		Lanes:      make([]game.LaneView, len(e.lanes)),
	}
	for i, lane := range e.lanes {
		s.Lanes[i] = game.LaneView{
			Key:    lane.Key,
			Offset: lane.Offset,
			Column: lane.Column,
			Guide:  lane.Guide,
		}
	}
	if nil != e.sheet {
		s.SheetName = e.sheet.Name
	}
	return s
}

func (e *Engine) laneFor(key string) int {
	for i, k := range e.keys {
		if k == key {
			return i
		}
	}
	return -1
}
