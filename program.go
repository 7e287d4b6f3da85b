package main

import (
	"fmt"
	"io/ioutil"
	"log"
	"path/filepath"
	"strings"
	"time"

	"git.lost.host/meutraa/tiles/internal/audio"
	"git.lost.host/meutraa/tiles/internal/config"
	"git.lost.host/meutraa/tiles/internal/engine"
	"git.lost.host/meutraa/tiles/internal/game"
	"git.lost.host/meutraa/tiles/internal/input"
	"git.lost.host/meutraa/tiles/internal/render"
	"git.lost.host/meutraa/tiles/internal/sheet"
	"git.lost.host/meutraa/tiles/internal/theme"
	"github.com/eiannone/keyboard"
)

// Program wires the session engine to the terminal: the render loop is
// the tick source, key events come from an evdev device or the
// terminal, and the engine snapshot is drawn every frame.
type Program struct {
	Renderer *render.DefaultRenderer
	Theme    *theme.DefaultTheme
	Parser   *sheet.DefaultParser

	engine *engine.Engine
	ticker *frameTicker
	player audio.Player

	rawEvents  chan *input.Event
	termEvents <-chan keyboard.KeyEvent
	useEvdev   bool

	columns, rows int
}

// frameTicker gates Tick inside the render loop. Start and Stop are
// the engine's run/halt signal to its tick source.
type frameTicker struct {
	active bool
}

func (t *frameTicker) Start() { t.active = true }

func (t *frameTicker) Stop() { t.active = false }

func (p *Program) Init() error {
	// Ensure our Default implementations are used as interfaces
	p.Renderer = &render.DefaultRenderer{}
	p.Theme = &theme.DefaultTheme{}
	p.Parser = &sheet.DefaultParser{}
	p.ticker = &frameTicker{}

	columns, rows, err := p.Renderer.Size()
	if nil != err {
		return fmt.Errorf("unable to get terminal size: %w", err)
	}
	p.columns, p.rows = columns, rows

	if *config.NoteDir != "" {
		player := &audio.DefaultPlayer{}
		if err := player.Init(*config.NoteDir); nil != err {
			return err
		}
		p.player = player
	} else {
		p.player = &audio.NopPlayer{Notes: *config.NoteCount}
	}

	keys := make([]string, 0, len(*config.Keys))
	for _, r := range *config.Keys {
		keys = append(keys, strings.ToUpper(string(r)))
	}

	p.engine = engine.New(engine.Options{
		Keys:       keys,
		Height:     *config.Height,
		TileHeight: *config.TileHeight,
		Audio:      p.player,
		Ticker:     p.ticker,
		Parser:     p.Parser,
	})

	if *config.SheetFile != "" {
		data, err := ioutil.ReadFile(*config.SheetFile)
		if nil != err {
			return err
		}
		if err := p.engine.LoadSheet(data, filepath.Base(*config.SheetFile)); nil != err {
			log.Println("unable to load sheet:", err)
		}
	}

	if *config.Keyboard != "" {
		p.rawEvents = make(chan *input.Event, 128)
		if err := input.ReadInput(*config.Keyboard, p.rawEvents); nil != err {
			return err
		}
		p.useEvdev = true
	} else {
		events, err := keyboard.GetKeys(128)
		if nil != err {
			return fmt.Errorf("unable to open keyboard: %w", err)
		}
		p.termEvents = events
	}

	return p.Renderer.Init()
}

func (p *Program) Deinit() {
	if !p.useEvdev {
		if err := keyboard.Close(); nil != err {
			log.Println("unable to close keyboard:", err)
		}
	}
	if err := p.Renderer.Deinit(); nil != err {
		log.Println("unable to restore terminal:", err)
	}
}

func (p *Program) Run() {
	quit := false
	p.Renderer.RenderLoop(*config.FramePeriod, func(now time.Time) bool {
		p.handleInput(&quit)
		if quit {
			return false
		}
		if p.ticker.active {
			p.engine.Tick()
		}
		p.draw()
		return true
	})
}

func (p *Program) handleInput(quit *bool) {
	if p.useEvdev {
		for i := len(p.rawEvents); i > 0; i-- {
			ev := <-p.rawEvents
			switch {
			case ev.Key == "":
			case ev.Key == "ESC" && ev.Pressed:
				*quit = true
			case (ev.Key == "ENTER" || ev.Key == "SPACE") && ev.Pressed:
				if !p.engine.Snapshot().Running {
					p.engine.Restart()
				}
			case ev.Pressed:
				p.engine.KeyDown(ev.Key)
			case ev.Released:
				p.engine.KeyUp(ev.Key)
			}
		}
		return
	}

	for i := len(p.termEvents); i > 0; i-- {
		key := <-p.termEvents
		if nil != key.Err {
			log.Println("keyboard error:", key.Err)
			continue
		}
		if key.Key == keyboard.KeyEsc {
			*quit = true
			return
		}
		if key.Key == keyboard.KeyEnter || key.Key == keyboard.KeySpace {
			if !p.engine.Snapshot().Running {
				p.engine.Restart()
			}
			continue
		}
		// The terminal reports no key-up, so a release is synthesized
		// right after each press.
		id := strings.ToUpper(string(key.Rune))
		p.engine.KeyDown(id)
		p.engine.KeyUp(id)
	}
}

func (p *Program) draw() {
	s := p.engine.Snapshot()
	r := p.Renderer
	r.Clear()

	fieldRows := p.rows - 2
	if fieldRows < 1 {
		fieldRows = 1
	}
	laneWidth := p.columns / len(s.Lanes)
	tileRows := int(float64(fieldRows) * s.TileHeight / s.Height)
	if tileRows < 1 {
		tileRows = 1
	}

	for _, lane := range s.Lanes {
		col := lane.Column*laneWidth + laneWidth/2 - 2
		top := int(float64(fieldRows) * lane.Offset / s.Height)
		for row := top; row < top+tileRows; row++ {
			if row < 0 || row >= fieldRows {
				continue
			}
			r.Fill(row+1, col+1, p.Theme.RenderTile(lane.Column))
		}
	}

	for i, lane := range s.Lanes {
		col := i*laneWidth + laneWidth/2 - 2
		r.Fill(p.rows-1, col+1, p.Theme.RenderGuide(lane.Guide, lane.Key))
	}

	r.Fill(1, p.columns/2, p.Theme.RenderScore(s.Score))

	if !s.Running {
		p.drawMenu(s)
	}
}

func (p *Program) drawMenu(s game.Snapshot) {
	r := p.Renderer
	mid := p.rows / 2
	center := func(row int, msg string) {
		col := (p.columns - len(msg)) / 2
		if col < 1 {
			col = 1
		}
		r.Fill(row, col, msg)
	}

	center(mid-1, "Press enter to start")
	center(mid, fmt.Sprintf("Hiscore: %v", s.HighScore))
	if s.SheetName != "" {
		center(mid+1, "Loaded "+s.SheetName)
	} else {
		center(mid+1, "No sheet loaded")
	}
	center(mid+2, "Esc to quit")
}
