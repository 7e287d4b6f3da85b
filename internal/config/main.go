package config

import (
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	Keys        = kingpin.Flag("keys", "Lane keys in column order").Default("DFJK").Short('k').String()
	NoteDir     = kingpin.Flag("notes", "Directory of note audio files (.wav/.mp3/.ogg)").Short('n').String()
	SheetFile   = kingpin.Flag("sheet", "Note sheet file to load at startup").Short('s').String()
	Keyboard    = kingpin.Flag("keyboard", "evdev device for raw press/release input").Short('K').String()
	FramePeriod = kingpin.Flag("frame-period", "Render frame period").Default("16ms").Short('p').Duration()
	Height      = kingpin.Flag("height", "Playfield height").Default("450").Float64()
	TileHeight  = kingpin.Flag("tile-height", "Tile height").Default("150").Float64()
	NoteCount   = kingpin.Flag("note-count", "Sheet note range when running without audio").Default("24").Int()
)

func init() {
	kingpin.Version("0.1.0")
	kingpin.Parse()
}
