package sheet

import "git.lost.host/meutraa/tiles/internal/game"

type Parser interface {
	Parse(data []byte, name string, noteCount int) (*game.Sheet, error)
}
