package theme

import "git.lost.host/meutraa/tiles/internal/game"

type Theme interface {
	RenderTile(column int) string
	RenderGuide(guide game.Guide, key string) string
	RenderScore(score int) string
}
