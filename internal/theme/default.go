package theme

import (
	"fmt"
	"strconv"

	"git.lost.host/meutraa/tiles/internal/game"
)

type DefaultTheme struct {
}

type color struct {
	R, G, B uint8
}

const tileSym = "████"

var (
	tileColors = [...]color{
		{236, 30, 0},  // column 0 red
		{0, 118, 236}, // column 1 blue
		{236, 195, 0}, // column 2 yellow
		{0, 236, 128}, // column 3 green
	}
	guideColors = map[game.Guide]color{
		game.GuideIdle: {211, 211, 211},
		game.GuideHeld: {128, 128, 128},
		game.GuideFail: {236, 30, 0},
	}
)

func (t *DefaultTheme) RenderTile(column int) string {
	c := tileColors[column%len(tileColors)]
	return fmt.Sprintf("\033[38;2;%v;%v;%vm%v\033[0m", c.R, c.G, c.B, tileSym)
}

func (t *DefaultTheme) RenderGuide(guide game.Guide, key string) string {
	c, ok := guideColors[guide]
	if !ok {
		c = guideColors[game.GuideIdle]
	}
	return fmt.Sprintf("\033[38;2;%v;%v;%vm[ %v ]\033[0m", c.R, c.G, c.B, key)
}

func (t *DefaultTheme) RenderScore(score int) string {
	return "\033[1m" + strconv.Itoa(score) + "\033[0m"
}
