package sheet

import (
	"fmt"
	"strconv"
	"strings"

	"git.lost.host/meutraa/tiles/internal/game"
)

type DefaultParser struct{}

// Parse decodes a note sheet: base-10 note indices joined by literal
// single spaces. The whole load is rejected on the first token that
// fails to parse or falls outside [0, noteCount); no valid prefix is
// kept.
func (p *DefaultParser) Parse(data []byte, name string, noteCount int) (*game.Sheet, error) {
	tokens := strings.Split(string(data), " ")
	notes := make([]int, 0, len(tokens))
	for i, token := range tokens {
		note, err := strconv.Atoi(token)
		if nil != err {
			return nil, fmt.Errorf("sheet %v: token %v %q: %w", name, i, token, err)
		}
		if note < 0 || note >= noteCount {
			return nil, fmt.Errorf("sheet %v: token %v: note %v outside [0, %v)", name, i, note, noteCount)
		}
		notes = append(notes, note)
	}
	return &game.Sheet{Name: name, Notes: notes}, nil
}
