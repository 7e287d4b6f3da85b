package audio

// Player is the playback collaborator. Play receives a note index the
// engine has already validated against NoteCount.
type Player interface {
	Play(note int)
	NoteCount() int
}

// NopPlayer is a silent Player for headless runs and tests. Its note
// range still constrains sheet validation.
type NopPlayer struct {
	Notes int
}

func (p *NopPlayer) Play(note int) {}

func (p *NopPlayer) NoteCount() int { return p.Notes }
