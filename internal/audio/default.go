package audio

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path"
	"path/filepath"
	"sort"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/vorbis"
	"github.com/faiface/beep/wav"
)

// DefaultPlayer preloads every note file found under a directory so a
// Play is a buffer replay rather than a decode. Files are ordered by
// name, so a prefix like "01_c6.wav".."24_b7.wav" lands the scale at
// indices 0..23.
type DefaultPlayer struct {
	buffers []*beep.Buffer
}

func (p *DefaultPlayer) Init(dir string) error {
	var files []string
	if err := filepath.Walk(dir, func(fp string, info os.FileInfo, err error) error {
		if nil != err {
			return err
		}
		switch path.Ext(info.Name()) {
		case ".wav", ".mp3", ".ogg":
			files = append(files, fp)
		}
		return nil
	}); nil != err {
		return fmt.Errorf("unable to walk note directory: %w", err)
	}
	sort.Strings(files)

	var sampleRate beep.SampleRate
	for _, fp := range files {
		f, err := os.Open(fp)
		if nil != err {
			return err
		}
		var streamer beep.StreamSeekCloser
		var format beep.Format
		switch path.Ext(fp) {
		case ".mp3":
			streamer, format, err = mp3.Decode(f)
		case ".ogg":
			streamer, format, err = vorbis.Decode(f)
		default:
			streamer, format, err = wav.Decode(f)
		}
		if nil != err {
			f.Close()
			return fmt.Errorf("unable to decode %v: %w", fp, err)
		}
		if sampleRate == 0 {
			sampleRate = format.SampleRate
			if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); nil != err {
				streamer.Close()
				return err
			}
		}
		buffer := beep.NewBuffer(format)
		buffer.Append(streamer)
		streamer.Close()
		p.buffers = append(p.buffers, buffer)
	}

	if len(p.buffers) == 0 {
		return errors.New("no .wav/.mp3/.ogg note files found in " + dir)
	}
	return nil
}

// Play replays a preloaded note. An out-of-range index is dropped with
// a log line; the engine validates sheets before they get here.
func (p *DefaultPlayer) Play(note int) {
	if note < 0 || note >= len(p.buffers) {
		log.Println("note index out of range:", note)
		return
	}
	buffer := p.buffers[note]
	speaker.Play(buffer.Streamer(0, buffer.Len()))
}

func (p *DefaultPlayer) NoteCount() int { return len(p.buffers) }
