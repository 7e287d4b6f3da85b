package render

import "time"

type Renderer interface {
	Init() error
	Deinit() error
	Size() (columns, rows int, err error)
	RenderLoop(framePeriod time.Duration, render func(now time.Time) bool)
	Clear()
	Fill(row, column int, message string)
}
