package input

import (
	"encoding/binary"
	"log"
	"os"
	"syscall"
)

// https://github.com/torvalds/linux/blob/master/include/uapi/linux/input-event-codes.h
const evKey = 0x01

// Key codes for the lane alphabet plus the menu keys.
var codeNames = map[uint16]string{
	1:  "ESC",
	28: "ENTER",
	32: "D",
	33: "F",
	36: "J",
	37: "K",
	57: "SPACE",
}

type keyEvent struct {
	Time  syscall.Timeval
	Type  uint16
	Code  uint16
	Value int32
}

// Event is one edge of a physical key: Pressed on the way down,
// Released on the way up. Key is empty for codes outside the mapped
// set; auto-repeat events are dropped at the source.
type Event struct {
	Pressed  bool
	Released bool
	Key      string
}

// ReadInput streams key edges from an evdev device node until the
// device read fails.
func ReadInput(kbd string, events chan *Event) error {
	file, err := os.Open(kbd)
	if err != nil {
		return err
	}
	go func() {
		defer file.Close()

		var ev keyEvent
		for {
			err = binary.Read(file, binary.LittleEndian, &ev)
			if nil != err {
				log.Println("unable to read keyboard input", err)
				return
			}
			if ev.Type != evKey || ev.Value > 1 {
				continue
			}
			events <- &Event{
				Pressed:  ev.Value == 1,
				Released: ev.Value == 0,
				Key:      codeNames[ev.Code],
			}
		}
	}()
	return nil
}
