package display

import (
	"fmt"
	"time"
	"unicode/utf8"

	"go.bug.st/serial"

	"github.com/miljank/artemis/internal/debug"
)

// DefaultPort is the serial device the TextStar module is wired to on
// the Raspberry Pi header.
const DefaultPort = "/dev/ttyAMA0"

const (
	textstarBaud = 9600

	// TextStar command bytes: 0xFE <cmd> <args...>
	cmdEscape    = 0xFE
	cmdCursorPos = 'P' // 0xFE 'P' <row> <col>
)

// TextStar drives a TextStar CW-LCD-02 16x2 serial display with four
// front keys. Text is written through cursor-positioning commands; the
// module sends one byte per key event: 'A'-'D' on press, 'a'-'d' on
// release.
type TextStar struct {
	port serial.Port
	buf  [1]byte
}

// OpenTextStar opens the display on the given serial device (9600 8N1).
func OpenTextStar(device string) (*TextStar, error) {
	mode := &serial.Mode{
		BaudRate: textstarBaud,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}

	port, err := serial.Open(device, mode)
	if err != nil {
		return nil, fmt.Errorf("open display port %s: %w", device, err)
	}

	// Reads must return quickly whether or not a key event arrived,
	// so the key-polling loop keeps its bounded period.
	if err := port.SetReadTimeout(10 * time.Millisecond); err != nil {
		_ = port.Close()
		return nil, fmt.Errorf("set display read timeout: %w", err)
	}

	debug.Info("TextStar display opened on %s", device)

	return &TextStar{port: port}, nil
}

func (t *TextStar) Show(lines []string) error {
	for i, line := range lines {
		if i >= Lines {
			break
		}
		if _, err := t.port.Write([]byte{cmdEscape, cmdCursorPos, byte(i + 1), 1}); err != nil {
			return fmt.Errorf("position cursor: %w", err)
		}
		if _, err := t.port.Write([]byte(padLine(line))); err != nil {
			return fmt.Errorf("write line %d: %w", i+1, err)
		}
	}
	return nil
}

// PollKey reads at most one pending key event. The module sends an
// uppercase byte on press and the lowercase byte on release. Read
// errors and unknown bytes are treated as "no key": the caller
// retries on its next poll.
func (t *TextStar) PollKey() (KeyEvent, bool) {
	n, err := t.port.Read(t.buf[:])
	if err != nil {
		debug.Trace("display read error: %v", err)
		return KeyEvent{}, false
	}
	if n == 0 {
		return KeyEvent{}, false
	}

	b := t.buf[0]
	switch {
	case b >= 'A' && b <= 'D': // key press
		debug.Trace("display key down: %c", b)
		return KeyEvent{Key: Key(b), Pressed: true}, true
	case b >= 'a' && b <= 'd': // key release
		debug.Trace("display key up: %c", b)
		return KeyEvent{Key: Key(b - 'a' + 'A')}, true
	}

	debug.Trace("display ignoring byte 0x%02x", b)
	return KeyEvent{}, false
}

func (t *TextStar) Close() error {
	return t.port.Close()
}

// padLine pads or truncates a line to the panel width, counted in
// characters rather than bytes.
func padLine(s string) string {
	if utf8.RuneCountInString(s) > Width {
		return string([]rune(s)[:Width])
	}
	for n := utf8.RuneCountInString(s); n < Width; n++ {
		s += " "
	}
	return s
}
