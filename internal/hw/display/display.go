package display

import "sync"

// Key identifies one of the four panel keys next to the LCD.
type Key byte

const (
	KeyA Key = 'A'
	KeyB Key = 'B'
	KeyC Key = 'C'
	KeyD Key = 'D'
)

// Display geometry of the operator panel.
const (
	Width = 16 // characters per line
	Lines = 2
)

// KeyEvent is one key transition reported by the panel. The panel
// sends one event on press and one on release; both carry the same
// Key and differ only in Pressed.
type KeyEvent struct {
	Key     Key
	Pressed bool
}

// Display defines the abstract interface for the operator panel:
// a small character display with a few keys. This allows plugging in
// the real TextStar serial module or a mock for development on PC.
type Display interface {
	// Show renders the given text lines, top to bottom. Lines beyond
	// the panel height are ignored; short lines are padded.
	Show(lines []string) error

	// PollKey returns the next pending key event, if any. It never
	// blocks beyond a short bounded read.
	PollKey() (KeyEvent, bool)
}

// Mock is a scripted Display for development and tests. It records
// every Show call and feeds back a pre-loaded sequence of poll results.
type Mock struct {
	mu     sync.Mutex
	frames [][]string
	polls  []mockPoll
}

type mockPoll struct {
	ev      KeyEvent
	present bool
}

// QueueKey appends a key press to the poll script.
func (m *Mock) QueueKey(k Key) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.polls = append(m.polls, mockPoll{ev: KeyEvent{Key: k, Pressed: true}, present: true})
}

// QueueRelease appends a key release to the poll script.
func (m *Mock) QueueRelease(k Key) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.polls = append(m.polls, mockPoll{ev: KeyEvent{Key: k}, present: true})
}

// QueueNone appends an empty poll (no key event) to the script.
func (m *Mock) QueueNone() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.polls = append(m.polls, mockPoll{})
}

func (m *Mock) Show(lines []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	frame := make([]string, len(lines))
	copy(frame, lines)
	m.frames = append(m.frames, frame)
	return nil
}

func (m *Mock) PollKey() (KeyEvent, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.polls) == 0 {
		return KeyEvent{}, false
	}
	p := m.polls[0]
	m.polls = m.polls[1:]
	return p.ev, p.present
}

// ShowCount returns how many times Show was called.
func (m *Mock) ShowCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.frames)
}

// LastFrame returns the lines of the most recent Show call, or nil.
func (m *Mock) LastFrame() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.frames) == 0 {
		return nil
	}
	return m.frames[len(m.frames)-1]
}

// Frames returns all recorded Show calls.
func (m *Mock) Frames() [][]string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([][]string, len(m.frames))
	copy(out, m.frames)
	return out
}
