// Package replay records and replays matches as per-tick input streams.
// The simulation is integer-exact and has no randomness, so feeding the
// recorded inputs into a fresh game reproduces the match move for move.
package replay

import (
	"encoding/json"
	"fmt"

	"github.com/tavrin/tui-pong/internal/core"
)

// Bit positions for the recorded action mask. Only actions that influence
// the simulation are recorded; session-level keys (quit, restart) are not.
const (
	maskUp uint8 = 1 << iota
	maskDown
	maskPause
)

// Event is one player's non-empty input on one tick.
type Event struct {
	Tick   int   `json:"t"`
	Player int   `json:"p"`
	Mask   uint8 `json:"m"`
}

// Recording is a finished match: its length, outcome and the sparse list
// of input events that produced it.
type Recording struct {
	Ticks      int
	ScoreLeft  int
	ScoreRight int
	Winner     core.PlayerID
	Events     []Event
}

// EncodeEvents serializes the event list for storage.
func EncodeEvents(events []Event) ([]byte, error) {
	data, err := json.Marshal(events)
	if err != nil {
		return nil, fmt.Errorf("replay: cannot encode events: %w", err)
	}
	return data, nil
}

// DecodeEvents deserializes a stored event list.
func DecodeEvents(data []byte) ([]Event, error) {
	var events []Event
	if err := json.Unmarshal(data, &events); err != nil {
		return nil, fmt.Errorf("replay: cannot decode events: %w", err)
	}
	return events, nil
}

// EncodeFrame packs a player's input frame into a mask.
func EncodeFrame(f core.InputFrame) uint8 {
	var mask uint8
	if f.Has(core.ActionUp) {
		mask |= maskUp
	}
	if f.Has(core.ActionDown) {
		mask |= maskDown
	}
	if f.Has(core.ActionPause) {
		mask |= maskPause
	}
	return mask
}

// DecodeMask unpacks a mask into an input frame.
func DecodeMask(mask uint8) core.InputFrame {
	f := core.NewInputFrame()
	if mask&maskUp != 0 {
		f.Set(core.ActionUp)
	}
	if mask&maskDown != 0 {
		f.Set(core.ActionDown)
	}
	if mask&maskPause != 0 {
		f.Set(core.ActionPause)
	}
	return f
}

// Recorder captures the input stream of a live match.
type Recorder struct {
	events []Event
	ticks  int
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Capture records one tick's input. Empty frames cost nothing; only ticks
// with held intents produce events.
func (r *Recorder) Capture(in core.MultiInputFrame) {
	tick := r.ticks
	r.ticks++

	for _, id := range []core.PlayerID{core.Player1, core.Player2} {
		mask := EncodeFrame(in.Player(id))
		if mask == 0 {
			continue
		}
		r.events = append(r.events, Event{Tick: tick, Player: int(id), Mask: mask})
	}
}

// Ticks returns the number of ticks captured so far.
func (r *Recorder) Ticks() int {
	return r.ticks
}

// Finish seals the recording with the match outcome.
func (r *Recorder) Finish(state core.GameState) Recording {
	return Recording{
		Ticks:      r.ticks,
		ScoreLeft:  state.ScoreLeft,
		ScoreRight: state.ScoreRight,
		Winner:     state.Winner,
		Events:     r.events,
	}
}

// Playback feeds a recording back one tick at a time.
// Events are expected in capture order (ascending tick).
type Playback struct {
	rec  Recording
	next int
	tick int
}

// NewPlayback creates a playback cursor at the start of the recording.
func NewPlayback(rec Recording) *Playback {
	return &Playback{rec: rec}
}

// Frame returns the input frame for the current tick and advances.
func (p *Playback) Frame() core.MultiInputFrame {
	in := core.NewMultiInputFrame()
	for p.next < len(p.rec.Events) && p.rec.Events[p.next].Tick == p.tick {
		evt := p.rec.Events[p.next]
		in.SetPlayer(core.PlayerID(evt.Player), DecodeMask(evt.Mask))
		p.next++
	}
	p.tick++
	return in
}

// Done reports whether the recording has been fully replayed.
func (p *Playback) Done() bool {
	return p.tick >= p.rec.Ticks
}

// Progress returns the current tick and the recording's total length.
func (p *Playback) Progress() (tick, total int) {
	return p.tick, p.rec.Ticks
}
