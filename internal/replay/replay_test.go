package replay

import (
	"testing"

	"github.com/tavrin/tui-pong/internal/core"
	"github.com/tavrin/tui-pong/internal/games/pong"
)

func TestMaskRoundTrip(t *testing.T) {
	f := core.NewInputFrame()
	f.Set(core.ActionUp)
	f.Set(core.ActionPause)

	decoded := DecodeMask(EncodeFrame(f))

	if !decoded.Has(core.ActionUp) || !decoded.Has(core.ActionPause) {
		t.Error("mask round trip lost actions")
	}
	if decoded.Has(core.ActionDown) {
		t.Error("mask round trip invented an action")
	}
}

func TestRecorderSparseEvents(t *testing.T) {
	r := NewRecorder()

	r.Capture(core.NewMultiInputFrame()) // tick 0, nothing held

	in := core.NewMultiInputFrame()
	in.Set(core.Player1, core.ActionUp)
	r.Capture(in) // tick 1

	r.Capture(core.NewMultiInputFrame()) // tick 2

	if r.Ticks() != 3 {
		t.Errorf("Ticks() = %d, expected 3", r.Ticks())
	}

	rec := r.Finish(core.GameState{})
	if len(rec.Events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(rec.Events))
	}
	if rec.Events[0].Tick != 1 || rec.Events[0].Player != int(core.Player1) {
		t.Errorf("unexpected event %+v", rec.Events[0])
	}
}

func TestEventsEncodeDecode(t *testing.T) {
	events := []Event{
		{Tick: 0, Player: 1, Mask: maskUp},
		{Tick: 17, Player: 2, Mask: maskUp | maskDown},
	}

	data, err := EncodeEvents(events)
	if err != nil {
		t.Fatalf("EncodeEvents: %v", err)
	}

	decoded, err := DecodeEvents(data)
	if err != nil {
		t.Fatalf("DecodeEvents: %v", err)
	}
	if len(decoded) != len(events) {
		t.Fatalf("expected %d events, got %d", len(events), len(decoded))
	}
	for i := range events {
		if decoded[i] != events[i] {
			t.Errorf("event %d: got %+v, expected %+v", i, decoded[i], events[i])
		}
	}
}

func TestDecodeEventsRejectsGarbage(t *testing.T) {
	if _, err := DecodeEvents([]byte("not json")); err == nil {
		t.Error("expected an error for invalid data")
	}
}

// Recording a match and replaying it into a fresh game must land on the
// exact same state.
func TestPlaybackReproducesMatch(t *testing.T) {
	cfg := core.DefaultConfig()

	live := pong.New()
	live.Reset(cfg)
	rec := NewRecorder()

	for i := 0; i < 900 && !live.State().GameOver; i++ {
		in := core.NewMultiInputFrame()
		if i%5 == 0 {
			in.Set(core.Player1, core.ActionUp)
		}
		if i%9 == 0 {
			in.Set(core.Player2, core.ActionDown)
		}
		rec.Capture(in)
		live.Step(in)
	}
	recording := rec.Finish(live.State())

	replayed := pong.New()
	replayed.Reset(cfg)
	pb := NewPlayback(recording)
	for !pb.Done() {
		replayed.Step(pb.Frame())
	}

	if live.Snapshot() != replayed.Snapshot() {
		t.Errorf("replay diverged from the live match:\n live   %+v\n replay %+v",
			live.Snapshot(), replayed.Snapshot())
	}
}
