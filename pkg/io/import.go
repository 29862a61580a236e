package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Event is one plottable match event in provider coordinates.
type Event struct {
	X, Y float64

	// EndX/EndY are set for events with a direction (passes, carries).
	EndX, EndY *float64

	// Value is an optional scalar (e.g. expected goals) mapped to marker
	// size or color.
	Value *float64

	// Label is optional annotation text.
	Label string
}

// HasEnd reports whether the event carries end coordinates.
func (e Event) HasEnd() bool {
	return e.EndX != nil && e.EndY != nil
}

type eventFile struct {
	Events []wireEvent `json:"events"`
}

type wireEvent struct {
	X     *float64 `json:"x"`
	Y     *float64 `json:"y"`
	EndX  *float64 `json:"end_x,omitempty"`
	EndY  *float64 `json:"end_y,omitempty"`
	Value *float64 `json:"value,omitempty"`
	Label string   `json:"label,omitempty"`
}

// ReadJSON decodes events from r.
//
// ReadJSON returns an error if:
//   - The JSON is malformed
//   - An event is missing x or y
//   - An event has only one of end_x and end_y
//
// Errors are wrapped with the index of the offending event.
// ReadJSON does not close r.
func ReadJSON(r io.Reader) ([]Event, error) {
	var data eventFile
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	events := make([]Event, len(data.Events))
	for i, we := range data.Events {
		if we.X == nil || we.Y == nil {
			return nil, fmt.Errorf("event %d: missing x or y", i)
		}
		if (we.EndX == nil) != (we.EndY == nil) {
			return nil, fmt.Errorf("event %d: end_x and end_y must be set together", i)
		}
		events[i] = Event{
			X:     *we.X,
			Y:     *we.Y,
			EndX:  we.EndX,
			EndY:  we.EndY,
			Value: we.Value,
			Label: we.Label,
		}
	}
	return events, nil
}

// ImportJSON reads an event file at path.
//
// ImportJSON opens the file, decodes it using [ReadJSON], and closes the
// file. Errors wrap the underlying cause with the file path for context.
func ImportJSON(path string) ([]Event, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}

// MarshalEvents encodes events back to the wire format. The pipeline hashes
// this to build cache keys, so the encoding must be deterministic.
func MarshalEvents(events []Event) ([]byte, error) {
	out := eventFile{Events: make([]wireEvent, len(events))}
	for i, e := range events {
		x, y := e.X, e.Y
		out.Events[i] = wireEvent{
			X:     &x,
			Y:     &y,
			EndX:  e.EndX,
			EndY:  e.EndY,
			Value: e.Value,
			Label: e.Label,
		}
	}
	return json.Marshal(out)
}
