package audit

import (
	"encoding/json"
	"testing"
	"time"

	"confdesk/core/store"
)

type label string

func (l label) String() string { return "label:" + string(l) }

func TestSanitizeConvertsDatesAndTimes(t *testing.T) {
	due := store.MustParseDate("2026-04-08")
	at := time.Date(2026, 4, 8, 1, 2, 3, 0, time.FixedZone("KST", 9*3600))
	got := Sanitize(map[string]any{
		"due":      &due,
		"start":    (*store.Date)(nil),
		"updated":  at,
		"count":    3,
		"nested":   map[string]any{"when": due},
		"sequence": []any{due, "x", nil},
	}).(map[string]any)
	if got["due"] != "2026-04-08" {
		t.Fatalf("due: %#v", got["due"])
	}
	if got["start"] != nil {
		t.Fatalf("start: %#v", got["start"])
	}
	if got["updated"] != "2026-04-07T16:02:03Z" {
		t.Fatalf("updated: %#v", got["updated"])
	}
	if got["count"] != 3 {
		t.Fatalf("count: %#v", got["count"])
	}
	if got["nested"].(map[string]any)["when"] != "2026-04-08" {
		t.Fatalf("nested: %#v", got["nested"])
	}
	seq := got["sequence"].([]any)
	if seq[0] != "2026-04-08" || seq[1] != "x" || seq[2] != nil {
		t.Fatalf("sequence: %#v", seq)
	}
}

func TestSanitizeStringifiesUnknownValues(t *testing.T) {
	if got := Sanitize(label("chair")); got != "chair" {
		t.Fatalf("string kinds pass through as strings, got %#v", got)
	}
	type pair struct{ A, B int }
	if got := Sanitize(pair{1, 2}); got != "{1 2}" {
		t.Fatalf("struct: %#v", got)
	}
	name := "Kim"
	if got := Sanitize(&name); got != "Kim" {
		t.Fatalf("pointer: %#v", got)
	}
	if got := Sanitize([]int64{1, 2}); len(got.([]any)) != 2 {
		t.Fatalf("typed slice: %#v", got)
	}
}

func TestEncodeTaskSnapshot(t *testing.T) {
	due := store.MustParseDate("2026-03-01")
	task := &store.Task{ID: 7, ConferenceID: 1, TaskGroup: "PLAN", Name: "Kickoff", Status: "todo", Priority: "med", DueDate: &due}
	raw, err := Encode(task.Snapshot())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		t.Fatalf("decode %s: %v", raw, err)
	}
	if decoded["due_date"] != "2026-03-01" || decoded["start_date"] != nil || decoded["description"] != nil {
		t.Fatalf("unexpected snapshot %s", raw)
	}
	if decoded["status"] != "todo" {
		t.Fatalf("unexpected status in %s", raw)
	}
}

func TestEncodeNilIsEmptyObject(t *testing.T) {
	raw, err := Encode(nil)
	if err != nil || raw != "{}" {
		t.Fatalf("got %q %v", raw, err)
	}
}
