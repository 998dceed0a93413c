package journal

import (
	"path/filepath"
	"testing"
)

func openTestJournal(t *testing.T) *Journal {
	t.Helper()
	j, err := Open(":memory:")
	if err != nil {
		t.Fatalf("open journal: %v", err)
	}
	t.Cleanup(func() { j.Close() })
	return j
}

func TestRecordAndRecent(t *testing.T) {
	j := openTestJournal(t)

	steps := []string{"conspire", "stage1", "stage2"}
	for _, step := range steps {
		if err := j.Record("mission-1", step, "detail for "+step); err != nil {
			t.Fatalf("record %s: %v", step, err)
		}
	}

	events, err := j.Recent(10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("unexpected event count: got %d, want 3", len(events))
	}

	// Newest first.
	if events[0].Step != "stage2" || events[2].Step != "conspire" {
		t.Fatalf("unexpected ordering: %v", events)
	}
	for _, e := range events {
		if e.MissionID != "mission-1" {
			t.Errorf("unexpected mission id: %q", e.MissionID)
		}
		if e.At.IsZero() {
			t.Error("event timestamp missing")
		}
	}
}

func TestRecentHonorsLimit(t *testing.T) {
	j := openTestJournal(t)

	for i := 0; i < 5; i++ {
		if err := j.Record("mission-1", "step", ""); err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	events, err := j.Recent(2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("unexpected event count: got %d, want 2", len(events))
	}
}

func TestMissionFiltersAndOrdersOldestFirst(t *testing.T) {
	j := openTestJournal(t)

	if err := j.Record("mission-1", "conspire", ""); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := j.Record("mission-2", "stage1", ""); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := j.Record("mission-1", "stage2", ""); err != nil {
		t.Fatalf("record: %v", err)
	}

	events, err := j.Mission("mission-1")
	if err != nil {
		t.Fatalf("mission: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("unexpected event count: got %d, want 2", len(events))
	}
	if events[0].Step != "conspire" || events[1].Step != "stage2" {
		t.Fatalf("unexpected ordering: %v", events)
	}
}

func TestOpenCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "journal.db")
	j, err := Open(path)
	if err != nil {
		t.Fatalf("open journal: %v", err)
	}
	defer j.Close()

	if err := j.Record("mission-1", "conspire", ""); err != nil {
		t.Fatalf("record: %v", err)
	}
	events, err := j.Recent(1)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("unexpected event count: got %d, want 1", len(events))
	}
}
