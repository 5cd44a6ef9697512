package storage

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"vikarfaktura/shift"
)

func openTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	store, err := OpenSQLite(filepath.Join(t.TempDir(), "staging.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSaveAndLoadBatch(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)

	batch := StagedBatch{
		ID:                  "batch-1",
		RowsRead:            5,
		VendorRows:          1,
		ZeroHourRows:        2,
		UnknownCategoryRows: 1,
		Lines: []shift.Line{
			{
				Date:        time.Date(2025, 4, 7, 0, 0, 0, 0, time.Local),
				Employee:    "Anne Jensen",
				TimeRange:   "07:00-15:00",
				Hours:       7.5,
				RawCategory: "Hjælper",
				Category:    shift.CategoryHelper,
				Bucket:      "herlev",
				RawLocation: "Plejecenter Herlev",
			},
			{
				Date:        time.Date(2025, 4, 8, 0, 0, 0, 0, time.Local),
				Employee:    "Bo Larsen",
				TimeRange:   "15:00-23:00",
				Hours:       8,
				RawCategory: "Assistent",
				Category:    shift.CategoryAssistant,
				Bucket:      "ringsted",
				RawLocation: "Hos Kirsten, Ringsted",
			},
		},
	}

	if err := store.SaveBatch(batch); err != nil {
		t.Fatalf("save batch: %v", err)
	}

	loaded, err := store.LoadBatch("batch-1")
	if err != nil {
		t.Fatalf("load batch: %v", err)
	}
	if loaded.RowsRead != 5 || loaded.VendorRows != 1 || loaded.ZeroHourRows != 2 || loaded.UnknownCategoryRows != 1 {
		t.Fatalf("unexpected counters: %+v", loaded)
	}
	if len(loaded.Lines) != 2 {
		t.Fatalf("want 2 lines, got %d", len(loaded.Lines))
	}

	first := loaded.Lines[0]
	if first.Employee != "Anne Jensen" || first.TimeRange != "07:00-15:00" || first.Hours != 7.5 {
		t.Fatalf("unexpected first line: %+v", first)
	}
	if first.Category != shift.CategoryHelper || first.Bucket != "herlev" {
		t.Fatalf("unexpected first line mapping: %+v", first)
	}
	if !first.Date.Equal(time.Date(2025, 4, 7, 0, 0, 0, 0, time.Local)) {
		t.Fatalf("unexpected first line date: %v", first.Date)
	}
	if loaded.Lines[1].RawLocation != "Hos Kirsten, Ringsted" {
		t.Fatalf("raw location must round-trip, got %q", loaded.Lines[1].RawLocation)
	}
}

func TestLoadBatch_NotFound(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)

	_, err := store.LoadBatch("missing")
	if !errors.Is(err, ErrBatchNotFound) {
		t.Fatalf("want ErrBatchNotFound, got %v", err)
	}
}

func TestDeleteBatch(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)

	batch := StagedBatch{
		ID: "batch-2",
		Lines: []shift.Line{
			{
				Date:        time.Date(2025, 4, 7, 0, 0, 0, 0, time.Local),
				Employee:    "Anne Jensen",
				TimeRange:   "07:00-15:00",
				Hours:       8,
				RawCategory: "Hjælper",
				Category:    shift.CategoryHelper,
				Bucket:      "herlev",
				RawLocation: "Plejecenter Herlev",
			},
		},
	}
	if err := store.SaveBatch(batch); err != nil {
		t.Fatalf("save batch: %v", err)
	}
	if err := store.DeleteBatch("batch-2"); err != nil {
		t.Fatalf("delete batch: %v", err)
	}

	if _, err := store.LoadBatch("batch-2"); !errors.Is(err, ErrBatchNotFound) {
		t.Fatalf("want ErrBatchNotFound after delete, got %v", err)
	}
}
