package task

import (
	"errors"
	"strings"
	"testing"
)

func TestCreate_Defaults(t *testing.T) {
	store, _ := newTestStore(t)

	created := mustCreate(t, store, "  Grade quizzes  ", CreateOptions{})

	if created.Name != "Grade quizzes" {
		t.Errorf("name = %q, want trimmed %q", created.Name, "Grade quizzes")
	}
	if created.Category != CategoryOther {
		t.Errorf("category = %q, want default %q", created.Category, CategoryOther)
	}
	if created.Status != StatusTodo {
		t.Errorf("status = %q, want default %q", created.Status, StatusTodo)
	}
	if created.ID == "" {
		t.Error("no ID assigned")
	}
	if created.Created == 0 {
		t.Error("no creation stamp assigned")
	}
	if got := store.Tasks(); len(got) != 1 {
		t.Fatalf("store holds %d tasks, want 1", len(got))
	}
}

func TestCreate_RejectsInvalidInput(t *testing.T) {
	store, _ := newTestStore(t)

	for _, test := range []struct {
		testName string
		name     string
		opts     CreateOptions
		wantErr  error
	}{
		{"empty name", "", CreateOptions{}, ErrEmptyName},
		{"whitespace name", "   \t ", CreateOptions{}, ErrEmptyName},
		{"name too long", strings.Repeat("x", MaxNameLength+1), CreateOptions{}, ErrNameTooLong},
		{"bad category", "ok", CreateOptions{Category: "hobby"}, ErrInvalidCategory},
		{"bad status", "ok", CreateOptions{Status: "paused"}, ErrInvalidStatus},
		{"bad date", "ok", CreateOptions{Date: "June 1st"}, ErrInvalidDate},
		{"bad time", "ok", CreateOptions{Date: "2026-06-01", Time: "9am"}, ErrInvalidTime},
		{"time without date", "ok", CreateOptions{Time: "09:00"}, ErrTimeWithoutDate},
	} {
		t.Run(test.testName, func(t *testing.T) {
			if _, err := store.Create(test.name, test.opts); !errors.Is(err, test.wantErr) {
				t.Errorf("err = %v, want %v", err, test.wantErr)
			}
		})
	}

	// Every rejection leaves the collection unchanged.
	if got := store.Tasks(); len(got) != 0 {
		t.Fatalf("store holds %d tasks after rejected creates, want 0", len(got))
	}
}

func TestCreate_UniqueIDs(t *testing.T) {
	store, _ := newTestStore(t)

	// Same name, likely the same timestamp: IDs must still differ.
	seen := map[string]bool{}
	for i := 0; i < 5; i++ {
		created := mustCreate(t, store, "office hours", CreateOptions{})
		if seen[created.ID] {
			t.Fatalf("duplicate ID %q", created.ID)
		}
		seen[created.ID] = true
	}
}

func TestUpdate_PatchesOnlySetFields(t *testing.T) {
	store, _ := newTestStore(t)
	created := mustCreate(t, store, "draft syllabus", CreateOptions{
		Category: CategoryProject,
		Date:     "2026-06-20",
		Notes:    "first pass",
	})

	name := "finish syllabus"
	status := StatusInProg
	updated, err := store.Update(created.ID, UpdateOptions{
		Name:   &name,
		Status: &status,
	})
	if err != nil {
		t.Fatalf("failed to update task: %v", err)
	}

	if updated.Name != "finish syllabus" {
		t.Errorf("name = %q, want %q", updated.Name, "finish syllabus")
	}
	if updated.Status != StatusInProg {
		t.Errorf("status = %q, want %q", updated.Status, StatusInProg)
	}
	// Unset fields keep their values.
	if updated.Category != CategoryProject || updated.Date != "2026-06-20" || updated.Notes != "first pass" {
		t.Errorf("unset fields changed: %+v", updated)
	}
	if updated.ID != created.ID || updated.Created != created.Created {
		t.Error("identity fields changed on update")
	}
}

func TestUpdate_CanClearDates(t *testing.T) {
	store, _ := newTestStore(t)
	created := mustCreate(t, store, "exam prep", CreateOptions{Date: "2026-06-20", Time: "09:00"})

	empty := ""
	updated, err := store.Update(created.ID, UpdateOptions{Date: &empty, Time: &empty})
	if err != nil {
		t.Fatalf("failed to clear dates: %v", err)
	}
	if updated.Date != "" || updated.Time != "" {
		t.Errorf("dates not cleared: %+v", updated)
	}
}

func TestUpdate_RejectsInvalidPatch(t *testing.T) {
	store, _ := newTestStore(t)
	created := mustCreate(t, store, "stable", CreateOptions{})

	empty := ""
	if _, err := store.Update(created.ID, UpdateOptions{Name: &empty}); !errors.Is(err, ErrEmptyName) {
		t.Fatalf("err = %v, want ErrEmptyName", err)
	}

	// The stored record is untouched by a rejected patch.
	got, err := store.Get(created.ID)
	if err != nil {
		t.Fatalf("failed to get task: %v", err)
	}
	if got.Name != "stable" {
		t.Errorf("name = %q after rejected patch, want %q", got.Name, "stable")
	}
}

func TestGet_ByUniquePrefix(t *testing.T) {
	store, _ := newTestStore(t)
	created := mustCreate(t, store, "prefix lookup", CreateOptions{})

	got, err := store.Get(created.ID[:4])
	if err != nil {
		t.Fatalf("failed to get by prefix: %v", err)
	}
	if got.ID != created.ID {
		t.Errorf("got %q, want %q", got.ID, created.ID)
	}

	if _, err := store.Get("nosuchid"); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("err = %v, want ErrTaskNotFound", err)
	}
}

func TestSetStatus(t *testing.T) {
	store, _ := newTestStore(t)
	created := mustCreate(t, store, "status target", CreateOptions{})

	updated, err := store.SetStatus(created.ID, StatusDone)
	if err != nil {
		t.Fatalf("failed to set status: %v", err)
	}
	if updated.Status != StatusDone {
		t.Errorf("status = %q, want %q", updated.Status, StatusDone)
	}

	if _, err := store.SetStatus(created.ID, "paused"); !errors.Is(err, ErrInvalidStatus) {
		t.Errorf("err = %v, want ErrInvalidStatus", err)
	}
}

func TestCycleStatus(t *testing.T) {
	store, _ := newTestStore(t)
	created := mustCreate(t, store, "cycle me", CreateOptions{})

	for _, want := range []Status{StatusInProg, StatusDone, StatusTodo} {
		updated, err := store.CycleStatus(created.ID)
		if err != nil {
			t.Fatalf("failed to cycle status: %v", err)
		}
		if updated.Status != want {
			t.Fatalf("status = %q, want %q", updated.Status, want)
		}
	}
}

func TestArchiveRestoreRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	created := mustCreate(t, store, "archive me", CreateOptions{
		Category: CategoryExam,
		Date:     "2026-06-20",
		Time:     "10:00",
		Notes:    "keep everything",
	})

	archived, err := store.Archive(created.ID)
	if err != nil {
		t.Fatalf("failed to archive: %v", err)
	}
	if *archived != *created {
		t.Errorf("archive changed the record:\n got %+v\nwant %+v", *archived, *created)
	}
	if len(store.Tasks()) != 0 || len(store.Archived()) != 1 {
		t.Fatalf("collections = %d active, %d archived; want 0, 1",
			len(store.Tasks()), len(store.Archived()))
	}

	// Active-collection operations no longer see it.
	if _, err := store.Get(created.ID); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("Get after archive: err = %v, want ErrTaskNotFound", err)
	}

	restored, err := store.Restore(created.ID)
	if err != nil {
		t.Fatalf("failed to restore: %v", err)
	}
	if *restored != *created {
		t.Errorf("restore changed the record:\n got %+v\nwant %+v", *restored, *created)
	}
	if len(store.Tasks()) != 1 || len(store.Archived()) != 0 {
		t.Fatalf("collections = %d active, %d archived; want 1, 0",
			len(store.Tasks()), len(store.Archived()))
	}
}

func TestRestore_OnlyFromArchive(t *testing.T) {
	store, _ := newTestStore(t)
	created := mustCreate(t, store, "still active", CreateOptions{})

	if _, err := store.Restore(created.ID); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("err = %v, want ErrTaskNotFound", err)
	}
}

func TestPurge(t *testing.T) {
	store, _ := newTestStore(t)
	created := mustCreate(t, store, "purge me", CreateOptions{})

	// Only archived tasks can be purged.
	if _, err := store.Purge(created.ID); !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("purge of active task: err = %v, want ErrTaskNotFound", err)
	}

	if _, err := store.Archive(created.ID); err != nil {
		t.Fatalf("failed to archive: %v", err)
	}
	if _, err := store.Purge(created.ID); err != nil {
		t.Fatalf("failed to purge: %v", err)
	}

	if len(store.Tasks()) != 0 || len(store.Archived()) != 0 {
		t.Fatalf("collections = %d active, %d archived after purge; want 0, 0",
			len(store.Tasks()), len(store.Archived()))
	}
}
