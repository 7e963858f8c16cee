package task

import (
	"encoding/json"
	"fmt"
	"time"
)

// ExportVersion identifies the document format written by ExportDocument.
const ExportVersion = "2"

// Document is the import/export file format. It carries both collections so
// a restore round-trips the archive too.
type Document struct {
	Tasks         []Task `json:"tasks"`
	ArchivedTasks []Task `json:"archivedTasks"`
	ExportDate    string `json:"exportDate"`
	Version       string `json:"version"`
}

// ExportDocument snapshots both collections into a transferable document.
func (s *Store) ExportDocument(now time.Time) Document {
	doc := Document{
		Tasks:         s.Tasks(),
		ArchivedTasks: s.Archived(),
		ExportDate:    now.Format(time.RFC3339),
		Version:       ExportVersion,
	}
	if doc.Tasks == nil {
		doc.Tasks = []Task{}
	}
	if doc.ArchivedTasks == nil {
		doc.ArchivedTasks = []Task{}
	}
	return doc
}

// Import replaces both collections with the document's contents. The
// document must carry a tasks array; a rejected document leaves the store
// untouched.
func (s *Store) Import(data []byte) (active, archived int, err error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	tasksRaw, ok := raw["tasks"]
	if !ok {
		return 0, 0, fmt.Errorf("%w: missing tasks array", ErrInvalidDocument)
	}

	var tasks []Task
	if err := json.Unmarshal(tasksRaw, &tasks); err != nil {
		return 0, 0, fmt.Errorf("%w: tasks is not an array of tasks: %v", ErrInvalidDocument, err)
	}

	var archive []Task
	if archiveRaw, ok := raw["archivedTasks"]; ok {
		if err := json.Unmarshal(archiveRaw, &archive); err != nil {
			return 0, 0, fmt.Errorf("%w: archivedTasks is not an array of tasks: %v", ErrInvalidDocument, err)
		}
	}

	for i := range tasks {
		if err := Validate(&tasks[i]); err != nil {
			return 0, 0, fmt.Errorf("%w: task %d: %v", ErrInvalidDocument, i, err)
		}
	}
	for i := range archive {
		if err := Validate(&archive[i]); err != nil {
			return 0, 0, fmt.Errorf("%w: archived task %d: %v", ErrInvalidDocument, i, err)
		}
	}

	// IDs must be unique across the union of both collections, or prefix
	// resolution breaks after the import.
	seen := make(map[string]bool, len(tasks)+len(archive))
	for _, list := range [][]Task{tasks, archive} {
		for _, t := range list {
			if seen[t.ID] {
				return 0, 0, fmt.Errorf("%w: duplicate task ID %q", ErrInvalidDocument, t.ID)
			}
			seen[t.ID] = true
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.tasks = tasks
	s.archive = archive
	s.persistTasks()
	s.persistArchive()
	return len(tasks), len(archive), nil
}
