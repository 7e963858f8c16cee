package task

import (
	"fmt"
	"strings"
	"time"
)

// CreateOptions configures a new task.
type CreateOptions struct {
	// Category tags the task. Defaults to CategoryOther.
	Category Category

	// Date and Time set the optional due instant.
	Date string
	Time string

	// TargetDate and TargetTime set the optional do instant.
	TargetDate string
	TargetTime string

	// Status is the initial state. Defaults to StatusTodo.
	Status Status

	// Notes is optional free text.
	Notes string
}

// Create validates the input, assigns a fresh ID and creation stamp, and
// appends the task to the active collection.
func (s *Store) Create(name string, opts CreateOptions) (*Task, error) {
	name = strings.TrimSpace(name)
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	if opts.Category == "" {
		opts.Category = CategoryOther
	}
	if opts.Status == "" {
		opts.Status = StatusTodo
	}

	now := time.Now()
	t := Task{
		ID:         "",
		Name:       name,
		Category:   opts.Category,
		Date:       opts.Date,
		Time:       opts.Time,
		TargetDate: opts.TargetDate,
		TargetTime: opts.TargetTime,
		Status:     opts.Status,
		Notes:      strings.TrimSpace(opts.Notes),
		Created:    now.UnixMilli(),
	}
	if err := Validate(&t); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t.ID = s.freshID(name, now)
	s.tasks = append(s.tasks, t)
	s.persistTasks()

	return &t, nil
}

// freshID generates an ID unique across both collections. Caller holds mu.
func (s *Store) freshID(name string, now time.Time) string {
	id := GenerateID(name, now)
	for attempt := 1; s.hasID(id); attempt++ {
		id = GenerateID(fmt.Sprintf("%s#%d", name, attempt), now)
	}
	return id
}

// UpdateOptions configures fields to change on a task.
// Nil pointers mean "don't change this field".
type UpdateOptions struct {
	Name       *string
	Category   *Category
	Date       *string
	Time       *string
	TargetDate *string
	TargetTime *string
	Status     *Status
	Notes      *string
}

// Update merges the patch onto the active task with the given ID.
// Returns the updated record.
func (s *Store) Update(id string, opts UpdateOptions) (*Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, err := resolveID(s.tasks, id)
	if err != nil {
		return nil, err
	}

	updated := s.tasks[i]
	if opts.Name != nil {
		updated.Name = strings.TrimSpace(*opts.Name)
	}
	if opts.Category != nil {
		updated.Category = *opts.Category
	}
	if opts.Date != nil {
		updated.Date = *opts.Date
	}
	if opts.Time != nil {
		updated.Time = *opts.Time
	}
	if opts.TargetDate != nil {
		updated.TargetDate = *opts.TargetDate
	}
	if opts.TargetTime != nil {
		updated.TargetTime = *opts.TargetTime
	}
	if opts.Status != nil {
		updated.Status = *opts.Status
	}
	if opts.Notes != nil {
		updated.Notes = strings.TrimSpace(*opts.Notes)
	}

	if err := Validate(&updated); err != nil {
		return nil, err
	}

	s.tasks[i] = updated
	s.persistTasks()
	return &updated, nil
}

// Get returns the active task with the given ID or unique prefix.
func (s *Store) Get(id string) (*Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, err := resolveID(s.tasks, id)
	if err != nil {
		return nil, err
	}
	t := s.tasks[i]
	return &t, nil
}

// SetStatus sets the task's status directly.
func (s *Store) SetStatus(id string, status Status) (*Task, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i, err := resolveID(s.tasks, id)
	if err != nil {
		return nil, err
	}

	s.tasks[i].Status = status
	s.persistTasks()
	t := s.tasks[i]
	return &t, nil
}

// CycleStatus advances the task one step around the status cycle:
// todo -> inprog -> done -> todo.
func (s *Store) CycleStatus(id string) (*Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, err := resolveID(s.tasks, id)
	if err != nil {
		return nil, err
	}

	s.tasks[i].Status = s.tasks[i].Status.Next()
	s.persistTasks()
	t := s.tasks[i]
	return &t, nil
}

// Archive soft-deletes the task: it moves from the active collection to the
// archive, preserving every field.
func (s *Store) Archive(id string) (*Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, err := resolveID(s.tasks, id)
	if err != nil {
		return nil, err
	}

	t := s.tasks[i]
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	s.archive = append(s.archive, t)
	s.persistTasks()
	s.persistArchive()
	return &t, nil
}

// Restore moves an archived task back to the active collection.
func (s *Store) Restore(id string) (*Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, err := resolveID(s.archive, id)
	if err != nil {
		return nil, err
	}

	t := s.archive[i]
	s.archive = append(s.archive[:i], s.archive[i+1:]...)
	s.tasks = append(s.tasks, t)
	s.persistTasks()
	s.persistArchive()
	return &t, nil
}

// Purge permanently removes a task from the archive. Irreversible, and only
// archived tasks can be purged.
func (s *Store) Purge(id string) (*Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, err := resolveID(s.archive, id)
	if err != nil {
		return nil, err
	}

	t := s.archive[i]
	s.archive = append(s.archive[:i], s.archive[i+1:]...)
	s.persistArchive()
	return &t, nil
}
