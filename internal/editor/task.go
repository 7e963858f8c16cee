package editor

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/BurntSushi/toml"

	"taskhub/internal/validation"
	"taskhub/task"
)

// TaskData represents the data used to render the TOML template.
type TaskData struct {
	// IsUpdate is true when editing an existing task.
	IsUpdate bool
	// ID is the task ID (only for updates).
	ID string
	// Name is the task name.
	Name string
	// Category is the task category.
	Category string
	// Date and Time are the optional due date and time.
	Date string
	Time string
	// DoDate and DoTime are the optional work-on date and time.
	DoDate string
	DoTime string
	// Status is the task status (only for updates).
	Status string
	// Notes is the free-text body.
	Notes string
}

// DefaultCreateData returns TaskData with default values for a new task.
func DefaultCreateData() TaskData {
	return TaskData{
		Category: string(task.CategoryOther),
	}
}

// DataFromTask creates TaskData from an existing task for editing.
func DataFromTask(t *task.Task) TaskData {
	return TaskData{
		IsUpdate: true,
		ID:       t.ID,
		Name:     t.Name,
		Category: string(t.Category),
		Date:     t.Date,
		Time:     t.Time,
		DoDate:   t.TargetDate,
		DoTime:   t.TargetTime,
		Status:   string(t.Status),
		Notes:    t.Notes,
	}
}

var taskTemplate = template.Must(template.New("task").Parse(`name = {{ printf "%q" .Name }}
 category = {{ printf "%q" .Category }} # quiz, project, assignment, exam, study, review, output, online, facetoface, learning, other
 date = {{ printf "%q" .Date }} # due date YYYY-MM-DD, empty for none
 time = {{ printf "%q" .Time }} # due time HH:MM, empty for end of day
 do-date = {{ printf "%q" .DoDate }} # work-on date YYYY-MM-DD
 do-time = {{ printf "%q" .DoTime }} # work-on time HH:MM
{{- if .IsUpdate }}
 status = {{ printf "%q" .Status }} # todo, inprog, done
{{- end }}
---
{{ .Notes }}
`))

// RenderTaskTOML renders the task data as a TOML string for editing.
func RenderTaskTOML(data TaskData) (string, error) {
	var buf bytes.Buffer
	if err := taskTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render template: %w", err)
	}
	return buf.String(), nil
}

// ParsedTask represents the parsed result from the TOML editor output.
type ParsedTask struct {
	Name     string  `toml:"name"`
	Category string  `toml:"category"`
	Date     string  `toml:"date"`
	Time     string  `toml:"time"`
	DoDate   string  `toml:"do-date"`
	DoTime   string  `toml:"do-time"`
	Status   *string `toml:"status"`
	Notes    string
}

// ParseTaskTOML parses the TOML content from the editor.
func ParseTaskTOML(content string) (*ParsedTask, error) {
	frontmatter, body := splitFrontmatter(content)

	var parsed ParsedTask
	if _, err := toml.Decode(frontmatter, &parsed); err != nil {
		return nil, fmt.Errorf("parse TOML: %w", err)
	}
	parsed.Name = strings.TrimSpace(parsed.Name)
	parsed.Category = strings.ToLower(strings.TrimSpace(parsed.Category))
	parsed.Notes = strings.TrimRight(strings.TrimLeft(body, "\n"), "\n")
	if parsed.Status != nil {
		status := strings.ToLower(strings.TrimSpace(*parsed.Status))
		parsed.Status = &status
	}

	if err := task.ValidateName(parsed.Name); err != nil {
		return nil, err
	}
	if !task.Category(parsed.Category).IsValid() {
		return nil, fmt.Errorf("invalid category %q: must be one of %s", parsed.Category, validation.FormatValidValues(task.ValidCategories()))
	}
	if err := task.ValidateDate(parsed.Date); err != nil {
		return nil, err
	}
	if err := task.ValidateTime(parsed.Time); err != nil {
		return nil, err
	}
	if err := task.ValidateDate(parsed.DoDate); err != nil {
		return nil, err
	}
	if err := task.ValidateTime(parsed.DoTime); err != nil {
		return nil, err
	}
	if parsed.Status != nil && !task.Status(*parsed.Status).IsValid() {
		return nil, fmt.Errorf("invalid status %q: must be todo, inprog, or done", *parsed.Status)
	}

	return &parsed, nil
}

func splitFrontmatter(content string) (string, string) {
	content = strings.TrimLeft(content, "\n")
	if content == "" {
		return "", ""
	}

	lines := strings.Split(content, "\n")
	separatorIndex := -1
	for i, line := range lines {
		if strings.TrimSpace(line) == "---" {
			separatorIndex = i
			break
		}
	}
	if separatorIndex == -1 {
		return content, ""
	}

	frontmatter := strings.Join(lines[:separatorIndex], "\n")
	body := strings.Join(lines[separatorIndex+1:], "\n")
	return frontmatter, body
}

func createTaskTempFile() (*os.File, error) {
	return os.CreateTemp("", "hub-task-*.md")
}

// EditTask opens the editor for a task and returns the parsed result.
// For create: pass nil for existing.
// For update: pass the existing task.
func EditTask(existing *task.Task) (*ParsedTask, error) {
	var data TaskData
	if existing == nil {
		data = DefaultCreateData()
	} else {
		data = DataFromTask(existing)
	}
	return EditTaskWithData(data)
}

// EditTaskWithData opens the editor with pre-populated data and returns the
// parsed result.
func EditTaskWithData(data TaskData) (*ParsedTask, error) {
	content, err := RenderTaskTOML(data)
	if err != nil {
		return nil, err
	}

	tmpfile, err := createTaskTempFile()
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpfile.Name()
	defer os.Remove(tmpPath)

	if _, err := tmpfile.WriteString(content); err != nil {
		tmpfile.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	if err := tmpfile.Close(); err != nil {
		return nil, fmt.Errorf("close temp file: %w", err)
	}

	if err := Edit(tmpPath); err != nil {
		return nil, err
	}

	edited, err := os.ReadFile(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("read edited file: %w", err)
	}

	return ParseTaskTOML(string(edited))
}

// ToCreateOptions converts a ParsedTask to task.CreateOptions.
func (p *ParsedTask) ToCreateOptions() task.CreateOptions {
	return task.CreateOptions{
		Category:   task.Category(p.Category),
		Date:       p.Date,
		Time:       p.Time,
		TargetDate: p.DoDate,
		TargetTime: p.DoTime,
		Notes:      p.Notes,
	}
}

// ToUpdateOptions converts a ParsedTask to task.UpdateOptions.
func (p *ParsedTask) ToUpdateOptions() task.UpdateOptions {
	category := task.Category(p.Category)
	opts := task.UpdateOptions{
		Name:       &p.Name,
		Category:   &category,
		Date:       &p.Date,
		Time:       &p.Time,
		TargetDate: &p.DoDate,
		TargetTime: &p.DoTime,
		Notes:      &p.Notes,
	}

	if p.Status != nil {
		status := task.Status(*p.Status)
		opts.Status = &status
	}
	return opts
}
