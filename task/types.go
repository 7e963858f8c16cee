package task

// Status represents the state of a task.
type Status string

const (
	// StatusTodo indicates the task has not been started.
	StatusTodo Status = "todo"

	// StatusInProg indicates the task is being worked on.
	StatusInProg Status = "inprog"

	// StatusDone indicates the task is finished.
	StatusDone Status = "done"
)

// ValidStatuses returns all valid status values.
func ValidStatuses() []Status {
	return []Status{StatusTodo, StatusInProg, StatusDone}
}

// IsValid returns true if the status is a known valid value.
func (s Status) IsValid() bool {
	switch s {
	case StatusTodo, StatusInProg, StatusDone:
		return true
	default:
		return false
	}
}

// Next returns the successor in the status cycle:
// todo -> inprog -> done -> todo.
func (s Status) Next() Status {
	switch s {
	case StatusTodo:
		return StatusInProg
	case StatusInProg:
		return StatusDone
	case StatusDone:
		return StatusTodo
	default:
		return StatusTodo
	}
}

// Label returns the display name for the status.
func (s Status) Label() string {
	switch s {
	case StatusTodo:
		return "To Do"
	case StatusInProg:
		return "In Progress"
	case StatusDone:
		return "Done"
	default:
		return string(s)
	}
}

// Category tags a task for display. The engine treats it as an opaque
// equality-comparable value; the closed set exists so an unrecognized
// category is a construction-time error rather than a silent blank label.
type Category string

const (
	CategoryQuiz       Category = "quiz"
	CategoryProject    Category = "project"
	CategoryAssignment Category = "assignment"
	CategoryExam       Category = "exam"
	CategoryStudy      Category = "study"
	CategoryReview     Category = "review"
	CategoryOutput     Category = "output"
	CategoryOnline     Category = "online"
	CategoryFaceToFace Category = "facetoface"
	CategoryLearning   Category = "learning"
	CategoryOther      Category = "other"
)

// ValidCategories returns all valid category values.
func ValidCategories() []Category {
	return []Category{
		CategoryQuiz,
		CategoryProject,
		CategoryAssignment,
		CategoryExam,
		CategoryStudy,
		CategoryReview,
		CategoryOutput,
		CategoryOnline,
		CategoryFaceToFace,
		CategoryLearning,
		CategoryOther,
	}
}

// IsValid returns true if the category is a known valid value.
func (c Category) IsValid() bool {
	for _, valid := range ValidCategories() {
		if c == valid {
			return true
		}
	}
	return false
}

// Label returns the display name for the category.
func (c Category) Label() string {
	switch c {
	case CategoryQuiz:
		return "Quiz"
	case CategoryProject:
		return "Project"
	case CategoryAssignment:
		return "Assignment"
	case CategoryExam:
		return "Exam"
	case CategoryStudy:
		return "Study"
	case CategoryReview:
		return "Review"
	case CategoryOutput:
		return "Output"
	case CategoryOnline:
		return "Online Appt."
	case CategoryFaceToFace:
		return "Face-to-face"
	case CategoryLearning:
		return "Learning"
	case CategoryOther:
		return "Other"
	default:
		return string(c)
	}
}
