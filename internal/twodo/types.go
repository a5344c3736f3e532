package twodo

import "fmt"

// UIDLength is the exact length of a 2Do task UID. Clipboard contents of any
// other length are treated as "no UID available", never as a partial UID.
const UIDLength = 32

// TaskType is the kind of entry created by an add operation.
type TaskType int

// Task types as 2Do encodes them. Task is the zero value and is omitted from
// encoded URLs.
const (
	TaskTypeTask TaskType = iota
	TaskTypeProject
	TaskTypeChecklist
)

// Code returns the numeric code 2Do expects in the "type" parameter.
func (t TaskType) Code() string {
	return fmt.Sprintf("%d", int(t))
}

// ParseTaskType parses a task type code ("0", "1", or "2").
func ParseTaskType(code string) (TaskType, error) {
	switch code {
	case "", "0":
		return TaskTypeTask, nil
	case "1":
		return TaskTypeProject, nil
	case "2":
		return TaskTypeChecklist, nil
	}
	return TaskTypeTask, fmt.Errorf("invalid task type %q: must be '0' (Task), '1' (Project), or '2' (Checklist)", code)
}

// Priority is a task's priority level.
type Priority int

// Priorities as 2Do encodes them. None is the zero value and is omitted from
// encoded URLs.
const (
	PriorityNone Priority = iota
	PriorityLow
	PriorityMedium
	PriorityHigh
)

// Code returns the numeric code 2Do expects in the "priority" parameter.
func (p Priority) Code() string {
	return fmt.Sprintf("%d", int(p))
}

// ParsePriority parses a priority code ("0" through "3").
func ParsePriority(code string) (Priority, error) {
	switch code {
	case "", "0":
		return PriorityNone, nil
	case "1":
		return PriorityLow, nil
	case "2":
		return PriorityMedium, nil
	case "3":
		return PriorityHigh, nil
	}
	return PriorityNone, fmt.Errorf("invalid priority %q: must be '0' (None), '1' (Low), '2' (Medium), or '3' (High)", code)
}

// RepeatInterval is a task's recurrence interval. The zero value RepeatNone
// means "no repeat" and is omitted from encoded URLs; 2Do treats an omitted
// repeat differently from an explicit one.
type RepeatInterval int

const (
	RepeatNone RepeatInterval = iota
	RepeatDaily
	RepeatWeekly
	RepeatBiWeekly
	RepeatMonthly
)

// Code returns the numeric code 2Do expects in the "repeat" parameter.
func (r RepeatInterval) Code() string {
	return fmt.Sprintf("%d", int(r))
}

// ParseRepeat parses a repeat interval code ("1" through "4"). An empty code
// means no repeat.
func ParseRepeat(code string) (RepeatInterval, error) {
	switch code {
	case "":
		return RepeatNone, nil
	case "1":
		return RepeatDaily, nil
	case "2":
		return RepeatWeekly, nil
	case "3":
		return RepeatBiWeekly, nil
	case "4":
		return RepeatMonthly, nil
	}
	return RepeatNone, fmt.Errorf("invalid repeat %q: must be '1' (Daily), '2' (Weekly), '3' (Bi-weekly), or '4' (Monthly)", code)
}

// TaskInput describes a single add operation. Zero-valued fields are omitted
// from the encoded URL so 2Do applies its own defaults; this is a hard
// contract of the URL scheme, not an optimization.
type TaskInput struct {
	// Task is the title. Required, 1-500 characters.
	Task string

	// Type is the entry kind (Task, Project, or Checklist).
	Type TaskType

	// ForList is the target list name. Empty means 2Do's default list.
	ForList string

	// Note holds free-form notes for the task.
	Note string

	// Subtasks holds newline-separated subtask titles. 2Do converts the
	// parent to a Checklist automatically.
	Subtasks string

	// Priority is the task priority.
	Priority Priority

	// Starred flags the task.
	Starred bool

	// Tags holds comma-separated tag names.
	Tags string

	// Locations holds comma-separated location names.
	Locations string

	// Due is the due date, either "YYYY-MM-DD" or an integer count of days
	// from today ("0" = today).
	Due string

	// DueTime is the due time in 24-hour "HH:MM" format. Meaningful only
	// when Due is set.
	DueTime string

	// Start is the start date/time, "YYYY-MM-DD HH:MM" or days from today.
	Start string

	// Repeat is the recurrence interval.
	Repeat RepeatInterval

	// Action is an action URL interpreted by 2Do, e.g. "call:+1234",
	// "mail:user@example.com", or "url:https://example.com".
	Action string

	// ForParentName is the parent project to nest under. Requires ForList.
	ForParentName string

	// ForParentTask is a parent task UID (32 characters) to nest under.
	ForParentTask string

	// IgnoreDefaults skips 2Do's default due date/time settings.
	IgnoreDefaults bool

	// SaveInClipboard asks 2Do to write the new task's UID to the clipboard.
	SaveInClipboard bool

	// Edit opens the task's edit screen after creation.
	Edit bool
}

// BatchInput describes a batch-create operation: one shared settings subset
// applied to every title. UID capture is always disabled for batch members.
type BatchInput struct {
	// Tasks holds the titles to create, in order. 1-50 entries.
	Tasks []string

	// ForList is the target list for all tasks.
	ForList string

	// Priority is applied to all tasks.
	Priority Priority

	// Tags holds comma-separated tags applied to all tasks.
	Tags string

	// Due is the due date applied to all tasks.
	Due string
}

// PasteInput describes a paste operation: each non-blank line of Text
// becomes a subtask of the named project.
type PasteInput struct {
	Text      string
	InProject string
	ForList   string
}

// TaskIDInput describes a UID lookup. 2Do matches title and list exactly,
// case-sensitive; there is no fuzzy search.
type TaskIDInput struct {
	Task    string
	ForList string
}

// DefaultListName is echoed in responses when no target list was given.
const DefaultListName = "(default)"

// AddTaskResult is the envelope for a successful add operation. UID is nil
// when best-effort capture did not produce one; that is not a failure.
type AddTaskResult struct {
	Success bool    `json:"success"`
	Task    string  `json:"task"`
	List    string  `json:"list"`
	UID     *string `json:"uid"`
}

// BatchItemResult is the outcome of one title within a batch. Error is null
// when the item succeeded.
type BatchItemResult struct {
	Task    string  `json:"task"`
	Success bool    `json:"success"`
	Error   *string `json:"error"`
}

// BatchResult aggregates a batch-create operation. Success is true only if
// every item succeeded.
type BatchResult struct {
	Success    bool              `json:"success"`
	Total      int               `json:"total"`
	Successful int               `json:"successful"`
	Failed     int               `json:"failed"`
	Results    []BatchItemResult `json:"results"`
}

// PasteResult is the envelope for a successful paste operation. TasksAdded
// is a local count of non-blank lines, not a confirmation from 2Do.
type PasteResult struct {
	Success    bool   `json:"success"`
	Project    string `json:"project"`
	List       string `json:"list"`
	TasksAdded int    `json:"tasks_added"`
}

// TaskIDResult is the envelope for a successful UID lookup.
type TaskIDResult struct {
	Success bool   `json:"success"`
	Task    string `json:"task"`
	List    string `json:"list"`
	UID     string `json:"uid"`
}

// ListResult is the envelope for a successful list navigation.
type ListResult struct {
	Success bool   `json:"success"`
	List    string `json:"list"`
}

// ViewResult is the envelope for a successful view navigation.
type ViewResult struct {
	Success bool   `json:"success"`
	View    string `json:"view"`
}

// SearchResult is the envelope for a successful search. Results are shown in
// the 2Do window, not returned over the wire.
type SearchResult struct {
	Success bool   `json:"success"`
	Query   string `json:"query"`
	Note    string `json:"note"`
}

// ErrorResult is the envelope for any failed operation.
type ErrorResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// NotFoundError reports a UID lookup whose clipboard confirmation did not
// produce a UID. Since 2Do matches exactly, the usual cause is a title or
// list name that differs from the task's.
type NotFoundError struct {
	Task string
	List string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Task '%s' not found in list '%s'. Check that the title matches exactly (case-sensitive).", e.Task, e.List)
}
