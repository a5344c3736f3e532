package twodo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func buildAdd(in TaskInput) string {
	return BuildAddURL(DefaultBaseURL, in)
}

func TestBuildAddURLMinimal(t *testing.T) {
	url := buildAdd(TaskInput{Task: "Buy milk"})

	assert.True(t, strings.HasPrefix(url, "twodo://x-callback-url/add?task="))
	assert.Contains(t, url, "task=Buy%20milk")
	assert.NotContains(t, url, "type=")
	assert.NotContains(t, url, "priority=")
	assert.NotContains(t, url, "starred")
	assert.NotContains(t, url, "saveInClipboard")
}

func TestBuildAddURLFields(t *testing.T) {
	tests := []struct {
		name string
		in   TaskInput
		want []string
	}{
		{
			name: "target list",
			in:   TaskInput{Task: "t", ForList: "Personal"},
			want: []string{"forlist=Personal"},
		},
		{
			name: "high priority",
			in:   TaskInput{Task: "t", Priority: PriorityHigh},
			want: []string{"priority=3"},
		},
		{
			name: "due date and time",
			in:   TaskInput{Task: "t", Due: "2026-03-01", DueTime: "14:30"},
			want: []string{"due=2026-03-01", "dueTime=14%3A30"},
		},
		{
			name: "project type",
			in:   TaskInput{Task: "t", Type: TaskTypeProject},
			want: []string{"type=1"},
		},
		{
			name: "checklist type",
			in:   TaskInput{Task: "t", Type: TaskTypeChecklist},
			want: []string{"type=2"},
		},
		{
			name: "starred",
			in:   TaskInput{Task: "t", Starred: true},
			want: []string{"starred=1"},
		},
		{
			name: "tags",
			in:   TaskInput{Task: "t", Tags: "work,urgent"},
			want: []string{"tags=work%2Curgent"},
		},
		{
			name: "subtasks newline separated",
			in:   TaskInput{Task: "t", Subtasks: "Milk\nBread\nEggs"},
			want: []string{"subtasks=Milk%0ABread%0AEggs"},
		},
		{
			name: "note",
			in:   TaskInput{Task: "t", Note: "Check the docs"},
			want: []string{"note=Check%20the%20docs"},
		},
		{
			name: "weekly repeat",
			in:   TaskInput{Task: "t", Repeat: RepeatWeekly},
			want: []string{"repeat=2"},
		},
		{
			name: "action URL keeps slashes",
			in:   TaskInput{Task: "t", Action: "url:https://example.com"},
			want: []string{"action=url%3Ahttps%3A//example.com"},
		},
		{
			name: "parent project",
			in:   TaskInput{Task: "t", ForParentName: "Project X", ForList: "Work"},
			want: []string{"forParentName=Project%20X", "forlist=Work"},
		},
		{
			name: "parent task UID",
			in:   TaskInput{Task: "t", ForParentTask: "abcdef0123456789abcdef0123456789"},
			want: []string{"forParentTask=abcdef0123456789abcdef0123456789"},
		},
		{
			name: "locations",
			in:   TaskInput{Task: "Pick up", Locations: "Home,Office"},
			want: []string{"locations=Home%2COffice"},
		},
		{
			name: "ignore defaults",
			in:   TaskInput{Task: "t", IgnoreDefaults: true},
			want: []string{"ignoreDefaults=1"},
		},
		{
			name: "save in clipboard",
			in:   TaskInput{Task: "t", SaveInClipboard: true},
			want: []string{"saveInClipboard=1"},
		},
		{
			name: "edit mode",
			in:   TaskInput{Task: "Edit me", Edit: true},
			want: []string{"edit=1"},
		},
		{
			name: "start date with time",
			in:   TaskInput{Task: "t", Start: "2026-04-01 09:00"},
			want: []string{"start=2026-04-01%2009%3A00"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			url := buildAdd(tt.in)
			for _, want := range tt.want {
				assert.Contains(t, url, want)
			}
		})
	}
}

func TestBuildAddURLAllFields(t *testing.T) {
	url := buildAdd(TaskInput{
		Task:            "Full task",
		Type:            TaskTypeChecklist,
		ForList:         "Work",
		Note:            "Important notes",
		Priority:        PriorityHigh,
		Starred:         true,
		Tags:            "urgent,review",
		Due:             "2026-03-15",
		Repeat:          RepeatDaily,
		Locations:       "Office",
		IgnoreDefaults:  true,
		SaveInClipboard: true,
		Edit:            true,
	})

	for _, want := range []string{
		"task=Full%20task",
		"type=2",
		"forlist=Work",
		"note=Important%20notes",
		"priority=3",
		"starred=1",
		"tags=urgent%2Creview",
		"due=2026-03-15",
		"repeat=1",
		"locations=Office",
		"ignoreDefaults=1",
		"saveInClipboard=1",
		"edit=1",
	} {
		assert.Contains(t, url, want)
	}
}

func TestBuildAddURLSpecialCharacters(t *testing.T) {
	url := buildAdd(TaskInput{Task: "Task with & and = signs"})
	assert.Contains(t, url, "task=Task%20with%20%26%20and%20%3D%20signs")
}

func TestBuildAddURLStableFieldOrder(t *testing.T) {
	url := buildAdd(TaskInput{
		Task:    "t",
		ForList: "L",
		Note:    "n",
		Due:     "0",
		DueTime: "09:00",
	})
	// Encoded fields must keep their table order regardless of input.
	forlist := strings.Index(url, "forlist=")
	note := strings.Index(url, "note=")
	due := strings.Index(url, "&due=")
	dueTime := strings.Index(url, "dueTime=")
	assert.True(t, forlist < note && note < due && due < dueTime,
		"unexpected field order in %q", url)
}

func TestBuildPasteURL(t *testing.T) {
	url := BuildPasteURL(DefaultBaseURL, PasteInput{
		Text:      "Step one\nStep two",
		InProject: "Launch Plan",
		ForList:   "Work",
	})
	assert.Equal(t,
		"twodo://x-callback-url/paste?text=Step%20one%0AStep%20two&inProject=Launch%20Plan&forList=Work",
		url)
}

func TestBuildGetTaskIDURLForcesClipboard(t *testing.T) {
	url := BuildGetTaskIDURL(DefaultBaseURL, TaskIDInput{Task: "Buy milk", ForList: "Groceries"})
	assert.Equal(t,
		"twodo://x-callback-url/getTaskID?task=Buy%20milk&forList=Groceries&saveInClipboard=1",
		url)
}

func TestBuildShowListURL(t *testing.T) {
	url := BuildShowListURL(DefaultBaseURL, "Next Actions")
	assert.Equal(t, "twodo://x-callback-url/showList?name=Next%20Actions", url)
}

func TestBuildViewURL(t *testing.T) {
	tests := []struct {
		view View
		want string
	}{
		{ViewToday, "twodo://x-callback-url/showToday"},
		{ViewStarred, "twodo://x-callback-url/showStarred"},
		{ViewScheduled, "twodo://x-callback-url/showScheduled"},
		{ViewAll, "twodo://x-callback-url/showAll"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, BuildViewURL(DefaultBaseURL, tt.view))
	}
}

func TestBuildSearchURL(t *testing.T) {
	url := BuildSearchURL(DefaultBaseURL, "quarterly report")
	assert.Equal(t, "twodo://x-callback-url/search?text=quarterly%20report", url)
}

func TestEncode(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Buy milk", "Buy%20milk"},
		{"14:30", "14%3A30"},
		{"work,urgent", "work%2Curgent"},
		{"a\nb", "a%0Ab"},
		{"url:https://example.com", "url%3Ahttps%3A//example.com"},
		{"a&b=c", "a%26b%3Dc"},
		{"plain-text_1.0~x/y", "plain-text_1.0~x/y"},
		{"", ""},
		{"café", "caf%C3%A9"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Encode(tt.in), "Encode(%q)", tt.in)
	}
}
