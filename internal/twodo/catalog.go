package twodo

// DefaultBaseURL is the x-callback-url root the 2Do app registers.
const DefaultBaseURL = "twodo://x-callback-url"

// Op identifies an operation in the x-callback-url scheme.
type Op string

// Operations supported by the scheme. The string value is the URI path
// segment appended to the base URL.
const (
	OpAdd           Op = "add"
	OpPaste         Op = "paste"
	OpGetTaskID     Op = "getTaskID"
	OpShowList      Op = "showList"
	OpShowToday     Op = "showToday"
	OpShowStarred   Op = "showStarred"
	OpShowScheduled Op = "showScheduled"
	OpShowAll       Op = "showAll"
	OpSearch        Op = "search"
)

// opInfo describes how an operation behaves after launch.
type opInfo struct {
	// confirm means the operation's result is confirmed by reading a UID
	// from the clipboard after the settle delay.
	confirm bool
}

// catalog maps every operation to its behavior. Only getTaskID confirms
// unconditionally; add confirms when the caller asked for UID capture.
var catalog = map[Op]opInfo{
	OpAdd:           {confirm: false},
	OpPaste:         {confirm: false},
	OpGetTaskID:     {confirm: true},
	OpShowList:      {confirm: false},
	OpShowToday:     {confirm: false},
	OpShowStarred:   {confirm: false},
	OpShowScheduled: {confirm: false},
	OpShowAll:       {confirm: false},
	OpSearch:        {confirm: false},
}

// View is a built-in 2Do view reachable without parameters.
type View string

// Built-in views and their operations.
const (
	ViewToday     View = "today"
	ViewStarred   View = "starred"
	ViewScheduled View = "scheduled"
	ViewAll       View = "all"
)

// viewOps maps each built-in view to its scheme operation.
var viewOps = map[View]Op{
	ViewToday:     OpShowToday,
	ViewStarred:   OpShowStarred,
	ViewScheduled: OpShowScheduled,
	ViewAll:       OpShowAll,
}

// viewNames maps each view to the name 2Do displays for it.
var viewNames = map[View]string{
	ViewToday:     "Today",
	ViewStarred:   "Starred",
	ViewScheduled: "Scheduled",
	ViewAll:       "All",
}

// DisplayName returns the view name as 2Do displays it, e.g. "Today".
// Unknown views fall back to their raw string.
func (v View) DisplayName() string {
	if name, ok := viewNames[v]; ok {
		return name
	}
	return string(v)
}

// ParseView parses a view name ("today", "starred", "scheduled", "all").
func ParseView(name string) (View, bool) {
	v := View(name)
	_, ok := viewOps[v]
	return v, ok
}
