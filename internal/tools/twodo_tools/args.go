package twodo_tools

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"twodo-mcp/internal/twodo"
)

// maxTitleLength is the longest task title accepted by the tool layer.
const maxTitleLength = 500

// maxBatchSize is the most titles a single batch add accepts.
const maxBatchSize = 50

// stringArg returns the trimmed string value of an argument, or "" when the
// argument is absent or not a string. All string inputs are trimmed at this
// boundary so stray whitespace never reaches the URL encoder.
func stringArg(args map[string]interface{}, key string) string {
	if v, ok := args[key].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

// requiredStringArg is like stringArg but errors when the trimmed value is
// empty.
func requiredStringArg(args map[string]interface{}, key string) (string, error) {
	v := stringArg(args, key)
	if v == "" {
		return "", fmt.Errorf("%s is required", key)
	}
	return v, nil
}

// boolArg returns the boolean value of an argument, or def when absent or
// not a boolean.
func boolArg(args map[string]interface{}, key string, def bool) bool {
	if v, ok := args[key].(bool); ok {
		return v
	}
	return def
}

// titleArg extracts and validates a task title argument.
func titleArg(args map[string]interface{}, key string) (string, error) {
	v, err := requiredStringArg(args, key)
	if err != nil {
		return "", err
	}
	if len(v) > maxTitleLength {
		return "", fmt.Errorf("%s must be at most %d characters", key, maxTitleLength)
	}
	return v, nil
}

// taskListArg parses the "tasks" argument, which may be a single string or
// an array of strings. Titles are trimmed; blank titles are rejected.
func taskListArg(args map[string]interface{}) ([]string, error) {
	param, ok := args["tasks"]
	if !ok || param == nil {
		return nil, fmt.Errorf("tasks is required")
	}

	var titles []string
	switch v := param.(type) {
	case string:
		if strings.TrimSpace(v) == "" {
			return nil, fmt.Errorf("tasks cannot be empty")
		}
		titles = []string{strings.TrimSpace(v)}
	case []interface{}:
		for i, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("tasks[%d] must be a string", i)
			}
			s = strings.TrimSpace(s)
			if s == "" {
				return nil, fmt.Errorf("tasks[%d] cannot be empty", i)
			}
			if len(s) > maxTitleLength {
				return nil, fmt.Errorf("tasks[%d] must be at most %d characters", i, maxTitleLength)
			}
			titles = append(titles, s)
		}
	default:
		return nil, fmt.Errorf("tasks must be a string or array of strings")
	}

	if len(titles) == 0 {
		return nil, fmt.Errorf("tasks cannot be empty")
	}
	if len(titles) > maxBatchSize {
		return nil, fmt.Errorf("tasks must contain at most %d titles, got %d", maxBatchSize, len(titles))
	}
	return titles, nil
}

// addTaskInputFromArgs builds a validated TaskInput from tool arguments.
func addTaskInputFromArgs(args map[string]interface{}) (twodo.TaskInput, error) {
	var in twodo.TaskInput

	task, err := titleArg(args, "task")
	if err != nil {
		return in, err
	}

	taskType, err := twodo.ParseTaskType(stringArg(args, "task_type"))
	if err != nil {
		return in, err
	}

	priority, err := twodo.ParsePriority(stringArg(args, "priority"))
	if err != nil {
		return in, err
	}

	repeat, err := twodo.ParseRepeat(stringArg(args, "repeat"))
	if err != nil {
		return in, err
	}

	in = twodo.TaskInput{
		Task:            task,
		Type:            taskType,
		ForList:         stringArg(args, "for_list"),
		Note:            stringArg(args, "note"),
		Subtasks:        stringArg(args, "subtasks"),
		Priority:        priority,
		Starred:         boolArg(args, "starred", false),
		Tags:            stringArg(args, "tags"),
		Locations:       stringArg(args, "locations"),
		Due:             stringArg(args, "due"),
		DueTime:         stringArg(args, "due_time"),
		Start:           stringArg(args, "start"),
		Repeat:          repeat,
		Action:          stringArg(args, "action"),
		ForParentName:   stringArg(args, "for_parent_name"),
		ForParentTask:   stringArg(args, "for_parent_task"),
		IgnoreDefaults:  boolArg(args, "ignore_defaults", false),
		SaveInClipboard: boolArg(args, "save_in_clipboard", true),
		Edit:            boolArg(args, "edit", false),
	}
	return in, nil
}

// toolResult serializes a success envelope as an indented JSON tool result.
func toolResult(v interface{}) *mcp.CallToolResult {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return toolError(fmt.Sprintf("failed to serialize result: %v", err))
	}
	return mcp.NewToolResultText(string(out))
}

// toolError serializes a {"success": false, "error": ...} envelope as an
// error tool result. The message passes through verbatim so launcher
// diagnostics reach the caller unchanged.
func toolError(message string) *mcp.CallToolResult {
	out, _ := json.MarshalIndent(twodo.ErrorResult{Success: false, Error: message}, "", "  ")
	return mcp.NewToolResultError(string(out))
}

// getArguments extracts the argument map from a request. A request without
// a map (no arguments at all) yields an empty map.
func getArguments(request mcp.CallToolRequest) map[string]interface{} {
	if args, ok := request.Params.Arguments.(map[string]interface{}); ok {
		return args
	}
	return map[string]interface{}{}
}
