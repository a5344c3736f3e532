package twodo_tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"twodo-mcp/internal/server"
	"twodo-mcp/internal/tools/common"
	"twodo-mcp/internal/twodo"
)

// registerAddTools registers the task creation tools: single add, batch add,
// paste-as-subtasks, and UID lookup.
func registerAddTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	addTaskTool := mcp.NewTool("twodo_add_task",
		mcp.WithDescription("Create a new task, project, or checklist in the 2Do app. "+
			"The new task's UID is saved to the clipboard by default for later reference."),
		mcp.WithTitleAnnotation("Add Task to 2Do"),
		mcp.WithReadOnlyHintAnnotation(false),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(false),
		mcp.WithOpenWorldHintAnnotation(false),
		mcp.WithString("task",
			mcp.Required(),
			mcp.Description("Title of the task (1-500 characters)"),
		),
		mcp.WithString("task_type",
			mcp.Description("Type: '0'=Task (default), '1'=Project, '2'=Checklist"),
		),
		mcp.WithString("for_list",
			mcp.Description("Name of the 2Do list to add to (case-insensitive). Omit for default list."),
		),
		mcp.WithString("note",
			mcp.Description("Notes/description for the task"),
		),
		mcp.WithString("subtasks",
			mcp.Description("Newline-separated subtask titles. Converts parent to Checklist automatically."),
		),
		mcp.WithString("priority",
			mcp.Description("Priority: '0'=None (default), '1'=Low, '2'=Medium, '3'=High"),
		),
		mcp.WithBoolean("starred",
			mcp.Description("Star/flag the task"),
		),
		mcp.WithString("tags",
			mcp.Description("Comma-separated tag names (e.g. 'work,urgent')"),
		),
		mcp.WithString("locations",
			mcp.Description("Comma-separated location names (e.g. 'Home,Office')"),
		),
		mcp.WithString("due",
			mcp.Description("Due date as 'YYYY-MM-DD' or integer days from today (0=today, 1=tomorrow)"),
		),
		mcp.WithString("due_time",
			mcp.Description("Due time in 24-hour format 'HH:MM' (e.g. '14:30'). Requires 'due' to be set."),
		),
		mcp.WithString("start",
			mcp.Description("Start date/time as 'YYYY-MM-DD HH:MM' or integer days from today"),
		),
		mcp.WithString("repeat",
			mcp.Description("Repeat: '1'=Daily, '2'=Weekly, '3'=Bi-weekly, '4'=Monthly"),
		),
		mcp.WithString("action",
			mcp.Description("Action URL (e.g. 'url:https://...', 'call:+1234', 'mail:user@email.com')"),
		),
		mcp.WithString("for_parent_name",
			mcp.Description("Name of the parent project to nest under. Requires 'for_list'."),
		),
		mcp.WithString("for_parent_task",
			mcp.Description("Parent task UID (32-char string) to nest under"),
		),
		mcp.WithBoolean("ignore_defaults",
			mcp.Description("Ignore 2Do's default due date/time settings for new tasks"),
		),
		mcp.WithBoolean("save_in_clipboard",
			mcp.Description("Save the new task's UID to clipboard after creation (default: true)"),
		),
		mcp.WithBoolean("edit",
			mcp.Description("Open the edit screen for the new task after creation"),
		),
	)

	s.AddTool(addTaskTool, common.InstrumentedToolHandlerWithOperation(
		"twodo_add_task", string(twodo.OpAdd), sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			in, err := addTaskInputFromArgs(getArguments(request))
			if err != nil {
				return toolError(err.Error()), nil
			}

			res, err := sc.TwodoClient().AddTask(ctx, in)
			if err != nil {
				return toolError(err.Error()), nil
			}
			return toolResult(res), nil
		}))

	addMultipleTool := mcp.NewTool("twodo_add_multiple_tasks",
		mcp.WithDescription("Create multiple tasks in 2Do with shared settings. "+
			"Tasks are created sequentially with a short delay between them."),
		mcp.WithTitleAnnotation("Add Multiple Tasks to 2Do"),
		mcp.WithReadOnlyHintAnnotation(false),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(false),
		mcp.WithOpenWorldHintAnnotation(false),
		mcp.WithArray("tasks",
			mcp.Required(),
			mcp.Description("Task titles to create (1-50 items)"),
			mcp.Items(map[string]interface{}{"type": "string"}),
		),
		mcp.WithString("for_list",
			mcp.Description("List to add all tasks to"),
		),
		mcp.WithString("priority",
			mcp.Description("Priority for all tasks: '0'=None, '1'=Low, '2'=Medium, '3'=High"),
		),
		mcp.WithString("tags",
			mcp.Description("Comma-separated tags for all tasks"),
		),
		mcp.WithString("due",
			mcp.Description("Due date for all tasks ('YYYY-MM-DD' or days from today)"),
		),
	)

	s.AddTool(addMultipleTool, common.InstrumentedToolHandlerWithOperation(
		"twodo_add_multiple_tasks", string(twodo.OpAdd), sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := getArguments(request)

			titles, err := taskListArg(args)
			if err != nil {
				return toolError(err.Error()), nil
			}

			priority, err := twodo.ParsePriority(stringArg(args, "priority"))
			if err != nil {
				return toolError(err.Error()), nil
			}

			res := sc.TwodoClient().AddTasks(ctx, twodo.BatchInput{
				Tasks:    titles,
				ForList:  stringArg(args, "for_list"),
				Priority: priority,
				Tags:     stringArg(args, "tags"),
				Due:      stringArg(args, "due"),
			})
			return toolResult(res), nil
		}))

	pasteTool := mcp.NewTool("twodo_paste_tasks",
		mcp.WithDescription("Paste multiline text as subtasks into an existing 2Do project. "+
			"Each non-empty line becomes a separate subtask."),
		mcp.WithTitleAnnotation("Paste Text as Subtasks"),
		mcp.WithReadOnlyHintAnnotation(false),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(false),
		mcp.WithOpenWorldHintAnnotation(false),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("Multiline text where each line becomes a subtask"),
		),
		mcp.WithString("in_project",
			mcp.Required(),
			mcp.Description("Title of the project to paste subtasks into"),
		),
		mcp.WithString("for_list",
			mcp.Required(),
			mcp.Description("Name of the list containing the project"),
		),
	)

	s.AddTool(pasteTool, common.InstrumentedToolHandlerWithOperation(
		"twodo_paste_tasks", string(twodo.OpPaste), sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := getArguments(request)

			text, ok := args["text"].(string)
			if !ok || text == "" {
				return toolError("text is required"), nil
			}

			inProject, err := requiredStringArg(args, "in_project")
			if err != nil {
				return toolError(err.Error()), nil
			}
			forList, err := requiredStringArg(args, "for_list")
			if err != nil {
				return toolError(err.Error()), nil
			}

			res, err := sc.TwodoClient().PasteTasks(ctx, twodo.PasteInput{
				Text:      text,
				InProject: inProject,
				ForList:   forList,
			})
			if err != nil {
				return toolError(err.Error()), nil
			}
			return toolResult(res), nil
		}))

	getTaskIDTool := mcp.NewTool("twodo_get_task_id",
		mcp.WithDescription("Get the unique identifier (UID) of an existing task by exact title and list. "+
			"The 32-character UID is saved to the clipboard; use it with for_parent_task when adding subtasks."),
		mcp.WithTitleAnnotation("Get Task UID"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(false),
		mcp.WithString("task",
			mcp.Required(),
			mcp.Description("Exact task title (must match exactly, case-sensitive)"),
		),
		mcp.WithString("for_list",
			mcp.Required(),
			mcp.Description("Name of the list containing the task"),
		),
	)

	s.AddTool(getTaskIDTool, common.InstrumentedToolHandlerWithOperation(
		"twodo_get_task_id", string(twodo.OpGetTaskID), sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := getArguments(request)

			task, err := requiredStringArg(args, "task")
			if err != nil {
				return toolError(err.Error()), nil
			}
			forList, err := requiredStringArg(args, "for_list")
			if err != nil {
				return toolError(err.Error()), nil
			}

			res, err := sc.TwodoClient().GetTaskID(ctx, twodo.TaskIDInput{
				Task:    task,
				ForList: forList,
			})
			if err != nil {
				return toolError(err.Error()), nil
			}
			return toolResult(res), nil
		}))

	return nil
}
