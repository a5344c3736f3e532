package twodo_tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"twodo-mcp/internal/server"
	"twodo-mcp/internal/tools/common"
	"twodo-mcp/internal/twodo"
)

// viewToolSpec describes one of the parameterless built-in view tools.
type viewToolSpec struct {
	name  string
	title string
	desc  string
	view  twodo.View
	op    twodo.Op
}

var viewToolSpecs = []viewToolSpec{
	{
		name:  "twodo_show_today",
		title: "Show Today View",
		desc:  "Navigate to the Today view in the 2Do app.",
		view:  twodo.ViewToday,
		op:    twodo.OpShowToday,
	},
	{
		name:  "twodo_show_starred",
		title: "Show Starred View",
		desc:  "Navigate to the Starred view in the 2Do app.",
		view:  twodo.ViewStarred,
		op:    twodo.OpShowStarred,
	},
	{
		name:  "twodo_show_scheduled",
		title: "Show Scheduled View",
		desc:  "Navigate to the Scheduled view in the 2Do app.",
		view:  twodo.ViewScheduled,
		op:    twodo.OpShowScheduled,
	},
	{
		name:  "twodo_show_all",
		title: "Show All Tasks View",
		desc:  "Navigate to the All Tasks view in the 2Do app.",
		view:  twodo.ViewAll,
		op:    twodo.OpShowAll,
	},
}

// registerShowTools registers the navigation tools: show list, the four
// built-in views, and search. They only bring 2Do to the foreground; no
// data comes back.
func registerShowTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	showListTool := mcp.NewTool("twodo_show_list",
		mcp.WithDescription("Open the 2Do app and switch to the named list."),
		mcp.WithTitleAnnotation("Show List"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(false),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Name of the list to show"),
		),
	)

	s.AddTool(showListTool, common.InstrumentedToolHandlerWithOperation(
		"twodo_show_list", string(twodo.OpShowList), sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			name, err := requiredStringArg(getArguments(request), "name")
			if err != nil {
				return toolError(err.Error()), nil
			}

			res, err := sc.TwodoClient().ShowList(ctx, name)
			if err != nil {
				return toolError(err.Error()), nil
			}
			return toolResult(res), nil
		}))

	for _, spec := range viewToolSpecs {
		spec := spec
		viewTool := mcp.NewTool(spec.name,
			mcp.WithDescription(spec.desc),
			mcp.WithTitleAnnotation(spec.title),
			mcp.WithReadOnlyHintAnnotation(true),
			mcp.WithDestructiveHintAnnotation(false),
			mcp.WithIdempotentHintAnnotation(true),
			mcp.WithOpenWorldHintAnnotation(false),
		)

		s.AddTool(viewTool, common.InstrumentedToolHandlerWithOperation(
			spec.name, string(spec.op), sc,
			func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				res, err := sc.TwodoClient().ShowView(ctx, spec.view)
				if err != nil {
					return toolError(err.Error()), nil
				}
				return toolResult(res), nil
			}))
	}

	searchTool := mcp.NewTool("twodo_search",
		mcp.WithDescription("Open 2Do with a search query. Results are displayed in the 2Do app window, "+
			"not returned here. Supports special syntax: 'type:overdue' for overdue tasks, "+
			"'tags:work' for tagged tasks, '(clipboard)' to search clipboard contents."),
		mcp.WithTitleAnnotation("Search in 2Do"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(false),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("Search query"),
		),
	)

	s.AddTool(searchTool, common.InstrumentedToolHandlerWithOperation(
		"twodo_search", string(twodo.OpSearch), sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			text, err := requiredStringArg(getArguments(request), "text")
			if err != nil {
				return toolError(err.Error()), nil
			}

			res, err := sc.TwodoClient().Search(ctx, text)
			if err != nil {
				return toolError(err.Error()), nil
			}
			return toolResult(res), nil
		}))

	return nil
}
