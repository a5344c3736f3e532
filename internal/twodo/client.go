package twodo

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"twodo-mcp/internal/instrumentation"
	"twodo-mcp/internal/logging"
)

// Launcher hands a URI to the operating system's default handler. The call
// returns once the handler has accepted the URI; it does not wait for the
// target app to finish processing it.
type Launcher interface {
	Launch(ctx context.Context, uri string) error
}

// ClipboardReader returns the current system clipboard text. It never fails:
// any underlying fault reads as an empty clipboard.
type ClipboardReader interface {
	Read(ctx context.Context) string
}

// Config holds the protocol's timing knobs. 2Do gives no completion signal,
// so the settle and batch delays are fixed pauses, not polls.
type Config struct {
	// BaseURL is the x-callback-url root, normally DefaultBaseURL.
	BaseURL string

	// LaunchTimeout bounds a single URI launch.
	LaunchTimeout time.Duration

	// ClipboardTimeout bounds a single clipboard read.
	ClipboardTimeout time.Duration

	// ClipboardSettle is how long to wait after a launch before trusting
	// the clipboard to hold the result.
	ClipboardSettle time.Duration

	// BatchDelay is the pause between consecutive batch launches, giving
	// 2Do time to process each URL before the next arrives.
	BatchDelay time.Duration
}

// DefaultConfig returns the production timing configuration.
func DefaultConfig() Config {
	return Config{
		BaseURL:          DefaultBaseURL,
		LaunchTimeout:    10 * time.Second,
		ClipboardTimeout: 5 * time.Second,
		ClipboardSettle:  500 * time.Millisecond,
		BatchDelay:       300 * time.Millisecond,
	}
}

// Client drives 2Do through its URL scheme. All operations are synchronous;
// the zero concurrency is deliberate since the scheme itself is serial.
type Client struct {
	cfg       Config
	launcher  Launcher
	clipboard ClipboardReader
	logger    *slog.Logger
	metrics   *instrumentation.Metrics
}

// NewClient creates a Client. The logger must not be nil; pass
// slog.Default() if no specific logger is configured.
func NewClient(cfg Config, launcher Launcher, clipboard ClipboardReader, logger *slog.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	return &Client{
		cfg:       cfg,
		launcher:  launcher,
		clipboard: clipboard,
		logger:    logger,
	}
}

// SetMetrics attaches an instrumentation recorder. All Metrics methods are
// nil-safe, so leaving this unset disables recording without any guards in
// the call paths.
func (c *Client) SetMetrics(m *instrumentation.Metrics) {
	c.metrics = m
}

// AddTask creates a single task, project, or checklist. When
// in.SaveInClipboard is set the new task's UID is captured best-effort; a
// capture miss leaves UID nil and is not an error.
func (c *Client) AddTask(ctx context.Context, in TaskInput) (*AddTaskResult, error) {
	uri := BuildAddURL(c.cfg.BaseURL, in)
	if err := c.launch(ctx, OpAdd, uri); err != nil {
		return nil, err
	}

	var uid *string
	if in.SaveInClipboard {
		if got, ok := c.readTaskUID(ctx); ok {
			uid = &got
		}
	}

	return &AddTaskResult{
		Success: true,
		Task:    in.Task,
		List:    listName(in.ForList),
		UID:     uid,
	}, nil
}

// AddTasks creates the batch's tasks strictly in order, pausing BatchDelay
// between launches. One failing item never aborts the rest; the per-item
// outcomes land in the result, which is why no error is returned.
func (c *Client) AddTasks(ctx context.Context, in BatchInput) *BatchResult {
	res := &BatchResult{
		Total:   len(in.Tasks),
		Results: make([]BatchItemResult, 0, len(in.Tasks)),
	}

	for i, title := range in.Tasks {
		if i > 0 {
			sleepCtx(ctx, c.cfg.BatchDelay)
		}
		item := BatchItemResult{Task: title}
		_, err := c.AddTask(ctx, TaskInput{
			Task:     title,
			ForList:  in.ForList,
			Priority: in.Priority,
			Tags:     in.Tags,
			Due:      in.Due,
		})
		if err != nil {
			msg := err.Error()
			item.Error = &msg
			res.Failed++
		} else {
			item.Success = true
			res.Successful++
		}
		c.metrics.RecordBatchItem(ctx, item.Success)
		res.Results = append(res.Results, item)
	}

	res.Success = res.Failed == 0
	return res
}

// PasteTasks pastes multiline text into an existing project; 2Do turns each
// line into a subtask. The returned count is computed locally from the
// non-blank lines, since 2Do reports nothing back.
func (c *Client) PasteTasks(ctx context.Context, in PasteInput) (*PasteResult, error) {
	uri := BuildPasteURL(c.cfg.BaseURL, in)
	if err := c.launch(ctx, OpPaste, uri); err != nil {
		return nil, err
	}

	count := 0
	for _, line := range strings.Split(in.Text, "\n") {
		if strings.TrimSpace(line) != "" {
			count++
		}
	}

	return &PasteResult{
		Success:    true,
		Project:    in.InProject,
		List:       in.ForList,
		TasksAdded: count,
	}, nil
}

// GetTaskID resolves an exact task title within a list to its 32-character
// UID. Unlike AddTask's best-effort capture, a missing UID here is a
// NotFoundError, because the UID is the entire point of the call.
func (c *Client) GetTaskID(ctx context.Context, in TaskIDInput) (*TaskIDResult, error) {
	uri := BuildGetTaskIDURL(c.cfg.BaseURL, in)
	if err := c.launch(ctx, OpGetTaskID, uri); err != nil {
		return nil, err
	}

	uid, ok := c.readTaskUID(ctx)
	if !ok {
		return nil, &NotFoundError{Task: in.Task, List: in.ForList}
	}

	return &TaskIDResult{
		Success: true,
		Task:    in.Task,
		List:    in.ForList,
		UID:     uid,
	}, nil
}

// ShowList brings 2Do to the foreground showing the named list.
func (c *Client) ShowList(ctx context.Context, name string) (*ListResult, error) {
	uri := BuildShowListURL(c.cfg.BaseURL, name)
	if err := c.launch(ctx, OpShowList, uri); err != nil {
		return nil, err
	}
	return &ListResult{Success: true, List: name}, nil
}

// ShowView brings 2Do to the foreground showing a built-in view.
func (c *Client) ShowView(ctx context.Context, view View) (*ViewResult, error) {
	op, ok := viewOps[view]
	if !ok {
		return nil, fmt.Errorf("unknown view %q: must be one of today, starred, scheduled, all", view)
	}
	uri := BuildViewURL(c.cfg.BaseURL, view)
	if err := c.launch(ctx, op, uri); err != nil {
		return nil, err
	}
	return &ViewResult{Success: true, View: view.DisplayName()}, nil
}

// Search opens 2Do with the query entered in its search field. Matches are
// only ever displayed in the app window.
func (c *Client) Search(ctx context.Context, text string) (*SearchResult, error) {
	uri := BuildSearchURL(c.cfg.BaseURL, text)
	if err := c.launch(ctx, OpSearch, uri); err != nil {
		return nil, err
	}
	return &SearchResult{
		Success: true,
		Query:   text,
		Note:    "Results displayed in 2Do app",
	}, nil
}

// launch hands a URI to the launcher under the configured timeout and
// records the outcome. Launcher errors pass through untouched so their
// diagnostics reach the caller verbatim.
func (c *Client) launch(ctx context.Context, op Op, uri string) error {
	ctx, span := instrumentation.StartLaunchSpan(ctx, string(op))
	defer span.End()

	lctx, cancel := context.WithTimeout(ctx, c.cfg.LaunchTimeout)
	defer cancel()

	start := time.Now()
	err := c.launcher.Launch(lctx, uri)
	elapsed := time.Since(start)

	status := instrumentation.StatusSuccess
	if err != nil {
		status = instrumentation.StatusError
	}
	c.metrics.RecordLaunch(ctx, string(op), status, elapsed)

	if err != nil {
		instrumentation.SetSpanError(span, err)
		c.logger.Error("URI launch failed",
			logging.Operation(string(op)),
			logging.URI(uri),
			logging.Err(err),
		)
		return err
	}

	instrumentation.SetSpanSuccess(span)

	c.logger.Debug("URI launched",
		logging.Operation(string(op)),
		logging.URI(uri),
		logging.Duration(elapsed),
	)
	return nil
}

// readTaskUID waits out the settle delay, then reads the clipboard under the
// configured timeout. Only an exactly 32-character read counts as a UID;
// anything else (empty clipboard, leftover user content) reports no UID.
func (c *Client) readTaskUID(ctx context.Context) (string, bool) {
	sleepCtx(ctx, c.cfg.ClipboardSettle)

	rctx, cancel := context.WithTimeout(ctx, c.cfg.ClipboardTimeout)
	defer cancel()

	content := strings.TrimSpace(c.clipboard.Read(rctx))
	switch {
	case content == "":
		c.metrics.RecordClipboardRead(ctx, instrumentation.ClipboardResultEmpty)
		return "", false
	case len(content) != UIDLength:
		c.metrics.RecordClipboardRead(ctx, instrumentation.ClipboardResultMismatch)
		c.logger.Debug("clipboard content is not a task UID",
			slog.Int("length", len(content)),
		)
		return "", false
	}
	c.metrics.RecordClipboardRead(ctx, instrumentation.ClipboardResultUID)
	return content, true
}

// listName substitutes the display placeholder for an unset target list.
func listName(forList string) string {
	if forList == "" {
		return DefaultListName
	}
	return forList
}

// sleepCtx pauses for d or until ctx is done, whichever comes first.
func sleepCtx(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}
