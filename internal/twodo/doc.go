// Package twodo provides a client for the 2Do macOS app's x-callback-url
// scheme.
//
// 2Do exposes no read API: every operation is a write-only URL launched
// through the macOS default-handler dispatch, and the only data the app ever
// returns is a 32-character task UID written to the system clipboard. The
// client therefore implements a call-and-confirm protocol: encode a request
// into a percent-encoded URI, launch it, wait a short settle delay, and
// optionally poll the clipboard for a UID.
//
// Supported operations:
//   - Adding tasks, projects, and checklists with full parameter coverage
//   - Sequential batch creation with shared settings
//   - Pasting multiline text as subtasks into an existing project
//   - Resolving an exact task title to its UID
//   - Navigating to lists and built-in views (Today, Starred, Scheduled, All)
//   - Opening the app with a search query
//
// The client shells out through two narrow capability interfaces (Launcher
// and ClipboardReader); see the launcher package for the macOS
// implementations. All delays and timeouts come from an explicit Config so
// tests can shrink them to zero.
//
// Example usage:
//
//	client := twodo.NewClient(twodo.DefaultConfig(),
//	    launcher.NewOpenCommand(), launcher.NewPasteboard(), slog.Default())
//
//	res, err := client.AddTask(ctx, twodo.TaskInput{
//	    Task:            "Buy milk",
//	    ForList:         "Groceries",
//	    SaveInClipboard: true,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if res.UID != nil {
//	    fmt.Printf("created task %s\n", *res.UID)
//	}
package twodo
