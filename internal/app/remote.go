package app

import "strings"

// HandleRemoteArgs applies one --remote invocation's argv to this running
// instance: `-c <cmd>`/`+<cmd>` run as ex-commands, `--select <path>`
// selects a file, other arguments starting with `-` are ignored, and
// anything else opens as a path in the active pane. Always runs on the main loop goroutine (via
// preFrame draining Context.Remote), never directly from the ipc.Server
// goroutine that received it.
func (c *Context) HandleRemoteArgs(argv []string) {
	for i := 0; i < len(argv); i++ {
		arg := argv[i]
		switch {
		case arg == "-c":
			if i+1 >= len(argv) {
				continue
			}
			i++
			if err := c.Dispatcher.Execute(argv[i]); err != nil {
				c.setStatus(err)
			}
		case strings.HasPrefix(arg, "+") && len(arg) > 1:
			if err := c.Dispatcher.Execute(arg[1:]); err != nil {
				c.setStatus(err)
			}
		case arg == "--select":
			if i+1 >= len(argv) {
				continue
			}
			i++
			if err := c.SelectFile(argv[i]); err != nil {
				c.Log.Error("remote: failed to select path", err)
			}
		case strings.HasPrefix(arg, "-"):
			// unknown flag from a newer client: ignored rather than refused,
			// since the remote sender already exited with its own result.
		default:
			if err := c.Active().Load(arg, false); err != nil {
				c.Log.Error("remote: failed to open path", err)
			}
		}
	}
}
