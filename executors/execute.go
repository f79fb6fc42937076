package executors

import (
	"context"
	"fmt"

	"github.com/reusee/fash/directives"
	"github.com/reusee/fash/logs"
)

// Result is the outcome of one directive. Feedback is empty when there is nothing to report.
type Result struct {
	Feedback string
	Terminal bool
}

// Execute performs one directive. Returned errors are fatal to the session; recoverable problems are reported in Feedback.
type Execute func(ctx context.Context, directive directives.Directive) (Result, error)

func (Module) Execute(
	console Console,
	logger logs.Logger,
) Execute {
	return func(ctx context.Context, directive directives.Directive) (ret Result, err error) {
		logger.DebugContext(ctx, "execute",
			"kind", directive.Kind(),
		)

		switch directive := directive.(type) {

		case directives.Run:
			logger.InfoContext(ctx, "run", "command", directive.Command)
			ret.Feedback, err = runCommand(ctx, console, directive.Command)

		case directives.Message:
			logger.InfoContext(ctx, "message", "text", directive.Text)
			// console output is best effort
			_ = console.PrintMessage(directive.Text)

		case directives.Reason:
			logger.DebugContext(ctx, "reason", "text", directive.Text)

		case directives.FileRead:
			logger.InfoContext(ctx, "file read", "path", directive.Path)
			ret.Feedback = readFile(directive.Path)

		case directives.FileWriteInsert:
			logger.InfoContext(ctx, "file write insert",
				"path", directive.Path,
				"start", directive.Start,
			)
			logger.DebugContext(ctx, "content", "text", directive.Content)
			ret.Feedback, err = insertIntoFile(directive.Path, directive.Start, directive.Content)

		case directives.FileWriteReplace:
			logger.InfoContext(ctx, "file write replace",
				"path", directive.Path,
				"start", directive.Start,
				"end", directive.End,
			)
			logger.DebugContext(ctx, "content", "text", directive.Content)
			ret.Feedback, err = replaceInFile(directive.Path, directive.Start, directive.End, directive.Content)

		case directives.End:
			logger.InfoContext(ctx, "end", "reason", directive.Reason)
			ret.Terminal = true

		default:
			err = fmt.Errorf("unknown directive: %T", directive)

		}

		return
	}
}
