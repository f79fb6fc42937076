package prompts

import (
	"fmt"
	"strings"

	"github.com/reusee/fash/directives"
)

const workflow = (`The user is another agent that forwards you the task.
You complete the task by running commands, reading files, writing files and sending messages.
After each of your responses, the user replies with the output of the commands you ran, the content of the files you read and the outcome of your writes.

Line numbers:
- file-read shows every line prefixed with its 1-based number.
- file-write-add inserts content before the line at 0-based index start. start 0 inserts at the top, start equal to the line count appends.
- file-write-replace replaces the lines from start up to but not including end, both 1-based. start 2 and end 4 replaces lines 2 and 3. Equal start and end inserts before that line.
- Every write changes the numbering. After a write you are told the new line count, read the file again before the next write if in doubt.`)

const jsonFormat = (`Respond with a JSON array of directive objects, and nothing else. Each object has a "type" field:
- {"type": "run", "command": string}: run a shell command
- {"type": "message", "text": string}: send a message to the user
- {"type": "reason", "text": string}: explain the reason for your actions
- {"type": "file-read", "path": string}: read a file
- {"type": "file-write-add", "path": string, "start": integer, "content": string}: insert into a file
- {"type": "file-write-replace", "path": string, "start": integer, "end": integer, "content": string}: replace lines of a file
- {"type": "end", "reason": string}: end the session`)

const markupFormat = (`Respond with a sequence of tags, and nothing else between them:
- <run>command</run>: run a shell command
- <message>text</message>: send a message to the user
- <reason>text</reason>: explain the reason for your actions
- <file-read><path>path</path></file-read>: read a file
- <file-write-add><path>path</path><start>integer</start><content>text</content></file-write-add>: insert into a file
- <file-write-replace><path>path</path><start>integer</start><end>integer</end><content>text</content></file-write-replace>: replace lines of a file
- <end>reason</end>: end the session
Text inside a tag must not contain the closing tag of that tag.`)

const guidance = (`Start every response with a reason directive. For a task:
1. Analyze the task and what the user means by it. Assume the user knows what they are talking about.
2. Break it down into small steps, with the details that matter: paths, line numbers, commands.
3. Pick the next step that is not done yet and do it.
4. List the limitations of the current step and how to overcome them.

Be proactive and drive the task forward. Get the information you need yourself, for example by reading README.md or listing files.
You may use any directive any number of times in one response.

When the task is complete, send the result to the user with a message, give the reason for ending, then end the session.
If the task is not complete, do not end. Plan the next step instead.`)

var example = []directives.Directive{
	directives.Reason{Text: "I need to know which files are here before writing the summary."},
	directives.Message{Text: "Hello!"},
	directives.Run{Command: "ls -l | head -n 10 > hello.txt"},
	directives.FileRead{Path: "hello.txt"},
}

// ResponseFormat describes the protocol to the model, with an encoded example
func ResponseFormat(protocol directives.Protocol) (string, error) {
	var format string
	switch protocol {
	case directives.ProtocolMarkup:
		format = markupFormat
	default:
		format = jsonFormat
	}
	encoded, err := directives.Encode(protocol, example)
	if err != nil {
		return "", err
	}
	return strings.Join([]string{
		workflow,
		format,
		fmt.Sprintf("For example, to greet the user, save the first ten lines of `ls -l` to a file and read it back:\n%s", encoded),
		guidance,
	}, "\n\n"), nil
}
