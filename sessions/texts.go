package sessions

import "fmt"

const Nudge = `Please continue, use any command/tags whatever you need to. Choose the sanest option.
You might be missing something. Ensure you have the info about the environment that you need`

func taskTurn(task string) string {
	return "The task is: " + task
}

func correctionTurn(err error) string {
	return fmt.Sprintf("Your response could not be parsed, so none of it was executed: %v\nRespond again using only the format described in the instructions.", err)
}
