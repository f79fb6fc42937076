package prompts

import (
	"fmt"
	"strings"

	"github.com/reusee/fash/directives"
	"github.com/reusee/fash/personas"
)

type GetSystemPrompt func() (string, error)

func (Module) GetSystemPrompt(
	base BasePrompt,
	protocol directives.Protocol,
	getPersona personas.GetPersona,
	getTools personas.GetTools,
) GetSystemPrompt {
	return func() (string, error) {
		sections := []string{
			Header,
			strings.TrimSpace(string(base)),
		}

		persona, err := getPersona()
		if err != nil {
			return "", err
		}
		if persona != nil {
			sections = append(sections, fmt.Sprintf("The persona you need to adopt is:\n%s - %s\n%s",
				persona.Name,
				persona.Description,
				persona.Instructions,
			))
		}

		format, err := ResponseFormat(protocol)
		if err != nil {
			return "", err
		}
		sections = append(sections, format)

		tools, err := getTools()
		if err != nil {
			return "", err
		}
		if len(tools) > 0 {
			sections = append(sections, ToolsSection(tools))
		}

		return strings.Join(sections, "\n\n"), nil
	}
}

func ToolsSection(tools []personas.Tool) string {
	b := new(strings.Builder)
	b.WriteString("You can use the following tools:\n")
	for i, tool := range tools {
		if i > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(b, "%s\n%s\nCommand: %s", tool.Name, tool.Description, tool.Command)
	}
	return b.String()
}
