package generators

import (
	"context"
	"fmt"
	"strings"

	"github.com/reusee/fash/vars"
)

type Generator interface {
	Args() GeneratorArgs
	Generate(ctx context.Context, systemPrompt string, contents []Content, options *GenerateOptions) (string, error)
}

type GenerateOptions struct {
	// JSON asks for a JSON document when the service supports it
	JSON bool
}

const ollamaBaseURL = "http://127.0.0.1:11434/v1"

type GetGenerator func(name string) (Generator, error)

func (Module) GetGenerator(
	newGemini NewGemini,
	newOpenAI NewOpenAI,
	getSpecs GetGeneratorSpecs,
) GetGenerator {
	return func(name string) (Generator, error) {

		// user-defined first
		specs, err := getSpecs()
		if err != nil {
			return nil, err
		}
		for _, spec := range specs {
			if spec.Name != name {
				continue
			}
			switch strings.ToLower(spec.Type) {
			case "gemini":
				return newGemini(spec.GeneratorArgs), nil
			case "openai", "open-ai", "open_ai":
				return newOpenAI(spec.GeneratorArgs), nil
			case "ollama":
				spec.GeneratorArgs.BaseURL = vars.FirstNonZero(spec.GeneratorArgs.BaseURL, ollamaBaseURL)
				return newOpenAI(spec.GeneratorArgs), nil
			default:
				return nil, fmt.Errorf("unknown generator type: %q", spec.Type)
			}
		}

		// ollama
		provider, modelName, ok := strings.Cut(name, ":")
		if ok && provider == "ollama" {
			return newOpenAI(GeneratorArgs{
				BaseURL: ollamaBaseURL,
				Model:   modelName,
			}), nil
		}

		// built-ins
		switch name {

		case "flash", "gemini-flash":
			return newGemini(GeneratorArgs{
				Model:             "gemini-2.0-flash",
				MaxGenerateTokens: vars.PtrTo(8 * K),
				Temperature:       vars.PtrTo(float32(0.1)),
			}), nil

		case "pro", "gemini-pro":
			return newGemini(GeneratorArgs{
				Model:             "gemini-2.5-pro",
				MaxGenerateTokens: vars.PtrTo(32 * K),
				Temperature:       vars.PtrTo(float32(0.1)),
			}), nil

		}

		return nil, fmt.Errorf("invalid model: %s", name)
	}
}
