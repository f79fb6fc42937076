package prompts

import (
	"os"

	"github.com/reusee/fash/configs"
	"github.com/reusee/fash/logs"
)

type SystemPromptConfig struct {
	FilePath   string `json:"file_path"`
	InlineText string `json:"inline_text"`
}

// BasePrompt is the operator's part of the system prompt
type BasePrompt string

func (Module) BasePrompt(
	loader configs.Loader,
	logger logs.Logger,
) BasePrompt {
	config := configs.First[SystemPromptConfig](loader, "system_prompt")
	if config.FilePath != "" {
		content, err := os.ReadFile(config.FilePath)
		if err == nil {
			return BasePrompt(content)
		}
		logger.Warn("system prompt file not readable",
			"path", config.FilePath,
			"error", err,
		)
	}
	if config.InlineText != "" {
		return BasePrompt(config.InlineText)
	}
	return DefaultBasePrompt
}
