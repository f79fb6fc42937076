package generators

import (
	"os"

	"github.com/reusee/fash/configs"
	"github.com/reusee/fash/vars"
)

type (
	GoogleAPIKey string
	OpenAIAPIKey string
)

func (Module) GoogleAPIKey(
	loader configs.Loader,
) GoogleAPIKey {
	return vars.FirstNonZero(
		configs.First[GoogleAPIKey](loader, "google_api_key"),
		GoogleAPIKey(os.Getenv("GEMINI_API_KEY")),
		GoogleAPIKey(os.Getenv("GOOGLE_API_KEY")),
	)
}

func (Module) OpenAIAPIKey(
	loader configs.Loader,
) OpenAIAPIKey {
	return vars.FirstNonZero(
		configs.First[OpenAIAPIKey](loader, "openai_api_key"),
		OpenAIAPIKey(os.Getenv("OPENAI_API_KEY")),
	)
}
