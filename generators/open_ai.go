package generators

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/reusee/dscope"
	"github.com/reusee/fash/logs"
	"github.com/reusee/fash/nets"
	"github.com/reusee/fash/vars"
)

// OpenAI talks to OpenAI and compatible chat completion services
type OpenAI struct {
	args   GeneratorArgs
	client openai.Client

	Logger dscope.Inject[logs.Logger]
}

var _ Generator = new(OpenAI)

func (o *OpenAI) Args() GeneratorArgs {
	return o.args
}

func (o *OpenAI) Generate(ctx context.Context, systemPrompt string, contents []Content, options *GenerateOptions) (string, error) {
	var messages []openai.ChatCompletionMessageParamUnion
	if systemPrompt != "" {
		messages = append(messages, openai.SystemMessage(systemPrompt))
	}
	for _, content := range contents {
		switch content.Role {
		case RoleUser:
			messages = append(messages, openai.UserMessage(content.Text))
		default:
			messages = append(messages, openai.AssistantMessage(content.Text))
		}
	}

	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(o.args.Model),
		Messages: messages,
	}
	if o.args.Temperature != nil {
		params.Temperature = openai.Float(float64(*o.args.Temperature))
	}
	if o.args.MaxGenerateTokens != nil {
		params.MaxCompletionTokens = openai.Int(int64(*o.args.MaxGenerateTokens))
	}
	// the protocol is a JSON array, json_object mode would reject it

	return doWithRetry(ctx, o.Logger(), func() (string, error) {
		o.Logger().InfoContext(ctx, "generating",
			"model", o.args.Model,
			"base url", o.args.BaseURL,
		)
		completion, err := o.client.Chat.Completions.New(ctx, params)
		if err != nil {
			return "", fmt.Errorf("openai: %w", err)
		}
		return openAIText(completion)
	})
}

func openAIText(completion *openai.ChatCompletion) (string, error) {
	if completion == nil || len(completion.Choices) == 0 {
		return "", ErrUnexpectedResponse
	}
	return completion.Choices[0].Message.Content, nil
}

type NewOpenAI func(args GeneratorArgs) *OpenAI

func (Module) NewOpenAI(
	inject dscope.InjectStruct,
	httpClient nets.HTTPClient,
	apiKey OpenAIAPIKey,
) NewOpenAI {
	return func(args GeneratorArgs) *OpenAI {
		opts := []option.RequestOption{
			option.WithHTTPClient(httpClient),
			// retries are done by doWithRetry
			option.WithMaxRetries(0),
		}
		key := vars.FirstNonZero(args.APIKey, string(apiKey))
		if key == "" {
			// local servers accept any key
			key = "none"
		}
		opts = append(opts, option.WithAPIKey(key))
		if args.BaseURL != "" {
			opts = append(opts, option.WithBaseURL(args.BaseURL))
		}
		ret := &OpenAI{
			args:   args,
			client: openai.NewClient(opts...),
		}
		inject(ret)
		return ret
	}
}
