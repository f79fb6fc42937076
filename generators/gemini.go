package generators

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/reusee/dscope"
	"github.com/reusee/fash/logs"
	"github.com/reusee/fash/nets"
	"github.com/reusee/fash/vars"
	"google.golang.org/genai"
)

type Gemini struct {
	args      GeneratorArgs
	GetClient dscope.Inject[GetGeminiClient]
	Logger    dscope.Inject[logs.Logger]
}

var _ Generator = Gemini{}

func (g Gemini) Args() GeneratorArgs {
	return g.args
}

func (g Gemini) Generate(ctx context.Context, systemPrompt string, contents []Content, options *GenerateOptions) (string, error) {
	client, err := g.GetClient()(ctx, g.args)
	if err != nil {
		return "", err
	}

	config := &genai.GenerateContentConfig{
		Temperature: g.args.Temperature,
	}
	if g.args.MaxGenerateTokens != nil {
		config.MaxOutputTokens = int32(*g.args.MaxGenerateTokens)
	}
	if systemPrompt != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{
				{Text: systemPrompt},
			},
		}
	}
	if options != nil && options.JSON {
		config.ResponseMIMEType = "application/json"
	}

	var geminiContents []*genai.Content
	for _, content := range contents {
		role := content.Role
		if role != RoleUser {
			role = RoleModel
		}
		geminiContents = append(geminiContents, &genai.Content{
			Role: string(role),
			Parts: []*genai.Part{
				{Text: content.Text},
			},
		})
	}

	return doWithRetry(ctx, g.Logger(), func() (string, error) {
		g.Logger().InfoContext(ctx, "generating",
			"model", g.args.Model,
		)
		resp, err := client.Models.GenerateContent(ctx, g.args.Model, geminiContents, config)
		if err != nil {
			return "", fmt.Errorf("gemini: %w", err)
		}
		return geminiText(resp)
	})
}

// geminiText returns the first part of the first candidate
func geminiText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil ||
		len(resp.Candidates) == 0 ||
		resp.Candidates[0].Content == nil ||
		len(resp.Candidates[0].Content.Parts) == 0 {
		return "", ErrUnexpectedResponse
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}

type GetGeminiClient = func(ctx context.Context, args GeneratorArgs) (*genai.Client, error)

func (Module) GetGeminiClient(
	httpClient nets.HTTPClient,
	apiKey GoogleAPIKey,
) GetGeminiClient {
	var clients sync.Map // base url and key -> *genai.Client
	return func(ctx context.Context, args GeneratorArgs) (*genai.Client, error) {
		key := vars.FirstNonZero(
			args.APIKey,
			string(apiKey),
		)
		if key == "" {
			return nil, errors.Join(ErrNoAPIKey, fmt.Errorf("set google_api_key or GEMINI_API_KEY"))
		}

		cacheKey := args.BaseURL + "\x00" + key
		if v, ok := clients.Load(cacheKey); ok {
			return v.(*genai.Client), nil
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:     key,
			Backend:    genai.BackendGeminiAPI,
			HTTPClient: httpClient,
			HTTPOptions: genai.HTTPOptions{
				BaseURL: args.BaseURL,
			},
		})
		if err != nil {
			return nil, err
		}

		v, _ := clients.LoadOrStore(cacheKey, client)
		return v.(*genai.Client), nil
	}
}

type NewGemini func(args GeneratorArgs) Gemini

func (Module) NewGemini(
	inject dscope.InjectStruct,
) NewGemini {
	return func(args GeneratorArgs) Gemini {
		ret := Gemini{
			args: args,
		}
		inject(&ret)
		return ret
	}
}
