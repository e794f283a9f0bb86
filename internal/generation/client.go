package generation

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
	"scribcraft/internal/config"
)

// fixed request templates prepended to the user prompt
const (
	imageStylePrefix = "Digital concept art, detailed, dramatic lighting: "

	textPromptTemplate = "Write a short story outline based on the following prompt. " +
		"Describe the main characters and their motivations, the antagonist, " +
		"the inciting incident, the rising action and the conclusion.\n\nPrompt: %s"
)

type Generator interface {
	GenerateScrib(ctx context.Context, prompt string) (*Result, error)
}

// Result holds both halves of one generation run: the provider-hosted
// image URLs (short-lived, expire after about an hour) and the story text
type Result struct {
	ImageURLs []string
	Text      string
}

type Client struct {
	api *openai.Client
	cfg config.OpenAI
}

func NewClient(cfg config.OpenAI) *Client {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	return &Client{
		api: openai.NewClientWithConfig(clientConfig),
		cfg: cfg,
	}
}

// GenerateScrib runs the image and text calls concurrently and waits for
// both. The first failure cancels the sibling call, its result is discarded.
// Provider errors are returned as-is, no retries
func (c *Client) GenerateScrib(ctx context.Context, prompt string) (*Result, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	imageCh := make(chan []string, 1)
	textCh := make(chan string, 1)
	errCh := make(chan error, 2)

	go func() {
		urls, err := c.generateImages(ctx, prompt)
		if err != nil {
			errCh <- err
			cancel()
			return
		}
		imageCh <- urls
	}()

	go func() {
		text, err := c.generateText(ctx, prompt)
		if err != nil {
			errCh <- err
			cancel()
			return
		}
		textCh <- text
	}()

	result := &Result{}
	var firstErr error

	for i := 0; i < 2; i++ {
		select {
		case urls := <-imageCh:
			result.ImageURLs = urls
		case text := <-textCh:
			result.Text = text
		case err := <-errCh:
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	if firstErr != nil {
		return nil, firstErr
	}

	return result, nil
}

func (c *Client) generateImages(ctx context.Context, prompt string) ([]string, error) {
	resp, err := c.api.CreateImage(ctx, openai.ImageRequest{
		Prompt:         imageStylePrefix + prompt,
		N:              c.cfg.ImageCount,
		Size:           c.cfg.ImageSize,
		ResponseFormat: openai.CreateImageResponseFormatURL,
	})
	if err != nil {
		return nil, fmt.Errorf("ошибка генерации изображений: %w", providerError(err))
	}

	if len(resp.Data) == 0 {
		return nil, errors.New("ошибка генерации изображений: провайдер не вернул ни одного изображения")
	}

	urls := make([]string, 0, len(resp.Data))
	for _, item := range resp.Data {
		urls = append(urls, item.URL)
	}

	return urls, nil
}

func (c *Client) generateText(ctx context.Context, prompt string) (string, error) {
	resp, err := c.api.CreateCompletion(ctx, openai.CompletionRequest{
		Model:       c.cfg.TextModel,
		Prompt:      fmt.Sprintf(textPromptTemplate, prompt),
		MaxTokens:   c.cfg.MaxTokens,
		Temperature: float32(c.cfg.Temperature),
	})
	if err != nil {
		return "", fmt.Errorf("ошибка генерации текста: %w", providerError(err))
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("ошибка генерации текста: провайдер не вернул ни одного варианта")
	}

	return resp.Choices[0].Text, nil
}

// providerError unwraps the provider error payload so the user sees the
// provider's own message instead of a raw HTTP status
func providerError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("провайдер вернул ошибку (%s): %s", apiErr.Type, apiErr.Message)
	}
	return err
}
