// Package openai implements the chat-completion stage: it sends the assembled
// prompt to an OpenAI-compatible endpoint and parses the reply into a
// ProductRecord, degrading through a repair step to a static fallback rather
// than ever failing the request.
package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"unicode/utf8"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/sirupsen/logrus"

	"github.com/romeoscript/Unboxed/config"
	"github.com/romeoscript/Unboxed/internal/domain"
)

const systemInstruction = "You are a product data extraction assistant. " +
	"Respond with a single JSON object only. No prose, no markdown fences."

const schemaInstruction = `Extract the product described below into JSON matching exactly this schema:
{
  "url": string,
  "title": string,
  "category": string,
  "attributes": {
    "colorOptions": string[],
    "sizeOptions": string[]
  },
  "rawPrice": number
}
You may add extra keys inside "attributes" when the page clearly supports them.
Use 0 for rawPrice and empty arrays when a field cannot be determined.`

// jsonObjectPattern grabs the outermost {...} span when the model wraps its
// JSON in prose despite the system instruction.
var jsonObjectPattern = regexp.MustCompile(`\{[\s\S]*\}`)

// Client calls a chat-completion endpoint with a per-request API key.
type Client struct {
	baseURL     string
	model       string
	temperature float64
	maxTokens   int64
	log         *logrus.Logger
}

// NewClient creates a completion client from the OpenAI configuration.
func NewClient(cfg config.OpenAIConfig, log *logrus.Logger) *Client {
	return &Client{
		baseURL:     cfg.BaseURL,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
		log:         log,
	}
}

// CompleteProduct sends one completion request and parses the reply. It never
// returns an error: credential, quota and malformed-response failures all
// collapse into a fallback record so the endpoint can keep its 200 contract.
func (c *Client) CompleteProduct(ctx context.Context, apiKey, url, prompt string) domain.CompletionResult {
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if c.baseURL != "" {
		opts = append(opts, option.WithBaseURL(c.baseURL))
	}
	client := openai.NewClient(opts...)

	req := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemInstruction),
			openai.UserMessage(schemaInstruction + "\n\n" + prompt),
		},
		Temperature:         openai.Float(c.temperature),
		MaxCompletionTokens: openai.Int(c.maxTokens),
	}

	resp, err := client.Chat.Completions.New(ctx, req)
	if err != nil {
		c.log.Warnf("Chat completion failed for %s: %v", url, err)
		return domain.CompletionResult{
			Record: errorFallback(url, err),
			Tier:   domain.TierFallback,
		}
	}

	var content string
	if len(resp.Choices) > 0 {
		content = resp.Choices[0].Message.Content
	}

	return c.parseContent(url, content)
}

// parseContent walks the recovery ladder: strict parse, then the first JSON
// object span, then the fallback record.
func (c *Client) parseContent(url, content string) domain.CompletionResult {
	if record, ok := parseRecord(content); ok {
		return domain.CompletionResult{Record: normalize(record, url), Tier: domain.TierStrict}
	}

	if span := jsonObjectPattern.FindString(content); span != "" {
		if record, ok := parseRecord(span); ok {
			c.log.Debugf("Recovered embedded JSON object for %s", url)
			return domain.CompletionResult{Record: normalize(record, url), Tier: domain.TierRepaired}
		}
	}

	c.log.Warnf("Completion response unparsable for %s (%d bytes)", url, len(content))
	return domain.CompletionResult{Record: domain.FallbackRecord(url), Tier: domain.TierFallback}
}

func parseRecord(text string) (domain.ProductRecord, bool) {
	var record domain.ProductRecord
	if err := json.Unmarshal([]byte(text), &record); err != nil {
		return domain.ProductRecord{}, false
	}
	return record, true
}

// normalize pins the record to the request URL and guarantees non-nil option
// slices, so consumers always see the same shape.
func normalize(record domain.ProductRecord, url string) domain.ProductRecord {
	record.URL = url
	if record.Attributes.ColorOptions == nil {
		record.Attributes.ColorOptions = []string{}
	}
	if record.Attributes.SizeOptions == nil {
		record.Attributes.SizeOptions = []string{}
	}
	return record
}

// maxErrorChars bounds the error excerpt embedded in the fallback title.
const maxErrorChars = 80

// errorFallback embeds a truncated error message in the fallback title so the
// caller can at least see that the completion stage, not extraction, failed.
func errorFallback(url string, err error) domain.ProductRecord {
	msg := err.Error()
	if len(msg) > maxErrorChars {
		msg = msg[:maxErrorChars]
		// back off a partial rune at the cut
		for len(msg) > 0 {
			r, size := utf8.DecodeLastRuneInString(msg)
			if r != utf8.RuneError || size != 1 {
				break
			}
			msg = msg[:len(msg)-1]
		}
	}
	record := domain.FallbackRecord(url)
	record.Title = fmt.Sprintf("Unknown Product (%s)", msg)
	return record
}
