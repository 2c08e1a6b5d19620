package annotator

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/spacesedan/annoflow/internal/clients"
	"github.com/spacesedan/annoflow/internal/models"
)

const nerPrompt = `Identify every named entity in the user's text.

### **STRICT OUTPUT FORMAT**
You MUST return only **valid JSON**, formatted exactly as follows:
{
  "entities": [
    {"type": "PERSON", "text": "XXX", "startIndex": 0, "endIndex": 0}
  ]
}

### **REQUIREMENTS**
- startIndex/endIndex are **character offsets** (codepoints, half-open) into the exact text you were given.
- "text" must equal the substring at those offsets. **Do NOT modify the text**.
- Entities sorted ascending by startIndex.
- **No Markdown formatting** (no triple backticks, no explanations).
- **No extra text before or after the JSON output**.
- If the text has no entities, return {"entities": []}.`

const sentimentPrompt = `Judge the overall sentiment of the user's text.

### **STRICT OUTPUT FORMAT**
You MUST return only **valid JSON**, formatted exactly as follows:
{
  "sentiment": "positive",
  "confidence": 0.0
}

### **REQUIREMENTS**
- "sentiment" is exactly one of: positive, negative, neutral.
- "confidence" is a number between 0 and 1.
- **No Markdown formatting** (no triple backticks, no explanations).
- **No extra text before or after the JSON output**.`

const posPrompt = `Tag every token of the user's text with its Penn Treebank part-of-speech tag.

### **STRICT OUTPUT FORMAT**
You MUST return only **valid JSON**, formatted exactly as follows:
{
  "tokens": [
    {"token": "XXX", "tag": "XXX"}
  ]
}

### **REQUIREMENTS**
- One entry per token, in source order. Punctuation is its own token.
- **No Markdown formatting** (no triple backticks, no explanations).
- **No extra text before or after the JSON output**.`

// OpenAIAnnotator is the hosted backend: one chat completion per request
// under a strict JSON contract, parsed through the models boundary.
type OpenAIAnnotator struct{}

func NewOpenAIAnnotator() *OpenAIAnnotator {
	return &OpenAIAnnotator{}
}

func (a *OpenAIAnnotator) Annotate(ctx context.Context, doc models.Document, analysisType models.AnalysisType) (*models.AnnotationResult, error) {
	prompt, err := promptFor(analysisType)
	if err != nil {
		return nil, err
	}

	var lastErr error

	for attempt := 1; attempt <= clients.MAX_RETRIES; attempt++ {
		chatCompletion, err := clients.GetAIClient().Client.Chat.Completions.New(ctx,
			openai.ChatCompletionNewParams{
				Messages: openai.F([]openai.ChatCompletionMessageParamUnion{
					openai.SystemMessage(prompt),
					openai.UserMessage(doc.Text),
				}),
				Model:       openai.F(openai.ChatModelGPT4oMini),
				Temperature: openai.Float(0.0),
			})
		if err != nil {
			slog.Warn("[OpenAIAnnotator] OpenAI API call failed, retrying",
				slog.Int("attempt", attempt),
				slog.String("error", err.Error()))
			lastErr = err
			time.Sleep(clients.BackoffDelay(attempt))
			continue
		}

		if len(chatCompletion.Choices) == 0 || strings.TrimSpace(chatCompletion.Choices[0].Message.Content) == "" {
			slog.Warn("[OpenAIAnnotator] OpenAI returned empty response, retrying",
				slog.Int("attempt", attempt))
			lastErr = fmt.Errorf("empty completion")
			time.Sleep(clients.BackoffDelay(attempt))
			continue
		}

		raw := cleanAIResponse(chatCompletion.Choices[0].Message.Content)

		result, err := models.ParseResult(analysisType, []byte(raw))
		if err != nil {
			slog.Warn("[OpenAIAnnotator] Response failed structural parse, retrying",
				slog.Int("attempt", attempt),
				slog.String("error", err.Error()))
			lastErr = err
			time.Sleep(clients.BackoffDelay(attempt))
			continue
		}

		if err := result.Validate(doc); err != nil {
			slog.Warn("[OpenAIAnnotator] Response failed span validation, retrying",
				slog.Int("attempt", attempt),
				slog.String("error", err.Error()))
			lastErr = err
			time.Sleep(clients.BackoffDelay(attempt))
			continue
		}

		return result, nil
	}

	return nil, fmt.Errorf("openai annotation failed after %d attempts: %w", clients.MAX_RETRIES, lastErr)
}

func promptFor(analysisType models.AnalysisType) (string, error) {
	switch analysisType {
	case models.AnalysisNER:
		return nerPrompt, nil
	case models.AnalysisSentiment:
		return sentimentPrompt, nil
	case models.AnalysisPOS:
		return posPrompt, nil
	default:
		return "", fmt.Errorf("unknown analysis type %q", analysisType)
	}
}

// cleanAIResponse strips code fences and standardizes quotes in case the
// model decorates its JSON despite the contract.
func cleanAIResponse(response string) string {
	response = strings.TrimSpace(response)

	response = strings.TrimPrefix(response, "```json")
	response = strings.TrimPrefix(response, "```")
	response = strings.TrimSuffix(response, "```")

	response = strings.ReplaceAll(response, "“", `"`) // Left curly quote
	response = strings.ReplaceAll(response, "”", `"`) // Right curly quote

	return strings.TrimSpace(response)
}
