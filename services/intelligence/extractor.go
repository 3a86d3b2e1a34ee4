package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"bistrovoice/models"
	"bistrovoice/utils"

	"go.uber.org/zap"
)

// IntentExtractor turns a raw utterance into a structured booking intent.
// A nil result means extraction failed; callers never see a partial intent.
type IntentExtractor interface {
	Extract(ctx context.Context, utterance string, ref time.Time) *models.BookingIntent
}

// jsonGenerator is the slice of the Gemini client the extractor needs.
type jsonGenerator interface {
	GenerateJSON(ctx context.Context, prompt string) (string, error)
}

type GeminiIntentExtractor struct {
	gen     jsonGenerator
	timeout time.Duration
}

// NewGeminiIntentExtractor builds an extractor backed by the Gemini API.
// The timeout bounds each extraction call so a slow model cannot stall the
// request path.
func NewGeminiIntentExtractor(apiKey string, timeout time.Duration) *GeminiIntentExtractor {
	return &GeminiIntentExtractor{
		gen:     NewGeminiClient(apiKey),
		timeout: timeout,
	}
}

func newExtractorWithGenerator(gen jsonGenerator, timeout time.Duration) *GeminiIntentExtractor {
	return &GeminiIntentExtractor{gen: gen, timeout: timeout}
}

// Extract resolves relative dates against ref, not against the wall clock, so
// the same (utterance, ref) pair always asks the model the same question.
func (e *GeminiIntentExtractor) Extract(ctx context.Context, utterance string, ref time.Time) *models.BookingIntent {
	logger := utils.GetLogger()

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	raw, err := e.gen.GenerateJSON(ctx, buildExtractionPrompt(utterance, ref))
	if err != nil {
		logger.Warn("intent extraction failed", zap.Error(err))
		return nil
	}

	intent, err := decodeIntent(raw)
	if err != nil {
		logger.Warn("intent response was not valid JSON", zap.Error(err), zap.String("raw", raw))
		return nil
	}
	return intent
}

func buildExtractionPrompt(utterance string, ref time.Time) string {
	return fmt.Sprintf(`You are a strict JSON extraction API for a restaurant booking agent.

Rules:
1. Current Date Reference: %s
2. If the user mentions a relative date (e.g., "next Friday"), calculate the YYYY-MM-DD from the reference date.
3. Default 'customerName' to "Guest" if not provided.
4. Return ONLY raw JSON, no markdown.

Required Fields:
- customerName (String)
- customerPhone (String or null)
- numberOfGuests (Number or null)
- bookingDate (YYYY-MM-DD or null)
- bookingTime (HH:MM 24hr format or null)
- cuisinePreference (String or null)
- specialRequests (String or null)

User request: %s`, ref.Format(time.RFC3339), utterance)
}

// decodeIntent enforces the all-or-nothing shape contract: unknown fields,
// trailing data, or any parse error reject the whole response.
func decodeIntent(raw string) (*models.BookingIntent, error) {
	raw = strings.TrimSpace(raw)
	// Some model revisions still wrap the payload in a markdown fence.
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")
	raw = strings.TrimSpace(raw)

	dec := json.NewDecoder(strings.NewReader(raw))
	dec.DisallowUnknownFields()

	var intent models.BookingIntent
	if err := dec.Decode(&intent); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, fmt.Errorf("trailing data after intent object")
	}
	return &intent, nil
}
