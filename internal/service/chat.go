package service

import (
	"context"
	"fmt"
	"strings"

	"summerhome/internal/model"
	"summerhome/internal/store"
	"summerhome/internal/utils"
)

// Prompt size cap: summarizing every property would blow the context window
// on large datasets, so the prompt carries a sample.
const promptSampleSize = 50

// ChatService turns free-text requests into a concrete property suggestion
// by way of an LLM completion. Upstream failures and unparseable output are
// surfaced as errors for the UI to render; nothing is retried.
type ChatService struct {
	completer  TextCompleter
	properties *store.PropertyStore
}

// NewChatService creates a chat service over the given completer and store
func NewChatService(completer TextCompleter, properties *store.PropertyStore) *ChatService {
	return &ChatService{
		completer:  completer,
		properties: properties,
	}
}

// IsEnabled reports whether the underlying completer is configured
func (s *ChatService) IsEnabled() bool {
	return s.completer != nil && s.completer.IsEnabled()
}

// Suggest asks the model for one property recommendation matching the
// user's free-text request
func (s *ChatService) Suggest(ctx context.Context, message string) (*model.LocationSuggestion, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, fmt.Errorf("message cannot be empty")
	}
	if !s.IsEnabled() {
		return nil, fmt.Errorf("chat is not available: AI client is not configured")
	}

	text, err := s.completer.Complete(ctx, s.systemPrompt(), userPrompt(message))
	if err != nil {
		return nil, fmt.Errorf("AI request failed: %w", err)
	}

	return s.parseSuggestion(text)
}

// SuggestStream is Suggest with per-chunk progress callbacks. The callback
// receives (thinkingContent, regularContent) for each chunk.
func (s *ChatService) SuggestStream(ctx context.Context, message string, callback func(thinking, content string) error) (*model.LocationSuggestion, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, fmt.Errorf("message cannot be empty")
	}
	if !s.IsEnabled() {
		return nil, fmt.Errorf("chat is not available: AI client is not configured")
	}

	text, err := s.completer.CompleteStream(ctx, s.systemPrompt(), userPrompt(message), func(chunk *StreamChunk) error {
		if chunk.ThinkingContent != "" {
			if err := callback(chunk.ThinkingContent, ""); err != nil {
				return err
			}
		}
		if chunk.Content != "" {
			if err := callback("", chunk.Content); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("AI request failed: %w", err)
	}

	return s.parseSuggestion(text)
}

func (s *ChatService) systemPrompt() string {
	return fmt.Sprintf(`You are a helpful travel advisor specializing in summer home recommendations.
You have access to a database of %d available properties.

Based on the user's description, recommend ONE specific property from the database that best matches their preferences.

You must return a JSON response with the following structure:
{
  "property_id": "ID of the recommended property",
  "location": "City/Location of the property",
  "property_type": "Type of property (cabin, villa, cottage, etc.)",
  "price_per_night": number,
  "bedrooms": number,
  "features": ["feature1", "feature2", "feature3"],
  "reasoning": "Detailed explanation of why this specific property is right for the user"
}

Available properties:
%s

Important rules:
1. Choose ONE property from the database above
2. Match the property_id exactly as shown
3. Use the property's actual price, features and bedrooms
4. Base the reasoning on the property's actual attributes
5. Return ONLY valid JSON, no additional text`, s.properties.Len(), s.propertySummary())
}

func userPrompt(message string) string {
	return fmt.Sprintf(`User request: %s

Consider group size, location preferences, budget, and desired features. Return only the JSON response.`, message)
}

// propertySummary renders one line per property, capped at promptSampleSize
func (s *ChatService) propertySummary() string {
	all := s.properties.All()
	if len(all) == 0 {
		return "No properties available"
	}

	n := len(all)
	if n > promptSampleSize {
		n = promptSampleSize
	}

	lines := make([]string, 0, n+1)
	for i := 0; i < n; i++ {
		p := &all[i]
		bedrooms := "N/A"
		if p.Bedrooms != nil {
			bedrooms = fmt.Sprintf("%d", *p.Bedrooms)
		}
		lines = append(lines, fmt.Sprintf(
			"ID: %s, Location: %s, Type: %s, Price: $%.0f/night, Bedrooms: %s, Features: %s",
			p.ID, p.Location, p.PropertyType, p.PricePerNight, bedrooms,
			strings.Join(p.Features, ", "),
		))
	}
	if len(all) > n {
		lines = append(lines, fmt.Sprintf("... and %d more properties", len(all)-n))
	}
	return strings.Join(lines, "\n")
}

// parseSuggestion extracts the structured suggestion from model output,
// tolerating markdown fences and stray text around the JSON
func (s *ChatService) parseSuggestion(text string) (*model.LocationSuggestion, error) {
	var suggestion model.LocationSuggestion
	if err := utils.ParseAIJSON(text, &suggestion); err != nil {
		return nil, fmt.Errorf("failed to parse AI response: %w", err)
	}

	if suggestion.Location == "" || suggestion.Reasoning == "" {
		return nil, fmt.Errorf("AI response is missing required fields")
	}

	// If the model named a property we actually hold, trust the stored
	// record over whatever attributes the model echoed back.
	if suggestion.PropertyID != "" {
		if p, ok := s.properties.ByID(suggestion.PropertyID); ok {
			suggestion.Location = p.Location
			suggestion.PropertyType = p.PropertyType
			suggestion.PricePerNight = p.PricePerNight
			suggestion.Features = p.Features
			if p.Bedrooms != nil {
				suggestion.Bedrooms = *p.Bedrooms
			}
		}
	}

	return &suggestion, nil
}
