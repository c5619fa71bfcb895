package coach

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/genai"
)

const (
	// DefaultModel handles text and structured generation.
	DefaultModel = "gemini-2.5-flash"
	// DefaultSpeechModel handles text-to-speech.
	DefaultSpeechModel = "gemini-2.5-flash-preview-tts"
	// DefaultVoice is the prebuilt voice used when none is requested.
	DefaultVoice = "Kore"
)

// Gemini implements Client against the Google Gemini API.
type Gemini struct {
	client      *genai.Client
	model       string
	speechModel string
}

func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &Gemini{
		client:      client,
		model:       model,
		speechModel: DefaultSpeechModel,
	}, nil
}

// GenerateText fires one fire-and-await text request.
func (g *Gemini) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	return resp.Text(), nil
}

// GenerateJSON requests a JSON-typed response and decodes it into out.
// A response that is not valid JSON for out is an error; out keeps its
// zero value.
func (g *Gemini) GenerateJSON(ctx context.Context, prompt string, out any) error {
	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	}
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), cfg)
	if err != nil {
		return fmt.Errorf("gemini generate: %w", err)
	}
	if err := json.Unmarshal([]byte(resp.Text()), out); err != nil {
		return fmt.Errorf("decode gemini response: %w", err)
	}
	return nil
}

// GenerateSpeech renders text as audio bytes using a prebuilt voice.
func (g *Gemini) GenerateSpeech(ctx context.Context, text, voice string) ([]byte, error) {
	if voice == "" {
		voice = DefaultVoice
	}
	cfg := &genai.GenerateContentConfig{
		ResponseModalities: []string{"AUDIO"},
		SpeechConfig: &genai.SpeechConfig{
			VoiceConfig: &genai.VoiceConfig{
				PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{VoiceName: voice},
			},
		},
	}
	resp, err := g.client.Models.GenerateContent(ctx, g.speechModel, genai.Text(text), cfg)
	if err != nil {
		return nil, fmt.Errorf("gemini speech: %w", err)
	}

	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				return part.InlineData.Data, nil
			}
		}
	}
	return nil, fmt.Errorf("gemini speech: no audio in response")
}
