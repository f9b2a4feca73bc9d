package llm

import (
	"context"
	"fmt"
	"os"

	"google.golang.org/genai"
)

// DefaultModel is the fixed model both AI surfaces use unless overridden in
// config/models.yaml.
const DefaultModel = "gemini-2.5-flash"

// GeminiProvider implements Provider on top of Google's GenAI SDK.
type GeminiProvider struct {
	Model       string // e.g. "gemini-2.5-flash"
	Temperature float32
}

// Ensure interface compliance
var _ Provider = (*GeminiProvider)(nil)

func (p *GeminiProvider) model() string {
	if p.Model != "" {
		return p.Model
	}
	return DefaultModel
}

// client resolves the credential on every call so a key configured after
// startup takes effect without a restart.
func (p *GeminiProvider) client(ctx context.Context) (*genai.Client, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}
	return client, nil
}

func (p *GeminiProvider) config(systemPrompt string) *genai.GenerateContentConfig {
	config := &genai.GenerateContentConfig{}
	if p.Temperature != 0 {
		config.Temperature = genai.Ptr(p.Temperature)
	}
	if systemPrompt != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{
				{Text: systemPrompt},
			},
		}
	}
	return config
}

// GenerateContent sends a one-shot generateContent request.
func (p *GeminiProvider) GenerateContent(ctx context.Context, prompt string, systemPrompt string) (string, error) {
	client, err := p.client(ctx)
	if err != nil {
		return "", err
	}

	result, err := client.Models.GenerateContent(ctx, p.model(), genai.Text(prompt), p.config(systemPrompt))
	if err != nil {
		return "", fmt.Errorf("gemini generation failed: %w", err)
	}
	return result.Text(), nil
}

// StartChat creates a provider-side chat bound to the system instruction.
func (p *GeminiProvider) StartChat(ctx context.Context, systemInstruction string) (Chat, error) {
	client, err := p.client(ctx)
	if err != nil {
		return nil, err
	}

	chat, err := client.Chats.Create(ctx, p.model(), p.config(systemInstruction), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat session: %w", err)
	}
	return &geminiChat{chat: chat}, nil
}

type geminiChat struct {
	chat *genai.Chat
}

func (c *geminiChat) Send(ctx context.Context, message string) (string, error) {
	result, err := c.chat.SendMessage(ctx, genai.Part{Text: message})
	if err != nil {
		return "", fmt.Errorf("gemini chat message failed: %w", err)
	}
	return result.Text(), nil
}
