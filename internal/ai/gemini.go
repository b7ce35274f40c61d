package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/noah-isme/campusai-api/pkg/config"
)

// FallbackReply is stored verbatim whenever the assistant backend fails.
const FallbackReply = "I'm having trouble connecting to my AI services right now. Please try again in a moment."

// greetingReply covers the degenerate case of a well-formed response with
// no candidate text.
const greetingReply = "hey there! I am CampusAI Assistant. How can I help you?"

const systemPromptFormat = `You are an AI assistant for a campus app called CampusAI. Your name is CampusAI Assistant.
You are chatting with a student named %s. Be friendly, helpful, and concise in your responses.
You can help with questions about courses, campus resources, events, study tips, and general academic advice.
If asked about specific campus information that you don't know, suggest where they might find that information.
Keep responses under 150 words when possible.`

// Responder produces an assistant reply for a user's message.
type Responder interface {
	Reply(ctx context.Context, userName, message string) (string, error)
}

// GeminiClient calls the Generative Language API over REST.
type GeminiClient struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

// NewGeminiClient builds a client from configuration. Every call is
// bounded by the configured timeout.
func NewGeminiClient(cfg config.AIConfig) *GeminiClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &GeminiClient{
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		baseURL: cfg.BaseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

type generateRequest struct {
	Contents          []content `json:"contents"`
	SystemInstruction *content  `json:"systemInstruction,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Reply asks the model for a response to the student's message.
func (g *GeminiClient) Reply(ctx context.Context, userName, message string) (string, error) {
	payload := generateRequest{
		Contents:          []content{{Parts: []part{{Text: message}}}},
		SystemInstruction: &content{Parts: []part{{Text: fmt.Sprintf(systemPromptFormat, userName)}}},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("encode generate request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
		g.baseURL, g.model, url.QueryEscape(g.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build generate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("call generative api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("generative api returned status %d", resp.StatusCode)
	}

	var decoded generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("decode generate response: %w", err)
	}

	if len(decoded.Candidates) == 0 || len(decoded.Candidates[0].Content.Parts) == 0 ||
		decoded.Candidates[0].Content.Parts[0].Text == "" {
		return greetingReply, nil
	}

	return decoded.Candidates[0].Content.Parts[0].Text, nil
}
