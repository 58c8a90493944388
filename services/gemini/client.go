// Package gemini talks to the generative-language API to draft project
// descriptions, bios and preview images. Every operation is best effort:
// failures degrade to fixed fallback strings or an absent image and are
// never surfaced as errors to the caller.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"
)

const (
	DefaultBaseURL = "https://generativelanguage.googleapis.com"

	textModel  = "gemini-3-flash-preview"
	imageModel = "gemini-2.5-flash-image"

	// Fixed degradation strings shown in place of generated content.
	FallbackMissingKey  = "API key is missing. Please check your configuration."
	FallbackDescription = "Error generating content. Please try again."
	FallbackBio         = "Error generating bio."
	EmptyDescription    = "Could not generate description."
	EmptyBio            = "Could not generate bio."

	textTimeout  = 30 * time.Second
	imageTimeout = 2 * time.Minute
)

// Client is a plain HTTP client for the generateContent endpoint.
type Client struct {
	apiKey      string
	baseURL     string
	textClient  *http.Client
	imageClient *http.Client

	// flights collapses a resubmission of the same pending operation into
	// the in-flight call, one flight per operation and subject.
	flights singleflight.Group
}

// NewClient creates a client. An empty baseURL means the public API; tests
// point it at a local server. An empty apiKey is legal and makes every
// operation return its fallback immediately.
func NewClient(apiKey, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		apiKey:      apiKey,
		baseURL:     strings.TrimRight(baseURL, "/"),
		textClient:  &http.Client{Timeout: textTimeout},
		imageClient: &http.Client{Timeout: imageTimeout},
	}
}

// Request/response shapes for models/<model>:generateContent.

type generateRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type generationConfig struct {
	ImageConfig *imageConfig `json:"imageConfig,omitempty"`
}

type imageConfig struct {
	AspectRatio string `json:"aspectRatio"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// DescribeProject asks for a 2-3 sentence portfolio description. It never
// returns an error; any failure comes back as a fixed display string.
func (c *Client) DescribeProject(ctx context.Context, title string, technologies []string) string {
	if c.apiKey == "" {
		log.Println("gemini: API key missing, skipping description call")
		return FallbackMissingKey
	}

	prompt := fmt.Sprintf(`Write a compelling, professional, and exciting project description for a game portfolio.
Game Title: %s
Technologies Used: %s
Target Audience: Gamers and Tech Recruiters.
Tone: Professional, Innovative, Passionate.
Length: About 2-3 sentences max.`, title, strings.Join(technologies, ", "))

	text, err := c.textFlight(ctx, "describe:"+title, prompt)
	if err != nil {
		log.Printf("gemini: describe failed: %v", err)
		return FallbackDescription
	}
	if text == "" {
		return EmptyDescription
	}
	return text
}

// GenerateBio drafts a short about-me section for the landing page.
func (c *Client) GenerateBio(ctx context.Context, name string, experienceYears int, specialty string) string {
	if c.apiKey == "" {
		log.Println("gemini: API key missing, skipping bio call")
		return FallbackMissingKey
	}

	prompt := fmt.Sprintf(`Write a short, punchy 'About Me' section for a game developer portfolio.
Name: %s
Experience: %d years
Specialty: %s
Tone: Modern, confident, accessible. Max 50 words.`, name, experienceYears, specialty)

	text, err := c.textFlight(ctx, "bio:"+name, prompt)
	if err != nil {
		log.Printf("gemini: bio failed: %v", err)
		return FallbackBio
	}
	if text == "" {
		return EmptyBio
	}
	return text
}

// IllustrateProject asks the image-capable model for one 16:9 image and
// returns it as a displayable data URI. ok is false on any failure or when
// no candidate carries inline image data; the caller should treat that as
// "try again", not as a structural error.
func (c *Client) IllustrateProject(ctx context.Context, prompt string) (uri string, ok bool) {
	if c.apiKey == "" {
		log.Println("gemini: API key missing, skipping image call")
		return "", false
	}

	framed := fmt.Sprintf("A high quality, cinematic screenshot of a video game. Style: Cyberpunk/Sci-fi/Fantasy (depending on context). Context: %s", prompt)

	v, err, _ := c.flights.Do("illustrate:"+prompt, func() (any, error) {
		resp, err := c.generate(ctx, c.imageClient, imageModel, generateRequest{
			Contents: []content{{Parts: []part{{Text: framed}}}},
			GenerationConfig: &generationConfig{
				ImageConfig: &imageConfig{AspectRatio: "16:9"},
			},
		})
		if err != nil {
			return "", err
		}
		return firstInlineImage(resp), nil
	})
	if err != nil {
		log.Printf("gemini: illustrate failed: %v", err)
		return "", false
	}

	uri = v.(string)
	return uri, uri != ""
}

// textFlight runs a single-flight text generation for key.
func (c *Client) textFlight(ctx context.Context, key, prompt string) (string, error) {
	v, err, _ := c.flights.Do(key, func() (any, error) {
		resp, err := c.generate(ctx, c.textClient, textModel, generateRequest{
			Contents: []content{{Parts: []part{{Text: prompt}}}},
		})
		if err != nil {
			return "", err
		}
		return firstText(resp), nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

func (c *Client) generate(ctx context.Context, hc *http.Client, model string, reqBody generateRequest) (*generateResponse, error) {
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("generate request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("generate returned status %d", resp.StatusCode)
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &out, nil
}

func firstText(resp *generateResponse) string {
	for _, cand := range resp.Candidates {
		var b strings.Builder
		for _, p := range cand.Content.Parts {
			b.WriteString(p.Text)
		}
		if text := strings.TrimSpace(b.String()); text != "" {
			return text
		}
	}
	return ""
}

// firstInlineImage scans candidate parts for inline image data and
// re-encodes it as a data URI.
func firstInlineImage(resp *generateResponse) string {
	for _, cand := range resp.Candidates {
		for _, p := range cand.Content.Parts {
			if p.InlineData != nil && p.InlineData.Data != "" {
				mime := p.InlineData.MimeType
				if mime == "" {
					mime = "image/png"
				}
				return fmt.Sprintf("data:%s;base64,%s", mime, p.InlineData.Data)
			}
		}
	}
	return ""
}
