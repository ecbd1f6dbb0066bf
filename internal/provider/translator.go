// Package provider wraps the external language APIs: MyMemory for
// translation and the Free Dictionary API for word lookups. Both are
// public endpoints without keys, so callers must tolerate failures.
package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"
)

// UnavailablePrefix marks text that could not be translated. The original
// text follows the prefix so the round can still proceed.
const UnavailablePrefix = "[Translation unavailable] "

const myMemoryBaseURL = "https://api.mymemory.translated.net"

// Translator translates short texts via the MyMemory API. Results are
// cached in memory for the life of the process; the free tier is rate
// limited and practice sentences repeat a lot.
type Translator struct {
	baseURL string
	client  *http.Client

	mu    sync.RWMutex
	cache map[string]string
}

// NewTranslator creates a Translator against the public MyMemory endpoint.
func NewTranslator() *Translator {
	return NewTranslatorWithURL(myMemoryBaseURL, 10*time.Second)
}

// NewTranslatorWithURL creates a Translator against a custom endpoint.
// Used in tests with httptest servers.
func NewTranslatorWithURL(baseURL string, timeout time.Duration) *Translator {
	return &Translator{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		cache:   make(map[string]string),
	}
}

type myMemoryResponse struct {
	ResponseStatus  int    `json:"responseStatus"`
	ResponseDetails string `json:"responseDetails"`
	ResponseData    struct {
		TranslatedText string `json:"translatedText"`
	} `json:"responseData"`
}

// Translate translates text between two ISO language codes.
func (t *Translator) Translate(ctx context.Context, text, from, to string) (string, error) {
	if from == to {
		return text, nil
	}

	key := from + "|" + to + "|" + text
	t.mu.RLock()
	cached, ok := t.cache[key]
	t.mu.RUnlock()
	if ok {
		return cached, nil
	}

	endpoint := fmt.Sprintf("%s/get?q=%s&langpair=%s",
		t.baseURL, url.QueryEscape(text), url.QueryEscape(from+"|"+to))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("call mymemory: %w", err)
	}
	defer resp.Body.Close()

	var body myMemoryResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("decode mymemory response: %w", err)
	}

	if body.ResponseStatus != http.StatusOK || body.ResponseData.TranslatedText == "" {
		detail := body.ResponseDetails
		if detail == "" {
			detail = "translation failed"
		}
		return "", fmt.Errorf("mymemory: %s", detail)
	}

	t.mu.Lock()
	t.cache[key] = body.ResponseData.TranslatedText
	t.mu.Unlock()

	return body.ResponseData.TranslatedText, nil
}

// TranslateSoft translates text and degrades gracefully: on any failure it
// returns the original text behind the unavailable prefix, never an error.
func (t *Translator) TranslateSoft(ctx context.Context, text, from, to string) string {
	translated, err := t.Translate(ctx, text, from, to)
	if err != nil {
		return UnavailablePrefix + text
	}
	return translated
}
