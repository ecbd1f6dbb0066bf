package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const dictionaryBaseURL = "https://api.dictionaryapi.dev"

// Dictionary looks up English words in the Free Dictionary API.
type Dictionary struct {
	baseURL string
	client  *http.Client
}

// NewDictionary creates a Dictionary against the public endpoint.
func NewDictionary() *Dictionary {
	return NewDictionaryWithURL(dictionaryBaseURL, 10*time.Second)
}

// NewDictionaryWithURL creates a Dictionary against a custom endpoint.
func NewDictionaryWithURL(baseURL string, timeout time.Duration) *Dictionary {
	return &Dictionary{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// Definition is one sense of a word.
type Definition struct {
	PartOfSpeech string
	Definition   string
	Example      string
}

// WordEntry is the condensed lookup result: at most two definitions per
// part of speech and a handful of synonyms.
type WordEntry struct {
	Word        string
	Phonetic    string
	Definitions []Definition
	Synonyms    []string
}

type dictionaryResponse []struct {
	Word      string `json:"word"`
	Phonetic  string `json:"phonetic"`
	Phonetics []struct {
		Text string `json:"text"`
	} `json:"phonetics"`
	Meanings []struct {
		PartOfSpeech string `json:"partOfSpeech"`
		Definitions  []struct {
			Definition string `json:"definition"`
			Example    string `json:"example"`
		} `json:"definitions"`
		Synonyms []string `json:"synonyms"`
	} `json:"meanings"`
}

// Lookup fetches the dictionary entry for an English word.
func (d *Dictionary) Lookup(ctx context.Context, word string) (*WordEntry, error) {
	endpoint := fmt.Sprintf("%s/api/v2/entries/en/%s", d.baseURL, url.PathEscape(word))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call dictionary: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("dictionary: status %d for %q", resp.StatusCode, word)
	}

	var body dictionaryResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode dictionary response: %w", err)
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("dictionary: no entry for %q", word)
	}

	raw := body[0]
	entry := &WordEntry{
		Word:     raw.Word,
		Phonetic: raw.Phonetic,
	}
	if entry.Phonetic == "" {
		for _, p := range raw.Phonetics {
			if p.Text != "" {
				entry.Phonetic = p.Text
				break
			}
		}
	}

	for _, meaning := range raw.Meanings {
		defs := meaning.Definitions
		if len(defs) > 2 {
			defs = defs[:2]
		}
		for _, def := range defs {
			entry.Definitions = append(entry.Definitions, Definition{
				PartOfSpeech: meaning.PartOfSpeech,
				Definition:   def.Definition,
				Example:      def.Example,
			})
		}
		syns := meaning.Synonyms
		if len(syns) > 3 {
			syns = syns[:3]
		}
		entry.Synonyms = append(entry.Synonyms, syns...)
	}

	return entry, nil
}
