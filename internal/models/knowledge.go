package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// DefaultLanguage is the fallback for every language-keyed lookup.
const DefaultLanguage = "en"

// LocalizedText maps a language code to a single piece of text.
type LocalizedText map[string]string

// Get returns the text for lang, falling back to English, then "".
func (t LocalizedText) Get(lang string) string {
	if v, ok := t[lang]; ok && v != "" {
		return v
	}
	return t[DefaultLanguage]
}

// PhraseSet maps a language code to an ordered list of phrase variants.
type PhraseSet map[string][]string

// Get returns the phrases for lang, falling back to English when lang is
// missing or unknown.
func (p PhraseSet) Get(lang string) []string {
	if v, ok := p[lang]; ok && len(v) > 0 {
		return v
	}
	return p[DefaultLanguage]
}

// Entry is a single question/answer unit tagged with keywords.
type Entry struct {
	ID        string        `json:"id"`
	Questions PhraseSet     `json:"question"`
	Answer    LocalizedText `json:"answer"`
	Keywords  []string      `json:"keywords"`
}

// Category is a named grouping of entries.
type Category struct {
	ID      string        `json:"-"`
	Name    LocalizedText `json:"name"`
	Entries []Entry       `json:"entries"`
}

// CategoryList holds categories in source order. The JSON representation is
// an object keyed by category ID; a plain map would lose the key order, so
// the list decodes the object itself.
type CategoryList []Category

func (cl *CategoryList) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("categories: expected JSON object, got %v", tok)
	}

	out := make([]Category, 0)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		id, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("categories: unexpected key token %v", keyTok)
		}
		var c Category
		if err := dec.Decode(&c); err != nil {
			return fmt.Errorf("categories: decode %q: %w", id, err)
		}
		c.ID = id
		out = append(out, c)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*cl = out
	return nil
}

func (cl CategoryList) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, c := range cl {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(c.ID)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(c)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Metadata describes the knowledge base document.
type Metadata struct {
	Version      string   `json:"version"`
	LastUpdated  string   `json:"last_updated"`
	Languages    []string `json:"languages"`
	TotalEntries int      `json:"total_entries"`
}

// Intent names for the canned common-question/response tables.
const (
	IntentGreetings = "greetings"
	IntentHelp      = "help"
	IntentNotFound  = "not_found"
)

// KnowledgeBase is the root aggregate, loaded once at startup and read-only
// afterwards. Categories is nil when the source document had no categories
// key at all (distinct from an empty object).
type KnowledgeBase struct {
	Metadata        Metadata                 `json:"metadata"`
	Categories      CategoryList             `json:"categories"`
	CommonQuestions map[string]PhraseSet     `json:"common_questions"`
	Responses       map[string]LocalizedText `json:"responses"`
}

// CategorySummary is the listing shape exposed to callers.
type CategorySummary struct {
	ID         string        `json:"id"`
	Name       LocalizedText `json:"name"`
	EntryCount int           `json:"entry_count"`
}
