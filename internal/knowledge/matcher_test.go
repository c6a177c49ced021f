package knowledge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farm-advisor/internal/models"
)

func defaultMatcher() *Matcher {
	base := DefaultKnowledgeBase()
	return NewMatcher(base, BuildIndex(base))
}

func TestMatchIntentsAndEdgeCases(t *testing.T) {
	m := defaultMatcher()

	tests := []struct {
		name     string
		question string
		language string
		outcome  Outcome
	}{
		{"empty", "", "en", OutcomeNotFound},
		{"whitespace only", "   \t ", "en", OutcomeNotFound},
		{"punctuation only", "?!", "en", OutcomeNotFound},
		{"greeting english", "hello", "en", OutcomeGreeting},
		{"greeting uppercase", "HELLO!", "en", OutcomeGreeting},
		{"greeting hindi", "नमस्ते", "hi", OutcomeGreeting},
		{"english greeting works in hindi", "hello", "hi", OutcomeGreeting},
		{"help english", "help", "en", OutcomeHelp},
		{"help hindi", "सहायता", "hi", OutcomeHelp},
		{"nonsense", "xyzzy quantum farming", "en", OutcomeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := m.Match(tt.question, tt.language)
			assert.Equal(t, tt.outcome, res.Outcome)
		})
	}
}

func TestMatchGreetingBeforeHelp(t *testing.T) {
	m := defaultMatcher()
	res := m.Match("hello can you help", "en")
	assert.Equal(t, OutcomeGreeting, res.Outcome)
}

func TestMatchKeywordPass(t *testing.T) {
	m := defaultMatcher()

	res := m.Match("when to plant rice", "en")
	require.Equal(t, OutcomeEntry, res.Outcome)
	assert.Equal(t, "rice_planting_time", res.Ref.EntryID)
	assert.Equal(t, "crop_planning", res.Ref.CategoryID)
	assert.Contains(t, res.Ref.Entry.Answer.Get("en"), "monsoon")

	res = m.Match("गेहूं कब बोएं", "hi")
	require.Equal(t, OutcomeEntry, res.Outcome)
	assert.Equal(t, "wheat_cultivation", res.Ref.EntryID)
}

func TestMatchKeywordEarlierTokenWins(t *testing.T) {
	m := defaultMatcher()

	// "irrigation" appears before "rice" in the question, so the irrigation
	// entry wins even though both tokens are indexed.
	res := m.Match("best irrigation schedule for rice", "en")
	require.Equal(t, OutcomeEntry, res.Outcome)
	assert.Equal(t, "irrigation_timing", res.Ref.EntryID)

	res = m.Match("rice fields need irrigation", "en")
	require.Equal(t, OutcomeEntry, res.Outcome)
	assert.Equal(t, "rice_planting_time", res.Ref.EntryID)
}

func TestMatchKeywordBeatsFuzzy(t *testing.T) {
	m := defaultMatcher()

	// Close to a wheat question variant, but the "rice" keyword must decide
	// before fuzzy matching ever runs.
	res := m.Match("rice planting time", "en")
	require.Equal(t, OutcomeEntry, res.Outcome)
	assert.Equal(t, "rice_planting_time", res.Ref.EntryID)
	assert.Equal(t, 1.0, res.Score)
}

func TestMatchFuzzyFallback(t *testing.T) {
	m := defaultMatcher()

	// No token is an indexed keyword; the fuzzy pass picks the rice entry
	// through its "best time for rice cultivation" variant.
	res := m.Match("best time for cultivation", "en")
	require.Equal(t, OutcomeEntry, res.Outcome)
	assert.Equal(t, "rice_planting_time", res.Ref.EntryID)
	assert.Greater(t, res.Score, similarityThreshold)
	assert.Less(t, res.Score, 1.0)
}

func TestMatchUnknownLanguageFallsBackToEnglish(t *testing.T) {
	m := defaultMatcher()

	res := m.Match("best time for cultivation", "mr")
	require.Equal(t, OutcomeEntry, res.Outcome)
	assert.Equal(t, "rice_planting_time", res.Ref.EntryID)
}

func fuzzyFixture(entries ...models.Entry) *Matcher {
	base := &models.KnowledgeBase{
		Categories: models.CategoryList{
			{ID: "fixture", Entries: entries},
		},
	}
	return NewMatcher(base, BuildIndex(base))
}

func TestMatchFuzzyBestScoreWins(t *testing.T) {
	m := fuzzyFixture(
		models.Entry{ID: "partial", Questions: models.PhraseSet{"en": {"water plants"}}},
		models.Entry{ID: "close", Questions: models.PhraseSet{"en": {"water the plants daily please"}}},
	)

	// The second entry scores higher, so it must win even though the first
	// one also clears the threshold.
	res := m.Match("water the plants daily", "en")
	require.Equal(t, OutcomeEntry, res.Outcome)
	assert.Equal(t, "close", res.Ref.EntryID)
}

func TestMatchFuzzyTieKeepsFirst(t *testing.T) {
	m := fuzzyFixture(
		models.Entry{ID: "first", Questions: models.PhraseSet{"en": {"rotate the crops"}}},
		models.Entry{ID: "second", Questions: models.PhraseSet{"en": {"rotate the crops"}}},
	)

	res := m.Match("rotate the crops", "en")
	require.Equal(t, OutcomeEntry, res.Outcome)
	assert.Equal(t, "first", res.Ref.EntryID)
}

func TestMatchFuzzyRespectsThreshold(t *testing.T) {
	m := fuzzyFixture(
		models.Entry{ID: "only", Questions: models.PhraseSet{"en": {"water the plants daily please"}}},
	)

	res := m.Match("xyzzy", "en")
	assert.Equal(t, OutcomeNotFound, res.Outcome)
}
