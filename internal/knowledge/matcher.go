package knowledge

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"farm-advisor/internal/models"
)

// similarityThreshold is the minimum fuzzy score (exclusive) for a question
// variant to count as a match.
const similarityThreshold = 0.3

// Outcome classifies a match result.
type Outcome int

const (
	OutcomeNotFound Outcome = iota
	OutcomeGreeting
	OutcomeHelp
	OutcomeEntry
)

// MatchResult is the outcome of matching one question. Ref is only valid for
// OutcomeEntry; Score carries the similarity ratio when the entry came from
// the fuzzy pass and 1 when it came from the keyword pass.
type MatchResult struct {
	Outcome Outcome
	Ref     EntryRef
	Score   float64
}

// Matcher answers free-text questions against an immutable knowledge base
// and its keyword index. Safe for concurrent use.
type Matcher struct {
	base  *models.KnowledgeBase
	index *Index
}

func NewMatcher(base *models.KnowledgeBase, index *Index) *Matcher {
	return &Matcher{base: base, index: index}
}

// Match normalizes the question, short-circuits on greeting/help trigger
// phrases, then runs the keyword pass and, only if that finds nothing, the
// fuzzy pass over the entries' question variants.
func (m *Matcher) Match(question, language string) MatchResult {
	q := Normalize(question)
	if q == "" {
		return MatchResult{Outcome: OutcomeNotFound}
	}

	if m.hasTrigger(models.IntentGreetings, q, language) {
		return MatchResult{Outcome: OutcomeGreeting}
	}
	if m.hasTrigger(models.IntentHelp, q, language) {
		return MatchResult{Outcome: OutcomeHelp}
	}

	if refs := m.keywordPass(q); len(refs) > 0 {
		return MatchResult{Outcome: OutcomeEntry, Ref: refs[0], Score: 1}
	}

	if ref, score, ok := m.fuzzyPass(q, language); ok {
		return MatchResult{Outcome: OutcomeEntry, Ref: ref, Score: score}
	}

	return MatchResult{Outcome: OutcomeNotFound}
}

// hasTrigger reports whether the normalized question contains any trigger
// phrase registered for the intent, checking the requested language's
// phrases along with the English ones.
func (m *Matcher) hasTrigger(intent, normalized, language string) bool {
	phrases := m.base.CommonQuestions[intent]
	candidates := phrases[language]
	if language != models.DefaultLanguage {
		candidates = append(candidates[:len(candidates):len(candidates)], phrases[models.DefaultLanguage]...)
	}
	for _, p := range candidates {
		np := Normalize(p)
		if np == "" {
			continue
		}
		if strings.Contains(normalized, np) {
			return true
		}
	}
	return false
}

// keywordPass looks each question token up in the index, collecting entries
// in first-seen token order and deduplicating by (category, entry).
func (m *Matcher) keywordPass(normalized string) []EntryRef {
	var refs []EntryRef
	seen := make(map[[2]string]bool)
	for _, token := range strings.Fields(normalized) {
		for _, ref := range m.index.Lookup(token) {
			key := [2]string{ref.CategoryID, ref.EntryID}
			if seen[key] {
				continue
			}
			seen[key] = true
			refs = append(refs, ref)
		}
	}
	return refs
}

// fuzzyPass scores the question against every entry's question variants for
// the language and returns the highest-scoring entry above the threshold.
// Ties keep the first entry in base iteration order.
func (m *Matcher) fuzzyPass(normalized, language string) (EntryRef, float64, bool) {
	var (
		best  EntryRef
		score = similarityThreshold
		found bool
	)
	for ci := range m.base.Categories {
		cat := &m.base.Categories[ci]
		for ei := range cat.Entries {
			entry := &cat.Entries[ei]
			for _, variant := range entry.Questions.Get(language) {
				pattern := Normalize(variant)
				if pattern == "" {
					continue
				}
				if s := similarity(normalized, pattern); s > score {
					best = EntryRef{CategoryID: cat.ID, EntryID: entry.ID, Entry: entry}
					score = s
					found = true
				}
			}
		}
	}
	if !found {
		return EntryRef{}, 0, false
	}
	return best, score, true
}

// similarity is the symmetric matching-runs ratio in [0,1] over the token
// sequences of both strings. Token runs rather than character runs: short
// unrelated strings routinely clear 0.3 on raw characters, which would turn
// nonsense questions into confident answers.
func similarity(a, b string) float64 {
	return difflib.NewMatcher(strings.Fields(a), strings.Fields(b)).Ratio()
}
