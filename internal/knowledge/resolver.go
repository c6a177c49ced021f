package knowledge

import "farm-advisor/internal/models"

// fallbackResponse is used when the responses table has no text for an
// intent in any language.
const fallbackResponse = "I apologize, but I cannot help with that right now."

// Resolver turns match outcomes into final answer text in the requested
// language, with the English fallback applied in one place.
type Resolver struct {
	base *models.KnowledgeBase
}

func NewResolver(base *models.KnowledgeBase) *Resolver {
	return &Resolver{base: base}
}

// Resolve maps a match result to answer text. It always returns a non-empty
// string for intent outcomes; an entry outcome returns the entry's answer,
// empty only if the entry has no answer in any language.
func (r *Resolver) Resolve(res MatchResult, language string) string {
	switch res.Outcome {
	case OutcomeGreeting:
		return r.Response(models.IntentGreetings, language)
	case OutcomeHelp:
		return r.Response(models.IntentHelp, language)
	case OutcomeEntry:
		return res.Ref.Entry.Answer.Get(language)
	default:
		return r.Response(models.IntentNotFound, language)
	}
}

// Response returns the canned text for an intent, falling back from the
// requested language to English to a hardcoded apology.
func (r *Resolver) Response(intent, language string) string {
	if text, ok := r.base.Responses[intent]; ok {
		if s := text.Get(language); s != "" {
			return s
		}
	}
	return fallbackResponse
}
