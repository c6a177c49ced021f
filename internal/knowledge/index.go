package knowledge

import "farm-advisor/internal/models"

// EntryRef points back into the knowledge base an index bucket was built from.
type EntryRef struct {
	CategoryID string
	EntryID    string
	Entry      *models.Entry
}

// Index maps a normalized keyword to the entries tagged with it. It is
// derived state, rebuilt from the knowledge base on every load, and shares
// the base's read-only lifetime.
type Index struct {
	buckets map[string][]EntryRef
}

// BuildIndex walks every entry of every category in base iteration order and
// files it under each of its normalized keywords. Entries sharing a keyword
// land in the same bucket in that order.
func BuildIndex(base *models.KnowledgeBase) *Index {
	idx := &Index{buckets: make(map[string][]EntryRef)}
	if base == nil {
		return idx
	}
	for ci := range base.Categories {
		cat := &base.Categories[ci]
		for ei := range cat.Entries {
			entry := &cat.Entries[ei]
			for _, kw := range entry.Keywords {
				k := Normalize(kw)
				if k == "" {
					continue
				}
				idx.buckets[k] = append(idx.buckets[k], EntryRef{
					CategoryID: cat.ID,
					EntryID:    entry.ID,
					Entry:      entry,
				})
			}
		}
	}
	return idx
}

// Lookup returns the bucket for an already-normalized token, or nil.
func (idx *Index) Lookup(token string) []EntryRef {
	return idx.buckets[token]
}

// Size returns the number of distinct indexed keywords.
func (idx *Index) Size() int {
	return len(idx.buckets)
}
