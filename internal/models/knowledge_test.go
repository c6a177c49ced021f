package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalizedTextFallback(t *testing.T) {
	text := LocalizedText{"en": "hello", "hi": "नमस्ते"}
	assert.Equal(t, "नमस्ते", text.Get("hi"))
	assert.Equal(t, "hello", text.Get("en"))
	assert.Equal(t, "hello", text.Get("fr"))
	assert.Equal(t, "hello", LocalizedText{"en": "hello", "hi": ""}.Get("hi"))
	assert.Equal(t, "", LocalizedText{}.Get("en"))
}

func TestPhraseSetFallback(t *testing.T) {
	p := PhraseSet{"en": {"hello", "hi"}, "hi": {"नमस्ते"}}
	assert.Equal(t, []string{"नमस्ते"}, p.Get("hi"))
	assert.Equal(t, []string{"hello", "hi"}, p.Get("fr"))
	assert.Nil(t, PhraseSet{}.Get("en"))
}

func TestCategoryListPreservesSourceOrder(t *testing.T) {
	src := `{
		"zulu":  {"name": {"en": "Z"}, "entries": []},
		"alpha": {"name": {"en": "A"}, "entries": []},
		"mike":  {"name": {"en": "M"}, "entries": []}
	}`

	var cl CategoryList
	require.NoError(t, json.Unmarshal([]byte(src), &cl))
	require.Len(t, cl, 3)
	assert.Equal(t, "zulu", cl[0].ID)
	assert.Equal(t, "alpha", cl[1].ID)
	assert.Equal(t, "mike", cl[2].ID)

	// Round trip keeps the order too.
	data, err := json.Marshal(cl)
	require.NoError(t, err)
	var again CategoryList
	require.NoError(t, json.Unmarshal(data, &again))
	require.Len(t, again, 3)
	assert.Equal(t, "zulu", again[0].ID)
	assert.Equal(t, "M", again[2].Name.Get("en"))
}

func TestCategoryListRejectsNonObject(t *testing.T) {
	var cl CategoryList
	assert.Error(t, json.Unmarshal([]byte(`["not","an","object"]`), &cl))
}

func TestKnowledgeBaseCategoriesPresence(t *testing.T) {
	var withKey KnowledgeBase
	require.NoError(t, json.Unmarshal([]byte(`{"categories":{}}`), &withKey))
	assert.NotNil(t, withKey.Categories)

	var withoutKey KnowledgeBase
	require.NoError(t, json.Unmarshal([]byte(`{"metadata":{}}`), &withoutKey))
	assert.Nil(t, withoutKey.Categories)
}
