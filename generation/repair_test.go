package generation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func TestStripCodeFences(t *testing.T) {
	assert.Equal(t, `[{"a":1}]`, StripCodeFences("```json\n[{\"a\":1}]\n```"))
	assert.Equal(t, `[1]`, StripCodeFences("```\n[1]\n```\n"))
	assert.Equal(t, `[1]`, StripCodeFences("  [1]  "))
}

func TestExtractJSON(t *testing.T) {
	got, isArray, err := ExtractJSON(`Here you go: [{"a":[1,2]}] hope it helps`)
	require.NoError(t, err)
	assert.True(t, isArray)
	assert.Equal(t, `[{"a":[1,2]}]`, got)

	// 객체 안의 배열을 꺼내지 않는다
	got, isArray, err = ExtractJSON(`{"title":"One","faqs":[{"q":1}]}`)
	require.NoError(t, err)
	assert.False(t, isArray)
	assert.Equal(t, `{"title":"One","faqs":[{"q":1}]}`, got)

	_, _, err = ExtractJSON(`no json here`)
	assert.ErrorIs(t, err, errNoJSON)
}

func TestEscapeControlChars(t *testing.T) {
	in := "[{\"content\":\"line1\nline2\tx\"}]"
	assert.Equal(t, `[{"content":"line1\nline2\tx"}]`, EscapeControlChars(in))
	// 문자열 밖의 공백은 건드리지 않는다
	assert.Equal(t, "[\n  1\n]", EscapeControlChars("[\n  1\n]"))
}

func TestWalkRepairInnerQuotesAndTruncation(t *testing.T) {
	in := `[{"title":"He said "hi" to me","content":"cut off`
	out := WalkRepair(in)

	var items []item
	require.NoError(t, jsonUnmarshal(out, &items))
	require.Len(t, items, 1)
	assert.Equal(t, `He said "hi" to me`, items[0].Title)
	assert.Equal(t, "cut off", items[0].Content)
}

func TestDecodeItemsStages(t *testing.T) {
	cases := map[string]string{
		"strict":           `[{"title":"a","content":"b"}]`,
		"fenced":           "```json\n[{\"title\":\"a\",\"content\":\"b\"}]\n```",
		"control":          "[{\"title\":\"a\",\"content\":\"b\n\"}]",
		"walk":             `[{"title":"a","content":"b`,
		"object":           `{"title":"a","content":"b"}`,
		"fenced object":    "```json\n{\"title\":\"a\",\"content\":\"b\"}\n```",
		"truncated object": `{"title":"a","content":"b`,
	}
	for name, raw := range cases {
		items, err := DecodeItems[item](raw)
		require.NoError(t, err, name)
		require.Len(t, items, 1, name)
		assert.Equal(t, "a", items[0].Title, name)
	}
}

func TestDecodeItemsObjectWithNestedArray(t *testing.T) {
	items, err := DecodeItems[Draft](`{"title":"One","content":"body","faqs":[{"question":"q","answer":"a"}]}`)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "One", items[0].Title)
	assert.Equal(t, "body", items[0].Content)
	require.Len(t, items[0].FAQs, 1)
	assert.Equal(t, "q", items[0].FAQs[0].Question)
}

func TestDecodeItemsMalformed(t *testing.T) {
	_, err := DecodeItems[item]("I cannot help with that.")
	require.Error(t, err)
	assert.Equal(t, KindMalformedOutput, KindOf(err))
}
