package scan

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"content-graph/models"
)

func sampleItem() *models.ScanItem {
	return &models.ScanItem{
		PillarPageSuggestion:  &models.LinkSuggestion{AnchorText: "Our Programs", URL: "/programs"},
		RelatedPostSuggestion: &models.LinkSuggestion{AnchorText: "Sleep & You", URL: "/blog/sleep"},
		ExternalCitations:     []models.ExternalCitation{{AnchorText: "CDC", URL: "https://cdc.gov"}},
	}
}

func TestRenderRelatedResources(t *testing.T) {
	out := RenderRelatedResources(sampleItem())
	assert.True(t, strings.HasPrefix(out, `<section class="related-resources"><h2>Related Resources</h2><ul>`))
	assert.Contains(t, out, `<a href="/blog/sleep">Sleep &amp; You</a>`)
	assert.Contains(t, out, `<a href="https://cdc.gov" rel="noopener" target="_blank">CDC</a>`)
	assert.Empty(t, RenderRelatedResources(&models.ScanItem{}))
}

func TestAppendRelatedResourcesOnce(t *testing.T) {
	body, changed := AppendRelatedResources("<p>hello</p>\n", sampleItem())
	assert.True(t, changed)
	assert.True(t, strings.HasPrefix(body, "<p>hello</p>\n\n<section"))

	again, changed := AppendRelatedResources(body, sampleItem())
	assert.False(t, changed)
	assert.Equal(t, body, again)
}

func TestHasRelatedResources(t *testing.T) {
	assert.True(t, HasRelatedResources("intro\n\n## Related Resources\n- a"))
	assert.True(t, HasRelatedResources(`<h3 id="rr"> Related Resources </h3>`))
	assert.False(t, HasRelatedResources("<p>See Related Resources below</p>"))
	assert.False(t, HasRelatedResources(""))
}
