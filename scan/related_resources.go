package scan

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"content-graph/models"
)

const RelatedResourcesHeading = "Related Resources"

// relatedResourcesMarkers 중 하나라도 본문에 있으면 섹션이 이미 있는 것으로 본다.
var relatedResourcesMarkers = []string{
	"<h2>" + RelatedResourcesHeading + "</h2>",
	"## " + RelatedResourcesHeading,
}

// HasRelatedResources reports whether body already carries the section.
func HasRelatedResources(body string) bool {
	for _, m := range relatedResourcesMarkers {
		if strings.Contains(body, m) {
			return true
		}
	}
	if !strings.Contains(body, RelatedResourcesHeading) {
		return false
	}

	// 속성이 붙은 heading (<h2 id="..."> 등) 도 찾는다
	doc, err := html.Parse(strings.NewReader(body))
	if err != nil {
		return false
	}
	found := false
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n == nil || found {
			return
		}
		if n.Type == html.ElementNode && (n.DataAtom == atom.H2 || n.DataAtom == atom.H3) {
			if strings.TrimSpace(textOf(n)) == RelatedResourcesHeading {
				found = true
				return
			}
		}
		for c := n.FirstChild; c != nil && !found; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return found
}

func textOf(n *html.Node) string {
	var b strings.Builder
	var f func(*html.Node)
	f = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			f(c)
		}
	}
	f(n)
	return b.String()
}

// resourceLink 는 섹션에 들어갈 링크 하나다.
type resourceLink struct {
	text, href string
	external   bool
}

// RenderRelatedResources renders the section for an item. It returns "" when
// the item has nothing to link.
func RenderRelatedResources(item *models.ScanItem) string {
	var links []resourceLink
	for _, ls := range []*models.LinkSuggestion{item.PillarPageSuggestion, item.RelatedPostSuggestion, item.FAQSuggestion} {
		if ls != nil {
			links = append(links, resourceLink{text: ls.AnchorText, href: ls.URL})
		}
	}
	for _, c := range item.ExternalCitations {
		links = append(links, resourceLink{text: c.AnchorText, href: c.URL, external: true})
	}
	if len(links) == 0 {
		return ""
	}

	section := element(atom.Section, html.Attribute{Key: "class", Val: "related-resources"})
	h2 := element(atom.H2)
	h2.AppendChild(&html.Node{Type: html.TextNode, Data: RelatedResourcesHeading})
	section.AppendChild(h2)

	ul := element(atom.Ul)
	for _, l := range links {
		attrs := []html.Attribute{{Key: "href", Val: l.href}}
		if l.external {
			attrs = append(attrs,
				html.Attribute{Key: "rel", Val: "noopener"},
				html.Attribute{Key: "target", Val: "_blank"},
			)
		}
		a := element(atom.A, attrs...)
		a.AppendChild(&html.Node{Type: html.TextNode, Data: l.text})
		li := element(atom.Li)
		li.AppendChild(a)
		ul.AppendChild(li)
	}
	section.AppendChild(ul)

	var b strings.Builder
	if err := html.Render(&b, section); err != nil {
		return ""
	}
	return b.String()
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String(), Attr: attrs}
}

// AppendRelatedResources returns body with the section appended, and false
// when the body already has one or there is nothing to add.
func AppendRelatedResources(body string, item *models.ScanItem) (string, bool) {
	if HasRelatedResources(body) {
		return body, false
	}
	block := RenderRelatedResources(item)
	if block == "" {
		return body, false
	}
	body = strings.TrimRight(body, "\n")
	if body != "" {
		body += "\n\n"
	}
	return body + block + "\n", true
}
