// Package suggest proposes internal and external links for a content node.
// It performs no I/O: the same inputs always yield the same suggestions.
package suggest

import (
	"strings"

	"content-graph/models"
)

const (
	WarnNoRelatedPost = "No related blog post found in same topic"
	WarnNoRelatedFAQ  = "No related FAQ found - linking gap detected"

	// MaxPrimaryCitations 는 Primary 등급에서 먼저 가져오는 최대 개수다.
	MaxPrimaryCitations = 2
	MaxExternalLinks    = 3
)

// Suggestions is the ScanItem-shaped output for one node.
type Suggestions struct {
	PillarPage         *models.LinkSuggestion
	RelatedPost        *models.LinkSuggestion
	FAQ                *models.LinkSuggestion
	ExternalCitations  []models.ExternalCitation
	InternalLinksAdded int
	ExternalLinksAdded int
	Warnings           []string
}

// ContentTargets returns the non-nil suggestions that point at content nodes.
// Pillars are static routes and never become edges.
func (s Suggestions) ContentTargets() []models.LinkSuggestion {
	var out []models.LinkSuggestion
	for _, ls := range []*models.LinkSuggestion{s.RelatedPost, s.FAQ} {
		if ls != nil {
			out = append(out, *ls)
		}
	}
	return out
}

// Suggest builds the link suggestion set for item.
//
// The related post slot holds a blog post and the FAQ slot holds a FAQ; for a
// blog post the first is a same-kind sibling and the second a cross-kind
// match, for a FAQ the other way round. Both require the same topic and a
// published target, and take the first match in allNodes order.
// allEdges is accepted so callers pass the same snapshot they analyze; the
// selection rule does not depend on existing links.
func Suggest(item models.ContentNode, allNodes []models.ContentNode, allEdges []models.LinkEdge, sources []models.AuthoritySource, maxExternalLinks int) Suggestions {
	var out Suggestions

	if p, ok := PillarFor(item.Kind); ok {
		out.PillarPage = &models.LinkSuggestion{
			ID:         p.ID,
			Title:      p.Title,
			Slug:       strings.TrimPrefix(p.Path, "/"),
			AnchorText: p.Title,
			URL:        p.Path,
		}
	}

	if n := firstRelated(item, allNodes, models.KindBlogPost); n != nil {
		out.RelatedPost = internalSuggestion(*n)
	} else {
		out.Warnings = append(out.Warnings, WarnNoRelatedPost)
	}

	if n := firstRelated(item, allNodes, models.KindFAQ); n != nil {
		out.FAQ = internalSuggestion(*n)
	} else {
		out.Warnings = append(out.Warnings, WarnNoRelatedFAQ)
	}

	for _, ls := range []*models.LinkSuggestion{out.PillarPage, out.RelatedPost, out.FAQ} {
		if ls != nil {
			out.InternalLinksAdded++
		}
	}

	out.ExternalCitations = SelectCitations(sources, maxExternalLinks)
	out.ExternalLinksAdded = len(out.ExternalCitations)
	return out
}

func firstRelated(item models.ContentNode, allNodes []models.ContentNode, kind models.ContentKind) *models.ContentNode {
	for i := range allNodes {
		n := &allNodes[i]
		if n.Kind != kind {
			continue
		}
		if n.Kind == item.Kind && n.ID == item.ID {
			continue
		}
		if !n.IsPublished || !n.InTopic(item.TopicID) {
			continue
		}
		return n
	}
	return nil
}

func internalSuggestion(n models.ContentNode) *models.LinkSuggestion {
	return &models.LinkSuggestion{
		ID:         n.ID,
		Kind:       n.Kind,
		Title:      n.Title,
		Slug:       n.Slug,
		AnchorText: n.Title,
		URL:        ContentPath(n.Kind, n.Slug),
	}
}

// SelectCitations takes up to min(2, max) active Primary sources, then fills
// the rest up to max from active Secondary sources, both in catalog order.
func SelectCitations(sources []models.AuthoritySource, max int) []models.ExternalCitation {
	if max <= 0 {
		return []models.ExternalCitation{}
	}
	if max > MaxExternalLinks {
		max = MaxExternalLinks
	}

	var primary, secondary []models.AuthoritySource
	for _, s := range sources {
		if !s.IsActive {
			continue
		}
		switch s.TrustTier {
		case models.TierPrimary:
			primary = append(primary, s)
		case models.TierSecondary:
			secondary = append(secondary, s)
		}
	}

	primaryQuota := MaxPrimaryCitations
	if max < primaryQuota {
		primaryQuota = max
	}

	out := make([]models.ExternalCitation, 0, max)
	for _, s := range primary {
		if len(out) >= primaryQuota {
			break
		}
		out = append(out, citation(s))
	}
	for _, s := range secondary {
		if len(out) >= max {
			break
		}
		out = append(out, citation(s))
	}
	return out
}

func citation(s models.AuthoritySource) models.ExternalCitation {
	url := s.URL
	if url == "" {
		url = "https://" + s.Domain
	}
	return models.ExternalCitation{
		SourceID:   s.ID,
		SourceName: s.Name,
		Domain:     s.Domain,
		AnchorText: s.Name,
		URL:        url,
	}
}
