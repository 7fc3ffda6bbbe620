package suggest

import "content-graph/models"

// Pillar is a fixed site-section destination used as a default internal link.
type Pillar struct {
	ID    string
	Title string
	Path  string
	// Section 은 이 pillar 가 목록 페이지 역할을 하는 콘텐츠 종류다 (없으면 빈 값).
	Section models.ContentKind
}

var (
	PillarAbout    = Pillar{ID: "about", Title: "About Us", Path: "/about"}
	PillarPrograms = Pillar{ID: "programs", Title: "Our Programs", Path: "/programs"}
	PillarBlog     = Pillar{ID: "blog", Title: "Blog", Path: "/blog", Section: models.KindBlogPost}
	PillarFAQs     = Pillar{ID: "faqs", Title: "Frequently Asked Questions", Path: "/faqs", Section: models.KindFAQ}
)

// pillarPreference 는 종류별 pillar 우선순위다. 첫 항목이 실제로 쓰인다.
var pillarPreference = map[models.ContentKind][]Pillar{
	models.KindBlogPost: {PillarPrograms, PillarAbout, PillarFAQs, PillarBlog},
	models.KindFAQ:      {PillarAbout, PillarPrograms, PillarBlog},
	models.KindQAPage:   {PillarPrograms, PillarFAQs, PillarAbout, PillarBlog},
}

// PillarFor picks exactly one pillar for the kind, never the kind's own section.
func PillarFor(kind models.ContentKind) (Pillar, bool) {
	for _, p := range pillarPreference[kind] {
		if p.Section == kind {
			continue
		}
		return p, true
	}
	return Pillar{}, false
}

// ContentPath 은 노드의 공개 URL 경로다.
func ContentPath(kind models.ContentKind, slug string) string {
	switch kind {
	case models.KindBlogPost:
		return "/blog/" + slug
	case models.KindFAQ:
		return "/faqs#" + slug
	case models.KindQAPage:
		return "/qa/" + slug
	case models.KindTopic:
		return "/topics/" + slug
	}
	return "/" + slug
}
