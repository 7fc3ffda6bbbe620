// Package memory holds in-process implementations of the repository verbs.
// Insertion order is the natural order, like an unsorted document store.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"content-graph/models"
	"content-graph/repositories"
)

var idSeq struct {
	sync.Mutex
	n int
}

func newID(prefix string) string {
	idSeq.Lock()
	defer idSeq.Unlock()
	idSeq.n++
	return fmt.Sprintf("%s-%d", prefix, idSeq.n)
}

// Contents is an in-memory content store keyed by kind.
type Contents struct {
	mu    sync.Mutex
	nodes map[models.ContentKind][]models.ContentNode

	// FailOn 가 설정되면 해당 동작에서 에러를 반환한다 (테스트용).
	FailOn func(op string, kind models.ContentKind, id string) error
}

func NewContents(nodes ...models.ContentNode) *Contents {
	c := &Contents{nodes: map[models.ContentKind][]models.ContentNode{}}
	for _, n := range nodes {
		c.nodes[n.Kind] = append(c.nodes[n.Kind], n)
	}
	return c
}

func (c *Contents) fail(op string, kind models.ContentKind, id string) error {
	if c.FailOn == nil {
		return nil
	}
	return c.FailOn(op, kind, id)
}

func (c *Contents) List(_ context.Context, kind models.ContentKind, f repositories.ContentFilter) ([]models.ContentNode, error) {
	if err := c.fail("list", kind, ""); err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.ContentNode, 0)
	for _, n := range c.nodes[kind] {
		if f.TopicID != nil && (n.TopicID == nil || *n.TopicID != *f.TopicID) {
			continue
		}
		if f.PublishedOnly && !n.Live() {
			continue
		}
		out = append(out, n)
	}
	return out, nil
}

func (c *Contents) Get(_ context.Context, kind models.ContentKind, id string) (*models.ContentNode, error) {
	if err := c.fail("get", kind, id); err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, n := range c.nodes[kind] {
		if n.ID == id {
			cp := n
			return &cp, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (c *Contents) Insert(_ context.Context, n *models.ContentNode) error {
	if err := c.fail("insert", n.Kind, n.ID); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if n.ID == "" {
		n.ID = newID(string(n.Kind))
	}
	now := time.Now()
	if n.CreatedAt.IsZero() {
		n.CreatedAt = now
	}
	n.UpdatedAt = now
	c.nodes[n.Kind] = append(c.nodes[n.Kind], *n)
	return nil
}

// UpdateFields understands the bson field names the services write.
func (c *Contents) UpdateFields(_ context.Context, kind models.ContentKind, id string, updates map[string]any) error {
	if err := c.fail("update", kind, id); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.nodes[kind] {
		n := &c.nodes[kind][i]
		if n.ID != id {
			continue
		}
		for k, v := range updates {
			switch k {
			case "body":
				n.Body = v.(string)
			case "title":
				n.Title = v.(string)
			case "slug":
				n.Slug = v.(string)
			case "is_published":
				n.IsPublished = v.(bool)
			case "is_active":
				n.IsActive = v.(bool)
			case "meta_title":
				n.MetaTitle = v.(string)
			case "meta_description":
				n.MetaDescription = v.(string)
			default:
				return fmt.Errorf("memory: unsupported content field %q", k)
			}
		}
		n.UpdatedAt = time.Now()
		return nil
	}
	return repositories.ErrNotFound
}

func (c *Contents) Delete(_ context.Context, kind models.ContentKind, id string) error {
	if err := c.fail("delete", kind, id); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	list := c.nodes[kind]
	for i := range list {
		if list[i].ID == id {
			c.nodes[kind] = append(list[:i:i], list[i+1:]...)
			return nil
		}
	}
	return nil
}

// Count returns how many nodes of a kind are stored.
func (c *Contents) Count(kind models.ContentKind) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.nodes[kind])
}

// Edges is an in-memory link edge store.
type Edges struct {
	mu    sync.Mutex
	edges []models.LinkEdge
}

func NewEdges(edges ...models.LinkEdge) *Edges {
	return &Edges{edges: append([]models.LinkEdge(nil), edges...)}
}

func (e *Edges) List(_ context.Context, f repositories.EdgeFilter) ([]models.LinkEdge, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]models.LinkEdge, 0)
	for _, edge := range e.edges {
		if f.Source != nil && edge.Source() != *f.Source {
			continue
		}
		if f.Target != nil && edge.Target() != *f.Target {
			continue
		}
		if f.ActiveOnly && !edge.IsActive {
			continue
		}
		out = append(out, edge)
	}
	return out, nil
}

func (e *Edges) Insert(_ context.Context, edge *models.LinkEdge) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if edge.ID == "" {
		edge.ID = newID("edge")
	}
	if edge.CreatedAt.IsZero() {
		edge.CreatedAt = time.Now()
	}
	e.edges = append(e.edges, *edge)
	return nil
}

func (e *Edges) Delete(_ context.Context, id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i := range e.edges {
		if e.edges[i].ID == id {
			e.edges = append(e.edges[:i:i], e.edges[i+1:]...)
			return nil
		}
	}
	return nil
}

// Authorities is an in-memory authority source catalog.
type Authorities struct {
	Sources []models.AuthoritySource
}

func (a *Authorities) List(_ context.Context) ([]models.AuthoritySource, error) {
	out := append([]models.AuthoritySource(nil), a.Sources...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].SortOrder < out[j].SortOrder })
	return out, nil
}

// AILogs collects generation logs.
type AILogs struct {
	mu   sync.Mutex
	Logs []models.AILog
}

func (l *AILogs) Insert(_ context.Context, log *models.AILog) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if log.ID == "" {
		log.ID = newID("ailog")
	}
	l.Logs = append(l.Logs, *log)
	return nil
}
