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

type Clusters struct {
	mu       sync.Mutex
	clusters []*models.Cluster
}

func NewClusters() *Clusters { return &Clusters{} }

func (c *Clusters) Insert(_ context.Context, cl *models.Cluster) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if cl.ID == "" {
		cl.ID = newID("cluster")
	}
	now := time.Now()
	if cl.CreatedAt.IsZero() {
		cl.CreatedAt = now
	}
	cl.UpdatedAt = now
	cp := *cl
	c.clusters = append(c.clusters, &cp)
	return nil
}

func (c *Clusters) find(id string) *models.Cluster {
	for _, cl := range c.clusters {
		if cl.ID == id {
			return cl
		}
	}
	return nil
}

func (c *Clusters) Get(_ context.Context, id string) (*models.Cluster, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	cl := c.find(id)
	if cl == nil {
		return nil, repositories.ErrNotFound
	}
	cp := *cl
	return &cp, nil
}

func (c *Clusters) List(_ context.Context, limit int64) ([]models.Cluster, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.Cluster, 0, len(c.clusters))
	for i := len(c.clusters) - 1; i >= 0; i-- {
		out = append(out, *c.clusters[i])
		if limit > 0 && int64(len(out)) >= limit {
			break
		}
	}
	return out, nil
}

func (c *Clusters) TransitionStatus(_ context.Context, id string, from []models.ClusterStatus, to models.ClusterStatus, errMsg string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	cl := c.find(id)
	if cl == nil {
		return false, nil
	}
	for _, f := range from {
		if cl.Status == f {
			cl.Status = to
			if errMsg != "" {
				cl.ErrorMessage = errMsg
			}
			cl.UpdatedAt = time.Now()
			return true, nil
		}
	}
	return false, nil
}

func (c *Clusters) Delete(_ context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, cl := range c.clusters {
		if cl.ID == id {
			c.clusters = append(c.clusters[:i:i], c.clusters[i+1:]...)
			return nil
		}
	}
	return nil
}

type ClusterItems struct {
	mu    sync.Mutex
	items []*models.ClusterItem
}

func NewClusterItems() *ClusterItems { return &ClusterItems{} }

func (c *ClusterItems) InsertMany(_ context.Context, items []*models.ClusterItem) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := time.Now()
	for _, it := range items {
		if it.ID == "" {
			it.ID = newID("item")
		}
		if it.CreatedAt.IsZero() {
			it.CreatedAt = now
		}
		it.UpdatedAt = now
		cp := *it
		c.items = append(c.items, &cp)
	}
	return nil
}

func (c *ClusterItems) find(id string) *models.ClusterItem {
	for _, it := range c.items {
		if it.ID == id {
			return it
		}
	}
	return nil
}

func (c *ClusterItems) Get(_ context.Context, id string) (*models.ClusterItem, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	it := c.find(id)
	if it == nil {
		return nil, repositories.ErrNotFound
	}
	cp := *it
	return &cp, nil
}

func (c *ClusterItems) ListByCluster(_ context.Context, clusterID string) ([]models.ClusterItem, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.ClusterItem, 0)
	for _, it := range c.items {
		if it.ClusterID == clusterID {
			out = append(out, *it)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].SortOrder < out[j].SortOrder })
	return out, nil
}

func (c *ClusterItems) TransitionStatus(_ context.Context, id string, from, to models.ClusterItemStatus) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	it := c.find(id)
	if it == nil || it.Status != from {
		return false, nil
	}
	it.Status = to
	it.UpdatedAt = time.Now()
	return true, nil
}

func (c *ClusterItems) UpdateFields(_ context.Context, id string, updates map[string]any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	it := c.find(id)
	if it == nil || it.Status == models.ItemPublished {
		return false, nil
	}
	for k, v := range updates {
		switch k {
		case "title":
			it.Title = v.(string)
		case "slug":
			it.Slug = v.(string)
		case "content":
			it.Content = v.(string)
		case "speakable_answer":
			it.SpeakableAnswer = v.(string)
		case "meta_title":
			it.MetaTitle = v.(string)
		case "meta_description":
			it.MetaDescription = v.(string)
		case "faqs":
			it.FAQs = v.([]models.ClusterFAQ)
		case "internal_links":
			it.InternalLinks = v.([]models.ClusterLink)
		case "external_citations":
			it.ExternalCitations = v.([]models.ClusterLink)
		case "sort_order":
			it.SortOrder = v.(int)
		default:
			return false, fmt.Errorf("memory: unsupported cluster item field %q", k)
		}
	}
	it.UpdatedAt = time.Now()
	return true, nil
}

func (c *ClusterItems) MarkPublished(_ context.Context, id string, kind models.ContentKind, contentID string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	it := c.find(id)
	if it == nil || it.Status != models.ItemApproved {
		return false, nil
	}
	it.Status = models.ItemPublished
	it.PublishedContentType = kind
	it.PublishedContentID = contentID
	it.UpdatedAt = time.Now()
	return true, nil
}

func (c *ClusterItems) Delete(_ context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, it := range c.items {
		if it.ID == id {
			c.items = append(c.items[:i:i], c.items[i+1:]...)
			return nil
		}
	}
	return nil
}
