// Package cluster drives topic clusters from generation through review to
// publishing as content nodes.
package cluster

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/gookit/slog"

	"content-graph/config"
	"content-graph/generation"
	"content-graph/metrics"
	"content-graph/models"
	"content-graph/repositories"
)

type CreateRequest struct {
	ClusterTopic   string
	TargetAudience string
	PrimaryKeyword string
	Language       string
	TopicID        *string
}

// ItemUpdate 는 nil 이 아닌 필드만 갱신한다.
type ItemUpdate struct {
	Title             *string
	Slug              *string
	Content           *string
	SpeakableAnswer   *string
	MetaTitle         *string
	MetaDescription   *string
	FAQs              *[]models.ClusterFAQ
	InternalLinks     *[]models.ClusterLink
	ExternalCitations *[]models.ClusterLink
	SortOrder         *int
}

type Pipeline struct {
	stores     Stores
	generator  DraftGenerator
	dispatcher Dispatcher
}

func NewPipeline(stores Stores, generator DraftGenerator) *Pipeline {
	return &Pipeline{stores: stores, generator: generator}
}

// SetDispatcher 를 호출하지 않으면 생성은 분리된 고루틴에서 실행된다.
func (p *Pipeline) SetDispatcher(d Dispatcher) {
	p.dispatcher = d
}

func briefOf(c *models.Cluster) generation.ClusterBrief {
	return generation.ClusterBrief{
		ClusterTopic:   c.ClusterTopic,
		TargetAudience: c.TargetAudience,
		PrimaryKeyword: c.PrimaryKeyword,
		Language:       c.Language,
	}
}

// Create inserts a pending cluster and fires its generation.
func (p *Pipeline) Create(ctx context.Context, req CreateRequest) (*models.Cluster, error) {
	if strings.TrimSpace(req.ClusterTopic) == "" {
		return nil, fmt.Errorf("%w: cluster topic is required", ErrInvalidRequest)
	}
	lang := req.Language
	if lang == "" {
		lang = "en"
	}
	c := &models.Cluster{
		ClusterTopic:   strings.TrimSpace(req.ClusterTopic),
		TargetAudience: req.TargetAudience,
		PrimaryKeyword: req.PrimaryKeyword,
		Language:       lang,
		TopicID:        req.TopicID,
		Status:         models.ClusterPending,
	}
	if err := p.stores.Clusters.Insert(ctx, c); err != nil {
		return nil, err
	}
	if err := p.dispatch(ctx, c.ID, briefOf(c)); err != nil {
		return c, err
	}
	return c, nil
}

// Trigger re-fires generation for a cluster that is still pending. Empty
// brief fields fall back to the stored cluster's values.
func (p *Pipeline) Trigger(ctx context.Context, clusterID string, b generation.ClusterBrief) error {
	c, err := p.stores.Clusters.Get(ctx, clusterID)
	if err != nil {
		return err
	}
	if c.Status != models.ClusterPending {
		return fmt.Errorf("%w: cluster %s is %s", ErrInvalidTransition, c.ID, c.Status)
	}
	stored := briefOf(c)
	if b.ClusterTopic == "" {
		b.ClusterTopic = stored.ClusterTopic
	}
	if b.TargetAudience == "" {
		b.TargetAudience = stored.TargetAudience
	}
	if b.PrimaryKeyword == "" {
		b.PrimaryKeyword = stored.PrimaryKeyword
	}
	if b.Language == "" {
		b.Language = stored.Language
	}
	return p.dispatch(ctx, c.ID, b)
}

func (p *Pipeline) dispatch(ctx context.Context, clusterID string, b generation.ClusterBrief) error {
	if p.dispatcher != nil {
		if err := p.dispatcher.DispatchGeneration(ctx, clusterID, b); err != nil {
			err = fmt.Errorf("dispatch generation: %w", err)
			p.markFailed(context.WithoutCancel(ctx), clusterID, []models.ClusterStatus{models.ClusterPending}, err)
			return err
		}
		return nil
	}
	go func(ctx context.Context) {
		if err := p.Generate(ctx, clusterID, b); err != nil {
			config.Logger.WithFields(slog.M{"cluster_id": clusterID}).Errorf("cluster generation failed: %v", err)
		}
	}(context.WithoutCancel(ctx))
	return nil
}

// Generate runs generation for a pending cluster: pending → generating, then
// review with draft items on success or failed with an error message and no
// items. A cluster that is not pending is refused with ErrInvalidTransition.
func (p *Pipeline) Generate(ctx context.Context, clusterID string, b generation.ClusterBrief) error {
	ok, err := p.stores.Clusters.TransitionStatus(ctx, clusterID, []models.ClusterStatus{models.ClusterPending}, models.ClusterGenerating, "")
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: cluster %s is not pending", ErrInvalidTransition, clusterID)
	}

	log := config.Logger.WithFields(slog.M{"cluster_id": clusterID})
	generating := []models.ClusterStatus{models.ClusterGenerating}

	drafts, err := p.generator.GenerateClusterDrafts(ctx, clusterID, b)
	if err != nil {
		p.markFailed(ctx, clusterID, generating, err)
		outcome := string(generation.KindOf(err))
		if outcome == "" {
			outcome = "error"
		}
		metrics.ClusterGenerations.WithLabelValues(outcome).Inc()
		return err
	}

	items, err := draftsToItems(clusterID, drafts)
	if err != nil {
		p.markFailed(ctx, clusterID, generating, err)
		metrics.ClusterGenerations.WithLabelValues(string(generation.KindMalformedOutput)).Inc()
		return err
	}
	if err := p.stores.Items.InsertMany(ctx, items); err != nil {
		err = fmt.Errorf("insert cluster items: %w", err)
		p.markFailed(ctx, clusterID, generating, err)
		metrics.ClusterGenerations.WithLabelValues("store_error").Inc()
		return err
	}

	if _, err := p.stores.Clusters.TransitionStatus(ctx, clusterID, generating, models.ClusterReview, ""); err != nil {
		return err
	}
	metrics.ClusterGenerations.WithLabelValues("success").Inc()
	log.Infof("cluster generated: %d draft items", len(items))
	return nil
}

func (p *Pipeline) markFailed(ctx context.Context, clusterID string, from []models.ClusterStatus, cause error) {
	if _, err := p.stores.Clusters.TransitionStatus(ctx, clusterID, from, models.ClusterFailed, cause.Error()); err != nil {
		config.Logger.WithFields(slog.M{"cluster_id": clusterID}).Errorf("failed to mark cluster failed: %v", err)
	}
}

// draftsToItems 는 초안 하나라도 단계/형식/제목이 잘못되면 전체를
// malformed_output 으로 거절한다. 빈 형식은 단계 기본값으로 채운다.
func draftsToItems(clusterID string, drafts []generation.Draft) ([]*models.ClusterItem, error) {
	items := make([]*models.ClusterItem, 0, len(drafts))
	for i, d := range drafts {
		malformed := func(format string, args ...any) error {
			return &generation.Error{Kind: generation.KindMalformedOutput, Message: fmt.Sprintf("draft %d: "+format, append([]any{i}, args...)...)}
		}
		if strings.TrimSpace(d.Title) == "" {
			return nil, malformed("missing title")
		}
		stage, ok := models.ParseFunnelStage(d.FunnelStage)
		if !ok {
			return nil, malformed("unknown funnel stage %q", d.FunnelStage)
		}
		contentType := stage.DefaultContentType()
		if strings.TrimSpace(d.ContentType) != "" {
			if contentType, ok = models.ParseClusterContentType(d.ContentType); !ok {
				return nil, malformed("unknown content type %q", d.ContentType)
			}
		}
		slug := d.Slug
		if slug == "" {
			slug = Slugify(d.Title)
		}
		items = append(items, &models.ClusterItem{
			ClusterID:         clusterID,
			FunnelStage:       stage,
			ContentType:       contentType,
			Title:             d.Title,
			Slug:              slug,
			Content:           d.Content,
			SpeakableAnswer:   d.SpeakableAnswer,
			MetaTitle:         d.MetaTitle,
			MetaDescription:   d.MetaDescription,
			FAQs:              nonNil(d.FAQs),
			InternalLinks:     toLinks(d.InternalLinks),
			ExternalCitations: toLinks(d.ExternalCitations),
			Status:            models.ItemDraft,
			SortOrder:         i,
		})
	}
	return items, nil
}

func toLinks(in []generation.DraftLink) []models.ClusterLink {
	out := make([]models.ClusterLink, 0, len(in))
	for _, l := range in {
		out = append(out, models.ClusterLink{AnchorText: l.AnchorText, URL: l.URL, Source: l.Source})
	}
	return out
}

func nonNil[T any](in []T) []T {
	if in == nil {
		return []T{}
	}
	return in
}

// Slugify 는 제목을 소문자 하이픈 slug 로 바꾼다.
func Slugify(title string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

func (p *Pipeline) transitionItem(ctx context.Context, itemID string, from, to models.ClusterItemStatus) (*models.ClusterItem, error) {
	ok, err := p.stores.Items.TransitionStatus(ctx, itemID, from, to)
	if err != nil {
		return nil, err
	}
	item, err := p.stores.Items.Get(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: item %s is %s, want %s", ErrInvalidTransition, item.ID, item.Status, from)
	}
	return item, nil
}

// Approve moves a draft item to approved.
func (p *Pipeline) Approve(ctx context.Context, itemID string) (*models.ClusterItem, error) {
	return p.transitionItem(ctx, itemID, models.ItemDraft, models.ItemApproved)
}

// Discard moves a draft item to discarded.
func (p *Pipeline) Discard(ctx context.Context, itemID string) (*models.ClusterItem, error) {
	return p.transitionItem(ctx, itemID, models.ItemDraft, models.ItemDiscarded)
}

// UpdateItem edits an item in any non-published state without changing its status.
func (p *Pipeline) UpdateItem(ctx context.Context, itemID string, u ItemUpdate) (*models.ClusterItem, error) {
	updates := map[string]any{}
	setStr := func(key string, v *string) {
		if v != nil {
			updates[key] = *v
		}
	}
	setStr("title", u.Title)
	setStr("slug", u.Slug)
	setStr("content", u.Content)
	setStr("speakable_answer", u.SpeakableAnswer)
	setStr("meta_title", u.MetaTitle)
	setStr("meta_description", u.MetaDescription)
	if u.FAQs != nil {
		updates["faqs"] = nonNil(*u.FAQs)
	}
	if u.InternalLinks != nil {
		updates["internal_links"] = nonNil(*u.InternalLinks)
	}
	if u.ExternalCitations != nil {
		updates["external_citations"] = nonNil(*u.ExternalCitations)
	}
	if u.SortOrder != nil {
		updates["sort_order"] = *u.SortOrder
	}
	if len(updates) == 0 {
		return nil, fmt.Errorf("%w: nothing to update", ErrInvalidRequest)
	}

	ok, err := p.stores.Items.UpdateFields(ctx, itemID, updates)
	if err != nil {
		return nil, err
	}
	item, err := p.stores.Items.Get(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: item %s is already published", ErrInvalidTransition, item.ID)
	}
	return item, nil
}

// ParseTargetType accepts blog, blog_post and qa_page.
func ParseTargetType(s string) (models.ContentKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "blog", string(models.KindBlogPost):
		return models.KindBlogPost, nil
	case string(models.KindQAPage):
		return models.KindQAPage, nil
	}
	return "", fmt.Errorf("%w: unsupported content type %q", ErrInvalidRequest, s)
}

// Publish creates one unpublished content node per approved item, marks the
// items published and completes the cluster. Items that are no longer
// approved are skipped, so publishing twice creates no duplicates.
func (p *Pipeline) Publish(ctx context.Context, clusterID string, targetType string) (int, error) {
	kind, err := ParseTargetType(targetType)
	if err != nil {
		return 0, err
	}

	c, err := p.stores.Clusters.Get(ctx, clusterID)
	if err != nil {
		return 0, err
	}
	if c.Status != models.ClusterReview && c.Status != models.ClusterCompleted {
		return 0, fmt.Errorf("%w: cluster %s is %s", ErrInvalidTransition, c.ID, c.Status)
	}

	items, err := p.stores.Items.ListByCluster(ctx, clusterID)
	if err != nil {
		return 0, err
	}
	var approved []models.ClusterItem
	for _, it := range items {
		if it.Status == models.ItemApproved {
			approved = append(approved, it)
		}
	}
	if len(approved) == 0 {
		return 0, ErrNoApprovedItems
	}

	log := config.Logger.WithFields(slog.M{"cluster_id": clusterID, "content_type": kind})
	published := 0
	for _, it := range approved {
		ok, err := p.publishItem(ctx, c, it, kind)
		if err != nil {
			return published, err
		}
		if ok {
			published++
		}
	}

	if _, err := p.stores.Clusters.TransitionStatus(ctx, clusterID,
		[]models.ClusterStatus{models.ClusterReview}, models.ClusterCompleted, ""); err != nil {
		return published, err
	}
	metrics.ClusterItemsPublished.WithLabelValues(string(kind)).Add(float64(published))
	log.Infof("cluster published: %d items", published)
	return published, nil
}

// publishItem 은 노드를 만든 뒤 approved → published 로 조건부 갱신한다.
// 다른 게시 요청이 먼저 갱신했다면 만든 노드를 지운다.
func (p *Pipeline) publishItem(ctx context.Context, c *models.Cluster, it models.ClusterItem, kind models.ContentKind) (bool, error) {
	node := &models.ContentNode{
		Kind:            kind,
		Title:           it.Title,
		Slug:            it.Slug,
		Body:            it.Content,
		TopicID:         c.TopicID,
		IsPublished:     false,
		IsActive:        true,
		MetaTitle:       it.MetaTitle,
		MetaDescription: it.MetaDescription,
		SpeakableAnswer: it.SpeakableAnswer,
		CreatedAt:       time.Now(),
	}
	if err := p.stores.Contents.Insert(ctx, node); err != nil {
		return false, fmt.Errorf("create %s for item %s: %w", kind, it.ID, err)
	}

	ok, err := p.stores.Items.MarkPublished(ctx, it.ID, kind, node.ID)
	if err == nil && ok {
		return true, nil
	}
	if delErr := p.stores.Contents.Delete(context.WithoutCancel(ctx), kind, node.ID); delErr != nil {
		config.Logger.WithFields(slog.M{"cluster_id": c.ID, "item_id": it.ID}).
			Errorf("failed to remove %s %s after lost publish: %v", kind, node.ID, delErr)
	}
	return false, err
}

func (p *Pipeline) Get(ctx context.Context, id string) (*models.Cluster, error) {
	return p.stores.Clusters.Get(ctx, id)
}

func (p *Pipeline) List(ctx context.Context, limit int64) ([]models.Cluster, error) {
	return p.stores.Clusters.List(ctx, limit)
}

func (p *Pipeline) Items(ctx context.Context, clusterID string) ([]models.ClusterItem, error) {
	if _, err := p.stores.Clusters.Get(ctx, clusterID); err != nil {
		return nil, err
	}
	return p.stores.Items.ListByCluster(ctx, clusterID)
}

// Delete removes a cluster and its items one by one. Generating clusters are
// refused because their items may still be written.
func (p *Pipeline) Delete(ctx context.Context, id string) error {
	c, err := p.stores.Clusters.Get(ctx, id)
	if err != nil {
		return err
	}
	if c.Status == models.ClusterGenerating {
		return fmt.Errorf("%w: cluster %s is generating", ErrInvalidTransition, c.ID)
	}
	items, err := p.stores.Items.ListByCluster(ctx, id)
	if err != nil {
		return err
	}
	for _, it := range items {
		if err := p.stores.Items.Delete(ctx, it.ID); err != nil && !errors.Is(err, repositories.ErrNotFound) {
			return fmt.Errorf("delete cluster item %s: %w", it.ID, err)
		}
	}
	return p.stores.Clusters.Delete(ctx, id)
}
