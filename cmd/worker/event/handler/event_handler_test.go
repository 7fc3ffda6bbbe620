package handler

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"content-graph/cluster"
	"content-graph/eventbus"
	"content-graph/events"
	"content-graph/generation"
	"content-graph/models"
	"content-graph/repositories"
	"content-graph/scan"
)

type fakeScans struct {
	runID string
	refs  []models.ContentRef
	err   error
}

func (f *fakeScans) Execute(_ context.Context, runID string, refs []models.ContentRef) error {
	f.runID, f.refs = runID, refs
	return f.err
}

type fakeClusters struct {
	clusterID string
	brief     generation.ClusterBrief
	err       error
}

func (f *fakeClusters) Generate(_ context.Context, clusterID string, b generation.ClusterBrief) error {
	f.clusterID, f.brief = clusterID, b
	return f.err
}

func mustEvent(t *testing.T, payload any) eventbus.Event {
	t.Helper()
	ev, err := eventbus.NewJSONEvent("", "", payload, 0)
	require.NoError(t, err)
	return ev
}

func TestHandleRoutesScanRequested(t *testing.T) {
	scans := &fakeScans{}
	h := NewEventHandlers(scans, &fakeClusters{})

	refs := []models.ContentRef{{Kind: models.KindFAQ, ID: "f1"}}
	ev := mustEvent(t, events.ScanRequestedEvent{
		BaseEvent: events.BaseEvent{ID: "e1", Type: events.ScanRequested},
		ScanRunID: "run-1",
		Refs:      refs,
	})

	require.NoError(t, h.Handle(context.Background(), ev))
	assert.Equal(t, "run-1", scans.runID)
	assert.Equal(t, refs, scans.refs)
}

func TestHandleRoutesClusterGeneration(t *testing.T) {
	clusters := &fakeClusters{}
	h := NewEventHandlers(&fakeScans{}, clusters)

	ev := mustEvent(t, events.ClusterGenerationRequestedEvent{
		BaseEvent:    events.BaseEvent{ID: "e2", Type: events.ClusterGenerationRequested},
		ClusterID:    "c1",
		ClusterTopic: "Visas",
		Language:     "de",
	})

	require.NoError(t, h.Handle(context.Background(), ev))
	assert.Equal(t, "c1", clusters.clusterID)
	assert.Equal(t, generation.ClusterBrief{ClusterTopic: "Visas", Language: "de"}, clusters.brief)
}

func TestHandleIgnoresUnknownType(t *testing.T) {
	scans := &fakeScans{}
	h := NewEventHandlers(scans, &fakeClusters{})

	ev := mustEvent(t, events.BaseEvent{ID: "e3", Type: "something.else"})
	require.NoError(t, h.Handle(context.Background(), ev))
	assert.Empty(t, scans.runID)
}

func TestHandleRoutesByEnvelopeType(t *testing.T) {
	scans := &fakeScans{}
	h := NewEventHandlers(scans, &fakeClusters{})

	// 페이로드에 타입이 없어도 봉투의 타입으로 라우팅한다
	ev, err := eventbus.NewJSONEvent("", string(events.ScanRequested), events.ScanRequestedEvent{ScanRunID: "run-2"}, 0)
	require.NoError(t, err)

	require.NoError(t, h.Handle(context.Background(), ev))
	assert.Equal(t, "run-2", scans.runID)
}

func TestHandleRejectsBadPayload(t *testing.T) {
	h := NewEventHandlers(&fakeScans{}, &fakeClusters{})
	err := h.Handle(context.Background(), eventbus.Event{ID: "x", Payload: []byte("not json")})
	assert.Error(t, err)
}

func TestScanRequestOutcomes(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr bool
	}{
		{"success", nil, false},
		{"redelivered", fmt.Errorf("%w: run-1 is completed", scan.ErrRunNotExecutable), false},
		{"deleted", repositories.ErrNotFound, false},
		{"store error retried", errors.New("mongo timeout"), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewEventHandlers(&fakeScans{err: tt.err}, &fakeClusters{})
			err := h.HandleScanRequested(context.Background(), &events.ScanRequestedEvent{ScanRunID: "run-1"})
			if tt.wantErr {
				assert.Error(t, err)
				assert.ErrorIs(t, err, tt.err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestClusterGenerationOutcomes(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr bool
	}{
		{"success", nil, false},
		{"not pending", fmt.Errorf("%w: cluster c1 is not pending", cluster.ErrInvalidTransition), false},
		{"generation failure recorded", &generation.Error{Kind: generation.KindQuotaExhausted, Message: "daily quota"}, false},
		{"store error retried", errors.New("mongo timeout"), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewEventHandlers(&fakeScans{}, &fakeClusters{err: tt.err})
			err := h.HandleClusterGenerationRequested(context.Background(), &events.ClusterGenerationRequestedEvent{ClusterID: "c1"})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
