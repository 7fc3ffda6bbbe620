package generation

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/genai"
)

func TestClassifyAPIErrors(t *testing.T) {
	cases := []struct {
		err  error
		want Kind
	}{
		{genai.APIError{Code: 429, Message: "slow down"}, KindRateLimited},
		{&genai.APIError{Code: 402}, KindQuotaExhausted},
		{fmt.Errorf("call: %w", genai.APIError{Code: 503}), KindUpstreamUnavailable},
		{&genai.APIError{Code: 500}, KindUpstreamUnavailable},
		{&genai.APIError{Code: 400}, KindUnknown},
		{context.DeadlineExceeded, KindUpstreamUnavailable},
		{errors.New("boom"), KindUnknown},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, KindOf(classify(tc.err)), "%v", tc.err)
	}
}

func TestClassifyKeepsExistingKind(t *testing.T) {
	orig := &Error{Kind: KindQuotaExhausted, Message: "daily"}
	assert.Same(t, orig, classify(orig))
	assert.Nil(t, classify(nil))
	assert.Equal(t, Kind(""), KindOf(errors.New("plain")))
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "generation quota_exhausted: daily", (&Error{Kind: KindQuotaExhausted, Message: "daily"}).Error())
	assert.Contains(t, (&Error{Kind: KindRateLimited, Err: errors.New("429")}).Error(), "rate_limited")
}
