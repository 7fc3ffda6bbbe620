package generation

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/genai"
)

// Kind 는 생성 실패 유형이다. 호출자는 이 값으로 클러스터 상태 메시지를 만든다.
type Kind string

const (
	KindRateLimited         Kind = "rate_limited"
	KindQuotaExhausted      Kind = "quota_exhausted"
	KindUpstreamUnavailable Kind = "upstream_unavailable"
	KindMalformedOutput     Kind = "malformed_output"
	KindUnknown             Kind = "unknown"
)

// Error is the upstream generation failure surfaced to callers.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("generation %s: %s", e.Kind, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("generation %s: %v", e.Kind, e.Err)
	}
	return "generation " + string(e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf returns the generation error kind carried by err, or "" if err is
// not a generation error.
func KindOf(err error) Kind {
	var ge *Error
	if errors.As(err, &ge) {
		return ge.Kind
	}
	return ""
}

// classify 는 모델 호출 오류를 Error 로 감싼다. 이미 분류된 오류는 그대로 둔다.
func classify(err error) error {
	if err == nil {
		return nil
	}
	var ge *Error
	if errors.As(err, &ge) {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return &Error{Kind: KindUpstreamUnavailable, Message: "model call timed out", Err: err}
	}

	code := 0
	var apiErr genai.APIError
	var apiErrPtr *genai.APIError
	switch {
	case errors.As(err, &apiErr):
		code = apiErr.Code
	case errors.As(err, &apiErrPtr) && apiErrPtr != nil:
		code = apiErrPtr.Code
	}
	return &Error{Kind: kindForStatus(code), Err: err}
}

func kindForStatus(code int) Kind {
	switch {
	case code == http.StatusTooManyRequests:
		return KindRateLimited
	case code == http.StatusPaymentRequired:
		return KindQuotaExhausted
	case code >= 500:
		return KindUpstreamUnavailable
	}
	return KindUnknown
}
