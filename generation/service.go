package generation

import (
	"context"
	"fmt"
	"time"

	"github.com/gookit/slog"

	"content-graph/config"
	"content-graph/metrics"
	"content-graph/models"
)

// AILogWriter 는 생성 호출 로그 저장소다.
type AILogWriter interface {
	Insert(ctx context.Context, l *models.AILog) error
}

// Service is the GenerationService: quota, model call, call logging.
type Service struct {
	model   Model
	limiter *QuotaLimiter
	logs    AILogWriter
	now     func() time.Time
}

// NewService 는 limiter 와 logs 를 nil 로 둘 수 있다.
func NewService(model Model, limiter *QuotaLimiter, logs AILogWriter) *Service {
	return &Service{model: model, limiter: limiter, logs: logs, now: time.Now}
}

// Generate sends the prompts to the model and returns the raw text.
// purpose and referenceID only label the ai_logs entry.
func (s *Service) Generate(ctx context.Context, purpose, referenceID, systemPrompt, userPrompt string) (string, error) {
	ok, err := s.limiter.WaitAndReserve(ctx)
	if err != nil {
		return "", err
	}
	if !ok {
		err := &Error{Kind: KindQuotaExhausted, Message: "daily generation quota exhausted"}
		s.record(ctx, purpose, referenceID, systemPrompt, userPrompt, nil, err, s.now(), 0)
		return "", err
	}

	started := s.now()
	completion, err := s.model.Complete(ctx, systemPrompt, userPrompt)
	elapsed := s.now().Sub(started)
	if err != nil {
		err = classify(err)
	}
	s.record(ctx, purpose, referenceID, systemPrompt, userPrompt, completion, err, started, elapsed)

	outcome := "success"
	if err != nil {
		outcome = string(KindOf(err))
	}
	metrics.GenerationDuration.WithLabelValues(purpose, outcome).Observe(elapsed.Seconds())
	if err != nil {
		return "", err
	}
	metrics.GenerationTokens.WithLabelValues("input").Add(float64(completion.InputTokens))
	metrics.GenerationTokens.WithLabelValues("output").Add(float64(completion.OutputTokens))
	return completion.Text, nil
}

func (s *Service) record(ctx context.Context, purpose, referenceID, systemPrompt, userPrompt string, c *Completion, callErr error, started time.Time, elapsed time.Duration) {
	if s.logs == nil {
		return
	}
	entry := &models.AILog{
		Purpose:     purpose,
		ReferenceID: referenceID,
		DurationMs:  elapsed.Milliseconds(),
		InputPrompt: fmt.Sprintf("%s\n\n%s", systemPrompt, userPrompt),
		RequestedAt: started,
		CompletedAt: started.Add(elapsed),
	}
	if c != nil {
		entry.ModelName = c.ModelName
		entry.ModelVersion = c.ModelVersion
		entry.InputTokens = c.InputTokens
		entry.OutputTokens = c.OutputTokens
		entry.TotalTokens = c.TotalTokens
		entry.OutputResponse = c.Text
	}
	if callErr != nil {
		msg := callErr.Error()
		entry.ErrorKind = string(KindOf(callErr))
		entry.ErrorMessage = &msg
	}
	if err := s.logs.Insert(ctx, entry); err != nil {
		config.Logger.WithFields(slog.M{"purpose": purpose, "reference_id": referenceID}).
			Warnf("failed to store ai log: %v", err)
	}
}
