package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SaiSriramKurapati/chatBot-backend/internal/cache"
	"github.com/SaiSriramKurapati/chatBot-backend/internal/generator"
	"github.com/SaiSriramKurapati/chatBot-backend/internal/models"
	"github.com/SaiSriramKurapati/chatBot-backend/internal/pkg/metrics"
	"github.com/SaiSriramKurapati/chatBot-backend/internal/repository"
)

// ErrNotFound is returned when the targeted message id or range does not exist.
var ErrNotFound = repository.ErrNotFound

// ErrGeneration marks upstream generator failures so the API layer can map
// them to a gateway error. The request aborts with no record appended and no
// cache entry written.
var ErrGeneration = errors.New("response generation failed")

// MessageService orchestrates the conversation log and the response cache.
type MessageService interface {
	// Create returns a new message whose response comes from the cache when
	// the same content was generated within the TTL, otherwise from exactly
	// one generator call.
	Create(ctx context.Context, content string) (*models.Message, error)
	// List returns messages ordered by id ascending, skipping the first skip.
	List(ctx context.Context, skip, limit int) ([]*models.Message, error)
	// Edit replaces content and response of an existing message. The response
	// is always freshly generated; the cache is not consulted.
	Edit(ctx context.Context, id int64, newContent string) (*models.Message, error)
	// DeleteFrom removes the message with the given id and every later one.
	DeleteFrom(ctx context.Context, id int64) (*models.DeleteReport, error)
}

type messageService struct {
	repo  repository.MessageRepository
	cache cache.Cache
	gen   generator.Generator
	log   *slog.Logger
}

// NewMessageService creates a message service. All collaborators are injected;
// a nil cache runs the service in permanent degraded mode (every create
// generates).
func NewMessageService(repo repository.MessageRepository, c cache.Cache, gen generator.Generator, log *slog.Logger) MessageService {
	return &messageService{
		repo:  repo,
		cache: c,
		gen:   gen,
		log:   log,
	}
}

func (s *messageService) Create(ctx context.Context, content string) (*models.Message, error) {
	if s.cache != nil {
		if response, ok := s.cache.Get(ctx, content); ok {
			metrics.CacheHitsTotal.Inc()
			return s.repo.Create(ctx, content, response)
		}
		metrics.CacheMissesTotal.Inc()
	}

	response, err := s.generate(ctx, content)
	if err != nil {
		return nil, err
	}

	msg, err := s.repo.Create(ctx, content, response)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, content, response); err != nil {
			// Cache trouble degrades to the generation path; it never fails
			// the caller's request.
			metrics.CacheErrorsTotal.Inc()
			s.log.Warn("response cache write failed", "error", err)
		}
	}

	return msg, nil
}

func (s *messageService) List(ctx context.Context, skip, limit int) ([]*models.Message, error) {
	return s.repo.List(ctx, skip, limit)
}

func (s *messageService) Edit(ctx context.Context, id int64, newContent string) (*models.Message, error) {
	response, err := s.generate(ctx, newContent)
	if err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, newContent, response)
}

func (s *messageService) DeleteFrom(ctx context.Context, id int64) (*models.DeleteReport, error) {
	count, err := s.repo.DeleteFrom(ctx, id)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrNotFound
	}
	return &models.DeleteReport{DeletedCount: count, FromID: id}, nil
}

func (s *messageService) generate(ctx context.Context, content string) (string, error) {
	start := time.Now()
	response, err := s.gen.Generate(ctx, content)
	metrics.GeneratorDurationSeconds.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.GeneratorFailuresTotal.Inc()
		return "", fmt.Errorf("%w: %v", ErrGeneration, err)
	}
	return response, nil
}
