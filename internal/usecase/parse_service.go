package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/sirupsen/logrus"

	"github.com/romeoscript/Unboxed/internal/domain"
)

// ParseService runs the request pipeline: fetch the page, reduce and extract
// signals, assemble the prompt, and obtain the normalized record from the
// completion client. The service holds no per-request state and is safe for
// concurrent use.
type ParseService struct {
	fetcher   domain.PageFetcher
	completer domain.CompletionClient
	log       *logrus.Logger
}

// NewParseService creates a new parse service with dependencies.
func NewParseService(fetcher domain.PageFetcher, completer domain.CompletionClient, log *logrus.Logger) *ParseService {
	return &ParseService{
		fetcher:   fetcher,
		completer: completer,
		log:       log,
	}
}

// ParseProduct processes one product URL.
// Flow: fetch -> reduce -> extract -> assemble prompt -> complete.
// A fetch failure is a hard error; everything downstream of the fetch
// soft-fails into a fallback record inside the completion client.
func (s *ParseService) ParseProduct(ctx context.Context, req *domain.ParseRequest) (*domain.ProductRecord, error) {
	if req == nil || req.URL == "" || req.OpenAIAPIKey == "" {
		return nil, domain.ErrInvalidRequest
	}

	raw, err := s.fetcher.FetchPage(ctx, req.URL)
	if err != nil {
		if errors.Is(err, domain.ErrFetchFailed) || errors.Is(err, domain.ErrEmptyDocument) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrFetchFailed, err)
	}

	reduced := ReduceMarkup(raw)

	signals := Signals{}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		// unparsable markup is not fatal: the raw excerpt still goes to
		// the model
		s.log.Warnf("Failed to parse markup for %s: %v", req.URL, err)
	} else {
		signals = ExtractSignals(doc, reduced, req.URL)
	}

	s.log.Debugf("Extracted %d signals for %s (title=%q price=%q sizes=%d colors=%d)",
		signals.Count(), req.URL, signals.Title, signals.Price, len(signals.Sizes), len(signals.Colors))

	prompt := AssemblePrompt(req.URL, reduced, signals)

	result := s.completer.CompleteProduct(ctx, req.OpenAIAPIKey, req.URL, prompt)
	if result.Tier != domain.TierStrict {
		s.log.Infof("Completion for %s used %s parse tier", req.URL, result.Tier)
	}

	return &result.Record, nil
}
