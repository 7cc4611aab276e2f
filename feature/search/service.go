package search

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"levelcode/core/remote"
	"levelcode/core/utils"

	"go.uber.org/zap"
)

// ErrEmptyKeyword is returned when a code search has no keyword.
var ErrEmptyKeyword = errors.New("keyword is required")

// Backend is the part of the remote client the search feature uses.
type Backend interface {
	Search(ctx context.Context, keyword string) (*remote.Code, error)
	Suggestions(ctx context.Context, keyword string) (*remote.Suggestions, error)
}

// Result is the code found for a single plant or costume.
type Result struct {
	Keyword  string         `json:"keyword"`
	CodeType string         `json:"code_type"`
	Payload  map[string]any `json:"payload"`
	Text     string         `json:"text"`
}

// Service searches single item codes through the backend.
type Service struct {
	backend Backend
	logger  *zap.Logger
}

// NewService creates a search service.
func NewService(backend Backend, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{backend: backend, logger: logger}
}

// Suggestions returns fuzzy matches for keyword.
func (s *Service) Suggestions(ctx context.Context, keyword string) (*remote.Suggestions, error) {
	return s.backend.Suggestions(ctx, keyword)
}

// Code returns the code for keyword, an item name as offered by Suggestions.
func (s *Service) Code(ctx context.Context, keyword string) (*Result, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, ErrEmptyKeyword
	}

	code, err := s.backend.Search(ctx, keyword)
	if err != nil {
		return nil, err
	}

	text, err := utils.PrettyJSON(code.Payload)
	if err != nil {
		return nil, fmt.Errorf("failed to render code: %w", err)
	}

	return &Result{
		Keyword:  keyword,
		CodeType: code.CodeType,
		Payload:  code.Payload,
		Text:     text,
	}, nil
}
