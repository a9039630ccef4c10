package services

import (
	"context"
	"encoding/json"

	"github.com/jessig1/life-goals-gateway/internal/core/domain"
	"github.com/jessig1/life-goals-gateway/internal/core/ports/driven"
	"github.com/jessig1/life-goals-gateway/internal/core/ports/driving"
)

// Ensure notionService implements NotionService
var _ driving.NotionService = (*notionService)(nil)

// notionService forwards search and page creation to the document provider.
type notionService struct {
	sessions driven.SessionStore
	provider driven.PageProvider
}

// NewNotionService creates a new Notion forwarding service.
func NewNotionService(sessions driven.SessionStore, provider driven.PageProvider) driving.NotionService {
	return &notionService{sessions: sessions, provider: provider}
}

func (s *notionService) Search(ctx context.Context, sessionID, query string) (json.RawMessage, error) {
	token, err := requireToken(ctx, s.sessions, sessionID, domain.ProviderNotion)
	if err != nil {
		return nil, err
	}
	return s.provider.Search(ctx, token, query)
}

func (s *notionService) CreatePage(ctx context.Context, sessionID string, body json.RawMessage) (json.RawMessage, error) {
	token, err := requireToken(ctx, s.sessions, sessionID, domain.ProviderNotion)
	if err != nil {
		return nil, err
	}
	return s.provider.CreatePage(ctx, token, body)
}
