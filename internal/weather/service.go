package weather

import (
	"context"
	"log"
)

// Service runs one weather command end to end: validate, build the request,
// fetch, decode and format. It never returns an error; every failure becomes
// user-facing lines.
type Service struct {
	provider Provider
	fetcher  Fetcher
}

// NewService creates a new Service.
func NewService(provider Provider, fetcher Fetcher) *Service {
	return &Service{
		provider: provider,
		fetcher:  fetcher,
	}
}

// ProviderName returns the name of the active provider.
func (s *Service) ProviderName() string {
	return s.provider.Name()
}

// Help returns the usage lines of the active provider.
func (s *Service) Help() Lines {
	return s.provider.HelpLines()
}

// Handle answers a weather command for params.
func (s *Service) Handle(ctx context.Context, params Params) Lines {
	// Whitespace-only arguments pass ValidateParams but would send an empty query.
	if !s.provider.ValidateParams(params) || JoinParams(params) == "" {
		return s.provider.HelpLines()
	}

	target := s.provider.BuildRequestTarget(params)
	log.Printf("DEBUG: %s lookup for %q", s.provider.Name(), JoinParams(params))

	body, err := s.fetcher.Fetch(ctx, target)
	if err != nil {
		// The key is part of the URL, so only the query is logged.
		log.Printf("ERROR: %s fetch failed for %q: %v", s.provider.Name(), JoinParams(params), err)
		return s.provider.FormatError(err)
	}

	resp, err := DecodeResponse(body)
	if err != nil {
		log.Printf("ERROR: %s returned an undecodable payload for %q: %v", s.provider.Name(), JoinParams(params), err)
		return s.provider.FormatError(err)
	}

	return s.provider.FormatSuccess(resp)
}
