// Package entities groups named entities recognized by a pretrained model
// behind the annotator service. The model is an opaque black box; this
// package only validates input, groups labels, and deduplicates mentions.
package entities

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"claritext/internal/domain/entity"
)

// Entity is a single recognized mention with its model label.
type Entity struct {
	Text  string
	Label string
}

// Provider performs named-entity recognition. The gRPC annotator client
// implements it; recognition has no heuristic fallback, so provider
// unavailability surfaces to the caller as annotate.ErrUnavailable.
type Provider interface {
	ExtractEntities(ctx context.Context, text string) ([]Entity, error)
}

// Result groups recognized entities by category. Each list is deduplicated
// and sorted for deterministic output.
type Result struct {
	Persons       []string
	Places        []string
	Organizations []string
	Dates         []string
	Quantities    []string
}

// Service provides named-entity extraction.
type Service struct {
	provider Provider
}

// NewService creates the entity extraction service.
func NewService(provider Provider) *Service {
	return &Service{provider: provider}
}

// Extract groups the provider's entities into the five reported categories.
// Labels outside the known set are dropped. Returns entity.ErrEmptyInput
// for blank input, and the provider's error otherwise.
func (s *Service) Extract(ctx context.Context, text string) (*Result, error) {
	if strings.TrimSpace(text) == "" {
		return nil, entity.ErrEmptyInput
	}

	ents, err := s.provider.ExtractEntities(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("entities: %w", err)
	}

	groups := map[string]map[string]struct{}{
		"PER":      {},
		"LOC":      {},
		"ORG":      {},
		"DATE":     {},
		"QUANTITY": {},
	}
	for _, e := range ents {
		if set, ok := groups[e.Label]; ok {
			set[e.Text] = struct{}{}
		}
	}

	return &Result{
		Persons:       sorted(groups["PER"]),
		Places:        sorted(groups["LOC"]),
		Organizations: sorted(groups["ORG"]),
		Dates:         sorted(groups["DATE"]),
		Quantities:    sorted(groups["QUANTITY"]),
	}, nil
}

func sorted(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
