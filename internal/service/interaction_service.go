package service

import (
	"context"
	"fmt"
	"strings"

	"pharmacademy/internal/cache"
	"pharmacademy/internal/config"
	"pharmacademy/internal/llm"
	"pharmacademy/internal/model"
)

// InteractionService checks drug combinations against the known table and the model
type InteractionService struct {
	completer llm.Completer
	model     string
	drugCache cache.DrugInfoCache // optional
}

func NewInteractionService(completer llm.Completer, model string, drugCache cache.DrugInfoCache) *InteractionService {
	return &InteractionService{
		completer: completer,
		model:     model,
		drugCache: drugCache,
	}
}

// Check returns the known interactions among drugs followed by any extra
// pairs the model reports. The model never fails the check.
func (s *InteractionService) Check(ctx context.Context, drugs []string) (*model.InteractionReport, error) {
	if len(drugs) < 2 {
		return nil, fmt.Errorf("%w: please provide at least 2 drugs", ErrInvalidInput)
	}
	for _, d := range drugs {
		if strings.TrimSpace(d) == "" {
			return nil, fmt.Errorf("%w: drug names must not be empty", ErrInvalidInput)
		}
	}

	known := lookupKnown(drugs)
	suggested := s.suggest(ctx, drugs)

	interactions := make([]model.DrugInteraction, 0, len(known)+len(suggested))
	interactions = append(interactions, known...)
	for _, candidate := range suggested {
		if !coveredBy(known, candidate) {
			interactions = append(interactions, candidate)
		}
	}

	return &model.InteractionReport{
		Interactions:    interactions,
		TotalChecked:    len(drugs),
		HasInteractions: len(interactions) > 0,
	}, nil
}

// lookupKnown tries "a-b" then "b-a" for every unordered pair. Hits keep
// the caller's spelling.
func lookupKnown(drugs []string) []model.DrugInteraction {
	normalized := make([]string, len(drugs))
	for i, d := range drugs {
		normalized[i] = model.NormalizeDrug(d)
	}

	var found []model.DrugInteraction
	for i := 0; i < len(normalized); i++ {
		for j := i + 1; j < len(normalized); j++ {
			entry, ok := knownInteractions[normalized[i]+"-"+normalized[j]]
			if !ok {
				entry, ok = knownInteractions[normalized[j]+"-"+normalized[i]]
			}
			if !ok {
				continue
			}
			found = append(found, model.DrugInteraction{
				Drugs:          []string{drugs[i], drugs[j]},
				Severity:       entry.severity,
				Description:    entry.description,
				Recommendation: entry.recommendation,
			})
		}
	}
	return found
}

func coveredBy(known []model.DrugInteraction, candidate model.DrugInteraction) bool {
	for _, k := range known {
		if k.SamePair(candidate) {
			return true
		}
	}
	return false
}

// suggest asks the model once for the whole list. Failures and empty
// answers both yield no suggestions; they are logged differently.
func (s *InteractionService) suggest(ctx context.Context, drugs []string) []model.DrugInteraction {
	log := config.WithContext(ctx).WithField("drugs", len(drugs))

	text, err := s.completer.Complete(ctx, []llm.Message{
		llm.System(interactionSystemPrompt),
		llm.User(fmt.Sprintf(interactionUserPrompt, strings.Join(drugs, ", "))),
	}, llm.Params{Model: s.model, Temperature: 0.3, MaxTokens: 1500})
	if err != nil {
		log.WithError(err).Warn("interaction lookup call failed")
		return nil
	}

	var suggested []model.DrugInteraction
	if err := llm.FirstArray(text).Decode(&suggested); err != nil {
		log.WithError(err).Warn("unparsable interaction response")
		return nil
	}
	if len(suggested) == 0 {
		log.Debug("model reported no additional interactions")
		return nil
	}

	valid := make([]model.DrugInteraction, 0, len(suggested))
	for _, d := range suggested {
		normalized, ok := d.Normalize()
		if !ok {
			log.WithField("entry", d).Debug("dropping malformed interaction suggestion")
			continue
		}
		valid = append(valid, normalized)
	}
	return valid
}

// DrugInfo returns a monograph for name, cached for a day when Redis is available
func (s *InteractionService) DrugInfo(ctx context.Context, name string) (*model.DrugInfo, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: drug name is required", ErrInvalidInput)
	}
	log := config.WithContext(ctx).WithField("drug", name)

	if s.drugCache != nil {
		info, err := s.drugCache.Get(ctx, name)
		if err != nil {
			log.WithError(err).Warn("drug cache read failed")
		} else if info != nil {
			return info, nil
		}
	}

	text, err := s.completer.Complete(ctx, []llm.Message{
		llm.System(drugInfoSystemPrompt),
		llm.User(fmt.Sprintf(drugInfoUserPrompt, name)),
	}, llm.Params{Model: s.model, Temperature: 0.3, MaxTokens: 1000})
	if err != nil {
		return nil, fmt.Errorf("drug info for %q: %w", name, err)
	}

	var info model.DrugInfo
	if err := llm.FirstObject(text).Decode(&info); err != nil {
		log.WithError(err).Warn("unparsable drug info response")
		return &model.DrugInfo{RawInfo: text}, nil
	}

	if s.drugCache != nil {
		if err := s.drugCache.Set(ctx, name, &info); err != nil {
			log.WithError(err).Warn("drug cache write failed")
		}
	}
	return &info, nil
}
