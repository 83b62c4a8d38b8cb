package interaction

import (
	"context"
	"fmt"
	"time"

	"web_validator/domain/entities"
	"web_validator/domain/interfaces"
)

// Resolve - tries the concept's selectors in order and returns the first
// element that becomes visible within the probe timeout
func (s *Service) Resolve(ctx context.Context, concept entities.Concept, scope interfaces.Scope) (interfaces.Element, error) {
	if concept.IsEmpty() {
		s.logger.Errorf("No selectors defined for '%s'", concept.Name)
		return nil, entities.NewActionError(entities.KindNotFound, "resolve", concept.Name, fmt.Errorf("no selectors"))
	}
	if scope == nil {
		scope = s.page
	}

	for _, selector := range concept.Selectors {
		if err := ctx.Err(); err != nil {
			return nil, entities.NewActionError(entities.KindNotFound, "resolve", concept.Name, err)
		}

		el := scope.First(selector)
		if err := el.WaitVisible(s.opts.ProbeTimeout); err != nil {
			s.logger.Debugf("'%s' not found with selector '%s', skipping", concept.Name, selector)
			continue
		}

		s.logger.Infof("Found '%s' with selector: '%s'", concept.Name, selector)
		return el, nil
	}

	s.logger.Errorf("Could not find '%s' with any of %d selectors", concept.Name, len(concept.Selectors))
	return nil, entities.NewActionError(entities.KindNotFound, "resolve", concept.Name,
		fmt.Errorf("%d selectors tried", len(concept.Selectors)))
}

// ResolveAll - collects the matches of every selector of the concept.
// Selectors that fail are skipped; duplicates across selectors are kept.
func (s *Service) ResolveAll(ctx context.Context, concept entities.Concept, scope interfaces.Scope) []interfaces.Element {
	if scope == nil {
		scope = s.page
	}

	var found []interfaces.Element
	for _, selector := range concept.Selectors {
		if ctx.Err() != nil {
			break
		}
		elements, err := scope.All(selector)
		if err != nil {
			s.logger.Debugf("'%s' lookup failed with selector '%s': %v", concept.Name, selector, err)
			continue
		}
		found = append(found, elements...)
	}

	s.logger.Infof("Found %d '%s' elements", len(found), concept.Name)
	return found
}

// Probe - silent variant of Resolve with an explicit timeout
func (s *Service) Probe(concept entities.Concept, scope interfaces.Scope, timeout time.Duration) (interfaces.Element, bool) {
	if scope == nil {
		scope = s.page
	}
	for _, selector := range concept.Selectors {
		el := scope.First(selector)
		if err := el.WaitVisible(timeout); err == nil {
			return el, true
		}
	}
	return nil, false
}

// WaitForAny - polls until any selector of the concept matches a visible
// element on the page
func (s *Service) WaitForAny(ctx context.Context, concept entities.Concept, timeout time.Duration) (interfaces.Element, error) {
	var found interfaces.Element
	ok := s.Poll(ctx, timeout, func() bool {
		for _, selector := range concept.Selectors {
			el := s.page.First(selector)
			if visible, err := el.IsVisible(); err == nil && visible {
				found = el
				return true
			}
		}
		return false
	})
	if !ok {
		if err := ctx.Err(); err != nil {
			return nil, entities.NewActionError(entities.KindTimeout, "wait", concept.Name, err)
		}
		return nil, entities.NewActionError(entities.KindTimeout, "wait", concept.Name,
			fmt.Errorf("not visible within %s", timeout))
	}
	s.logger.Infof("'%s' appeared", concept.Name)
	return found, nil
}
