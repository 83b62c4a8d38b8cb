package interaction

import (
	"context"
	"errors"
	"time"

	"web_validator/domain/entities"
	"web_validator/domain/interfaces"
)

// Navigate - loads url with up to maxRetries attempts. A response ends the
// loop, successful or not; errors, timeouts and missing responses are retried
// after retryDelay. There is no wait after the final attempt.
func (s *Service) Navigate(ctx context.Context, url string, maxRetries int, retryDelay time.Duration) entities.NavigationOutcome {
	attempts := maxRetries
	if attempts < 1 {
		attempts = 1
	}
	outcome := entities.NavigationOutcome{}

	for attempt := 1; attempt <= attempts; attempt++ {
		if ctx.Err() != nil {
			s.logger.Warn("Navigation cancelled")
			break
		}
		outcome.Attempts = attempt
		s.logger.Infof("Navigating to %s (attempt %d/%d)", url, attempt, attempts)

		resp, err := s.page.Goto(url, interfaces.GotoOptions{
			WaitUntil: s.opts.WaitUntil,
			Timeout:   s.opts.NavigationTimeout,
		})

		switch {
		case err != nil && errors.Is(err, entities.ErrTimeout):
			s.logger.Warnf("Navigation timeout on attempt %d", attempt)
		case err != nil:
			s.logger.Warnf("Navigation error on attempt %d: %v", attempt, err)
		case resp == nil:
			s.logger.Warnf("No response received on attempt %d", attempt)
		default:
			status := resp.Status()
			outcome.HTTPStatus = &status
			outcome.Success = status >= 200 && status < 300
			if outcome.Success {
				s.logger.Infof("Successfully navigated to %s (status: %d)", url, status)
			} else {
				s.logger.Errorf("Navigation to %s returned HTTP %d", url, status)
			}
			return outcome
		}

		if attempt < attempts {
			s.logger.Infof("Retrying in %s...", retryDelay)
			if err := s.sleep(ctx, retryDelay); err != nil {
				s.logger.Warn("Navigation cancelled")
				break
			}
		}
	}

	s.logger.Errorf("Failed to navigate to %s after %d attempts", url, outcome.Attempts)
	return outcome
}
