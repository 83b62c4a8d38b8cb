package browsertest

import (
	"context"

	"web_validator/domain/interfaces"
)

var _ interfaces.BrowserSession = (*Session)(nil)

// Session is a fake browser session around a fake page
type Session struct {
	FakePage *Page
	CloseErr error
	Closed   int

	// Trace is returned by TracePath once the session has been closed
	Trace string
}

func (s *Session) Page() interfaces.Page {
	return s.FakePage
}

func (s *Session) TracePath() string {
	if s.Closed == 0 {
		return ""
	}
	return s.Trace
}

func (s *Session) Close() error {
	s.Closed++
	return s.CloseErr
}

// Launcher hands out one prepared session, or Err
type Launcher struct {
	Session  *Session
	Err      error
	Launches int
}

// NewLauncher creates a launcher whose session wraps page
func NewLauncher(page *Page) *Launcher {
	return &Launcher{Session: &Session{FakePage: page}}
}

func (l *Launcher) Launch(ctx context.Context) (interfaces.BrowserSession, error) {
	l.Launches++
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if l.Err != nil {
		return nil, l.Err
	}
	return l.Session, nil
}
