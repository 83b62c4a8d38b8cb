package cli

import (
	"errors"

	"web_validator/domain/entities"
)

type exitCoder interface {
	ExitCode() entities.ExitCode
}

type exitError struct {
	code entities.ExitCode
	err  error
}

func (e exitError) Error() string {
	if e.err == nil {
		return ""
	}
	return e.err.Error()
}

func (e exitError) Unwrap() error {
	return e.err
}

func (e exitError) ExitCode() entities.ExitCode {
	return e.code
}

func withExitCode(err error, code entities.ExitCode) error {
	if err == nil {
		return nil
	}
	return exitError{code: code, err: err}
}

// exitCodeForError maps setup errors to a process status; anything without
// an explicit code is an unknown error
func exitCodeForError(err error) entities.ExitCode {
	if err == nil {
		return entities.ExitSuccess
	}
	var coded exitCoder
	if errors.As(err, &coded) {
		return coded.ExitCode()
	}
	return entities.ExitUnknownError
}
