// Copyright 2024 trim21 <trim21.me@gmail.com>
// SPDX-License-Identifier: GPL-3.0-only

package relay

import (
	"errors"
	"fmt"
)

// Status is the final outcome of a copy, as seen by the process.
type Status uint8

const (
	Success Status = iota
	UsageError
	OpenSourceError
	OpenDestinationError
	ChannelCreationError
	SpawnError
	ReadError
	WriteError
)

func (s Status) String() string {
	switch s {
	case Success:
		return "success"
	case UsageError:
		return "usage error"
	case OpenSourceError:
		return "open source error"
	case OpenDestinationError:
		return "open destination error"
	case ChannelCreationError:
		return "channel creation error"
	case SpawnError:
		return "spawn error"
	case ReadError:
		return "read error"
	case WriteError:
		return "write error"
	}

	return fmt.Sprintf("Status(%d)", uint8(s))
}

// ExitCode maps a status to the process exit code.
func (s Status) ExitCode() int {
	if s == Success {
		return 0
	}

	return 1
}

// Error is returned by every failing step of a copy.
type Error struct {
	Err    error
	Op     string
	Path   string
	Status Status
}

func (e *Error) Error() string {
	switch e.Status {
	case UsageError:
		return "ERROR! Usage: filecopy <src> <dst>"
	case OpenSourceError:
		return fmt.Sprintf("Error: Unable to open source file '%s'.", e.Path)
	case OpenDestinationError:
		return fmt.Sprintf("Error: Unable to open destination file '%s'.", e.Path)
	case ChannelCreationError:
		return "Pipe failed."
	case SpawnError:
		return fmt.Sprintf("Spawn failed: %v", e.Err)
	}

	if e.Path != "" {
		return fmt.Sprintf("%s '%s': %v", e.Op, e.Path, e.Err)
	}

	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ErrUsage is returned when the command line does not name exactly two paths.
var ErrUsage = &Error{Status: UsageError}

// StatusOf reports the status carried by err. A nil error is Success, an
// error without a *Error in its chain is treated as a WriteError.
func StatusOf(err error) Status {
	if err == nil {
		return Success
	}

	var e *Error
	if errors.As(err, &e) {
		return e.Status
	}

	return WriteError
}

// annotate attaches the operation and path of the failing role to err.
func annotate(err error, op, path string) error {
	var e *Error
	if !errors.As(err, &e) {
		return err
	}

	return &Error{Status: e.Status, Op: op, Path: path, Err: e.Err}
}
