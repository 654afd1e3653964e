package source

import (
	"fmt"
	"strings"
	"time"
)

// FailureKind classifies a SearchFailedError by its stderr signature.
type FailureKind int

const (
	FailureUnknown FailureKind = iota
	FailureNetwork
	FailurePermission
	FailureMisconfigured
)

// String returns the failure kind label.
func (k FailureKind) String() string {
	switch k {
	case FailureNetwork:
		return "network unavailable"
	case FailurePermission:
		return "permission denied"
	case FailureMisconfigured:
		return "tool misconfigured"
	}
	return "unknown failure"
}

// ValidationError reports unusable caller input. It is fatal to the single
// call that produced it and is never treated as a per-source skip.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ToolNotFoundError reports that a source's backing binary is not installed.
type ToolNotFoundError struct {
	Source string
	Tool   string
}

func (e *ToolNotFoundError) Error() string {
	return fmt.Sprintf("%s is unavailable: %q not found in PATH", e.Source, e.Tool)
}

// ToolUnresponsiveError reports a failed health probe: the binary exists but
// did not answer a version check in time.
type ToolUnresponsiveError struct {
	Source  string
	Tool    string
	Elapsed time.Duration
}

func (e *ToolUnresponsiveError) Error() string {
	return fmt.Sprintf("%s is not responding: %q health check gave up after %s", e.Source, e.Tool, e.Elapsed.Round(time.Millisecond))
}

// SearchTimeoutError reports that a search exceeded its per-source budget.
type SearchTimeoutError struct {
	Source  string
	Elapsed time.Duration
}

func (e *SearchTimeoutError) Error() string {
	return fmt.Sprintf("%s search timed out after %s", e.Source, e.Elapsed.Round(time.Millisecond))
}

// SearchFailedError is an unexpected non-zero exit from a source's tool,
// classified by stderr content. Kind and Hint exist only to produce
// actionable guidance; every kind is a non-fatal per-source skip.
type SearchFailedError struct {
	Source string
	Stderr string
	Kind   FailureKind
	Hint   string
	Err    error
}

func (e *SearchFailedError) Error() string {
	detail := firstLine(e.Stderr)
	if detail == "" {
		detail = "unknown error"
	}
	return fmt.Sprintf("%s search failed (%s): %s", e.Source, e.Kind, detail)
}

// Unwrap returns the original execution error.
func (e *SearchFailedError) Unwrap() error {
	return e.Err
}

// Stderr signatures for failure classification. Matched case-insensitively
// against the tool's stderr.
var (
	networkSignatures = []string{
		"cannot retrieve metalink",
		"could not resolve host",
		"temporary failure resolving",
		"network is unreachable",
		"connection timed out",
		"cannot communicate with server",
		"download failed",
		"cannot access",
	}

	permissionSignatures = []string{
		"permission denied",
		"operation not permitted",
	}

	misconfiguredSignatures = []string{
		"error: cache disabled",
		"failed to cache rpm database",
		"could not open lock file",
		"unable to lock database",
		"failed to init transaction",
		"system management is locked",
		"system does not fully support snapd",
	}
)

// Classify inspects stderr and assigns a failure kind.
func Classify(stderr string) FailureKind {
	lowered := strings.ToLower(stderr)

	for _, sig := range networkSignatures {
		if strings.Contains(lowered, sig) {
			return FailureNetwork
		}
	}
	for _, sig := range misconfiguredSignatures {
		if strings.Contains(lowered, sig) {
			return FailureMisconfigured
		}
	}
	for _, sig := range permissionSignatures {
		if strings.Contains(lowered, sig) {
			return FailurePermission
		}
	}
	return FailureUnknown
}

// NewSearchFailed builds a classified SearchFailedError from a tool's stderr.
func NewSearchFailed(src, stderr string, err error) *SearchFailedError {
	kind := Classify(stderr)
	return &SearchFailedError{
		Source: src,
		Stderr: stderr,
		Kind:   kind,
		Hint:   hintFor(kind, src),
		Err:    err,
	}
}

// hintFor returns user-facing guidance for a classified failure.
func hintFor(kind FailureKind, src string) string {
	switch kind {
	case FailureNetwork:
		return "Check your internet connection and try again"
	case FailurePermission:
		return fmt.Sprintf("Retry the %s search with elevated privileges", src)
	case FailureMisconfigured:
		switch src {
		case "pacman":
			return "Another package manager may be running. Wait for it to finish or remove /var/lib/pacman/db.lck"
		case "apt":
			return "Another package operation may be running. Wait a moment or run: sudo apt update"
		case "dnf":
			return "Refresh the package metadata with: sudo dnf makecache"
		case "zypper":
			return "Refresh the repositories with: sudo zypper refresh"
		case "snap":
			return "Check the snapd service: systemctl status snapd"
		}
		return "The package tool looks misconfigured; refresh its metadata and retry"
	}
	return ""
}

// IsSkippable reports whether err is a per-source failure the caller should
// warn about and skip, rather than abort the whole search. Validation errors
// and unrecognized errors are not skippable.
func IsSkippable(err error) bool {
	switch err.(type) {
	case *ToolNotFoundError, *ToolUnresponsiveError, *SearchTimeoutError, *SearchFailedError:
		return true
	}
	return false
}

// Skip describes a skipped source for user-facing warnings: the reason, and
// a hint when one is known.
func Skip(err error) (reason, hint string) {
	if failed, ok := err.(*SearchFailedError); ok {
		return failed.Error(), failed.Hint
	}
	return err.Error(), ""
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
