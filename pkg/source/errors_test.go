package source

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestClassify_Network(t *testing.T) {
	samples := []string{
		`Error: Failed to download metadata for repo 'fedora': Cannot retrieve metalink for repository: fedora/38/x86_64`,
		`curl: (6) Could not resolve host: aur.archlinux.org`,
		`Err:1 http://archive.ubuntu.com/ubuntu jammy InRelease
  Temporary failure resolving 'archive.ubuntu.com'`,
		`error: failed retrieving file 'core.db' from mirror.example.org : Connection timed out`,
	}

	for _, stderr := range samples {
		if kind := Classify(stderr); kind != FailureNetwork {
			t.Errorf("Classify(%q) = %v, expected FailureNetwork", stderr, kind)
		}
	}
}

func TestClassify_Permission(t *testing.T) {
	stderr := `error: could not open file /var/lib/pacman/local/ALPM_DB_VERSION: Permission denied`

	if kind := Classify(stderr); kind != FailurePermission {
		t.Errorf("Classify = %v, expected FailurePermission", kind)
	}
}

func TestClassify_Misconfigured(t *testing.T) {
	samples := []string{
		`E: Could not open lock file /var/lib/apt/lists/lock - open (13: Permission denied)`,
		`error: failed to init transaction (unable to lock database)`,
		`System management is locked by the application with pid 2814 (zypper).`,
		`error: system does not fully support snapd: cannot mount squashfs image`,
	}

	for _, stderr := range samples {
		if kind := Classify(stderr); kind != FailureMisconfigured {
			t.Errorf("Classify(%q) = %v, expected FailureMisconfigured", stderr, kind)
		}
	}
}

func TestClassify_CaseInsensitive(t *testing.T) {
	if kind := Classify("COULD NOT RESOLVE HOST: example.org"); kind != FailureNetwork {
		t.Errorf("Classify = %v, expected FailureNetwork", kind)
	}
}

func TestClassify_Unknown(t *testing.T) {
	if kind := Classify("segmentation fault (core dumped)"); kind != FailureUnknown {
		t.Errorf("Classify = %v, expected FailureUnknown", kind)
	}

	if kind := Classify(""); kind != FailureUnknown {
		t.Errorf("Classify(\"\") = %v, expected FailureUnknown", kind)
	}
}

func TestNewSearchFailed_LockHint(t *testing.T) {
	stderr := `error: failed to init transaction (unable to lock database)
error: could not lock database: File exists`

	failed := NewSearchFailed("pacman", stderr, errors.New("exit status 1"))

	if failed.Kind != FailureMisconfigured {
		t.Errorf("Kind = %v, expected FailureMisconfigured", failed.Kind)
	}

	if !strings.Contains(failed.Hint, "db.lck") {
		t.Errorf("expected pacman lock hint, got %q", failed.Hint)
	}

	if !strings.Contains(failed.Error(), "pacman search failed") {
		t.Errorf("unexpected message: %q", failed.Error())
	}
}

func TestNewSearchFailed_FirstLineOnly(t *testing.T) {
	stderr := `first line of the failure
second line with more detail
third line`

	failed := NewSearchFailed("apt", stderr, errors.New("exit status 100"))

	msg := failed.Error()
	if !strings.Contains(msg, "first line of the failure") {
		t.Errorf("expected first stderr line in message, got %q", msg)
	}
	if strings.Contains(msg, "second line") {
		t.Errorf("message should not carry later stderr lines: %q", msg)
	}
}

func TestNewSearchFailed_EmptyStderr(t *testing.T) {
	failed := NewSearchFailed("dnf", "", errors.New("exit status 1"))

	if !strings.Contains(failed.Error(), "unknown error") {
		t.Errorf("expected placeholder detail, got %q", failed.Error())
	}
}

func TestSearchFailedError_Unwrap(t *testing.T) {
	cause := errors.New("exit status 2")
	failed := NewSearchFailed("zypper", "some failure", cause)

	if !errors.Is(failed, cause) {
		t.Error("expected errors.Is to find the wrapped cause")
	}
}

func TestIsSkippable(t *testing.T) {
	skippable := []error{
		&ToolNotFoundError{Source: "dnf", Tool: "dnf"},
		&ToolUnresponsiveError{Source: "snap", Tool: "snap", Elapsed: 5 * time.Second},
		&SearchTimeoutError{Source: "apt", Elapsed: 30 * time.Second},
		&SearchFailedError{Source: "pacman", Kind: FailureNetwork},
	}
	for _, err := range skippable {
		if !IsSkippable(err) {
			t.Errorf("IsSkippable(%T) = false, expected true", err)
		}
	}

	fatal := []error{
		&ValidationError{Field: "query", Reason: "must not be empty"},
		errors.New("something else entirely"),
	}
	for _, err := range fatal {
		if IsSkippable(err) {
			t.Errorf("IsSkippable(%T) = true, expected false", err)
		}
	}
}

func TestSkip(t *testing.T) {
	failed := NewSearchFailed("dnf", "Cannot retrieve metalink for repository: fedora", errors.New("exit status 1"))

	reason, hint := Skip(failed)
	if !strings.Contains(reason, "dnf search failed") {
		t.Errorf("unexpected reason: %q", reason)
	}
	if !strings.Contains(hint, "internet connection") {
		t.Errorf("expected network hint, got %q", hint)
	}

	reason, hint = Skip(&ToolNotFoundError{Source: "zypper", Tool: "zypper"})
	if !strings.Contains(reason, "not found in PATH") {
		t.Errorf("unexpected reason: %q", reason)
	}
	if hint != "" {
		t.Errorf("expected no hint for missing tool, got %q", hint)
	}
}

func TestCheckQuery(t *testing.T) {
	if err := CheckQuery("firefox"); err != nil {
		t.Errorf("CheckQuery(\"firefox\") = %v, expected nil", err)
	}

	for _, query := range []string{"", "   ", "\t\n"} {
		err := CheckQuery(query)
		if err == nil {
			t.Errorf("CheckQuery(%q) = nil, expected ValidationError", query)
			continue
		}
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("CheckQuery(%q) returned %T, expected *ValidationError", query, err)
		}
	}
}
