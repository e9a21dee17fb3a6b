package reconcile

import (
	"errors"
	"fmt"

	"github.com/act3-ai/gitui/internal/git"
)

// Kind identifies the step of a reconciliation that failed.
type Kind string

// Failure kinds, one per step.
const (
	FetchListFailure    Kind = "FetchListFailure"
	BranchCreateFailure Kind = "BranchCreateFailure"
	CommitFailure       Kind = "CommitFailure"
	PushFailure         Kind = "PushFailure"
	StatusReadFailure   Kind = "StatusReadFailure"
	ResetFailure        Kind = "ResetFailure"
	CleanFailure        Kind = "CleanFailure"
	CheckoutFailure     Kind = "CheckoutFailure"
	PullFailure         Kind = "PullFailure"
	HookFailure         Kind = "HookFailure"
	InvalidRequest      Kind = "InvalidRequest"
)

// Sentinels matching a [*Failure] of the corresponding kind with [errors.Is].
var (
	ErrFetchList    = errors.New("fetching or listing remote branches failed")
	ErrBranchCreate = errors.New("creating local branch failed")
	ErrCommit       = errors.New("committing failed")
	ErrPush         = errors.New("pushing failed")
	ErrStatusRead   = errors.New("reading status failed")
	ErrReset        = errors.New("hard reset failed")
	ErrClean        = errors.New("cleaning untracked files failed")
	ErrCheckout     = errors.New("checkout failed")
	ErrPull         = errors.New("pull failed")
	ErrHook         = errors.New("post-update hook failed")
	ErrInvalid      = errors.New("invalid request")
)

var kindSentinels = map[Kind]error{
	FetchListFailure:    ErrFetchList,
	BranchCreateFailure: ErrBranchCreate,
	CommitFailure:       ErrCommit,
	PushFailure:         ErrPush,
	StatusReadFailure:   ErrStatusRead,
	ResetFailure:        ErrReset,
	CleanFailure:        ErrClean,
	CheckoutFailure:     ErrCheckout,
	PullFailure:         ErrPull,
	HookFailure:         ErrHook,
	InvalidRequest:      ErrInvalid,
}

// Failure is the terminal error of an unsuccessful reconciliation.
type Failure struct {
	Kind Kind
	// Message is the underlying tool's diagnostic text, unmodified.
	Message string
	// Err is the error of the failed step.
	Err error
}

func (f *Failure) Error() string {
	return fmt.Sprintf("%s: %s", f.Kind, f.Message)
}

// Unwrap returns the error of the failed step.
func (f *Failure) Unwrap() error {
	return f.Err
}

// Is reports whether target is the sentinel of f's kind.
func (f *Failure) Is(target error) bool {
	s, ok := kindSentinels[f.Kind]
	return ok && s == target
}

func fail(kind Kind, err error) *Failure {
	return &Failure{Kind: kind, Message: git.Diagnostic(err), Err: err}
}

// KindOf returns the kind of a [*Failure] in err's chain, or "" if there is
// none.
func KindOf(err error) Kind {
	var f *Failure
	if errors.As(err, &f) {
		return f.Kind
	}
	return ""
}
