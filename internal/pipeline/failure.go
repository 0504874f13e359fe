// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"errors"
	"fmt"

	"github.com/pdiddy/cad-engine/internal/parse"
	"github.com/pdiddy/cad-engine/internal/resolve"
	"github.com/pdiddy/cad-engine/internal/scene"
)

// FailureKind classifies what went wrong with a generation run.
type FailureKind string

const (
	// KindParseFailure: the description named no recognizable object type.
	KindParseFailure FailureKind = "parse_failure"
	// KindInvalidSpecification: the resolved spec cannot produce geometry.
	KindInvalidSpecification FailureKind = "invalid_specification"
	// KindInternalError: a pipeline stage broke its own contract.
	KindInternalError FailureKind = "internal_error"
)

// Failure is the single error type a generation run surfaces. Kind tells
// callers whether to blame the input or the pipeline; Field names the
// offending dimension when one is known.
type Failure struct {
	Kind    FailureKind
	Field   string
	Message string
	Err     error
}

func (f *Failure) Error() string {
	if f.Field != "" {
		return fmt.Sprintf("%s: %s %s", f.Kind, f.Field, f.Message)
	}
	return fmt.Sprintf("%s: %s", f.Kind, f.Message)
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// classify wraps a stage error in a Failure with the matching kind.
func classify(err error) *Failure {
	if errors.Is(err, parse.ErrTypeNotRecognized) {
		return &Failure{
			Kind:    KindParseFailure,
			Message: "no object type keyword found in description",
			Err:     err,
		}
	}

	var invalid *resolve.InvalidSpecError
	if errors.As(err, &invalid) {
		return &Failure{
			Kind:    KindInvalidSpecification,
			Field:   invalid.Field,
			Message: invalid.Reason,
			Err:     err,
		}
	}

	var internal *scene.InternalError
	if errors.As(err, &internal) {
		return &Failure{Kind: KindInternalError, Message: internal.Msg, Err: err}
	}

	return &Failure{Kind: KindInternalError, Message: err.Error(), Err: err}
}
