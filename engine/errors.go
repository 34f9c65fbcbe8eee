package engine

import "github.com/pkg/errors"

// Policy rejections are caller-correctable and are surfaced as distinct
// sentinel errors rather than generic failures. Anything else coming
// out of the engine is either ErrNotFound or a wrapped store failure.
var (
	// ErrNotFound is returned when a referenced post does not exist.
	ErrNotFound = errors.New("post not found")

	// ErrMediaNotAllowedOnReshare rejects a reshare carrying its own media.
	ErrMediaNotAllowedOnReshare = errors.New("a reshared post cannot carry media")

	// ErrSourceNotVisible rejects a reshare whose source the creating
	// user cannot see under profile context.
	ErrSourceNotVisible = errors.New("source post is not visible")

	// ErrSourceNotReshareable rejects a reshare of a post whose author
	// turned resharing off.
	ErrSourceNotReshareable = errors.New("source post is not reshareable")

	// ErrReshareabilityMismatch rejects a reshare created with
	// reshareable=false. A post resharing another must itself stay
	// reshareable, so a terminal non-reshareable reshare can never be
	// created.
	ErrReshareabilityMismatch = errors.New("a reshare must itself be reshareable")
)

// IsRejection reports whether err is a policy rejection, as opposed to
// a missing resource or a store failure.
func IsRejection(err error) bool {
	return errors.Is(err, ErrMediaNotAllowedOnReshare) ||
		errors.Is(err, ErrSourceNotVisible) ||
		errors.Is(err, ErrSourceNotReshareable) ||
		errors.Is(err, ErrReshareabilityMismatch)
}
