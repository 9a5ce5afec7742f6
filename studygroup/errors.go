package studygroup

import "errors"

// Error taxonomy raised by the directory and review services. Callers
// match with errors.Is; the transport layer (out of scope here) maps
// not-found kinds to "not found" responses and ErrInvalidReview to
// "bad request". Repository failures are never translated into these:
// they propagate as the repository's own error.
var (
	// ErrGroupNotFound reports that a group or membership lookup failed
	// where existence was required.
	ErrGroupNotFound = errors.New("study group not found")

	// ErrMemberNotFound reports a missing or blank member identifier.
	ErrMemberNotFound = errors.New("member not found")

	// ErrReviewNotFound reports a nil review submission or a failed
	// review lookup.
	ErrReviewNotFound = errors.New("review not found")

	// ErrInvalidReview reports a rating or comment validation failure.
	ErrInvalidReview = errors.New("invalid review")

	// ErrDuplicateGroup reports an identifier collision on group
	// creation.
	ErrDuplicateGroup = errors.New("study group already exists")
)
