// Package studygroup holds the domain records, repository contracts and
// error taxonomy shared by the directory and review services.
package studygroup

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// KeySeparator joins the fields of a composite membership identifier.
const KeySeparator = "#"

// StudyGroup is a group record as held by the group repository. The
// directory service is the sole writer; the cache store may hold a
// transient, evictable copy keyed by GroupID.
type StudyGroup struct {
	GroupID         string    `json:"group_id" bun:"group_id,pk"`
	GroupName       string    `json:"group_name" bun:"group_name"`
	DiscussionTopic string    `json:"discussion_topic" bun:"discussion_topic"`
	CreationDate    time.Time `json:"creation_date" bun:"creation_date"`
	Active          bool      `json:"active" bun:"active"`
}

// Validate checks the fields required before a group can be persisted.
func (g StudyGroup) Validate() error {
	return validation.ValidateStruct(&g,
		validation.Field(&g.GroupID, validation.Required),
		validation.Field(&g.GroupName, validation.Required),
	)
}

// MembershipID is the composite key of a membership record. The pair
// (GroupID, MemberID) must be unique.
type MembershipID struct {
	GroupID  string `json:"group_id"`
	MemberID string `json:"member_id"`
}

// String renders the composite key as a single stable string, suitable
// for keying maps and storage rows.
func (id MembershipID) String() string {
	return id.GroupID + KeySeparator + id.MemberID
}

// StudyGroupMember links a member to a group. Group name, topic,
// creation date and active flag are denormalized from the owning group
// at add-time; they are deliberately not kept in sync with later group
// updates.
type StudyGroupMember struct {
	GroupID         string    `json:"group_id" bun:"group_id,pk"`
	MemberID        string    `json:"member_id" bun:"member_id,pk"`
	GroupName       string    `json:"group_name" bun:"group_name"`
	DiscussionTopic string    `json:"discussion_topic" bun:"discussion_topic"`
	CreationDate    time.Time `json:"creation_date" bun:"creation_date"`
	Active          bool      `json:"active" bun:"active"`
}

// ID returns the record's composite key.
func (m StudyGroupMember) ID() MembershipID {
	return MembershipID{GroupID: m.GroupID, MemberID: m.MemberID}
}

// Member is an identity record owned by an external collaborator.
// This module only ever reads it.
type Member struct {
	Email    string `json:"email" bun:"email,pk"`
	Password string `json:"password" bun:"password"`
}

// Rating bounds for a review submission.
const (
	MinRating = 1
	MaxRating = 5
)

// StudyGroupReview is one review submission for a group. The group
// identifier is a soft reference: orphan reviews are permitted.
// AverageRating on a persisted row is a submission-time snapshot and is
// never read back; the authoritative mean is always recomputed from the
// Rating column of the full review history on demand.
type StudyGroupReview struct {
	ReviewID        string  `json:"review_id" bun:"review_id,pk"`
	GroupID         string  `json:"group_id" bun:"group_id"`
	GroupName       string  `json:"group_name" bun:"group_name"`
	DiscussionTopic string  `json:"discussion_topic" bun:"discussion_topic"`
	Rating          int     `json:"rating" bun:"rating"`
	AverageRating   float64 `json:"average_rating" bun:"average_rating"`
	ReviewComments  string  `json:"review_comments" bun:"review_comments"`
}

// Validate enforces the submission invariants: rating within [1,5] and
// non-empty comments.
func (r StudyGroupReview) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.GroupID, validation.Required),
		validation.Field(&r.Rating, validation.Required, validation.Min(MinRating), validation.Max(MaxRating)),
		validation.Field(&r.ReviewComments, validation.Required),
	)
}

// ReviewSummary is the response view for a submission: the review's own
// fields plus the group's standing recomputed right after the write.
type ReviewSummary struct {
	StudyGroupReview
	AverageRating float64  `json:"average_rating"`
	Comments      []string `json:"comments"`
}
