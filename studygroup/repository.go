package studygroup

import "context"

// Repository contracts consumed by the services. Implementations are
// external collaborators (see internal/storage for the bun-backed one);
// they are assumed to serialize their own access. A nil pointer result
// with a nil error means "absent". Slice-returning lookups may return a
// nil slice; services treat nil and empty identically.

// GroupRepository is durable storage of group records keyed by group
// identifier.
type GroupRepository interface {
	FindByID(ctx context.Context, groupID string) (*StudyGroup, error)
	FindAll(ctx context.Context) ([]StudyGroup, error)
	Save(ctx context.Context, group StudyGroup) (*StudyGroup, error)
	DeleteByID(ctx context.Context, groupID string) error
}

// StudyGroupMemberRepository is durable storage of membership records
// keyed by the composite (group, member) identifier.
type StudyGroupMemberRepository interface {
	FindByID(ctx context.Context, id MembershipID) (*StudyGroupMember, error)
	FindByGroupID(ctx context.Context, groupID string) ([]StudyGroupMember, error)
	FindAll(ctx context.Context) ([]StudyGroupMember, error)
	Save(ctx context.Context, member StudyGroupMember) (*StudyGroupMember, error)
	Delete(ctx context.Context, member StudyGroupMember) error
}

// MemberRepository is the read-only identity collaborator. Members are
// keyed by email address.
type MemberRepository interface {
	FindByEmail(ctx context.Context, email string) (*Member, error)
}

// ReviewRepository is durable storage of review records, one per review
// identifier, queryable by group and by discussion topic.
type ReviewRepository interface {
	FindByReviewID(ctx context.Context, reviewID string) (*StudyGroupReview, error)
	FindByGroupID(ctx context.Context, groupID string) ([]StudyGroupReview, error)
	FindByDiscussionTopic(ctx context.Context, topic string) ([]StudyGroupReview, error)
	FindAll(ctx context.Context) ([]StudyGroupReview, error)
	Save(ctx context.Context, review StudyGroupReview) (*StudyGroupReview, error)
}
