package testsupport

import (
	"context"
	"sort"

	"github.com/puzpuzpuz/xsync/v3"

	"github.com/goliatone/go-studygroup-directory/studygroup"
)

// In-memory implementations of the studygroup repository contracts,
// backed by concurrent maps so tests and the example program can hit
// them from multiple goroutines without extra locking. Enumerations are
// sorted by key so results are deterministic.

// MemoryGroupRepository is an in-memory studygroup.GroupRepository.
type MemoryGroupRepository struct {
	groups *xsync.MapOf[string, studygroup.StudyGroup]
}

var _ studygroup.GroupRepository = (*MemoryGroupRepository)(nil)

// NewMemoryGroupRepository creates an empty in-memory group repository.
func NewMemoryGroupRepository() *MemoryGroupRepository {
	return &MemoryGroupRepository{groups: xsync.NewMapOf[string, studygroup.StudyGroup]()}
}

// FindByID returns the stored group, or nil when absent.
func (r *MemoryGroupRepository) FindByID(ctx context.Context, groupID string) (*studygroup.StudyGroup, error) {
	group, ok := r.groups.Load(groupID)
	if !ok {
		return nil, nil
	}
	return &group, nil
}

// FindAll returns every stored group ordered by identifier.
func (r *MemoryGroupRepository) FindAll(ctx context.Context) ([]studygroup.StudyGroup, error) {
	var groups []studygroup.StudyGroup
	r.groups.Range(func(_ string, group studygroup.StudyGroup) bool {
		groups = append(groups, group)
		return true
	})

	sort.Slice(groups, func(i, j int) bool { return groups[i].GroupID < groups[j].GroupID })
	return groups, nil
}

// Save stores the group, overwriting any previous record.
func (r *MemoryGroupRepository) Save(ctx context.Context, group studygroup.StudyGroup) (*studygroup.StudyGroup, error) {
	r.groups.Store(group.GroupID, group)
	return &group, nil
}

// DeleteByID removes the group; absent identifiers are a no-op.
func (r *MemoryGroupRepository) DeleteByID(ctx context.Context, groupID string) error {
	r.groups.Delete(groupID)
	return nil
}

// MemoryMembershipRepository is an in-memory
// studygroup.StudyGroupMemberRepository keyed by the composite id.
type MemoryMembershipRepository struct {
	members *xsync.MapOf[string, studygroup.StudyGroupMember]
}

var _ studygroup.StudyGroupMemberRepository = (*MemoryMembershipRepository)(nil)

// NewMemoryMembershipRepository creates an empty in-memory membership
// repository.
func NewMemoryMembershipRepository() *MemoryMembershipRepository {
	return &MemoryMembershipRepository{members: xsync.NewMapOf[string, studygroup.StudyGroupMember]()}
}

// FindByID returns the stored membership, or nil when absent.
func (r *MemoryMembershipRepository) FindByID(ctx context.Context, id studygroup.MembershipID) (*studygroup.StudyGroupMember, error) {
	member, ok := r.members.Load(id.String())
	if !ok {
		return nil, nil
	}
	return &member, nil
}

// FindByGroupID returns the group's memberships ordered by member id.
func (r *MemoryMembershipRepository) FindByGroupID(ctx context.Context, groupID string) ([]studygroup.StudyGroupMember, error) {
	var members []studygroup.StudyGroupMember
	r.members.Range(func(_ string, member studygroup.StudyGroupMember) bool {
		if member.GroupID == groupID {
			members = append(members, member)
		}
		return true
	})

	sort.Slice(members, func(i, j int) bool { return members[i].MemberID < members[j].MemberID })
	return members, nil
}

// FindAll returns every stored membership ordered by composite id.
func (r *MemoryMembershipRepository) FindAll(ctx context.Context) ([]studygroup.StudyGroupMember, error) {
	var members []studygroup.StudyGroupMember
	r.members.Range(func(_ string, member studygroup.StudyGroupMember) bool {
		members = append(members, member)
		return true
	})

	sort.Slice(members, func(i, j int) bool { return members[i].ID().String() < members[j].ID().String() })
	return members, nil
}

// Save stores the membership under its composite key.
func (r *MemoryMembershipRepository) Save(ctx context.Context, member studygroup.StudyGroupMember) (*studygroup.StudyGroupMember, error) {
	r.members.Store(member.ID().String(), member)
	return &member, nil
}

// Delete removes the membership; absent keys are a no-op.
func (r *MemoryMembershipRepository) Delete(ctx context.Context, member studygroup.StudyGroupMember) error {
	r.members.Delete(member.ID().String())
	return nil
}

// MemoryMemberRepository is an in-memory studygroup.MemberRepository.
type MemoryMemberRepository struct {
	identities *xsync.MapOf[string, studygroup.Member]
}

var _ studygroup.MemberRepository = (*MemoryMemberRepository)(nil)

// NewMemoryMemberRepository creates an in-memory identity repository
// seeded with the given members.
func NewMemoryMemberRepository(members ...studygroup.Member) *MemoryMemberRepository {
	r := &MemoryMemberRepository{identities: xsync.NewMapOf[string, studygroup.Member]()}
	for _, member := range members {
		r.identities.Store(member.Email, member)
	}
	return r
}

// Add registers one member identity.
func (r *MemoryMemberRepository) Add(member studygroup.Member) {
	r.identities.Store(member.Email, member)
}

// FindByEmail returns the stored identity, or nil when absent.
func (r *MemoryMemberRepository) FindByEmail(ctx context.Context, email string) (*studygroup.Member, error) {
	member, ok := r.identities.Load(email)
	if !ok {
		return nil, nil
	}
	return &member, nil
}

// MemoryReviewRepository is an in-memory studygroup.ReviewRepository.
type MemoryReviewRepository struct {
	reviews *xsync.MapOf[string, studygroup.StudyGroupReview]
}

var _ studygroup.ReviewRepository = (*MemoryReviewRepository)(nil)

// NewMemoryReviewRepository creates an empty in-memory review
// repository.
func NewMemoryReviewRepository() *MemoryReviewRepository {
	return &MemoryReviewRepository{reviews: xsync.NewMapOf[string, studygroup.StudyGroupReview]()}
}

// FindByReviewID returns the stored review, or nil when absent.
func (r *MemoryReviewRepository) FindByReviewID(ctx context.Context, reviewID string) (*studygroup.StudyGroupReview, error) {
	review, ok := r.reviews.Load(reviewID)
	if !ok {
		return nil, nil
	}
	return &review, nil
}

// FindByGroupID returns the group's reviews ordered by review id.
func (r *MemoryReviewRepository) FindByGroupID(ctx context.Context, groupID string) ([]studygroup.StudyGroupReview, error) {
	return r.filter(func(review studygroup.StudyGroupReview) bool {
		return review.GroupID == groupID
	}), nil
}

// FindByDiscussionTopic returns the topic's reviews ordered by review id.
func (r *MemoryReviewRepository) FindByDiscussionTopic(ctx context.Context, topic string) ([]studygroup.StudyGroupReview, error) {
	return r.filter(func(review studygroup.StudyGroupReview) bool {
		return review.DiscussionTopic == topic
	}), nil
}

// FindAll returns every stored review ordered by review id.
func (r *MemoryReviewRepository) FindAll(ctx context.Context) ([]studygroup.StudyGroupReview, error) {
	return r.filter(func(studygroup.StudyGroupReview) bool { return true }), nil
}

// Save stores the review under its identifier.
func (r *MemoryReviewRepository) Save(ctx context.Context, review studygroup.StudyGroupReview) (*studygroup.StudyGroupReview, error) {
	r.reviews.Store(review.ReviewID, review)
	return &review, nil
}

func (r *MemoryReviewRepository) filter(keep func(studygroup.StudyGroupReview) bool) []studygroup.StudyGroupReview {
	var reviews []studygroup.StudyGroupReview
	r.reviews.Range(func(_ string, review studygroup.StudyGroupReview) bool {
		if keep(review) {
			reviews = append(reviews, review)
		}
		return true
	})

	sort.Slice(reviews, func(i, j int) bool { return reviews[i].ReviewID < reviews[j].ReviewID })
	return reviews
}
