package directory

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/goliatone/go-studygroup-directory/cache"
	"github.com/goliatone/go-studygroup-directory/studygroup"
)

// CacheNamespace prefixes every group key the service places in the
// cache store.
const CacheNamespace = "study_group"

// Service orchestrates create/read/update/delete of study groups and
// their memberships. Reads consult the cache before the group
// repository; writes evict the cache only after the repository write is
// confirmed. The service holds no state of its own beyond the injected
// collaborators, so one instance may serve any number of goroutines.
type Service struct {
	groups     studygroup.GroupRepository
	members    studygroup.StudyGroupMemberRepository
	identities studygroup.MemberRepository
	store      cache.Store
	keys       cache.Keyer
	log        *zap.Logger
}

// New wires a directory service over its collaborators. The cache store
// lifecycle is owned by the hosting process and passed in explicitly; a
// nil logger falls back to a no-op logger.
func New(
	groups studygroup.GroupRepository,
	members studygroup.StudyGroupMemberRepository,
	identities studygroup.MemberRepository,
	store cache.Store,
	keys cache.Keyer,
	log *zap.Logger,
) *Service {
	if log == nil {
		log = zap.NewNop()
	}

	return &Service{
		groups:     groups,
		members:    members,
		identities: identities,
		store:      store,
		keys:       keys,
		log:        log.With(zap.String("service", "directory")),
	}
}

// AddNewStudyGroup persists a new group record and returns the persisted
// view. An identifier collision fails with ErrDuplicateGroup; creation
// never overwrites silently. The cache is not pre-populated: it fills
// lazily on the first cached read.
func (s *Service) AddNewStudyGroup(ctx context.Context, group studygroup.StudyGroup) (*studygroup.StudyGroup, error) {
	if err := group.Validate(); err != nil {
		return nil, fmt.Errorf("add study group: %w", err)
	}

	existing, err := s.groups.FindByID(ctx, group.GroupID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: %s", studygroup.ErrDuplicateGroup, group.GroupID)
	}

	saved, err := s.groups.Save(ctx, group)
	if err != nil {
		return nil, err
	}

	s.log.Debug("study group created", zap.String("group_id", saved.GroupID))
	return saved, nil
}

// FindByCachedGroupID is the cache-aside read path. A hit returns the
// cached copy without touching the repository. A miss reads the
// repository and, only when the group exists, stores the result under
// the group's key; absence is never cached. Returns (nil, nil) when the
// group does not exist.
func (s *Service) FindByCachedGroupID(ctx context.Context, groupID string) (*studygroup.StudyGroup, error) {
	key := s.keys.Key(CacheNamespace, groupID)

	if cached, ok := cache.Get[studygroup.StudyGroup](ctx, s.store, key); ok {
		s.log.Debug("cache hit", zap.String("group_id", groupID))
		return &cached, nil
	}

	group, err := s.groups.FindByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, nil
	}

	s.store.Add(ctx, key, *group)
	s.log.Debug("cache miss, populated", zap.String("group_id", groupID))
	return group, nil
}

// UpdateStudyGroup mutates an existing group's name, topic, creation
// date and active flag, persists it, and then evicts the group from the
// cache. The update-then-evict ordering guarantees the next cached read
// observes the new value; a failed save leaves the cache untouched.
func (s *Service) UpdateStudyGroup(ctx context.Context, group studygroup.StudyGroup) (*studygroup.StudyGroup, error) {
	current, err := s.groups.FindByID(ctx, group.GroupID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, fmt.Errorf("%w: %s", studygroup.ErrGroupNotFound, group.GroupID)
	}

	current.GroupName = group.GroupName
	current.DiscussionTopic = group.DiscussionTopic
	current.CreationDate = group.CreationDate
	current.Active = group.Active

	saved, err := s.groups.Save(ctx, *current)
	if err != nil {
		return nil, err
	}

	s.store.Evict(ctx, s.keys.Key(CacheNamespace, group.GroupID))
	s.log.Debug("study group updated", zap.String("group_id", group.GroupID))
	return saved, nil
}

// DeleteStudyGroup removes a group and everything that references it:
// memberships first, then the group record, then the cache entry.
// Memberships go first so an interruption cannot leave orphaned
// memberships behind a deleted group. The sequence is not atomic; a
// failure surfaces immediately and already-completed steps are not
// rolled back.
func (s *Service) DeleteStudyGroup(ctx context.Context, groupID string) error {
	memberships, err := s.members.FindByGroupID(ctx, groupID)
	if err != nil {
		return err
	}

	for _, membership := range memberships {
		if err := s.members.Delete(ctx, membership); err != nil {
			return fmt.Errorf("delete membership %s: %w", membership.ID(), err)
		}
	}

	if err := s.groups.DeleteByID(ctx, groupID); err != nil {
		return err
	}

	s.store.Evict(ctx, s.keys.Key(CacheNamespace, groupID))
	s.log.Info("study group deleted",
		zap.String("group_id", groupID),
		zap.Int("memberships_removed", len(memberships)))
	return nil
}

// AddMemberToStudyGroup enrolls a member into a group. The operation is
// idempotent on the composite (group, member) key: re-adding an
// already-present member returns the existing record without a second
// persistence call. Group name, topic, creation date and active flag
// are denormalized onto the membership at add-time and do not track
// later group updates.
func (s *Service) AddMemberToStudyGroup(ctx context.Context, group studygroup.StudyGroup, memberID string) (*studygroup.StudyGroupMember, error) {
	if memberID == "" {
		return nil, fmt.Errorf("%w: blank member id", studygroup.ErrMemberNotFound)
	}

	existing, err := s.groups.FindByID(ctx, group.GroupID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, fmt.Errorf("%w: %s", studygroup.ErrGroupNotFound, group.GroupID)
	}

	identity, err := s.identities.FindByEmail(ctx, memberID)
	if err != nil {
		return nil, err
	}
	if identity == nil {
		return nil, fmt.Errorf("%w: %s", studygroup.ErrMemberNotFound, memberID)
	}

	id := studygroup.MembershipID{GroupID: existing.GroupID, MemberID: memberID}
	if current, err := s.members.FindByID(ctx, id); err != nil {
		return nil, err
	} else if current != nil {
		return current, nil
	}

	membership := studygroup.StudyGroupMember{
		GroupID:         existing.GroupID,
		MemberID:        memberID,
		GroupName:       existing.GroupName,
		DiscussionTopic: existing.DiscussionTopic,
		CreationDate:    existing.CreationDate,
		Active:          existing.Active,
	}

	saved, err := s.members.Save(ctx, membership)
	if err != nil {
		return nil, err
	}

	s.log.Debug("member added",
		zap.String("group_id", existing.GroupID),
		zap.String("member_id", memberID))
	return saved, nil
}

// RemoveMemberFromStudyGroup deletes one membership. A missing composite
// key fails with ErrGroupNotFound.
func (s *Service) RemoveMemberFromStudyGroup(ctx context.Context, groupID, memberID string) error {
	id := studygroup.MembershipID{GroupID: groupID, MemberID: memberID}

	membership, err := s.members.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if membership == nil {
		return fmt.Errorf("%w: membership %s", studygroup.ErrGroupNotFound, id)
	}

	return s.members.Delete(ctx, *membership)
}

// RemoveAllMembersFromStudyGroup deletes every membership for the group.
// A group with no membership records at all fails with ErrGroupNotFound,
// treated as "group unknown or empty" without distinguishing further,
// and issues no delete calls.
func (s *Service) RemoveAllMembersFromStudyGroup(ctx context.Context, groupID string) error {
	memberships, err := s.members.FindByGroupID(ctx, groupID)
	if err != nil {
		return err
	}
	if len(memberships) == 0 {
		return fmt.Errorf("%w: no memberships for %s", studygroup.ErrGroupNotFound, groupID)
	}

	for _, membership := range memberships {
		if err := s.members.Delete(ctx, membership); err != nil {
			return fmt.Errorf("delete membership %s: %w", membership.ID(), err)
		}
	}

	s.log.Debug("memberships cleared",
		zap.String("group_id", groupID),
		zap.Int("count", len(memberships)))
	return nil
}

// GetStudyGroupMembers lists the memberships of a group. The result is
// never nil; a group with no memberships yields an empty slice. The
// cache is not involved.
func (s *Service) GetStudyGroupMembers(ctx context.Context, groupID string) ([]studygroup.StudyGroupMember, error) {
	memberships, err := s.members.FindByGroupID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if memberships == nil {
		memberships = []studygroup.StudyGroupMember{}
	}
	return memberships, nil
}

// GetAllStudyGroups returns every group record.
func (s *Service) GetAllStudyGroups(ctx context.Context) ([]studygroup.StudyGroup, error) {
	groups, err := s.groups.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if groups == nil {
		groups = []studygroup.StudyGroup{}
	}
	return groups, nil
}

// GetExistingStudyGroup scans the full record set for a group matching
// the candidate's identifier. Returns (nil, nil) when no match exists.
func (s *Service) GetExistingStudyGroup(ctx context.Context, candidate studygroup.StudyGroup) (*studygroup.StudyGroup, error) {
	groups, err := s.groups.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	for i := range groups {
		if groups[i].GroupID == candidate.GroupID {
			return &groups[i], nil
		}
	}
	return nil, nil
}
