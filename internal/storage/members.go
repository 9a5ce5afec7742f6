package storage

import (
	"context"
	"database/sql"
	"errors"

	"github.com/uptrace/bun"

	"github.com/goliatone/go-studygroup-directory/studygroup"
)

// MembershipStore persists membership records in the study_group_members
// table, keyed by the composite (group_id, member_id) pair.
type MembershipStore struct {
	db *bun.DB
}

var _ studygroup.StudyGroupMemberRepository = (*MembershipStore)(nil)

// NewMembershipStore creates a membership repository over db.
func NewMembershipStore(db *bun.DB) *MembershipStore {
	return &MembershipStore{db: db}
}

// FindByID returns the membership with the composite key, or nil when
// absent.
func (s *MembershipStore) FindByID(ctx context.Context, id studygroup.MembershipID) (*studygroup.StudyGroupMember, error) {
	member := new(studygroup.StudyGroupMember)

	err := s.db.NewSelect().Model(member).
		Where("group_id = ?", id.GroupID).
		Where("member_id = ?", id.MemberID).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return member, nil
}

// FindByGroupID returns every membership of the group.
func (s *MembershipStore) FindByGroupID(ctx context.Context, groupID string) ([]studygroup.StudyGroupMember, error) {
	var members []studygroup.StudyGroupMember

	err := s.db.NewSelect().Model(&members).
		Where("group_id = ?", groupID).
		Order("member_id").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return members, nil
}

// FindAll returns the complete membership record set.
func (s *MembershipStore) FindAll(ctx context.Context) ([]studygroup.StudyGroupMember, error) {
	var members []studygroup.StudyGroupMember

	if err := s.db.NewSelect().Model(&members).Order("group_id", "member_id").Scan(ctx); err != nil {
		return nil, err
	}
	return members, nil
}

// Save inserts the membership or refreshes the denormalized group fields
// on composite-key conflict.
func (s *MembershipStore) Save(ctx context.Context, member studygroup.StudyGroupMember) (*studygroup.StudyGroupMember, error) {
	_, err := s.db.NewInsert().
		Model(&member).
		On("CONFLICT (group_id, member_id) DO UPDATE").
		Set("group_name = EXCLUDED.group_name").
		Set("discussion_topic = EXCLUDED.discussion_topic").
		Set("creation_date = EXCLUDED.creation_date").
		Set("active = EXCLUDED.active").
		Exec(ctx)
	if err != nil {
		return nil, err
	}

	return &member, nil
}

// Delete removes one membership record.
func (s *MembershipStore) Delete(ctx context.Context, member studygroup.StudyGroupMember) error {
	_, err := s.db.NewDelete().
		Model((*studygroup.StudyGroupMember)(nil)).
		Where("group_id = ?", member.GroupID).
		Where("member_id = ?", member.MemberID).
		Exec(ctx)
	return err
}

// MemberStore reads member identities from the members table. The
// directory service only ever reads identities; Save exists for
// provisioning and tests.
type MemberStore struct {
	db *bun.DB
}

var _ studygroup.MemberRepository = (*MemberStore)(nil)

// NewMemberStore creates a member identity repository over db.
func NewMemberStore(db *bun.DB) *MemberStore {
	return &MemberStore{db: db}
}

// FindByEmail returns the member identity, or nil when absent.
func (s *MemberStore) FindByEmail(ctx context.Context, email string) (*studygroup.Member, error) {
	member := new(studygroup.Member)

	err := s.db.NewSelect().Model(member).Where("email = ?", email).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return member, nil
}

// Save upserts a member identity.
func (s *MemberStore) Save(ctx context.Context, member studygroup.Member) (*studygroup.Member, error) {
	_, err := s.db.NewInsert().
		Model(&member).
		On("CONFLICT (email) DO UPDATE").
		Set("password = EXCLUDED.password").
		Exec(ctx)
	if err != nil {
		return nil, err
	}

	return &member, nil
}
