package storage

import (
	"context"
	"database/sql"
	"errors"

	"github.com/uptrace/bun"

	"github.com/goliatone/go-studygroup-directory/studygroup"
)

// GroupStore persists study groups in the study_groups table.
type GroupStore struct {
	db *bun.DB
}

var _ studygroup.GroupRepository = (*GroupStore)(nil)

// NewGroupStore creates a group repository over db.
func NewGroupStore(db *bun.DB) *GroupStore {
	return &GroupStore{db: db}
}

// FindByID returns the group with the identifier, or nil when absent.
func (s *GroupStore) FindByID(ctx context.Context, groupID string) (*studygroup.StudyGroup, error) {
	group := new(studygroup.StudyGroup)

	err := s.db.NewSelect().Model(group).Where("group_id = ?", groupID).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return group, nil
}

// FindAll returns the complete group record set.
func (s *GroupStore) FindAll(ctx context.Context) ([]studygroup.StudyGroup, error) {
	var groups []studygroup.StudyGroup

	if err := s.db.NewSelect().Model(&groups).Order("group_id").Scan(ctx); err != nil {
		return nil, err
	}
	return groups, nil
}

// Save inserts the group or updates its mutable fields on identifier
// conflict.
func (s *GroupStore) Save(ctx context.Context, group studygroup.StudyGroup) (*studygroup.StudyGroup, error) {
	_, err := s.db.NewInsert().
		Model(&group).
		On("CONFLICT (group_id) DO UPDATE").
		Set("group_name = EXCLUDED.group_name").
		Set("discussion_topic = EXCLUDED.discussion_topic").
		Set("creation_date = EXCLUDED.creation_date").
		Set("active = EXCLUDED.active").
		Exec(ctx)
	if err != nil {
		return nil, err
	}

	return &group, nil
}

// DeleteByID removes the group record. Deleting an absent identifier is
// not an error.
func (s *GroupStore) DeleteByID(ctx context.Context, groupID string) error {
	_, err := s.db.NewDelete().
		Model((*studygroup.StudyGroup)(nil)).
		Where("group_id = ?", groupID).
		Exec(ctx)
	return err
}
