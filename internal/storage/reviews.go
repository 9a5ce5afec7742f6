package storage

import (
	"context"
	"database/sql"
	"errors"

	"github.com/uptrace/bun"

	"github.com/goliatone/go-studygroup-directory/studygroup"
)

// ReviewStore persists review records in the study_group_reviews table.
// Reviews are written once and never updated or deleted here, so Save is
// a plain insert.
type ReviewStore struct {
	db *bun.DB
}

var _ studygroup.ReviewRepository = (*ReviewStore)(nil)

// NewReviewStore creates a review repository over db.
func NewReviewStore(db *bun.DB) *ReviewStore {
	return &ReviewStore{db: db}
}

// FindByReviewID returns the review with the identifier, or nil when
// absent.
func (s *ReviewStore) FindByReviewID(ctx context.Context, reviewID string) (*studygroup.StudyGroupReview, error) {
	review := new(studygroup.StudyGroupReview)

	err := s.db.NewSelect().Model(review).Where("review_id = ?", reviewID).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return review, nil
}

// FindByGroupID returns every review recorded for the group. There is no
// foreign-key constraint toward study_groups; orphan reviews are
// permitted.
func (s *ReviewStore) FindByGroupID(ctx context.Context, groupID string) ([]studygroup.StudyGroupReview, error) {
	var reviews []studygroup.StudyGroupReview

	err := s.db.NewSelect().Model(&reviews).
		Where("group_id = ?", groupID).
		Order("review_id").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

// FindByDiscussionTopic returns every review recorded under the topic.
func (s *ReviewStore) FindByDiscussionTopic(ctx context.Context, topic string) ([]studygroup.StudyGroupReview, error) {
	var reviews []studygroup.StudyGroupReview

	err := s.db.NewSelect().Model(&reviews).
		Where("discussion_topic = ?", topic).
		Order("review_id").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

// FindAll returns the complete review record set.
func (s *ReviewStore) FindAll(ctx context.Context) ([]studygroup.StudyGroupReview, error) {
	var reviews []studygroup.StudyGroupReview

	if err := s.db.NewSelect().Model(&reviews).Order("review_id").Scan(ctx); err != nil {
		return nil, err
	}
	return reviews, nil
}

// Save inserts one review record.
func (s *ReviewStore) Save(ctx context.Context, review studygroup.StudyGroupReview) (*studygroup.StudyGroupReview, error) {
	if _, err := s.db.NewInsert().Model(&review).Exec(ctx); err != nil {
		return nil, err
	}
	return &review, nil
}
