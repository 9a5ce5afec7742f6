// Package review accepts study group review submissions and serves
// aggregate rating queries recomputed from the full review history.
package review

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/goliatone/go-studygroup-directory/studygroup"
)

// Service accepts review submissions and answers aggregate queries over
// the review history. Aggregates are never stored as running counters:
// every answer is recomputed from the full set of review records for the
// group at the moment of the query.
type Service struct {
	reviews studygroup.ReviewRepository
	log     *zap.Logger
}

// New wires a review aggregation service over the review repository.
func New(reviews studygroup.ReviewRepository, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}

	return &Service{
		reviews: reviews,
		log:     log.With(zap.String("service", "review")),
	}
}

// SubmitStudyGroupReview validates and persists one review, then reads
// back the group's complete review history to recompute its mean rating
// and comment set. The returned summary combines the submission's own
// fields with the group's current standing. Persist-then-aggregate is
// not atomic: a concurrent reader may observe the new review before the
// caller sees the recomputed aggregate.
func (s *Service) SubmitStudyGroupReview(ctx context.Context, submission *studygroup.StudyGroupReview) (*studygroup.ReviewSummary, error) {
	if submission == nil {
		return nil, fmt.Errorf("%w: nil submission", studygroup.ErrReviewNotFound)
	}
	if err := submission.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", studygroup.ErrInvalidReview, err)
	}

	record := *submission
	record.ReviewID = uuid.NewString()
	// The persisted snapshot is never read back; the authoritative mean
	// is recomputed below and on every later query.
	record.AverageRating = float64(record.Rating)

	saved, err := s.reviews.Save(ctx, record)
	if err != nil {
		return nil, err
	}

	history, err := s.reviews.FindByGroupID(ctx, saved.GroupID)
	if err != nil {
		return nil, err
	}

	comments := make([]string, 0, len(history))
	for _, r := range history {
		comments = append(comments, r.ReviewComments)
	}

	summary := &studygroup.ReviewSummary{
		StudyGroupReview: *saved,
		AverageRating:    meanRating(history),
		Comments:         comments,
	}

	s.log.Debug("review submitted",
		zap.String("group_id", saved.GroupID),
		zap.String("review_id", saved.ReviewID),
		zap.Float64("average_rating", summary.AverageRating))
	return summary, nil
}

// GetStudyGroupReview is a point lookup by review identifier. Returns
// (nil, nil) when no such review exists.
func (s *Service) GetStudyGroupReview(ctx context.Context, reviewID string) (*studygroup.StudyGroupReview, error) {
	return s.reviews.FindByReviewID(ctx, reviewID)
}

// GetStudyGroupReviewsByTopic returns every review recorded under the
// discussion topic. The result is never nil.
func (s *Service) GetStudyGroupReviewsByTopic(ctx context.Context, topic string) ([]studygroup.StudyGroupReview, error) {
	reviews, err := s.reviews.FindByDiscussionTopic(ctx, topic)
	if err != nil {
		return nil, err
	}
	if reviews == nil {
		reviews = []studygroup.StudyGroupReview{}
	}
	return reviews, nil
}

// GetGroupsWithDesiredRating maps group identifier to current mean
// rating, restricted to groups reviewed under the topic whose mean meets
// or exceeds threshold. An empty map signals that no group in the topic
// clears the threshold.
func (s *Service) GetGroupsWithDesiredRating(ctx context.Context, threshold float64, topic string) (map[string]float64, error) {
	reviews, err := s.reviews.FindByDiscussionTopic(ctx, topic)
	if err != nil {
		return nil, err
	}

	qualified := make(map[string]float64)
	seen := make(map[string]struct{})

	for _, r := range reviews {
		if _, ok := seen[r.GroupID]; ok {
			continue
		}
		seen[r.GroupID] = struct{}{}

		average, err := s.CalculateAverageRating(ctx, r.GroupID)
		if err != nil {
			return nil, err
		}
		if average >= threshold {
			qualified[r.GroupID] = average
		}
	}

	return qualified, nil
}

// CalculateAverageRating returns the arithmetic mean of the rating field
// over all review records for the group, evaluated now. A group with no
// reviews rates 0.0.
func (s *Service) CalculateAverageRating(ctx context.Context, groupID string) (float64, error) {
	history, err := s.reviews.FindByGroupID(ctx, groupID)
	if err != nil {
		return 0, err
	}
	return meanRating(history), nil
}

func meanRating(reviews []studygroup.StudyGroupReview) float64 {
	if len(reviews) == 0 {
		return 0.0
	}

	total := 0
	for _, r := range reviews {
		total += r.Rating
	}
	return float64(total) / float64(len(reviews))
}
