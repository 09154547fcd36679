package services

import (
	"fmt"
	"strings"

	"github.com/MachineLearnerSatyam/Restaurant-Management-Project/entity"
	"github.com/MachineLearnerSatyam/Restaurant-Management-Project/repository"
)

type FeedbackService struct {
	Repo *repository.FeedbackRepository
}

func NewFeedbackService(repo *repository.FeedbackRepository) *FeedbackService {
	return &FeedbackService{Repo: repo}
}

// Submit stores one rating+comment record. Both validations run before
// any I/O; the rating range is enforced here because the core does not
// trust whatever control the presentation layer used to collect it.
func (s *FeedbackService) Submit(userID uint, rating int, comments string) error {
	comments = strings.TrimSpace(comments)
	if comments == "" {
		return ErrEmptyComment
	}
	if rating < 1 || rating > 5 {
		return ErrRatingOutOfRange
	}

	f := &entity.Feedback{
		UserID:   userID,
		Rating:   rating,
		Comments: comments,
	}
	if err := s.Repo.Create(f); err != nil {
		return fmt.Errorf("save feedback: %w", err)
	}
	return nil
}
