package service

import (
	"strings"

	"github.com/northcart/northcart/internal/constants"
	"github.com/northcart/northcart/internal/models"
	"github.com/northcart/northcart/internal/repository"
)

// ReviewPage is one page of product reviews.
type ReviewPage struct {
	Reviews     []models.Review `json:"reviews"`
	TotalPages  int             `json:"totalPages"`
	CurrentPage int             `json:"currentPage"`
	Count       int64           `json:"count"`
}

// ReviewService owns product reviews: member submissions, owner edits and
// admin moderation.
type ReviewService struct {
	reviewRepo  repository.ReviewRepository
	productRepo repository.ProductRepository
}

// NewReviewService creates the review service.
func NewReviewService(reviewRepo repository.ReviewRepository, productRepo repository.ProductRepository) *ReviewService {
	return &ReviewService{reviewRepo: reviewRepo, productRepo: productRepo}
}

// ListByProductSlug pages through a product's approved reviews.
func (s *ReviewService) ListByProductSlug(slug string, page, limit int) (*ReviewPage, error) {
	product, err := s.productRepo.GetBySlug(strings.TrimSpace(slug), false)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}
	reviews, count, err := s.reviewRepo.ListByProduct(repository.ReviewListFilter{
		Page:         page,
		PageSize:     limit,
		ProductID:    product.ID,
		ApprovedOnly: true,
	})
	if err != nil {
		return nil, err
	}
	totalPages := int((count + int64(limit) - 1) / int64(limit))
	return &ReviewPage{
		Reviews:     reviews,
		TotalPages:  totalPages,
		CurrentPage: page,
		Count:       count,
	}, nil
}

// ReviewCreateInput is a member's review submission.
type ReviewCreateInput struct {
	ProductID uint
	UserID    uint
	Title     string
	Comment   string
	Rating    int
}

// Create stores a review pending approval.
func (s *ReviewService) Create(input ReviewCreateInput) (*models.Review, error) {
	if input.Rating < constants.ReviewRatingMin || input.Rating > constants.ReviewRatingMax {
		return nil, ErrInvalidRating
	}
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrReviewNotFound
	}

	product, err := s.productRepo.GetByID(input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	review := &models.Review{
		ProductID:  product.ID,
		UserID:     input.UserID,
		Title:      title,
		Comment:    strings.TrimSpace(input.Comment),
		Rating:     input.Rating,
		IsApproved: false,
	}
	if err := s.reviewRepo.Create(review); err != nil {
		return nil, err
	}
	return review, nil
}

// ReviewUpdateInput carries the owner-editable fields; nil means unchanged.
type ReviewUpdateInput struct {
	Title   *string
	Comment *string
	Rating  *int
}

// Update lets the review's author change it. Edits go back through
// moderation.
func (s *ReviewService) Update(id, userID uint, input ReviewUpdateInput) error {
	review, err := s.reviewRepo.GetByID(id)
	if err != nil {
		return err
	}
	if review == nil {
		return ErrReviewNotFound
	}
	if review.UserID != userID {
		return ErrNotResourceOwner
	}

	updates := map[string]interface{}{}
	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return ErrReviewNotFound
		}
		updates["title"] = title
	}
	if input.Comment != nil {
		updates["comment"] = strings.TrimSpace(*input.Comment)
	}
	if input.Rating != nil {
		if *input.Rating < constants.ReviewRatingMin || *input.Rating > constants.ReviewRatingMax {
			return ErrInvalidRating
		}
		updates["rating"] = *input.Rating
	}
	if len(updates) == 0 {
		return nil
	}
	updates["is_approved"] = false
	return s.reviewRepo.Update(id, updates)
}

// Delete removes a review. Admins may delete any review; members only
// their own.
func (s *ReviewService) Delete(id, userID uint, isAdmin bool) error {
	review, err := s.reviewRepo.GetByID(id)
	if err != nil {
		return err
	}
	if review == nil {
		return ErrReviewNotFound
	}
	if !isAdmin && review.UserID != userID {
		return ErrNotResourceOwner
	}

	affected, err := s.reviewRepo.Delete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrReviewNotFound
	}
	return nil
}

// Approve marks a review as publicly visible (admin moderation).
func (s *ReviewService) Approve(id uint, approved bool) error {
	review, err := s.reviewRepo.GetByID(id)
	if err != nil {
		return err
	}
	if review == nil {
		return ErrReviewNotFound
	}
	return s.reviewRepo.Update(id, map[string]interface{}{"is_approved": approved})
}
