package api

import (
	"github.com/northcart/northcart/internal/http/response"
	"github.com/northcart/northcart/internal/service"

	"github.com/gin-gonic/gin"
)

// ListProductReviews pages through a product's approved reviews.
func (h *Handler) ListProductReviews(c *gin.Context) {
	page, limit := parsePaging(c)
	result, err := h.ReviewService.ListByProductSlug(c.Param("slug"), page, limit)
	if err != nil {
		respondWithMappedError(c, err, reviewErrorRules)
		return
	}
	response.OK(c, gin.H{
		"reviews":     result.Reviews,
		"totalPages":  result.TotalPages,
		"currentPage": result.CurrentPage,
		"count":       result.Count,
	})
}

// ReviewCreateRequest is a member's review submission.
type ReviewCreateRequest struct {
	ProductID uint   `json:"product" binding:"required"`
	Title     string `json:"title" binding:"required"`
	Review    string `json:"review"`
	Rating    int    `json:"rating" binding:"required"`
}

// CreateReview stores a review pending moderation.
func (h *Handler) CreateReview(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	var req ReviewCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "You must enter a title, rating and product.")
		return
	}
	review, err := h.ReviewService.Create(service.ReviewCreateInput{
		ProductID: req.ProductID,
		UserID:    uid,
		Title:     req.Title,
		Comment:   req.Review,
		Rating:    req.Rating,
	})
	if err != nil {
		respondWithMappedError(c, err, reviewErrorRules)
		return
	}
	response.OK(c, gin.H{"success": true, "review": review})
}

// ReviewUpdateRequest carries owner edits; absent fields stay untouched.
type ReviewUpdateRequest struct {
	Title  *string `json:"title"`
	Review *string `json:"review"`
	Rating *int    `json:"rating"`
}

// UpdateReview lets the author change their review.
func (h *Handler) UpdateReview(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id", "Invalid ID format provided.")
	if !ok {
		return
	}
	var req ReviewUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid ID format provided.")
		return
	}
	if err := h.ReviewService.Update(id, uid, service.ReviewUpdateInput{
		Title:   req.Title,
		Comment: req.Review,
		Rating:  req.Rating,
	}); err != nil {
		respondWithMappedError(c, err, reviewErrorRules)
		return
	}
	response.OK(c, gin.H{"success": true})
}

// DeleteReview removes a review. Admins may delete any review.
func (h *Handler) DeleteReview(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id", "Invalid ID format provided.")
	if !ok {
		return
	}
	if err := h.ReviewService.Delete(id, uid, isAdmin(c)); err != nil {
		respondWithMappedError(c, err, reviewErrorRules)
		return
	}
	response.OK(c, gin.H{"success": true})
}

// ApproveReviewRequest toggles a review's public visibility.
type ApproveReviewRequest struct {
	Approved bool `json:"isApproved"`
}

// ApproveReview moderates a review (admin).
func (h *Handler) ApproveReview(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "Invalid ID format provided.")
	if !ok {
		return
	}
	var req ApproveReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid ID format provided.")
		return
	}
	if err := h.ReviewService.Approve(id, req.Approved); err != nil {
		respondWithMappedError(c, err, reviewErrorRules)
		return
	}
	response.OK(c, gin.H{"success": true})
}
