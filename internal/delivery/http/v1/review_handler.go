package v1

import (
	"net/http"
	"strconv"
	"strings"

	"go-marketplace-backend/internal/delivery/http/response"
	"go-marketplace-backend/internal/domain"
	"go-marketplace-backend/pkg/apperror"
	"go-marketplace-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	reviewUC domain.ReviewUsecase
}

func NewReviewHandler(public *gin.RouterGroup, protected *gin.RouterGroup, reviewUC domain.ReviewUsecase) {
	handler := &ReviewHandler{reviewUC: reviewUC}

	protected.POST("/projects/:id/reviews", handler.Create)
	public.GET("/users/:id/reviews", handler.ListByUser)
}

type CreateReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,gte=1,lte=5"`
	Comment string `json:"comment"`
}

// Create godoc
// @Summary      Review a completed project
// @Description  Leave a rating for the other project party. One review per direction.
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Param        id    path      int                  true  "Project ID"
// @Param        body  body      CreateReviewRequest  true  "Review JSON"
// @Success      201   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      409   {object}  response.Response
// @Router       /projects/{id}/reviews [post]
// @Security     BearerAuth
func (h *ReviewHandler) Create(c *gin.Context) {
	projectID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(strings.Join(validation.FormatValidationErrors(err), "; ")))
		return
	}

	reviewerID := c.GetString(string(domain.KeyUserID))

	review, err := h.reviewUC.CreateReview(c.Request.Context(), reviewerID, projectID, req.Rating, req.Comment)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Review created", review)
}

// ListByUser returns reviews received by a user.
func (h *ReviewHandler) ListByUser(c *gin.Context) {
	userID := c.Param("id")

	reviews, err := h.reviewUC.ListByUser(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "User reviews", reviews)
}
