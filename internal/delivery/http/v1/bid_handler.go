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

type BidHandler struct {
	bidUC domain.BidUsecase
}

func NewBidHandler(protected *gin.RouterGroup, bidUC domain.BidUsecase) {
	handler := &BidHandler{bidUC: bidUC}

	projects := protected.Group("/projects")
	{
		projects.POST("/:id/bids", handler.Submit)
		projects.GET("/:id/bids", handler.ListByProject)
	}

	bids := protected.Group("/bids")
	{
		bids.GET("/mine", handler.ListMine)
		bids.PATCH("/:id/accept", handler.Accept)
		bids.PATCH("/:id/withdraw", handler.Withdraw)
	}
}

type SubmitBidRequest struct {
	Amount       float64 `json:"amount" binding:"required,gt=0"`
	DeliveryTime string  `json:"delivery_time" binding:"required"`
	Message      string  `json:"message" binding:"required,min=50"`
}

// Submit godoc
// @Summary      Bid on a project
// @Description  Place a pending bid on an open project (freelancers only, one pending bid per project)
// @Tags         bids
// @Accept       json
// @Produce      json
// @Param        id   path      int               true  "Project ID"
// @Param        bid  body      SubmitBidRequest  true  "Bid JSON"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /projects/{id}/bids [post]
// @Security     BearerAuth
func (h *BidHandler) Submit(c *gin.Context) {
	role := c.GetString(string(domain.KeyUserRole))
	if role != domain.RoleFreelancer {
		c.Error(apperror.Forbidden("Only freelancers can bid"))
		return
	}

	projectID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	var req SubmitBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(strings.Join(validation.FormatValidationErrors(err), "; ")))
		return
	}

	freelancerID := c.GetString(string(domain.KeyUserID))

	bid, err := h.bidUC.SubmitBid(c.Request.Context(), freelancerID, projectID, req.Amount, req.DeliveryTime, req.Message)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Bid submitted", bid)
}

// Accept godoc
// @Summary      Accept a bid
// @Description  Accept one pending bid: rejects all other bids on the project and assigns the freelancer, atomically.
// @Tags         bids
// @Produce      json
// @Param        id   path      int  true  "Bid ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /bids/{id}/accept [patch]
// @Security     BearerAuth
func (h *BidHandler) Accept(c *gin.Context) {
	bidID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	actorID := c.GetString(string(domain.KeyUserID))

	bid, err := h.bidUC.AcceptBid(c.Request.Context(), actorID, bidID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Bid accepted", bid)
}

// Withdraw retracts the caller's own pending bid.
func (h *BidHandler) Withdraw(c *gin.Context) {
	bidID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	actorID := c.GetString(string(domain.KeyUserID))

	if err := h.bidUC.WithdrawBid(c.Request.Context(), actorID, bidID); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Bid withdrawn", nil)
}

// ListByProject godoc
// @Summary      List a project's bids
// @Description  Returns all bids on the project (project's client only)
// @Tags         bids
// @Produce      json
// @Param        id   path      int  true  "Project ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /projects/{id}/bids [get]
// @Security     BearerAuth
func (h *BidHandler) ListByProject(c *gin.Context) {
	projectID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	actorID := c.GetString(string(domain.KeyUserID))

	bids, err := h.bidUC.ListByProject(c.Request.Context(), actorID, projectID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Project bids", bids)
}

// ListMine returns the caller's bids across all projects.
func (h *BidHandler) ListMine(c *gin.Context) {
	freelancerID := c.GetString(string(domain.KeyUserID))

	bids, err := h.bidUC.ListMine(c.Request.Context(), freelancerID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "My bids", bids)
}
