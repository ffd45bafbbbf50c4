package v1

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"go-marketplace-backend/internal/delivery/http/response"
	"go-marketplace-backend/internal/domain"
	"go-marketplace-backend/pkg/apperror"
	"go-marketplace-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	projectUC domain.ProjectUsecase
}

func NewProjectHandler(public *gin.RouterGroup, protected *gin.RouterGroup, projectUC domain.ProjectUsecase) {
	handler := &ProjectHandler{projectUC: projectUC}

	// PUBLIC routes - browsing projects requires no account
	publicProjects := public.Group("/projects")
	{
		publicProjects.GET("", handler.List)
		publicProjects.GET("/:id", handler.GetDetails)
	}

	// PROTECTED routes
	protectedProjects := protected.Group("/projects")
	{
		protectedProjects.POST("", handler.Create)
		protectedProjects.PATCH("/:id/status", handler.Transition)
	}
}

type CreateProjectRequest struct {
	Title       string    `json:"title" binding:"required,min=5"`
	Description string    `json:"description" binding:"required,min=20"`
	Budget      float64   `json:"budget" binding:"required,gt=0"`
	Deadline    time.Time `json:"deadline" binding:"required,future_date"`
	Category    string    `json:"category" binding:"required"`
	PaymentType string    `json:"payment_type" binding:"required,oneof=fixed hourly"`
	Status      string    `json:"status" binding:"omitempty,oneof=draft open"`
}

type TransitionRequest struct {
	Status string `json:"status" binding:"required"`
}

// Create godoc
// @Summary      Post a new project
// @Description  Create a project open for bids (clients only)
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        project  body      CreateProjectRequest  true  "Project JSON"
// @Success      201      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Router       /projects [post]
// @Security     BearerAuth
func (h *ProjectHandler) Create(c *gin.Context) {
	role := c.GetString(string(domain.KeyUserRole))
	if role != domain.RoleClient {
		c.Error(apperror.Forbidden("Only clients can post projects"))
		return
	}

	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(strings.Join(validation.FormatValidationErrors(err), "; ")))
		return
	}

	clientID := c.GetString(string(domain.KeyUserID))

	project := &domain.Project{
		Title:       req.Title,
		Description: req.Description,
		Budget:      req.Budget,
		Deadline:    req.Deadline,
		Category:    req.Category,
		PaymentType: req.PaymentType,
		Status:      req.Status,
	}

	if err := h.projectUC.CreateProject(c.Request.Context(), clientID, project); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Project created", project)
}

// List godoc
// @Summary      List projects
// @Description  Filtered, sorted, paginated project listing
// @Tags         projects
// @Produce      json
// @Param        name       query     string  false  "Title substring (case-insensitive)"
// @Param        status     query     string  false  "Project status"
// @Param        category   query     string  false  "Category"
// @Param        client_id  query     string  false  "Owning client id"
// @Param        sort_by    query     string  false  "Sort key: name or date"
// @Param        order      query     string  false  "asc or desc"
// @Param        page       query     int     false  "Page number (1-indexed)"
// @Param        limit      query     int     false  "Page size"
// @Success      200        {object}  response.Response
// @Failure      400        {object}  response.Response
// @Router       /projects [get]
func (h *ProjectHandler) List(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		c.Error(apperror.BadRequest("Page must be a number"))
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil {
		c.Error(apperror.BadRequest("Limit must be a number"))
		return
	}

	filter := domain.ProjectFilter{
		Name:     c.Query("name"),
		Status:   c.Query("status"),
		Category: c.Query("category"),
		ClientID: c.Query("client_id"),
		SortBy:   c.Query("sort_by"),
		Order:    c.Query("order"),
		Page:     page,
		Limit:    limit,
	}

	projects, total, err := h.projectUC.ListProjects(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Project list", gin.H{
		"projects": projects,
		"total":    total,
		"page":     filter.Page,
		"limit":    filter.Limit,
	})
}

// GetDetails godoc
// @Summary      Get project details
// @Tags         projects
// @Produce      json
// @Param        id   path      int  true  "Project ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /projects/{id} [get]
func (h *ProjectHandler) GetDetails(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	project, err := h.projectUC.GetProject(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Project details", project)
}

// Transition godoc
// @Summary      Change project status
// @Description  Move a project along its lifecycle. Cancelling an open project rejects all pending bids.
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        id    path      int                true  "Project ID"
// @Param        body  body      TransitionRequest  true  "Target status"
// @Success      200   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      409   {object}  response.Response
// @Router       /projects/{id}/status [patch]
// @Security     BearerAuth
func (h *ProjectHandler) Transition(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	var req TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(strings.Join(validation.FormatValidationErrors(err), "; ")))
		return
	}

	actorID := c.GetString(string(domain.KeyUserID))

	project, err := h.projectUC.Transition(c.Request.Context(), actorID, id, req.Status)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Project status updated", project)
}
