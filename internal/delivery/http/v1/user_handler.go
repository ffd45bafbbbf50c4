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

type UserHandler struct {
	userUC  domain.UserUsecase
	skillUC domain.SkillUsecase
}

func NewUserHandler(public *gin.RouterGroup, protected *gin.RouterGroup, userUC domain.UserUsecase, skillUC domain.SkillUsecase) {
	handler := &UserHandler{userUC: userUC, skillUC: skillUC}

	public.GET("/users/:id", handler.GetProfile)
	public.GET("/freelancers", handler.ListFreelancers)
	public.GET("/skills", handler.ListSkills)

	profile := protected.Group("/profile")
	{
		profile.PATCH("", handler.UpdateProfile)
		profile.PUT("/skills", handler.SetSkills)
	}
}

type UpdateProfileRequest struct {
	Bio        *string  `json:"bio" binding:"omitempty,max=500"`
	HourlyRate *float64 `json:"hourly_rate" binding:"omitempty,gt=0"`
}

type UserSkillInput struct {
	SkillID     int64 `json:"skill_id" binding:"required,gt=0"`
	Proficiency int   `json:"proficiency_level" binding:"required,gte=1,lte=5"`
}

type SetSkillsRequest struct {
	Skills []UserSkillInput `json:"skills" binding:"dive"`
}

// GetProfile godoc
// @Summary      Get a user's public profile
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /users/{id} [get]
func (h *UserHandler) GetProfile(c *gin.Context) {
	user, err := h.userUC.GetProfile(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "User profile", user)
}

// UpdateProfile updates the caller's bio and hourly rate.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(strings.Join(validation.FormatValidationErrors(err), "; ")))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))

	user, err := h.userUC.UpdateProfile(c.Request.Context(), userID, req.Bio, req.HourlyRate)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile updated", user)
}

// SetSkills replaces the caller's skill set.
func (h *UserHandler) SetSkills(c *gin.Context) {
	var req SetSkillsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(strings.Join(validation.FormatValidationErrors(err), "; ")))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))

	skills := make([]domain.UserSkill, len(req.Skills))
	for i, s := range req.Skills {
		skills[i] = domain.UserSkill{SkillID: s.SkillID, Proficiency: s.Proficiency}
	}

	updated, err := h.userUC.SetSkills(c.Request.Context(), userID, skills)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Skills updated", updated)
}

// ListFreelancers godoc
// @Summary      List freelancers
// @Tags         users
// @Produce      json
// @Param        page       query     int  false  "Page number"
// @Param        page_size  query     int  false  "Page size"
// @Success      200        {object}  response.Response
// @Router       /freelancers [get]
func (h *UserHandler) ListFreelancers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	users, total, err := h.userUC.ListFreelancers(c.Request.Context(), page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Freelancer list", gin.H{
		"freelancers": users,
		"total":       total,
		"page":        page,
		"page_size":   pageSize,
	})
}

// ListSkills returns the global skill taxonomy.
func (h *UserHandler) ListSkills(c *gin.Context) {
	skills, err := h.skillUC.ListSkills(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Skill list", skills)
}
