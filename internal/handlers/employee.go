package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DB1132/Odoo-hackathon/internal/services"
)

type EmployeeHandler struct {
	Profiles *services.ProfileService
}

type updateProfileRequest struct {
	FullName       string `json:"fullName"`
	Phone          string `json:"phone"`
	Address        string `json:"address"`
	JobTitle       string `json:"jobTitle"`
	Department     string `json:"department"`
	ProfilePicture string `json:"profilePicture" binding:"omitempty,url"`
}

func NewEmployeeHandler(profiles *services.ProfileService) *EmployeeHandler {
	return &EmployeeHandler{Profiles: profiles}
}

func (h *EmployeeHandler) List(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	page, err := h.Profiles.Directory(c.Request.Context(), actor, pageParams(c, defaultPageLimit))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *EmployeeHandler) GetProfile(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	accountID, ok := pathUUID(c, "accountId")
	if !ok {
		return
	}
	profile, err := h.Profiles.Get(c.Request.Context(), actor, accountID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *EmployeeHandler) UpdateProfile(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	accountID, ok := pathUUID(c, "accountId")
	if !ok {
		return
	}
	var req updateProfileRequest
	if !bindJSON(c, &req) {
		return
	}

	profile, err := h.Profiles.Update(c.Request.Context(), actor, accountID, services.ProfileInput{
		FullName:       req.FullName,
		Phone:          req.Phone,
		Address:        req.Address,
		JobTitle:       req.JobTitle,
		Department:     req.Department,
		ProfilePicture: req.ProfilePicture,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}
