package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/DB1132/Odoo-hackathon/internal/services"
)

type LeaveHandler struct {
	Leaves *services.LeaveService
}

type createLeaveRequest struct {
	LeaveType string `json:"leaveType" binding:"required"`
	StartDate string `json:"startDate" binding:"required"`
	EndDate   string `json:"endDate" binding:"required"`
	Remarks   string `json:"remarks"`
}

type reviewLeaveRequest struct {
	Comments string `json:"comments"`
}

func NewLeaveHandler(leaves *services.LeaveService) *LeaveHandler {
	return &LeaveHandler{Leaves: leaves}
}

func (h *LeaveHandler) Create(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var req createLeaveRequest
	if !bindJSON(c, &req) {
		return
	}

	created, err := h.Leaves.Create(c.Request.Context(), actor.ID, services.LeaveInput{
		LeaveType: req.LeaveType,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Remarks:   req.Remarks,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *LeaveHandler) MyRequests(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	page, err := h.Leaves.ListMine(c.Request.Context(), actor.ID, c.Query("status"), pageParams(c, defaultPageLimit))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *LeaveHandler) List(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	page, err := h.Leaves.ListAll(c.Request.Context(), actor, c.Query("status"), pageParams(c, defaultPageLimit))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *LeaveHandler) Approve(c *gin.Context) {
	h.review(c, h.Leaves.Approve)
}

func (h *LeaveHandler) Reject(c *gin.Context) {
	h.review(c, h.Leaves.Reject)
}

type reviewFunc func(ctx context.Context, actor services.Actor, id uuid.UUID, comments string) (services.LeaveView, error)

func (h *LeaveHandler) review(c *gin.Context, decide reviewFunc) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req reviewLeaveRequest
	if !bindOptionalJSON(c, &req) {
		return
	}

	updated, err := decide(c.Request.Context(), actor, id, req.Comments)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}
