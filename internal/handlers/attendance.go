package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DB1132/Odoo-hackathon/internal/services"
)

const allAttendanceLimit = 100

type AttendanceHandler struct {
	Attendance *services.AttendanceService
}

func NewAttendanceHandler(attendance *services.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{Attendance: attendance}
}

func (h *AttendanceHandler) CheckIn(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	record, err := h.Attendance.CheckIn(c.Request.Context(), actor.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}

func (h *AttendanceHandler) CheckOut(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	record, err := h.Attendance.CheckOut(c.Request.Context(), actor.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

// Today responds with the caller's record for today, or null.
func (h *AttendanceHandler) Today(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	record, err := h.Attendance.Today(c.Request.Context(), actor.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

func (h *AttendanceHandler) MyRecords(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	page, err := h.Attendance.ListMine(c.Request.Context(), actor.ID, pageParams(c, defaultPageLimit))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *AttendanceHandler) List(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	page, err := h.Attendance.ListAll(c.Request.Context(), actor, pageParams(c, allAttendanceLimit))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *AttendanceHandler) ListForAccount(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	accountID, ok := pathUUID(c, "accountId")
	if !ok {
		return
	}
	page, err := h.Attendance.ListForAccount(c.Request.Context(), actor, accountID, pageParams(c, defaultPageLimit))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *AttendanceHandler) CleanupInvalid(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	removed, err := h.Attendance.PurgeInvalid(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deletedCount": removed})
}
