package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DB1132/Odoo-hackathon/internal/services"
)

type SalaryHandler struct {
	Salaries *services.CompensationService
}

// netSalary is never read from the body; it is always derived.
type updateSalaryRequest struct {
	BasicPay   *float64 `json:"basicPay" binding:"omitempty,gte=0,lte=9999999999.99"`
	Allowances *float64 `json:"allowances" binding:"omitempty,gte=0,lte=9999999999.99"`
	Deductions *float64 `json:"deductions" binding:"omitempty,gte=0,lte=9999999999.99"`
}

func NewSalaryHandler(salaries *services.CompensationService) *SalaryHandler {
	return &SalaryHandler{Salaries: salaries}
}

func (h *SalaryHandler) Mine(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	record, err := h.Salaries.Mine(c.Request.Context(), actor.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

func (h *SalaryHandler) List(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	page, err := h.Salaries.List(c.Request.Context(), actor, pageParams(c, defaultPageLimit))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *SalaryHandler) Get(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	accountID, ok := pathUUID(c, "accountId")
	if !ok {
		return
	}
	record, err := h.Salaries.Get(c.Request.Context(), actor, accountID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

func (h *SalaryHandler) Update(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	accountID, ok := pathUUID(c, "accountId")
	if !ok {
		return
	}
	var req updateSalaryRequest
	if !bindJSON(c, &req) {
		return
	}

	record, err := h.Salaries.Update(c.Request.Context(), actor, accountID, services.CompensationInput{
		BasePay:   req.BasicPay,
		Allowance: req.Allowances,
		Deduction: req.Deductions,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}
