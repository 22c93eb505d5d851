package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/DB1132/Odoo-hackathon/internal/config"
	"github.com/DB1132/Odoo-hackathon/internal/services"
	"github.com/DB1132/Odoo-hackathon/internal/utils"
)

type AuthHandler struct {
	Accounts *services.AccountService
	Cfg      config.Config
}

type registerRequest struct {
	LoginID     string `json:"loginId" binding:"required,email"`
	EmployeeID  string `json:"employeeId" binding:"required"`
	DisplayName string `json:"displayName" binding:"required"`
	Password    string `json:"password" binding:"required,min=6"`
}

type loginRequest struct {
	LoginID  string `json:"loginId" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func NewAuthHandler(accounts *services.AccountService, cfg config.Config) *AuthHandler {
	return &AuthHandler{Accounts: accounts, Cfg: cfg}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if !bindJSON(c, &req) {
		return
	}

	account, err := h.Accounts.Register(c.Request.Context(), services.RegisterInput{
		LoginID:     req.LoginID,
		EmployeeID:  req.EmployeeID,
		DisplayName: req.DisplayName,
		Password:    req.Password,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	h.respondWithToken(c, http.StatusCreated, account)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if !bindJSON(c, &req) {
		return
	}

	account, err := h.Accounts.Authenticate(c.Request.Context(), req.LoginID, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	h.respondWithToken(c, http.StatusOK, account)
}

func (h *AuthHandler) Me(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	account, err := h.Accounts.Get(c.Request.Context(), actor.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, account)
}

func (h *AuthHandler) respondWithToken(c *gin.Context, status int, account services.AccountView) {
	ttl := time.Duration(h.Cfg.JwtTTLHours) * time.Hour
	token, err := utils.GenerateAccessToken(account.ID.String(), account.Role, h.Cfg.JwtSecret, ttl)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(status, gin.H{"token": token, "account": account})
}
