package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lacomanda/comanda/config"
	"github.com/lacomanda/comanda/utils"
)

type AuthController struct {
	Cfg *config.Config
}

func NewAuthController(cfg *config.Config) *AuthController {
	return &AuthController{Cfg: cfg}
}

// Login exchanges the shared staff password for an admin token. There is
// one secret and one role; no accounts, no sessions to expire server-side.
func (ac *AuthController) Login(c *gin.Context) {
	var body struct {
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if !ac.Cfg.CheckAdminPassword(body.Password) {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("contraseña incorrecta"))
		return
	}

	token, err := utils.GenerateToken("admin")
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Login successful", gin.H{"token": token, "role": "admin"})
}
