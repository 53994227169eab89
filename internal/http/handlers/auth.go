package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"comercialsoares.com/app/internal/http/middleware"
	"comercialsoares.com/app/internal/http/session"
	"comercialsoares.com/app/internal/http/validation"
	"comercialsoares.com/app/internal/modules/auth"
	"comercialsoares.com/app/internal/shared/apperr"
)

type AuthHandler struct {
	checker *auth.Checker
	codec   *session.Codec
}

func NewAuthHandler(checker *auth.Checker, codec *session.Codec) *AuthHandler {
	return &AuthHandler{checker: checker, codec: codec}
}

type loginInput struct {
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var in loginInput
	if err := c.ShouldBindJSON(&in); err != nil {
		errs := validation.FromBindError(err, &in)
		middleware.Fail(c, apperr.InvalidErr("Informe a senha.", errs))
		return
	}

	if !h.checker.Check(in.Password) {
		// same generic text for every failure mode
		middleware.Fail(c, apperr.UnauthorizedErr("Senha incorreta."))
		return
	}

	if err := h.codec.Set(c); err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	h.codec.Clear(c)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Me lets the frontend restore the "logged in" flag on reload.
func (h *AuthHandler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"loggedIn": h.codec.IsLoggedIn(c)})
}
