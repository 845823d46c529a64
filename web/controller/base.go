// Package controller provides the HTTP request handlers for the biblioteca
// panel: user registration and login, the book catalog, loans and the
// contact form, plus the admin area.
package controller

import (
	"net/http"

	"github.com/Gabriel-Diniz-beck/Gerenciador-de-biblioteca/logger"
	"github.com/Gabriel-Diniz-beck/Gerenciador-de-biblioteca/web/session"

	"github.com/gin-gonic/gin"
)

// BaseController provides the authentication gates shared by all
// controllers. Routes gated on a missing principal redirect to the
// matching login flow rather than erroring.
type BaseController struct{}

// checkUser verifies a user principal is attached to the session.
func (a *BaseController) checkUser(c *gin.Context) {
	if !session.IsUserLogin(c) {
		if isAjax(c) {
			pureJsonMsg(c, http.StatusUnauthorized, false, I18nWeb(c, "pages.userLogin.toasts.invalidCredentials"))
		} else {
			c.Redirect(http.StatusTemporaryRedirect, "/login_usuario")
		}
		c.Abort()
		return
	}
	c.Next()
}

// checkAdmin verifies an admin principal is attached to the session.
func (a *BaseController) checkAdmin(c *gin.Context) {
	if !session.IsAdminLogin(c) {
		if isAjax(c) {
			pureJsonMsg(c, http.StatusUnauthorized, false, I18nWeb(c, "pages.adminLogin.toasts.invalid"))
		} else {
			c.Redirect(http.StatusTemporaryRedirect, "/login_admin")
		}
		c.Abort()
		return
	}
	c.Next()
}

// I18nWeb retrieves an internationalized message based on the current locale.
func I18nWeb(c *gin.Context, name string, params ...string) string {
	anyfunc, funcExists := c.Get("I18n")
	if !funcExists {
		logger.Warning("I18n function not exists in gin context!")
		return name
	}
	i18nFunc, _ := anyfunc.(func(key string, params ...string) string)
	return i18nFunc(name, params...)
}
