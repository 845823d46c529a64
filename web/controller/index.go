package controller

import (
	"net/http"

	"github.com/Gabriel-Diniz-beck/Gerenciador-de-biblioteca/logger"
	"github.com/Gabriel-Diniz-beck/Gerenciador-de-biblioteca/web/session"

	"github.com/gin-gonic/gin"
)

// IndexController handles the landing page and logout.
type IndexController struct {
	BaseController
}

func NewIndexController(g *gin.RouterGroup) *IndexController {
	a := &IndexController{}
	a.initRouter(g)
	return a
}

func (a *IndexController) initRouter(g *gin.RouterGroup) {
	g.GET("/", a.index)
	g.GET("/logout", a.logout)
}

func (a *IndexController) index(c *gin.Context) {
	html(c, "index.html", I18nWeb(c, "pages.index.title"), nil)
}

// logout drops both principals, whichever was active.
func (a *IndexController) logout(c *gin.Context) {
	if user := session.GetLoginUser(c); user != nil {
		logger.Infof("%s logged out successfully", user.Username)
	}
	if err := session.ClearSession(c); err != nil {
		logger.Warning("Unable to clear session:", err)
	}
	c.Redirect(http.StatusTemporaryRedirect, "/")
}
