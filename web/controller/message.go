package controller

import (
	"net/http"

	"github.com/Gabriel-Diniz-beck/Gerenciador-de-biblioteca/web/service"
	"github.com/Gabriel-Diniz-beck/Gerenciador-de-biblioteca/web/session"

	"github.com/gin-gonic/gin"
)

// MessageForm is a contact-form submission.
type MessageForm struct {
	Name  string `json:"nome" form:"nome"`
	Email string `json:"email" form:"email"`
	Body  string `json:"mensagem" form:"mensagem"`
}

// MessageController handles the public contact form and the user's view of
// their answered messages.
type MessageController struct {
	BaseController

	messageService service.MessageService
}

func NewMessageController(g *gin.RouterGroup) *MessageController {
	a := &MessageController{}
	a.initRouter(g)
	return a
}

func (a *MessageController) initRouter(g *gin.RouterGroup) {
	g.GET("/formulario", a.formPage)
	g.POST("/formulario", a.submit)

	gated := g.Group("/")
	gated.Use(a.checkUser)
	gated.GET("/minhas_mensagens", a.myMessages)
}

func (a *MessageController) formPage(c *gin.Context) {
	html(c, "formulario.html", I18nWeb(c, "pages.form.title"), nil)
}

// submit stores a message. A logged-in user's display name overrides the
// form name, so their replies can be found later; anonymous visitors keep
// whatever name they typed.
func (a *MessageController) submit(c *gin.Context) {
	var form MessageForm
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}

	name := form.Name
	if user := session.GetLoginUser(c); user != nil {
		name = user.Name
	}

	if err := a.messageService.Submit(name, form.Email, form.Body); err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}
	c.String(http.StatusOK, I18nWeb(c, "pages.form.toasts.sent"))
}

func (a *MessageController) myMessages(c *gin.Context) {
	user := session.GetLoginUser(c)
	messages, err := a.messageService.ListMine(user.Name)
	if err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}
	html(c, "minhas_mensagens.html", I18nWeb(c, "pages.myMessages.title"), gin.H{
		"mensagens": messages,
	})
}
