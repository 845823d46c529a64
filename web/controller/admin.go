package controller

import (
	"errors"
	"html/template"
	"net/http"
	"strconv"

	"github.com/Gabriel-Diniz-beck/Gerenciador-de-biblioteca/logger"
	"github.com/Gabriel-Diniz-beck/Gerenciador-de-biblioteca/web/service"
	"github.com/Gabriel-Diniz-beck/Gerenciador-de-biblioteca/web/session"

	"github.com/gin-gonic/gin"
)

// maxLogEntries caps how many buffered entries the logs page shows.
const maxLogEntries = 50

// BookForm is the book registration request.
type BookForm struct {
	Title  string `json:"titulo" form:"titulo"`
	Author string `json:"autor" form:"autor"`
}

// AnswerForm carries an admin reply to a contact message.
type AnswerForm struct {
	Reply string `json:"resposta" form:"resposta"`
}

// AdminController handles the admin login, the book catalog, the loan
// overview and the contact-form inbox.
type AdminController struct {
	BaseController

	authService    service.AuthService
	bookService    service.CatalogService
	loanService    service.LoanService
	messageService service.MessageService
}

func NewAdminController(g *gin.RouterGroup) *AdminController {
	a := &AdminController{}
	a.initRouter(g)
	return a
}

func (a *AdminController) initRouter(g *gin.RouterGroup) {
	g.GET("/login_admin", a.loginPage)
	g.POST("/login_admin", a.login)

	gated := g.Group("/")
	gated.Use(a.checkAdmin)
	gated.GET("/admin_area", a.adminArea)
	gated.GET("/cadastrar", a.registerBookPage)
	gated.POST("/cadastrar", a.registerBook)
	gated.GET("/lista_livro", a.listBooks)
	gated.GET("/remover_livro/:titulo", a.removeBook)
	gated.GET("/emprestimos", a.listLoans)
	gated.GET("/ver_formularios", a.listMessages)
	gated.POST("/responder/:idx", a.answerMessage)
	gated.GET("/logs", a.logs)
}

func (a *AdminController) loginPage(c *gin.Context) {
	html(c, "login_admin.html", I18nWeb(c, "pages.adminLogin.title"), nil)
}

// login checks the single shared admin credential pair. A failed attempt
// answers with the plain failure message the original used, default status.
func (a *AdminController) login(c *gin.Context) {
	var form LoginForm
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusOK, I18nWeb(c, "pages.adminLogin.toasts.invalid"))
		return
	}

	if !a.authService.CheckAdmin(form.Username, form.Password) {
		safeUser := template.HTMLEscapeString(form.Username)
		logger.Warningf("wrong admin login for %q, IP: %q", safeUser, getRemoteIp(c))
		c.String(http.StatusOK, I18nWeb(c, "pages.adminLogin.toasts.invalid"))
		return
	}

	if err := session.SetLoginAdmin(c); err != nil {
		logger.Warning("Unable to save session:", err)
	}
	logger.Infof("admin logged in successfully, IP: %s", getRemoteIp(c))
	c.Redirect(http.StatusFound, "/admin_area")
}

func (a *AdminController) adminArea(c *gin.Context) {
	html(c, "admin_area.html", I18nWeb(c, "pages.adminArea.title"), nil)
}

func (a *AdminController) registerBookPage(c *gin.Context) {
	html(c, "cadastrar_livro.html", I18nWeb(c, "pages.registerBook.title"), nil)
}

func (a *AdminController) registerBook(c *gin.Context) {
	var form BookForm
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}
	if _, err := a.bookService.AddBook(form.Title, form.Author); err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}
	c.Redirect(http.StatusFound, "/lista_livro")
}

func (a *AdminController) listBooks(c *gin.Context) {
	books, err := a.bookService.ListBooks()
	if err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}
	html(c, "lista_livro.html", I18nWeb(c, "pages.bookList.title"), gin.H{
		"livros": books,
	})
}

// removeBook drops every record with the given title. Unknown titles are a
// no-op, not an error.
func (a *AdminController) removeBook(c *gin.Context) {
	title := c.Param("titulo")
	if err := a.bookService.RemoveBook(title); err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}
	c.Redirect(http.StatusFound, "/lista_livro")
}

func (a *AdminController) listLoans(c *gin.Context) {
	loans, err := a.loanService.ListAll()
	if err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}
	html(c, "emprestimos.html", I18nWeb(c, "pages.loans.title"), gin.H{
		"emprestimos": loans,
	})
}

func (a *AdminController) listMessages(c *gin.Context) {
	messages, err := a.messageService.ListAll()
	if err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}
	html(c, "formularios_admin.html", I18nWeb(c, "pages.adminForms.title"), gin.H{
		"formularios": messages,
	})
}

// logs shows the most recent buffered log entries.
func (a *AdminController) logs(c *gin.Context) {
	html(c, "logs.html", I18nWeb(c, "pages.logs.title"), gin.H{
		"logs": logger.GetLogs(maxLogEntries, "DEBUG"),
	})
}

func (a *AdminController) answerMessage(c *gin.Context) {
	idx, err := strconv.Atoi(c.Param("idx"))
	if err != nil {
		c.String(http.StatusBadRequest, I18nWeb(c, "pages.adminForms.toasts.indexOutOfRange"))
		return
	}

	var form AnswerForm
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}

	err = a.messageService.Answer(idx, form.Reply)
	if errors.Is(err, service.ErrIndexOutOfRange) {
		c.String(http.StatusNotFound, I18nWeb(c, "pages.adminForms.toasts.indexOutOfRange"))
		return
	} else if err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}
	c.Redirect(http.StatusFound, "/ver_formularios")
}
