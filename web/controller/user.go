package controller

import (
	"errors"
	"html/template"
	"net/http"

	"github.com/Gabriel-Diniz-beck/Gerenciador-de-biblioteca/config"
	"github.com/Gabriel-Diniz-beck/Gerenciador-de-biblioteca/logger"
	"github.com/Gabriel-Diniz-beck/Gerenciador-de-biblioteca/web/service"
	"github.com/Gabriel-Diniz-beck/Gerenciador-de-biblioteca/web/session"

	"github.com/gin-gonic/gin"
)

// RegisterForm is the user registration request.
type RegisterForm struct {
	Name     string `json:"nome" form:"nome"`
	Username string `json:"usuario" form:"usuario"`
	Password string `json:"senha" form:"senha"`
}

// LoginForm is the user login request.
type LoginForm struct {
	Username string `json:"usuario" form:"usuario"`
	Password string `json:"senha" form:"senha"`
}

// UserController handles account registration, user login and the
// user-facing loan routes.
type UserController struct {
	BaseController

	userService service.UserService
	loanService service.LoanService
	bookService service.CatalogService
}

func NewUserController(g *gin.RouterGroup) *UserController {
	a := &UserController{}
	a.initRouter(g)
	return a
}

func (a *UserController) initRouter(g *gin.RouterGroup) {
	g.GET("/cadastro", a.registerPage)
	g.POST("/cadastro", a.register)
	g.GET("/login_usuario", a.loginPage)
	g.POST("/login_usuario", a.login)

	gated := g.Group("/")
	gated.Use(a.checkUser)
	gated.GET("/usuario_area", a.userArea)
	gated.GET("/status_usuario", a.status)
	gated.GET("/pegar_livro", a.bookShelf)
	gated.GET("/pegar_livro/:titulo", a.borrow)
	gated.GET("/devolver/:titulo", a.giveBack)
}

func (a *UserController) registerPage(c *gin.Context) {
	html(c, "cadastro_usuario.html", I18nWeb(c, "pages.register.title"), nil)
}

func (a *UserController) register(c *gin.Context) {
	var form RegisterForm
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}

	err := a.userService.Register(form.Name, form.Username, form.Password)
	if errors.Is(err, service.ErrDuplicateUsername) {
		c.String(http.StatusBadRequest, I18nWeb(c, "pages.register.toasts.duplicateUsername"))
		return
	} else if err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}

	logger.Infof("new user registered: %s", template.HTMLEscapeString(form.Username))
	c.Redirect(http.StatusFound, "/login_usuario")
}

func (a *UserController) loginPage(c *gin.Context) {
	html(c, "login_usuario.html", I18nWeb(c, "pages.userLogin.title"), nil)
}

func (a *UserController) login(c *gin.Context) {
	var form LoginForm
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusUnauthorized, I18nWeb(c, "pages.userLogin.toasts.invalidCredentials"))
		return
	}

	user, err := a.userService.Login(form.Username, form.Password)
	if err != nil {
		safeUser := template.HTMLEscapeString(form.Username)
		logger.Warningf("wrong username or password for %q, IP: %q", safeUser, getRemoteIp(c))
		c.String(http.StatusUnauthorized, I18nWeb(c, "pages.userLogin.toasts.invalidCredentials"))
		return
	}

	session.SetMaxAge(c, config.GetSessionMaxAge())
	if err := session.SetLoginUser(c, session.User{Username: user.Username, Name: user.Name}); err != nil {
		logger.Warning("Unable to save session:", err)
	}
	logger.Infof("%s logged in successfully, IP: %s", template.HTMLEscapeString(user.Username), getRemoteIp(c))
	c.Redirect(http.StatusFound, "/usuario_area")
}

func (a *UserController) userArea(c *gin.Context) {
	user := session.GetLoginUser(c)
	html(c, "usuario_area.html", I18nWeb(c, "pages.userArea.title"), gin.H{
		"usuario": user,
	})
}

// status lists only the requesting user's loans.
func (a *UserController) status(c *gin.Context) {
	user := session.GetLoginUser(c)
	loans, err := a.loanService.ListMine(user.Username)
	if err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}
	html(c, "status_usuario.html", I18nWeb(c, "pages.userStatus.title"), gin.H{
		"emprestimos": loans,
	})
}

// bookShelf lists the catalog so the user can pick a book to borrow.
func (a *UserController) bookShelf(c *gin.Context) {
	books, err := a.bookService.ListBooks()
	if err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}
	html(c, "pegar_livro.html", I18nWeb(c, "pages.borrow.title"), gin.H{
		"livros": books,
	})
}

func (a *UserController) borrow(c *gin.Context) {
	user := session.GetLoginUser(c)
	title := c.Param("titulo")
	if _, err := a.loanService.Borrow(user.Username, title); err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}
	c.Redirect(http.StatusFound, "/status_usuario")
}

func (a *UserController) giveBack(c *gin.Context) {
	user := session.GetLoginUser(c)
	title := c.Param("titulo")
	if err := a.loanService.Return(user.Username, title); err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}
	c.Redirect(http.StatusFound, "/status_usuario")
}
