package web

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"

	"github.com/Gabriel-Diniz-beck/Gerenciador-de-biblioteca/logger"
	"github.com/Gabriel-Diniz-beck/Gerenciador-de-biblioteca/storage"
	"github.com/Gabriel-Diniz-beck/Gerenciador-de-biblioteca/web/service"

	"github.com/gin-gonic/gin"
	"github.com/op/go-logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	os.Setenv("BIBLIOTECA_LOG_FOLDER", os.TempDir())
	logger.InitLogger(logging.ERROR)
	code := m.Run()
	logger.CloseLogger()
	os.Exit(code)
}

// testClient drives the gin engine directly and carries cookies between
// requests like a browser would.
type testClient struct {
	t       *testing.T
	engine  *gin.Engine
	cookies map[string]*http.Cookie
}

func newTestEngine(t *testing.T) *testClient {
	require.NoError(t, storage.Init(t.TempDir()))

	s := NewServer()
	engine, err := s.initRouter()
	require.NoError(t, err)

	return &testClient{
		t:       t,
		engine:  engine,
		cookies: make(map[string]*http.Cookie),
	}
}

func (c *testClient) do(method, path string, form url.Values) *httptest.ResponseRecorder {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for _, cookie := range c.cookies {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	c.engine.ServeHTTP(w, req)

	for _, cookie := range w.Result().Cookies() {
		c.cookies[cookie.Name] = cookie
	}
	return w
}

func (c *testClient) get(path string) *httptest.ResponseRecorder {
	return c.do(http.MethodGet, path, nil)
}

func (c *testClient) post(path string, form url.Values) *httptest.ResponseRecorder {
	return c.do(http.MethodPost, path, form)
}

func registerAndLogin(t *testing.T, c *testClient, name, username, password string) {
	w := c.post("/cadastro", url.Values{
		"nome":    {name},
		"usuario": {username},
		"senha":   {password},
	})
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/login_usuario", w.Header().Get("Location"))

	w = c.post("/login_usuario", url.Values{
		"usuario": {username},
		"senha":   {password},
	})
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/usuario_area", w.Header().Get("Location"))
}

func loginAdmin(t *testing.T, c *testClient) {
	w := c.post("/login_admin", url.Values{
		"usuario": {"admin"},
		"senha":   {"admin123"},
	})
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/admin_area", w.Header().Get("Location"))
}

func TestGatedRoutesRedirectToLogin(t *testing.T) {
	c := newTestEngine(t)

	w := c.get("/status_usuario")
	assert.Equal(t, http.StatusTemporaryRedirect, w.Code)
	assert.Equal(t, "/login_usuario", w.Header().Get("Location"))

	w = c.get("/lista_livro")
	assert.Equal(t, http.StatusTemporaryRedirect, w.Code)
	assert.Equal(t, "/login_admin", w.Header().Get("Location"))
}

func TestRegisterDuplicateUsernameFailsWith400(t *testing.T) {
	c := newTestEngine(t)

	form := url.Values{
		"nome":    {"Alice Silva"},
		"usuario": {"alice"},
		"senha":   {"secret"},
	}
	w := c.post("/cadastro", form)
	assert.Equal(t, http.StatusFound, w.Code)

	w = c.post("/cadastro", form)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginWrongPasswordFailsWith401(t *testing.T) {
	c := newTestEngine(t)

	w := c.post("/cadastro", url.Values{
		"nome":    {"Alice Silva"},
		"usuario": {"alice"},
		"senha":   {"secret"},
	})
	require.Equal(t, http.StatusFound, w.Code)

	w = c.post("/login_usuario", url.Values{
		"usuario": {"alice"},
		"senha":   {"wrong"},
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminLoginWrongCredentials(t *testing.T) {
	c := newTestEngine(t)

	w := c.post("/login_admin", url.Values{
		"usuario": {"admin"},
		"senha":   {"nope"},
	})
	// the original answers bad admin logins with a plain message, default status
	assert.Equal(t, http.StatusOK, w.Code)

	w = c.get("/admin_area")
	assert.Equal(t, http.StatusTemporaryRedirect, w.Code)
}

func TestBorrowAndReturnFlow(t *testing.T) {
	c := newTestEngine(t)
	registerAndLogin(t, c, "Alice Silva", "alice", "secret")

	w := c.get("/pegar_livro/Dune")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/status_usuario", w.Header().Get("Location"))

	var loanService service.LoanService
	loans, err := loanService.ListMine("alice")
	require.NoError(t, err)
	require.Len(t, loans, 1)
	assert.Equal(t, "Dune", loans[0].Title)
	assert.False(t, loans[0].Returned)

	w = c.get("/devolver/Dune")
	assert.Equal(t, http.StatusFound, w.Code)

	loans, err = loanService.ListMine("alice")
	require.NoError(t, err)
	require.Len(t, loans, 1)
	assert.True(t, loans[0].Returned)

	w = c.get("/status_usuario")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Dune")
}

func TestBookShelfListsBooks(t *testing.T) {
	c := newTestEngine(t)

	var bookService service.CatalogService
	_, err := bookService.AddBook("Dune", "Frank Herbert")
	require.NoError(t, err)

	registerAndLogin(t, c, "Alice Silva", "alice", "secret")

	w := c.get("/pegar_livro")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Dune")
}

func TestAdminLogsPage(t *testing.T) {
	c := newTestEngine(t)

	// unauthenticated access is gated like every admin route
	w := c.get("/logs")
	assert.Equal(t, http.StatusTemporaryRedirect, w.Code)
	assert.Equal(t, "/login_admin", w.Header().Get("Location"))

	loginAdmin(t, c)

	// the successful admin login above is in the buffer by now
	w = c.get("/logs")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "admin logged in successfully")
}

func TestLogoutClearsBothPrincipals(t *testing.T) {
	c := newTestEngine(t)
	registerAndLogin(t, c, "Alice Silva", "alice", "secret")
	loginAdmin(t, c)

	w := c.get("/logout")
	assert.Equal(t, http.StatusTemporaryRedirect, w.Code)

	w = c.get("/usuario_area")
	assert.Equal(t, http.StatusTemporaryRedirect, w.Code)
	w = c.get("/admin_area")
	assert.Equal(t, http.StatusTemporaryRedirect, w.Code)
}

func TestAdminBookManagement(t *testing.T) {
	c := newTestEngine(t)
	loginAdmin(t, c)

	w := c.post("/cadastrar", url.Values{
		"titulo": {"Dune"},
		"autor":  {"Frank Herbert"},
	})
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/lista_livro", w.Header().Get("Location"))

	w = c.get("/lista_livro")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Dune")

	w = c.get("/remover_livro/Dune")
	assert.Equal(t, http.StatusFound, w.Code)

	var bookService service.CatalogService
	books, err := bookService.ListBooks()
	require.NoError(t, err)
	assert.Empty(t, books)
}

func TestContactFormFlow(t *testing.T) {
	c := newTestEngine(t)

	// anonymous submission keeps the form name
	w := c.post("/formulario", url.Values{
		"nome":     {"Visitante"},
		"email":    {"v@example.com"},
		"mensagem": {"Olá!"},
	})
	assert.Equal(t, http.StatusOK, w.Code)

	// a logged-in user's display name overrides the form name
	registerAndLogin(t, c, "Alice Silva", "alice", "secret")
	w = c.post("/formulario", url.Values{
		"nome":     {"ignored"},
		"email":    {"alice@example.com"},
		"mensagem": {"Quando abre?"},
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var messageService service.MessageService
	messages, err := messageService.ListAll()
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "Visitante", messages[0].Name)
	assert.Equal(t, "Alice Silva", messages[1].Name)

	w = c.get("/minhas_mensagens")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Quando abre?")
	assert.NotContains(t, w.Body.String(), "Olá!")
}

func TestAnswerMessage(t *testing.T) {
	c := newTestEngine(t)

	w := c.post("/formulario", url.Values{
		"nome":     {"Visitante"},
		"email":    {"v@example.com"},
		"mensagem": {"Olá!"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	loginAdmin(t, c)

	w = c.post("/responder/0", url.Values{"resposta": {"Oi!"}})
	assert.Equal(t, http.StatusFound, w.Code)

	w = c.post("/responder/5", url.Values{"resposta": {"nope"}})
	assert.Equal(t, http.StatusNotFound, w.Code)

	var messageService service.MessageService
	messages, err := messageService.ListAll()
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "Oi!", messages[0].Reply)
}

func TestUnknownRouteRenders404Page(t *testing.T) {
	c := newTestEngine(t)

	w := c.get("/nao_existe")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "404")
}
