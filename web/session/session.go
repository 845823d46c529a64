package session

import (
	"encoding/gob"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const (
	loginUser  = "LOGIN_USER"
	loginAdmin = "LOGIN_ADMIN"
)

// User is the principal attached to a session after a successful user
// login. It never carries the password hash.
type User struct {
	Username string
	Name     string
}

func init() {
	gob.Register(User{})
}

func SetLoginUser(c *gin.Context, user User) error {
	s := sessions.Default(c)
	s.Set(loginUser, user)
	return s.Save()
}

func GetLoginUser(c *gin.Context) *User {
	s := sessions.Default(c)
	if obj := s.Get(loginUser); obj != nil {
		if user, ok := obj.(User); ok {
			return &user
		}
	}
	return nil
}

func IsUserLogin(c *gin.Context) bool {
	return GetLoginUser(c) != nil
}

func SetLoginAdmin(c *gin.Context) error {
	s := sessions.Default(c)
	s.Set(loginAdmin, true)
	return s.Save()
}

func IsAdminLogin(c *gin.Context) bool {
	s := sessions.Default(c)
	if obj := s.Get(loginAdmin); obj != nil {
		if admin, ok := obj.(bool); ok {
			return admin
		}
	}
	return false
}

func SetMaxAge(c *gin.Context, maxAge int) error {
	s := sessions.Default(c)
	s.Options(sessions.Options{
		Path:   "/",
		MaxAge: maxAge,
	})
	return s.Save()
}

// ClearSession drops both principals, whichever was active.
func ClearSession(c *gin.Context) error {
	s := sessions.Default(c)
	s.Clear()
	s.Options(sessions.Options{
		Path:   "/",
		MaxAge: -1,
	})
	return s.Save()
}
