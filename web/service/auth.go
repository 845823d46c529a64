package service

import (
	"crypto/subtle"

	"github.com/Gabriel-Diniz-beck/Gerenciador-de-biblioteca/config"
)

// AuthService checks the single shared admin credential pair. The pair
// comes from config rather than a literal so deployments can rotate it.
type AuthService struct{}

func (s *AuthService) CheckAdmin(username string, password string) bool {
	userOk := subtle.ConstantTimeCompare([]byte(username), []byte(config.GetAdminUsername())) == 1
	passOk := subtle.ConstantTimeCompare([]byte(password), []byte(config.GetAdminPassword())) == 1
	return userOk && passOk
}
