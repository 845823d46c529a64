package service

import (
	"errors"

	"github.com/Gabriel-Diniz-beck/Gerenciador-de-biblioteca/logger"
	"github.com/Gabriel-Diniz-beck/Gerenciador-de-biblioteca/storage"
	"github.com/Gabriel-Diniz-beck/Gerenciador-de-biblioteca/storage/model"
	"github.com/Gabriel-Diniz-beck/Gerenciador-de-biblioteca/util/crypto"
)

var (
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// UserService handles account registration and login against the users
// collection.
type UserService struct{}

// Register stores a new user with a hashed password. Uniqueness is checked
// among currently stored users only, by exact match.
func (s *UserService) Register(name string, username string, rawPassword string) error {
	hash, err := crypto.HashPassword(rawPassword)
	if err != nil {
		return err
	}

	return storage.Update(storage.GetStore(), storage.UsersCollection, func(users []model.User) ([]model.User, error) {
		for _, u := range users {
			if u.Username == username {
				return nil, ErrDuplicateUsername
			}
		}
		return append(users, model.User{
			Name:     name,
			Username: username,
			Password: hash,
		}), nil
	})
}

// Login scans stored users for an exact username match and verifies the
// password hash. The returned user carries only the identity fields needed
// for the session principal.
func (s *UserService) Login(username string, rawPassword string) (*model.User, error) {
	users, err := storage.Load[model.User](storage.GetStore(), storage.UsersCollection)
	if err != nil {
		return nil, err
	}

	for _, u := range users {
		if u.Username != username {
			continue
		}
		if !crypto.CheckPasswordHash(u.Password, rawPassword) {
			return nil, ErrInvalidCredentials
		}
		logger.Debugf("user %s authenticated", username)
		return &model.User{Name: u.Name, Username: u.Username}, nil
	}
	return nil, ErrInvalidCredentials
}
