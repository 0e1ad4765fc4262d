package service

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/Riyanshu-256/lms-elearning-platform/internal/domain"
	"github.com/Riyanshu-256/lms-elearning-platform/internal/repository"
	"github.com/Riyanshu-256/lms-elearning-platform/pkg/auth"
)

type AuthSvc struct {
	users  *repository.UserRepo
	issuer *auth.TokenIssuer
}

func NewAuthSvc(u *repository.UserRepo, issuer *auth.TokenIssuer) *AuthSvc {
	return &AuthSvc{users: u, issuer: issuer}
}

func (s *AuthSvc) Register(ctx context.Context, email, password, name string, role domain.Role) (*domain.User, string, error) {
	if role == "" {
		role = domain.RoleLearner
	}
	if !domain.ValidRole(role) {
		return nil, "", ErrInvalidRole
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}
	u := &domain.User{Email: email, PasswordHash: string(hash), Name: name, Role: role}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, "", err
	}
	token, err := s.issuer.Issue(u.ID, string(u.Role), u.Email)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// BecomeEducator upgrades the caller to EDUCATOR and issues a fresh
// token carrying the new role claim; the old token keeps working until
// it expires but cannot reach educator routes.
func (s *AuthSvc) BecomeEducator(ctx context.Context, userID string) (*domain.User, string, error) {
	u, err := s.users.ByID(ctx, userID)
	if err != nil {
		return nil, "", err
	}
	if u.Role != domain.RoleEducator {
		if err := s.users.UpdateRole(ctx, u.ID, domain.RoleEducator); err != nil {
			return nil, "", err
		}
		u.Role = domain.RoleEducator
	}
	token, err := s.issuer.Issue(u.ID, string(u.Role), u.Email)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

func (s *AuthSvc) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	u, err := s.users.ByEmail(ctx, email)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}
	token, err := s.issuer.Issue(u.ID, string(u.Role), u.Email)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}
