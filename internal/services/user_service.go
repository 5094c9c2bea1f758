package services

import (
	"context"
	"strings"

	"tasteTribeBack/internal/guard"
	"tasteTribeBack/internal/models"
)

// UserStore is what the user service needs from the repository layer.
// Declared here so tests can substitute an in-memory store.
type UserStore interface {
	CreateUser(ctx context.Context, u models.User) (models.User, bool, error)
	GetUsers(ctx context.Context) ([]models.User, error)
	GetUserByID(ctx context.Context, id int) (models.User, error)
	GetUserByEmail(ctx context.Context, email string) (models.User, error)
	GetRoleByEmail(ctx context.Context, email string) (string, error)
	UpdateProfile(ctx context.Context, email, name, photoURL string) error
	UpdateRole(ctx context.Context, id int, role string) error
	PromoteToPremium(ctx context.Context, email, packageLabel string) error
	DeleteUser(ctx context.Context, id int) error
}

type UserService struct {
	UserRepo UserStore
}

// SignIn is the first-sign-in upsert: posting an existing email returns
// the stored record untouched. The role always starts as "user"; the
// client body never decides privileges.
func (s *UserService) SignIn(ctx context.Context, u models.User) (models.User, bool, error) {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	if u.Email == "" {
		return models.User{}, false, models.ErrMissingField
	}
	u.Role = models.RoleUser
	return s.UserRepo.CreateUser(ctx, u)
}

func (s *UserService) GetUsers(ctx context.Context) ([]models.User, error) {
	return s.UserRepo.GetUsers(ctx)
}

func (s *UserService) GetUserByID(ctx context.Context, id int) (models.User, error) {
	return s.UserRepo.GetUserByID(ctx, id)
}

func (s *UserService) GetProfile(ctx context.Context, email string) (models.User, error) {
	return s.UserRepo.GetUserByEmail(ctx, email)
}

func (s *UserService) UpdateProfile(ctx context.Context, email string, req models.UpdateProfileRequest) (models.User, error) {
	if err := s.UserRepo.UpdateProfile(ctx, email, req.Name, req.PhotoURL); err != nil {
		return models.User{}, err
	}
	return s.UserRepo.GetUserByEmail(ctx, email)
}

// ChangeRole backs both admin role transitions (promote-to-admin and
// demote-to-user). The target is resolved by id first so the
// self-protection rule fires even when an admin addresses themselves by
// id rather than email.
func (s *UserService) ChangeRole(ctx context.Context, callerEmail string, targetID int, role string) (models.User, error) {
	target, err := s.UserRepo.GetUserByID(ctx, targetID)
	if err != nil {
		return models.User{}, err
	}
	if err := guard.NotSelf(callerEmail, target.Email); err != nil {
		return models.User{}, err
	}
	if err := s.UserRepo.UpdateRole(ctx, targetID, role); err != nil {
		return models.User{}, err
	}
	target.Role = role
	return target, nil
}

func (s *UserService) DeleteUser(ctx context.Context, callerEmail string, targetID int) error {
	target, err := s.UserRepo.GetUserByID(ctx, targetID)
	if err != nil {
		return err
	}
	if err := guard.NotSelf(callerEmail, target.Email); err != nil {
		return err
	}
	return s.UserRepo.DeleteUser(ctx, targetID)
}

// PromoteToPremium applies the payment-confirmed signal to the caller's
// own record.
func (s *UserService) PromoteToPremium(ctx context.Context, email, packageLabel string) (models.User, error) {
	if err := s.UserRepo.PromoteToPremium(ctx, email, packageLabel); err != nil {
		return models.User{}, err
	}
	return s.UserRepo.GetUserByEmail(ctx, email)
}
