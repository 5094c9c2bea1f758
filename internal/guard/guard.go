package guard

import (
	"context"
	"errors"
	"strings"

	"tasteTribeBack/internal/models"
)

// RoleLookup resolves the stored role for a verified email. Implemented by
// the user repository; passed explicitly so policies never reach for
// package-level state.
type RoleLookup interface {
	GetRoleByEmail(ctx context.Context, email string) (string, error)
}

// Policy is a pure predicate over the verified identity, evaluated before
// a handler runs.
type Policy func(ctx context.Context, email string) error

// RequireRole checks the caller's stored role. A missing user record is a
// plain Forbidden so the check never leaks whether the account exists.
func RequireRole(users RoleLookup, role string) Policy {
	return func(ctx context.Context, email string) error {
		if email == "" {
			return models.ErrUnauthenticated
		}
		stored, err := users.GetRoleByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, models.ErrUserNotFound) {
				return models.ErrForbidden
			}
			return err
		}
		if stored != role {
			return models.ErrForbidden
		}
		return nil
	}
}

// Owns is the ownership check: the verified email must match the
// resource's recorded owner field.
func Owns(email, ownerEmail string) error {
	if email == "" {
		return models.ErrUnauthenticated
	}
	if !strings.EqualFold(email, ownerEmail) {
		return models.ErrForbidden
	}
	return nil
}

// OwnerOrRole allows the resource owner through and otherwise falls back
// to a role check. This is the canonical rule for review mutation and
// deletion: the author or an admin.
func OwnerOrRole(ctx context.Context, users RoleLookup, role, email, ownerEmail string) error {
	if err := Owns(email, ownerEmail); err == nil {
		return nil
	} else if errors.Is(err, models.ErrUnauthenticated) {
		return err
	}
	return RequireRole(users, role)(ctx, email)
}

// NotSelf protects the admin mutation paths: an admin may never promote,
// demote or delete their own account, even though they hold the role.
func NotSelf(email, targetEmail string) error {
	if strings.EqualFold(email, targetEmail) {
		return models.ErrSelfModification
	}
	return nil
}
