package commands

import (
	"context"
	"log/slog"

	"artshop/internal/domain/user"
	"artshop/internal/infra"
	"artshop/internal/pkg/errs"
	"artshop/internal/pkg/password"
	"artshop/internal/usecase/queries"

	"github.com/google/uuid"
)

type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// LoginResult pairs the issued token with the authenticated user.
type LoginResult struct {
	Token string
	User  *queries.AuthorizedUserView
}

type AuthCommands interface {
	Register(ctx context.Context, input RegisterInput) (uuid.UUID, error)
	Login(ctx context.Context, username, rawPassword string) (*LoginResult, error)
	Logout(ctx context.Context, userID uuid.UUID) error
}

type authCommandsImpl struct {
	users    UserRepository
	reads    UserReads
	sessions SessionStore
}

func NewAuthCommands(users UserRepository, reads UserReads, sessions SessionStore) AuthCommands {
	return &authCommandsImpl{
		users:    users,
		reads:    reads,
		sessions: sessions,
	}
}

func (c *authCommandsImpl) Register(ctx context.Context, input RegisterInput) (uuid.UUID, error) {
	username, err := user.NewUsername(input.Username)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	email, err := user.NewEmail(input.Email)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	if _, err := user.NewPassword(input.Password); err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	exists, err := c.reads.ExistsByUsernameOrEmail(ctx, username.Value(), email.Value())
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrStoreUnavailable)
	}
	if exists {
		return uuid.Nil, errs.ErrUserAlreadyExists
	}

	hash, err := password.HashPassword(input.Password)
	if err != nil {
		return uuid.Nil, errs.Wrap(err, "failed to hash password")
	}

	id, err := c.users.Create(ctx, user.NewUser(username, email, hash, user.RoleCustomer))
	if err != nil {
		// A concurrent registration can slip past the existence check; the
		// unique constraint is the real arbiter.
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, errs.Mark(err, errs.ErrUserAlreadyExists)
		}
		return uuid.Nil, errs.Mark(err, errs.ErrStoreUnavailable)
	}

	return id, nil
}

// Login verifies the credentials and issues a fresh token, superseding any
// previous one for the same user. Unknown users and wrong passwords are
// indistinguishable to the caller.
func (c *authCommandsImpl) Login(ctx context.Context, username, rawPassword string) (*LoginResult, error) {
	view, hash, err := c.reads.FindByUsername(ctx, username)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrInvalidCredentials)
		}
		return nil, errs.Mark(err, errs.ErrStoreUnavailable)
	}

	if err := password.ComparePassword(hash, rawPassword); err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidCredentials)
	}

	role, err := user.NewRole(view.Role)
	if err != nil {
		return nil, errs.Wrap(err, "stored role is invalid")
	}

	token, err := c.sessions.Issue(ctx, view.ID, view.Username, role)
	if err != nil {
		return nil, errs.Wrap(err, "failed to issue session token")
	}

	if err := c.users.UpdateLastLogin(ctx, view.ID); err != nil {
		slog.Warn("failed to record last login", "user_id", view.ID.String(), "error", err.Error())
	}

	return &LoginResult{Token: token, User: view}, nil
}

func (c *authCommandsImpl) Logout(ctx context.Context, userID uuid.UUID) error {
	return c.sessions.Revoke(ctx, userID)
}
