package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	"github.com/cinegraph/cinegraph/internal/auth"
	"github.com/cinegraph/cinegraph/internal/driver"
	"github.com/cinegraph/cinegraph/internal/model"
)

func userFromRecord(rec *neo4j.Record) (model.User, bool) {
	node, ok := recordValue(rec, "u").(neo4j.Node)
	if !ok {
		return model.User{}, false
	}
	return userFromProps(node.Props), true
}

// Register creates a new user account with role "user". ErrEmailTaken when
// the email is already registered.
func (s *Service) Register(ctx context.Context, username, email, password string) (*model.User, error) {
	existing, err := s.Driver.ExecuteQuery(ctx, driver.UserByEmailQuery, map[string]interface{}{"email": email})
	if err != nil {
		return nil, err
	}
	if len(existing.Records) > 0 {
		return nil, ErrEmailTaken
	}

	hash, err := auth.HashPassword(password, s.BcryptCost)
	if err != nil {
		return nil, err
	}

	result, err := s.Driver.ExecuteQuery(ctx, driver.CreateUserQuery, map[string]interface{}{
		"userId":   uuid.New().String(),
		"username": username,
		"email":    email,
		"password": hash,
		"role":     model.RoleUser,
	})
	if err != nil {
		return nil, err
	}
	if len(result.Records) == 0 {
		return nil, ErrEmailTaken
	}

	user, _ := userFromRecord(result.Records[0])
	s.log.Info("user registered", zap.String("id", user.ID), zap.String("email", email))
	return &user, nil
}

// Login verifies the credentials and returns the user. The error does not
// reveal whether the email or the password was wrong.
func (s *Service) Login(ctx context.Context, email, password string) (*model.User, error) {
	result, err := s.Driver.ExecuteQuery(ctx, driver.UserByEmailQuery, map[string]interface{}{"email": email})
	if err != nil {
		return nil, err
	}
	if len(result.Records) == 0 {
		return nil, ErrInvalidCredentials
	}

	user, ok := userFromRecord(result.Records[0])
	if !ok || !auth.CheckPassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

// GetUser looks up a user by id, for the /me endpoint.
func (s *Service) GetUser(ctx context.Context, id string) (*model.User, error) {
	result, err := s.Driver.ExecuteQuery(ctx, driver.UserByIDQuery, map[string]interface{}{"userId": id})
	if err != nil {
		return nil, err
	}
	if len(result.Records) == 0 {
		return nil, ErrNotFound
	}
	user, ok := userFromRecord(result.Records[0])
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}

// AdminListUsers returns every account with its review count, newest first.
func (s *Service) AdminListUsers(ctx context.Context) ([]model.AdminUser, error) {
	result, err := s.Driver.ExecuteQuery(ctx, driver.AdminUsersQuery, nil)
	if err != nil {
		return nil, err
	}

	users := make([]model.AdminUser, 0, len(result.Records))
	for _, rec := range result.Records {
		user, ok := userFromRecord(rec)
		if !ok {
			continue
		}
		users = append(users, model.AdminUser{
			UserView:    user.PublicView(),
			CreatedAt:   user.CreatedAt,
			ReviewCount: asInt64(recordValue(rec, "reviewCount")),
		})
	}
	return users, nil
}

// UserUpdate carries the admin-editable account fields; empty strings are
// left unchanged.
type UserUpdate struct {
	Username string
	Email    string
	Role     string
}

func (s *Service) UpdateUser(ctx context.Context, id string, upd UserUpdate) (*model.User, error) {
	updates := map[string]interface{}{}
	if upd.Username != "" {
		updates["username"] = upd.Username
	}
	if upd.Email != "" {
		updates["email"] = upd.Email
	}
	if upd.Role != "" {
		updates["role"] = upd.Role
	}

	result, err := s.Driver.ExecuteQuery(ctx, driver.UpdateUserQuery, map[string]interface{}{
		"id": id, "updates": updates,
	})
	if err != nil {
		return nil, err
	}
	if len(result.Records) == 0 {
		return nil, ErrNotFound
	}
	user, _ := userFromRecord(result.Records[0])
	return &user, nil
}

// DeleteUser detach-deletes the account along with its reviews and views.
func (s *Service) DeleteUser(ctx context.Context, id string) error {
	if _, err := s.Driver.ExecuteQuery(ctx, driver.DeleteUserQuery, map[string]interface{}{"id": id}); err != nil {
		return err
	}
	s.log.Info("user deleted", zap.String("id", id))
	return nil
}
