package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/benx421/minibank/internal/models"
	"github.com/benx421/minibank/internal/repository"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// maxCardIssueAttempts bounds reissuing when a generated card number is already taken
const maxCardIssueAttempts = 5

// SignupParams holds the fields a new user supplies
type SignupParams struct {
	Birthday  time.Time
	Balance   decimal.Decimal
	Username  string
	Password  string
	FirstName string
	LastName  string
	Address   string
}

// DirectoryService handles user signup, credential checks and lookups
type DirectoryService struct {
	store      repository.Store
	cards      *CardIssuer
	bcryptCost int
}

// NewDirectoryService creates a new DirectoryService
func NewDirectoryService(store repository.Store, cards *CardIssuer, bcryptCost int) *DirectoryService {
	return &DirectoryService{
		store:      store,
		cards:      cards,
		bcryptCost: bcryptCost,
	}
}

// Signup creates a user with a hashed password and a freshly issued card
func (s *DirectoryService) Signup(ctx context.Context, params SignupParams) (*models.User, error) {
	if err := ValidateUsername(params.Username); err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInvalidRequest,
			Message: err.Error(),
		}
	}

	if err := ValidateScale(params.Balance); err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInvalidAmount,
			Message: err.Error(),
		}
	}

	users := s.store.Users()

	_, err := users.FindByUsername(ctx, params.Username)
	switch {
	case err == nil:
		return nil, usernameTaken(params.Username)
	case !errors.Is(err, models.ErrNotFound):
		return nil, internalError("failed to check username", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(params.Password), s.bcryptCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, &ServiceError{
				Code:    ErrCodeInvalidRequest,
				Message: "password is too long",
			}
		}
		return nil, internalError("failed to hash password", err)
	}

	for range maxCardIssueAttempts {
		card, err := s.cards.Issue()
		if err != nil {
			return nil, internalError("failed to issue card", err)
		}

		user := &models.User{
			Username:         params.Username,
			FirstName:        params.FirstName,
			LastName:         params.LastName,
			Address:          params.Address,
			Birthday:         params.Birthday,
			PasswordHash:     string(hash),
			Balance:          params.Balance,
			CreditCardNumber: card.Number,
			CVV:              card.CVV,
			ExpiryDate:       card.ExpiryDate,
		}

		err = users.Create(ctx, user)
		switch {
		case err == nil:
			return user, nil
		case errors.Is(err, models.ErrDuplicateCardNumber):
			continue
		case errors.Is(err, models.ErrDuplicateUsername):
			return nil, usernameTaken(params.Username)
		default:
			return nil, internalError("failed to create user", err)
		}
	}

	return nil, internalError("failed to issue a unique card number",
		fmt.Errorf("gave up after %d attempts", maxCardIssueAttempts))
}

// Authenticate verifies a password against the stored hash
func (s *DirectoryService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, &ServiceError{
				Code:    ErrCodeInvalidCredentials,
				Message: "incorrect password",
			}
		}
		return nil, internalError("failed to verify password", err)
	}

	return user, nil
}

// FindByUsername retrieves a user by username
func (s *DirectoryService) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	return findUser(ctx, s.store.Users(), username)
}

// ListUsers returns every user
func (s *DirectoryService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.store.Users().List(ctx)
	if err != nil {
		return nil, internalError("failed to list users", err)
	}
	return users, nil
}

// PurgeUsers deletes every user
func (s *DirectoryService) PurgeUsers(ctx context.Context) (int64, error) {
	deleted, err := s.store.Users().DeleteAll(ctx)
	if err != nil {
		return 0, internalError("failed to delete users", err)
	}
	return deleted, nil
}

func findUser(ctx context.Context, users repository.UserRepository, username string) (*models.User, error) {
	user, err := users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, userNotFound(username)
		}
		return nil, internalError("failed to find user", err)
	}
	return user, nil
}

func usernameTaken(username string) *ServiceError {
	return &ServiceError{
		Code:    ErrCodeUsernameTaken,
		Message: fmt.Sprintf("username %q already exists", username),
	}
}
