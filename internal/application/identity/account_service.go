package identity

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/marketplace/backend/internal/domain/identity"
	"github.com/marketplace/backend/internal/domain/shared"
	"github.com/marketplace/backend/internal/domain/shared/valueobject"
	"github.com/marketplace/backend/internal/infrastructure/auth"
)

// AccountService handles the signed-in user's own account
type AccountService struct {
	userRepo   identity.UserRepository
	revocation auth.TokenRevocationStore
	logger     *zap.Logger
}

// NewAccountService creates a new AccountService
func NewAccountService(userRepo identity.UserRepository, revocation auth.TokenRevocationStore, logger *zap.Logger) *AccountService {
	return &AccountService{
		userRepo:   userRepo,
		revocation: revocation,
		logger:     logger,
	}
}

// GetProfile retrieves the caller's account
func (s *AccountService) GetProfile(ctx context.Context, userID uuid.UUID) (*ProfileResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	response := ToProfileResponse(user)
	return &response, nil
}

// UpdateProfile applies a partial update to the caller's account
func (s *AccountService) UpdateProfile(ctx context.Context, userID uuid.UUID, req UpdateProfileRequest) (*ProfileResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		if err := user.SetFullName(*req.FullName); err != nil {
			return nil, err
		}
	}
	if req.Bio != nil {
		if err := user.SetBio(*req.Bio); err != nil {
			return nil, err
		}
	}
	if req.AvatarURL != nil {
		if err := user.SetAvatarURL(*req.AvatarURL); err != nil {
			return nil, err
		}
	}
	if req.Address != nil {
		address, err := valueobject.NewShippingAddress(req.Address.Street, req.Address.City, req.Address.State, req.Address.Country)
		if err != nil {
			return nil, err
		}
		user.SetShippingAddress(address)
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	response := ToProfileResponse(user)
	return &response, nil
}

// ChangeEmail changes the caller's sign-in email after re-verifying the
// password. The new email must not be in use by another account.
func (s *AccountService) ChangeEmail(ctx context.Context, userID uuid.UUID, req ChangeEmailRequest) (*ProfileResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !user.VerifyPassword(req.Password) {
		return nil, shared.NewDomainError("INVALID_PASSWORD", "Current password is incorrect")
	}

	taken, err := s.userRepo.ExistsByEmail(ctx, req.NewEmail)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Email is already in use")
	}

	if err := user.ChangeEmail(req.NewEmail, req.Password); err != nil {
		return nil, err
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("Email changed", zap.String("user_id", userID.String()))
	response := ToProfileResponse(user)
	return &response, nil
}

// ChangePassword changes the caller's password and signs out every
// session the old password had open.
func (s *AccountService) ChangePassword(ctx context.Context, userID uuid.UUID, req ChangePasswordRequest) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := user.ChangePassword(req.CurrentPassword, req.NewPassword); err != nil {
		return err
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return err
	}

	if err := s.revocation.RevokeAllForUser(ctx, userID.String(), 168*time.Hour); err != nil {
		s.logger.Error("Failed to revoke sessions after password change", zap.Error(err))
	}

	s.logger.Info("Password changed", zap.String("user_id", userID.String()))
	return nil
}
