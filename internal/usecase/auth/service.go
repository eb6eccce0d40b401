package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	domainDriver "fleetops/internal/domain/driver"
	domainUser "fleetops/internal/domain/user"
	"fleetops/internal/logger"
	appErrors "fleetops/pkg/errors"
	"fleetops/pkg/utils"
)

// Service issues tokens and registers accounts. Registering a driver-role
// user also creates the linked driver profile.
type Service struct {
	userRepo    domainUser.Repository
	driverRepo  domainDriver.Repository
	jwtSecret   string
	expiryHours int
}

func NewService(userRepo domainUser.Repository, driverRepo domainDriver.Repository, jwtSecret string, expiryHours int) *Service {
	return &Service{
		userRepo:    userRepo,
		driverRepo:  driverRepo,
		jwtSecret:   jwtSecret,
		expiryHours: expiryHours,
	}
}

func (s *Service) Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	u, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, domainUser.ErrUserNotFound) {
			return nil, appErrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !u.IsActive {
		return nil, appErrors.ErrUserInactive
	}

	if !utils.CheckPassword(u.PasswordHashed, req.Password) {
		logger.Warn("Failed login attempt",
			zap.String("username", req.Username),
			zap.String("event", "login_failed"),
		)
		return nil, appErrors.ErrInvalidCredentials
	}

	var driverID *uuid.UUID
	if u.Role == domainUser.RoleDriver {
		d, err := s.driverRepo.GetByUserID(ctx, u.ID)
		if err != nil && !errors.Is(err, domainDriver.ErrDriverNotFound) {
			return nil, err
		}
		if d != nil {
			driverID = &d.ID
		}
	}

	token, expiresAt, err := utils.GenerateToken(u.ID, u.Username, u.Role, driverID, s.jwtSecret, s.expiryHours)
	if err != nil {
		return nil, appErrors.NewAppError("TOKEN_ERROR", "Failed to generate token", err)
	}

	logger.Info("User logged in",
		zap.String("user_id", u.ID.String()),
		zap.String("role", u.Role),
		zap.String("event", "login"),
	)

	return &LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User: UserResponse{
			ID:       u.ID,
			Username: u.Username,
			Role:     u.Role,
			DriverID: driverID,
		},
	}, nil
}

func (s *Service) Register(ctx context.Context, req *RegisterRequest) (*UserResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	if err := utils.ValidatePassword(req.Password); err != nil {
		return nil, appErrors.ErrWeakPassword
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, appErrors.NewAppError("HASH_ERROR", "Failed to hash password", err)
	}

	newUser := &domainUser.User{
		Username:       utils.SanitizeString(req.Username),
		PasswordHashed: hashed,
		Role:           req.Role,
		IsActive:       true,
	}

	if err := s.userRepo.Create(ctx, newUser); err != nil {
		return nil, err
	}

	var driverID *uuid.UUID
	if req.Role == domainUser.RoleDriver {
		name := newUser.Username
		if req.Name != nil {
			name = utils.SanitizeString(*req.Name)
		}
		profile := &domainDriver.Driver{
			UserID:        &newUser.ID,
			Name:          name,
			Phone:         req.Phone,
			LicenseNumber: req.LicenseNumber,
			LicenseExpiry: req.LicenseExpiry,
			Status:        domainDriver.StatusAvailable,
		}
		if err := s.driverRepo.Create(ctx, profile); err != nil {
			return nil, err
		}
		driverID = &profile.ID
	}

	logger.Info("User registered",
		zap.String("user_id", newUser.ID.String()),
		zap.String("role", newUser.Role),
		zap.String("event", "user_registered"),
	)

	return &UserResponse{
		ID:       newUser.ID,
		Username: newUser.Username,
		Role:     newUser.Role,
		DriverID: driverID,
	}, nil
}
