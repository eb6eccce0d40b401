package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"

	domainDriver "fleetops/internal/domain/driver"
	domainUser "fleetops/internal/domain/user"
	"fleetops/internal/mocks"
	appErrors "fleetops/pkg/errors"
	"fleetops/pkg/utils"
)

const testSecret = "test-secret-key"

func newTestService(t *testing.T) (*Service, *mocks.MockUserRepository, *mocks.MockDriverRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepository(ctrl)
	driverRepo := mocks.NewMockDriverRepository(ctrl)
	return NewService(userRepo, driverRepo, testSecret, 24), userRepo, driverRepo
}

func TestLogin(t *testing.T) {
	svc, userRepo, _ := newTestService(t)
	ctx := context.Background()

	hashed, err := utils.HashPassword("Dispatch123")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	userRepo.EXPECT().GetByUsername(ctx, "dispatcher1").Return(&domainUser.User{
		ID:             uuid.New(),
		Username:       "dispatcher1",
		PasswordHashed: hashed,
		Role:           domainUser.RoleDispatcher,
		IsActive:       true,
	}, nil)

	resp, err := svc.Login(ctx, &LoginRequest{Username: "dispatcher1", Password: "Dispatch123"})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if resp.Token == "" {
		t.Error("empty token")
	}

	claims, err := utils.ValidateToken(resp.Token, testSecret)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}
	if claims.Role != domainUser.RoleDispatcher {
		t.Errorf("token role = %s, want dispatcher", claims.Role)
	}
}

// Drivers get their driver profile id embedded in the token so driver-scoped
// endpoints can filter without an extra lookup.
func TestLoginDriverGetsDriverID(t *testing.T) {
	svc, userRepo, driverRepo := newTestService(t)
	ctx := context.Background()

	hashed, _ := utils.HashPassword("Driver123")
	userID := uuid.New()
	driverID := uuid.New()

	userRepo.EXPECT().GetByUsername(ctx, "driver1").Return(&domainUser.User{
		ID:             userID,
		Username:       "driver1",
		PasswordHashed: hashed,
		Role:           domainUser.RoleDriver,
		IsActive:       true,
	}, nil)
	driverRepo.EXPECT().GetByUserID(ctx, userID).Return(&domainDriver.Driver{
		ID:     driverID,
		UserID: &userID,
	}, nil)

	resp, err := svc.Login(ctx, &LoginRequest{Username: "driver1", Password: "Driver123"})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if resp.User.DriverID == nil || *resp.User.DriverID != driverID {
		t.Error("driver id not attached to login response")
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc, userRepo, _ := newTestService(t)
	ctx := context.Background()

	hashed, _ := utils.HashPassword("Correct123")
	userRepo.EXPECT().GetByUsername(ctx, "admin").Return(&domainUser.User{
		ID:             uuid.New(),
		Username:       "admin",
		PasswordHashed: hashed,
		Role:           domainUser.RoleAdmin,
		IsActive:       true,
	}, nil)

	_, err := svc.Login(ctx, &LoginRequest{Username: "admin", Password: "Wrong123"})
	if !errors.Is(err, appErrors.ErrInvalidCredentials) {
		t.Errorf("Login() error = %v, want ErrInvalidCredentials", err)
	}
}

// An unknown username yields the same error as a wrong password.
func TestLoginUnknownUser(t *testing.T) {
	svc, userRepo, _ := newTestService(t)
	ctx := context.Background()

	userRepo.EXPECT().GetByUsername(ctx, "ghost").Return(nil, domainUser.ErrUserNotFound)

	_, err := svc.Login(ctx, &LoginRequest{Username: "ghost", Password: "Whatever1"})
	if !errors.Is(err, appErrors.ErrInvalidCredentials) {
		t.Errorf("Login() error = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginInactiveUser(t *testing.T) {
	svc, userRepo, _ := newTestService(t)
	ctx := context.Background()

	hashed, _ := utils.HashPassword("Driver123")
	userRepo.EXPECT().GetByUsername(ctx, "retired").Return(&domainUser.User{
		ID:             uuid.New(),
		Username:       "retired",
		PasswordHashed: hashed,
		Role:           domainUser.RoleDriver,
		IsActive:       false,
	}, nil)

	_, err := svc.Login(ctx, &LoginRequest{Username: "retired", Password: "Driver123"})
	if !errors.Is(err, appErrors.ErrUserInactive) {
		t.Errorf("Login() error = %v, want ErrUserInactive", err)
	}
}

// Registering a driver-role account creates the linked driver profile.
func TestRegisterDriverCreatesProfile(t *testing.T) {
	svc, userRepo, driverRepo := newTestService(t)
	ctx := context.Background()

	userRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u *domainUser.User) error {
			u.ID = uuid.New()
			return nil
		})
	driverRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, d *domainDriver.Driver) error {
			if d.UserID == nil {
				t.Error("driver profile not linked to user")
			}
			if d.Status != domainDriver.StatusAvailable {
				t.Errorf("new driver status = %s, want available", d.Status)
			}
			d.ID = uuid.New()
			return nil
		})

	name := "Nguyen Van A"
	resp, err := svc.Register(ctx, &RegisterRequest{
		Username: "driver2",
		Password: "Driver123",
		Role:     domainUser.RoleDriver,
		Name:     &name,
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if resp.DriverID == nil {
		t.Error("driver id missing from register response")
	}
}

func TestRegisterRejectsWeakPassword(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, &RegisterRequest{
		Username: "admin2",
		Password: "alllowercase",
		Role:     domainUser.RoleAdmin,
	})
	if !errors.Is(err, appErrors.ErrWeakPassword) {
		t.Errorf("Register() error = %v, want ErrWeakPassword", err)
	}
}
