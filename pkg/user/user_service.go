package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"NutriTrack-Backend/domain"
	"NutriTrack-Backend/entities"
	"NutriTrack-Backend/internal/utils/mailing"
	"NutriTrack-Backend/internal/utils/storage"
	"NutriTrack-Backend/pkg/jwt"
	"NutriTrack-Backend/pkg/nutrition"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
		SendVerificationEmail(ctx context.Context, req domain.SendVerifyEmailRequest) error
		VerifyEmail(ctx context.Context, token string) error
		Me(ctx context.Context, userID string) (domain.UserResponse, error)
		UpdateUser(ctx context.Context, req domain.UpdateUserRequest, userID string) (domain.UserResponse, error)
		ForgotPassword(ctx context.Context, req domain.ForgotPasswordRequest) error
		ResetPassword(ctx context.Context, req domain.ResetPasswordRequest) error
		UploadAvatar(ctx context.Context, req domain.UploadAvatarRequest, userID string) (string, error)
		GetTargets(ctx context.Context, userID string) (domain.TargetsResponse, error)
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
		s3             storage.AwsS3
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService, s3 storage.AwsS3) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
		s3:             s3,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error) {
	if _, err := s.userRepository.GetUserByEmail(ctx, req.Email); err == nil {
		return domain.RegisterResponse{}, domain.ErrEmailAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.RegisterResponse{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.RegisterResponse{}, err
	}

	user := &entities.User{
		ID:       uuid.New(),
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashed),
	}
	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		return domain.RegisterResponse{}, err
	}

	_ = s.sendVerification(user)

	return domain.RegisterResponse{
		ID:    user.ID.String(),
		Name:  user.Name,
		Email: user.Email,
	}, nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LoginResponse{}, domain.ErrInvalidCredentials
		}
		return domain.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return domain.LoginResponse{}, domain.ErrInvalidCredentials
	}

	token := s.jwtService.GenerateTokenUser(user.ID.String(), domain.RoleUser)
	return domain.LoginResponse{
		Token: token,
		Role:  domain.RoleUser,
	}, nil
}

func (s *userService) SendVerificationEmail(ctx context.Context, req domain.SendVerifyEmailRequest) error {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}
	return s.sendVerification(user)
}

func (s *userService) sendVerification(user *entities.User) error {
	token, err := s.jwtService.GenerateTokenForgetPassword(map[string]any{
		"user_id": user.ID.String(),
		"purpose": "verify_email",
	}, 24*time.Hour)
	if err != nil {
		return err
	}

	link := fmt.Sprintf("%s/api/v1/users/verify?token=%s", mailing.LoadMailConfig().AppURL, token)
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Verify your NutriTrack account by clicking <a href=%q>this link</a>.</p>",
		user.Name, link,
	)
	return mailing.SendMail(user.Email, "Verify your NutriTrack account", body)
}

func (s *userService) VerifyEmail(ctx context.Context, token string) error {
	claims, err := s.jwtService.ValidateTokenForgetPassword(token)
	if err != nil {
		return err
	}
	if purpose, _ := claims["purpose"].(string); purpose != "verify_email" {
		return domain.ErrTokenInvalid
	}
	userID, _ := claims["user_id"].(string)
	if userID == "" {
		return domain.ErrTokenInvalid
	}
	return s.userRepository.MarkVerified(ctx, userID)
}

func (s *userService) Me(ctx context.Context, userID string) (domain.UserResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, domain.ErrUserNotFound
		}
		return domain.UserResponse{}, err
	}
	return toUserResponse(user), nil
}

func (s *userService) UpdateUser(ctx context.Context, req domain.UpdateUserRequest, userID string) (domain.UserResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, domain.ErrUserNotFound
		}
		return domain.UserResponse{}, err
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.WeightKg != nil {
		user.WeightKg = req.WeightKg
	}
	if req.HeightCm != nil {
		user.HeightCm = req.HeightCm
	}
	if req.Age != nil {
		user.Age = req.Age
	}
	if req.Sex != "" {
		user.Sex = req.Sex
	}
	if req.ActivityLevel != "" {
		user.ActivityLevel = req.ActivityLevel
	}
	if req.Goal != "" {
		user.Goal = req.Goal
	}
	if req.ManualCalorieTarget != nil {
		user.ManualCalorieTarget = req.ManualCalorieTarget
	}
	if req.ManualProteinTarget != nil {
		user.ManualProteinTarget = req.ManualProteinTarget
	}
	if req.ManualCarbsTarget != nil {
		user.ManualCarbsTarget = req.ManualCarbsTarget
	}
	if req.ManualFatTarget != nil {
		user.ManualFatTarget = req.ManualFatTarget
	}

	if err := s.userRepository.UpdateUser(ctx, user); err != nil {
		return domain.UserResponse{}, err
	}
	return toUserResponse(user), nil
}

func (s *userService) ForgotPassword(ctx context.Context, req domain.ForgotPasswordRequest) error {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	token, err := s.jwtService.GenerateTokenForgetPassword(map[string]any{
		"user_id": user.ID.String(),
		"purpose": "reset_password",
	}, 30*time.Minute)
	if err != nil {
		return err
	}

	link := fmt.Sprintf("%s/reset-password?token=%s", mailing.LoadMailConfig().AppURL, token)
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Reset your password by clicking <a href=%q>this link</a>. The link expires in 30 minutes.</p>",
		user.Name, link,
	)
	return mailing.SendMail(user.Email, "Reset your NutriTrack password", body)
}

func (s *userService) ResetPassword(ctx context.Context, req domain.ResetPasswordRequest) error {
	claims, err := s.jwtService.ValidateTokenForgetPassword(req.Token)
	if err != nil {
		return err
	}
	if purpose, _ := claims["purpose"].(string); purpose != "reset_password" {
		return domain.ErrTokenInvalid
	}
	userID, _ := claims["user_id"].(string)
	if userID == "" {
		return domain.ErrTokenInvalid
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.userRepository.UpdatePassword(ctx, userID, string(hashed))
}

func (s *userService) UploadAvatar(ctx context.Context, req domain.UploadAvatarRequest, userID string) (string, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrUserNotFound
		}
		return "", err
	}

	url, err := s.s3.UploadFile(ctx, "avatars", req.Avatar)
	if err != nil {
		return "", err
	}

	user.AvatarURL = url
	if err := s.userRepository.UpdateUser(ctx, user); err != nil {
		return "", err
	}
	return url, nil
}

// GetTargets computes daily targets from the profile when all body metrics
// are present; otherwise it falls back to the user's manual targets. The
// calculator itself never validates or defaults inputs.
func (s *userService) GetTargets(ctx context.Context, userID string) (domain.TargetsResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.TargetsResponse{}, domain.ErrUserNotFound
		}
		return domain.TargetsResponse{}, err
	}
	return TargetsForUser(user)
}

// TargetsForUser is the fallback decision shared with the tracker service.
func TargetsForUser(user *entities.User) (domain.TargetsResponse, error) {
	if user.WeightKg != nil && user.HeightCm != nil && user.Age != nil && user.Sex != "" {
		t := nutrition.ComputeTargets(nutrition.Profile{
			WeightKg:      *user.WeightKg,
			HeightCm:      *user.HeightCm,
			Age:           *user.Age,
			Sex:           user.Sex,
			ActivityLevel: user.ActivityLevel,
			Goal:          user.Goal,
		})
		return domain.TargetsResponse{
			Source:   "computed",
			BMR:      t.BMR,
			TDEE:     t.TDEE,
			Calories: t.Calories,
			ProteinG: t.ProteinG,
			CarbsG:   t.CarbsG,
			FatG:     t.FatG,
		}, nil
	}

	if user.ManualCalorieTarget == nil {
		return domain.TargetsResponse{}, domain.ErrTargetsNotAvailable
	}
	res := domain.TargetsResponse{
		Source:   "manual",
		Calories: *user.ManualCalorieTarget,
	}
	if user.ManualProteinTarget != nil {
		res.ProteinG = *user.ManualProteinTarget
	}
	if user.ManualCarbsTarget != nil {
		res.CarbsG = *user.ManualCarbsTarget
	}
	if user.ManualFatTarget != nil {
		res.FatG = *user.ManualFatTarget
	}
	return res, nil
}

func toUserResponse(user *entities.User) domain.UserResponse {
	return domain.UserResponse{
		ID:            user.ID.String(),
		Name:          user.Name,
		Email:         user.Email,
		AvatarURL:     user.AvatarURL,
		IsVerified:    user.IsVerified,
		IsPremium:     user.IsPremium,
		WeightKg:      user.WeightKg,
		HeightCm:      user.HeightCm,
		Age:           user.Age,
		Sex:           user.Sex,
		ActivityLevel: user.ActivityLevel,
		Goal:          user.Goal,
	}
}
