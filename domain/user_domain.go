package domain

import (
	"errors"
	"mime/multipart"
)

var (
	MessageSuccessRegister         = "user registered successfully"
	MessageSuccessLogin            = "login successful"
	MessageSuccessSendVerifyEmail  = "verification email sent successfully"
	MessageSuccessVerifyEmail      = "email verified successfully"
	MessageSuccessGetMe            = "user profile retrieved successfully"
	MessageSuccessUpdateUser       = "user profile updated successfully"
	MessageSuccessForgotPassword   = "password reset email sent successfully"
	MessageSuccessResetPassword    = "password reset successfully"
	MessageSuccessUploadAvatar     = "avatar uploaded successfully"
	MessageSuccessGetTargets       = "daily targets retrieved successfully"

	MessageFailedRegister        = "failed to register user"
	MessageFailedLogin           = "failed to login"
	MessageFailedSendVerifyEmail = "failed to send verification email"
	MessageFailedVerifyEmail     = "failed to verify email"
	MessageFailedGetMe           = "failed to retrieve user profile"
	MessageFailedUpdateUser      = "failed to update user profile"
	MessageFailedForgotPassword  = "failed to send password reset email"
	MessageFailedResetPassword   = "failed to reset password"
	MessageFailedUploadAvatar    = "failed to upload avatar"
	MessageFailedGetTargets      = "failed to retrieve daily targets"

	ErrEmailAlreadyExists  = errors.New("email already registered")
	ErrUserNotFound        = errors.New("user not found")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrEmailNotVerified    = errors.New("email not verified")
	ErrTargetsNotAvailable = errors.New("profile incomplete and no manual targets set")
)

type (
	RegisterRequest struct {
		Name     string `json:"name" validate:"required,min=2"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
	}

	RegisterResponse struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token string `json:"token"`
		Role  string `json:"role"`
	}

	SendVerifyEmailRequest struct {
		Email string `json:"email" validate:"required,email"`
	}

	ForgotPasswordRequest struct {
		Email string `json:"email" validate:"required,email"`
	}

	ResetPasswordRequest struct {
		Token       string `json:"token" validate:"required"`
		NewPassword string `json:"new_password" validate:"required,min=8"`
	}

	UpdateUserRequest struct {
		Name          string   `json:"name" validate:"omitempty,min=2"`
		WeightKg      *float64 `json:"weight_kg" validate:"omitempty,gt=0"`
		HeightCm      *float64 `json:"height_cm" validate:"omitempty,gt=0"`
		Age           *int     `json:"age" validate:"omitempty,gt=0,lt=130"`
		Sex           string   `json:"sex" validate:"omitempty,oneof=male female other"`
		ActivityLevel string   `json:"activity_level" validate:"omitempty,oneof=sedentary lightly_active moderately_active very_active extra_active"`
		Goal          string   `json:"goal" validate:"omitempty,oneof=weight_loss maintenance muscle_gain"`

		ManualCalorieTarget *int `json:"manual_calorie_target" validate:"omitempty,min=0"`
		ManualProteinTarget *int `json:"manual_protein_target" validate:"omitempty,min=0"`
		ManualCarbsTarget   *int `json:"manual_carbs_target" validate:"omitempty,min=0"`
		ManualFatTarget     *int `json:"manual_fat_target" validate:"omitempty,min=0"`
	}

	UploadAvatarRequest struct {
		Avatar *multipart.FileHeader `json:"avatar" form:"avatar" validate:"required"`
	}

	UserResponse struct {
		ID            string   `json:"id"`
		Name          string   `json:"name"`
		Email         string   `json:"email"`
		AvatarURL     string   `json:"avatar_url,omitempty"`
		IsVerified    bool     `json:"is_verified"`
		IsPremium     bool     `json:"is_premium"`
		WeightKg      *float64 `json:"weight_kg,omitempty"`
		HeightCm      *float64 `json:"height_cm,omitempty"`
		Age           *int     `json:"age,omitempty"`
		Sex           string   `json:"sex,omitempty"`
		ActivityLevel string   `json:"activity_level,omitempty"`
		Goal          string   `json:"goal,omitempty"`
	}

	// TargetsResponse carries the daily calorie/macro targets, either
	// computed from a complete profile or taken from manual overrides.
	TargetsResponse struct {
		Source   string `json:"source"` // "computed" or "manual"
		BMR      int    `json:"bmr,omitempty"`
		TDEE     int    `json:"tdee,omitempty"`
		Calories int    `json:"calories"`
		ProteinG int    `json:"protein_g"`
		CarbsG   int    `json:"carbs_g"`
		FatG     int    `json:"fat_g"`
	}
)
