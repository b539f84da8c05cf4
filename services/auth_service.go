package services

import (
	"errors"
	"time"

	"github.com/ErjonAhmetaj/FitCoachAI/config"
	"github.com/ErjonAhmetaj/FitCoachAI/models"
	"github.com/ErjonAhmetaj/FitCoachAI/utils"

	"gorm.io/gorm"
)

var (
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// RegisterUser creates an account and returns it with a fresh bearer token.
// A username or email collision reports the same ErrUserExists either way.
func RegisterUser(username, email, password string) (*models.User, string, error) {
	var existing models.User
	err := config.DB.Where("username = ? OR email = ?", username, email).First(&existing).Error
	if err == nil {
		return nil, "", ErrUserExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", err
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return nil, "", err
	}

	user := models.User{
		Username: username,
		Email:    email,
		Password: hashedPassword,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		return nil, "", err
	}

	token, err := utils.GenerateJWT(user.ID)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

// AuthenticateUser checks credentials by hash comparison only, never plaintext.
func AuthenticateUser(email, password string) (*models.User, string, error) {
	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(user.ID)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

func FindUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := config.DB.First(&user, id).Error; err != nil {
		return nil, errors.New("user not found")
	}
	return &user, nil
}

// ForgotPassword stores a short-lived reset code and emails it. An unknown
// email is not an error so the endpoint cannot be used to probe accounts.
func ForgotPassword(email string) error {
	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return nil
	}

	code := utils.GenerateRandomToken(6)
	user.ResetToken = code
	user.ResetTokenExp = time.Now().Add(15 * time.Minute)
	if err := config.DB.Save(&user).Error; err != nil {
		return err
	}

	return utils.SendResetEmail(user.Email, code)
}

func ResetPassword(token, newPassword string) error {
	var user models.User
	result := config.DB.Where("reset_token = ?", token).First(&user)
	if result.Error != nil || token == "" || time.Now().After(user.ResetTokenExp) {
		return errors.New("invalid or expired token")
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}

	user.Password = hashed
	user.ResetToken = ""
	user.ResetTokenExp = time.Time{}
	return config.DB.Save(&user).Error
}
