package services

import (
	"errors"
	"fmt"

	"github.com/ErjonAhmetaj/FitCoachAI/config"
	"github.com/ErjonAhmetaj/FitCoachAI/models"
	"github.com/ErjonAhmetaj/FitCoachAI/utils"
)

type ProfileInput struct {
	Username       string `json:"username"`
	ProfilePicture string `json:"profilePicture"` // base64 data URL
}

func GetUserProfile(userID uint) (map[string]interface{}, error) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return nil, errors.New("user not found")
	}

	return map[string]interface{}{
		"id":             user.ID,
		"username":       user.Username,
		"email":          user.Email,
		"weightGoal":     user.WeightGoal,
		"profilePicture": user.ProfilePicture,
	}, nil
}

func UpdateUserProfile(userID uint, input ProfileInput) error {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return errors.New("user not found")
	}

	if input.Username != "" {
		user.Username = input.Username
	}
	if input.ProfilePicture != "" {
		url, err := utils.UploadBase64ImageToS3(input.ProfilePicture, user.Email)
		if err != nil {
			return fmt.Errorf("failed to upload image: %v", err)
		}
		user.ProfilePicture = url
	}

	return config.DB.Save(&user).Error
}

func UpdateWeightGoal(userID uint, weightGoal float64) error {
	if weightGoal <= 0 {
		return fmt.Errorf("%w: weightGoal must be positive", ErrValidation)
	}

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return errors.New("user not found")
	}

	user.WeightGoal = &weightGoal
	return config.DB.Save(&user).Error
}
