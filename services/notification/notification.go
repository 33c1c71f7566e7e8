// Package notification delivers push messages to user devices via FCM.
package notification

import (
	"context"

	userRepo "haki/database/repository/user"
	"haki/utils"

	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
)

type NotificationService interface {
	// NotifyUser sends a push notification to the user's registered device.
	// Delivery is best effort; a missing token or FCM error is logged only.
	NotifyUser(userID, title, body string)
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Users userRepo.UserRepository
}

func (s *DefaultNotificationService) NotifyUser(userID, title, body string) {
	logger := utils.GetLogger()

	usr, err := s.Users.GetByID(userID)
	if err != nil {
		logger.Warn("notification: user lookup failed", zap.String("userID", userID), zap.Error(err))
		return
	}
	if usr.FCMToken == "" {
		logger.Debug("notification: user has no FCM token", zap.String("userID", userID))
		return
	}
	if utils.FCMClient == nil {
		logger.Warn("notification: FCM client not initialized")
		return
	}

	msg := &messaging.Message{
		Token: usr.FCMToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
	}
	if _, err := utils.FCMClient.Send(context.Background(), msg); err != nil {
		logger.Warn("notification: FCM send failed", zap.String("userID", userID), zap.Error(err))
	}
}
