package notification

import (
	"context"
	"fmt"
	"log"
	"time"

	fcmdomain "twa-backend/internal/fcm/domain"
	"twa-backend/pkg/fcm"

	"github.com/google/uuid"
)

// Sender is the messaging capability used to publish to a topic. *fcm.Client
// satisfies it; tests inject fakes.
type Sender interface {
	SendToTopic(ctx context.Context, topic string, notification fcm.NotificationData) (string, error)
}

// Service publishes weather alerts to township topics
type Service struct {
	sender Sender
}

// NewService creates a new notification service
func NewService(sender Sender) *Service {
	return &Service{
		sender: sender,
	}
}

// SendWeatherAlert publishes one notification to the township's topic and
// returns the message ID assigned by the messaging platform. One attempt,
// no retry.
func (s *Service) SendWeatherAlert(ctx context.Context, townshipCode, title, body string) (string, error) {
	topic := fcmdomain.WeatherTopic(townshipCode)

	messageID, err := s.sender.SendToTopic(ctx, topic, fcm.NotificationData{
		Title: title,
		Body:  body,
		Data: map[string]string{
			"alertId": uuid.New().String(),
			"sentAt":  time.Now().UTC().Format(time.RFC3339),
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to send weather alert to topic %s: %w", topic, err)
	}

	log.Printf("[Notification] Weather alert sent to topic %s: %s", topic, messageID)
	return messageID, nil
}
