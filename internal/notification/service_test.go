package notification

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"twa-backend/pkg/fcm"
)

type fakeSender struct {
	topic   string
	payload fcm.NotificationData
	err     error
}

func (f *fakeSender) SendToTopic(_ context.Context, topic string, notification fcm.NotificationData) (string, error) {
	f.topic = topic
	f.payload = notification
	if f.err != nil {
		return "", f.err
	}
	return "projects/test/messages/123", nil
}

func TestSendWeatherAlert(t *testing.T) {
	sender := &fakeSender{}
	service := NewService(sender)

	messageID, err := service.SendWeatherAlert(context.Background(), "TPE-100", "Heavy rain warning", "Expect heavy rain until 18:00")
	require.NoError(t, err)

	assert.Equal(t, "projects/test/messages/123", messageID)
	assert.Equal(t, "weather_TPE-100", sender.topic)
	assert.Equal(t, "Heavy rain warning", sender.payload.Title)
	assert.Equal(t, "Expect heavy rain until 18:00", sender.payload.Body)

	// Each alert carries a unique ID and a send timestamp
	_, err = uuid.Parse(sender.payload.Data["alertId"])
	assert.NoError(t, err)
	assert.NotEmpty(t, sender.payload.Data["sentAt"])
}

func TestSendWeatherAlertFailure(t *testing.T) {
	sender := &fakeSender{err: errors.New("messaging unavailable")}
	service := NewService(sender)

	messageID, err := service.SendWeatherAlert(context.Background(), "TPE-100", "t", "b")

	require.Error(t, err)
	assert.Empty(t, messageID)
	assert.Contains(t, err.Error(), "weather_TPE-100")
}
