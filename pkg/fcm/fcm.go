package fcm

import (
	"context"
	"fmt"
	"log"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// Client wraps Firebase Cloud Messaging topic management and sending
type Client struct {
	messagingClient *messaging.Client
}

// NewClient creates a new FCM client using the provided credentials file
func NewClient(credentialsFile string) (*Client, error) {
	ctx := context.Background()

	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	app, err := firebase.NewApp(ctx, nil, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	messagingClient, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	log.Println("[FCM] Client initialized successfully")
	return &Client{
		messagingClient: messagingClient,
	}, nil
}

// SubscribeToTopic subscribes a single device token to a topic
func (c *Client) SubscribeToTopic(ctx context.Context, token, topic string) error {
	resp, err := c.messagingClient.SubscribeToTopic(ctx, []string{token}, topic)
	if err != nil {
		return fmt.Errorf("failed to subscribe token to topic %s: %w", topic, err)
	}
	// The SDK reports per-token failures in the response, not in err
	if resp.FailureCount > 0 {
		return fmt.Errorf("failed to subscribe token to topic %s: %s", topic, resp.Errors[0].Reason)
	}

	log.Printf("[FCM] Subscribed token %s to topic %s", TruncateToken(token), topic)
	return nil
}

// UnsubscribeFromTopic removes a single device token from a topic
func (c *Client) UnsubscribeFromTopic(ctx context.Context, token, topic string) error {
	resp, err := c.messagingClient.UnsubscribeFromTopic(ctx, []string{token}, topic)
	if err != nil {
		return fmt.Errorf("failed to unsubscribe token from topic %s: %w", topic, err)
	}
	if resp.FailureCount > 0 {
		return fmt.Errorf("failed to unsubscribe token from topic %s: %s", topic, resp.Errors[0].Reason)
	}

	log.Printf("[FCM] Unsubscribed token %s from topic %s", TruncateToken(token), topic)
	return nil
}

// NotificationData contains the data to send in a push notification
type NotificationData struct {
	Title string
	Body  string
	Data  map[string]string // Custom data payload
}

// SendToTopic publishes a notification to every device subscribed to the
// topic. Returns the message ID assigned by FCM.
func (c *Client) SendToTopic(ctx context.Context, topic string, notification NotificationData) (string, error) {
	message := &messaging.Message{
		Topic: topic,
		Notification: &messaging.Notification{
			Title: notification.Title,
			Body:  notification.Body,
		},
		Data: notification.Data,
	}

	response, err := c.messagingClient.Send(ctx, message)
	if err != nil {
		return "", fmt.Errorf("failed to send FCM message to topic %s: %w", topic, err)
	}

	log.Printf("[FCM] Message sent to topic %s: %s", topic, response)
	return response, nil
}

// TruncateToken shortens a device token for logging. Tokens are
// credentials and must never appear whole in logs.
func TruncateToken(token string) string {
	if len(token) <= 10 {
		return token
	}
	return token[:10] + "..."
}
