package domain

import "time"

// SubscriptionRecord is the last accepted registration for a user: which
// device token the user registered and which township topic, if any, that
// token should be subscribed to. One record per uid, overwritten whole on
// every registration.
type SubscriptionRecord struct {
	UID          string    `json:"uid" firestore:"uid"`
	FCMToken     string    `json:"fcmToken" firestore:"fcmToken"`
	TownshipCode string    `json:"townshipCode" firestore:"townshipCode"`
	LastUpdated  time.Time `json:"lastUpdated" firestore:"lastUpdated,serverTimestamp"`
}

// WeatherTopic returns the FCM topic name for a township code.
func WeatherTopic(townshipCode string) string {
	return "weather_" + townshipCode
}
