package usecase

import (
	"context"
	"log"

	fcmdomain "twa-backend/internal/fcm/domain"
	"twa-backend/internal/fcm/repository"
	"twa-backend/pkg/fcm"
)

// TopicMessaging is the messaging-platform capability the reconciliation
// routine depends on. *fcm.Client satisfies it; tests inject fakes.
type TopicMessaging interface {
	SubscribeToTopic(ctx context.Context, token, topic string) error
	UnsubscribeFromTopic(ctx context.Context, token, topic string) error
}

// FCMUsecase defines the registration reconciliation operation
type FCMUsecase interface {
	// Register brings FCM topic membership in line with the submitted
	// (fcmToken, townshipCode) pair and persists it. townshipCode may be
	// empty, meaning no township selected.
	Register(ctx context.Context, uid, fcmToken, townshipCode string) error
}

// fcmUsecase implements FCMUsecase interface
type fcmUsecase struct {
	messaging        TopicMessaging
	subscriptionRepo repository.SubscriptionRepository
}

// NewFCMUsecase creates a new instance of fcmUsecase
func NewFCMUsecase(messaging TopicMessaging, subscriptionRepo repository.SubscriptionRepository) FCMUsecase {
	return &fcmUsecase{
		messaging:        messaging,
		subscriptionRepo: subscriptionRepo,
	}
}

func (u *fcmUsecase) Register(ctx context.Context, uid, fcmToken, townshipCode string) error {
	if uid == "" || fcmToken == "" {
		return &ValidationError{Reason: "uid and fcmToken are required."}
	}

	old, err := u.subscriptionRepo.Get(ctx, uid)
	if err != nil {
		return err
	}

	oldToken, oldTownship := "", ""
	if old != nil {
		oldToken = old.FCMToken
		oldTownship = old.TownshipCode
	}

	// Same token and same township as last time: nothing to reconcile,
	// nothing to write.
	if old != nil && oldToken == fcmToken && oldTownship == townshipCode {
		log.Printf("[Registration] No change for uid %s, skipping update", uid)
		return nil
	}

	// Drop the old membership first. The old token may already be expired
	// or invalid, so a failure here must not block the new subscription.
	if oldToken != "" && oldTownship != "" {
		oldTopic := fcmdomain.WeatherTopic(oldTownship)
		if err := u.messaging.UnsubscribeFromTopic(ctx, oldToken, oldTopic); err != nil {
			log.Printf("[Registration] Ignoring unsubscribe failure for uid %s (token %s, topic %s): %v",
				uid, fcm.TruncateToken(oldToken), oldTopic, err)
		}
	}

	if townshipCode != "" {
		topic := fcmdomain.WeatherTopic(townshipCode)
		if err := u.messaging.SubscribeToTopic(ctx, fcmToken, topic); err != nil {
			return &SubscriptionError{Topic: topic, Err: err}
		}
	}

	record := &fcmdomain.SubscriptionRecord{
		UID:          uid,
		FCMToken:     fcmToken,
		TownshipCode: townshipCode,
	}
	if err := u.subscriptionRepo.Save(ctx, record); err != nil {
		return &PersistenceError{Err: err}
	}

	log.Printf("[Registration] Updated subscription for uid %s (token %s, township %q)",
		uid, fcm.TruncateToken(fcmToken), townshipCode)
	return nil
}
