package main

import (
	"context"
	"log"

	api "twa-backend/cmd/api"
	fcmRepo "twa-backend/internal/fcm/repository"
	fcmUsecase "twa-backend/internal/fcm/usecase"
	"twa-backend/pkg/config"
	"twa-backend/pkg/fcm"
	"twa-backend/pkg/firestore"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize FCM client (topic subscriptions)
	fcmClient, err := fcm.NewClient(cfg.FirebaseCredentials)
	if err != nil {
		log.Fatal("Failed to initialize FCM client:", err)
	}

	// Initialize Firestore client (subscription records)
	ctx := context.Background()
	firestoreClient, err := firestore.NewClient(ctx, cfg.FirestoreProjectID, cfg.FirebaseCredentials)
	if err != nil {
		log.Fatal("Failed to initialize Firestore client:", err)
	}
	defer firestoreClient.Close()

	// Initialize repository and use case (dependency injection)
	subscriptionRepo := fcmRepo.NewFirestoreSubscriptionRepository(firestoreClient, cfg.FirestoreCollection)
	fcmUsecaseInstance := fcmUsecase.NewFCMUsecase(fcmClient, subscriptionRepo)

	// Initialize HTTP handler
	handler := api.NewHandler(fcmUsecaseInstance, cfg)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
