package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"twa-backend/internal/notification"
	"twa-backend/pkg/config"
	"twa-backend/pkg/fcm"
)

// Interactive dispatcher: prompts for a township code, a title and a body,
// then publishes one notification to that township's weather topic.
func main() {
	cfg := config.Load()

	fcmClient, err := fcm.NewClient(cfg.FirebaseCredentials)
	if err != nil {
		log.Fatal("Failed to initialize FCM client:", err)
	}
	service := notification.NewService(fcmClient)

	fmt.Println("--- Send FCM topic notification ---")
	reader := bufio.NewReader(os.Stdin)

	townshipCode := prompt(reader, "Target township code (e.g. TPE-100): ")
	if townshipCode == "" {
		fmt.Println("Township code must not be empty.")
		os.Exit(1)
	}

	title := prompt(reader, "Notification title: ")
	if title == "" {
		fmt.Println("Notification title must not be empty.")
		os.Exit(1)
	}

	body := prompt(reader, "Notification body: ")
	if body == "" {
		fmt.Println("Notification body must not be empty.")
		os.Exit(1)
	}

	messageID, err := service.SendWeatherAlert(context.Background(), townshipCode, title, body)
	if err != nil {
		fmt.Printf("Failed to send notification: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Message sent successfully: %s\n", messageID)
}

func prompt(reader *bufio.Reader, question string) string {
	fmt.Print(question)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return ""
	}
	return strings.TrimSpace(line)
}
