package dto

// RegisterRequest is the body of POST /api/fcm/register. TownshipCode is
// nullable: the client sends null when the user has not picked a township.
type RegisterRequest struct {
	UID          string  `json:"uid"`
	FCMToken     string  `json:"fcmToken"`
	TownshipCode *string `json:"townshipCode"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
