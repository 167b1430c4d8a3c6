package delivery

import (
	"errors"
	"log"
	"net/http"
	"regexp"

	"twa-backend/internal/fcm/dto"
	"twa-backend/internal/fcm/usecase"
	"twa-backend/pkg/fcm"

	"github.com/gin-gonic/gin"
)

// townshipCodePattern matches codes like TPE-100. The same check exists in
// the web client; it is repeated here for callers that bypass the client.
var townshipCodePattern = regexp.MustCompile(`^[A-Z]{3}-\d{3}$`)

// FCMHandler handles FCM registration requests
type FCMHandler struct {
	fcmUsecase usecase.FCMUsecase
}

// NewFCMHandler creates a new instance of FCMHandler
func NewFCMHandler(fcmUsecase usecase.FCMUsecase) *FCMHandler {
	return &FCMHandler{
		fcmUsecase: fcmUsecase,
	}
}

// Register handles POST /api/fcm/register
func (h *FCMHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body"})
		return
	}

	if req.UID == "" || req.FCMToken == "" {
		log.Printf("[Registration] Incomplete request from %s: missing uid or fcmToken", c.ClientIP())
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: "uid and fcmToken are required."})
		return
	}

	townshipCode := ""
	if req.TownshipCode != nil {
		townshipCode = *req.TownshipCode
	}
	if townshipCode != "" && !townshipCodePattern.MatchString(townshipCode) {
		log.Printf("[Registration] Invalid townshipCode %q from %s", townshipCode, c.ClientIP())
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: "townshipCode must match the AAA-000 format."})
		return
	}

	log.Printf("[Registration] Request from %s: uid=%s, token=%s, township=%q",
		c.ClientIP(), req.UID, fcm.TruncateToken(req.FCMToken), townshipCode)

	if err := h.fcmUsecase.Register(c.Request.Context(), req.UID, req.FCMToken, townshipCode); err != nil {
		var validationErr *usecase.ValidationError
		if errors.As(err, &validationErr) {
			c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: validationErr.Reason})
			return
		}

		log.Printf("[Registration] Failed for uid %s: %v", req.UID, err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "FCM registration failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "FCM registration and topic subscription updated successfully"})
}
