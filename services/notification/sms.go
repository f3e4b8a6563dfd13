package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"careplus/config"
	"careplus/services/user"
	"careplus/utils"

	"go.uber.org/zap"
)

// GatewaySMSService delivers SMS through an HTTP gateway. The recipient phone
// number is resolved from the user directory at send time so callers only
// need the user ID.
type GatewaySMSService struct {
	Users      user.UserService
	HTTPClient *http.Client
	GatewayURL string
	APIKey     string
	SenderID   string
}

// NewGatewaySMSService builds an SMS service from the loaded configuration.
func NewGatewaySMSService(userSvc user.UserService) (*GatewaySMSService, error) {
	if userSvc == nil {
		return nil, fmt.Errorf("sms service initialization error: user service is nil")
	}
	return &GatewaySMSService{
		Users:      userSvc,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
		GatewayURL: config.AppConfig.SMSGatewayURL,
		APIKey:     config.AppConfig.SMSGatewayKey,
		SenderID:   config.AppConfig.SMSSenderID,
	}, nil
}

type gatewayRequest struct {
	To      string `json:"to"`
	From    string `json:"from"`
	Message string `json:"message"`
}

// SendSMS looks up the user's phone number and posts the message to the
// gateway. With no gateway configured the message is logged instead, which
// keeps development environments working without a provider account.
func (s *GatewaySMSService) SendSMS(ctx context.Context, userID, body string) error {
	u, err := s.Users.GetUser(userID)
	if err != nil {
		return fmt.Errorf("SendSMS: could not find user %s: %w", userID, err)
	}
	if u.Phone == "" {
		return fmt.Errorf("SendSMS: user %s has no phone number", userID)
	}

	if s.GatewayURL == "" {
		utils.GetLogger().Sugar().Infof("SMS gateway not configured; would send to %s: %s", u.Phone, body)
		return nil
	}

	payload, err := json.Marshal(gatewayRequest{To: u.Phone, From: s.SenderID, Message: body})
	if err != nil {
		return fmt.Errorf("SendSMS: failed to marshal gateway request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.GatewayURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("SendSMS: failed to build gateway request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.APIKey)

	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("SendSMS: gateway request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("SendSMS: gateway rejected message with status %d", resp.StatusCode)
	}

	utils.GetLogger().Info("SMS dispatched",
		zap.String("userID", userID),
		zap.Int("status", resp.StatusCode))
	return nil
}
