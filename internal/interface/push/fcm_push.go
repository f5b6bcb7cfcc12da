package push

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/copipaste/agencia-SGE/internal/domain/repository"
	"github.com/copipaste/agencia-SGE/pkg/logger"

	"golang.org/x/oauth2"
)

// FcmPushRepository sends push notifications through the FCM HTTP v1 API
type FcmPushRepository struct {
	logger      logger.Logger
	projectID   string
	tokenSource oauth2.TokenSource
	client      *http.Client
}

// NewFcmPushRepository creates a new FCM push sender
func NewFcmPushRepository(projectID string, tokenSource oauth2.TokenSource, logger logger.Logger) repository.PushRepository {
	return &FcmPushRepository{
		logger:      logger,
		projectID:   projectID,
		tokenSource: tokenSource,
		client:      &http.Client{Timeout: 30 * time.Second},
	}
}

type fcmMessage struct {
	Message struct {
		Token        string            `json:"token"`
		Notification fcmNotification   `json:"notification"`
		Data         map[string]string `json:"data,omitempty"`
		Android      fcmAndroidConfig  `json:"android"`
	} `json:"message"`
}

type fcmNotification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type fcmAndroidConfig struct {
	Priority     string `json:"priority"`
	Notification struct {
		Sound     string `json:"sound"`
		ChannelID string `json:"channel_id"`
	} `json:"notification"`
}

// SendPush sends a notification to a single device token
func (r *FcmPushRepository) SendPush(ctx context.Context, token, title, body string, data map[string]string) error {
	if token == "" {
		r.logger.Debug("Skipping push: no device token registered")
		return nil
	}

	var msg fcmMessage
	msg.Message.Token = token
	msg.Message.Notification = fcmNotification{Title: title, Body: body}
	msg.Message.Data = data
	msg.Message.Android.Priority = "HIGH"
	msg.Message.Android.Notification.Sound = "default"
	msg.Message.Android.Notification.ChannelID = "ventas_channel"

	jsonData, err := json.Marshal(&msg)
	if err != nil {
		return fmt.Errorf("failed to marshal push message: %w", err)
	}

	oauthToken, err := r.tokenSource.Token()
	if err != nil {
		return fmt.Errorf("failed to get oauth token: %w", err)
	}

	url := fmt.Sprintf("https://fcm.googleapis.com/v1/projects/%s/messages:send", r.projectID)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+oauthToken.AccessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send push: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var errorBody map[string]interface{}
		json.NewDecoder(resp.Body).Decode(&errorBody)
		return fmt.Errorf("FCM returned status %d: %v", resp.StatusCode, errorBody)
	}

	r.logger.Info("Push notification sent", "title", title)
	return nil
}
