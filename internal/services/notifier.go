package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log"
	"os"
	"strings"
	"time"

	"nutrialarm/internal/models"
	"nutrialarm/internal/repository"
	"nutrialarm/internal/settings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awssns "github.com/aws/aws-sdk-go-v2/service/sns"
	snstypes "github.com/aws/aws-sdk-go-v2/service/sns/types"
	"github.com/google/uuid"
)

// The two notification channels. Meal reminders are high importance, tips are
// default importance; the channel travels as a message attribute.
const (
	ChannelMealReminders = "meal_reminders"
	ChannelNutritionTips = "nutrition_tips"
)

// Notifier dispatches reminders to the user's devices. Delivery is best
// effort: a missing permission or a dead endpoint degrades, never fails the
// calling operation.
type Notifier interface {
	SendMealReminder(payload ReminderPayload)
	SendNutritionTip(userID, title, body string)
}

type SNSNotifier struct {
	devices  repository.DeviceRepository
	settings settings.Store
	sns      *awssns.Client
	platArn  string
}

func NewSNSNotifier(devices repository.DeviceRepository, st settings.Store) (*SNSNotifier, error) {
	region := os.Getenv("AWS_REGION")
	if region == "" {
		region = "us-east-1"
	}
	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(), awsconfig.WithRegion(region))
	if err != nil {
		return nil, err
	}
	return &SNSNotifier{
		devices:  devices,
		settings: st,
		sns:      awssns.NewFromConfig(cfg),
		platArn:  os.Getenv("SNS_FCM_ARN"),
	}, nil
}

// RegisterDevice creates (or refreshes) the platform endpoint for a device
// token and stores its ARN against the user.
func (n *SNSNotifier) RegisterDevice(userID, platform, token string) (*models.UserDevice, error) {
	if n.platArn == "" {
		return nil, errors.New("SNS_FCM_ARN not set")
	}
	switch strings.ToLower(platform) {
	case "android", "ios":
	default:
		return nil, errors.New("unknown platform")
	}

	out, err := n.sns.CreatePlatformEndpoint(context.TODO(), &awssns.CreatePlatformEndpointInput{
		PlatformApplicationArn: aws.String(n.platArn),
		Token:                  aws.String(token),
	})
	if err != nil {
		return nil, err
	}

	sum := sha256.Sum256([]byte(token))
	dev := &models.UserDevice{
		ID:          uuid.NewString(),
		UserID:      userID,
		Platform:    strings.ToLower(platform),
		TokenHash:   hex.EncodeToString(sum[:]),
		EndpointARN: aws.ToString(out.EndpointArn),
		Enabled:     true,
		UpdatedAt:   time.Now(),
	}
	if err := n.devices.Upsert(dev); err != nil {
		return nil, err
	}
	return dev, nil
}

func (n *SNSNotifier) SendMealReminder(payload ReminderPayload) {
	title := payload.MealType.Label()
	body := payload.Message
	if body == "" {
		body = "Es hora de tu " + strings.ToLower(title)
	}
	n.publish(payload.UserID, ChannelMealReminders, "high", title, body, map[string]string{
		"meal_type": string(payload.MealType),
		"time":      payload.Time,
	})
}

func (n *SNSNotifier) SendNutritionTip(userID, title, body string) {
	n.publish(userID, ChannelNutritionTips, "default", title, body, nil)
}

func (n *SNSNotifier) publish(userID, channel, priority, title, body string, data map[string]string) {
	// Notifications ship enabled; an absent toggle means the user never
	// turned them off.
	enabled, err := n.settings.BoolDefault(settings.KeyNotificationsEnabled, true)
	if err != nil {
		log.Printf("Notifier: could not read notification toggle: %v", err)
	}
	if !enabled {
		return
	}

	endpoints, err := n.devices.FindEnabledByUserID(userID)
	if err != nil || len(endpoints) == 0 {
		return
	}

	msg := map[string]any{
		"default": body,
		"GCM": map[string]any{
			"notification": map[string]string{
				"title": title,
				"body":  body,
			},
			"data": data,
		},
	}
	raw, _ := json.Marshal(msg)

	attrs := map[string]snstypes.MessageAttributeValue{
		"channel":  {DataType: aws.String("String"), StringValue: aws.String(channel)},
		"priority": {DataType: aws.String("String"), StringValue: aws.String(priority)},
	}

	for _, d := range endpoints {
		_, err := n.sns.Publish(context.TODO(), &awssns.PublishInput{
			MessageStructure:  aws.String("json"),
			Message:           aws.String(string(raw)),
			TargetArn:         aws.String(d.EndpointARN),
			MessageAttributes: attrs,
		})
		if err != nil {
			log.Printf("Notifier: publish to endpoint failed for user %s: %v", userID, err)
		}
	}
}
