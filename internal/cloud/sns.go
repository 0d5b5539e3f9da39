package cloud

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/rs/zerolog/log"
)

// SNSClient wraps AWS SNS for alert notifications.
type SNSClient struct {
	svc      *sns.Client
	topicArn string
	ctx      context.Context
}

func NewSNSClient(region, topicArn string) (*SNSClient, error) {
	ctx := context.Background()

	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config: %w", err)
	}

	return &SNSClient{
		svc:      sns.NewFromConfig(cfg),
		topicArn: topicArn,
		ctx:      ctx,
	}, nil
}

func (c *SNSClient) sendAlert(subject, message string) error {
	input := &sns.PublishInput{
		TopicArn: aws.String(c.topicArn),
		Subject:  aws.String(subject),
		Message:  aws.String(message),
	}

	result, err := c.svc.Publish(c.ctx, input)
	if err != nil {
		return fmt.Errorf("failed to publish to SNS: %w", err)
	}

	log.Info().Str("message_id", aws.ToString(result.MessageId)).Msg("alert sent")
	return nil
}

// SendAnomalyAlert notifies operators about an anomalous sensor reading.
func (c *SNSClient) SendAnomalyAlert(assetID int64, sensorType string, value float64) error {
	subject := fmt.Sprintf("Maintenance Alert: Anomaly Detected on Asset %d", assetID)
	message := fmt.Sprintf(
		"Anomaly Detection Alert\n\n"+
			"Asset: %d\n"+
			"Sensor: %s\n"+
			"Value: %.2f\n"+
			"Time: %s\n\n"+
			"Please investigate immediately.",
		assetID,
		sensorType,
		value,
		time.Now().Format(time.RFC3339),
	)

	return c.sendAlert(subject, message)
}
