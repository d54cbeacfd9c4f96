package notify

import (
	"context"
	"fmt"
	"strings"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/go-redis/redis/v8"
)

// Subject is the fixed subject line of every notification.
const Subject = "NBA Game Updates"

// Publisher delivers one notification to a topic.
type Publisher interface {
	Publish(ctx context.Context, subject, message string) error
}

// NewForTopic picks the transport from the topic identifier: redis:// URLs
// go to Redis Pub/Sub, anything else is treated as an SNS topic ARN.
func NewForTopic(ctx context.Context, topic string) (Publisher, error) {
	if strings.HasPrefix(topic, "redis://") || strings.HasPrefix(topic, "rediss://") {
		opts, channel, err := parseRedisTopic(topic)
		if err != nil {
			return nil, err
		}
		return NewRedisPublisher(redis.NewClient(opts), channel), nil
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return NewSNSPublisher(sns.NewFromConfig(cfg), topic), nil
}
