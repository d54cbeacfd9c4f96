package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/sawdustofmind/nba-scores-relay/internal/log"
)

const defaultRedisChannel = "nba.game.updates"

type redisClient interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
	Close() error
}

// RedisPublisher sends notifications to a Redis Pub/Sub channel.
type RedisPublisher struct {
	client  redisClient
	channel string
}

// Envelope is the JSON payload published on the Redis channel.
type Envelope struct {
	Subject     string    `json:"subject"`
	Message     string    `json:"message"`
	PublishedAt time.Time `json:"published_at"`
}

func NewRedisPublisher(client redisClient, channel string) *RedisPublisher {
	return &RedisPublisher{
		client:  client,
		channel: channel,
	}
}

func (p *RedisPublisher) Publish(ctx context.Context, subject, message string) error {
	payload, err := json.Marshal(Envelope{
		Subject:     subject,
		Message:     message,
		PublishedAt: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	receivers, err := p.client.Publish(ctx, p.channel, payload).Result()
	if err != nil {
		return fmt.Errorf("failed to publish to redis channel %s: %w", p.channel, err)
	}

	if receivers == 0 {
		log.Warn("Message published to Redis without subscribers", zap.String("channel", p.channel))
	} else {
		log.Info("Message published to Redis",
			zap.String("channel", p.channel),
			zap.Int64("receivers", receivers),
		)
	}
	return nil
}

func (p *RedisPublisher) Close() error {
	return p.client.Close()
}

// parseRedisTopic splits redis://host:port/db?channel=name into client
// options and the channel name.
func parseRedisTopic(topic string) (*redis.Options, string, error) {
	u, err := url.Parse(topic)
	if err != nil {
		return nil, "", fmt.Errorf("invalid redis topic: %w", err)
	}

	channel := u.Query().Get("channel")
	if channel == "" {
		channel = defaultRedisChannel
	}
	u.RawQuery = ""

	opts, err := redis.ParseURL(u.String())
	if err != nil {
		return nil, "", fmt.Errorf("invalid redis topic: %w", err)
	}
	return opts, channel, nil
}
