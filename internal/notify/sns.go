package notify

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"go.uber.org/zap"

	"github.com/sawdustofmind/nba-scores-relay/internal/log"
)

// SNSAPI is the subset of the SNS client the publisher needs.
type SNSAPI interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

type SNSPublisher struct {
	client   SNSAPI
	topicARN string
}

func NewSNSPublisher(client SNSAPI, topicARN string) *SNSPublisher {
	return &SNSPublisher{
		client:   client,
		topicARN: topicARN,
	}
}

func (p *SNSPublisher) Publish(ctx context.Context, subject, message string) error {
	out, err := p.client.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(p.topicARN),
		Subject:  aws.String(subject),
		Message:  aws.String(message),
	})
	if err != nil {
		return fmt.Errorf("failed to publish to SNS topic %s: %w", p.topicARN, err)
	}

	log.Info("Message published to SNS",
		zap.String("topic_arn", p.topicARN),
		zap.String("message_id", aws.ToString(out.MessageId)),
	)
	return nil
}
