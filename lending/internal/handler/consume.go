package handler

import (
	"context"
	"encoding/json"

	"github.com/IBM/sarama"
	"github.com/bookhive/lending-service/lending/internal/model"
	"go.uber.org/zap"
)

type loanMade func(ctx context.Context, msg model.LoanMadeMsg) error

// Consumer records published loan events into the audit trail.
type Consumer struct {
	loanMadeHandler loanMade
	log             *zap.Logger
}

func NewConsumer(loanMade loanMade, log *zap.Logger) *Consumer {
	return &Consumer{
		loanMadeHandler: loanMade,
		log:             log.Named("consumer"),
	}
}

// Setup runs at the start of every consumer-group session, including each
// session started by a rebalance.
func (consumer *Consumer) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

// Cleanup is run at the end of a session, once all ConsumeClaim goroutines have exited.
func (consumer *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (consumer *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				consumer.log.Warn("message channel was closed")
				return nil
			}
			var msg model.LoanMadeMsg
			if err := json.Unmarshal(message.Value, &msg); err != nil {
				consumer.log.Error("", zap.Error(err))
				session.MarkMessage(message, "")
				continue
			}

			if err := consumer.loanMadeHandler(context.Background(), msg); err != nil {
				consumer.log.Error("consumer.loanMadeHandler", zap.Error(err))
				continue
			}

			consumer.log.Debug("Message claimed:", zap.String("value", string(message.Value)), zap.Time("timestamp", message.Timestamp), zap.String("topic", message.Topic))
			session.MarkMessage(message, "")
		case <-session.Context().Done():
			return nil
		}
	}
}
