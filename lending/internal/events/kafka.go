package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/IBM/sarama"
	"github.com/bookhive/lending-service/lending/internal/model"
	"github.com/bookhive/lending-service/lending/internal/service"
	"github.com/bookhive/lending-service/pkg/breaker"
	"github.com/bookhive/lending-service/pkg/kafka"
	"go.uber.org/zap"
)

// KafkaSink publishes loan events to the loan-made topic. Publishing runs
// behind a circuit breaker so a down broker fails fast; the failure still
// propagates to the caller.
type KafkaSink struct {
	producer sarama.SyncProducer
	cb       breaker.CircuitBreaker
	log      *zap.Logger
}

var _ service.EventSink = (*KafkaSink)(nil)

func NewKafkaSink(producer sarama.SyncProducer, log *zap.Logger) *KafkaSink {
	const (
		recordLength     = 20
		timeout          = 30 * time.Second
		percentile       = 0.5
		recoveryRequests = 5
	)
	return &KafkaSink{
		producer: producer,
		cb:       breaker.New(recordLength, timeout, percentile, recoveryRequests),
		log:      log.Named("events"),
	}
}

func (s *KafkaSink) OnLoanMade(_ context.Context, msg model.LoanMadeMsg) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	pm := &sarama.ProducerMessage{Topic: kafka.LoanTopic, Value: sarama.StringEncoder(data)}
	if err := s.cb.Call(func() error {
		_, _, err := s.producer.SendMessage(pm)
		return err
	}); err != nil {
		s.log.Error("OnLoanMade", zap.String("loanUid", msg.LoanUid), zap.Error(err))
		return err
	}
	return nil
}
