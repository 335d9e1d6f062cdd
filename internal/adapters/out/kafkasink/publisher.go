// Package kafkasink publishes exported training tables to a Kafka topic, one
// message per row keyed by order id.
package kafkasink

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"orderfeatures/internal/core/domain/model/features"

	"github.com/segmentio/kafka-go"
)

// DefaultBatchSize is the number of messages written per WriteMessages call.
const DefaultBatchSize = 500

// HeaderRunID carries the export run id on every message.
const HeaderRunID = "run_id"

// messageWriter abstracts kafka.Writer for testability.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// RowMessage is the JSON value of one message.
type RowMessage struct {
	RunID                  string   `json:"run_id"`
	OrderID                string   `json:"order_id"`
	WaitTime               float64  `json:"wait_time"`
	ExpectedWaitTime       float64  `json:"expected_wait_time"`
	DelayVsExpected        float64  `json:"delay_vs_expected"`
	OrderStatus            string   `json:"order_status"`
	OrderPurchaseTimestamp string   `json:"order_purchase_timestamp"`
	ReviewScore            int      `json:"review_score"`
	DimIsFiveStar          int      `json:"dim_is_five_star"`
	DimIsOneStar           int      `json:"dim_is_one_star"`
	NumberOfItems          int      `json:"number_of_items"`
	NumberOfSellers        int      `json:"number_of_sellers"`
	Price                  float64  `json:"price"`
	FreightValue           float64  `json:"freight_value"`
	DistanceSellerCustomer *float64 `json:"distance_seller_customer,omitempty"`
}

// Publisher writes training rows to Kafka.
type Publisher struct {
	writer    messageWriter
	batchSize int
}

// NewPublisher creates a Kafka publisher.
// brokers can be a comma-separated list of host:port.
func NewPublisher(brokers string, topic string) *Publisher {
	var addrs []string
	for _, a := range strings.Split(brokers, ",") {
		a = strings.TrimSpace(a)
		if a != "" {
			addrs = append(addrs, a)
		}
	}
	return &Publisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(addrs...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
			Async:        false,
		},
		batchSize: DefaultBatchSize,
	}
}

// NewPublisherWith is only for tests to inject a fake writer.
func NewPublisherWith(w messageWriter, batchSize int) *Publisher {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	return &Publisher{writer: w, batchSize: batchSize}
}

// Publish sends every row of the run. Rows of one order always land on the
// same partition.
func (p *Publisher) Publish(ctx context.Context, run features.ExportRun) error {
	runID := run.ID.String()
	batch := make([]kafka.Message, 0, min(p.batchSize, len(run.Table.Rows)))

	for _, row := range run.Table.Rows {
		value, err := json.Marshal(toMessage(runID, row))
		if err != nil {
			return fmt.Errorf("marshal: %w", err)
		}

		batch = append(batch, kafka.Message{
			Key:     []byte(row.OrderID),
			Value:   value,
			Headers: []kafka.Header{{Key: HeaderRunID, Value: []byte(runID)}},
			Time:    run.CreatedAt,
		})

		if len(batch) == p.batchSize {
			if err = p.writer.WriteMessages(ctx, batch...); err != nil {
				return err
			}
			batch = batch[:0]
		}
	}

	if len(batch) > 0 {
		return p.writer.WriteMessages(ctx, batch...)
	}
	return nil
}

// Close closes the underlying writer when it supports closing.
func (p *Publisher) Close() error {
	if c, ok := p.writer.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func toMessage(runID string, row features.OrderFeatureRow) RowMessage {
	return RowMessage{
		RunID:                  runID,
		OrderID:                row.OrderID,
		WaitTime:               row.WaitTime,
		ExpectedWaitTime:       row.ExpectedWaitTime,
		DelayVsExpected:        row.DelayVsExpected,
		OrderStatus:            row.OrderStatus,
		OrderPurchaseTimestamp: row.OrderPurchaseTimestamp.Format(time.RFC3339),
		ReviewScore:            row.ReviewScore,
		DimIsFiveStar:          row.DimIsFiveStar,
		DimIsOneStar:           row.DimIsOneStar,
		NumberOfItems:          row.NumberOfItems,
		NumberOfSellers:        row.NumberOfSellers,
		Price:                  row.Price,
		FreightValue:           row.FreightValue,
		DistanceSellerCustomer: row.DistanceSellerCustomer,
	}
}
