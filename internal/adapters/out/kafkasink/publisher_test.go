package kafkasink

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"orderfeatures/internal/core/domain/model/features"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeKafkaWriter struct {
	calls int
	msgs  []kafka.Message
	err   error
}

func (f *fakeKafkaWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	f.calls++
	if f.err != nil {
		return f.err
	}
	f.msgs = append(f.msgs, msgs...)
	return nil
}

func runWithRows(n int) features.ExportRun {
	rows := make([]features.OrderFeatureRow, 0, n)
	for i := range n {
		rows = append(rows, features.OrderFeatureRow{
			OrderID:                fmt.Sprintf("O%d", i),
			OrderStatus:            "delivered",
			OrderPurchaseTimestamp: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
			NumberOfItems:          1,
			NumberOfSellers:        1,
		})
	}
	return features.NewExportRun(features.TrainingTable{Rows: rows}, true, time.Now())
}

func TestPublisher_Publish_KeysByOrderID(t *testing.T) {
	fw := &fakeKafkaWriter{}
	p := NewPublisherWith(fw, 10)
	run := runWithRows(2)

	err := p.Publish(t.Context(), run)

	require.NoError(t, err)
	require.Len(t, fw.msgs, 2)
	assert.Equal(t, "O0", string(fw.msgs[0].Key))
	assert.Equal(t, HeaderRunID, fw.msgs[0].Headers[0].Key)
	assert.Equal(t, run.ID.String(), string(fw.msgs[0].Headers[0].Value))

	var got RowMessage
	require.NoError(t, json.Unmarshal(fw.msgs[1].Value, &got))
	assert.Equal(t, "O1", got.OrderID)
	assert.Equal(t, run.ID.String(), got.RunID)
	assert.Equal(t, "2020-01-01T00:00:00Z", got.OrderPurchaseTimestamp)
	assert.Nil(t, got.DistanceSellerCustomer)
}

func TestPublisher_Publish_Batches(t *testing.T) {
	fw := &fakeKafkaWriter{}
	p := NewPublisherWith(fw, 2)

	err := p.Publish(t.Context(), runWithRows(5))

	require.NoError(t, err)
	assert.Equal(t, 3, fw.calls)
	assert.Len(t, fw.msgs, 5)
}

func TestPublisher_Publish_EmptyRunWritesNothing(t *testing.T) {
	fw := &fakeKafkaWriter{}

	err := NewPublisherWith(fw, 0).Publish(t.Context(), runWithRows(0))

	require.NoError(t, err)
	assert.Zero(t, fw.calls)
}

func TestPublisher_Publish_WriterError(t *testing.T) {
	fw := &fakeKafkaWriter{err: errors.New("leader not available")}

	err := NewPublisherWith(fw, 1).Publish(t.Context(), runWithRows(3))

	require.EqualError(t, err, "leader not available")
	assert.Equal(t, 1, fw.calls)
}

func TestPublisher_Close_WithoutCloser(t *testing.T) {
	assert.NoError(t, NewPublisherWith(&fakeKafkaWriter{}, 1).Close())
}
