package mq

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProducer 立即回执，或在 block 为 true 时从不回执
type fakeProducer struct {
	mu          sync.Mutex
	produceErr  error
	deliveryErr error
	block       bool
	sent        []*kafka.Message
}

func (p *fakeProducer) Produce(msg *kafka.Message, ch chan kafka.Event) error {
	if p.produceErr != nil {
		return p.produceErr
	}
	p.mu.Lock()
	p.sent = append(p.sent, msg)
	p.mu.Unlock()
	if !p.block {
		out := *msg
		out.TopicPartition.Error = p.deliveryErr
		ch <- &out
	}
	return nil
}

func TestSend(t *testing.T) {
	p := &fakeProducer{}
	job := &Job{Topic: "cpi", Partition: 1, Key: []byte("k"), Value: []byte("v")}
	require.NoError(t, Send(context.Background(), p, job, time.Second))
	require.Len(t, p.sent, 1)
	assert.Equal(t, "cpi", *p.sent[0].TopicPartition.Topic)
	assert.Equal(t, int32(1), p.sent[0].TopicPartition.Partition)
	assert.Equal(t, []byte("v"), p.sent[0].Value)
}

func TestSendErrors(t *testing.T) {
	job := &Job{Topic: "cpi"}
	boom := errors.New("boom")

	err := Send(context.Background(), &fakeProducer{produceErr: boom}, job, time.Second)
	assert.ErrorIs(t, err, boom)

	err = Send(context.Background(), &fakeProducer{deliveryErr: boom}, job, time.Second)
	assert.ErrorIs(t, err, boom)

	err = Send(context.Background(), &fakeProducer{block: true}, job, 10*time.Millisecond)
	assert.ErrorContains(t, err, "delivery timeout")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = Send(ctx, &fakeProducer{block: true}, job, time.Second)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSendJobs(t *testing.T) {
	p := &fakeProducer{}
	jobs := []*Job{{Topic: "a"}, {Topic: "b"}}
	ok, failed := SendJobs(context.Background(), p, jobs[:1], time.Second)
	assert.Len(t, ok, 1)
	assert.Empty(t, failed)

	ok, failed = SendJobs(context.Background(), &fakeProducer{produceErr: errors.New("x")}, jobs, time.Second)
	assert.Empty(t, ok)
	assert.Len(t, failed, 2)
}

// 需要本地 Kafka，连接失败时跳过
func TestSend_RealKafka(t *testing.T) {
	producer, err := kafka.NewProducer(&kafka.ConfigMap{
		"bootstrap.servers":        "127.0.0.1:9092",
		"client.id":                "dex-cpi-sol-test",
		"acks":                     "all",
		"message.timeout.ms":       3000,
		"allow.auto.create.topics": true,
	})
	require.NoError(t, err)
	defer producer.Close()

	if _, err := producer.GetMetadata(nil, false, 1000); err != nil {
		t.Skipf("kafka 不可用: %v", err)
	}

	err = Send(context.Background(), producer, &Job{Topic: "dex-cpi-test", Partition: kafka.PartitionAny, Value: []byte("ping")}, 5*time.Second)
	assert.NoError(t, err)
}
