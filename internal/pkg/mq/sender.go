package mq

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
)

// Job 一条待发送的 Kafka 消息
type Job struct {
	Topic     string
	Partition int32
	Key       []byte
	Value     []byte
}

type SendResult struct {
	Job *Job
	Err error
}

// Producer 发送所需的最小接口，*kafka.Producer 满足该接口
type Producer interface {
	Produce(msg *kafka.Message, deliveryChan chan kafka.Event) error
}

// Send 发送单条消息并等待投递回执
func Send(ctx context.Context, producer Producer, job *Job, timeout time.Duration) error {
	deliveryChan := make(chan kafka.Event, 1)
	err := producer.Produce(&kafka.Message{
		TopicPartition: kafka.TopicPartition{
			Topic:     &job.Topic,
			Partition: job.Partition,
		},
		Key:   job.Key,
		Value: job.Value,
	}, deliveryChan)
	if err != nil {
		return fmt.Errorf("produce error: %w", err)
	}

	select {
	case e, ok := <-deliveryChan:
		if !ok {
			return errors.New("delivery channel closed unexpectedly")
		}
		msg, ok := e.(*kafka.Message)
		if !ok {
			return fmt.Errorf("invalid message type: %T", e)
		}
		return msg.TopicPartition.Error
	case <-time.After(timeout):
		go safeDrain(deliveryChan)
		return fmt.Errorf("delivery timeout (>%v)", timeout)
	case <-ctx.Done():
		go safeDrain(deliveryChan)
		return fmt.Errorf("ctx cancelled: %w", ctx.Err())
	}
}

// SendJobs 并发发送多条消息，返回成功与失败列表
func SendJobs(ctx context.Context, producer Producer, jobs []*Job, perMessageTimeout time.Duration) (ok []*Job, failed []SendResult) {
	var wg sync.WaitGroup
	resultCh := make(chan SendResult, len(jobs))

	for _, job := range jobs {
		wg.Add(1)
		go func(job *Job) {
			defer wg.Done()
			resultCh <- SendResult{Job: job, Err: Send(ctx, producer, job, perMessageTimeout)}
		}(job)
	}

	go func() {
		wg.Wait()
		close(resultCh)
	}()

	for res := range resultCh {
		if res.Err != nil {
			failed = append(failed, res)
		} else {
			ok = append(ok, res.Job)
		}
	}
	return ok, failed
}

// safeDrain 确保 deliveryChan 被读走，避免 librdkafka 回调阻塞
func safeDrain(ch <-chan kafka.Event) {
	defer func() {
		_ = recover()
	}()
	select {
	case <-ch:
	case <-time.After(2 * time.Second):
	}
}
