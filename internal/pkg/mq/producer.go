package mq

import (
	"context"
	"fmt"
	"time"

	"dex-cpi-sol/internal/pkg/logger"
	"dex-cpi-sol/internal/pkg/utils"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
)

const (
	defaultBatchSize = 32 * 1024
	defaultLingerMs  = 5

	metadataTimeoutMs = 10000
	maxReplication    = 3
)

type TopicOption struct {
	Topic      string `json:"topic" yaml:"topic"`
	Partitions int    `json:"partitions" yaml:"partitions"`
}

type KafkaProducerOption struct {
	Brokers   string // 多个 broker 用英文逗号分隔
	BatchSize int    // 批处理大小（字节）
	LingerMs  int    // 批处理最大延迟（毫秒）

	Topics []TopicOption
}

// topicAdmin *kafka.AdminClient 中建 topic 用到的部分
type topicAdmin interface {
	GetMetadata(topic *string, allTopics bool, timeoutMs int) (*kafka.Metadata, error)
	CreateTopics(ctx context.Context, topics []kafka.TopicSpecification, options ...kafka.CreateTopicsAdminOption) ([]kafka.TopicResult, error)
}

// NewKafkaProducer 确认信封 topic 可用后创建生产者。
// 未带 deliveryChan 的回执与客户端错误由后台协程读取并记录。
func NewKafkaProducer(cfg KafkaProducerOption) (*kafka.Producer, error) {
	admin, err := kafka.NewAdminClient(&kafka.ConfigMap{"bootstrap.servers": cfg.Brokers})
	if err != nil {
		return nil, fmt.Errorf("failed to create admin client: %w", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	err = ensureTopics(ctx, admin, cfg.Topics)
	cancel()
	admin.Close()
	if err != nil {
		return nil, err
	}

	localIP, _ := utils.GetLocalIP()
	if localIP == "" {
		localIP = "unknown"
	}
	producer, err := kafka.NewProducer(producerConfig(cfg, "dex-cpi-sol-"+localIP))
	if err != nil {
		return nil, fmt.Errorf("failed to create producer: %w", err)
	}
	go drainEvents(producer.Events())
	return producer, nil
}

// ensureTopics 缺失的 topic 按配置创建；已存在但分区数不足时报错，
// 否则按配置分区数取模得到的分区会不存在
func ensureTopics(ctx context.Context, admin topicAdmin, topics []TopicOption) error {
	meta, err := admin.GetMetadata(nil, true, metadataTimeoutMs)
	if err != nil {
		return fmt.Errorf("failed to get metadata: %w", err)
	}
	replication := min(max(len(meta.Brokers), 1), maxReplication)

	var toCreate []kafka.TopicSpecification
	for _, t := range topics {
		want := max(t.Partitions, 1)
		if tm, ok := meta.Topics[t.Topic]; ok {
			if len(tm.Partitions) < want {
				return fmt.Errorf("topic %s has %d partitions, configured %d", t.Topic, len(tm.Partitions), want)
			}
			continue
		}
		spec := kafka.TopicSpecification{
			Topic:             t.Topic,
			NumPartitions:     want,
			ReplicationFactor: replication,
		}
		if replication > 1 {
			spec.Config = map[string]string{"min.insync.replicas": "2"}
		}
		toCreate = append(toCreate, spec)
	}
	logger.Infof("[MQ:ensureTopics] brokers=%d, replication=%d, create=%d", len(meta.Brokers), replication, len(toCreate))
	if len(toCreate) == 0 {
		return nil
	}

	results, err := admin.CreateTopics(ctx, toCreate)
	if err != nil {
		return fmt.Errorf("failed to create topics: %w", err)
	}
	for _, r := range results {
		if code := r.Error.Code(); code != kafka.ErrNoError && code != kafka.ErrTopicAlreadyExists {
			return fmt.Errorf("failed to create topic %s: %w", r.Topic, r.Error)
		}
	}
	return nil
}

func producerConfig(cfg KafkaProducerOption, clientID string) *kafka.ConfigMap {
	batchSize := cfg.BatchSize
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	lingerMs := cfg.LingerMs
	if lingerMs < 0 {
		lingerMs = defaultLingerMs
	}
	return &kafka.ConfigMap{
		"bootstrap.servers": cfg.Brokers,
		"client.id":         clientID,

		// 信封不允许重复或乱序
		"acks":                                  "all",
		"enable.idempotence":                    true,
		"max.in.flight.requests.per.connection": 5,

		"delivery.timeout.ms": 30000,
		"request.timeout.ms":  30000,
		"retries":             5,
		"retry.backoff.ms":    100,

		"batch.size":       batchSize,
		"linger.ms":        lingerMs,
		"compression.type": "none",

		"message.max.bytes": 1024 * 1024,
	}
}

// drainEvents 读取 Events() 直到关闭，返回投递失败的条数
func drainEvents(events <-chan kafka.Event) (failed int) {
	for e := range events {
		switch ev := e.(type) {
		case *kafka.Message:
			if ev.TopicPartition.Error != nil {
				failed++
				logger.Errorf("[MQ:drainEvents] 信封投递失败: partition=%d, err=%v", ev.TopicPartition.Partition, ev.TopicPartition.Error)
			}
		case kafka.Error:
			if ev.IsFatal() {
				logger.Errorf("[MQ:drainEvents] 生产者致命错误: %v", ev)
			} else {
				logger.Warnf("[MQ:drainEvents] 生产者错误: %v", ev)
			}
		}
	}
	return failed
}

// flusher *kafka.Producer 关闭时用到的部分
type flusher interface {
	Flush(timeoutMs int) int
	Close()
}

// CloseProducer 在 timeout 内尽量把队列中的信封发完再关闭，返回未发出的条数
func CloseProducer(p flusher, timeout time.Duration) int {
	deadline := time.Now().Add(timeout)
	remaining := 0
	for {
		left := time.Until(deadline)
		if left <= 0 {
			break
		}
		if remaining = p.Flush(int(min(left, time.Second).Milliseconds())); remaining == 0 {
			break
		}
	}
	if remaining > 0 {
		logger.Warnf("[MQ:CloseProducer] 关闭时仍有信封未发出: %d", remaining)
	}
	p.Close()
	return remaining
}
