package messaging

import (
	"encoding/json"
	"time"

	"marketplace/internal/config"

	"github.com/IBM/sarama"
)

// KafkaProducer Kafka生产者结构
type KafkaProducer struct {
	cfg      config.KafkaConfig
	producer sarama.SyncProducer
}

// NewKafkaProducer 创建新的Kafka生产者
func NewKafkaProducer(cfg config.KafkaConfig) (*KafkaProducer, error) {
	// 配置Sarama
	saramaConfig := sarama.NewConfig()
	saramaConfig.Version = sarama.V2_8_1_0                 // 使用Kafka 2.8.1
	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll // 等待所有副本确认
	saramaConfig.Producer.Retry.Max = 5                    // 重试次数
	saramaConfig.Producer.Return.Successes = true

	producer, err := sarama.NewSyncProducer(cfg.Brokers, saramaConfig)
	if err != nil {
		return nil, err
	}

	return &KafkaProducer{
		cfg:      cfg,
		producer: producer,
	}, nil
}

// Close 关闭Kafka生产者
func (k *KafkaProducer) Close() error {
	return k.producer.Close()
}

// 事件类型常量
const (
	EventTypeVendorApproved   = "vendor.approved"
	EventTypeVendorRejected   = "vendor.rejected"
	EventTypeVendorBlocked    = "vendor.blocked"
	EventTypeVendorUnblocked  = "vendor.unblocked"
	EventTypeProductBlocked   = "product.blocked"
	EventTypeProductUnblocked = "product.unblocked"
	EventTypeOrderCreated     = "order.created"
)

// MessageEvent Kafka消息事件结构
type MessageEvent struct {
	Type      string      `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// VendorReviewPayload 商家审核事件载荷
type VendorReviewPayload struct {
	VendorID    string `json:"vendorId"`
	ShopName    string `json:"shopName"`
	AdminUserID string `json:"adminUserId"`
	Action      string `json:"action"`
	Reason      string `json:"reason"`
}

// ProductReviewPayload 商品封禁事件载荷
type ProductReviewPayload struct {
	ProductID   string `json:"productId"`
	VendorID    string `json:"vendorId"`
	Name        string `json:"name"`
	AdminUserID string `json:"adminUserId"`
	Action      string `json:"action"`
	Reason      string `json:"reason"`
}

// OrderCreatedPayload 订单创建事件载荷
type OrderCreatedPayload struct {
	OrderID     string `json:"orderId"`
	UserID      string `json:"userId"`
	PaymentMode string `json:"paymentMode"`
	ItemNames   string `json:"itemNames"`
	ItemCount   int    `json:"itemCount"`
}

// Publish 发布事件到Kafka
func (k *KafkaProducer) Publish(eventType string, payload interface{}) error {
	event := MessageEvent{
		Type:      eventType,
		Timestamp: time.Now(),
		Payload:   payload,
	}

	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := &sarama.ProducerMessage{
		Topic: k.cfg.Topic,
		Key:   sarama.StringEncoder(eventType),
		Value: sarama.ByteEncoder(data),
	}

	_, _, err = k.producer.SendMessage(msg)
	return err
}
