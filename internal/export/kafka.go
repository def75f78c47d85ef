package export

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/IBM/sarama"
	"github.com/confluentinc/confluent-kafka-go/v2/kafka"

	"github.com/bitexhq/bitemetrics/internal/models"
)

// SaramaDestination publishes export artifacts to a Kafka topic on a local
// broker; the artifact name travels as the message key.
type SaramaDestination struct {
	producer sarama.SyncProducer
	topic    string
}

func NewSaramaDestination(cfg *models.Config) (*SaramaDestination, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	saramaConfig.Producer.Retry.Max = 5
	saramaConfig.Producer.Retry.Backoff = 100 * time.Millisecond
	saramaConfig.Producer.Return.Successes = true // must be true for SyncProducer
	saramaConfig.Net.DialTimeout = 30 * time.Second
	saramaConfig.Net.ReadTimeout = 30 * time.Second
	saramaConfig.Net.WriteTimeout = 30 * time.Second

	brokerList := strings.Split(cfg.KafkaBrokerList, ",")

	producer, err := sarama.NewSyncProducer(brokerList, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Sarama producer: %w", err)
	}

	log.Printf("Sarama producer created successfully with brokers %v", brokerList)
	return &SaramaDestination{producer: producer, topic: cfg.KafkaTopic}, nil
}

func (d *SaramaDestination) WriteFile(name string, data []byte) error {
	if d.producer == nil {
		return fmt.Errorf("Sarama producer is not initialized")
	}

	_, _, err := d.producer.SendMessage(&sarama.ProducerMessage{
		Topic: d.topic,
		Key:   sarama.StringEncoder(name),
		Value: sarama.ByteEncoder(data),
	})
	if err != nil {
		log.Printf("Failed to send %s to topic %s: %v", name, d.topic, err)
		return err
	}
	return nil
}

func (d *SaramaDestination) Close() error {
	if d.producer != nil {
		return d.producer.Close()
	}
	return nil
}

// ConfluentDestination publishes export artifacts through Confluent's client,
// used for SASL-secured cloud clusters.
type ConfluentDestination struct {
	producer *kafka.Producer
	topic    string
}

func NewConfluentDestination(cfg *models.Config) (*ConfluentDestination, error) {
	configMap := kafka.ConfigMap{
		"bootstrap.servers":       cfg.KafkaBrokerList,
		"security.protocol":       cfg.KafkaSecurityProtocol,
		"sasl.mechanisms":         cfg.KafkaSaslMechanism,
		"sasl.username":           cfg.KafkaSaslUsername,
		"sasl.password":           cfg.KafkaSaslPassword,
		"session.timeout.ms":      cfg.SessionTimeoutMs,
		"enable.idempotence":      true,
		"acks":                    "all",
		"retry.backoff.ms":        100,
		"socket.keepalive.enable": true,
	}

	producer, err := kafka.NewProducer(&configMap)
	if err != nil {
		return nil, fmt.Errorf("failed to create Confluent Kafka producer: %w", err)
	}

	// handle delivery reports in the background
	go func() {
		for e := range producer.Events() {
			switch ev := e.(type) {
			case *kafka.Message:
				if ev.TopicPartition.Error != nil {
					log.Printf("Failed to deliver message to %v: %v\n", ev.TopicPartition, ev.TopicPartition.Error)
				}
			}
		}
	}()

	return &ConfluentDestination{producer: producer, topic: cfg.KafkaTopic}, nil
}

func (d *ConfluentDestination) WriteFile(name string, data []byte) error {
	if d.producer == nil {
		return fmt.Errorf("Confluent Kafka producer is not initialized")
	}

	err := d.producer.Produce(&kafka.Message{
		TopicPartition: kafka.TopicPartition{Topic: &d.topic, Partition: kafka.PartitionAny},
		Key:            []byte(name),
		Value:          data,
	}, nil)
	if err != nil {
		log.Printf("Failed to produce %s to topic %s: %v", name, d.topic, err)
		return err
	}

	d.producer.Flush(1000)
	return nil
}

func (d *ConfluentDestination) Close() error {
	if d.producer != nil {
		d.producer.Close()
	}
	return nil
}
