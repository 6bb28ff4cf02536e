// Package feed republishes synthetic numeric data to a public MQTT broker
// for the dashboard's live chart.
package feed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/go-co-op/gocron"
)

// PublisherConfig holds the broker connection and publish settings.
type PublisherConfig struct {
	Broker   string
	ClientID string
	Topic    string
	Interval time.Duration
	Enabled  bool
}

// Publisher periodically publishes a random integer 0-99 as a string payload
// to a single topic at QoS 0. Reconnects are left to the paho client.
type Publisher struct {
	client    mqtt.Client
	scheduler *gocron.Scheduler
	topic     string
	interval  time.Duration
	enabled   bool
}

// NewPublisher connects to the broker and prepares the publish schedule.
// A disabled config yields a no-op publisher.
func NewPublisher(cfg PublisherConfig) (*Publisher, error) {
	if !cfg.Enabled {
		return &Publisher{enabled: false}, nil
	}

	opts := mqtt.NewClientOptions().
		AddBroker(cfg.Broker).
		SetClientID(cfg.ClientID).
		SetCleanSession(true).
		SetAutoReconnect(true).
		SetConnectRetry(true).
		SetConnectRetryInterval(5 * time.Second).
		SetConnectionLostHandler(func(c mqtt.Client, err error) {
			log.Printf("feed: MQTT connection lost: %v", err)
		}).
		SetOnConnectHandler(func(c mqtt.Client) {
			log.Printf("feed: MQTT connected to %s", cfg.Broker)
		})

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("connect to MQTT broker: %w", token.Error())
	}

	interval := cfg.Interval
	if interval <= 0 {
		interval = time.Second
	}

	return &Publisher{
		client:    client,
		scheduler: gocron.NewScheduler(time.UTC),
		topic:     cfg.Topic,
		interval:  interval,
		enabled:   true,
	}, nil
}

// Start begins the periodic publish job.
func (p *Publisher) Start() error {
	if !p.enabled {
		log.Println("feed: publisher disabled; nothing to schedule")
		return nil
	}

	_, err := p.scheduler.Every(p.interval).Do(p.publishOnce)
	if err != nil {
		return err
	}

	p.scheduler.StartAsync()
	return nil
}

func (p *Publisher) publishOnce() {
	if !p.client.IsConnected() {
		// Auto-reconnect is in flight; skip this tick instead of queueing.
		return
	}

	payload := fmt.Sprintf("%d", rand.Intn(100))
	token := p.client.Publish(p.topic, 0, false, payload)
	token.Wait()
	if token.Error() != nil {
		log.Printf("feed: publish to %s failed: %v", p.topic, token.Error())
	}
}

// Stop halts the schedule and disconnects from the broker.
func (p *Publisher) Stop() {
	if !p.enabled {
		return
	}
	p.scheduler.Stop()
	p.client.Disconnect(1000)
}
