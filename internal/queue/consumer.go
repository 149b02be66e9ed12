// Package queue also contains the background consumer that listens to the
// audit.recorded queue and appends structured lines to logs/audit.log.
package queue

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const auditQueueName = "audit.recorded"

// BrokerURL resolves the AMQP connection string from the environment.  An
// empty string means the broker integration is disabled.
func BrokerURL() string {
	if url := os.Getenv("RABBITMQ_URL"); url != "" {
		return url
	}
	return os.Getenv("AMQP_URL")
}

// StartAuditConsumer connects to RabbitMQ, declares the audit.recorded
// queue (durable) and starts consuming messages.  Each message becomes one
// line in logs/audit.log.  The function runs a reconnect loop with capped
// backoff and keeps the server operating through broker outages; failed
// messages are rejected without requeue so a poison payload cannot wedge
// the queue.
func StartAuditConsumer() {
	url := BrokerURL()
	if url == "" {
		log.Printf("audit-consumer: no broker configured, consumer disabled")
		return
	}

	backoff := time.Second
	for {
		conn, err := amqp.Dial(url)
		if err != nil {
			log.Printf("audit-consumer: dial failed: %v; retrying in %s", err, backoff)
			time.Sleep(backoff)
			if backoff < 30*time.Second {
				backoff *= 2
			}
			continue
		}
		backoff = time.Second // reset after a successful connect

		if err := consumeLoop(conn); err != nil {
			log.Printf("audit-consumer: consume loop ended: %v; reconnecting", err)
		}
		_ = conn.Close()
		time.Sleep(2 * time.Second)
	}
}

func consumeLoop(conn *amqp.Connection) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("channel open: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(50, 0, false); err != nil {
		log.Printf("audit-consumer: set QoS failed: %v", err)
	}

	if _, err := ch.QueueDeclare(auditQueueName, true, false, false, false, nil); err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}

	msgs, err := ch.Consume(auditQueueName, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("queue consume: %w", err)
	}

	for d := range msgs {
		if err := handleMessage(d.Body); err != nil {
			log.Printf("audit-consumer: handle message failed: %v", err)
			_ = d.Reject(false)
			continue
		}
		_ = d.Ack(false)
	}
	return fmt.Errorf("delivery channel closed")
}

// handleMessage appends one human-readable line per event to
// logs/audit.log, creating the directory on first use.
func handleMessage(body []byte) error {
	var e AuditRecordedEvent
	if err := json.Unmarshal(body, &e); err != nil {
		return fmt.Errorf("unmarshal event: %w", err)
	}

	if err := os.MkdirAll("logs", 0o755); err != nil {
		return fmt.Errorf("create logs dir: %w", err)
	}
	f, err := os.OpenFile(filepath.Join("logs", "audit.log"), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open audit log: %w", err)
	}
	defer func() { _ = f.Close() }()

	line := fmt.Sprintf("%s action=%s user=%s query=%q results=%d\n",
		e.RecordedAt, e.Acao, orDash(e.UsuarioID), e.Consulta, e.Resultados)
	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("append audit log: %w", err)
	}
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
