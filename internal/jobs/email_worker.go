package jobs

import (
	"encoding/json"
	"fmt"
	"log"

	"katalog/pkg/rabbitmq"

	"github.com/streadway/amqp"
)

// Mailer delivers one email. The real mail client is an external
// collaborator; LogMailer stands in for it.
type Mailer interface {
	Send(to, subject, message string) error
}

// LogMailer writes the email to the log instead of sending it.
type LogMailer struct{}

// Send logs the email.
func (LogMailer) Send(to, subject, message string) error {
	log.Printf("Sending email to %s: subject=%q message=%q", to, subject, message)
	return nil
}

// StartEmailWorker consumes welcome email tasks from the queue and hands
// them to the mailer. Malformed payloads are dropped, delivery failures are
// returned so the message is requeued.
func StartEmailWorker(mq *rabbitmq.Client, mailer Mailer) error {
	return mq.ConsumeEmailTasks(func(msg amqp.Delivery) error {
		var task rabbitmq.EmailTask
		if err := json.Unmarshal(msg.Body, &task); err != nil {
			log.Printf("Dropping malformed email task %d: %v", msg.DeliveryTag, err)
			return nil
		}
		if err := mailer.Send(task.To, task.Subject, task.Message); err != nil {
			return fmt.Errorf("failed to send email to %s: %w", task.To, err)
		}
		return nil
	})
}
