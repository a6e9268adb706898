package rabbitmq

import (
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

func NewRmqConnection(uri string) *amqp.Connection {
	conn, err := amqp.Dial(uri)
	if err != nil {
		log.Panicf("failed to connect target MQ, detail: %s", err)
	}
	return conn
}

type WorkQueue struct {
	Channel *amqp.Channel
	Que     amqp.Queue
}

func NewWorkQueue(conn *amqp.Connection, queueName string, isDurable bool) *WorkQueue {
	channel, err := conn.Channel()
	if err != nil {
		log.Panicf("failed to open a channel from RabbitMQ connection, detail: %s", err)
	}

	q, err := channel.QueueDeclare(
		queueName,
		isDurable,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		log.Panicf("failed to declare queue[%s], detail: %s", queueName, err)
	}

	return &WorkQueue{
		Channel: channel,
		Que:     q,
	}
}

func (q *WorkQueue) Publish(data []byte) error {
	return q.Channel.Publish(
		"", // use default exchange
		q.Que.Name,
		false,
		false,
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "text/plain",
			Body:         data,
		},
	)
}

func (q *WorkQueue) Consume(handler func(amqp.Delivery)) {
	msgs, err := q.Channel.Consume(
		q.Que.Name,
		"",
		false,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		log.Panicf("failed to consume from queue[%s], detail: %s", q.Que.Name, err)
	}

	for d := range msgs {
		handler(d)
		d.Ack(false)
	}
}

func (q *WorkQueue) Close() error {
	return q.Channel.Close()
}
