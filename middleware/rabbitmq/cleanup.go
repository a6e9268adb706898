package rabbitmq

import (
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

const cleanupQueueName = "queue.media_cleanup"

// CleanupQueue carries URLs of stored objects orphaned by a video
// deletion. One URL per message so a single bad object cannot block
// the rest.
type CleanupQueue struct {
	*WorkQueue
}

func NewCleanupQueue(conn *amqp.Connection) *CleanupQueue {
	return &CleanupQueue{NewWorkQueue(conn, cleanupQueueName, true)}
}

func (q *CleanupQueue) EnqueueRemoval(urls ...string) error {
	for _, url := range urls {
		if url == "" {
			continue
		}
		if err := q.Publish([]byte(url)); err != nil {
			return err
		}
	}
	return nil
}

// Run consumes the queue until the channel closes; failures are logged
// and the message dropped, the object stays reclaimable by hand.
func (q *CleanupQueue) Run(remove func(url string) error) {
	q.Consume(func(d amqp.Delivery) {
		url := string(d.Body)
		if err := remove(url); err != nil {
			log.Printf("failed to remove stored object %s, skipped, detail: %v\n", url, err)
		}
	})
}
