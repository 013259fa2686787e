// Package queue carries the broker side of the appeal pipeline: the event
// payloads and the background consumer that turns them into an audit log.
package queue

// AppealQueueName is the durable queue both the publisher and the consumer
// declare; declaration is idempotent so either side may start first.
const AppealQueueName = "appeal.created"

// AppealCreatedEvent is published after an appeal row is stored. It carries
// enough for downstream consumers to log or notify without querying MySQL.
type AppealCreatedEvent struct {
	AppealID       uint64 `json:"appeal_id"`
	ReporterID     uint64 `json:"reporter_id"`
	AppealType     string `json:"appeal_type"`
	ReportedTarget string `json:"reported_target"`
	CreatedAt      string `json:"created_at"`
}
