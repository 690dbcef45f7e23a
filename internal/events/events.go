// Package events holds the payloads written to the outbox and consumed from Kafka.
package events

// Topics lists every topic the consumer subscribes to.
func Topics() []string {
	return []string{BookingLifecycleTopic, TaskLifecycleTopic}
}
