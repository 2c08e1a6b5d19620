package kafka_client

import "time"

const (
	KAFKA_TOPIC_ANNOTATION_REQUESTS = "annotation-requests" // documents waiting for annotation
	KAFKA_TOPIC_ANNOTATION_RESULTS  = "annotation-results"  // annotated documents ready for export
)

const (
	MAX_RETRIES = 5
	RETRY_DELAY = 2 * time.Second
)
