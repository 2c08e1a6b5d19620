package consumers

import (
	"context"
	"log/slog"
	"time"

	"github.com/confluentinc/confluent-kafka-go/kafka"
	"github.com/spacesedan/annoflow/internal/annotator"
	"github.com/spacesedan/annoflow/internal/clients"
	"github.com/spacesedan/annoflow/internal/clients/kafka_client"
	"github.com/spacesedan/annoflow/internal/models"
	"github.com/spacesedan/annoflow/internal/utils"
)

var responseBuffer = utils.NewBatchBuffer[models.AnnotationResponse]()

// StartAnnotationConsumer reads annotation request batches, annotates each
// document with the given backend, and publishes the results. Request IDs
// already seen in Valkey are skipped. Results are flushed when the buffer
// fills or on the batch timeout tick.
func StartAnnotationConsumer(ctx context.Context, consumer *kafka.Consumer, backend annotator.Annotator) {
	iterator := kafka_client.NewKafkaMessageIterator(ctx, consumer)
	committer := kafka_client.NewCommitHandler(ctx, consumer)

	slog.Info("[AnnotationConsumer] Listening for annotation requests")

	ticker := time.NewTicker(utils.BATCH_TIMEOUT)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Warn("[AnnotationConsumer] Consumer shutting down...")
			publishResults(committer)
			return
		case <-ticker.C:
			publishResults(committer)
		default:
			msg, err := iterator.Next()
			if err != nil {
				utils.HandleConsumerError(err)
				continue
			}

			var requests []models.AnnotationRequest
			if err := utils.DeserializeFromJSON(msg.Value, &requests); err != nil {
				utils.HandleConsumerError(err)
				continue
			}
			if len(requests) == 0 {
				continue
			}

			trackBatch(requests, msg)

			for _, request := range requests {
				if clients.InitValkey().WasAnnotated(ctx, request.RequestID) {
					slog.Info("[AnnotationConsumer] Skipping already annotated request",
						slog.String("request_id", request.RequestID))
					continue
				}

				doc := models.Document{Text: request.Text, SourceName: request.SourceName}
				result, err := backend.Annotate(ctx, doc, request.AnalysisType)
				if err != nil {
					slog.Error("[AnnotationConsumer] Annotation failed",
						slog.String("request_id", request.RequestID),
						slog.String("analysis_type", request.AnalysisType.String()),
						slog.String("error", err.Error()))
					continue
				}

				responseBuffer.Add(models.AnnotationResponse{
					RequestID:    request.RequestID,
					SourceName:   request.SourceName,
					AnalysisType: request.AnalysisType,
					Result:       result,
				})
				clients.InitValkey().MarkAnnotated(ctx, request.RequestID)
			}

			if responseBuffer.Size() >= utils.BATCH_SIZE {
				publishResults(committer)
			}
		}
	}
}

// trackBatch records the carrying message under every request ID, so the
// offset still gets committed when some requests are deduped or fail and
// any one of the batch's responses makes it out.
func trackBatch(requests []models.AnnotationRequest, msg *kafka.Message) {
	for _, request := range requests {
		utils.TrackMessage(request.RequestID, msg)
	}
}

func publishResults(committer *kafka_client.KafkaCommitHandler) {
	if responseBuffer.Size() == 0 {
		return
	}
	responseBuffer.LogBatchProcessing("annotation-results")
	batch := responseBuffer.GetAndClear()
	if len(batch) == 0 {
		return
	}

	for i := 0; i < 3; i++ {
		err := kafka_client.PublishToKafka(kafka_client.KAFKA_TOPIC_ANNOTATION_RESULTS,
			batch[0].RequestID, batch)
		if err == nil {
			break
		}
		slog.Warn("[AnnotationConsumer] Batch publishing failed",
			slog.Int("attempt", i+1),
			slog.String("error", err.Error()))
		time.Sleep(2 * time.Second)
	}

	for _, response := range batch {
		trackedMsg, found := utils.GetMessageForRequest(response.RequestID)
		if !found {
			continue
		}
		if err := committer.Commit(trackedMsg); err != nil {
			slog.Warn("[AnnotationConsumer] Failed to commit offset",
				slog.String("error", err.Error()))
		}
	}
}
