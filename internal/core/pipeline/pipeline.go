// Package pipeline drives the ingestion of object-change notifications:
// fetch, extract, chunk, embed, and upsert, one document at a time.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"

	"github.com/markdave123-py/Indexa/internal/config"
	"github.com/markdave123-py/Indexa/internal/core"
	"github.com/markdave123-py/Indexa/internal/core/chunker"
	"github.com/markdave123-py/Indexa/internal/core/extract"
	"github.com/markdave123-py/Indexa/internal/models"
)

// Response is returned to the invoking environment once a batch completes.
type Response struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

// Pipeline holds the long-lived service clients, constructed once at
// startup and reused across batches. It keeps no per-document state.
type Pipeline struct {
	obj      core.ObjectClient
	embedder core.EmbeddingProvider
	index    core.VectorIndex
	cfg      *config.Config
}

func New(obj core.ObjectClient, embedder core.EmbeddingProvider, index core.VectorIndex, cfg *config.Config) *Pipeline {
	return &Pipeline{obj: obj, embedder: embedder, index: index, cfg: cfg}
}

// Handle processes one SQS batch. Each message body is an S3 event whose
// records are processed sequentially; a failed document aborts the batch
// (documents already written stay written, and idempotent ids make the
// redelivery safe) unless ContinueOnError is set, in which case the rest
// of the batch still runs and the first error is reported at the end.
func (p *Pipeline) Handle(ctx context.Context, event events.SQSEvent) (Response, error) {
	runID := uuid.NewString()
	log.Printf("[batch %s] received %d messages from SQS", runID, len(event.Records))

	processed := 0
	var firstErr error

	for _, msg := range event.Records {
		// The surrounding environment owns the wall-clock deadline; we
		// only consult it between documents.
		if err := ctx.Err(); err != nil {
			return Response{}, err
		}

		var s3Event events.S3Event
		if err := json.Unmarshal([]byte(msg.Body), &s3Event); err != nil {
			err = fmt.Errorf("parse notification body (message %s): %w", msg.MessageId, err)
			if !p.cfg.ContinueOnError {
				return Response{}, err
			}
			log.Printf("[batch %s] %v", runID, err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}

		for _, rec := range s3Event.Records {
			done, err := p.handleRecord(ctx, rec)
			if err != nil {
				if !p.cfg.ContinueOnError {
					return Response{}, err
				}
				if firstErr == nil {
					firstErr = err
				}
				continue
			}
			if done {
				processed++
			}
		}
	}

	if firstErr != nil {
		return Response{}, firstErr
	}

	log.Printf("[batch %s] done, processed %d files", runID, processed)
	return Response{
		StatusCode: 200,
		Body:       fmt.Sprintf("Successfully processed %d files", processed),
	}, nil
}

// handleRecord wraps ingestObject so every failure is logged with the
// offending document's locator before it propagates.
func (p *Pipeline) handleRecord(ctx context.Context, rec events.S3EventRecord) (bool, error) {
	bucket := rec.S3.Bucket.Name
	key := decodeKey(rec.S3.Object.Key)

	done, err := p.ingestObject(ctx, rec.EventName, bucket, key)
	if err != nil {
		log.Printf("Error processing file s3://%s/%s: %v", bucket, key, err)
	}
	return done, err
}

// ingestObject runs one document through the pipeline. It returns
// (false, nil) when a filtering predicate skips the record.
func (p *Pipeline) ingestObject(ctx context.Context, eventName, bucket, key string) (bool, error) {
	if reason, skip := skipReason(eventName, key); skip {
		log.Printf("Skipping s3://%s/%s: %s", bucket, key, reason)
		return false, nil
	}
	format, _ := extract.ParseFormat(extension(key))

	log.Printf("Processing file: s3://%s/%s", bucket, key)

	content, err := p.obj.GetFile(ctx, bucket, key)
	if err != nil {
		return false, err
	}
	if len(content) == 0 {
		log.Printf("Skipping s3://%s/%s: object is empty", bucket, key)
		return false, nil
	}
	log.Printf("File size: %d bytes", len(content))

	text, err := extract.Extract(content, format)
	if err != nil {
		return false, err
	}
	if strings.TrimSpace(text) == "" {
		log.Printf("Skipping s3://%s/%s: no extractable text", bucket, key)
		return false, nil
	}
	log.Printf("Extracted text length: %d characters", len(text))

	chunks, err := chunker.Split(text, p.cfg.ChunkSize, p.cfg.ChunkOverlap)
	if err != nil {
		return false, err
	}
	log.Printf("Split into %d chunks", len(chunks))

	records := make([]models.VectorRecord, 0, len(chunks))
	for i, chunk := range chunks {
		vec, err := p.embedder.EmbedText(ctx, chunk)
		if err != nil {
			return false, err
		}
		records = append(records, buildRecord(bucket, key, format, i, len(chunks), chunk, vec))
	}

	log.Printf("Uploading %d vectors to index namespace %q", len(records), p.cfg.Namespace)
	if err := p.index.Upsert(ctx, p.cfg.Namespace, records); err != nil {
		return false, err
	}

	return true, nil
}
