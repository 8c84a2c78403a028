package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/aws/aws-lambda-go/events"

	"github.com/markdave123-py/Indexa/internal/config"
	"github.com/markdave123-py/Indexa/internal/core"
	"github.com/markdave123-py/Indexa/internal/core/llm"
	objectclient "github.com/markdave123-py/Indexa/internal/core/object-client"
	"github.com/markdave123-py/Indexa/internal/core/pipeline"
	"github.com/markdave123-py/Indexa/internal/core/vectorstore"
)

// App owns the process-wide client handles (object store, embedding
// service, vector index). They are built once at startup and shared by
// every batch for connection reuse.
type App struct {
	Index        core.VectorIndex
	ObjectClient core.ObjectClient
	Pipeline     *pipeline.Pipeline
	Server       *Server

	embedder *llm.GeminiEmbedder
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	appCtx, cancel := context.WithTimeout(ctx, 5*time.Minute)
	defer cancel()

	index, err := vectorstore.NewPgIndex(appCtx, cfg)
	if err != nil {
		return nil, err
	}
	log.Println("Vector index initialized and ready.")

	objClient, err := objectclient.NewS3Client(appCtx, cfg)
	if err != nil {
		return nil, err
	}
	log.Println("Object client initialized and ready.")

	geminiEmbedder, err := llm.NewGeminiEmbedder(appCtx, cfg.AIAPIKey, cfg.EmbedModel, cfg.EmbedDim)
	if err != nil {
		return nil, fmt.Errorf("couldn't initialize the embedder, %w", err)
	}

	pipe := pipeline.New(objClient, geminiEmbedder, index, cfg)
	server := NewServer(cfg, pipe, objClient)

	return &App{
		Index:        index,
		ObjectClient: objClient,
		Pipeline:     pipe,
		Server:       server,
		embedder:     geminiEmbedder,
	}, nil
}

// Handle is the Lambda entrypoint for an SQS batch of S3 notifications.
func (a *App) Handle(ctx context.Context, event events.SQSEvent) (pipeline.Response, error) {
	return a.Pipeline.Handle(ctx, event)
}

func (a *App) Close() {
	if a.embedder != nil {
		_ = a.embedder.Close()
	}
	if a.Index != nil {
		_ = a.Index.Close()
	}
}
