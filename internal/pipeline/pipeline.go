package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Kpubaq/404tsemey/internal/config"
	"github.com/Kpubaq/404tsemey/internal/feature"
	"github.com/Kpubaq/404tsemey/internal/ingest"
	"github.com/Kpubaq/404tsemey/internal/push"
	"github.com/Kpubaq/404tsemey/internal/report"
	"github.com/Kpubaq/404tsemey/internal/scoring"
)

// Pipeline wires the batch stages together. Collaborators are injected so
// the core stays testable without disk or network access.
type Pipeline struct {
	Loader    *ingest.Loader
	Generator *push.Generator
	Recorder  report.Recorder
	Output    string
	Workers   int
}

// New builds a Pipeline from configuration, constructing the paraphraser
// only when AI rewriting is enabled.
func New(ctx context.Context, cfg *config.Config) (*Pipeline, error) {
	var paraphraser push.Paraphraser = push.NewNoopParaphraser()
	if cfg.Pipeline.UseAI {
		p, err := push.NewGigaChatParaphraser(ctx, cfg.GigaChat.APIKey, cfg.GigaChat.Scope, cfg.GigaChat.InsecureSkipVerify)
		if err != nil {
			return nil, fmt.Errorf("init paraphraser: %w", err)
		}
		paraphraser = p
	}

	rec, err := report.NewFileRecorder(cfg.Pipeline.DebugDir)
	if err != nil {
		return nil, fmt.Errorf("init recorder: %w", err)
	}

	timeout := time.Duration(cfg.GigaChat.TimeoutSeconds) * time.Second
	return &Pipeline{
		Loader:    ingest.NewLoader(cfg.Pipeline.DataDir),
		Generator: push.NewGenerator(paraphraser, timeout),
		Recorder:  rec,
		Output:    cfg.Pipeline.Output,
		Workers:   cfg.Pipeline.Workers,
	}, nil
}

// Run executes the full batch: ingest, extract, score, generate, report.
// Extraction and benefit estimation for all clients complete before
// ranking normalization begins; only message generation runs concurrently.
func (p *Pipeline) Run(ctx context.Context) error {
	profiles, err := p.Loader.LoadProfiles()
	if err != nil {
		return fmt.Errorf("load profiles: %w", err)
	}
	log.Info().Int("clients", len(profiles)).Msg("profiles loaded")

	tables, missing := p.Loader.LoadClientTables(profiles)
	if len(missing) > 0 {
		log.Warn().Int("clients_affected", len(missing)).Msg("some client extracts are missing")
	}
	if err := p.Recorder.RecordMissing(missing); err != nil {
		log.Warn().Err(err).Msg("failed to record missing-files report")
	}

	aggs := ingest.BuildAggregates(profiles, tables)
	signals := feature.ExtractAll(aggs)
	log.Info().Int("clients", len(signals)).Msg("signals extracted")

	scores := scoring.ScoreAll(signals, scoring.DefaultWeights)
	for _, cs := range scores {
		if err := p.Recorder.RecordScores(cs); err != nil {
			log.Warn().Err(err).Int("client_code", cs.ClientCode).Msg("failed to record score breakdown")
		}
	}
	log.Info().Int("clients", len(scores)).Msg("products ranked")

	recs := p.Generator.GenerateAll(ctx, scores, p.Workers)

	if err := report.WriteResults(p.Output, recs); err != nil {
		return fmt.Errorf("write results: %w", err)
	}

	summary, rows := report.Evaluate(recs, scores)
	if err := p.Recorder.RecordEvaluation(summary, rows); err != nil {
		log.Warn().Err(err).Msg("failed to record evaluation report")
	}
	log.Info().
		Float64("average_push_quality", summary.AveragePushQuality).
		Int("clients_evaluated", summary.ClientsEvaluated).
		Str("output", p.Output).
		Msg("pipeline finished")

	return nil
}

// Close releases the pipeline's collaborators.
func (p *Pipeline) Close() {
	if err := p.Generator.Close(); err != nil {
		log.Warn().Err(err).Msg("close generator")
	}
	if err := p.Recorder.Close(); err != nil {
		log.Warn().Err(err).Msg("close recorder")
	}
}
