package push

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Kpubaq/404tsemey/internal/model"
)

// paraphraseInstruction is the fixed system instruction sent with every
// paraphrase request. The 180-220 character band and single-CTA rule
// mirror the validation contract.
const paraphraseInstruction = "Вы — помощник, который преобразует шаблон в пуш уведомление строго 180–220 символов, по-русски, обращение по имени и 'вы' маленькими буквами, одна мысль, одна CTA (один глагол). Не менять выбранный продукт. Без CAPS. Не более 1 эмодзи."

// Generator turns per-client scoring results into final push texts.
type Generator struct {
	paraphraser Paraphraser
	timeout     time.Duration
}

// NewGenerator creates a Generator. paraphraser may be a NoopParaphraser
// when AI rewriting is disabled.
func NewGenerator(paraphraser Paraphraser, timeout time.Duration) *Generator {
	return &Generator{paraphraser: paraphraser, timeout: timeout}
}

// Generate produces the recommendation for one client. Terminal states
// only: a validated paraphrase wins, otherwise the deterministic template
// is used — even when the template itself fails validation, as a last
// resort.
func (g *Generator) Generate(ctx context.Context, cs *model.ClientScores) model.Recommendation {
	benefit := cs.ProductScores[cs.Chosen].Benefit
	template := RenderTemplate(cs.Chosen, cs.RawSignals, benefit)

	final := template
	if g.paraphraser != nil {
		callCtx, cancel := context.WithTimeout(ctx, g.timeout)
		rewritten, err := g.paraphraser.Paraphrase(callCtx, paraphraseInstruction, template)
		cancel()
		switch {
		case err != nil:
			log.Warn().Err(err).Int("client_code", cs.ClientCode).Msg("paraphrase failed, using template")
		case rewritten != "" && Validate(rewritten):
			final = rewritten
		case rewritten != "":
			log.Debug().Int("client_code", cs.ClientCode).Msg("paraphrase rejected by validation")
		}
	}

	if !Validate(final) {
		final = template
	}
	return model.Recommendation{
		ClientCode: cs.ClientCode,
		Product:    cs.Chosen,
		Push:       final,
	}
}

// Close releases the underlying paraphraser.
func (g *Generator) Close() error {
	if g.paraphraser == nil {
		return nil
	}
	return g.paraphraser.Close()
}

// GenerateAll fans message generation out over a small worker pool.
// Scoring is already complete here, each client writes its own slot, so
// no locking is needed.
func (g *Generator) GenerateAll(ctx context.Context, scores []*model.ClientScores, workers int) []model.Recommendation {
	if workers < 1 {
		workers = 1
	}
	results := make([]model.Recommendation, len(scores))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = g.Generate(ctx, scores[i])
			}
		}()
	}
	for i := range scores {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return results
}
