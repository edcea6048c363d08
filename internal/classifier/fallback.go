package classifier

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	"vettr/internal/models"
)

// Fallback is the classifier adapter exposed to the analysis pipeline. It
// tries the primary provider first and recovers any failure (API error,
// malformed response, per-item timeout) with the keyword heuristic, so a
// call through it always yields a classification.
type Fallback struct {
	primary   Provider
	heuristic *Heuristic
	timeout   time.Duration
}

// NewFallback builds the adapter. primary may be nil, in which case every
// item takes the heuristic path. timeout bounds each primary call; zero
// disables the bound.
func NewFallback(primary Provider, heuristic *Heuristic, timeout time.Duration) *Fallback {
	return &Fallback{primary: primary, heuristic: heuristic, timeout: timeout}
}

func (f *Fallback) Classify(ctx context.Context, item models.ContentItem, contentID string) models.Classification {
	if f.primary == nil {
		return f.heuristic.Recover(item, contentID, models.ErrNoClassifier)
	}

	callCtx := ctx
	if f.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	result, err := f.primary.Classify(callCtx, item, contentID)
	if err != nil {
		log.Warnf("Classifier %s failed for %s, using keyword fallback: %v", f.primary.ModelName(), contentID, err)
		return f.heuristic.Recover(item, contentID, err)
	}
	return result
}

// ModelName reports the primary model, or the heuristic when no primary is
// configured.
func (f *Fallback) ModelName() string {
	if f.primary == nil {
		return f.heuristic.ModelName()
	}
	return f.primary.ModelName()
}
