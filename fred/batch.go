package fred

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
)

// DefaultBatchConcurrency bounds in-flight requests in a batch.
const DefaultBatchConcurrency = 5

// Call is a single request in a batch.
type Call func(ctx context.Context) (Result, error)

// Batch runs calls concurrently with at most limit in flight and returns
// their results keyed like calls. The first call error cancels the remaining
// calls; results gathered so far are still returned.
func (c *Client) Batch(ctx context.Context, limit int, calls map[string]Call) (map[string]Result, error) {
	results := make(map[string]Result, len(calls))
	if len(calls) == 0 {
		return results, nil
	}
	if limit <= 0 {
		limit = DefaultBatchConcurrency
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	var mu sync.Mutex
	for key, call := range calls {
		g.Go(func() error {
			res, err := call(ctx)
			if err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}

			mu.Lock()
			results[key] = res
			mu.Unlock()
			return nil
		})
	}

	err := g.Wait()
	c.logger.Debug().Int("requested", len(calls)).Int("completed", len(results)).Msg("Batch finished")
	return results, err
}

// BatchGetSeries fetches several series concurrently, keyed by series id.
func (c *Client) BatchGetSeries(ctx context.Context, seriesIDs []string, opts Realtime, limit int, format ResponseFormat) (map[string]Result, error) {
	calls := make(map[string]Call, len(seriesIDs))
	for _, id := range seriesIDs {
		calls[id] = func(ctx context.Context) (Result, error) {
			return c.GetSeries(ctx, id, opts, format)
		}
	}
	return c.Batch(ctx, limit, calls)
}

// BatchGetSeriesObservations fetches observations for several series concurrently.
func (c *Client) BatchGetSeriesObservations(ctx context.Context, seriesIDs []string, opts ObservationsOptions, limit int, format ResponseFormat) (map[string]Result, error) {
	calls := make(map[string]Call, len(seriesIDs))
	for _, id := range seriesIDs {
		calls[id] = func(ctx context.Context) (Result, error) {
			return c.GetSeriesObservations(ctx, id, opts, format)
		}
	}
	return c.Batch(ctx, limit, calls)
}
