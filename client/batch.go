package client

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// GetAll fetches every URL concurrently, keeping at most limit requests in
// flight (limit <= 0 means no cap). Bodies come back in input order. The
// first failure cancels the remaining fetches and is returned as-is.
func (c *Client) GetAll(ctx context.Context, urls []string, limit int) ([]string, error) {
	if len(urls) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	bodies := make([]string, len(urls))
	for i, target := range urls {
		i, target := i, target
		g.Go(func() error {
			body, err := c.Get(ctx, target)
			if err != nil {
				return fmt.Errorf("get %s: %w", target, err)
			}
			bodies[i] = body
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return bodies, nil
}
