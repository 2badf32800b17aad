// SPDX-License-Identifier: MIT
// Copyright (c) 2026 crab21
// Source: github.com/crab21/globset

package globset

import (
	"context"
	"fmt"
	"iter"
)

// ctxCheckInterval is how many records Run classifies between context checks.
const ctxCheckInterval = 256

// Run classifies candidates with m and hands every record to sink in order.
//
// The sink is flushed after the last candidate. Sink errors are returned with
// the position of the failing record. Cancellation is checked between records;
// the sink is not flushed after cancellation.
func Run(ctx context.Context, m *Matcher, candidates iter.Seq[string], sink Sink) (Stats, error) {
	var stats Stats

	for rec := range m.Classify(candidates) {
		if stats.Candidates%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return stats, err
			}
		}

		if err := sink.Put(rec); err != nil {
			return stats, fmt.Errorf("write record %d: %w", stats.Candidates, err)
		}

		stats.Candidates++
		if rec.IsMatch {
			stats.Matched++
		}
	}

	if err := ctx.Err(); err != nil {
		return stats, err
	}

	if err := sink.Flush(); err != nil {
		return stats, fmt.Errorf("flush output: %w", err)
	}

	return stats, nil
}
