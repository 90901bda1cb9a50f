package store

import (
	"context"
	"fmt"

	"github.com/bvarga/petralog/ent"
	"github.com/bvarga/petralog/ent/llmrequestevent"
)

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.LLMRequestEvent.Create().
		SetSequence(seqNum).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		SetRequestBody(data.RequestBody).
		SetResponseBody(data.ResponseBody).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}
	return nil
}

func (r *eventRepo) ListLLMRequests(ctx context.Context, opts QueryOpts) ([]LLMRequest, error) {
	q := r.client.LLMRequestEvent.Query().
		Order(ent.Asc(llmrequestevent.FieldSequence))
	if opts.After > 0 {
		q = q.Where(llmrequestevent.SequenceGT(opts.After))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list LLM request events: %w", err)
	}

	requests := make([]LLMRequest, 0, len(events))
	for _, e := range events {
		requests = append(requests, LLMRequest{
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			LLMRequestEventData: LLMRequestEventData{
				Provider:     e.Provider,
				Model:        e.Model,
				Purpose:      e.Purpose,
				InputTokens:  e.InputTokens,
				OutputTokens: e.OutputTokens,
				LatencyMs:    e.LatencyMs,
				Success:      e.Success,
				ErrorMessage: e.ErrorMessage,
				RequestBody:  e.RequestBody,
				ResponseBody: e.ResponseBody,
			},
		})
	}
	return requests, nil
}

func (r *eventRepo) GetLLMRequest(ctx context.Context, sequence int64) (*LLMRequest, error) {
	e, err := r.client.LLMRequestEvent.Query().
		Where(llmrequestevent.Sequence(sequence)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get LLM request event %d: %w", sequence, err)
	}

	return &LLMRequest{
		Sequence:  e.Sequence,
		Timestamp: e.Timestamp,
		LLMRequestEventData: LLMRequestEventData{
			Provider:     e.Provider,
			Model:        e.Model,
			Purpose:      e.Purpose,
			InputTokens:  e.InputTokens,
			OutputTokens: e.OutputTokens,
			LatencyMs:    e.LatencyMs,
			Success:      e.Success,
			ErrorMessage: e.ErrorMessage,
			RequestBody:  e.RequestBody,
			ResponseBody: e.ResponseBody,
		},
	}, nil
}

func (r *eventRepo) LLMUsageByPurpose(ctx context.Context) ([]UsageStat, error) {
	return r.llmUsage(ctx, func(e *ent.LLMRequestEvent) string { return e.Purpose })
}

func (r *eventRepo) LLMUsageByModel(ctx context.Context) ([]UsageStat, error) {
	return r.llmUsage(ctx, func(e *ent.LLMRequestEvent) string { return e.Model })
}

// llmUsage aggregates in Go. The event volume of a single-user desktop
// tool doesn't warrant pushing the group-by into SQL.
func (r *eventRepo) llmUsage(ctx context.Context, keyOf func(*ent.LLMRequestEvent) string) ([]UsageStat, error) {
	events, err := r.client.LLMRequestEvent.Query().
		Order(ent.Asc(llmrequestevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM request events: %w", err)
	}

	byKey := make(map[string]*UsageStat)
	latency := make(map[string]int64)
	var order []string
	for _, e := range events {
		key := keyOf(e)
		st, ok := byKey[key]
		if !ok {
			st = &UsageStat{Key: key}
			byKey[key] = st
			order = append(order, key)
		}
		st.Calls++
		st.InputTokens += e.InputTokens
		st.OutputTokens += e.OutputTokens
		latency[key] += e.LatencyMs
	}

	stats := make([]UsageStat, 0, len(order))
	for _, key := range order {
		st := *byKey[key]
		st.AvgLatencyMs = latency[key] / int64(st.Calls)
		stats = append(stats, st)
	}
	return stats, nil
}

func (r *eventRepo) PurgeAll(ctx context.Context) error {
	if _, err := r.client.AttemptEvent.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("purge attempt events: %w", err)
	}
	if _, err := r.client.AssignmentEvent.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("purge assignment events: %w", err)
	}
	if _, err := r.client.LLMRequestEvent.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("purge LLM request events: %w", err)
	}
	if _, err := r.seq.db.ExecContext(ctx,
		`UPDATE global_sequence SET next_val = 1 WHERE id = 1`); err != nil {
		return fmt.Errorf("reset sequence: %w", err)
	}
	return nil
}
