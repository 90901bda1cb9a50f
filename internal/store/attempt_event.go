package store

import (
	"context"
	"fmt"

	"github.com/bvarga/petralog/ent"
	"github.com/bvarga/petralog/ent/attemptevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendAttempt(ctx context.Context, data AttemptEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AttemptEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetQuestionID(data.QuestionID).
		SetKind(data.Kind).
		SetPrompt(data.Prompt).
		SetAnswer(data.Answer).
		SetScore(data.Score).
		SetMaxScore(data.MaxScore).
		SetCorrect(data.Correct).
		SetFeedback(data.Feedback).
		SetTimeMs(data.TimeMs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save attempt event: %w", err)
	}
	return nil
}

func (r *eventRepo) ListAttempts(ctx context.Context, opts QueryOpts) ([]Attempt, error) {
	q := r.client.AttemptEvent.Query().
		Order(ent.Asc(attemptevent.FieldSequence))
	if opts.After > 0 {
		q = q.Where(attemptevent.SequenceGT(opts.After))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list attempt events: %w", err)
	}

	attempts := make([]Attempt, 0, len(events))
	for _, e := range events {
		attempts = append(attempts, Attempt{
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			AttemptEventData: AttemptEventData{
				SessionID:  e.SessionID,
				QuestionID: e.QuestionID,
				Kind:       e.Kind,
				Prompt:     e.Prompt,
				Answer:     e.Answer,
				Score:      e.Score,
				MaxScore:   e.MaxScore,
				Correct:    e.Correct,
				Feedback:   e.Feedback,
				TimeMs:     e.TimeMs,
			},
		})
	}
	return attempts, nil
}
