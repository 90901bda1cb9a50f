package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendAssignment(ctx context.Context, data AssignmentEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AssignmentEvent.Create().
		SetSequence(seqNum).
		SetSetID(data.SetID).
		SetStudentName(data.StudentName).
		SetStudentCode(data.StudentCode).
		SetLanguage(data.Language).
		SetSeed(data.Seed).
		SetQuestionCount(data.QuestionCount).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save assignment event: %w", err)
	}
	return nil
}
