package store

import (
	"context"
	"fmt"

	"github.com/prepdeck/prepdeck/ent"
	"github.com/prepdeck/prepdeck/ent/syncevent"
)

// syncRepo implements SyncRepo using the ent client.
type syncRepo struct {
	client *ent.Client
}

func (r *syncRepo) Append(ctx context.Context, data SyncEventData) error {
	builder := r.client.SyncEvent.Create().
		SetRequestID(data.RequestID).
		SetCourseID(data.CourseID).
		SetSurface(data.Surface).
		SetQuestionID(data.QuestionID).
		SetAction(data.Action).
		SetSelectedOption(data.SelectedOption).
		SetFlagged(data.Flagged).
		SetOk(data.OK)

	if data.Error != "" {
		builder = builder.SetError(data.Error)
	}

	_, err := builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save sync event: %w", err)
	}
	return nil
}

func (r *syncRepo) Recent(ctx context.Context, courseID, limit int) ([]SyncEventRecord, error) {
	// ID breaks ties between events written within the same clock tick.
	q := r.client.SyncEvent.Query().
		Where(syncevent.CourseID(courseID)).
		Order(ent.Desc(syncevent.FieldTimestamp), ent.Desc(syncevent.FieldID))
	if limit > 0 {
		q = q.Limit(limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query sync events: %w", err)
	}

	out := make([]SyncEventRecord, 0, len(events))
	for _, e := range events {
		out = append(out, SyncEventRecord{
			SyncEventData: SyncEventData{
				RequestID:      e.RequestID,
				CourseID:       e.CourseID,
				Surface:        e.Surface,
				QuestionID:     e.QuestionID,
				Action:         e.Action,
				SelectedOption: e.SelectedOption,
				Flagged:        e.Flagged,
				OK:             e.Ok,
				Error:          e.Error,
			},
			Timestamp: e.Timestamp,
		})
	}
	return out, nil
}
