package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SyncEvent records one answer-persistence call to the remote service:
// what was sent and whether the server accepted it. Failed flag syncs
// are non-fatal in the UI, so this log is the only durable trace.
type SyncEvent struct {
	ent.Schema
}

func (SyncEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("request_id").
			NotEmpty().
			Unique().
			Comment("Client-generated UUID for this call"),
		field.Int("course_id").
			Comment("Course the question belongs to"),
		field.String("surface").
			NotEmpty().
			Comment("practice or full_test"),
		field.Int("question_id").
			Comment("Server question id"),
		field.String("action").
			NotEmpty().
			Comment("answer, skip, flag, submit, or quit"),
		field.Int("selected_option").
			Default(-1).
			Comment("Chosen option index, -1 when none"),
		field.Bool("flagged").
			Default(false),
		field.Bool("ok").
			Comment("Whether the server returned 2xx"),
		field.String("error").
			Optional().
			Comment("Error text when ok is false"),
		field.Time("timestamp").
			Default(time.Now).
			Immutable(),
	}
}

func (SyncEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("course_id"),
		index.Fields("question_id"),
		index.Fields("timestamp"),
	}
}
