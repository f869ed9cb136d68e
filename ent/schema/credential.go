package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Credential is a single session key/value pair (auth token, active
// course id, course name). One row per key; writes upsert.
type Credential struct {
	ent.Schema
}

func (Credential) Fields() []ent.Field {
	return []ent.Field{
		field.String("key").
			NotEmpty().
			Unique().
			Comment("Credential key, e.g. token, course_id, course_name"),
		field.String("value").
			Comment("Stored value, opaque to the store"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("When this key was last written"),
	}
}

func (Credential) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("key"),
	}
}
