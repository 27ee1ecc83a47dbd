package entschema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// LogAttachment links one immersion log to one contest registration.
type LogAttachment struct {
	ent.Schema
}

// Fields of the LogAttachment.
func (LogAttachment) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("log_id", uuid.UUID{}),
		field.UUID("registration_id", uuid.UUID{}),
	}
}

// Edges of the LogAttachment.
func (LogAttachment) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("log", ImmersionLog.Type).
			Ref("attachments").
			Field("log_id").
			Unique().
			Required(),
		edge.From("registration", ContestRegistration.Type).
			Ref("attachments").
			Field("registration_id").
			Unique().
			Required(),
	}
}

// Indexes of the LogAttachment.
func (LogAttachment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("log_id", "registration_id").Unique(),
		index.Fields("registration_id"),
	}
}

// Annotations of the LogAttachment.
func (LogAttachment) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{
			Table: "log_attachments",
		},
	}
}
