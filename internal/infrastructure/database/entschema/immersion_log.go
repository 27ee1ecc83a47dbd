package entschema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// ImmersionLog holds the schema definition for the logs table.
type ImmersionLog struct {
	ent.Schema
}

// Fields of the ImmersionLog.
func (ImmersionLog) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New),
		field.Int64("user_id"),
		field.String("language_code").MaxLen(3),
		field.Int32("activity_id"),
		field.Float("amount").Optional().Nillable(),
		field.UUID("unit_id", uuid.UUID{}).Optional().Nillable(),
		field.String("unit_name").Default(""),
		field.Int64("duration_seconds").Optional().Nillable(),
		field.Float("score"),
		field.JSON("tags", []string{}).
			Default([]string{}).
			SchemaType(map[string]string{dialect.Postgres: "jsonb"}),
		field.String("description").Default(""),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the ImmersionLog.
func (ImmersionLog) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("attachments", LogAttachment.Type),
	}
}

// Indexes of the ImmersionLog.
func (ImmersionLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "created_at"),
		index.Fields("user_id", "language_code"),
	}
}

// Annotations of the ImmersionLog.
func (ImmersionLog) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{
			Table: "immersion_logs",
		},
	}
}
