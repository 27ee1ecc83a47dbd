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

// ContestRegistration holds the schema definition for the registrations table.
type ContestRegistration struct {
	ent.Schema
}

// Fields of the ContestRegistration.
func (ContestRegistration) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New),
		field.UUID("contest_id", uuid.UUID{}),
		field.Int64("user_id"),
		field.String("user_display_name").Default(""),
		field.JSON("languages", []string{}).
			Default([]string{}).
			SchemaType(map[string]string{dialect.Postgres: "jsonb"}),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the ContestRegistration.
func (ContestRegistration) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("contest", Contest.Type).
			Ref("registrations").
			Field("contest_id").
			Unique().
			Required(),
		edge.To("attachments", LogAttachment.Type),
	}
}

// Indexes of the ContestRegistration.
func (ContestRegistration) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "contest_id").Unique(),
	}
}

// Annotations of the ContestRegistration.
func (ContestRegistration) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{
			Table: "contest_registrations",
		},
	}
}
