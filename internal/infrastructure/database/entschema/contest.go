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

// Contest holds the schema definition for the contests table.
type Contest struct {
	ent.Schema
}

// Fields of the Contest.
func (Contest) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New),
		field.String("title").NotEmpty(),
		field.String("description").Default(""),
		field.Time("contest_start"),
		field.Time("contest_end"),
		field.Time("registration_end"),
		field.Bool("official").Default(false),
		field.Bool("private").Default(false),
		field.JSON("allowed_activities", []int32{}).
			Default([]int32{}).
			SchemaType(map[string]string{dialect.Postgres: "jsonb"}),
		// NULL means the contest accepts every language.
		field.JSON("allowed_languages", []string{}).
			Optional().
			SchemaType(map[string]string{dialect.Postgres: "jsonb"}),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Contest.
func (Contest) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("registrations", ContestRegistration.Type),
	}
}

// Indexes of the Contest.
func (Contest) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("official", "private"),
		index.Fields("contest_end"),
	}
}

// Annotations of the Contest.
func (Contest) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{
			Table: "contests",
		},
	}
}
