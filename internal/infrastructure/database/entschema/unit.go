package entschema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Unit holds the schema definition for the unit catalog table.
type Unit struct {
	ent.Schema
}

// Fields of the Unit.
func (Unit) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New),
		field.String("name").NotEmpty(),
		field.Int32("activity_id"),
		// NULL marks a fallback unit usable by any language.
		field.String("language_code").MaxLen(3).Optional().Nillable(),
		field.Float("modifier"),
	}
}

// Indexes of the Unit.
func (Unit) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("activity_id", "name"),
	}
}

// Annotations of the Unit.
func (Unit) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{
			Table: "units",
		},
	}
}
