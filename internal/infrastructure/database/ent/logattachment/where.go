// Code generated by ent, DO NOT EDIT.

package logattachment

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/lingolog/lingolog/internal/infrastructure/database/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.LogAttachment {
	return predicate.LogAttachment(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.LogAttachment {
	return predicate.LogAttachment(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.LogAttachment {
	return predicate.LogAttachment(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.LogAttachment {
	return predicate.LogAttachment(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.LogAttachment {
	return predicate.LogAttachment(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.LogAttachment {
	return predicate.LogAttachment(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.LogAttachment {
	return predicate.LogAttachment(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.LogAttachment {
	return predicate.LogAttachment(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.LogAttachment {
	return predicate.LogAttachment(sql.FieldLTE(FieldID, id))
}

// LogID applies equality check predicate on the "log_id" field. It's identical to LogIDEQ.
func LogID(v uuid.UUID) predicate.LogAttachment {
	return predicate.LogAttachment(sql.FieldEQ(FieldLogID, v))
}

// RegistrationID applies equality check predicate on the "registration_id" field. It's identical to RegistrationIDEQ.
func RegistrationID(v uuid.UUID) predicate.LogAttachment {
	return predicate.LogAttachment(sql.FieldEQ(FieldRegistrationID, v))
}

// LogIDEQ applies the EQ predicate on the "log_id" field.
func LogIDEQ(v uuid.UUID) predicate.LogAttachment {
	return predicate.LogAttachment(sql.FieldEQ(FieldLogID, v))
}

// LogIDNEQ applies the NEQ predicate on the "log_id" field.
func LogIDNEQ(v uuid.UUID) predicate.LogAttachment {
	return predicate.LogAttachment(sql.FieldNEQ(FieldLogID, v))
}

// LogIDIn applies the In predicate on the "log_id" field.
func LogIDIn(vs ...uuid.UUID) predicate.LogAttachment {
	return predicate.LogAttachment(sql.FieldIn(FieldLogID, vs...))
}

// LogIDNotIn applies the NotIn predicate on the "log_id" field.
func LogIDNotIn(vs ...uuid.UUID) predicate.LogAttachment {
	return predicate.LogAttachment(sql.FieldNotIn(FieldLogID, vs...))
}

// RegistrationIDEQ applies the EQ predicate on the "registration_id" field.
func RegistrationIDEQ(v uuid.UUID) predicate.LogAttachment {
	return predicate.LogAttachment(sql.FieldEQ(FieldRegistrationID, v))
}

// RegistrationIDNEQ applies the NEQ predicate on the "registration_id" field.
func RegistrationIDNEQ(v uuid.UUID) predicate.LogAttachment {
	return predicate.LogAttachment(sql.FieldNEQ(FieldRegistrationID, v))
}

// RegistrationIDIn applies the In predicate on the "registration_id" field.
func RegistrationIDIn(vs ...uuid.UUID) predicate.LogAttachment {
	return predicate.LogAttachment(sql.FieldIn(FieldRegistrationID, vs...))
}

// RegistrationIDNotIn applies the NotIn predicate on the "registration_id" field.
func RegistrationIDNotIn(vs ...uuid.UUID) predicate.LogAttachment {
	return predicate.LogAttachment(sql.FieldNotIn(FieldRegistrationID, vs...))
}

// HasLog applies the HasEdge predicate on the "log" edge.
func HasLog() predicate.LogAttachment {
	return predicate.LogAttachment(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, LogTable, LogColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasLogWith applies the HasEdge predicate on the "log" edge with a given conditions (other predicates).
func HasLogWith(preds ...predicate.ImmersionLog) predicate.LogAttachment {
	return predicate.LogAttachment(func(s *sql.Selector) {
		step := newLogStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasRegistration applies the HasEdge predicate on the "registration" edge.
func HasRegistration() predicate.LogAttachment {
	return predicate.LogAttachment(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RegistrationTable, RegistrationColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRegistrationWith applies the HasEdge predicate on the "registration" edge with a given conditions (other predicates).
func HasRegistrationWith(preds ...predicate.ContestRegistration) predicate.LogAttachment {
	return predicate.LogAttachment(func(s *sql.Selector) {
		step := newRegistrationStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LogAttachment) predicate.LogAttachment {
	return predicate.LogAttachment(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LogAttachment) predicate.LogAttachment {
	return predicate.LogAttachment(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LogAttachment) predicate.LogAttachment {
	return predicate.LogAttachment(sql.NotPredicates(p))
}
