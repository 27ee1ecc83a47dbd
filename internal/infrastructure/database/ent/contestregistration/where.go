// Code generated by ent, DO NOT EDIT.

package contestregistration

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/lingolog/lingolog/internal/infrastructure/database/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ContestRegistration {
	return predicate.ContestRegistration(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ContestRegistration {
	return predicate.ContestRegistration(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ContestRegistration {
	return predicate.ContestRegistration(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ContestRegistration {
	return predicate.ContestRegistration(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ContestRegistration {
	return predicate.ContestRegistration(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ContestRegistration {
	return predicate.ContestRegistration(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ContestRegistration {
	return predicate.ContestRegistration(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ContestRegistration {
	return predicate.ContestRegistration(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ContestRegistration {
	return predicate.ContestRegistration(sql.FieldLTE(FieldID, id))
}

// ContestID applies equality check predicate on the "contest_id" field. It's identical to ContestIDEQ.
func ContestID(v uuid.UUID) predicate.ContestRegistration {
	return predicate.ContestRegistration(sql.FieldEQ(FieldContestID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v int64) predicate.ContestRegistration {
	return predicate.ContestRegistration(sql.FieldEQ(FieldUserID, v))
}

// UserDisplayName applies equality check predicate on the "user_display_name" field. It's identical to UserDisplayNameEQ.
func UserDisplayName(v string) predicate.ContestRegistration {
	return predicate.ContestRegistration(sql.FieldEQ(FieldUserDisplayName, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ContestRegistration {
	return predicate.ContestRegistration(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ContestRegistration {
	return predicate.ContestRegistration(sql.FieldEQ(FieldUpdatedAt, v))
}

// ContestIDEQ applies the EQ predicate on the "contest_id" field.
func ContestIDEQ(v uuid.UUID) predicate.ContestRegistration {
	return predicate.ContestRegistration(sql.FieldEQ(FieldContestID, v))
}

// ContestIDNEQ applies the NEQ predicate on the "contest_id" field.
func ContestIDNEQ(v uuid.UUID) predicate.ContestRegistration {
	return predicate.ContestRegistration(sql.FieldNEQ(FieldContestID, v))
}

// ContestIDIn applies the In predicate on the "contest_id" field.
func ContestIDIn(vs ...uuid.UUID) predicate.ContestRegistration {
	return predicate.ContestRegistration(sql.FieldIn(FieldContestID, vs...))
}

// ContestIDNotIn applies the NotIn predicate on the "contest_id" field.
func ContestIDNotIn(vs ...uuid.UUID) predicate.ContestRegistration {
	return predicate.ContestRegistration(sql.FieldNotIn(FieldContestID, vs...))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v int64) predicate.ContestRegistration {
	return predicate.ContestRegistration(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v int64) predicate.ContestRegistration {
	return predicate.ContestRegistration(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...int64) predicate.ContestRegistration {
	return predicate.ContestRegistration(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...int64) predicate.ContestRegistration {
	return predicate.ContestRegistration(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v int64) predicate.ContestRegistration {
	return predicate.ContestRegistration(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v int64) predicate.ContestRegistration {
	return predicate.ContestRegistration(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v int64) predicate.ContestRegistration {
	return predicate.ContestRegistration(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v int64) predicate.ContestRegistration {
	return predicate.ContestRegistration(sql.FieldLTE(FieldUserID, v))
}

// UserDisplayNameEQ applies the EQ predicate on the "user_display_name" field.
func UserDisplayNameEQ(v string) predicate.ContestRegistration {
	return predicate.ContestRegistration(sql.FieldEQ(FieldUserDisplayName, v))
}

// UserDisplayNameNEQ applies the NEQ predicate on the "user_display_name" field.
func UserDisplayNameNEQ(v string) predicate.ContestRegistration {
	return predicate.ContestRegistration(sql.FieldNEQ(FieldUserDisplayName, v))
}

// UserDisplayNameIn applies the In predicate on the "user_display_name" field.
func UserDisplayNameIn(vs ...string) predicate.ContestRegistration {
	return predicate.ContestRegistration(sql.FieldIn(FieldUserDisplayName, vs...))
}

// UserDisplayNameNotIn applies the NotIn predicate on the "user_display_name" field.
func UserDisplayNameNotIn(vs ...string) predicate.ContestRegistration {
	return predicate.ContestRegistration(sql.FieldNotIn(FieldUserDisplayName, vs...))
}

// UserDisplayNameGT applies the GT predicate on the "user_display_name" field.
func UserDisplayNameGT(v string) predicate.ContestRegistration {
	return predicate.ContestRegistration(sql.FieldGT(FieldUserDisplayName, v))
}

// UserDisplayNameGTE applies the GTE predicate on the "user_display_name" field.
func UserDisplayNameGTE(v string) predicate.ContestRegistration {
	return predicate.ContestRegistration(sql.FieldGTE(FieldUserDisplayName, v))
}

// UserDisplayNameLT applies the LT predicate on the "user_display_name" field.
func UserDisplayNameLT(v string) predicate.ContestRegistration {
	return predicate.ContestRegistration(sql.FieldLT(FieldUserDisplayName, v))
}

// UserDisplayNameLTE applies the LTE predicate on the "user_display_name" field.
func UserDisplayNameLTE(v string) predicate.ContestRegistration {
	return predicate.ContestRegistration(sql.FieldLTE(FieldUserDisplayName, v))
}

// UserDisplayNameContains applies the Contains predicate on the "user_display_name" field.
func UserDisplayNameContains(v string) predicate.ContestRegistration {
	return predicate.ContestRegistration(sql.FieldContains(FieldUserDisplayName, v))
}

// UserDisplayNameHasPrefix applies the HasPrefix predicate on the "user_display_name" field.
func UserDisplayNameHasPrefix(v string) predicate.ContestRegistration {
	return predicate.ContestRegistration(sql.FieldHasPrefix(FieldUserDisplayName, v))
}

// UserDisplayNameHasSuffix applies the HasSuffix predicate on the "user_display_name" field.
func UserDisplayNameHasSuffix(v string) predicate.ContestRegistration {
	return predicate.ContestRegistration(sql.FieldHasSuffix(FieldUserDisplayName, v))
}

// UserDisplayNameEqualFold applies the EqualFold predicate on the "user_display_name" field.
func UserDisplayNameEqualFold(v string) predicate.ContestRegistration {
	return predicate.ContestRegistration(sql.FieldEqualFold(FieldUserDisplayName, v))
}

// UserDisplayNameContainsFold applies the ContainsFold predicate on the "user_display_name" field.
func UserDisplayNameContainsFold(v string) predicate.ContestRegistration {
	return predicate.ContestRegistration(sql.FieldContainsFold(FieldUserDisplayName, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ContestRegistration {
	return predicate.ContestRegistration(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ContestRegistration {
	return predicate.ContestRegistration(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ContestRegistration {
	return predicate.ContestRegistration(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ContestRegistration {
	return predicate.ContestRegistration(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ContestRegistration {
	return predicate.ContestRegistration(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ContestRegistration {
	return predicate.ContestRegistration(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ContestRegistration {
	return predicate.ContestRegistration(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ContestRegistration {
	return predicate.ContestRegistration(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ContestRegistration {
	return predicate.ContestRegistration(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ContestRegistration {
	return predicate.ContestRegistration(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ContestRegistration {
	return predicate.ContestRegistration(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ContestRegistration {
	return predicate.ContestRegistration(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ContestRegistration {
	return predicate.ContestRegistration(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ContestRegistration {
	return predicate.ContestRegistration(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ContestRegistration {
	return predicate.ContestRegistration(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ContestRegistration {
	return predicate.ContestRegistration(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasContest applies the HasEdge predicate on the "contest" edge.
func HasContest() predicate.ContestRegistration {
	return predicate.ContestRegistration(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ContestTable, ContestColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasContestWith applies the HasEdge predicate on the "contest" edge with a given conditions (other predicates).
func HasContestWith(preds ...predicate.Contest) predicate.ContestRegistration {
	return predicate.ContestRegistration(func(s *sql.Selector) {
		step := newContestStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAttachments applies the HasEdge predicate on the "attachments" edge.
func HasAttachments() predicate.ContestRegistration {
	return predicate.ContestRegistration(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AttachmentsTable, AttachmentsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAttachmentsWith applies the HasEdge predicate on the "attachments" edge with a given conditions (other predicates).
func HasAttachmentsWith(preds ...predicate.LogAttachment) predicate.ContestRegistration {
	return predicate.ContestRegistration(func(s *sql.Selector) {
		step := newAttachmentsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ContestRegistration) predicate.ContestRegistration {
	return predicate.ContestRegistration(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ContestRegistration) predicate.ContestRegistration {
	return predicate.ContestRegistration(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ContestRegistration) predicate.ContestRegistration {
	return predicate.ContestRegistration(sql.NotPredicates(p))
}
