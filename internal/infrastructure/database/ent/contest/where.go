// Code generated by ent, DO NOT EDIT.

package contest

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/lingolog/lingolog/internal/infrastructure/database/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Contest {
	return predicate.Contest(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Contest {
	return predicate.Contest(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Contest {
	return predicate.Contest(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Contest {
	return predicate.Contest(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Contest {
	return predicate.Contest(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Contest {
	return predicate.Contest(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Contest {
	return predicate.Contest(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Contest {
	return predicate.Contest(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Contest {
	return predicate.Contest(sql.FieldLTE(FieldID, id))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Contest {
	return predicate.Contest(sql.FieldEQ(FieldTitle, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Contest {
	return predicate.Contest(sql.FieldEQ(FieldDescription, v))
}

// ContestStart applies equality check predicate on the "contest_start" field. It's identical to ContestStartEQ.
func ContestStart(v time.Time) predicate.Contest {
	return predicate.Contest(sql.FieldEQ(FieldContestStart, v))
}

// ContestEnd applies equality check predicate on the "contest_end" field. It's identical to ContestEndEQ.
func ContestEnd(v time.Time) predicate.Contest {
	return predicate.Contest(sql.FieldEQ(FieldContestEnd, v))
}

// RegistrationEnd applies equality check predicate on the "registration_end" field. It's identical to RegistrationEndEQ.
func RegistrationEnd(v time.Time) predicate.Contest {
	return predicate.Contest(sql.FieldEQ(FieldRegistrationEnd, v))
}

// Official applies equality check predicate on the "official" field. It's identical to OfficialEQ.
func Official(v bool) predicate.Contest {
	return predicate.Contest(sql.FieldEQ(FieldOfficial, v))
}

// Private applies equality check predicate on the "private" field. It's identical to PrivateEQ.
func Private(v bool) predicate.Contest {
	return predicate.Contest(sql.FieldEQ(FieldPrivate, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Contest {
	return predicate.Contest(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Contest {
	return predicate.Contest(sql.FieldEQ(FieldUpdatedAt, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Contest {
	return predicate.Contest(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Contest {
	return predicate.Contest(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Contest {
	return predicate.Contest(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Contest {
	return predicate.Contest(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Contest {
	return predicate.Contest(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Contest {
	return predicate.Contest(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Contest {
	return predicate.Contest(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Contest {
	return predicate.Contest(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Contest {
	return predicate.Contest(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Contest {
	return predicate.Contest(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Contest {
	return predicate.Contest(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Contest {
	return predicate.Contest(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Contest {
	return predicate.Contest(sql.FieldContainsFold(FieldTitle, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Contest {
	return predicate.Contest(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Contest {
	return predicate.Contest(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Contest {
	return predicate.Contest(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Contest {
	return predicate.Contest(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Contest {
	return predicate.Contest(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Contest {
	return predicate.Contest(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Contest {
	return predicate.Contest(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Contest {
	return predicate.Contest(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Contest {
	return predicate.Contest(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Contest {
	return predicate.Contest(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Contest {
	return predicate.Contest(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Contest {
	return predicate.Contest(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Contest {
	return predicate.Contest(sql.FieldContainsFold(FieldDescription, v))
}

// ContestStartEQ applies the EQ predicate on the "contest_start" field.
func ContestStartEQ(v time.Time) predicate.Contest {
	return predicate.Contest(sql.FieldEQ(FieldContestStart, v))
}

// ContestStartNEQ applies the NEQ predicate on the "contest_start" field.
func ContestStartNEQ(v time.Time) predicate.Contest {
	return predicate.Contest(sql.FieldNEQ(FieldContestStart, v))
}

// ContestStartIn applies the In predicate on the "contest_start" field.
func ContestStartIn(vs ...time.Time) predicate.Contest {
	return predicate.Contest(sql.FieldIn(FieldContestStart, vs...))
}

// ContestStartNotIn applies the NotIn predicate on the "contest_start" field.
func ContestStartNotIn(vs ...time.Time) predicate.Contest {
	return predicate.Contest(sql.FieldNotIn(FieldContestStart, vs...))
}

// ContestStartGT applies the GT predicate on the "contest_start" field.
func ContestStartGT(v time.Time) predicate.Contest {
	return predicate.Contest(sql.FieldGT(FieldContestStart, v))
}

// ContestStartGTE applies the GTE predicate on the "contest_start" field.
func ContestStartGTE(v time.Time) predicate.Contest {
	return predicate.Contest(sql.FieldGTE(FieldContestStart, v))
}

// ContestStartLT applies the LT predicate on the "contest_start" field.
func ContestStartLT(v time.Time) predicate.Contest {
	return predicate.Contest(sql.FieldLT(FieldContestStart, v))
}

// ContestStartLTE applies the LTE predicate on the "contest_start" field.
func ContestStartLTE(v time.Time) predicate.Contest {
	return predicate.Contest(sql.FieldLTE(FieldContestStart, v))
}

// ContestEndEQ applies the EQ predicate on the "contest_end" field.
func ContestEndEQ(v time.Time) predicate.Contest {
	return predicate.Contest(sql.FieldEQ(FieldContestEnd, v))
}

// ContestEndNEQ applies the NEQ predicate on the "contest_end" field.
func ContestEndNEQ(v time.Time) predicate.Contest {
	return predicate.Contest(sql.FieldNEQ(FieldContestEnd, v))
}

// ContestEndIn applies the In predicate on the "contest_end" field.
func ContestEndIn(vs ...time.Time) predicate.Contest {
	return predicate.Contest(sql.FieldIn(FieldContestEnd, vs...))
}

// ContestEndNotIn applies the NotIn predicate on the "contest_end" field.
func ContestEndNotIn(vs ...time.Time) predicate.Contest {
	return predicate.Contest(sql.FieldNotIn(FieldContestEnd, vs...))
}

// ContestEndGT applies the GT predicate on the "contest_end" field.
func ContestEndGT(v time.Time) predicate.Contest {
	return predicate.Contest(sql.FieldGT(FieldContestEnd, v))
}

// ContestEndGTE applies the GTE predicate on the "contest_end" field.
func ContestEndGTE(v time.Time) predicate.Contest {
	return predicate.Contest(sql.FieldGTE(FieldContestEnd, v))
}

// ContestEndLT applies the LT predicate on the "contest_end" field.
func ContestEndLT(v time.Time) predicate.Contest {
	return predicate.Contest(sql.FieldLT(FieldContestEnd, v))
}

// ContestEndLTE applies the LTE predicate on the "contest_end" field.
func ContestEndLTE(v time.Time) predicate.Contest {
	return predicate.Contest(sql.FieldLTE(FieldContestEnd, v))
}

// RegistrationEndEQ applies the EQ predicate on the "registration_end" field.
func RegistrationEndEQ(v time.Time) predicate.Contest {
	return predicate.Contest(sql.FieldEQ(FieldRegistrationEnd, v))
}

// RegistrationEndNEQ applies the NEQ predicate on the "registration_end" field.
func RegistrationEndNEQ(v time.Time) predicate.Contest {
	return predicate.Contest(sql.FieldNEQ(FieldRegistrationEnd, v))
}

// RegistrationEndIn applies the In predicate on the "registration_end" field.
func RegistrationEndIn(vs ...time.Time) predicate.Contest {
	return predicate.Contest(sql.FieldIn(FieldRegistrationEnd, vs...))
}

// RegistrationEndNotIn applies the NotIn predicate on the "registration_end" field.
func RegistrationEndNotIn(vs ...time.Time) predicate.Contest {
	return predicate.Contest(sql.FieldNotIn(FieldRegistrationEnd, vs...))
}

// RegistrationEndGT applies the GT predicate on the "registration_end" field.
func RegistrationEndGT(v time.Time) predicate.Contest {
	return predicate.Contest(sql.FieldGT(FieldRegistrationEnd, v))
}

// RegistrationEndGTE applies the GTE predicate on the "registration_end" field.
func RegistrationEndGTE(v time.Time) predicate.Contest {
	return predicate.Contest(sql.FieldGTE(FieldRegistrationEnd, v))
}

// RegistrationEndLT applies the LT predicate on the "registration_end" field.
func RegistrationEndLT(v time.Time) predicate.Contest {
	return predicate.Contest(sql.FieldLT(FieldRegistrationEnd, v))
}

// RegistrationEndLTE applies the LTE predicate on the "registration_end" field.
func RegistrationEndLTE(v time.Time) predicate.Contest {
	return predicate.Contest(sql.FieldLTE(FieldRegistrationEnd, v))
}

// OfficialEQ applies the EQ predicate on the "official" field.
func OfficialEQ(v bool) predicate.Contest {
	return predicate.Contest(sql.FieldEQ(FieldOfficial, v))
}

// OfficialNEQ applies the NEQ predicate on the "official" field.
func OfficialNEQ(v bool) predicate.Contest {
	return predicate.Contest(sql.FieldNEQ(FieldOfficial, v))
}

// PrivateEQ applies the EQ predicate on the "private" field.
func PrivateEQ(v bool) predicate.Contest {
	return predicate.Contest(sql.FieldEQ(FieldPrivate, v))
}

// PrivateNEQ applies the NEQ predicate on the "private" field.
func PrivateNEQ(v bool) predicate.Contest {
	return predicate.Contest(sql.FieldNEQ(FieldPrivate, v))
}

// AllowedLanguagesIsNil applies the IsNil predicate on the "allowed_languages" field.
func AllowedLanguagesIsNil() predicate.Contest {
	return predicate.Contest(sql.FieldIsNull(FieldAllowedLanguages))
}

// AllowedLanguagesNotNil applies the NotNil predicate on the "allowed_languages" field.
func AllowedLanguagesNotNil() predicate.Contest {
	return predicate.Contest(sql.FieldNotNull(FieldAllowedLanguages))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Contest {
	return predicate.Contest(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Contest {
	return predicate.Contest(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Contest {
	return predicate.Contest(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Contest {
	return predicate.Contest(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Contest {
	return predicate.Contest(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Contest {
	return predicate.Contest(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Contest {
	return predicate.Contest(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Contest {
	return predicate.Contest(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Contest {
	return predicate.Contest(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Contest {
	return predicate.Contest(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Contest {
	return predicate.Contest(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Contest {
	return predicate.Contest(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Contest {
	return predicate.Contest(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Contest {
	return predicate.Contest(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Contest {
	return predicate.Contest(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Contest {
	return predicate.Contest(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasRegistrations applies the HasEdge predicate on the "registrations" edge.
func HasRegistrations() predicate.Contest {
	return predicate.Contest(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, RegistrationsTable, RegistrationsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRegistrationsWith applies the HasEdge predicate on the "registrations" edge with a given conditions (other predicates).
func HasRegistrationsWith(preds ...predicate.ContestRegistration) predicate.Contest {
	return predicate.Contest(func(s *sql.Selector) {
		step := newRegistrationsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Contest) predicate.Contest {
	return predicate.Contest(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Contest) predicate.Contest {
	return predicate.Contest(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Contest) predicate.Contest {
	return predicate.Contest(sql.NotPredicates(p))
}
