// Code generated by ent, DO NOT EDIT.

package immersionlog

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/lingolog/lingolog/internal/infrastructure/database/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v int64) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldEQ(FieldUserID, v))
}

// LanguageCode applies equality check predicate on the "language_code" field. It's identical to LanguageCodeEQ.
func LanguageCode(v string) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldEQ(FieldLanguageCode, v))
}

// ActivityID applies equality check predicate on the "activity_id" field. It's identical to ActivityIDEQ.
func ActivityID(v int32) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldEQ(FieldActivityID, v))
}

// Amount applies equality check predicate on the "amount" field. It's identical to AmountEQ.
func Amount(v float64) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldEQ(FieldAmount, v))
}

// UnitID applies equality check predicate on the "unit_id" field. It's identical to UnitIDEQ.
func UnitID(v uuid.UUID) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldEQ(FieldUnitID, v))
}

// UnitName applies equality check predicate on the "unit_name" field. It's identical to UnitNameEQ.
func UnitName(v string) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldEQ(FieldUnitName, v))
}

// DurationSeconds applies equality check predicate on the "duration_seconds" field. It's identical to DurationSecondsEQ.
func DurationSeconds(v int64) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldEQ(FieldDurationSeconds, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v float64) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldEQ(FieldScore, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldEQ(FieldDescription, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v int64) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v int64) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...int64) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...int64) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v int64) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v int64) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v int64) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v int64) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldLTE(FieldUserID, v))
}

// LanguageCodeEQ applies the EQ predicate on the "language_code" field.
func LanguageCodeEQ(v string) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldEQ(FieldLanguageCode, v))
}

// LanguageCodeNEQ applies the NEQ predicate on the "language_code" field.
func LanguageCodeNEQ(v string) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldNEQ(FieldLanguageCode, v))
}

// LanguageCodeIn applies the In predicate on the "language_code" field.
func LanguageCodeIn(vs ...string) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldIn(FieldLanguageCode, vs...))
}

// LanguageCodeNotIn applies the NotIn predicate on the "language_code" field.
func LanguageCodeNotIn(vs ...string) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldNotIn(FieldLanguageCode, vs...))
}

// LanguageCodeGT applies the GT predicate on the "language_code" field.
func LanguageCodeGT(v string) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldGT(FieldLanguageCode, v))
}

// LanguageCodeGTE applies the GTE predicate on the "language_code" field.
func LanguageCodeGTE(v string) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldGTE(FieldLanguageCode, v))
}

// LanguageCodeLT applies the LT predicate on the "language_code" field.
func LanguageCodeLT(v string) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldLT(FieldLanguageCode, v))
}

// LanguageCodeLTE applies the LTE predicate on the "language_code" field.
func LanguageCodeLTE(v string) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldLTE(FieldLanguageCode, v))
}

// LanguageCodeContains applies the Contains predicate on the "language_code" field.
func LanguageCodeContains(v string) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldContains(FieldLanguageCode, v))
}

// LanguageCodeHasPrefix applies the HasPrefix predicate on the "language_code" field.
func LanguageCodeHasPrefix(v string) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldHasPrefix(FieldLanguageCode, v))
}

// LanguageCodeHasSuffix applies the HasSuffix predicate on the "language_code" field.
func LanguageCodeHasSuffix(v string) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldHasSuffix(FieldLanguageCode, v))
}

// LanguageCodeEqualFold applies the EqualFold predicate on the "language_code" field.
func LanguageCodeEqualFold(v string) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldEqualFold(FieldLanguageCode, v))
}

// LanguageCodeContainsFold applies the ContainsFold predicate on the "language_code" field.
func LanguageCodeContainsFold(v string) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldContainsFold(FieldLanguageCode, v))
}

// ActivityIDEQ applies the EQ predicate on the "activity_id" field.
func ActivityIDEQ(v int32) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldEQ(FieldActivityID, v))
}

// ActivityIDNEQ applies the NEQ predicate on the "activity_id" field.
func ActivityIDNEQ(v int32) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldNEQ(FieldActivityID, v))
}

// ActivityIDIn applies the In predicate on the "activity_id" field.
func ActivityIDIn(vs ...int32) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldIn(FieldActivityID, vs...))
}

// ActivityIDNotIn applies the NotIn predicate on the "activity_id" field.
func ActivityIDNotIn(vs ...int32) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldNotIn(FieldActivityID, vs...))
}

// ActivityIDGT applies the GT predicate on the "activity_id" field.
func ActivityIDGT(v int32) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldGT(FieldActivityID, v))
}

// ActivityIDGTE applies the GTE predicate on the "activity_id" field.
func ActivityIDGTE(v int32) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldGTE(FieldActivityID, v))
}

// ActivityIDLT applies the LT predicate on the "activity_id" field.
func ActivityIDLT(v int32) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldLT(FieldActivityID, v))
}

// ActivityIDLTE applies the LTE predicate on the "activity_id" field.
func ActivityIDLTE(v int32) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldLTE(FieldActivityID, v))
}

// AmountEQ applies the EQ predicate on the "amount" field.
func AmountEQ(v float64) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldEQ(FieldAmount, v))
}

// AmountNEQ applies the NEQ predicate on the "amount" field.
func AmountNEQ(v float64) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldNEQ(FieldAmount, v))
}

// AmountIn applies the In predicate on the "amount" field.
func AmountIn(vs ...float64) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldIn(FieldAmount, vs...))
}

// AmountNotIn applies the NotIn predicate on the "amount" field.
func AmountNotIn(vs ...float64) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldNotIn(FieldAmount, vs...))
}

// AmountGT applies the GT predicate on the "amount" field.
func AmountGT(v float64) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldGT(FieldAmount, v))
}

// AmountGTE applies the GTE predicate on the "amount" field.
func AmountGTE(v float64) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldGTE(FieldAmount, v))
}

// AmountLT applies the LT predicate on the "amount" field.
func AmountLT(v float64) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldLT(FieldAmount, v))
}

// AmountLTE applies the LTE predicate on the "amount" field.
func AmountLTE(v float64) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldLTE(FieldAmount, v))
}

// AmountIsNil applies the IsNil predicate on the "amount" field.
func AmountIsNil() predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldIsNull(FieldAmount))
}

// AmountNotNil applies the NotNil predicate on the "amount" field.
func AmountNotNil() predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldNotNull(FieldAmount))
}

// UnitIDEQ applies the EQ predicate on the "unit_id" field.
func UnitIDEQ(v uuid.UUID) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldEQ(FieldUnitID, v))
}

// UnitIDNEQ applies the NEQ predicate on the "unit_id" field.
func UnitIDNEQ(v uuid.UUID) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldNEQ(FieldUnitID, v))
}

// UnitIDIn applies the In predicate on the "unit_id" field.
func UnitIDIn(vs ...uuid.UUID) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldIn(FieldUnitID, vs...))
}

// UnitIDNotIn applies the NotIn predicate on the "unit_id" field.
func UnitIDNotIn(vs ...uuid.UUID) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldNotIn(FieldUnitID, vs...))
}

// UnitIDGT applies the GT predicate on the "unit_id" field.
func UnitIDGT(v uuid.UUID) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldGT(FieldUnitID, v))
}

// UnitIDGTE applies the GTE predicate on the "unit_id" field.
func UnitIDGTE(v uuid.UUID) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldGTE(FieldUnitID, v))
}

// UnitIDLT applies the LT predicate on the "unit_id" field.
func UnitIDLT(v uuid.UUID) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldLT(FieldUnitID, v))
}

// UnitIDLTE applies the LTE predicate on the "unit_id" field.
func UnitIDLTE(v uuid.UUID) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldLTE(FieldUnitID, v))
}

// UnitIDIsNil applies the IsNil predicate on the "unit_id" field.
func UnitIDIsNil() predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldIsNull(FieldUnitID))
}

// UnitIDNotNil applies the NotNil predicate on the "unit_id" field.
func UnitIDNotNil() predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldNotNull(FieldUnitID))
}

// UnitNameEQ applies the EQ predicate on the "unit_name" field.
func UnitNameEQ(v string) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldEQ(FieldUnitName, v))
}

// UnitNameNEQ applies the NEQ predicate on the "unit_name" field.
func UnitNameNEQ(v string) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldNEQ(FieldUnitName, v))
}

// UnitNameIn applies the In predicate on the "unit_name" field.
func UnitNameIn(vs ...string) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldIn(FieldUnitName, vs...))
}

// UnitNameNotIn applies the NotIn predicate on the "unit_name" field.
func UnitNameNotIn(vs ...string) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldNotIn(FieldUnitName, vs...))
}

// UnitNameGT applies the GT predicate on the "unit_name" field.
func UnitNameGT(v string) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldGT(FieldUnitName, v))
}

// UnitNameGTE applies the GTE predicate on the "unit_name" field.
func UnitNameGTE(v string) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldGTE(FieldUnitName, v))
}

// UnitNameLT applies the LT predicate on the "unit_name" field.
func UnitNameLT(v string) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldLT(FieldUnitName, v))
}

// UnitNameLTE applies the LTE predicate on the "unit_name" field.
func UnitNameLTE(v string) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldLTE(FieldUnitName, v))
}

// UnitNameContains applies the Contains predicate on the "unit_name" field.
func UnitNameContains(v string) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldContains(FieldUnitName, v))
}

// UnitNameHasPrefix applies the HasPrefix predicate on the "unit_name" field.
func UnitNameHasPrefix(v string) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldHasPrefix(FieldUnitName, v))
}

// UnitNameHasSuffix applies the HasSuffix predicate on the "unit_name" field.
func UnitNameHasSuffix(v string) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldHasSuffix(FieldUnitName, v))
}

// UnitNameEqualFold applies the EqualFold predicate on the "unit_name" field.
func UnitNameEqualFold(v string) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldEqualFold(FieldUnitName, v))
}

// UnitNameContainsFold applies the ContainsFold predicate on the "unit_name" field.
func UnitNameContainsFold(v string) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldContainsFold(FieldUnitName, v))
}

// DurationSecondsEQ applies the EQ predicate on the "duration_seconds" field.
func DurationSecondsEQ(v int64) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldEQ(FieldDurationSeconds, v))
}

// DurationSecondsNEQ applies the NEQ predicate on the "duration_seconds" field.
func DurationSecondsNEQ(v int64) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldNEQ(FieldDurationSeconds, v))
}

// DurationSecondsIn applies the In predicate on the "duration_seconds" field.
func DurationSecondsIn(vs ...int64) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldIn(FieldDurationSeconds, vs...))
}

// DurationSecondsNotIn applies the NotIn predicate on the "duration_seconds" field.
func DurationSecondsNotIn(vs ...int64) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldNotIn(FieldDurationSeconds, vs...))
}

// DurationSecondsGT applies the GT predicate on the "duration_seconds" field.
func DurationSecondsGT(v int64) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldGT(FieldDurationSeconds, v))
}

// DurationSecondsGTE applies the GTE predicate on the "duration_seconds" field.
func DurationSecondsGTE(v int64) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldGTE(FieldDurationSeconds, v))
}

// DurationSecondsLT applies the LT predicate on the "duration_seconds" field.
func DurationSecondsLT(v int64) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldLT(FieldDurationSeconds, v))
}

// DurationSecondsLTE applies the LTE predicate on the "duration_seconds" field.
func DurationSecondsLTE(v int64) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldLTE(FieldDurationSeconds, v))
}

// DurationSecondsIsNil applies the IsNil predicate on the "duration_seconds" field.
func DurationSecondsIsNil() predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldIsNull(FieldDurationSeconds))
}

// DurationSecondsNotNil applies the NotNil predicate on the "duration_seconds" field.
func DurationSecondsNotNil() predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldNotNull(FieldDurationSeconds))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v float64) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v float64) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...float64) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...float64) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v float64) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v float64) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v float64) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v float64) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldLTE(FieldScore, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldContainsFold(FieldDescription, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasAttachments applies the HasEdge predicate on the "attachments" edge.
func HasAttachments() predicate.ImmersionLog {
	return predicate.ImmersionLog(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AttachmentsTable, AttachmentsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAttachmentsWith applies the HasEdge predicate on the "attachments" edge with a given conditions (other predicates).
func HasAttachmentsWith(preds ...predicate.LogAttachment) predicate.ImmersionLog {
	return predicate.ImmersionLog(func(s *sql.Selector) {
		step := newAttachmentsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ImmersionLog) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ImmersionLog) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ImmersionLog) predicate.ImmersionLog {
	return predicate.ImmersionLog(sql.NotPredicates(p))
}
