// Code generated by ent, DO NOT EDIT.

package contest

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the contest type in the database.
	Label = "contest"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldContestStart holds the string denoting the contest_start field in the database.
	FieldContestStart = "contest_start"
	// FieldContestEnd holds the string denoting the contest_end field in the database.
	FieldContestEnd = "contest_end"
	// FieldRegistrationEnd holds the string denoting the registration_end field in the database.
	FieldRegistrationEnd = "registration_end"
	// FieldOfficial holds the string denoting the official field in the database.
	FieldOfficial = "official"
	// FieldPrivate holds the string denoting the private field in the database.
	FieldPrivate = "private"
	// FieldAllowedActivities holds the string denoting the allowed_activities field in the database.
	FieldAllowedActivities = "allowed_activities"
	// FieldAllowedLanguages holds the string denoting the allowed_languages field in the database.
	FieldAllowedLanguages = "allowed_languages"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeRegistrations holds the string denoting the registrations edge name in mutations.
	EdgeRegistrations = "registrations"
	// Table holds the table name of the contest in the database.
	Table = "contests"
	// RegistrationsTable is the table that holds the registrations relation/edge.
	RegistrationsTable = "contest_registrations"
	// RegistrationsInverseTable is the table name for the ContestRegistration entity.
	// It exists in this package in order to avoid circular dependency with the "contestregistration" package.
	RegistrationsInverseTable = "contest_registrations"
	// RegistrationsColumn is the table column denoting the registrations relation/edge.
	RegistrationsColumn = "contest_id"
)

// Columns holds all SQL columns for contest fields.
var Columns = []string{
	FieldID,
	FieldTitle,
	FieldDescription,
	FieldContestStart,
	FieldContestEnd,
	FieldRegistrationEnd,
	FieldOfficial,
	FieldPrivate,
	FieldAllowedActivities,
	FieldAllowedLanguages,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// TitleValidator is a validator for the "title" field. It is called by the builders before save.
	TitleValidator func(string) error
	// DefaultDescription holds the default value on creation for the "description" field.
	DefaultDescription string
	// DefaultOfficial holds the default value on creation for the "official" field.
	DefaultOfficial bool
	// DefaultPrivate holds the default value on creation for the "private" field.
	DefaultPrivate bool
	// DefaultAllowedActivities holds the default value on creation for the "allowed_activities" field.
	DefaultAllowedActivities []int32
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Contest queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByContestStart orders the results by the contest_start field.
func ByContestStart(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContestStart, opts...).ToFunc()
}

// ByContestEnd orders the results by the contest_end field.
func ByContestEnd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContestEnd, opts...).ToFunc()
}

// ByRegistrationEnd orders the results by the registration_end field.
func ByRegistrationEnd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRegistrationEnd, opts...).ToFunc()
}

// ByOfficial orders the results by the official field.
func ByOfficial(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOfficial, opts...).ToFunc()
}

// ByPrivate orders the results by the private field.
func ByPrivate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrivate, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByRegistrationsCount orders the results by registrations count.
func ByRegistrationsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newRegistrationsStep(), opts...)
	}
}

// ByRegistrations orders the results by registrations terms.
func ByRegistrations(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRegistrationsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newRegistrationsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RegistrationsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, RegistrationsTable, RegistrationsColumn),
	)
}
