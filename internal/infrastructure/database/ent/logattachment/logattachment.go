// Code generated by ent, DO NOT EDIT.

package logattachment

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the logattachment type in the database.
	Label = "log_attachment"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldLogID holds the string denoting the log_id field in the database.
	FieldLogID = "log_id"
	// FieldRegistrationID holds the string denoting the registration_id field in the database.
	FieldRegistrationID = "registration_id"
	// EdgeLog holds the string denoting the log edge name in mutations.
	EdgeLog = "log"
	// EdgeRegistration holds the string denoting the registration edge name in mutations.
	EdgeRegistration = "registration"
	// Table holds the table name of the logattachment in the database.
	Table = "log_attachments"
	// LogTable is the table that holds the log relation/edge.
	LogTable = "log_attachments"
	// LogInverseTable is the table name for the ImmersionLog entity.
	// It exists in this package in order to avoid circular dependency with the "immersionlog" package.
	LogInverseTable = "immersion_logs"
	// LogColumn is the table column denoting the log relation/edge.
	LogColumn = "log_id"
	// RegistrationTable is the table that holds the registration relation/edge.
	RegistrationTable = "log_attachments"
	// RegistrationInverseTable is the table name for the ContestRegistration entity.
	// It exists in this package in order to avoid circular dependency with the "contestregistration" package.
	RegistrationInverseTable = "contest_registrations"
	// RegistrationColumn is the table column denoting the registration relation/edge.
	RegistrationColumn = "registration_id"
)

// Columns holds all SQL columns for logattachment fields.
var Columns = []string{
	FieldID,
	FieldLogID,
	FieldRegistrationID,
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

// OrderOption defines the ordering options for the LogAttachment queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByLogID orders the results by the log_id field.
func ByLogID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLogID, opts...).ToFunc()
}

// ByRegistrationID orders the results by the registration_id field.
func ByRegistrationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRegistrationID, opts...).ToFunc()
}

// ByLogField orders the results by log field.
func ByLogField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newLogStep(), sql.OrderByField(field, opts...))
	}
}

// ByRegistrationField orders the results by registration field.
func ByRegistrationField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRegistrationStep(), sql.OrderByField(field, opts...))
	}
}
func newLogStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(LogInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, LogTable, LogColumn),
	)
}
func newRegistrationStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RegistrationInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, RegistrationTable, RegistrationColumn),
	)
}
