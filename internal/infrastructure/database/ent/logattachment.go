// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/lingolog/lingolog/internal/infrastructure/database/ent/contestregistration"
	"github.com/lingolog/lingolog/internal/infrastructure/database/ent/immersionlog"
	"github.com/lingolog/lingolog/internal/infrastructure/database/ent/logattachment"
)

// LogAttachment is the model entity for the LogAttachment schema.
type LogAttachment struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// LogID holds the value of the "log_id" field.
	LogID uuid.UUID `json:"log_id,omitempty"`
	// RegistrationID holds the value of the "registration_id" field.
	RegistrationID uuid.UUID `json:"registration_id,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the LogAttachmentQuery when eager-loading is set.
	Edges        LogAttachmentEdges `json:"edges"`
	selectValues sql.SelectValues
}

// LogAttachmentEdges holds the relations/edges for other nodes in the graph.
type LogAttachmentEdges struct {
	// Log holds the value of the log edge.
	Log *ImmersionLog `json:"log,omitempty"`
	// Registration holds the value of the registration edge.
	Registration *ContestRegistration `json:"registration,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// LogOrErr returns the Log value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e LogAttachmentEdges) LogOrErr() (*ImmersionLog, error) {
	if e.Log != nil {
		return e.Log, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: immersionlog.Label}
	}
	return nil, &NotLoadedError{edge: "log"}
}

// RegistrationOrErr returns the Registration value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e LogAttachmentEdges) RegistrationOrErr() (*ContestRegistration, error) {
	if e.Registration != nil {
		return e.Registration, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: contestregistration.Label}
	}
	return nil, &NotLoadedError{edge: "registration"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LogAttachment) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case logattachment.FieldID:
			values[i] = new(sql.NullInt64)
		case logattachment.FieldLogID, logattachment.FieldRegistrationID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LogAttachment fields.
func (la *LogAttachment) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case logattachment.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			la.ID = int(value.Int64)
		case logattachment.FieldLogID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field log_id", values[i])
			} else if value != nil {
				la.LogID = *value
			}
		case logattachment.FieldRegistrationID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field registration_id", values[i])
			} else if value != nil {
				la.RegistrationID = *value
			}
		default:
			la.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LogAttachment.
// This includes values selected through modifiers, order, etc.
func (la *LogAttachment) Value(name string) (ent.Value, error) {
	return la.selectValues.Get(name)
}

// QueryLog queries the "log" edge of the LogAttachment entity.
func (la *LogAttachment) QueryLog() *ImmersionLogQuery {
	return NewLogAttachmentClient(la.config).QueryLog(la)
}

// QueryRegistration queries the "registration" edge of the LogAttachment entity.
func (la *LogAttachment) QueryRegistration() *ContestRegistrationQuery {
	return NewLogAttachmentClient(la.config).QueryRegistration(la)
}

// Update returns a builder for updating this LogAttachment.
// Note that you need to call LogAttachment.Unwrap() before calling this method if this LogAttachment
// was returned from a transaction, and the transaction was committed or rolled back.
func (la *LogAttachment) Update() *LogAttachmentUpdateOne {
	return NewLogAttachmentClient(la.config).UpdateOne(la)
}

// Unwrap unwraps the LogAttachment entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (la *LogAttachment) Unwrap() *LogAttachment {
	_tx, ok := la.config.driver.(*txDriver)
	if !ok {
		panic("ent: LogAttachment is not a transactional entity")
	}
	la.config.driver = _tx.drv
	return la
}

// String implements the fmt.Stringer.
func (la *LogAttachment) String() string {
	var builder strings.Builder
	builder.WriteString("LogAttachment(")
	builder.WriteString(fmt.Sprintf("id=%v, ", la.ID))
	builder.WriteString("log_id=")
	builder.WriteString(fmt.Sprintf("%v", la.LogID))
	builder.WriteString(", ")
	builder.WriteString("registration_id=")
	builder.WriteString(fmt.Sprintf("%v", la.RegistrationID))
	builder.WriteByte(')')
	return builder.String()
}

// LogAttachments is a parsable slice of LogAttachment.
type LogAttachments []*LogAttachment
