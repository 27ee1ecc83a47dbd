// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/lingolog/lingolog/internal/infrastructure/database/ent/contest"
	"github.com/lingolog/lingolog/internal/infrastructure/database/ent/contestregistration"
)

// ContestRegistration is the model entity for the ContestRegistration schema.
type ContestRegistration struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ContestID holds the value of the "contest_id" field.
	ContestID uuid.UUID `json:"contest_id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID int64 `json:"user_id,omitempty"`
	// UserDisplayName holds the value of the "user_display_name" field.
	UserDisplayName string `json:"user_display_name,omitempty"`
	// Languages holds the value of the "languages" field.
	Languages []string `json:"languages,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ContestRegistrationQuery when eager-loading is set.
	Edges        ContestRegistrationEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ContestRegistrationEdges holds the relations/edges for other nodes in the graph.
type ContestRegistrationEdges struct {
	// Contest holds the value of the contest edge.
	Contest *Contest `json:"contest,omitempty"`
	// Attachments holds the value of the attachments edge.
	Attachments []*LogAttachment `json:"attachments,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// ContestOrErr returns the Contest value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ContestRegistrationEdges) ContestOrErr() (*Contest, error) {
	if e.Contest != nil {
		return e.Contest, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: contest.Label}
	}
	return nil, &NotLoadedError{edge: "contest"}
}

// AttachmentsOrErr returns the Attachments value or an error if the edge
// was not loaded in eager-loading.
func (e ContestRegistrationEdges) AttachmentsOrErr() ([]*LogAttachment, error) {
	if e.loadedTypes[1] {
		return e.Attachments, nil
	}
	return nil, &NotLoadedError{edge: "attachments"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ContestRegistration) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case contestregistration.FieldLanguages:
			values[i] = new([]byte)
		case contestregistration.FieldUserID:
			values[i] = new(sql.NullInt64)
		case contestregistration.FieldUserDisplayName:
			values[i] = new(sql.NullString)
		case contestregistration.FieldCreatedAt, contestregistration.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case contestregistration.FieldID, contestregistration.FieldContestID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ContestRegistration fields.
func (cr *ContestRegistration) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case contestregistration.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				cr.ID = *value
			}
		case contestregistration.FieldContestID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field contest_id", values[i])
			} else if value != nil {
				cr.ContestID = *value
			}
		case contestregistration.FieldUserID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				cr.UserID = value.Int64
			}
		case contestregistration.FieldUserDisplayName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_display_name", values[i])
			} else if value.Valid {
				cr.UserDisplayName = value.String
			}
		case contestregistration.FieldLanguages:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field languages", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &cr.Languages); err != nil {
					return fmt.Errorf("unmarshal field languages: %w", err)
				}
			}
		case contestregistration.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				cr.CreatedAt = value.Time
			}
		case contestregistration.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				cr.UpdatedAt = value.Time
			}
		default:
			cr.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ContestRegistration.
// This includes values selected through modifiers, order, etc.
func (cr *ContestRegistration) Value(name string) (ent.Value, error) {
	return cr.selectValues.Get(name)
}

// QueryContest queries the "contest" edge of the ContestRegistration entity.
func (cr *ContestRegistration) QueryContest() *ContestQuery {
	return NewContestRegistrationClient(cr.config).QueryContest(cr)
}

// QueryAttachments queries the "attachments" edge of the ContestRegistration entity.
func (cr *ContestRegistration) QueryAttachments() *LogAttachmentQuery {
	return NewContestRegistrationClient(cr.config).QueryAttachments(cr)
}

// Update returns a builder for updating this ContestRegistration.
// Note that you need to call ContestRegistration.Unwrap() before calling this method if this ContestRegistration
// was returned from a transaction, and the transaction was committed or rolled back.
func (cr *ContestRegistration) Update() *ContestRegistrationUpdateOne {
	return NewContestRegistrationClient(cr.config).UpdateOne(cr)
}

// Unwrap unwraps the ContestRegistration entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (cr *ContestRegistration) Unwrap() *ContestRegistration {
	_tx, ok := cr.config.driver.(*txDriver)
	if !ok {
		panic("ent: ContestRegistration is not a transactional entity")
	}
	cr.config.driver = _tx.drv
	return cr
}

// String implements the fmt.Stringer.
func (cr *ContestRegistration) String() string {
	var builder strings.Builder
	builder.WriteString("ContestRegistration(")
	builder.WriteString(fmt.Sprintf("id=%v, ", cr.ID))
	builder.WriteString("contest_id=")
	builder.WriteString(fmt.Sprintf("%v", cr.ContestID))
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", cr.UserID))
	builder.WriteString(", ")
	builder.WriteString("user_display_name=")
	builder.WriteString(cr.UserDisplayName)
	builder.WriteString(", ")
	builder.WriteString("languages=")
	builder.WriteString(fmt.Sprintf("%v", cr.Languages))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(cr.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(cr.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ContestRegistrations is a parsable slice of ContestRegistration.
type ContestRegistrations []*ContestRegistration
