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
)

// Contest is the model entity for the Contest schema.
type Contest struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// ContestStart holds the value of the "contest_start" field.
	ContestStart time.Time `json:"contest_start,omitempty"`
	// ContestEnd holds the value of the "contest_end" field.
	ContestEnd time.Time `json:"contest_end,omitempty"`
	// RegistrationEnd holds the value of the "registration_end" field.
	RegistrationEnd time.Time `json:"registration_end,omitempty"`
	// Official holds the value of the "official" field.
	Official bool `json:"official,omitempty"`
	// Private holds the value of the "private" field.
	Private bool `json:"private,omitempty"`
	// AllowedActivities holds the value of the "allowed_activities" field.
	AllowedActivities []int32 `json:"allowed_activities,omitempty"`
	// AllowedLanguages holds the value of the "allowed_languages" field.
	AllowedLanguages []string `json:"allowed_languages,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ContestQuery when eager-loading is set.
	Edges        ContestEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ContestEdges holds the relations/edges for other nodes in the graph.
type ContestEdges struct {
	// Registrations holds the value of the registrations edge.
	Registrations []*ContestRegistration `json:"registrations,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// RegistrationsOrErr returns the Registrations value or an error if the edge
// was not loaded in eager-loading.
func (e ContestEdges) RegistrationsOrErr() ([]*ContestRegistration, error) {
	if e.loadedTypes[0] {
		return e.Registrations, nil
	}
	return nil, &NotLoadedError{edge: "registrations"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Contest) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case contest.FieldAllowedActivities, contest.FieldAllowedLanguages:
			values[i] = new([]byte)
		case contest.FieldOfficial, contest.FieldPrivate:
			values[i] = new(sql.NullBool)
		case contest.FieldTitle, contest.FieldDescription:
			values[i] = new(sql.NullString)
		case contest.FieldContestStart, contest.FieldContestEnd, contest.FieldRegistrationEnd, contest.FieldCreatedAt, contest.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case contest.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Contest fields.
func (c *Contest) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case contest.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				c.ID = *value
			}
		case contest.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				c.Title = value.String
			}
		case contest.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				c.Description = value.String
			}
		case contest.FieldContestStart:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field contest_start", values[i])
			} else if value.Valid {
				c.ContestStart = value.Time
			}
		case contest.FieldContestEnd:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field contest_end", values[i])
			} else if value.Valid {
				c.ContestEnd = value.Time
			}
		case contest.FieldRegistrationEnd:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field registration_end", values[i])
			} else if value.Valid {
				c.RegistrationEnd = value.Time
			}
		case contest.FieldOfficial:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field official", values[i])
			} else if value.Valid {
				c.Official = value.Bool
			}
		case contest.FieldPrivate:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field private", values[i])
			} else if value.Valid {
				c.Private = value.Bool
			}
		case contest.FieldAllowedActivities:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field allowed_activities", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &c.AllowedActivities); err != nil {
					return fmt.Errorf("unmarshal field allowed_activities: %w", err)
				}
			}
		case contest.FieldAllowedLanguages:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field allowed_languages", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &c.AllowedLanguages); err != nil {
					return fmt.Errorf("unmarshal field allowed_languages: %w", err)
				}
			}
		case contest.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				c.CreatedAt = value.Time
			}
		case contest.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				c.UpdatedAt = value.Time
			}
		default:
			c.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Contest.
// This includes values selected through modifiers, order, etc.
func (c *Contest) Value(name string) (ent.Value, error) {
	return c.selectValues.Get(name)
}

// QueryRegistrations queries the "registrations" edge of the Contest entity.
func (c *Contest) QueryRegistrations() *ContestRegistrationQuery {
	return NewContestClient(c.config).QueryRegistrations(c)
}

// Update returns a builder for updating this Contest.
// Note that you need to call Contest.Unwrap() before calling this method if this Contest
// was returned from a transaction, and the transaction was committed or rolled back.
func (c *Contest) Update() *ContestUpdateOne {
	return NewContestClient(c.config).UpdateOne(c)
}

// Unwrap unwraps the Contest entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (c *Contest) Unwrap() *Contest {
	_tx, ok := c.config.driver.(*txDriver)
	if !ok {
		panic("ent: Contest is not a transactional entity")
	}
	c.config.driver = _tx.drv
	return c
}

// String implements the fmt.Stringer.
func (c *Contest) String() string {
	var builder strings.Builder
	builder.WriteString("Contest(")
	builder.WriteString(fmt.Sprintf("id=%v, ", c.ID))
	builder.WriteString("title=")
	builder.WriteString(c.Title)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(c.Description)
	builder.WriteString(", ")
	builder.WriteString("contest_start=")
	builder.WriteString(c.ContestStart.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("contest_end=")
	builder.WriteString(c.ContestEnd.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("registration_end=")
	builder.WriteString(c.RegistrationEnd.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("official=")
	builder.WriteString(fmt.Sprintf("%v", c.Official))
	builder.WriteString(", ")
	builder.WriteString("private=")
	builder.WriteString(fmt.Sprintf("%v", c.Private))
	builder.WriteString(", ")
	builder.WriteString("allowed_activities=")
	builder.WriteString(fmt.Sprintf("%v", c.AllowedActivities))
	builder.WriteString(", ")
	builder.WriteString("allowed_languages=")
	builder.WriteString(fmt.Sprintf("%v", c.AllowedLanguages))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(c.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(c.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Contests is a parsable slice of Contest.
type Contests []*Contest
