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
	"github.com/lingolog/lingolog/internal/infrastructure/database/ent/immersionlog"
)

// ImmersionLog is the model entity for the ImmersionLog schema.
type ImmersionLog struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID int64 `json:"user_id,omitempty"`
	// LanguageCode holds the value of the "language_code" field.
	LanguageCode string `json:"language_code,omitempty"`
	// ActivityID holds the value of the "activity_id" field.
	ActivityID int32 `json:"activity_id,omitempty"`
	// Amount holds the value of the "amount" field.
	Amount *float64 `json:"amount,omitempty"`
	// UnitID holds the value of the "unit_id" field.
	UnitID *uuid.UUID `json:"unit_id,omitempty"`
	// UnitName holds the value of the "unit_name" field.
	UnitName string `json:"unit_name,omitempty"`
	// DurationSeconds holds the value of the "duration_seconds" field.
	DurationSeconds *int64 `json:"duration_seconds,omitempty"`
	// Score holds the value of the "score" field.
	Score float64 `json:"score,omitempty"`
	// Tags holds the value of the "tags" field.
	Tags []string `json:"tags,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ImmersionLogQuery when eager-loading is set.
	Edges        ImmersionLogEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ImmersionLogEdges holds the relations/edges for other nodes in the graph.
type ImmersionLogEdges struct {
	// Attachments holds the value of the attachments edge.
	Attachments []*LogAttachment `json:"attachments,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// AttachmentsOrErr returns the Attachments value or an error if the edge
// was not loaded in eager-loading.
func (e ImmersionLogEdges) AttachmentsOrErr() ([]*LogAttachment, error) {
	if e.loadedTypes[0] {
		return e.Attachments, nil
	}
	return nil, &NotLoadedError{edge: "attachments"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ImmersionLog) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case immersionlog.FieldUnitID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case immersionlog.FieldTags:
			values[i] = new([]byte)
		case immersionlog.FieldAmount, immersionlog.FieldScore:
			values[i] = new(sql.NullFloat64)
		case immersionlog.FieldUserID, immersionlog.FieldActivityID, immersionlog.FieldDurationSeconds:
			values[i] = new(sql.NullInt64)
		case immersionlog.FieldLanguageCode, immersionlog.FieldUnitName, immersionlog.FieldDescription:
			values[i] = new(sql.NullString)
		case immersionlog.FieldCreatedAt, immersionlog.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case immersionlog.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ImmersionLog fields.
func (il *ImmersionLog) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case immersionlog.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				il.ID = *value
			}
		case immersionlog.FieldUserID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				il.UserID = value.Int64
			}
		case immersionlog.FieldLanguageCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field language_code", values[i])
			} else if value.Valid {
				il.LanguageCode = value.String
			}
		case immersionlog.FieldActivityID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field activity_id", values[i])
			} else if value.Valid {
				il.ActivityID = int32(value.Int64)
			}
		case immersionlog.FieldAmount:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field amount", values[i])
			} else if value.Valid {
				il.Amount = new(float64)
				*il.Amount = value.Float64
			}
		case immersionlog.FieldUnitID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field unit_id", values[i])
			} else if value.Valid {
				il.UnitID = new(uuid.UUID)
				*il.UnitID = *value.S.(*uuid.UUID)
			}
		case immersionlog.FieldUnitName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field unit_name", values[i])
			} else if value.Valid {
				il.UnitName = value.String
			}
		case immersionlog.FieldDurationSeconds:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_seconds", values[i])
			} else if value.Valid {
				il.DurationSeconds = new(int64)
				*il.DurationSeconds = value.Int64
			}
		case immersionlog.FieldScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				il.Score = value.Float64
			}
		case immersionlog.FieldTags:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field tags", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &il.Tags); err != nil {
					return fmt.Errorf("unmarshal field tags: %w", err)
				}
			}
		case immersionlog.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				il.Description = value.String
			}
		case immersionlog.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				il.CreatedAt = value.Time
			}
		case immersionlog.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				il.UpdatedAt = value.Time
			}
		default:
			il.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ImmersionLog.
// This includes values selected through modifiers, order, etc.
func (il *ImmersionLog) Value(name string) (ent.Value, error) {
	return il.selectValues.Get(name)
}

// QueryAttachments queries the "attachments" edge of the ImmersionLog entity.
func (il *ImmersionLog) QueryAttachments() *LogAttachmentQuery {
	return NewImmersionLogClient(il.config).QueryAttachments(il)
}

// Update returns a builder for updating this ImmersionLog.
// Note that you need to call ImmersionLog.Unwrap() before calling this method if this ImmersionLog
// was returned from a transaction, and the transaction was committed or rolled back.
func (il *ImmersionLog) Update() *ImmersionLogUpdateOne {
	return NewImmersionLogClient(il.config).UpdateOne(il)
}

// Unwrap unwraps the ImmersionLog entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (il *ImmersionLog) Unwrap() *ImmersionLog {
	_tx, ok := il.config.driver.(*txDriver)
	if !ok {
		panic("ent: ImmersionLog is not a transactional entity")
	}
	il.config.driver = _tx.drv
	return il
}

// String implements the fmt.Stringer.
func (il *ImmersionLog) String() string {
	var builder strings.Builder
	builder.WriteString("ImmersionLog(")
	builder.WriteString(fmt.Sprintf("id=%v, ", il.ID))
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", il.UserID))
	builder.WriteString(", ")
	builder.WriteString("language_code=")
	builder.WriteString(il.LanguageCode)
	builder.WriteString(", ")
	builder.WriteString("activity_id=")
	builder.WriteString(fmt.Sprintf("%v", il.ActivityID))
	builder.WriteString(", ")
	if v := il.Amount; v != nil {
		builder.WriteString("amount=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := il.UnitID; v != nil {
		builder.WriteString("unit_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("unit_name=")
	builder.WriteString(il.UnitName)
	builder.WriteString(", ")
	if v := il.DurationSeconds; v != nil {
		builder.WriteString("duration_seconds=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", il.Score))
	builder.WriteString(", ")
	builder.WriteString("tags=")
	builder.WriteString(fmt.Sprintf("%v", il.Tags))
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(il.Description)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(il.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(il.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ImmersionLogs is a parsable slice of ImmersionLog.
type ImmersionLogs []*ImmersionLog
