// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/lingolog/lingolog/internal/infrastructure/database/ent/contest"
	"github.com/lingolog/lingolog/internal/infrastructure/database/ent/contestregistration"
	"github.com/lingolog/lingolog/internal/infrastructure/database/ent/immersionlog"
	"github.com/lingolog/lingolog/internal/infrastructure/database/ent/logattachment"
	"github.com/lingolog/lingolog/internal/infrastructure/database/ent/predicate"
	"github.com/lingolog/lingolog/internal/infrastructure/database/ent/tag"
	"github.com/lingolog/lingolog/internal/infrastructure/database/ent/unit"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeContest             = "Contest"
	TypeContestRegistration = "ContestRegistration"
	TypeImmersionLog        = "ImmersionLog"
	TypeLogAttachment       = "LogAttachment"
	TypeTag                 = "Tag"
	TypeUnit                = "Unit"
)

// ContestMutation represents an operation that mutates the Contest nodes in the graph.
type ContestMutation struct {
	config
	op                       Op
	typ                      string
	id                       *uuid.UUID
	title                    *string
	description              *string
	contest_start            *time.Time
	contest_end              *time.Time
	registration_end         *time.Time
	official                 *bool
	private                  *bool
	allowed_activities       *[]int32
	appendallowed_activities []int32
	allowed_languages        *[]string
	appendallowed_languages  []string
	created_at               *time.Time
	updated_at               *time.Time
	clearedFields            map[string]struct{}
	registrations            map[uuid.UUID]struct{}
	removedregistrations     map[uuid.UUID]struct{}
	clearedregistrations     bool
	done                     bool
	oldValue                 func(context.Context) (*Contest, error)
	predicates               []predicate.Contest
}

var _ ent.Mutation = (*ContestMutation)(nil)

// contestOption allows management of the mutation configuration using functional options.
type contestOption func(*ContestMutation)

// newContestMutation creates new mutation for the Contest entity.
func newContestMutation(c config, op Op, opts ...contestOption) *ContestMutation {
	m := &ContestMutation{
		config:        c,
		op:            op,
		typ:           TypeContest,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withContestID sets the ID field of the mutation.
func withContestID(id uuid.UUID) contestOption {
	return func(m *ContestMutation) {
		var (
			err   error
			once  sync.Once
			value *Contest
		)
		m.oldValue = func(ctx context.Context) (*Contest, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Contest.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withContest sets the old Contest of the mutation.
func withContest(node *Contest) contestOption {
	return func(m *ContestMutation) {
		m.oldValue = func(context.Context) (*Contest, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ContestMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ContestMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Contest entities.
func (m *ContestMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ContestMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ContestMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Contest.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTitle sets the "title" field.
func (m *ContestMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *ContestMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Contest entity.
// If the Contest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContestMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *ContestMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *ContestMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ContestMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Contest entity.
// If the Contest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContestMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *ContestMutation) ResetDescription() {
	m.description = nil
}

// SetContestStart sets the "contest_start" field.
func (m *ContestMutation) SetContestStart(t time.Time) {
	m.contest_start = &t
}

// ContestStart returns the value of the "contest_start" field in the mutation.
func (m *ContestMutation) ContestStart() (r time.Time, exists bool) {
	v := m.contest_start
	if v == nil {
		return
	}
	return *v, true
}

// OldContestStart returns the old "contest_start" field's value of the Contest entity.
// If the Contest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContestMutation) OldContestStart(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContestStart is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContestStart requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContestStart: %w", err)
	}
	return oldValue.ContestStart, nil
}

// ResetContestStart resets all changes to the "contest_start" field.
func (m *ContestMutation) ResetContestStart() {
	m.contest_start = nil
}

// SetContestEnd sets the "contest_end" field.
func (m *ContestMutation) SetContestEnd(t time.Time) {
	m.contest_end = &t
}

// ContestEnd returns the value of the "contest_end" field in the mutation.
func (m *ContestMutation) ContestEnd() (r time.Time, exists bool) {
	v := m.contest_end
	if v == nil {
		return
	}
	return *v, true
}

// OldContestEnd returns the old "contest_end" field's value of the Contest entity.
// If the Contest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContestMutation) OldContestEnd(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContestEnd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContestEnd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContestEnd: %w", err)
	}
	return oldValue.ContestEnd, nil
}

// ResetContestEnd resets all changes to the "contest_end" field.
func (m *ContestMutation) ResetContestEnd() {
	m.contest_end = nil
}

// SetRegistrationEnd sets the "registration_end" field.
func (m *ContestMutation) SetRegistrationEnd(t time.Time) {
	m.registration_end = &t
}

// RegistrationEnd returns the value of the "registration_end" field in the mutation.
func (m *ContestMutation) RegistrationEnd() (r time.Time, exists bool) {
	v := m.registration_end
	if v == nil {
		return
	}
	return *v, true
}

// OldRegistrationEnd returns the old "registration_end" field's value of the Contest entity.
// If the Contest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContestMutation) OldRegistrationEnd(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRegistrationEnd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRegistrationEnd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRegistrationEnd: %w", err)
	}
	return oldValue.RegistrationEnd, nil
}

// ResetRegistrationEnd resets all changes to the "registration_end" field.
func (m *ContestMutation) ResetRegistrationEnd() {
	m.registration_end = nil
}

// SetOfficial sets the "official" field.
func (m *ContestMutation) SetOfficial(b bool) {
	m.official = &b
}

// Official returns the value of the "official" field in the mutation.
func (m *ContestMutation) Official() (r bool, exists bool) {
	v := m.official
	if v == nil {
		return
	}
	return *v, true
}

// OldOfficial returns the old "official" field's value of the Contest entity.
// If the Contest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContestMutation) OldOfficial(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOfficial is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOfficial requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOfficial: %w", err)
	}
	return oldValue.Official, nil
}

// ResetOfficial resets all changes to the "official" field.
func (m *ContestMutation) ResetOfficial() {
	m.official = nil
}

// SetPrivate sets the "private" field.
func (m *ContestMutation) SetPrivate(b bool) {
	m.private = &b
}

// Private returns the value of the "private" field in the mutation.
func (m *ContestMutation) Private() (r bool, exists bool) {
	v := m.private
	if v == nil {
		return
	}
	return *v, true
}

// OldPrivate returns the old "private" field's value of the Contest entity.
// If the Contest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContestMutation) OldPrivate(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrivate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrivate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrivate: %w", err)
	}
	return oldValue.Private, nil
}

// ResetPrivate resets all changes to the "private" field.
func (m *ContestMutation) ResetPrivate() {
	m.private = nil
}

// SetAllowedActivities sets the "allowed_activities" field.
func (m *ContestMutation) SetAllowedActivities(i []int32) {
	m.allowed_activities = &i
	m.appendallowed_activities = nil
}

// AllowedActivities returns the value of the "allowed_activities" field in the mutation.
func (m *ContestMutation) AllowedActivities() (r []int32, exists bool) {
	v := m.allowed_activities
	if v == nil {
		return
	}
	return *v, true
}

// OldAllowedActivities returns the old "allowed_activities" field's value of the Contest entity.
// If the Contest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContestMutation) OldAllowedActivities(ctx context.Context) (v []int32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAllowedActivities is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAllowedActivities requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAllowedActivities: %w", err)
	}
	return oldValue.AllowedActivities, nil
}

// AppendAllowedActivities adds i to the "allowed_activities" field.
func (m *ContestMutation) AppendAllowedActivities(i []int32) {
	m.appendallowed_activities = append(m.appendallowed_activities, i...)
}

// AppendedAllowedActivities returns the list of values that were appended to the "allowed_activities" field in this mutation.
func (m *ContestMutation) AppendedAllowedActivities() ([]int32, bool) {
	if len(m.appendallowed_activities) == 0 {
		return nil, false
	}
	return m.appendallowed_activities, true
}

// ResetAllowedActivities resets all changes to the "allowed_activities" field.
func (m *ContestMutation) ResetAllowedActivities() {
	m.allowed_activities = nil
	m.appendallowed_activities = nil
}

// SetAllowedLanguages sets the "allowed_languages" field.
func (m *ContestMutation) SetAllowedLanguages(s []string) {
	m.allowed_languages = &s
	m.appendallowed_languages = nil
}

// AllowedLanguages returns the value of the "allowed_languages" field in the mutation.
func (m *ContestMutation) AllowedLanguages() (r []string, exists bool) {
	v := m.allowed_languages
	if v == nil {
		return
	}
	return *v, true
}

// OldAllowedLanguages returns the old "allowed_languages" field's value of the Contest entity.
// If the Contest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContestMutation) OldAllowedLanguages(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAllowedLanguages is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAllowedLanguages requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAllowedLanguages: %w", err)
	}
	return oldValue.AllowedLanguages, nil
}

// AppendAllowedLanguages adds s to the "allowed_languages" field.
func (m *ContestMutation) AppendAllowedLanguages(s []string) {
	m.appendallowed_languages = append(m.appendallowed_languages, s...)
}

// AppendedAllowedLanguages returns the list of values that were appended to the "allowed_languages" field in this mutation.
func (m *ContestMutation) AppendedAllowedLanguages() ([]string, bool) {
	if len(m.appendallowed_languages) == 0 {
		return nil, false
	}
	return m.appendallowed_languages, true
}

// ClearAllowedLanguages clears the value of the "allowed_languages" field.
func (m *ContestMutation) ClearAllowedLanguages() {
	m.allowed_languages = nil
	m.appendallowed_languages = nil
	m.clearedFields[contest.FieldAllowedLanguages] = struct{}{}
}

// AllowedLanguagesCleared returns if the "allowed_languages" field was cleared in this mutation.
func (m *ContestMutation) AllowedLanguagesCleared() bool {
	_, ok := m.clearedFields[contest.FieldAllowedLanguages]
	return ok
}

// ResetAllowedLanguages resets all changes to the "allowed_languages" field.
func (m *ContestMutation) ResetAllowedLanguages() {
	m.allowed_languages = nil
	m.appendallowed_languages = nil
	delete(m.clearedFields, contest.FieldAllowedLanguages)
}

// SetCreatedAt sets the "created_at" field.
func (m *ContestMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ContestMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Contest entity.
// If the Contest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContestMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ContestMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ContestMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ContestMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Contest entity.
// If the Contest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContestMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ContestMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddRegistrationIDs adds the "registrations" edge to the ContestRegistration entity by ids.
func (m *ContestMutation) AddRegistrationIDs(ids ...uuid.UUID) {
	if m.registrations == nil {
		m.registrations = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.registrations[ids[i]] = struct{}{}
	}
}

// ClearRegistrations clears the "registrations" edge to the ContestRegistration entity.
func (m *ContestMutation) ClearRegistrations() {
	m.clearedregistrations = true
}

// RegistrationsCleared reports if the "registrations" edge to the ContestRegistration entity was cleared.
func (m *ContestMutation) RegistrationsCleared() bool {
	return m.clearedregistrations
}

// RemoveRegistrationIDs removes the "registrations" edge to the ContestRegistration entity by IDs.
func (m *ContestMutation) RemoveRegistrationIDs(ids ...uuid.UUID) {
	if m.removedregistrations == nil {
		m.removedregistrations = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.registrations, ids[i])
		m.removedregistrations[ids[i]] = struct{}{}
	}
}

// RemovedRegistrations returns the removed IDs of the "registrations" edge to the ContestRegistration entity.
func (m *ContestMutation) RemovedRegistrationsIDs() (ids []uuid.UUID) {
	for id := range m.removedregistrations {
		ids = append(ids, id)
	}
	return
}

// RegistrationsIDs returns the "registrations" edge IDs in the mutation.
func (m *ContestMutation) RegistrationsIDs() (ids []uuid.UUID) {
	for id := range m.registrations {
		ids = append(ids, id)
	}
	return
}

// ResetRegistrations resets all changes to the "registrations" edge.
func (m *ContestMutation) ResetRegistrations() {
	m.registrations = nil
	m.clearedregistrations = false
	m.removedregistrations = nil
}

// Where appends a list predicates to the ContestMutation builder.
func (m *ContestMutation) Where(ps ...predicate.Contest) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ContestMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ContestMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Contest, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ContestMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ContestMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Contest).
func (m *ContestMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ContestMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.title != nil {
		fields = append(fields, contest.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, contest.FieldDescription)
	}
	if m.contest_start != nil {
		fields = append(fields, contest.FieldContestStart)
	}
	if m.contest_end != nil {
		fields = append(fields, contest.FieldContestEnd)
	}
	if m.registration_end != nil {
		fields = append(fields, contest.FieldRegistrationEnd)
	}
	if m.official != nil {
		fields = append(fields, contest.FieldOfficial)
	}
	if m.private != nil {
		fields = append(fields, contest.FieldPrivate)
	}
	if m.allowed_activities != nil {
		fields = append(fields, contest.FieldAllowedActivities)
	}
	if m.allowed_languages != nil {
		fields = append(fields, contest.FieldAllowedLanguages)
	}
	if m.created_at != nil {
		fields = append(fields, contest.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, contest.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ContestMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case contest.FieldTitle:
		return m.Title()
	case contest.FieldDescription:
		return m.Description()
	case contest.FieldContestStart:
		return m.ContestStart()
	case contest.FieldContestEnd:
		return m.ContestEnd()
	case contest.FieldRegistrationEnd:
		return m.RegistrationEnd()
	case contest.FieldOfficial:
		return m.Official()
	case contest.FieldPrivate:
		return m.Private()
	case contest.FieldAllowedActivities:
		return m.AllowedActivities()
	case contest.FieldAllowedLanguages:
		return m.AllowedLanguages()
	case contest.FieldCreatedAt:
		return m.CreatedAt()
	case contest.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ContestMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case contest.FieldTitle:
		return m.OldTitle(ctx)
	case contest.FieldDescription:
		return m.OldDescription(ctx)
	case contest.FieldContestStart:
		return m.OldContestStart(ctx)
	case contest.FieldContestEnd:
		return m.OldContestEnd(ctx)
	case contest.FieldRegistrationEnd:
		return m.OldRegistrationEnd(ctx)
	case contest.FieldOfficial:
		return m.OldOfficial(ctx)
	case contest.FieldPrivate:
		return m.OldPrivate(ctx)
	case contest.FieldAllowedActivities:
		return m.OldAllowedActivities(ctx)
	case contest.FieldAllowedLanguages:
		return m.OldAllowedLanguages(ctx)
	case contest.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case contest.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Contest field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContestMutation) SetField(name string, value ent.Value) error {
	switch name {
	case contest.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case contest.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case contest.FieldContestStart:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContestStart(v)
		return nil
	case contest.FieldContestEnd:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContestEnd(v)
		return nil
	case contest.FieldRegistrationEnd:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRegistrationEnd(v)
		return nil
	case contest.FieldOfficial:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOfficial(v)
		return nil
	case contest.FieldPrivate:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrivate(v)
		return nil
	case contest.FieldAllowedActivities:
		v, ok := value.([]int32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAllowedActivities(v)
		return nil
	case contest.FieldAllowedLanguages:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAllowedLanguages(v)
		return nil
	case contest.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case contest.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Contest field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ContestMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ContestMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContestMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Contest numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ContestMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(contest.FieldAllowedLanguages) {
		fields = append(fields, contest.FieldAllowedLanguages)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ContestMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ContestMutation) ClearField(name string) error {
	switch name {
	case contest.FieldAllowedLanguages:
		m.ClearAllowedLanguages()
		return nil
	}
	return fmt.Errorf("unknown Contest nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ContestMutation) ResetField(name string) error {
	switch name {
	case contest.FieldTitle:
		m.ResetTitle()
		return nil
	case contest.FieldDescription:
		m.ResetDescription()
		return nil
	case contest.FieldContestStart:
		m.ResetContestStart()
		return nil
	case contest.FieldContestEnd:
		m.ResetContestEnd()
		return nil
	case contest.FieldRegistrationEnd:
		m.ResetRegistrationEnd()
		return nil
	case contest.FieldOfficial:
		m.ResetOfficial()
		return nil
	case contest.FieldPrivate:
		m.ResetPrivate()
		return nil
	case contest.FieldAllowedActivities:
		m.ResetAllowedActivities()
		return nil
	case contest.FieldAllowedLanguages:
		m.ResetAllowedLanguages()
		return nil
	case contest.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case contest.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Contest field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ContestMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.registrations != nil {
		edges = append(edges, contest.EdgeRegistrations)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ContestMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case contest.EdgeRegistrations:
		ids := make([]ent.Value, 0, len(m.registrations))
		for id := range m.registrations {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ContestMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedregistrations != nil {
		edges = append(edges, contest.EdgeRegistrations)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ContestMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case contest.EdgeRegistrations:
		ids := make([]ent.Value, 0, len(m.removedregistrations))
		for id := range m.removedregistrations {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ContestMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedregistrations {
		edges = append(edges, contest.EdgeRegistrations)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ContestMutation) EdgeCleared(name string) bool {
	switch name {
	case contest.EdgeRegistrations:
		return m.clearedregistrations
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ContestMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Contest unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ContestMutation) ResetEdge(name string) error {
	switch name {
	case contest.EdgeRegistrations:
		m.ResetRegistrations()
		return nil
	}
	return fmt.Errorf("unknown Contest edge %s", name)
}

// ContestRegistrationMutation represents an operation that mutates the ContestRegistration nodes in the graph.
type ContestRegistrationMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	user_id            *int64
	adduser_id         *int64
	user_display_name  *string
	languages          *[]string
	appendlanguages    []string
	created_at         *time.Time
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	contest            *uuid.UUID
	clearedcontest     bool
	attachments        map[int]struct{}
	removedattachments map[int]struct{}
	clearedattachments bool
	done               bool
	oldValue           func(context.Context) (*ContestRegistration, error)
	predicates         []predicate.ContestRegistration
}

var _ ent.Mutation = (*ContestRegistrationMutation)(nil)

// contestregistrationOption allows management of the mutation configuration using functional options.
type contestregistrationOption func(*ContestRegistrationMutation)

// newContestRegistrationMutation creates new mutation for the ContestRegistration entity.
func newContestRegistrationMutation(c config, op Op, opts ...contestregistrationOption) *ContestRegistrationMutation {
	m := &ContestRegistrationMutation{
		config:        c,
		op:            op,
		typ:           TypeContestRegistration,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withContestRegistrationID sets the ID field of the mutation.
func withContestRegistrationID(id uuid.UUID) contestregistrationOption {
	return func(m *ContestRegistrationMutation) {
		var (
			err   error
			once  sync.Once
			value *ContestRegistration
		)
		m.oldValue = func(ctx context.Context) (*ContestRegistration, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ContestRegistration.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withContestRegistration sets the old ContestRegistration of the mutation.
func withContestRegistration(node *ContestRegistration) contestregistrationOption {
	return func(m *ContestRegistrationMutation) {
		m.oldValue = func(context.Context) (*ContestRegistration, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ContestRegistrationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ContestRegistrationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ContestRegistration entities.
func (m *ContestRegistrationMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ContestRegistrationMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ContestRegistrationMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ContestRegistration.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetContestID sets the "contest_id" field.
func (m *ContestRegistrationMutation) SetContestID(u uuid.UUID) {
	m.contest = &u
}

// ContestID returns the value of the "contest_id" field in the mutation.
func (m *ContestRegistrationMutation) ContestID() (r uuid.UUID, exists bool) {
	v := m.contest
	if v == nil {
		return
	}
	return *v, true
}

// OldContestID returns the old "contest_id" field's value of the ContestRegistration entity.
// If the ContestRegistration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContestRegistrationMutation) OldContestID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContestID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContestID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContestID: %w", err)
	}
	return oldValue.ContestID, nil
}

// ResetContestID resets all changes to the "contest_id" field.
func (m *ContestRegistrationMutation) ResetContestID() {
	m.contest = nil
}

// SetUserID sets the "user_id" field.
func (m *ContestRegistrationMutation) SetUserID(i int64) {
	m.user_id = &i
	m.adduser_id = nil
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ContestRegistrationMutation) UserID() (r int64, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the ContestRegistration entity.
// If the ContestRegistration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContestRegistrationMutation) OldUserID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// AddUserID adds i to the "user_id" field.
func (m *ContestRegistrationMutation) AddUserID(i int64) {
	if m.adduser_id != nil {
		*m.adduser_id += i
	} else {
		m.adduser_id = &i
	}
}

// AddedUserID returns the value that was added to the "user_id" field in this mutation.
func (m *ContestRegistrationMutation) AddedUserID() (r int64, exists bool) {
	v := m.adduser_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ContestRegistrationMutation) ResetUserID() {
	m.user_id = nil
	m.adduser_id = nil
}

// SetUserDisplayName sets the "user_display_name" field.
func (m *ContestRegistrationMutation) SetUserDisplayName(s string) {
	m.user_display_name = &s
}

// UserDisplayName returns the value of the "user_display_name" field in the mutation.
func (m *ContestRegistrationMutation) UserDisplayName() (r string, exists bool) {
	v := m.user_display_name
	if v == nil {
		return
	}
	return *v, true
}

// OldUserDisplayName returns the old "user_display_name" field's value of the ContestRegistration entity.
// If the ContestRegistration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContestRegistrationMutation) OldUserDisplayName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserDisplayName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserDisplayName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserDisplayName: %w", err)
	}
	return oldValue.UserDisplayName, nil
}

// ResetUserDisplayName resets all changes to the "user_display_name" field.
func (m *ContestRegistrationMutation) ResetUserDisplayName() {
	m.user_display_name = nil
}

// SetLanguages sets the "languages" field.
func (m *ContestRegistrationMutation) SetLanguages(s []string) {
	m.languages = &s
	m.appendlanguages = nil
}

// Languages returns the value of the "languages" field in the mutation.
func (m *ContestRegistrationMutation) Languages() (r []string, exists bool) {
	v := m.languages
	if v == nil {
		return
	}
	return *v, true
}

// OldLanguages returns the old "languages" field's value of the ContestRegistration entity.
// If the ContestRegistration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContestRegistrationMutation) OldLanguages(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLanguages is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLanguages requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLanguages: %w", err)
	}
	return oldValue.Languages, nil
}

// AppendLanguages adds s to the "languages" field.
func (m *ContestRegistrationMutation) AppendLanguages(s []string) {
	m.appendlanguages = append(m.appendlanguages, s...)
}

// AppendedLanguages returns the list of values that were appended to the "languages" field in this mutation.
func (m *ContestRegistrationMutation) AppendedLanguages() ([]string, bool) {
	if len(m.appendlanguages) == 0 {
		return nil, false
	}
	return m.appendlanguages, true
}

// ResetLanguages resets all changes to the "languages" field.
func (m *ContestRegistrationMutation) ResetLanguages() {
	m.languages = nil
	m.appendlanguages = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ContestRegistrationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ContestRegistrationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ContestRegistration entity.
// If the ContestRegistration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContestRegistrationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ContestRegistrationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ContestRegistrationMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ContestRegistrationMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ContestRegistration entity.
// If the ContestRegistration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContestRegistrationMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ContestRegistrationMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearContest clears the "contest" edge to the Contest entity.
func (m *ContestRegistrationMutation) ClearContest() {
	m.clearedcontest = true
	m.clearedFields[contestregistration.FieldContestID] = struct{}{}
}

// ContestCleared reports if the "contest" edge to the Contest entity was cleared.
func (m *ContestRegistrationMutation) ContestCleared() bool {
	return m.clearedcontest
}

// ContestIDs returns the "contest" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ContestID instead. It exists only for internal usage by the builders.
func (m *ContestRegistrationMutation) ContestIDs() (ids []uuid.UUID) {
	if id := m.contest; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetContest resets all changes to the "contest" edge.
func (m *ContestRegistrationMutation) ResetContest() {
	m.contest = nil
	m.clearedcontest = false
}

// AddAttachmentIDs adds the "attachments" edge to the LogAttachment entity by ids.
func (m *ContestRegistrationMutation) AddAttachmentIDs(ids ...int) {
	if m.attachments == nil {
		m.attachments = make(map[int]struct{})
	}
	for i := range ids {
		m.attachments[ids[i]] = struct{}{}
	}
}

// ClearAttachments clears the "attachments" edge to the LogAttachment entity.
func (m *ContestRegistrationMutation) ClearAttachments() {
	m.clearedattachments = true
}

// AttachmentsCleared reports if the "attachments" edge to the LogAttachment entity was cleared.
func (m *ContestRegistrationMutation) AttachmentsCleared() bool {
	return m.clearedattachments
}

// RemoveAttachmentIDs removes the "attachments" edge to the LogAttachment entity by IDs.
func (m *ContestRegistrationMutation) RemoveAttachmentIDs(ids ...int) {
	if m.removedattachments == nil {
		m.removedattachments = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.attachments, ids[i])
		m.removedattachments[ids[i]] = struct{}{}
	}
}

// RemovedAttachments returns the removed IDs of the "attachments" edge to the LogAttachment entity.
func (m *ContestRegistrationMutation) RemovedAttachmentsIDs() (ids []int) {
	for id := range m.removedattachments {
		ids = append(ids, id)
	}
	return
}

// AttachmentsIDs returns the "attachments" edge IDs in the mutation.
func (m *ContestRegistrationMutation) AttachmentsIDs() (ids []int) {
	for id := range m.attachments {
		ids = append(ids, id)
	}
	return
}

// ResetAttachments resets all changes to the "attachments" edge.
func (m *ContestRegistrationMutation) ResetAttachments() {
	m.attachments = nil
	m.clearedattachments = false
	m.removedattachments = nil
}

// Where appends a list predicates to the ContestRegistrationMutation builder.
func (m *ContestRegistrationMutation) Where(ps ...predicate.ContestRegistration) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ContestRegistrationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ContestRegistrationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ContestRegistration, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ContestRegistrationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ContestRegistrationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ContestRegistration).
func (m *ContestRegistrationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ContestRegistrationMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.contest != nil {
		fields = append(fields, contestregistration.FieldContestID)
	}
	if m.user_id != nil {
		fields = append(fields, contestregistration.FieldUserID)
	}
	if m.user_display_name != nil {
		fields = append(fields, contestregistration.FieldUserDisplayName)
	}
	if m.languages != nil {
		fields = append(fields, contestregistration.FieldLanguages)
	}
	if m.created_at != nil {
		fields = append(fields, contestregistration.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, contestregistration.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ContestRegistrationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case contestregistration.FieldContestID:
		return m.ContestID()
	case contestregistration.FieldUserID:
		return m.UserID()
	case contestregistration.FieldUserDisplayName:
		return m.UserDisplayName()
	case contestregistration.FieldLanguages:
		return m.Languages()
	case contestregistration.FieldCreatedAt:
		return m.CreatedAt()
	case contestregistration.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ContestRegistrationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case contestregistration.FieldContestID:
		return m.OldContestID(ctx)
	case contestregistration.FieldUserID:
		return m.OldUserID(ctx)
	case contestregistration.FieldUserDisplayName:
		return m.OldUserDisplayName(ctx)
	case contestregistration.FieldLanguages:
		return m.OldLanguages(ctx)
	case contestregistration.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case contestregistration.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ContestRegistration field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContestRegistrationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case contestregistration.FieldContestID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContestID(v)
		return nil
	case contestregistration.FieldUserID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case contestregistration.FieldUserDisplayName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserDisplayName(v)
		return nil
	case contestregistration.FieldLanguages:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLanguages(v)
		return nil
	case contestregistration.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case contestregistration.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ContestRegistration field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ContestRegistrationMutation) AddedFields() []string {
	var fields []string
	if m.adduser_id != nil {
		fields = append(fields, contestregistration.FieldUserID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ContestRegistrationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case contestregistration.FieldUserID:
		return m.AddedUserID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContestRegistrationMutation) AddField(name string, value ent.Value) error {
	switch name {
	case contestregistration.FieldUserID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUserID(v)
		return nil
	}
	return fmt.Errorf("unknown ContestRegistration numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ContestRegistrationMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ContestRegistrationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ContestRegistrationMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ContestRegistration nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ContestRegistrationMutation) ResetField(name string) error {
	switch name {
	case contestregistration.FieldContestID:
		m.ResetContestID()
		return nil
	case contestregistration.FieldUserID:
		m.ResetUserID()
		return nil
	case contestregistration.FieldUserDisplayName:
		m.ResetUserDisplayName()
		return nil
	case contestregistration.FieldLanguages:
		m.ResetLanguages()
		return nil
	case contestregistration.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case contestregistration.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ContestRegistration field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ContestRegistrationMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.contest != nil {
		edges = append(edges, contestregistration.EdgeContest)
	}
	if m.attachments != nil {
		edges = append(edges, contestregistration.EdgeAttachments)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ContestRegistrationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case contestregistration.EdgeContest:
		if id := m.contest; id != nil {
			return []ent.Value{*id}
		}
	case contestregistration.EdgeAttachments:
		ids := make([]ent.Value, 0, len(m.attachments))
		for id := range m.attachments {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ContestRegistrationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedattachments != nil {
		edges = append(edges, contestregistration.EdgeAttachments)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ContestRegistrationMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case contestregistration.EdgeAttachments:
		ids := make([]ent.Value, 0, len(m.removedattachments))
		for id := range m.removedattachments {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ContestRegistrationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedcontest {
		edges = append(edges, contestregistration.EdgeContest)
	}
	if m.clearedattachments {
		edges = append(edges, contestregistration.EdgeAttachments)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ContestRegistrationMutation) EdgeCleared(name string) bool {
	switch name {
	case contestregistration.EdgeContest:
		return m.clearedcontest
	case contestregistration.EdgeAttachments:
		return m.clearedattachments
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ContestRegistrationMutation) ClearEdge(name string) error {
	switch name {
	case contestregistration.EdgeContest:
		m.ClearContest()
		return nil
	}
	return fmt.Errorf("unknown ContestRegistration unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ContestRegistrationMutation) ResetEdge(name string) error {
	switch name {
	case contestregistration.EdgeContest:
		m.ResetContest()
		return nil
	case contestregistration.EdgeAttachments:
		m.ResetAttachments()
		return nil
	}
	return fmt.Errorf("unknown ContestRegistration edge %s", name)
}

// ImmersionLogMutation represents an operation that mutates the ImmersionLog nodes in the graph.
type ImmersionLogMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	user_id             *int64
	adduser_id          *int64
	language_code       *string
	activity_id         *int32
	addactivity_id      *int32
	amount              *float64
	addamount           *float64
	unit_id             *uuid.UUID
	unit_name           *string
	duration_seconds    *int64
	addduration_seconds *int64
	score               *float64
	addscore            *float64
	tags                *[]string
	appendtags          []string
	description         *string
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	attachments         map[int]struct{}
	removedattachments  map[int]struct{}
	clearedattachments  bool
	done                bool
	oldValue            func(context.Context) (*ImmersionLog, error)
	predicates          []predicate.ImmersionLog
}

var _ ent.Mutation = (*ImmersionLogMutation)(nil)

// immersionlogOption allows management of the mutation configuration using functional options.
type immersionlogOption func(*ImmersionLogMutation)

// newImmersionLogMutation creates new mutation for the ImmersionLog entity.
func newImmersionLogMutation(c config, op Op, opts ...immersionlogOption) *ImmersionLogMutation {
	m := &ImmersionLogMutation{
		config:        c,
		op:            op,
		typ:           TypeImmersionLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withImmersionLogID sets the ID field of the mutation.
func withImmersionLogID(id uuid.UUID) immersionlogOption {
	return func(m *ImmersionLogMutation) {
		var (
			err   error
			once  sync.Once
			value *ImmersionLog
		)
		m.oldValue = func(ctx context.Context) (*ImmersionLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ImmersionLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withImmersionLog sets the old ImmersionLog of the mutation.
func withImmersionLog(node *ImmersionLog) immersionlogOption {
	return func(m *ImmersionLogMutation) {
		m.oldValue = func(context.Context) (*ImmersionLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ImmersionLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ImmersionLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ImmersionLog entities.
func (m *ImmersionLogMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ImmersionLogMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ImmersionLogMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ImmersionLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *ImmersionLogMutation) SetUserID(i int64) {
	m.user_id = &i
	m.adduser_id = nil
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ImmersionLogMutation) UserID() (r int64, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the ImmersionLog entity.
// If the ImmersionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImmersionLogMutation) OldUserID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// AddUserID adds i to the "user_id" field.
func (m *ImmersionLogMutation) AddUserID(i int64) {
	if m.adduser_id != nil {
		*m.adduser_id += i
	} else {
		m.adduser_id = &i
	}
}

// AddedUserID returns the value that was added to the "user_id" field in this mutation.
func (m *ImmersionLogMutation) AddedUserID() (r int64, exists bool) {
	v := m.adduser_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ImmersionLogMutation) ResetUserID() {
	m.user_id = nil
	m.adduser_id = nil
}

// SetLanguageCode sets the "language_code" field.
func (m *ImmersionLogMutation) SetLanguageCode(s string) {
	m.language_code = &s
}

// LanguageCode returns the value of the "language_code" field in the mutation.
func (m *ImmersionLogMutation) LanguageCode() (r string, exists bool) {
	v := m.language_code
	if v == nil {
		return
	}
	return *v, true
}

// OldLanguageCode returns the old "language_code" field's value of the ImmersionLog entity.
// If the ImmersionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImmersionLogMutation) OldLanguageCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLanguageCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLanguageCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLanguageCode: %w", err)
	}
	return oldValue.LanguageCode, nil
}

// ResetLanguageCode resets all changes to the "language_code" field.
func (m *ImmersionLogMutation) ResetLanguageCode() {
	m.language_code = nil
}

// SetActivityID sets the "activity_id" field.
func (m *ImmersionLogMutation) SetActivityID(i int32) {
	m.activity_id = &i
	m.addactivity_id = nil
}

// ActivityID returns the value of the "activity_id" field in the mutation.
func (m *ImmersionLogMutation) ActivityID() (r int32, exists bool) {
	v := m.activity_id
	if v == nil {
		return
	}
	return *v, true
}

// OldActivityID returns the old "activity_id" field's value of the ImmersionLog entity.
// If the ImmersionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImmersionLogMutation) OldActivityID(ctx context.Context) (v int32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActivityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActivityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActivityID: %w", err)
	}
	return oldValue.ActivityID, nil
}

// AddActivityID adds i to the "activity_id" field.
func (m *ImmersionLogMutation) AddActivityID(i int32) {
	if m.addactivity_id != nil {
		*m.addactivity_id += i
	} else {
		m.addactivity_id = &i
	}
}

// AddedActivityID returns the value that was added to the "activity_id" field in this mutation.
func (m *ImmersionLogMutation) AddedActivityID() (r int32, exists bool) {
	v := m.addactivity_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetActivityID resets all changes to the "activity_id" field.
func (m *ImmersionLogMutation) ResetActivityID() {
	m.activity_id = nil
	m.addactivity_id = nil
}

// SetAmount sets the "amount" field.
func (m *ImmersionLogMutation) SetAmount(f float64) {
	m.amount = &f
	m.addamount = nil
}

// Amount returns the value of the "amount" field in the mutation.
func (m *ImmersionLogMutation) Amount() (r float64, exists bool) {
	v := m.amount
	if v == nil {
		return
	}
	return *v, true
}

// OldAmount returns the old "amount" field's value of the ImmersionLog entity.
// If the ImmersionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImmersionLogMutation) OldAmount(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAmount: %w", err)
	}
	return oldValue.Amount, nil
}

// AddAmount adds f to the "amount" field.
func (m *ImmersionLogMutation) AddAmount(f float64) {
	if m.addamount != nil {
		*m.addamount += f
	} else {
		m.addamount = &f
	}
}

// AddedAmount returns the value that was added to the "amount" field in this mutation.
func (m *ImmersionLogMutation) AddedAmount() (r float64, exists bool) {
	v := m.addamount
	if v == nil {
		return
	}
	return *v, true
}

// ClearAmount clears the value of the "amount" field.
func (m *ImmersionLogMutation) ClearAmount() {
	m.amount = nil
	m.addamount = nil
	m.clearedFields[immersionlog.FieldAmount] = struct{}{}
}

// AmountCleared returns if the "amount" field was cleared in this mutation.
func (m *ImmersionLogMutation) AmountCleared() bool {
	_, ok := m.clearedFields[immersionlog.FieldAmount]
	return ok
}

// ResetAmount resets all changes to the "amount" field.
func (m *ImmersionLogMutation) ResetAmount() {
	m.amount = nil
	m.addamount = nil
	delete(m.clearedFields, immersionlog.FieldAmount)
}

// SetUnitID sets the "unit_id" field.
func (m *ImmersionLogMutation) SetUnitID(u uuid.UUID) {
	m.unit_id = &u
}

// UnitID returns the value of the "unit_id" field in the mutation.
func (m *ImmersionLogMutation) UnitID() (r uuid.UUID, exists bool) {
	v := m.unit_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUnitID returns the old "unit_id" field's value of the ImmersionLog entity.
// If the ImmersionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImmersionLogMutation) OldUnitID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnitID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnitID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnitID: %w", err)
	}
	return oldValue.UnitID, nil
}

// ClearUnitID clears the value of the "unit_id" field.
func (m *ImmersionLogMutation) ClearUnitID() {
	m.unit_id = nil
	m.clearedFields[immersionlog.FieldUnitID] = struct{}{}
}

// UnitIDCleared returns if the "unit_id" field was cleared in this mutation.
func (m *ImmersionLogMutation) UnitIDCleared() bool {
	_, ok := m.clearedFields[immersionlog.FieldUnitID]
	return ok
}

// ResetUnitID resets all changes to the "unit_id" field.
func (m *ImmersionLogMutation) ResetUnitID() {
	m.unit_id = nil
	delete(m.clearedFields, immersionlog.FieldUnitID)
}

// SetUnitName sets the "unit_name" field.
func (m *ImmersionLogMutation) SetUnitName(s string) {
	m.unit_name = &s
}

// UnitName returns the value of the "unit_name" field in the mutation.
func (m *ImmersionLogMutation) UnitName() (r string, exists bool) {
	v := m.unit_name
	if v == nil {
		return
	}
	return *v, true
}

// OldUnitName returns the old "unit_name" field's value of the ImmersionLog entity.
// If the ImmersionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImmersionLogMutation) OldUnitName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnitName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnitName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnitName: %w", err)
	}
	return oldValue.UnitName, nil
}

// ResetUnitName resets all changes to the "unit_name" field.
func (m *ImmersionLogMutation) ResetUnitName() {
	m.unit_name = nil
}

// SetDurationSeconds sets the "duration_seconds" field.
func (m *ImmersionLogMutation) SetDurationSeconds(i int64) {
	m.duration_seconds = &i
	m.addduration_seconds = nil
}

// DurationSeconds returns the value of the "duration_seconds" field in the mutation.
func (m *ImmersionLogMutation) DurationSeconds() (r int64, exists bool) {
	v := m.duration_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationSeconds returns the old "duration_seconds" field's value of the ImmersionLog entity.
// If the ImmersionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImmersionLogMutation) OldDurationSeconds(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationSeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationSeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationSeconds: %w", err)
	}
	return oldValue.DurationSeconds, nil
}

// AddDurationSeconds adds i to the "duration_seconds" field.
func (m *ImmersionLogMutation) AddDurationSeconds(i int64) {
	if m.addduration_seconds != nil {
		*m.addduration_seconds += i
	} else {
		m.addduration_seconds = &i
	}
}

// AddedDurationSeconds returns the value that was added to the "duration_seconds" field in this mutation.
func (m *ImmersionLogMutation) AddedDurationSeconds() (r int64, exists bool) {
	v := m.addduration_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ClearDurationSeconds clears the value of the "duration_seconds" field.
func (m *ImmersionLogMutation) ClearDurationSeconds() {
	m.duration_seconds = nil
	m.addduration_seconds = nil
	m.clearedFields[immersionlog.FieldDurationSeconds] = struct{}{}
}

// DurationSecondsCleared returns if the "duration_seconds" field was cleared in this mutation.
func (m *ImmersionLogMutation) DurationSecondsCleared() bool {
	_, ok := m.clearedFields[immersionlog.FieldDurationSeconds]
	return ok
}

// ResetDurationSeconds resets all changes to the "duration_seconds" field.
func (m *ImmersionLogMutation) ResetDurationSeconds() {
	m.duration_seconds = nil
	m.addduration_seconds = nil
	delete(m.clearedFields, immersionlog.FieldDurationSeconds)
}

// SetScore sets the "score" field.
func (m *ImmersionLogMutation) SetScore(f float64) {
	m.score = &f
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *ImmersionLogMutation) Score() (r float64, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the ImmersionLog entity.
// If the ImmersionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImmersionLogMutation) OldScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds f to the "score" field.
func (m *ImmersionLogMutation) AddScore(f float64) {
	if m.addscore != nil {
		*m.addscore += f
	} else {
		m.addscore = &f
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *ImmersionLogMutation) AddedScore() (r float64, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ResetScore resets all changes to the "score" field.
func (m *ImmersionLogMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
}

// SetTags sets the "tags" field.
func (m *ImmersionLogMutation) SetTags(s []string) {
	m.tags = &s
	m.appendtags = nil
}

// Tags returns the value of the "tags" field in the mutation.
func (m *ImmersionLogMutation) Tags() (r []string, exists bool) {
	v := m.tags
	if v == nil {
		return
	}
	return *v, true
}

// OldTags returns the old "tags" field's value of the ImmersionLog entity.
// If the ImmersionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImmersionLogMutation) OldTags(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTags: %w", err)
	}
	return oldValue.Tags, nil
}

// AppendTags adds s to the "tags" field.
func (m *ImmersionLogMutation) AppendTags(s []string) {
	m.appendtags = append(m.appendtags, s...)
}

// AppendedTags returns the list of values that were appended to the "tags" field in this mutation.
func (m *ImmersionLogMutation) AppendedTags() ([]string, bool) {
	if len(m.appendtags) == 0 {
		return nil, false
	}
	return m.appendtags, true
}

// ResetTags resets all changes to the "tags" field.
func (m *ImmersionLogMutation) ResetTags() {
	m.tags = nil
	m.appendtags = nil
}

// SetDescription sets the "description" field.
func (m *ImmersionLogMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ImmersionLogMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the ImmersionLog entity.
// If the ImmersionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImmersionLogMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *ImmersionLogMutation) ResetDescription() {
	m.description = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ImmersionLogMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ImmersionLogMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ImmersionLog entity.
// If the ImmersionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImmersionLogMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ImmersionLogMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ImmersionLogMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ImmersionLogMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ImmersionLog entity.
// If the ImmersionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImmersionLogMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ImmersionLogMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddAttachmentIDs adds the "attachments" edge to the LogAttachment entity by ids.
func (m *ImmersionLogMutation) AddAttachmentIDs(ids ...int) {
	if m.attachments == nil {
		m.attachments = make(map[int]struct{})
	}
	for i := range ids {
		m.attachments[ids[i]] = struct{}{}
	}
}

// ClearAttachments clears the "attachments" edge to the LogAttachment entity.
func (m *ImmersionLogMutation) ClearAttachments() {
	m.clearedattachments = true
}

// AttachmentsCleared reports if the "attachments" edge to the LogAttachment entity was cleared.
func (m *ImmersionLogMutation) AttachmentsCleared() bool {
	return m.clearedattachments
}

// RemoveAttachmentIDs removes the "attachments" edge to the LogAttachment entity by IDs.
func (m *ImmersionLogMutation) RemoveAttachmentIDs(ids ...int) {
	if m.removedattachments == nil {
		m.removedattachments = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.attachments, ids[i])
		m.removedattachments[ids[i]] = struct{}{}
	}
}

// RemovedAttachments returns the removed IDs of the "attachments" edge to the LogAttachment entity.
func (m *ImmersionLogMutation) RemovedAttachmentsIDs() (ids []int) {
	for id := range m.removedattachments {
		ids = append(ids, id)
	}
	return
}

// AttachmentsIDs returns the "attachments" edge IDs in the mutation.
func (m *ImmersionLogMutation) AttachmentsIDs() (ids []int) {
	for id := range m.attachments {
		ids = append(ids, id)
	}
	return
}

// ResetAttachments resets all changes to the "attachments" edge.
func (m *ImmersionLogMutation) ResetAttachments() {
	m.attachments = nil
	m.clearedattachments = false
	m.removedattachments = nil
}

// Where appends a list predicates to the ImmersionLogMutation builder.
func (m *ImmersionLogMutation) Where(ps ...predicate.ImmersionLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ImmersionLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ImmersionLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ImmersionLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ImmersionLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ImmersionLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ImmersionLog).
func (m *ImmersionLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ImmersionLogMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.user_id != nil {
		fields = append(fields, immersionlog.FieldUserID)
	}
	if m.language_code != nil {
		fields = append(fields, immersionlog.FieldLanguageCode)
	}
	if m.activity_id != nil {
		fields = append(fields, immersionlog.FieldActivityID)
	}
	if m.amount != nil {
		fields = append(fields, immersionlog.FieldAmount)
	}
	if m.unit_id != nil {
		fields = append(fields, immersionlog.FieldUnitID)
	}
	if m.unit_name != nil {
		fields = append(fields, immersionlog.FieldUnitName)
	}
	if m.duration_seconds != nil {
		fields = append(fields, immersionlog.FieldDurationSeconds)
	}
	if m.score != nil {
		fields = append(fields, immersionlog.FieldScore)
	}
	if m.tags != nil {
		fields = append(fields, immersionlog.FieldTags)
	}
	if m.description != nil {
		fields = append(fields, immersionlog.FieldDescription)
	}
	if m.created_at != nil {
		fields = append(fields, immersionlog.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, immersionlog.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ImmersionLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case immersionlog.FieldUserID:
		return m.UserID()
	case immersionlog.FieldLanguageCode:
		return m.LanguageCode()
	case immersionlog.FieldActivityID:
		return m.ActivityID()
	case immersionlog.FieldAmount:
		return m.Amount()
	case immersionlog.FieldUnitID:
		return m.UnitID()
	case immersionlog.FieldUnitName:
		return m.UnitName()
	case immersionlog.FieldDurationSeconds:
		return m.DurationSeconds()
	case immersionlog.FieldScore:
		return m.Score()
	case immersionlog.FieldTags:
		return m.Tags()
	case immersionlog.FieldDescription:
		return m.Description()
	case immersionlog.FieldCreatedAt:
		return m.CreatedAt()
	case immersionlog.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ImmersionLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case immersionlog.FieldUserID:
		return m.OldUserID(ctx)
	case immersionlog.FieldLanguageCode:
		return m.OldLanguageCode(ctx)
	case immersionlog.FieldActivityID:
		return m.OldActivityID(ctx)
	case immersionlog.FieldAmount:
		return m.OldAmount(ctx)
	case immersionlog.FieldUnitID:
		return m.OldUnitID(ctx)
	case immersionlog.FieldUnitName:
		return m.OldUnitName(ctx)
	case immersionlog.FieldDurationSeconds:
		return m.OldDurationSeconds(ctx)
	case immersionlog.FieldScore:
		return m.OldScore(ctx)
	case immersionlog.FieldTags:
		return m.OldTags(ctx)
	case immersionlog.FieldDescription:
		return m.OldDescription(ctx)
	case immersionlog.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case immersionlog.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ImmersionLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ImmersionLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case immersionlog.FieldUserID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case immersionlog.FieldLanguageCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLanguageCode(v)
		return nil
	case immersionlog.FieldActivityID:
		v, ok := value.(int32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActivityID(v)
		return nil
	case immersionlog.FieldAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAmount(v)
		return nil
	case immersionlog.FieldUnitID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnitID(v)
		return nil
	case immersionlog.FieldUnitName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnitName(v)
		return nil
	case immersionlog.FieldDurationSeconds:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationSeconds(v)
		return nil
	case immersionlog.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case immersionlog.FieldTags:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTags(v)
		return nil
	case immersionlog.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case immersionlog.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case immersionlog.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ImmersionLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ImmersionLogMutation) AddedFields() []string {
	var fields []string
	if m.adduser_id != nil {
		fields = append(fields, immersionlog.FieldUserID)
	}
	if m.addactivity_id != nil {
		fields = append(fields, immersionlog.FieldActivityID)
	}
	if m.addamount != nil {
		fields = append(fields, immersionlog.FieldAmount)
	}
	if m.addduration_seconds != nil {
		fields = append(fields, immersionlog.FieldDurationSeconds)
	}
	if m.addscore != nil {
		fields = append(fields, immersionlog.FieldScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ImmersionLogMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case immersionlog.FieldUserID:
		return m.AddedUserID()
	case immersionlog.FieldActivityID:
		return m.AddedActivityID()
	case immersionlog.FieldAmount:
		return m.AddedAmount()
	case immersionlog.FieldDurationSeconds:
		return m.AddedDurationSeconds()
	case immersionlog.FieldScore:
		return m.AddedScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ImmersionLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	case immersionlog.FieldUserID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUserID(v)
		return nil
	case immersionlog.FieldActivityID:
		v, ok := value.(int32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddActivityID(v)
		return nil
	case immersionlog.FieldAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAmount(v)
		return nil
	case immersionlog.FieldDurationSeconds:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationSeconds(v)
		return nil
	case immersionlog.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	}
	return fmt.Errorf("unknown ImmersionLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ImmersionLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(immersionlog.FieldAmount) {
		fields = append(fields, immersionlog.FieldAmount)
	}
	if m.FieldCleared(immersionlog.FieldUnitID) {
		fields = append(fields, immersionlog.FieldUnitID)
	}
	if m.FieldCleared(immersionlog.FieldDurationSeconds) {
		fields = append(fields, immersionlog.FieldDurationSeconds)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ImmersionLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ImmersionLogMutation) ClearField(name string) error {
	switch name {
	case immersionlog.FieldAmount:
		m.ClearAmount()
		return nil
	case immersionlog.FieldUnitID:
		m.ClearUnitID()
		return nil
	case immersionlog.FieldDurationSeconds:
		m.ClearDurationSeconds()
		return nil
	}
	return fmt.Errorf("unknown ImmersionLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ImmersionLogMutation) ResetField(name string) error {
	switch name {
	case immersionlog.FieldUserID:
		m.ResetUserID()
		return nil
	case immersionlog.FieldLanguageCode:
		m.ResetLanguageCode()
		return nil
	case immersionlog.FieldActivityID:
		m.ResetActivityID()
		return nil
	case immersionlog.FieldAmount:
		m.ResetAmount()
		return nil
	case immersionlog.FieldUnitID:
		m.ResetUnitID()
		return nil
	case immersionlog.FieldUnitName:
		m.ResetUnitName()
		return nil
	case immersionlog.FieldDurationSeconds:
		m.ResetDurationSeconds()
		return nil
	case immersionlog.FieldScore:
		m.ResetScore()
		return nil
	case immersionlog.FieldTags:
		m.ResetTags()
		return nil
	case immersionlog.FieldDescription:
		m.ResetDescription()
		return nil
	case immersionlog.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case immersionlog.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ImmersionLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ImmersionLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.attachments != nil {
		edges = append(edges, immersionlog.EdgeAttachments)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ImmersionLogMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case immersionlog.EdgeAttachments:
		ids := make([]ent.Value, 0, len(m.attachments))
		for id := range m.attachments {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ImmersionLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedattachments != nil {
		edges = append(edges, immersionlog.EdgeAttachments)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ImmersionLogMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case immersionlog.EdgeAttachments:
		ids := make([]ent.Value, 0, len(m.removedattachments))
		for id := range m.removedattachments {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ImmersionLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedattachments {
		edges = append(edges, immersionlog.EdgeAttachments)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ImmersionLogMutation) EdgeCleared(name string) bool {
	switch name {
	case immersionlog.EdgeAttachments:
		return m.clearedattachments
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ImmersionLogMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown ImmersionLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ImmersionLogMutation) ResetEdge(name string) error {
	switch name {
	case immersionlog.EdgeAttachments:
		m.ResetAttachments()
		return nil
	}
	return fmt.Errorf("unknown ImmersionLog edge %s", name)
}

// LogAttachmentMutation represents an operation that mutates the LogAttachment nodes in the graph.
type LogAttachmentMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	clearedFields       map[string]struct{}
	log                 *uuid.UUID
	clearedlog          bool
	registration        *uuid.UUID
	clearedregistration bool
	done                bool
	oldValue            func(context.Context) (*LogAttachment, error)
	predicates          []predicate.LogAttachment
}

var _ ent.Mutation = (*LogAttachmentMutation)(nil)

// logattachmentOption allows management of the mutation configuration using functional options.
type logattachmentOption func(*LogAttachmentMutation)

// newLogAttachmentMutation creates new mutation for the LogAttachment entity.
func newLogAttachmentMutation(c config, op Op, opts ...logattachmentOption) *LogAttachmentMutation {
	m := &LogAttachmentMutation{
		config:        c,
		op:            op,
		typ:           TypeLogAttachment,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLogAttachmentID sets the ID field of the mutation.
func withLogAttachmentID(id int) logattachmentOption {
	return func(m *LogAttachmentMutation) {
		var (
			err   error
			once  sync.Once
			value *LogAttachment
		)
		m.oldValue = func(ctx context.Context) (*LogAttachment, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LogAttachment.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLogAttachment sets the old LogAttachment of the mutation.
func withLogAttachment(node *LogAttachment) logattachmentOption {
	return func(m *LogAttachmentMutation) {
		m.oldValue = func(context.Context) (*LogAttachment, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LogAttachmentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LogAttachmentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LogAttachmentMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LogAttachmentMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LogAttachment.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetLogID sets the "log_id" field.
func (m *LogAttachmentMutation) SetLogID(u uuid.UUID) {
	m.log = &u
}

// LogID returns the value of the "log_id" field in the mutation.
func (m *LogAttachmentMutation) LogID() (r uuid.UUID, exists bool) {
	v := m.log
	if v == nil {
		return
	}
	return *v, true
}

// OldLogID returns the old "log_id" field's value of the LogAttachment entity.
// If the LogAttachment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LogAttachmentMutation) OldLogID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLogID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLogID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLogID: %w", err)
	}
	return oldValue.LogID, nil
}

// ResetLogID resets all changes to the "log_id" field.
func (m *LogAttachmentMutation) ResetLogID() {
	m.log = nil
}

// SetRegistrationID sets the "registration_id" field.
func (m *LogAttachmentMutation) SetRegistrationID(u uuid.UUID) {
	m.registration = &u
}

// RegistrationID returns the value of the "registration_id" field in the mutation.
func (m *LogAttachmentMutation) RegistrationID() (r uuid.UUID, exists bool) {
	v := m.registration
	if v == nil {
		return
	}
	return *v, true
}

// OldRegistrationID returns the old "registration_id" field's value of the LogAttachment entity.
// If the LogAttachment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LogAttachmentMutation) OldRegistrationID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRegistrationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRegistrationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRegistrationID: %w", err)
	}
	return oldValue.RegistrationID, nil
}

// ResetRegistrationID resets all changes to the "registration_id" field.
func (m *LogAttachmentMutation) ResetRegistrationID() {
	m.registration = nil
}

// ClearLog clears the "log" edge to the ImmersionLog entity.
func (m *LogAttachmentMutation) ClearLog() {
	m.clearedlog = true
	m.clearedFields[logattachment.FieldLogID] = struct{}{}
}

// LogCleared reports if the "log" edge to the ImmersionLog entity was cleared.
func (m *LogAttachmentMutation) LogCleared() bool {
	return m.clearedlog
}

// LogIDs returns the "log" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// LogID instead. It exists only for internal usage by the builders.
func (m *LogAttachmentMutation) LogIDs() (ids []uuid.UUID) {
	if id := m.log; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetLog resets all changes to the "log" edge.
func (m *LogAttachmentMutation) ResetLog() {
	m.log = nil
	m.clearedlog = false
}

// ClearRegistration clears the "registration" edge to the ContestRegistration entity.
func (m *LogAttachmentMutation) ClearRegistration() {
	m.clearedregistration = true
	m.clearedFields[logattachment.FieldRegistrationID] = struct{}{}
}

// RegistrationCleared reports if the "registration" edge to the ContestRegistration entity was cleared.
func (m *LogAttachmentMutation) RegistrationCleared() bool {
	return m.clearedregistration
}

// RegistrationIDs returns the "registration" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RegistrationID instead. It exists only for internal usage by the builders.
func (m *LogAttachmentMutation) RegistrationIDs() (ids []uuid.UUID) {
	if id := m.registration; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRegistration resets all changes to the "registration" edge.
func (m *LogAttachmentMutation) ResetRegistration() {
	m.registration = nil
	m.clearedregistration = false
}

// Where appends a list predicates to the LogAttachmentMutation builder.
func (m *LogAttachmentMutation) Where(ps ...predicate.LogAttachment) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LogAttachmentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LogAttachmentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LogAttachment, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LogAttachmentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LogAttachmentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LogAttachment).
func (m *LogAttachmentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LogAttachmentMutation) Fields() []string {
	fields := make([]string, 0, 2)
	if m.log != nil {
		fields = append(fields, logattachment.FieldLogID)
	}
	if m.registration != nil {
		fields = append(fields, logattachment.FieldRegistrationID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LogAttachmentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case logattachment.FieldLogID:
		return m.LogID()
	case logattachment.FieldRegistrationID:
		return m.RegistrationID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LogAttachmentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case logattachment.FieldLogID:
		return m.OldLogID(ctx)
	case logattachment.FieldRegistrationID:
		return m.OldRegistrationID(ctx)
	}
	return nil, fmt.Errorf("unknown LogAttachment field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LogAttachmentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case logattachment.FieldLogID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLogID(v)
		return nil
	case logattachment.FieldRegistrationID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRegistrationID(v)
		return nil
	}
	return fmt.Errorf("unknown LogAttachment field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LogAttachmentMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LogAttachmentMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LogAttachmentMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown LogAttachment numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LogAttachmentMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LogAttachmentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LogAttachmentMutation) ClearField(name string) error {
	return fmt.Errorf("unknown LogAttachment nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LogAttachmentMutation) ResetField(name string) error {
	switch name {
	case logattachment.FieldLogID:
		m.ResetLogID()
		return nil
	case logattachment.FieldRegistrationID:
		m.ResetRegistrationID()
		return nil
	}
	return fmt.Errorf("unknown LogAttachment field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LogAttachmentMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.log != nil {
		edges = append(edges, logattachment.EdgeLog)
	}
	if m.registration != nil {
		edges = append(edges, logattachment.EdgeRegistration)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LogAttachmentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case logattachment.EdgeLog:
		if id := m.log; id != nil {
			return []ent.Value{*id}
		}
	case logattachment.EdgeRegistration:
		if id := m.registration; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LogAttachmentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LogAttachmentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LogAttachmentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedlog {
		edges = append(edges, logattachment.EdgeLog)
	}
	if m.clearedregistration {
		edges = append(edges, logattachment.EdgeRegistration)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LogAttachmentMutation) EdgeCleared(name string) bool {
	switch name {
	case logattachment.EdgeLog:
		return m.clearedlog
	case logattachment.EdgeRegistration:
		return m.clearedregistration
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LogAttachmentMutation) ClearEdge(name string) error {
	switch name {
	case logattachment.EdgeLog:
		m.ClearLog()
		return nil
	case logattachment.EdgeRegistration:
		m.ClearRegistration()
		return nil
	}
	return fmt.Errorf("unknown LogAttachment unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LogAttachmentMutation) ResetEdge(name string) error {
	switch name {
	case logattachment.EdgeLog:
		m.ResetLog()
		return nil
	case logattachment.EdgeRegistration:
		m.ResetRegistration()
		return nil
	}
	return fmt.Errorf("unknown LogAttachment edge %s", name)
}

// TagMutation represents an operation that mutates the Tag nodes in the graph.
type TagMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	name           *string
	activity_id    *int32
	addactivity_id *int32
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*Tag, error)
	predicates     []predicate.Tag
}

var _ ent.Mutation = (*TagMutation)(nil)

// tagOption allows management of the mutation configuration using functional options.
type tagOption func(*TagMutation)

// newTagMutation creates new mutation for the Tag entity.
func newTagMutation(c config, op Op, opts ...tagOption) *TagMutation {
	m := &TagMutation{
		config:        c,
		op:            op,
		typ:           TypeTag,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTagID sets the ID field of the mutation.
func withTagID(id uuid.UUID) tagOption {
	return func(m *TagMutation) {
		var (
			err   error
			once  sync.Once
			value *Tag
		)
		m.oldValue = func(ctx context.Context) (*Tag, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Tag.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTag sets the old Tag of the mutation.
func withTag(node *Tag) tagOption {
	return func(m *TagMutation) {
		m.oldValue = func(context.Context) (*Tag, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TagMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TagMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Tag entities.
func (m *TagMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TagMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TagMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Tag.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *TagMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *TagMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Tag entity.
// If the Tag object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TagMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *TagMutation) ResetName() {
	m.name = nil
}

// SetActivityID sets the "activity_id" field.
func (m *TagMutation) SetActivityID(i int32) {
	m.activity_id = &i
	m.addactivity_id = nil
}

// ActivityID returns the value of the "activity_id" field in the mutation.
func (m *TagMutation) ActivityID() (r int32, exists bool) {
	v := m.activity_id
	if v == nil {
		return
	}
	return *v, true
}

// OldActivityID returns the old "activity_id" field's value of the Tag entity.
// If the Tag object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TagMutation) OldActivityID(ctx context.Context) (v int32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActivityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActivityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActivityID: %w", err)
	}
	return oldValue.ActivityID, nil
}

// AddActivityID adds i to the "activity_id" field.
func (m *TagMutation) AddActivityID(i int32) {
	if m.addactivity_id != nil {
		*m.addactivity_id += i
	} else {
		m.addactivity_id = &i
	}
}

// AddedActivityID returns the value that was added to the "activity_id" field in this mutation.
func (m *TagMutation) AddedActivityID() (r int32, exists bool) {
	v := m.addactivity_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetActivityID resets all changes to the "activity_id" field.
func (m *TagMutation) ResetActivityID() {
	m.activity_id = nil
	m.addactivity_id = nil
}

// Where appends a list predicates to the TagMutation builder.
func (m *TagMutation) Where(ps ...predicate.Tag) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TagMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TagMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Tag, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TagMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TagMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Tag).
func (m *TagMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TagMutation) Fields() []string {
	fields := make([]string, 0, 2)
	if m.name != nil {
		fields = append(fields, tag.FieldName)
	}
	if m.activity_id != nil {
		fields = append(fields, tag.FieldActivityID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TagMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case tag.FieldName:
		return m.Name()
	case tag.FieldActivityID:
		return m.ActivityID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TagMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case tag.FieldName:
		return m.OldName(ctx)
	case tag.FieldActivityID:
		return m.OldActivityID(ctx)
	}
	return nil, fmt.Errorf("unknown Tag field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TagMutation) SetField(name string, value ent.Value) error {
	switch name {
	case tag.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case tag.FieldActivityID:
		v, ok := value.(int32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActivityID(v)
		return nil
	}
	return fmt.Errorf("unknown Tag field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TagMutation) AddedFields() []string {
	var fields []string
	if m.addactivity_id != nil {
		fields = append(fields, tag.FieldActivityID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TagMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case tag.FieldActivityID:
		return m.AddedActivityID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TagMutation) AddField(name string, value ent.Value) error {
	switch name {
	case tag.FieldActivityID:
		v, ok := value.(int32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddActivityID(v)
		return nil
	}
	return fmt.Errorf("unknown Tag numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TagMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TagMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TagMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Tag nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TagMutation) ResetField(name string) error {
	switch name {
	case tag.FieldName:
		m.ResetName()
		return nil
	case tag.FieldActivityID:
		m.ResetActivityID()
		return nil
	}
	return fmt.Errorf("unknown Tag field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TagMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TagMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TagMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TagMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TagMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TagMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TagMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Tag unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TagMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Tag edge %s", name)
}

// UnitMutation represents an operation that mutates the Unit nodes in the graph.
type UnitMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	name           *string
	activity_id    *int32
	addactivity_id *int32
	language_code  *string
	modifier       *float64
	addmodifier    *float64
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*Unit, error)
	predicates     []predicate.Unit
}

var _ ent.Mutation = (*UnitMutation)(nil)

// unitOption allows management of the mutation configuration using functional options.
type unitOption func(*UnitMutation)

// newUnitMutation creates new mutation for the Unit entity.
func newUnitMutation(c config, op Op, opts ...unitOption) *UnitMutation {
	m := &UnitMutation{
		config:        c,
		op:            op,
		typ:           TypeUnit,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUnitID sets the ID field of the mutation.
func withUnitID(id uuid.UUID) unitOption {
	return func(m *UnitMutation) {
		var (
			err   error
			once  sync.Once
			value *Unit
		)
		m.oldValue = func(ctx context.Context) (*Unit, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Unit.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUnit sets the old Unit of the mutation.
func withUnit(node *Unit) unitOption {
	return func(m *UnitMutation) {
		m.oldValue = func(context.Context) (*Unit, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UnitMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UnitMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Unit entities.
func (m *UnitMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UnitMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UnitMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Unit.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *UnitMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *UnitMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Unit entity.
// If the Unit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnitMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *UnitMutation) ResetName() {
	m.name = nil
}

// SetActivityID sets the "activity_id" field.
func (m *UnitMutation) SetActivityID(i int32) {
	m.activity_id = &i
	m.addactivity_id = nil
}

// ActivityID returns the value of the "activity_id" field in the mutation.
func (m *UnitMutation) ActivityID() (r int32, exists bool) {
	v := m.activity_id
	if v == nil {
		return
	}
	return *v, true
}

// OldActivityID returns the old "activity_id" field's value of the Unit entity.
// If the Unit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnitMutation) OldActivityID(ctx context.Context) (v int32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActivityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActivityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActivityID: %w", err)
	}
	return oldValue.ActivityID, nil
}

// AddActivityID adds i to the "activity_id" field.
func (m *UnitMutation) AddActivityID(i int32) {
	if m.addactivity_id != nil {
		*m.addactivity_id += i
	} else {
		m.addactivity_id = &i
	}
}

// AddedActivityID returns the value that was added to the "activity_id" field in this mutation.
func (m *UnitMutation) AddedActivityID() (r int32, exists bool) {
	v := m.addactivity_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetActivityID resets all changes to the "activity_id" field.
func (m *UnitMutation) ResetActivityID() {
	m.activity_id = nil
	m.addactivity_id = nil
}

// SetLanguageCode sets the "language_code" field.
func (m *UnitMutation) SetLanguageCode(s string) {
	m.language_code = &s
}

// LanguageCode returns the value of the "language_code" field in the mutation.
func (m *UnitMutation) LanguageCode() (r string, exists bool) {
	v := m.language_code
	if v == nil {
		return
	}
	return *v, true
}

// OldLanguageCode returns the old "language_code" field's value of the Unit entity.
// If the Unit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnitMutation) OldLanguageCode(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLanguageCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLanguageCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLanguageCode: %w", err)
	}
	return oldValue.LanguageCode, nil
}

// ClearLanguageCode clears the value of the "language_code" field.
func (m *UnitMutation) ClearLanguageCode() {
	m.language_code = nil
	m.clearedFields[unit.FieldLanguageCode] = struct{}{}
}

// LanguageCodeCleared returns if the "language_code" field was cleared in this mutation.
func (m *UnitMutation) LanguageCodeCleared() bool {
	_, ok := m.clearedFields[unit.FieldLanguageCode]
	return ok
}

// ResetLanguageCode resets all changes to the "language_code" field.
func (m *UnitMutation) ResetLanguageCode() {
	m.language_code = nil
	delete(m.clearedFields, unit.FieldLanguageCode)
}

// SetModifier sets the "modifier" field.
func (m *UnitMutation) SetModifier(f float64) {
	m.modifier = &f
	m.addmodifier = nil
}

// Modifier returns the value of the "modifier" field in the mutation.
func (m *UnitMutation) Modifier() (r float64, exists bool) {
	v := m.modifier
	if v == nil {
		return
	}
	return *v, true
}

// OldModifier returns the old "modifier" field's value of the Unit entity.
// If the Unit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnitMutation) OldModifier(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModifier is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModifier requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModifier: %w", err)
	}
	return oldValue.Modifier, nil
}

// AddModifier adds f to the "modifier" field.
func (m *UnitMutation) AddModifier(f float64) {
	if m.addmodifier != nil {
		*m.addmodifier += f
	} else {
		m.addmodifier = &f
	}
}

// AddedModifier returns the value that was added to the "modifier" field in this mutation.
func (m *UnitMutation) AddedModifier() (r float64, exists bool) {
	v := m.addmodifier
	if v == nil {
		return
	}
	return *v, true
}

// ResetModifier resets all changes to the "modifier" field.
func (m *UnitMutation) ResetModifier() {
	m.modifier = nil
	m.addmodifier = nil
}

// Where appends a list predicates to the UnitMutation builder.
func (m *UnitMutation) Where(ps ...predicate.Unit) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UnitMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UnitMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Unit, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UnitMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UnitMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Unit).
func (m *UnitMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UnitMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.name != nil {
		fields = append(fields, unit.FieldName)
	}
	if m.activity_id != nil {
		fields = append(fields, unit.FieldActivityID)
	}
	if m.language_code != nil {
		fields = append(fields, unit.FieldLanguageCode)
	}
	if m.modifier != nil {
		fields = append(fields, unit.FieldModifier)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UnitMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case unit.FieldName:
		return m.Name()
	case unit.FieldActivityID:
		return m.ActivityID()
	case unit.FieldLanguageCode:
		return m.LanguageCode()
	case unit.FieldModifier:
		return m.Modifier()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UnitMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case unit.FieldName:
		return m.OldName(ctx)
	case unit.FieldActivityID:
		return m.OldActivityID(ctx)
	case unit.FieldLanguageCode:
		return m.OldLanguageCode(ctx)
	case unit.FieldModifier:
		return m.OldModifier(ctx)
	}
	return nil, fmt.Errorf("unknown Unit field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UnitMutation) SetField(name string, value ent.Value) error {
	switch name {
	case unit.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case unit.FieldActivityID:
		v, ok := value.(int32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActivityID(v)
		return nil
	case unit.FieldLanguageCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLanguageCode(v)
		return nil
	case unit.FieldModifier:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModifier(v)
		return nil
	}
	return fmt.Errorf("unknown Unit field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UnitMutation) AddedFields() []string {
	var fields []string
	if m.addactivity_id != nil {
		fields = append(fields, unit.FieldActivityID)
	}
	if m.addmodifier != nil {
		fields = append(fields, unit.FieldModifier)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UnitMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case unit.FieldActivityID:
		return m.AddedActivityID()
	case unit.FieldModifier:
		return m.AddedModifier()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UnitMutation) AddField(name string, value ent.Value) error {
	switch name {
	case unit.FieldActivityID:
		v, ok := value.(int32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddActivityID(v)
		return nil
	case unit.FieldModifier:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddModifier(v)
		return nil
	}
	return fmt.Errorf("unknown Unit numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UnitMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(unit.FieldLanguageCode) {
		fields = append(fields, unit.FieldLanguageCode)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UnitMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UnitMutation) ClearField(name string) error {
	switch name {
	case unit.FieldLanguageCode:
		m.ClearLanguageCode()
		return nil
	}
	return fmt.Errorf("unknown Unit nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UnitMutation) ResetField(name string) error {
	switch name {
	case unit.FieldName:
		m.ResetName()
		return nil
	case unit.FieldActivityID:
		m.ResetActivityID()
		return nil
	case unit.FieldLanguageCode:
		m.ResetLanguageCode()
		return nil
	case unit.FieldModifier:
		m.ResetModifier()
		return nil
	}
	return fmt.Errorf("unknown Unit field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UnitMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UnitMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UnitMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UnitMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UnitMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UnitMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UnitMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Unit unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UnitMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Unit edge %s", name)
}
