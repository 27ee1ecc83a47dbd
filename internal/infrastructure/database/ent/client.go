// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/lingolog/lingolog/internal/infrastructure/database/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/lingolog/lingolog/internal/infrastructure/database/ent/contest"
	"github.com/lingolog/lingolog/internal/infrastructure/database/ent/contestregistration"
	"github.com/lingolog/lingolog/internal/infrastructure/database/ent/immersionlog"
	"github.com/lingolog/lingolog/internal/infrastructure/database/ent/logattachment"
	"github.com/lingolog/lingolog/internal/infrastructure/database/ent/tag"
	"github.com/lingolog/lingolog/internal/infrastructure/database/ent/unit"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Contest is the client for interacting with the Contest builders.
	Contest *ContestClient
	// ContestRegistration is the client for interacting with the ContestRegistration builders.
	ContestRegistration *ContestRegistrationClient
	// ImmersionLog is the client for interacting with the ImmersionLog builders.
	ImmersionLog *ImmersionLogClient
	// LogAttachment is the client for interacting with the LogAttachment builders.
	LogAttachment *LogAttachmentClient
	// Tag is the client for interacting with the Tag builders.
	Tag *TagClient
	// Unit is the client for interacting with the Unit builders.
	Unit *UnitClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Contest = NewContestClient(c.config)
	c.ContestRegistration = NewContestRegistrationClient(c.config)
	c.ImmersionLog = NewImmersionLogClient(c.config)
	c.LogAttachment = NewLogAttachmentClient(c.config)
	c.Tag = NewTagClient(c.config)
	c.Unit = NewUnitClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:                 ctx,
		config:              cfg,
		Contest:             NewContestClient(cfg),
		ContestRegistration: NewContestRegistrationClient(cfg),
		ImmersionLog:        NewImmersionLogClient(cfg),
		LogAttachment:       NewLogAttachmentClient(cfg),
		Tag:                 NewTagClient(cfg),
		Unit:                NewUnitClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:                 ctx,
		config:              cfg,
		Contest:             NewContestClient(cfg),
		ContestRegistration: NewContestRegistrationClient(cfg),
		ImmersionLog:        NewImmersionLogClient(cfg),
		LogAttachment:       NewLogAttachmentClient(cfg),
		Tag:                 NewTagClient(cfg),
		Unit:                NewUnitClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Contest.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.Contest, c.ContestRegistration, c.ImmersionLog, c.LogAttachment, c.Tag,
		c.Unit,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Contest, c.ContestRegistration, c.ImmersionLog, c.LogAttachment, c.Tag,
		c.Unit,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ContestMutation:
		return c.Contest.mutate(ctx, m)
	case *ContestRegistrationMutation:
		return c.ContestRegistration.mutate(ctx, m)
	case *ImmersionLogMutation:
		return c.ImmersionLog.mutate(ctx, m)
	case *LogAttachmentMutation:
		return c.LogAttachment.mutate(ctx, m)
	case *TagMutation:
		return c.Tag.mutate(ctx, m)
	case *UnitMutation:
		return c.Unit.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ContestClient is a client for the Contest schema.
type ContestClient struct {
	config
}

// NewContestClient returns a client for the Contest from the given config.
func NewContestClient(c config) *ContestClient {
	return &ContestClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `contest.Hooks(f(g(h())))`.
func (c *ContestClient) Use(hooks ...Hook) {
	c.hooks.Contest = append(c.hooks.Contest, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `contest.Intercept(f(g(h())))`.
func (c *ContestClient) Intercept(interceptors ...Interceptor) {
	c.inters.Contest = append(c.inters.Contest, interceptors...)
}

// Create returns a builder for creating a Contest entity.
func (c *ContestClient) Create() *ContestCreate {
	mutation := newContestMutation(c.config, OpCreate)
	return &ContestCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Contest entities.
func (c *ContestClient) CreateBulk(builders ...*ContestCreate) *ContestCreateBulk {
	return &ContestCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ContestClient) MapCreateBulk(slice any, setFunc func(*ContestCreate, int)) *ContestCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ContestCreateBulk{err: fmt.Errorf("calling to ContestClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ContestCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ContestCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Contest.
func (c *ContestClient) Update() *ContestUpdate {
	mutation := newContestMutation(c.config, OpUpdate)
	return &ContestUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ContestClient) UpdateOne(co *Contest) *ContestUpdateOne {
	mutation := newContestMutation(c.config, OpUpdateOne, withContest(co))
	return &ContestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ContestClient) UpdateOneID(id uuid.UUID) *ContestUpdateOne {
	mutation := newContestMutation(c.config, OpUpdateOne, withContestID(id))
	return &ContestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Contest.
func (c *ContestClient) Delete() *ContestDelete {
	mutation := newContestMutation(c.config, OpDelete)
	return &ContestDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ContestClient) DeleteOne(co *Contest) *ContestDeleteOne {
	return c.DeleteOneID(co.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ContestClient) DeleteOneID(id uuid.UUID) *ContestDeleteOne {
	builder := c.Delete().Where(contest.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ContestDeleteOne{builder}
}

// Query returns a query builder for Contest.
func (c *ContestClient) Query() *ContestQuery {
	return &ContestQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeContest},
		inters: c.Interceptors(),
	}
}

// Get returns a Contest entity by its id.
func (c *ContestClient) Get(ctx context.Context, id uuid.UUID) (*Contest, error) {
	return c.Query().Where(contest.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ContestClient) GetX(ctx context.Context, id uuid.UUID) *Contest {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRegistrations queries the registrations edge of a Contest.
func (c *ContestClient) QueryRegistrations(co *Contest) *ContestRegistrationQuery {
	query := (&ContestRegistrationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := co.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(contest.Table, contest.FieldID, id),
			sqlgraph.To(contestregistration.Table, contestregistration.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, contest.RegistrationsTable, contest.RegistrationsColumn),
		)
		fromV = sqlgraph.Neighbors(co.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ContestClient) Hooks() []Hook {
	return c.hooks.Contest
}

// Interceptors returns the client interceptors.
func (c *ContestClient) Interceptors() []Interceptor {
	return c.inters.Contest
}

func (c *ContestClient) mutate(ctx context.Context, m *ContestMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ContestCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ContestUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ContestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ContestDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Contest mutation op: %q", m.Op())
	}
}

// ContestRegistrationClient is a client for the ContestRegistration schema.
type ContestRegistrationClient struct {
	config
}

// NewContestRegistrationClient returns a client for the ContestRegistration from the given config.
func NewContestRegistrationClient(c config) *ContestRegistrationClient {
	return &ContestRegistrationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `contestregistration.Hooks(f(g(h())))`.
func (c *ContestRegistrationClient) Use(hooks ...Hook) {
	c.hooks.ContestRegistration = append(c.hooks.ContestRegistration, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `contestregistration.Intercept(f(g(h())))`.
func (c *ContestRegistrationClient) Intercept(interceptors ...Interceptor) {
	c.inters.ContestRegistration = append(c.inters.ContestRegistration, interceptors...)
}

// Create returns a builder for creating a ContestRegistration entity.
func (c *ContestRegistrationClient) Create() *ContestRegistrationCreate {
	mutation := newContestRegistrationMutation(c.config, OpCreate)
	return &ContestRegistrationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ContestRegistration entities.
func (c *ContestRegistrationClient) CreateBulk(builders ...*ContestRegistrationCreate) *ContestRegistrationCreateBulk {
	return &ContestRegistrationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ContestRegistrationClient) MapCreateBulk(slice any, setFunc func(*ContestRegistrationCreate, int)) *ContestRegistrationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ContestRegistrationCreateBulk{err: fmt.Errorf("calling to ContestRegistrationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ContestRegistrationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ContestRegistrationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ContestRegistration.
func (c *ContestRegistrationClient) Update() *ContestRegistrationUpdate {
	mutation := newContestRegistrationMutation(c.config, OpUpdate)
	return &ContestRegistrationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ContestRegistrationClient) UpdateOne(cr *ContestRegistration) *ContestRegistrationUpdateOne {
	mutation := newContestRegistrationMutation(c.config, OpUpdateOne, withContestRegistration(cr))
	return &ContestRegistrationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ContestRegistrationClient) UpdateOneID(id uuid.UUID) *ContestRegistrationUpdateOne {
	mutation := newContestRegistrationMutation(c.config, OpUpdateOne, withContestRegistrationID(id))
	return &ContestRegistrationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ContestRegistration.
func (c *ContestRegistrationClient) Delete() *ContestRegistrationDelete {
	mutation := newContestRegistrationMutation(c.config, OpDelete)
	return &ContestRegistrationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ContestRegistrationClient) DeleteOne(cr *ContestRegistration) *ContestRegistrationDeleteOne {
	return c.DeleteOneID(cr.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ContestRegistrationClient) DeleteOneID(id uuid.UUID) *ContestRegistrationDeleteOne {
	builder := c.Delete().Where(contestregistration.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ContestRegistrationDeleteOne{builder}
}

// Query returns a query builder for ContestRegistration.
func (c *ContestRegistrationClient) Query() *ContestRegistrationQuery {
	return &ContestRegistrationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeContestRegistration},
		inters: c.Interceptors(),
	}
}

// Get returns a ContestRegistration entity by its id.
func (c *ContestRegistrationClient) Get(ctx context.Context, id uuid.UUID) (*ContestRegistration, error) {
	return c.Query().Where(contestregistration.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ContestRegistrationClient) GetX(ctx context.Context, id uuid.UUID) *ContestRegistration {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryContest queries the contest edge of a ContestRegistration.
func (c *ContestRegistrationClient) QueryContest(cr *ContestRegistration) *ContestQuery {
	query := (&ContestClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := cr.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(contestregistration.Table, contestregistration.FieldID, id),
			sqlgraph.To(contest.Table, contest.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, contestregistration.ContestTable, contestregistration.ContestColumn),
		)
		fromV = sqlgraph.Neighbors(cr.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAttachments queries the attachments edge of a ContestRegistration.
func (c *ContestRegistrationClient) QueryAttachments(cr *ContestRegistration) *LogAttachmentQuery {
	query := (&LogAttachmentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := cr.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(contestregistration.Table, contestregistration.FieldID, id),
			sqlgraph.To(logattachment.Table, logattachment.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, contestregistration.AttachmentsTable, contestregistration.AttachmentsColumn),
		)
		fromV = sqlgraph.Neighbors(cr.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ContestRegistrationClient) Hooks() []Hook {
	return c.hooks.ContestRegistration
}

// Interceptors returns the client interceptors.
func (c *ContestRegistrationClient) Interceptors() []Interceptor {
	return c.inters.ContestRegistration
}

func (c *ContestRegistrationClient) mutate(ctx context.Context, m *ContestRegistrationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ContestRegistrationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ContestRegistrationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ContestRegistrationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ContestRegistrationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ContestRegistration mutation op: %q", m.Op())
	}
}

// ImmersionLogClient is a client for the ImmersionLog schema.
type ImmersionLogClient struct {
	config
}

// NewImmersionLogClient returns a client for the ImmersionLog from the given config.
func NewImmersionLogClient(c config) *ImmersionLogClient {
	return &ImmersionLogClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `immersionlog.Hooks(f(g(h())))`.
func (c *ImmersionLogClient) Use(hooks ...Hook) {
	c.hooks.ImmersionLog = append(c.hooks.ImmersionLog, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `immersionlog.Intercept(f(g(h())))`.
func (c *ImmersionLogClient) Intercept(interceptors ...Interceptor) {
	c.inters.ImmersionLog = append(c.inters.ImmersionLog, interceptors...)
}

// Create returns a builder for creating a ImmersionLog entity.
func (c *ImmersionLogClient) Create() *ImmersionLogCreate {
	mutation := newImmersionLogMutation(c.config, OpCreate)
	return &ImmersionLogCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ImmersionLog entities.
func (c *ImmersionLogClient) CreateBulk(builders ...*ImmersionLogCreate) *ImmersionLogCreateBulk {
	return &ImmersionLogCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ImmersionLogClient) MapCreateBulk(slice any, setFunc func(*ImmersionLogCreate, int)) *ImmersionLogCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ImmersionLogCreateBulk{err: fmt.Errorf("calling to ImmersionLogClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ImmersionLogCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ImmersionLogCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ImmersionLog.
func (c *ImmersionLogClient) Update() *ImmersionLogUpdate {
	mutation := newImmersionLogMutation(c.config, OpUpdate)
	return &ImmersionLogUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ImmersionLogClient) UpdateOne(il *ImmersionLog) *ImmersionLogUpdateOne {
	mutation := newImmersionLogMutation(c.config, OpUpdateOne, withImmersionLog(il))
	return &ImmersionLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ImmersionLogClient) UpdateOneID(id uuid.UUID) *ImmersionLogUpdateOne {
	mutation := newImmersionLogMutation(c.config, OpUpdateOne, withImmersionLogID(id))
	return &ImmersionLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ImmersionLog.
func (c *ImmersionLogClient) Delete() *ImmersionLogDelete {
	mutation := newImmersionLogMutation(c.config, OpDelete)
	return &ImmersionLogDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ImmersionLogClient) DeleteOne(il *ImmersionLog) *ImmersionLogDeleteOne {
	return c.DeleteOneID(il.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ImmersionLogClient) DeleteOneID(id uuid.UUID) *ImmersionLogDeleteOne {
	builder := c.Delete().Where(immersionlog.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ImmersionLogDeleteOne{builder}
}

// Query returns a query builder for ImmersionLog.
func (c *ImmersionLogClient) Query() *ImmersionLogQuery {
	return &ImmersionLogQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeImmersionLog},
		inters: c.Interceptors(),
	}
}

// Get returns a ImmersionLog entity by its id.
func (c *ImmersionLogClient) Get(ctx context.Context, id uuid.UUID) (*ImmersionLog, error) {
	return c.Query().Where(immersionlog.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ImmersionLogClient) GetX(ctx context.Context, id uuid.UUID) *ImmersionLog {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAttachments queries the attachments edge of a ImmersionLog.
func (c *ImmersionLogClient) QueryAttachments(il *ImmersionLog) *LogAttachmentQuery {
	query := (&LogAttachmentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := il.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(immersionlog.Table, immersionlog.FieldID, id),
			sqlgraph.To(logattachment.Table, logattachment.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, immersionlog.AttachmentsTable, immersionlog.AttachmentsColumn),
		)
		fromV = sqlgraph.Neighbors(il.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ImmersionLogClient) Hooks() []Hook {
	return c.hooks.ImmersionLog
}

// Interceptors returns the client interceptors.
func (c *ImmersionLogClient) Interceptors() []Interceptor {
	return c.inters.ImmersionLog
}

func (c *ImmersionLogClient) mutate(ctx context.Context, m *ImmersionLogMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ImmersionLogCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ImmersionLogUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ImmersionLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ImmersionLogDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ImmersionLog mutation op: %q", m.Op())
	}
}

// LogAttachmentClient is a client for the LogAttachment schema.
type LogAttachmentClient struct {
	config
}

// NewLogAttachmentClient returns a client for the LogAttachment from the given config.
func NewLogAttachmentClient(c config) *LogAttachmentClient {
	return &LogAttachmentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `logattachment.Hooks(f(g(h())))`.
func (c *LogAttachmentClient) Use(hooks ...Hook) {
	c.hooks.LogAttachment = append(c.hooks.LogAttachment, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `logattachment.Intercept(f(g(h())))`.
func (c *LogAttachmentClient) Intercept(interceptors ...Interceptor) {
	c.inters.LogAttachment = append(c.inters.LogAttachment, interceptors...)
}

// Create returns a builder for creating a LogAttachment entity.
func (c *LogAttachmentClient) Create() *LogAttachmentCreate {
	mutation := newLogAttachmentMutation(c.config, OpCreate)
	return &LogAttachmentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LogAttachment entities.
func (c *LogAttachmentClient) CreateBulk(builders ...*LogAttachmentCreate) *LogAttachmentCreateBulk {
	return &LogAttachmentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LogAttachmentClient) MapCreateBulk(slice any, setFunc func(*LogAttachmentCreate, int)) *LogAttachmentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LogAttachmentCreateBulk{err: fmt.Errorf("calling to LogAttachmentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LogAttachmentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LogAttachmentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LogAttachment.
func (c *LogAttachmentClient) Update() *LogAttachmentUpdate {
	mutation := newLogAttachmentMutation(c.config, OpUpdate)
	return &LogAttachmentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LogAttachmentClient) UpdateOne(la *LogAttachment) *LogAttachmentUpdateOne {
	mutation := newLogAttachmentMutation(c.config, OpUpdateOne, withLogAttachment(la))
	return &LogAttachmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LogAttachmentClient) UpdateOneID(id int) *LogAttachmentUpdateOne {
	mutation := newLogAttachmentMutation(c.config, OpUpdateOne, withLogAttachmentID(id))
	return &LogAttachmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LogAttachment.
func (c *LogAttachmentClient) Delete() *LogAttachmentDelete {
	mutation := newLogAttachmentMutation(c.config, OpDelete)
	return &LogAttachmentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LogAttachmentClient) DeleteOne(la *LogAttachment) *LogAttachmentDeleteOne {
	return c.DeleteOneID(la.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LogAttachmentClient) DeleteOneID(id int) *LogAttachmentDeleteOne {
	builder := c.Delete().Where(logattachment.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LogAttachmentDeleteOne{builder}
}

// Query returns a query builder for LogAttachment.
func (c *LogAttachmentClient) Query() *LogAttachmentQuery {
	return &LogAttachmentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLogAttachment},
		inters: c.Interceptors(),
	}
}

// Get returns a LogAttachment entity by its id.
func (c *LogAttachmentClient) Get(ctx context.Context, id int) (*LogAttachment, error) {
	return c.Query().Where(logattachment.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LogAttachmentClient) GetX(ctx context.Context, id int) *LogAttachment {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryLog queries the log edge of a LogAttachment.
func (c *LogAttachmentClient) QueryLog(la *LogAttachment) *ImmersionLogQuery {
	query := (&ImmersionLogClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := la.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(logattachment.Table, logattachment.FieldID, id),
			sqlgraph.To(immersionlog.Table, immersionlog.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, logattachment.LogTable, logattachment.LogColumn),
		)
		fromV = sqlgraph.Neighbors(la.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryRegistration queries the registration edge of a LogAttachment.
func (c *LogAttachmentClient) QueryRegistration(la *LogAttachment) *ContestRegistrationQuery {
	query := (&ContestRegistrationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := la.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(logattachment.Table, logattachment.FieldID, id),
			sqlgraph.To(contestregistration.Table, contestregistration.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, logattachment.RegistrationTable, logattachment.RegistrationColumn),
		)
		fromV = sqlgraph.Neighbors(la.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *LogAttachmentClient) Hooks() []Hook {
	return c.hooks.LogAttachment
}

// Interceptors returns the client interceptors.
func (c *LogAttachmentClient) Interceptors() []Interceptor {
	return c.inters.LogAttachment
}

func (c *LogAttachmentClient) mutate(ctx context.Context, m *LogAttachmentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LogAttachmentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LogAttachmentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LogAttachmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LogAttachmentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LogAttachment mutation op: %q", m.Op())
	}
}

// TagClient is a client for the Tag schema.
type TagClient struct {
	config
}

// NewTagClient returns a client for the Tag from the given config.
func NewTagClient(c config) *TagClient {
	return &TagClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `tag.Hooks(f(g(h())))`.
func (c *TagClient) Use(hooks ...Hook) {
	c.hooks.Tag = append(c.hooks.Tag, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `tag.Intercept(f(g(h())))`.
func (c *TagClient) Intercept(interceptors ...Interceptor) {
	c.inters.Tag = append(c.inters.Tag, interceptors...)
}

// Create returns a builder for creating a Tag entity.
func (c *TagClient) Create() *TagCreate {
	mutation := newTagMutation(c.config, OpCreate)
	return &TagCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Tag entities.
func (c *TagClient) CreateBulk(builders ...*TagCreate) *TagCreateBulk {
	return &TagCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TagClient) MapCreateBulk(slice any, setFunc func(*TagCreate, int)) *TagCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TagCreateBulk{err: fmt.Errorf("calling to TagClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TagCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TagCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Tag.
func (c *TagClient) Update() *TagUpdate {
	mutation := newTagMutation(c.config, OpUpdate)
	return &TagUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TagClient) UpdateOne(t *Tag) *TagUpdateOne {
	mutation := newTagMutation(c.config, OpUpdateOne, withTag(t))
	return &TagUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TagClient) UpdateOneID(id uuid.UUID) *TagUpdateOne {
	mutation := newTagMutation(c.config, OpUpdateOne, withTagID(id))
	return &TagUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Tag.
func (c *TagClient) Delete() *TagDelete {
	mutation := newTagMutation(c.config, OpDelete)
	return &TagDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TagClient) DeleteOne(t *Tag) *TagDeleteOne {
	return c.DeleteOneID(t.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TagClient) DeleteOneID(id uuid.UUID) *TagDeleteOne {
	builder := c.Delete().Where(tag.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TagDeleteOne{builder}
}

// Query returns a query builder for Tag.
func (c *TagClient) Query() *TagQuery {
	return &TagQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTag},
		inters: c.Interceptors(),
	}
}

// Get returns a Tag entity by its id.
func (c *TagClient) Get(ctx context.Context, id uuid.UUID) (*Tag, error) {
	return c.Query().Where(tag.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TagClient) GetX(ctx context.Context, id uuid.UUID) *Tag {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TagClient) Hooks() []Hook {
	return c.hooks.Tag
}

// Interceptors returns the client interceptors.
func (c *TagClient) Interceptors() []Interceptor {
	return c.inters.Tag
}

func (c *TagClient) mutate(ctx context.Context, m *TagMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TagCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TagUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TagUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TagDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Tag mutation op: %q", m.Op())
	}
}

// UnitClient is a client for the Unit schema.
type UnitClient struct {
	config
}

// NewUnitClient returns a client for the Unit from the given config.
func NewUnitClient(c config) *UnitClient {
	return &UnitClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `unit.Hooks(f(g(h())))`.
func (c *UnitClient) Use(hooks ...Hook) {
	c.hooks.Unit = append(c.hooks.Unit, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `unit.Intercept(f(g(h())))`.
func (c *UnitClient) Intercept(interceptors ...Interceptor) {
	c.inters.Unit = append(c.inters.Unit, interceptors...)
}

// Create returns a builder for creating a Unit entity.
func (c *UnitClient) Create() *UnitCreate {
	mutation := newUnitMutation(c.config, OpCreate)
	return &UnitCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Unit entities.
func (c *UnitClient) CreateBulk(builders ...*UnitCreate) *UnitCreateBulk {
	return &UnitCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UnitClient) MapCreateBulk(slice any, setFunc func(*UnitCreate, int)) *UnitCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UnitCreateBulk{err: fmt.Errorf("calling to UnitClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UnitCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UnitCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Unit.
func (c *UnitClient) Update() *UnitUpdate {
	mutation := newUnitMutation(c.config, OpUpdate)
	return &UnitUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UnitClient) UpdateOne(u *Unit) *UnitUpdateOne {
	mutation := newUnitMutation(c.config, OpUpdateOne, withUnit(u))
	return &UnitUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UnitClient) UpdateOneID(id uuid.UUID) *UnitUpdateOne {
	mutation := newUnitMutation(c.config, OpUpdateOne, withUnitID(id))
	return &UnitUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Unit.
func (c *UnitClient) Delete() *UnitDelete {
	mutation := newUnitMutation(c.config, OpDelete)
	return &UnitDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UnitClient) DeleteOne(u *Unit) *UnitDeleteOne {
	return c.DeleteOneID(u.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UnitClient) DeleteOneID(id uuid.UUID) *UnitDeleteOne {
	builder := c.Delete().Where(unit.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UnitDeleteOne{builder}
}

// Query returns a query builder for Unit.
func (c *UnitClient) Query() *UnitQuery {
	return &UnitQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUnit},
		inters: c.Interceptors(),
	}
}

// Get returns a Unit entity by its id.
func (c *UnitClient) Get(ctx context.Context, id uuid.UUID) (*Unit, error) {
	return c.Query().Where(unit.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UnitClient) GetX(ctx context.Context, id uuid.UUID) *Unit {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *UnitClient) Hooks() []Hook {
	return c.hooks.Unit
}

// Interceptors returns the client interceptors.
func (c *UnitClient) Interceptors() []Interceptor {
	return c.inters.Unit
}

func (c *UnitClient) mutate(ctx context.Context, m *UnitMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UnitCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UnitUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UnitUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UnitDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Unit mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Contest, ContestRegistration, ImmersionLog, LogAttachment, Tag, Unit []ent.Hook
	}
	inters struct {
		Contest, ContestRegistration, ImmersionLog, LogAttachment, Tag,
		Unit []ent.Interceptor
	}
)
