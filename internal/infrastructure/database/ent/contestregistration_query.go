// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/lingolog/lingolog/internal/infrastructure/database/ent/contest"
	"github.com/lingolog/lingolog/internal/infrastructure/database/ent/contestregistration"
	"github.com/lingolog/lingolog/internal/infrastructure/database/ent/logattachment"
	"github.com/lingolog/lingolog/internal/infrastructure/database/ent/predicate"
)

// ContestRegistrationQuery is the builder for querying ContestRegistration entities.
type ContestRegistrationQuery struct {
	config
	ctx             *QueryContext
	order           []contestregistration.OrderOption
	inters          []Interceptor
	predicates      []predicate.ContestRegistration
	withContest     *ContestQuery
	withAttachments *LogAttachmentQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ContestRegistrationQuery builder.
func (crq *ContestRegistrationQuery) Where(ps ...predicate.ContestRegistration) *ContestRegistrationQuery {
	crq.predicates = append(crq.predicates, ps...)
	return crq
}

// Limit the number of records to be returned by this query.
func (crq *ContestRegistrationQuery) Limit(limit int) *ContestRegistrationQuery {
	crq.ctx.Limit = &limit
	return crq
}

// Offset to start from.
func (crq *ContestRegistrationQuery) Offset(offset int) *ContestRegistrationQuery {
	crq.ctx.Offset = &offset
	return crq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (crq *ContestRegistrationQuery) Unique(unique bool) *ContestRegistrationQuery {
	crq.ctx.Unique = &unique
	return crq
}

// Order specifies how the records should be ordered.
func (crq *ContestRegistrationQuery) Order(o ...contestregistration.OrderOption) *ContestRegistrationQuery {
	crq.order = append(crq.order, o...)
	return crq
}

// QueryContest chains the current query on the "contest" edge.
func (crq *ContestRegistrationQuery) QueryContest() *ContestQuery {
	query := (&ContestClient{config: crq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := crq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := crq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(contestregistration.Table, contestregistration.FieldID, selector),
			sqlgraph.To(contest.Table, contest.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, contestregistration.ContestTable, contestregistration.ContestColumn),
		)
		fromU = sqlgraph.SetNeighbors(crq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryAttachments chains the current query on the "attachments" edge.
func (crq *ContestRegistrationQuery) QueryAttachments() *LogAttachmentQuery {
	query := (&LogAttachmentClient{config: crq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := crq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := crq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(contestregistration.Table, contestregistration.FieldID, selector),
			sqlgraph.To(logattachment.Table, logattachment.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, contestregistration.AttachmentsTable, contestregistration.AttachmentsColumn),
		)
		fromU = sqlgraph.SetNeighbors(crq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first ContestRegistration entity from the query.
// Returns a *NotFoundError when no ContestRegistration was found.
func (crq *ContestRegistrationQuery) First(ctx context.Context) (*ContestRegistration, error) {
	nodes, err := crq.Limit(1).All(setContextOp(ctx, crq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{contestregistration.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (crq *ContestRegistrationQuery) FirstX(ctx context.Context) *ContestRegistration {
	node, err := crq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first ContestRegistration ID from the query.
// Returns a *NotFoundError when no ContestRegistration ID was found.
func (crq *ContestRegistrationQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = crq.Limit(1).IDs(setContextOp(ctx, crq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{contestregistration.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (crq *ContestRegistrationQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := crq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single ContestRegistration entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one ContestRegistration entity is found.
// Returns a *NotFoundError when no ContestRegistration entities are found.
func (crq *ContestRegistrationQuery) Only(ctx context.Context) (*ContestRegistration, error) {
	nodes, err := crq.Limit(2).All(setContextOp(ctx, crq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{contestregistration.Label}
	default:
		return nil, &NotSingularError{contestregistration.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (crq *ContestRegistrationQuery) OnlyX(ctx context.Context) *ContestRegistration {
	node, err := crq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only ContestRegistration ID in the query.
// Returns a *NotSingularError when more than one ContestRegistration ID is found.
// Returns a *NotFoundError when no entities are found.
func (crq *ContestRegistrationQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = crq.Limit(2).IDs(setContextOp(ctx, crq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{contestregistration.Label}
	default:
		err = &NotSingularError{contestregistration.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (crq *ContestRegistrationQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := crq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of ContestRegistrations.
func (crq *ContestRegistrationQuery) All(ctx context.Context) ([]*ContestRegistration, error) {
	ctx = setContextOp(ctx, crq.ctx, ent.OpQueryAll)
	if err := crq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*ContestRegistration, *ContestRegistrationQuery]()
	return withInterceptors[[]*ContestRegistration](ctx, crq, qr, crq.inters)
}

// AllX is like All, but panics if an error occurs.
func (crq *ContestRegistrationQuery) AllX(ctx context.Context) []*ContestRegistration {
	nodes, err := crq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of ContestRegistration IDs.
func (crq *ContestRegistrationQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if crq.ctx.Unique == nil && crq.path != nil {
		crq.Unique(true)
	}
	ctx = setContextOp(ctx, crq.ctx, ent.OpQueryIDs)
	if err = crq.Select(contestregistration.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (crq *ContestRegistrationQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := crq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (crq *ContestRegistrationQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, crq.ctx, ent.OpQueryCount)
	if err := crq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, crq, querierCount[*ContestRegistrationQuery](), crq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (crq *ContestRegistrationQuery) CountX(ctx context.Context) int {
	count, err := crq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (crq *ContestRegistrationQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, crq.ctx, ent.OpQueryExist)
	switch _, err := crq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (crq *ContestRegistrationQuery) ExistX(ctx context.Context) bool {
	exist, err := crq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ContestRegistrationQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (crq *ContestRegistrationQuery) Clone() *ContestRegistrationQuery {
	if crq == nil {
		return nil
	}
	return &ContestRegistrationQuery{
		config:          crq.config,
		ctx:             crq.ctx.Clone(),
		order:           append([]contestregistration.OrderOption{}, crq.order...),
		inters:          append([]Interceptor{}, crq.inters...),
		predicates:      append([]predicate.ContestRegistration{}, crq.predicates...),
		withContest:     crq.withContest.Clone(),
		withAttachments: crq.withAttachments.Clone(),
		// clone intermediate query.
		sql:  crq.sql.Clone(),
		path: crq.path,
	}
}

// WithContest tells the query-builder to eager-load the nodes that are connected to
// the "contest" edge. The optional arguments are used to configure the query builder of the edge.
func (crq *ContestRegistrationQuery) WithContest(opts ...func(*ContestQuery)) *ContestRegistrationQuery {
	query := (&ContestClient{config: crq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	crq.withContest = query
	return crq
}

// WithAttachments tells the query-builder to eager-load the nodes that are connected to
// the "attachments" edge. The optional arguments are used to configure the query builder of the edge.
func (crq *ContestRegistrationQuery) WithAttachments(opts ...func(*LogAttachmentQuery)) *ContestRegistrationQuery {
	query := (&LogAttachmentClient{config: crq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	crq.withAttachments = query
	return crq
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		ContestID uuid.UUID `json:"contest_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.ContestRegistration.Query().
//		GroupBy(contestregistration.FieldContestID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (crq *ContestRegistrationQuery) GroupBy(field string, fields ...string) *ContestRegistrationGroupBy {
	crq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ContestRegistrationGroupBy{build: crq}
	grbuild.flds = &crq.ctx.Fields
	grbuild.label = contestregistration.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		ContestID uuid.UUID `json:"contest_id,omitempty"`
//	}
//
//	client.ContestRegistration.Query().
//		Select(contestregistration.FieldContestID).
//		Scan(ctx, &v)
func (crq *ContestRegistrationQuery) Select(fields ...string) *ContestRegistrationSelect {
	crq.ctx.Fields = append(crq.ctx.Fields, fields...)
	sbuild := &ContestRegistrationSelect{ContestRegistrationQuery: crq}
	sbuild.label = contestregistration.Label
	sbuild.flds, sbuild.scan = &crq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ContestRegistrationSelect configured with the given aggregations.
func (crq *ContestRegistrationQuery) Aggregate(fns ...AggregateFunc) *ContestRegistrationSelect {
	return crq.Select().Aggregate(fns...)
}

func (crq *ContestRegistrationQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range crq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, crq); err != nil {
				return err
			}
		}
	}
	for _, f := range crq.ctx.Fields {
		if !contestregistration.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if crq.path != nil {
		prev, err := crq.path(ctx)
		if err != nil {
			return err
		}
		crq.sql = prev
	}
	return nil
}

func (crq *ContestRegistrationQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*ContestRegistration, error) {
	var (
		nodes       = []*ContestRegistration{}
		_spec       = crq.querySpec()
		loadedTypes = [2]bool{
			crq.withContest != nil,
			crq.withAttachments != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*ContestRegistration).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &ContestRegistration{config: crq.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, crq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := crq.withContest; query != nil {
		if err := crq.loadContest(ctx, query, nodes, nil,
			func(n *ContestRegistration, e *Contest) { n.Edges.Contest = e }); err != nil {
			return nil, err
		}
	}
	if query := crq.withAttachments; query != nil {
		if err := crq.loadAttachments(ctx, query, nodes,
			func(n *ContestRegistration) { n.Edges.Attachments = []*LogAttachment{} },
			func(n *ContestRegistration, e *LogAttachment) { n.Edges.Attachments = append(n.Edges.Attachments, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (crq *ContestRegistrationQuery) loadContest(ctx context.Context, query *ContestQuery, nodes []*ContestRegistration, init func(*ContestRegistration), assign func(*ContestRegistration, *Contest)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*ContestRegistration)
	for i := range nodes {
		fk := nodes[i].ContestID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(contest.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "contest_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (crq *ContestRegistrationQuery) loadAttachments(ctx context.Context, query *LogAttachmentQuery, nodes []*ContestRegistration, init func(*ContestRegistration), assign func(*ContestRegistration, *LogAttachment)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*ContestRegistration)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(logattachment.FieldRegistrationID)
	}
	query.Where(predicate.LogAttachment(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(contestregistration.AttachmentsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.RegistrationID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "registration_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (crq *ContestRegistrationQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := crq.querySpec()
	_spec.Node.Columns = crq.ctx.Fields
	if len(crq.ctx.Fields) > 0 {
		_spec.Unique = crq.ctx.Unique != nil && *crq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, crq.driver, _spec)
}

func (crq *ContestRegistrationQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(contestregistration.Table, contestregistration.Columns, sqlgraph.NewFieldSpec(contestregistration.FieldID, field.TypeUUID))
	_spec.From = crq.sql
	if unique := crq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if crq.path != nil {
		_spec.Unique = true
	}
	if fields := crq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, contestregistration.FieldID)
		for i := range fields {
			if fields[i] != contestregistration.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if crq.withContest != nil {
			_spec.Node.AddColumnOnce(contestregistration.FieldContestID)
		}
	}
	if ps := crq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := crq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := crq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := crq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (crq *ContestRegistrationQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(crq.driver.Dialect())
	t1 := builder.Table(contestregistration.Table)
	columns := crq.ctx.Fields
	if len(columns) == 0 {
		columns = contestregistration.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if crq.sql != nil {
		selector = crq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if crq.ctx.Unique != nil && *crq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range crq.predicates {
		p(selector)
	}
	for _, p := range crq.order {
		p(selector)
	}
	if offset := crq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := crq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ContestRegistrationGroupBy is the group-by builder for ContestRegistration entities.
type ContestRegistrationGroupBy struct {
	selector
	build *ContestRegistrationQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (crgb *ContestRegistrationGroupBy) Aggregate(fns ...AggregateFunc) *ContestRegistrationGroupBy {
	crgb.fns = append(crgb.fns, fns...)
	return crgb
}

// Scan applies the selector query and scans the result into the given value.
func (crgb *ContestRegistrationGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, crgb.build.ctx, ent.OpQueryGroupBy)
	if err := crgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ContestRegistrationQuery, *ContestRegistrationGroupBy](ctx, crgb.build, crgb, crgb.build.inters, v)
}

func (crgb *ContestRegistrationGroupBy) sqlScan(ctx context.Context, root *ContestRegistrationQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(crgb.fns))
	for _, fn := range crgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*crgb.flds)+len(crgb.fns))
		for _, f := range *crgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*crgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := crgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// ContestRegistrationSelect is the builder for selecting fields of ContestRegistration entities.
type ContestRegistrationSelect struct {
	*ContestRegistrationQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (crs *ContestRegistrationSelect) Aggregate(fns ...AggregateFunc) *ContestRegistrationSelect {
	crs.fns = append(crs.fns, fns...)
	return crs
}

// Scan applies the selector query and scans the result into the given value.
func (crs *ContestRegistrationSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, crs.ctx, ent.OpQuerySelect)
	if err := crs.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ContestRegistrationQuery, *ContestRegistrationSelect](ctx, crs.ContestRegistrationQuery, crs, crs.inters, v)
}

func (crs *ContestRegistrationSelect) sqlScan(ctx context.Context, root *ContestRegistrationQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(crs.fns))
	for _, fn := range crs.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*crs.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := crs.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
