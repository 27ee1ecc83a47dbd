// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/lingolog/lingolog/internal/infrastructure/database/ent/contestregistration"
	"github.com/lingolog/lingolog/internal/infrastructure/database/ent/immersionlog"
	"github.com/lingolog/lingolog/internal/infrastructure/database/ent/logattachment"
	"github.com/lingolog/lingolog/internal/infrastructure/database/ent/predicate"
)

// LogAttachmentQuery is the builder for querying LogAttachment entities.
type LogAttachmentQuery struct {
	config
	ctx              *QueryContext
	order            []logattachment.OrderOption
	inters           []Interceptor
	predicates       []predicate.LogAttachment
	withLog          *ImmersionLogQuery
	withRegistration *ContestRegistrationQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the LogAttachmentQuery builder.
func (laq *LogAttachmentQuery) Where(ps ...predicate.LogAttachment) *LogAttachmentQuery {
	laq.predicates = append(laq.predicates, ps...)
	return laq
}

// Limit the number of records to be returned by this query.
func (laq *LogAttachmentQuery) Limit(limit int) *LogAttachmentQuery {
	laq.ctx.Limit = &limit
	return laq
}

// Offset to start from.
func (laq *LogAttachmentQuery) Offset(offset int) *LogAttachmentQuery {
	laq.ctx.Offset = &offset
	return laq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (laq *LogAttachmentQuery) Unique(unique bool) *LogAttachmentQuery {
	laq.ctx.Unique = &unique
	return laq
}

// Order specifies how the records should be ordered.
func (laq *LogAttachmentQuery) Order(o ...logattachment.OrderOption) *LogAttachmentQuery {
	laq.order = append(laq.order, o...)
	return laq
}

// QueryLog chains the current query on the "log" edge.
func (laq *LogAttachmentQuery) QueryLog() *ImmersionLogQuery {
	query := (&ImmersionLogClient{config: laq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := laq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := laq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(logattachment.Table, logattachment.FieldID, selector),
			sqlgraph.To(immersionlog.Table, immersionlog.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, logattachment.LogTable, logattachment.LogColumn),
		)
		fromU = sqlgraph.SetNeighbors(laq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryRegistration chains the current query on the "registration" edge.
func (laq *LogAttachmentQuery) QueryRegistration() *ContestRegistrationQuery {
	query := (&ContestRegistrationClient{config: laq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := laq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := laq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(logattachment.Table, logattachment.FieldID, selector),
			sqlgraph.To(contestregistration.Table, contestregistration.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, logattachment.RegistrationTable, logattachment.RegistrationColumn),
		)
		fromU = sqlgraph.SetNeighbors(laq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first LogAttachment entity from the query.
// Returns a *NotFoundError when no LogAttachment was found.
func (laq *LogAttachmentQuery) First(ctx context.Context) (*LogAttachment, error) {
	nodes, err := laq.Limit(1).All(setContextOp(ctx, laq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{logattachment.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (laq *LogAttachmentQuery) FirstX(ctx context.Context) *LogAttachment {
	node, err := laq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first LogAttachment ID from the query.
// Returns a *NotFoundError when no LogAttachment ID was found.
func (laq *LogAttachmentQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = laq.Limit(1).IDs(setContextOp(ctx, laq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{logattachment.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (laq *LogAttachmentQuery) FirstIDX(ctx context.Context) int {
	id, err := laq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single LogAttachment entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one LogAttachment entity is found.
// Returns a *NotFoundError when no LogAttachment entities are found.
func (laq *LogAttachmentQuery) Only(ctx context.Context) (*LogAttachment, error) {
	nodes, err := laq.Limit(2).All(setContextOp(ctx, laq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{logattachment.Label}
	default:
		return nil, &NotSingularError{logattachment.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (laq *LogAttachmentQuery) OnlyX(ctx context.Context) *LogAttachment {
	node, err := laq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only LogAttachment ID in the query.
// Returns a *NotSingularError when more than one LogAttachment ID is found.
// Returns a *NotFoundError when no entities are found.
func (laq *LogAttachmentQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = laq.Limit(2).IDs(setContextOp(ctx, laq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{logattachment.Label}
	default:
		err = &NotSingularError{logattachment.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (laq *LogAttachmentQuery) OnlyIDX(ctx context.Context) int {
	id, err := laq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of LogAttachments.
func (laq *LogAttachmentQuery) All(ctx context.Context) ([]*LogAttachment, error) {
	ctx = setContextOp(ctx, laq.ctx, ent.OpQueryAll)
	if err := laq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*LogAttachment, *LogAttachmentQuery]()
	return withInterceptors[[]*LogAttachment](ctx, laq, qr, laq.inters)
}

// AllX is like All, but panics if an error occurs.
func (laq *LogAttachmentQuery) AllX(ctx context.Context) []*LogAttachment {
	nodes, err := laq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of LogAttachment IDs.
func (laq *LogAttachmentQuery) IDs(ctx context.Context) (ids []int, err error) {
	if laq.ctx.Unique == nil && laq.path != nil {
		laq.Unique(true)
	}
	ctx = setContextOp(ctx, laq.ctx, ent.OpQueryIDs)
	if err = laq.Select(logattachment.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (laq *LogAttachmentQuery) IDsX(ctx context.Context) []int {
	ids, err := laq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (laq *LogAttachmentQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, laq.ctx, ent.OpQueryCount)
	if err := laq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, laq, querierCount[*LogAttachmentQuery](), laq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (laq *LogAttachmentQuery) CountX(ctx context.Context) int {
	count, err := laq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (laq *LogAttachmentQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, laq.ctx, ent.OpQueryExist)
	switch _, err := laq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (laq *LogAttachmentQuery) ExistX(ctx context.Context) bool {
	exist, err := laq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the LogAttachmentQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (laq *LogAttachmentQuery) Clone() *LogAttachmentQuery {
	if laq == nil {
		return nil
	}
	return &LogAttachmentQuery{
		config:           laq.config,
		ctx:              laq.ctx.Clone(),
		order:            append([]logattachment.OrderOption{}, laq.order...),
		inters:           append([]Interceptor{}, laq.inters...),
		predicates:       append([]predicate.LogAttachment{}, laq.predicates...),
		withLog:          laq.withLog.Clone(),
		withRegistration: laq.withRegistration.Clone(),
		// clone intermediate query.
		sql:  laq.sql.Clone(),
		path: laq.path,
	}
}

// WithLog tells the query-builder to eager-load the nodes that are connected to
// the "log" edge. The optional arguments are used to configure the query builder of the edge.
func (laq *LogAttachmentQuery) WithLog(opts ...func(*ImmersionLogQuery)) *LogAttachmentQuery {
	query := (&ImmersionLogClient{config: laq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	laq.withLog = query
	return laq
}

// WithRegistration tells the query-builder to eager-load the nodes that are connected to
// the "registration" edge. The optional arguments are used to configure the query builder of the edge.
func (laq *LogAttachmentQuery) WithRegistration(opts ...func(*ContestRegistrationQuery)) *LogAttachmentQuery {
	query := (&ContestRegistrationClient{config: laq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	laq.withRegistration = query
	return laq
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		LogID uuid.UUID `json:"log_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.LogAttachment.Query().
//		GroupBy(logattachment.FieldLogID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (laq *LogAttachmentQuery) GroupBy(field string, fields ...string) *LogAttachmentGroupBy {
	laq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &LogAttachmentGroupBy{build: laq}
	grbuild.flds = &laq.ctx.Fields
	grbuild.label = logattachment.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		LogID uuid.UUID `json:"log_id,omitempty"`
//	}
//
//	client.LogAttachment.Query().
//		Select(logattachment.FieldLogID).
//		Scan(ctx, &v)
func (laq *LogAttachmentQuery) Select(fields ...string) *LogAttachmentSelect {
	laq.ctx.Fields = append(laq.ctx.Fields, fields...)
	sbuild := &LogAttachmentSelect{LogAttachmentQuery: laq}
	sbuild.label = logattachment.Label
	sbuild.flds, sbuild.scan = &laq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a LogAttachmentSelect configured with the given aggregations.
func (laq *LogAttachmentQuery) Aggregate(fns ...AggregateFunc) *LogAttachmentSelect {
	return laq.Select().Aggregate(fns...)
}

func (laq *LogAttachmentQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range laq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, laq); err != nil {
				return err
			}
		}
	}
	for _, f := range laq.ctx.Fields {
		if !logattachment.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if laq.path != nil {
		prev, err := laq.path(ctx)
		if err != nil {
			return err
		}
		laq.sql = prev
	}
	return nil
}

func (laq *LogAttachmentQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*LogAttachment, error) {
	var (
		nodes       = []*LogAttachment{}
		_spec       = laq.querySpec()
		loadedTypes = [2]bool{
			laq.withLog != nil,
			laq.withRegistration != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*LogAttachment).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &LogAttachment{config: laq.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, laq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := laq.withLog; query != nil {
		if err := laq.loadLog(ctx, query, nodes, nil,
			func(n *LogAttachment, e *ImmersionLog) { n.Edges.Log = e }); err != nil {
			return nil, err
		}
	}
	if query := laq.withRegistration; query != nil {
		if err := laq.loadRegistration(ctx, query, nodes, nil,
			func(n *LogAttachment, e *ContestRegistration) { n.Edges.Registration = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (laq *LogAttachmentQuery) loadLog(ctx context.Context, query *ImmersionLogQuery, nodes []*LogAttachment, init func(*LogAttachment), assign func(*LogAttachment, *ImmersionLog)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*LogAttachment)
	for i := range nodes {
		fk := nodes[i].LogID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(immersionlog.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "log_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (laq *LogAttachmentQuery) loadRegistration(ctx context.Context, query *ContestRegistrationQuery, nodes []*LogAttachment, init func(*LogAttachment), assign func(*LogAttachment, *ContestRegistration)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*LogAttachment)
	for i := range nodes {
		fk := nodes[i].RegistrationID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(contestregistration.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "registration_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (laq *LogAttachmentQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := laq.querySpec()
	_spec.Node.Columns = laq.ctx.Fields
	if len(laq.ctx.Fields) > 0 {
		_spec.Unique = laq.ctx.Unique != nil && *laq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, laq.driver, _spec)
}

func (laq *LogAttachmentQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(logattachment.Table, logattachment.Columns, sqlgraph.NewFieldSpec(logattachment.FieldID, field.TypeInt))
	_spec.From = laq.sql
	if unique := laq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if laq.path != nil {
		_spec.Unique = true
	}
	if fields := laq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, logattachment.FieldID)
		for i := range fields {
			if fields[i] != logattachment.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if laq.withLog != nil {
			_spec.Node.AddColumnOnce(logattachment.FieldLogID)
		}
		if laq.withRegistration != nil {
			_spec.Node.AddColumnOnce(logattachment.FieldRegistrationID)
		}
	}
	if ps := laq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := laq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := laq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := laq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (laq *LogAttachmentQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(laq.driver.Dialect())
	t1 := builder.Table(logattachment.Table)
	columns := laq.ctx.Fields
	if len(columns) == 0 {
		columns = logattachment.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if laq.sql != nil {
		selector = laq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if laq.ctx.Unique != nil && *laq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range laq.predicates {
		p(selector)
	}
	for _, p := range laq.order {
		p(selector)
	}
	if offset := laq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := laq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// LogAttachmentGroupBy is the group-by builder for LogAttachment entities.
type LogAttachmentGroupBy struct {
	selector
	build *LogAttachmentQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (lagb *LogAttachmentGroupBy) Aggregate(fns ...AggregateFunc) *LogAttachmentGroupBy {
	lagb.fns = append(lagb.fns, fns...)
	return lagb
}

// Scan applies the selector query and scans the result into the given value.
func (lagb *LogAttachmentGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, lagb.build.ctx, ent.OpQueryGroupBy)
	if err := lagb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*LogAttachmentQuery, *LogAttachmentGroupBy](ctx, lagb.build, lagb, lagb.build.inters, v)
}

func (lagb *LogAttachmentGroupBy) sqlScan(ctx context.Context, root *LogAttachmentQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(lagb.fns))
	for _, fn := range lagb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*lagb.flds)+len(lagb.fns))
		for _, f := range *lagb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*lagb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := lagb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// LogAttachmentSelect is the builder for selecting fields of LogAttachment entities.
type LogAttachmentSelect struct {
	*LogAttachmentQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (las *LogAttachmentSelect) Aggregate(fns ...AggregateFunc) *LogAttachmentSelect {
	las.fns = append(las.fns, fns...)
	return las
}

// Scan applies the selector query and scans the result into the given value.
func (las *LogAttachmentSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, las.ctx, ent.OpQuerySelect)
	if err := las.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*LogAttachmentQuery, *LogAttachmentSelect](ctx, las.LogAttachmentQuery, las, las.inters, v)
}

func (las *LogAttachmentSelect) sqlScan(ctx context.Context, root *LogAttachmentQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(las.fns))
	for _, fn := range las.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*las.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := las.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
