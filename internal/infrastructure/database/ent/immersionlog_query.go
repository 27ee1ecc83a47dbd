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
	"github.com/lingolog/lingolog/internal/infrastructure/database/ent/immersionlog"
	"github.com/lingolog/lingolog/internal/infrastructure/database/ent/logattachment"
	"github.com/lingolog/lingolog/internal/infrastructure/database/ent/predicate"
)

// ImmersionLogQuery is the builder for querying ImmersionLog entities.
type ImmersionLogQuery struct {
	config
	ctx             *QueryContext
	order           []immersionlog.OrderOption
	inters          []Interceptor
	predicates      []predicate.ImmersionLog
	withAttachments *LogAttachmentQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ImmersionLogQuery builder.
func (ilq *ImmersionLogQuery) Where(ps ...predicate.ImmersionLog) *ImmersionLogQuery {
	ilq.predicates = append(ilq.predicates, ps...)
	return ilq
}

// Limit the number of records to be returned by this query.
func (ilq *ImmersionLogQuery) Limit(limit int) *ImmersionLogQuery {
	ilq.ctx.Limit = &limit
	return ilq
}

// Offset to start from.
func (ilq *ImmersionLogQuery) Offset(offset int) *ImmersionLogQuery {
	ilq.ctx.Offset = &offset
	return ilq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (ilq *ImmersionLogQuery) Unique(unique bool) *ImmersionLogQuery {
	ilq.ctx.Unique = &unique
	return ilq
}

// Order specifies how the records should be ordered.
func (ilq *ImmersionLogQuery) Order(o ...immersionlog.OrderOption) *ImmersionLogQuery {
	ilq.order = append(ilq.order, o...)
	return ilq
}

// QueryAttachments chains the current query on the "attachments" edge.
func (ilq *ImmersionLogQuery) QueryAttachments() *LogAttachmentQuery {
	query := (&LogAttachmentClient{config: ilq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := ilq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := ilq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(immersionlog.Table, immersionlog.FieldID, selector),
			sqlgraph.To(logattachment.Table, logattachment.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, immersionlog.AttachmentsTable, immersionlog.AttachmentsColumn),
		)
		fromU = sqlgraph.SetNeighbors(ilq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first ImmersionLog entity from the query.
// Returns a *NotFoundError when no ImmersionLog was found.
func (ilq *ImmersionLogQuery) First(ctx context.Context) (*ImmersionLog, error) {
	nodes, err := ilq.Limit(1).All(setContextOp(ctx, ilq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{immersionlog.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (ilq *ImmersionLogQuery) FirstX(ctx context.Context) *ImmersionLog {
	node, err := ilq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first ImmersionLog ID from the query.
// Returns a *NotFoundError when no ImmersionLog ID was found.
func (ilq *ImmersionLogQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = ilq.Limit(1).IDs(setContextOp(ctx, ilq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{immersionlog.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (ilq *ImmersionLogQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := ilq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single ImmersionLog entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one ImmersionLog entity is found.
// Returns a *NotFoundError when no ImmersionLog entities are found.
func (ilq *ImmersionLogQuery) Only(ctx context.Context) (*ImmersionLog, error) {
	nodes, err := ilq.Limit(2).All(setContextOp(ctx, ilq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{immersionlog.Label}
	default:
		return nil, &NotSingularError{immersionlog.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (ilq *ImmersionLogQuery) OnlyX(ctx context.Context) *ImmersionLog {
	node, err := ilq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only ImmersionLog ID in the query.
// Returns a *NotSingularError when more than one ImmersionLog ID is found.
// Returns a *NotFoundError when no entities are found.
func (ilq *ImmersionLogQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = ilq.Limit(2).IDs(setContextOp(ctx, ilq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{immersionlog.Label}
	default:
		err = &NotSingularError{immersionlog.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (ilq *ImmersionLogQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := ilq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of ImmersionLogs.
func (ilq *ImmersionLogQuery) All(ctx context.Context) ([]*ImmersionLog, error) {
	ctx = setContextOp(ctx, ilq.ctx, ent.OpQueryAll)
	if err := ilq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*ImmersionLog, *ImmersionLogQuery]()
	return withInterceptors[[]*ImmersionLog](ctx, ilq, qr, ilq.inters)
}

// AllX is like All, but panics if an error occurs.
func (ilq *ImmersionLogQuery) AllX(ctx context.Context) []*ImmersionLog {
	nodes, err := ilq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of ImmersionLog IDs.
func (ilq *ImmersionLogQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if ilq.ctx.Unique == nil && ilq.path != nil {
		ilq.Unique(true)
	}
	ctx = setContextOp(ctx, ilq.ctx, ent.OpQueryIDs)
	if err = ilq.Select(immersionlog.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (ilq *ImmersionLogQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := ilq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (ilq *ImmersionLogQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, ilq.ctx, ent.OpQueryCount)
	if err := ilq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, ilq, querierCount[*ImmersionLogQuery](), ilq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (ilq *ImmersionLogQuery) CountX(ctx context.Context) int {
	count, err := ilq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (ilq *ImmersionLogQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, ilq.ctx, ent.OpQueryExist)
	switch _, err := ilq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (ilq *ImmersionLogQuery) ExistX(ctx context.Context) bool {
	exist, err := ilq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ImmersionLogQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (ilq *ImmersionLogQuery) Clone() *ImmersionLogQuery {
	if ilq == nil {
		return nil
	}
	return &ImmersionLogQuery{
		config:          ilq.config,
		ctx:             ilq.ctx.Clone(),
		order:           append([]immersionlog.OrderOption{}, ilq.order...),
		inters:          append([]Interceptor{}, ilq.inters...),
		predicates:      append([]predicate.ImmersionLog{}, ilq.predicates...),
		withAttachments: ilq.withAttachments.Clone(),
		// clone intermediate query.
		sql:  ilq.sql.Clone(),
		path: ilq.path,
	}
}

// WithAttachments tells the query-builder to eager-load the nodes that are connected to
// the "attachments" edge. The optional arguments are used to configure the query builder of the edge.
func (ilq *ImmersionLogQuery) WithAttachments(opts ...func(*LogAttachmentQuery)) *ImmersionLogQuery {
	query := (&LogAttachmentClient{config: ilq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	ilq.withAttachments = query
	return ilq
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		UserID int64 `json:"user_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.ImmersionLog.Query().
//		GroupBy(immersionlog.FieldUserID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (ilq *ImmersionLogQuery) GroupBy(field string, fields ...string) *ImmersionLogGroupBy {
	ilq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ImmersionLogGroupBy{build: ilq}
	grbuild.flds = &ilq.ctx.Fields
	grbuild.label = immersionlog.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		UserID int64 `json:"user_id,omitempty"`
//	}
//
//	client.ImmersionLog.Query().
//		Select(immersionlog.FieldUserID).
//		Scan(ctx, &v)
func (ilq *ImmersionLogQuery) Select(fields ...string) *ImmersionLogSelect {
	ilq.ctx.Fields = append(ilq.ctx.Fields, fields...)
	sbuild := &ImmersionLogSelect{ImmersionLogQuery: ilq}
	sbuild.label = immersionlog.Label
	sbuild.flds, sbuild.scan = &ilq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ImmersionLogSelect configured with the given aggregations.
func (ilq *ImmersionLogQuery) Aggregate(fns ...AggregateFunc) *ImmersionLogSelect {
	return ilq.Select().Aggregate(fns...)
}

func (ilq *ImmersionLogQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range ilq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, ilq); err != nil {
				return err
			}
		}
	}
	for _, f := range ilq.ctx.Fields {
		if !immersionlog.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if ilq.path != nil {
		prev, err := ilq.path(ctx)
		if err != nil {
			return err
		}
		ilq.sql = prev
	}
	return nil
}

func (ilq *ImmersionLogQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*ImmersionLog, error) {
	var (
		nodes       = []*ImmersionLog{}
		_spec       = ilq.querySpec()
		loadedTypes = [1]bool{
			ilq.withAttachments != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*ImmersionLog).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &ImmersionLog{config: ilq.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, ilq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := ilq.withAttachments; query != nil {
		if err := ilq.loadAttachments(ctx, query, nodes,
			func(n *ImmersionLog) { n.Edges.Attachments = []*LogAttachment{} },
			func(n *ImmersionLog, e *LogAttachment) { n.Edges.Attachments = append(n.Edges.Attachments, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (ilq *ImmersionLogQuery) loadAttachments(ctx context.Context, query *LogAttachmentQuery, nodes []*ImmersionLog, init func(*ImmersionLog), assign func(*ImmersionLog, *LogAttachment)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*ImmersionLog)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(logattachment.FieldLogID)
	}
	query.Where(predicate.LogAttachment(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(immersionlog.AttachmentsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.LogID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "log_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (ilq *ImmersionLogQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := ilq.querySpec()
	_spec.Node.Columns = ilq.ctx.Fields
	if len(ilq.ctx.Fields) > 0 {
		_spec.Unique = ilq.ctx.Unique != nil && *ilq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, ilq.driver, _spec)
}

func (ilq *ImmersionLogQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(immersionlog.Table, immersionlog.Columns, sqlgraph.NewFieldSpec(immersionlog.FieldID, field.TypeUUID))
	_spec.From = ilq.sql
	if unique := ilq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if ilq.path != nil {
		_spec.Unique = true
	}
	if fields := ilq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, immersionlog.FieldID)
		for i := range fields {
			if fields[i] != immersionlog.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := ilq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := ilq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := ilq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := ilq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (ilq *ImmersionLogQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(ilq.driver.Dialect())
	t1 := builder.Table(immersionlog.Table)
	columns := ilq.ctx.Fields
	if len(columns) == 0 {
		columns = immersionlog.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if ilq.sql != nil {
		selector = ilq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if ilq.ctx.Unique != nil && *ilq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range ilq.predicates {
		p(selector)
	}
	for _, p := range ilq.order {
		p(selector)
	}
	if offset := ilq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := ilq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ImmersionLogGroupBy is the group-by builder for ImmersionLog entities.
type ImmersionLogGroupBy struct {
	selector
	build *ImmersionLogQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (ilgb *ImmersionLogGroupBy) Aggregate(fns ...AggregateFunc) *ImmersionLogGroupBy {
	ilgb.fns = append(ilgb.fns, fns...)
	return ilgb
}

// Scan applies the selector query and scans the result into the given value.
func (ilgb *ImmersionLogGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, ilgb.build.ctx, ent.OpQueryGroupBy)
	if err := ilgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ImmersionLogQuery, *ImmersionLogGroupBy](ctx, ilgb.build, ilgb, ilgb.build.inters, v)
}

func (ilgb *ImmersionLogGroupBy) sqlScan(ctx context.Context, root *ImmersionLogQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(ilgb.fns))
	for _, fn := range ilgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*ilgb.flds)+len(ilgb.fns))
		for _, f := range *ilgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*ilgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := ilgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// ImmersionLogSelect is the builder for selecting fields of ImmersionLog entities.
type ImmersionLogSelect struct {
	*ImmersionLogQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (ils *ImmersionLogSelect) Aggregate(fns ...AggregateFunc) *ImmersionLogSelect {
	ils.fns = append(ils.fns, fns...)
	return ils
}

// Scan applies the selector query and scans the result into the given value.
func (ils *ImmersionLogSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, ils.ctx, ent.OpQuerySelect)
	if err := ils.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ImmersionLogQuery, *ImmersionLogSelect](ctx, ils.ImmersionLogQuery, ils, ils.inters, v)
}

func (ils *ImmersionLogSelect) sqlScan(ctx context.Context, root *ImmersionLogQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(ils.fns))
	for _, fn := range ils.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*ils.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := ils.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
