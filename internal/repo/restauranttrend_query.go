// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/oculusgrp/dealdesk_backend/internal/repo/predicate"
	"github.com/oculusgrp/dealdesk_backend/internal/repo/restaurantlocation"
	"github.com/oculusgrp/dealdesk_backend/internal/repo/restauranttrend"
)

// RestaurantTrendQuery is the builder for querying RestaurantTrend entities.
type RestaurantTrendQuery struct {
	config
	ctx          *QueryContext
	order        []restauranttrend.OrderOption
	inters       []Interceptor
	predicates   []predicate.RestaurantTrend
	withLocation *RestaurantLocationQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the RestaurantTrendQuery builder.
func (_q *RestaurantTrendQuery) Where(ps ...predicate.RestaurantTrend) *RestaurantTrendQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *RestaurantTrendQuery) Limit(limit int) *RestaurantTrendQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *RestaurantTrendQuery) Offset(offset int) *RestaurantTrendQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *RestaurantTrendQuery) Unique(unique bool) *RestaurantTrendQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *RestaurantTrendQuery) Order(o ...restauranttrend.OrderOption) *RestaurantTrendQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryLocation chains the current query on the "location" edge.
func (_q *RestaurantTrendQuery) QueryLocation() *RestaurantLocationQuery {
	query := (&RestaurantLocationClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(restauranttrend.Table, restauranttrend.FieldID, selector),
			sqlgraph.To(restaurantlocation.Table, restaurantlocation.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, restauranttrend.LocationTable, restauranttrend.LocationColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first RestaurantTrend entity from the query.
// Returns a *NotFoundError when no RestaurantTrend was found.
func (_q *RestaurantTrendQuery) First(ctx context.Context) (*RestaurantTrend, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{restauranttrend.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *RestaurantTrendQuery) FirstX(ctx context.Context) *RestaurantTrend {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first RestaurantTrend ID from the query.
// Returns a *NotFoundError when no RestaurantTrend ID was found.
func (_q *RestaurantTrendQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{restauranttrend.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *RestaurantTrendQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single RestaurantTrend entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one RestaurantTrend entity is found.
// Returns a *NotFoundError when no RestaurantTrend entities are found.
func (_q *RestaurantTrendQuery) Only(ctx context.Context) (*RestaurantTrend, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{restauranttrend.Label}
	default:
		return nil, &NotSingularError{restauranttrend.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *RestaurantTrendQuery) OnlyX(ctx context.Context) *RestaurantTrend {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only RestaurantTrend ID in the query.
// Returns a *NotSingularError when more than one RestaurantTrend ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *RestaurantTrendQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{restauranttrend.Label}
	default:
		err = &NotSingularError{restauranttrend.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *RestaurantTrendQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of RestaurantTrends.
func (_q *RestaurantTrendQuery) All(ctx context.Context) ([]*RestaurantTrend, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*RestaurantTrend, *RestaurantTrendQuery]()
	return withInterceptors[[]*RestaurantTrend](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *RestaurantTrendQuery) AllX(ctx context.Context) []*RestaurantTrend {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of RestaurantTrend IDs.
func (_q *RestaurantTrendQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(restauranttrend.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *RestaurantTrendQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *RestaurantTrendQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*RestaurantTrendQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *RestaurantTrendQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *RestaurantTrendQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("repo: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *RestaurantTrendQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the RestaurantTrendQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *RestaurantTrendQuery) Clone() *RestaurantTrendQuery {
	if _q == nil {
		return nil
	}
	return &RestaurantTrendQuery{
		config:       _q.config,
		ctx:          _q.ctx.Clone(),
		order:        append([]restauranttrend.OrderOption{}, _q.order...),
		inters:       append([]Interceptor{}, _q.inters...),
		predicates:   append([]predicate.RestaurantTrend{}, _q.predicates...),
		withLocation: _q.withLocation.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithLocation tells the query-builder to eager-load the nodes that are connected to
// the "location" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *RestaurantTrendQuery) WithLocation(opts ...func(*RestaurantLocationQuery)) *RestaurantTrendQuery {
	query := (&RestaurantLocationClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withLocation = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		CreatedAt time.Time `json:"created_at,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.RestaurantTrend.Query().
//		GroupBy(restauranttrend.FieldCreatedAt).
//		Aggregate(repo.Count()).
//		Scan(ctx, &v)
func (_q *RestaurantTrendQuery) GroupBy(field string, fields ...string) *RestaurantTrendGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &RestaurantTrendGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = restauranttrend.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		CreatedAt time.Time `json:"created_at,omitempty"`
//	}
//
//	client.RestaurantTrend.Query().
//		Select(restauranttrend.FieldCreatedAt).
//		Scan(ctx, &v)
func (_q *RestaurantTrendQuery) Select(fields ...string) *RestaurantTrendSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &RestaurantTrendSelect{RestaurantTrendQuery: _q}
	sbuild.label = restauranttrend.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a RestaurantTrendSelect configured with the given aggregations.
func (_q *RestaurantTrendQuery) Aggregate(fns ...AggregateFunc) *RestaurantTrendSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *RestaurantTrendQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("repo: uninitialized interceptor (forgotten import repo/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !restauranttrend.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *RestaurantTrendQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*RestaurantTrend, error) {
	var (
		nodes       = []*RestaurantTrend{}
		_spec       = _q.querySpec()
		loadedTypes = [1]bool{
			_q.withLocation != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*RestaurantTrend).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &RestaurantTrend{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withLocation; query != nil {
		if err := _q.loadLocation(ctx, query, nodes, nil,
			func(n *RestaurantTrend, e *RestaurantLocation) { n.Edges.Location = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *RestaurantTrendQuery) loadLocation(ctx context.Context, query *RestaurantLocationQuery, nodes []*RestaurantTrend, init func(*RestaurantTrend), assign func(*RestaurantTrend, *RestaurantLocation)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*RestaurantTrend)
	for i := range nodes {
		fk := nodes[i].LocationID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(restaurantlocation.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "location_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *RestaurantTrendQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *RestaurantTrendQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(restauranttrend.Table, restauranttrend.Columns, sqlgraph.NewFieldSpec(restauranttrend.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, restauranttrend.FieldID)
		for i := range fields {
			if fields[i] != restauranttrend.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withLocation != nil {
			_spec.Node.AddColumnOnce(restauranttrend.FieldLocationID)
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *RestaurantTrendQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(restauranttrend.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = restauranttrend.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// RestaurantTrendGroupBy is the group-by builder for RestaurantTrend entities.
type RestaurantTrendGroupBy struct {
	selector
	build *RestaurantTrendQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *RestaurantTrendGroupBy) Aggregate(fns ...AggregateFunc) *RestaurantTrendGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *RestaurantTrendGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*RestaurantTrendQuery, *RestaurantTrendGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *RestaurantTrendGroupBy) sqlScan(ctx context.Context, root *RestaurantTrendQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// RestaurantTrendSelect is the builder for selecting fields of RestaurantTrend entities.
type RestaurantTrendSelect struct {
	*RestaurantTrendQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *RestaurantTrendSelect) Aggregate(fns ...AggregateFunc) *RestaurantTrendSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *RestaurantTrendSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*RestaurantTrendQuery, *RestaurantTrendSelect](ctx, _s.RestaurantTrendQuery, _s, _s.inters, v)
}

func (_s *RestaurantTrendSelect) sqlScan(ctx context.Context, root *RestaurantTrendQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
