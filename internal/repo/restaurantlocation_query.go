// Code generated by ent, DO NOT EDIT.

package repo

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
	"github.com/oculusgrp/dealdesk_backend/internal/repo/predicate"
	"github.com/oculusgrp/dealdesk_backend/internal/repo/restaurantlocation"
	"github.com/oculusgrp/dealdesk_backend/internal/repo/restauranttrend"
)

// RestaurantLocationQuery is the builder for querying RestaurantLocation entities.
type RestaurantLocationQuery struct {
	config
	ctx        *QueryContext
	order      []restaurantlocation.OrderOption
	inters     []Interceptor
	predicates []predicate.RestaurantLocation
	withTrends *RestaurantTrendQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the RestaurantLocationQuery builder.
func (_q *RestaurantLocationQuery) Where(ps ...predicate.RestaurantLocation) *RestaurantLocationQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *RestaurantLocationQuery) Limit(limit int) *RestaurantLocationQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *RestaurantLocationQuery) Offset(offset int) *RestaurantLocationQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *RestaurantLocationQuery) Unique(unique bool) *RestaurantLocationQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *RestaurantLocationQuery) Order(o ...restaurantlocation.OrderOption) *RestaurantLocationQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryTrends chains the current query on the "trends" edge.
func (_q *RestaurantLocationQuery) QueryTrends() *RestaurantTrendQuery {
	query := (&RestaurantTrendClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(restaurantlocation.Table, restaurantlocation.FieldID, selector),
			sqlgraph.To(restauranttrend.Table, restauranttrend.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, restaurantlocation.TrendsTable, restaurantlocation.TrendsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first RestaurantLocation entity from the query.
// Returns a *NotFoundError when no RestaurantLocation was found.
func (_q *RestaurantLocationQuery) First(ctx context.Context) (*RestaurantLocation, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{restaurantlocation.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *RestaurantLocationQuery) FirstX(ctx context.Context) *RestaurantLocation {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first RestaurantLocation ID from the query.
// Returns a *NotFoundError when no RestaurantLocation ID was found.
func (_q *RestaurantLocationQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{restaurantlocation.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *RestaurantLocationQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single RestaurantLocation entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one RestaurantLocation entity is found.
// Returns a *NotFoundError when no RestaurantLocation entities are found.
func (_q *RestaurantLocationQuery) Only(ctx context.Context) (*RestaurantLocation, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{restaurantlocation.Label}
	default:
		return nil, &NotSingularError{restaurantlocation.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *RestaurantLocationQuery) OnlyX(ctx context.Context) *RestaurantLocation {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only RestaurantLocation ID in the query.
// Returns a *NotSingularError when more than one RestaurantLocation ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *RestaurantLocationQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{restaurantlocation.Label}
	default:
		err = &NotSingularError{restaurantlocation.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *RestaurantLocationQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of RestaurantLocations.
func (_q *RestaurantLocationQuery) All(ctx context.Context) ([]*RestaurantLocation, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*RestaurantLocation, *RestaurantLocationQuery]()
	return withInterceptors[[]*RestaurantLocation](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *RestaurantLocationQuery) AllX(ctx context.Context) []*RestaurantLocation {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of RestaurantLocation IDs.
func (_q *RestaurantLocationQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(restaurantlocation.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *RestaurantLocationQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *RestaurantLocationQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*RestaurantLocationQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *RestaurantLocationQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *RestaurantLocationQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *RestaurantLocationQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the RestaurantLocationQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *RestaurantLocationQuery) Clone() *RestaurantLocationQuery {
	if _q == nil {
		return nil
	}
	return &RestaurantLocationQuery{
		config:     _q.config,
		ctx:        _q.ctx.Clone(),
		order:      append([]restaurantlocation.OrderOption{}, _q.order...),
		inters:     append([]Interceptor{}, _q.inters...),
		predicates: append([]predicate.RestaurantLocation{}, _q.predicates...),
		withTrends: _q.withTrends.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithTrends tells the query-builder to eager-load the nodes that are connected to
// the "trends" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *RestaurantLocationQuery) WithTrends(opts ...func(*RestaurantTrendQuery)) *RestaurantLocationQuery {
	query := (&RestaurantTrendClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withTrends = query
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
//	client.RestaurantLocation.Query().
//		GroupBy(restaurantlocation.FieldCreatedAt).
//		Aggregate(repo.Count()).
//		Scan(ctx, &v)
func (_q *RestaurantLocationQuery) GroupBy(field string, fields ...string) *RestaurantLocationGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &RestaurantLocationGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = restaurantlocation.Label
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
//	client.RestaurantLocation.Query().
//		Select(restaurantlocation.FieldCreatedAt).
//		Scan(ctx, &v)
func (_q *RestaurantLocationQuery) Select(fields ...string) *RestaurantLocationSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &RestaurantLocationSelect{RestaurantLocationQuery: _q}
	sbuild.label = restaurantlocation.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a RestaurantLocationSelect configured with the given aggregations.
func (_q *RestaurantLocationQuery) Aggregate(fns ...AggregateFunc) *RestaurantLocationSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *RestaurantLocationQuery) prepareQuery(ctx context.Context) error {
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
		if !restaurantlocation.ValidColumn(f) {
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

func (_q *RestaurantLocationQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*RestaurantLocation, error) {
	var (
		nodes       = []*RestaurantLocation{}
		_spec       = _q.querySpec()
		loadedTypes = [1]bool{
			_q.withTrends != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*RestaurantLocation).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &RestaurantLocation{config: _q.config}
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
	if query := _q.withTrends; query != nil {
		if err := _q.loadTrends(ctx, query, nodes,
			func(n *RestaurantLocation) { n.Edges.Trends = []*RestaurantTrend{} },
			func(n *RestaurantLocation, e *RestaurantTrend) { n.Edges.Trends = append(n.Edges.Trends, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *RestaurantLocationQuery) loadTrends(ctx context.Context, query *RestaurantTrendQuery, nodes []*RestaurantLocation, init func(*RestaurantLocation), assign func(*RestaurantLocation, *RestaurantTrend)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*RestaurantLocation)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(restauranttrend.FieldLocationID)
	}
	query.Where(predicate.RestaurantTrend(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(restaurantlocation.TrendsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.LocationID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "location_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *RestaurantLocationQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *RestaurantLocationQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(restaurantlocation.Table, restaurantlocation.Columns, sqlgraph.NewFieldSpec(restaurantlocation.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, restaurantlocation.FieldID)
		for i := range fields {
			if fields[i] != restaurantlocation.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
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

func (_q *RestaurantLocationQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(restaurantlocation.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = restaurantlocation.Columns
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

// RestaurantLocationGroupBy is the group-by builder for RestaurantLocation entities.
type RestaurantLocationGroupBy struct {
	selector
	build *RestaurantLocationQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *RestaurantLocationGroupBy) Aggregate(fns ...AggregateFunc) *RestaurantLocationGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *RestaurantLocationGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*RestaurantLocationQuery, *RestaurantLocationGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *RestaurantLocationGroupBy) sqlScan(ctx context.Context, root *RestaurantLocationQuery, v any) error {
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

// RestaurantLocationSelect is the builder for selecting fields of RestaurantLocation entities.
type RestaurantLocationSelect struct {
	*RestaurantLocationQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *RestaurantLocationSelect) Aggregate(fns ...AggregateFunc) *RestaurantLocationSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *RestaurantLocationSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*RestaurantLocationQuery, *RestaurantLocationSelect](ctx, _s.RestaurantLocationQuery, _s, _s.inters, v)
}

func (_s *RestaurantLocationSelect) sqlScan(ctx context.Context, root *RestaurantLocationQuery, v any) error {
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
