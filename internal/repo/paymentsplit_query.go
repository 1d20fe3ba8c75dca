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
	"github.com/oculusgrp/dealdesk_backend/internal/repo/broker"
	"github.com/oculusgrp/dealdesk_backend/internal/repo/payment"
	"github.com/oculusgrp/dealdesk_backend/internal/repo/paymentsplit"
	"github.com/oculusgrp/dealdesk_backend/internal/repo/predicate"
)

// PaymentSplitQuery is the builder for querying PaymentSplit entities.
type PaymentSplitQuery struct {
	config
	ctx         *QueryContext
	order       []paymentsplit.OrderOption
	inters      []Interceptor
	predicates  []predicate.PaymentSplit
	withPayment *PaymentQuery
	withBroker  *BrokerQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the PaymentSplitQuery builder.
func (_q *PaymentSplitQuery) Where(ps ...predicate.PaymentSplit) *PaymentSplitQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *PaymentSplitQuery) Limit(limit int) *PaymentSplitQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *PaymentSplitQuery) Offset(offset int) *PaymentSplitQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *PaymentSplitQuery) Unique(unique bool) *PaymentSplitQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *PaymentSplitQuery) Order(o ...paymentsplit.OrderOption) *PaymentSplitQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryPayment chains the current query on the "payment" edge.
func (_q *PaymentSplitQuery) QueryPayment() *PaymentQuery {
	query := (&PaymentClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(paymentsplit.Table, paymentsplit.FieldID, selector),
			sqlgraph.To(payment.Table, payment.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, paymentsplit.PaymentTable, paymentsplit.PaymentColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryBroker chains the current query on the "broker" edge.
func (_q *PaymentSplitQuery) QueryBroker() *BrokerQuery {
	query := (&BrokerClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(paymentsplit.Table, paymentsplit.FieldID, selector),
			sqlgraph.To(broker.Table, broker.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, paymentsplit.BrokerTable, paymentsplit.BrokerColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first PaymentSplit entity from the query.
// Returns a *NotFoundError when no PaymentSplit was found.
func (_q *PaymentSplitQuery) First(ctx context.Context) (*PaymentSplit, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{paymentsplit.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *PaymentSplitQuery) FirstX(ctx context.Context) *PaymentSplit {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first PaymentSplit ID from the query.
// Returns a *NotFoundError when no PaymentSplit ID was found.
func (_q *PaymentSplitQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{paymentsplit.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *PaymentSplitQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single PaymentSplit entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one PaymentSplit entity is found.
// Returns a *NotFoundError when no PaymentSplit entities are found.
func (_q *PaymentSplitQuery) Only(ctx context.Context) (*PaymentSplit, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{paymentsplit.Label}
	default:
		return nil, &NotSingularError{paymentsplit.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *PaymentSplitQuery) OnlyX(ctx context.Context) *PaymentSplit {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only PaymentSplit ID in the query.
// Returns a *NotSingularError when more than one PaymentSplit ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *PaymentSplitQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{paymentsplit.Label}
	default:
		err = &NotSingularError{paymentsplit.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *PaymentSplitQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of PaymentSplits.
func (_q *PaymentSplitQuery) All(ctx context.Context) ([]*PaymentSplit, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*PaymentSplit, *PaymentSplitQuery]()
	return withInterceptors[[]*PaymentSplit](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *PaymentSplitQuery) AllX(ctx context.Context) []*PaymentSplit {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of PaymentSplit IDs.
func (_q *PaymentSplitQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(paymentsplit.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *PaymentSplitQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *PaymentSplitQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*PaymentSplitQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *PaymentSplitQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *PaymentSplitQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *PaymentSplitQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the PaymentSplitQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *PaymentSplitQuery) Clone() *PaymentSplitQuery {
	if _q == nil {
		return nil
	}
	return &PaymentSplitQuery{
		config:      _q.config,
		ctx:         _q.ctx.Clone(),
		order:       append([]paymentsplit.OrderOption{}, _q.order...),
		inters:      append([]Interceptor{}, _q.inters...),
		predicates:  append([]predicate.PaymentSplit{}, _q.predicates...),
		withPayment: _q.withPayment.Clone(),
		withBroker:  _q.withBroker.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithPayment tells the query-builder to eager-load the nodes that are connected to
// the "payment" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *PaymentSplitQuery) WithPayment(opts ...func(*PaymentQuery)) *PaymentSplitQuery {
	query := (&PaymentClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withPayment = query
	return _q
}

// WithBroker tells the query-builder to eager-load the nodes that are connected to
// the "broker" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *PaymentSplitQuery) WithBroker(opts ...func(*BrokerQuery)) *PaymentSplitQuery {
	query := (&BrokerClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withBroker = query
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
//	client.PaymentSplit.Query().
//		GroupBy(paymentsplit.FieldCreatedAt).
//		Aggregate(repo.Count()).
//		Scan(ctx, &v)
func (_q *PaymentSplitQuery) GroupBy(field string, fields ...string) *PaymentSplitGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &PaymentSplitGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = paymentsplit.Label
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
//	client.PaymentSplit.Query().
//		Select(paymentsplit.FieldCreatedAt).
//		Scan(ctx, &v)
func (_q *PaymentSplitQuery) Select(fields ...string) *PaymentSplitSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &PaymentSplitSelect{PaymentSplitQuery: _q}
	sbuild.label = paymentsplit.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a PaymentSplitSelect configured with the given aggregations.
func (_q *PaymentSplitQuery) Aggregate(fns ...AggregateFunc) *PaymentSplitSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *PaymentSplitQuery) prepareQuery(ctx context.Context) error {
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
		if !paymentsplit.ValidColumn(f) {
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

func (_q *PaymentSplitQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*PaymentSplit, error) {
	var (
		nodes       = []*PaymentSplit{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withPayment != nil,
			_q.withBroker != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*PaymentSplit).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &PaymentSplit{config: _q.config}
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
	if query := _q.withPayment; query != nil {
		if err := _q.loadPayment(ctx, query, nodes, nil,
			func(n *PaymentSplit, e *Payment) { n.Edges.Payment = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withBroker; query != nil {
		if err := _q.loadBroker(ctx, query, nodes, nil,
			func(n *PaymentSplit, e *Broker) { n.Edges.Broker = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *PaymentSplitQuery) loadPayment(ctx context.Context, query *PaymentQuery, nodes []*PaymentSplit, init func(*PaymentSplit), assign func(*PaymentSplit, *Payment)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*PaymentSplit)
	for i := range nodes {
		fk := nodes[i].PaymentID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(payment.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "payment_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *PaymentSplitQuery) loadBroker(ctx context.Context, query *BrokerQuery, nodes []*PaymentSplit, init func(*PaymentSplit), assign func(*PaymentSplit, *Broker)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*PaymentSplit)
	for i := range nodes {
		fk := nodes[i].BrokerID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(broker.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "broker_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *PaymentSplitQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *PaymentSplitQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(paymentsplit.Table, paymentsplit.Columns, sqlgraph.NewFieldSpec(paymentsplit.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, paymentsplit.FieldID)
		for i := range fields {
			if fields[i] != paymentsplit.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withPayment != nil {
			_spec.Node.AddColumnOnce(paymentsplit.FieldPaymentID)
		}
		if _q.withBroker != nil {
			_spec.Node.AddColumnOnce(paymentsplit.FieldBrokerID)
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

func (_q *PaymentSplitQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(paymentsplit.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = paymentsplit.Columns
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

// PaymentSplitGroupBy is the group-by builder for PaymentSplit entities.
type PaymentSplitGroupBy struct {
	selector
	build *PaymentSplitQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *PaymentSplitGroupBy) Aggregate(fns ...AggregateFunc) *PaymentSplitGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *PaymentSplitGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*PaymentSplitQuery, *PaymentSplitGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *PaymentSplitGroupBy) sqlScan(ctx context.Context, root *PaymentSplitQuery, v any) error {
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

// PaymentSplitSelect is the builder for selecting fields of PaymentSplit entities.
type PaymentSplitSelect struct {
	*PaymentSplitQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *PaymentSplitSelect) Aggregate(fns ...AggregateFunc) *PaymentSplitSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *PaymentSplitSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*PaymentSplitQuery, *PaymentSplitSelect](ctx, _s.PaymentSplitQuery, _s, _s.inters, v)
}

func (_s *PaymentSplitSelect) sqlScan(ctx context.Context, root *PaymentSplitQuery, v any) error {
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
