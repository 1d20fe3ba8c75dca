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
	"github.com/oculusgrp/dealdesk_backend/internal/repo/broker"
	"github.com/oculusgrp/dealdesk_backend/internal/repo/dealbroker"
	"github.com/oculusgrp/dealdesk_backend/internal/repo/paymentsplit"
	"github.com/oculusgrp/dealdesk_backend/internal/repo/predicate"
)

// BrokerQuery is the builder for querying Broker entities.
type BrokerQuery struct {
	config
	ctx               *QueryContext
	order             []broker.OrderOption
	inters            []Interceptor
	predicates        []predicate.Broker
	withDealInterests *DealBrokerQuery
	withPaymentSplits *PaymentSplitQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the BrokerQuery builder.
func (_q *BrokerQuery) Where(ps ...predicate.Broker) *BrokerQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *BrokerQuery) Limit(limit int) *BrokerQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *BrokerQuery) Offset(offset int) *BrokerQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *BrokerQuery) Unique(unique bool) *BrokerQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *BrokerQuery) Order(o ...broker.OrderOption) *BrokerQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryDealInterests chains the current query on the "deal_interests" edge.
func (_q *BrokerQuery) QueryDealInterests() *DealBrokerQuery {
	query := (&DealBrokerClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(broker.Table, broker.FieldID, selector),
			sqlgraph.To(dealbroker.Table, dealbroker.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, broker.DealInterestsTable, broker.DealInterestsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryPaymentSplits chains the current query on the "payment_splits" edge.
func (_q *BrokerQuery) QueryPaymentSplits() *PaymentSplitQuery {
	query := (&PaymentSplitClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(broker.Table, broker.FieldID, selector),
			sqlgraph.To(paymentsplit.Table, paymentsplit.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, broker.PaymentSplitsTable, broker.PaymentSplitsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Broker entity from the query.
// Returns a *NotFoundError when no Broker was found.
func (_q *BrokerQuery) First(ctx context.Context) (*Broker, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{broker.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *BrokerQuery) FirstX(ctx context.Context) *Broker {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Broker ID from the query.
// Returns a *NotFoundError when no Broker ID was found.
func (_q *BrokerQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{broker.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *BrokerQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Broker entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Broker entity is found.
// Returns a *NotFoundError when no Broker entities are found.
func (_q *BrokerQuery) Only(ctx context.Context) (*Broker, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{broker.Label}
	default:
		return nil, &NotSingularError{broker.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *BrokerQuery) OnlyX(ctx context.Context) *Broker {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Broker ID in the query.
// Returns a *NotSingularError when more than one Broker ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *BrokerQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{broker.Label}
	default:
		err = &NotSingularError{broker.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *BrokerQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Brokers.
func (_q *BrokerQuery) All(ctx context.Context) ([]*Broker, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Broker, *BrokerQuery]()
	return withInterceptors[[]*Broker](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *BrokerQuery) AllX(ctx context.Context) []*Broker {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Broker IDs.
func (_q *BrokerQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(broker.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *BrokerQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *BrokerQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*BrokerQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *BrokerQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *BrokerQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *BrokerQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the BrokerQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *BrokerQuery) Clone() *BrokerQuery {
	if _q == nil {
		return nil
	}
	return &BrokerQuery{
		config:            _q.config,
		ctx:               _q.ctx.Clone(),
		order:             append([]broker.OrderOption{}, _q.order...),
		inters:            append([]Interceptor{}, _q.inters...),
		predicates:        append([]predicate.Broker{}, _q.predicates...),
		withDealInterests: _q.withDealInterests.Clone(),
		withPaymentSplits: _q.withPaymentSplits.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithDealInterests tells the query-builder to eager-load the nodes that are connected to
// the "deal_interests" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *BrokerQuery) WithDealInterests(opts ...func(*DealBrokerQuery)) *BrokerQuery {
	query := (&DealBrokerClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withDealInterests = query
	return _q
}

// WithPaymentSplits tells the query-builder to eager-load the nodes that are connected to
// the "payment_splits" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *BrokerQuery) WithPaymentSplits(opts ...func(*PaymentSplitQuery)) *BrokerQuery {
	query := (&PaymentSplitClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withPaymentSplits = query
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
//	client.Broker.Query().
//		GroupBy(broker.FieldCreatedAt).
//		Aggregate(repo.Count()).
//		Scan(ctx, &v)
func (_q *BrokerQuery) GroupBy(field string, fields ...string) *BrokerGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &BrokerGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = broker.Label
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
//	client.Broker.Query().
//		Select(broker.FieldCreatedAt).
//		Scan(ctx, &v)
func (_q *BrokerQuery) Select(fields ...string) *BrokerSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &BrokerSelect{BrokerQuery: _q}
	sbuild.label = broker.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a BrokerSelect configured with the given aggregations.
func (_q *BrokerQuery) Aggregate(fns ...AggregateFunc) *BrokerSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *BrokerQuery) prepareQuery(ctx context.Context) error {
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
		if !broker.ValidColumn(f) {
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

func (_q *BrokerQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Broker, error) {
	var (
		nodes       = []*Broker{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withDealInterests != nil,
			_q.withPaymentSplits != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Broker).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Broker{config: _q.config}
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
	if query := _q.withDealInterests; query != nil {
		if err := _q.loadDealInterests(ctx, query, nodes,
			func(n *Broker) { n.Edges.DealInterests = []*DealBroker{} },
			func(n *Broker, e *DealBroker) { n.Edges.DealInterests = append(n.Edges.DealInterests, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withPaymentSplits; query != nil {
		if err := _q.loadPaymentSplits(ctx, query, nodes,
			func(n *Broker) { n.Edges.PaymentSplits = []*PaymentSplit{} },
			func(n *Broker, e *PaymentSplit) { n.Edges.PaymentSplits = append(n.Edges.PaymentSplits, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *BrokerQuery) loadDealInterests(ctx context.Context, query *DealBrokerQuery, nodes []*Broker, init func(*Broker), assign func(*Broker, *DealBroker)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*Broker)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(dealbroker.FieldBrokerID)
	}
	query.Where(predicate.DealBroker(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(broker.DealInterestsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.BrokerID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "broker_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *BrokerQuery) loadPaymentSplits(ctx context.Context, query *PaymentSplitQuery, nodes []*Broker, init func(*Broker), assign func(*Broker, *PaymentSplit)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*Broker)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(paymentsplit.FieldBrokerID)
	}
	query.Where(predicate.PaymentSplit(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(broker.PaymentSplitsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.BrokerID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "broker_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *BrokerQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *BrokerQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(broker.Table, broker.Columns, sqlgraph.NewFieldSpec(broker.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, broker.FieldID)
		for i := range fields {
			if fields[i] != broker.FieldID {
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

func (_q *BrokerQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(broker.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = broker.Columns
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

// BrokerGroupBy is the group-by builder for Broker entities.
type BrokerGroupBy struct {
	selector
	build *BrokerQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *BrokerGroupBy) Aggregate(fns ...AggregateFunc) *BrokerGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *BrokerGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*BrokerQuery, *BrokerGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *BrokerGroupBy) sqlScan(ctx context.Context, root *BrokerQuery, v any) error {
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

// BrokerSelect is the builder for selecting fields of Broker entities.
type BrokerSelect struct {
	*BrokerQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *BrokerSelect) Aggregate(fns ...AggregateFunc) *BrokerSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *BrokerSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*BrokerQuery, *BrokerSelect](ctx, _s.BrokerQuery, _s, _s.inters, v)
}

func (_s *BrokerSelect) sqlScan(ctx context.Context, root *BrokerQuery, v any) error {
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
