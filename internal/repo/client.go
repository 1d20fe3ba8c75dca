// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/oculusgrp/dealdesk_backend/internal/repo/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/oculusgrp/dealdesk_backend/internal/repo/broker"
	"github.com/oculusgrp/dealdesk_backend/internal/repo/customer"
	"github.com/oculusgrp/dealdesk_backend/internal/repo/deal"
	"github.com/oculusgrp/dealdesk_backend/internal/repo/dealbroker"
	"github.com/oculusgrp/dealdesk_backend/internal/repo/notification"
	"github.com/oculusgrp/dealdesk_backend/internal/repo/payment"
	"github.com/oculusgrp/dealdesk_backend/internal/repo/paymentsplit"
	"github.com/oculusgrp/dealdesk_backend/internal/repo/restaurantlocation"
	"github.com/oculusgrp/dealdesk_backend/internal/repo/restauranttrend"
	"github.com/oculusgrp/dealdesk_backend/internal/repo/user"
	"github.com/oculusgrp/dealdesk_backend/internal/repo/usersession"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Broker is the client for interacting with the Broker builders.
	Broker *BrokerClient
	// Customer is the client for interacting with the Customer builders.
	Customer *CustomerClient
	// Deal is the client for interacting with the Deal builders.
	Deal *DealClient
	// DealBroker is the client for interacting with the DealBroker builders.
	DealBroker *DealBrokerClient
	// Notification is the client for interacting with the Notification builders.
	Notification *NotificationClient
	// Payment is the client for interacting with the Payment builders.
	Payment *PaymentClient
	// PaymentSplit is the client for interacting with the PaymentSplit builders.
	PaymentSplit *PaymentSplitClient
	// RestaurantLocation is the client for interacting with the RestaurantLocation builders.
	RestaurantLocation *RestaurantLocationClient
	// RestaurantTrend is the client for interacting with the RestaurantTrend builders.
	RestaurantTrend *RestaurantTrendClient
	// User is the client for interacting with the User builders.
	User *UserClient
	// UserSession is the client for interacting with the UserSession builders.
	UserSession *UserSessionClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Broker = NewBrokerClient(c.config)
	c.Customer = NewCustomerClient(c.config)
	c.Deal = NewDealClient(c.config)
	c.DealBroker = NewDealBrokerClient(c.config)
	c.Notification = NewNotificationClient(c.config)
	c.Payment = NewPaymentClient(c.config)
	c.PaymentSplit = NewPaymentSplitClient(c.config)
	c.RestaurantLocation = NewRestaurantLocationClient(c.config)
	c.RestaurantTrend = NewRestaurantTrendClient(c.config)
	c.User = NewUserClient(c.config)
	c.UserSession = NewUserSessionClient(c.config)
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
var ErrTxStarted = errors.New("repo: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("repo: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:                ctx,
		config:             cfg,
		Broker:             NewBrokerClient(cfg),
		Customer:           NewCustomerClient(cfg),
		Deal:               NewDealClient(cfg),
		DealBroker:         NewDealBrokerClient(cfg),
		Notification:       NewNotificationClient(cfg),
		Payment:            NewPaymentClient(cfg),
		PaymentSplit:       NewPaymentSplitClient(cfg),
		RestaurantLocation: NewRestaurantLocationClient(cfg),
		RestaurantTrend:    NewRestaurantTrendClient(cfg),
		User:               NewUserClient(cfg),
		UserSession:        NewUserSessionClient(cfg),
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
		ctx:                ctx,
		config:             cfg,
		Broker:             NewBrokerClient(cfg),
		Customer:           NewCustomerClient(cfg),
		Deal:               NewDealClient(cfg),
		DealBroker:         NewDealBrokerClient(cfg),
		Notification:       NewNotificationClient(cfg),
		Payment:            NewPaymentClient(cfg),
		PaymentSplit:       NewPaymentSplitClient(cfg),
		RestaurantLocation: NewRestaurantLocationClient(cfg),
		RestaurantTrend:    NewRestaurantTrendClient(cfg),
		User:               NewUserClient(cfg),
		UserSession:        NewUserSessionClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Broker.
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
		c.Broker, c.Customer, c.Deal, c.DealBroker, c.Notification, c.Payment,
		c.PaymentSplit, c.RestaurantLocation, c.RestaurantTrend, c.User, c.UserSession,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Broker, c.Customer, c.Deal, c.DealBroker, c.Notification, c.Payment,
		c.PaymentSplit, c.RestaurantLocation, c.RestaurantTrend, c.User, c.UserSession,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *BrokerMutation:
		return c.Broker.mutate(ctx, m)
	case *CustomerMutation:
		return c.Customer.mutate(ctx, m)
	case *DealMutation:
		return c.Deal.mutate(ctx, m)
	case *DealBrokerMutation:
		return c.DealBroker.mutate(ctx, m)
	case *NotificationMutation:
		return c.Notification.mutate(ctx, m)
	case *PaymentMutation:
		return c.Payment.mutate(ctx, m)
	case *PaymentSplitMutation:
		return c.PaymentSplit.mutate(ctx, m)
	case *RestaurantLocationMutation:
		return c.RestaurantLocation.mutate(ctx, m)
	case *RestaurantTrendMutation:
		return c.RestaurantTrend.mutate(ctx, m)
	case *UserMutation:
		return c.User.mutate(ctx, m)
	case *UserSessionMutation:
		return c.UserSession.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("repo: unknown mutation type %T", m)
	}
}

// BrokerClient is a client for the Broker schema.
type BrokerClient struct {
	config
}

// NewBrokerClient returns a client for the Broker from the given config.
func NewBrokerClient(c config) *BrokerClient {
	return &BrokerClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `broker.Hooks(f(g(h())))`.
func (c *BrokerClient) Use(hooks ...Hook) {
	c.hooks.Broker = append(c.hooks.Broker, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `broker.Intercept(f(g(h())))`.
func (c *BrokerClient) Intercept(interceptors ...Interceptor) {
	c.inters.Broker = append(c.inters.Broker, interceptors...)
}

// Create returns a builder for creating a Broker entity.
func (c *BrokerClient) Create() *BrokerCreate {
	mutation := newBrokerMutation(c.config, OpCreate)
	return &BrokerCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Broker entities.
func (c *BrokerClient) CreateBulk(builders ...*BrokerCreate) *BrokerCreateBulk {
	return &BrokerCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BrokerClient) MapCreateBulk(slice any, setFunc func(*BrokerCreate, int)) *BrokerCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BrokerCreateBulk{err: fmt.Errorf("calling to BrokerClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BrokerCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BrokerCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Broker.
func (c *BrokerClient) Update() *BrokerUpdate {
	mutation := newBrokerMutation(c.config, OpUpdate)
	return &BrokerUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BrokerClient) UpdateOne(_m *Broker) *BrokerUpdateOne {
	mutation := newBrokerMutation(c.config, OpUpdateOne, withBroker(_m))
	return &BrokerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BrokerClient) UpdateOneID(id uuid.UUID) *BrokerUpdateOne {
	mutation := newBrokerMutation(c.config, OpUpdateOne, withBrokerID(id))
	return &BrokerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Broker.
func (c *BrokerClient) Delete() *BrokerDelete {
	mutation := newBrokerMutation(c.config, OpDelete)
	return &BrokerDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BrokerClient) DeleteOne(_m *Broker) *BrokerDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BrokerClient) DeleteOneID(id uuid.UUID) *BrokerDeleteOne {
	builder := c.Delete().Where(broker.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BrokerDeleteOne{builder}
}

// Query returns a query builder for Broker.
func (c *BrokerClient) Query() *BrokerQuery {
	return &BrokerQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBroker},
		inters: c.Interceptors(),
	}
}

// Get returns a Broker entity by its id.
func (c *BrokerClient) Get(ctx context.Context, id uuid.UUID) (*Broker, error) {
	return c.Query().Where(broker.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BrokerClient) GetX(ctx context.Context, id uuid.UUID) *Broker {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDealInterests queries the deal_interests edge of a Broker.
func (c *BrokerClient) QueryDealInterests(_m *Broker) *DealBrokerQuery {
	query := (&DealBrokerClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(broker.Table, broker.FieldID, id),
			sqlgraph.To(dealbroker.Table, dealbroker.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, broker.DealInterestsTable, broker.DealInterestsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryPaymentSplits queries the payment_splits edge of a Broker.
func (c *BrokerClient) QueryPaymentSplits(_m *Broker) *PaymentSplitQuery {
	query := (&PaymentSplitClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(broker.Table, broker.FieldID, id),
			sqlgraph.To(paymentsplit.Table, paymentsplit.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, broker.PaymentSplitsTable, broker.PaymentSplitsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *BrokerClient) Hooks() []Hook {
	return c.hooks.Broker
}

// Interceptors returns the client interceptors.
func (c *BrokerClient) Interceptors() []Interceptor {
	return c.inters.Broker
}

func (c *BrokerClient) mutate(ctx context.Context, m *BrokerMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BrokerCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BrokerUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BrokerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BrokerDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Broker mutation op: %q", m.Op())
	}
}

// CustomerClient is a client for the Customer schema.
type CustomerClient struct {
	config
}

// NewCustomerClient returns a client for the Customer from the given config.
func NewCustomerClient(c config) *CustomerClient {
	return &CustomerClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `customer.Hooks(f(g(h())))`.
func (c *CustomerClient) Use(hooks ...Hook) {
	c.hooks.Customer = append(c.hooks.Customer, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `customer.Intercept(f(g(h())))`.
func (c *CustomerClient) Intercept(interceptors ...Interceptor) {
	c.inters.Customer = append(c.inters.Customer, interceptors...)
}

// Create returns a builder for creating a Customer entity.
func (c *CustomerClient) Create() *CustomerCreate {
	mutation := newCustomerMutation(c.config, OpCreate)
	return &CustomerCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Customer entities.
func (c *CustomerClient) CreateBulk(builders ...*CustomerCreate) *CustomerCreateBulk {
	return &CustomerCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CustomerClient) MapCreateBulk(slice any, setFunc func(*CustomerCreate, int)) *CustomerCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CustomerCreateBulk{err: fmt.Errorf("calling to CustomerClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CustomerCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CustomerCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Customer.
func (c *CustomerClient) Update() *CustomerUpdate {
	mutation := newCustomerMutation(c.config, OpUpdate)
	return &CustomerUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CustomerClient) UpdateOne(_m *Customer) *CustomerUpdateOne {
	mutation := newCustomerMutation(c.config, OpUpdateOne, withCustomer(_m))
	return &CustomerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CustomerClient) UpdateOneID(id uuid.UUID) *CustomerUpdateOne {
	mutation := newCustomerMutation(c.config, OpUpdateOne, withCustomerID(id))
	return &CustomerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Customer.
func (c *CustomerClient) Delete() *CustomerDelete {
	mutation := newCustomerMutation(c.config, OpDelete)
	return &CustomerDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CustomerClient) DeleteOne(_m *Customer) *CustomerDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CustomerClient) DeleteOneID(id uuid.UUID) *CustomerDeleteOne {
	builder := c.Delete().Where(customer.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CustomerDeleteOne{builder}
}

// Query returns a query builder for Customer.
func (c *CustomerClient) Query() *CustomerQuery {
	return &CustomerQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCustomer},
		inters: c.Interceptors(),
	}
}

// Get returns a Customer entity by its id.
func (c *CustomerClient) Get(ctx context.Context, id uuid.UUID) (*Customer, error) {
	return c.Query().Where(customer.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CustomerClient) GetX(ctx context.Context, id uuid.UUID) *Customer {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDeals queries the deals edge of a Customer.
func (c *CustomerClient) QueryDeals(_m *Customer) *DealQuery {
	query := (&DealClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(customer.Table, customer.FieldID, id),
			sqlgraph.To(deal.Table, deal.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, customer.DealsTable, customer.DealsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CustomerClient) Hooks() []Hook {
	return c.hooks.Customer
}

// Interceptors returns the client interceptors.
func (c *CustomerClient) Interceptors() []Interceptor {
	return c.inters.Customer
}

func (c *CustomerClient) mutate(ctx context.Context, m *CustomerMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CustomerCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CustomerUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CustomerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CustomerDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Customer mutation op: %q", m.Op())
	}
}

// DealClient is a client for the Deal schema.
type DealClient struct {
	config
}

// NewDealClient returns a client for the Deal from the given config.
func NewDealClient(c config) *DealClient {
	return &DealClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `deal.Hooks(f(g(h())))`.
func (c *DealClient) Use(hooks ...Hook) {
	c.hooks.Deal = append(c.hooks.Deal, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `deal.Intercept(f(g(h())))`.
func (c *DealClient) Intercept(interceptors ...Interceptor) {
	c.inters.Deal = append(c.inters.Deal, interceptors...)
}

// Create returns a builder for creating a Deal entity.
func (c *DealClient) Create() *DealCreate {
	mutation := newDealMutation(c.config, OpCreate)
	return &DealCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Deal entities.
func (c *DealClient) CreateBulk(builders ...*DealCreate) *DealCreateBulk {
	return &DealCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DealClient) MapCreateBulk(slice any, setFunc func(*DealCreate, int)) *DealCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DealCreateBulk{err: fmt.Errorf("calling to DealClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DealCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DealCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Deal.
func (c *DealClient) Update() *DealUpdate {
	mutation := newDealMutation(c.config, OpUpdate)
	return &DealUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DealClient) UpdateOne(_m *Deal) *DealUpdateOne {
	mutation := newDealMutation(c.config, OpUpdateOne, withDeal(_m))
	return &DealUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DealClient) UpdateOneID(id uuid.UUID) *DealUpdateOne {
	mutation := newDealMutation(c.config, OpUpdateOne, withDealID(id))
	return &DealUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Deal.
func (c *DealClient) Delete() *DealDelete {
	mutation := newDealMutation(c.config, OpDelete)
	return &DealDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DealClient) DeleteOne(_m *Deal) *DealDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DealClient) DeleteOneID(id uuid.UUID) *DealDeleteOne {
	builder := c.Delete().Where(deal.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DealDeleteOne{builder}
}

// Query returns a query builder for Deal.
func (c *DealClient) Query() *DealQuery {
	return &DealQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDeal},
		inters: c.Interceptors(),
	}
}

// Get returns a Deal entity by its id.
func (c *DealClient) Get(ctx context.Context, id uuid.UUID) (*Deal, error) {
	return c.Query().Where(deal.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DealClient) GetX(ctx context.Context, id uuid.UUID) *Deal {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCustomer queries the customer edge of a Deal.
func (c *DealClient) QueryCustomer(_m *Deal) *CustomerQuery {
	query := (&CustomerClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(deal.Table, deal.FieldID, id),
			sqlgraph.To(customer.Table, customer.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, deal.CustomerTable, deal.CustomerColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryPayments queries the payments edge of a Deal.
func (c *DealClient) QueryPayments(_m *Deal) *PaymentQuery {
	query := (&PaymentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(deal.Table, deal.FieldID, id),
			sqlgraph.To(payment.Table, payment.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, deal.PaymentsTable, deal.PaymentsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryBrokerInterests queries the broker_interests edge of a Deal.
func (c *DealClient) QueryBrokerInterests(_m *Deal) *DealBrokerQuery {
	query := (&DealBrokerClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(deal.Table, deal.FieldID, id),
			sqlgraph.To(dealbroker.Table, dealbroker.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, deal.BrokerInterestsTable, deal.BrokerInterestsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DealClient) Hooks() []Hook {
	return c.hooks.Deal
}

// Interceptors returns the client interceptors.
func (c *DealClient) Interceptors() []Interceptor {
	return c.inters.Deal
}

func (c *DealClient) mutate(ctx context.Context, m *DealMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DealCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DealUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DealUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DealDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Deal mutation op: %q", m.Op())
	}
}

// DealBrokerClient is a client for the DealBroker schema.
type DealBrokerClient struct {
	config
}

// NewDealBrokerClient returns a client for the DealBroker from the given config.
func NewDealBrokerClient(c config) *DealBrokerClient {
	return &DealBrokerClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `dealbroker.Hooks(f(g(h())))`.
func (c *DealBrokerClient) Use(hooks ...Hook) {
	c.hooks.DealBroker = append(c.hooks.DealBroker, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `dealbroker.Intercept(f(g(h())))`.
func (c *DealBrokerClient) Intercept(interceptors ...Interceptor) {
	c.inters.DealBroker = append(c.inters.DealBroker, interceptors...)
}

// Create returns a builder for creating a DealBroker entity.
func (c *DealBrokerClient) Create() *DealBrokerCreate {
	mutation := newDealBrokerMutation(c.config, OpCreate)
	return &DealBrokerCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DealBroker entities.
func (c *DealBrokerClient) CreateBulk(builders ...*DealBrokerCreate) *DealBrokerCreateBulk {
	return &DealBrokerCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DealBrokerClient) MapCreateBulk(slice any, setFunc func(*DealBrokerCreate, int)) *DealBrokerCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DealBrokerCreateBulk{err: fmt.Errorf("calling to DealBrokerClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DealBrokerCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DealBrokerCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DealBroker.
func (c *DealBrokerClient) Update() *DealBrokerUpdate {
	mutation := newDealBrokerMutation(c.config, OpUpdate)
	return &DealBrokerUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DealBrokerClient) UpdateOne(_m *DealBroker) *DealBrokerUpdateOne {
	mutation := newDealBrokerMutation(c.config, OpUpdateOne, withDealBroker(_m))
	return &DealBrokerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DealBrokerClient) UpdateOneID(id uuid.UUID) *DealBrokerUpdateOne {
	mutation := newDealBrokerMutation(c.config, OpUpdateOne, withDealBrokerID(id))
	return &DealBrokerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DealBroker.
func (c *DealBrokerClient) Delete() *DealBrokerDelete {
	mutation := newDealBrokerMutation(c.config, OpDelete)
	return &DealBrokerDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DealBrokerClient) DeleteOne(_m *DealBroker) *DealBrokerDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DealBrokerClient) DeleteOneID(id uuid.UUID) *DealBrokerDeleteOne {
	builder := c.Delete().Where(dealbroker.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DealBrokerDeleteOne{builder}
}

// Query returns a query builder for DealBroker.
func (c *DealBrokerClient) Query() *DealBrokerQuery {
	return &DealBrokerQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDealBroker},
		inters: c.Interceptors(),
	}
}

// Get returns a DealBroker entity by its id.
func (c *DealBrokerClient) Get(ctx context.Context, id uuid.UUID) (*DealBroker, error) {
	return c.Query().Where(dealbroker.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DealBrokerClient) GetX(ctx context.Context, id uuid.UUID) *DealBroker {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDeal queries the deal edge of a DealBroker.
func (c *DealBrokerClient) QueryDeal(_m *DealBroker) *DealQuery {
	query := (&DealClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(dealbroker.Table, dealbroker.FieldID, id),
			sqlgraph.To(deal.Table, deal.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, dealbroker.DealTable, dealbroker.DealColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryBroker queries the broker edge of a DealBroker.
func (c *DealBrokerClient) QueryBroker(_m *DealBroker) *BrokerQuery {
	query := (&BrokerClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(dealbroker.Table, dealbroker.FieldID, id),
			sqlgraph.To(broker.Table, broker.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, dealbroker.BrokerTable, dealbroker.BrokerColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DealBrokerClient) Hooks() []Hook {
	return c.hooks.DealBroker
}

// Interceptors returns the client interceptors.
func (c *DealBrokerClient) Interceptors() []Interceptor {
	return c.inters.DealBroker
}

func (c *DealBrokerClient) mutate(ctx context.Context, m *DealBrokerMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DealBrokerCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DealBrokerUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DealBrokerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DealBrokerDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown DealBroker mutation op: %q", m.Op())
	}
}

// NotificationClient is a client for the Notification schema.
type NotificationClient struct {
	config
}

// NewNotificationClient returns a client for the Notification from the given config.
func NewNotificationClient(c config) *NotificationClient {
	return &NotificationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `notification.Hooks(f(g(h())))`.
func (c *NotificationClient) Use(hooks ...Hook) {
	c.hooks.Notification = append(c.hooks.Notification, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `notification.Intercept(f(g(h())))`.
func (c *NotificationClient) Intercept(interceptors ...Interceptor) {
	c.inters.Notification = append(c.inters.Notification, interceptors...)
}

// Create returns a builder for creating a Notification entity.
func (c *NotificationClient) Create() *NotificationCreate {
	mutation := newNotificationMutation(c.config, OpCreate)
	return &NotificationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Notification entities.
func (c *NotificationClient) CreateBulk(builders ...*NotificationCreate) *NotificationCreateBulk {
	return &NotificationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *NotificationClient) MapCreateBulk(slice any, setFunc func(*NotificationCreate, int)) *NotificationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &NotificationCreateBulk{err: fmt.Errorf("calling to NotificationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*NotificationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &NotificationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Notification.
func (c *NotificationClient) Update() *NotificationUpdate {
	mutation := newNotificationMutation(c.config, OpUpdate)
	return &NotificationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *NotificationClient) UpdateOne(_m *Notification) *NotificationUpdateOne {
	mutation := newNotificationMutation(c.config, OpUpdateOne, withNotification(_m))
	return &NotificationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *NotificationClient) UpdateOneID(id uuid.UUID) *NotificationUpdateOne {
	mutation := newNotificationMutation(c.config, OpUpdateOne, withNotificationID(id))
	return &NotificationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Notification.
func (c *NotificationClient) Delete() *NotificationDelete {
	mutation := newNotificationMutation(c.config, OpDelete)
	return &NotificationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *NotificationClient) DeleteOne(_m *Notification) *NotificationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *NotificationClient) DeleteOneID(id uuid.UUID) *NotificationDeleteOne {
	builder := c.Delete().Where(notification.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &NotificationDeleteOne{builder}
}

// Query returns a query builder for Notification.
func (c *NotificationClient) Query() *NotificationQuery {
	return &NotificationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeNotification},
		inters: c.Interceptors(),
	}
}

// Get returns a Notification entity by its id.
func (c *NotificationClient) Get(ctx context.Context, id uuid.UUID) (*Notification, error) {
	return c.Query().Where(notification.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *NotificationClient) GetX(ctx context.Context, id uuid.UUID) *Notification {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *NotificationClient) Hooks() []Hook {
	return c.hooks.Notification
}

// Interceptors returns the client interceptors.
func (c *NotificationClient) Interceptors() []Interceptor {
	return c.inters.Notification
}

func (c *NotificationClient) mutate(ctx context.Context, m *NotificationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&NotificationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&NotificationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&NotificationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&NotificationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Notification mutation op: %q", m.Op())
	}
}

// PaymentClient is a client for the Payment schema.
type PaymentClient struct {
	config
}

// NewPaymentClient returns a client for the Payment from the given config.
func NewPaymentClient(c config) *PaymentClient {
	return &PaymentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `payment.Hooks(f(g(h())))`.
func (c *PaymentClient) Use(hooks ...Hook) {
	c.hooks.Payment = append(c.hooks.Payment, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `payment.Intercept(f(g(h())))`.
func (c *PaymentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Payment = append(c.inters.Payment, interceptors...)
}

// Create returns a builder for creating a Payment entity.
func (c *PaymentClient) Create() *PaymentCreate {
	mutation := newPaymentMutation(c.config, OpCreate)
	return &PaymentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Payment entities.
func (c *PaymentClient) CreateBulk(builders ...*PaymentCreate) *PaymentCreateBulk {
	return &PaymentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PaymentClient) MapCreateBulk(slice any, setFunc func(*PaymentCreate, int)) *PaymentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PaymentCreateBulk{err: fmt.Errorf("calling to PaymentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PaymentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PaymentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Payment.
func (c *PaymentClient) Update() *PaymentUpdate {
	mutation := newPaymentMutation(c.config, OpUpdate)
	return &PaymentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PaymentClient) UpdateOne(_m *Payment) *PaymentUpdateOne {
	mutation := newPaymentMutation(c.config, OpUpdateOne, withPayment(_m))
	return &PaymentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PaymentClient) UpdateOneID(id uuid.UUID) *PaymentUpdateOne {
	mutation := newPaymentMutation(c.config, OpUpdateOne, withPaymentID(id))
	return &PaymentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Payment.
func (c *PaymentClient) Delete() *PaymentDelete {
	mutation := newPaymentMutation(c.config, OpDelete)
	return &PaymentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PaymentClient) DeleteOne(_m *Payment) *PaymentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PaymentClient) DeleteOneID(id uuid.UUID) *PaymentDeleteOne {
	builder := c.Delete().Where(payment.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PaymentDeleteOne{builder}
}

// Query returns a query builder for Payment.
func (c *PaymentClient) Query() *PaymentQuery {
	return &PaymentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePayment},
		inters: c.Interceptors(),
	}
}

// Get returns a Payment entity by its id.
func (c *PaymentClient) Get(ctx context.Context, id uuid.UUID) (*Payment, error) {
	return c.Query().Where(payment.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PaymentClient) GetX(ctx context.Context, id uuid.UUID) *Payment {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDeal queries the deal edge of a Payment.
func (c *PaymentClient) QueryDeal(_m *Payment) *DealQuery {
	query := (&DealClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(payment.Table, payment.FieldID, id),
			sqlgraph.To(deal.Table, deal.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, payment.DealTable, payment.DealColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySplits queries the splits edge of a Payment.
func (c *PaymentClient) QuerySplits(_m *Payment) *PaymentSplitQuery {
	query := (&PaymentSplitClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(payment.Table, payment.FieldID, id),
			sqlgraph.To(paymentsplit.Table, paymentsplit.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, payment.SplitsTable, payment.SplitsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PaymentClient) Hooks() []Hook {
	return c.hooks.Payment
}

// Interceptors returns the client interceptors.
func (c *PaymentClient) Interceptors() []Interceptor {
	return c.inters.Payment
}

func (c *PaymentClient) mutate(ctx context.Context, m *PaymentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PaymentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PaymentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PaymentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PaymentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Payment mutation op: %q", m.Op())
	}
}

// PaymentSplitClient is a client for the PaymentSplit schema.
type PaymentSplitClient struct {
	config
}

// NewPaymentSplitClient returns a client for the PaymentSplit from the given config.
func NewPaymentSplitClient(c config) *PaymentSplitClient {
	return &PaymentSplitClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `paymentsplit.Hooks(f(g(h())))`.
func (c *PaymentSplitClient) Use(hooks ...Hook) {
	c.hooks.PaymentSplit = append(c.hooks.PaymentSplit, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `paymentsplit.Intercept(f(g(h())))`.
func (c *PaymentSplitClient) Intercept(interceptors ...Interceptor) {
	c.inters.PaymentSplit = append(c.inters.PaymentSplit, interceptors...)
}

// Create returns a builder for creating a PaymentSplit entity.
func (c *PaymentSplitClient) Create() *PaymentSplitCreate {
	mutation := newPaymentSplitMutation(c.config, OpCreate)
	return &PaymentSplitCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PaymentSplit entities.
func (c *PaymentSplitClient) CreateBulk(builders ...*PaymentSplitCreate) *PaymentSplitCreateBulk {
	return &PaymentSplitCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PaymentSplitClient) MapCreateBulk(slice any, setFunc func(*PaymentSplitCreate, int)) *PaymentSplitCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PaymentSplitCreateBulk{err: fmt.Errorf("calling to PaymentSplitClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PaymentSplitCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PaymentSplitCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PaymentSplit.
func (c *PaymentSplitClient) Update() *PaymentSplitUpdate {
	mutation := newPaymentSplitMutation(c.config, OpUpdate)
	return &PaymentSplitUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PaymentSplitClient) UpdateOne(_m *PaymentSplit) *PaymentSplitUpdateOne {
	mutation := newPaymentSplitMutation(c.config, OpUpdateOne, withPaymentSplit(_m))
	return &PaymentSplitUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PaymentSplitClient) UpdateOneID(id uuid.UUID) *PaymentSplitUpdateOne {
	mutation := newPaymentSplitMutation(c.config, OpUpdateOne, withPaymentSplitID(id))
	return &PaymentSplitUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PaymentSplit.
func (c *PaymentSplitClient) Delete() *PaymentSplitDelete {
	mutation := newPaymentSplitMutation(c.config, OpDelete)
	return &PaymentSplitDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PaymentSplitClient) DeleteOne(_m *PaymentSplit) *PaymentSplitDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PaymentSplitClient) DeleteOneID(id uuid.UUID) *PaymentSplitDeleteOne {
	builder := c.Delete().Where(paymentsplit.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PaymentSplitDeleteOne{builder}
}

// Query returns a query builder for PaymentSplit.
func (c *PaymentSplitClient) Query() *PaymentSplitQuery {
	return &PaymentSplitQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePaymentSplit},
		inters: c.Interceptors(),
	}
}

// Get returns a PaymentSplit entity by its id.
func (c *PaymentSplitClient) Get(ctx context.Context, id uuid.UUID) (*PaymentSplit, error) {
	return c.Query().Where(paymentsplit.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PaymentSplitClient) GetX(ctx context.Context, id uuid.UUID) *PaymentSplit {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryPayment queries the payment edge of a PaymentSplit.
func (c *PaymentSplitClient) QueryPayment(_m *PaymentSplit) *PaymentQuery {
	query := (&PaymentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(paymentsplit.Table, paymentsplit.FieldID, id),
			sqlgraph.To(payment.Table, payment.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, paymentsplit.PaymentTable, paymentsplit.PaymentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryBroker queries the broker edge of a PaymentSplit.
func (c *PaymentSplitClient) QueryBroker(_m *PaymentSplit) *BrokerQuery {
	query := (&BrokerClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(paymentsplit.Table, paymentsplit.FieldID, id),
			sqlgraph.To(broker.Table, broker.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, paymentsplit.BrokerTable, paymentsplit.BrokerColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PaymentSplitClient) Hooks() []Hook {
	return c.hooks.PaymentSplit
}

// Interceptors returns the client interceptors.
func (c *PaymentSplitClient) Interceptors() []Interceptor {
	return c.inters.PaymentSplit
}

func (c *PaymentSplitClient) mutate(ctx context.Context, m *PaymentSplitMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PaymentSplitCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PaymentSplitUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PaymentSplitUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PaymentSplitDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown PaymentSplit mutation op: %q", m.Op())
	}
}

// RestaurantLocationClient is a client for the RestaurantLocation schema.
type RestaurantLocationClient struct {
	config
}

// NewRestaurantLocationClient returns a client for the RestaurantLocation from the given config.
func NewRestaurantLocationClient(c config) *RestaurantLocationClient {
	return &RestaurantLocationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `restaurantlocation.Hooks(f(g(h())))`.
func (c *RestaurantLocationClient) Use(hooks ...Hook) {
	c.hooks.RestaurantLocation = append(c.hooks.RestaurantLocation, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `restaurantlocation.Intercept(f(g(h())))`.
func (c *RestaurantLocationClient) Intercept(interceptors ...Interceptor) {
	c.inters.RestaurantLocation = append(c.inters.RestaurantLocation, interceptors...)
}

// Create returns a builder for creating a RestaurantLocation entity.
func (c *RestaurantLocationClient) Create() *RestaurantLocationCreate {
	mutation := newRestaurantLocationMutation(c.config, OpCreate)
	return &RestaurantLocationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RestaurantLocation entities.
func (c *RestaurantLocationClient) CreateBulk(builders ...*RestaurantLocationCreate) *RestaurantLocationCreateBulk {
	return &RestaurantLocationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RestaurantLocationClient) MapCreateBulk(slice any, setFunc func(*RestaurantLocationCreate, int)) *RestaurantLocationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RestaurantLocationCreateBulk{err: fmt.Errorf("calling to RestaurantLocationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RestaurantLocationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RestaurantLocationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RestaurantLocation.
func (c *RestaurantLocationClient) Update() *RestaurantLocationUpdate {
	mutation := newRestaurantLocationMutation(c.config, OpUpdate)
	return &RestaurantLocationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RestaurantLocationClient) UpdateOne(_m *RestaurantLocation) *RestaurantLocationUpdateOne {
	mutation := newRestaurantLocationMutation(c.config, OpUpdateOne, withRestaurantLocation(_m))
	return &RestaurantLocationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RestaurantLocationClient) UpdateOneID(id uuid.UUID) *RestaurantLocationUpdateOne {
	mutation := newRestaurantLocationMutation(c.config, OpUpdateOne, withRestaurantLocationID(id))
	return &RestaurantLocationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RestaurantLocation.
func (c *RestaurantLocationClient) Delete() *RestaurantLocationDelete {
	mutation := newRestaurantLocationMutation(c.config, OpDelete)
	return &RestaurantLocationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RestaurantLocationClient) DeleteOne(_m *RestaurantLocation) *RestaurantLocationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RestaurantLocationClient) DeleteOneID(id uuid.UUID) *RestaurantLocationDeleteOne {
	builder := c.Delete().Where(restaurantlocation.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RestaurantLocationDeleteOne{builder}
}

// Query returns a query builder for RestaurantLocation.
func (c *RestaurantLocationClient) Query() *RestaurantLocationQuery {
	return &RestaurantLocationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRestaurantLocation},
		inters: c.Interceptors(),
	}
}

// Get returns a RestaurantLocation entity by its id.
func (c *RestaurantLocationClient) Get(ctx context.Context, id uuid.UUID) (*RestaurantLocation, error) {
	return c.Query().Where(restaurantlocation.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RestaurantLocationClient) GetX(ctx context.Context, id uuid.UUID) *RestaurantLocation {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTrends queries the trends edge of a RestaurantLocation.
func (c *RestaurantLocationClient) QueryTrends(_m *RestaurantLocation) *RestaurantTrendQuery {
	query := (&RestaurantTrendClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(restaurantlocation.Table, restaurantlocation.FieldID, id),
			sqlgraph.To(restauranttrend.Table, restauranttrend.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, restaurantlocation.TrendsTable, restaurantlocation.TrendsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *RestaurantLocationClient) Hooks() []Hook {
	return c.hooks.RestaurantLocation
}

// Interceptors returns the client interceptors.
func (c *RestaurantLocationClient) Interceptors() []Interceptor {
	return c.inters.RestaurantLocation
}

func (c *RestaurantLocationClient) mutate(ctx context.Context, m *RestaurantLocationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RestaurantLocationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RestaurantLocationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RestaurantLocationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RestaurantLocationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown RestaurantLocation mutation op: %q", m.Op())
	}
}

// RestaurantTrendClient is a client for the RestaurantTrend schema.
type RestaurantTrendClient struct {
	config
}

// NewRestaurantTrendClient returns a client for the RestaurantTrend from the given config.
func NewRestaurantTrendClient(c config) *RestaurantTrendClient {
	return &RestaurantTrendClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `restauranttrend.Hooks(f(g(h())))`.
func (c *RestaurantTrendClient) Use(hooks ...Hook) {
	c.hooks.RestaurantTrend = append(c.hooks.RestaurantTrend, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `restauranttrend.Intercept(f(g(h())))`.
func (c *RestaurantTrendClient) Intercept(interceptors ...Interceptor) {
	c.inters.RestaurantTrend = append(c.inters.RestaurantTrend, interceptors...)
}

// Create returns a builder for creating a RestaurantTrend entity.
func (c *RestaurantTrendClient) Create() *RestaurantTrendCreate {
	mutation := newRestaurantTrendMutation(c.config, OpCreate)
	return &RestaurantTrendCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RestaurantTrend entities.
func (c *RestaurantTrendClient) CreateBulk(builders ...*RestaurantTrendCreate) *RestaurantTrendCreateBulk {
	return &RestaurantTrendCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RestaurantTrendClient) MapCreateBulk(slice any, setFunc func(*RestaurantTrendCreate, int)) *RestaurantTrendCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RestaurantTrendCreateBulk{err: fmt.Errorf("calling to RestaurantTrendClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RestaurantTrendCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RestaurantTrendCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RestaurantTrend.
func (c *RestaurantTrendClient) Update() *RestaurantTrendUpdate {
	mutation := newRestaurantTrendMutation(c.config, OpUpdate)
	return &RestaurantTrendUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RestaurantTrendClient) UpdateOne(_m *RestaurantTrend) *RestaurantTrendUpdateOne {
	mutation := newRestaurantTrendMutation(c.config, OpUpdateOne, withRestaurantTrend(_m))
	return &RestaurantTrendUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RestaurantTrendClient) UpdateOneID(id uuid.UUID) *RestaurantTrendUpdateOne {
	mutation := newRestaurantTrendMutation(c.config, OpUpdateOne, withRestaurantTrendID(id))
	return &RestaurantTrendUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RestaurantTrend.
func (c *RestaurantTrendClient) Delete() *RestaurantTrendDelete {
	mutation := newRestaurantTrendMutation(c.config, OpDelete)
	return &RestaurantTrendDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RestaurantTrendClient) DeleteOne(_m *RestaurantTrend) *RestaurantTrendDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RestaurantTrendClient) DeleteOneID(id uuid.UUID) *RestaurantTrendDeleteOne {
	builder := c.Delete().Where(restauranttrend.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RestaurantTrendDeleteOne{builder}
}

// Query returns a query builder for RestaurantTrend.
func (c *RestaurantTrendClient) Query() *RestaurantTrendQuery {
	return &RestaurantTrendQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRestaurantTrend},
		inters: c.Interceptors(),
	}
}

// Get returns a RestaurantTrend entity by its id.
func (c *RestaurantTrendClient) Get(ctx context.Context, id uuid.UUID) (*RestaurantTrend, error) {
	return c.Query().Where(restauranttrend.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RestaurantTrendClient) GetX(ctx context.Context, id uuid.UUID) *RestaurantTrend {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryLocation queries the location edge of a RestaurantTrend.
func (c *RestaurantTrendClient) QueryLocation(_m *RestaurantTrend) *RestaurantLocationQuery {
	query := (&RestaurantLocationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(restauranttrend.Table, restauranttrend.FieldID, id),
			sqlgraph.To(restaurantlocation.Table, restaurantlocation.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, restauranttrend.LocationTable, restauranttrend.LocationColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *RestaurantTrendClient) Hooks() []Hook {
	return c.hooks.RestaurantTrend
}

// Interceptors returns the client interceptors.
func (c *RestaurantTrendClient) Interceptors() []Interceptor {
	return c.inters.RestaurantTrend
}

func (c *RestaurantTrendClient) mutate(ctx context.Context, m *RestaurantTrendMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RestaurantTrendCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RestaurantTrendUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RestaurantTrendUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RestaurantTrendDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown RestaurantTrend mutation op: %q", m.Op())
	}
}

// UserClient is a client for the User schema.
type UserClient struct {
	config
}

// NewUserClient returns a client for the User from the given config.
func NewUserClient(c config) *UserClient {
	return &UserClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `user.Hooks(f(g(h())))`.
func (c *UserClient) Use(hooks ...Hook) {
	c.hooks.User = append(c.hooks.User, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `user.Intercept(f(g(h())))`.
func (c *UserClient) Intercept(interceptors ...Interceptor) {
	c.inters.User = append(c.inters.User, interceptors...)
}

// Create returns a builder for creating a User entity.
func (c *UserClient) Create() *UserCreate {
	mutation := newUserMutation(c.config, OpCreate)
	return &UserCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of User entities.
func (c *UserClient) CreateBulk(builders ...*UserCreate) *UserCreateBulk {
	return &UserCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserClient) MapCreateBulk(slice any, setFunc func(*UserCreate, int)) *UserCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserCreateBulk{err: fmt.Errorf("calling to UserClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for User.
func (c *UserClient) Update() *UserUpdate {
	mutation := newUserMutation(c.config, OpUpdate)
	return &UserUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserClient) UpdateOne(_m *User) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUser(_m))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserClient) UpdateOneID(id uuid.UUID) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUserID(id))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for User.
func (c *UserClient) Delete() *UserDelete {
	mutation := newUserMutation(c.config, OpDelete)
	return &UserDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserClient) DeleteOne(_m *User) *UserDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserClient) DeleteOneID(id uuid.UUID) *UserDeleteOne {
	builder := c.Delete().Where(user.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserDeleteOne{builder}
}

// Query returns a query builder for User.
func (c *UserClient) Query() *UserQuery {
	return &UserQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUser},
		inters: c.Interceptors(),
	}
}

// Get returns a User entity by its id.
func (c *UserClient) Get(ctx context.Context, id uuid.UUID) (*User, error) {
	return c.Query().Where(user.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserClient) GetX(ctx context.Context, id uuid.UUID) *User {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *UserClient) Hooks() []Hook {
	return c.hooks.User
}

// Interceptors returns the client interceptors.
func (c *UserClient) Interceptors() []Interceptor {
	return c.inters.User
}

func (c *UserClient) mutate(ctx context.Context, m *UserMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown User mutation op: %q", m.Op())
	}
}

// UserSessionClient is a client for the UserSession schema.
type UserSessionClient struct {
	config
}

// NewUserSessionClient returns a client for the UserSession from the given config.
func NewUserSessionClient(c config) *UserSessionClient {
	return &UserSessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `usersession.Hooks(f(g(h())))`.
func (c *UserSessionClient) Use(hooks ...Hook) {
	c.hooks.UserSession = append(c.hooks.UserSession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `usersession.Intercept(f(g(h())))`.
func (c *UserSessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.UserSession = append(c.inters.UserSession, interceptors...)
}

// Create returns a builder for creating a UserSession entity.
func (c *UserSessionClient) Create() *UserSessionCreate {
	mutation := newUserSessionMutation(c.config, OpCreate)
	return &UserSessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UserSession entities.
func (c *UserSessionClient) CreateBulk(builders ...*UserSessionCreate) *UserSessionCreateBulk {
	return &UserSessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserSessionClient) MapCreateBulk(slice any, setFunc func(*UserSessionCreate, int)) *UserSessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserSessionCreateBulk{err: fmt.Errorf("calling to UserSessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserSessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserSessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UserSession.
func (c *UserSessionClient) Update() *UserSessionUpdate {
	mutation := newUserSessionMutation(c.config, OpUpdate)
	return &UserSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserSessionClient) UpdateOne(_m *UserSession) *UserSessionUpdateOne {
	mutation := newUserSessionMutation(c.config, OpUpdateOne, withUserSession(_m))
	return &UserSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserSessionClient) UpdateOneID(id uuid.UUID) *UserSessionUpdateOne {
	mutation := newUserSessionMutation(c.config, OpUpdateOne, withUserSessionID(id))
	return &UserSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UserSession.
func (c *UserSessionClient) Delete() *UserSessionDelete {
	mutation := newUserSessionMutation(c.config, OpDelete)
	return &UserSessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserSessionClient) DeleteOne(_m *UserSession) *UserSessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserSessionClient) DeleteOneID(id uuid.UUID) *UserSessionDeleteOne {
	builder := c.Delete().Where(usersession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserSessionDeleteOne{builder}
}

// Query returns a query builder for UserSession.
func (c *UserSessionClient) Query() *UserSessionQuery {
	return &UserSessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUserSession},
		inters: c.Interceptors(),
	}
}

// Get returns a UserSession entity by its id.
func (c *UserSessionClient) Get(ctx context.Context, id uuid.UUID) (*UserSession, error) {
	return c.Query().Where(usersession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserSessionClient) GetX(ctx context.Context, id uuid.UUID) *UserSession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryUser queries the user edge of a UserSession.
func (c *UserSessionClient) QueryUser(_m *UserSession) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(usersession.Table, usersession.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, usersession.UserTable, usersession.UserColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *UserSessionClient) Hooks() []Hook {
	return c.hooks.UserSession
}

// Interceptors returns the client interceptors.
func (c *UserSessionClient) Interceptors() []Interceptor {
	return c.inters.UserSession
}

func (c *UserSessionClient) mutate(ctx context.Context, m *UserSessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserSessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserSessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown UserSession mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Broker, Customer, Deal, DealBroker, Notification, Payment, PaymentSplit,
		RestaurantLocation, RestaurantTrend, User, UserSession []ent.Hook
	}
	inters struct {
		Broker, Customer, Deal, DealBroker, Notification, Payment, PaymentSplit,
		RestaurantLocation, RestaurantTrend, User, UserSession []ent.Interceptor
	}
)
