// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Broker is the predicate function for broker builders.
type Broker func(*sql.Selector)

// Customer is the predicate function for customer builders.
type Customer func(*sql.Selector)

// Deal is the predicate function for deal builders.
type Deal func(*sql.Selector)

// DealBroker is the predicate function for dealbroker builders.
type DealBroker func(*sql.Selector)

// Notification is the predicate function for notification builders.
type Notification func(*sql.Selector)

// Payment is the predicate function for payment builders.
type Payment func(*sql.Selector)

// PaymentSplit is the predicate function for paymentsplit builders.
type PaymentSplit func(*sql.Selector)

// RestaurantLocation is the predicate function for restaurantlocation builders.
type RestaurantLocation func(*sql.Selector)

// RestaurantTrend is the predicate function for restauranttrend builders.
type RestaurantTrend func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)

// UserSession is the predicate function for usersession builders.
type UserSession func(*sql.Selector)
