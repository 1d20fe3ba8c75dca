// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// BrokersColumns holds the columns for the "brokers" table.
	BrokersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "user_id", Type: field.TypeUUID, Unique: true, Nullable: true},
		{Name: "display_name", Type: field.TypeString, Size: 200},
		{Name: "email", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "phone", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "bank_account_encrypted", Type: field.TypeString, Nullable: true, Size: 1000},
		{Name: "bank_account_hash", Type: field.TypeString, Nullable: true, Size: 64},
		{Name: "is_active", Type: field.TypeBool, Default: true},
	}
	// BrokersTable holds the schema information for the "brokers" table.
	BrokersTable = &schema.Table{
		Name:       "brokers",
		Columns:    BrokersColumns,
		PrimaryKey: []*schema.Column{BrokersColumns[0]},
	}
	// CustomersColumns holds the columns for the "customers" table.
	CustomersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "name", Type: field.TypeString, Size: 255},
		{Name: "contact_name", Type: field.TypeString, Nullable: true, Size: 200},
		{Name: "email", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "phone", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
	}
	// CustomersTable holds the schema information for the "customers" table.
	CustomersTable = &schema.Table{
		Name:       "customers",
		Columns:    CustomersColumns,
		PrimaryKey: []*schema.Column{CustomersColumns[0]},
	}
	// DealsColumns holds the columns for the "deals" table.
	DealsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "name", Type: field.TypeString, Size: 255},
		{Name: "property_address", Type: field.TypeString, Nullable: true, Size: 500},
		{Name: "stage", Type: field.TypeEnum, Enums: []string{"prospect", "negotiation", "contract", "closed", "lost", "on_hold"}, Default: "prospect"},
		{Name: "fee", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(14,2)"}},
		{Name: "number_of_payments", Type: field.TypeInt, Default: 1},
		{Name: "agci", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(14,2)"}},
		{Name: "origination_percent", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(7,4)"}},
		{Name: "site_percent", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(7,4)"}},
		{Name: "deal_percent", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(7,4)"}},
		{Name: "referral_fee_percent", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(7,4)"}},
		{Name: "commission_version", Type: field.TypeInt, Default: 1},
		{Name: "closed_date", Type: field.TypeTime, Nullable: true},
		{Name: "client_id", Type: field.TypeUUID},
	}
	// DealsTable holds the schema information for the "deals" table.
	DealsTable = &schema.Table{
		Name:       "deals",
		Columns:    DealsColumns,
		PrimaryKey: []*schema.Column{DealsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "deals_customers_deals",
				Columns:    []*schema.Column{DealsColumns[16]},
				RefColumns: []*schema.Column{CustomersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "deal_client_id_stage",
				Unique:  false,
				Columns: []*schema.Column{DealsColumns[16], DealsColumns[6]},
			},
			{
				Name:    "deal_stage_created_at",
				Unique:  false,
				Columns: []*schema.Column{DealsColumns[6], DealsColumns[1]},
			},
		},
	}
	// DealBrokersColumns holds the columns for the "deal_brokers" table.
	DealBrokersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "origination_percent", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(7,4)"}},
		{Name: "site_percent", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(7,4)"}},
		{Name: "deal_percent", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(7,4)"}},
		{Name: "broker_id", Type: field.TypeUUID},
		{Name: "deal_id", Type: field.TypeUUID},
	}
	// DealBrokersTable holds the schema information for the "deal_brokers" table.
	DealBrokersTable = &schema.Table{
		Name:       "deal_brokers",
		Columns:    DealBrokersColumns,
		PrimaryKey: []*schema.Column{DealBrokersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "deal_brokers_brokers_deal_interests",
				Columns:    []*schema.Column{DealBrokersColumns[6]},
				RefColumns: []*schema.Column{BrokersColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "deal_brokers_deals_broker_interests",
				Columns:    []*schema.Column{DealBrokersColumns[7]},
				RefColumns: []*schema.Column{DealsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "dealbroker_deal_id_broker_id",
				Unique:  true,
				Columns: []*schema.Column{DealBrokersColumns[7], DealBrokersColumns[6]},
			},
		},
	}
	// NotificationsColumns holds the columns for the "notifications" table.
	NotificationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "type", Type: field.TypeString, Size: 50},
		{Name: "title", Type: field.TypeString, Size: 255},
		{Name: "body", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "data", Type: field.TypeJSON, Nullable: true},
		{Name: "is_read", Type: field.TypeBool, Default: false},
		{Name: "read_at", Type: field.TypeTime, Nullable: true},
	}
	// NotificationsTable holds the schema information for the "notifications" table.
	NotificationsTable = &schema.Table{
		Name:       "notifications",
		Columns:    NotificationsColumns,
		PrimaryKey: []*schema.Column{NotificationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "notification_user_id_is_read",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[3], NotificationsColumns[8]},
			},
			{
				Name:    "notification_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[3], NotificationsColumns[1]},
			},
		},
	}
	// PaymentsColumns holds the columns for the "payments" table.
	PaymentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "sequence", Type: field.TypeInt},
		{Name: "payment_amount", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(14,2)"}},
		{Name: "amount_override", Type: field.TypeBool, Default: false},
		{Name: "agci", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(14,2)"}},
		{Name: "referral_fee_usd", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(14,2)"}},
		{Name: "referral_fee_percent_override", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(7,4)"}},
		{Name: "payment_date", Type: field.TypeTime, Nullable: true},
		{Name: "payment_received", Type: field.TypeBool, Default: false},
		{Name: "received_date", Type: field.TypeTime, Nullable: true},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "commission_version", Type: field.TypeInt, Default: 1},
		{Name: "invoice_number", Type: field.TypeString, Nullable: true, Size: 50},
		{Name: "deal_id", Type: field.TypeUUID},
	}
	// PaymentsTable holds the schema information for the "payments" table.
	PaymentsTable = &schema.Table{
		Name:       "payments",
		Columns:    PaymentsColumns,
		PrimaryKey: []*schema.Column{PaymentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "payments_deals_payments",
				Columns:    []*schema.Column{PaymentsColumns[16]},
				RefColumns: []*schema.Column{DealsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "payment_deal_id_sequence",
				Unique:  false,
				Columns: []*schema.Column{PaymentsColumns[16], PaymentsColumns[4]},
			},
			{
				Name:    "payment_deal_id_is_active",
				Unique:  false,
				Columns: []*schema.Column{PaymentsColumns[16], PaymentsColumns[13]},
			},
			{
				Name:    "payment_deal_id_payment_received",
				Unique:  false,
				Columns: []*schema.Column{PaymentsColumns[16], PaymentsColumns[11]},
			},
		},
	}
	// PaymentSplitsColumns holds the columns for the "payment_splits" table.
	PaymentSplitsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "split_origination_percent", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(7,4)"}},
		{Name: "split_origination_usd", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(16,4)"}},
		{Name: "split_site_percent", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(7,4)"}},
		{Name: "split_site_usd", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(16,4)"}},
		{Name: "split_deal_percent", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(7,4)"}},
		{Name: "split_deal_usd", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(16,4)"}},
		{Name: "split_broker_total", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(16,4)"}},
		{Name: "paid", Type: field.TypeBool, Default: false},
		{Name: "paid_date", Type: field.TypeTime, Nullable: true},
		{Name: "broker_id", Type: field.TypeUUID},
		{Name: "payment_id", Type: field.TypeUUID},
	}
	// PaymentSplitsTable holds the schema information for the "payment_splits" table.
	PaymentSplitsTable = &schema.Table{
		Name:       "payment_splits",
		Columns:    PaymentSplitsColumns,
		PrimaryKey: []*schema.Column{PaymentSplitsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "payment_splits_brokers_payment_splits",
				Columns:    []*schema.Column{PaymentSplitsColumns[12]},
				RefColumns: []*schema.Column{BrokersColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "payment_splits_payments_splits",
				Columns:    []*schema.Column{PaymentSplitsColumns[13]},
				RefColumns: []*schema.Column{PaymentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "paymentsplit_payment_id_broker_id",
				Unique:  true,
				Columns: []*schema.Column{PaymentSplitsColumns[13], PaymentSplitsColumns[12]},
			},
			{
				Name:    "paymentsplit_broker_id_paid",
				Unique:  false,
				Columns: []*schema.Column{PaymentSplitsColumns[12], PaymentSplitsColumns[10]},
			},
		},
	}
	// RestaurantLocationsColumns holds the columns for the "restaurant_locations" table.
	RestaurantLocationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "store_no", Type: field.TypeString, Unique: true, Size: 20},
		{Name: "chain_no", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "chain", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "geoaddress", Type: field.TypeString, Nullable: true, Size: 500},
		{Name: "geocity", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "geostate", Type: field.TypeString, Nullable: true, Size: 2},
		{Name: "geozip", Type: field.TypeString, Nullable: true, Size: 10},
		{Name: "county", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "dma_market", Type: field.TypeString, Nullable: true, Size: 200},
		{Name: "segment", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "subsegment", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "category", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "latitude", Type: field.TypeFloat64, Nullable: true},
		{Name: "longitude", Type: field.TypeFloat64, Nullable: true},
		{Name: "yr_built", Type: field.TypeInt, Nullable: true},
		{Name: "co_fr", Type: field.TypeString, Nullable: true, Size: 10},
	}
	// RestaurantLocationsTable holds the schema information for the "restaurant_locations" table.
	RestaurantLocationsTable = &schema.Table{
		Name:       "restaurant_locations",
		Columns:    RestaurantLocationsColumns,
		PrimaryKey: []*schema.Column{RestaurantLocationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "restaurantlocation_geostate_geocity",
				Unique:  false,
				Columns: []*schema.Column{RestaurantLocationsColumns[8], RestaurantLocationsColumns[7]},
			},
			{
				Name:    "restaurantlocation_chain",
				Unique:  false,
				Columns: []*schema.Column{RestaurantLocationsColumns[5]},
			},
		},
	}
	// RestaurantTrendsColumns holds the columns for the "restaurant_trends" table.
	RestaurantTrendsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "year", Type: field.TypeInt},
		{Name: "curr_natl_grade", Type: field.TypeString, Nullable: true, Size: 5},
		{Name: "curr_natl_index", Type: field.TypeFloat64, Nullable: true},
		{Name: "curr_annual_sls_k", Type: field.TypeFloat64, Nullable: true},
		{Name: "curr_mkt_grade", Type: field.TypeString, Nullable: true, Size: 5},
		{Name: "curr_mkt_index", Type: field.TypeFloat64, Nullable: true},
		{Name: "past_natl_grade", Type: field.TypeString, Nullable: true, Size: 5},
		{Name: "past_natl_index", Type: field.TypeFloat64, Nullable: true},
		{Name: "past_annual_sls_k", Type: field.TypeFloat64, Nullable: true},
		{Name: "past_mkt_grade", Type: field.TypeString, Nullable: true, Size: 5},
		{Name: "past_mkt_index", Type: field.TypeFloat64, Nullable: true},
		{Name: "survey_yr_last", Type: field.TypeInt, Nullable: true},
		{Name: "survey_yr_next", Type: field.TypeInt, Nullable: true},
		{Name: "total_surveys", Type: field.TypeInt, Nullable: true},
		{Name: "location_id", Type: field.TypeUUID},
	}
	// RestaurantTrendsTable holds the schema information for the "restaurant_trends" table.
	RestaurantTrendsTable = &schema.Table{
		Name:       "restaurant_trends",
		Columns:    RestaurantTrendsColumns,
		PrimaryKey: []*schema.Column{RestaurantTrendsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "restaurant_trends_restaurant_locations_trends",
				Columns:    []*schema.Column{RestaurantTrendsColumns[17]},
				RefColumns: []*schema.Column{RestaurantLocationsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "restauranttrend_location_id_year",
				Unique:  true,
				Columns: []*schema.Column{RestaurantTrendsColumns[17], RestaurantTrendsColumns[3]},
			},
			{
				Name:    "restauranttrend_year",
				Unique:  false,
				Columns: []*schema.Column{RestaurantTrendsColumns[3]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "first_name", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "last_name", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "email", Type: field.TypeString, Unique: true, Size: 255},
		{Name: "phone", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "password_hash", Type: field.TypeString, Nullable: true},
		{Name: "must_change_password", Type: field.TypeBool, Default: true},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"admin", "broker", "assistant"}, Default: "assistant"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"ACTIVE", "SUSPENDED"}, Default: "ACTIVE"},
		{Name: "last_login_at", Type: field.TypeTime, Nullable: true},
		{Name: "failed_login_attempts", Type: field.TypeInt, Default: 0},
		{Name: "locked_until", Type: field.TypeTime, Nullable: true},
		{Name: "suspended_at", Type: field.TypeTime, Nullable: true},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
	}
	// UserSessionsColumns holds the columns for the "user_sessions" table.
	UserSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString, Unique: true, Size: 36},
		{Name: "refresh_token_hash", Type: field.TypeString, Nullable: true, Size: 64},
		{Name: "user_agent", Type: field.TypeString, Nullable: true},
		{Name: "ip_address", Type: field.TypeString, Nullable: true, Size: 45},
		{Name: "expires_at", Type: field.TypeTime},
		{Name: "last_used_at", Type: field.TypeTime, Nullable: true},
		{Name: "revoked_at", Type: field.TypeTime, Nullable: true},
		{Name: "user_id", Type: field.TypeUUID},
	}
	// UserSessionsTable holds the schema information for the "user_sessions" table.
	UserSessionsTable = &schema.Table{
		Name:       "user_sessions",
		Columns:    UserSessionsColumns,
		PrimaryKey: []*schema.Column{UserSessionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "user_sessions_users_user",
				Columns:    []*schema.Column{UserSessionsColumns[10]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "usersession_session_id",
				Unique:  false,
				Columns: []*schema.Column{UserSessionsColumns[3]},
			},
			{
				Name:    "usersession_user_id",
				Unique:  false,
				Columns: []*schema.Column{UserSessionsColumns[10]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		BrokersTable,
		CustomersTable,
		DealsTable,
		DealBrokersTable,
		NotificationsTable,
		PaymentsTable,
		PaymentSplitsTable,
		RestaurantLocationsTable,
		RestaurantTrendsTable,
		UsersTable,
		UserSessionsTable,
	}
)

func init() {
	DealsTable.ForeignKeys[0].RefTable = CustomersTable
	DealBrokersTable.ForeignKeys[0].RefTable = BrokersTable
	DealBrokersTable.ForeignKeys[1].RefTable = DealsTable
	PaymentsTable.ForeignKeys[0].RefTable = DealsTable
	PaymentSplitsTable.ForeignKeys[0].RefTable = BrokersTable
	PaymentSplitsTable.ForeignKeys[1].RefTable = PaymentsTable
	RestaurantTrendsTable.ForeignKeys[0].RefTable = RestaurantLocationsTable
	UserSessionsTable.ForeignKeys[0].RefTable = UsersTable
}
