// Code generated by ent, DO NOT EDIT.

package repo

import (
	"time"

	"github.com/google/uuid"
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
	"github.com/oculusgrp/dealdesk_backend/internal/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	brokerMixin := schema.Broker{}.Mixin()
	brokerMixinFields0 := brokerMixin[0].Fields()
	_ = brokerMixinFields0
	brokerMixinFields1 := brokerMixin[1].Fields()
	_ = brokerMixinFields1
	brokerFields := schema.Broker{}.Fields()
	_ = brokerFields
	// brokerDescCreatedAt is the schema descriptor for created_at field.
	brokerDescCreatedAt := brokerMixinFields1[0].Descriptor()
	// broker.DefaultCreatedAt holds the default value on creation for the created_at field.
	broker.DefaultCreatedAt = brokerDescCreatedAt.Default.(func() time.Time)
	// brokerDescUpdatedAt is the schema descriptor for updated_at field.
	brokerDescUpdatedAt := brokerMixinFields1[1].Descriptor()
	// broker.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	broker.DefaultUpdatedAt = brokerDescUpdatedAt.Default.(func() time.Time)
	// broker.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	broker.UpdateDefaultUpdatedAt = brokerDescUpdatedAt.UpdateDefault.(func() time.Time)
	// brokerDescDisplayName is the schema descriptor for display_name field.
	brokerDescDisplayName := brokerFields[1].Descriptor()
	// broker.DisplayNameValidator is a validator for the "display_name" field. It is called by the builders before save.
	broker.DisplayNameValidator = func() func(string) error {
		validators := brokerDescDisplayName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(display_name string) error {
			for _, fn := range fns {
				if err := fn(display_name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// brokerDescEmail is the schema descriptor for email field.
	brokerDescEmail := brokerFields[2].Descriptor()
	// broker.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	broker.EmailValidator = brokerDescEmail.Validators[0].(func(string) error)
	// brokerDescPhone is the schema descriptor for phone field.
	brokerDescPhone := brokerFields[3].Descriptor()
	// broker.PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	broker.PhoneValidator = brokerDescPhone.Validators[0].(func(string) error)
	// brokerDescBankAccountEncrypted is the schema descriptor for bank_account_encrypted field.
	brokerDescBankAccountEncrypted := brokerFields[4].Descriptor()
	// broker.BankAccountEncryptedValidator is a validator for the "bank_account_encrypted" field. It is called by the builders before save.
	broker.BankAccountEncryptedValidator = brokerDescBankAccountEncrypted.Validators[0].(func(string) error)
	// brokerDescBankAccountHash is the schema descriptor for bank_account_hash field.
	brokerDescBankAccountHash := brokerFields[5].Descriptor()
	// broker.BankAccountHashValidator is a validator for the "bank_account_hash" field. It is called by the builders before save.
	broker.BankAccountHashValidator = brokerDescBankAccountHash.Validators[0].(func(string) error)
	// brokerDescIsActive is the schema descriptor for is_active field.
	brokerDescIsActive := brokerFields[6].Descriptor()
	// broker.DefaultIsActive holds the default value on creation for the is_active field.
	broker.DefaultIsActive = brokerDescIsActive.Default.(bool)
	// brokerDescID is the schema descriptor for id field.
	brokerDescID := brokerMixinFields0[0].Descriptor()
	// broker.DefaultID holds the default value on creation for the id field.
	broker.DefaultID = brokerDescID.Default.(func() uuid.UUID)
	customerMixin := schema.Customer{}.Mixin()
	customerMixinFields0 := customerMixin[0].Fields()
	_ = customerMixinFields0
	customerMixinFields1 := customerMixin[1].Fields()
	_ = customerMixinFields1
	customerFields := schema.Customer{}.Fields()
	_ = customerFields
	// customerDescCreatedAt is the schema descriptor for created_at field.
	customerDescCreatedAt := customerMixinFields1[0].Descriptor()
	// customer.DefaultCreatedAt holds the default value on creation for the created_at field.
	customer.DefaultCreatedAt = customerDescCreatedAt.Default.(func() time.Time)
	// customerDescUpdatedAt is the schema descriptor for updated_at field.
	customerDescUpdatedAt := customerMixinFields1[1].Descriptor()
	// customer.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	customer.DefaultUpdatedAt = customerDescUpdatedAt.Default.(func() time.Time)
	// customer.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	customer.UpdateDefaultUpdatedAt = customerDescUpdatedAt.UpdateDefault.(func() time.Time)
	// customerDescName is the schema descriptor for name field.
	customerDescName := customerFields[0].Descriptor()
	// customer.NameValidator is a validator for the "name" field. It is called by the builders before save.
	customer.NameValidator = func() func(string) error {
		validators := customerDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// customerDescContactName is the schema descriptor for contact_name field.
	customerDescContactName := customerFields[1].Descriptor()
	// customer.ContactNameValidator is a validator for the "contact_name" field. It is called by the builders before save.
	customer.ContactNameValidator = customerDescContactName.Validators[0].(func(string) error)
	// customerDescEmail is the schema descriptor for email field.
	customerDescEmail := customerFields[2].Descriptor()
	// customer.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	customer.EmailValidator = customerDescEmail.Validators[0].(func(string) error)
	// customerDescPhone is the schema descriptor for phone field.
	customerDescPhone := customerFields[3].Descriptor()
	// customer.PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	customer.PhoneValidator = customerDescPhone.Validators[0].(func(string) error)
	// customerDescID is the schema descriptor for id field.
	customerDescID := customerMixinFields0[0].Descriptor()
	// customer.DefaultID holds the default value on creation for the id field.
	customer.DefaultID = customerDescID.Default.(func() uuid.UUID)
	dealMixin := schema.Deal{}.Mixin()
	dealMixinFields0 := dealMixin[0].Fields()
	_ = dealMixinFields0
	dealMixinFields1 := dealMixin[1].Fields()
	_ = dealMixinFields1
	dealFields := schema.Deal{}.Fields()
	_ = dealFields
	// dealDescCreatedAt is the schema descriptor for created_at field.
	dealDescCreatedAt := dealMixinFields1[0].Descriptor()
	// deal.DefaultCreatedAt holds the default value on creation for the created_at field.
	deal.DefaultCreatedAt = dealDescCreatedAt.Default.(func() time.Time)
	// dealDescUpdatedAt is the schema descriptor for updated_at field.
	dealDescUpdatedAt := dealMixinFields1[1].Descriptor()
	// deal.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	deal.DefaultUpdatedAt = dealDescUpdatedAt.Default.(func() time.Time)
	// deal.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	deal.UpdateDefaultUpdatedAt = dealDescUpdatedAt.UpdateDefault.(func() time.Time)
	// dealDescName is the schema descriptor for name field.
	dealDescName := dealFields[1].Descriptor()
	// deal.NameValidator is a validator for the "name" field. It is called by the builders before save.
	deal.NameValidator = func() func(string) error {
		validators := dealDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// dealDescPropertyAddress is the schema descriptor for property_address field.
	dealDescPropertyAddress := dealFields[2].Descriptor()
	// deal.PropertyAddressValidator is a validator for the "property_address" field. It is called by the builders before save.
	deal.PropertyAddressValidator = dealDescPropertyAddress.Validators[0].(func(string) error)
	// dealDescNumberOfPayments is the schema descriptor for number_of_payments field.
	dealDescNumberOfPayments := dealFields[5].Descriptor()
	// deal.DefaultNumberOfPayments holds the default value on creation for the number_of_payments field.
	deal.DefaultNumberOfPayments = dealDescNumberOfPayments.Default.(int)
	// dealDescCommissionVersion is the schema descriptor for commission_version field.
	dealDescCommissionVersion := dealFields[11].Descriptor()
	// deal.DefaultCommissionVersion holds the default value on creation for the commission_version field.
	deal.DefaultCommissionVersion = dealDescCommissionVersion.Default.(int)
	// dealDescID is the schema descriptor for id field.
	dealDescID := dealMixinFields0[0].Descriptor()
	// deal.DefaultID holds the default value on creation for the id field.
	deal.DefaultID = dealDescID.Default.(func() uuid.UUID)
	dealbrokerMixin := schema.DealBroker{}.Mixin()
	dealbrokerMixinFields0 := dealbrokerMixin[0].Fields()
	_ = dealbrokerMixinFields0
	dealbrokerMixinFields1 := dealbrokerMixin[1].Fields()
	_ = dealbrokerMixinFields1
	dealbrokerFields := schema.DealBroker{}.Fields()
	_ = dealbrokerFields
	// dealbrokerDescCreatedAt is the schema descriptor for created_at field.
	dealbrokerDescCreatedAt := dealbrokerMixinFields1[0].Descriptor()
	// dealbroker.DefaultCreatedAt holds the default value on creation for the created_at field.
	dealbroker.DefaultCreatedAt = dealbrokerDescCreatedAt.Default.(func() time.Time)
	// dealbrokerDescUpdatedAt is the schema descriptor for updated_at field.
	dealbrokerDescUpdatedAt := dealbrokerMixinFields1[1].Descriptor()
	// dealbroker.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	dealbroker.DefaultUpdatedAt = dealbrokerDescUpdatedAt.Default.(func() time.Time)
	// dealbroker.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	dealbroker.UpdateDefaultUpdatedAt = dealbrokerDescUpdatedAt.UpdateDefault.(func() time.Time)
	// dealbrokerDescID is the schema descriptor for id field.
	dealbrokerDescID := dealbrokerMixinFields0[0].Descriptor()
	// dealbroker.DefaultID holds the default value on creation for the id field.
	dealbroker.DefaultID = dealbrokerDescID.Default.(func() uuid.UUID)
	notificationMixin := schema.Notification{}.Mixin()
	notificationMixinFields0 := notificationMixin[0].Fields()
	_ = notificationMixinFields0
	notificationMixinFields1 := notificationMixin[1].Fields()
	_ = notificationMixinFields1
	notificationFields := schema.Notification{}.Fields()
	_ = notificationFields
	// notificationDescCreatedAt is the schema descriptor for created_at field.
	notificationDescCreatedAt := notificationMixinFields1[0].Descriptor()
	// notification.DefaultCreatedAt holds the default value on creation for the created_at field.
	notification.DefaultCreatedAt = notificationDescCreatedAt.Default.(func() time.Time)
	// notificationDescUpdatedAt is the schema descriptor for updated_at field.
	notificationDescUpdatedAt := notificationMixinFields1[1].Descriptor()
	// notification.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	notification.DefaultUpdatedAt = notificationDescUpdatedAt.Default.(func() time.Time)
	// notification.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	notification.UpdateDefaultUpdatedAt = notificationDescUpdatedAt.UpdateDefault.(func() time.Time)
	// notificationDescType is the schema descriptor for type field.
	notificationDescType := notificationFields[1].Descriptor()
	// notification.TypeValidator is a validator for the "type" field. It is called by the builders before save.
	notification.TypeValidator = func() func(string) error {
		validators := notificationDescType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(_type string) error {
			for _, fn := range fns {
				if err := fn(_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// notificationDescTitle is the schema descriptor for title field.
	notificationDescTitle := notificationFields[2].Descriptor()
	// notification.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	notification.TitleValidator = func() func(string) error {
		validators := notificationDescTitle.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(title string) error {
			for _, fn := range fns {
				if err := fn(title); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// notificationDescIsRead is the schema descriptor for is_read field.
	notificationDescIsRead := notificationFields[5].Descriptor()
	// notification.DefaultIsRead holds the default value on creation for the is_read field.
	notification.DefaultIsRead = notificationDescIsRead.Default.(bool)
	// notificationDescID is the schema descriptor for id field.
	notificationDescID := notificationMixinFields0[0].Descriptor()
	// notification.DefaultID holds the default value on creation for the id field.
	notification.DefaultID = notificationDescID.Default.(func() uuid.UUID)
	paymentMixin := schema.Payment{}.Mixin()
	paymentMixinFields0 := paymentMixin[0].Fields()
	_ = paymentMixinFields0
	paymentMixinFields1 := paymentMixin[1].Fields()
	_ = paymentMixinFields1
	paymentFields := schema.Payment{}.Fields()
	_ = paymentFields
	// paymentDescCreatedAt is the schema descriptor for created_at field.
	paymentDescCreatedAt := paymentMixinFields1[0].Descriptor()
	// payment.DefaultCreatedAt holds the default value on creation for the created_at field.
	payment.DefaultCreatedAt = paymentDescCreatedAt.Default.(func() time.Time)
	// paymentDescUpdatedAt is the schema descriptor for updated_at field.
	paymentDescUpdatedAt := paymentMixinFields1[1].Descriptor()
	// payment.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	payment.DefaultUpdatedAt = paymentDescUpdatedAt.Default.(func() time.Time)
	// payment.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	payment.UpdateDefaultUpdatedAt = paymentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// paymentDescSequence is the schema descriptor for sequence field.
	paymentDescSequence := paymentFields[1].Descriptor()
	// payment.SequenceValidator is a validator for the "sequence" field. It is called by the builders before save.
	payment.SequenceValidator = paymentDescSequence.Validators[0].(func(int) error)
	// paymentDescAmountOverride is the schema descriptor for amount_override field.
	paymentDescAmountOverride := paymentFields[3].Descriptor()
	// payment.DefaultAmountOverride holds the default value on creation for the amount_override field.
	payment.DefaultAmountOverride = paymentDescAmountOverride.Default.(bool)
	// paymentDescPaymentReceived is the schema descriptor for payment_received field.
	paymentDescPaymentReceived := paymentFields[8].Descriptor()
	// payment.DefaultPaymentReceived holds the default value on creation for the payment_received field.
	payment.DefaultPaymentReceived = paymentDescPaymentReceived.Default.(bool)
	// paymentDescIsActive is the schema descriptor for is_active field.
	paymentDescIsActive := paymentFields[10].Descriptor()
	// payment.DefaultIsActive holds the default value on creation for the is_active field.
	payment.DefaultIsActive = paymentDescIsActive.Default.(bool)
	// paymentDescCommissionVersion is the schema descriptor for commission_version field.
	paymentDescCommissionVersion := paymentFields[11].Descriptor()
	// payment.DefaultCommissionVersion holds the default value on creation for the commission_version field.
	payment.DefaultCommissionVersion = paymentDescCommissionVersion.Default.(int)
	// paymentDescInvoiceNumber is the schema descriptor for invoice_number field.
	paymentDescInvoiceNumber := paymentFields[12].Descriptor()
	// payment.InvoiceNumberValidator is a validator for the "invoice_number" field. It is called by the builders before save.
	payment.InvoiceNumberValidator = paymentDescInvoiceNumber.Validators[0].(func(string) error)
	// paymentDescID is the schema descriptor for id field.
	paymentDescID := paymentMixinFields0[0].Descriptor()
	// payment.DefaultID holds the default value on creation for the id field.
	payment.DefaultID = paymentDescID.Default.(func() uuid.UUID)
	paymentsplitMixin := schema.PaymentSplit{}.Mixin()
	paymentsplitMixinFields0 := paymentsplitMixin[0].Fields()
	_ = paymentsplitMixinFields0
	paymentsplitMixinFields1 := paymentsplitMixin[1].Fields()
	_ = paymentsplitMixinFields1
	paymentsplitFields := schema.PaymentSplit{}.Fields()
	_ = paymentsplitFields
	// paymentsplitDescCreatedAt is the schema descriptor for created_at field.
	paymentsplitDescCreatedAt := paymentsplitMixinFields1[0].Descriptor()
	// paymentsplit.DefaultCreatedAt holds the default value on creation for the created_at field.
	paymentsplit.DefaultCreatedAt = paymentsplitDescCreatedAt.Default.(func() time.Time)
	// paymentsplitDescUpdatedAt is the schema descriptor for updated_at field.
	paymentsplitDescUpdatedAt := paymentsplitMixinFields1[1].Descriptor()
	// paymentsplit.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	paymentsplit.DefaultUpdatedAt = paymentsplitDescUpdatedAt.Default.(func() time.Time)
	// paymentsplit.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	paymentsplit.UpdateDefaultUpdatedAt = paymentsplitDescUpdatedAt.UpdateDefault.(func() time.Time)
	// paymentsplitDescPaid is the schema descriptor for paid field.
	paymentsplitDescPaid := paymentsplitFields[9].Descriptor()
	// paymentsplit.DefaultPaid holds the default value on creation for the paid field.
	paymentsplit.DefaultPaid = paymentsplitDescPaid.Default.(bool)
	// paymentsplitDescID is the schema descriptor for id field.
	paymentsplitDescID := paymentsplitMixinFields0[0].Descriptor()
	// paymentsplit.DefaultID holds the default value on creation for the id field.
	paymentsplit.DefaultID = paymentsplitDescID.Default.(func() uuid.UUID)
	restaurantlocationMixin := schema.RestaurantLocation{}.Mixin()
	restaurantlocationMixinFields0 := restaurantlocationMixin[0].Fields()
	_ = restaurantlocationMixinFields0
	restaurantlocationMixinFields1 := restaurantlocationMixin[1].Fields()
	_ = restaurantlocationMixinFields1
	restaurantlocationFields := schema.RestaurantLocation{}.Fields()
	_ = restaurantlocationFields
	// restaurantlocationDescCreatedAt is the schema descriptor for created_at field.
	restaurantlocationDescCreatedAt := restaurantlocationMixinFields1[0].Descriptor()
	// restaurantlocation.DefaultCreatedAt holds the default value on creation for the created_at field.
	restaurantlocation.DefaultCreatedAt = restaurantlocationDescCreatedAt.Default.(func() time.Time)
	// restaurantlocationDescUpdatedAt is the schema descriptor for updated_at field.
	restaurantlocationDescUpdatedAt := restaurantlocationMixinFields1[1].Descriptor()
	// restaurantlocation.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	restaurantlocation.DefaultUpdatedAt = restaurantlocationDescUpdatedAt.Default.(func() time.Time)
	// restaurantlocation.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	restaurantlocation.UpdateDefaultUpdatedAt = restaurantlocationDescUpdatedAt.UpdateDefault.(func() time.Time)
	// restaurantlocationDescStoreNo is the schema descriptor for store_no field.
	restaurantlocationDescStoreNo := restaurantlocationFields[0].Descriptor()
	// restaurantlocation.StoreNoValidator is a validator for the "store_no" field. It is called by the builders before save.
	restaurantlocation.StoreNoValidator = func() func(string) error {
		validators := restaurantlocationDescStoreNo.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(store_no string) error {
			for _, fn := range fns {
				if err := fn(store_no); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// restaurantlocationDescChainNo is the schema descriptor for chain_no field.
	restaurantlocationDescChainNo := restaurantlocationFields[1].Descriptor()
	// restaurantlocation.ChainNoValidator is a validator for the "chain_no" field. It is called by the builders before save.
	restaurantlocation.ChainNoValidator = restaurantlocationDescChainNo.Validators[0].(func(string) error)
	// restaurantlocationDescChain is the schema descriptor for chain field.
	restaurantlocationDescChain := restaurantlocationFields[2].Descriptor()
	// restaurantlocation.ChainValidator is a validator for the "chain" field. It is called by the builders before save.
	restaurantlocation.ChainValidator = restaurantlocationDescChain.Validators[0].(func(string) error)
	// restaurantlocationDescGeoaddress is the schema descriptor for geoaddress field.
	restaurantlocationDescGeoaddress := restaurantlocationFields[3].Descriptor()
	// restaurantlocation.GeoaddressValidator is a validator for the "geoaddress" field. It is called by the builders before save.
	restaurantlocation.GeoaddressValidator = restaurantlocationDescGeoaddress.Validators[0].(func(string) error)
	// restaurantlocationDescGeocity is the schema descriptor for geocity field.
	restaurantlocationDescGeocity := restaurantlocationFields[4].Descriptor()
	// restaurantlocation.GeocityValidator is a validator for the "geocity" field. It is called by the builders before save.
	restaurantlocation.GeocityValidator = restaurantlocationDescGeocity.Validators[0].(func(string) error)
	// restaurantlocationDescGeostate is the schema descriptor for geostate field.
	restaurantlocationDescGeostate := restaurantlocationFields[5].Descriptor()
	// restaurantlocation.GeostateValidator is a validator for the "geostate" field. It is called by the builders before save.
	restaurantlocation.GeostateValidator = restaurantlocationDescGeostate.Validators[0].(func(string) error)
	// restaurantlocationDescGeozip is the schema descriptor for geozip field.
	restaurantlocationDescGeozip := restaurantlocationFields[6].Descriptor()
	// restaurantlocation.GeozipValidator is a validator for the "geozip" field. It is called by the builders before save.
	restaurantlocation.GeozipValidator = restaurantlocationDescGeozip.Validators[0].(func(string) error)
	// restaurantlocationDescCounty is the schema descriptor for county field.
	restaurantlocationDescCounty := restaurantlocationFields[7].Descriptor()
	// restaurantlocation.CountyValidator is a validator for the "county" field. It is called by the builders before save.
	restaurantlocation.CountyValidator = restaurantlocationDescCounty.Validators[0].(func(string) error)
	// restaurantlocationDescDmaMarket is the schema descriptor for dma_market field.
	restaurantlocationDescDmaMarket := restaurantlocationFields[8].Descriptor()
	// restaurantlocation.DmaMarketValidator is a validator for the "dma_market" field. It is called by the builders before save.
	restaurantlocation.DmaMarketValidator = restaurantlocationDescDmaMarket.Validators[0].(func(string) error)
	// restaurantlocationDescSegment is the schema descriptor for segment field.
	restaurantlocationDescSegment := restaurantlocationFields[9].Descriptor()
	// restaurantlocation.SegmentValidator is a validator for the "segment" field. It is called by the builders before save.
	restaurantlocation.SegmentValidator = restaurantlocationDescSegment.Validators[0].(func(string) error)
	// restaurantlocationDescSubsegment is the schema descriptor for subsegment field.
	restaurantlocationDescSubsegment := restaurantlocationFields[10].Descriptor()
	// restaurantlocation.SubsegmentValidator is a validator for the "subsegment" field. It is called by the builders before save.
	restaurantlocation.SubsegmentValidator = restaurantlocationDescSubsegment.Validators[0].(func(string) error)
	// restaurantlocationDescCategory is the schema descriptor for category field.
	restaurantlocationDescCategory := restaurantlocationFields[11].Descriptor()
	// restaurantlocation.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	restaurantlocation.CategoryValidator = restaurantlocationDescCategory.Validators[0].(func(string) error)
	// restaurantlocationDescCoFr is the schema descriptor for co_fr field.
	restaurantlocationDescCoFr := restaurantlocationFields[15].Descriptor()
	// restaurantlocation.CoFrValidator is a validator for the "co_fr" field. It is called by the builders before save.
	restaurantlocation.CoFrValidator = restaurantlocationDescCoFr.Validators[0].(func(string) error)
	// restaurantlocationDescID is the schema descriptor for id field.
	restaurantlocationDescID := restaurantlocationMixinFields0[0].Descriptor()
	// restaurantlocation.DefaultID holds the default value on creation for the id field.
	restaurantlocation.DefaultID = restaurantlocationDescID.Default.(func() uuid.UUID)
	restauranttrendMixin := schema.RestaurantTrend{}.Mixin()
	restauranttrendMixinFields0 := restauranttrendMixin[0].Fields()
	_ = restauranttrendMixinFields0
	restauranttrendMixinFields1 := restauranttrendMixin[1].Fields()
	_ = restauranttrendMixinFields1
	restauranttrendFields := schema.RestaurantTrend{}.Fields()
	_ = restauranttrendFields
	// restauranttrendDescCreatedAt is the schema descriptor for created_at field.
	restauranttrendDescCreatedAt := restauranttrendMixinFields1[0].Descriptor()
	// restauranttrend.DefaultCreatedAt holds the default value on creation for the created_at field.
	restauranttrend.DefaultCreatedAt = restauranttrendDescCreatedAt.Default.(func() time.Time)
	// restauranttrendDescUpdatedAt is the schema descriptor for updated_at field.
	restauranttrendDescUpdatedAt := restauranttrendMixinFields1[1].Descriptor()
	// restauranttrend.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	restauranttrend.DefaultUpdatedAt = restauranttrendDescUpdatedAt.Default.(func() time.Time)
	// restauranttrend.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	restauranttrend.UpdateDefaultUpdatedAt = restauranttrendDescUpdatedAt.UpdateDefault.(func() time.Time)
	// restauranttrendDescCurrNatlGrade is the schema descriptor for curr_natl_grade field.
	restauranttrendDescCurrNatlGrade := restauranttrendFields[2].Descriptor()
	// restauranttrend.CurrNatlGradeValidator is a validator for the "curr_natl_grade" field. It is called by the builders before save.
	restauranttrend.CurrNatlGradeValidator = restauranttrendDescCurrNatlGrade.Validators[0].(func(string) error)
	// restauranttrendDescCurrMktGrade is the schema descriptor for curr_mkt_grade field.
	restauranttrendDescCurrMktGrade := restauranttrendFields[5].Descriptor()
	// restauranttrend.CurrMktGradeValidator is a validator for the "curr_mkt_grade" field. It is called by the builders before save.
	restauranttrend.CurrMktGradeValidator = restauranttrendDescCurrMktGrade.Validators[0].(func(string) error)
	// restauranttrendDescPastNatlGrade is the schema descriptor for past_natl_grade field.
	restauranttrendDescPastNatlGrade := restauranttrendFields[7].Descriptor()
	// restauranttrend.PastNatlGradeValidator is a validator for the "past_natl_grade" field. It is called by the builders before save.
	restauranttrend.PastNatlGradeValidator = restauranttrendDescPastNatlGrade.Validators[0].(func(string) error)
	// restauranttrendDescPastMktGrade is the schema descriptor for past_mkt_grade field.
	restauranttrendDescPastMktGrade := restauranttrendFields[10].Descriptor()
	// restauranttrend.PastMktGradeValidator is a validator for the "past_mkt_grade" field. It is called by the builders before save.
	restauranttrend.PastMktGradeValidator = restauranttrendDescPastMktGrade.Validators[0].(func(string) error)
	// restauranttrendDescID is the schema descriptor for id field.
	restauranttrendDescID := restauranttrendMixinFields0[0].Descriptor()
	// restauranttrend.DefaultID holds the default value on creation for the id field.
	restauranttrend.DefaultID = restauranttrendDescID.Default.(func() uuid.UUID)
	userMixin := schema.User{}.Mixin()
	userMixinFields0 := userMixin[0].Fields()
	_ = userMixinFields0
	userMixinFields1 := userMixin[1].Fields()
	_ = userMixinFields1
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userMixinFields1[0].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userMixinFields1[1].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescFirstName is the schema descriptor for first_name field.
	userDescFirstName := userFields[0].Descriptor()
	// user.FirstNameValidator is a validator for the "first_name" field. It is called by the builders before save.
	user.FirstNameValidator = userDescFirstName.Validators[0].(func(string) error)
	// userDescLastName is the schema descriptor for last_name field.
	userDescLastName := userFields[1].Descriptor()
	// user.LastNameValidator is a validator for the "last_name" field. It is called by the builders before save.
	user.LastNameValidator = userDescLastName.Validators[0].(func(string) error)
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[2].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = func() func(string) error {
		validators := userDescEmail.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(email string) error {
			for _, fn := range fns {
				if err := fn(email); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// userDescPhone is the schema descriptor for phone field.
	userDescPhone := userFields[3].Descriptor()
	// user.PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	user.PhoneValidator = userDescPhone.Validators[0].(func(string) error)
	// userDescMustChangePassword is the schema descriptor for must_change_password field.
	userDescMustChangePassword := userFields[5].Descriptor()
	// user.DefaultMustChangePassword holds the default value on creation for the must_change_password field.
	user.DefaultMustChangePassword = userDescMustChangePassword.Default.(bool)
	// userDescFailedLoginAttempts is the schema descriptor for failed_login_attempts field.
	userDescFailedLoginAttempts := userFields[9].Descriptor()
	// user.DefaultFailedLoginAttempts holds the default value on creation for the failed_login_attempts field.
	user.DefaultFailedLoginAttempts = userDescFailedLoginAttempts.Default.(int)
	// user.FailedLoginAttemptsValidator is a validator for the "failed_login_attempts" field. It is called by the builders before save.
	user.FailedLoginAttemptsValidator = userDescFailedLoginAttempts.Validators[0].(func(int) error)
	// userDescID is the schema descriptor for id field.
	userDescID := userMixinFields0[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
	usersessionMixin := schema.UserSession{}.Mixin()
	usersessionMixinFields0 := usersessionMixin[0].Fields()
	_ = usersessionMixinFields0
	usersessionMixinFields1 := usersessionMixin[1].Fields()
	_ = usersessionMixinFields1
	usersessionFields := schema.UserSession{}.Fields()
	_ = usersessionFields
	// usersessionDescCreatedAt is the schema descriptor for created_at field.
	usersessionDescCreatedAt := usersessionMixinFields1[0].Descriptor()
	// usersession.DefaultCreatedAt holds the default value on creation for the created_at field.
	usersession.DefaultCreatedAt = usersessionDescCreatedAt.Default.(func() time.Time)
	// usersessionDescUpdatedAt is the schema descriptor for updated_at field.
	usersessionDescUpdatedAt := usersessionMixinFields1[1].Descriptor()
	// usersession.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	usersession.DefaultUpdatedAt = usersessionDescUpdatedAt.Default.(func() time.Time)
	// usersession.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	usersession.UpdateDefaultUpdatedAt = usersessionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// usersessionDescSessionID is the schema descriptor for session_id field.
	usersessionDescSessionID := usersessionFields[1].Descriptor()
	// usersession.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	usersession.SessionIDValidator = func() func(string) error {
		validators := usersessionDescSessionID.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(session_id string) error {
			for _, fn := range fns {
				if err := fn(session_id); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// usersessionDescRefreshTokenHash is the schema descriptor for refresh_token_hash field.
	usersessionDescRefreshTokenHash := usersessionFields[2].Descriptor()
	// usersession.RefreshTokenHashValidator is a validator for the "refresh_token_hash" field. It is called by the builders before save.
	usersession.RefreshTokenHashValidator = usersessionDescRefreshTokenHash.Validators[0].(func(string) error)
	// usersessionDescIPAddress is the schema descriptor for ip_address field.
	usersessionDescIPAddress := usersessionFields[4].Descriptor()
	// usersession.IPAddressValidator is a validator for the "ip_address" field. It is called by the builders before save.
	usersession.IPAddressValidator = usersessionDescIPAddress.Validators[0].(func(string) error)
	// usersessionDescID is the schema descriptor for id field.
	usersessionDescID := usersessionMixinFields0[0].Descriptor()
	// usersession.DefaultID holds the default value on creation for the id field.
	usersession.DefaultID = usersessionDescID.Default.(func() uuid.UUID)
}
