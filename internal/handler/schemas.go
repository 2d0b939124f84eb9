package handler

import "github.com/orderkit/orderkit/internal/schema"

// Request schemas, declared once at startup and read-only afterwards.
// Item, Address, and Customer compose into Order.
var (
	// ItemSchema describes one catalog item. Description is optional with
	// no default, so it is simply absent from validated output when the
	// client omits it.
	ItemSchema = &schema.RecordSchema{
		Name: "Item",
		Fields: []schema.FieldSpec{
			{Name: "name", Type: schema.String},
			{Name: "description", Type: schema.OptionalOf(schema.String)},
			{Name: "price", Type: schema.Float},
		},
	}

	// OrderItemSchema is an item as it appears inside an order: the same
	// shape plus a quantity, defaulting to one.
	OrderItemSchema = &schema.RecordSchema{
		Name: "OrderItem",
		Fields: []schema.FieldSpec{
			{Name: "name", Type: schema.String},
			{Name: "description", Type: schema.OptionalOf(schema.String)},
			{Name: "price", Type: schema.Float},
			{Name: "quantity", Type: schema.OptionalOf(schema.Int), Default: int64(1)},
		},
	}

	// AddressSchema describes a shipping address.
	AddressSchema = &schema.RecordSchema{
		Name: "Address",
		Fields: []schema.FieldSpec{
			{Name: "street", Type: schema.String},
			{Name: "city", Type: schema.String},
			{Name: "state", Type: schema.OptionalOf(schema.String)},
			{Name: "postal_code", Type: schema.String},
			{Name: "country", Type: schema.String},
		},
	}

	// CustomerSchema describes the ordering customer. Email must be a
	// syntactically valid address; phone is optional.
	CustomerSchema = &schema.RecordSchema{
		Name: "Customer",
		Fields: []schema.FieldSpec{
			{Name: "name", Type: schema.String},
			{Name: "email", Type: schema.String, Format: "email"},
			{Name: "phone", Type: schema.OptionalOf(schema.String)},
		},
	}

	// OrderSchema is the full order intake payload.
	OrderSchema = &schema.RecordSchema{
		Name: "Order",
		Fields: []schema.FieldSpec{
			{Name: "order_id", Type: schema.Int},
			{Name: "customer", Type: schema.RecordOf(CustomerSchema)},
			{Name: "shipping_address", Type: schema.RecordOf(AddressSchema)},
			{Name: "items", Type: schema.ListOf(schema.RecordOf(OrderItemSchema))},
			{Name: "total_price", Type: schema.Float},
		},
	}
)

func init() {
	// Catch format rule typos at startup instead of at request time.
	schema.MustFormats(ItemSchema)
	schema.MustFormats(OrderSchema)
}
