package wishlistconst

const (
	// StoragePriceKey is a key in the contract config which contains the GAS
	// price of one byte of wishlist storage.
	StoragePriceKey = "StoragePricePerByte"

	// DefaultStoragePrice is the storage byte price used when the deploying
	// party does not provide one. The value is in the smallest GAS unit.
	DefaultStoragePrice = 10_000

	// ErrInvalidIndex is returned on attempt to remove a vehicle by an index
	// outside of the wishlist.
	ErrInvalidIndex = "invalid vehicle index"

	// ErrInsufficientFunds is returned when the payment attached to addVehicle
	// does not cover the storage cost of the new entry.
	ErrInsufficientFunds = "insufficient funds to cover storage cost"

	// ErrCostOverflow is returned when the storage cost calculation overflows.
	ErrCostOverflow = "storage cost calculation overflow"

	// ErrStorageShrunk is returned when storage usage decreases on the charge
	// path, which only prices growth.
	ErrStorageShrunk = "storage usage decreased on growth path"

	// ErrStorageGrown is returned when storage usage increases on the refund
	// path, which only prices released space.
	ErrStorageGrown = "storage usage increased on removal path"
)
