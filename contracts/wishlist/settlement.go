package wishlist

import (
	"github.com/Sankore2-0-Academy/c4-wishlist-contract/contracts/wishlist/wishlistconst"
)

// Settlement arithmetic is kept free of interop calls: usage counters, byte
// price and attached payment come in as explicit arguments, so the same code
// runs under the VM and in native unit tests.

// storageCost prices a non-negative storage delta. It panics with
// ErrCostOverflow if the multiplication wraps around.
func storageCost(pricePerByte, delta int) int {
	cost := pricePerByte * delta
	if delta != 0 && cost/delta != pricePerByte {
		panic(wishlistconst.ErrCostOverflow)
	}

	return cost
}

// chargeStorageGrowth validates that payment covers the cost of the storage
// grown between the two usage snapshots and returns the excess to send back
// to the payer. Usage moving in the wrong direction is a logic error, not a
// wraparound: the delta is computed in signed integers and a negative one
// panics with ErrStorageShrunk.
func chargeStorageGrowth(initialUsage, currentUsage, pricePerByte, payment int) int {
	used := currentUsage - initialUsage
	if used < 0 {
		panic(wishlistconst.ErrStorageShrunk)
	}

	cost := storageCost(pricePerByte, used)
	if payment < cost {
		panic(wishlistconst.ErrInsufficientFunds)
	}

	return payment - cost
}

// refundStorageRelease prices the storage released between the two usage
// snapshots. The whole amount is due back to the owner; there is no payment
// to check on the removal path. A delta in the growth direction panics with
// ErrStorageGrown.
func refundStorageRelease(initialUsage, currentUsage, pricePerByte int) int {
	released := initialUsage - currentUsage
	if released < 0 {
		panic(wishlistconst.ErrStorageGrown)
	}

	return storageCost(pricePerByte, released)
}
