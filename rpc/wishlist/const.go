package wishlist

import (
	"github.com/Sankore2-0-Academy/c4-wishlist-contract/contracts/wishlist/wishlistconst"
)

const (
	// StoragePriceKey is a key in contract config which contains the per-byte
	// storage price.
	StoragePriceKey = wishlistconst.StoragePriceKey

	// ErrInvalidIndex is returned on out-of-range vehicle index.
	ErrInvalidIndex = wishlistconst.ErrInvalidIndex

	// ErrInsufficientFunds is returned when the attached payment does not
	// cover the storage cost of the new entry.
	ErrInsufficientFunds = wishlistconst.ErrInsufficientFunds
)
