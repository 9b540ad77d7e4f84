package wishlist

import (
	"math"
	"testing"

	"github.com/Sankore2-0-Academy/c4-wishlist-contract/contracts/wishlist/wishlistconst"
	"github.com/stretchr/testify/require"
)

func TestChargeStorageGrowth(t *testing.T) {
	const (
		price   = 10_000
		initial = 1_000
		current = 1_142
		cost    = price * (current - initial)
	)

	t.Run("exact payment", func(t *testing.T) {
		require.Equal(t, 0, chargeStorageGrowth(initial, current, price, cost))
	})

	t.Run("excess is returned", func(t *testing.T) {
		require.Equal(t, 1, chargeStorageGrowth(initial, current, price, cost+1))
		require.Equal(t, 5*cost, chargeStorageGrowth(initial, current, price, 6*cost))
	})

	t.Run("insufficient payment", func(t *testing.T) {
		require.PanicsWithValue(t, wishlistconst.ErrInsufficientFunds, func() {
			chargeStorageGrowth(initial, current, price, cost-1)
		})
		require.PanicsWithValue(t, wishlistconst.ErrInsufficientFunds, func() {
			chargeStorageGrowth(initial, current, price, 0)
		})
	})

	t.Run("zero growth is free", func(t *testing.T) {
		require.Equal(t, 0, chargeStorageGrowth(initial, initial, price, 0))
		require.Equal(t, 7, chargeStorageGrowth(initial, initial, price, 7))
	})

	t.Run("zero price", func(t *testing.T) {
		require.Equal(t, 0, chargeStorageGrowth(initial, current, 0, 0))
	})

	t.Run("usage moved the wrong direction", func(t *testing.T) {
		require.PanicsWithValue(t, wishlistconst.ErrStorageShrunk, func() {
			chargeStorageGrowth(current, initial, price, cost)
		})
	})

	t.Run("cost overflow", func(t *testing.T) {
		require.PanicsWithValue(t, wishlistconst.ErrCostOverflow, func() {
			chargeStorageGrowth(0, 2, math.MaxInt, math.MaxInt)
		})
	})
}

func TestRefundStorageRelease(t *testing.T) {
	const (
		price   = 10_000
		initial = 1_142
		current = 1_000
	)

	t.Run("whole release is refunded", func(t *testing.T) {
		require.Equal(t, price*(initial-current), refundStorageRelease(initial, current, price))
	})

	t.Run("zero release", func(t *testing.T) {
		require.Equal(t, 0, refundStorageRelease(initial, initial, price))
	})

	t.Run("zero price", func(t *testing.T) {
		require.Equal(t, 0, refundStorageRelease(initial, current, 0))
	})

	t.Run("usage moved the wrong direction", func(t *testing.T) {
		require.PanicsWithValue(t, wishlistconst.ErrStorageGrown, func() {
			refundStorageRelease(current, initial, price)
		})
	})

	t.Run("refund overflow", func(t *testing.T) {
		require.PanicsWithValue(t, wishlistconst.ErrCostOverflow, func() {
			refundStorageRelease(2, 0, math.MaxInt)
		})
	})
}

func TestStorageCost(t *testing.T) {
	require.Equal(t, 0, storageCost(0, 0))
	require.Equal(t, 0, storageCost(10_000, 0))
	require.Equal(t, 30_000, storageCost(10_000, 3))
	require.Equal(t, math.MaxInt, storageCost(math.MaxInt, 1))
}
