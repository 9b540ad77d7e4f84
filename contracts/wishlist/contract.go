package wishlist

import (
	"github.com/Sankore2-0-Academy/c4-wishlist-contract/common"
	"github.com/Sankore2-0-Academy/c4-wishlist-contract/contracts/wishlist/wishlistconst"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/gas"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

type (
	// Vehicle describes a single wishlist entry. Entries have no identity of
	// their own, they are addressed by position within the owner's wishlist.
	Vehicle struct {
		Image   string
		Name    string
		Model   string
		Mileage int
		Year    string
		Price   int
	}
)

const (
	wishlistPrefix = 'w'

	usedBytesKey = "totalUsedBytes"
)

var (
	configPrefix = []byte("config")
)

// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	ctx := storage.GetContext()

	if isUpdate {
		args := data.([]any)
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	price := wishlistconst.DefaultStoragePrice
	if data != nil {
		args := data.([]any)
		if len(args) > 0 {
			price = args[0].(int)
		}
	}

	if price < 0 {
		panic("negative storage price")
	}

	setConfig(ctx, wishlistconst.StoragePriceKey, price)

	runtime.Log("wishlist contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by committee.
func Update(script []byte, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic("only committee can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, script, manifest, common.AppendVersion(data))
	runtime.Log("wishlist contract updated")
}

// AddVehicle appends a new vehicle to the owner's wishlist, creating the
// wishlist on first use. It can be invoked only by the owner.
//
// Payment is the amount of GAS (in its smallest unit) the owner attaches to
// cover the storage cost of the new entry; it is transferred from the owner
// account within the call. The storage cost is the growth of contract storage
// priced per byte with the StoragePricePerByte config value, and anything
// attached above it is immediately transferred back. The method panics if
// payment does not cover the cost, leaving the wishlist untouched.
func AddVehicle(owner interop.Hash160, image, name, model string, mileage int, year string, price, payment int) {
	if len(owner) != interop.Hash160Len {
		panic("incorrect owner script hash length")
	}
	if payment < 0 {
		panic("negative payment")
	}

	common.CheckOwnerWitness(owner)

	ctx := storage.GetContext()
	initialUsage := totalUsage(ctx)

	key := wishlistKey(owner)
	list := getWishlist(ctx, key)
	list = append(list, Vehicle{
		Image:   image,
		Name:    name,
		Model:   model,
		Mileage: mileage,
		Year:    year,
		Price:   price,
	})

	// Stage the write and settle against the projected usage before anything
	// is persisted.
	data := std.Serialize(list)
	projectedUsage := initialUsage - common.StoredSize(ctx, key) + len(data)

	excess := chargeStorageGrowth(initialUsage, projectedUsage, storagePrice(ctx), payment)

	contractAddr := runtime.GetExecutingScriptHash()
	if payment > 0 {
		if !gas.Transfer(owner, contractAddr, payment, nil) {
			panic("failed to transfer attached payment")
		}
	}
	if excess > 0 {
		gas.Transfer(contractAddr, owner, excess, nil)
	}

	putWishlist(ctx, key, data, projectedUsage)

	runtime.Log("vehicle added to wishlist")
	runtime.Notify("VehicleAdded", owner, len(list)-1)
}

// ListVehicles returns up to limit vehicles of the owner's wishlist starting
// at the start offset, in the order they were added. An owner without a
// wishlist and a start offset past the end both produce an empty list, never
// an error. No iteration state is kept between calls.
func ListVehicles(owner interop.Hash160, start, limit int) []Vehicle {
	if len(owner) != interop.Hash160Len {
		panic("incorrect owner script hash length")
	}
	if start < 0 || limit < 0 {
		panic("invalid pagination arguments")
	}

	ctx := storage.GetReadOnlyContext()
	list := getWishlist(ctx, wishlistKey(owner))

	page := []Vehicle{}
	for i := start; i < len(list) && len(page) < limit; i++ {
		page = append(page, list[i])
	}

	return page
}

// RemoveVehicle removes the vehicle at the given index from the owner's
// wishlist and returns it, or Null if the owner has no wishlist at all. It
// can be invoked only by the owner.
//
// Every vehicle after the removed one shifts down by one position. The
// storage released by the removal is priced the same way addVehicle prices
// growth and refunded to the owner in GAS. An emptied wishlist keeps its
// owner entry.
//
// The method panics with ErrInvalidIndex if index is outside of the
// wishlist, including when the wishlist is empty.
func RemoveVehicle(owner interop.Hash160, index int) any {
	if len(owner) != interop.Hash160Len {
		panic("incorrect owner script hash length")
	}

	common.CheckOwnerWitness(owner)

	ctx := storage.GetContext()
	key := wishlistKey(owner)

	data := storage.Get(ctx, key)
	if data == nil {
		runtime.Log("owner has no wishlist")
		return nil
	}

	list := std.Deserialize(data.([]byte)).([]Vehicle)
	if index < 0 || index >= len(list) {
		panic(wishlistconst.ErrInvalidIndex)
	}

	removed := list[index]
	shortened := []Vehicle{}
	for i := 0; i < len(list); i++ {
		if i != index {
			shortened = append(shortened, list[i])
		}
	}

	initialUsage := totalUsage(ctx)
	newData := std.Serialize(shortened)
	projectedUsage := initialUsage - len(data.([]byte)) + len(newData)

	refund := refundStorageRelease(initialUsage, projectedUsage, storagePrice(ctx))

	putWishlist(ctx, key, newData, projectedUsage)

	if refund > 0 {
		// Fire-and-forget: a failed refund must not undo the removal.
		gas.Transfer(runtime.GetExecutingScriptHash(), owner, refund, nil)
	}

	runtime.Log("vehicle removed from wishlist")
	runtime.Notify("VehicleRemoved", owner, index)

	return removed
}

// VehicleCount returns the number of vehicles in the owner's wishlist, 0 for
// an owner without one.
func VehicleCount(owner interop.Hash160) int {
	if len(owner) != interop.Hash160Len {
		panic("incorrect owner script hash length")
	}

	ctx := storage.GetReadOnlyContext()
	return len(getWishlist(ctx, wishlistKey(owner)))
}

// IterateOwners returns an iterator over the script hashes of every owner
// that has a wishlist entry, including emptied ones.
func IterateOwners() iterator.Iterator {
	ctx := storage.GetReadOnlyContext()
	return storage.Find(ctx, []byte{wishlistPrefix}, storage.KeysOnly|storage.RemovePrefix)
}

// StorageUsage returns the total number of bytes of wishlist data the
// contract currently stores. This counter is the basis of storage cost
// settlement: addVehicle charges for its growth, removeVehicle refunds its
// release.
func StorageUsage() int {
	ctx := storage.GetReadOnlyContext()
	return totalUsage(ctx)
}

// Config returns the configuration value of the specified key.
func Config(key []byte) any {
	ctx := storage.GetReadOnlyContext()
	return getConfig(ctx, key)
}

// SetConfig sets the configuration value of the specified key. It can be
// invoked only by committee.
func SetConfig(key []byte, val int) {
	if !common.HasUpdateAccess() {
		panic("only committee can set config")
	}

	ctx := storage.GetContext()
	setConfig(ctx, key, val)

	runtime.Log("config has been updated")
}

// OnNEP17Payment is a callback the native GAS contract invokes when the
// wishlist contract receives funds, which happens when an owner's attached
// payment is transferred in. Tokens other than GAS are not accepted.
func OnNEP17Payment(from interop.Hash160, amount int, data any) {
	caller := runtime.GetCallingScriptHash()
	if !caller.Equals(gas.Hash) {
		panic("only GAS is accepted")
	}
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

func wishlistKey(owner interop.Hash160) []byte {
	return append([]byte{wishlistPrefix}, owner...)
}

func getWishlist(ctx storage.Context, key []byte) []Vehicle {
	data := storage.Get(ctx, key)
	if data != nil {
		return std.Deserialize(data.([]byte)).([]Vehicle)
	}

	return []Vehicle{}
}

// putWishlist commits a staged wishlist blob together with the usage counter
// it was settled against.
func putWishlist(ctx storage.Context, key, data []byte, usage int) {
	storage.Put(ctx, key, data)
	storage.Put(ctx, usedBytesKey, usage)
}

func totalUsage(ctx storage.Context) int {
	used := storage.Get(ctx, usedBytesKey)
	if used != nil {
		return used.(int)
	}

	return 0
}

func storagePrice(ctx storage.Context) int {
	return getConfig(ctx, wishlistconst.StoragePriceKey).(int)
}

func getConfig(ctx storage.Context, key any) any {
	postfix := key.([]byte)
	storageKey := append(configPrefix, postfix...)

	return storage.Get(ctx, storageKey)
}

func setConfig(ctx storage.Context, key, val any) {
	postfix := key.([]byte)
	storageKey := append(configPrefix, postfix...)

	storage.Put(ctx, storageKey, val)
}
