// Package wishlist contains RPC wrappers for Wishlist contract.
package wishlist

import (
	"errors"
	"fmt"
	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"math/big"
	"unicode/utf8"
)

// WishlistVehicle is a contract-specific wishlist.Vehicle type used by its methods.
type WishlistVehicle struct {
	Image string
	Name string
	Model string
	Mileage *big.Int
	Year string
	Price *big.Int
}

// VehicleAddedEvent represents "VehicleAdded" event emitted by the contract.
type VehicleAddedEvent struct {
	Owner util.Uint160
	Index *big.Int
}

// VehicleRemovedEvent represents "VehicleRemoved" event emitted by the contract.
type VehicleRemovedEvent struct {
	Owner util.Uint160
	Index *big.Int
}

// Invoker is used by ContractReader to call various safe methods.
type Invoker interface {
	Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error)
	CallAndExpandIterator(contract util.Uint160, method string, maxItems int, params ...any) (*result.Invoke, error)
	TerminateSession(sessionID uuid.UUID) error
	TraverseIterator(sessionID uuid.UUID, iterator *result.Iterator, num int) ([]stackitem.Item, error)
}

// Actor is used by Contract to call state-changing methods.
type Actor interface {
	Invoker

	MakeCall(contract util.Uint160, method string, params ...any) (*transaction.Transaction, error)
	MakeRun(script []byte) (*transaction.Transaction, error)
	MakeUnsignedCall(contract util.Uint160, method string, attrs []transaction.Attribute, params ...any) (*transaction.Transaction, error)
	MakeUnsignedRun(script []byte, attrs []transaction.Attribute) (*transaction.Transaction, error)
	SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error)
	SendRun(script []byte) (util.Uint256, uint32, error)
}

// ContractReader implements safe contract methods.
type ContractReader struct {
	invoker Invoker
	hash util.Uint160
}

// Contract implements all contract methods.
type Contract struct {
	ContractReader
	actor Actor
	hash util.Uint160
}

// NewReader creates an instance of ContractReader using provided contract hash and the given Invoker.
func NewReader(invoker Invoker, hash util.Uint160) *ContractReader {
	return &ContractReader{invoker, hash}
}

// New creates an instance of Contract using provided contract hash and the given Actor.
func New(actor Actor, hash util.Uint160) *Contract {
	return &Contract{ContractReader{actor, hash}, actor, hash}
}

// Config invokes `config` method of contract.
func (c *ContractReader) Config(key []byte) (any, error) {
	return func (item stackitem.Item, err error) (any, error) {
		if err != nil {
			return nil, err
		}
		return item.Value(), error(nil)
	} (unwrap.Item(c.invoker.Call(c.hash, "config", key)))
}

// IterateOwners invokes `iterateOwners` method of contract.
func (c *ContractReader) IterateOwners() (uuid.UUID, result.Iterator, error) {
	return unwrap.SessionIterator(c.invoker.Call(c.hash, "iterateOwners"))
}

// IterateOwnersExpanded is similar to IterateOwners (uses the same contract
// method), but can be useful if the server used doesn't support sessions and
// doesn't expand iterators. It creates a script that will get the specified
// number of result items from the iterator right in the VM and return them to
// you. It's only limited by VM stack and GAS available for RPC invocations.
func (c *ContractReader) IterateOwnersExpanded(_numOfIteratorItems int) ([]stackitem.Item, error) {
	return unwrap.Array(c.invoker.CallAndExpandIterator(c.hash, "iterateOwners", _numOfIteratorItems))
}

// ListVehicles invokes `listVehicles` method of contract.
func (c *ContractReader) ListVehicles(owner util.Uint160, start *big.Int, limit *big.Int) ([]*WishlistVehicle, error) {
	return func (item stackitem.Item, err error) ([]*WishlistVehicle, error) {
		if err != nil {
			return nil, err
		}
		return func (item stackitem.Item) ([]*WishlistVehicle, error) {
			arr, ok := item.Value().([]stackitem.Item)
			if !ok {
				return nil, errors.New("not an array")
			}
			res := make([]*WishlistVehicle, len(arr))
			for i := range res {
				res[i], err = itemToWishlistVehicle(arr[i], nil)
				if err != nil {
					return nil, fmt.Errorf("item %d: %w", i, err)
				}
			}
			return res, nil
		} (item)
	} (unwrap.Item(c.invoker.Call(c.hash, "listVehicles", owner, start, limit)))
}

// StorageUsage invokes `storageUsage` method of contract.
func (c *ContractReader) StorageUsage() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "storageUsage"))
}

// VehicleCount invokes `vehicleCount` method of contract.
func (c *ContractReader) VehicleCount(owner util.Uint160) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "vehicleCount", owner))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// AddVehicle creates a transaction invoking `addVehicle` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) AddVehicle(owner util.Uint160, image string, name string, model string, mileage *big.Int, year string, price *big.Int, payment *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "addVehicle", owner, image, name, model, mileage, year, price, payment)
}

// AddVehicleTransaction creates a transaction invoking `addVehicle` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) AddVehicleTransaction(owner util.Uint160, image string, name string, model string, mileage *big.Int, year string, price *big.Int, payment *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "addVehicle", owner, image, name, model, mileage, year, price, payment)
}

// AddVehicleUnsigned creates a transaction invoking `addVehicle` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) AddVehicleUnsigned(owner util.Uint160, image string, name string, model string, mileage *big.Int, year string, price *big.Int, payment *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "addVehicle", nil, owner, image, name, model, mileage, year, price, payment)
}

// RemoveVehicle creates a transaction invoking `removeVehicle` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) RemoveVehicle(owner util.Uint160, index *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "removeVehicle", owner, index)
}

// RemoveVehicleTransaction creates a transaction invoking `removeVehicle` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RemoveVehicleTransaction(owner util.Uint160, index *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "removeVehicle", owner, index)
}

// RemoveVehicleUnsigned creates a transaction invoking `removeVehicle` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RemoveVehicleUnsigned(owner util.Uint160, index *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "removeVehicle", nil, owner, index)
}

// SetConfig creates a transaction invoking `setConfig` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetConfig(key []byte, val *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setConfig", key, val)
}

// SetConfigTransaction creates a transaction invoking `setConfig` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetConfigTransaction(key []byte, val *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setConfig", key, val)
}

// SetConfigUnsigned creates a transaction invoking `setConfig` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetConfigUnsigned(key []byte, val *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setConfig", nil, key, val)
}

// Update creates a transaction invoking `update` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Update(script []byte, manifest []byte, data any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "update", script, manifest, data)
}

// UpdateTransaction creates a transaction invoking `update` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateTransaction(script []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "update", script, manifest, data)
}

// UpdateUnsigned creates a transaction invoking `update` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateUnsigned(script []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "update", nil, script, manifest, data)
}

// itemToWishlistVehicle converts stack item into *WishlistVehicle.
func itemToWishlistVehicle(item stackitem.Item, err error) (*WishlistVehicle, error) {
	if err != nil {
		return nil, err
	}
	var res = new(WishlistVehicle)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of WishlistVehicle from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *WishlistVehicle) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 6 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.Image, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Image: %w", err)
	}

	index++
	res.Name, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Name: %w", err)
	}

	index++
	res.Model, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Model: %w", err)
	}

	index++
	res.Mileage, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Mileage: %w", err)
	}

	index++
	res.Year, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Year: %w", err)
	}

	index++
	res.Price, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Price: %w", err)
	}

	return nil
}

// VehicleAddedEventsFromApplicationLog retrieves a set of all emitted events
// with "VehicleAdded" name from the provided [result.ApplicationLog].
func VehicleAddedEventsFromApplicationLog(log *result.ApplicationLog) ([]*VehicleAddedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*VehicleAddedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "VehicleAdded" {
				continue
			}
			event := new(VehicleAddedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize VehicleAddedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to VehicleAddedEvent or
// returns an error if it's not possible to do to so.
func (e *VehicleAddedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Owner, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Owner: %w", err)
	}

	index++
	e.Index, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Index: %w", err)
	}

	return nil
}

// VehicleRemovedEventsFromApplicationLog retrieves a set of all emitted events
// with "VehicleRemoved" name from the provided [result.ApplicationLog].
func VehicleRemovedEventsFromApplicationLog(log *result.ApplicationLog) ([]*VehicleRemovedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*VehicleRemovedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "VehicleRemoved" {
				continue
			}
			event := new(VehicleRemovedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize VehicleRemovedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to VehicleRemovedEvent or
// returns an error if it's not possible to do to so.
func (e *VehicleRemovedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Owner, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Owner: %w", err)
	}

	index++
	e.Index, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Index: %w", err)
	}

	return nil
}
