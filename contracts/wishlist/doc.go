/*
Package wishlist implements Wishlist contract which is deployed to Neo chain.

Each owner account keeps an ordered list of vehicles it wishes for. The
contract persists these lists and makes their storage footprint an economic
matter: addVehicle must come with a GAS payment covering the growth of
contract storage its entry causes (priced per byte, excess returned), while
removeVehicle pays the price of the released bytes back to the owner.
Wishlists are created lazily on the first addVehicle call and stay registered
once created, even when emptied.

# Contract notifications

VehicleAdded notification. This notification is produced when an owner adds
a new vehicle to its wishlist. Carries the owner script hash and the index
the vehicle was stored at.

	VehicleAdded
	  - name: owner
	    type: Hash160
	  - name: index
	    type: Integer

VehicleRemoved notification. This notification is produced when an owner
removes a vehicle from its wishlist. Carries the owner script hash and the
index the vehicle was removed from; every vehicle behind it shifts down by
one position.

	VehicleRemoved
	  - name: owner
	    type: Hash160
	  - name: index
	    type: Integer
*/
package wishlist

/*
Contract storage model.

# Summary
Key-value storage format:
 - 'w' + [20]byte -> std.Serialize([]Vehicle)
   per-owner wishlist, keyed by owner script hash
 - 'totalUsedBytes' -> int
   total length of all stored wishlist blobs, the settlement counter
 - 'config' + []byte -> []byte
   configuration values, notably the storage byte price under
   'StoragePricePerByte'

# Wishlists
Wishlists are stored as one serialized blob per owner. Vehicle identity is
positional, so blobs are rewritten wholesale on every mutation and the
usage counter is updated in the same call.
*/
