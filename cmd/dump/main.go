package main

import (
	"flag"
	"fmt"
	"log"
	"math/big"

	"github.com/Sankore2-0-Academy/c4-wishlist-contract/rpc/wishlist"
	"github.com/mr-tron/base58"
	"github.com/nspcc-dev/neo-go/pkg/util"
)

func main() {
	neoRPCEndpoint := flag.String("rpc", "", "Network address of the Neo RPC server")
	contractHash := flag.String("contract", "", "LE script hash of the deployed Wishlist contract")
	pageSize := flag.Int("page", 32, "Number of vehicles requested per listVehicles call")

	flag.Parse()

	switch {
	case *neoRPCEndpoint == "":
		log.Fatal("missing Neo RPC endpoint")
	case *contractHash == "":
		log.Fatal("missing Wishlist contract hash")
	case *pageSize <= 0:
		log.Fatal("page size must be positive")
	}

	h, err := util.Uint160DecodeStringLE(*contractHash)
	if err != nil {
		log.Fatal(fmt.Errorf("decode contract hash: %w", err))
	}

	err = _dump(*neoRPCEndpoint, h, *pageSize)
	if err != nil {
		log.Fatal(err)
	}
}

func _dump(neoBlockchainRPCEndpoint string, contract util.Uint160, pageSize int) error {
	b, err := newRemoteBlockChain(neoBlockchainRPCEndpoint)
	if err != nil {
		return fmt.Errorf("init remote blockchain: %w", err)
	}

	defer b.close()

	reader := wishlist.NewReader(b.invoker, contract)

	version, err := reader.Version()
	if err != nil {
		return fmt.Errorf("get contract version: %w", err)
	}

	usage, err := reader.StorageUsage()
	if err != nil {
		return fmt.Errorf("get storage usage: %w", err)
	}

	log.Printf("Wishlist contract %s, version %s, %s bytes of metered storage\n",
		contract.StringLE(), version, usage)

	owners, err := b.listOwners(reader)
	if err != nil {
		return fmt.Errorf("list wishlist owners: %w", err)
	}

	for _, owner := range owners {
		err = dumpOwner(reader, owner, pageSize)
		if err != nil {
			return fmt.Errorf("dump wishlist of '%s': %w", base58.Encode(owner.BytesBE()), err)
		}
	}

	log.Printf("Dumped wishlists of %d owner(s)\n", len(owners))

	return nil
}

func dumpOwner(reader *wishlist.ContractReader, owner util.Uint160, pageSize int) error {
	count, err := reader.VehicleCount(owner)
	if err != nil {
		return fmt.Errorf("get vehicle count: %w", err)
	}

	log.Printf("Owner %s (%s): %s vehicle(s)\n", base58.Encode(owner.BytesBE()), owner.StringLE(), count)

	for start := int64(0); ; start += int64(pageSize) {
		page, err := reader.ListVehicles(owner, big.NewInt(start), big.NewInt(int64(pageSize)))
		if err != nil {
			return fmt.Errorf("list vehicles from %d: %w", start, err)
		}

		for i, v := range page {
			log.Printf("  #%d: %s %s (%s), %s km, price %s\n",
				start+int64(i), v.Name, v.Model, v.Year, v.Mileage, v.Price)
		}

		if len(page) < pageSize {
			return nil
		}
	}
}
