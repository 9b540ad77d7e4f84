package main

import (
	"context"
	"fmt"
	"time"

	"github.com/Sankore2-0-Academy/c4-wishlist-contract/rpc/wishlist"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/invoker"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
)

// number of owner keys requested per iterator traversal.
const ownersBatch = 64

// wrapper over the Neo RPC client providing read-only access to a deployed
// Wishlist contract.
type remoteBlockchain struct {
	rpc     *rpcclient.Client
	invoker *invoker.Invoker
}

// newRemoteBlockChain dials Neo RPC server and returns remoteBlockchain based
// on the opened connection. Dialing and all requests are done within a 15s
// timeout.
func newRemoteBlockChain(blockChainRPCEndpoint string) (*remoteBlockchain, error) {
	c, err := rpcclient.New(context.Background(), blockChainRPCEndpoint, rpcclient.Options{
		DialTimeout:    15 * time.Second,
		RequestTimeout: 15 * time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("RPC client dial: %w", err)
	}

	return &remoteBlockchain{
		rpc:     c,
		invoker: invoker.New(c, nil),
	}, nil
}

func (x *remoteBlockchain) close() {
	x.rpc.Close()
}

// listOwners collects script hashes of all accounts having a wishlist in the
// contract. It traverses the server-side iterator session when the server
// supports ones and falls back to in-VM iterator expansion otherwise.
func (x *remoteBlockchain) listOwners(reader *wishlist.ContractReader) ([]util.Uint160, error) {
	sessionID, iter, err := reader.IterateOwners()
	if err != nil {
		items, err := reader.IterateOwnersExpanded(ownersBatch)
		if err != nil {
			return nil, fmt.Errorf("expand owners iterator: %w", err)
		}
		return ownersFromItems(items)
	}

	defer func() {
		_ = x.invoker.TerminateSession(sessionID)
	}()

	var owners []util.Uint160

	for {
		items, err := x.invoker.TraverseIterator(sessionID, &iter, ownersBatch)
		if err != nil {
			return nil, fmt.Errorf("traverse owners iterator: %w", err)
		}
		if len(items) == 0 {
			return owners, nil
		}

		page, err := ownersFromItems(items)
		if err != nil {
			return nil, err
		}

		owners = append(owners, page...)
	}
}

func ownersFromItems(items []stackitem.Item) ([]util.Uint160, error) {
	res := make([]util.Uint160, len(items))

	for i := range items {
		b, err := items[i].TryBytes()
		if err != nil {
			return nil, fmt.Errorf("owner #%d: %w", i, err)
		}

		res[i], err = util.Uint160DecodeBytesBE(b)
		if err != nil {
			return nil, fmt.Errorf("owner #%d: %w", i, err)
		}
	}

	return res, nil
}
