package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// StoredSize returns the length in bytes of the value stored by key, or 0
// if there is no such entry.
func StoredSize(ctx storage.Context, key interface{}) int {
	data := storage.Get(ctx, key)
	if data != nil {
		return len(data.([]byte))
	}

	return 0
}
