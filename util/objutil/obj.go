// Object and map helpers.
package objutil

import (
	"github.com/igen-org/igen-go/util/hash"
	"github.com/igen-org/igen-go/util/utillog"
	"github.com/jinzhu/copier"
)

// Copy of m keeping only the listed keys.
func Pick[K comparable, V any](m map[K]V, keys ...K) map[K]V {
	ks := hash.NewSet(keys...)
	out := make(map[K]V, len(keys))
	for k, v := range m {
		if ks.Has(k) {
			out[k] = v
		}
	}
	return out
}

// Copy of m without the listed keys.
func Omit[K comparable, V any](m map[K]V, keys ...K) map[K]V {
	ks := hash.NewSet(keys...)
	out := make(map[K]V, len(m))
	for k, v := range m {
		if !ks.Has(k) {
			out[k] = v
		}
	}
	return out
}

// Merge maps left to right into a new map, later maps win on key conflicts.
func Merge[K comparable, V any](ms ...map[K]V) map[K]V {
	out := map[K]V{}
	for _, m := range ms {
		for k, v := range m {
			out[k] = v
		}
	}
	return out
}

// Copy matching fields from one struct to another.
func Copy(from any, toPtr any) {
	if err := copier.Copy(toPtr, from); err != nil {
		utillog.ErrorLog("Failed to copy value, %v", err)
	}
}

// Copy matching fields from one struct into a new V.
func CopyNew[V any](from any) V {
	var v V
	Copy(from, &v)
	return v
}
