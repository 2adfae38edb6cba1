package gotable

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/bdlm/log"
	"github.com/samber/lo"
)

// Order defines the sort direction applied to the dataset.
type Order string

const (
	OrderAsc  Order = "asc"
	OrderDesc Order = "desc"
)

func (o Order) Valid() bool {
	return o == OrderAsc || o == OrderDesc
}

// IsNormalizedOrder reports whether the order is valid, substituting OrderAsc
// when it is not. Coercion instead of failure is a contract of this package:
// UI consumers rely on sort input never raising.
func IsNormalizedOrder(order Order) (Order, bool) {
	if !order.Valid() {
		return OrderAsc, false
	}

	return order, true
}

// NormalizeOrder coerces an invalid order to OrderAsc with a diagnostic.
func NormalizeOrder(order Order) Order {
	ret, ok := IsNormalizedOrder(order)
	if !ok {
		log.WithFields(log.Fields{
			"order": string(order),
		}).Warn("invalid sort order, falling back to asc")
	}

	return ret
}

type (
	// SortSpec defines what the dataset is sorted by. A single key is compared
	// case-insensitively after dotted-path resolution; multiple keys are
	// compared directly, key by key, all under the same Order.
	SortSpec struct {
		Keys  []string
		Order Order
	}

	KeyAlias = string

	// KeyMapping maps external key aliases to record paths. Use it when the
	// names exposed to callers differ from the dotted paths inside records.
	// Key is an external alias, value is an internal record path.
	KeyMapping = map[KeyAlias]string
)

// SortBy builds a SortSpec, normalizing the order.
func SortBy(order Order, keys ...string) SortSpec {
	return SortSpec{
		Keys:  keys,
		Order: NormalizeOrder(order),
	}
}

// IsSorted reports whether the spec selects any key at all. The zero value
// (no keys, empty key) leaves the dataset in source order.
func (s SortSpec) IsSorted() bool {
	return len(s.Keys) > 0 && !(len(s.Keys) == 1 && s.Keys[0] == "")
}

// Equal reports whether two specs request the same ordering.
func (s SortSpec) Equal(other SortSpec) bool {
	return s.Order == other.Order && slices.Equal(s.Keys, other.Keys)
}

// caseFold reports whether comparison should lower-case string values.
// Folding applies to single-key sorts only.
func (s SortSpec) caseFold() bool {
	return len(s.Keys) == 1
}

// ParseSortSpec builds a SortSpec from a string in the format
// "key[,key...] asc|desc". Key aliases are resolved via KeyMapping.
// Returns an error if an alias is not found in the mapping; an invalid
// direction is coerced to asc, never rejected.
//
// Example: ParseSortSpec("group,name desc", mapping).
func ParseSortSpec(rawSpec string, keyMapping KeyMapping) (SortSpec, error) {
	cutRawSpec := strings.Split(strings.TrimSpace(rawSpec), " ")
	if len(cutRawSpec) != 2 {
		return SortSpec{}, fmt.Errorf("invalid sort string format '%s'", rawSpec)
	}

	order := NormalizeOrder(Order(strings.ToLower(cutRawSpec[1])))
	aliases := lo.Keys(keyMapping)

	keys := make([]string, 0)
	for _, keyAlias := range strings.Split(cutRawSpec[0], ",") {
		keyPath := keyMapping[keyAlias]
		if keyPath == "" {
			return SortSpec{}, fmt.Errorf("invalid key alias. closest: '%s'", closestAlias(keyAlias, aliases))
		}

		keys = append(keys, keyPath)
	}

	return SortSpec{
		Keys:  keys,
		Order: order,
	}, nil
}

func closestAlias(input KeyAlias, dataSet []KeyAlias) KeyAlias {
	minDist := math.MaxInt
	closest := ""

	for _, dataSetAlias := range dataSet {
		dist := levenshtein([]rune(dataSetAlias), []rune(input))
		if dist < minDist {
			minDist = dist
			closest = dataSetAlias
		}
	}

	return closest
}
