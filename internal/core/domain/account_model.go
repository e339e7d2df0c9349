package domain

// DerivationType tells which derivation scheme an extended public key belongs
// to. Each account carries one xpub per supported scheme.
type DerivationType int

const (
	DerivationLegacy DerivationType = iota
	DerivationSegwit
)

// XPub is an extended public key owned by an account. The engine only ever
// consumes the key string, derivation of concrete addresses happens in the
// key subsystem.
type XPub struct {
	Key  string
	Type DerivationType
}

// Account is an HD wallet account as resolved by the key-derivation
// subsystem. The engine treats the account list it is given as authoritative
// and never touches private key material.
type Account struct {
	Index    uint32
	Label    string
	XPubs    []XPub
	Archived bool
}

// Keys returns the account's xpub strings in declaration order.
func (a Account) Keys() []string {
	keys := make([]string, 0, len(a.XPubs))
	for _, xpub := range a.XPubs {
		keys = append(keys, xpub.Key)
	}
	return keys
}

// ActiveKeys returns the deduplicated union of xpub strings over all
// non-archived accounts, preserving account order. Archived accounts are
// excluded from balance aggregation and coin selection by this policy.
func ActiveKeys(accounts []Account) []string {
	seen := make(map[string]struct{})
	keys := make([]string, 0, len(accounts))
	for _, account := range accounts {
		if account.Archived {
			continue
		}
		for _, key := range account.Keys() {
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			keys = append(keys, key)
		}
	}
	return keys
}
