// Package resalehub tracks a small resale business: inventory items bought
// through purchase orders, the sales that dispose of them, and the customers
// aggregated from those sales.
//
// The Store is the single source of truth for the four entity sequences and
// the only place where cross-entity consistency is enforced (see
// Store.MarkItemSold). Its full state persists as a single versioned JSON
// document; display preferences live in a second, independent document.
package resalehub
