package models

// ExpirationStatus is the derived urgency of a stock item. It is never
// persisted — always recomputed from the expiration date, the item's
// alarm threshold and the current moment.
type ExpirationStatus string

const (
	StatusOK      ExpirationStatus = "ok"
	StatusWarning ExpirationStatus = "warning"
	StatusExpired ExpirationStatus = "expired"
)

// Urgent reports whether the status calls for user attention.
func (s ExpirationStatus) Urgent() bool {
	return s == StatusWarning || s == StatusExpired
}
