package auth

import "errors"

// ErrForbidden is returned when the caller may not act on the target record.
// Handlers translate it into an HTTP 403 response.
var ErrForbidden = errors.New("forbidden")

// Action names an ownership-checked operation.
type Action string

const (
	ActionEdit   Action = "edit"
	ActionDelete Action = "delete"
	ActionView   Action = "view" // owner-scoped listings
)

// adminOverride records, per action, whether the admin role may act on
// records it does not own. Edit stays owner-only: an admin can remove
// another user's message but cannot rewrite it.
var adminOverride = map[Action]bool{
	ActionEdit:   false,
	ActionDelete: true,
	ActionView:   true,
}

// Authorize decides whether the caller identified by cl may perform action on
// a record owned by ownerID. The owner always passes; admins pass where the
// policy table grants an override; everyone else gets ErrForbidden. The check
// is stateless and uses only the claims snapshot plus the stored owner id, so
// it runs fresh on every request.
func Authorize(cl Claims, ownerID uint64, action Action) error {
	if cl.UserID != 0 && cl.UserID == ownerID {
		return nil
	}
	if cl.Role == RoleAdmin && adminOverride[action] {
		return nil
	}
	return ErrForbidden
}
