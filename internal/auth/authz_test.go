package auth

import "testing"

func TestAuthorizeOwnership(t *testing.T) {
	owner := Claims{UserID: 1, Role: RoleUser}
	stranger := Claims{UserID: 2, Role: RoleUser}
	admin := Claims{UserID: 3, Role: RoleAdmin}

	cases := []struct {
		name    string
		caller  Claims
		ownerID uint64
		action  Action
		allowed bool
	}{
		{"owner edits own", owner, 1, ActionEdit, true},
		{"owner deletes own", owner, 1, ActionDelete, true},
		{"owner views own", owner, 1, ActionView, true},
		{"stranger edits other", stranger, 1, ActionEdit, false},
		{"stranger deletes other", stranger, 1, ActionDelete, false},
		{"stranger views other", stranger, 1, ActionView, false},
		{"admin deletes other", admin, 1, ActionDelete, true},
		{"admin views other", admin, 1, ActionView, true},
		// The asymmetry under test: delete has an admin override, edit does not.
		{"admin edits other", admin, 1, ActionEdit, false},
		{"admin edits own", admin, 3, ActionEdit, true},
		{"empty claims", Claims{}, 1, ActionDelete, false},
		{"zero owner never matches zero caller", Claims{}, 0, ActionEdit, false},
	}

	for _, tc := range cases {
		err := Authorize(tc.caller, tc.ownerID, tc.action)
		if tc.allowed && err != nil {
			t.Errorf("%s: expected allow, got %v", tc.name, err)
		}
		if !tc.allowed && err != ErrForbidden {
			t.Errorf("%s: expected ErrForbidden, got %v", tc.name, err)
		}
	}
}
