package httpserver

import (
	"net/http"
	"strconv"

	"fewo_booking/internal/domain"
)

// Identity headers are injected by the auth proxy in front of the API;
// session issuance does not live here.
const (
	headerUserID   = "X-User-ID"
	headerUserRole = "X-User-Role"
)

func callerIdentity(r *http.Request) domain.Identity {
	id, err := strconv.ParseInt(r.Header.Get(headerUserID), 10, 64)
	if err != nil || id <= 0 {
		return domain.Identity{Role: domain.RoleGuest}
	}
	role := domain.Role(r.Header.Get(headerUserRole))
	switch role {
	case domain.RoleUser, domain.RoleHost, domain.RoleAdmin:
	default:
		role = domain.RoleUser
	}
	return domain.Identity{UserID: id, Role: role}
}

// requireUser rejects anonymous callers.
func requireUser(ident domain.Identity) error {
	if ident.Anonymous() {
		return domain.ErrUnauthorized
	}
	return nil
}

// requireHost rejects callers without a host or admin role.
func requireHost(ident domain.Identity) error {
	if err := requireUser(ident); err != nil {
		return err
	}
	if ident.Role != domain.RoleHost && ident.Role != domain.RoleAdmin {
		return domain.ErrForbidden
	}
	return nil
}

func requireAdmin(ident domain.Identity) error {
	if err := requireUser(ident); err != nil {
		return err
	}
	if !ident.IsAdmin() {
		return domain.ErrForbidden
	}
	return nil
}
