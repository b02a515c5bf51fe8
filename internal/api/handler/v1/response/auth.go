package response

import (
	"github.com/muhu-travel/backoffice-api/internal/access"
	"github.com/muhu-travel/backoffice-api/internal/domain"
)

type LoginResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

// PermissionsResponse lists, per resource, the actions the caller's role may perform.
type PermissionsResponse struct {
	Role        domain.Role                         `json:"role"`
	Permissions map[access.Resource][]access.Action `json:"permissions"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
