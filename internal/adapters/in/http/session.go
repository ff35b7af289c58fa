package http

import (
	"net/http"

	"gestion/internal/core/application/usecases/commands"
	"gestion/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// GetMyPermissions handles GET /api/v1/me/permissions.
func (s *Server) GetMyPermissions(ctx echo.Context) error {
	p := PrincipalOf(ctx)

	roles := make([]string, 0, len(p.Roles()))
	for _, r := range p.Roles() {
		roles = append(roles, string(r))
	}
	capabilities := make([]string, 0, len(p.Capabilities()))
	for _, c := range p.Capabilities() {
		capabilities = append(capabilities, string(c))
	}

	return ctx.JSON(http.StatusOK, servers.Permissions{
		UserId:       p.UserID().Bytes(),
		Email:        p.Email(),
		Roles:        roles,
		Capabilities: capabilities,
	})
}

// SavePushSubscription handles POST /api/v1/push-subscriptions.
func (s *Server) SavePushSubscription(ctx echo.Context) error {
	var body servers.SavePushSubscriptionJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return err
	}

	cmd, err := commands.NewSavePushSubscriptionCommand(PrincipalOf(ctx), body.Endpoint, body.Keys.P256dh, body.Keys.Auth)
	if err != nil {
		return err
	}
	if err := s.h.Notifications.SaveSubscription(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}
