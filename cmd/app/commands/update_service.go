package commands

import (
	"context"
	"fmt"
	"log/slog"

	servicesDomain "github.com/pcoetsee/settings-service/internal/services/domain"
	servicesUseCase "github.com/pcoetsee/settings-service/internal/services/usecase"
)

// RunUpdateService updates an existing service account's role or password. The
// command acts with operator privileges, so the target's current password is
// not required for a password change. Outputs the updated record in either
// text or JSON format.
//
// Requirements: Database must be migrated and accessible.
func RunUpdateService(
	ctx context.Context,
	serviceUseCase servicesUseCase.ServiceUseCase,
	logger *slog.Logger,
	name string,
	role string,
	password string,
	format string,
	io IOTuple,
) error {
	logger.Info("updating service", slog.String("name", name))

	if role == "" && password == "" {
		return fmt.Errorf("nothing to update: provide --role or --password")
	}

	current, err := serviceUseCase.GetByName(ctx, name)
	if err != nil {
		return fmt.Errorf("failed to load service: %w", err)
	}

	newRole := current.Role
	if role != "" {
		parsedRole, ok := servicesDomain.RoleFromString(role)
		if !ok {
			return fmt.Errorf("invalid role: %s (valid options: read, full)", role)
		}
		newRole = parsedRole
	}

	input := &servicesDomain.UpdateServiceInput{
		Name:     name,
		Role:     newRole,
		Password: password,
	}

	// The CLI runs with operator privileges, so the actor is a synthetic
	// full-role principal rather than an authenticated service.
	operator := servicesDomain.NewPrincipal(&servicesDomain.Service{
		Name: "operator",
		Role: servicesDomain.FullRole,
	})

	service, err := serviceUseCase.Update(ctx, operator, input)
	if err != nil {
		return fmt.Errorf("failed to update service: %w", err)
	}

	// Output result based on format
	if format == "json" {
		outputServiceJSON(service, io.Writer)
	} else {
		outputServiceText(service, io.Writer)
	}

	logger.Info("service updated successfully",
		slog.String("service_id", service.ID.String()),
		slog.String("name", service.Name),
		slog.String("role", string(service.Role)),
	)

	return nil
}
