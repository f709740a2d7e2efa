package commands

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"strings"

	servicesDomain "github.com/pcoetsee/settings-service/internal/services/domain"
	servicesUseCase "github.com/pcoetsee/settings-service/internal/services/usecase"
)

// RunCreateService registers a new service account. When password is empty the
// command prompts for one interactively. Outputs the created record in either
// text or JSON format.
//
// Requirements: Database must be migrated and accessible.
func RunCreateService(
	ctx context.Context,
	serviceUseCase servicesUseCase.ServiceUseCase,
	logger *slog.Logger,
	name string,
	password string,
	role string,
	format string,
	io IOTuple,
) error {
	logger.Info("creating new service", slog.String("name", name))

	if password == "" {
		// Interactive mode
		prompted, err := promptForPassword(io)
		if err != nil {
			return fmt.Errorf("failed to get password: %w", err)
		}
		password = prompted
	}

	parsedRole, ok := servicesDomain.RoleFromString(role)
	if !ok {
		return fmt.Errorf("invalid role: %s (valid options: read, full)", role)
	}

	input := &servicesDomain.RegisterServiceInput{
		Name:     name,
		Password: password,
		Role:     parsedRole,
	}

	service, err := serviceUseCase.Register(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to create service: %w", err)
	}

	// Output result based on format
	if format == "json" {
		outputServiceJSON(service, io.Writer)
	} else {
		outputServiceText(service, io.Writer)
	}

	logger.Info("service created successfully",
		slog.String("service_id", service.ID.String()),
		slog.String("name", service.Name),
		slog.String("role", string(service.Role)),
	)

	return nil
}

// promptForPassword interactively prompts the user to enter a password.
func promptForPassword(io IOTuple) (string, error) {
	reader := bufio.NewReader(io.Reader)

	_, _ = fmt.Fprint(io.Writer, "Enter password: ")
	password, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	password = strings.TrimRight(password, "\r\n")
	if password == "" {
		return "", fmt.Errorf("password cannot be empty")
	}

	return password, nil
}
