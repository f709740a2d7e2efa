// Package commands contains CLI command implementations for the application.
package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/golang-migrate/migrate/v4"

	"github.com/pcoetsee/settings-service/internal/app"
	servicesDomain "github.com/pcoetsee/settings-service/internal/services/domain"
)

// IOTuple holds reader and writer for commands, allowing for testing.
type IOTuple struct {
	Reader io.Reader
	Writer io.Writer
}

// DefaultIO returns an IOTuple with os.Stdin and os.Stdout.
func DefaultIO() IOTuple {
	return IOTuple{
		Reader: os.Stdin,
		Writer: os.Stdout,
	}
}

// closeContainer closes all resources in the container and logs any errors.
func closeContainer(container *app.Container, logger *slog.Logger) {
	if err := container.Shutdown(context.Background()); err != nil {
		logger.Error("failed to shutdown container", slog.Any("error", err))
	}
}

// closeMigrate closes the migration instance and logs any errors.
func closeMigrate(migrate *migrate.Migrate, logger *slog.Logger) {
	sourceError, databaseError := migrate.Close()
	if sourceError != nil || databaseError != nil {
		logger.Error(
			"failed to close the migrate",
			slog.Any("source_error", sourceError),
			slog.Any("database_error", databaseError),
		)
	}
}

// serviceOutput is the serializable shape shared by service commands.
type serviceOutput struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}

func newServiceOutput(service *servicesDomain.Service) serviceOutput {
	return serviceOutput{
		ID:        service.ID.String(),
		Name:      service.Name,
		Role:      string(service.Role),
		CreatedAt: service.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// outputServiceText outputs the service in human-readable text format.
func outputServiceText(service *servicesDomain.Service, writer io.Writer) {
	out := newServiceOutput(service)
	_, _ = fmt.Fprintln(writer)
	_, _ = fmt.Fprintf(writer, "ID:         %s\n", out.ID)
	_, _ = fmt.Fprintf(writer, "Name:       %s\n", out.Name)
	_, _ = fmt.Fprintf(writer, "Role:       %s\n", out.Role)
	_, _ = fmt.Fprintf(writer, "Created At: %s\n", out.CreatedAt)
}

// outputServiceJSON outputs the service in JSON format for machine consumption.
func outputServiceJSON(service *servicesDomain.Service, writer io.Writer) {
	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	_ = encoder.Encode(newServiceOutput(service))
}
