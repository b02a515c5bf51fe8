package dao

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// Error categories. Entity specific errors wrap one of them so callers can
// match either the precise error or its category with errors.Is.
var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("already exists")
	ErrInUse    = errors.New("is still referenced")
)

var (
	ErrUserNotFound    = fmt.Errorf("user %w", ErrNotFound)
	ErrUserEmailExists = fmt.Errorf("user email %w", ErrConflict)

	ErrClientNotFound       = fmt.Errorf("client %w", ErrNotFound)
	ErrClientDocumentExists = fmt.Errorf("client document %w", ErrConflict)

	ErrEmployeeNotFound    = fmt.Errorf("employee %w", ErrNotFound)
	ErrEmployeeEmailExists = fmt.Errorf("employee email %w", ErrConflict)

	ErrProviderNotFound = fmt.Errorf("provider %w", ErrNotFound)

	ErrPackageNotFound   = fmt.Errorf("package %w", ErrNotFound)
	ErrPackageNameExists = fmt.Errorf("package name %w", ErrConflict)
	ErrPackageInUse      = fmt.Errorf("package %w by reservations", ErrInUse)

	ErrReservationNotFound  = fmt.Errorf("reservation %w", ErrNotFound)
	ErrReservationCodeTaken = fmt.Errorf("reservation code %w, retry the request", ErrConflict)
)

const (
	constraintUsersEmail       = "idx_users_email"
	constraintClientsDocument  = "idx_clients_document"
	constraintEmployeesEmail   = "idx_employees_email"
	constraintPackagesName     = "idx_tour_packages_name"
	constraintReservationsCode = "idx_reservations_code"

	constraintReservationsClient  = "fk_reservations_client"
	constraintReservationsPackage = "fk_reservations_package"
)

func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) &&
		pgErr.Code == pgerrcode.UniqueViolation &&
		pgErr.ConstraintName == constraint
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation
}

// reservationInsertErr translates constraint violations raised while storing a reservation.
func reservationInsertErr(err error) error {
	if isUniqueViolation(err, constraintReservationsCode) {
		return ErrReservationCodeTaken
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
		switch pgErr.ConstraintName {
		case constraintReservationsClient:
			return ErrClientNotFound
		case constraintReservationsPackage:
			return ErrPackageNotFound
		}
	}

	return err
}
