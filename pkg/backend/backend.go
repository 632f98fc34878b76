// Package backend defines the data-source abstraction the monitor runs
// against. All durable state lives behind Source; the evaluation core only
// ever sees immutable snapshots. Two implementations exist: remote (the real
// REST backend) and sim (a local sqlite-backed simulator).
package backend

import (
	"context"
	"errors"

	"barnsight.xyz/pigsty-monitor-service/pkg/models"
)

var (
	ErrNotFound           = errors.New("entity not found")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUserAssigned rejects deleting a user still referenced by a
	// pigsty's technicianId. The check is a required precondition of the
	// delete, not optional validation.
	ErrUserAssigned = errors.New("user is still assigned to a pigsty")

	// ErrDuplicateDevice rejects a second device of the same kind for one
	// facility.
	ErrDuplicateDevice = errors.New("facility already has a device of this kind")
)

// IFeed supplies snapshots. A fetch either yields a complete consistent
// snapshot or an error; there are no partial results.
type IFeed interface {
	FetchSnapshot(ctx context.Context) (*models.Snapshot, error)
}

type IAuth interface {
	Authenticate(ctx context.Context, username, password string) (*models.User, error)
}

type IAlert interface {
	// AcknowledgeAlert is a one-way transition; there is no un-acknowledge.
	AcknowledgeAlert(ctx context.Context, id int64) error
}

type IAdmin interface {
	CreateUser(ctx context.Context, input models.User) (*models.User, error)
	DeleteUser(ctx context.Context, id int64) error

	CreatePigsty(ctx context.Context, input models.Pigsty) (*models.Pigsty, error)
	UpdatePigsty(ctx context.Context, id int64, input models.Pigsty) (*models.Pigsty, error)
	UpdatePigstyThresholds(ctx context.Context, id int64, thresholds map[models.MetricKind]models.ThresholdBand) (*models.Pigsty, error)
	DeletePigsty(ctx context.Context, id int64) error

	CreateDevice(ctx context.Context, input models.Device) (*models.Device, error)
	ToggleDevice(ctx context.Context, id int64) (*models.Device, error)
	DeleteDevice(ctx context.Context, id int64) error
}

type Source interface {
	IFeed
	IAuth
	IAlert
	IAdmin
}
