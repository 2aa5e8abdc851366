package menus

import "errors"

var (
	// ErrRowCount is returned when a row-based surface is requested with a
	// row count outside [1, MaxRows].
	ErrRowCount = errors.New("menus: invalid row count")

	// ErrSlotOutOfRange is returned when a slot index falls outside
	// [0, size) for the surface it targets.
	ErrSlotOutOfRange = errors.New("menus: slot out of range")
)
