package interfaces

//go:generate mockgen -source=clock_interface.go -destination=mocks/clock_interface_mock.go -package=mock_interfaces

import "time"

// IClock is the time source for deadlines and timestamps.
type IClock interface {
	Now() time.Time
}
