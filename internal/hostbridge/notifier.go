// Package hostbridge is the boundary to the host platform that owns the
// real input hardware.
package hostbridge

//go:generate mockgen -destination=mock/mock_notifier.go -package=mockhostbridge -source=notifier.go

// Notifier announces controller-type selections to the host platform. Both
// calls are fire-and-forget; the host sends no acknowledgment.
type Notifier interface {
	// AnnouncePrimaryController tells the host which controller type is the
	// primary one for this process
	AnnouncePrimaryController(controllerType string)

	// AnnounceAdditionalController tells the host about a secondary or
	// alternate controller type
	AnnounceAdditionalController(controllerType string)
}

// Nop is a Notifier for embedders running without a host platform.
type Nop struct{}

// AnnouncePrimaryController implements Notifier
func (Nop) AnnouncePrimaryController(string) {}

// AnnounceAdditionalController implements Notifier
func (Nop) AnnounceAdditionalController(string) {}
