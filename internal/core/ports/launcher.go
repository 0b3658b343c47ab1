package ports

import "context"

// Launcher opens a service with the host's default handler.
//
//go:generate go run go.uber.org/mock/mockgen -source=launcher.go -destination=mocks/mock_launcher.go -package=mocks
type Launcher interface {
	// Launch opens id, or reveals it in its containing folder when reveal is set.
	Launch(ctx context.Context, id string, reveal bool) error
}
