package ports

// Walker defines the interface for collecting bundle paths beneath search roots.
//
//go:generate go run go.uber.org/mock/mockgen -source=walker.go -destination=mocks/mock_walker.go -package=mocks
type Walker interface {
	// Walk returns every bundle path reachable from root.
	// Unreadable directories and missing roots contribute nothing.
	Walk(root string) []string

	// WalkAll walks every root and concatenates the results in root order.
	WalkAll(roots []string) []string
}
