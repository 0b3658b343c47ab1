package launcher

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/seek/internal/adapters/logger"
	"go.trai.ch/seek/internal/core/ports"
)

// NodeID is the graft identifier of the launcher.
const NodeID graft.ID = "adapter.launcher"

// OpenerEnv overrides the platform open command.
const OpenerEnv = "SEEK_OPENER"

func init() {
	graft.Register(graft.Node[ports.Launcher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Launcher, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(log).WithOpener(os.Getenv(OpenerEnv)), nil
		},
	})
}
