package projects

import (
	"go.uber.org/zap"

	"zed-recent/internal/config"
)

// Lister produces launcher items from one of the two sources. It holds the
// configuration read at startup; nothing here reads the environment.
type Lister struct {
	cfg config.Config
	log *zap.Logger
}

func NewLister(cfg config.Config, log *zap.Logger) *Lister {
	if log == nil {
		log = zap.NewNop()
	}
	return &Lister{cfg: cfg, log: log}
}
