package pool

import (
	"github.com/l1jgo/netpool/internal/data"
	"github.com/l1jgo/netpool/internal/world"
	"go.uber.org/zap"
)

// Factory creates fresh instances through the host runtime. No caching —
// reuse is the orchestrator's job.
type Factory struct {
	state *world.State
	log   *zap.Logger
}

func NewFactory(state *world.State, log *zap.Logger) *Factory {
	return &Factory{state: state, log: log}
}

// Create instantiates a new copy of the template and returns its handle with
// the network identity already allocated.
func (f *Factory) Create(tpl *data.EntityTemplate) *world.ObjectInfo {
	obj := f.state.Instantiate(tpl)
	f.log.Debug("instantiated entity",
		zap.Int32("template_id", tpl.TemplateID),
		zap.Uint32("net_id", obj.NetID),
	)
	return obj
}
