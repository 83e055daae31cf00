package pool

import (
	"fmt"
	"testing"

	"github.com/l1jgo/netpool/internal/core/ecs"
	"github.com/l1jgo/netpool/internal/data"
	"github.com/l1jgo/netpool/internal/world"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeDispatcher records handler installs/removals without a real dispatch
// registry behind it.
type fakeDispatcher struct {
	handlers map[int32]*SpawnHandler
	removed  []int32
}

func newFakeDispatcher() *fakeDispatcher {
	return &fakeDispatcher{handlers: make(map[int32]*SpawnHandler)}
}

func (d *fakeDispatcher) AddHandler(tpl *data.EntityTemplate, h *SpawnHandler) {
	d.handlers[tpl.TemplateID] = h
}

func (d *fakeDispatcher) RemoveHandler(tpl *data.EntityTemplate) {
	delete(d.handlers, tpl.TemplateID)
	d.removed = append(d.removed, tpl.TemplateID)
}

func newTestState() *world.State {
	return world.NewState(ecs.NewWorld())
}

func testTemplate(id int32, name string) *data.EntityTemplate {
	return &data.EntityTemplate{TemplateID: id, Name: name, Networked: true}
}

// panicErr runs fn and returns the error it panicked with, failing the test
// when fn returns normally.
func panicErr(t *testing.T, fn func()) error {
	t.Helper()
	var err error
	func() {
		defer func() {
			if r := recover(); r != nil {
				if e, ok := r.(error); ok {
					err = e
				} else {
					err = fmt.Errorf("%v", r)
				}
			}
		}()
		fn()
	}()
	require.Error(t, err, "expected panic")
	return err
}

func newTestPool(t *testing.T, auth bool, configs ...Config) (*LifecyclePool, *world.State, *fakeDispatcher) {
	t.Helper()
	state := newTestState()
	d := newFakeDispatcher()
	p := NewLifecyclePool(state, d, StaticAuthority(auth), configs, zap.NewNop())
	return p, state, d
}
