package scripting

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/l1jgo/netpool/internal/world"
	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// Engine wraps a single gopher-lua VM for spawn-hook scripts. Scripts may
// define global functions on_spawn(pool_id, net_id, x, y, reused) and
// on_despawn(pool_id, net_id); undefined hooks are a no-op. Single-goroutine
// access only (game loop).
type Engine struct {
	vm  *lua.LState
	log *zap.Logger
}

// NewEngine creates a Lua engine and loads all .lua files from the given
// directory, in name order. A missing directory yields an engine with no
// hooks defined.
func NewEngine(scriptsDir string, log *zap.Logger) (*Engine, error) {
	vm := lua.NewState(lua.Options{
		SkipOpenLibs: false,
	})
	vm.SetGlobal("SPAWN_API_VERSION", lua.LNumber(1))

	e := &Engine{vm: vm, log: log}
	if err := e.loadDir(scriptsDir); err != nil {
		vm.Close()
		return nil, fmt.Errorf("load spawn scripts: %w", err)
	}
	return e, nil
}

func (e *Engine) loadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // no scripts authored
		}
		return err
	}
	names := make([]string, 0, len(entries))
	for _, ent := range entries {
		if ent.IsDir() || !strings.HasSuffix(ent.Name(), ".lua") {
			continue
		}
		names = append(names, ent.Name())
	}
	sort.Strings(names)
	for _, name := range names {
		path := filepath.Join(dir, name)
		if err := e.vm.DoFile(path); err != nil {
			return fmt.Errorf("script %s: %w", name, err)
		}
		e.log.Debug("loaded spawn script", zap.String("file", name))
	}
	return nil
}

// Close releases the Lua VM.
func (e *Engine) Close() {
	e.vm.Close()
}

// OnAcquire implements pool.Hooks.
func (e *Engine) OnAcquire(poolID string, obj *world.ObjectInfo, reused bool) {
	e.call("on_spawn",
		lua.LString(poolID),
		lua.LNumber(obj.NetID),
		lua.LNumber(obj.X),
		lua.LNumber(obj.Y),
		lua.LBool(reused),
	)
}

// OnRelease implements pool.Hooks.
func (e *Engine) OnRelease(poolID string, obj *world.ObjectInfo) {
	e.call("on_despawn",
		lua.LString(poolID),
		lua.LNumber(obj.NetID),
	)
}

// call invokes a global Lua function if the scripts defined it. A failing
// hook is logged, never fatal — scripts cannot take the game loop down.
func (e *Engine) call(name string, args ...lua.LValue) {
	fn := e.vm.GetGlobal(name)
	if fn.Type() != lua.LTFunction {
		return
	}
	err := e.vm.CallByParam(lua.P{
		Fn:      fn,
		NRet:    0,
		Protect: true,
	}, args...)
	if err != nil {
		e.log.Warn("spawn hook failed", zap.String("fn", name), zap.Error(err))
	}
}
