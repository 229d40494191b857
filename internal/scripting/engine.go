package scripting

import (
	"fmt"
	"os"
	"path/filepath"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/zdash/zombiedash/internal/world"
)

// Engine wraps a single gopher-lua VM holding the game's tunable rules.
// Single-goroutine access only (game loop).
type Engine struct {
	vm  *lua.LState
	log *zap.Logger
}

// NewEngine creates a Lua engine and loads scriptsDir/core then the optional
// feature directories. Missing directories are skipped.
func NewEngine(scriptsDir string, log *zap.Logger) (*Engine, error) {
	vm := lua.NewState(lua.Options{
		SkipOpenLibs: false,
	})
	vm.SetGlobal("API_VERSION", lua.LNumber(1))

	e := &Engine{vm: vm, log: log}

	for _, sub := range []string{"core", "rules"} {
		p := filepath.Join(scriptsDir, sub)
		if err := e.loadDir(p); err != nil {
			vm.Close()
			return nil, fmt.Errorf("load %s scripts: %w", sub, err)
		}
	}
	return e, nil
}

func (e *Engine) loadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".lua" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := e.vm.DoFile(path); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
		e.log.Debug("loaded lua script", zap.String("file", path))
	}
	return nil
}

// ScoreTable calls the Lua score_table() function. Fields the script leaves
// out keep their value from defaults; a missing function or a failing call
// returns defaults unchanged.
func (e *Engine) ScoreTable(defaults world.ScoreTable) world.ScoreTable {
	fn := e.vm.GetGlobal("score_table")
	if fn == lua.LNil {
		e.log.Warn("lua function score_table not found, using built-in scores")
		return defaults
	}

	if err := e.vm.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}); err != nil {
		e.log.Error("lua score_table error", zap.Error(err))
		return defaults
	}

	result := e.vm.Get(-1)
	e.vm.Pop(1)

	rt, ok := result.(*lua.LTable)
	if !ok {
		e.log.Error("lua score_table returned non-table")
		return defaults
	}

	st := defaults
	st.CitizenSaved = lIntOr(rt, "citizen_saved", st.CitizenSaved)
	st.CitizenLost = lIntOr(rt, "citizen_lost", st.CitizenLost)
	st.DumbZombieKilled = lIntOr(rt, "dumb_zombie_killed", st.DumbZombieKilled)
	st.SmartZombieKilled = lIntOr(rt, "smart_zombie_killed", st.SmartZombieKilled)
	st.GoodiePicked = lIntOr(rt, "goodie_picked", st.GoodiePicked)
	return st
}

// --- Lua helpers ---

// lIntOr reads an integer field from a Lua table, or def when absent.
func lIntOr(t *lua.LTable, key string, def int) int {
	v := t.RawGetString(key)
	if v == lua.LNil {
		return def
	}
	n, ok := v.(lua.LNumber)
	if !ok {
		return def
	}
	return int(n)
}

// Close shuts down the Lua VM.
func (e *Engine) Close() {
	e.vm.Close()
}
