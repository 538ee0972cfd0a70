// Package custom runs Lua catalog scripts behind the source.Source
// interface. Each script owns one interpreter state, so a loaded
// source must not be shared across goroutines.
package custom

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"
)

type luaSource struct {
	name  string
	state *lua.LState
}

func newLuaSource(name string, state *lua.LState) *luaSource {
	return &luaSource{name: name, state: state}
}

func (s *luaSource) Name() string {
	return s.name
}

func (s *luaSource) ID() string {
	return IDfromName(s.name)
}

// call invokes a global function of the script in protected mode and
// checks that the single return value has the wanted type.
func (s *luaSource) call(fn string, want lua.LValueType, args ...lua.LValue) (lua.LValue, error) {
	global := s.state.GetGlobal(fn)
	if global.Type() != lua.LTFunction {
		return nil, fmt.Errorf("function %s is not defined", fn)
	}

	param := lua.P{Fn: global, NRet: 1, Protect: true}
	if err := s.state.CallByParam(param, args...); err != nil {
		return nil, err
	}

	ret := s.state.Get(-1)
	s.state.Pop(1)

	if ret.Type() != want {
		return nil, fmt.Errorf("%s returned %s, expected %s", fn, ret.Type(), want)
	}
	return ret, nil
}
