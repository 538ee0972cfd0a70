package custom

import (
	"github.com/episan-cli/episan/constant"
	"github.com/episan-cli/episan/source"
	lua "github.com/yuin/gopher-lua"
)

func (s *luaSource) Options() []source.Option {
	// SourceOptions is an optional part of the script contract.
	if s.state.GetGlobal(constant.SourceOptionsFn).Type() != lua.LTFunction {
		return nil
	}

	val, err := s.call(constant.SourceOptionsFn, lua.LTTable)
	if err != nil {
		return nil
	}

	table := val.(*lua.LTable)
	var options []source.Option

	table.ForEach(func(k, v lua.LValue) {
		if k.Type() != lua.LTNumber || v.Type() != lua.LTTable {
			return
		}

		option, err := optionFromTable(v.(*lua.LTable))
		if err != nil {
			return
		}

		options = append(options, option)
	})

	return options
}
