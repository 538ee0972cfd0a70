package custom

import (
	"fmt"

	"github.com/episan-cli/episan/constant"
	"github.com/episan-cli/episan/internal/scraper"
	"github.com/episan-cli/episan/source"
	"github.com/episan-cli/episan/util"
	libs "github.com/metafates/mangal-lua-libs"
	lua "github.com/yuin/gopher-lua"
)

// IDfromName derives the stable provider identifier of a catalog script.
func IDfromName(name string) string {
	return name + " custom"
}

// LoadSource runs the catalog script at path and wraps its interpreter
// state as a source. The search entry point is the only required global,
// an options table may or may not be declared.
func LoadSource(path string) (source.Source, error) {
	state := lua.NewState()
	libs.Preload(state)
	registerTLSClient(state)

	if err := scraper.RunScript(state, path); err != nil {
		return nil, err
	}

	name := util.FileStem(path)
	if state.GetGlobal(constant.SearchReleasesFn).Type() != lua.LTFunction {
		return nil, fmt.Errorf("function %s is required but not defined in %s", constant.SearchReleasesFn, name)
	}

	return newLuaSource(name, state), nil
}
