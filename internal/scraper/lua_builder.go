package scraper

import (
	"os"
	"sync"

	lua "github.com/yuin/gopher-lua"
	"github.com/yuin/gopher-lua/parse"
)

// protoCache holds compiled script prototypes keyed by path, so reloading
// a provider skips the parse step.
var protoCache sync.Map

// RunScript executes the script at path inside L, compiling it at most once
// per process.
func RunScript(L *lua.LState, path string) error {
	proto, err := prototype(path)
	if err != nil {
		return err
	}

	L.Push(L.NewFunctionFromProto(proto))
	return L.PCall(0, lua.MultRet, nil)
}

func prototype(path string) (*lua.FunctionProto, error) {
	if cached, ok := protoCache.Load(path); ok {
		return cached.(*lua.FunctionProto), nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = file.Close()
	}()

	chunk, err := parse.Parse(file, path)
	if err != nil {
		return nil, err
	}

	proto, err := lua.Compile(chunk, path)
	if err != nil {
		return nil, err
	}

	protoCache.Store(path, proto)
	return proto, nil
}
