package custom

import (
	"github.com/episan-cli/episan/constant"
	"github.com/episan-cli/episan/internal/cache"
	"github.com/episan-cli/episan/source"
	lua "github.com/yuin/gopher-lua"
)

func (s *luaSource) Search(query string) ([]*source.Candidate, error) {
	cacheKey := cache.GenerateKey(query, s.Name())

	var cached []*source.Candidate
	if cache.Read(cacheKey, &cached) {
		for _, c := range cached {
			c.Source = s
		}
		return cached, nil
	}

	val, err := s.call(constant.SearchReleasesFn, lua.LTTable, lua.LString(query))
	if err != nil {
		return nil, err
	}

	var (
		candidates []*source.Candidate
		errs       []error
	)
	val.(*lua.LTable).ForEach(func(k, v lua.LValue) {
		// Non-array keys and non-table entries are ignored.
		if k.Type() != lua.LTNumber || v.Type() != lua.LTTable {
			return
		}

		candidate, err := candidateFromTable(v.(*lua.LTable))
		if err != nil {
			errs = append(errs, err)
			return
		}

		candidate.Source = s
		candidates = append(candidates, candidate)
	})

	if len(candidates) == 0 && len(errs) > 0 {
		return nil, errs[0]
	}

	if len(candidates) > 0 {
		_ = cache.Write(cacheKey, candidates)
	}

	return candidates, nil
}
