package custom

import (
	"fmt"

	"github.com/episan-cli/episan/source"
	lua "github.com/yuin/gopher-lua"
)

// stringField reads a string entry from a Lua table, falling back to def
// when the key is absent or holds a non-string value.
func stringField(table *lua.LTable, key, def string) string {
	if val := table.RawGetString(key); val.Type() == lua.LTString {
		return val.String()
	}
	return def
}

// candidateFromTable converts one {title, link} entry of a script's search
// result into a release candidate. Both fields are mandatory, anything else
// in the table is ignored.
func candidateFromTable(table *lua.LTable) (*source.Candidate, error) {
	candidate := &source.Candidate{
		Title: stringField(table, "title", ""),
		Link:  stringField(table, "link", ""),
	}

	if candidate.Title == "" || candidate.Link == "" {
		return nil, fmt.Errorf("candidate table needs both title and link")
	}

	return candidate, nil
}

// optionFromTable converts a {name, description, shape} entry of the
// SourceOptions declaration. Only the name is required.
func optionFromTable(table *lua.LTable) (source.Option, error) {
	name := stringField(table, "name", "")
	if name == "" {
		return source.Option{}, fmt.Errorf("option table needs a name")
	}

	return source.Option{
		Name:        name,
		Description: stringField(table, "description", ""),
		Shape:       stringField(table, "shape", ""),
	}, nil
}
