package constant

// Global functions a Lua catalog script defines. SearchReleases is
// required, SourceOptions is optional.
const (
	SearchReleasesFn = "SearchReleases"
	SourceOptionsFn  = "SourceOptions"
)

// SourceTemplate scaffolds a new Lua catalog script.
const SourceTemplate = `{{ $divider := repeat "-" (plus (max (len .URL) (len .Name) (len .Author) 3) 12) }}{{ $divider }}
-- @name    {{ .Name }}
-- @url     {{ .URL }}
-- @author  {{ .Author }}
-- @license MIT
{{ $divider }}


---@alias release { title: string, link: string }
---@alias option { name: string, description: string, shape: string }


----- IMPORTS -----
--- END IMPORTS ---



----- VARIABLES -----
--- END VARIABLES ---



----- MAIN -----

--- Searches the catalog for release candidates.
-- @param query string Text to search for
-- @return release[] Table of releases
function {{ .SearchReleasesFn }}(query)
	return {}
end


--- Lists the flags this catalog accepts. Optional.
-- @return option[] Table of options
function {{ .SourceOptionsFn }}()
	return {}
end


--- END MAIN ---




----- HELPERS -----
--- END HELPERS ---

-- ex: ts=4 sw=4 et filetype=lua
`
