package probe

// Every script prints exactly one JSON object on its last line with a
// fixed set of keys. "ok" is false when the library raised.

const preamble = `import json, sys
sys.path.insert(0, {{ .ProjectDir | quote }})
result = {"ok": True, "error": "", "value": None, "dotted": None, "plain": None}
try:
    import {{ .Module }} as lookup
`

const epilogue = `except Exception as exc:
    result["ok"] = False
    result["error"] = repr(exc)
print(json.dumps(result, default=str))
`

// Description asks for the description of Params.Key.
var Description = Probe{
	Name:        "description_present",
	Description: "get_description returns a non-empty value",
	Script: preamble + `    result["value"] = lookup.get_description({{ .Key | quote }})
` + epilogue,
	Predicate: `ok && value != null && value != ""`,
}

// Search asks for all codes matching Params.Keyword.
var Search = Probe{
	Name:        "search_returns_sequence",
	Description: "search_code returns a result collection",
	Script: preamble + `    result["value"] = list(lookup.search_code({{ .Keyword | quote }}))
` + epilogue,
	Predicate: `ok && type(value) == list`,
}

// DotAgnostic resolves the dotted and the plain form of the same key.
var DotAgnostic = Probe{
	Name:        "dot_agnostic_lookup",
	Description: "dotted and plain keys resolve to the same description",
	Script: preamble + `    result["dotted"] = lookup.get_description({{ .Key | quote }})
    result["plain"] = lookup.get_description({{ .PlainKey | quote }})
` + epilogue,
	Predicate: `ok && dotted != null && dotted == plain`,
}

// Battery is the inline fallback used when no comprehensive test
// script is shipped with the project.
var Battery = []Probe{Description, Search, DotAgnostic}
