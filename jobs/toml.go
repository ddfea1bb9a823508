package jobs

import (
	"github.com/pelletier/go-toml/v2/unstable"
)

// tomlIDLiterals returns, per entry of the top-level jobs list, the source
// text of a numeric id. Entries whose id is a string or absent get "".
// BurntSushi/toml only hands UnmarshalTOML the decoded number, so 10.50
// would come back as 10.5 and 0x1F as 31.
func tomlIDLiterals(data []byte) ([]string, error) {
	var p unstable.Parser
	p.Reset(data)

	var ids []string
	inJobs := false
	for p.NextExpression() {
		expr := p.Expression()
		switch expr.Kind {
		case unstable.ArrayTable:
			inJobs = keyIs(expr.Key(), "jobs")
			if inJobs {
				ids = append(ids, "")
			}
		case unstable.Table:
			inJobs = false
		case unstable.KeyValue:
			switch {
			case inJobs && keyIs(expr.Key(), "id"):
				ids[len(ids)-1] = numberLiteral(expr.Value())
			case !inJobs && len(ids) == 0 && keyIs(expr.Key(), "jobs"):
				ids = inlineIDLiterals(expr.Value())
			}
		}
	}
	return ids, p.Error()
}

// inlineIDLiterals handles jobs = [ { id = 1, ... }, ... ]
func inlineIDLiterals(list *unstable.Node) []string {
	if list.Kind != unstable.Array {
		return nil
	}
	var ids []string
	entries := list.Children()
	for entries.Next() {
		lit := ""
		fields := entries.Node().Children()
		for fields.Next() {
			kv := fields.Node()
			if kv.Kind == unstable.KeyValue && keyIs(kv.Key(), "id") {
				lit = numberLiteral(kv.Value())
			}
		}
		ids = append(ids, lit)
	}
	return ids
}

// keyIs reports whether a key is exactly the single part name
func keyIs(key unstable.Iterator, name string) bool {
	if !key.Next() || string(key.Node().Data) != name {
		return false
	}
	return !key.Next()
}

func numberLiteral(value *unstable.Node) string {
	switch value.Kind {
	case unstable.Integer, unstable.Float:
		return string(value.Data)
	}
	return ""
}
