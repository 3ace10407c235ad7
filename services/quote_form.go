package services

import "strings"

// Form field names for nested calculator state.
func ExtraFieldName(key ExtraKey, field string) string {
	return keyExtras + "." + string(key) + "." + field
}

func OverrideFieldName(id LineID, field string) string {
	return keyOverrides + "." + string(id) + "." + field
}

// StateFromForm turns flattened form values into the nested calculator
// state accepted by DecodeQuoteConfig. Dotted names such as
// "extras.labour.val" and "overrides.modules.qty" become nested maps; the
// last value wins for repeated fields.
func StateFromForm(values map[string][]string) map[string]any {
	state := make(map[string]any, len(values))
	for name, vals := range values {
		if len(vals) == 0 {
			continue
		}
		val := vals[len(vals)-1]

		parts := strings.Split(name, ".")
		if len(parts) == 1 {
			state[name] = val
			continue
		}
		if len(parts) != 3 || (parts[0] != keyExtras && parts[0] != keyOverrides) {
			continue
		}

		group, _ := state[parts[0]].(map[string]any)
		if group == nil {
			group = make(map[string]any)
			state[parts[0]] = group
		}
		entry, _ := group[parts[1]].(map[string]any)
		if entry == nil {
			entry = make(map[string]any)
			group[parts[1]] = entry
		}
		entry[parts[2]] = val
	}
	return state
}
