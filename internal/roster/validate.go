package roster

import "strings"

// Validate checks raw name slots against cfg. Rules are applied in order and
// the first failure is returned:
//
//  1. every slot must be non-blank after trimming (*EmptyNameError)
//  2. at least one player must remain (*NoPlayersError)
//  3. there must be at least cfg.TeamCount players (*InsufficientPlayersError)
//
// On success the trimmed names are returned in their original order together
// with cfg. Validate never mutates names.
func Validate(names []string, cfg TeamConfig) (ValidatedInput, error) {
	players := make([]string, 0, len(names))
	for i, name := range names {
		trimmed := strings.TrimSpace(name)
		if trimmed == "" {
			return ValidatedInput{}, &EmptyNameError{Index: i}
		}
		players = append(players, trimmed)
	}

	if len(players) == 0 {
		return ValidatedInput{}, &NoPlayersError{}
	}

	if len(players) < cfg.TeamCount {
		return ValidatedInput{}, &InsufficientPlayersError{
			Required:  cfg.TeamCount,
			Available: len(players),
		}
	}

	return ValidatedInput{Players: players, Config: cfg}, nil
}
