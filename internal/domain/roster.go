package domain

import (
	"fmt"
	"slices"
	"strings"
)

// JoinRule decides whether an inscription belongs to an event's roster.
type JoinRule func(event Event, ins Inscription) bool

// JoinByEventName matches on the denormalized event name. Two events sharing a name share a
// roster, and renaming an event orphans its inscriptions.
func JoinByEventName(event Event, ins Inscription) bool {
	return ins.EventName == event.Name
}

// JoinByEventID matches on the stable event identifier only.
func JoinByEventID(event Event, ins Inscription) bool {
	return ins.EventID != "" && ins.EventID == event.ID
}

// JoinByEventIDOrName uses the identifier when the inscription carries one and falls back to
// the name for legacy records.
func JoinByEventIDOrName(event Event, ins Inscription) bool {
	if ins.EventID != "" {
		return ins.EventID == event.ID
	}
	return JoinByEventName(event, ins)
}

// ParseJoinRule maps a configuration value to a JoinRule.
func ParseJoinRule(name string) (JoinRule, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "id_or_name":
		return JoinByEventIDOrName, nil
	case "id":
		return JoinByEventID, nil
	case "name":
		return JoinByEventName, nil
	default:
		return nil, fmt.Errorf("%w: unknown join rule %q", ErrInvalidInput, name)
	}
}

// BuildRoster returns the inscriptions of all that belong to event, in their original order.
// The result is never nil.
func BuildRoster(event Event, all []Inscription, rule JoinRule) []Inscription {
	if rule == nil {
		rule = JoinByEventIDOrName
	}
	roster := make([]Inscription, 0, len(all))
	for _, ins := range all {
		if rule(event, ins) {
			roster = append(roster, ins)
		}
	}
	return roster
}

// MatchesSearch reports whether the inscription's username contains term, ignoring case.
// An empty term matches everything.
func MatchesSearch(ins Inscription, term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(ins.Username), strings.ToLower(term))
}

// FilterRoster keeps the roster entries matching term, preserving order. The result is never nil.
func FilterRoster(roster []Inscription, term string) []Inscription {
	filtered := make([]Inscription, 0, len(roster))
	for _, ins := range roster {
		if MatchesSearch(ins, term) {
			filtered = append(filtered, ins)
		}
	}
	return filtered
}

// FindViewerInscription returns the first roster entry registered to the viewer.
func FindViewerInscription(roster []Inscription, viewer Viewer) (Inscription, bool) {
	if viewer.Username == "" {
		return Inscription{}, false
	}
	for _, ins := range roster {
		if ins.Username == viewer.Username {
			return ins, true
		}
	}
	return Inscription{}, false
}

// RemoveInscription returns roster without the entry with the given id, and whether one was removed.
func RemoveInscription(roster []Inscription, id InscriptionID) ([]Inscription, bool) {
	idx := slices.IndexFunc(roster, func(ins Inscription) bool { return ins.ID == id })
	if idx < 0 {
		return roster, false
	}
	out := make([]Inscription, 0, len(roster)-1)
	out = append(out, roster[:idx]...)
	out = append(out, roster[idx+1:]...)
	return out, true
}

// ContainsInscription reports whether roster holds an entry with the given id.
func ContainsInscription(roster []Inscription, id InscriptionID) bool {
	return slices.ContainsFunc(roster, func(ins Inscription) bool { return ins.ID == id })
}

// CancelPolicy decides whether viewer may cancel ins.
type CancelPolicy func(viewer Viewer, ins Inscription) bool

// DenyAll never allows cancellation.
func DenyAll(Viewer, Inscription) bool { return false }

// AllowOwnInscription lets a viewer cancel their own registration.
func AllowOwnInscription(viewer Viewer, ins Inscription) bool {
	return viewer.Username != "" && viewer.Username == ins.Username
}

// AllowUsernames lets the listed viewers cancel any inscription.
func AllowUsernames(usernames ...string) CancelPolicy {
	allowed := make(map[string]struct{}, len(usernames))
	for _, u := range usernames {
		u = strings.TrimSpace(u)
		if u != "" {
			allowed[u] = struct{}{}
		}
	}
	return func(viewer Viewer, _ Inscription) bool {
		_, ok := allowed[viewer.Username]
		return ok
	}
}

// AllowRoles lets viewers holding any of the roles cancel any inscription.
func AllowRoles(roles ...string) CancelPolicy {
	return func(viewer Viewer, _ Inscription) bool {
		for _, r := range viewer.Roles {
			if slices.Contains(roles, r) {
				return true
			}
		}
		return false
	}
}

// AnyPolicy allows when at least one of the policies allows.
func AnyPolicy(policies ...CancelPolicy) CancelPolicy {
	return func(viewer Viewer, ins Inscription) bool {
		for _, p := range policies {
			if p != nil && p(viewer, ins) {
				return true
			}
		}
		return false
	}
}
