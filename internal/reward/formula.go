package reward

import (
	"regexp"
	"strconv"
	"strings"
)

// Spec is the parsed structured form of a quest's reward expression
type Spec struct {
	Flat        int    `json:"flat"`
	PerUnit     int    `json:"per_unit"`
	Unit        string `json:"unit,omitempty"`
	MaxUnits    int    `json:"max_units,omitempty"` // 0 = unbounded
	CollabBonus int    `json:"collab_bonus,omitempty"`
}

// IsZero reports whether the spec grants nothing
func (s Spec) IsZero() bool {
	return s.Flat == 0 && s.PerUnit == 0 && s.CollabBonus == 0
}

// Formula tokens are matched anywhere in the expression, case-insensitively.
// Malformed or missing tokens degrade to the zero value; parsing never fails.
var (
	flatPattern       = regexp.MustCompile(`(?i)flat:(\d+)`)
	perUnitPattern    = regexp.MustCompile(`(?i)per_unit:(\d+)`)
	unitQuotedPattern = regexp.MustCompile(`(?i)\bunit:"((?:[^"\\]|\\.)*)"`)
	unitPattern       = regexp.MustCompile(`(?i)\bunit:(\S+)`)
	maxPattern        = regexp.MustCompile(`(?i)max:(\d+)`)
	collabPattern     = regexp.MustCompile(`(?i)collab_bonus:(\d+)`)
)

// ParseFormula parses a reward expression into a Spec.
//
// Accepted inputs: a bare number (flat reward), the literals "No reward"
// and "N/A" (all zero), or a space-separated sequence of key:value tokens
// (flat, per_unit, unit, max, collab_bonus) in any order.
func ParseFormula(raw string) Spec {
	expr := strings.TrimSpace(raw)
	if expr == "" {
		return Spec{}
	}

	if strings.EqualFold(expr, "no reward") || strings.EqualFold(expr, "n/a") {
		return Spec{}
	}

	if n, err := strconv.Atoi(expr); err == nil {
		if n < 0 {
			n = 0
		}
		return Spec{Flat: n}
	}

	spec := Spec{
		Flat:        matchInt(flatPattern, expr),
		PerUnit:     matchInt(perUnitPattern, expr),
		MaxUnits:    matchInt(maxPattern, expr),
		CollabBonus: matchInt(collabPattern, expr),
	}

	if m := unitQuotedPattern.FindStringSubmatch(expr); m != nil {
		spec.Unit = unescapeQuotes(m[1])
	} else if m := unitPattern.FindStringSubmatch(expr); m != nil {
		spec.Unit = m[1]
	}

	return spec
}

func matchInt(pattern *regexp.Regexp, expr string) int {
	m := pattern.FindStringSubmatch(expr)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}

func unescapeQuotes(s string) string {
	s = strings.ReplaceAll(s, `\"`, `"`)
	return strings.ReplaceAll(s, `\\`, `\`)
}
