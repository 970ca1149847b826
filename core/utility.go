package core

import "strings"

// safeString returns s with the NUL terminator the C side expects.
func safeString(s string) string {
	if strings.HasSuffix(s, "\x00") {
		return s
	}
	return s + "\x00"
}

// safeStrings terminates every entry of sgs for the C side.
func safeStrings(sgs []string) []string {
	safe := make([]string, 0, len(sgs))
	for _, s := range sgs {
		safe = append(safe, safeString(s))
	}
	return safe
}

// dedupe removes duplicate names, keeping the first occurrence and
// the original order. Creation lists must stay stable because the
// API reads them positionally.
func dedupe(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

// missing returns the entries of required that are absent from available.
func missing(required, available []string) []string {
	have := make(map[string]struct{}, len(available))
	for _, a := range available {
		have[strings.TrimSuffix(a, "\x00")] = struct{}{}
	}
	var out []string
	for _, r := range required {
		if _, ok := have[strings.TrimSuffix(r, "\x00")]; !ok {
			out = append(out, r)
		}
	}
	return out
}
