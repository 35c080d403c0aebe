package refactor

import (
	"regexp"
	"slices"
	"strconv"
	"strings"
)

// The conversions are deliberately narrow: a literal with positional or
// keyword fields, applied to arguments that are bare (possibly dotted)
// names. Calls, subscripts, starred arguments, and mapping-style
// interpolation all disqualify the site, because the rewrite would need
// to reason about evaluation order to stay safe.
var (
	formatCallRe = regexp.MustCompile(`([A-Za-z]*)('(?:[^'\\\n]|\\.)*'|"(?:[^"\\\n]|\\.)*")\.format\(([^()\n]*)\)`)
	percentRe    = regexp.MustCompile(`([A-Za-z]*)('(?:[^'\\\n]|\\.)*'|"(?:[^"\\\n]|\\.)*")\s*%\s*(\([^()\n]*\)|[A-Za-z_][A-Za-z0-9_.]*)`)
	percentVerb  = regexp.MustCompile(`%(\.\d+)?([srdfige])`)
	fieldRe      = regexp.MustCompile(`\{[^{}]*\}`)
	bareNameRe   = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_.]*$`)
	identRe      = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	kwargRe      = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_]*)\s*=\s*([A-Za-z_][A-Za-z0-9_.]*)$`)
)

// percentEscape hides %% from the verb scan.
const percentEscape = "\x00P"

// ConvertFStrings rewrites `"...".format(args)` calls and
// `"..." % args` interpolations into f-strings where the substitution
// is mechanical. The scan is textual and line-scoped; sites it cannot
// prove safe are left exactly as written.
func ConvertFStrings(text string) (string, bool) {
	out := formatCallRe.ReplaceAllStringFunc(text, convertFormatCall)
	out = convertPercentSites(out)
	return out, out != text
}

// convertPercentSites walks the percent matches by index so each site
// can see the byte that follows it. A match followed by a subscript,
// call, or attribute access is not the whole operand (`"%d" % x[0]`
// formats an element, not x), so those sites stay as written.
func convertPercentSites(text string) string {
	sites := percentRe.FindAllStringIndex(text, -1)
	if sites == nil {
		return text
	}
	var b strings.Builder
	last := 0
	for _, s := range sites {
		b.WriteString(text[last:s[0]])
		site := text[s[0]:s[1]]
		if operandContinues(text, s[1]) {
			b.WriteString(site)
		} else {
			b.WriteString(convertPercent(site))
		}
		last = s[1]
	}
	b.WriteString(text[last:])
	return b.String()
}

func operandContinues(text string, end int) bool {
	if end >= len(text) {
		return false
	}
	switch text[end] {
	case '[', '(', '.':
		return true
	}
	return false
}

// fprefix validates a string prefix and returns the prefix the
// resulting f-string should carry. Bytes and existing f-strings do not
// qualify; a u prefix is dropped, a raw prefix is kept.
func fprefix(prefix string) (string, bool) {
	switch strings.ToLower(prefix) {
	case "", "u":
		return "f", true
	case "r":
		return "fr", true
	}
	return "", false
}

// formatArgs holds the argument list of a .format call: positional
// values in order plus keyword bindings by name.
type formatArgs struct {
	positional []string
	named      map[string]string
}

func splitFormatArgs(s string) (formatArgs, bool) {
	var fa formatArgs
	for _, a := range strings.Split(s, ",") {
		a = strings.TrimSpace(a)
		if a == "" {
			continue
		}
		if m := kwargRe.FindStringSubmatch(a); m != nil {
			if fa.named == nil {
				fa.named = make(map[string]string)
			}
			fa.named[m[1]] = m[2]
			continue
		}
		if !bareNameRe.MatchString(a) || fa.named != nil {
			return formatArgs{}, false
		}
		fa.positional = append(fa.positional, a)
	}
	return fa, len(fa.positional)+len(fa.named) > 0
}

func splitArgs(s string) ([]string, bool) {
	var args []string
	for _, a := range strings.Split(s, ",") {
		a = strings.TrimSpace(a)
		if a == "" {
			continue
		}
		if !bareNameRe.MatchString(a) {
			return nil, false
		}
		args = append(args, a)
	}
	return args, len(args) > 0
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func convertFormatCall(match string) string {
	m := formatCallRe.FindStringSubmatch(match)
	if m == nil {
		return match
	}
	prefix, ok := fprefix(m[1])
	if !ok {
		return match
	}
	args, ok := splitFormatArgs(m[3])
	if !ok {
		return match
	}

	literal := m[2]
	quote := literal[:1]
	body := literal[1 : len(literal)-1]

	// doubled braces are literal text; hide them from the field scan
	// and keep them doubled in the result
	protected := strings.NewReplacer("{{", "\x00O", "}}", "\x00C").Replace(body)

	// a brace that is not part of a complete field is a nested spec
	// like {0:{w}}; the field scan would rewrite only the inner piece
	if strings.ContainsAny(fieldRe.ReplaceAllString(protected, ""), "{}") {
		return match
	}

	auto := 0
	indexed := false
	bad := false
	filled := fieldRe.ReplaceAllStringFunc(protected, func(field string) string {
		inner := field[1 : len(field)-1]
		name, suffix := inner, ""
		if cut := strings.IndexAny(inner, ":!"); cut >= 0 {
			name, suffix = inner[:cut], inner[cut:]
		}
		var value string
		switch {
		case name == "":
			if indexed || auto >= len(args.positional) {
				bad = true
				return field
			}
			value = args.positional[auto]
			auto++
		case isDigits(name):
			n, err := strconv.Atoi(name)
			if err != nil || auto > 0 || n >= len(args.positional) {
				bad = true
				return field
			}
			indexed = true
			value = args.positional[n]
		case identRe.MatchString(name):
			if v, bound := args.named[name]; bound {
				value = v
			} else if slices.Contains(args.positional, name) {
				value = name
			} else {
				bad = true
				return field
			}
		default:
			bad = true
			return field
		}
		return "{" + value + suffix + "}"
	})
	if bad || (auto > 0 && auto != len(args.positional)) {
		return match
	}

	filled = strings.NewReplacer("\x00O", "{{", "\x00C", "}}").Replace(filled)
	return prefix + quote + filled + quote
}

func convertPercent(match string) string {
	m := percentRe.FindStringSubmatch(match)
	if m == nil {
		return match
	}
	prefix, ok := fprefix(m[1])
	if !ok {
		return match
	}
	argstr := m[3]
	if strings.HasPrefix(argstr, "(") {
		argstr = argstr[1 : len(argstr)-1]
	}
	args, ok := splitArgs(argstr)
	if !ok {
		return match
	}

	literal := m[2]
	quote := literal[:1]
	body := strings.ReplaceAll(literal[1:len(literal)-1], "%%", percentEscape)

	verbs := percentVerb.FindAllStringSubmatchIndex(body, -1)
	if len(verbs) != len(args) {
		return match
	}

	var b strings.Builder
	last := 0
	for i, v := range verbs {
		b.WriteString(escapeBraces(body[last:v[0]]))
		precision := ""
		if v[2] >= 0 {
			precision = body[v[2]:v[3]]
		}
		verb := body[v[4]:v[5]]
		switch {
		case precision != "":
			b.WriteString("{" + args[i] + ":" + precision + verb + "}")
		case verb == "r":
			b.WriteString("{" + args[i] + "!r}")
		default:
			b.WriteString("{" + args[i] + "}")
		}
		last = v[1]
	}
	b.WriteString(escapeBraces(body[last:]))

	out := strings.ReplaceAll(b.String(), percentEscape, "%")
	return prefix + quote + out + quote
}

func escapeBraces(s string) string {
	s = strings.ReplaceAll(s, "{", "{{")
	return strings.ReplaceAll(s, "}", "}}")
}
