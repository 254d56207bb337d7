package cats

import (
	"fmt"
	"strings"
)

// valueSep joins the values of a multi-value flag into a single flag value.
const valueSep = "\x1f"

// flagArity lists flags that take more than one value, like --create NAME AGE FEATURES.
var flagArity = map[string]int{
	"create":      3,
	"update-age":  2,
	"add-feature": 2,
}

// packArgs rewrites "--create a b c" into "--create=a\x1fb\x1fc" so the flag
// parser sees a single value. "--create=a b c" is accepted as well.
func packArgs(args []string) ([]string, error) {
	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			out = append(out, args[i:]...)
			break
		}
		if !strings.HasPrefix(arg, "--") {
			out = append(out, arg)
			continue
		}

		name, inline, hasInline := strings.Cut(strings.TrimPrefix(arg, "--"), "=")
		n, ok := flagArity[name]
		if !ok {
			out = append(out, arg)
			continue
		}

		var values []string
		if hasInline {
			values = append(values, inline)
		}
		for len(values) < n {
			i++
			if i >= len(args) {
				return nil, fmt.Errorf("flag --%s expects %d arguments", name, n)
			}
			values = append(values, args[i])
		}
		out = append(out, "--"+name+"="+strings.Join(values, valueSep))
	}
	return out, nil
}

// tupleValue is a flag value holding exactly n strings.
type tupleValue struct {
	n      int
	values []string
}

func newTupleValue(n int) *tupleValue {
	return &tupleValue{n: n}
}

func (v *tupleValue) String() string {
	return strings.Join(v.values, " ")
}

func (v *tupleValue) Set(s string) error {
	parts := strings.Split(s, valueSep)
	if len(parts) != v.n {
		return fmt.Errorf("expected %d values, got %d", v.n, len(parts))
	}
	v.values = parts
	return nil
}

func (v *tupleValue) Type() string {
	return "tuple"
}

func (v *tupleValue) isSet() bool {
	return len(v.values) == v.n
}

// splitFeatures parses a comma separated feature list, trimming blanks.
func splitFeatures(csv string) []string {
	features := []string{}
	for _, f := range strings.Split(csv, ",") {
		if f = strings.TrimSpace(f); f != "" {
			features = append(features, f)
		}
	}
	return features
}
