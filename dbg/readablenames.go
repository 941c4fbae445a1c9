// Package dbg turns pointer values into stable, human-readable names for
// debug output.
package dbg

import (
	"fmt"
	"reflect"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

// Names are handed out lazily and memoized for the life of the process, so
// one object always prints as the same name within a run. The mapping is
// deliberately nondeterministic across runs, as a reminder that a name only
// identifies an object inside a single debugging session. The memo is never
// pruned; that leak is fine for a debug aid that costs nothing unless used.

var memo map[interface{}]string

func init() {
	memo = make(map[interface{}]string)
	petname.NonDeterministicMode()
}

// Name returns a readable name for a pointer, e.g. "NobleBullfrog". Nil
// returns "Ø".
func Name(obj interface{}) string {
	if reflect.ValueOf(obj).IsNil() {
		return "Ø"
	}

	if r, ok := memo[obj]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", title(petname.Adjective()), title(petname.Name()))
	memo[obj] = r
	return r
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
