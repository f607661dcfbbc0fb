package assert

import "github.com/oomph-ac/treefall/oerror"

// IsTrue panics with an *oerror.Error if ok is false. It is only used for setup-time programmer errors,
// never inside a simulation tick.
func IsTrue(ok bool, message string, args ...any) {
	if !ok {
		panic(oerror.New(message, args...))
	}
}
