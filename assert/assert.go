package assert

import "github.com/oomph-ac/kinematic/oerror"

// IsTrue panics with an oerror.Error when ok is false. It guards programmer errors, such as
// constructing a controller from configuration that never went through settings validation.
func IsTrue(ok bool, message string, args ...any) {
	if !ok {
		panic(oerror.New(message, args...))
	}
}
