package aocerr

// Bail returns a simple message error for an early return:
//
//	if len(lines) == 0 {
//	    return "", aocerr.Bail("empty input")
//	}
func Bail(format string, args ...any) error {
	if len(args) == 0 {
		return New(format)
	}
	return Newf(format, args...)
}

// Ensure returns nil when cond holds and a simple message error otherwise.
func Ensure(cond bool, format string, args ...any) error {
	if cond {
		return nil
	}
	return Bail(format, args...)
}
