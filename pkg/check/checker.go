package check

// Checker is implemented by all check types.
// Each check inspects one open descriptor and returns a Result
// indicating success or failure.
//
// Implementations:
//   - fdcheck.Check: resolves a descriptor's path and verifies expectations on it
type Checker interface {
	Run() Result
}
