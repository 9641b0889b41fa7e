package listscript

// Option is a function that configures a Runner.
type Option func(runner *Runner)

// WithStopOnError makes the Runner abort at the first Command that fails instead of logging the failure and
// continuing with the next one.
func WithStopOnError(stopOnError bool) Option {
	return func(runner *Runner) {
		runner.optsStopOnError = stopOnError
	}
}
