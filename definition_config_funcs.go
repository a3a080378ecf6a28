package argspec

// WithCommandDescription sets the description shown in usage output
func WithCommandDescription(description string) ConfigureDefinitionFunc {
	return func(def *Definition, err *error) {
		def.description = description
	}
}

// WithArgument declares a positional argument while building the definition
func WithArgument(name string, spec *ArgumentSpec) ConfigureDefinitionFunc {
	return func(def *Definition, err *error) {
		*err = def.AddArgument(name, spec)
	}
}

// WithOption declares a flag-style option while building the definition
func WithOption(name string, spec *OptionSpec) ConfigureDefinitionFunc {
	return func(def *Definition, err *error) {
		*err = def.AddOption(name, spec)
	}
}

// WithHandler appends a handler to the interception chain
func WithHandler(trigger string, handler HandlerFunc) ConfigureDefinitionFunc {
	return func(def *Definition, err *error) {
		def.AddHandler(trigger, handler)
	}
}

// WithRunner attaches the primary execution body
func WithRunner(runner RunnerFunc) ConfigureDefinitionFunc {
	return func(def *Definition, err *error) {
		def.SetRunner(runner)
	}
}

// WithSink replaces the default output sink
func WithSink(sink OutputSink) ConfigureDefinitionFunc {
	return func(def *Definition, err *error) {
		def.sink = sink
	}
}

// WithoutHelp suppresses the automatic registration of the help option
func WithoutHelp() ConfigureDefinitionFunc {
	return func(def *Definition, err *error) {
		def.noHelp = true
	}
}
