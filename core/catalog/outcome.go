package catalog

// Outcome is the explicit result of re-invoking a tool on behalf of a prompt
// template: either a rendered success value or the error that stopped the
// call. Renderers embed [Outcome.Text] in their narrative, so a failure is
// reported to the reader instead of being suppressed or re-raised.
type Outcome struct {
	value string
	err   error
}

// Succeeded returns an Outcome carrying a rendered tool result.
func Succeeded(value string) Outcome {
	return Outcome{value: value}
}

// Failed returns an Outcome carrying the error that stopped the tool call.
func Failed(err error) Outcome {
	return Outcome{err: err}
}

// OK reports whether the tool call produced a value.
func (o Outcome) OK() bool { return o.err == nil }

// Err returns the underlying error, or nil for a successful outcome.
func (o Outcome) Err() error { return o.err }

// Text returns the success value, or "Error: <message>" when the call
// failed. This rendered form is what prompt templates embed.
func (o Outcome) Text() string {
	if o.err != nil {
		return "Error: " + o.err.Error()
	}
	return o.value
}
