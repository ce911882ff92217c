package visitor

import "github.com/viant/tagly/format/text"

type options struct {
	caseFormat text.CaseFormat
}

// Option struct iterator option
type Option func(o *options)

// Options represents struct iterator options
type Options []Option

// Apply applies options
func (o Options) Apply(opts *options) {
	if len(o) == 0 {
		return
	}
	for _, opt := range o {
		opt(opts)
	}
}

// WithCaseFormat formats field names reported by Name with caseFormat
func WithCaseFormat(caseFormat text.CaseFormat) Option {
	return func(o *options) {
		o.caseFormat = caseFormat
	}
}
