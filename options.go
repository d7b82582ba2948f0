// Copyright (c) 2026 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.8.22
//

package golsq

// Condition numbers above this default trigger a warning.
const DefaultMaxCondNum = 1.0e8

// Options controls the condition-number diagnostic of the solvers.
// The zero value of MaxCondNum and a nil Sink fall back to defaults;
// passing a nil *Options means DefaultOptions.
type Options struct {
	CheckCondNum bool    // Check the condition number before solving
	MaxCondNum   float64 // Warn when the condition number exceeds this
	Sink         DiagSink
}

func DefaultOptions() Options {
	return Options{
		CheckCondNum: true,
		MaxCondNum:   DefaultMaxCondNum,
		Sink:         StderrSink{},
	}
}

func (o *Options) withDefaults() Options {
	if o == nil {
		return DefaultOptions()
	}
	v := *o
	if v.MaxCondNum <= 0 {
		v.MaxCondNum = DefaultMaxCondNum
	}
	if v.Sink == nil {
		v.Sink = StderrSink{}
	}
	return v
}
