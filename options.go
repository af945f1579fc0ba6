package fontchain

import "log/slog"

import "github.com/tinne26/fontchain/font"
import "github.com/tinne26/fontchain/sizer"

// Option configures a [Chain] during creation.
//
// Example:
//
//	lib := font.NewLibrary()
//	_, _, err := lib.ParseAllFromPath("assets/fonts")
//	if err != nil { ... }
//	chain := fontchain.NewChain(specs, fontchain.WithStore(lib))
type Option func(*chainOptions)

type chainOptions struct {
	store font.Store
	logger *slog.Logger
	sizer sizer.Sizer
}

func defaultOptions() chainOptions {
	return chainOptions{
		store: nil, // a font.SystemStore is created on demand
		logger: Logger(),
		sizer: &sizer.DefaultSizer{},
	}
}

// WithStore sets the font store used to find font families. By default,
// a [font.SystemStore] is created, but only if some family other than
// [font.BuiltinFamily] is requested.
func WithStore(store font.Store) Option {
	return func(o *chainOptions) {
		o.store = store
	}
}

// WithLogger sets the logger where the chain reports load failures and
// unresolved characters. Defaults to the package logger (see [SetLogger]()).
func WithLogger(logger *slog.Logger) Option {
	return func(o *chainOptions) {
		if logger == nil { logger = newNopLogger() }
		o.logger = logger
	}
}

// WithSizer sets the sizer used to compute line heights, baseline offsets
// and glyph advances. Defaults to [sizer.DefaultSizer].
func WithSizer(fontSizer sizer.Sizer) Option {
	return func(o *chainOptions) {
		if fontSizer == nil { panic("nil sizer") }
		o.sizer = fontSizer
	}
}
