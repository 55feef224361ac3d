package ctjson

// ExecMode selects the skipper backend used to scan past string and
// bracketed values without decoding them.
type ExecMode uint8

const (
	// ExecRuntime is the portable, pure-Go scalar skipper. It is also used
	// in place of ExecSIMD on any CPU without the needed support, or any
	// build where the simd backend was not compiled in (see exec_scalar.go
	// / exec_simd_amd64.go).
	ExecRuntime ExecMode = iota
	// ExecSIMD uses a vectorized byte scan for skip_string's quote search
	// when the host CPU supports it. Falls back to ExecRuntime otherwise.
	ExecSIMD
)

// Options carries the ParseState policy flags from spec §6: CheckedParseMode,
// AllowEscapedNames and ExecMode, plus the strict-unknown-member switch.
type Options struct {
	// Checked enables bounds and well-formedness checks on the hot path.
	// Default: true.
	Checked bool
	// AllowEscapedNames enables escape handling inside member names (JSON
	// keys in the wild rarely use them, so this defaults off).
	// Default: false.
	AllowEscapedNames bool
	// ExecMode selects the skipper backend.
	// Default: ExecSIMD (degrades to ExecRuntime if unsupported).
	ExecMode ExecMode
	// StrictUnknown rejects members in the JSON text that are not present
	// in the schema with an UnknownMember error, instead of skipping them.
	// Default: false.
	StrictUnknown bool
	// UnsafeStrings avoids copying escape-free string members, aliasing the
	// returned Go string directly over the input buffer's bytes instead
	// (the input must then outlive every such string). Default: false.
	UnsafeStrings bool
}

// DefaultOptions returns the options used when a caller does not supply
// any: checked parsing, SIMD skipper when available, unknown members
// tolerated.
func DefaultOptions() Options {
	return Options{
		Checked:           true,
		AllowEscapedNames: false,
		ExecMode:          ExecSIMD,
		StrictUnknown:     false,
	}
}

// Option configures an Options value. It follows the same functional-option
// shape the parser's original single option (copy-strings-by-default) used.
type Option func(*Options)

// WithChecked toggles bounds and well-formedness checking on the hot path.
// Default: true.
func WithChecked(b bool) Option {
	return func(o *Options) { o.Checked = b }
}

// WithAllowEscapedNames toggles escape handling inside member names.
// Default: false.
func WithAllowEscapedNames(b bool) Option {
	return func(o *Options) { o.AllowEscapedNames = b }
}

// WithExecMode selects the skipper backend.
// Default: ExecSIMD.
func WithExecMode(m ExecMode) Option {
	return func(o *Options) { o.ExecMode = m }
}

// WithStrictUnknown rejects JSON object members not present in the
// schema instead of skipping over them.
// Default: false.
func WithStrictUnknown(b bool) Option {
	return func(o *Options) { o.StrictUnknown = b }
}

// WithUnsafeStrings toggles zero-copy aliasing for escape-free string
// members, continuing the teacher's WithCopyStrings idiom in the opposite
// direction: the teacher defaulted to copying tape-backed strings out of
// its reusable parse buffer, and WithCopyStrings(false) opted into
// aliasing it instead; ctjson's input is already caller-owned per parse,
// so the default is to copy (matching spec §5's borrow-safety guidance
// for ordinary use) and WithUnsafeStrings(true) opts into aliasing.
// Default: false.
func WithUnsafeStrings(b bool) Option {
	return func(o *Options) { o.UnsafeStrings = b }
}

func buildOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	return o
}
