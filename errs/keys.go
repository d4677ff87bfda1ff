package errs

// Prefix for all cmdline translation keys
const (
	prefixKey = "cmdline"
)

const (
	ErrorPrefixKey    = prefixKey + ".error"
	ParseErrorPathKey = ErrorPrefixKey + ".parse"
	MessagePrefixKey  = prefixKey + ".msg"
	HelpPrefixKey     = prefixKey + ".help"
)

// Parse errors
const (
	ErrRequiredOptionKey  = ErrorPrefixKey + ".required_option"
	ErrMissingValueKey    = ErrorPrefixKey + ".missing_value"
	ErrUnexpectedInputKey = ErrorPrefixKey + ".unexpected_input"
	ErrInvalidValueKey    = ErrorPrefixKey + ".invalid_value"
)

// Schema construction errors
const (
	ErrEmptyNameKey             = ErrorPrefixKey + ".empty_name"
	ErrInvalidShortKeyKey       = ErrorPrefixKey + ".invalid_short_key"
	ErrDuplicateSubcommandKey   = ErrorPrefixKey + ".duplicate_subcommand"
	ErrDuplicateKeyKey          = ErrorPrefixKey + ".duplicate_key"
	ErrNoSubcommandKey          = ErrorPrefixKey + ".no_subcommand"
	ErrNilDefinitionKey         = ErrorPrefixKey + ".nil_definition"
	ErrUnknownTransformKey      = ErrorPrefixKey + ".unknown_transform"
	ErrUnsupportedFormatKey     = ErrorPrefixKey + ".unsupported_format"
	ErrSchemaDecodeKey          = ErrorPrefixKey + ".schema_decode"
	ErrOptionNotSetKey          = ErrorPrefixKey + ".option_not_set"
	ErrUnsupportedConversionKey = ErrorPrefixKey + ".unsupported_conversion"
	ErrUnsupportedShellKey      = ErrorPrefixKey + ".unsupported_shell"
	ErrInvalidDefaultKey        = ErrorPrefixKey + ".invalid_default"
	ErrDefaultNotScalarKey      = ErrorPrefixKey + ".default_not_scalar"
	ErrInvalidLineKey           = ErrorPrefixKey + ".invalid_line"
)

// Value conversion errors
const (
	ErrParseIntKey      = ParseErrorPathKey + ".int"
	ErrParseUintKey     = ParseErrorPathKey + ".uint"
	ErrParseFloatKey    = ParseErrorPathKey + ".float"
	ErrParseBoolKey     = ParseErrorPathKey + ".bool"
	ErrParseDurationKey = ParseErrorPathKey + ".duration"
	ErrParseTimeKey     = ParseErrorPathKey + ".time"
	ErrParseUUIDKey     = ParseErrorPathKey + ".uuid"
	ErrParseVersionKey  = ParseErrorPathKey + ".version"
	ErrNotOneOfKey      = ParseErrorPathKey + ".not_one_of"
)

// UI messages
const (
	MsgOrKey         = MessagePrefixKey + ".or"
	MsgOptionalKey   = MessagePrefixKey + ".optional"
	MsgRequiredKey   = MessagePrefixKey + ".required"
	MsgDefaultsToKey = MessagePrefixKey + ".defaults_to"
	MsgMultipleKey   = MessagePrefixKey + ".multiple"
)

// Help text
const (
	HelpUsageKey       = HelpPrefixKey + ".usage"
	HelpSubcommandsKey = HelpPrefixKey + ".subcommands"
	HelpOptionsKey     = HelpPrefixKey + ".options"
)
