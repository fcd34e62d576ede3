package enumdef

import "errors"

var (
	ErrParsingCancelled         = errors.New("enumdef: parsing cancelled")
	ErrFailedToParseYAML        = errors.New("enumdef: failed to parse YAML content")
	ErrInvalidDefinition        = errors.New("enumdef: invalid enum definition")
	ErrMissingValue             = errors.New("enumdef: member has no value")
	ErrMixedValueTypes          = errors.New("enumdef: member values must be all integers or all strings")
	ErrEmptyContent             = errors.New("enumdef: empty definition")
	ErrUnsupportedFileExtension = errors.New("enumdef: unsupported file extension")
	ErrFailedToReadFile         = errors.New("enumdef: failed to read definition file")
	ErrNoDefinitions            = errors.New("enumdef: no definition files found")
)
