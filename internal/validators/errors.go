package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidThemeID      = errors.New("invalid theme ID")
	ErrEmptyThemeName      = errors.New("theme name is required")
	ErrThemeNameTooLong    = errors.New("theme name is too long")
	ErrInvalidAssetContent = errors.New("invalid asset content")
)
