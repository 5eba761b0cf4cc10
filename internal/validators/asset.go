package validators

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-theme-sync/internal/catalog"
	"github.com/MKhiriev/go-theme-sync/models"
)

// Field name constants restrict validation to a subset of rules.
const (
	// FieldPath targets the theme-relative path of an asset.
	FieldPath = "path"

	// FieldContent targets the value/attachment pair of an asset.
	FieldContent = "content"

	// FieldThemeID targets the numeric id of a theme.
	FieldThemeID = "theme_id"

	// FieldName targets the name of a theme.
	FieldName = "name"
)

const maxThemeNameLength = 255

// ThemeStoreValidator implements [Validator] for the models accepted by the
// theme store: models.AssetRequest, models.Theme and
// models.CreateThemeRequest, as values or pointers.
type ThemeStoreValidator struct{}

func NewThemeStoreValidator() Validator {
	return &ThemeStoreValidator{}
}

// Validate dispatches on the dynamic type of obj. Returns ErrUnsupportedType
// for any other type.
func (v *ThemeStoreValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.AssetRequest:
		return v.validateAsset(ctx, value, fields...)
	case *models.AssetRequest:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateAsset(ctx, *value, fields...)
	case models.Theme:
		return v.validateTheme(ctx, value, fields...)
	case *models.Theme:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateTheme(ctx, *value, fields...)
	case models.CreateThemeRequest:
		return v.validateTheme(ctx, models.Theme{Name: value.Name}, FieldName)
	case *models.CreateThemeRequest:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateTheme(ctx, models.Theme{Name: value.Name}, FieldName)
	default:
		return ErrUnsupportedType
	}
}

func (v *ThemeStoreValidator) validateAsset(_ context.Context, asset models.AssetRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPath, FieldContent}
	}

	for _, f := range fields {
		switch f {
		case FieldPath:
			if err := catalog.ValidatePath(asset.Path); err != nil {
				return err
			}
		case FieldContent:
			// decoding checks both the value/attachment exclusivity and base64
			if _, err := asset.Payload(); err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidAssetContent, err)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ThemeStoreValidator) validateTheme(_ context.Context, theme models.Theme, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldThemeID, FieldName}
	}

	for _, f := range fields {
		switch f {
		case FieldThemeID:
			if theme.ID <= 0 {
				return ErrInvalidThemeID
			}
		case FieldName:
			name := strings.TrimSpace(theme.Name)
			if name == "" {
				return ErrEmptyThemeName
			}
			if utf8.RuneCountInString(name) > maxThemeNameLength {
				return ErrThemeNameTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
