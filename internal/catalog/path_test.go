// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePath(t *testing.T) {
	tests := []struct {
		path  string
		valid bool
	}{
		{"assets/style.css", true},
		{"layouts/theme.liquid", true},
		{"config/settings_data.json", true},
		{"snippets/nested/card.liquid", true},
		{"templates/customers/login.liquid", true},
		{"locales/en.json", false},
		{"assets", false},
		{"assets/", false},
		{"config.yml", false},
		{"/assets/style.css", false},
		{"assets/../config.yml", false},
		{"assets/./a.css", false},
		{`assets\style.css`, false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			err := ValidatePath(tt.path)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidAssetPath)
			}
			assert.Equal(t, tt.valid, IsValidPath(tt.path))
		})
	}
}
