package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey(t *testing.T) {
	loaded := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master":  map[string]any{"userName": "tienda"},
		},
		"identity":   map[string]any{"publicKey": "", "signUpUrl": ""},
		"media":      map[string]any{"bucketUrl": "mem://"},
		"inventory":  map[string]any{"lowStockThreshold": 10, "salesWindowDays": 30},
		"pagination": map[string]any{"maxLimit": 100},
	}

	cases := map[string]string{
		"POSTGRES_SSLMODE":            "postgres.sslMode",
		"POSTGRES_MASTER_USERNAME":    "postgres.master.userName",
		"IDENTITY_PUBLICKEY":          "identity.publicKey",
		"IDENTITY_SIGNUPURL":          "identity.signUpUrl",
		"MEDIA_BUCKETURL":             "media.bucketUrl",
		"INVENTORY_LOWSTOCKTHRESHOLD": "inventory.lowStockThreshold",
		"INVENTORY_SALESWINDOWDAYS":   "inventory.salesWindowDays",
		"PAGINATION_MAXLIMIT":         "pagination.maxLimit",
		"QRCODE_SIZE":                 "qrcode.size",
	}

	for envKey, want := range cases {
		assert.Equal(t, want, canonicalizeEnvKey(envKey, loaded), envKey)
	}
}
