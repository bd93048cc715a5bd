package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
		},
		"store": map[string]any{
			"baseUrl": "",
		},
		"cart": map[string]any{
			"keyPrefix": "",
		},
		"catalog": map[string]any{
			"cacheTtl": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "STORE_BASEURL", want: "store.baseUrl"},
		{envKey: "CART_KEYPREFIX", want: "cart.keyPrefix"},
		{envKey: "CATALOG_CACHETTL", want: "catalog.cacheTtl"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}
