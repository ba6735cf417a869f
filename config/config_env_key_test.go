package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"checkout": map[string]any{
			"taxRate":     0.10,
			"deliveryFee": 2.00,
		},
		"inbox": map[string]any{
			"replyEchoDelay": "2s",
		},
		"snapshot": map[string]any{
			"bucketUrl": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "CHECKOUT_TAXRATE", want: "checkout.taxRate"},
		{envKey: "CHECKOUT_DELIVERYFEE", want: "checkout.deliveryFee"},
		{envKey: "INBOX_REPLYECHODELAY", want: "inbox.replyEchoDelay"},
		{envKey: "SNAPSHOT_BUCKETURL", want: "snapshot.bucketUrl"},
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
