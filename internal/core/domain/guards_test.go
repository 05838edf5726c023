package domain

import "testing"

func TestCanSaveDomain(t *testing.T) {
	tests := []struct {
		name        string
		ctx         SaveDomainContext
		wantAllowed bool
		wantReason  string
	}{
		{"named domain", SaveDomainContext{OwnerID: "u1", Name: "Finance"}, true, ""},
		{"blank name", SaveDomainContext{OwnerID: "u1", Name: " "}, false, "name is required"},
		{"no owner", SaveDomainContext{Name: "Finance"}, false, "sign in required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CanSaveDomain(tt.ctx)
			if result.Allowed != tt.wantAllowed {
				t.Errorf("Allowed = %v, want %v", result.Allowed, tt.wantAllowed)
			}
			if !tt.wantAllowed && result.Reason != tt.wantReason {
				t.Errorf("Reason = %q, want %q", result.Reason, tt.wantReason)
			}
		})
	}
}
