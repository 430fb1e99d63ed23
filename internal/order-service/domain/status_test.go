package domain

import "testing"

func TestStatusPredicates(t *testing.T) {
	tests := []struct {
		status        Status
		wantPending   bool
		wantCompleted bool
	}{
		{"pending", true, false},
		{"completed", false, true},
		{"shipped", false, false},
		{"PENDING", false, false},
		{"", false, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			if got := tt.status.IsPending(); got != tt.wantPending {
				t.Errorf("IsPending() = %v, want %v", got, tt.wantPending)
			}
			if got := tt.status.IsCompleted(); got != tt.wantCompleted {
				t.Errorf("IsCompleted() = %v, want %v", got, tt.wantCompleted)
			}
		})
	}
}
