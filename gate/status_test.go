package gate

import "testing"

func TestClassifyStatus(t *testing.T) {
	tests := []struct {
		status string
		want   MembershipStatus
		joined bool
	}{
		{"creator", StatusMember, true},
		{"administrator", StatusMember, true},
		{"member", StatusMember, true},
		{"restricted", StatusMember, true},
		{"left", StatusLeft, false},
		{"kicked", StatusKicked, false},
		{"", StatusUnknown, false},
		{"banana", StatusUnknown, false},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			got := ClassifyStatus(tt.status)
			if got != tt.want {
				t.Errorf("ClassifyStatus(%q) = %v, want %v", tt.status, got, tt.want)
			}
			if got.Joined() != tt.joined {
				t.Errorf("ClassifyStatus(%q).Joined() = %v, want %v", tt.status, got.Joined(), tt.joined)
			}
		})
	}
}
