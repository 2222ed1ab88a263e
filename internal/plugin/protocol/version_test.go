package protocol

import (
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		version     string
		expectError bool
		major       int
		minor       int
		patch       int
	}{
		{"0.1.0", false, 0, 1, 0},
		{"1.0.0", false, 1, 0, 0},
		{"10.99.42", false, 10, 99, 42},
		{"invalid", true, 0, 0, 0},
		{"1", true, 0, 0, 0},
		{"1.2", true, 0, 0, 0},
		{"1.-2.0", true, 0, 0, 0},
		{"1.2.x", true, 0, 0, 0},
	}

	for _, tt := range tests {
		v, err := Parse(tt.version)
		if tt.expectError {
			if err == nil {
				t.Errorf("Parse(%q) expected error but got none", tt.version)
			}
			continue
		}
		if err != nil {
			t.Errorf("Parse(%q) unexpected error: %v", tt.version, err)
			continue
		}
		if v.Major != tt.major || v.Minor != tt.minor || v.Patch != tt.patch {
			t.Errorf("Parse(%q) = %s, want %d.%d.%d", tt.version, v, tt.major, tt.minor, tt.patch)
		}
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"0.1.0", "0.1.0", 0},
		{"0.1.0", "0.2.0", -1},
		{"1.0.0", "0.9.9", 1},
		{"0.1.2", "0.1.10", -1},
	}

	for _, tt := range tests {
		a, _ := Parse(tt.a)
		b, _ := Parse(tt.b)
		if got := a.Compare(b); got != tt.want {
			t.Errorf("Compare(%s, %s) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestIsCompatible(t *testing.T) {
	tests := []struct {
		pluginVersion string
		compatible    bool
		errorContains string
	}{
		{"0.1.0", true, ""},
		{"0.1.7", true, ""},
		{"0.4.0", true, ""},
		{"0.0.9", false, "too old"},
		{"1.0.0", false, "incompatible major version"},
		{"invalid", false, "failed to parse"},
		{"1.2", false, "invalid version format"},
	}

	for _, tt := range tests {
		t.Run(tt.pluginVersion, func(t *testing.T) {
			compatible, err := IsCompatible(tt.pluginVersion)
			if compatible != tt.compatible {
				t.Fatalf("IsCompatible(%q) = %v, want %v (err: %v)", tt.pluginVersion, compatible, tt.compatible, err)
			}
			if tt.errorContains == "" {
				if err != nil {
					t.Errorf("IsCompatible(%q) unexpected error: %v", tt.pluginVersion, err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.errorContains) {
				t.Errorf("IsCompatible(%q) error = %v, want error containing %q", tt.pluginVersion, err, tt.errorContains)
			}
		})
	}
}
