package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanVersion(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"v1.2.3", "v1.2.3"},
		{"v1.2.3+dirty", "v1.2.3"},
		{"v0.3.5-edfdd54", "v0.3.5-edfdd54"},
		{"v1.2.3-alpha.1", "v1.2.3-alpha.1"},
		{"v1.2.3-0.20220101123456-abcdef123456", "v1.2.3"},
		{"v1.2.3-0.20220101123456-abcdef123456+dirty", "v1.2.3"},
	}

	for _, test := range tests {
		t.Run(test.in, func(t *testing.T) {
			assert.Equal(t, test.want, cleanVersion(test.in))
		})
	}
}

func TestGenerateBannerTruncatesCommit(t *testing.T) {
	banner := GenerateBanner("v1.0.0", "0123456789abcdef")
	assert.Contains(t, banner, "012345")
	assert.NotContains(t, banner, "0123456789")
}
