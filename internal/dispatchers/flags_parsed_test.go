package dispatchers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParsedFlags_Has(t *testing.T) {
	tests := []struct {
		name     string
		flags    []string
		checkFor string
		want     bool
	}{
		{name: "flag present", flags: []string{"--dry-run", "--no-color"}, checkFor: "--dry-run", want: true},
		{name: "flag not present", flags: []string{"--dry-run"}, checkFor: "--no-color", want: false},
		{name: "empty flags", flags: []string{}, checkFor: "--dry-run", want: false},
		{name: "flag with value not detected as boolean", flags: []string{"--log-file=x"}, checkFor: "--log-file", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, NewParsedFlags(tt.flags).Has(tt.checkFor))
		})
	}
}

func TestParsedFlags_String(t *testing.T) {
	flags := NewParsedFlags([]string{"--log-file=/tmp/mk.log", "--log-level=", "-n"})

	require.Equal(t, "/tmp/mk.log", flags.String("--log-file", ""))
	require.Equal(t, "", flags.String("--log-level", "debug"))
	require.Equal(t, "fallback", flags.String("--missing", "fallback"))
}

func TestParsedFlags_Nil(t *testing.T) {
	var flags *ParsedFlags

	require.Nil(t, flags.Raw())
	require.False(t, flags.Has("--help"))
	require.Equal(t, "d", flags.String("--log-file", "d"))
}
