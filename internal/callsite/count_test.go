package callsite

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountRelevantCommas(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    int
		wantErr bool
	}{
		{
			name: "two top-level arguments",
			line: "(, x, y)",
			want: 2,
		},
		{
			name: "commas inside nested call are skipped",
			line: "(, g(a, b))",
			want: 1,
		},
		{
			name: "deep nesting",
			line: "(, f(g(a, b), h(c)), (d, e))",
			want: 2,
		},
		{
			name: "comma after the wrapper is closed",
			line: "(, x) // a, b",
			want: 1,
		},
		{
			name: "empty line",
			line: "",
			want: 0,
		},
		{
			name:    "closing parenthesis without opening one",
			line:    "(, a)) + (b",
			want:    1,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CountRelevantCommas(tt.line)
			if (err != nil) != tt.wantErr {
				t.Errorf("CountRelevantCommas() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCount(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		want   Counts
		wantOk bool
	}{
		{
			name:   "category and two arguments",
			text:   `LogPrint("category", "value is %d and %s\n", x, y);`,
			want:   Counts{Placeholders: 2, Arguments: 2, Format: `"value is %d and %s\n"`},
			wantOk: true,
		},
		{
			name:   "missing argument",
			text:   `LogPrintf("%d items, cost %d\n", count);`,
			want:   Counts{Placeholders: 2, Arguments: 1, Format: `"%d items, cost %d\n"`},
			wantOk: true,
		},
		{
			name:   "reassembled multi-line call",
			text:   `LogPrint("net",    "received %d bytes\n", n);`,
			want:   Counts{Placeholders: 1, Arguments: 1, Format: `"received %d bytes\n"`},
			wantOk: true,
		},
		{
			name:   "nested call in argument",
			text:   `LogPrintf("%d\n", g(a, b));`,
			want:   Counts{Placeholders: 1, Arguments: 1, Format: `"%d\n"`},
			wantOk: true,
		},
		{
			name:   "percent inside argument expression",
			text:   `LogPrintf("%d\n", x % y);`,
			want:   Counts{Placeholders: 1, Arguments: 1, Format: `"%d\n"`},
			wantOk: true,
		},
		{
			name:   "no arguments after format",
			text:   `LogPrintf("100%\n");`,
			want:   Counts{Placeholders: 1, Arguments: 0, Format: `"100%\n"`},
			wantOk: true,
		},
		{
			name:   "escaped quotes in format",
			text:   `LogPrintf("say \"%d\"\n", n);`,
			want:   Counts{Placeholders: 1, Arguments: 1, Format: `"say \"%d\"\n"`},
			wantOk: true,
		},
		{
			name:   "real call from crypter.cpp",
			text:   `        LogPrintf("crypter EncryptAES256 - Invalid key or block size: Key: %d sIV:%d\n", sKey.size(), sIV.size());`,
			want:   Counts{Placeholders: 2, Arguments: 2, Format: `"crypter EncryptAES256 - Invalid key or block size: Key: %d sIV:%d\n"`},
			wantOk: true,
		},
		{
			name: "no percent",
			text: `LogPrintf("inside zercoin crypt xyz123");`,
		},
		{
			name: "percent outside of any literal",
			text: `LogPrintf(fmt % x);`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok, err := Count(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.wantOk, ok)
			if tt.wantOk {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestCountStructuralError(t *testing.T) {
	_, ok, err := Count(`LogPrintf("%d\n", a)) + (b;`)
	require.Error(t, err)
	assert.True(t, ok)
	assert.True(t, errors.Is(err, ErrUnbalanced))

	var se *StructuralError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, 5, se.Pos)
}

func TestCountsMismatch(t *testing.T) {
	assert.False(t, Counts{Placeholders: 2, Arguments: 2}.Mismatch())
	assert.True(t, Counts{Placeholders: 2, Arguments: 1}.Mismatch())
}
