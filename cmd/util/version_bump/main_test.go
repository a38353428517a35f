package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRelease(t *testing.T) {
	tests := []struct {
		in      string
		want    release
		wantErr bool
	}{
		{in: "v1.2.3", want: release{1, 2, 3}},
		{in: "0.1.0\n", want: release{0, 1, 0}},
		{in: "v1.2", wantErr: true},
		{in: "v1.2.3-rc.1", wantErr: true},
		{in: "latest", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseRelease(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBump(t *testing.T) {
	base := release{1, 4, 7}
	for kind, want := range map[string]string{
		"patch": "v1.4.8",
		"minor": "v1.5.0",
		"major": "v2.0.0",
	} {
		got, err := bump(base, kind)
		require.NoError(t, err)
		assert.Equal(t, want, got.String(), kind)
	}

	_, err := bump(base, "huge")
	assert.Error(t, err)
}
