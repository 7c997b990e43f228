package query

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int { return &i }

func TestRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     Request
		wantErr error
	}{
		{
			name:    "empty request",
			req:     Request{},
			wantErr: ErrEmptyQuery,
		},
		{
			name:    "empty request with output mode",
			req:     Request{Mode: ModeJSON},
			wantErr: ErrEmptyQuery,
		},
		{
			name: "plain character",
			req:  Request{Character: strPtr("Rick Grimes")},
		},
		{
			name: "character with allowed symbols",
			req:  Request{Character: strPtr("Gabriel O'Brien-Stokes Jr.")},
		},
		{
			name:    "character with digits",
			req:     Request{Character: strPtr("Rick2")},
			wantErr: ErrInvalidCharacterName,
		},
		{
			name:    "invalid character with season set",
			req:     Request{Character: strPtr("R1ck"), Season: intPtr(2)},
			wantErr: ErrInvalidCharacterName,
		},
		{
			name:    "invalid character with episode set",
			req:     Request{Character: strPtr("Rick;"), Episode: strPtr("S1x1")},
			wantErr: ErrInvalidCharacterName,
		},
		{
			name:    "empty character name",
			req:     Request{Character: strPtr("")},
			wantErr: ErrInvalidCharacterName,
		},
		{
			name:    "sql wildcard in name",
			req:     Request{Character: strPtr("Ri%")},
			wantErr: ErrInvalidCharacterName,
		},
		{
			name: "season only",
			req:  Request{Season: intPtr(3)},
		},
		{
			name: "season zero is not validated",
			req:  Request{Season: intPtr(0)},
		},
		{
			name: "episode title with digits",
			req:  Request{Episode: strPtr("TS-19")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.True(t, IsInputError(err))
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestRequest_Kind(t *testing.T) {
	tests := []struct {
		name string
		req  Request
		want Kind
	}{
		{"nothing", Request{}, KindNone},
		{"character wins", Request{Character: strPtr("Carl"), Season: intPtr(1), Episode: strPtr("S1x1")}, KindCharacter},
		{"season before episode", Request{Season: intPtr(1), Episode: strPtr("S1x1")}, KindSeason},
		{"episode", Request{Episode: strPtr("S1x1")}, KindEpisode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.req.Kind())
		})
	}
}

func TestIsInputError(t *testing.T) {
	require.True(t, IsInputError(ErrEmptyQuery))
	require.True(t, IsInputError(ErrInvalidCharacterName))
	require.False(t, IsInputError(ErrNoMatch))
	require.False(t, IsInputError(nil))
}

func TestOutputMode_String(t *testing.T) {
	require.Equal(t, "text", ModeText.String())
	require.Equal(t, "json", ModeJSON.String())
	require.Equal(t, "html", ModeHTML.String())
}
