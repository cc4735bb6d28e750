package server

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextList_Unmarshal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TextList
		wantErr bool
	}{
		{"bare string", `"hello"`, TextList{"hello"}, false},
		{"array", `["one","two"]`, TextList{"one", "two"}, false},
		{"empty array", `[]`, TextList{}, false},
		{"empty string", `""`, TextList{""}, false},
		{"number rejected", `42`, nil, true},
		{"mixed array rejected", `["a",1]`, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got TextList
			err := json.Unmarshal([]byte(tt.input), &got)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTextList_MarshalAlwaysArray(t *testing.T) {
	data, err := json.Marshal(TextList{"solo"})
	require.NoError(t, err)
	assert.JSONEq(t, `["solo"]`, string(data))
}
