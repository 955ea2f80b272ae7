package json

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Path  string `json:"path"`
	Width int    `json:"width"`
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(sample{Path: "a.png", Width: 576})
	require.NoError(t, err)

	var got sample
	require.NoError(t, Unmarshal(data, &got))
	assert.Equal(t, sample{Path: "a.png", Width: 576}, got)
}

func TestMarshalToString(t *testing.T) {
	s, err := MarshalToString(sample{Path: "b.jpg", Width: 300})
	require.NoError(t, err)
	assert.JSONEq(t, `{"path":"b.jpg","width":300}`, s)
}

func TestEncoderDecoder(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewEncoder(&buf).Encode(sample{Path: "c.gif", Width: 1}))

	var got sample
	require.NoError(t, NewDecoder(&buf).Decode(&got))
	assert.Equal(t, sample{Path: "c.gif", Width: 1}, got)
}
