package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRawJSON_UnmarshalKeepsBytes(t *testing.T) {
	var payload struct {
		Ingredients RawJSON `json:"ingredients"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"ingredients":{"rice":"1 cup","dal":["moong",2]}}`), &payload))

	assert.JSONEq(t, `{"rice":"1 cup","dal":["moong",2]}`, string(payload.Ingredients))
	assert.False(t, payload.Ingredients.IsNull())
}

func TestRawJSON_NullAndMissing(t *testing.T) {
	var payload struct {
		Ingredients RawJSON `json:"ingredients"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"ingredients":null}`), &payload))
	assert.True(t, payload.Ingredients.IsNull())

	value, err := payload.Ingredients.Value()
	require.NoError(t, err)
	assert.Nil(t, value)

	out, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"ingredients":null}`, string(out))
}

func TestRawJSON_Value(t *testing.T) {
	value, err := RawJSON(`"oats, milk"`).Value()
	require.NoError(t, err)
	assert.Equal(t, `"oats, milk"`, value)

	_, err = RawJSON(`{broken`).Value()
	assert.Error(t, err)
}

func TestRawJSON_Scan(t *testing.T) {
	var j RawJSON
	require.NoError(t, j.Scan([]byte(`["bread","jam"]`)))
	assert.Equal(t, `["bread","jam"]`, string(j))

	require.NoError(t, j.Scan(`"soup"`))
	assert.Equal(t, `"soup"`, string(j))

	require.NoError(t, j.Scan(nil))
	assert.True(t, j.IsNull())

	assert.Error(t, j.Scan(42))
	assert.Error(t, j.Scan("not json"))
}
