package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionOptionUnmarshalPlainString(t *testing.T) {
	var opts []QuestionOption
	err := json.Unmarshal([]byte(`["newton", "joule", "kelvin"]`), &opts)
	require.NoError(t, err)

	require.Len(t, opts, 3)
	assert.Equal(t, QuestionOption{Text: "newton"}, opts[0])
	assert.Empty(t, opts[0].ID)
}

func TestQuestionOptionUnmarshalLabeledObject(t *testing.T) {
	var opts []QuestionOption
	err := json.Unmarshal([]byte(`[{"id": "a", "text": "11.2 L"}, {"id": "b", "text": "22.4 L"}]`), &opts)
	require.NoError(t, err)

	require.Len(t, opts, 2)
	assert.Equal(t, QuestionOption{ID: "b", Text: "22.4 L"}, opts[1])
}

func TestQuestionOptionUnmarshalMixedShapes(t *testing.T) {
	var opts []QuestionOption
	err := json.Unmarshal([]byte(`["plain", {"id": "b", "text": "labeled"}]`), &opts)
	require.NoError(t, err)

	require.Len(t, opts, 2)
	assert.Equal(t, "plain", opts[0].Text)
	assert.Equal(t, "b", opts[1].ID)
}

func TestQuestionOptionUnmarshalRejectsInvalid(t *testing.T) {
	var opt QuestionOption
	assert.Error(t, json.Unmarshal([]byte(`42`), &opt))
}

func TestIntListRoundTripPreservesOrder(t *testing.T) {
	original := IntList{5, 3, 9}

	value, err := original.Value()
	require.NoError(t, err)

	var scanned IntList
	require.NoError(t, scanned.Scan(value))
	assert.Equal(t, original, scanned)
}

func TestIntListScanNil(t *testing.T) {
	var l IntList
	require.NoError(t, l.Scan(nil))
	assert.Nil(t, l)
}
