package utils

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryInt(t *testing.T) {
	values := url.Values{"page": {"3"}, "bad": {"abc"}, "neg": {"-2"}, "zero": {"0"}}

	assert.Equal(t, 3, QueryInt(values, "page", 1))
	assert.Equal(t, 1, QueryInt(values, "bad", 1))
	assert.Equal(t, 10, QueryInt(values, "neg", 10))
	assert.Equal(t, 10, QueryInt(values, "zero", 10))
	assert.Equal(t, 7, QueryInt(values, "missing", 7))
}

func TestParseID(t *testing.T) {
	id, err := ParseID("42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, in := range []string{"", "0", "-1", "abc", "1.5"} {
		_, err := ParseID(in)
		assert.Error(t, err, in)
	}
}
