package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDocument_IDHandling(t *testing.T) {
	doc := Document{"email": "a@x.io", "_id": "client-sent", "price": 19.99}

	stored := doc.WithoutID()
	assert.NotContains(t, stored, DocumentIDKey)
	assert.Equal(t, "client-sent", doc.ID(), "source is left untouched")

	read := stored.WithID("abc")
	assert.Equal(t, "abc", read.ID())
	assert.Equal(t, "a@x.io", read.StringField("email"))
	assert.Equal(t, "", read.StringField("price"))
	assert.NotContains(t, stored, DocumentIDKey)
}
