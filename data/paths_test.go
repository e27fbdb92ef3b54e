package data

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestPageFilename(t *testing.T) {
	assert.Equal(t, "index.html", PageFilename(""))
	assert.Equal(t, "by-name.html", PageFilename(SortByName))
	assert.Equal(t, "by-developer.html", PageFilename(SortByDeveloper))
}
