package data

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestGameRecordGetString(t *testing.T) {
	gr := GameRecord{
		AppNameProperty: "A",
		DevNameProperty: "",
		ImgProperty:     12.0,
	}

	s, ok := gr.GetString(AppNameProperty)
	assert.True(t, ok)
	assert.Equal(t, "A", s)

	_, ok = gr.GetString(DevNameProperty)
	assert.False(t, ok)

	_, ok = gr.GetString(ImgProperty)
	assert.False(t, ok)

	_, ok = gr.GetString(RepoProperty)
	assert.False(t, ok)

	assert.Equal(t, "Unknown", gr.StringOr(DevNameProperty, "Unknown"))
}

func TestNilGameRecord(t *testing.T) {
	var gr GameRecord
	_, ok := gr.GetString(AppNameProperty)
	assert.False(t, ok)
	assert.Nil(t, gr.Raw(ImgProperty))
	assert.Empty(t, gr.AppName())
}
