package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTMLToText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "hello", want: "hello"},
		{name: "paragraphs", in: "<p>Hello</p><p>World</p>", want: "Hello\nWorld"},
		{name: "inline markup", in: "<p>Buy <b>milk</b> now</p>", want: "Buy milk now"},
		{name: "line break", in: "line<br>next", want: "line\nnext"},
		{name: "list", in: "<ul><li>a</li><li>b</li></ul>", want: "• a\n• b"},
		{name: "entities", in: "<p>Tom &amp; Jerry</p>", want: "Tom & Jerry"},
		{name: "script dropped", in: "<script>alert(1)</script><p>ok</p>", want: "ok"},
		{name: "whitespace collapsed", in: "<p>  a \n  b  </p>", want: "a b"},
		{name: "empty", in: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTMLToText(tt.in))
		})
	}
}

func TestTextToHTML(t *testing.T) {
	assert.Equal(t, "<p>one</p><p>two &amp; three</p>", TextToHTML("one\r\n\r\n  two & three  "))
	assert.Empty(t, TextToHTML(" \n "))
}

func TestNextCursor(t *testing.T) {
	assert.Equal(t, "4", string(nextCursor(true, intPtr(4))))
	assert.Empty(t, nextCursor(false, intPtr(4)))
	assert.Empty(t, nextCursor(true, nil))
}
