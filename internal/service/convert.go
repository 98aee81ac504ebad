package service

import (
	stdhtml "html"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/MKhiriev/keepno/models"
)

// DisplayTimeLayout is the layout of the created/updated display fields.
const DisplayTimeLayout = "2006-01-02 15:04"

func noteToItem(n models.Note) models.Item {
	return models.Item{
		ID: n.ID,
		Fields: map[string]string{
			models.FieldTitle:       n.Title,
			models.FieldDescription: n.Description,
			models.FieldCreated:     formatTimestamp(n.Created),
		},
		LastUpdated: n.Updated.Time,
	}
}

func entryToItem(e models.Entry) models.Item {
	return models.Item{
		ID: e.ID,
		Fields: map[string]string{
			models.FieldContent: HTMLToText(e.Content),
			models.FieldCreated: formatTimestamp(e.Created),
		},
		LastUpdated: e.Updated.Time,
	}
}

func formatTimestamp(ts models.Timestamp) string {
	if ts.IsZero() {
		return ""
	}
	return ts.Local().Format(DisplayTimeLayout)
}

func nextCursor(hasNext bool, nextNum *int) models.Cursor {
	if !hasNext || nextNum == nil {
		return ""
	}
	return models.Cursor(strconv.Itoa(*nextNum))
}

// blockTags end a line of text when they open or close.
var blockTags = map[string]bool{
	"p": true, "div": true, "br": true, "li": true, "ul": true, "ol": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"blockquote": true, "pre": true, "tr": true,
}

// HTMLToText renders the rich-text body of an entry as plain text. Block
// elements become line breaks and list items are prefixed with a bullet.
func HTMLToText(s string) string {
	z := html.NewTokenizer(strings.NewReader(s))

	var (
		b      strings.Builder
		pre    int
		skip   int
		pendNL bool
	)
	newline := func() {
		if b.Len() > 0 {
			pendNL = true
		}
	}

	for {
		switch z.Next() {
		case html.ErrorToken:
			return strings.TrimSpace(b.String())
		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			tag := string(name)
			switch {
			case tag == "script" || tag == "style":
				skip++
			case tag == "pre":
				pre++
				newline()
			case tag == "li":
				newline()
				if pendNL {
					b.WriteByte('\n')
					pendNL = false
				}
				b.WriteString("• ")
			case blockTags[tag]:
				newline()
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			tag := string(name)
			switch {
			case tag == "script" || tag == "style":
				skip = max(0, skip-1)
			case tag == "pre":
				pre = max(0, pre-1)
				newline()
			case blockTags[tag]:
				newline()
			}
		case html.TextToken:
			if skip > 0 {
				continue
			}
			text := string(z.Text())
			if pre == 0 {
				text = strings.Join(strings.Fields(text), " ")
			}
			if text == "" {
				continue
			}
			if pendNL {
				b.WriteByte('\n')
				pendNL = false
			} else if pre == 0 && b.Len() > 0 && !strings.HasSuffix(b.String(), " ") && !strings.HasSuffix(b.String(), "• ") {
				b.WriteByte(' ')
			}
			b.WriteString(text)
		}
	}
}

// TextToHTML wraps every non-empty line of plain text in a paragraph.
func TextToHTML(s string) string {
	var b strings.Builder
	for _, line := range strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		b.WriteString("<p>")
		b.WriteString(stdhtml.EscapeString(line))
		b.WriteString("</p>")
	}
	return b.String()
}
