// Package css parses and renders the inline style declarations the HTML
// document format carries block attributes in (margin-left, margin-right,
// text-indent, text-align, color).
package css

import (
	"strconv"
	"strings"
)

// Declaration represents a CSS declaration (property-value pair)
type Declaration struct {
	Property  string
	Value     string
	Important bool
}

// Declarations is an ordered list of declarations from one style attribute.
type Declarations []*Declaration

// Get returns the value of property. With duplicate properties the last
// one wins, matching cascade order within a declaration list.
func (ds Declarations) Get(property string) (string, bool) {
	property = strings.ToLower(property)
	for i := len(ds) - 1; i >= 0; i-- {
		if ds[i].Property == property {
			return ds[i].Value, true
		}
	}
	return "", false
}

// ParseDeclarations parses the contents of an inline style attribute.
// Malformed declarations are skipped rather than reported; an attribute
// that fails to parse simply contributes nothing.
func ParseDeclarations(content string) Declarations {
	content = removeComments(content)
	declarationStrings := strings.Split(content, ";")
	result := make(Declarations, 0, len(declarationStrings))

	for _, declStr := range declarationStrings {
		declStr = strings.TrimSpace(declStr)
		if declStr == "" {
			continue
		}

		parts := strings.SplitN(declStr, ":", 2)
		if len(parts) != 2 {
			continue
		}

		property := strings.ToLower(strings.TrimSpace(parts[0]))
		value := strings.TrimSpace(parts[1])
		if property == "" || value == "" {
			continue
		}

		important := false
		if strings.HasSuffix(value, "!important") {
			important = true
			value = strings.TrimSuffix(value, "!important")
			value = strings.TrimSpace(value)
		}

		result = append(result, &Declaration{
			Property:  property,
			Value:     value,
			Important: important,
		})
	}

	return result
}

// ParsePx parses a pixel length like "48px" or "-24px". Bare numbers are
// treated as pixels; any other unit is rejected.
func ParsePx(value string) (float64, bool) {
	v := strings.TrimSpace(value)
	v = strings.TrimSuffix(v, "px")
	v = strings.TrimSpace(v)
	if v == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// FormatPx renders an integer pixel length as a CSS value.
func FormatPx(px int) string {
	return strconv.Itoa(px) + "px"
}

// FormatDeclarations renders declarations as an inline style attribute
// value, e.g. "margin-left: 48px; text-indent: -24px".
func FormatDeclarations(ds Declarations) string {
	if len(ds) == 0 {
		return ""
	}
	parts := make([]string, 0, len(ds))
	for _, d := range ds {
		s := d.Property + ": " + d.Value
		if d.Important {
			s += " !important"
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, "; ")
}

// removeComments removes CSS comments
func removeComments(content string) string {
	var result strings.Builder
	i := 0

	for i < len(content) {
		if i+1 < len(content) && content[i] == '/' && content[i+1] == '*' {
			commentEnd := strings.Index(content[i+2:], "*/")
			if commentEnd == -1 {
				break
			}
			i += commentEnd + 4
		} else {
			result.WriteByte(content[i])
			i++
		}
	}

	return result.String()
}
