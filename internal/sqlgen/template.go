// Package sqlgen loads the timeseries maintenance SQL template, expands it
// once per table name, and assembles the final migration text.
//
// Expansion is a literal, single-pass substitution of the {table_name}
// token. There is deliberately no escaping mechanism and no recursive
// re-substitution: a table name that itself contains the token text is
// inserted verbatim and left alone.
package sqlgen

import (
	"fmt"
	"os"
	"strings"

	"github.com/tsdbkit/tsmaint"
)

// Token is the literal placeholder replaced by a table name during
// expansion. It may appear any number of times in a template; each
// occurrence is replaced independently with the same value.
const Token = "{table_name}"

// Template is loaded SQL template text.
type Template struct {
	text string
}

// Load reads the template file at path. The template is foundational to
// every downstream stage, so an unreadable path is fatal and wraps
// tsmaint.ErrMissingResource.
func Load(path string) (Template, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Template{}, fmt.Errorf("%w: reading template %s: %v", tsmaint.ErrMissingResource, path, err)
	}
	return Template{text: string(content)}, nil
}

// Default returns the embedded maintenance template compiled into the
// binary.
func Default() Template {
	return Template{text: defaultTemplate}
}

// FromString wraps raw template text.
func FromString(text string) Template {
	return Template{text: text}
}

// HasToken reports whether the template contains the substitution token at
// least once. A template without it expands to an unchanged copy per table,
// which is legal but usually a mistake worth warning about.
func (t Template) HasToken() bool {
	return strings.Contains(t.text, Token)
}

// Expand instantiates the template for one table name, replacing every
// occurrence of Token. Single pass only: replacement text is never
// re-scanned.
func (t Template) Expand(tableName string) string {
	return strings.ReplaceAll(t.text, Token, tableName)
}

// ExpandAll produces one expansion per table name, in order. The result
// always has the same length as names.
func (t Template) ExpandAll(names []string) []string {
	blocks := make([]string, len(names))
	for i, name := range names {
		blocks[i] = t.Expand(name)
	}
	return blocks
}
