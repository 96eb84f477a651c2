package prompt

import (
	"fmt"
	"strings"

	"github.com/go-go-golems/klsframe/pkg/kls/ux"
	"github.com/go-go-golems/klsframe/pkg/kls/validate"
	"github.com/pkg/errors"
)

// NewLine selects line-per-item mode: one prompt per element, an empty
// answer finishes the list.
const NewLine = "\n"

type ElementKind int

const (
	StringElements ElementKind = iota
	NumberElements
)

func (k ElementKind) String() string {
	switch k {
	case StringElements:
		return "string"
	case NumberElements:
		return "number"
	default:
		return fmt.Sprintf("ElementKind(%d)", int(k))
	}
}

// ListOptions configures a list prompt.
type ListOptions struct {
	Prompt string
	// Separator splits a single answer line. Empty means ",", NewLine switches
	// to line-per-item mode.
	Separator string
	Element   ElementKind
	// Number configures element parsing for NumberElements.
	Number NumberOptions
	// Patterns whitelists every element. nil means unconstrained.
	Patterns validate.Patterns
	// MaxSize caps the number of elements, 0 means unlimited.
	MaxSize int
	// FixedSize requires exactly that many elements, 0 means unset.
	FixedSize    int
	AllowRepeats bool
	AllowEmpty   bool
	Confirm      bool
}

// ListParser holds the derived element parser for a ListOptions value.
type ListParser struct {
	opts     ListOptions
	sep      string
	patterns validate.Patterns
	number   *NumberParser
}

func NewListParser(opts ListOptions) (*ListParser, error) {
	p := &ListParser{opts: opts, sep: opts.Separator, patterns: opts.Patterns}
	if p.sep == "" {
		p.sep = ","
	}
	if strings.TrimSpace(p.sep) == "" && p.sep != NewLine {
		return nil, constructionErrorf("separator", "whitespace-only separator %q is not allowed", p.sep)
	}
	if p.patterns == nil {
		p.patterns = validate.None()
	}
	if opts.MaxSize < 0 || opts.FixedSize < 0 {
		return nil, constructionErrorf("size", "sizes must not be negative")
	}
	if opts.MaxSize > 0 && opts.FixedSize > opts.MaxSize {
		return nil, constructionErrorf("size", "fixed size %d exceeds max size %d", opts.FixedSize, opts.MaxSize)
	}

	switch opts.Element {
	case StringElements:
	case NumberElements:
		number, err := NewNumberParser(opts.Number)
		if err != nil {
			return nil, err
		}
		if p.sep == number.DecimalSeparator() {
			return nil, constructionErrorf("separator", "%q is also the decimal separator", p.sep)
		}
		p.number = number
	default:
		return nil, constructionErrorf("element kind", "unsupported %s", opts.Element)
	}
	return p, nil
}

// LinePerItem reports whether the parser collects one element per line.
func (p *ListParser) LinePerItem() bool {
	return p.sep == NewLine
}

// limit is the number of elements after which collection stops.
func (p *ListParser) limit() int {
	if p.opts.FixedSize > 0 {
		return p.opts.FixedSize
	}
	return p.opts.MaxSize
}

func (p *ListParser) promptText() string {
	if p.opts.Prompt != "" {
		return p.opts.Prompt
	}
	var text string
	if p.LinePerItem() {
		text = "Please introduce the values, one per line (empty line to finish)"
	} else {
		text = fmt.Sprintf("Please introduce a list of values separated by '%s'", p.sep)
	}
	switch {
	case p.opts.FixedSize > 0:
		text += fmt.Sprintf(" [exactly %d]", p.opts.FixedSize)
	case p.opts.MaxSize > 0:
		text += fmt.Sprintf(" [up to %d]", p.opts.MaxSize)
	}
	if p.LinePerItem() {
		return text
	}
	return text + ": "
}

// InlineSeparator stands in for line breaks when a line-per-item list is
// typed on a single line. It never collides with the decimal separator.
func (p *ListParser) InlineSeparator() string {
	if p.number != nil && p.number.DecimalSeparator() == "," {
		return ";"
	}
	return ","
}

// ParseItem validates and coerces a single element.
func (p *ListParser) ParseItem(raw string) (interface{}, error) {
	ok, err := validate.Validate(raw, p.patterns)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.Wrapf(ErrValidationFailed, "element %q", raw)
	}
	if p.number == nil {
		return raw, nil
	}
	n, err := p.number.Parse(raw)
	if err != nil {
		return nil, err
	}
	return n.Interface(), nil
}

// Split turns one delimited answer into elements. Numeric tokens that cannot
// be parsed are dropped and reported through warn; a token failing the
// element patterns rejects the whole line.
func (p *ListParser) Split(line string, warn func(string)) ([]interface{}, error) {
	tokens := strings.Split(line, p.sep)
	if p.opts.MaxSize > 0 && len(tokens) > p.opts.MaxSize {
		tokens = tokens[:p.opts.MaxSize]
	}

	values := make([]interface{}, 0, len(tokens))
	for _, token := range tokens {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		v, err := p.ParseItem(token)
		if err != nil {
			if p.number != nil && !errors.Is(err, ErrOutOfBounds) && p.matchesElementPatterns(token) {
				if warn != nil {
					warn(fmt.Sprintf("[WARNING] Skipping '%s': not a valid number", token))
				}
				continue
			}
			return nil, err
		}
		values = append(values, v)
	}

	if !p.opts.AllowRepeats {
		values = dedupe(values)
	}
	return values, nil
}

func (p *ListParser) matchesElementPatterns(token string) bool {
	ok, err := validate.Validate(token, p.patterns)
	return err == nil && ok
}

// Check applies the whole-list constraints.
func (p *ListParser) Check(values []interface{}) error {
	if len(values) == 0 && !p.opts.AllowEmpty {
		return errors.Wrap(ErrSizeConstraint, "the list cannot be empty")
	}
	if p.opts.FixedSize > 0 && len(values) != p.opts.FixedSize {
		return errors.Wrapf(ErrSizeConstraint, "expected exactly %d element(s), got %d", p.opts.FixedSize, len(values))
	}
	return nil
}

// List reads a sequence of values, restarting the collection until the size
// constraints (and optional confirmation) are satisfied.
func (c *Console) List(opts ListOptions) ([]interface{}, error) {
	parser, err := NewListParser(opts)
	if err != nil {
		return nil, err
	}
	return c.ListWith(parser)
}

func (c *Console) ListWith(parser *ListParser) ([]interface{}, error) {
	for {
		var (
			values []interface{}
			err    error
		)
		if parser.LinePerItem() {
			values, err = c.collectLines(parser)
		} else {
			values, err = c.collectDelimited(parser)
		}
		if err != nil {
			return nil, err
		}

		if err := parser.Check(values); err != nil {
			c.logger.Debug("list rejected", ux.Field("size", len(values)), ux.Field("error", err.Error()))
			c.printError(fmt.Sprintf("[ERROR] %s", err))
			continue
		}

		if parser.opts.Confirm {
			ok, err := c.Confirm(FormatValue(values), DefaultConfirmOptions())
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}
		}
		return values, nil
	}
}

func (c *Console) collectDelimited(parser *ListParser) ([]interface{}, error) {
	for {
		line, err := c.readLine(parser.promptText())
		if err != nil {
			return nil, err
		}
		values, err := parser.Split(line, c.printWarning)
		if err != nil {
			c.printError(fmt.Sprintf("[ERROR] Invalid input (%s)", err))
			continue
		}
		return values, nil
	}
}

func (c *Console) collectLines(parser *ListParser) ([]interface{}, error) {
	c.term.Println(parser.promptText())
	values := []interface{}{}
	limit := parser.limit()
	for limit == 0 || len(values) < limit {
		raw, err := c.readLine(fmt.Sprintf("Item %d: ", len(values)+1))
		if err != nil {
			return nil, err
		}
		raw = strings.TrimSpace(raw)
		if raw == "" {
			if missing := parser.opts.FixedSize - len(values); parser.opts.FixedSize > 0 && missing > 0 {
				c.printError(fmt.Sprintf("[ERROR] %d more item(s) required", missing))
				continue
			}
			break
		}

		v, err := parser.ParseItem(raw)
		if err != nil {
			c.printError(fmt.Sprintf("[ERROR] Invalid input (%s)", err))
			continue
		}
		if !parser.opts.AllowRepeats && contains(values, v) {
			c.printError(fmt.Sprintf("[ERROR] '%v' is already in the list", v))
			continue
		}
		values = append(values, v)
	}
	return values, nil
}

func contains(values []interface{}, v interface{}) bool {
	for _, existing := range values {
		if sameElement(existing, v) {
			return true
		}
	}
	return false
}

// sameElement compares numbers by value, so 1 and 1.00 are the same element.
func sameElement(a, b interface{}) bool {
	x, aNum := asFloat(a)
	y, bNum := asFloat(b)
	if aNum && bNum {
		return x == y
	}
	return a == b
}

func asFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

func dedupe(values []interface{}) []interface{} {
	ret := make([]interface{}, 0, len(values))
	for _, v := range values {
		if !contains(ret, v) {
			ret = append(ret, v)
		}
	}
	return ret
}
