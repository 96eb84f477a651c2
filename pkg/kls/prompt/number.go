package prompt

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-go-golems/klsframe/pkg/kls/ux"
	"github.com/go-go-golems/klsframe/pkg/kls/validate"
	"github.com/pkg/errors"
)

// AnyDigits leaves the decimal digit count unspecified: an answer is decimal
// iff it contains the decimal separator, and it is not rounded.
const AnyDigits = -1

// NumberOptions configures a numeric prompt.
type NumberOptions struct {
	Prompt string
	Min    *float64
	Max    *float64
	// DecimalDigits is 0 for integers, N>0 for decimals rounded to N digits,
	// or AnyDigits.
	DecimalDigits int
	// DecimalSeparator is "." (thousands ",") or "," (thousands "."). Empty means ".".
	DecimalSeparator string
	// Default enables empty answers.
	Default *float64
	Confirm bool
}

// Bound is a convenience for the optional NumberOptions fields.
func Bound(v float64) *float64 {
	return &v
}

// Number is a parsed numeric answer.
type Number struct {
	Value   float64
	Decimal bool
}

func (n Number) Int() int64 {
	return int64(n.Value)
}

func (n Number) Float() float64 {
	return n.Value
}

// Interface returns int64 for integers and float64 for decimals.
func (n Number) Interface() interface{} {
	if n.Decimal {
		return n.Value
	}
	return n.Int()
}

func (n Number) String() string {
	if n.Decimal {
		return strconv.FormatFloat(n.Value, 'f', -1, 64)
	}
	return strconv.FormatInt(n.Int(), 10)
}

// NumberParser holds the matcher derived from a NumberOptions value. Build it
// once and reuse it for every answer.
type NumberParser struct {
	opts         NumberOptions
	decimalSep   string
	thousandsSep string
	patterns     validate.Patterns
}

func NewNumberParser(opts NumberOptions) (*NumberParser, error) {
	p := &NumberParser{opts: opts}

	switch opts.DecimalSeparator {
	case "", ".":
		p.decimalSep, p.thousandsSep = ".", ","
	case ",":
		p.decimalSep, p.thousandsSep = ",", "."
	default:
		return nil, constructionErrorf("decimal separator", "unexpected value %q, allowed: ',' | '.'", opts.DecimalSeparator)
	}
	if opts.DecimalDigits < AnyDigits {
		return nil, constructionErrorf("decimal digits", "must be >= 0 (or AnyDigits), got %d", opts.DecimalDigits)
	}
	if opts.Min != nil && opts.Max != nil && *opts.Min > *opts.Max {
		return nil, constructionErrorf("bounds", "min %s is greater than max %s", formatFloat(*opts.Min), formatFloat(*opts.Max))
	}
	if opts.Default != nil {
		if opts.DecimalDigits == 0 && *opts.Default != math.Trunc(*opts.Default) {
			return nil, constructionErrorf("default", "%s is not an integer", formatFloat(*opts.Default))
		}
		if !p.inBounds(*opts.Default) {
			return nil, constructionErrorf("default", "%s is outside %s", formatFloat(*opts.Default), p.Bounds())
		}
	}

	pattern, err := validate.Compile(p.expression())
	if err != nil {
		return nil, errors.Wrap(err, "failed to build numeric pattern")
	}
	p.patterns = validate.Patterns{pattern}
	return p, nil
}

func (p *NumberParser) canBeNegative() bool {
	return p.opts.Min == nil || *p.opts.Min < 0 || (p.opts.Max != nil && *p.opts.Max < 0)
}

func (p *NumberParser) expression() string {
	var sb strings.Builder
	if p.canBeNegative() {
		sb.WriteString("-?")
	}
	sb.WriteString("(?:[0-9]{1,3}" + regexp.QuoteMeta(p.thousandsSep) + ")*[0-9]+")
	if p.opts.DecimalDigits != 0 {
		sb.WriteString("(?:" + regexp.QuoteMeta(p.decimalSep) + "[0-9]+)?")
	}
	return sb.String()
}

// Patterns returns the derived matcher.
func (p *NumberParser) Patterns() validate.Patterns {
	return p.patterns
}

func (p *NumberParser) DecimalSeparator() string {
	return p.decimalSep
}

// Default returns the configured default, if any.
func (p *NumberParser) Default() (Number, bool) {
	if p.opts.Default == nil {
		return Number{}, false
	}
	v := *p.opts.Default
	decimal := p.opts.DecimalDigits > 0 || (p.opts.DecimalDigits == AnyDigits && v != math.Trunc(v))
	return Number{Value: v, Decimal: decimal}, true
}

// Bounds renders the accepted interval, e.g. "[1, 99]" or "(-infinite, 10]".
func (p *NumberParser) Bounds() string {
	lower, upper := "(-infinite", "infinite)"
	if p.opts.Min != nil {
		lower = "[" + formatFloat(*p.opts.Min)
	}
	if p.opts.Max != nil {
		upper = formatFloat(*p.opts.Max) + "]"
	}
	return lower + ", " + upper
}

func (p *NumberParser) PromptText() string {
	if p.opts.Prompt != "" {
		return p.opts.Prompt
	}
	var text string
	switch {
	case p.opts.DecimalDigits > 0:
		text = fmt.Sprintf("Please introduce a decimal number (up to %d decimal digits) within %s", p.opts.DecimalDigits, p.Bounds())
	case p.opts.DecimalDigits == AnyDigits:
		text = fmt.Sprintf("Please introduce a number within %s", p.Bounds())
	default:
		text = fmt.Sprintf("Please introduce an integer number within %s", p.Bounds())
	}
	if d, ok := p.Default(); ok {
		text += fmt.Sprintf(" [default: %s]", d)
	}
	return text + ": "
}

func (p *NumberParser) inBounds(v float64) bool {
	return (p.opts.Min == nil || *p.opts.Min <= v) && (p.opts.Max == nil || v <= *p.opts.Max)
}

// Check bounds-checks an already parsed number.
func (p *NumberParser) Check(n Number) error {
	if !p.inBounds(n.Value) {
		return errors.Wrapf(ErrOutOfBounds, "%s not within %s", n, p.Bounds())
	}
	return nil
}

// Parse validates raw against the derived matcher, converts it and checks
// the bounds. The returned error wraps ErrValidationFailed or ErrOutOfBounds.
func (p *NumberParser) Parse(raw string) (Number, error) {
	raw = strings.TrimSpace(raw)
	ok, err := validate.Validate(raw, p.patterns)
	if err != nil {
		return Number{}, err
	}
	if !ok {
		return Number{}, errors.Wrapf(ErrValidationFailed, "%q is not a valid number", raw)
	}
	n, err := p.convert(raw)
	if err != nil {
		return Number{}, err
	}
	if err := p.Check(n); err != nil {
		return Number{}, err
	}
	return n, nil
}

func (p *NumberParser) convert(raw string) (Number, error) {
	text := strings.ReplaceAll(raw, p.thousandsSep, "")
	decimal := p.opts.DecimalDigits > 0 || (p.opts.DecimalDigits == AnyDigits && strings.Contains(text, p.decimalSep))
	if !decimal {
		v, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return Number{}, errors.Wrapf(ErrValidationFailed, "cannot parse %q as an integer", raw)
		}
		return Number{Value: float64(v)}, nil
	}

	v, err := strconv.ParseFloat(strings.Replace(text, p.decimalSep, ".", 1), 64)
	if err != nil {
		return Number{}, errors.Wrapf(ErrValidationFailed, "cannot parse %q as a decimal", raw)
	}
	if p.opts.DecimalDigits > 0 {
		scale := math.Pow(10, float64(p.opts.DecimalDigits))
		v = math.Round(v*scale) / scale
	}
	return Number{Value: v, Decimal: true}, nil
}

// Number reads a numeric value. See NumberOptions for the accepted syntax.
func (c *Console) Number(opts NumberOptions) (Number, error) {
	parser, err := NewNumberParser(opts)
	if err != nil {
		return Number{}, err
	}
	return c.NumberWith(parser, opts.Confirm)
}

// NumberWith reads a numeric value using a prebuilt parser.
func (c *Console) NumberWith(parser *NumberParser, confirm bool) (Number, error) {
	_, hasDefault := parser.Default()
	for {
		raw, err := c.Input(InputOptions{
			Prompt:       parser.PromptText(),
			ErrorMessage: "Error. Invalid number",
			Patterns:     parser.Patterns(),
			AllowEmpty:   hasDefault,
		})
		if err != nil {
			return Number{}, err
		}

		var n Number
		if raw == "" {
			n, _ = parser.Default()
			err = parser.Check(n)
		} else {
			n, err = parser.Parse(raw)
		}
		if err != nil {
			c.logger.Debug("number rejected", ux.Field("value", raw), ux.Field("error", err.Error()))
			if errors.Is(err, ErrOutOfBounds) {
				c.printError(fmt.Sprintf("[ERROR] Value out of bounds %s", parser.Bounds()))
			} else {
				c.printError(fmt.Sprintf("[ERROR] %s", err))
			}
			continue
		}

		if confirm {
			ok, err := c.Confirm(n.String(), DefaultConfirmOptions())
			if err != nil {
				return Number{}, err
			}
			if !ok {
				continue
			}
		}
		return n, nil
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
