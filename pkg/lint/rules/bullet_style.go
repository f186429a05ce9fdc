package rules

import (
	"fmt"

	"github.com/okralabs/bulletlint/pkg/fix"
	"github.com/okralabs/bulletlint/pkg/lint"
	"github.com/okralabs/bulletlint/pkg/mdast"
)

// BulletStyleRuleID is the canonical ID of the bullet style rule.
const BulletStyleRuleID = "BL001"

// Marker styles accepted by the "style" option.
const (
	// StyleConsistent locks onto the first marker seen in the document.
	StyleConsistent = "consistent"

	// StyleSublist expects the marker to rotate with nesting depth.
	StyleSublist = "sublist"
)

// sublistCycle is the marker sequence for sublist mode, indexed by
// nesting depth modulo its length.
var sublistCycle = [...]byte{'*', '+', '-'}

// IsValidStyle reports whether s is an accepted value for the "style" option.
func IsValidStyle(s string) bool {
	switch s {
	case StyleConsistent, StyleSublist, "-", "*", "+":
		return true
	default:
		return false
	}
}

// BulletStyleRule enforces a single unordered list marker style.
//
// In "consistent" mode the first unordered item in the document decides
// the expected marker; every later item must match it. A literal marker
// ("-", "*", "+") pins the expectation up front. In "sublist" mode the
// expected marker depends on how deeply the item's list is nested inside
// other unordered lists, cycling "*", "+", "-" per level.
//
// Ordered lists are never checked.
type BulletStyleRule struct {
	lint.BaseRule
}

// NewBulletStyleRule creates the bullet style rule.
func NewBulletStyleRule() *BulletStyleRule {
	return &BulletStyleRule{
		BaseRule: lint.NewBaseRule(lint.RuleInfo{
			ID:          BulletStyleRuleID,
			Name:        "bullet-style",
			Description: "Unordered list marker style should be consistent",
			Tags:        []string{"lists", "style"},
			Fixable:     true,
		}),
	}
}

// Apply checks every unordered list item against the configured style.
func (r *BulletStyleRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	if ctx.Root == nil || ctx.File == nil {
		return nil, nil
	}

	style := ctx.OptionString("style", StyleConsistent)
	if !IsValidStyle(style) {
		return nil, fmt.Errorf("invalid style option %q", style)
	}

	// The marker locked in by the first unordered item (consistent mode).
	var locked byte

	var diags []lint.Diagnostic

	// Items are visited in document order. CommonMark starts a new list
	// whenever the bullet character changes, so the walk is per item, not
	// per list: a run of mixed markers parses as several sibling lists.
	for _, item := range lint.ListItems(ctx.Root) {
		if ctx.Cancelled() {
			return diags, ctx.Ctx.Err()
		}

		list := lint.ItemList(item)
		if list == nil || lint.IsOrderedList(list) {
			continue
		}

		// Items whose marker could not be located are skipped.
		if item.MarkerOffset < 0 {
			continue
		}
		actual, ok := ctx.File.ByteAt(item.MarkerOffset)
		if !ok {
			continue
		}

		var expected byte
		switch style {
		case StyleConsistent:
			if locked == 0 {
				// First unordered item sets the expectation and is
				// never flagged itself.
				locked = actual
				continue
			}
			expected = locked
		case StyleSublist:
			expected = sublistCycle[lint.ListDepth(list)%len(sublistCycle)]
		default:
			expected = style[0]
		}

		if actual != expected {
			diags = append(diags, r.markerDiagnostic(ctx.File, item, expected))
		}
	}

	return diags, nil
}

// markerDiagnostic builds a diagnostic covering the single marker character,
// with a one-byte replacement fix.
func (r *BulletStyleRule) markerDiagnostic(
	file *mdast.FileSnapshot,
	item *mdast.Node,
	expected byte,
) lint.Diagnostic {
	marker := string(expected)
	msg := fmt.Sprintf("Unordered list marker style should be '%s'.", marker)

	line, col := file.LineAt(item.MarkerOffset)
	pos := mdast.SourcePosition{
		StartLine:   line,
		StartColumn: col,
		EndLine:     line,
		EndColumn:   col + 1,
	}

	return lint.NewDiagnosticAt(r.ID(), file.Path, pos, msg).
		WithRuleName(r.Name()).
		WithSuggestion(fmt.Sprintf("Use '%s' as the list marker", marker)).
		WithEdit(fix.TextEdit{
			StartOffset: item.MarkerOffset,
			EndOffset:   item.MarkerOffset + 1,
			NewText:     marker,
		}).
		Build()
}
