package kicad

import (
	"sort"

	"github.com/OpenTraceLab/OpenTraceKicad/pkg/sexpr"
	"github.com/OpenTraceLab/OpenTraceKicad/pkg/sexpr/shape"
)

// TitleBlock holds the drawing frame metadata. The date is free text;
// KiCad does not validate it against a calendar format.
type TitleBlock struct {
	Title    string
	Date     string
	Revision string
	Company  string

	// Comments keyed by their comment number.
	Comments map[int64]string
}

type titleComment struct {
	number int64
	text   string
}

func parseTitleComment(v sexpr.Value) (titleComment, error) {
	var tc titleComment
	err := shape.MatchList(v, "comment",
		shape.Int(&tc.number),
		shape.Str(&tc.text),
	)
	return tc, err
}

// ParseTitleBlock destructures a (title_block ...) element.
func ParseTitleBlock(v sexpr.Value) (TitleBlock, error) {
	var tb TitleBlock
	var comments []titleComment
	rec := shape.NewRecord("title_block",
		shape.Val("title", &tb.Title, shape.CoerceStr),
		shape.Val("date", &tb.Date, shape.CoerceStr),
		shape.Val("rev", &tb.Revision, shape.CoerceStr),
		shape.Val("company", &tb.Company, shape.CoerceStr),
		shape.Rep("comment", &comments, parseTitleComment),
	)
	if err := rec.Match(v); err != nil {
		return tb, err
	}
	if len(comments) > 0 {
		tb.Comments = make(map[int64]string, len(comments))
		for _, c := range comments {
			tb.Comments[c.number] = c.text
		}
	}
	return tb, nil
}

// Sexpr encodes the title block, with comments in numeric order.
func (tb TitleBlock) Sexpr() sexpr.Value {
	items := []sexpr.Value{sexpr.Symbol("title_block")}
	if tb.Title != "" {
		items = append(items, sexpr.List(sexpr.Symbol("title"), sexpr.String(tb.Title)))
	}
	if tb.Date != "" {
		items = append(items, sexpr.List(sexpr.Symbol("date"), sexpr.String(tb.Date)))
	}
	if tb.Revision != "" {
		items = append(items, sexpr.List(sexpr.Symbol("rev"), sexpr.String(tb.Revision)))
	}
	if tb.Company != "" {
		items = append(items, sexpr.List(sexpr.Symbol("company"), sexpr.String(tb.Company)))
	}
	numbers := make([]int64, 0, len(tb.Comments))
	for n := range tb.Comments {
		numbers = append(numbers, n)
	}
	sort.Slice(numbers, func(i, j int) bool { return numbers[i] < numbers[j] })
	for _, n := range numbers {
		items = append(items, sexpr.List(
			sexpr.Symbol("comment"),
			sexpr.Int(n),
			sexpr.String(tb.Comments[n]),
		))
	}
	return sexpr.List(items...)
}
