package svg

import (
	"strings"
	"testing"
)

func TestFormatNum(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{1, "1"},
		{-1.5, "-1.5"},
		{3.14159, "3.1416"},
		{10.25, "10.25"},
		{2.1000, "2.1"},
		{100.0001, "100.0001"},
		{-0.00001, "0"},
		{0.00004, "0"},
	}
	for _, tt := range tests {
		if got := formatNum(tt.in); got != tt.want {
			t.Errorf("formatNum(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEscape(t *testing.T) {
	got := escape(`a<b & "c" > 'd'`)
	want := "a&lt;b &amp; &quot;c&quot; &gt; &apos;d&apos;"
	if got != want {
		t.Errorf("escape = %q, want %q", got, want)
	}
}

func TestGroupStack(t *testing.T) {
	d := NewDocument(100, 50)
	if d.Depth() != 0 {
		t.Fatalf("Depth = %d before any group", d.Depth())
	}

	outer := d.StartGroup("outer", "", nil)
	inner := d.StartGroup("inner", "decor", nil)
	if outer == inner {
		t.Error("distinct groups share a handle")
	}
	if d.Depth() != 2 {
		t.Errorf("Depth = %d, want 2", d.Depth())
	}

	d.EndGroup()
	d.EndGroup()
	d.EndGroup() // extra close must be harmless
	if d.Depth() != 0 {
		t.Errorf("Depth = %d after closing all groups", d.Depth())
	}

	out := d.String()
	if !strings.Contains(out, `<g id="outer">`) {
		t.Errorf("output missing outer group:\n%s", out)
	}
	if !strings.Contains(out, `<g id="inner" class="decor">`) {
		t.Errorf("output missing inner group:\n%s", out)
	}
}

func TestGroupNesting(t *testing.T) {
	d := NewDocument(10, 10)
	d.StartGroup("a", "", nil)
	d.AddLine(0, 0, 1, 1, "black", 0.5, "")
	d.EndGroup()
	d.StartGroup("b", "", nil)
	d.AddLine(2, 2, 3, 3, "black", 0.5, "")
	d.EndGroup()

	out := d.String()
	aAt := strings.Index(out, `id="a"`)
	bAt := strings.Index(out, `id="b"`)
	if aAt < 0 || bAt < 0 || aAt > bAt {
		t.Errorf("sibling groups out of order:\n%s", out)
	}
	// The line in group a must appear between a's open and b's open.
	firstLine := strings.Index(out, "<line")
	if firstLine < aAt || firstLine > bAt {
		t.Errorf("shape not nested in its group:\n%s", out)
	}
}

func TestGroupDataAttributesSorted(t *testing.T) {
	d := NewDocument(10, 10)
	d.StartGroup("bal", "", map[string]string{
		"specification": "Steel",
		"name":          "Bracket",
		"part-number":   "BRK-100",
	})
	d.EndGroup()

	out := d.String()
	want := `<g id="bal" data-name="Bracket" data-part-number="BRK-100" data-specification="Steel">`
	if !strings.Contains(out, want) {
		t.Errorf("data attributes not in sorted order:\n%s", out)
	}
}

func TestFitToContent(t *testing.T) {
	d := NewDocument(200, 100)
	d.UpdateBounds(-3, 0)
	d.UpdateBounds(10, 7)
	d.FitToContent(5)

	x, y, w, h := d.ViewBox()
	if x != -8 || y != -5 || w != 23 || h != 17 {
		t.Errorf("viewBox = (%v %v %v %v), want (-8 -5 23 17)", x, y, w, h)
	}
	if d.Width() != 23 || d.Height() != 17 {
		t.Errorf("size = %v x %v, want 23 x 17", d.Width(), d.Height())
	}
}

func TestFitToContentNoBounds(t *testing.T) {
	d := NewDocument(200, 100)
	d.FitToContent(DefaultFitPadding)

	x, y, w, h := d.ViewBox()
	if x != 0 || y != 0 || w != 200 || h != 100 {
		t.Errorf("viewBox changed with no recorded bounds: (%v %v %v %v)", x, y, w, h)
	}
}

func TestDocumentHeader(t *testing.T) {
	d := NewDocument(420, 297)
	out := d.String()
	if !strings.HasPrefix(out, `<svg xmlns="http://www.w3.org/2000/svg" width="420" height="297" viewBox="0 0 420 297">`) {
		t.Errorf("unexpected header:\n%s", out)
	}
	if !strings.HasSuffix(out, "</svg>\n") {
		t.Errorf("missing closing tag:\n%s", out)
	}
}

func TestAddTextMultiLine(t *testing.T) {
	d := NewDocument(50, 50)
	d.AddText(10, 20, "A\nB", TextStyle{Font: "sans-serif", Size: 5, Color: "black"})
	out := d.String()

	if n := strings.Count(out, "<text"); n != 2 {
		t.Fatalf("got %d text elements, want 2:\n%s", n, out)
	}
	if !strings.Contains(out, `y="20"`) || !strings.Contains(out, `y="26"`) {
		t.Errorf("second line not offset by 1.2x size:\n%s", out)
	}
	first := strings.Index(out, `x="10"`)
	second := strings.LastIndex(out, `x="10"`)
	if first == second {
		t.Errorf("lines do not share the anchor x:\n%s", out)
	}
}

func TestAddEllipseRotation(t *testing.T) {
	d := NewDocument(50, 50)
	d.AddEllipse(10, 10, 4, 2, 30, "black", 0.5, "")
	out := d.String()
	if !strings.Contains(out, `transform="rotate(30 10 10)"`) {
		t.Errorf("rotation transform missing:\n%s", out)
	}
}

func TestAddPathDefaults(t *testing.T) {
	d := NewDocument(50, 50)
	d.AddPath("M 0 0 L 1 1", "#ff0000", 0.35, "", "")
	out := d.String()
	if !strings.Contains(out, `fill="none"`) {
		t.Errorf("empty fill did not default to none:\n%s", out)
	}
	if strings.Contains(out, "stroke-dasharray") {
		t.Errorf("dash emitted when empty:\n%s", out)
	}
}
