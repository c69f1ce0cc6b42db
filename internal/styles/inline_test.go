package styles

import (
	"reflect"
	"testing"
)

func TestInline_RecordShape(t *testing.T) {
	doc := parseDoc(t, `<html><body>
		<span id="x" class="a b" style="color:red">text</span>
	</body></html>`)
	got := Inline(doc)
	want := []InlineRule{{Tag: "span", ID: "x", Class: "a b", Style: "color:red"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestInline_DocumentOrderAndDefaults(t *testing.T) {
	doc := parseDoc(t, `<html><body style="margin:0">
		<div style="padding:1px"><p style="color:blue">hi</p></div>
		<em>no style attr</em>
	</body></html>`)
	got := Inline(doc)
	if len(got) != 3 {
		t.Fatalf("expected 3 records, got %d", len(got))
	}
	tags := []string{got[0].Tag, got[1].Tag, got[2].Tag}
	if !reflect.DeepEqual(tags, []string{"body", "div", "p"}) {
		t.Fatalf("expected document order body, div, p; got %v", tags)
	}
	for _, r := range got {
		if r.ID != "" || r.Class != "" {
			t.Fatalf("expected empty id/class defaults, got %+v", r)
		}
	}
}

func TestInline_SkipsEmptyStyleAttribute(t *testing.T) {
	doc := parseDoc(t, `<html><body><div style="  "></div><p style="">x</p></body></html>`)
	if got := Inline(doc); len(got) != 0 {
		t.Fatalf("expected no records for empty style attrs, got %+v", got)
	}
}

func TestInline_ClassListIsSpaceJoined(t *testing.T) {
	doc := parseDoc(t, `<html><body><i class="  a   b  c " style="font-style:normal"></i></body></html>`)
	got := Inline(doc)
	if len(got) != 1 {
		t.Fatalf("expected 1 record, got %d", len(got))
	}
	if got[0].Class != "a b c" {
		t.Fatalf("expected normalized class list, got %q", got[0].Class)
	}
}
