package cli

import (
	"strings"
	"testing"

	"github.com/okdaichi/roadmap/internal/roadmap"
)

func TestDriver_AddRoadAndDescribe(t *testing.T) {
	var out, errOut strings.Builder
	d := NewDriver(roadmap.New(nil), &out, &errOut)

	script := "addRoad;A;B;10;2000\nnewRoute;1;A;B\ngetRouteDescription;1\n"
	d.Run(strings.NewReader(script))

	if errOut.Len() != 0 {
		t.Fatalf("expected no errors, got %q", errOut.String())
	}
	want := "1;A;10;2000;B\n"
	if out.String() != want {
		t.Errorf("expected %q, got %q", want, out.String())
	}
}

func TestDriver_CommentsAndBlankLinesIgnored(t *testing.T) {
	var out, errOut strings.Builder
	d := NewDriver(roadmap.New(nil), &out, &errOut)

	script := "# a comment\n\naddRoad;A;B;10;2000\n  \n"
	d.Run(strings.NewReader(script))

	if errOut.Len() != 0 {
		t.Fatalf("expected no errors, got %q", errOut.String())
	}
}

func TestDriver_ErrorReportsLineNumber(t *testing.T) {
	var out, errOut strings.Builder
	d := NewDriver(roadmap.New(nil), &out, &errOut)

	script := "addRoad;A;B;10;2000\naddRoad;A;B;5;1999\n"
	d.Run(strings.NewReader(script))

	want := "ERROR 2\n"
	if errOut.String() != want {
		t.Errorf("expected %q, got %q", want, errOut.String())
	}
}

func TestDriver_RouteLiteral(t *testing.T) {
	var out, errOut strings.Builder
	d := NewDriver(roadmap.New(nil), &out, &errOut)

	script := "2;X;10;2000;Y;10;2000;Z\ngetRouteDescription;2\n"
	d.Run(strings.NewReader(script))

	if errOut.Len() != 0 {
		t.Fatalf("expected no errors, got %q", errOut.String())
	}
	want := "2;X;10;2000;Y;10;2000;Z\n"
	if out.String() != want {
		t.Errorf("expected %q, got %q", want, out.String())
	}
}

func TestDriver_UnknownCommandReportsError(t *testing.T) {
	var out, errOut strings.Builder
	d := NewDriver(roadmap.New(nil), &out, &errOut)

	d.Run(strings.NewReader("bogusCommand;1;2\n"))

	want := "ERROR 1\n"
	if errOut.String() != want {
		t.Errorf("expected %q, got %q", want, errOut.String())
	}
}
