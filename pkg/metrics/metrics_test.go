package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestWriteTextfile(t *testing.T) {
	GraphNodes.Set(4)
	GraphEdges.Set(7)
	VisitsTotal.WithLabelValues("bfs").Add(3)

	path := filepath.Join(t.TempDir(), "honeybee.prom")
	if err := WriteTextfile(path); err != nil {
		t.Fatalf("WriteTextfile failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)

	for _, want := range []string{
		"honeybee_graph_nodes 4",
		"honeybee_graph_edges 7",
		`honeybee_visits_total{mode="bfs"}`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("textfile missing %q:\n%s", want, out)
		}
	}
}

func TestWriteTextfile_BadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "dir", "honeybee.prom")
	if err := WriteTextfile(path); err == nil {
		t.Fatal("expected an error for a non-existent directory")
	}
}

func TestVisitsTotal_PerMode(t *testing.T) {
	before := testutil.ToFloat64(VisitsTotal.WithLabelValues("walk"))
	VisitsTotal.WithLabelValues("walk").Add(2)

	if got := testutil.ToFloat64(VisitsTotal.WithLabelValues("walk")); got != before+2 {
		t.Errorf("walk visits = %v, want %v", got, before+2)
	}
}
