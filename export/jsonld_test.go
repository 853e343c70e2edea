package export_test

import (
	"encoding/json"
	"testing"

	"github.com/Informatievlaanderen/OSLO-codelijsten/export"
)

func TestUnwrapSingleArray(t *testing.T) {
	doc := `[{"@id": "http://example.org/concept/1", "label": "Eén"}]`

	out := export.UnwrapSingle(doc)

	var node map[string]any
	if err := json.Unmarshal([]byte(out), &node); err != nil {
		t.Fatalf("unwrapped output not an object: %v", err)
	}
	if node["@id"] != "http://example.org/concept/1" {
		t.Errorf("@id = %v", node["@id"])
	}
}

func TestUnwrapSingleGraph(t *testing.T) {
	doc := `{
  "@context": {"skos": "http://www.w3.org/2004/02/skos/core#"},
  "@graph": [{"@id": "http://example.org/concept/1", "label": "Eén"}]
}`

	out := export.UnwrapSingle(doc)

	var node map[string]any
	if err := json.Unmarshal([]byte(out), &node); err != nil {
		t.Fatalf("unwrapped output not an object: %v", err)
	}
	if _, ok := node["@graph"]; ok {
		t.Error("@graph survived unwrapping")
	}
	if _, ok := node["@context"]; !ok {
		t.Error("@context lost during unwrapping")
	}
	if node["@id"] != "http://example.org/concept/1" {
		t.Errorf("@id = %v", node["@id"])
	}
}

func TestUnwrapSingleLeavesMultiNodeAlone(t *testing.T) {
	doc := `{"@graph": [{"@id": "a"}, {"@id": "b"}]}`
	if out := export.UnwrapSingle(doc); out != doc {
		t.Error("multi-node document was modified")
	}

	broken := `{not json`
	if out := export.UnwrapSingle(broken); out != broken {
		t.Error("unparseable input was modified")
	}
}
