package versioninfo

import "testing"

func TestLookupRoundTrip(t *testing.T) {
	for v := V1_7; v <= Newest; v++ {
		got, ok := Lookup(Name(v))
		if !ok || got != v {
			t.Fatalf("lookup %q: got %v, %v", Name(v), got, ok)
		}
	}
	if v, ok := Lookup("1.16.5"); !ok || v != V1_16 {
		t.Fatalf("expected patch release to resolve to 1.16, got %v", v)
	}
	if _, ok := Lookup("1.6"); ok {
		t.Fatalf("expected 1.6 to be unsupported")
	}
}

func TestHas(t *testing.T) {
	if Has(V1_12, OceanTemperature) {
		t.Fatalf("1.12 must not have ocean temperature")
	}
	if !Has(V1_13, OceanTemperature) || !Has(V1_18, Bamboo) {
		t.Fatalf("expected revisions to carry forward")
	}
}
