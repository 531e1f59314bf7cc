package main

import (
	"testing"

	"github.com/df-mc/biomegen/gen"
	"github.com/df-mc/biomegen/gen/mc"
)

func TestOverrideStore(t *testing.T) {
	uc := gen.DefaultConfig()
	overrideStore(&uc, "matches")
	if uc.Store.Backend != defaultBackend || uc.Store.Path != "matches" {
		t.Fatalf("expected %v store at matches, got %q at %q", defaultBackend, uc.Store.Backend, uc.Store.Path)
	}
	uc.Store.Backend = "sqlite"
	overrideStore(&uc, "matches.db")
	if uc.Store.Backend != "sqlite" || uc.Store.Path != "matches.db" {
		t.Fatalf("expected the job's backend to be kept, got %q at %q", uc.Store.Backend, uc.Store.Path)
	}
}

func TestOriginBiome(t *testing.T) {
	name, err := originBiome(gen.Config{Version: mc.V1_18, Dimension: mc.Overworld}, 262)
	if err != nil {
		t.Fatal(err)
	}
	if name != "Mushroom Fields" {
		t.Fatalf("expected Mushroom Fields, got %q", name)
	}
}
