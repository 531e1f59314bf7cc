package mc

import "testing"

func TestParseVersion(t *testing.T) {
	cases := map[string]Version{
		"1.7":    V1_7,
		"1.12.2": V1_12,
		" 1.16 ": V1_16,
		"1.18":   V1_18,
	}
	for s, want := range cases {
		got, err := ParseVersion(s)
		if err != nil || got != want {
			t.Fatalf("ParseVersion(%q) = %v, %v, want %v", s, got, err, want)
		}
	}
	if _, err := ParseVersion("b1.7"); err == nil {
		t.Fatalf("expected an error for an unsupported version")
	}
	if VersionName(V1_14) != "1.14" {
		t.Fatalf("unexpected name %q", VersionName(V1_14))
	}
}

func TestParseDimension(t *testing.T) {
	for s, want := range map[string]Dimension{
		"overworld":            Overworld,
		"minecraft:the_nether": Nether,
		"The_End":              End,
	} {
		got, err := ParseDimension(s)
		if err != nil || got != want {
			t.Fatalf("ParseDimension(%q) = %v, %v, want %v", s, got, err, want)
		}
	}
	var d Dimension
	if err := d.UnmarshalText([]byte("nether")); err != nil || d != Nether {
		t.Fatalf("UnmarshalText gave %v, %v", d, err)
	}
	if err := d.UnmarshalText([]byte("aether")); err == nil {
		t.Fatalf("expected an error for an unknown dimension")
	}
}

func TestFlagsHas(t *testing.T) {
	f := LargeBiomes | ForceOceanVariants
	if !f.Has(LargeBiomes) || f.Has(NoBetaOcean) || !f.Has(LargeBiomes|ForceOceanVariants) {
		t.Fatalf("unexpected flag set %b", f)
	}
}
