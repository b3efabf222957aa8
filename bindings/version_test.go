package bindings

import (
	"strings"
	"testing"

	"github.com/playday3008/scripthook-go/resolver"
)

func TestVersionTablesMatchConstants(t *testing.T) {
	if got, want := len(gtavVersionNames), int(VER_1_0_3407_0)+1; got != want {
		t.Errorf("GTA V table has %d entries, want %d", got, want)
	}
	if got, want := len(rdr2VersionNames), int(VER_1_0_1491_50_RGS)+1; got != want {
		t.Errorf("RDR2 table has %d entries, want %d", got, want)
	}

	spots := []struct {
		tag  GameVersion
		name string
	}{
		{VER_1_0_335_2_STEAM, "VER_1_0_335_2_STEAM"},
		{VER_1_0_1604_0_STEAM, "VER_1_0_1604_0_STEAM"},
		{VER_1_0_1868_4_EGS, "VER_1_0_1868_4_EGS"},
		{VER_1_0_2699_16, "VER_1_0_2699_16"},
		{VER_1_0_3407_0, "VER_1_0_3407_0"},
	}
	for _, s := range spots {
		if gtavVersionNames[s.tag] != s.name {
			t.Errorf("gtavVersionNames[%d] = %q, want %q", s.tag, gtavVersionNames[s.tag], s.name)
		}
	}
	if rdr2VersionNames[VER_AUTO] != "VER_AUTO" {
		t.Errorf("rdr2VersionNames[VER_AUTO] = %q", rdr2VersionNames[VER_AUTO])
	}
	if rdr2VersionNames[VER_1_0_1311_12_RGS] != "VER_1_0_1311_12_RGS" {
		t.Errorf("rdr2VersionNames[%d] = %q", VER_1_0_1311_12_RGS, rdr2VersionNames[VER_1_0_1311_12_RGS])
	}
}

func TestVersionTablesHaveUniqueEntries(t *testing.T) {
	for _, table := range [][]string{gtavVersionNames, rdr2VersionNames} {
		seen := make(map[string]bool, len(table))
		for i, name := range table {
			if name == "" {
				t.Errorf("entry %d is empty", i)
			}
			if seen[name] {
				t.Errorf("entry %q appears twice", name)
			}
			seen[name] = true
		}
	}
}

func TestVersionName(t *testing.T) {
	tests := []struct {
		id   resolver.Identity
		tag  GameVersion
		want string
	}{
		{resolver.IdentityGTAV, VER_1_0_2189_0_STEAM, "VER_1_0_2189_0_STEAM"},
		{resolver.IdentityRDR2, VER_1_0_1207_60_RGS, "VER_1_0_1207_60_RGS"},
		{resolver.IdentityGTAV, VersionUnknown, "VER_UNK"},
		{resolver.IdentityRDR2, VersionUnknown, "VER_UNK"},
		{resolver.IdentityUnknown, 3, "unknown build tag 3"},
	}
	for _, tt := range tests {
		if got := VersionName(tt.id, tt.tag); got != tt.want {
			t.Errorf("VersionName(%v, %d) = %q, want %q", tt.id, tt.tag, got, tt.want)
		}
	}

	// Tags past the table must degrade to something printable rather
	// than panic on newer hook builds.
	next := GameVersion(len(gtavVersionNames))
	if got := VersionName(resolver.IdentityGTAV, next); !strings.Contains(got, "unknown build tag") {
		t.Errorf("past-table name = %q", got)
	}
}

func TestKnownVersion(t *testing.T) {
	if !KnownVersion(resolver.IdentityGTAV, VER_1_0_3095_0) {
		t.Error("VER_1_0_3095_0 should be known for GTA V")
	}
	if !KnownVersion(resolver.IdentityRDR2, VER_1_0_1491_50_RGS) {
		t.Error("VER_1_0_1491_50_RGS should be known for RDR2")
	}
	if KnownVersion(resolver.IdentityGTAV, VersionUnknown) {
		t.Error("VersionUnknown must never be known")
	}
	if KnownVersion(resolver.IdentityRDR2, GameVersion(len(rdr2VersionNames))) {
		t.Error("tag past the table must not be known")
	}
	if KnownVersion(resolver.IdentityUnknown, 0) {
		t.Error("unknown identity has no version table")
	}
}
