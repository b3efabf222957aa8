package bindings

import (
	"fmt"

	"github.com/playday3008/scripthook-go/resolver"
)

// GameVersion is the build tag reported by the hook's getGameVersion
// export. Values are small indexes into a per-game table, so a tag only
// means something together with the host identity; use VersionName or
// KnownVersion instead of comparing tags across games.
type GameVersion int32

// VersionUnknown is reported when the hook does not recognize the game
// build.
const VersionUnknown GameVersion = -1

// GTA V build tags, in the hook's enum order. Constant names follow the
// SDK so values stay comparable with scripts ported from it.
const (
	VER_1_0_335_2_STEAM GameVersion = iota
	VER_1_0_335_2_NOSTEAM
	VER_1_0_350_1_STEAM
	VER_1_0_350_2_NOSTEAM
	VER_1_0_372_2_STEAM
	VER_1_0_372_2_NOSTEAM
	VER_1_0_393_2_STEAM
	VER_1_0_393_2_NOSTEAM
	VER_1_0_393_4_STEAM
	VER_1_0_393_4_NOSTEAM
	VER_1_0_463_1_STEAM
	VER_1_0_463_1_NOSTEAM
	VER_1_0_505_2_STEAM
	VER_1_0_505_2_NOSTEAM
	VER_1_0_573_1_STEAM
	VER_1_0_573_1_NOSTEAM
	VER_1_0_617_1_STEAM
	VER_1_0_617_1_NOSTEAM
	VER_1_0_678_1_STEAM
	VER_1_0_678_1_NOSTEAM
	VER_1_0_757_2_STEAM
	VER_1_0_757_2_NOSTEAM
	VER_1_0_757_4_STEAM
	VER_1_0_757_4_NOSTEAM
	VER_1_0_791_2_STEAM
	VER_1_0_791_2_NOSTEAM
	VER_1_0_877_1_STEAM
	VER_1_0_877_1_NOSTEAM
	VER_1_0_944_2_STEAM
	VER_1_0_944_2_NOSTEAM
	VER_1_0_1011_1_STEAM
	VER_1_0_1011_1_NOSTEAM
	VER_1_0_1032_1_STEAM
	VER_1_0_1032_1_NOSTEAM
	VER_1_0_1103_2_STEAM
	VER_1_0_1103_2_NOSTEAM
	VER_1_0_1180_2_STEAM
	VER_1_0_1180_2_NOSTEAM
	VER_1_0_1290_1_STEAM
	VER_1_0_1290_1_NOSTEAM
	VER_1_0_1365_1_STEAM
	VER_1_0_1365_1_NOSTEAM
	VER_1_0_1493_0_STEAM
	VER_1_0_1493_0_NOSTEAM
	VER_1_0_1493_1_STEAM
	VER_1_0_1493_1_NOSTEAM
	VER_1_0_1604_0_STEAM
	VER_1_0_1604_0_NOSTEAM
	VER_1_0_1604_1_STEAM
	VER_1_0_1604_1_NOSTEAM
	VER_1_0_1737_0_STEAM
	VER_1_0_1737_0_NOSTEAM
	VER_1_0_1737_6_STEAM
	VER_1_0_1737_6_NOSTEAM
	VER_1_0_1868_0_STEAM
	VER_1_0_1868_0_NOSTEAM
	VER_1_0_1868_1_STEAM
	VER_1_0_1868_1_NOSTEAM
	VER_1_0_1868_4_EGS
	VER_1_0_2060_0_STEAM
	VER_1_0_2060_0_NOSTEAM
	VER_1_0_2060_1_STEAM
	VER_1_0_2060_1_NOSTEAM
	VER_1_0_2189_0_STEAM
	VER_1_0_2189_0_NOSTEAM
	VER_1_0_2215_0_STEAM
	VER_1_0_2215_0_NOSTEAM
	VER_1_0_2245_0_STEAM
	VER_1_0_2245_0_NOSTEAM
	VER_1_0_2372_0_STEAM
	VER_1_0_2372_0_NOSTEAM
	VER_1_0_2545_0_STEAM
	VER_1_0_2545_0_NOSTEAM
	VER_1_0_2612_1_STEAM
	VER_1_0_2612_1_NOSTEAM
	VER_1_0_2628_2_STEAM
	VER_1_0_2628_2_NOSTEAM
	VER_1_0_2699_0_STEAM
	VER_1_0_2699_0_NOSTEAM
	VER_1_0_2699_16
	VER_1_0_2802_0
	VER_1_0_2824_0
	VER_1_0_2845_0
	VER_1_0_2944_0
	VER_1_0_3028_0
	VER_1_0_3095_0
	VER_1_0_3179_0
	VER_1_0_3258_0
	VER_1_0_3274_0
	VER_1_0_3323_0
	VER_1_0_3337_0
	VER_1_0_3351_0
	VER_1_0_3407_0
)

// Red Dead Redemption 2 build tags, in the hook's enum order. VER_AUTO
// is the hook's own wildcard and shares value 0 with nothing else in the
// RDR2 table.
const (
	VER_AUTO GameVersion = iota
	VER_1_0_1207_60_RGS
	VER_1_0_1207_69_RGS
	VER_1_0_1207_73_RGS
	VER_1_0_1207_77_RGS
	VER_1_0_1232_13_RGS
	VER_1_0_1232_17_RGS
	VER_1_0_1311_12_RGS
	VER_1_0_1355_18_RGS
	VER_1_0_1436_25_RGS
	VER_1_0_1436_31_RGS
	VER_1_0_1491_16_RGS
	VER_1_0_1491_50_RGS
)

// Tables track the classic editions of both hooks; tags past the table,
// such as enhanced-edition builds, fall through to a numeric name.
var gtavVersionNames = []string{
	"VER_1_0_335_2_STEAM",
	"VER_1_0_335_2_NOSTEAM",
	"VER_1_0_350_1_STEAM",
	"VER_1_0_350_2_NOSTEAM",
	"VER_1_0_372_2_STEAM",
	"VER_1_0_372_2_NOSTEAM",
	"VER_1_0_393_2_STEAM",
	"VER_1_0_393_2_NOSTEAM",
	"VER_1_0_393_4_STEAM",
	"VER_1_0_393_4_NOSTEAM",
	"VER_1_0_463_1_STEAM",
	"VER_1_0_463_1_NOSTEAM",
	"VER_1_0_505_2_STEAM",
	"VER_1_0_505_2_NOSTEAM",
	"VER_1_0_573_1_STEAM",
	"VER_1_0_573_1_NOSTEAM",
	"VER_1_0_617_1_STEAM",
	"VER_1_0_617_1_NOSTEAM",
	"VER_1_0_678_1_STEAM",
	"VER_1_0_678_1_NOSTEAM",
	"VER_1_0_757_2_STEAM",
	"VER_1_0_757_2_NOSTEAM",
	"VER_1_0_757_4_STEAM",
	"VER_1_0_757_4_NOSTEAM",
	"VER_1_0_791_2_STEAM",
	"VER_1_0_791_2_NOSTEAM",
	"VER_1_0_877_1_STEAM",
	"VER_1_0_877_1_NOSTEAM",
	"VER_1_0_944_2_STEAM",
	"VER_1_0_944_2_NOSTEAM",
	"VER_1_0_1011_1_STEAM",
	"VER_1_0_1011_1_NOSTEAM",
	"VER_1_0_1032_1_STEAM",
	"VER_1_0_1032_1_NOSTEAM",
	"VER_1_0_1103_2_STEAM",
	"VER_1_0_1103_2_NOSTEAM",
	"VER_1_0_1180_2_STEAM",
	"VER_1_0_1180_2_NOSTEAM",
	"VER_1_0_1290_1_STEAM",
	"VER_1_0_1290_1_NOSTEAM",
	"VER_1_0_1365_1_STEAM",
	"VER_1_0_1365_1_NOSTEAM",
	"VER_1_0_1493_0_STEAM",
	"VER_1_0_1493_0_NOSTEAM",
	"VER_1_0_1493_1_STEAM",
	"VER_1_0_1493_1_NOSTEAM",
	"VER_1_0_1604_0_STEAM",
	"VER_1_0_1604_0_NOSTEAM",
	"VER_1_0_1604_1_STEAM",
	"VER_1_0_1604_1_NOSTEAM",
	"VER_1_0_1737_0_STEAM",
	"VER_1_0_1737_0_NOSTEAM",
	"VER_1_0_1737_6_STEAM",
	"VER_1_0_1737_6_NOSTEAM",
	"VER_1_0_1868_0_STEAM",
	"VER_1_0_1868_0_NOSTEAM",
	"VER_1_0_1868_1_STEAM",
	"VER_1_0_1868_1_NOSTEAM",
	"VER_1_0_1868_4_EGS",
	"VER_1_0_2060_0_STEAM",
	"VER_1_0_2060_0_NOSTEAM",
	"VER_1_0_2060_1_STEAM",
	"VER_1_0_2060_1_NOSTEAM",
	"VER_1_0_2189_0_STEAM",
	"VER_1_0_2189_0_NOSTEAM",
	"VER_1_0_2215_0_STEAM",
	"VER_1_0_2215_0_NOSTEAM",
	"VER_1_0_2245_0_STEAM",
	"VER_1_0_2245_0_NOSTEAM",
	"VER_1_0_2372_0_STEAM",
	"VER_1_0_2372_0_NOSTEAM",
	"VER_1_0_2545_0_STEAM",
	"VER_1_0_2545_0_NOSTEAM",
	"VER_1_0_2612_1_STEAM",
	"VER_1_0_2612_1_NOSTEAM",
	"VER_1_0_2628_2_STEAM",
	"VER_1_0_2628_2_NOSTEAM",
	"VER_1_0_2699_0_STEAM",
	"VER_1_0_2699_0_NOSTEAM",
	"VER_1_0_2699_16",
	"VER_1_0_2802_0",
	"VER_1_0_2824_0",
	"VER_1_0_2845_0",
	"VER_1_0_2944_0",
	"VER_1_0_3028_0",
	"VER_1_0_3095_0",
	"VER_1_0_3179_0",
	"VER_1_0_3258_0",
	"VER_1_0_3274_0",
	"VER_1_0_3323_0",
	"VER_1_0_3337_0",
	"VER_1_0_3351_0",
	"VER_1_0_3407_0",
}

var rdr2VersionNames = []string{
	"VER_AUTO",
	"VER_1_0_1207_60_RGS",
	"VER_1_0_1207_69_RGS",
	"VER_1_0_1207_73_RGS",
	"VER_1_0_1207_77_RGS",
	"VER_1_0_1232_13_RGS",
	"VER_1_0_1232_17_RGS",
	"VER_1_0_1311_12_RGS",
	"VER_1_0_1355_18_RGS",
	"VER_1_0_1436_25_RGS",
	"VER_1_0_1436_31_RGS",
	"VER_1_0_1491_16_RGS",
	"VER_1_0_1491_50_RGS",
}

// GameVersion asks the hook which game build it attached to. The raw
// tag comes straight from the export; classify it with VersionName or
// KnownVersion under the resolver's identity.
func (h *Hook) GameVersion() (GameVersion, error) {
	if h.fnGetGameVersion == nil {
		if err := h.b.Bind(SymGetGameVersion, &h.fnGetGameVersion); err != nil {
			return VersionUnknown, err
		}
	}
	return GameVersion(h.fnGetGameVersion()), nil
}

func versionTable(id resolver.Identity) []string {
	switch id {
	case resolver.IdentityGTAV:
		return gtavVersionNames
	case resolver.IdentityRDR2:
		return rdr2VersionNames
	default:
		return nil
	}
}

// VersionName renders a build tag under the given identity. Tags outside
// the identity's table, including VersionUnknown, get a numeric
// fallback so newer hook builds still log something useful.
func VersionName(id resolver.Identity, tag GameVersion) string {
	if tag == VersionUnknown {
		return "VER_UNK"
	}
	if table := versionTable(id); tag >= 0 && int(tag) < len(table) {
		return table[tag]
	}
	return fmt.Sprintf("unknown build tag %d", int32(tag))
}

// KnownVersion reports whether tag falls inside the identity's version
// table.
func KnownVersion(id resolver.Identity, tag GameVersion) bool {
	table := versionTable(id)
	return tag >= 0 && int(tag) < len(table)
}
