package resolver

// Identity names the supported host games.
type Identity int

const (
	IdentityUnknown Identity = iota
	IdentityGTAV
	IdentityRDR2
)

// String returns the identity's display name.
func (i Identity) String() string {
	switch i {
	case IdentityGTAV:
		return "GTAV"
	case IdentityRDR2:
		return "RDR2"
	default:
		return "unknown"
	}
}

// LibraryName returns the hook library file for the identity.
func (i Identity) LibraryName() string {
	switch i {
	case IdentityGTAV:
		return "ScriptHookV.dll"
	case IdentityRDR2:
		return "ScriptHookRDR2.dll"
	default:
		return ""
	}
}

// identityForStem maps a process executable stem to its identity.
// Matching is exact and case sensitive: the games ship with these exact
// names and anything else is not a supported host.
func identityForStem(stem string) (Identity, bool) {
	switch stem {
	case "GTA5", "GTA5_Enhanced":
		return IdentityGTAV, true
	case "RDR2":
		return IdentityRDR2, true
	}
	return IdentityUnknown, false
}

// stemOf extracts the file stem from a path: the final component with its
// extension removed. Both separator styles are handled so stems survive
// paths produced on either platform.
func stemOf(path string) string {
	base := path
	for i := len(base) - 1; i >= 0; i-- {
		if base[i] == '/' || base[i] == '\\' {
			base = base[i+1:]
			break
		}
	}
	for i := len(base) - 1; i > 0; i-- {
		if base[i] == '.' {
			return base[:i]
		}
	}
	return base
}
