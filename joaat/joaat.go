package joaat

// Width constrains the hash state to the widths the runtimes use.
type Width interface {
	~uint32 | ~uint64
}

// Literal32 hashes the raw bytes of text, truncated at the first NUL.
func Literal32(text string) uint32 {
	return literal(uint32(0), text)
}

// Literal64 is the 64-bit form of Literal32.
func Literal64(text string) uint64 {
	return literal(uint64(0), text)
}

// String32 hashes text with identifier preprocessing: ASCII lowercase
// folding, backslash to forward slash, and quoted-span handling.
func String32(text string) uint32 {
	return preprocessed(uint32(0), text)
}

// String64 is the 64-bit form of String32.
func String64(text string) uint64 {
	return preprocessed(uint64(0), text)
}

// Hash is shorthand for String64, the form native command hashes use.
func Hash(text string) uint64 {
	return String64(text)
}

// SeedLiteral32 is Literal32 continuing from a previous partial hash.
func SeedLiteral32(seed uint32, text string) uint32 {
	return literal(seed, text)
}

// SeedLiteral64 is the 64-bit form of SeedLiteral32.
func SeedLiteral64(seed uint64, text string) uint64 {
	return literal(seed, text)
}

// SeedString32 is String32 continuing from a previous partial hash.
func SeedString32(seed uint32, text string) uint32 {
	return preprocessed(seed, text)
}

// SeedString64 is the 64-bit form of SeedString32.
func SeedString64(seed uint64, text string) uint64 {
	return preprocessed(seed, text)
}

// Finalize32 applies the avalanche rounds to a partial 32-bit hash.
func Finalize32(partial uint32) uint32 {
	return finalize(partial)
}

// Finalize64 applies the avalanche rounds to a partial 64-bit hash.
func Finalize64(partial uint64) uint64 {
	return finalize(partial)
}

func mix[W Width](h W, c byte) W {
	h += W(c)
	h += h << 10
	h ^= h >> 6
	return h
}

func finalize[W Width](h W) W {
	h += h << 3
	h ^= h >> 11
	h += h << 15
	return h
}

func literal[W Width](h W, text string) W {
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c == 0 {
			break
		}
		h = mix(h, c)
	}
	return finalize(h)
}

func preprocessed[W Width](h W, text string) W {
	i := 0
	quoted := false
	if len(text) > 0 && text[0] == '"' {
		i = 1
		quoted = true
	}
	for ; i < len(text); i++ {
		c := text[i]
		if c == 0 || (quoted && c == '"') {
			break
		}
		switch {
		case c >= 'A' && c <= 'Z':
			c += 'a' - 'A'
		case c == '\\':
			c = '/'
		}
		h = mix(h, c)
	}
	return finalize(h)
}
