package security

// Randomizer produces a random string from length bytes of entropy.
type Randomizer interface {
	Randomize(length uint32) (string, error)
}

type RandomizeFunc func(length uint32) (string, error)

func (r RandomizeFunc) Randomize(length uint32) (string, error) {
	return r(length)
}

var STDRandomizer = RandomizeFunc(GenerateRandomBytesURLEncoded)
