package ecc

import "fmt"

const (
	// MaxComponentTypes is the largest number of component types a bucket
	// can register. Bit 63 of every entity word is reserved for the live
	// flag, which leaves 63 component bits.
	MaxComponentTypes = 63

	// DefaultMaxEntities is the entity table capacity used by DefaultConfig.
	DefaultMaxEntities = 10000
)

// Config holds the construction-time capacities of a Bucket. Neither value
// can change once the bucket exists.
type Config struct {
	// MaxEntities is the fixed size of the entity table.
	MaxEntities int
	// MaxComponentTypes bounds the registry; at most MaxComponentTypes.
	MaxComponentTypes int
}

// DefaultConfig returns the canonical capacities: 10,000 entities and 63
// component types.
func DefaultConfig() Config {
	return Config{
		MaxEntities:       DefaultMaxEntities,
		MaxComponentTypes: MaxComponentTypes,
	}
}

// Validate reports whether both capacities are usable.
func (c Config) Validate() error {
	if c.MaxEntities <= 0 {
		return fmt.Errorf("%w: max entities %d must be positive", ErrInvalidConfig, c.MaxEntities)
	}
	// Entity handles are uint32.
	if uint64(c.MaxEntities) > 1<<32 {
		return fmt.Errorf("%w: max entities %d exceeds the entity handle range", ErrInvalidConfig, c.MaxEntities)
	}
	if c.MaxComponentTypes <= 0 || c.MaxComponentTypes > MaxComponentTypes {
		return fmt.Errorf("%w: max component types %d must be in [1, %d]", ErrInvalidConfig, c.MaxComponentTypes, MaxComponentTypes)
	}
	return nil
}

// TableBytes returns the number of arena bytes the entity table of this
// configuration occupies.
func (c Config) TableBytes() int {
	return c.MaxEntities * entityWordSize
}

// QueueBytes returns the size of the free-index node pool reserved for this
// configuration: one node per entity slot.
func (c Config) QueueBytes() int {
	return c.MaxEntities * queueNodeSize
}

// FootprintBytes returns the arena bytes a bucket of this configuration
// takes before any component type is registered.
func (c Config) FootprintBytes() int {
	return alignUp(c.TableBytes()) + c.QueueBytes()
}
