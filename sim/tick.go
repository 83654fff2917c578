package sim

// Tick is a simulated instant. An unsigned integer keeps ordering exact:
// ticks compare with no NaN caveats and adding a nonnegative duration never
// yields an earlier instant.
type Tick uint64
