package ports

import "time"

// Clock supplies the current time to handlers. Injected so elapsed-time
// progression can be tested against fixed instants; production wiring passes
// time.Now.
type Clock func() time.Time
