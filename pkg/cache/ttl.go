package cache

import "time"

// TTLArtifact is how long rendered artifacts stay cached. Rendering is
// deterministic in its inputs, so entries never go stale; the TTL only
// bounds disk and Redis usage.
const TTLArtifact = 7 * 24 * time.Hour
