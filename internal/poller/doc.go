// Package poller keeps the partition store current.
//
// On every tick it computes the latest completed grid instant for each
// configured timestep (lagged so the provider has finished the bucket),
// skips partitions that already exist on disk, and fetches and stores the
// rest through the snapshot service. Timesteps are gathered sequentially:
// the global rate gate spaces the API calls anyway, so concurrency would
// only add queueing.
package poller
